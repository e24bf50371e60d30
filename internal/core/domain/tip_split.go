package domain

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Only this fraction of the recorded tip is split; the rest covers card fees and taxes.
const (
	tipConsideredNumerator   = 9
	tipConsideredDenominator = 10
)

var validate = validator.New()

// TipSplit is the configured ratio between staff and house shares of the tip.
type TipSplit struct {
	StaffShares int `validate:"gte=0"`
	HouseShares int `validate:"gte=0"`
}

// Validate rejects negative shares and an all-zero split.
func (s TipSplit) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTipSplit, err)
	}
	if s.StaffShares+s.HouseShares == 0 {
		return fmt.Errorf("%w: staff and house shares are both zero", ErrInvalidTipSplit)
	}
	return nil
}

// StaffShare computes tip * 9/10 * staff/(staff+house) exactly and rounds once,
// half away from zero, to two decimal places.
func (s TipSplit) StaffShare(tip decimal.Decimal) (decimal.Decimal, error) {
	if err := s.Validate(); err != nil {
		return decimal.Zero, err
	}
	numerator := tip.Mul(decimal.NewFromInt(int64(tipConsideredNumerator * s.StaffShares)))
	denominator := decimal.NewFromInt(int64(tipConsideredDenominator * (s.StaffShares + s.HouseShares)))
	return numerator.DivRound(denominator, 2), nil
}

// TipAccrualDescription is the description of the liability transaction for a day.
func TipAccrualDescription(day time.Time) string {
	return "10% a pagar do dia " + DateOnly(day).Format(DateLayout)
}

// NewTipAccrualTransaction builds the four-entry liability transaction for amount owed to staff.
func NewTipAccrualTransaction(ledgerID string, day time.Time, owed decimal.Decimal) *Transaction {
	return NewTransaction(ledgerID, day, TipAccrualDescription(day)).
		AddEntry(owed.Neg(), AccountTipRevenueStaff).
		AddEntry(owed, AccountCash).
		AddEntry(owed, AccountTipExpenseStaff).
		AddEntry(owed.Neg(), AccountTipPayable)
}
