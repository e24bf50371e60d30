package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PayoutSource identifies where a payout record comes from.
type PayoutSource string

const (
	// PayoutSourceCash is a cash-register expense. Amounts are stored negative.
	PayoutSourceCash PayoutSource = "CASH"
	// PayoutSourceBank is a bank movement. The sign is kept as given.
	PayoutSourceBank PayoutSource = "BANK"
)

// TipPayoutCategory is the category slug that marks an expense or bank movement as a tip payout.
const TipPayoutCategory = "10"

// Payout is an expense or bank movement record. Only records in TipPayoutCategory
// are considered when computing the amount owed to staff.
type Payout struct {
	PayoutID    string          `json:"payoutID"`
	Source      PayoutSource    `json:"source"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	AuditFields
}

// NewPayout builds a payout record. Cash expenses are always stored as negative values.
func NewPayout(source PayoutSource, category string, amount decimal.Decimal, date time.Time, description, userID string, now time.Time) (*Payout, error) {
	source = PayoutSource(strings.ToUpper(string(source)))
	if !isCents(amount) {
		return nil, ErrInvalidAmount
	}
	switch source {
	case PayoutSourceCash:
		if amount.IsPositive() {
			amount = amount.Neg()
		}
	case PayoutSourceBank:
	default:
		return nil, ErrInvalidPayoutSource
	}
	return &Payout{
		PayoutID:    uuid.NewString(),
		Source:      source,
		Category:    category,
		Amount:      amount,
		Date:        DateOnly(date),
		Description: description,
		AuditFields: NewAuditFields(userID, now),
	}, nil
}

// IsTipPayout reports whether the record counts against the tip liability.
func (p Payout) IsTipPayout() bool {
	return p.Category == TipPayoutCategory
}
