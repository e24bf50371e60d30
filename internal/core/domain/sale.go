package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Sale is the minimal view of a day's sales record that the tip accrual rule needs.
// TipTransactionID is owned by the rule: it points at the accrual transaction, if any.
type Sale struct {
	SaleID           string          `json:"saleID"`
	Date             time.Time       `json:"date"`
	TipAmount        decimal.Decimal `json:"tipAmount"`
	Closed           bool            `json:"closed"`
	TipTransactionID *string         `json:"tipTransactionID,omitempty"`
	AuditFields
}

// NewSale creates an open sale for the given day.
func NewSale(date time.Time, tipAmount decimal.Decimal, userID string, now time.Time) (*Sale, error) {
	if tipAmount.IsNegative() {
		return nil, ErrNegativeTip
	}
	if !isCents(tipAmount) {
		return nil, ErrInvalidAmount
	}
	return &Sale{
		SaleID:      uuid.NewString(),
		Date:        DateOnly(date),
		TipAmount:   tipAmount,
		AuditFields: NewAuditFields(userID, now),
	}, nil
}

// HasTipTransaction reports whether an accrual transaction is attached.
func (s Sale) HasTipTransaction() bool {
	return s.TipTransactionID != nil && *s.TipTransactionID != ""
}
