package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale is a row of the sales table.
type Sale struct {
	SaleID           string          `json:"saleID"`
	SaleDate         time.Time       `json:"saleDate"`
	TipAmount        decimal.Decimal `json:"tipAmount"`
	Closed           bool            `json:"closed"`
	TipTransactionID *string         `json:"tipTransactionID"` // Nullable FK -> ledger_transactions
	AuditFields
}

// Payout is a row of the payouts table.
type Payout struct {
	PayoutID    string          `json:"payoutID"`
	Source      string          `json:"source"` // CASH or BANK
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	PayoutDate  time.Time       `json:"payoutDate"`
	Description string          `json:"description"`
	AuditFields
}
