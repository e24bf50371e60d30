package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEventType names a ledger change published after commit.
type LedgerEventType string

const (
	EventTransactionCreated LedgerEventType = "transaction.created"
	EventTransactionDeleted LedgerEventType = "transaction.deleted"
	EventTipAccrued         LedgerEventType = "tip.accrued"
	EventTipReversed        LedgerEventType = "tip.reversed"
)

// LedgerEvent is the payload sent to subscribers.
type LedgerEvent struct {
	Type          LedgerEventType  `json:"type"`
	LedgerID      string           `json:"ledgerID"`
	TransactionID string           `json:"transactionID"`
	SaleID        string           `json:"saleID,omitempty"`
	Date          string           `json:"date"`
	Amount        *decimal.Decimal `json:"amount,omitempty"`
	OccurredAt    time.Time        `json:"occurredAt"`
}
