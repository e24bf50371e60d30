package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Ledger is a row of the ledgers table.
type Ledger struct {
	LedgerID  string    `json:"ledgerID"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// LedgerTransaction is a row of the ledger_transactions table.
// TransactionDate is a DATE column; the clock part is always zero.
type LedgerTransaction struct {
	TransactionID   string    `json:"transactionID"`
	LedgerID        string    `json:"ledgerID"`
	TransactionDate time.Time `json:"transactionDate"`
	Description     string    `json:"description"`
	AuditFields
}

// LedgerEntry is a row of the ledger_entries table.
type LedgerEntry struct {
	EntryID       string          `json:"entryID"`
	TransactionID string          `json:"transactionID"`
	Position      int             `json:"position"`
	Amount        decimal.Decimal `json:"amount"` // NUMERIC(10,2)
	AccountPath   string          `json:"accountPath"`
}
