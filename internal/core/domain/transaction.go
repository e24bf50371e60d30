package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Entry is one signed amount against one account path. It belongs to exactly one Transaction.
type Entry struct {
	EntryID       string          `json:"entryID"`
	TransactionID string          `json:"transactionID"`
	Amount        decimal.Decimal `json:"amount"`
	AccountPath   string          `json:"accountPath"`
	Position      int             `json:"position"` // insertion order inside the transaction
}

// Validate checks the entry before it is persisted.
func (e Entry) Validate() error {
	if err := ValidateAccountPath(e.AccountPath); err != nil {
		return fmt.Errorf("entry %d: %w", e.Position, err)
	}
	if !isCents(e.Amount) {
		return fmt.Errorf("entry %d: %w", e.Position, ErrInvalidAmount)
	}
	return nil
}

// isCents reports whether d has at most two decimal places, the precision amounts are stored with.
func isCents(d decimal.Decimal) bool {
	return d.Equal(d.Round(2))
}

// Transaction is a dated, described group of entries that must sum to zero.
type Transaction struct {
	TransactionID string    `json:"transactionID"`
	LedgerID      string    `json:"ledgerID"`
	Date          time.Time `json:"date"`
	Description   string    `json:"description"`
	Entries       []Entry   `json:"entries"`
	AuditFields
}

// NewTransaction starts a transaction with no entries. Use AddEntry to fill it.
func NewTransaction(ledgerID string, date time.Time, description string) *Transaction {
	return &Transaction{
		TransactionID: uuid.NewString(),
		LedgerID:      ledgerID,
		Date:          DateOnly(date),
		Description:   description,
	}
}

// AddEntry appends an entry and returns the transaction so calls can be chained.
func (t *Transaction) AddEntry(amount decimal.Decimal, accountPath string) *Transaction {
	t.Entries = append(t.Entries, Entry{
		EntryID:       uuid.NewString(),
		TransactionID: t.TransactionID,
		Amount:        amount,
		AccountPath:   accountPath,
		Position:      len(t.Entries),
	})
	return t
}

// Sum adds up all entry amounts.
func (t Transaction) Sum() decimal.Decimal {
	sum := decimal.Zero
	for _, e := range t.Entries {
		sum = sum.Add(e.Amount)
	}
	return sum
}

// IsConsistent reports whether the entries sum to exactly zero.
// A transaction without entries is consistent.
func (t Transaction) IsConsistent() bool {
	return t.Sum().IsZero()
}

// Validate must pass before a transaction is persisted.
func (t Transaction) Validate() error {
	for _, e := range t.Entries {
		if err := e.Validate(); err != nil {
			return err
		}
	}
	if !t.IsConsistent() {
		return fmt.Errorf("%w (sum %s)", ErrUnbalancedTransaction, t.Sum().StringFixed(2))
	}
	return nil
}

// InvolvedAccounts lists the distinct account paths of the entries in first-use order.
func (t Transaction) InvolvedAccounts() []string {
	seen := make(map[string]struct{}, len(t.Entries))
	accounts := make([]string, 0, len(t.Entries))
	for _, e := range t.Entries {
		if _, ok := seen[e.AccountPath]; ok {
			continue
		}
		seen[e.AccountPath] = struct{}{}
		accounts = append(accounts, e.AccountPath)
	}
	return accounts
}
