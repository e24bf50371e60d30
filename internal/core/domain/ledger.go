package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultLedgerName is the well-known name of the application-wide ledger.
const DefaultLedgerName = "vestat"

// Ledger is a named container of transactions.
type Ledger struct {
	LedgerID  string    `json:"ledgerID"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// DateRange is an inclusive range of days. A nil bound is unbounded.
type DateRange struct {
	From *time.Time
	To   *time.Time
}

// Contains reports whether day d falls inside the range.
func (r DateRange) Contains(d time.Time) bool {
	d = DateOnly(d)
	if r.From != nil && d.Before(DateOnly(*r.From)) {
		return false
	}
	if r.To != nil && d.After(DateOnly(*r.To)) {
		return false
	}
	return true
}

// UpTo returns the range of every day on or before d.
func UpTo(d time.Time) DateRange {
	return DateRange{To: &d}
}

// BalanceOf sums the amounts of entries whose path equals accountPath exactly,
// over transactions dated inside r. Descendant accounts are not included.
func BalanceOf(transactions []Transaction, accountPath string, r DateRange) decimal.Decimal {
	balance := decimal.Zero
	for _, t := range transactions {
		if !r.Contains(t.Date) {
			continue
		}
		for _, e := range t.Entries {
			if e.AccountPath == accountPath {
				balance = balance.Add(e.Amount)
			}
		}
	}
	return balance
}
