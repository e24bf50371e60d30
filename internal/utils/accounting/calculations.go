package accounting

import (
	"github.com/duasfl8r/vestat/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SumEntries adds the amounts of entries.
func SumEntries(entries []domain.Entry) decimal.Decimal {
	sum := decimal.Zero
	for _, e := range entries {
		sum = sum.Add(e.Amount)
	}
	return sum
}

// FlattenEntries lists the entries of transactions, keeping transaction order
// and then entry order inside each transaction.
func FlattenEntries(transactions []domain.Transaction) []domain.Entry {
	n := 0
	for _, t := range transactions {
		n += len(t.Entries)
	}
	entries := make([]domain.Entry, 0, n)
	for _, t := range transactions {
		entries = append(entries, t.Entries...)
	}
	return entries
}

// BalancesByAccount sums entries per exact account path.
func BalancesByAccount(entries []domain.Entry) map[string]decimal.Decimal {
	balances := make(map[string]decimal.Decimal)
	for _, e := range entries {
		balances[e.AccountPath] = balances[e.AccountPath].Add(e.Amount)
	}
	return balances
}
