package accounting_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/duasfl8r/vestat/internal/core/domain"
	"github.com/duasfl8r/vestat/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLister struct {
	transactions []domain.Transaction
	err          error
}

func (f fakeLister) ListLedgerTransactions(_ context.Context, _ string, r domain.DateRange) ([]domain.Transaction, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []domain.Transaction
	for _, t := range f.transactions {
		if r.Contains(t.Date) {
			out = append(out, t)
		}
	}
	return out, nil
}

func sampleTransactions() []domain.Transaction {
	d1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	d2 := d1.AddDate(0, 0, 1)
	return []domain.Transaction{
		*domain.NewTransaction("l1", d1, "um").
			AddEntry(decimal.NewFromInt(10), "bens:caixa").
			AddEntry(decimal.NewFromInt(-10), "entrada:vendas"),
		*domain.NewTransaction("l1", d2, "dois").
			AddEntry(decimal.NewFromInt(5), "bens:caixa:troco").
			AddEntry(decimal.NewFromInt(-3), "bens:caixa").
			AddEntry(decimal.NewFromInt(-2), "entrada:vendas"),
	}
}

func TestDigest_Structure(t *testing.T) {
	tree := accounting.DigestTransactions(sampleTransactions())

	assert.Empty(t, tree.Entries)
	require.Contains(t, tree.Children, "bens")
	require.Contains(t, tree.Children, "entrada")

	bens := tree.Children["bens"]
	assert.Empty(t, bens.Entries, "intermediate node holds no entries")
	caixa := bens.Children["caixa"]
	require.NotNil(t, caixa)
	require.Len(t, caixa.Entries, 2)
	assert.Equal(t, "10", caixa.Entries[0].Amount.String())
	assert.Equal(t, "-3", caixa.Entries[1].Amount.String())
	require.Len(t, caixa.Children["troco"].Entries, 1)

	assert.Same(t, caixa, tree.Node("bens:caixa"))
	assert.Same(t, tree, tree.Node(""))
	assert.Nil(t, tree.Node("bens:banco"))
}

func TestDigest_Equivalence(t *testing.T) {
	txns := sampleTransactions()
	lister := fakeLister{transactions: txns}

	fromLedger, err := accounting.DigestLedger(context.Background(), lister, "l1", domain.DateRange{})
	require.NoError(t, err)
	fromTransactions := accounting.DigestTransactions(txns)
	fromEntries := accounting.DigestEntries(accounting.FlattenEntries(txns))

	assert.True(t, fromLedger.Equal(fromTransactions))
	assert.True(t, fromTransactions.Equal(fromEntries))
	assert.True(t, fromEntries.Equal(fromLedger))
}

func TestDigest_OrderingIsSignificant(t *testing.T) {
	entries := accounting.FlattenEntries(sampleTransactions())
	reversed := make([]domain.Entry, len(entries))
	for i, e := range entries {
		reversed[len(entries)-1-i] = e
	}

	a := accounting.DigestEntries(entries)
	b := accounting.DigestEntries(reversed)
	assert.False(t, a.Equal(b), "entries on the same node are compared in insertion order")
	assert.True(t, a.Total().Equal(b.Total()))
}

func TestDigest_NotEqual(t *testing.T) {
	txns := sampleTransactions()
	a := accounting.DigestTransactions(txns)
	b := accounting.DigestTransactions(txns[:1])
	assert.False(t, a.Equal(b))
	assert.False(t, a.Equal(nil))
	assert.True(t, accounting.NewAccountTree().Equal(accounting.DigestEntries(nil)))
}

func TestDigestLedger_RangeAndError(t *testing.T) {
	txns := sampleTransactions()
	d2 := txns[1].Date
	tree, err := accounting.DigestLedger(context.Background(), fakeLister{transactions: txns}, "l1", domain.DateRange{From: &d2})
	require.NoError(t, err)
	assert.Nil(t, tree.Node("bens:caixa").Children["missing"])
	assert.Len(t, tree.Node("bens:caixa").Entries, 1)

	boom := errors.New("boom")
	_, err = accounting.DigestLedger(context.Background(), fakeLister{err: boom}, "l1", domain.DateRange{})
	assert.ErrorIs(t, err, boom)
}

func TestTree_Totals(t *testing.T) {
	tree := accounting.DigestTransactions(sampleTransactions())

	assert.True(t, tree.Total().IsZero(), "balanced transactions roll up to zero at the root")
	assert.Equal(t, "7", tree.Node("bens:caixa").Balance().String())
	assert.Equal(t, "12", tree.Node("bens:caixa").Total().String())
	assert.Equal(t, "12", tree.Node("bens").Total().String())

	totals := tree.Totals()
	assert.Equal(t, "-12", totals["entrada:vendas"].String())
	assert.Equal(t, "5", totals["bens:caixa:troco"].String())

	var visited []string
	tree.Walk(func(path string, _ *accounting.AccountTree) { visited = append(visited, path) })
	assert.Equal(t, []string{"", "bens", "bens:caixa", "bens:caixa:troco", "entrada", "entrada:vendas"}, visited)
}

func TestBalancesByAccount(t *testing.T) {
	balances := accounting.BalancesByAccount(accounting.FlattenEntries(sampleTransactions()))
	assert.Equal(t, "7", balances["bens:caixa"].String())
	assert.Equal(t, "5", balances["bens:caixa:troco"].String())
	assert.Equal(t, "-12", balances["entrada:vendas"].String())
}
