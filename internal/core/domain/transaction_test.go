package domain_test

import (
	"errors"
	"testing"
	"time"

	"github.com/duasfl8r/vestat/internal/apperrors"
	"github.com/duasfl8r/vestat/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestTransaction_Validate(t *testing.T) {
	day := time.Date(2024, 3, 10, 15, 4, 5, 0, time.UTC)

	tests := []struct {
		name    string
		build   func() *domain.Transaction
		wantErr error
	}{
		{
			name: "balanced transaction",
			build: func() *domain.Transaction {
				return domain.NewTransaction("l1", day, "venda").
					AddEntry(dec("10.00"), "bens:caixa").
					AddEntry(dec("-10.00"), "entrada:vendas")
			},
		},
		{
			name: "no entries is consistent",
			build: func() *domain.Transaction {
				return domain.NewTransaction("l1", day, "vazia")
			},
		},
		{
			name: "unbalanced by one cent",
			build: func() *domain.Transaction {
				return domain.NewTransaction("l1", day, "errada").
					AddEntry(dec("10.00"), "bens:caixa").
					AddEntry(dec("-9.99"), "entrada:vendas")
			},
			wantErr: domain.ErrUnbalancedTransaction,
		},
		{
			name: "empty account path",
			build: func() *domain.Transaction {
				return domain.NewTransaction("l1", day, "sem conta").
					AddEntry(dec("5"), "").
					AddEntry(dec("-5"), "bens:caixa")
			},
			wantErr: domain.ErrEmptyAccountPath,
		},
		{
			name: "sub-cent amount",
			build: func() *domain.Transaction {
				return domain.NewTransaction("l1", day, "centavos").
					AddEntry(dec("0.005"), "bens:caixa").
					AddEntry(dec("-0.005"), "entrada:vendas")
			},
			wantErr: domain.ErrInvalidAmount,
		},
		{
			name: "account path with empty segment",
			build: func() *domain.Transaction {
				return domain.NewTransaction("l1", day, "segmento vazio").
					AddEntry(dec("5"), "bens::caixa").
					AddEntry(dec("-5"), "bens:caixa")
			},
			wantErr: domain.ErrInvalidAccountPath,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.build().Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
			assert.True(t, errors.Is(err, apperrors.ErrValidation), "domain validation errors map to ErrValidation")
		})
	}
}

func TestTransaction_Builder(t *testing.T) {
	day := time.Date(2024, 3, 10, 23, 59, 0, 0, time.UTC)
	txn := domain.NewTransaction("l1", day, "x").
		AddEntry(dec("1"), "a:b").
		AddEntry(dec("2"), "a:c").
		AddEntry(dec("-3"), "a:b")

	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), txn.Date)
	require.Len(t, txn.Entries, 3)
	for i, e := range txn.Entries {
		assert.Equal(t, i, e.Position)
		assert.Equal(t, txn.TransactionID, e.TransactionID)
		assert.NotEmpty(t, e.EntryID)
	}
	assert.True(t, txn.IsConsistent())
	assert.Equal(t, []string{"a:b", "a:c"}, txn.InvolvedAccounts())
}

func TestAccountPath(t *testing.T) {
	path, err := domain.JoinAccountPath("dividas", "contas a pagar", "10%")
	require.NoError(t, err)
	assert.Equal(t, domain.AccountTipPayable, path)
	assert.Equal(t, []string{"dividas", "contas a pagar", "10%"}, domain.SplitAccountPath(path))

	nested, err := domain.JoinAccountPath("bens:caixa", "troco")
	require.NoError(t, err)
	assert.Equal(t, "bens:caixa:troco", nested)

	_, err = domain.JoinAccountPath()
	assert.ErrorIs(t, err, domain.ErrEmptyAccountPath)

	_, err = domain.JoinAccountPath("bens", "")
	assert.ErrorIs(t, err, domain.ErrInvalidAccountPath)

	assert.Nil(t, domain.SplitAccountPath(""))
	assert.Panics(t, func() { domain.MustJoinAccountPath("", "x") })
}

func TestBalanceOf(t *testing.T) {
	d1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	d2 := d1.AddDate(0, 0, 1)
	d3 := d1.AddDate(0, 0, 2)
	txns := []domain.Transaction{
		*domain.NewTransaction("l", d1, "").AddEntry(dec("1"), "a").AddEntry(dec("-1"), "a:b"),
		*domain.NewTransaction("l", d2, "").AddEntry(dec("2"), "a").AddEntry(dec("-2"), "c"),
		*domain.NewTransaction("l", d3, "").AddEntry(dec("4"), "a").AddEntry(dec("-4"), "c"),
	}

	assert.True(t, dec("7").Equal(domain.BalanceOf(txns, "a", domain.DateRange{})))
	assert.True(t, dec("-1").Equal(domain.BalanceOf(txns, "a:b", domain.DateRange{})), "exact match only")
	assert.True(t, dec("6").Equal(domain.BalanceOf(txns, "a", domain.DateRange{From: &d2})))
	assert.True(t, dec("3").Equal(domain.BalanceOf(txns, "a", domain.UpTo(d2))), "bounds are inclusive")
	assert.True(t, dec("2").Equal(domain.BalanceOf(txns, "a", domain.DateRange{From: &d2, To: &d2})))
	assert.True(t, domain.BalanceOf(nil, "a", domain.DateRange{}).IsZero())
	assert.True(t, domain.BalanceOf(txns, "z", domain.DateRange{}).IsZero())
}
