package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/duasfl8r/vestat/internal/apperrors"
	"github.com/duasfl8r/vestat/internal/core/domain"
	portsrepo "github.com/duasfl8r/vestat/internal/core/ports/repositories"
	"github.com/duasfl8r/vestat/internal/utils/pagination"
	"github.com/shopspring/decimal"
)

type transactionRepository struct {
	store *Store
}

var _ portsrepo.TransactionRepositoryFacade = (*transactionRepository)(nil)

func (r *transactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	return r.store.with(ctx, func(st *state) error {
		if _, ok := st.ledgers[txn.LedgerID]; !ok {
			return fmt.Errorf("ledger %s: %w", txn.LedgerID, apperrors.ErrNotFound)
		}
		if _, ok := st.transactions[txn.TransactionID]; ok {
			return fmt.Errorf("transaction %s: %w", txn.TransactionID, apperrors.ErrDuplicate)
		}
		st.transactions[txn.TransactionID] = copyTransaction(txn)
		st.nextSeq++
		st.seq[txn.TransactionID] = st.nextSeq
		return nil
	})
}

func (r *transactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	return r.store.with(ctx, func(st *state) error {
		for _, s := range st.sales {
			if s.TipTransactionID != nil && *s.TipTransactionID == transactionID {
				return fmt.Errorf("transaction %s is referenced by sale %s: %w", transactionID, s.SaleID, apperrors.ErrConflict)
			}
		}
		delete(st.transactions, transactionID)
		delete(st.seq, transactionID)
		return nil
	})
}

func (r *transactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	var found *domain.Transaction
	_ = r.store.with(ctx, func(st *state) error {
		if t, ok := st.transactions[transactionID]; ok {
			c := copyTransaction(t)
			found = &c
		}
		return nil
	})
	if found == nil {
		return nil, fmt.Errorf("transaction %s: %w", transactionID, apperrors.ErrNotFound)
	}
	return found, nil
}

func (r *transactionRepository) ListLedgerTransactions(ctx context.Context, ledgerID string, dr domain.DateRange) ([]domain.Transaction, error) {
	var out []domain.Transaction
	err := r.store.with(ctx, func(st *state) error {
		out = st.ledgerTransactions(ledgerID, dr)
		return nil
	})
	return out, err
}

func (r *transactionRepository) ListTransactionsPage(ctx context.Context, ledgerID string, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	limit = pagination.NormalizeLimit(limit)

	var cursor *pagination.Cursor
	if nextToken != nil && *nextToken != "" {
		c, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		cursor = &c
	}

	var all []domain.Transaction
	_ = r.store.with(ctx, func(st *state) error {
		all = st.ledgerTransactions(ledgerID, domain.DateRange{})
		return nil
	})

	// newest first: reverse of (date, created_at, id) ascending
	sort.SliceStable(all, func(i, j int) bool {
		a, b := all[i], all[j]
		if !a.Date.Equal(b.Date) {
			return a.Date.After(b.Date)
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.TransactionID > b.TransactionID
	})

	page := make([]domain.Transaction, 0, limit)
	hasMore := false
	for _, t := range all {
		if cursor != nil && !cursor.Before(t.Date, t.CreatedAt, t.TransactionID) {
			continue
		}
		if len(page) == limit {
			hasMore = true
			break
		}
		page = append(page, t)
	}

	var next *string
	if hasMore {
		last := page[len(page)-1]
		token := pagination.EncodeToken(last.Date, last.CreatedAt, last.TransactionID)
		next = &token
	}
	return page, next, nil
}

func (r *transactionRepository) SumAccount(ctx context.Context, ledgerID string, accountPath string, dr domain.DateRange) (decimal.Decimal, error) {
	sum := decimal.Zero
	err := r.store.with(ctx, func(st *state) error {
		sum = domain.BalanceOf(st.ledgerTransactions(ledgerID, dr), accountPath, domain.DateRange{})
		return nil
	})
	return sum, err
}

// ledgerTransactions returns copies ordered by date, creation time and insertion order.
func (st *state) ledgerTransactions(ledgerID string, dr domain.DateRange) []domain.Transaction {
	out := make([]domain.Transaction, 0)
	for _, t := range st.transactions {
		if t.LedgerID == ledgerID && dr.Contains(t.Date) {
			out = append(out, copyTransaction(t))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if !a.Date.Equal(b.Date) {
			return a.Date.Before(b.Date)
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return st.seq[a.TransactionID] < st.seq[b.TransactionID]
	})
	return out
}
