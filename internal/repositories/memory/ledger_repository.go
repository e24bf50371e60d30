package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/duasfl8r/vestat/internal/apperrors"
	"github.com/duasfl8r/vestat/internal/core/domain"
	portsrepo "github.com/duasfl8r/vestat/internal/core/ports/repositories"
	"github.com/google/uuid"
)

type ledgerRepository struct {
	store *Store
}

var _ portsrepo.LedgerRepositoryFacade = (*ledgerRepository)(nil)

func (r *ledgerRepository) FindLedgerByName(ctx context.Context, name string) (*domain.Ledger, error) {
	var found *domain.Ledger
	err := r.store.with(ctx, func(st *state) error {
		found = st.ledgerByName(name)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, fmt.Errorf("ledger %q: %w", name, apperrors.ErrNotFound)
	}
	return found, nil
}

func (r *ledgerRepository) FindLedgerByID(ctx context.Context, ledgerID string) (*domain.Ledger, error) {
	var found *domain.Ledger
	_ = r.store.with(ctx, func(st *state) error {
		if l, ok := st.ledgers[ledgerID]; ok {
			found = &l
		}
		return nil
	})
	if found == nil {
		return nil, fmt.Errorf("ledger %s: %w", ledgerID, apperrors.ErrNotFound)
	}
	return found, nil
}

func (r *ledgerRepository) GetOrCreateLedger(ctx context.Context, name string, now time.Time) (*domain.Ledger, error) {
	var ledger *domain.Ledger
	err := r.store.with(ctx, func(st *state) error {
		if existing := st.ledgerByName(name); existing != nil {
			ledger = existing
			return nil
		}
		created := domain.Ledger{LedgerID: uuid.NewString(), Name: name, CreatedAt: now}
		st.ledgers[created.LedgerID] = created
		ledger = &created
		return nil
	})
	return ledger, err
}

func (st *state) ledgerByName(name string) *domain.Ledger {
	for _, l := range st.ledgers {
		if l.Name == name {
			found := l
			return &found
		}
	}
	return nil
}
