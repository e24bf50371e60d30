package repositories

import (
	"context"
	"time"

	"github.com/duasfl8r/vestat/internal/core/domain"
)

// LedgerReader defines read operations for ledgers
type LedgerReader interface {
	// FindLedgerByName returns apperrors.ErrNotFound if no ledger has that name.
	FindLedgerByName(ctx context.Context, name string) (*domain.Ledger, error)
	FindLedgerByID(ctx context.Context, ledgerID string) (*domain.Ledger, error)
}

// LedgerWriter defines write operations for ledgers
type LedgerWriter interface {
	// GetOrCreateLedger returns the ledger with the given name, inserting it first if absent.
	GetOrCreateLedger(ctx context.Context, name string, now time.Time) (*domain.Ledger, error)
}

// LedgerRepositoryFacade combines all ledger repository interfaces
type LedgerRepositoryFacade interface {
	LedgerReader
	LedgerWriter
}
