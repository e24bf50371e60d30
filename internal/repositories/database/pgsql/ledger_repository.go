package pgsql

import (
	"context"
	"time"

	"github.com/duasfl8r/vestat/internal/core/domain"
	portsrepo "github.com/duasfl8r/vestat/internal/core/ports/repositories"
	"github.com/duasfl8r/vestat/internal/models"
	"github.com/duasfl8r/vestat/internal/utils/mapping"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxLedgerRepository struct {
	BaseRepository
}

// newPgxLedgerRepository creates a new repository for ledger data.
func newPgxLedgerRepository(pool *pgxpool.Pool) portsrepo.LedgerRepositoryFacade {
	return &PgxLedgerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.LedgerRepositoryFacade = (*PgxLedgerRepository)(nil)

const selectLedger = `SELECT ledger_id, name, created_at FROM ledgers`

func (r *PgxLedgerRepository) FindLedgerByName(ctx context.Context, name string) (*domain.Ledger, error) {
	var m models.Ledger
	err := r.querier(ctx).QueryRow(ctx, selectLedger+` WHERE name = $1;`, name).
		Scan(&m.LedgerID, &m.Name, &m.CreatedAt)
	if err != nil {
		return nil, mapPgError(err, "ledger %q", name)
	}
	l := mapping.ToDomainLedger(m)
	return &l, nil
}

func (r *PgxLedgerRepository) FindLedgerByID(ctx context.Context, ledgerID string) (*domain.Ledger, error) {
	var m models.Ledger
	err := r.querier(ctx).QueryRow(ctx, selectLedger+` WHERE ledger_id = $1;`, ledgerID).
		Scan(&m.LedgerID, &m.Name, &m.CreatedAt)
	if err != nil {
		return nil, mapPgError(err, "ledger %s", ledgerID)
	}
	l := mapping.ToDomainLedger(m)
	return &l, nil
}

// GetOrCreateLedger inserts the ledger unless one with that name exists, then reads it back.
// Concurrent callers all end up with the same row.
func (r *PgxLedgerRepository) GetOrCreateLedger(ctx context.Context, name string, now time.Time) (*domain.Ledger, error) {
	query := `
		INSERT INTO ledgers (ledger_id, name, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (name) DO NOTHING;
	`
	if _, err := r.querier(ctx).Exec(ctx, query, uuid.NewString(), name, now); err != nil {
		return nil, mapPgError(err, "failed to create ledger %q", name)
	}
	return r.FindLedgerByName(ctx, name)
}
