package pgsql

import (
	"context"

	"github.com/duasfl8r/vestat/internal/core/domain"
	portsrepo "github.com/duasfl8r/vestat/internal/core/ports/repositories"
	"github.com/duasfl8r/vestat/internal/models"
	"github.com/duasfl8r/vestat/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxPayoutRepository struct {
	BaseRepository
}

// newPgxPayoutRepository creates a new repository for expense and bank movement records.
func newPgxPayoutRepository(pool *pgxpool.Pool) portsrepo.PayoutRepositoryFacade {
	return &PgxPayoutRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PayoutRepositoryFacade = (*PgxPayoutRepository)(nil)

func (r *PgxPayoutRepository) SavePayout(ctx context.Context, payout domain.Payout) error {
	m := mapping.ToModelPayout(payout)
	query := `
		INSERT INTO payouts (
			payout_id, source, category, amount, payout_date, description,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.querier(ctx).Exec(ctx, query,
		m.PayoutID,
		m.Source,
		m.Category,
		m.Amount,
		m.PayoutDate,
		m.Description,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return mapPgError(err, "failed to save payout %s", m.PayoutID)
	}
	return nil
}

func (r *PgxPayoutRepository) SumPayouts(ctx context.Context, category string, dr domain.DateRange) (decimal.Decimal, error) {
	from, to := rangeParams(dr)
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM payouts
		WHERE category = $1
		  AND ($2::date IS NULL OR payout_date >= $2::date)
		  AND ($3::date IS NULL OR payout_date <= $3::date);
	`
	var sum decimal.Decimal
	if err := r.querier(ctx).QueryRow(ctx, query, category, from, to).Scan(&sum); err != nil {
		return decimal.Zero, mapPgError(err, "failed to sum payouts in category %q", category)
	}
	return sum, nil
}

func (r *PgxPayoutRepository) ListPayouts(ctx context.Context, category string, dr domain.DateRange) ([]domain.Payout, error) {
	from, to := rangeParams(dr)
	query := `
		SELECT payout_id, source, category, amount, payout_date, description,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM payouts
		WHERE category = $1
		  AND ($2::date IS NULL OR payout_date >= $2::date)
		  AND ($3::date IS NULL OR payout_date <= $3::date)
		ORDER BY payout_date ASC, created_at ASC;
	`
	rows, err := r.querier(ctx).Query(ctx, query, category, from, to)
	if err != nil {
		return nil, mapPgError(err, "failed to list payouts in category %q", category)
	}
	defer rows.Close()

	payouts := make([]domain.Payout, 0)
	for rows.Next() {
		var m models.Payout
		err := rows.Scan(
			&m.PayoutID,
			&m.Source,
			&m.Category,
			&m.Amount,
			&m.PayoutDate,
			&m.Description,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if err != nil {
			return nil, mapPgError(err, "failed to scan payout")
		}
		payouts = append(payouts, mapping.ToDomainPayout(m))
	}
	if err := rows.Err(); err != nil {
		return nil, mapPgError(err, "failed to list payouts")
	}
	return payouts, nil
}
