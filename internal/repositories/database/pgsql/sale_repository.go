package pgsql

import (
	"context"
	"fmt"

	"github.com/duasfl8r/vestat/internal/apperrors"
	"github.com/duasfl8r/vestat/internal/core/domain"
	portsrepo "github.com/duasfl8r/vestat/internal/core/ports/repositories"
	"github.com/duasfl8r/vestat/internal/models"
	"github.com/duasfl8r/vestat/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxSaleRepository struct {
	BaseRepository
}

// newPgxSaleRepository creates a new repository for sales.
func newPgxSaleRepository(pool *pgxpool.Pool) portsrepo.SaleRepositoryFacade {
	return &PgxSaleRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.SaleRepositoryFacade = (*PgxSaleRepository)(nil)

const selectSale = `
	SELECT sale_id, sale_date, tip_amount, closed, tip_transaction_id,
	       created_at, created_by, last_updated_at, last_updated_by
	FROM sales`

func scanSale(row pgx.Row) (*domain.Sale, error) {
	var m models.Sale
	err := row.Scan(
		&m.SaleID,
		&m.SaleDate,
		&m.TipAmount,
		&m.Closed,
		&m.TipTransactionID,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	s := mapping.ToDomainSale(m)
	return &s, nil
}

func (r *PgxSaleRepository) SaveSale(ctx context.Context, sale domain.Sale) error {
	m := mapping.ToModelSale(sale)
	query := `
		INSERT INTO sales (
			sale_id, sale_date, tip_amount, closed, tip_transaction_id,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.querier(ctx).Exec(ctx, query,
		m.SaleID,
		m.SaleDate,
		m.TipAmount,
		m.Closed,
		m.TipTransactionID,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return mapPgError(err, "failed to save sale %s", m.SaleID)
	}
	return nil
}

func (r *PgxSaleRepository) FindSaleByID(ctx context.Context, saleID string) (*domain.Sale, error) {
	s, err := scanSale(r.querier(ctx).QueryRow(ctx, selectSale+` WHERE sale_id = $1;`, saleID))
	if err != nil {
		return nil, mapPgError(err, "sale %s", saleID)
	}
	return s, nil
}

// FindSaleByIDForUpdate takes a row lock held until the surrounding transaction ends.
func (r *PgxSaleRepository) FindSaleByIDForUpdate(ctx context.Context, saleID string) (*domain.Sale, error) {
	s, err := scanSale(r.querier(ctx).QueryRow(ctx, selectSale+` WHERE sale_id = $1 FOR UPDATE;`, saleID))
	if err != nil {
		return nil, mapPgError(err, "sale %s", saleID)
	}
	return s, nil
}

func (r *PgxSaleRepository) FindSaleByTipTransactionID(ctx context.Context, transactionID string) (*domain.Sale, error) {
	s, err := scanSale(r.querier(ctx).QueryRow(ctx, selectSale+` WHERE tip_transaction_id = $1;`, transactionID))
	if err != nil {
		return nil, mapPgError(err, "sale for transaction %s", transactionID)
	}
	return s, nil
}

func (r *PgxSaleRepository) UpdateSale(ctx context.Context, sale domain.Sale) error {
	m := mapping.ToModelSale(sale)
	query := `
		UPDATE sales
		SET closed = $2, tip_transaction_id = $3, last_updated_at = $4, last_updated_by = $5
		WHERE sale_id = $1;
	`
	tag, err := r.querier(ctx).Exec(ctx, query, m.SaleID, m.Closed, m.TipTransactionID, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("tip transaction for sale %s: %w", m.SaleID, apperrors.ErrNotFound)
		}
		return mapPgError(err, "failed to update sale %s", m.SaleID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("sale %s: %w", m.SaleID, apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxSaleRepository) DeleteSale(ctx context.Context, saleID string) error {
	tag, err := r.querier(ctx).Exec(ctx, `DELETE FROM sales WHERE sale_id = $1;`, saleID)
	if err != nil {
		return mapPgError(err, "failed to delete sale %s", saleID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("sale %s: %w", saleID, apperrors.ErrNotFound)
	}
	return nil
}
