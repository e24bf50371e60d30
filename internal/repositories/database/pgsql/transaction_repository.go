package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/duasfl8r/vestat/internal/apperrors"
	"github.com/duasfl8r/vestat/internal/core/domain"
	portsrepo "github.com/duasfl8r/vestat/internal/core/ports/repositories"
	"github.com/duasfl8r/vestat/internal/models"
	"github.com/duasfl8r/vestat/internal/utils/mapping"
	"github.com/duasfl8r/vestat/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for ledger transactions and entries.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

const selectTransaction = `
	SELECT transaction_id, ledger_id, transaction_date, description,
	       created_at, created_by, last_updated_at, last_updated_by
	FROM ledger_transactions`

// SaveTransaction inserts the header and every entry in one database transaction.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	header := mapping.ToModelLedgerTransaction(txn)
	entries := mapping.ToModelLedgerEntries(txn)

	return r.RunInTx(ctx, func(ctx context.Context) error {
		q := r.querier(ctx)
		query := `
			INSERT INTO ledger_transactions (
				transaction_id, ledger_id, transaction_date, description,
				created_at, created_by, last_updated_at, last_updated_by
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
		`
		_, err := q.Exec(ctx, query,
			header.TransactionID,
			header.LedgerID,
			header.TransactionDate,
			header.Description,
			header.CreatedAt,
			header.CreatedBy,
			header.LastUpdatedAt,
			header.LastUpdatedBy,
		)
		if err != nil {
			if isForeignKeyViolation(err) {
				return fmt.Errorf("ledger %s: %w", header.LedgerID, apperrors.ErrNotFound)
			}
			return mapPgError(err, "failed to save transaction %s", header.TransactionID)
		}

		if len(entries) == 0 {
			return nil
		}

		batch := &pgx.Batch{}
		entryQuery := `
			INSERT INTO ledger_entries (entry_id, transaction_id, position, amount, account_path)
			VALUES ($1, $2, $3, $4, $5);
		`
		for _, e := range entries {
			batch.Queue(entryQuery, e.EntryID, e.TransactionID, e.Position, e.Amount, e.AccountPath)
		}
		br := q.SendBatch(ctx, batch)
		for _, e := range entries {
			if _, err := br.Exec(); err != nil {
				_ = br.Close()
				return mapPgError(err, "failed to save entry %d of transaction %s", e.Position, header.TransactionID)
			}
		}
		if err := br.Close(); err != nil {
			return mapPgError(err, "failed to save entries of transaction %s", header.TransactionID)
		}
		return nil
	})
}

// DeleteTransaction removes the transaction; entries go with it through ON DELETE CASCADE.
// A transaction still referenced by a sale is rejected with apperrors.ErrConflict.
func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	_, err := r.querier(ctx).Exec(ctx, `DELETE FROM ledger_transactions WHERE transaction_id = $1;`, transactionID)
	if err != nil {
		mapped := mapPgError(err, "failed to delete transaction %s", transactionID)
		if errors.Is(mapped, apperrors.ErrNotFound) {
			return nil
		}
		return mapped
	}
	return nil
}

func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	q := r.querier(ctx)
	row := q.QueryRow(ctx, selectTransaction+` WHERE transaction_id = $1;`, transactionID)
	header, err := scanTransactionHeader(row)
	if err != nil {
		return nil, mapPgError(err, "transaction %s", transactionID)
	}

	txns, err := r.attachEntries(ctx, q, []models.LedgerTransaction{header})
	if err != nil {
		return nil, err
	}
	return &txns[0], nil
}

func (r *PgxTransactionRepository) ListLedgerTransactions(ctx context.Context, ledgerID string, dr domain.DateRange) ([]domain.Transaction, error) {
	from, to := rangeParams(dr)
	query := selectTransaction + `
		WHERE ledger_id = $1
		  AND ($2::date IS NULL OR transaction_date >= $2::date)
		  AND ($3::date IS NULL OR transaction_date <= $3::date)
		ORDER BY transaction_date ASC, created_at ASC, seq ASC;
	`
	q := r.querier(ctx)
	headers, err := queryTransactionHeaders(ctx, q, query, ledgerID, from, to)
	if err != nil {
		return nil, mapPgError(err, "failed to list transactions of ledger %s", ledgerID)
	}
	return r.attachEntries(ctx, q, headers)
}

// ListTransactionsPage uses keyset pagination over (transaction_date, created_at, transaction_id), newest first.
// One extra row is fetched to learn whether another page exists.
func (r *PgxTransactionRepository) ListTransactionsPage(ctx context.Context, ledgerID string, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	limit = pagination.NormalizeLimit(limit)

	var (
		cursorDate      *time.Time
		cursorCreatedAt *time.Time
		cursorID        *string
	)
	if nextToken != nil && *nextToken != "" {
		c, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		cursorDate, cursorCreatedAt, cursorID = &c.Date, &c.CreatedAt, &c.ID
	}

	query := selectTransaction + `
		WHERE ledger_id = $1
		  AND ($2::date IS NULL
		       OR (transaction_date, created_at, transaction_id) < ($2::date, $3::timestamptz, $4::uuid))
		ORDER BY transaction_date DESC, created_at DESC, transaction_id DESC
		LIMIT $5;
	`
	q := r.querier(ctx)
	headers, err := queryTransactionHeaders(ctx, q, query, ledgerID, cursorDate, cursorCreatedAt, cursorID, limit+1)
	if err != nil {
		return nil, nil, mapPgError(err, "failed to list transactions of ledger %s", ledgerID)
	}

	var next *string
	if len(headers) > limit {
		headers = headers[:limit]
		last := headers[limit-1]
		token := pagination.EncodeToken(last.TransactionDate, last.CreatedAt, last.TransactionID)
		next = &token
	}

	txns, err := r.attachEntries(ctx, q, headers)
	if err != nil {
		return nil, nil, err
	}
	return txns, next, nil
}

// SumAccount is an exact-match sum: entries of descendant accounts are not included.
func (r *PgxTransactionRepository) SumAccount(ctx context.Context, ledgerID string, accountPath string, dr domain.DateRange) (decimal.Decimal, error) {
	from, to := rangeParams(dr)
	query := `
		SELECT COALESCE(SUM(e.amount), 0)
		FROM ledger_entries e
		JOIN ledger_transactions t ON t.transaction_id = e.transaction_id
		WHERE t.ledger_id = $1
		  AND e.account_path = $2
		  AND ($3::date IS NULL OR t.transaction_date >= $3::date)
		  AND ($4::date IS NULL OR t.transaction_date <= $4::date);
	`
	var sum decimal.Decimal
	if err := r.querier(ctx).QueryRow(ctx, query, ledgerID, accountPath, from, to).Scan(&sum); err != nil {
		return decimal.Zero, mapPgError(err, "failed to sum account %q", accountPath)
	}
	return sum, nil
}

func scanTransactionHeader(row pgx.Row) (models.LedgerTransaction, error) {
	var m models.LedgerTransaction
	err := row.Scan(
		&m.TransactionID,
		&m.LedgerID,
		&m.TransactionDate,
		&m.Description,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func queryTransactionHeaders(ctx context.Context, q Querier, query string, args ...any) ([]models.LedgerTransaction, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	headers := make([]models.LedgerTransaction, 0)
	for rows.Next() {
		m, err := scanTransactionHeader(rows)
		if err != nil {
			return nil, err
		}
		headers = append(headers, m)
	}
	return headers, rows.Err()
}

// attachEntries loads the entries of all headers in one query and assembles domain transactions
// in the order of headers.
func (r *PgxTransactionRepository) attachEntries(ctx context.Context, q Querier, headers []models.LedgerTransaction) ([]domain.Transaction, error) {
	out := make([]domain.Transaction, 0, len(headers))
	if len(headers) == 0 {
		return out, nil
	}

	ids := make([]string, len(headers))
	for i, h := range headers {
		ids[i] = h.TransactionID
	}

	query := `
		SELECT entry_id, transaction_id, position, amount, account_path
		FROM ledger_entries
		WHERE transaction_id = ANY($1::uuid[])
		ORDER BY transaction_id, position;
	`
	rows, err := q.Query(ctx, query, ids)
	if err != nil {
		return nil, mapPgError(err, "failed to load entries")
	}
	defer rows.Close()

	byTxn := make(map[string][]models.LedgerEntry, len(headers))
	for rows.Next() {
		var e models.LedgerEntry
		if err := rows.Scan(&e.EntryID, &e.TransactionID, &e.Position, &e.Amount, &e.AccountPath); err != nil {
			return nil, mapPgError(err, "failed to scan entry")
		}
		byTxn[e.TransactionID] = append(byTxn[e.TransactionID], e)
	}
	if err := rows.Err(); err != nil {
		return nil, mapPgError(err, "failed to load entries")
	}

	for _, h := range headers {
		out = append(out, mapping.ToDomainTransaction(h, byTxn[h.TransactionID]))
	}
	return out, nil
}
