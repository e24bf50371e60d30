package pgsql

import (
	portsrepo "github.com/duasfl8r/vestat/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		LedgerRepo:      newPgxLedgerRepository(dbPool),
		TransactionRepo: newPgxTransactionRepository(dbPool),
		SaleRepo:        newPgxSaleRepository(dbPool),
		PayoutRepo:      newPgxPayoutRepository(dbPool),
		TxManager:       &BaseRepository{Pool: dbPool},
	}
}
