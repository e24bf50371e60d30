package repositories

import (
	"context"

	"github.com/duasfl8r/vestat/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransactionReader defines read operations for ledger transactions and their entries
type TransactionReader interface {
	// FindTransactionByID retrieves a transaction with its entries in insertion order.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListLedgerTransactions returns every transaction of a ledger inside r,
	// oldest date first and then by creation time.
	ListLedgerTransactions(ctx context.Context, ledgerID string, r domain.DateRange) ([]domain.Transaction, error)

	// ListTransactionsPage returns a page of transactions, newest date first, using token-based pagination.
	ListTransactionsPage(ctx context.Context, ledgerID string, limit int, nextToken *string) ([]domain.Transaction, *string, error)

	// SumAccount adds the amounts of entries whose account path equals accountPath exactly,
	// over transactions dated inside r.
	SumAccount(ctx context.Context, ledgerID string, accountPath string, r domain.DateRange) (decimal.Decimal, error)
}

// TransactionWriter defines write operations for ledger transactions
type TransactionWriter interface {
	// SaveTransaction persists a transaction and all of its entries.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error

	// DeleteTransaction removes a transaction and its entries. Deleting a missing transaction is not an error.
	DeleteTransaction(ctx context.Context, transactionID string) error
}

// TransactionRepositoryFacade combines all transaction repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
