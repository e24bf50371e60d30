package services

import (
	"context"

	"github.com/duasfl8r/vestat/internal/core/domain"
	"github.com/duasfl8r/vestat/internal/dto"
	"github.com/duasfl8r/vestat/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// LedgerReaderSvc defines read operations on a ledger
type LedgerReaderSvc interface {
	// GetLedgerByName returns apperrors.ErrNotFound for an unknown ledger.
	GetLedgerByName(ctx context.Context, name string) (*domain.Ledger, error)

	// Balance sums entries whose account path equals accountPath exactly, over an inclusive date range.
	Balance(ctx context.Context, ledgerName string, accountPath string, r domain.DateRange) (decimal.Decimal, error)

	// AccountTree digests the ledger's transactions inside r into a hierarchical tree.
	AccountTree(ctx context.Context, ledgerName string, r domain.DateRange) (*accounting.AccountTree, error)

	// SubtreeTotal sums accountPath and every account below it.
	SubtreeTotal(ctx context.Context, ledgerName string, accountPath string, r domain.DateRange) (decimal.Decimal, error)
}

// LedgerWriterSvc defines write operations on ledgers
type LedgerWriterSvc interface {
	// GetOrCreateLedger returns the named ledger, creating it on first use.
	GetOrCreateLedger(ctx context.Context, name string) (*domain.Ledger, error)
}

// TransactionReaderSvc defines read operations for ledger transactions
type TransactionReaderSvc interface {
	GetTransaction(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves a page of a ledger's transactions, newest first.
	ListTransactions(ctx context.Context, ledgerName string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error)
}

// TransactionWriterSvc defines write operations for ledger transactions
type TransactionWriterSvc interface {
	// CreateTransaction validates and persists a transaction atomically.
	// Unbalanced entries or an empty account path are rejected with a validation error.
	CreateTransaction(ctx context.Context, ledgerName string, req dto.CreateTransactionRequest, creatorUserID string) (*domain.Transaction, error)

	// DeleteTransaction removes a transaction and its entries.
	// A transaction owned by a sale's tip accrual cannot be deleted directly.
	DeleteTransaction(ctx context.Context, transactionID string, userID string) error
}

// LedgerSvcFacade combines all ledger-related service interfaces
type LedgerSvcFacade interface {
	LedgerReaderSvc
	LedgerWriterSvc
	TransactionReaderSvc
	TransactionWriterSvc
}
