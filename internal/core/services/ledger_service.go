package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/duasfl8r/vestat/internal/apperrors"
	"github.com/duasfl8r/vestat/internal/core/domain"
	portsrepo "github.com/duasfl8r/vestat/internal/core/ports/repositories"
	portssvc "github.com/duasfl8r/vestat/internal/core/ports/services"
	"github.com/duasfl8r/vestat/internal/dto"
	"github.com/duasfl8r/vestat/internal/platform/metrics"
	"github.com/duasfl8r/vestat/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

type ledgerService struct {
	BaseService
	ledgerRepo portsrepo.LedgerRepositoryFacade
	txnRepo    portsrepo.TransactionRepositoryFacade
	saleRepo   portsrepo.SaleReader
	txManager  portsrepo.TxManager
}

// NewLedgerService creates a new ledger service.
func NewLedgerService(repos portsrepo.RepositoryProvider, options ...ServiceOption) portssvc.LedgerSvcFacade {
	return &ledgerService{
		BaseService: newBaseService(options...),
		ledgerRepo:  repos.LedgerRepo,
		txnRepo:     repos.TransactionRepo,
		saleRepo:    repos.SaleRepo,
		txManager:   repos.TxManager,
	}
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

func (s *ledgerService) GetLedgerByName(ctx context.Context, name string) (*domain.Ledger, error) {
	ledger, err := s.ledgerRepo.FindLedgerByName(ctx, name)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find ledger", slog.String("ledger", name))
		}
		return nil, err
	}
	return ledger, nil
}

func (s *ledgerService) GetOrCreateLedger(ctx context.Context, name string) (*domain.Ledger, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: ledger name is required", apperrors.ErrValidation)
	}
	ledger, err := s.ledgerRepo.GetOrCreateLedger(ctx, name, s.Now())
	if err != nil {
		s.LogError(ctx, err, "Failed to get or create ledger", slog.String("ledger", name))
		return nil, fmt.Errorf("failed to get or create ledger %q: %w", name, err)
	}
	return ledger, nil
}

func (s *ledgerService) Balance(ctx context.Context, ledgerName string, accountPath string, r domain.DateRange) (decimal.Decimal, error) {
	if err := domain.ValidateAccountPath(accountPath); err != nil {
		return decimal.Zero, err
	}
	ledger, err := s.GetLedgerByName(ctx, ledgerName)
	if err != nil {
		return decimal.Zero, err
	}
	balance, err := s.txnRepo.SumAccount(ctx, ledger.LedgerID, accountPath, r)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute balance", slog.String("account", accountPath))
		return decimal.Zero, err
	}
	return balance, nil
}

func (s *ledgerService) AccountTree(ctx context.Context, ledgerName string, r domain.DateRange) (*accounting.AccountTree, error) {
	ledger, err := s.GetLedgerByName(ctx, ledgerName)
	if err != nil {
		return nil, err
	}
	tree, err := accounting.DigestLedger(ctx, s.txnRepo, ledger.LedgerID, r)
	if err != nil {
		s.LogError(ctx, err, "Failed to digest ledger", slog.String("ledger", ledgerName))
		return nil, err
	}
	return tree, nil
}

func (s *ledgerService) SubtreeTotal(ctx context.Context, ledgerName string, accountPath string, r domain.DateRange) (decimal.Decimal, error) {
	if err := domain.ValidateAccountPath(accountPath); err != nil {
		return decimal.Zero, err
	}
	tree, err := s.AccountTree(ctx, ledgerName, r)
	if err != nil {
		return decimal.Zero, err
	}
	node := tree.Node(accountPath)
	if node == nil {
		return decimal.Zero, nil
	}
	return node.Total(), nil
}

func (s *ledgerService) GetTransaction(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	return s.txnRepo.FindTransactionByID(ctx, transactionID)
}

func (s *ledgerService) ListTransactions(ctx context.Context, ledgerName string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	ledger, err := s.GetLedgerByName(ctx, ledgerName)
	if err != nil {
		return nil, err
	}
	txns, next, err := s.txnRepo.ListTransactionsPage(ctx, ledger.LedgerID, params.Limit, params.NextToken)
	if err != nil {
		if !errors.Is(err, apperrors.ErrValidation) {
			s.LogError(ctx, err, "Failed to list transactions", slog.String("ledger", ledgerName))
		}
		return nil, err
	}
	return &dto.ListTransactionsResponse{
		Transactions: dto.ToTransactionResponses(txns),
		NextToken:    next,
	}, nil
}

// CreateTransaction validates the request entirely before anything is written.
func (s *ledgerService) CreateTransaction(ctx context.Context, ledgerName string, req dto.CreateTransactionRequest, creatorUserID string) (*domain.Transaction, error) {
	date, err := dto.ParseDate(req.Date)
	if err != nil {
		return nil, err
	}

	ledger, err := s.GetLedgerByName(ctx, ledgerName)
	if err != nil {
		return nil, err
	}

	txn := domain.NewTransaction(ledger.LedgerID, date, req.Description)
	for _, e := range req.Entries {
		txn.AddEntry(e.Amount, e.Account)
	}
	txn.AuditFields = domain.NewAuditFields(creatorUserID, s.Now())

	if err := txn.Validate(); err != nil {
		metrics.TransactionsRejected.WithLabelValues(rejectReason(err)).Inc()
		s.LogDebug(ctx, "Rejected transaction", slog.String("error", err.Error()))
		return nil, err
	}

	err = s.txManager.RunInTx(ctx, func(ctx context.Context) error {
		return s.txnRepo.SaveTransaction(ctx, *txn)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to save transaction", slog.String("transaction_id", txn.TransactionID))
		return nil, err
	}

	metrics.TransactionsCreated.Inc()
	s.LogInfo(ctx, "Transaction created",
		slog.String("transaction_id", txn.TransactionID),
		slog.Int("entries", len(txn.Entries)))
	s.publish(ctx, transactionEvent(domain.EventTransactionCreated, *txn, s.Now()))
	return txn, nil
}

func (s *ledgerService) DeleteTransaction(ctx context.Context, transactionID string, userID string) error {
	var deleted *domain.Transaction
	err := s.txManager.RunInTx(ctx, func(ctx context.Context) error {
		txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
		if err != nil {
			return err
		}
		sale, err := s.saleRepo.FindSaleByTipTransactionID(ctx, transactionID)
		if err == nil {
			return fmt.Errorf("%w: transaction %s is the tip accrual of sale %s; reopen or delete the sale instead",
				apperrors.ErrConflict, transactionID, sale.SaleID)
		}
		if !errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		if err := s.txnRepo.DeleteTransaction(ctx, transactionID); err != nil {
			return err
		}
		deleted = txn
		return nil
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrConflict) {
			s.LogError(ctx, err, "Failed to delete transaction", slog.String("transaction_id", transactionID))
		}
		return err
	}

	metrics.TransactionsDeleted.Inc()
	s.LogInfo(ctx, "Transaction deleted", slog.String("transaction_id", transactionID), slog.String("user_id", userID))
	s.publish(ctx, transactionEvent(domain.EventTransactionDeleted, *deleted, s.Now()))
	return nil
}

func rejectReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrUnbalancedTransaction):
		return metrics.ReasonUnbalanced
	case errors.Is(err, domain.ErrEmptyAccountPath), errors.Is(err, domain.ErrInvalidAccountPath):
		return metrics.ReasonAccountPath
	default:
		return metrics.ReasonOther
	}
}

func transactionEvent(eventType domain.LedgerEventType, txn domain.Transaction, now time.Time) domain.LedgerEvent {
	return domain.LedgerEvent{
		Type:          eventType,
		LedgerID:      txn.LedgerID,
		TransactionID: txn.TransactionID,
		Date:          txn.Date.Format(domain.DateLayout),
		OccurredAt:    now,
	}
}
