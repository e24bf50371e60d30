package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/duasfl8r/vestat/internal/apperrors"
	"github.com/duasfl8r/vestat/internal/core/domain"
	"github.com/duasfl8r/vestat/internal/core/ports"
	portsrepo "github.com/duasfl8r/vestat/internal/core/ports/repositories"
	portssvc "github.com/duasfl8r/vestat/internal/core/ports/services"
	"github.com/duasfl8r/vestat/internal/dto"
	"github.com/duasfl8r/vestat/internal/platform/metrics"
	"github.com/shopspring/decimal"
)

// tipService keeps the tip liability in the ledger in step with the sales lifecycle.
// Every transition runs as one unit of work with the sale row held.
type tipService struct {
	BaseService
	ledgerID   string
	split      ports.TipSplitProvider
	txnRepo    portsrepo.TransactionRepositoryFacade
	saleRepo   portsrepo.SaleRepositoryFacade
	payoutRepo portsrepo.PayoutRepositoryFacade
	txManager  portsrepo.TxManager
}

// NewTipService creates the tip accrual service bound to the ledger with ID ledgerID.
func NewTipService(repos portsrepo.RepositoryProvider, split ports.TipSplitProvider, ledgerID string, options ...ServiceOption) portssvc.TipSvcFacade {
	return &tipService{
		BaseService: newBaseService(options...),
		ledgerID:    ledgerID,
		split:       split,
		txnRepo:     repos.TransactionRepo,
		saleRepo:    repos.SaleRepo,
		payoutRepo:  repos.PayoutRepo,
		txManager:   repos.TxManager,
	}
}

var _ portssvc.TipSvcFacade = (*tipService)(nil)

func (s *tipService) CreateSale(ctx context.Context, req dto.CreateSaleRequest, userID string) (*domain.Sale, error) {
	date, err := dto.ParseDate(req.Date)
	if err != nil {
		return nil, err
	}
	sale, err := domain.NewSale(date, req.TipAmount, userID, s.Now())
	if err != nil {
		return nil, err
	}
	if err := s.saleRepo.SaveSale(ctx, *sale); err != nil {
		s.LogError(ctx, err, "Failed to save sale", slog.String("sale_id", sale.SaleID))
		return nil, err
	}
	s.LogInfo(ctx, "Sale created", slog.String("sale_id", sale.SaleID))
	return sale, nil
}

func (s *tipService) GetSale(ctx context.Context, saleID string) (*domain.Sale, error) {
	return s.saleRepo.FindSaleByID(ctx, saleID)
}

// CloseSale is idempotent: an already closed sale is returned unchanged.
// A stale accrual left on an open sale is replaced, never duplicated.
func (s *tipService) CloseSale(ctx context.Context, saleID string, userID string) (*domain.Sale, error) {
	var (
		result  *domain.Sale
		events  []domain.LedgerEvent
		skipped bool
	)
	err := s.txManager.RunInTx(ctx, func(ctx context.Context) error {
		sale, err := s.saleRepo.FindSaleByIDForUpdate(ctx, saleID)
		if err != nil {
			return err
		}
		if sale.Closed {
			result, skipped = sale, true
			return nil
		}

		if sale.HasTipTransaction() {
			ev, err := s.detachAccrual(ctx, sale, userID)
			if err != nil {
				return err
			}
			events = append(events, ev)
		}

		sale.Closed = true
		sale.Touch(userID, s.Now())

		if sale.TipAmount.IsZero() {
			if err := s.saleRepo.UpdateSale(ctx, *sale); err != nil {
				return err
			}
			result, skipped = sale, true
			return nil
		}

		split, err := s.split.TipSplit(ctx)
		if err != nil {
			return err
		}
		owed, err := split.StaffShare(sale.TipAmount)
		if err != nil {
			return err
		}

		txn := domain.NewTipAccrualTransaction(s.ledgerID, sale.Date, owed)
		txn.AuditFields = domain.NewAuditFields(userID, s.Now())
		if err := txn.Validate(); err != nil {
			return err
		}
		if err := s.txnRepo.SaveTransaction(ctx, *txn); err != nil {
			return err
		}

		sale.TipTransactionID = &txn.TransactionID
		if err := s.saleRepo.UpdateSale(ctx, *sale); err != nil {
			return err
		}

		amount := owed
		events = append(events, domain.LedgerEvent{
			Type:          domain.EventTipAccrued,
			LedgerID:      s.ledgerID,
			TransactionID: txn.TransactionID,
			SaleID:        sale.SaleID,
			Date:          sale.Date.Format(domain.DateLayout),
			Amount:        &amount,
			OccurredAt:    s.Now(),
		})
		result = sale
		return nil
	})
	if err != nil {
		s.logTransitionError(ctx, err, "close", saleID)
		return nil, err
	}

	if skipped {
		metrics.TipAccruals.WithLabelValues(metrics.ActionSkipped).Inc()
	} else {
		metrics.TipAccruals.WithLabelValues(metrics.ActionAccrued).Inc()
		s.LogInfo(ctx, "Tip accrued", slog.String("sale_id", saleID), slog.String("transaction_id", *result.TipTransactionID))
	}
	s.publish(ctx, events...)
	return result, nil
}

// ReopenSale is idempotent: an open sale without an accrual is returned unchanged.
func (s *tipService) ReopenSale(ctx context.Context, saleID string, userID string) (*domain.Sale, error) {
	var (
		result *domain.Sale
		events []domain.LedgerEvent
	)
	err := s.txManager.RunInTx(ctx, func(ctx context.Context) error {
		sale, err := s.saleRepo.FindSaleByIDForUpdate(ctx, saleID)
		if err != nil {
			return err
		}
		if !sale.Closed && !sale.HasTipTransaction() {
			result = sale
			return nil
		}

		sale.Closed = false
		sale.Touch(userID, s.Now())
		if sale.HasTipTransaction() {
			ev, err := s.detachAccrual(ctx, sale, userID)
			if err != nil {
				return err
			}
			events = append(events, ev)
		} else if err := s.saleRepo.UpdateSale(ctx, *sale); err != nil {
			return err
		}
		result = sale
		return nil
	})
	if err != nil {
		s.logTransitionError(ctx, err, "reopen", saleID)
		return nil, err
	}

	if len(events) > 0 {
		metrics.TipAccruals.WithLabelValues(metrics.ActionReversed).Inc()
		s.LogInfo(ctx, "Tip accrual reversed", slog.String("sale_id", saleID))
	}
	s.publish(ctx, events...)
	return result, nil
}

// DeleteSale removes the sale and its accrual transaction together.
func (s *tipService) DeleteSale(ctx context.Context, saleID string, userID string) error {
	var events []domain.LedgerEvent
	err := s.txManager.RunInTx(ctx, func(ctx context.Context) error {
		sale, err := s.saleRepo.FindSaleByIDForUpdate(ctx, saleID)
		if err != nil {
			return err
		}
		if sale.HasTipTransaction() {
			sale.Touch(userID, s.Now())
			ev, err := s.detachAccrual(ctx, sale, userID)
			if err != nil {
				return err
			}
			events = append(events, ev)
		}
		return s.saleRepo.DeleteSale(ctx, saleID)
	})
	if err != nil {
		s.logTransitionError(ctx, err, "delete", saleID)
		return err
	}

	if len(events) > 0 {
		metrics.TipAccruals.WithLabelValues(metrics.ActionReversed).Inc()
	}
	s.LogInfo(ctx, "Sale deleted", slog.String("sale_id", saleID))
	s.publish(ctx, events...)
	return nil
}

// detachAccrual clears the sale's reference, stores the sale, then removes the transaction.
// The reference must go first: the transaction cannot be deleted while a sale points at it.
func (s *tipService) detachAccrual(ctx context.Context, sale *domain.Sale, userID string) (domain.LedgerEvent, error) {
	txnID := *sale.TipTransactionID
	sale.TipTransactionID = nil
	if err := s.saleRepo.UpdateSale(ctx, *sale); err != nil {
		return domain.LedgerEvent{}, err
	}
	if err := s.txnRepo.DeleteTransaction(ctx, txnID); err != nil {
		return domain.LedgerEvent{}, fmt.Errorf("failed to delete tip transaction %s: %w", txnID, err)
	}
	s.LogDebug(ctx, "Tip transaction removed", slog.String("transaction_id", txnID), slog.String("user_id", userID))
	return domain.LedgerEvent{
		Type:          domain.EventTipReversed,
		LedgerID:      s.ledgerID,
		TransactionID: txnID,
		SaleID:        sale.SaleID,
		Date:          sale.Date.Format(domain.DateLayout),
		OccurredAt:    s.Now(),
	}, nil
}

func (s *tipService) logTransitionError(ctx context.Context, err error, action, saleID string) {
	if errors.Is(err, apperrors.ErrNotFound) || errors.Is(err, apperrors.ErrValidation) {
		return
	}
	s.LogError(ctx, err, "Tip accrual transition failed", slog.String("action", action), slog.String("sale_id", saleID))
}

func (s *tipService) RecordPayout(ctx context.Context, req dto.CreatePayoutRequest, userID string) (*domain.Payout, error) {
	date, err := dto.ParseDate(req.Date)
	if err != nil {
		return nil, err
	}
	category := req.Category
	if category == "" {
		category = domain.TipPayoutCategory
	}
	payout, err := domain.NewPayout(domain.PayoutSource(req.Source), category, req.Amount, date, req.Description, userID, s.Now())
	if err != nil {
		return nil, err
	}
	if err := s.payoutRepo.SavePayout(ctx, *payout); err != nil {
		s.LogError(ctx, err, "Failed to save payout", slog.String("payout_id", payout.PayoutID))
		return nil, err
	}
	s.LogInfo(ctx, "Payout recorded", slog.String("payout_id", payout.PayoutID), slog.String("source", string(payout.Source)))
	return payout, nil
}

func (s *tipService) ListPayouts(ctx context.Context, r domain.DateRange) ([]domain.Payout, error) {
	return s.payoutRepo.ListPayouts(ctx, domain.TipPayoutCategory, r)
}

// OwedAsOf is tip payouts up to date minus the liability balance up to date.
// Payouts carry negative amounts and the liability a negative balance, so a
// positive result means staff is still owed money.
func (s *tipService) OwedAsOf(ctx context.Context, date time.Time) (decimal.Decimal, error) {
	r := domain.UpTo(date)
	payouts, err := s.payoutRepo.SumPayouts(ctx, domain.TipPayoutCategory, r)
	if err != nil {
		s.LogError(ctx, err, "Failed to sum tip payouts")
		return decimal.Zero, err
	}
	liability, err := s.txnRepo.SumAccount(ctx, s.ledgerID, domain.AccountTipPayable, r)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute tip liability")
		return decimal.Zero, err
	}
	return payouts.Sub(liability), nil
}
