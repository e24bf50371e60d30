package services

import (
	"context"
	"time"

	"github.com/duasfl8r/vestat/internal/core/domain"
	"github.com/duasfl8r/vestat/internal/dto"
	"github.com/shopspring/decimal"
)

// SaleSvc defines operations on the minimal sale record
type SaleSvc interface {
	CreateSale(ctx context.Context, req dto.CreateSaleRequest, userID string) (*domain.Sale, error)
	GetSale(ctx context.Context, saleID string) (*domain.Sale, error)
}

// TipAccrualSvc reacts to sale lifecycle transitions
type TipAccrualSvc interface {
	// CloseSale records the staff share of the tip as a liability. Closing a closed sale is a no-op.
	CloseSale(ctx context.Context, saleID string, userID string) (*domain.Sale, error)

	// ReopenSale removes the accrual transaction. Reopening an open sale is a no-op.
	ReopenSale(ctx context.Context, saleID string, userID string) (*domain.Sale, error)

	// DeleteSale removes the sale together with its accrual transaction.
	DeleteSale(ctx context.Context, saleID string, userID string) error
}

// TipPayoutSvc covers payouts and the amount still owed to staff
type TipPayoutSvc interface {
	RecordPayout(ctx context.Context, req dto.CreatePayoutRequest, userID string) (*domain.Payout, error)
	ListPayouts(ctx context.Context, r domain.DateRange) ([]domain.Payout, error)

	// OwedAsOf returns tip payouts up to date minus the tip liability balance up to date.
	OwedAsOf(ctx context.Context, date time.Time) (decimal.Decimal, error)
}

// TipSvcFacade combines all tip-related service interfaces
type TipSvcFacade interface {
	SaleSvc
	TipAccrualSvc
	TipPayoutSvc
}
