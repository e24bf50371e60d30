package repositories

import (
	"context"

	"github.com/duasfl8r/vestat/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PayoutReader defines read operations for expense and bank movement records
type PayoutReader interface {
	// SumPayouts adds the amounts of records in category dated inside r, from every source.
	SumPayouts(ctx context.Context, category string, r domain.DateRange) (decimal.Decimal, error)

	// ListPayouts returns records in category dated inside r, oldest first.
	ListPayouts(ctx context.Context, category string, r domain.DateRange) ([]domain.Payout, error)
}

// PayoutWriter defines write operations for payout records
type PayoutWriter interface {
	SavePayout(ctx context.Context, payout domain.Payout) error
}

// PayoutRepositoryFacade combines all payout repository interfaces
type PayoutRepositoryFacade interface {
	PayoutReader
	PayoutWriter
}
