package repositories

import (
	"context"

	"github.com/duasfl8r/vestat/internal/core/domain"
)

// SaleReader defines read operations for sales
type SaleReader interface {
	FindSaleByID(ctx context.Context, saleID string) (*domain.Sale, error)

	// FindSaleByTipTransactionID returns the sale owning an accrual transaction, or apperrors.ErrNotFound.
	FindSaleByTipTransactionID(ctx context.Context, transactionID string) (*domain.Sale, error)
}

// SaleWriter defines write operations for sales
type SaleWriter interface {
	SaveSale(ctx context.Context, sale domain.Sale) error

	// FindSaleByIDForUpdate reads a sale and holds it against concurrent writers
	// until the surrounding unit of work ends.
	FindSaleByIDForUpdate(ctx context.Context, saleID string) (*domain.Sale, error)

	// UpdateSale stores the closed flag and the accrual transaction reference.
	UpdateSale(ctx context.Context, sale domain.Sale) error

	// DeleteSale returns apperrors.ErrNotFound if the sale does not exist.
	DeleteSale(ctx context.Context, saleID string) error
}

// SaleRepositoryFacade combines all sale repository interfaces
type SaleRepositoryFacade interface {
	SaleReader
	SaleWriter
}
