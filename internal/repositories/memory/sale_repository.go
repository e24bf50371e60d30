package memory

import (
	"context"
	"fmt"

	"github.com/duasfl8r/vestat/internal/apperrors"
	"github.com/duasfl8r/vestat/internal/core/domain"
	portsrepo "github.com/duasfl8r/vestat/internal/core/ports/repositories"
)

type saleRepository struct {
	store *Store
}

var _ portsrepo.SaleRepositoryFacade = (*saleRepository)(nil)

func (r *saleRepository) SaveSale(ctx context.Context, sale domain.Sale) error {
	return r.store.with(ctx, func(st *state) error {
		if _, ok := st.sales[sale.SaleID]; ok {
			return fmt.Errorf("sale %s: %w", sale.SaleID, apperrors.ErrDuplicate)
		}
		st.sales[sale.SaleID] = copySale(sale)
		return nil
	})
}

func (r *saleRepository) FindSaleByID(ctx context.Context, saleID string) (*domain.Sale, error) {
	var found *domain.Sale
	_ = r.store.with(ctx, func(st *state) error {
		if s, ok := st.sales[saleID]; ok {
			c := copySale(s)
			found = &c
		}
		return nil
	})
	if found == nil {
		return nil, fmt.Errorf("sale %s: %w", saleID, apperrors.ErrNotFound)
	}
	return found, nil
}

// FindSaleByIDForUpdate needs no extra locking: a unit of work already holds the store.
func (r *saleRepository) FindSaleByIDForUpdate(ctx context.Context, saleID string) (*domain.Sale, error) {
	return r.FindSaleByID(ctx, saleID)
}

func (r *saleRepository) FindSaleByTipTransactionID(ctx context.Context, transactionID string) (*domain.Sale, error) {
	var found *domain.Sale
	_ = r.store.with(ctx, func(st *state) error {
		for _, s := range st.sales {
			if s.TipTransactionID != nil && *s.TipTransactionID == transactionID {
				c := copySale(s)
				found = &c
				return nil
			}
		}
		return nil
	})
	if found == nil {
		return nil, fmt.Errorf("sale for transaction %s: %w", transactionID, apperrors.ErrNotFound)
	}
	return found, nil
}

func (r *saleRepository) UpdateSale(ctx context.Context, sale domain.Sale) error {
	return r.store.with(ctx, func(st *state) error {
		if _, ok := st.sales[sale.SaleID]; !ok {
			return fmt.Errorf("sale %s: %w", sale.SaleID, apperrors.ErrNotFound)
		}
		if sale.HasTipTransaction() {
			if _, ok := st.transactions[*sale.TipTransactionID]; !ok {
				return fmt.Errorf("tip transaction %s: %w", *sale.TipTransactionID, apperrors.ErrNotFound)
			}
		}
		st.sales[sale.SaleID] = copySale(sale)
		return nil
	})
}

func (r *saleRepository) DeleteSale(ctx context.Context, saleID string) error {
	return r.store.with(ctx, func(st *state) error {
		if _, ok := st.sales[saleID]; !ok {
			return fmt.Errorf("sale %s: %w", saleID, apperrors.ErrNotFound)
		}
		delete(st.sales, saleID)
		return nil
	})
}
