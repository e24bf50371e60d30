package memory

import (
	"context"
	"sort"

	"github.com/duasfl8r/vestat/internal/core/domain"
	portsrepo "github.com/duasfl8r/vestat/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

type payoutRepository struct {
	store *Store
}

var _ portsrepo.PayoutRepositoryFacade = (*payoutRepository)(nil)

func (r *payoutRepository) SavePayout(ctx context.Context, payout domain.Payout) error {
	return r.store.with(ctx, func(st *state) error {
		st.payouts = append(st.payouts, payout)
		return nil
	})
}

func (r *payoutRepository) SumPayouts(ctx context.Context, category string, dr domain.DateRange) (decimal.Decimal, error) {
	sum := decimal.Zero
	err := r.store.with(ctx, func(st *state) error {
		for _, p := range st.payouts {
			if p.Category == category && dr.Contains(p.Date) {
				sum = sum.Add(p.Amount)
			}
		}
		return nil
	})
	return sum, err
}

func (r *payoutRepository) ListPayouts(ctx context.Context, category string, dr domain.DateRange) ([]domain.Payout, error) {
	out := make([]domain.Payout, 0)
	err := r.store.with(ctx, func(st *state) error {
		for _, p := range st.payouts {
			if p.Category == category && dr.Contains(p.Date) {
				out = append(out, p)
			}
		}
		return nil
	})
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, err
}
