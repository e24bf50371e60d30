package ports

import (
	"context"

	"github.com/duasfl8r/vestat/internal/core/domain"
)

// EventPublisher delivers ledger events to subscribers after a change is committed.
type EventPublisher interface {
	Publish(ctx context.Context, event domain.LedgerEvent) error
	Close() error
}

// TipSplitProvider supplies the configured staff/house split.
// It returns domain.ErrConfigurationMissing when the split was never configured.
type TipSplitProvider interface {
	TipSplit(ctx context.Context) (domain.TipSplit, error)
}
