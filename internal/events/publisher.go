// Package events delivers ledger events to whoever is listening.
package events

import (
	"context"
	"log/slog"
	"sync"

	"github.com/duasfl8r/vestat/internal/core/domain"
	"github.com/duasfl8r/vestat/internal/core/ports"
	"github.com/duasfl8r/vestat/internal/middleware"
)

// NoopPublisher drops events. It is used when no broker is configured.
type NoopPublisher struct{}

var _ ports.EventPublisher = NoopPublisher{}

func (NoopPublisher) Publish(ctx context.Context, event domain.LedgerEvent) error {
	middleware.GetLoggerFromCtx(ctx).Debug("Event dropped, no broker configured",
		slog.String("event_type", string(event.Type)),
		slog.String("transaction_id", event.TransactionID))
	return nil
}

func (NoopPublisher) Close() error { return nil }

// RecordingPublisher keeps published events in memory. Tests use it to assert on events.
type RecordingPublisher struct {
	mu     sync.Mutex
	events []domain.LedgerEvent
	Err    error
}

var _ ports.EventPublisher = (*RecordingPublisher)(nil)

func (p *RecordingPublisher) Publish(_ context.Context, event domain.LedgerEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.Err != nil {
		return p.Err
	}
	p.events = append(p.events, event)
	return nil
}

func (p *RecordingPublisher) Close() error { return nil }

// Events returns a copy of what was published so far.
func (p *RecordingPublisher) Events() []domain.LedgerEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]domain.LedgerEvent(nil), p.events...)
}
