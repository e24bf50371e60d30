package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/duasfl8r/vestat/internal/core/domain"
	"github.com/duasfl8r/vestat/internal/core/ports"
	"github.com/duasfl8r/vestat/internal/middleware"
	"github.com/duasfl8r/vestat/internal/platform/metrics"
)

// BaseService provides common functionality for all services
type BaseService struct {
	// Clock returns the current time. Nil means time.Now in UTC.
	Clock     func() time.Time
	Publisher ports.EventPublisher
}

// Now returns the service clock's current time.
func (s *BaseService) Now() time.Time {
	if s.Clock != nil {
		return s.Clock()
	}
	return time.Now().UTC()
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	logger := middleware.GetLoggerFromCtx(ctx)
	if logger == nil {
		// Return a default logger if not found in context
		return slog.Default()
	}
	return logger
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+2)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Debug(msg, keyvals...)
}

// publish sends committed changes to subscribers. Delivery failures are logged
// and counted but never undo the change.
func (s *BaseService) publish(ctx context.Context, events ...domain.LedgerEvent) {
	if s.Publisher == nil {
		return
	}
	for _, event := range events {
		if err := s.Publisher.Publish(ctx, event); err != nil {
			metrics.EventsPublishFailed.Inc()
			s.LogError(ctx, err, "Failed to publish ledger event",
				slog.String("event_type", string(event.Type)),
				slog.String("transaction_id", event.TransactionID))
		}
	}
}
