package services

import (
	"time"

	"github.com/duasfl8r/vestat/internal/core/ports"
)

// ServiceOption is a functional option shared by the services built on BaseService
type ServiceOption func(*BaseService)

// WithEventPublisher sends ledger events to publisher after each committed change.
func WithEventPublisher(publisher ports.EventPublisher) ServiceOption {
	return func(s *BaseService) {
		s.Publisher = publisher
	}
}

// WithClock replaces the wall clock, mostly for tests.
func WithClock(clock func() time.Time) ServiceOption {
	return func(s *BaseService) {
		s.Clock = clock
	}
}

func newBaseService(options ...ServiceOption) BaseService {
	var base BaseService
	for _, option := range options {
		option(&base)
	}
	return base
}
