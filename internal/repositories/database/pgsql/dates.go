package pgsql

import (
	"time"

	"github.com/duasfl8r/vestat/internal/core/domain"
)

// rangeParams converts a range into nullable DATE parameters.
func rangeParams(r domain.DateRange) (from, to *time.Time) {
	return dayPtr(r.From), dayPtr(r.To)
}

func dayPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	d := domain.DateOnly(*t)
	return &d
}
