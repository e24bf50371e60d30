package dto

import (
	"fmt"
	"time"

	"github.com/duasfl8r/vestat/internal/apperrors"
	"github.com/duasfl8r/vestat/internal/core/domain"
)

// ParseDate parses a YYYY-MM-DD day. Failures wrap apperrors.ErrValidation.
func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(domain.DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date %q, expected YYYY-MM-DD", apperrors.ErrValidation, value)
	}
	return t, nil
}

// ParseOptionalDate is ParseDate for an optional query value; empty means unbounded.
func ParseOptionalDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := ParseDate(value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// ParseDateRange builds an inclusive range from optional from/to values.
func ParseDateRange(from, to string) (domain.DateRange, error) {
	fromDate, err := ParseOptionalDate(from)
	if err != nil {
		return domain.DateRange{}, err
	}
	toDate, err := ParseOptionalDate(to)
	if err != nil {
		return domain.DateRange{}, err
	}
	return domain.DateRange{From: fromDate, To: toDate}, nil
}

func formatDate(t time.Time) string {
	return t.Format(domain.DateLayout)
}
