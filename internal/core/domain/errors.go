package domain

import (
	"errors"
	"fmt"

	"github.com/duasfl8r/vestat/internal/apperrors"
)

// Domain errors. The validation ones wrap apperrors.ErrValidation so the
// transport layer can map them without knowing each case.
var (
	ErrUnbalancedTransaction = fmt.Errorf("%w: transaction entries do not sum to zero", apperrors.ErrValidation)
	ErrEmptyAccountPath      = fmt.Errorf("%w: account path is empty", apperrors.ErrValidation)
	ErrInvalidAccountPath    = fmt.Errorf("%w: account path has an empty segment", apperrors.ErrValidation)
	ErrInvalidTipSplit       = fmt.Errorf("%w: tip split shares are invalid", apperrors.ErrValidation)
	ErrInvalidAmount         = fmt.Errorf("%w: amount has more than two decimal places", apperrors.ErrValidation)
	ErrNegativeTip           = fmt.Errorf("%w: tip amount cannot be negative", apperrors.ErrValidation)
	ErrInvalidPayoutSource   = fmt.Errorf("%w: payout source must be CASH or BANK", apperrors.ErrValidation)

	// ErrConfigurationMissing is returned when the tip split has not been configured.
	// It is deliberately not a validation error: the caller cannot fix it by changing input.
	ErrConfigurationMissing = errors.New("tip split configuration missing")
)
