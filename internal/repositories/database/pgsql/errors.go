package pgsql

import (
	"errors"
	"fmt"

	"github.com/duasfl8r/vestat/internal/apperrors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL error codes the repositories translate.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
	codeInvalidText         = "22P02" // e.g. a malformed uuid
)

func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

func isForeignKeyViolation(err error) bool {
	return pgErrorCode(err) == codeForeignKeyViolation
}

// mapPgError wraps err with the application sentinel matching its cause.
// Errors without a known cause are returned wrapped but unclassified.
func mapPgError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	msg := fmt.Sprintf(format, args...)
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", msg, apperrors.ErrNotFound)
	}
	switch pgErrorCode(err) {
	case codeUniqueViolation:
		return fmt.Errorf("%s: %w", msg, apperrors.ErrDuplicate)
	case codeForeignKeyViolation:
		return fmt.Errorf("%s: %w", msg, apperrors.ErrConflict)
	case codeCheckViolation:
		return fmt.Errorf("%s: %w", msg, apperrors.ErrValidation)
	case codeInvalidText:
		return fmt.Errorf("%s: %w", msg, apperrors.ErrNotFound)
	}
	return fmt.Errorf("%s: %w", msg, err)
}

