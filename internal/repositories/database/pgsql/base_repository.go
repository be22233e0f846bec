package pgsql

import (
	"errors"
	"fmt"

	"github.com/SscSPs/fintrack/internal/apperrors"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	uniqueViolation   = "23505"
	numericOutOfRange = "22003"
)

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// wrapWriteError maps a unique violation to ErrDuplicate, a value too large for its
// column to ErrValidation, and wraps anything else.
func wrapWriteError(err error, what, id string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolation:
			return fmt.Errorf("%w: %s with ID %s already exists", apperrors.ErrDuplicate, what, id)
		case numericOutOfRange:
			return fmt.Errorf("%w: %s %s has a value out of range", apperrors.ErrValidation, what, id)
		}
	}
	return fmt.Errorf("failed to save %s %s: %w", what, id, err)
}

// expectOneRow turns an update or delete that touched nothing into ErrNotFound.
func expectOneRow(tag pgconn.CommandTag) error {
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
