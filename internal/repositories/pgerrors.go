package repository

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgNumericOutOfRange   = "22003"
)

var (
	ErrDuplicate        = errors.New("duplicate key")
	ErrReferenceMissing = errors.New("referenced row does not exist")
	ErrStatusConflict   = errors.New("row is not in the expected state")
	ErrOutOfRange       = errors.New("value out of range")
)

// mapPgError translates constraint violations into sentinel errors while
// keeping the driver error in the chain.
func mapPgError(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}

	switch pqErr.Code {
	case pgUniqueViolation:
		return fmt.Errorf("%w: %w", ErrDuplicate, err)
	case pgForeignKeyViolation:
		return fmt.Errorf("%w: %w", ErrReferenceMissing, err)
	case pgNumericOutOfRange:
		return fmt.Errorf("%w: %w", ErrOutOfRange, err)
	default:
		return err
	}
}
