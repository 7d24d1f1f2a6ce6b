package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/osse101/QuestBoard_Go/internal/domain"
)

// classify maps a driver error onto the domain taxonomy.
// Errors that already carry a domain sentinel pass through unchanged.
func classify(op string, err error) error {
	if err == nil {
		return nil
	}
	if isDomainError(err) {
		return err
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgCodeUniqueViolation:
			return fmt.Errorf("%s: %w: %w", op, domain.ErrConcurrentModification, err)
		case pgCodeCheckViolation, pgCodeForeignKeyViolation:
			return fmt.Errorf("%s: %w: %w", op, domain.ErrInvalidInput, err)
		case pgCodeSerializationFailure, pgCodeDeadlockDetected, pgCodeLockNotAvailable, pgCodeQueryCanceled:
			return fmt.Errorf("%s: %w: %w", op, domain.ErrStoreFailure, err)
		}
	}

	// Anything else, including context deadlines, is a transport or server fault
	return fmt.Errorf("%s: %w: %w", op, domain.ErrStoreFailure, err)
}

func isDomainError(err error) bool {
	return errors.Is(err, domain.ErrNotFound) ||
		errors.Is(err, domain.ErrConcurrentModification) ||
		errors.Is(err, domain.ErrStoreFailure) ||
		errors.Is(err, domain.ErrInvalidInput) ||
		errors.Is(err, domain.ErrInvalidQuantity) ||
		errors.Is(err, domain.ErrUnauthorized)
}
