package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/azmath1924/go-rest-starter/internal/store"
)

// uniqueViolationCode is the PostgreSQL SQLSTATE for a unique constraint
// violation.
const uniqueViolationCode = "23505"

// isUniqueViolation checks whether the error is a PostgreSQL unique
// constraint violation surfaced by the pgx driver. gorm's TranslateError
// covers most paths, but raw driver errors can still leak through.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

// wrapUserError translates gorm and driver errors into the store package's
// sentinel errors so callers never see backend-specific types.
func wrapUserError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return store.ErrUserNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey), isUniqueViolation(err):
		return store.ErrEmailExists
	default:
		return err
	}
}
