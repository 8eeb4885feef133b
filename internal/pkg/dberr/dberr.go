package dberr

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolationCode = "23505"

// IsUniqueViolation reports whether err is a unique-constraint violation
// raised by the store. Favorites, cart entries, subscriptions and the
// ingredient catalog all rely on the constraint instead of check-then-insert,
// so concurrent duplicate inserts surface here.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == uniqueViolationCode
	}

	// sqlite (local development) has no typed driver error exposed through gorm
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
