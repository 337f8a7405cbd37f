// Package pgerr classifies PostgreSQL errors surfaced through GORM.
package pgerr

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE codes.
const (
	UniqueViolation = "23505"
	CheckViolation  = "23514"
)

// IsUniqueViolation reports whether err is a duplicate-key error.
func IsUniqueViolation(err error) bool {
	return hasCode(err, UniqueViolation)
}

// IsCheckViolation reports whether err is a CHECK constraint failure, such
// as a balance that would go negative.
func IsCheckViolation(err error) bool {
	return hasCode(err, CheckViolation)
}

func hasCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}
