package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// Codes SQLSTATE traités comme une erreur de l'appelant
var invalidInputCodes = map[string]bool{
	"22P02": true, // invalid_text_representation
	"23502": true, // not_null_violation
	"23503": true, // foreign_key_violation
	"23514": true, // check_violation
}

func wrapErr(op string, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && invalidInputCodes[pgErr.Code] {
		return fmt.Errorf("%s: %w: %s", op, ErrInvalidInput, pgErr.Message)
	}
	return fmt.Errorf("%s: %w: %w", op, ErrUnavailable, err)
}
