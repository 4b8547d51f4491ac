package repository

import (
	"errors"

	"github.com/jackc/pgx/v5"
)

// ErrNotFound is returned when a row does not exist or is not owned by
// the requesting user. Ownership misses deliberately look identical to
// missing rows.
var ErrNotFound = errors.New("record not found")

func mapErr(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}
