package store

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrAlreadyDecided marks an accept/reject on an appointment that has
// left PENDING; the transition is one-way.
var ErrAlreadyDecided = errors.New("appointment already decided")

// IsUniqueViolation reports whether err is a Postgres unique constraint
// violation, e.g. two registrations racing on the same email.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

type Store struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}
