package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const foreignKeyViolationCode = "23503"

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolationCode
}
