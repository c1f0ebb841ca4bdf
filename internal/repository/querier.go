package repository

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
)

// Querier is the slice of sqlx that repositories need. Both *sqlx.DB and the
// per-request *sqlx.Conn satisfy it, so every statement runs on whichever
// handle the caller scoped to the request.
type Querier interface {
	Rebind(query string) string
	QueryxContext(ctx context.Context, query string, args ...interface{}) (*sqlx.Rows, error)
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

// bindNamed expands :name placeholders and rebinds them for the underlying
// driver.
func bindNamed(q Querier, query string, arg interface{}) (string, []interface{}, error) {
	bound, args, err := sqlx.Named(query, arg)
	if err != nil {
		return "", nil, err
	}
	return q.Rebind(bound), args, nil
}
