// Package postgres implements the repository interfaces on PostgreSQL
// using pgx directly.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/ClanWarsBot_Go/internal/domain"
)

// Postgres error codes we translate into domain errors.
const (
	pgCodeUniqueViolation     = "23505"
	pgCodeForeignKeyViolation = "23503"
	pgCodeCheckViolation      = "23514"
)

// mapError converts driver-level errors into domain errors so callers
// never match on SQLSTATE strings.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgCodeForeignKeyViolation:
			return fmt.Errorf("%w: %s", domain.ErrNotFound, pgErr.ConstraintName)
		case pgCodeCheckViolation:
			return fmt.Errorf("%w: %s", domain.ErrInsufficientResources, pgErr.ConstraintName)
		}
	}

	return fmt.Errorf("%s: %w", domain.ErrMsgDatabaseError, err)
}

// isUniqueViolation reports whether err is a unique constraint failure.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgCodeUniqueViolation
}

func beginTx(ctx context.Context, pool *pgxpool.Pool) (pgx.Tx, error) {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return tx, nil
}

func scanResources(rows pgx.Rows) ([]domain.Resource, error) {
	var resources []domain.Resource
	for rows.Next() {
		var res domain.Resource
		if err := rows.Scan(&res.TeamID, &res.Name, &res.Category, &res.Quantity); err != nil {
			return nil, mapError(err)
		}
		resources = append(resources, res)
	}
	return resources, rows.Err()
}
