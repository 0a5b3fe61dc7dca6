package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/ClanWarsBot_Go/internal/domain"
	"github.com/osse101/ClanWarsBot_Go/internal/repository"
)

const (
	queryGetResources = `
		SELECT team_id, name, category, quantity
		FROM team_resources
		WHERE team_id = $1
		ORDER BY category, name`

	queryGetResource = `
		SELECT team_id, name, category, quantity
		FROM team_resources
		WHERE team_id = $1 AND name = $2`

	queryIncrementResource = `
		INSERT INTO team_resources (team_id, name, category, quantity)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (team_id, name) DO UPDATE
		SET quantity = team_resources.quantity + EXCLUDED.quantity,
		    updated_at = NOW()`
)

// LedgerStore implements repository.Ledger on postgres.
type LedgerStore struct {
	pool *pgxpool.Pool
}

// NewLedgerStore creates a LedgerStore.
func NewLedgerStore(pool *pgxpool.Pool) *LedgerStore {
	return &LedgerStore{pool: pool}
}

var _ repository.Ledger = (*LedgerStore)(nil)

// GetResources returns a team's full ledger ordered by category.
func (s *LedgerStore) GetResources(ctx context.Context, teamID int) ([]domain.Resource, error) {
	rows, err := s.pool.Query(ctx, queryGetResources, teamID)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	return scanResources(rows)
}

// GetResource returns one ledger row.
func (s *LedgerStore) GetResource(ctx context.Context, teamID int, name string) (*domain.Resource, error) {
	var res domain.Resource
	err := s.pool.QueryRow(ctx, queryGetResource, teamID, name).
		Scan(&res.TeamID, &res.Name, &res.Category, &res.Quantity)
	if err != nil {
		return nil, mapError(err)
	}
	return &res, nil
}

// BeginTx starts a ledger transaction.
func (s *LedgerStore) BeginTx(ctx context.Context) (repository.LedgerTx, error) {
	tx, err := beginTx(ctx, s.pool)
	if err != nil {
		return nil, err
	}
	return &ledgerTx{tx: tx}, nil
}

type ledgerTx struct {
	tx pgx.Tx
}

var _ repository.LedgerTx = (*ledgerTx)(nil)

// IncrementResource applies the credit as a SQL-side increment so
// concurrent drops for the same team serialize on the row instead of
// overwriting each other.
func (t *ledgerTx) IncrementResource(ctx context.Context, teamID int, name, category string, delta int64) error {
	if _, err := t.tx.Exec(ctx, queryIncrementResource, teamID, name, category, delta); err != nil {
		return mapError(err)
	}
	return nil
}

func (t *ledgerTx) Commit(ctx context.Context) error {
	if err := t.tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (t *ledgerTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}
