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
	queryGetBuildings = `
		SELECT team_id, name, level
		FROM team_buildings
		WHERE team_id = $1
		ORDER BY name`

	queryGetBuilding = `
		SELECT team_id, name, level
		FROM team_buildings
		WHERE team_id = $1 AND name = $2`

	queryGetBuildingForUpdate = `
		SELECT team_id, name, level
		FROM team_buildings
		WHERE team_id = $1 AND name = $2
		FOR UPDATE`

	queryGetResourcesForUpdate = `
		SELECT team_id, name, category, quantity
		FROM team_resources
		WHERE team_id = $1
		ORDER BY category, name
		FOR UPDATE`

	queryDeductResource = `
		UPDATE team_resources
		SET quantity = quantity - $3,
		    updated_at = NOW()
		WHERE team_id = $1 AND name = $2 AND quantity >= $3`

	querySetBuildingLevel = `
		UPDATE team_buildings
		SET level = $3,
		    updated_at = NOW()
		WHERE team_id = $1 AND name = $2`
)

// TownStore implements repository.Town on postgres.
type TownStore struct {
	pool *pgxpool.Pool
}

// NewTownStore creates a TownStore.
func NewTownStore(pool *pgxpool.Pool) *TownStore {
	return &TownStore{pool: pool}
}

var _ repository.Town = (*TownStore)(nil)

// GetBuildings returns a team's buildings ordered by name.
func (s *TownStore) GetBuildings(ctx context.Context, teamID int) ([]domain.Building, error) {
	rows, err := s.pool.Query(ctx, queryGetBuildings, teamID)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var buildings []domain.Building
	for rows.Next() {
		var b domain.Building
		if err := rows.Scan(&b.TeamID, &b.Name, &b.Level); err != nil {
			return nil, mapError(err)
		}
		buildings = append(buildings, b)
	}
	return buildings, rows.Err()
}

// GetBuilding returns one team building row.
func (s *TownStore) GetBuilding(ctx context.Context, teamID int, name string) (*domain.Building, error) {
	var b domain.Building
	err := s.pool.QueryRow(ctx, queryGetBuilding, teamID, name).Scan(&b.TeamID, &b.Name, &b.Level)
	if err != nil {
		return nil, mapError(err)
	}
	return &b, nil
}

// GetBuildingLevels returns building name to level for one team.
func (s *TownStore) GetBuildingLevels(ctx context.Context, teamID int) (map[string]int, error) {
	buildings, err := s.GetBuildings(ctx, teamID)
	if err != nil {
		return nil, err
	}

	levels := make(map[string]int, len(buildings))
	for _, b := range buildings {
		levels[b.Name] = b.Level
	}
	return levels, nil
}

// BeginTx starts a town transaction.
func (s *TownStore) BeginTx(ctx context.Context) (repository.TownTx, error) {
	tx, err := beginTx(ctx, s.pool)
	if err != nil {
		return nil, err
	}
	return &townTx{tx: tx}, nil
}

type townTx struct {
	tx pgx.Tx
}

var _ repository.TownTx = (*townTx)(nil)

// GetBuildingForUpdate locks the building row for the duration of the
// transaction so concurrent upgrades of the same building serialize.
func (t *townTx) GetBuildingForUpdate(ctx context.Context, teamID int, name string) (*domain.Building, error) {
	var b domain.Building
	err := t.tx.QueryRow(ctx, queryGetBuildingForUpdate, teamID, name).Scan(&b.TeamID, &b.Name, &b.Level)
	if err != nil {
		return nil, mapError(err)
	}
	return &b, nil
}

func (t *townTx) GetResourcesForUpdate(ctx context.Context, teamID int) ([]domain.Resource, error) {
	rows, err := t.tx.Query(ctx, queryGetResourcesForUpdate, teamID)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	return scanResources(rows)
}

// DeductResource subtracts amount, refusing to go negative. A zero row
// count means the row is missing or the balance is short; both report
// as insufficient resources.
func (t *townTx) DeductResource(ctx context.Context, teamID int, name string, amount int64) error {
	tag, err := t.tx.Exec(ctx, queryDeductResource, teamID, name, amount)
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", domain.ErrInsufficientResources, name)
	}
	return nil
}

func (t *townTx) SetBuildingLevel(ctx context.Context, teamID int, name string, level int) error {
	tag, err := t.tx.Exec(ctx, querySetBuildingLevel, teamID, name, level)
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", domain.ErrBuildingMissing, name)
	}
	return nil
}

func (t *townTx) Commit(ctx context.Context) error {
	if err := t.tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (t *townTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}
