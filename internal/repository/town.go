package repository

import (
	"context"

	"github.com/osse101/ClanWarsBot_Go/internal/domain"
)

// Town defines data access for team building levels.
type Town interface {
	GetBuildings(ctx context.Context, teamID int) ([]domain.Building, error)
	GetBuilding(ctx context.Context, teamID int, name string) (*domain.Building, error)

	// GetBuildingLevels returns building name to level for one team.
	GetBuildingLevels(ctx context.Context, teamID int) (map[string]int, error)

	BeginTx(ctx context.Context) (TownTx, error)
}

// TownTx covers an upgrade or downgrade: the building row is locked,
// costs are deducted and the level changes, all in one transaction.
type TownTx interface {
	Tx

	GetBuildingForUpdate(ctx context.Context, teamID int, name string) (*domain.Building, error)
	GetResourcesForUpdate(ctx context.Context, teamID int) ([]domain.Resource, error)

	// DeductResource subtracts amount from a resource row. Returns
	// domain.ErrInsufficientResources when the balance would go
	// negative, leaving the row untouched.
	DeductResource(ctx context.Context, teamID int, name string, amount int64) error

	SetBuildingLevel(ctx context.Context, teamID int, name string, level int) error
}
