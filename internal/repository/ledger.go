package repository

import (
	"context"

	"github.com/osse101/ClanWarsBot_Go/internal/domain"
)

// Ledger defines data access for team resource balances.
type Ledger interface {
	GetResources(ctx context.Context, teamID int) ([]domain.Resource, error)
	GetResource(ctx context.Context, teamID int, name string) (*domain.Resource, error)

	BeginTx(ctx context.Context) (LedgerTx, error)
}

// LedgerTx applies resource credits atomically. A whole drop commits
// in one transaction so concurrent drops for the same team never lose
// increments.
type LedgerTx interface {
	Tx

	// IncrementResource adds delta to a resource row, creating the row
	// at delta if it does not exist yet. The increment happens in SQL
	// rather than read-modify-write.
	IncrementResource(ctx context.Context, teamID int, name, category string, delta int64) error
}
