package repository

import (
	"context"

	"github.com/osse101/ClanWarsBot_Go/internal/domain"
)

// Team defines data access for teams and their rosters.
type Team interface {
	GetTeamByName(ctx context.Context, name string) (*domain.Team, error)
	GetTeamByID(ctx context.Context, id int) (*domain.Team, error)
	ListTeams(ctx context.Context) ([]domain.Team, error)

	// GetTeamByMember resolves the team a username belongs to.
	// Returns domain.ErrNotFound when the user has no team.
	GetTeamByMember(ctx context.Context, username string) (*domain.Team, error)
	ListMembers(ctx context.Context, teamID int) ([]domain.TeamMember, error)
	AddMember(ctx context.Context, teamID int, username string) error
	RemoveMember(ctx context.Context, username string) error

	BeginTx(ctx context.Context) (TeamTx, error)
}

// TeamTx covers the team operations that must be atomic: creating a
// team together with its seeded buildings, and deleting a team with
// all of its dependent rows.
type TeamTx interface {
	Tx
	CreateTeam(ctx context.Context, name string) (*domain.Team, error)

	// SeedBuildings inserts one building row per entry in a single
	// round trip.
	SeedBuildings(ctx context.Context, teamID int, buildings []domain.Building) error

	DeleteTeam(ctx context.Context, teamID int) error
}
