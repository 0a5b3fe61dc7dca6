package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/ClanWarsBot_Go/internal/database/postgres"
	"github.com/osse101/ClanWarsBot_Go/internal/eventlog"
	"github.com/osse101/ClanWarsBot_Go/internal/repository"
)

// Repositories holds all repository implementations used by the bot.
// This provides a centralized location for repository initialization and
// makes dependency injection clearer.
type Repositories struct {
	Team     repository.Team
	Ledger   repository.Ledger
	Town     repository.Town
	EventLog eventlog.Repository
}

// InitializeRepositories creates all repository implementations.
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	return &Repositories{
		Team:     postgres.NewTeamStore(dbPool),
		Ledger:   postgres.NewLedgerStore(dbPool),
		Town:     postgres.NewTownStore(dbPool),
		EventLog: postgres.NewEventLogStore(dbPool),
	}
}
