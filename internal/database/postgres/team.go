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
	queryGetTeamByName = `
		SELECT id, name
		FROM teams
		WHERE name = $1`

	queryGetTeamByID = `
		SELECT id, name
		FROM teams
		WHERE id = $1`

	queryListTeams = `
		SELECT id, name
		FROM teams
		ORDER BY name`

	queryGetTeamByMember = `
		SELECT t.id, t.name
		FROM teams t
		JOIN team_members m ON m.team_id = t.id
		WHERE m.username = $1`

	queryListMembers = `
		SELECT username, team_id
		FROM team_members
		WHERE team_id = $1
		ORDER BY username`

	queryAddMember = `
		INSERT INTO team_members (username, team_id)
		VALUES ($1, $2)`

	queryRemoveMember = `
		DELETE FROM team_members
		WHERE username = $1`

	queryCreateTeam = `
		INSERT INTO teams (name)
		VALUES ($1)
		RETURNING id, name`

	querySeedBuilding = `
		INSERT INTO team_buildings (team_id, name, level)
		VALUES ($1, $2, $3)`

	queryDeleteTeam = `
		DELETE FROM teams
		WHERE id = $1`
)

// TeamStore implements repository.Team on postgres.
type TeamStore struct {
	pool *pgxpool.Pool
}

// NewTeamStore creates a TeamStore.
func NewTeamStore(pool *pgxpool.Pool) *TeamStore {
	return &TeamStore{pool: pool}
}

var _ repository.Team = (*TeamStore)(nil)

// GetTeamByName fetches a team by its lowercase name.
func (s *TeamStore) GetTeamByName(ctx context.Context, name string) (*domain.Team, error) {
	var team domain.Team
	err := s.pool.QueryRow(ctx, queryGetTeamByName, name).Scan(&team.ID, &team.Name)
	if err != nil {
		return nil, mapError(err)
	}
	return &team, nil
}

// GetTeamByID fetches a team by primary key.
func (s *TeamStore) GetTeamByID(ctx context.Context, id int) (*domain.Team, error) {
	var team domain.Team
	err := s.pool.QueryRow(ctx, queryGetTeamByID, id).Scan(&team.ID, &team.Name)
	if err != nil {
		return nil, mapError(err)
	}
	return &team, nil
}

// ListTeams returns all teams ordered by name.
func (s *TeamStore) ListTeams(ctx context.Context) ([]domain.Team, error) {
	rows, err := s.pool.Query(ctx, queryListTeams)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var teams []domain.Team
	for rows.Next() {
		var team domain.Team
		if err := rows.Scan(&team.ID, &team.Name); err != nil {
			return nil, mapError(err)
		}
		teams = append(teams, team)
	}
	return teams, rows.Err()
}

// GetTeamByMember resolves a username to its team.
func (s *TeamStore) GetTeamByMember(ctx context.Context, username string) (*domain.Team, error) {
	var team domain.Team
	err := s.pool.QueryRow(ctx, queryGetTeamByMember, username).Scan(&team.ID, &team.Name)
	if err != nil {
		return nil, mapError(err)
	}
	return &team, nil
}

// ListMembers returns a team's roster ordered by username.
func (s *TeamStore) ListMembers(ctx context.Context, teamID int) ([]domain.TeamMember, error) {
	rows, err := s.pool.Query(ctx, queryListMembers, teamID)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var members []domain.TeamMember
	for rows.Next() {
		var m domain.TeamMember
		if err := rows.Scan(&m.Username, &m.TeamID); err != nil {
			return nil, mapError(err)
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

// AddMember inserts a roster row. Usernames are globally unique, so a
// user already on any team trips the primary key.
func (s *TeamStore) AddMember(ctx context.Context, teamID int, username string) error {
	_, err := s.pool.Exec(ctx, queryAddMember, username, teamID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrUserAlreadyOnTeam
		}
		return mapError(err)
	}
	return nil
}

// RemoveMember deletes a roster row.
func (s *TeamStore) RemoveMember(ctx context.Context, username string) error {
	tag, err := s.pool.Exec(ctx, queryRemoveMember, username)
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// BeginTx starts a team transaction.
func (s *TeamStore) BeginTx(ctx context.Context) (repository.TeamTx, error) {
	tx, err := beginTx(ctx, s.pool)
	if err != nil {
		return nil, err
	}
	return &teamTx{tx: tx}, nil
}

type teamTx struct {
	tx pgx.Tx
}

var _ repository.TeamTx = (*teamTx)(nil)

func (t *teamTx) CreateTeam(ctx context.Context, name string) (*domain.Team, error) {
	var team domain.Team
	err := t.tx.QueryRow(ctx, queryCreateTeam, name).Scan(&team.ID, &team.Name)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrTeamExists
		}
		return nil, mapError(err)
	}
	return &team, nil
}

func (t *teamTx) SeedBuildings(ctx context.Context, teamID int, buildings []domain.Building) error {
	if len(buildings) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, b := range buildings {
		batch.Queue(querySeedBuilding, teamID, b.Name, b.Level)
	}

	results := t.tx.SendBatch(ctx, batch)
	for range buildings {
		if _, err := results.Exec(); err != nil {
			_ = results.Close()
			return mapError(err)
		}
	}
	return results.Close()
}

func (t *teamTx) DeleteTeam(ctx context.Context, teamID int) error {
	// Buildings, resources and members cascade from the teams row
	tag, err := t.tx.Exec(ctx, queryDeleteTeam, teamID)
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTeamNotFound
	}
	return nil
}

func (t *teamTx) Commit(ctx context.Context) error {
	if err := t.tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (t *teamTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}
