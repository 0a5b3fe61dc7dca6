// Package team manages team lifecycle and rosters. Creating a team
// seeds one building row per catalog entry so upgrades can assume the
// row exists.
package team

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/osse101/ClanWarsBot_Go/internal/domain"
	"github.com/osse101/ClanWarsBot_Go/internal/event"
	"github.com/osse101/ClanWarsBot_Go/internal/logger"
	"github.com/osse101/ClanWarsBot_Go/internal/repository"
	"github.com/osse101/ClanWarsBot_Go/internal/rules"
)

// Service defines the team management business logic
type Service interface {
	// CreateTeam creates a team and seeds every catalog building at its
	// starting level, atomically.
	CreateTeam(ctx context.Context, name string) (*domain.Team, error)

	// DeleteTeam removes a team and all of its dependent rows.
	DeleteTeam(ctx context.Context, name string) error

	ListTeams(ctx context.Context) ([]domain.Team, error)
	GetTeam(ctx context.Context, name string) (*domain.Team, error)
	ListMembers(ctx context.Context, teamName string) ([]domain.TeamMember, error)

	// AddMember puts a player on a team. A player can be on at most one
	// team at a time.
	AddMember(ctx context.Context, teamName, username string) error

	// RemoveMember takes a player off whatever team they are on.
	RemoveMember(ctx context.Context, username string) error
}

type service struct {
	teamRepo  repository.Team
	town      *rules.Town
	publisher event.Bus
}

// NewService creates a new team service
func NewService(teamRepo repository.Team, town *rules.Town, publisher event.Bus) Service {
	return &service{
		teamRepo:  teamRepo,
		town:      town,
		publisher: publisher,
	}
}

// CreateTeam creates a team and seeds its buildings.
func (s *service) CreateTeam(ctx context.Context, name string) (*domain.Team, error) {
	log := logger.FromContext(ctx)

	name = normalize(name)
	if name == "" {
		return nil, domain.ErrInvalidTeamName
	}

	tx, err := s.teamRepo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	team, err := tx.CreateTeam(ctx, name)
	if err != nil {
		return nil, err
	}

	seeds := make([]domain.Building, 0, len(s.town.Catalog))
	for _, entry := range s.town.Catalog {
		seeds = append(seeds, domain.Building{TeamID: team.ID, Name: entry.Name, Level: entry.StartingLevel})
	}
	sort.Slice(seeds, func(i, j int) bool { return seeds[i].Name < seeds[j].Name })

	if err := tx.SeedBuildings(ctx, team.ID, seeds); err != nil {
		return nil, fmt.Errorf("failed to seed buildings: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	log.Info(logMsgTeamCreated, "team", team.Name, "buildings", len(s.town.Catalog))

	if err := s.publisher.Publish(ctx, event.NewTeamCreatedEvent(team.ID, team.Name)); err != nil {
		log.Warn("Failed to publish team created event", "error", err)
	}

	return team, nil
}

// DeleteTeam removes a team and everything hanging off it.
func (s *service) DeleteTeam(ctx context.Context, name string) error {
	log := logger.FromContext(ctx)

	team, err := s.GetTeam(ctx, name)
	if err != nil {
		return err
	}

	tx, err := s.teamRepo.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	if err := tx.DeleteTeam(ctx, team.ID); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return err
	}

	log.Info(logMsgTeamDeleted, "team", team.Name)

	if err := s.publisher.Publish(ctx, event.NewTeamDeletedEvent(team.ID, team.Name)); err != nil {
		log.Warn("Failed to publish team deleted event", "error", err)
	}

	return nil
}

// ListTeams returns all teams.
func (s *service) ListTeams(ctx context.Context) ([]domain.Team, error) {
	return s.teamRepo.ListTeams(ctx)
}

// GetTeam looks up a team by name.
func (s *service) GetTeam(ctx context.Context, name string) (*domain.Team, error) {
	team, err := s.teamRepo.GetTeamByName(ctx, normalize(name))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	return team, nil
}

// ListMembers returns a team's roster.
func (s *service) ListMembers(ctx context.Context, teamName string) ([]domain.TeamMember, error) {
	team, err := s.GetTeam(ctx, teamName)
	if err != nil {
		return nil, err
	}
	return s.teamRepo.ListMembers(ctx, team.ID)
}

// AddMember puts a player on a team.
func (s *service) AddMember(ctx context.Context, teamName, username string) error {
	team, err := s.GetTeam(ctx, teamName)
	if err != nil {
		return err
	}

	username = normalize(username)
	if username == "" {
		return domain.ErrNoUser
	}
	if len(username) > domain.MaxUsernameLength {
		return domain.ErrUsernameTooLong
	}

	if err := s.teamRepo.AddMember(ctx, team.ID, username); err != nil {
		return err
	}

	logger.FromContext(ctx).Info(logMsgMemberAdded, "team", team.Name, "username", username)
	return nil
}

// RemoveMember takes a player off their team.
func (s *service) RemoveMember(ctx context.Context, username string) error {
	username = normalize(username)
	if err := s.teamRepo.RemoveMember(ctx, username); err != nil {
		return err
	}

	logger.FromContext(ctx).Info(logMsgMemberRemoved, "username", username)
	return nil
}

// normalize lowercases names so lookups are case-insensitive at the
// storage layer.
func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
