package team

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/ClanWarsBot_Go/internal/domain"
	"github.com/osse101/ClanWarsBot_Go/internal/event"
	"github.com/osse101/ClanWarsBot_Go/internal/repository"
)

// MockTeamRepo is a mock implementation of repository.Team
type MockTeamRepo struct {
	mock.Mock
}

func (m *MockTeamRepo) GetTeamByName(ctx context.Context, name string) (*domain.Team, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Team), args.Error(1)
}

func (m *MockTeamRepo) GetTeamByID(ctx context.Context, id int) (*domain.Team, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Team), args.Error(1)
}

func (m *MockTeamRepo) ListTeams(ctx context.Context) ([]domain.Team, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Team), args.Error(1)
}

func (m *MockTeamRepo) GetTeamByMember(ctx context.Context, username string) (*domain.Team, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Team), args.Error(1)
}

func (m *MockTeamRepo) ListMembers(ctx context.Context, teamID int) ([]domain.TeamMember, error) {
	args := m.Called(ctx, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TeamMember), args.Error(1)
}

func (m *MockTeamRepo) AddMember(ctx context.Context, teamID int, username string) error {
	args := m.Called(ctx, teamID, username)
	return args.Error(0)
}

func (m *MockTeamRepo) RemoveMember(ctx context.Context, username string) error {
	args := m.Called(ctx, username)
	return args.Error(0)
}

func (m *MockTeamRepo) BeginTx(ctx context.Context) (repository.TeamTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.TeamTx), args.Error(1)
}

// MockTeamTx is a mock implementation of repository.TeamTx
type MockTeamTx struct {
	mock.Mock
}

func (m *MockTeamTx) CreateTeam(ctx context.Context, name string) (*domain.Team, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Team), args.Error(1)
}

func (m *MockTeamTx) SeedBuildings(ctx context.Context, teamID int, buildings []domain.Building) error {
	args := m.Called(ctx, teamID, buildings)
	return args.Error(0)
}

func (m *MockTeamTx) DeleteTeam(ctx context.Context, teamID int) error {
	args := m.Called(ctx, teamID)
	return args.Error(0)
}

func (m *MockTeamTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTeamTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockBus is a mock implementation of event.Bus
type MockBus struct {
	mock.Mock
}

func (m *MockBus) Publish(ctx context.Context, evt event.Event) error {
	args := m.Called(ctx, evt)
	return args.Error(0)
}

func (m *MockBus) Subscribe(eventType event.Type, handler event.Handler) {
	m.Called(eventType, handler)
}
