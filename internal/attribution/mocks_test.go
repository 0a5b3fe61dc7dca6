package attribution

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

// MockLedgerRepo is a mock implementation of repository.Ledger
type MockLedgerRepo struct {
	mock.Mock
}

func (m *MockLedgerRepo) GetResources(ctx context.Context, teamID int) ([]domain.Resource, error) {
	args := m.Called(ctx, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Resource), args.Error(1)
}

func (m *MockLedgerRepo) GetResource(ctx context.Context, teamID int, name string) (*domain.Resource, error) {
	args := m.Called(ctx, teamID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Resource), args.Error(1)
}

func (m *MockLedgerRepo) BeginTx(ctx context.Context) (repository.LedgerTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.LedgerTx), args.Error(1)
}

// MockLedgerTx is a mock implementation of repository.LedgerTx
type MockLedgerTx struct {
	mock.Mock
}

func (m *MockLedgerTx) IncrementResource(ctx context.Context, teamID int, name, category string, delta int64) error {
	args := m.Called(ctx, teamID, name, category, delta)
	return args.Error(0)
}

func (m *MockLedgerTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockLedgerTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockTownRepo is a mock implementation of repository.Town
type MockTownRepo struct {
	mock.Mock
}

func (m *MockTownRepo) GetBuildings(ctx context.Context, teamID int) ([]domain.Building, error) {
	args := m.Called(ctx, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Building), args.Error(1)
}

func (m *MockTownRepo) GetBuilding(ctx context.Context, teamID int, name string) (*domain.Building, error) {
	args := m.Called(ctx, teamID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Building), args.Error(1)
}

func (m *MockTownRepo) GetBuildingLevels(ctx context.Context, teamID int) (map[string]int, error) {
	args := m.Called(ctx, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int), args.Error(1)
}

func (m *MockTownRepo) BeginTx(ctx context.Context) (repository.TownTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.TownTx), args.Error(1)
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
