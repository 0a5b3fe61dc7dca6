package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/ClanWarsBot_Go/internal/domain"
	"github.com/osse101/ClanWarsBot_Go/internal/town"
)

// MockAttributionService mocks attribution.Service
type MockAttributionService struct {
	mock.Mock
}

func (m *MockAttributionService) AttributeText(ctx context.Context, text string) error {
	args := m.Called(ctx, text)
	return args.Error(0)
}

func (m *MockAttributionService) AttributeDrop(ctx context.Context, drop *domain.DropEvent) error {
	args := m.Called(ctx, drop)
	return args.Error(0)
}

// MockTeamService mocks team.Service
type MockTeamService struct {
	mock.Mock
}

func (m *MockTeamService) CreateTeam(ctx context.Context, name string) (*domain.Team, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Team), args.Error(1)
}

func (m *MockTeamService) DeleteTeam(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}

func (m *MockTeamService) ListTeams(ctx context.Context) ([]domain.Team, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Team), args.Error(1)
}

func (m *MockTeamService) GetTeam(ctx context.Context, name string) (*domain.Team, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Team), args.Error(1)
}

func (m *MockTeamService) ListMembers(ctx context.Context, teamName string) ([]domain.TeamMember, error) {
	args := m.Called(ctx, teamName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TeamMember), args.Error(1)
}

func (m *MockTeamService) AddMember(ctx context.Context, teamName, username string) error {
	args := m.Called(ctx, teamName, username)
	return args.Error(0)
}

func (m *MockTeamService) RemoveMember(ctx context.Context, username string) error {
	args := m.Called(ctx, username)
	return args.Error(0)
}

// MockTownService mocks town.Service
type MockTownService struct {
	mock.Mock
}

func (m *MockTownService) UpgradeBuilding(ctx context.Context, teamName, buildingName string) (*town.Outcome, error) {
	args := m.Called(ctx, teamName, buildingName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*town.Outcome), args.Error(1)
}

func (m *MockTownService) DowngradeBuilding(ctx context.Context, teamName, buildingName string) (*town.Outcome, error) {
	args := m.Called(ctx, teamName, buildingName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*town.Outcome), args.Error(1)
}

func (m *MockTownService) GetSummary(ctx context.Context, teamName string) (*town.Summary, error) {
	args := m.Called(ctx, teamName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*town.Summary), args.Error(1)
}
