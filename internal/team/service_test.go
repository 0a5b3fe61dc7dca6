package team

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/ClanWarsBot_Go/internal/domain"
	"github.com/osse101/ClanWarsBot_Go/internal/event"
	"github.com/osse101/ClanWarsBot_Go/internal/rules"
)

func testTown() *rules.Town {
	return &rules.Town{
		Catalog: map[string]domain.BuildingCatalogEntry{
			"armory":   {Name: "armory", StartingLevel: 1, MaxLevel: 4},
			"townhall": {Name: "townhall", StartingLevel: 1, MaxLevel: 5},
		},
	}
}

func TestCreateTeam_SeedsCatalogBuildings(t *testing.T) {
	// ARRANGE
	repo := new(MockTeamRepo)
	tx := new(MockTeamTx)
	bus := new(MockBus)
	svc := NewService(repo, testTown(), bus)

	team := &domain.Team{ID: 1, Name: "red"}
	repo.On("BeginTx", mock.Anything).Return(tx, nil)
	tx.On("CreateTeam", mock.Anything, "red").Return(team, nil)
	// The whole catalog goes down in one batched call, ordered by name
	tx.On("SeedBuildings", mock.Anything, 1, []domain.Building{
		{TeamID: 1, Name: "armory", Level: 1},
		{TeamID: 1, Name: "townhall", Level: 1},
	}).Return(nil)
	tx.On("Commit", mock.Anything).Return(nil)
	tx.On("Rollback", mock.Anything).Return(nil)
	bus.On("Publish", mock.Anything, mock.MatchedBy(func(e event.Event) bool {
		return e.Type == event.TeamCreated
	})).Return(nil)

	// ACT
	created, err := svc.CreateTeam(context.Background(), "  Red ")

	// ASSERT
	require.NoError(t, err)
	assert.Equal(t, team, created)
	tx.AssertExpectations(t)
	tx.AssertNumberOfCalls(t, "SeedBuildings", 1)
	bus.AssertExpectations(t)
}

func TestCreateTeam_DuplicateName(t *testing.T) {
	repo := new(MockTeamRepo)
	tx := new(MockTeamTx)
	bus := new(MockBus)
	svc := NewService(repo, testTown(), bus)

	repo.On("BeginTx", mock.Anything).Return(tx, nil)
	tx.On("CreateTeam", mock.Anything, "red").Return(nil, domain.ErrTeamExists)
	tx.On("Rollback", mock.Anything).Return(nil)

	_, err := svc.CreateTeam(context.Background(), "red")

	assert.ErrorIs(t, err, domain.ErrTeamExists)
	tx.AssertNotCalled(t, "Commit", mock.Anything)
	bus.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestCreateTeam_EmptyName(t *testing.T) {
	repo := new(MockTeamRepo)
	svc := NewService(repo, testTown(), new(MockBus))

	_, err := svc.CreateTeam(context.Background(), "   ")

	assert.ErrorIs(t, err, domain.ErrInvalidTeamName)
	repo.AssertNotCalled(t, "BeginTx", mock.Anything)
}

func TestCreateTeam_SeedFailureRollsBack(t *testing.T) {
	repo := new(MockTeamRepo)
	tx := new(MockTeamTx)
	bus := new(MockBus)
	svc := NewService(repo, testTown(), bus)

	team := &domain.Team{ID: 1, Name: "red"}
	repo.On("BeginTx", mock.Anything).Return(tx, nil)
	tx.On("CreateTeam", mock.Anything, "red").Return(team, nil)
	tx.On("SeedBuildings", mock.Anything, 1, mock.Anything).Return(domain.ErrNotFound)
	tx.On("Rollback", mock.Anything).Return(nil)

	_, err := svc.CreateTeam(context.Background(), "red")

	assert.Error(t, err)
	tx.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestDeleteTeam(t *testing.T) {
	repo := new(MockTeamRepo)
	tx := new(MockTeamTx)
	bus := new(MockBus)
	svc := NewService(repo, testTown(), bus)

	team := &domain.Team{ID: 4, Name: "blue"}
	repo.On("GetTeamByName", mock.Anything, "blue").Return(team, nil)
	repo.On("BeginTx", mock.Anything).Return(tx, nil)
	tx.On("DeleteTeam", mock.Anything, 4).Return(nil)
	tx.On("Commit", mock.Anything).Return(nil)
	tx.On("Rollback", mock.Anything).Return(nil)
	bus.On("Publish", mock.Anything, mock.MatchedBy(func(e event.Event) bool {
		return e.Type == event.TeamDeleted
	})).Return(nil)

	err := svc.DeleteTeam(context.Background(), "Blue")

	assert.NoError(t, err)
	tx.AssertExpectations(t)
	bus.AssertExpectations(t)
}

func TestDeleteTeam_NotFound(t *testing.T) {
	repo := new(MockTeamRepo)
	svc := NewService(repo, testTown(), new(MockBus))

	repo.On("GetTeamByName", mock.Anything, "ghosts").Return(nil, domain.ErrNotFound)

	err := svc.DeleteTeam(context.Background(), "ghosts")

	assert.ErrorIs(t, err, domain.ErrTeamNotFound)
	repo.AssertNotCalled(t, "BeginTx", mock.Anything)
}

func TestAddMember(t *testing.T) {
	repo := new(MockTeamRepo)
	svc := NewService(repo, testTown(), new(MockBus))

	team := &domain.Team{ID: 4, Name: "blue"}
	repo.On("GetTeamByName", mock.Anything, "blue").Return(team, nil)
	repo.On("AddMember", mock.Anything, 4, "zezima").Return(nil)

	err := svc.AddMember(context.Background(), "blue", " Zezima ")

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestAddMember_AlreadyOnTeam(t *testing.T) {
	repo := new(MockTeamRepo)
	svc := NewService(repo, testTown(), new(MockBus))

	team := &domain.Team{ID: 4, Name: "blue"}
	repo.On("GetTeamByName", mock.Anything, "blue").Return(team, nil)
	repo.On("AddMember", mock.Anything, 4, "zezima").Return(domain.ErrUserAlreadyOnTeam)

	err := svc.AddMember(context.Background(), "blue", "zezima")

	assert.ErrorIs(t, err, domain.ErrUserAlreadyOnTeam)
}

func TestAddMember_UsernameTooLong(t *testing.T) {
	repo := new(MockTeamRepo)
	svc := NewService(repo, testTown(), new(MockBus))

	team := &domain.Team{ID: 4, Name: "blue"}
	repo.On("GetTeamByName", mock.Anything, "blue").Return(team, nil)

	err := svc.AddMember(context.Background(), "blue", "abcdefghijklmnop") // 16 chars

	assert.ErrorIs(t, err, domain.ErrUsernameTooLong)
	repo.AssertNotCalled(t, "AddMember", mock.Anything, mock.Anything, mock.Anything)
}

func TestRemoveMember_NotOnTeam(t *testing.T) {
	repo := new(MockTeamRepo)
	svc := NewService(repo, testTown(), new(MockBus))

	repo.On("RemoveMember", mock.Anything, "zezima").Return(domain.ErrUserNotFound)

	err := svc.RemoveMember(context.Background(), "Zezima")

	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestListMembers(t *testing.T) {
	repo := new(MockTeamRepo)
	svc := NewService(repo, testTown(), new(MockBus))

	team := &domain.Team{ID: 4, Name: "blue"}
	members := []domain.TeamMember{{Username: "alice", TeamID: 4}, {Username: "bob", TeamID: 4}}
	repo.On("GetTeamByName", mock.Anything, "blue").Return(team, nil)
	repo.On("ListMembers", mock.Anything, 4).Return(members, nil)

	got, err := svc.ListMembers(context.Background(), "blue")

	require.NoError(t, err)
	assert.Equal(t, members, got)
}
