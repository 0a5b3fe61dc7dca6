package eventlog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/ClanWarsBot_Go/internal/event"
)

func TestHandleEvent_LogsDropWithTeamID(t *testing.T) {
	// ARRANGE
	repo := new(MockRepository)
	svc := NewService(repo)
	bus := event.NewMemoryBus()
	require.NoError(t, svc.Subscribe(bus))

	teamID := 7
	repo.On("LogEvent", mock.Anything, string(event.DropAttributed), &teamID,
		mock.MatchedBy(func(p map[string]interface{}) bool {
			return p["team_name"] == "red-raiders" && p["username"] == "zezima"
		})).Return(nil)

	evt := event.NewDropAttributedEvent(7, "red-raiders", "zezima", "Zulrah", []event.ResourceCreditV1{
		{Resource: "gold coin", Category: "currency", Amount: 12},
	})

	// ACT
	err := bus.Publish(context.Background(), evt)

	// ASSERT
	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestHandleEvent_DiscardHasNoTeamID(t *testing.T) {
	// ARRANGE
	repo := new(MockRepository)
	svc := NewService(repo)
	bus := event.NewMemoryBus()
	require.NoError(t, svc.Subscribe(bus))

	repo.On("LogEvent", mock.Anything, string(event.DropDiscarded), (*int)(nil), mock.Anything).
		Return(nil)

	// ACT
	err := bus.Publish(context.Background(), event.NewDropDiscardedEvent("zezima", "Zulrah", "gate denied"))

	// ASSERT
	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestHandleEvent_RepoErrorPropagates(t *testing.T) {
	// ARRANGE
	repo := new(MockRepository)
	svc := NewService(repo)
	bus := event.NewMemoryBus()
	require.NoError(t, svc.Subscribe(bus))

	repo.On("LogEvent", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("connection refused"))

	// ACT
	err := bus.Publish(context.Background(), event.NewTeamCreatedEvent(1, "red-raiders"))

	// ASSERT
	assert.Error(t, err)
}

func TestCleanupJob_Process(t *testing.T) {
	// ARRANGE
	repo := new(MockRepository)
	repo.On("CleanupOldEvents", mock.Anything, 30).Return(int64(42), nil)
	job := NewCleanupJob(NewService(repo), 30)

	// ACT
	err := job.Process(context.Background())

	// ASSERT
	assert.NoError(t, err)
	repo.AssertExpectations(t)
}
