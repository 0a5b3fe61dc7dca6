// Package notify keeps team displays in sync with the ledger. It
// listens for domain events and schedules embed refreshes on a worker
// pool, rate limited per team so a burst of drops becomes one refresh.
package notify

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/ClanWarsBot_Go/internal/event"
	"github.com/osse101/ClanWarsBot_Go/internal/logger"
	"github.com/osse101/ClanWarsBot_Go/internal/metrics"
	"github.com/osse101/ClanWarsBot_Go/internal/worker"
)

// Display renders a team's current state wherever it is shown.
type Display interface {
	RefreshTeam(ctx context.Context, teamID int, teamName string) error
}

// Sink subscribes to team-affecting events and turns them into
// throttled display refreshes.
type Sink struct {
	display Display
	pool    *worker.Pool

	// recent marks teams refreshed within the throttle window; entries
	// expire on their own.
	recent *expirable.LRU[int, time.Time]
}

// NewSink creates a Sink. window is the minimum time between refreshes
// of the same team.
func NewSink(display Display, pool *worker.Pool, window time.Duration) *Sink {
	return &Sink{
		display: display,
		pool:    pool,
		recent:  expirable.NewLRU[int, time.Time](throttleCacheSize, nil, window),
	}
}

// Register subscribes the sink to every event that changes what a team
// display shows.
func (s *Sink) Register(bus event.Bus) {
	for _, t := range []event.Type{
		event.DropAttributed,
		event.ResourcesChanged,
		event.BuildingUpgraded,
		event.BuildingDowngraded,
		event.TeamCreated,
	} {
		bus.Subscribe(t, s.handleEvent)
	}
}

func (s *Sink) handleEvent(ctx context.Context, evt event.Event) error {
	teamID, teamName, ok := teamOf(evt)
	if !ok {
		return nil
	}

	log := logger.FromContext(ctx)

	if _, seen := s.recent.Get(teamID); seen {
		metrics.DisplayRefreshesThrottled.Inc()
		log.Debug(logMsgRefreshThrottled, "team", teamName)
		return nil
	}
	s.recent.Add(teamID, time.Now())

	job := &refreshJob{display: s.display, teamID: teamID, teamName: teamName}
	if !s.pool.TryEnqueue(job) {
		// Clear the throttle mark so the next event gets another shot.
		s.recent.Remove(teamID)
		log.Warn(logMsgQueueFull, "team", teamName)
		return nil
	}

	log.Debug(logMsgRefreshQueued, "team", teamName, "event_type", evt.Type)
	return nil
}

// teamOf extracts the affected team from any subscribed event type.
func teamOf(evt event.Event) (int, string, bool) {
	switch evt.Type {
	case event.DropAttributed:
		p, err := event.DecodePayload[event.DropAttributedPayloadV1](evt.Payload)
		if err != nil {
			return 0, "", false
		}
		return p.TeamID, p.TeamName, true
	case event.BuildingUpgraded, event.BuildingDowngraded:
		p, err := event.DecodePayload[event.BuildingChangedPayloadV1](evt.Payload)
		if err != nil {
			return 0, "", false
		}
		return p.TeamID, p.TeamName, true
	case event.ResourcesChanged, event.TeamCreated:
		p, err := event.DecodePayload[event.TeamPayloadV1](evt.Payload)
		if err != nil {
			return 0, "", false
		}
		return p.TeamID, p.TeamName, true
	}
	return 0, "", false
}

type refreshJob struct {
	display  Display
	teamID   int
	teamName string
}

func (j *refreshJob) Process(ctx context.Context) error {
	metrics.DisplayRefreshes.Inc()
	return j.display.RefreshTeam(ctx, j.teamID, j.teamName)
}
