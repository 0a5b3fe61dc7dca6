package eventlog

import (
	"context"
	"encoding/json"

	"github.com/osse101/ClanWarsBot_Go/internal/event"
	"github.com/osse101/ClanWarsBot_Go/internal/logger"
)

// Service persists the domain event stream as a war audit log
type Service interface {
	// Subscribe registers the event logger on every domain event type
	Subscribe(bus event.Bus) error

	// CleanupOldEvents removes entries older than retention period
	CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error)
}

type service struct {
	repo Repository
}

// NewService creates a new event logging service
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Subscribe registers event handlers for all domain event types
func (s *service) Subscribe(bus event.Bus) error {
	eventTypes := []event.Type{
		event.DropAttributed,
		event.DropDiscarded,
		event.BuildingUpgraded,
		event.BuildingDowngraded,
		event.ResourcesChanged,
		event.TeamCreated,
		event.TeamDeleted,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, s.handleEvent)
	}

	return nil
}

// handleEvent flattens the typed payload and logs it to the database
func (s *service) handleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	payload, err := payloadAsMap(evt.Payload)
	if err != nil {
		log.Debug(logMsgPayloadNotLoggable, "type", evt.Type, "error", err)
		return nil
	}

	var teamID *int
	if id, ok := payload[payloadKeyTeamID].(float64); ok {
		v := int(id)
		teamID = &v
	}

	if err := s.repo.LogEvent(ctx, string(evt.Type), teamID, payload); err != nil {
		log.Error(logMsgFailedToLogEvent, "error", err, "type", evt.Type)
		return err
	}

	log.Debug(logMsgEventLogged, "type", evt.Type, "team_id", teamID)
	return nil
}

// payloadAsMap round-trips a typed payload through JSON so the log
// schema stays stable regardless of the Go struct used to publish.
func payloadAsMap(payload interface{}) (map[string]interface{}, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	var m map[string]interface{}
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// CleanupOldEvents removes entries older than the retention period
func (s *service) CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error) {
	return s.repo.CleanupOldEvents(ctx, retentionDays)
}
