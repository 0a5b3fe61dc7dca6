package metrics

import (
	"context"

	"github.com/osse101/ClanWarsBot_Go/internal/event"
	"github.com/osse101/ClanWarsBot_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
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
		bus.Subscribe(eventType, e.HandleEvent)
	}

	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	// Always increment event counter
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch evt.Type {
	case event.DropAttributed:
		payload, err := event.DecodePayload[event.DropAttributedPayloadV1](evt.Payload)
		if err != nil {
			log.Debug("Failed to decode event payload", "type", evt.Type, "error", err)
			return nil
		}
		DropsAttributed.WithLabelValues(payload.TeamName).Inc()
		for _, credit := range payload.Credits {
			ResourcesCredited.WithLabelValues(credit.Category).Add(float64(credit.Amount))
		}

	case event.DropDiscarded:
		payload, err := event.DecodePayload[event.DropDiscardedPayloadV1](evt.Payload)
		if err != nil {
			log.Debug("Failed to decode event payload", "type", evt.Type, "error", err)
			return nil
		}
		DropsDiscarded.WithLabelValues(payload.Reason).Inc()

	case event.BuildingUpgraded:
		payload, err := event.DecodePayload[event.BuildingChangedPayloadV1](evt.Payload)
		if err != nil {
			log.Debug("Failed to decode event payload", "type", evt.Type, "error", err)
			return nil
		}
		BuildingsUpgraded.WithLabelValues(payload.Building).Inc()

	case event.BuildingDowngraded:
		payload, err := event.DecodePayload[event.BuildingChangedPayloadV1](evt.Payload)
		if err != nil {
			log.Debug("Failed to decode event payload", "type", evt.Type, "error", err)
			return nil
		}
		BuildingsDowngraded.WithLabelValues(payload.Building).Inc()
	}

	return nil
}
