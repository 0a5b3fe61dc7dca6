package event

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// Common event types
const (
	DropAttributed     Type = "drop.attributed"
	DropDiscarded      Type = "drop.discarded"
	BuildingUpgraded   Type = "building.upgraded"
	BuildingDowngraded Type = "building.downgraded"
	ResourcesChanged   Type = "resources.changed"
	TeamCreated        Type = "team.created"
	TeamDeleted        Type = "team.deleted"
)

// Typed event payloads for type safety

// ResourceCreditV1 is one resource credit applied by a drop.
type ResourceCreditV1 struct {
	Resource string `json:"resource"`
	Category string `json:"category"`
	Amount   int64  `json:"amount"`
}

// DropAttributedPayloadV1 is the typed payload for drop attribution events
type DropAttributedPayloadV1 struct {
	TeamID    int                `json:"team_id"`
	TeamName  string             `json:"team_name"`
	Username  string             `json:"username"`
	Source    string             `json:"source,omitempty"`
	Credits   []ResourceCreditV1 `json:"credits"`
	Timestamp int64              `json:"timestamp"`
}

// DropDiscardedPayloadV1 is the typed payload for discarded drop events
type DropDiscardedPayloadV1 struct {
	Username  string `json:"username"`
	Source    string `json:"source,omitempty"`
	Reason    string `json:"reason"`
	Timestamp int64  `json:"timestamp"`
}

// BuildingChangedPayloadV1 is the typed payload for upgrade and downgrade events
type BuildingChangedPayloadV1 struct {
	TeamID    int    `json:"team_id"`
	TeamName  string `json:"team_name"`
	Building  string `json:"building"`
	OldLevel  int    `json:"old_level"`
	NewLevel  int    `json:"new_level"`
	Timestamp int64  `json:"timestamp"`
}

// TeamPayloadV1 is the typed payload for team lifecycle events
type TeamPayloadV1 struct {
	TeamID    int    `json:"team_id"`
	TeamName  string `json:"team_name"`
	Timestamp int64  `json:"timestamp"`
}

// Type-safe event constructors

// NewDropAttributedEvent creates a new drop attributed event
func NewDropAttributedEvent(teamID int, teamName, username, source string, credits []ResourceCreditV1) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    DropAttributed,
		Payload: DropAttributedPayloadV1{
			TeamID:    teamID,
			TeamName:  teamName,
			Username:  username,
			Source:    source,
			Credits:   credits,
			Timestamp: time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewDropDiscardedEvent creates a new drop discarded event
func NewDropDiscardedEvent(username, source, reason string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    DropDiscarded,
		Payload: DropDiscardedPayloadV1{
			Username:  username,
			Source:    source,
			Reason:    reason,
			Timestamp: time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewBuildingUpgradedEvent creates a new building upgraded event
func NewBuildingUpgradedEvent(teamID int, teamName, building string, oldLevel, newLevel int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    BuildingUpgraded,
		Payload: BuildingChangedPayloadV1{
			TeamID:    teamID,
			TeamName:  teamName,
			Building:  building,
			OldLevel:  oldLevel,
			NewLevel:  newLevel,
			Timestamp: time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewBuildingDowngradedEvent creates a new building downgraded event
func NewBuildingDowngradedEvent(teamID int, teamName, building string, oldLevel, newLevel int) Event {
	e := NewBuildingUpgradedEvent(teamID, teamName, building, oldLevel, newLevel)
	e.Type = BuildingDowngraded
	return e
}

// NewResourcesChangedEvent creates a new resources changed event, used
// when a team's ledger changes outside drop attribution.
func NewResourcesChangedEvent(teamID int, teamName string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ResourcesChanged,
		Payload: TeamPayloadV1{
			TeamID:    teamID,
			TeamName:  teamName,
			Timestamp: time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewTeamCreatedEvent creates a new team created event
func NewTeamCreatedEvent(teamID int, teamName string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    TeamCreated,
		Payload: TeamPayloadV1{
			TeamID:    teamID,
			TeamName:  teamName,
			Timestamp: time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewTeamDeletedEvent creates a new team deleted event
func NewTeamDeletedEvent(teamID int, teamName string) Event {
	e := NewTeamCreatedEvent(teamID, teamName)
	e.Type = TeamDeleted
	return e
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	// Handlers run synchronously; anything slow belongs on the worker pool.
	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
