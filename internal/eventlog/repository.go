package eventlog

import (
	"context"
	"time"
)

// Entry represents a logged domain event
type Entry struct {
	ID        int64                  `json:"id"`
	EventType string                 `json:"event_type"`
	TeamID    *int                   `json:"team_id,omitempty"`
	Payload   map[string]interface{} `json:"payload"`
	CreatedAt time.Time              `json:"created_at"`
}

// Filter filters entries for queries
type Filter struct {
	TeamID    *int
	EventType *string
	Since     *time.Time
	Limit     int
}

// Repository defines the interface for event logging storage
type Repository interface {
	// LogEvent stores an event in the database
	LogEvent(ctx context.Context, eventType string, teamID *int, payload map[string]interface{}) error

	// GetEvents retrieves entries based on filter criteria
	GetEvents(ctx context.Context, filter Filter) ([]Entry, error)

	// GetEventsByTeam retrieves the most recent entries for one team
	GetEventsByTeam(ctx context.Context, teamID int, limit int) ([]Entry, error)

	// CleanupOldEvents removes entries older than the specified number of days
	CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error)
}
