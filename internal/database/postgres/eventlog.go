package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/ClanWarsBot_Go/internal/eventlog"
)

const (
	queryLogEvent = `
		INSERT INTO event_log (event_type, team_id, payload)
		VALUES ($1, $2, $3)`

	queryGetEventsByTeam = `
		SELECT id, event_type, team_id, payload, created_at
		FROM event_log
		WHERE team_id = $1
		ORDER BY created_at DESC
		LIMIT $2`

	queryCleanupOldEvents = `
		DELETE FROM event_log
		WHERE created_at < NOW() - ($1 * INTERVAL '1 day')`
)

// EventLogStore implements eventlog.Repository on postgres.
type EventLogStore struct {
	pool *pgxpool.Pool
}

// NewEventLogStore creates an EventLogStore.
func NewEventLogStore(pool *pgxpool.Pool) *EventLogStore {
	return &EventLogStore{pool: pool}
}

var _ eventlog.Repository = (*EventLogStore)(nil)

// LogEvent appends one entry. The payload lands in a JSONB column via
// pgx's native map encoding.
func (s *EventLogStore) LogEvent(ctx context.Context, eventType string, teamID *int, payload map[string]interface{}) error {
	if _, err := s.pool.Exec(ctx, queryLogEvent, eventType, teamID, payload); err != nil {
		return mapError(err)
	}
	return nil
}

// GetEvents retrieves entries matching the filter, newest first.
func (s *EventLogStore) GetEvents(ctx context.Context, filter eventlog.Filter) ([]eventlog.Entry, error) {
	query := `
		SELECT id, event_type, team_id, payload, created_at
		FROM event_log
		WHERE ($1::int IS NULL OR team_id = $1)
		  AND ($2::text IS NULL OR event_type = $2)
		  AND ($3::timestamptz IS NULL OR created_at >= $3)
		ORDER BY created_at DESC
		LIMIT $4`

	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}

	rows, err := s.pool.Query(ctx, query, filter.TeamID, filter.EventType, filter.Since, limit)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

// GetEventsByTeam retrieves the newest entries for one team.
func (s *EventLogStore) GetEventsByTeam(ctx context.Context, teamID int, limit int) ([]eventlog.Entry, error) {
	if limit <= 0 {
		limit = 100
	}

	rows, err := s.pool.Query(ctx, queryGetEventsByTeam, teamID, limit)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

// CleanupOldEvents removes entries past the retention window.
func (s *EventLogStore) CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error) {
	tag, err := s.pool.Exec(ctx, queryCleanupOldEvents, retentionDays)
	if err != nil {
		return 0, mapError(err)
	}
	return tag.RowsAffected(), nil
}

func scanEntries(rows pgx.Rows) ([]eventlog.Entry, error) {
	var entries []eventlog.Entry
	for rows.Next() {
		var e eventlog.Entry
		if err := rows.Scan(&e.ID, &e.EventType, &e.TeamID, &e.Payload, &e.CreatedAt); err != nil {
			return nil, mapError(err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
