package eventlog

// JSON payload field keys
const (
	payloadKeyTeamID = "team_id"
)

// Log messages
const (
	logMsgPayloadNotLoggable = "Event payload could not be flattened, skipping log"
	logMsgFailedToLogEvent   = "Failed to log event to database"
	logMsgEventLogged        = "Event logged to database"

	logMsgCleanupJobStarting  = "Starting event log cleanup job"
	logMsgCleanupJobFailed    = "Event log cleanup failed"
	logMsgCleanupJobCompleted = "Event log cleanup completed"
)
