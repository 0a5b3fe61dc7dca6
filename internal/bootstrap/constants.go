package bootstrap

import "time"

// Defaults for the resilient event publisher
const (
	EventDefaultMaxRetries     = 3
	EventDefaultRetryDelay     = 2 * time.Second
	EventDefaultDeadLetterPath = "logs/deadletter.jsonl"

	// DirPermission is the standard permission for creating directories
	DirPermission = 0755
)

// Log messages
const (
	LogMsgLoggingInitialized     = "Logging initialized"
	LogMsgConfigurationLoaded    = "Configuration loaded"
	LogMsgEventSystemInitialized = "Event system initialized"
	LogMsgShuttingDown           = "Shutting down"
	LogMsgServerForcedShutdown   = "Server forced to shutdown"
	LogMsgEventPublisherFlushed  = "Event publisher flushed"
	LogMsgShutdownComplete       = "Shutdown complete"
	LogMsgFailedCreateDeadLetter = "failed to create dead-letter directory"
	LogMsgMetricsRegistered      = "Event metrics collector registered"
	LogMsgEventLoggerSubscribed  = "Event logger subscribed"
	LogMsgDisplaySinkRegistered  = "Display refresh sink registered"
)
