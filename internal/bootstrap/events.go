package bootstrap

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/osse101/ClanWarsBot_Go/internal/event"
)

// InitializeEventSystem creates the in-memory bus and wraps it in a
// resilient publisher with a file-backed dead letter queue.
// The returned writer must be closed on shutdown.
func InitializeEventSystem() (event.Bus, *event.ResilientPublisher, *event.DeadLetterWriter, error) {
	eventBus := event.NewMemoryBus()

	deadLetterPath := EventDefaultDeadLetterPath
	if err := os.MkdirAll(filepath.Dir(deadLetterPath), DirPermission); err != nil {
		return nil, nil, nil, fmt.Errorf("%s: %w", LogMsgFailedCreateDeadLetter, err)
	}

	deadLetter, err := event.NewDeadLetterWriter(deadLetterPath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to open dead-letter file: %w", err)
	}

	publisher := event.NewResilientPublisher(eventBus, event.ResilientConfig{
		MaxRetries: EventDefaultMaxRetries,
		RetryDelay: EventDefaultRetryDelay,
		DeadLetter: deadLetter,
	})

	slog.Info(LogMsgEventSystemInitialized,
		"max_retries", EventDefaultMaxRetries,
		"retry_delay", EventDefaultRetryDelay,
		"dead_letter_path", deadLetterPath)

	return eventBus, publisher, deadLetter, nil
}
