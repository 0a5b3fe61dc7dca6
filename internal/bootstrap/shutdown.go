package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"github.com/osse101/ClanWarsBot_Go/internal/database"
	"github.com/osse101/ClanWarsBot_Go/internal/discord"
	"github.com/osse101/ClanWarsBot_Go/internal/event"
	"github.com/osse101/ClanWarsBot_Go/internal/scheduler"
	"github.com/osse101/ClanWarsBot_Go/internal/server"
	"github.com/osse101/ClanWarsBot_Go/internal/worker"
)

// ShutdownTimeout is the maximum time to wait for in-flight work to drain.
const ShutdownTimeout = 10 * time.Second

// Components holds everything that needs an ordered teardown.
type Components struct {
	Server     *server.Server
	Bot        *discord.Bot
	Scheduler  *scheduler.Scheduler
	WorkerPool *worker.Pool
	Publisher  *event.ResilientPublisher
	DeadLetter *event.DeadLetterWriter
	DBPool     database.Pool
}

// GracefulShutdown stops components in dependency order: stop accepting
// new work first, then drain, then release shared resources.
func GracefulShutdown(c Components) {
	slog.Info(LogMsgShuttingDown)

	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()

	if c.Server != nil {
		if err := c.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if c.Bot != nil {
		c.Bot.Stop()
	}

	if c.Scheduler != nil {
		c.Scheduler.Stop()
	}

	if c.WorkerPool != nil {
		c.WorkerPool.Stop()
	}

	if c.Publisher != nil {
		c.Publisher.Wait()
		slog.Debug(LogMsgEventPublisherFlushed)
	}

	if c.DeadLetter != nil {
		if err := c.DeadLetter.Close(); err != nil {
			slog.Error("Failed to close dead-letter writer", "error", err)
		}
	}

	if c.DBPool != nil {
		c.DBPool.Close()
	}

	slog.Info(LogMsgShutdownComplete)
}
