package bootstrap

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/osse101/ClanWarsBot_Go/internal/event"
	"github.com/osse101/ClanWarsBot_Go/internal/eventlog"
	"github.com/osse101/ClanWarsBot_Go/internal/metrics"
	"github.com/osse101/ClanWarsBot_Go/internal/notify"
	"github.com/osse101/ClanWarsBot_Go/internal/worker"
)

// RegisterEventHandlers wires every bus consumer: prometheus counters,
// the audit log, and the throttled town display refresher.
func RegisterEventHandlers(
	bus event.Bus,
	eventLogService eventlog.Service,
	display notify.Display,
	pool *worker.Pool,
	refreshWindow time.Duration,
) (*notify.Sink, error) {
	collector := metrics.NewEventMetricsCollector()
	if err := collector.Register(bus); err != nil {
		return nil, fmt.Errorf("failed to register metrics collector: %w", err)
	}
	slog.Debug(LogMsgMetricsRegistered)

	if err := eventLogService.Subscribe(bus); err != nil {
		return nil, fmt.Errorf("failed to subscribe event logger: %w", err)
	}
	slog.Debug(LogMsgEventLoggerSubscribed)

	sink := notify.NewSink(display, pool, refreshWindow)
	sink.Register(bus)
	slog.Debug(LogMsgDisplaySinkRegistered)

	return sink, nil
}
