package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Business Metrics
var (
	DropsAttributed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameDropsAttributed,
			Help: HelpTextDropsAttributed,
		},
		[]string{LabelTeam},
	)

	DropsDiscarded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameDropsDiscarded,
			Help: HelpTextDropsDiscarded,
		},
		[]string{LabelReason},
	)

	ResourcesCredited = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameResourcesCredited,
			Help: HelpTextResourcesCredited,
		},
		[]string{LabelCategory},
	)

	BuildingsUpgraded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameBuildingsUpgraded,
			Help: HelpTextBuildingsUpgraded,
		},
		[]string{LabelBuilding},
	)

	BuildingsDowngraded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameBuildingsDowngraded,
			Help: HelpTextBuildingsDowngraded,
		},
		[]string{LabelBuilding},
	)

	DisplayRefreshes = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameDisplayRefreshes,
			Help: HelpTextDisplayRefreshes,
		},
	)

	DisplayRefreshesThrottled = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameDisplayRefreshesThrottled,
			Help: HelpTextDisplayRefreshesThrottled,
		},
	)

	DiscordCommands = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameDiscordCommands,
			Help: HelpTextDiscordCommands,
		},
	)
)
