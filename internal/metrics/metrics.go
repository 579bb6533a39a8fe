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

// Fishing Metrics
var (
	Catches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCatches,
			Help: HelpTextCatches,
		},
		[]string{LabelCategory, LabelBonus, LabelForced},
	)

	TotalLuck = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameTotalLuck,
			Help:    HelpTextTotalLuck,
			Buckets: LuckBuckets,
		},
	)

	TimingHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameTimingHits,
			Help: HelpTextTimingHits,
		},
		[]string{LabelTier},
	)

	Rerolls = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameRerolls,
			Help: HelpTextRerolls,
		},
	)

	Fallbacks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameFallbacks,
			Help: HelpTextFallbacks,
		},
	)

	UniqueClaims = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameUniqueClaims,
			Help: HelpTextUniqueClaims,
		},
		[]string{LabelWorld},
	)

	UniqueCollisions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameUniqueCollisions,
			Help: HelpTextUniqueCollisions,
		},
		[]string{LabelWorld},
	)

	ConfigReloads = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameConfigReloads,
			Help: HelpTextConfigReloads,
		},
	)

	KnownUniques = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameKnownUniques,
			Help: HelpTextKnownUniques,
		},
	)

	ClaimedUniques = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: MetricNameClaimedUniques,
			Help: HelpTextClaimedUniques,
		},
		[]string{LabelWorld},
	)
)
