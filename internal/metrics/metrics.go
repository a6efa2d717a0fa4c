package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Data pipeline metrics
var (
	RecordsSkipped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRecordsSkipped,
			Help: HelpTextRecordsSkipped,
		},
		[]string{LabelReason},
	)

	AggregationPasses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameAggregationPasses,
			Help: HelpTextAggregationPasses,
		},
	)

	LoadFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameLoadFailures,
			Help: HelpTextLoadFailures,
		},
		[]string{LabelResource},
	)

	MapsAggregated = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameMapsAggregated,
			Help: HelpTextMapsAggregated,
		},
	)

	MapsSkipped = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameMapsSkipped,
			Help: HelpTextMapsSkipped,
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

// Viewport Metrics
var (
	ViewportUpdates = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameViewportUpdates,
			Help: HelpTextViewportUpdates,
		},
		[]string{LabelGesture},
	)

	GestureSamplesDropped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameGestureSamplesDropped,
			Help: HelpTextGestureSamplesDropped,
		},
		[]string{LabelGesture},
	)

	ViewportScale = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameViewportScale,
			Help: HelpTextViewportScale,
		},
	)
)
