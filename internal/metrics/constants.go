package metrics

// ============================================================================
// Metric Names
// ============================================================================

// Data pipeline metric names
const (
	MetricNameRecordsSkipped    = "lootmap_records_skipped_total"
	MetricNameAggregationPasses = "lootmap_aggregation_passes_total"
	MetricNameLoadFailures      = "lootmap_load_failures_total"
	MetricNameMapsAggregated    = "lootmap_maps_aggregated"
	MetricNameMapsSkipped       = "lootmap_maps_skipped"
)

// Event metric names
const (
	MetricNameEventsPublished    = "lootmap_events_published_total"
	MetricNameEventHandlerErrors = "lootmap_event_handler_errors_total"
)

// Viewport metric names
const (
	MetricNameViewportUpdates       = "lootmap_viewport_updates_total"
	MetricNameGestureSamplesDropped = "lootmap_gesture_samples_dropped_total"
	MetricNameViewportScale         = "lootmap_viewport_scale"
)

// ============================================================================
// Metric Help Text
// ============================================================================

const (
	HelpTextRecordsSkipped        = "Records skipped during aggregation, by reason"
	HelpTextAggregationPasses     = "Number of spawn table recomputations"
	HelpTextLoadFailures          = "Data sources that failed to load, by resource"
	HelpTextMapsAggregated        = "Maps with a spawn table after the last recomputation"
	HelpTextMapsSkipped           = "Maps left out of the last recomputation for missing data"
	HelpTextEventsPublished       = "Total number of events published"
	HelpTextEventHandlerErrors    = "Total number of event handler errors"
	HelpTextViewportUpdates       = "Viewport state changes, by gesture"
	HelpTextGestureSamplesDropped = "Gesture samples dropped by the throttle, by gesture"
	HelpTextViewportScale         = "Current viewBox scale relative to the container"
)

// ============================================================================
// Label Names and Values
// ============================================================================

const (
	LabelReason   = "reason"
	LabelResource = "resource"
	LabelType     = "type"
	LabelGesture  = "gesture"
)

// Skip reasons
const (
	ReasonDegenerateDistribution = "degenerate_distribution"
	ReasonMissingMapData         = "missing_map_data"
	ReasonUnresolvedReference    = "unresolved_reference"
	ReasonMissingContainerItems  = "missing_container_items"
	ReasonInvalidMetadata        = "invalid_metadata"
)

// Gestures
const (
	GesturePan    = "pan"
	GesturePinch  = "pinch"
	GestureWheel  = "wheel"
	GestureZoom   = "zoom"
	GestureReset  = "reset"
	GestureResize = "resize"
)
