package viewport

// Defaults
const (
	DefaultMinScale    = 0.01
	DefaultMaxScale    = 2.0
	DefaultWheelFactor = 1.1
	DefaultThrottleHz  = 120.0 // at most one gesture sample every ~8.3ms
)

// Log messages
const (
	LogMsgPublishFailed  = "Failed to publish viewport change"
	LogMsgGestureIgnored = "Gesture ignored, container not measured"
)

// Log field keys
const (
	LogFieldGesture = "gesture"
	LogFieldError   = "error"
)
