package viewport

// State is the gesture state of a Controller.
type State int

const (
	// Idle means no gesture is in progress.
	Idle State = iota
	// Panning means one pointer is down and drags the view.
	Panning
	// PinchZooming means two pointers are down.
	PinchZooming
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Panning:
		return "panning"
	case PinchZooming:
		return "pinch_zooming"
	default:
		return "unknown"
	}
}
