// Package viewport owns the pan and zoom state of the map view and turns
// pointer, pinch and wheel input into viewBox updates.
//
// Coordinates passed in are container-local pixels. The viewBox lives in the
// render space of the fitted map image, where the image spans (0,0) to the
// fitted dimensions.
package viewport

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/lootmap/internal/domain"
	"github.com/osse101/lootmap/internal/event"
	"github.com/osse101/lootmap/internal/logger"
	"github.com/osse101/lootmap/internal/metrics"
	"github.com/osse101/lootmap/internal/throttle"
	"github.com/osse101/lootmap/internal/utils"
)

// Config controls the zoom range, the wheel step and gesture throttling.
type Config struct {
	MinScale    float64 `validate:"gt=0"`
	MaxScale    float64 `validate:"gtefield=MinScale"`
	WheelFactor float64 `validate:"gt=1"`
	// ThrottleHz caps move and wheel samples per second; 0 disables throttling.
	ThrottleHz float64        `validate:"gte=0"`
	Clock      throttle.Clock `validate:"-"`
}

// DefaultConfig returns the standard zoom range throttled to 120 gesture samples per second.
func DefaultConfig() Config {
	return Config{
		MinScale:    DefaultMinScale,
		MaxScale:    DefaultMaxScale,
		WheelFactor: DefaultWheelFactor,
		ThrottleHz:  DefaultThrottleHz,
	}
}

var validate = validator.New()

type pointer struct {
	id  int
	pos domain.Point
}

// Controller is the pan/zoom state machine. It is driven from one goroutine
// and is not safe for concurrent use.
type Controller struct {
	cfg Config
	bus event.Bus

	container domain.Dimensions
	fitted    domain.Dimensions
	measured  bool

	position domain.Point
	scale    float64

	state    State
	pointers []pointer // at most two, in press order
	moved    bool

	// gesture anchors, advanced only when a sample is applied
	lastPan      domain.Point
	prevDistance float64
	prevMidpoint domain.Point
	pendingMove  bool

	pendingNotches int
	lastCursor     domain.Point

	moveGate  *throttle.Gate
	wheelGate *throttle.Gate
}

// New returns a controller with no measured container. bus may be nil.
func New(cfg Config, bus event.Bus) (*Controller, error) {
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("%w: viewport config: %v", domain.ErrInvalidInput, err)
	}
	return &Controller{
		cfg:       cfg,
		bus:       bus,
		scale:     utils.Bounded(1, cfg.MinScale, cfg.MaxScale),
		moveGate:  throttle.NewGate(cfg.ThrottleHz, cfg.Clock),
		wheelGate: throttle.NewGate(cfg.ThrottleHz, cfg.Clock),
	}, nil
}

// Resize sets the container size and the size of the map image fitted into
// it, then re-centres the view at the current scale. An unmeasured size puts
// the controller back into the unmeasured state and returns false.
func (c *Controller) Resize(ctx context.Context, container, fitted domain.Dimensions) bool {
	c.clearGesture()
	if !container.Measured() || !fitted.Measured() {
		c.measured = false
		return false
	}
	c.container, c.fitted, c.measured = container, fitted, true
	c.center()
	c.changed(ctx, metrics.GestureResize)
	return true
}

// Reset returns to scale 1 with the content centred.
func (c *Controller) Reset(ctx context.Context) {
	c.clearGesture()
	c.scale = utils.Bounded(1, c.cfg.MinScale, c.cfg.MaxScale)
	if !c.measured {
		return
	}
	c.center()
	c.changed(ctx, metrics.GestureReset)
}

// Measured reports whether the controller has a usable container size.
func (c *Controller) Measured() bool { return c.measured }

// Scale returns the viewBox size relative to the container. Below 1 is zoomed in.
func (c *Controller) Scale() float64 { return c.scale }

// Position returns the top-left corner of the viewBox.
func (c *Controller) Position() domain.Point { return c.position }

// Dimensions returns the viewBox size.
func (c *Controller) Dimensions() domain.Dimensions { return c.container.Scale(c.scale) }

// State returns the current gesture state.
func (c *Controller) State() State { return c.state }

// IsPanning is true once a one-pointer drag has moved the view.
func (c *Controller) IsPanning() bool { return c.state == Panning && c.moved }

// ViewBoxString renders "x y width height". It is "0 0 0 0" while unmeasured.
func (c *Controller) ViewBoxString() string {
	if !c.measured {
		return "0 0 0 0"
	}
	dims := c.Dimensions()
	parts := []float64{c.position.X, c.position.Y, dims.Width, dims.Height}
	out := make([]string, len(parts))
	for i, v := range parts {
		out[i] = strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strings.Join(out, " ")
}

// ScreenToViewBox converts a container pixel into viewBox coordinates.
func (c *Controller) ScreenToViewBox(p domain.Point) (domain.Point, bool) {
	if !c.measured {
		return domain.Point{}, false
	}
	dims := c.Dimensions()
	return domain.Point{
		X: c.position.X + p.X/c.container.Width*dims.Width,
		Y: c.position.Y + p.Y/c.container.Height*dims.Height,
	}, true
}

// ViewBoxToScreen converts viewBox coordinates into a container pixel.
func (c *Controller) ViewBoxToScreen(v domain.Point) (domain.Point, bool) {
	if !c.measured {
		return domain.Point{}, false
	}
	dims := c.Dimensions()
	return domain.Point{
		X: (v.X - c.position.X) / dims.Width * c.container.Width,
		Y: (v.Y - c.position.Y) / dims.Height * c.container.Height,
	}, true
}

// ZoomIntoPoint sets the scale, clamped to the configured range, keeping the
// content under anchor (a container pixel) in place. Non-finite input is
// rejected and leaves the viewport unchanged.
func (c *Controller) ZoomIntoPoint(ctx context.Context, scale float64, anchor domain.Point) bool {
	if !c.measured || !utils.Finite(scale, anchor.X, anchor.Y) {
		return false
	}
	c.zoomAt(scale, anchor)
	c.changed(ctx, metrics.GestureZoom)
	return true
}

// Wheel zooms one notch at the cursor: out for positive deltaY, in for
// negative. A zero delta is ignored. Notches dropped by the throttle are
// carried into the next applied one.
func (c *Controller) Wheel(ctx context.Context, deltaY float64, cursor domain.Point) bool {
	if !c.measured {
		logger.FromContext(ctx).Debug(LogMsgGestureIgnored, LogFieldGesture, metrics.GestureWheel)
		return false
	}
	if deltaY == 0 {
		return false
	}

	if deltaY > 0 {
		c.pendingNotches++
	} else {
		c.pendingNotches--
	}
	c.lastCursor = cursor

	if !c.wheelGate.Allow() {
		metrics.GestureSamplesDropped.WithLabelValues(metrics.GestureWheel).Inc()
		return false
	}
	c.applyWheel(ctx)
	return true
}

// PointerDown registers a pressed pointer. The first starts a pan, the
// second a pinch. Further pointers are ignored.
func (c *Controller) PointerDown(ctx context.Context, id int, p domain.Point) {
	if !c.measured {
		logger.FromContext(ctx).Debug(LogMsgGestureIgnored, LogFieldGesture, metrics.GesturePan)
		return
	}
	if len(c.pointers) >= 2 || c.indexOf(id) >= 0 {
		return
	}

	c.flushMove(ctx)
	c.pointers = append(c.pointers, pointer{id: id, pos: p})

	switch len(c.pointers) {
	case 1:
		c.state = Panning
		c.lastPan = p
		c.moved = false
	case 2:
		c.state = PinchZooming
		c.prevDistance = utils.Distance(c.pointers[0].pos, c.pointers[1].pos)
		c.prevMidpoint = utils.Midpoint(c.pointers[0].pos, c.pointers[1].pos)
	}
}

// PointerMove updates a pressed pointer and applies the pan or pinch it
// causes. It returns false when the sample was dropped or changed nothing.
func (c *Controller) PointerMove(ctx context.Context, id int, p domain.Point) bool {
	i := c.indexOf(id)
	if i < 0 {
		return false
	}
	c.pointers[i].pos = p

	var gesture string
	switch c.state {
	case Panning:
		gesture = metrics.GesturePan
	case PinchZooming:
		gesture = metrics.GesturePinch
	default:
		return false
	}

	c.pendingMove = true
	if !c.moveGate.Allow() {
		metrics.GestureSamplesDropped.WithLabelValues(gesture).Inc()
		return false
	}
	c.flushMove(ctx)
	return true
}

// PointerUp releases a pointer at p. A pending throttled sample is applied
// first so the view converges on the final position. Leaving a pinch always
// returns to Idle, even while one pointer stays down.
func (c *Controller) PointerUp(ctx context.Context, id int, p domain.Point) {
	i := c.indexOf(id)
	if i < 0 {
		return
	}
	if c.pointers[i].pos != p {
		c.pointers[i].pos = p
		if c.state != Idle {
			c.pendingMove = true
		}
	}
	c.flushMove(ctx)
	c.release(ctx, i)
}

// PointerCancel releases a pointer without applying its pending sample.
func (c *Controller) PointerCancel(ctx context.Context, id int) {
	i := c.indexOf(id)
	if i < 0 {
		return
	}
	c.pendingMove = false
	c.release(ctx, i)
}

// Flush applies samples the throttle held back.
func (c *Controller) Flush(ctx context.Context) {
	c.flushMove(ctx)
	if c.pendingNotches != 0 && c.measured {
		c.applyWheel(ctx)
	}
}

func (c *Controller) release(ctx context.Context, i int) {
	wasPanning := c.IsPanning()
	c.pointers = append(c.pointers[:i], c.pointers[i+1:]...)

	if len(c.pointers) == 0 || c.state == PinchZooming {
		c.state = Idle
		c.moved = false
		c.pendingMove = false
	}
	if wasPanning && !c.IsPanning() {
		c.changed(ctx, metrics.GesturePan)
	}
}

func (c *Controller) flushMove(ctx context.Context) {
	if !c.pendingMove {
		return
	}
	c.pendingMove = false

	switch c.state {
	case Panning:
		c.applyPan(ctx)
	case PinchZooming:
		c.applyPinch(ctx)
	}
}

func (c *Controller) applyPan(ctx context.Context) {
	p := c.pointers[0].pos
	c.position = c.clamp(c.position.Add(c.toViewBoxDelta(c.lastPan.Sub(p))))
	c.lastPan = p
	c.moved = true
	c.changed(ctx, metrics.GesturePan)
}

// applyPinch pans by the midpoint movement, then zooms by the distance ratio
// anchored at the new midpoint, so the content under the fingers follows them.
func (c *Controller) applyPinch(ctx context.Context) {
	a, b := c.pointers[0].pos, c.pointers[1].pos
	distance := utils.Distance(a, b)
	midpoint := utils.Midpoint(a, b)

	if distance > 0 && c.prevDistance > 0 {
		c.position = c.position.Add(c.toViewBoxDelta(c.prevMidpoint.Sub(midpoint)))
		c.zoomAt(c.scale*c.prevDistance/distance, midpoint)
		c.changed(ctx, metrics.GesturePinch)
	}
	c.prevDistance = distance
	c.prevMidpoint = midpoint
}

func (c *Controller) applyWheel(ctx context.Context) {
	notches := c.pendingNotches
	c.pendingNotches = 0
	c.zoomAt(c.scale*math.Pow(c.cfg.WheelFactor, float64(notches)), c.lastCursor)
	c.changed(ctx, metrics.GestureWheel)
}

// zoomAt moves the viewBox so the point under anchor stays put:
// newPos = pos - (newDims - oldDims) * anchor/container.
func (c *Controller) zoomAt(scale float64, anchor domain.Point) {
	old := c.Dimensions()
	c.scale = utils.Bounded(scale, c.cfg.MinScale, c.cfg.MaxScale)
	next := c.Dimensions()

	c.position = c.clamp(domain.Point{
		X: c.position.X - (next.Width-old.Width)*anchor.X/c.container.Width,
		Y: c.position.Y - (next.Height-old.Height)*anchor.Y/c.container.Height,
	})
}

func (c *Controller) toViewBoxDelta(screen domain.Point) domain.Point {
	dims := c.Dimensions()
	return domain.Point{
		X: screen.X * dims.Width / c.container.Width,
		Y: screen.Y * dims.Height / c.container.Height,
	}
}

// clamp keeps the viewBox centre inside the fitted content.
func (c *Controller) clamp(p domain.Point) domain.Point {
	dims := c.Dimensions()
	return domain.Point{
		X: utils.Bounded(p.X, -dims.Width/2, c.fitted.Width-dims.Width/2),
		Y: utils.Bounded(p.Y, -dims.Height/2, c.fitted.Height-dims.Height/2),
	}
}

func (c *Controller) center() {
	dims := c.Dimensions()
	c.position = domain.Point{
		X: (c.fitted.Width - dims.Width) / 2,
		Y: (c.fitted.Height - dims.Height) / 2,
	}
}

func (c *Controller) clearGesture() {
	c.pointers = nil
	c.state = Idle
	c.moved = false
	c.pendingMove = false
	c.pendingNotches = 0
}

func (c *Controller) indexOf(id int) int {
	for i, p := range c.pointers {
		if p.id == id {
			return i
		}
	}
	return -1
}

func (c *Controller) changed(ctx context.Context, gesture string) {
	metrics.ViewportUpdates.WithLabelValues(gesture).Inc()
	if c.bus == nil {
		return
	}
	evt := event.NewViewportChangedEvent(c.ViewBoxString(), c.scale, c.IsPanning())
	if err := c.bus.Publish(ctx, evt); err != nil {
		metrics.EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, LogFieldGesture, gesture, LogFieldError, err)
	}
}
