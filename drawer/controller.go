package drawer

import (
	"log"
	"math"
	"time"
)

// Session is the per-gesture state of the drawer.
type Session struct {
	// GestureAnchorOffset is the offset the current drag started from.
	GestureAnchorOffset float64
	// SettledOffset is the last offset the drawer came to rest at. It only
	// changes on layout and when an animation completes.
	SettledOffset float64
	// LiveOffset follows the drawer during drags.
	LiveOffset float64

	State              ExpansionState
	Dragging           bool
	InteractionEnabled bool
}

// DragResult is the outcome of one drag sample.
type DragResult struct {
	Offset   float64
	Accepted bool
	// RefreshFade asks the host to recompute the overlay fade.
	RefreshFade bool
}

// AnimationRequest describes the spring that carries the drawer to rest.
type AnimationRequest struct {
	TargetOffset    float64
	Duration        time.Duration
	Damping         float64
	InitialVelocity float64
}

// Transition is a decision to move the drawer to a resting state.
type Transition struct {
	From       ExpansionState
	To         ExpansionState
	FromOffset float64
	Offset     float64
	Animation  AnimationRequest
}

// Controller turns drag samples into offsets and resting states. It is not
// safe for concurrent use; all calls are expected from the UI loop.
type Controller struct {
	cfg      Config
	mode     LayoutMode
	strategy modeStrategy
	size     Size
	laidOut  bool
	session  Session
}

// NewController creates a controller resting in the compressed state.
func NewController(cfg Config) *Controller {
	return &Controller{
		cfg:      cfg,
		mode:     Compact,
		strategy: newStrategy(Compact, cfg),
		session: Session{
			State:              Compressed,
			InteractionEnabled: true,
		},
	}
}

// Config returns the tuning the controller was built with.
func (c *Controller) Config() Config { return c.cfg }

// Mode returns the layout mode of the last layout pass.
func (c *Controller) Mode() LayoutMode { return c.mode }

// Size returns the container of the last layout pass.
func (c *Controller) Size() Size { return c.size }

// State returns the state the drawer is resting in or heading to.
func (c *Controller) State() ExpansionState { return c.session.State }

// Offset returns the live offset.
func (c *Controller) Offset() float64 { return c.session.LiveOffset }

// SettledOffset returns the offset the drawer last came to rest at.
func (c *Controller) SettledOffset() float64 { return c.session.SettledOffset }

// Dragging reports whether a gesture is in progress.
func (c *Controller) Dragging() bool { return c.session.Dragging }

// InteractionEnabled reports whether the drawer content may receive input.
func (c *Controller) InteractionEnabled() bool { return c.session.InteractionEnabled }

// LaidOut reports whether Layout has been called.
func (c *Controller) LaidOut() bool { return c.laidOut }

// Session returns a copy of the session.
func (c *Controller) Session() Session { return c.session }

// LiveFade reports whether the fade should follow the drawer while it moves
// in the current mode.
func (c *Controller) LiveFade() bool { return c.strategy.liveFade() }

// Offsets returns the resting offsets for the current container.
func (c *Controller) Offsets() Offsets {
	return c.cfg.Heights.OffsetsFor(c.size)
}

// Layout recomputes the resting offset of the current state for a new
// container and returns it. The host applies it without animation.
func (c *Controller) Layout(size Size, mode LayoutMode) float64 {
	c.size = size
	if !c.laidOut || mode != c.mode {
		c.strategy = newStrategy(mode, c.cfg)
	}
	c.mode = mode
	c.laidOut = true

	offset := c.cfg.Heights.Offset(c.session.State, size)
	c.session.SettledOffset = offset
	c.session.GestureAnchorOffset = offset
	c.session.LiveOffset = offset
	return offset
}

// Drag applies one drag sample. translationY is the screen-space distance
// moved since the gesture began, positive downwards. Samples that would pull
// the drawer too far past full height are rejected and the live offset stays
// where it was.
func (c *Controller) Drag(translationY, velocityY float64) DragResult {
	if !c.laidOut {
		return DragResult{Offset: c.session.LiveOffset}
	}

	if !c.session.Dragging {
		c.session.Dragging = true
		c.session.GestureAnchorOffset = c.session.SettledOffset
	}
	c.session.InteractionEnabled = false

	candidate := c.strategy.toOffset(c.session.GestureAnchorOffset, translationY)
	if math.IsNaN(candidate) || candidate < c.strategy.clampFloor(c.Offsets(), c.cfg.Padding) {
		return DragResult{Offset: c.session.LiveOffset}
	}

	c.session.LiveOffset = candidate
	return DragResult{
		Offset:      candidate,
		Accepted:    true,
		RefreshFade: c.strategy.liveFade(),
	}
}

// FadeFraction maps an offset to the overlay opacity. The result grows from
// zero at the expanded offset to the fade cap on the way to full height.
func (c *Controller) FadeFraction(offset float64) float64 {
	if math.IsNaN(offset) {
		return 0
	}
	o := c.Offsets()

	total := o.Expanded - o.FullHeight
	if total < c.cfg.Epsilon {
		total = c.cfg.Epsilon
	}
	progress := (o.Expanded - offset) / total

	progress = math.Max(0, progress)
	progress = math.Min(c.cfg.FadeCap, progress)
	return progress
}

// DragEnd decides where the drawer comes to rest after a gesture and
// returns the transition the host should animate. The state changes right
// away; the settled offset waits for CompleteAnimation.
func (c *Controller) DragEnd(currentOffset, velocityY float64) Transition {
	c.session.Dragging = false
	c.session.InteractionEnabled = true

	start := c.session.State
	if !c.laidOut {
		c.session.State = Compressed
		return Transition{
			From:       start,
			To:         Compressed,
			FromOffset: c.session.SettledOffset,
			Offset:     c.session.SettledOffset,
		}
	}

	o := c.Offsets()
	var target ExpansionState
	if c.strategy.flick(velocityY) {
		target = flickTarget(start, currentOffset, o, c.cfg.Padding)
		log.Printf("drawer: flick from %s to %s (velocity %.1f)", start, target, velocityY)
	} else {
		target = c.strategy.snap(currentOffset, o, c.cfg.Padding)
		log.Printf("drawer: snap to %s at %.1f", target, currentOffset)
	}

	return c.transition(start, target, currentOffset, velocityY)
}

// ProgrammaticExpand sends the drawer to full height, for example when its
// search field gains focus.
func (c *Controller) ProgrammaticExpand() Transition {
	start := c.session.State
	from := c.session.LiveOffset
	log.Printf("drawer: expand from %s", start)
	return c.transition(start, FullHeight, from, c.cfg.ExpandVelocity)
}

// CompleteAnimation commits the resting offset of a finished transition.
func (c *Controller) CompleteAnimation(t Transition) {
	c.session.SettledOffset = t.Offset
	if !c.session.Dragging {
		c.session.LiveOffset = t.Offset
		c.session.GestureAnchorOffset = t.Offset
	}
}

// SetLiveOffset records where an animation has moved the drawer so a
// transition started mid-flight begins from the right place.
func (c *Controller) SetLiveOffset(offset float64) {
	if c.session.Dragging || math.IsNaN(offset) {
		return
	}
	c.session.LiveOffset = offset
}

func (c *Controller) transition(from, to ExpansionState, fromOffset, velocityY float64) Transition {
	target := c.Offsets().For(to)
	c.session.State = to

	return Transition{
		From:       from,
		To:         to,
		FromOffset: fromOffset,
		Offset:     target,
		Animation: AnimationRequest{
			TargetOffset:    target,
			Duration:        c.cfg.Duration,
			Damping:         c.cfg.Damping,
			InitialVelocity: SpringVelocity(velocityY, fromOffset, target, c.cfg),
		},
	}
}

// SpringVelocity converts a linear release velocity into the spring's initial
// velocity, expressed as the fraction of the travel distance covered per
// second. It is max(1/|v/(from-to)|, floor) computed without dividing by a
// zero velocity or a zero distance.
func SpringVelocity(velocityY, from, to float64, cfg Config) float64 {
	speed := math.Abs(velocityY)
	if math.IsNaN(speed) || speed < cfg.Epsilon {
		speed = cfg.Epsilon
	}
	distance := math.Abs(from - to)
	if math.IsNaN(distance) || math.IsInf(distance, 0) {
		return cfg.VelocityFloor
	}
	return math.Max(distance/speed, cfg.VelocityFloor)
}
