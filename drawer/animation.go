package drawer

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
)

const (
	settleDistance = 0.01
	settleVelocity = 0.01

	// maxSpringVelocity bounds the initial velocity to ten travel distances
	// per second. Slow releases otherwise launch the spring far past the
	// container.
	maxSpringVelocity = 10.0

	// An animation gives up converging after this many durations and jumps
	// to its target.
	maxDurations = 4
)

// Animation steps a damped spring from a transition's start offset to its
// target, one frame at a time.
type Animation struct {
	transition Transition
	spring     harmonica.Spring
	frame      time.Duration
	offset     float64
	velocity   float64
	frames     int
	maxFrames  int
	done       bool
}

// NewAnimation builds the spring for t, stepped at fps frames per second.
func NewAnimation(t Transition, fps int) *Animation {
	if fps <= 0 {
		fps = 60
	}
	req := t.Animation

	duration := req.Duration
	if duration <= 0 {
		duration = 500 * time.Millisecond
	}
	damping := req.Damping
	if damping <= 0 {
		damping = 1
	}
	angular := 2 * math.Pi / duration.Seconds()

	travel := t.Offset - t.FromOffset
	velocity := math.Min(req.InitialVelocity, maxSpringVelocity) * travel

	maxFrames := int(math.Ceil(duration.Seconds()*float64(fps))) * maxDurations
	return &Animation{
		transition: t,
		spring:     harmonica.NewSpring(harmonica.FPS(fps), angular, damping),
		frame:      time.Second / time.Duration(fps),
		offset:     t.FromOffset,
		velocity:   velocity,
		maxFrames:  maxFrames,
		done:       travel == 0,
	}
}

// Transition returns the transition being animated.
func (a *Animation) Transition() Transition { return a.transition }

// Frame returns the time between two steps.
func (a *Animation) Frame() time.Duration { return a.frame }

// Offset returns the current offset.
func (a *Animation) Offset() float64 {
	if a.done {
		return a.transition.Offset
	}
	return a.offset
}

// Done reports whether the spring has come to rest.
func (a *Animation) Done() bool { return a.done }

// Step advances the spring by one frame. The last frame lands exactly on the
// target.
func (a *Animation) Step() (float64, bool) {
	if a.done {
		return a.transition.Offset, true
	}

	target := a.transition.Offset
	a.offset, a.velocity = a.spring.Update(a.offset, a.velocity, target)
	a.frames++

	settled := math.Abs(a.offset-target) < settleDistance && math.Abs(a.velocity) < settleVelocity
	if settled || a.frames >= a.maxFrames || math.IsNaN(a.offset) {
		a.done = true
		a.offset = target
		a.velocity = 0
	}
	return a.offset, a.done
}
