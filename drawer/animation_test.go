package drawer

import (
	"math"
	"testing"
)

func TestAnimationConverges(t *testing.T) {
	c := NewController(DefaultConfig())
	c.Layout(screen, Regular)
	c.Drag(600, 5)
	tr := c.DragEnd(c.Offset(), 5)

	a := NewAnimation(tr, 60)
	if a.Offset() != 300 {
		t.Fatalf("Offset() before first step = %v, want 300", a.Offset())
	}

	var offset float64
	done := false
	frames := 0
	for !done {
		offset, done = a.Step()
		frames++
		if math.IsNaN(offset) {
			t.Fatalf("frame %d produced NaN", frames)
		}
		if frames > 10000 {
			t.Fatal("animation never finished")
		}
	}
	if offset != 100 {
		t.Errorf("final offset = %v, want 100", offset)
	}
	if frames > 120 {
		t.Errorf("animation took %d frames, want at most 120", frames)
	}

	again, stillDone := a.Step()
	if again != 100 || !stillDone {
		t.Errorf("Step() after completion = %v, %v", again, stillDone)
	}
}

func TestAnimationZeroTravel(t *testing.T) {
	tr := Transition{
		From:       Expanded,
		To:         Expanded,
		FromOffset: 600,
		Offset:     600,
		Animation:  AnimationRequest{TargetOffset: 600, Duration: DefaultConfig().Duration, Damping: 0.6, InitialVelocity: 0.08},
	}
	a := NewAnimation(tr, 60)
	if !a.Done() {
		t.Fatal("zero-travel animation should be done immediately")
	}
	if got, done := a.Step(); got != 600 || !done {
		t.Errorf("Step() = %v, %v", got, done)
	}
}

func TestAnimationMovesTowardTarget(t *testing.T) {
	c := NewController(DefaultConfig())
	c.Layout(screen, Compact)
	tr := c.ProgrammaticExpand()

	a := NewAnimation(tr, 60)
	first, _ := a.Step()
	if first >= 900 {
		t.Errorf("first frame at %v did not move up from 900", first)
	}
	if a.Frame() <= 0 {
		t.Errorf("Frame() = %v", a.Frame())
	}
}
