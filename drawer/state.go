// Package drawer implements the state machine behind a draggable drawer panel:
// snap states, live drag clamping, release decisions and the spring that
// carries the drawer to its resting offset. It knows nothing about rendering.
package drawer

import "fmt"

// ExpansionState is one of the resting positions of the drawer, ordered by
// visible height.
type ExpansionState int

const (
	Compressed ExpansionState = iota
	Expanded
	FullHeight
)

func (s ExpansionState) String() string {
	switch s {
	case Compressed:
		return "compressed"
	case Expanded:
		return "expanded"
	case FullHeight:
		return "full height"
	}
	return fmt.Sprintf("ExpansionState(%d)", int(s))
}

// LayoutMode selects the sign conventions used while dragging.
type LayoutMode int

const (
	// Regular hangs the drawer from the top of the container; dragging moves
	// its bottom edge, so the offset is measured up from the bottom.
	Regular LayoutMode = iota
	// Compact stands the drawer on the bottom of the container; dragging
	// moves its top edge, so the offset is measured down from the top.
	Compact
)

func (m LayoutMode) String() string {
	if m == Regular {
		return "regular"
	}
	return "compact"
}

// Size is the container the drawer lives in.
type Size struct {
	Width  float64
	Height float64
}

// ModeForSize picks Regular only when the container is roomy in both
// directions.
func ModeForSize(size Size, cfg Config) LayoutMode {
	if size.Width >= cfg.RegularMinWidth && size.Height >= cfg.RegularMinHeight {
		return Regular
	}
	return Compact
}

// HeightTable holds the visible height of each state as a fraction of the
// container height.
type HeightTable struct {
	Compressed float64 `yaml:"compressed"`
	Expanded   float64 `yaml:"expanded"`
	FullHeight float64 `yaml:"full_height"`
}

// DefaultHeights returns 10%, 40% and 90% of the container.
func DefaultHeights() HeightTable {
	return HeightTable{
		Compressed: 0.1,
		Expanded:   0.4,
		FullHeight: 0.9,
	}
}

// Validate checks 0 < compressed < expanded < full height <= 1.
func (h HeightTable) Validate() error {
	if h.Compressed <= 0 {
		return fmt.Errorf("compressed height fraction must be positive, got %v", h.Compressed)
	}
	if h.Expanded <= h.Compressed {
		return fmt.Errorf("expanded height fraction %v must exceed compressed %v", h.Expanded, h.Compressed)
	}
	if h.FullHeight <= h.Expanded {
		return fmt.Errorf("full height fraction %v must exceed expanded %v", h.FullHeight, h.Expanded)
	}
	if h.FullHeight > 1 {
		return fmt.Errorf("full height fraction must be at most 1, got %v", h.FullHeight)
	}
	return nil
}

// Height returns the visible drawer height for state. It is recomputed on
// every call since the container can change size at any time.
func (h HeightTable) Height(state ExpansionState, size Size) float64 {
	container := size.Height
	if container < 0 {
		container = 0
	}
	switch state {
	case Expanded:
		return container * h.Expanded
	case FullHeight:
		return container * h.FullHeight
	default:
		return container * h.Compressed
	}
}

// Offset returns the distance between the container edge and the drawer's
// leading edge when resting in state.
func (h HeightTable) Offset(state ExpansionState, size Size) float64 {
	container := size.Height
	if container < 0 {
		container = 0
	}
	return container - h.Height(state, size)
}

// Offsets is the resting offset of every state for one container size.
type Offsets struct {
	Compressed float64
	Expanded   float64
	FullHeight float64
}

// OffsetsFor computes all three resting offsets.
func (h HeightTable) OffsetsFor(size Size) Offsets {
	return Offsets{
		Compressed: h.Offset(Compressed, size),
		Expanded:   h.Offset(Expanded, size),
		FullHeight: h.Offset(FullHeight, size),
	}
}

// For returns the offset of state.
func (o Offsets) For(state ExpansionState) float64 {
	switch state {
	case Expanded:
		return o.Expanded
	case FullHeight:
		return o.FullHeight
	default:
		return o.Compressed
	}
}
