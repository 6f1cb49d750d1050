package drawer

import "math"

// modeStrategy holds everything that differs between Regular and Compact.
type modeStrategy interface {
	// toOffset turns a screen-space translation into a candidate offset.
	toOffset(anchor, translationY float64) float64
	// clampFloor is the smallest offset a live drag may reach.
	clampFloor(o Offsets, pad float64) float64
	// flick reports whether a release velocity counts as a flick.
	flick(velocityY float64) bool
	// snap picks the resting state for a slow release.
	snap(offset float64, o Offsets, pad float64) ExpansionState
	// liveFade reports whether the fade follows the drawer while it moves.
	liveFade() bool
}

func newStrategy(mode LayoutMode, cfg Config) modeStrategy {
	if mode == Regular {
		return regularStrategy{threshold: cfg.VelocityThreshold, fade: cfg.LiveFadeRegular}
	}
	return compactStrategy{threshold: cfg.VelocityThreshold, symmetric: cfg.SymmetricCompactFlick}
}

type regularStrategy struct {
	threshold float64
	fade      bool
}

// Dragging down lowers the bottom edge, so the offset from the bottom shrinks.
func (regularStrategy) toOffset(anchor, translationY float64) float64 {
	return anchor - translationY
}

func (regularStrategy) clampFloor(o Offsets, pad float64) float64 {
	return o.FullHeight + pad/2
}

func (s regularStrategy) flick(velocityY float64) bool {
	return math.Abs(velocityY) > s.threshold
}

func (regularStrategy) snap(offset float64, o Offsets, _ float64) ExpansionState {
	toCompressed := (o.Expanded + o.Compressed) / 2
	toFullHeight := (o.Expanded + o.FullHeight) / 2

	switch {
	case offset > toCompressed:
		return Compressed
	case offset < toFullHeight:
		return FullHeight
	default:
		return Expanded
	}
}

func (s regularStrategy) liveFade() bool { return s.fade }

type compactStrategy struct {
	threshold float64
	symmetric bool
}

func (compactStrategy) toOffset(anchor, translationY float64) float64 {
	return anchor + translationY
}

func (compactStrategy) clampFloor(o Offsets, pad float64) float64 {
	return o.FullHeight - pad/2
}

func (s compactStrategy) flick(velocityY float64) bool {
	if s.symmetric {
		return math.Abs(velocityY) > s.threshold
	}
	return velocityY > s.threshold
}

func (compactStrategy) snap(offset float64, o Offsets, pad float64) ExpansionState {
	switch {
	case offset <= o.Expanded-pad:
		return FullHeight
	case offset < o.Compressed-pad:
		return Expanded
	default:
		return Compressed
	}
}

func (compactStrategy) liveFade() bool { return true }

// flickTarget resolves a fast release. The direction comes from the state the
// drag started in and whether the drawer passed the expanded threshold.
func flickTarget(start ExpansionState, offset float64, o Offsets, pad float64) ExpansionState {
	pastExpanded := offset <= o.Expanded-pad

	switch start {
	case FullHeight:
		if pastExpanded {
			return Expanded
		}
		return Compressed
	case Expanded:
		if pastExpanded {
			return FullHeight
		}
		return Compressed
	default:
		if pastExpanded {
			return FullHeight
		}
		return Expanded
	}
}
