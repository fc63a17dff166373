package tui

import "github.com/vovakirdan/tui2048/internal/core"

// CellAspect is the height of a terminal cell measured in cell widths.
// Vertical drags are scaled by it so both axes compare in the same unit.
const CellAspect = 2

// GestureKind classifies a completed mouse gesture.
type GestureKind int

const (
	GestureNone  GestureKind = iota
	GestureSwipe             // Drag long enough to count as a move
	GestureClick             // Short gesture, hit-tested against buttons
)

// Gesture is the outcome of a press/release pair.
type Gesture struct {
	Kind   GestureKind
	Action core.Action // Set for swipes
	X, Y   int         // Press position
}

// SwipeDetector turns mouse press/release pairs into swipes and clicks.
type SwipeDetector struct {
	threshold int
	startX    int
	startY    int
	active    bool
}

// NewSwipeDetector creates a detector. Thresholds below 1 are raised to 1.
func NewSwipeDetector(threshold int) SwipeDetector {
	return SwipeDetector{threshold: max(1, threshold)}
}

// Press records the start of a gesture.
func (d *SwipeDetector) Press(x, y int) {
	d.startX, d.startY = x, y
	d.active = true
}

// Release completes the gesture started by the last Press.
// A release without a press yields GestureNone.
func (d *SwipeDetector) Release(x, y int) Gesture {
	if !d.active {
		return Gesture{}
	}
	d.active = false

	g := Gesture{X: d.startX, Y: d.startY}
	if action, ok := ClassifySwipe(x-d.startX, y-d.startY, d.threshold); ok {
		g.Kind = GestureSwipe
		g.Action = action
		return g
	}

	g.Kind = GestureClick
	return g
}

// ClassifySwipe maps a drag of (dx, dy) cells to a move.
// Drags shorter than threshold on both axes are not swipes. Otherwise the
// dominant axis wins; ties go to the vertical axis.
func ClassifySwipe(dx, dy, threshold int) (core.Action, bool) {
	dy *= CellAspect
	ax, ay := core.Abs(dx), core.Abs(dy)

	if max(ax, ay) < threshold {
		return core.ActionNone, false
	}

	if ax > ay {
		if dx > 0 {
			return core.ActionRight, true
		}
		return core.ActionLeft, true
	}
	if dy > 0 {
		return core.ActionDown, true
	}
	return core.ActionUp, true
}
