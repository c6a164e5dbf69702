// Package reorder maps a pointer position during a drag gesture onto an
// insertion index among the dragged item's siblings.
//
// Indices produced here address the sibling sequence with the dragged item
// removed, which is exactly the "to" argument expected by the list model's
// remove-then-insert moves.
package reorder

import "math"

// NoTarget means the gesture has nowhere to go and should revert to origin.
const NoTarget = -1

// Position is an on-screen point. Units are whatever the renderer uses
// (terminal cells for the TUI).
type Position struct {
	X, Y float64
}

// Axis selects the layout direction in which indices grow.
type Axis int

const (
	// Vertical lists grow downward: larger Y means larger index.
	Vertical Axis = iota
	// Horizontal lists grow rightward.
	Horizontal
)

func (a Axis) of(p Position) float64 {
	if a == Horizontal {
		return p.X
	}
	return p.Y
}

// Target computes the insertion index for a dragged item at p, given the
// centers of its siblings in index order with the dragged item excluded.
//
// The pointer is compared with the nearest sibling center on the axis. A
// pointer at or before that center inserts before the sibling, otherwise
// after it. When two centers are equally near, the lower index wins. An empty
// sibling list yields 0; callers that know the dragged item was the only
// element should use NoTarget instead (Session does this).
func Target(p Position, siblings []Position, axis Axis) int {
	n := len(siblings)
	if n == 0 {
		return 0
	}
	v := axis.of(p)
	if v < axis.of(siblings[0]) {
		return 0
	}
	if v > axis.of(siblings[n-1]) {
		return n
	}

	nearest := 0
	best := math.Inf(1)
	for i, s := range siblings {
		d := math.Abs(v - axis.of(s))
		// Strict comparison keeps the lowest index on ties.
		if d < best {
			best = d
			nearest = i
		}
	}

	target := nearest
	if v > axis.of(siblings[nearest]) {
		target = nearest + 1
	}
	return clamp(target, 0, n)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Preview returns the visual order of n items while the item at origin is
// being dragged toward target (an index after removal). Element i of the
// result is the index in the committed order that should be drawn in slot i.
// A NoTarget or out-of-range target previews the committed order.
func Preview(n, origin, target int) []int {
	order := make([]int, 0, n)
	if origin < 0 || origin >= n || target < 0 || target >= n {
		for i := 0; i < n; i++ {
			order = append(order, i)
		}
		return order
	}
	for i := 0; i < n; i++ {
		if i != origin {
			order = append(order, i)
		}
	}
	order = append(order, 0)
	copy(order[target+1:], order[target:n-1])
	order[target] = origin
	return order
}
