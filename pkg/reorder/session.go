package reorder

// Session tracks one drag gesture from pointer-down to pointer-up. It never
// touches the list itself; End hands back the index to pass to a move.
type Session struct {
	active    bool
	origin    int
	count     int
	revision  uint64
	tentative int
}

// Begin starts a drag of the item at origin among count siblings (the
// dragged item included). revision is the model revision the drag is based
// on, so the owner can detect that the list changed underneath it.
func (s *Session) Begin(origin, count int, revision uint64) {
	*s = Session{
		active:    true,
		origin:    origin,
		count:     count,
		revision:  revision,
		tentative: origin,
	}
}

// Active reports whether a drag is in progress.
func (s *Session) Active() bool { return s.active }

// Origin is the index of the dragged item in the committed order.
func (s *Session) Origin() int { return s.origin }

// Count is the sibling count including the dragged item.
func (s *Session) Count() int { return s.count }

// Revision is the model revision recorded by Begin.
func (s *Session) Revision() uint64 { return s.revision }

// Tentative is the target computed by the last Update, or the origin.
func (s *Session) Tentative() int { return s.tentative }

func (s *Session) target(p Position, siblings []Position, axis Axis) int {
	if s.count <= 1 {
		return NoTarget
	}
	return Target(p, siblings, axis)
}

// Update recomputes the target for pointer p. siblings are the centers of
// the other items in committed order. The result is remembered as the
// tentative target and returned.
func (s *Session) Update(p Position, siblings []Position, axis Axis) int {
	if !s.active {
		return NoTarget
	}
	t := s.target(p, siblings, axis)
	if t == NoTarget {
		t = s.origin
	}
	s.tentative = t
	return t
}

// End finishes the gesture at p. ok is false when there is nothing to
// commit: no target, or the target equals the origin.
func (s *Session) End(p Position, siblings []Position, axis Axis) (to int, ok bool) {
	if !s.active {
		return NoTarget, false
	}
	t := s.target(p, siblings, axis)
	origin := s.origin
	s.Cancel()
	if t == NoTarget || t == origin {
		return origin, false
	}
	return t, true
}

// Cancel abandons the gesture; the item reverts to its origin.
func (s *Session) Cancel() {
	*s = Session{tentative: NoTarget}
}

// Preview is the visual order for the current tentative target, see Preview.
func (s *Session) Preview() []int {
	if !s.active {
		return Preview(s.count, NoTarget, NoTarget)
	}
	return Preview(s.count, s.origin, s.tentative)
}
