package app

import (
	"context"

	"tableflip.dev/groupdo/pkg/reorder"
	"tableflip.dev/groupdo/pkg/todo"
)

// Drags reorder groups, tasks of the open group, or subtasks of the open
// task. Nothing in the list changes until EndDrag. The open group and task
// are captured at BeginDrag; if either changes the drag is cancelled.

func (s *Service) siblingCountLocked(kind todo.Kind) (int, error) {
	switch kind {
	case todo.KindGroup:
		return len(s.list.Groups), nil
	case todo.KindTask:
		g, err := s.openGroupLocked()
		if err != nil {
			return 0, err
		}
		return len(s.list.Groups[g].Tasks), nil
	default:
		g, t, err := s.openTaskLocked()
		if err != nil {
			return 0, err
		}
		return len(s.list.Groups[g].Tasks[t].SubTasks), nil
	}
}

// BeginDrag starts dragging item index of kind.
func (s *Service) BeginDrag(kind todo.Kind, index int) error {
	s.mu.Lock()
	count, err := s.siblingCountLocked(kind)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	if index < 0 || index >= count {
		s.mu.Unlock()
		return &todo.IndexError{Kind: kind, Index: index, Len: count}
	}
	s.drag.Begin(index, count, s.revision)
	s.dragKind = kind
	s.dragGroup, s.dragTask = s.group.Int(), s.task.Int()
	s.log.Debug("drag started", "kind", kind, "origin", index, "revision", s.revision)
	s.publish()
	return nil
}

// Dragging reports whether a drag is in progress.
func (s *Service) Dragging() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.drag.Active()
}

// siblingsLocked collects the rendered centers of every item except the
// dragged one, in committed order. ok is false if geo could not place one.
func (s *Service) siblingsLocked(geo Geometry) ([]reorder.Position, bool) {
	origin := s.drag.Origin()
	out := make([]reorder.Position, 0, s.drag.Count())
	for i := 0; i < s.drag.Count(); i++ {
		if i == origin {
			continue
		}
		p, ok := geo.Position(s.dragKind, i)
		if !ok {
			return nil, false
		}
		out = append(out, p)
	}
	return out, true
}

// parentMovedLocked reports whether the group or task holding the dragged
// item is no longer the open one.
func (s *Service) parentMovedLocked() bool {
	switch s.dragKind {
	case todo.KindTask:
		return !s.group.Is(s.dragGroup)
	case todo.KindSubTask:
		return !s.group.Is(s.dragGroup) || !s.task.Is(s.dragTask)
	}
	return false
}

// staleLocked cancels the drag when the list or the open parent changed
// since BeginDrag.
func (s *Service) staleLocked() bool {
	switch {
	case s.drag.Revision() != s.revision:
		s.log.Debug("drag cancelled, list changed underneath", "began", s.drag.Revision(), "now", s.revision)
	case s.parentMovedLocked():
		s.log.Debug("drag cancelled, selection changed", "kind", s.dragKind, "group", s.dragGroup, "task", s.dragTask)
	default:
		return false
	}
	s.drag.Cancel()
	return true
}

func (s *Service) dropStaleDragLocked() {
	if s.drag.Active() {
		s.staleLocked()
	}
}

// DragTo moves the pointer to p and returns the tentative target index, or
// reorder.NoTarget when no drag is active.
func (s *Service) DragTo(p reorder.Position, geo Geometry) int {
	s.mu.Lock()
	if !s.drag.Active() {
		s.mu.Unlock()
		return reorder.NoTarget
	}
	if s.staleLocked() {
		s.publish()
		return reorder.NoTarget
	}
	siblings, ok := s.siblingsLocked(geo)
	target := s.drag.Origin()
	if ok {
		target = s.drag.Update(p, siblings, s.axis)
	}
	s.publish()
	return target
}

// EndDrag drops at p and commits the move. It reports whether the list
// changed; dropping on the origin, outside any target or after the list
// changed underneath the drag commits nothing.
func (s *Service) EndDrag(ctx context.Context, p reorder.Position, geo Geometry) (bool, error) {
	s.mu.Lock()
	if !s.drag.Active() {
		s.mu.Unlock()
		return false, nil
	}
	if s.staleLocked() {
		s.publish()
		return false, nil
	}
	kind, origin := s.dragKind, s.drag.Origin()
	siblings, ok := s.siblingsLocked(geo)
	if !ok {
		s.drag.Cancel()
		s.publish()
		return false, nil
	}
	to, commit := s.drag.End(p, siblings, s.axis)
	if !commit {
		s.publish()
		return false, nil
	}
	g, t := s.dragGroup, s.dragTask
	s.mu.Unlock()

	switch kind {
	case todo.KindGroup:
		return s.MoveGroup(ctx, origin, to)
	case todo.KindTask:
		return s.MoveTask(ctx, g, origin, to)
	default:
		return s.MoveSubTask(ctx, g, t, origin, to)
	}
}

// CancelDrag abandons the drag; the item stays where it was.
func (s *Service) CancelDrag() {
	s.mu.Lock()
	if !s.drag.Active() {
		s.mu.Unlock()
		return
	}
	s.drag.Cancel()
	s.publish()
}
