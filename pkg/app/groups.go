package app

import (
	"context"

	"tableflip.dev/groupdo/pkg/selection"
	"tableflip.dev/groupdo/pkg/todo"
)

// AddGroup appends a group and returns its index. The selection is unchanged.
func (s *Service) AddGroup(ctx context.Context, name string) (int, error) {
	idx := -1
	err := s.apply(ctx, func(l *todo.List) (bool, error) {
		var err error
		idx, err = l.AddGroup(name)
		return err == nil, err
	}, nil)
	return idx, err
}

func (s *Service) RenameGroup(ctx context.Context, g int, name string) error {
	return s.apply(ctx, func(l *todo.List) (bool, error) {
		grp, err := l.Group(g)
		if err != nil {
			return false, err
		}
		if grp.Name == name {
			return false, nil
		}
		return true, l.RenameGroup(g, name)
	}, nil)
}

// DeleteGroup removes group g and returns the resulting group selection.
// Deleting the open group closes it.
func (s *Service) DeleteGroup(ctx context.Context, g int) (selection.Selection, error) {
	err := s.apply(ctx, func(l *todo.List) (bool, error) {
		_, err := l.DeleteGroup(g)
		return err == nil, err
	}, func() {
		if s.group.Is(g) {
			s.task.Clear()
		}
		s.group.OnRemoved(g)
	})
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.group, err
}

// MoveGroup moves group from to index to (an index after removal). The open
// group stays open wherever it ends up.
func (s *Service) MoveGroup(ctx context.Context, from, to int) (bool, error) {
	moved := false
	err := s.apply(ctx, func(l *todo.List) (bool, error) {
		var err error
		moved, err = l.MoveGroup(from, to)
		return moved, err
	}, func() {
		s.group.OnMoved(from, to)
	})
	return moved, err
}

// SelectGroup opens group g. Opening another group closes the open task.
func (s *Service) SelectGroup(g int) error {
	s.mu.Lock()
	prev := s.group
	if err := s.group.Select(g, len(s.list.Groups)); err != nil {
		s.mu.Unlock()
		return err
	}
	if !prev.Is(g) {
		s.task.Clear()
	}
	s.dropStaleDragLocked()
	s.publish()
	return nil
}

// ClearGroup closes the open group.
func (s *Service) ClearGroup() {
	s.mu.Lock()
	s.group.Clear()
	s.task.Clear()
	s.dropStaleDragLocked()
	s.publish()
}

// OpenGroup returns the open group index.
func (s *Service) OpenGroup() (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.group.Index()
}
