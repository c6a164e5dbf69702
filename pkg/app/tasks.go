package app

import (
	"context"

	"tableflip.dev/groupdo/pkg/selection"
	"tableflip.dev/groupdo/pkg/todo"
)

// AddTask appends a task to group g.
func (s *Service) AddTask(ctx context.Context, g int, name string) (int, error) {
	idx := -1
	err := s.apply(ctx, func(l *todo.List) (bool, error) {
		var err error
		idx, err = l.AddTask(g, name)
		return err == nil, err
	}, nil)
	return idx, err
}

// AddTaskToOpen appends a task to the open group.
func (s *Service) AddTaskToOpen(ctx context.Context, name string) (int, error) {
	s.mu.Lock()
	g, err := s.openGroupLocked()
	s.mu.Unlock()
	if err != nil {
		return -1, err
	}
	return s.AddTask(ctx, g, name)
}

func (s *Service) RenameTask(ctx context.Context, g, t int, name string) error {
	return s.apply(ctx, func(l *todo.List) (bool, error) {
		task, err := l.Task(g, t)
		if err != nil {
			return false, err
		}
		if task.Name == name {
			return false, nil
		}
		return true, l.RenameTask(g, t, name)
	}, nil)
}

// DeleteTask removes task t of group g and returns the resulting task
// selection.
func (s *Service) DeleteTask(ctx context.Context, g, t int) (selection.Selection, error) {
	err := s.apply(ctx, func(l *todo.List) (bool, error) {
		_, err := l.DeleteTask(g, t)
		return err == nil, err
	}, func() {
		if s.group.Is(g) {
			s.task.OnRemoved(t)
		}
	})
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.task, err
}

// MoveTask reorders tasks inside group g.
func (s *Service) MoveTask(ctx context.Context, g, from, to int) (bool, error) {
	moved := false
	err := s.apply(ctx, func(l *todo.List) (bool, error) {
		var err error
		moved, err = l.MoveTask(g, from, to)
		return moved, err
	}, func() {
		if s.group.Is(g) {
			s.task.OnMoved(from, to)
		}
	})
	return moved, err
}

func (s *Service) SetUrgency(ctx context.Context, g, t int, level todo.Urgency) error {
	return s.apply(ctx, func(l *todo.List) (bool, error) {
		task, err := l.Task(g, t)
		if err != nil {
			return false, err
		}
		if task.Urgency == level {
			return false, nil
		}
		return true, l.SetUrgency(g, t, level)
	}, nil)
}

// CycleUrgency steps the urgency of task t by delta levels, wrapping.
func (s *Service) CycleUrgency(ctx context.Context, g, t, delta int) (todo.Urgency, error) {
	var level todo.Urgency
	err := s.apply(ctx, func(l *todo.List) (bool, error) {
		task, err := l.Task(g, t)
		if err != nil {
			return false, err
		}
		level = task.Urgency
		for ; delta > 0; delta-- {
			level = level.Next()
		}
		for ; delta < 0; delta++ {
			level = level.Prev()
		}
		if level == task.Urgency {
			return false, nil
		}
		return true, l.SetUrgency(g, t, level)
	}, nil)
	return level, err
}

func (s *Service) SetCompleted(ctx context.Context, g, t int, done bool) error {
	return s.apply(ctx, func(l *todo.List) (bool, error) {
		task, err := l.Task(g, t)
		if err != nil {
			return false, err
		}
		if task.Completed == done {
			return false, nil
		}
		return true, l.SetCompleted(g, t, done)
	}, nil)
}

// ToggleCompleted flips the completed flag and returns the new value.
func (s *Service) ToggleCompleted(ctx context.Context, g, t int) (bool, error) {
	var done bool
	err := s.apply(ctx, func(l *todo.List) (bool, error) {
		task, err := l.Task(g, t)
		if err != nil {
			return false, err
		}
		done = !task.Completed
		return true, l.SetCompleted(g, t, done)
	}, nil)
	return done, err
}

func (s *Service) SetExpanded(ctx context.Context, g, t int, expanded bool) error {
	return s.apply(ctx, func(l *todo.List) (bool, error) {
		task, err := l.Task(g, t)
		if err != nil {
			return false, err
		}
		if task.Expanded == expanded {
			return false, nil
		}
		return true, l.SetExpanded(g, t, expanded)
	}, nil)
}

// ToggleExpanded flips whether subtasks of task t are shown.
func (s *Service) ToggleExpanded(ctx context.Context, g, t int) (bool, error) {
	var expanded bool
	err := s.apply(ctx, func(l *todo.List) (bool, error) {
		task, err := l.Task(g, t)
		if err != nil {
			return false, err
		}
		expanded = !task.Expanded
		return true, l.SetExpanded(g, t, expanded)
	}, nil)
	return expanded, err
}

// SelectTask opens task t of the open group.
func (s *Service) SelectTask(t int) error {
	s.mu.Lock()
	g, err := s.openGroupLocked()
	if err != nil {
		s.mu.Unlock()
		return err
	}
	if err := s.task.Select(t, len(s.list.Groups[g].Tasks)); err != nil {
		s.mu.Unlock()
		return err
	}
	s.dropStaleDragLocked()
	s.publish()
	return nil
}

// ClearTask closes the open task.
func (s *Service) ClearTask() {
	s.mu.Lock()
	s.task.Clear()
	s.dropStaleDragLocked()
	s.publish()
}

// OpenTask returns the open group and task indices.
func (s *Service) OpenTask() (g, t int, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.openTaskLocked()
}

// AddSubTask appends a subtask to task t of group g. Adding expands the task
// so the new subtask is visible.
func (s *Service) AddSubTask(ctx context.Context, g, t int, name string) (int, error) {
	idx := -1
	err := s.apply(ctx, func(l *todo.List) (bool, error) {
		var err error
		idx, err = l.AddSubTask(g, t, name)
		if err != nil {
			return false, err
		}
		return true, l.SetExpanded(g, t, true)
	}, nil)
	return idx, err
}

func (s *Service) RenameSubTask(ctx context.Context, g, t, st int, name string) error {
	return s.apply(ctx, func(l *todo.List) (bool, error) {
		sub, err := l.SubTask(g, t, st)
		if err != nil {
			return false, err
		}
		if sub.Name == name {
			return false, nil
		}
		return true, l.RenameSubTask(g, t, st, name)
	}, nil)
}

func (s *Service) DeleteSubTask(ctx context.Context, g, t, st int) error {
	return s.apply(ctx, func(l *todo.List) (bool, error) {
		_, err := l.DeleteSubTask(g, t, st)
		return err == nil, err
	}, nil)
}

func (s *Service) MoveSubTask(ctx context.Context, g, t, from, to int) (bool, error) {
	moved := false
	err := s.apply(ctx, func(l *todo.List) (bool, error) {
		var err error
		moved, err = l.MoveSubTask(g, t, from, to)
		return moved, err
	}, nil)
	return moved, err
}

func (s *Service) SetSubTaskCompleted(ctx context.Context, g, t, st int, done bool) error {
	return s.apply(ctx, func(l *todo.List) (bool, error) {
		sub, err := l.SubTask(g, t, st)
		if err != nil {
			return false, err
		}
		if sub.Completed == done {
			return false, nil
		}
		return true, l.SetSubTaskCompleted(g, t, st, done)
	}, nil)
}

// ToggleSubTaskCompleted flips a subtask's completed flag.
func (s *Service) ToggleSubTaskCompleted(ctx context.Context, g, t, st int) (bool, error) {
	var done bool
	err := s.apply(ctx, func(l *todo.List) (bool, error) {
		sub, err := l.SubTask(g, t, st)
		if err != nil {
			return false, err
		}
		done = !sub.Completed
		return true, l.SetSubTaskCompleted(g, t, st, done)
	}, nil)
	return done, err
}
