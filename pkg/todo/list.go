package todo

import (
	"slices"
	"strings"
)

// Every mutating method validates all of its indices before touching the
// list, so a failed call leaves l exactly as it was.

func nameOr(name, fallback string) string {
	if strings.TrimSpace(name) == "" {
		return fallback
	}
	return name
}

// Group returns a pointer to the group at g.
func (l *List) Group(g int) (*Group, error) {
	if err := checkIndex(KindGroup, g, len(l.Groups)); err != nil {
		return nil, err
	}
	return &l.Groups[g], nil
}

// Task returns a pointer to task t of group g.
func (l *List) Task(g, t int) (*Task, error) {
	grp, err := l.Group(g)
	if err != nil {
		return nil, err
	}
	if err := checkIndex(KindTask, t, len(grp.Tasks)); err != nil {
		return nil, err
	}
	return &grp.Tasks[t], nil
}

// SubTask returns a pointer to subtask s of task t in group g.
func (l *List) SubTask(g, t, s int) (*SubTask, error) {
	task, err := l.Task(g, t)
	if err != nil {
		return nil, err
	}
	if err := checkIndex(KindSubTask, s, len(task.SubTasks)); err != nil {
		return nil, err
	}
	return &task.SubTasks[s], nil
}

// AddGroup appends a group and returns its index.
func (l *List) AddGroup(name string) (int, error) {
	l.Groups = append(l.Groups, Group{Name: nameOr(name, DefaultGroupName), Tasks: []Task{}})
	return len(l.Groups) - 1, nil
}

// AddTask appends a task to group g and returns its index.
func (l *List) AddTask(g int, name string) (int, error) {
	grp, err := l.Group(g)
	if err != nil {
		return -1, err
	}
	grp.Tasks = append(grp.Tasks, Task{Name: nameOr(name, DefaultTaskName), SubTasks: []SubTask{}})
	return len(grp.Tasks) - 1, nil
}

// AddSubTask appends a subtask to task t of group g and returns its index.
func (l *List) AddSubTask(g, t int, name string) (int, error) {
	task, err := l.Task(g, t)
	if err != nil {
		return -1, err
	}
	task.SubTasks = append(task.SubTasks, SubTask{Name: nameOr(name, DefaultSubTaskName)})
	return len(task.SubTasks) - 1, nil
}

func (l *List) RenameGroup(g int, name string) error {
	grp, err := l.Group(g)
	if err != nil {
		return err
	}
	grp.Name = name
	return nil
}

func (l *List) RenameTask(g, t int, name string) error {
	task, err := l.Task(g, t)
	if err != nil {
		return err
	}
	task.Name = name
	return nil
}

func (l *List) RenameSubTask(g, t, s int, name string) error {
	sub, err := l.SubTask(g, t, s)
	if err != nil {
		return err
	}
	sub.Name = name
	return nil
}

// SetUrgency fails with ErrUrgencyOutOfRange for unknown levels.
func (l *List) SetUrgency(g, t int, level Urgency) error {
	task, err := l.Task(g, t)
	if err != nil {
		return err
	}
	if !level.Valid() {
		return ErrUrgencyOutOfRange
	}
	task.Urgency = level
	return nil
}

func (l *List) SetCompleted(g, t int, done bool) error {
	task, err := l.Task(g, t)
	if err != nil {
		return err
	}
	task.Completed = done
	return nil
}

func (l *List) SetSubTaskCompleted(g, t, s int, done bool) error {
	sub, err := l.SubTask(g, t, s)
	if err != nil {
		return err
	}
	sub.Completed = done
	return nil
}

func (l *List) SetExpanded(g, t int, expanded bool) error {
	task, err := l.Task(g, t)
	if err != nil {
		return err
	}
	task.Expanded = expanded
	return nil
}

// DeleteGroup removes group g; later groups shift down by one.
func (l *List) DeleteGroup(g int) (Group, error) {
	if err := checkIndex(KindGroup, g, len(l.Groups)); err != nil {
		return Group{}, err
	}
	removed := l.Groups[g]
	l.Groups = slices.Delete(l.Groups, g, g+1)
	return removed, nil
}

// DeleteTask removes task t from group g.
func (l *List) DeleteTask(g, t int) (Task, error) {
	if _, err := l.Task(g, t); err != nil {
		return Task{}, err
	}
	grp := &l.Groups[g]
	removed := grp.Tasks[t]
	grp.Tasks = slices.Delete(grp.Tasks, t, t+1)
	return removed, nil
}

// DeleteSubTask removes subtask s from task t of group g.
func (l *List) DeleteSubTask(g, t, s int) (SubTask, error) {
	if _, err := l.SubTask(g, t, s); err != nil {
		return SubTask{}, err
	}
	task := &l.Groups[g].Tasks[t]
	removed := task.SubTasks[s]
	task.SubTasks = slices.Delete(task.SubTasks, s, s+1)
	return removed, nil
}

// InsertGroup places grp at index i, 0 <= i <= len.
func (l *List) InsertGroup(i int, grp Group) error {
	if err := checkInsert(KindGroup, i, len(l.Groups)); err != nil {
		return err
	}
	l.Groups = slices.Insert(l.Groups, i, grp.clone())
	return nil
}

// InsertTask places task at index i of group g.
func (l *List) InsertTask(g, i int, task Task) error {
	grp, err := l.Group(g)
	if err != nil {
		return err
	}
	if err := checkInsert(KindTask, i, len(grp.Tasks)); err != nil {
		return err
	}
	grp.Tasks = slices.Insert(grp.Tasks, i, task.clone())
	return nil
}

// MoveGroup removes the group at from and reinserts it at to, where to
// indexes the sequence after removal. It reports false, without touching the
// list, when from == to.
func (l *List) MoveGroup(from, to int) (bool, error) {
	var err error
	l.Groups, err = move(KindGroup, l.Groups, from, to)
	if err != nil {
		return false, err
	}
	return from != to, nil
}

// MoveTask reorders tasks within group g with the same rules as MoveGroup.
func (l *List) MoveTask(g, from, to int) (bool, error) {
	grp, err := l.Group(g)
	if err != nil {
		return false, err
	}
	grp.Tasks, err = move(KindTask, grp.Tasks, from, to)
	if err != nil {
		return false, err
	}
	return from != to, nil
}

// MoveSubTask reorders subtasks within task t of group g.
func (l *List) MoveSubTask(g, t, from, to int) (bool, error) {
	task, err := l.Task(g, t)
	if err != nil {
		return false, err
	}
	task.SubTasks, err = move(KindSubTask, task.SubTasks, from, to)
	if err != nil {
		return false, err
	}
	return from != to, nil
}

func move[T any](kind Kind, s []T, from, to int) ([]T, error) {
	n := len(s)
	if err := checkIndex(kind, from, n); err != nil {
		return s, err
	}
	// After removal there are n-1 items, so valid insert points are 0..n-1.
	if err := checkIndex(kind, to, n); err != nil {
		return s, err
	}
	if from == to {
		return s, nil
	}
	item := s[from]
	s = slices.Delete(s, from, from+1)
	return slices.Insert(s, to, item), nil
}
