package app

import (
	"context"
	"errors"
	"sync"

	"github.com/charmbracelet/log"

	"tableflip.dev/groupdo/pkg/logging"
	"tableflip.dev/groupdo/pkg/reorder"
	"tableflip.dev/groupdo/pkg/selection"
	"tableflip.dev/groupdo/pkg/store"
	"tableflip.dev/groupdo/pkg/theme"
	"tableflip.dev/groupdo/pkg/todo"
)

var (
	ErrNoPersistence = errors.New("app: no persistence configured")
	ErrNoGroupOpen   = errors.New("app: no group open")
	ErrNoTaskOpen    = errors.New("app: no task open")
)

// Renderer receives a fresh Snapshot after every committed change.
type Renderer interface {
	Render(Snapshot)
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(Snapshot)

func (f RendererFunc) Render(s Snapshot) { f(s) }

// Geometry reports where the renderer drew item index of the given kind.
// Positions use the renderer's own units and only need to grow with index.
type Geometry interface {
	Position(kind todo.Kind, index int) (reorder.Position, bool)
}

// DragState describes an in-flight drag for renderers.
type DragState struct {
	Active bool
	Kind   todo.Kind
	Origin int
	Target int
	// Order is the visual order of the dragged item's siblings; see
	// reorder.Preview.
	Order []int
}

// Snapshot is an immutable view of the service state.
type Snapshot struct {
	List     *todo.List
	Group    selection.Selection
	Task     selection.Selection
	Theme    theme.Name
	Drag     DragState
	Revision uint64
	// Err is the last non-fatal error, currently a failed save.
	Err error
}

// OpenGroup returns the open group, if any.
func (s Snapshot) OpenGroup() (*todo.Group, int, bool) {
	g, ok := s.Group.Index()
	if !ok || s.List == nil || g >= len(s.List.Groups) {
		return nil, -1, false
	}
	return &s.List.Groups[g], g, true
}

// Service owns the List, the selections and the drag session. Every mutation
// is applied to a copy of the list and swapped in only when it succeeds, then
// saved and pushed to renderers. UIs and CLIs share it.
type Service struct {
	mu          sync.Mutex
	persistence store.Persistence
	log         *log.Logger

	list     *todo.List
	group    selection.Selection
	task     selection.Selection
	theme    theme.Name
	revision uint64
	lastErr  error

	drag      reorder.Session
	dragKind  todo.Kind
	dragGroup int
	dragTask  int
	axis      reorder.Axis

	renderers map[int]Renderer
	nextID    int
}

// Option configures New.
type Option func(*Service)

func WithLogger(l *log.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

func WithTheme(n theme.Name) Option {
	return func(s *Service) {
		s.theme = n.Resolve()
	}
}

// WithAxis sets the direction in which rendered lists grow.
func WithAxis(a reorder.Axis) Option {
	return func(s *Service) {
		s.axis = a
	}
}

// New loads the list from p. Load never fails; see store.Persistence.
func New(ctx context.Context, p store.Persistence, opts ...Option) (*Service, error) {
	if p == nil {
		return nil, ErrNoPersistence
	}
	s := &Service{
		persistence: p,
		log:         logging.Discard(),
		group:       selection.Of(todo.KindGroup),
		task:        selection.Of(todo.KindTask),
		theme:       theme.Dark,
		axis:        reorder.Vertical,
		renderers:   make(map[int]Renderer),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.list = p.Load(ctx)
	return s, nil
}

// Subscribe registers r and returns a function that removes it.
func (s *Service) Subscribe(r Renderer) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.renderers[id] = r
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		delete(s.renderers, id)
		s.mu.Unlock()
	}
}

// Snapshot returns the current state. The list is a copy.
func (s *Service) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// List returns a copy of the current list.
func (s *Service) List() *todo.List {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.list.Clone()
}

func (s *Service) snapshotLocked() Snapshot {
	snap := Snapshot{
		List:     s.list.Clone(),
		Group:    s.group,
		Task:     s.task,
		Theme:    s.theme,
		Revision: s.revision,
		Err:      s.lastErr,
	}
	if s.drag.Active() {
		snap.Drag = DragState{
			Active: true,
			Kind:   s.dragKind,
			Origin: s.drag.Origin(),
			Target: s.drag.Tentative(),
			Order:  s.drag.Preview(),
		}
	}
	return snap
}

func (s *Service) notify(snap Snapshot) {
	s.mu.Lock()
	rs := make([]Renderer, 0, len(s.renderers))
	for _, r := range s.renderers {
		rs = append(rs, r)
	}
	s.mu.Unlock()
	for _, r := range rs {
		r.Render(snap)
	}
}

// publish snapshots under the lock, releases it and notifies.
func (s *Service) publish() {
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.notify(snap)
}

// apply runs op on a copy of the list. On error nothing changes. When op
// reports a change the copy becomes the list, after runs (for selection
// fix-ups), and the list is saved. A failed save keeps the new list in
// memory and is returned as well as recorded for renderers.
func (s *Service) apply(ctx context.Context, op func(next *todo.List) (bool, error), after func()) error {
	s.mu.Lock()
	next := s.list.Clone()
	changed, err := op(next)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	if !changed {
		s.mu.Unlock()
		return nil
	}
	s.list = next
	if after != nil {
		after()
	}
	s.revision++
	err = s.persistLocked(ctx)
	s.publish()
	return err
}

func (s *Service) persistLocked(ctx context.Context) error {
	if err := s.persistence.Save(ctx, s.list); err != nil {
		s.lastErr = err
		s.log.Warn("save failed, keeping changes in memory", "err", err)
		return err
	}
	s.lastErr = nil
	return nil
}

// Reload replaces the list with what is stored, typically after a watch
// event. Selections are kept when still in range and any drag is cancelled.
func (s *Service) Reload(ctx context.Context) {
	l := s.persistence.Load(ctx)
	s.mu.Lock()
	s.list = l
	if s.group.Validate(len(l.Groups)) {
		s.task.Clear()
	}
	if g, ok := s.group.Index(); ok {
		s.task.Validate(len(l.Groups[g].Tasks))
	} else {
		s.task.Clear()
	}
	s.drag.Cancel()
	s.revision++
	s.log.Debug("reloaded list", "groups", len(l.Groups), "revision", s.revision)
	s.publish()
}

// Watch subscribes to external change events from the store.
func (s *Service) Watch(ctx context.Context) (<-chan store.Event, error) {
	return s.persistence.Watch(ctx)
}

// Revision increases with every committed change or reload.
func (s *Service) Revision() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.revision
}

// Theme returns the current theme name.
func (s *Service) Theme() theme.Name {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.theme
}

// ToggleTheme flips dark/light and notifies renderers. The list is not
// touched and nothing is saved.
func (s *Service) ToggleTheme() theme.Name {
	s.mu.Lock()
	s.theme = s.theme.Toggle()
	n := s.theme
	s.publish()
	return n
}

// Close releases the store.
func (s *Service) Close() error {
	return s.persistence.Close()
}

func (s *Service) openGroupLocked() (int, error) {
	g, ok := s.group.Index()
	if !ok {
		return -1, ErrNoGroupOpen
	}
	return g, nil
}

func (s *Service) openTaskLocked() (int, int, error) {
	g, err := s.openGroupLocked()
	if err != nil {
		return -1, -1, err
	}
	t, ok := s.task.Index()
	if !ok {
		return -1, -1, ErrNoTaskOpen
	}
	return g, t, nil
}
