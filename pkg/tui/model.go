// Package tui is the Bubble Tea front end: a groups column, a tasks column
// for the open group, keyboard editing and mouse drag-and-drop reordering.
package tui

import (
	"context"
	"errors"
	"sync"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"tableflip.dev/groupdo/pkg/app"
	"tableflip.dev/groupdo/pkg/logging"
	"tableflip.dev/groupdo/pkg/reorder"
	"tableflip.dev/groupdo/pkg/store"
	"tableflip.dev/groupdo/pkg/theme"
	"tableflip.dev/groupdo/pkg/todo"
)

type mode int

const (
	modeList mode = iota
	modeRename
	modeConfirmDelete
)

type focus int

const (
	focusGroups focus = iota
	focusTasks
)

// target names one item for rename and delete.
type target struct {
	kind  todo.Kind
	group int
	task  int
	sub   int
}

// press tracks a left button held down on a row.
type press struct {
	active bool
	row    row
	y      int
	moved  bool
	target int
}

// sink receives snapshots from the service. The model reads the latest one
// after every message.
type sink struct {
	mu     sync.Mutex
	latest app.Snapshot
	dirty  bool
}

func (s *sink) Render(snap app.Snapshot) {
	s.mu.Lock()
	s.latest = snap
	s.dirty = true
	s.mu.Unlock()
}

func (s *sink) take() (app.Snapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.dirty {
		return app.Snapshot{}, false
	}
	s.dirty = false
	return s.latest, true
}

type watchStartedMsg struct {
	ch     <-chan store.Event
	cancel context.CancelFunc
	err    error
}

type watchEventMsg struct {
	event store.Event
}

type watchStoppedMsg struct{}

// Model is the root Bubble Tea model.
type Model struct {
	ctx         context.Context
	svc         *app.Service
	sink        *sink
	unsubscribe func()
	log         *log.Logger

	snap  app.Snapshot
	theme theme.Theme
	keys  keyMap
	help  help.Model
	input textinput.Model

	mode    mode
	focus   focus
	editing target
	pending target

	groupCursor int
	rowCursor   int
	groupOffset int
	rowOffset   int

	width, height int
	layout        layout
	press         press

	status    string
	statusErr bool

	watchCh     <-chan store.Event
	watchCancel context.CancelFunc
	watch       bool
}

// Option configures New.
type Option func(*Model)

// WithLogger routes UI diagnostics to l.
func WithLogger(l *log.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.log = l
		}
	}
}

// WithWatch makes the model follow external changes to the store.
func WithWatch(enabled bool) Option {
	return func(m *Model) {
		m.watch = enabled
	}
}

// New builds the model and subscribes it to svc.
func New(ctx context.Context, svc *app.Service, opts ...Option) *Model {
	in := textinput.New()
	in.Prompt = "› "
	in.CharLimit = 256

	m := &Model{
		ctx:    ctx,
		svc:    svc,
		sink:   &sink{},
		log:    logging.Discard(),
		keys:   defaultKeyMap(),
		help:   help.New(),
		input:  in,
		width:  80,
		height: 24,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.unsubscribe = svc.Subscribe(m.sink)
	m.snap = svc.Snapshot()
	m.theme = theme.New(m.snap.Theme)
	m.applyTheme()
	if g, ok := m.snap.Group.Index(); ok {
		m.groupCursor = g
	}
	m.relayout()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	if !m.watch {
		return nil
	}
	return startWatchCmd(m.ctx, m.svc)
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
	case watchStartedMsg:
		m.stopWatch()
		if msg.err != nil {
			m.log.Warn("not watching for changes", "err", msg.err)
			m.setError(msg.err)
			break
		}
		m.watchCh, m.watchCancel = msg.ch, msg.cancel
		cmds = append(cmds, m.waitForWatch())
	case watchEventMsg:
		if msg.event.Err != nil {
			m.log.Warn("watch error", "key", msg.event.Key, "err", msg.event.Err)
		} else {
			m.log.Debug("store changed on disk, reloading", "key", msg.event.Key)
			m.svc.Reload(m.ctx)
			m.press = press{}
			m.setStatus("Reloaded")
		}
		cmds = append(cmds, m.waitForWatch())
	case watchStoppedMsg:
		m.stopWatch()
	case tea.MouseMsg:
		m.handleMouse(msg)
	case tea.KeyMsg:
		if cmd := m.handleKey(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	m.sync()
	return m, tea.Batch(cmds...)
}

// sync pulls the newest snapshot, keeps cursors in range and recomputes the
// layout.
func (m *Model) sync() {
	if snap, ok := m.sink.take(); ok {
		m.snap = snap
	}
	if m.snap.Theme != m.theme.Name {
		m.theme = theme.New(m.snap.Theme)
		m.applyTheme()
	}
	groups := 0
	if m.snap.List != nil {
		groups = len(m.snap.List.Groups)
	}
	m.groupCursor = clamp(m.groupCursor, groups)
	if _, _, ok := m.snap.OpenGroup(); !ok && m.focus == focusTasks {
		m.focus = focusGroups
	}
	m.relayout()
	m.rowCursor = clamp(m.rowCursor, len(m.layout.tasks))
	m.scroll()
	m.relayout()
}

func (m *Model) relayout() {
	m.layout = buildLayout(m.snap, m.width, m.height, m.groupOffset, m.rowOffset)
}

// scroll moves the offsets so the cursor row is on screen.
func (m *Model) scroll() {
	rows := bodyRows(m.height)
	if m.groupCursor < m.groupOffset {
		m.groupOffset = m.groupCursor
	}
	if m.groupCursor >= m.groupOffset+rows {
		m.groupOffset = m.groupCursor - rows + 1
	}
	if len(m.layout.tasks) == 0 {
		m.rowOffset = 0
		return
	}
	// Task rows are absolute line offsets from the top of the column.
	y := m.layout.tasks[m.rowCursor].y - firstItemRow + m.rowOffset
	if y < m.rowOffset {
		m.rowOffset = y
	}
	if y >= m.rowOffset+rows {
		m.rowOffset = y - rows + 1
	}
}

func clamp(i, n int) int {
	if i >= n {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}

func (m *Model) applyTheme() {
	m.help.Styles.ShortKey = m.theme.Footer.Help.Bold(true)
	m.help.Styles.ShortDesc = m.theme.Footer.Help
	m.help.Styles.FullKey = m.theme.Footer.Help.Bold(true)
	m.help.Styles.FullDesc = m.theme.Footer.Help
	m.input.PromptStyle = m.theme.List.Cursor
	m.input.TextStyle = m.theme.List.Item
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusErr = false
}

func (m *Model) setError(err error) {
	if err == nil {
		return
	}
	m.status = err.Error()
	m.statusErr = true
}

// current returns the item under the cursor in the focused column.
func (m *Model) current() (target, bool) {
	if m.focus == focusGroups {
		if m.snap.List == nil || len(m.snap.List.Groups) == 0 {
			return target{}, false
		}
		return target{kind: todo.KindGroup, group: m.groupCursor, task: -1, sub: -1}, true
	}
	if m.rowCursor < 0 || m.rowCursor >= len(m.layout.tasks) {
		return target{}, false
	}
	r := m.layout.tasks[m.rowCursor]
	return target{kind: r.kind, group: r.group, task: r.task, sub: r.sub}, true
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch m.mode {
	case modeRename:
		return m.handleRenameKey(msg)
	case modeConfirmDelete:
		m.mode = modeList
		if msg.String() == "y" || msg.String() == "Y" {
			m.deletePending()
		} else {
			m.setStatus("Delete cancelled")
		}
		return nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.stopWatch()
		return tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Theme):
		n := m.svc.ToggleTheme()
		m.setStatus("Theme: " + string(n))
	case key.Matches(msg, m.keys.Back):
		m.back()
	case key.Matches(msg, m.keys.Focus):
		m.toggleFocus()
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.Open):
		m.open()
	case key.Matches(msg, m.keys.Add):
		return m.add()
	case key.Matches(msg, m.keys.AddSubTask):
		return m.addSubTask()
	case key.Matches(msg, m.keys.Rename):
		if cur, ok := m.current(); ok {
			return m.startRename(cur, m.nameOf(cur))
		}
	case key.Matches(msg, m.keys.Delete):
		if cur, ok := m.current(); ok {
			m.pending = cur
			m.mode = modeConfirmDelete
			m.setStatus("Delete " + m.nameOf(cur) + "? (y/n)")
		}
	case key.Matches(msg, m.keys.Complete):
		m.toggleComplete()
	case key.Matches(msg, m.keys.UrgencyUp):
		m.cycleUrgency(1)
	case key.Matches(msg, m.keys.UrgencyDown):
		m.cycleUrgency(-1)
	case key.Matches(msg, m.keys.Expand):
		if cur, ok := m.current(); ok && cur.kind == todo.KindTask {
			_, err := m.svc.ToggleExpanded(m.ctx, cur.group, cur.task)
			m.setError(err)
		}
	case key.Matches(msg, m.keys.MoveUp):
		m.moveItem(-1)
	case key.Matches(msg, m.keys.MoveDown):
		m.moveItem(1)
	}
	return nil
}

func (m *Model) handleRenameKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc:
		m.mode = modeList
		m.input.Blur()
		m.setStatus("")
		return nil
	case tea.KeyEnter:
		m.mode = modeList
		m.input.Blur()
		m.commitRename(m.input.Value())
		return nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

func (m *Model) startRename(t target, current string) tea.Cmd {
	m.editing = t
	m.mode = modeRename
	m.input.SetValue(current)
	m.input.Placeholder = m.nameOf(t)
	m.input.CursorEnd()
	return m.input.Focus()
}

// commitRename applies name to the item being edited. An empty name keeps
// the current one.
func (m *Model) commitRename(name string) {
	if name == "" {
		m.setStatus("")
		return
	}
	t := m.editing
	var err error
	switch t.kind {
	case todo.KindGroup:
		err = m.svc.RenameGroup(m.ctx, t.group, name)
	case todo.KindTask:
		err = m.svc.RenameTask(m.ctx, t.group, t.task, name)
	default:
		err = m.svc.RenameSubTask(m.ctx, t.group, t.task, t.sub, name)
	}
	if err != nil {
		m.setError(err)
		return
	}
	m.setStatus("Renamed")
}

func (m *Model) nameOf(t target) string {
	l := m.snap.List
	if l == nil {
		return ""
	}
	switch t.kind {
	case todo.KindGroup:
		if g, err := l.Group(t.group); err == nil {
			return g.Name
		}
	case todo.KindTask:
		if task, err := l.Task(t.group, t.task); err == nil {
			return task.Name
		}
	default:
		if st, err := l.SubTask(t.group, t.task, t.sub); err == nil {
			return st.Name
		}
	}
	return ""
}

func (m *Model) deletePending() {
	t := m.pending
	var err error
	switch t.kind {
	case todo.KindGroup:
		_, err = m.svc.DeleteGroup(m.ctx, t.group)
	case todo.KindTask:
		_, err = m.svc.DeleteTask(m.ctx, t.group, t.task)
	default:
		err = m.svc.DeleteSubTask(m.ctx, t.group, t.task, t.sub)
	}
	if err != nil {
		m.setError(err)
		return
	}
	m.setStatus("Deleted")
}

func (m *Model) back() {
	switch {
	case m.snap.Drag.Active:
		m.svc.CancelDrag()
		m.press = press{}
	case m.focus == focusTasks:
		m.focus = focusGroups
	default:
		m.svc.ClearGroup()
	}
}

func (m *Model) toggleFocus() {
	if m.focus == focusTasks {
		m.focus = focusGroups
		return
	}
	if _, _, ok := m.snap.OpenGroup(); !ok {
		if err := m.svc.SelectGroup(m.groupCursor); err != nil {
			return
		}
	}
	m.focus = focusTasks
}

func (m *Model) moveCursor(delta int) {
	if m.focus == focusGroups {
		m.groupCursor += delta
		return
	}
	m.rowCursor += delta
}

func (m *Model) open() {
	cur, ok := m.current()
	if !ok {
		return
	}
	switch cur.kind {
	case todo.KindGroup:
		if err := m.svc.SelectGroup(cur.group); err != nil {
			m.setError(err)
			return
		}
		m.focus = focusTasks
		m.rowCursor = 0
	case todo.KindTask:
		if err := m.svc.SelectTask(cur.task); err != nil {
			m.setError(err)
			return
		}
		_, err := m.svc.ToggleExpanded(m.ctx, cur.group, cur.task)
		m.setError(err)
	default:
		_, err := m.svc.ToggleSubTaskCompleted(m.ctx, cur.group, cur.task, cur.sub)
		m.setError(err)
	}
}

// add creates an item with the default name and opens the editor on it.
func (m *Model) add() tea.Cmd {
	if m.focus == focusGroups {
		g, err := m.svc.AddGroup(m.ctx, "")
		if err != nil {
			m.setError(err)
			return nil
		}
		m.groupCursor = g
		return m.startRename(target{kind: todo.KindGroup, group: g, task: -1, sub: -1}, "")
	}
	_, g, ok := m.snap.OpenGroup()
	if !ok {
		m.setError(app.ErrNoGroupOpen)
		return nil
	}
	t, err := m.svc.AddTask(m.ctx, g, "")
	if err != nil {
		m.setError(err)
		return nil
	}
	m.sync()
	m.rowCursor = m.layout.taskRowIndex(todo.KindTask, t, -1)
	return m.startRename(target{kind: todo.KindTask, group: g, task: t, sub: -1}, "")
}

func (m *Model) addSubTask() tea.Cmd {
	cur, ok := m.current()
	if !ok || cur.kind == todo.KindGroup {
		m.setStatus("Select a task first")
		return nil
	}
	s, err := m.svc.AddSubTask(m.ctx, cur.group, cur.task, "")
	if err != nil {
		m.setError(err)
		return nil
	}
	m.sync()
	m.rowCursor = m.layout.taskRowIndex(todo.KindSubTask, cur.task, s)
	return m.startRename(target{kind: todo.KindSubTask, group: cur.group, task: cur.task, sub: s}, "")
}

func (m *Model) toggleComplete() {
	cur, ok := m.current()
	if !ok {
		return
	}
	var err error
	switch cur.kind {
	case todo.KindTask:
		_, err = m.svc.ToggleCompleted(m.ctx, cur.group, cur.task)
	case todo.KindSubTask:
		_, err = m.svc.ToggleSubTaskCompleted(m.ctx, cur.group, cur.task, cur.sub)
	}
	m.setError(err)
}

func (m *Model) cycleUrgency(delta int) {
	cur, ok := m.current()
	if !ok || cur.kind != todo.KindTask {
		return
	}
	level, err := m.svc.CycleUrgency(m.ctx, cur.group, cur.task, delta)
	if err != nil {
		m.setError(err)
		return
	}
	m.setStatus("Urgency: " + level.String())
}

// moveItem shifts the item under the cursor one place and keeps the cursor
// on it.
func (m *Model) moveItem(delta int) {
	cur, ok := m.current()
	if !ok {
		return
	}
	var (
		moved bool
		err   error
	)
	switch cur.kind {
	case todo.KindGroup:
		to := cur.group + delta
		if to < 0 || to >= len(m.snap.List.Groups) {
			return
		}
		if moved, err = m.svc.MoveGroup(m.ctx, cur.group, to); moved {
			m.groupCursor = to
		}
	case todo.KindTask:
		to := cur.task + delta
		if to < 0 || to >= len(m.snap.List.Groups[cur.group].Tasks) {
			return
		}
		if moved, err = m.svc.MoveTask(m.ctx, cur.group, cur.task, to); moved {
			m.sync()
			m.rowCursor = m.layout.taskRowIndex(todo.KindTask, to, -1)
		}
	default:
		to := cur.sub + delta
		if to < 0 || to >= len(m.snap.List.Groups[cur.group].Tasks[cur.task].SubTasks) {
			return
		}
		if moved, err = m.svc.MoveSubTask(m.ctx, cur.group, cur.task, cur.sub, to); moved {
			m.sync()
			m.rowCursor = m.layout.taskRowIndex(todo.KindSubTask, cur.task, to)
		}
	}
	m.setError(err)
}

func pointer(msg tea.MouseMsg) reorder.Position {
	return reorder.Position{X: float64(msg.X) + 0.5, Y: float64(msg.Y) + 0.5}
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	if m.mode != modeList || m.help.ShowAll {
		return
	}
	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.moveCursor(-1)
		case tea.MouseButtonWheelDown:
			m.moveCursor(1)
		case tea.MouseButtonLeft:
			m.beginPress(msg)
		}
	case tea.MouseActionMotion:
		if !m.press.active {
			return
		}
		if msg.Y != m.press.y {
			m.press.moved = true
		}
		if m.press.moved {
			m.press.target = m.svc.DragTo(pointer(msg), m.layout)
		}
	case tea.MouseActionRelease:
		if !m.press.active {
			return
		}
		p := m.press
		m.press = press{}
		if !m.svc.Dragging() {
			// Cancelled while held, by esc or a change of open group.
			return
		}
		if !p.moved {
			m.svc.CancelDrag()
			m.click(p.row)
			return
		}
		m.drop(msg, p)
	}
}

func (m *Model) beginPress(msg tea.MouseMsg) {
	r, ok := m.layout.hit(msg.X, msg.Y)
	if !ok {
		return
	}
	var err error
	switch r.kind {
	case todo.KindGroup:
		m.focus = focusGroups
		m.groupCursor = r.group
		err = m.svc.BeginDrag(todo.KindGroup, r.group)
	case todo.KindTask:
		m.focus = focusTasks
		err = m.svc.BeginDrag(todo.KindTask, r.task)
	default:
		m.focus = focusTasks
		if err = m.svc.SelectTask(r.task); err == nil {
			err = m.svc.BeginDrag(todo.KindSubTask, r.sub)
		}
	}
	if err != nil {
		m.setError(err)
		return
	}
	m.press = press{active: true, row: r, y: msg.Y, target: reorder.NoTarget}
	if r.kind != todo.KindGroup {
		m.rowCursor = m.layout.taskRowIndex(r.kind, r.task, r.sub)
	}
}

func (m *Model) click(r row) {
	var err error
	switch r.kind {
	case todo.KindGroup:
		if err = m.svc.SelectGroup(r.group); err == nil {
			m.rowCursor = 0
		}
	case todo.KindTask:
		err = m.svc.SelectTask(r.task)
	}
	m.setError(err)
}

func (m *Model) drop(msg tea.MouseMsg, p press) {
	moved, err := m.svc.EndDrag(m.ctx, pointer(msg), m.layout)
	m.setError(err)
	if !moved || p.target == reorder.NoTarget {
		return
	}
	m.log.Debug("dropped", "kind", p.row.kind, "target", p.target)
	m.sync()
	switch p.row.kind {
	case todo.KindGroup:
		m.groupCursor = p.target
	case todo.KindTask:
		m.rowCursor = m.layout.taskRowIndex(todo.KindTask, p.target, -1)
	default:
		m.rowCursor = m.layout.taskRowIndex(todo.KindSubTask, p.row.task, p.target)
	}
}

func startWatchCmd(parent context.Context, svc *app.Service) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithCancel(parent)
		ch, err := svc.Watch(ctx)
		if err != nil {
			cancel()
			return watchStartedMsg{err: err}
		}
		return watchStartedMsg{ch: ch, cancel: cancel}
	}
}

func (m *Model) waitForWatch() tea.Cmd {
	if m.watchCh == nil {
		return nil
	}
	ch := m.watchCh
	return func() tea.Msg {
		if ev, ok := <-ch; ok {
			return watchEventMsg{event: ev}
		}
		return watchStoppedMsg{}
	}
}

func (m *Model) stopWatch() {
	if m.watchCancel != nil {
		m.watchCancel()
		m.watchCancel = nil
	}
	m.watchCh = nil
}

// Close stops watching and unsubscribes from the service.
func (m *Model) Close() {
	m.stopWatch()
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
}

// Run starts the full-screen UI and blocks until the user quits or ctx is
// done.
func Run(ctx context.Context, svc *app.Service, opts ...Option) error {
	m := New(ctx, svc, append([]Option{WithWatch(true)}, opts...)...)
	defer m.Close()
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
