package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Event is emitted by Persistence.Watch when the stored document was changed
// by someone other than this process.
type Event struct {
	Key string
	// Err is set when the watcher itself failed. Callers should reload.
	Err error
}

// fileFilter is implemented by backends whose Location also holds files that
// are not part of the store, such as a log file next to a database.
type fileFilter interface {
	Watches(name string) bool
}

func (p *persistence) watches(name string) bool {
	if f, ok := p.kv.(fileFilter); ok {
		return f.Watches(name)
	}
	return true
}

// Watch streams change events until ctx is cancelled. Bursts of filesystem
// activity are coalesced, and events caused by this process's own saves are
// suppressed. The channel is closed once ctx is done or the watcher stops.
func (p *persistence) Watch(ctx context.Context) (<-chan Event, error) {
	dir := p.kv.Location()
	if dir == "" {
		return nil, errors.New("store: persistence location unknown")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure watch dir: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("store: watch %s: %w", dir, err)
	}

	events := make(chan Event, 16)

	go func() {
		defer close(events)
		defer func() {
			if err := watcher.Close(); err != nil {
				p.log.Debug("watcher close", "err", err)
			}
		}()

		send := func(ev Event) {
			select {
			case events <- ev:
			default:
				// The consumer reloads the whole document anyway, so one
				// pending event is as good as many.
			}
		}

		throttle := newEventThrottle(100 * time.Millisecond)
		defer throttle.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				p.log.Warn("store watcher", "err", err)
				send(Event{Key: p.key, Err: err})
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				if evt.Op == fsnotify.Chmod || !p.watches(evt.Name) {
					continue
				}
				throttle.Enqueue()
			case <-throttle.C:
				if p.changed() {
					send(Event{Key: p.key})
				}
			}
		}
	}()

	return events, nil
}

// eventThrottle coalesces rapid change notifications so the document is
// re-read once per burst of filesystem activity.
type eventThrottle struct {
	C chan struct{}

	mu    sync.Mutex
	timer *time.Timer
	delay time.Duration
}

func newEventThrottle(delay time.Duration) *eventThrottle {
	return &eventThrottle{
		C:     make(chan struct{}, 1),
		delay: delay,
	}
}

// Enqueue schedules a tick on C after the delay, unless one is pending.
func (t *eventThrottle) Enqueue() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.timer != nil {
		return
	}
	t.timer = time.AfterFunc(t.delay, t.fire)
}

func (t *eventThrottle) fire() {
	t.mu.Lock()
	t.timer = nil
	t.mu.Unlock()
	select {
	case t.C <- struct{}{}:
	default:
	}
}

func (t *eventThrottle) Stop() {
	t.mu.Lock()
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.mu.Unlock()
}
