package store

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"tableflip.dev/groupdo/pkg/todo"
)

func TestPersistenceWatchEmitsExternalChanges(t *testing.T) {
	base := t.TempDir()
	cfg := &Settings{Path: base}
	p, err := Load(cfg)
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	defer p.Close()
	_ = p.Load(context.Background())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := p.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	// Allow the watcher goroutine to subscribe before writing.
	time.Sleep(50 * time.Millisecond)

	// A second handle on the same directory plays the other process.
	other, err := Load(cfg)
	if err != nil {
		t.Fatalf("load other: %v", err)
	}
	l := todo.New()
	_, _ = l.AddGroup("Inbox")
	if err := other.Save(context.Background(), l); err != nil {
		t.Fatalf("save: %v", err)
	}

	select {
	case evt := <-ch:
		if evt.Key != DefaultKey {
			t.Fatalf("expected key %q, got %q", DefaultKey, evt.Key)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for change event")
	}

	if got := p.Load(context.Background()); len(got.Groups) != 1 || got.Groups[0].Name != "Inbox" {
		t.Fatalf("reload did not see the external write: %+v", got)
	}
}

func TestPersistenceWatchIgnoresOwnWrites(t *testing.T) {
	p, err := Load(&Settings{Path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	defer p.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ch, err := p.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	time.Sleep(50 * time.Millisecond)

	l := todo.New()
	_, _ = l.AddGroup("Mine")
	if err := p.Save(context.Background(), l); err != nil {
		t.Fatalf("save: %v", err)
	}

	select {
	case evt := <-ch:
		t.Fatalf("unexpected event for own write: %+v", evt)
	case <-time.After(400 * time.Millisecond):
	}
}

func TestEventThrottleCoalesces(t *testing.T) {
	th := newEventThrottle(20 * time.Millisecond)
	defer th.Stop()
	for i := 0; i < 10; i++ {
		th.Enqueue()
	}
	select {
	case <-th.C:
	case <-time.After(time.Second):
		t.Fatal("throttle never fired")
	}
	select {
	case <-th.C:
		t.Fatal("burst produced more than one tick")
	case <-time.After(60 * time.Millisecond):
	}
}

// readCountingSQLite counts document reads; the watcher reads once per
// coalesced burst it accepts.
type readCountingSQLite struct {
	*sqliteKV
	reads atomic.Int32
}

func (r *readCountingSQLite) Read(key string) ([]byte, error) {
	r.reads.Add(1)
	return r.sqliteKV.Read(key)
}

func TestSQLiteWatches(t *testing.T) {
	kv := &sqliteKV{path: filepath.Join("base", SQLiteFile)}
	tests := []struct {
		name string
		file string
		want bool
	}{
		{name: "database", file: SQLiteFile, want: true},
		{name: "journal", file: SQLiteFile + "-journal", want: true},
		{name: "wal", file: SQLiteFile + "-wal", want: true},
		{name: "ui log", file: "groupdo.log", want: false},
		{name: "other", file: "notes.txt", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := kv.Watches(filepath.Join("base", tt.file)); got != tt.want {
				t.Fatalf("Watches(%q) = %v, want %v", tt.file, got, tt.want)
			}
		})
	}
}

func TestSQLiteWatchIgnoresNeighbourFiles(t *testing.T) {
	base := t.TempDir()
	kv, err := OpenSQLite(filepath.Join(base, SQLiteFile))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	counting := &readCountingSQLite{sqliteKV: kv.(*sqliteKV)}
	p, err := Load(&Settings{Path: base, StoreBackend: BackendSQLite}, WithKV(counting))
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	defer p.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ch, err := p.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	time.Sleep(50 * time.Millisecond)

	logPath := filepath.Join(base, "groupdo.log")
	for i := 0; i < 3; i++ {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			t.Fatal(err)
		}
		_, _ = f.WriteString("level=debug msg=tick\n")
		_ = f.Close()
		time.Sleep(30 * time.Millisecond)
	}

	select {
	case evt := <-ch:
		t.Fatalf("unexpected event for a log write: %+v", evt)
	case <-time.After(300 * time.Millisecond):
	}
	if n := counting.reads.Load(); n != 0 {
		t.Fatalf("log writes caused %d document reads", n)
	}
}
