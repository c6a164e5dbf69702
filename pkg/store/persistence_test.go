package store

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"tableflip.dev/groupdo/pkg/todo"
)

// countingKV wraps a KV and counts writes. failWrites makes Write fail.
type countingKV struct {
	KV
	writes     int
	failWrites bool
}

func (c *countingKV) Write(key string, val []byte) error {
	if c.failWrites {
		return errors.New("disk full")
	}
	c.writes++
	return c.KV.Write(key, val)
}

func scenarioList() *todo.List {
	l := todo.New()
	g, _ := l.AddGroup("Work")
	t, _ := l.AddTask(g, "Ship")
	_ = l.SetUrgency(g, t, todo.UrgencyHigh)
	_ = l.SetExpanded(g, t, true)
	s, _ := l.AddSubTask(g, t, "tests")
	_ = l.SetSubTaskCompleted(g, t, s, true)
	_, _ = l.AddTask(g, "Review")
	_, _ = l.AddGroup("Home")
	return l
}

func TestRoundTrip(t *testing.T) {
	for _, backend := range []string{BackendDiskv, BackendSQLite} {
		t.Run(backend, func(t *testing.T) {
			cfg := &Settings{Path: t.TempDir(), StoreBackend: backend}
			p, err := Load(cfg)
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			want := scenarioList()
			if err := p.Save(context.Background(), want); err != nil {
				t.Fatalf("save: %v", err)
			}
			if err := p.Close(); err != nil {
				t.Fatalf("close: %v", err)
			}

			// A fresh handle stands in for the next process start.
			p2, err := Load(cfg)
			if err != nil {
				t.Fatalf("reload: %v", err)
			}
			defer p2.Close()
			if got := p2.Load(context.Background()); !got.Equal(want) {
				t.Fatalf("round trip mismatch:\nwant %+v\ngot  %+v", want, got)
			}
		})
	}
}

func TestSaveSkipsIdenticalBytes(t *testing.T) {
	kv := &countingKV{KV: NewDiskv(t.TempDir())}
	p, err := Load(&Settings{}, WithKV(kv))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	l := scenarioList()
	if err := p.Save(context.Background(), l); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := p.Save(context.Background(), l.Clone()); err != nil {
		t.Fatalf("second save: %v", err)
	}
	if kv.writes != 1 {
		t.Fatalf("expected 1 write, got %d", kv.writes)
	}

	// Loading the same bytes back also counts as known.
	p2, _ := Load(&Settings{}, WithKV(kv))
	loaded := p2.Load(context.Background())
	if err := p2.Save(context.Background(), loaded); err != nil {
		t.Fatalf("save after load: %v", err)
	}
	if kv.writes != 1 {
		t.Fatalf("save of unchanged loaded list wrote: %d writes", kv.writes)
	}
}

func TestSaveWrapsWriteError(t *testing.T) {
	kv := &countingKV{KV: NewDiskv(t.TempDir()), failWrites: true}
	p, _ := Load(&Settings{}, WithKV(kv))
	err := p.Save(context.Background(), scenarioList())
	if !errors.Is(err, ErrPersistenceWrite) {
		t.Fatalf("expected ErrPersistenceWrite, got %v", err)
	}
}

func TestLoadFailSoft(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{name: "garbage", data: "{not json", want: "parse document"},
		{name: "unknown version", data: `{"version":9,"groups":[]}`, want: "unsupported document version"},
		{name: "schema violation", data: `{"version":1,"groups":[{"name":"A","tasks":[{"name":"t","urgency":7}]}]}`, want: "does not match schema"},
		{name: "wrong type", data: `{"version":1,"groups":"nope"}`, want: "does not match schema"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv := NewDiskv(t.TempDir())
			if err := kv.Write(DefaultKey, []byte(tt.data)); err != nil {
				t.Fatalf("seed: %v", err)
			}
			var logs bytes.Buffer
			logger := log.NewWithOptions(&logs, log.Options{Level: log.WarnLevel})
			p, _ := Load(&Settings{}, WithKV(kv), WithLogger(logger))

			l := p.Load(context.Background())
			if l == nil || len(l.Groups) != 0 {
				t.Fatalf("expected empty list, got %+v", l)
			}
			if !strings.Contains(logs.String(), tt.want) {
				t.Fatalf("expected log to mention %q, got %q", tt.want, logs.String())
			}
		})
	}
}

func TestLoadMissingKeyIsEmpty(t *testing.T) {
	p, err := Load(&Settings{Path: filepath.Join(t.TempDir(), "nested")})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if l := p.Load(context.Background()); len(l.Groups) != 0 {
		t.Fatalf("expected empty list, got %+v", l)
	}
}

func TestLoadUpgradesLegacyDocument(t *testing.T) {
	kv := NewDiskv(t.TempDir())
	legacy := `{"groups":[{"name":"Chores","tasks":[{"taskName":"Dishes","urgency":2},{"taskName":"Laundry","urgency":0}]},{"name":"Empty","tasks":[]}]}`
	if err := kv.Write(DefaultKey, []byte(legacy)); err != nil {
		t.Fatalf("seed: %v", err)
	}
	p, _ := Load(&Settings{}, WithKV(kv))
	l := p.Load(context.Background())

	if len(l.Groups) != 2 || l.Groups[0].Name != "Chores" || l.Groups[1].Name != "Empty" {
		t.Fatalf("unexpected groups %+v", l.Groups)
	}
	task := l.Groups[0].Tasks[0]
	if task.Name != "Dishes" || task.Urgency != todo.UrgencyHigh || task.Completed || len(task.SubTasks) != 0 {
		t.Fatalf("unexpected task %+v", task)
	}

	// The next save rewrites in the versioned layout.
	if err := p.Save(context.Background(), l); err != nil {
		t.Fatalf("save: %v", err)
	}
	data, _ := kv.Read(DefaultKey)
	if !bytes.Contains(data, []byte(`"version":1`)) {
		t.Fatalf("expected versioned document, got %s", data)
	}
}

func TestLoadRejectsBadConfig(t *testing.T) {
	if _, err := Load(&Settings{Path: t.TempDir(), StoreBackend: "etcd"}); err == nil {
		t.Fatalf("expected error for unknown backend")
	}
	if _, err := Load(&Settings{Path: t.TempDir(), SaveKey: "../escape"}); err == nil {
		t.Fatalf("expected error for key with a path separator")
	}
}

func TestEncodeEmptyList(t *testing.T) {
	data, err := Encode(todo.New())
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if string(data) != `{"version":1,"groups":[]}` {
		t.Fatalf("unexpected encoding %s", data)
	}
}
