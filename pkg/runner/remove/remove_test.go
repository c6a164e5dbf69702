package remove

import (
	"bytes"
	"context"
	"testing"

	"tableflip.dev/groupdo/pkg/app"
	"tableflip.dev/groupdo/pkg/store"
	"tableflip.dev/groupdo/pkg/todo"
)

func newService(t *testing.T) *app.Service {
	t.Helper()
	ctx := context.Background()
	p, err := store.Load(&store.Settings{Path: t.TempDir()})
	if err != nil {
		t.Fatalf("store.Load: %v", err)
	}
	svc, err := app.New(ctx, p)
	if err != nil {
		t.Fatalf("app.New: %v", err)
	}
	t.Cleanup(func() { _ = svc.Close() })
	g, _ := svc.AddGroup(ctx, "Home")
	_, _ = svc.AddTask(ctx, g, "Laundry")
	_, _ = svc.AddTask(ctx, g, "Dishes")
	return svc
}

func TestRemove(t *testing.T) {
	tests := []struct {
		name      string
		yes       bool
		answer    bool
		wantTasks int
		wantAsked bool
	}{
		{name: "declined", answer: false, wantTasks: 2, wantAsked: true},
		{name: "confirmed", answer: true, wantTasks: 1, wantAsked: true},
		{name: "yes flag", yes: true, wantTasks: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newService(t)
			asked := ""
			r := Remove{
				Kind:    todo.KindTask,
				Group:   0,
				Task:    1,
				Yes:     tt.yes,
				Service: svc,
				Out:     &bytes.Buffer{},
				Confirm: func(label string) (bool, error) {
					asked = label
					return tt.answer, nil
				},
			}
			if err := r.Do(context.Background()); err != nil {
				t.Fatalf("Do: %v", err)
			}
			if got := len(svc.List().Groups[0].Tasks); got != tt.wantTasks {
				t.Fatalf("tasks = %d, want %d", got, tt.wantTasks)
			}
			if (asked != "") != tt.wantAsked {
				t.Fatalf("asked = %q, want asked %v", asked, tt.wantAsked)
			}
			if tt.wantAsked && asked != `Delete task "Dishes"` {
				t.Fatalf("prompt = %q", asked)
			}
		})
	}
}

func TestRemoveMissingItem(t *testing.T) {
	r := Remove{Kind: todo.KindSubTask, Yes: true, Service: newService(t), Out: &bytes.Buffer{}}
	if err := r.Do(context.Background()); err == nil {
		t.Fatalf("expected an error for a missing subtask")
	}
}
