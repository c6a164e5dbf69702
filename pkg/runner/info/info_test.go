package info

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"tableflip.dev/groupdo/pkg/app"
	"tableflip.dev/groupdo/pkg/store"
)

func TestInfo(t *testing.T) {
	ctx := context.Background()
	cfg := &store.Settings{Path: t.TempDir(), StoreBackend: store.BackendSQLite}
	p, err := store.Load(cfg)
	if err != nil {
		t.Fatalf("store.Load: %v", err)
	}
	svc, err := app.New(ctx, p)
	if err != nil {
		t.Fatalf("app.New: %v", err)
	}
	defer svc.Close()

	g, _ := svc.AddGroup(ctx, "Errands")
	_, _ = svc.AddTask(ctx, g, "Post office")
	_, _ = svc.AddTask(ctx, g, "Bank")
	_ = svc.SetCompleted(ctx, g, 1, true)

	var out bytes.Buffer
	n := Info{Config: cfg, Service: svc, Out: &out}
	if err := n.Do(ctx); err != nil {
		t.Fatalf("Do: %v", err)
	}
	for _, want := range []string{cfg.Path, "sqlite", store.DefaultKey, "Errands", "1/2", "1 of 2 tasks done"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}
}
