package get

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"tableflip.dev/groupdo/pkg/app"
	"tableflip.dev/groupdo/pkg/store"
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
	_, _ = svc.AddSubTask(ctx, g, 0, "Socks")
	_, _ = svc.AddGroup(ctx, "Work")
	return svc
}

func TestGetPretty(t *testing.T) {
	var out bytes.Buffer
	g := Get{Group: AllGroups, Service: newService(t), Out: &out}
	if err := g.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	for _, want := range []string{"Home", "Laundry", "Socks", "Work", "none"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}
}

func TestGetOneGroupJSON(t *testing.T) {
	var out bytes.Buffer
	g := Get{Group: 1, JSON: true, Service: newService(t), Out: &out}
	if err := g.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	l, err := store.Decode(out.Bytes())
	if err != nil {
		t.Fatalf("output is not a document: %v\n%s", err, out.String())
	}
	if len(l.Groups) != 1 || l.Groups[0].Name != "Work" {
		t.Fatalf("groups = %+v", l.Groups)
	}
}

func TestGetMissingGroup(t *testing.T) {
	g := Get{Group: 7, Service: newService(t), Out: &bytes.Buffer{}}
	if err := g.Do(context.Background()); err == nil {
		t.Fatalf("expected an error for a missing group")
	}
}
