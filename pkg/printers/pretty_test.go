package printers

import (
	"bytes"
	"strings"
	"testing"

	"tableflip.dev/groupdo/pkg/todo"
)

func TestList(t *testing.T) {
	l := todo.New()
	g, _ := l.AddGroup("Home")
	_, _ = l.AddTask(g, "Laundry")
	_, _ = l.AddSubTask(g, 0, "Socks")
	_, _ = l.AddTask(g, "Rent")
	_ = l.SetUrgency(g, 1, todo.UrgencyCritical)
	_, _ = l.AddGroup("Empty")

	tests := []struct {
		name    string
		all     bool
		index   bool
		want    []string
		notWant []string
	}{
		{name: "collapsed", want: []string{"Home", "Laundry", "✷", "none"}, notWant: []string{"Socks"}},
		{name: "all", all: true, want: []string{"Socks"}},
		{name: "index", index: true, want: []string{"0.1", "1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			pp := PrettyPrint{ShowIndex: tt.index, Out: &out}
			pp.List(l, tt.all)
			for _, w := range tt.want {
				if !strings.Contains(out.String(), w) {
					t.Errorf("missing %q in:\n%s", w, out.String())
				}
			}
			for _, w := range tt.notWant {
				if strings.Contains(out.String(), w) {
					t.Errorf("unexpected %q in:\n%s", w, out.String())
				}
			}
		})
	}
}

func TestEmptyList(t *testing.T) {
	var out bytes.Buffer
	pp := PrettyPrint{Out: &out}
	pp.List(todo.New(), false)
	if !strings.Contains(out.String(), "no groups") {
		t.Fatalf("got %q", out.String())
	}
}
