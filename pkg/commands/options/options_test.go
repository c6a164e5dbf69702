package options

import (
	"fmt"
	"strings"
	"testing"

	"tableflip.dev/groupdo/pkg/store"
	"tableflip.dev/groupdo/pkg/todo"
)

func TestErrorCode(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{&todo.IndexError{Kind: todo.KindTask, Index: 3, Len: 1}, "index_out_of_range"},
		{fmt.Errorf("set: %w", todo.ErrUrgencyOutOfRange), "urgency_out_of_range"},
		{fmt.Errorf("%w: disk full", store.ErrPersistenceWrite), "write_failed"},
		{fmt.Errorf("boom"), "error"},
	}
	for _, tt := range tests {
		if got := errorCode(tt.err); got != tt.want {
			t.Errorf("errorCode(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}

func TestWrap(t *testing.T) {
	got := Wrap("one two three four", 9)
	if got != "one two\nthree\nfour" {
		t.Fatalf("Wrap = %q", got)
	}
	for _, line := range strings.Split(Wrap80(strings.Repeat("word ", 60)), "\n") {
		if len(line) > 80 {
			t.Fatalf("line longer than 80: %q", line)
		}
	}
}
