package key

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"tableflip.dev/groupdo/pkg/glyph"
)

func TestKeyListsEveryGlyph(t *testing.T) {
	var out bytes.Buffer
	k := Key{Out: &out}
	if err := k.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	for _, g := range append(glyph.DefaultBullets(), glyph.DefaultUrgencies()...) {
		if !strings.Contains(out.String(), g.Meaning) {
			t.Errorf("legend missing %q", g.Meaning)
		}
	}
}
