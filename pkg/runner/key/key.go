// Package key provides CLI helpers to display the glyph legend.
package key

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/groupdo/pkg/glyph"
)

// Key prints a glyph legend describing bullets and urgency markers.
type Key struct {
	Out io.Writer
}

// Do renders the bullet and urgency keys.
func (k *Key) Do(ctx context.Context) error {
	if k.Out == nil {
		k.Out = color.Output
	}
	_, _ = fmt.Fprintln(k.Out, "")

	bl := glyph.DefaultBullets()
	sort.Sort(glyph.ByOrder(bl))
	k.Key(ctx, bl, false)
	_, _ = fmt.Fprintln(k.Out, "")

	ul := glyph.DefaultUrgencies()
	sort.Sort(glyph.ByOrder(ul))
	k.Key(ctx, ul, true)

	_, _ = fmt.Fprintln(k.Out, "")
	return nil
}

// Key renders a glyph table; when urgency is true, urgency markers are shown.
func (k *Key) Key(_ context.Context, glyfs []glyph.Glyph, urgency bool) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	if urgency {
		tbl.AddRow(bold.Sprint("Urgency"), bold.Sprint("Level"), bold.Sprint("Meaning"))
	} else {
		tbl.AddRow(bold.Sprint("Bullets"), "", bold.Sprint("Meaning"))
	}
	for _, v := range glyfs {
		if urgency != v.Urgency {
			continue
		}
		symbol := v.Symbol
		if symbol == " " {
			symbol = "·"
		}
		tbl.AddRow(symbol, v.Key, v.Meaning)
	}
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(k.Out, tbl)
}
