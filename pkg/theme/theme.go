// Package theme holds the dark and light Lip Gloss style sets. A Theme is a
// plain value owned by whoever renders; there is no process-wide flag.
package theme

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"tableflip.dev/groupdo/pkg/todo"
)

// Name identifies a style set.
type Name string

const (
	Dark  Name = "dark"
	Light Name = "light"
	// Auto picks Dark or Light from the terminal background at startup.
	Auto Name = "auto"
)

// ParseName accepts dark, light or auto, case-insensitive.
func ParseName(s string) (Name, error) {
	switch Name(strings.ToLower(strings.TrimSpace(s))) {
	case Dark, "":
		return Dark, nil
	case Light:
		return Light, nil
	case Auto:
		return Auto, nil
	}
	return "", fmt.Errorf("theme: unknown theme %q (want dark, light or auto)", s)
}

// Resolve turns Auto into a concrete name.
func (n Name) Resolve() Name {
	if n != Auto {
		return n
	}
	if lipgloss.HasDarkBackground() {
		return Dark
	}
	return Light
}

// Toggle flips between Dark and Light.
func (n Name) Toggle() Name {
	if n.Resolve() == Dark {
		return Light
	}
	return Dark
}

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Name   Name
	Panel  PanelTheme
	List   ListTheme
	Footer FooterTheme
	// Urgency is indexed by todo.Urgency.
	Urgency [todo.UrgencyLevels]lipgloss.Style
}

// PanelTheme styles the title, the column headers and the divider.
type PanelTheme struct {
	Title        lipgloss.Style
	Header       lipgloss.Style
	ActiveHeader lipgloss.Style
	Divider      lipgloss.Style
}

// ListTheme styles rows.
type ListTheme struct {
	Item     lipgloss.Style
	Selected lipgloss.Style
	Cursor   lipgloss.Style
	Done     lipgloss.Style
	SubTask  lipgloss.Style
	Dragging lipgloss.Style
	Empty    lipgloss.Style
}

// FooterTheme groups styles used by the bottom status/help bar.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
	Error  lipgloss.Style
}

type palette struct {
	fg, muted, faint, accent, selectedFg, selectedBg, border, err lipgloss.Color
	urgency                                                       [todo.UrgencyLevels]lipgloss.Color
}

var palettes = map[Name]palette{
	Dark: {
		fg:         "252",
		muted:      "245",
		faint:      "240",
		accent:     "212",
		selectedFg: "230",
		selectedBg: "62",
		border:     "63",
		err:        "203",
		urgency:    [todo.UrgencyLevels]lipgloss.Color{"244", "111", "214", "203"},
	},
	Light: {
		fg:         "235",
		muted:      "242",
		faint:      "248",
		accent:     "161",
		selectedFg: "255",
		selectedBg: "25",
		border:     "25",
		err:        "160",
		urgency:    [todo.UrgencyLevels]lipgloss.Color{"244", "27", "166", "160"},
	},
}

// New returns the style set for n. Auto is resolved first; unknown names get
// Dark.
func New(n Name) Theme {
	n = n.Resolve()
	p, ok := palettes[n]
	if !ok {
		n, p = Dark, palettes[Dark]
	}

	t := Theme{
		Name: n,
		Panel: PanelTheme{
			Title:        lipgloss.NewStyle().Bold(true).Foreground(p.accent),
			Header:       lipgloss.NewStyle().Bold(true).Foreground(p.muted),
			ActiveHeader: lipgloss.NewStyle().Bold(true).Underline(true).Foreground(p.border),
			Divider:      lipgloss.NewStyle().Foreground(p.faint),
		},
		List: ListTheme{
			Item:     lipgloss.NewStyle().Foreground(p.fg),
			Selected: lipgloss.NewStyle().Foreground(p.selectedFg).Background(p.selectedBg).Bold(true),
			Cursor:   lipgloss.NewStyle().Foreground(p.accent),
			Done:     lipgloss.NewStyle().Foreground(p.faint).Strikethrough(true),
			SubTask:  lipgloss.NewStyle().Foreground(p.muted),
			Dragging: lipgloss.NewStyle().Foreground(p.accent).Reverse(true),
			Empty:    lipgloss.NewStyle().Foreground(p.faint).Italic(true),
		},
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(p.muted),
			Status: lipgloss.NewStyle().Foreground(p.muted),
			Error:  lipgloss.NewStyle().Foreground(p.err).Bold(true),
		},
	}
	for i, c := range p.urgency {
		t.Urgency[i] = lipgloss.NewStyle().Foreground(c)
	}
	return t
}

// UrgencyStyle returns the style for level, falling back to the lowest level.
func (t Theme) UrgencyStyle(level todo.Urgency) lipgloss.Style {
	if !level.Valid() {
		return t.Urgency[todo.UrgencyLow]
	}
	return t.Urgency[level]
}
