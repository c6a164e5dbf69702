// Package ui starts the full-screen interface.
package ui

import (
	"context"
	"errors"
	"os"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"

	"tableflip.dev/groupdo/pkg/app"
	"tableflip.dev/groupdo/pkg/tui"
)

var ErrNoTerminal = errors.New("ui: stdin and stdout must be a terminal")

type UI struct {
	Service *app.Service
	Logger  *log.Logger
}

func (d *UI) Do(ctx context.Context) error {
	if d.Service == nil {
		return errors.New("can not start ui, no service")
	}
	if !isTerminal(os.Stdin.Fd()) || !isTerminal(os.Stdout.Fd()) {
		return ErrNoTerminal
	}
	return tui.Run(ctx, d.Service, tui.WithLogger(d.Logger))
}

func isTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
