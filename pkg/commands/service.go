package commands

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"tableflip.dev/groupdo/pkg/app"
	"tableflip.dev/groupdo/pkg/logging"
	"tableflip.dev/groupdo/pkg/store"
	"tableflip.dev/groupdo/pkg/theme"
)

// session is what every command works against.
type session struct {
	cfg    store.Config
	log    *log.Logger
	svc    *app.Service
	closer func()
}

func (s *session) Close() {
	if s.svc != nil {
		_ = s.svc.Close()
	}
	if s.closer != nil {
		s.closer()
	}
}

// openSession loads the config, then the list. Logs go to w, or stderr when
// w is nil.
func openSession(ctx context.Context, w io.Writer) (*session, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	if w == nil {
		w = os.Stderr
	}
	opts := logging.DefaultOptions()
	opts.Level = cfg.LogLevel()
	logger := logging.NewWithWriter(w, opts)

	p, err := store.Load(cfg, store.WithLogger(logger))
	if err != nil {
		return nil, err
	}

	name, err := theme.ParseName(cfg.Theme())
	if err != nil {
		logger.Warn("ignoring theme from config", "err", err)
		name = theme.Dark
	}
	svc, err := app.New(ctx, p, app.WithLogger(logger), app.WithTheme(name))
	if err != nil {
		_ = p.Close()
		return nil, err
	}
	return &session{cfg: cfg, log: logger, svc: svc}, nil
}

// groupNames lists the groups for prompts and completions.
func groupNames(svc *app.Service) []string {
	l := svc.List()
	names := make([]string, 0, len(l.Groups))
	for _, g := range l.Groups {
		names = append(names, g.Name)
	}
	return names
}
