// Package info reports where the list lives and what is in it.
package info

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/groupdo/pkg/app"
	"tableflip.dev/groupdo/pkg/store"
	"tableflip.dev/groupdo/pkg/todo"
)

type Info struct {
	Config  store.Config
	Service *app.Service
	Out     io.Writer
}

func (n *Info) Do(ctx context.Context) error {
	out := n.Out
	if out == nil {
		out = color.Output
	}

	if override := os.Getenv(store.ConfigPathEnv); override != "" {
		_, _ = fmt.Fprintln(out, store.ConfigPathEnv, "found on env, using", override)
	} else {
		_, _ = fmt.Fprintln(out, store.ConfigPathEnv, "env var not set")
	}

	if n.Config == nil {
		var err error
		n.Config, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}

	cfg := uitable.New()
	cfg.Separator = "  "
	cfg.AddRow("path:", n.Config.BasePath())
	cfg.AddRow("backend:", n.Config.Backend())
	cfg.AddRow("key:", n.Config.Key())
	cfg.AddRow("theme:", n.Config.Theme())
	cfg.AddRow("log level:", n.Config.LogLevel())
	_, _ = fmt.Fprintln(out, cfg)

	if n.Service == nil {
		return fmt.Errorf("failed to open the list")
	}

	rep := n.Service.Report()
	_, _ = fmt.Fprintf(out, "\nGroups:\n")
	if len(rep.Sections) == 0 {
		_, _ = fmt.Fprintf(out, "  %s\n", "no groups")
		return nil
	}

	bold := color.New(color.Bold)
	tbl := uitable.New()
	tbl.Separator = "  "
	header := []interface{}{bold.Sprint("#"), bold.Sprint("Group"), bold.Sprint("Done"), bold.Sprint("Subtasks")}
	for _, u := range todo.Urgencies() {
		header = append(header, bold.Sprint(u.String()))
	}
	tbl.AddRow(header...)
	for _, s := range rep.Sections {
		row := []interface{}{s.Index, s.Group, fmt.Sprintf("%d/%d", s.Completed, s.Tasks), fmt.Sprintf("%d/%d", s.SubTasksDone, s.SubTasks)}
		for _, c := range s.Open {
			row = append(row, c)
		}
		tbl.AddRow(row...)
	}
	tbl.RightAlign(0)
	_, _ = fmt.Fprintln(out, tbl)
	_, _ = fmt.Fprintf(out, "\n%d of %d tasks done\n", rep.Completed, rep.Total)
	return nil
}
