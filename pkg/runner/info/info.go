// Package info provides the runner that reports where tasks are kept.
package info

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"tableflip.dev/todo/pkg/app"
	"tableflip.dev/todo/pkg/config"
	"tableflip.dev/todo/pkg/printers"
	"tableflip.dev/todo/pkg/tasklist"
)

type Info struct {
	Config *config.Config
	Out    io.Writer

	Service *app.Service
}

func (n *Info) Do(ctx context.Context) error {
	if n.Config == nil || n.Service == nil {
		return errors.New("can not report, no config")
	}
	out := n.Out
	if out == nil {
		out = color.Output
	}

	if override := os.Getenv(config.EnvConfigPath); override != "" {
		fmt.Fprintf(out, "%s found on env, using %s\n", config.EnvConfigPath, override)
	} else {
		fmt.Fprintf(out, "%s env var not set\n", config.EnvConfigPath)
	}
	fmt.Fprintf(out, "Config.path: %s\n", n.Config.BasePath())
	fmt.Fprintf(out, "Config.sort: %s\n", n.Config.SortOrder)
	fmt.Fprintf(out, "Config.notice_duration: %s\n", n.Config.NoticeDuration)
	fmt.Fprintln(out, "")

	all, err := n.Service.Tasks(ctx)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{Out: out}
	pp.TitleWithCount("Categories", len(all))
	pp.Summary(tasklist.Summarize(all)...)
	return nil
}
