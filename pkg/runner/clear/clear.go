// Package clear provides the runner that removes every task.
package clear

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	log "github.com/sirupsen/logrus"

	"tableflip.dev/todo/pkg/app"
)

// ErrAborted is returned when the prompt is declined.
var ErrAborted = errors.New("clear aborted")

type Clear struct {
	// Yes skips the confirmation prompt.
	Yes bool

	In  io.Reader
	Out io.Writer

	Service *app.Service
}

func (n *Clear) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not clear, no service")
	}
	if !n.Yes {
		ok, err := n.confirm()
		if err != nil {
			return err
		}
		if !ok {
			return ErrAborted
		}
	}
	log.Debug("clear: erasing task list")
	return n.Service.Clear(ctx)
}

func (n *Clear) confirm() (bool, error) {
	in, out := n.In, n.Out
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = color.Output
	}
	_, _ = color.New(color.FgYellow).Fprint(out, "Delete every task? [y/N] ")
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("read answer: %w", err)
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}
