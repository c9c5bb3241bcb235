// Package get provides the runner that lists tasks.
package get

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/todo/pkg/app"
	"tableflip.dev/todo/pkg/category"
	"tableflip.dev/todo/pkg/printers"
	"tableflip.dev/todo/pkg/tasklist"
)

// Encoder writes machine readable output.
type Encoder interface {
	Structured() bool
	Write(w io.Writer, v interface{}) error
}

type Get struct {
	Category category.Category
	Order    tasklist.SortOrder
	// Since drops tasks older than this when set.
	Since time.Duration
	Now   func() time.Time
	// Output is optional, text is printed without it.
	Output Encoder

	Service *app.Service
	Printer *printers.PrettyPrint
}

func (n *Get) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not get, no service")
	}
	all, err := n.Service.Tasks(ctx)
	if err != nil {
		return err
	}
	c := n.Category
	if c == "" {
		c = category.All
	}
	if n.Since > 0 {
		now := time.Now
		if n.Now != nil {
			now = n.Now
		}
		all = tasklist.Since(all, now().Add(-n.Since))
	}
	shown := tasklist.FilterAndSort(all, c, n.Order)

	pp := n.Printer
	if pp == nil {
		pp = &printers.PrettyPrint{}
	}
	if n.Output != nil && n.Output.Structured() {
		w := pp.Out
		if w == nil {
			w = color.Output
		}
		return n.Output.Write(w, shown)
	}

	pp.NewLine()
	pp.TitleWithCount(c.String(), len(shown))
	pp.Tasks(shown...)
	return nil
}
