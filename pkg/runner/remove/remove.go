// Package remove provides the runner that deletes tasks.
package remove

import (
	"context"
	"errors"

	"tableflip.dev/todo/pkg/app"
	"tableflip.dev/todo/pkg/category"
	"tableflip.dev/todo/pkg/printers"
	"tableflip.dev/todo/pkg/task"
	"tableflip.dev/todo/pkg/tasklist"
)

type Remove struct {
	IDs []task.ID
	// All deletes every task in Category instead of IDs.
	All      bool
	Category category.Category
	Order    tasklist.SortOrder

	Service *app.Service
	Printer *printers.PrettyPrint
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not remove, no service")
	}
	c := n.Category
	if c == "" {
		c = category.All
	}

	ids := n.IDs
	if n.All {
		var err error
		if ids, err = n.Service.IDsIn(ctx, c); err != nil {
			return err
		}
	} else if len(ids) == 0 {
		return errors.New("no tasks given, pass ids or --all")
	}

	if len(ids) > 0 {
		if _, err := n.Service.Delete(ctx, ids...); err != nil {
			return err
		}
	}

	all, err := n.Service.Tasks(ctx)
	if err != nil {
		return err
	}
	shown := tasklist.FilterAndSort(all, c, n.Order)
	pp := n.Printer
	if pp == nil {
		pp = &printers.PrettyPrint{ShowID: true}
	}
	pp.NewLine()
	pp.TitleWithCount(c.String(), len(shown))
	pp.Tasks(shown...)
	return nil
}
