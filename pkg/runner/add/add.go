// Package add provides the runner for adding a task.
package add

import (
	"context"
	"errors"

	"tableflip.dev/todo/pkg/app"
	"tableflip.dev/todo/pkg/category"
	"tableflip.dev/todo/pkg/printers"
	"tableflip.dev/todo/pkg/tasklist"
)

type Add struct {
	Title    string
	Category category.Category
	Order    tasklist.SortOrder

	Service *app.Service
	Printer *printers.PrettyPrint
}

// Do stores the task, then prints the category it landed in.
func (n *Add) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not add, no service")
	}
	t, err := n.Service.Add(ctx, n.Title, n.Category)
	if err != nil {
		return err
	}

	all, err := n.Service.Tasks(ctx)
	if err != nil {
		return err
	}
	shown := tasklist.FilterAndSort(all, t.Category, n.Order)

	pp := n.printer()
	pp.NewLine()
	pp.TitleWithCount(t.Category.String(), len(shown))
	pp.Tasks(shown...)
	return nil
}

func (n *Add) printer() *printers.PrettyPrint {
	if n.Printer != nil {
		return n.Printer
	}
	return &printers.PrettyPrint{}
}
