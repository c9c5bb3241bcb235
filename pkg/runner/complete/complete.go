// Package complete provides the runner logic for marking tasks complete or
// reopening them.
package complete

import (
	"context"
	"errors"

	"tableflip.dev/todo/pkg/app"
	"tableflip.dev/todo/pkg/category"
	"tableflip.dev/todo/pkg/printers"
	"tableflip.dev/todo/pkg/task"
	"tableflip.dev/todo/pkg/tasklist"
)

// ErrNothingToDo is returned when neither ids nor a category were given.
var ErrNothingToDo = errors.New("no tasks given, pass ids or --all")

// Complete sets the completed flag on a batch of tasks.
type Complete struct {
	IDs []task.ID
	// All targets every task in Category instead of IDs.
	All       bool
	Category  category.Category
	Completed bool
	Order     tasklist.SortOrder

	Service *app.Service
	Printer *printers.PrettyPrint
}

// Do executes the update and prints the affected category.
func (n *Complete) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not complete, no service")
	}

	ids := n.IDs
	if n.All {
		var err error
		if ids, err = n.Service.IDsIn(ctx, n.filter()); err != nil {
			return err
		}
		if len(ids) == 0 {
			// An empty category is not an error.
			return n.print(ctx)
		}
	}
	if len(ids) == 0 {
		return ErrNothingToDo
	}

	if _, err := n.Service.SetCompleted(ctx, n.Completed, ids...); err != nil {
		return err
	}
	return n.print(ctx)
}

func (n *Complete) filter() category.Category {
	if n.Category == "" {
		return category.All
	}
	return n.Category
}

func (n *Complete) print(ctx context.Context) error {
	all, err := n.Service.Tasks(ctx)
	if err != nil {
		return err
	}
	shown := tasklist.FilterAndSort(all, n.filter(), n.Order)

	pp := n.Printer
	if pp == nil {
		pp = &printers.PrettyPrint{ShowID: true}
	}
	pp.NewLine()
	pp.TitleWithCount(n.filter().String(), len(shown))
	pp.Tasks(shown...)
	return nil
}
