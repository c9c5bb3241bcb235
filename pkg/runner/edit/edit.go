// Package edit provides the runner that renames or recategorizes a task.
package edit

import (
	"context"
	"errors"

	"tableflip.dev/todo/pkg/app"
	"tableflip.dev/todo/pkg/category"
	"tableflip.dev/todo/pkg/printers"
	"tableflip.dev/todo/pkg/task"
)

type Edit struct {
	ID    task.ID
	Title string
	// Category is left unchanged when empty.
	Category category.Category

	Service *app.Service
	Printer *printers.PrettyPrint
}

func (n *Edit) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not edit, no service")
	}
	t, err := n.Service.Edit(ctx, n.ID, n.Title, n.Category)
	if err != nil {
		return err
	}
	pp := n.Printer
	if pp == nil {
		pp = &printers.PrettyPrint{ShowID: true}
	}
	pp.NewLine()
	pp.Tasks(*t)
	return nil
}
