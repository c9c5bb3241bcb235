// Package ui provides the runner that opens the terminal UI.
package ui

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/todo/pkg/app"
	"tableflip.dev/todo/pkg/store"
	"tableflip.dev/todo/pkg/tasklist"
	"tableflip.dev/todo/pkg/tui"
)

type UI struct {
	Order tasklist.SortOrder
	// Demo swaps the stored list for sample tasks kept in memory.
	Demo bool

	Service *app.Service
}

func (d *UI) Do(ctx context.Context) error {
	if d.Service == nil {
		return errors.New("can not open ui, no service")
	}
	svc := d.Service
	if d.Demo {
		svc = &app.Service{
			Persistence: store.NewMemory(StaticDemo(time.Now())...),
			Notices:     d.Service.Notices,
		}
	}
	return tui.Run(ctx, svc, tui.WithSortOrder(d.Order))
}
