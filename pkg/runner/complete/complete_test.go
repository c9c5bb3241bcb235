package complete

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/muesli/termenv"

	"tableflip.dev/todo/pkg/app"
	"tableflip.dev/todo/pkg/category"
	"tableflip.dev/todo/pkg/printers"
	"tableflip.dev/todo/pkg/store"
	"tableflip.dev/todo/pkg/task"
)

func fixture() (*app.Service, *printers.PrettyPrint) {
	mem := store.NewMemory(
		task.Task{ID: "1", Title: "a", Category: category.Work},
		task.Task{ID: "2", Title: "b", Category: category.Work},
		task.Task{ID: "3", Title: "c", Category: category.Life},
	)
	profile := termenv.Ascii
	return &app.Service{Persistence: mem}, &printers.PrettyPrint{Out: &bytes.Buffer{}, Profile: &profile}
}

func completed(t *testing.T, svc *app.Service) map[task.ID]bool {
	t.Helper()
	tasks, err := svc.Tasks(context.Background())
	if err != nil {
		t.Fatalf("tasks: %v", err)
	}
	out := make(map[task.ID]bool, len(tasks))
	for _, tk := range tasks {
		out[tk.ID] = tk.Completed
	}
	return out
}

func TestCompleteIDs(t *testing.T) {
	svc, pp := fixture()
	c := &Complete{IDs: []task.ID{"1", "3"}, Completed: true, Service: svc, Printer: pp}
	if err := c.Do(context.Background()); err != nil {
		t.Fatalf("do: %v", err)
	}
	got := completed(t, svc)
	if !got["1"] || got["2"] || !got["3"] {
		t.Fatalf("unexpected state %v", got)
	}
}

func TestCompleteAllInCategory(t *testing.T) {
	svc, pp := fixture()
	c := &Complete{All: true, Category: category.Work, Completed: true, Service: svc, Printer: pp}
	if err := c.Do(context.Background()); err != nil {
		t.Fatalf("do: %v", err)
	}
	got := completed(t, svc)
	if !got["1"] || !got["2"] || got["3"] {
		t.Fatalf("unexpected state %v", got)
	}

	undo := &Complete{All: true, Completed: false, Service: svc, Printer: pp}
	if err := undo.Do(context.Background()); err != nil {
		t.Fatalf("undo: %v", err)
	}
	for id, done := range completed(t, svc) {
		if done {
			t.Fatalf("expected %s reopened", id)
		}
	}
}

func TestCompleteAllInEmptyCategory(t *testing.T) {
	svc, pp := fixture()
	c := &Complete{All: true, Category: category.Study, Completed: true, Service: svc, Printer: pp}
	if err := c.Do(context.Background()); err != nil {
		t.Fatalf("expected no error for empty category, got %v", err)
	}
}

func TestCompleteNothing(t *testing.T) {
	svc, pp := fixture()
	c := &Complete{Completed: true, Service: svc, Printer: pp}
	if err := c.Do(context.Background()); !errors.Is(err, ErrNothingToDo) {
		t.Fatalf("expected ErrNothingToDo, got %v", err)
	}
}

func TestCompleteUnknownID(t *testing.T) {
	svc, pp := fixture()
	c := &Complete{IDs: []task.ID{"nope"}, Completed: true, Service: svc, Printer: pp}
	if err := c.Do(context.Background()); !errors.Is(err, app.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
