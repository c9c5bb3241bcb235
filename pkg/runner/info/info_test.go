package info

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"tableflip.dev/todo/pkg/app"
	"tableflip.dev/todo/pkg/category"
	"tableflip.dev/todo/pkg/config"
	"tableflip.dev/todo/pkg/store"
	"tableflip.dev/todo/pkg/task"
	"tableflip.dev/todo/pkg/tasklist"
)

func TestInfo(t *testing.T) {
	t.Setenv(config.EnvConfigPath, "")
	svc := &app.Service{Persistence: store.NewMemory(
		task.Task{ID: "1", Title: "a", Category: category.Work, Completed: true},
		task.Task{ID: "2", Title: "b", Category: category.Work},
	)}
	out := &bytes.Buffer{}
	i := &Info{
		Config:  &config.Config{Path: "/tmp/todo.db", SortOrder: tasklist.Desc},
		Out:     out,
		Service: svc,
	}
	if err := i.Do(context.Background()); err != nil {
		t.Fatalf("do: %v", err)
	}
	got := out.String()
	for _, want := range []string{"TODO_CONFIG_PATH env var not set", "/tmp/todo.db", "1/2", "work"} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in:\n%s", want, got)
		}
	}
}
