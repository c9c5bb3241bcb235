package ui

import (
	"testing"
	"time"

	"tableflip.dev/todo/pkg/category"
	"tableflip.dev/todo/pkg/task"
)

func TestStaticDemo(t *testing.T) {
	now := time.Date(2025, 5, 10, 12, 0, 0, 0, time.UTC)
	tasks := StaticDemo(now)

	seen := map[category.Category]bool{}
	ids := map[task.ID]bool{}
	for _, tk := range tasks {
		if !tk.Category.Valid() {
			t.Fatalf("invalid category %q", tk.Category)
		}
		if !task.IsTitleValid(tk.Title) {
			t.Fatalf("blank title in demo data")
		}
		if ids[tk.ID] {
			t.Fatalf("duplicate id %q", tk.ID)
		}
		ids[tk.ID] = true
		seen[tk.Category] = true
		if tk.When().After(now) {
			t.Fatalf("demo task %q stamped in the future", tk.Title)
		}
	}
	for _, c := range category.List {
		if !seen[c] {
			t.Fatalf("no demo task for %q", c)
		}
	}
}
