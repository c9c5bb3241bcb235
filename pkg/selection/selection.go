// Package selection counts and toggles the per-task flag a view is working
// with: Selected while batch editing, Completed otherwise.
package selection

import "tableflip.dev/todo/pkg/task"

func flag(t task.Task, editing bool) bool {
	if editing {
		return t.Selected
	}
	return t.Completed
}

// Count returns how many tasks have the flag set.
func Count(tasks []task.Task, editing bool) int {
	n := 0
	for _, t := range tasks {
		if flag(t, editing) {
			n++
		}
	}
	return n
}

// AllSelected reports whether every task has the flag set. An empty list is
// never all selected.
func AllSelected(tasks []task.Task, editing bool) bool {
	if len(tasks) == 0 {
		return false
	}
	for _, t := range tasks {
		if !flag(t, editing) {
			return false
		}
	}
	return true
}

// ToggleAll returns a copy of tasks with the flag set to target.
func ToggleAll(tasks []task.Task, target, editing bool) []task.Task {
	out := make([]task.Task, len(tasks))
	for i, t := range tasks {
		if editing {
			t.Selected = target
		} else {
			t.Completed = target
		}
		out[i] = t
	}
	return out
}
