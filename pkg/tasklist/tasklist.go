// Package tasklist holds the pure transformations over a task list: filter,
// sort and the batch edits driven by the transient Selected flag.
package tasklist

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"tableflip.dev/todo/pkg/category"
	"tableflip.dev/todo/pkg/store"
	"tableflip.dev/todo/pkg/task"
)

// SortOrder picks the time direction within a completion group.
type SortOrder string

const (
	Asc  SortOrder = "asc"
	Desc SortOrder = "desc"
)

// ErrUnknownSortOrder is returned by ParseSortOrder.
var ErrUnknownSortOrder = errors.New("tasklist: unknown sort order")

// ParseSortOrder accepts asc or desc, empty meaning desc.
func ParseSortOrder(raw string) (SortOrder, error) {
	switch SortOrder(strings.ToLower(strings.TrimSpace(raw))) {
	case Asc:
		return Asc, nil
	case Desc, "":
		return Desc, nil
	default:
		return Desc, fmt.Errorf("%w %q", ErrUnknownSortOrder, raw)
	}
}

// Toggle flips the direction.
func (o SortOrder) Toggle() SortOrder {
	if o == Asc {
		return Desc
	}
	return Asc
}

func (o SortOrder) String() string {
	if o == Asc {
		return string(Asc)
	}
	return string(Desc)
}

// Loader is the read side of the store.
type Loader interface {
	Todos() ([]task.Task, error)
}

// Init loads the stored list with every task unselected. A corrupt list is
// logged and replaced by an empty one. Missing or repeated ids are replaced,
// and the repaired list is written back when l can save.
func Init(l Loader) ([]task.Task, error) {
	todos, err := l.Todos()
	if err != nil {
		var corrupt *store.CorruptStateError
		if !errors.As(err, &corrupt) {
			return nil, err
		}
		log.WithError(err).Warn("tasklist: stored list unreadable, starting empty")
		todos = nil
	}
	todos = ResetSelection(todos)
	if n := EnsureIDs(todos); n > 0 {
		log.WithField("count", n).Info("tasklist: assigned ids to tasks without a unique id")
		if s, ok := l.(interface{ Save([]task.Task) error }); ok {
			if err := s.Save(todos); err != nil {
				return nil, err
			}
		}
	}
	return todos, nil
}

// EnsureIDs gives every task with an empty or already seen id a new one, in
// place, and returns how many it changed.
func EnsureIDs(tasks []task.Task) int {
	seen := make(map[task.ID]struct{}, len(tasks))
	n := 0
	for i := range tasks {
		if _, dup := seen[tasks[i].ID]; tasks[i].ID == "" || dup {
			tasks[i].ID = task.ID(uuid.NewString())
			n++
		}
		seen[tasks[i].ID] = struct{}{}
	}
	return n
}

// FilterByCategory returns a copy of tasks in category c. category.All keeps
// everything.
func FilterByCategory(tasks []task.Task, c category.Category) []task.Task {
	out := make([]task.Task, 0, len(tasks))
	for _, t := range tasks {
		if c == category.All || t.Category == c {
			out = append(out, t)
		}
	}
	return out
}

// FilterAndSort filters by c, then puts incomplete tasks first and orders each
// group by time in the given direction. Desc is used for anything but Asc.
// Tasks with equal keys keep their relative order.
func FilterAndSort(tasks []task.Task, c category.Category, order SortOrder) []task.Task {
	type keyed struct {
		t    task.Task
		when time.Time
	}
	filtered := FilterByCategory(tasks, c)
	keys := make([]keyed, len(filtered))
	for i, t := range filtered {
		keys[i] = keyed{t: t, when: t.When()}
	}
	sort.SliceStable(keys, func(i, j int) bool {
		a, b := keys[i], keys[j]
		if a.t.Completed != b.t.Completed {
			return !a.t.Completed
		}
		if order == Asc {
			return a.when.Before(b.when)
		}
		return a.when.After(b.when)
	})
	out := make([]task.Task, len(keys))
	for i, k := range keys {
		out[i] = k.t
	}
	return out
}

// BatchUpdateStatus sets Completed to target on every selected task.
func BatchUpdateStatus(tasks []task.Task, target bool) []task.Task {
	out := make([]task.Task, len(tasks))
	for i, t := range tasks {
		if t.Selected {
			t.Completed = target
		}
		out[i] = t
	}
	return out
}

// BatchDeleteSelected drops every selected task.
func BatchDeleteSelected(tasks []task.Task) []task.Task {
	out := make([]task.Task, 0, len(tasks))
	for _, t := range tasks {
		if !t.Selected {
			out = append(out, t)
		}
	}
	return out
}

// ResetSelection clears Selected on every task.
func ResetSelection(tasks []task.Task) []task.Task {
	out := make([]task.Task, len(tasks))
	for i, t := range tasks {
		t.Selected = false
		out[i] = t
	}
	return out
}

// SelectIDs marks the tasks with the given ids as selected and leaves the
// rest as they were. It also returns how many ids matched.
func SelectIDs(tasks []task.Task, ids ...task.ID) ([]task.Task, int) {
	want := make(map[task.ID]struct{}, len(ids))
	for _, id := range ids {
		want[id] = struct{}{}
	}
	out := make([]task.Task, len(tasks))
	n := 0
	for i, t := range tasks {
		if _, ok := want[t.ID]; ok {
			t.Selected = true
			n++
		}
		out[i] = t
	}
	return out, n
}

// Merge writes the tasks in updated back over base, matching on ID. Tasks in
// updated that base does not know are ignored.
func Merge(base, updated []task.Task) []task.Task {
	byID := make(map[task.ID]task.Task, len(updated))
	for _, t := range updated {
		byID[t.ID] = t
	}
	out := make([]task.Task, len(base))
	for i, t := range base {
		if u, ok := byID[t.ID]; ok {
			t = u
		}
		out[i] = t
	}
	return out
}

// Since keeps the tasks stamped at or after cutoff. Tasks whose time can not
// be read are dropped.
func Since(tasks []task.Task, cutoff time.Time) []task.Task {
	out := make([]task.Task, 0, len(tasks))
	for _, t := range tasks {
		if when := t.When(); !when.IsZero() && !when.Before(cutoff) {
			out = append(out, t)
		}
	}
	return out
}

// Summary counts tasks per category.
type Summary struct {
	Category  category.Category
	Total     int
	Completed int
}

// Summarize returns one Summary per category in category.List order.
func Summarize(tasks []task.Task) []Summary {
	out := make([]Summary, len(category.List))
	index := make(map[category.Category]int, len(category.List))
	for i, c := range category.List {
		out[i].Category = c
		index[c] = i
	}
	for _, t := range tasks {
		i, ok := index[t.Category]
		if !ok {
			continue
		}
		out[i].Total++
		if t.Completed {
			out[i].Completed++
		}
	}
	return out
}
