// Package app is the service layer shared by the CLI and the terminal UI.
package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"tableflip.dev/todo/pkg/category"
	"tableflip.dev/todo/pkg/notify"
	"tableflip.dev/todo/pkg/selection"
	"tableflip.dev/todo/pkg/store"
	"tableflip.dev/todo/pkg/task"
	"tableflip.dev/todo/pkg/tasklist"
)

// Service provides high-level operations over the task list.
// It wraps persistence and list transformations so UIs and CLIs can share logic.
type Service struct {
	Persistence store.Persistence
	// Notices receives user facing feedback. Optional.
	Notices *notify.Manager
	// Now stamps new tasks. Defaults to time.Now.
	Now func() time.Time
}

var (
	ErrInvalidTitle  = errors.New("app: task title is blank")
	ErrNotFound      = errors.New("app: task not found")
	ErrNoPersistence = errors.New("app: no persistence configured")
)

// Tasks loads the stored list with nothing selected.
func (s *Service) Tasks(ctx context.Context) ([]task.Task, error) {
	if s.Persistence == nil {
		return nil, ErrNoPersistence
	}
	return tasklist.Init(s.Persistence)
}

// Save persists the whole list.
func (s *Service) Save(ctx context.Context, tasks []task.Task) error {
	if s.Persistence == nil {
		return ErrNoPersistence
	}
	if err := s.Persistence.Save(tasks); err != nil {
		s.notify(notify.Error, fmt.Sprintf("Save failed: %v", err))
		return err
	}
	return nil
}

// Add creates and stores a new task.
func (s *Service) Add(ctx context.Context, title string, c category.Category) (*task.Task, error) {
	if s.Persistence == nil {
		return nil, ErrNoPersistence
	}
	if !task.IsTitleValid(title) {
		s.notify(notify.Warning, "Please enter a task title")
		return nil, ErrInvalidTitle
	}
	if !c.Valid() {
		s.notify(notify.Warning, fmt.Sprintf("Unknown category %q", c))
		return nil, fmt.Errorf("%w %q", category.ErrUnknown, c)
	}
	tasks, err := s.Tasks(ctx)
	if err != nil {
		return nil, err
	}
	t := task.New(title, c, s.now())
	tasks = append(tasks, t)
	if err := s.Save(ctx, tasks); err != nil {
		return nil, err
	}
	log.WithField("id", t.ID).Debug("app: added task")
	s.notify(notify.Success, "Task added")
	return &t, nil
}

// Edit updates the title and category of the task with the given id. An
// empty category keeps the current one.
func (s *Service) Edit(ctx context.Context, id task.ID, title string, c category.Category) (*task.Task, error) {
	if s.Persistence == nil {
		return nil, ErrNoPersistence
	}
	if !task.IsTitleValid(title) {
		s.notify(notify.Warning, "Please enter a task title")
		return nil, ErrInvalidTitle
	}
	if c != "" && !c.Valid() {
		s.notify(notify.Warning, fmt.Sprintf("Unknown category %q", c))
		return nil, fmt.Errorf("%w %q", category.ErrUnknown, c)
	}
	tasks, err := s.Tasks(ctx)
	if err != nil {
		return nil, err
	}
	for i := range tasks {
		if tasks[i].ID != id {
			continue
		}
		tasks[i].Title = strings.TrimSpace(title)
		if c != "" {
			tasks[i].Category = c
		}
		if err := s.Save(ctx, tasks); err != nil {
			return nil, err
		}
		s.notify(notify.Success, "Task updated")
		edited := tasks[i]
		return &edited, nil
	}
	s.notify(notify.Error, "Task not found")
	return nil, ErrNotFound
}

// SetCompleted marks the tasks with the given ids complete or incomplete and
// returns how many matched.
func (s *Service) SetCompleted(ctx context.Context, completed bool, ids ...task.ID) (int, error) {
	if s.Persistence == nil {
		return 0, ErrNoPersistence
	}
	tasks, err := s.Tasks(ctx)
	if err != nil {
		return 0, err
	}
	tasks, n := tasklist.SelectIDs(tasks, ids...)
	if n == 0 {
		s.notify(notify.Warning, "No matching tasks")
		return 0, ErrNotFound
	}
	tasks = tasklist.ResetSelection(tasklist.BatchUpdateStatus(tasks, completed))
	if err := s.Save(ctx, tasks); err != nil {
		return 0, err
	}
	if completed {
		s.notify(notify.Success, fmt.Sprintf("Completed %s", plural(n)))
	} else {
		s.notify(notify.Success, fmt.Sprintf("Reopened %s", plural(n)))
	}
	return n, nil
}

// Delete removes the tasks with the given ids and returns how many matched.
func (s *Service) Delete(ctx context.Context, ids ...task.ID) (int, error) {
	if s.Persistence == nil {
		return 0, ErrNoPersistence
	}
	tasks, err := s.Tasks(ctx)
	if err != nil {
		return 0, err
	}
	tasks, n := tasklist.SelectIDs(tasks, ids...)
	if n == 0 {
		s.notify(notify.Warning, "No matching tasks")
		return 0, ErrNotFound
	}
	if err := s.Save(ctx, tasklist.BatchDeleteSelected(tasks)); err != nil {
		return 0, err
	}
	s.notify(notify.Success, fmt.Sprintf("Deleted %s", plural(n)))
	return n, nil
}

// Clear removes every stored task.
func (s *Service) Clear(ctx context.Context) error {
	if s.Persistence == nil {
		return ErrNoPersistence
	}
	if err := s.Persistence.Clear(); err != nil {
		s.notify(notify.Error, fmt.Sprintf("Clear failed: %v", err))
		return err
	}
	s.notify(notify.Warning, "All tasks cleared")
	return nil
}

// Notify shows a notice if a manager is configured.
func (s *Service) Notify(typ notify.Type, message string) {
	s.notify(typ, message)
}

func (s *Service) notify(typ notify.Type, message string) {
	if s.Notices == nil {
		return
	}
	s.Notices.Show(typ, message, 0)
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func plural(n int) string {
	if n == 1 {
		return "1 task"
	}
	return fmt.Sprintf("%d tasks", n)
}

// IDsIn returns the ids of every task in c, category.All meaning every task.
func (s *Service) IDsIn(ctx context.Context, c category.Category) ([]task.ID, error) {
	tasks, err := s.Tasks(ctx)
	if err != nil {
		return nil, err
	}
	visible := selection.ToggleAll(tasklist.FilterByCategory(tasks, c), true, true)
	ids := make([]task.ID, 0, selection.Count(visible, true))
	for _, t := range visible {
		if t.Selected {
			ids = append(ids, t.ID)
		}
	}
	return ids, nil
}

// Watch reports changes to the stored list until ctx is done.
func (s *Service) Watch(ctx context.Context) (<-chan store.Event, error) {
	if s.Persistence == nil {
		return nil, ErrNoPersistence
	}
	return s.Persistence.Watch(ctx)
}
