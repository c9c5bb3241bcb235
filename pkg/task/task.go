// Package task defines the to-do entry and its title validation.
package task

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"tableflip.dev/todo/pkg/category"
)

// Task is a single to-do entry.
type Task struct {
	ID        ID                `json:"id" yaml:"id"`
	Title     string            `json:"title" yaml:"title"`
	Category  category.Category `json:"category" yaml:"category"`
	Completed bool              `json:"completed" yaml:"completed"`
	Time      string            `json:"time" yaml:"time"`

	// Selected marks the task for a batch edit. It only lives in memory.
	Selected bool `json:"-" yaml:"-"`
}

// New creates an incomplete task stamped with now.
func New(title string, c category.Category, now time.Time) Task {
	return Task{
		ID:       ID(uuid.NewString()),
		Title:    strings.TrimSpace(title),
		Category: c,
		Time:     FormatTime(now),
	}
}

// When parses Time, returning the zero time when it can not be read.
func (t Task) When() time.Time {
	when, err := ParseTime(t.Time)
	if err != nil {
		return time.Time{}
	}
	return when
}

func (t Task) String() string {
	mark := " "
	if t.Completed {
		mark = "x"
	}
	return fmt.Sprintf("[%s] %s (%s)", mark, t.Title, t.Category)
}

// ID identifies a task. Older lists stored numeric ids, those are read back
// as their decimal text.
type ID string

func (id ID) String() string {
	return string(id)
}

// UnmarshalJSON accepts both strings and numbers.
func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	if bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("task: id must be a string or number: %w", err)
	}
	*id = ID(n.String())
	return nil
}

var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006/1/2 15:04:05",
	"2006/1/2 15:04",
	"2006-01-02",
	"2006/1/2",
}

// ParseTime reads a task timestamp in any of the accepted layouts.
func ParseTime(v string) (time.Time, error) {
	v = strings.TrimSpace(v)
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("task: unrecognized time %q", v)
}

// FormatTime is the layout new tasks are stamped with.
func FormatTime(v time.Time) string {
	return v.UTC().Format(time.RFC3339)
}
