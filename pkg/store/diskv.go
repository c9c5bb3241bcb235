// Package store persists the task list under a single key on disk.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/peterbourgon/diskv/v3"
	log "github.com/sirupsen/logrus"

	"tableflip.dev/todo/pkg/task"
)

// Key is the one key the whole task list is stored under.
const Key = "todoList"

// Persistence defines the persistence contract for the task list.
type Persistence interface {
	// Todos returns the stored list, empty when nothing has been saved.
	Todos() ([]task.Task, error)
	// Save overwrites the stored list.
	Save(todos []task.Task) error
	// Clear removes the stored list.
	Clear() error
	Watch(ctx context.Context) (<-chan Event, error)
}

// Config is what the store needs to know about where it lives.
type Config interface {
	BasePath() string
}

// CorruptStateError is returned when the stored list can not be read back.
type CorruptStateError struct {
	Key string
	Err error
}

func (e *CorruptStateError) Error() string {
	return fmt.Sprintf("store: corrupt data under %q: %v", e.Key, e.Err)
}

func (e *CorruptStateError) Unwrap() error {
	return e.Err
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		return nil, errors.New("store: config required")
	}
	basePath := strings.TrimSpace(cfg.BasePath())
	if basePath == "" {
		return nil, errors.New("store: base path unknown")
	}
	log.WithField("path", basePath).Debug("store: opening")
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:  basePath,
		Transform: flatTransform,
		// No read cache: other processes write the same key.
		CacheSizeMax: 0,
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

func (p *persistence) Todos() ([]task.Task, error) {
	if !p.d.Has(Key) {
		return []task.Task{}, nil
	}
	val, err := p.d.Read(Key)
	if err != nil {
		return nil, fmt.Errorf("store: read %s: %w", Key, err)
	}
	return decode(val)
}

func (p *persistence) Save(todos []task.Task) error {
	if todos == nil {
		todos = []task.Task{}
	}
	data, err := json.Marshal(todos)
	if err != nil {
		return fmt.Errorf("store: encode: %w", err)
	}
	if err := p.d.Write(Key, data); err != nil {
		return fmt.Errorf("store: write %s: %w", Key, err)
	}
	log.WithField("count", len(todos)).Debug("store: saved")
	return nil
}

func (p *persistence) Clear() error {
	if !p.d.Has(Key) {
		return nil
	}
	if err := p.d.Erase(Key); err != nil {
		return fmt.Errorf("store: erase %s: %w", Key, err)
	}
	return nil
}

// decode validates raw against the list schema before reading it.
func decode(raw []byte) ([]task.Task, error) {
	var doc interface{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, &CorruptStateError{Key: Key, Err: err}
	}
	if err := validate(doc); err != nil {
		return nil, &CorruptStateError{Key: Key, Err: err}
	}
	var todos []task.Task
	if err := json.Unmarshal(raw, &todos); err != nil {
		return nil, &CorruptStateError{Key: Key, Err: err}
	}
	if todos == nil {
		todos = []task.Task{}
	}
	return todos, nil
}

// flatTransform keeps every key directly under the base path.
func flatTransform(string) []string {
	return []string{}
}
