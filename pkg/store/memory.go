package store

import (
	"context"
	"encoding/json"
	"sync"

	"tableflip.dev/todo/pkg/task"
)

// Memory is a Persistence that keeps the encoded list in memory. It runs the
// same decoding as the disk store so corrupt input behaves the same way.
type Memory struct {
	mu       sync.Mutex
	raw      []byte
	watchers []chan Event
}

var _ Persistence = (*Memory)(nil)

// NewMemory returns a store seeded with tasks.
func NewMemory(tasks ...task.Task) *Memory {
	m := &Memory{}
	if len(tasks) > 0 {
		_ = m.Save(tasks)
	}
	return m
}

// SetRaw replaces the stored bytes as if another writer had changed them.
func (m *Memory) SetRaw(raw []byte) {
	m.mu.Lock()
	m.raw = append([]byte(nil), raw...)
	m.mu.Unlock()
	m.notify()
}

func (m *Memory) Todos() ([]task.Task, error) {
	m.mu.Lock()
	raw := m.raw
	m.mu.Unlock()
	if raw == nil {
		return []task.Task{}, nil
	}
	return decode(raw)
}

func (m *Memory) Save(todos []task.Task) error {
	if todos == nil {
		todos = []task.Task{}
	}
	raw, err := json.Marshal(todos)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.raw = raw
	m.mu.Unlock()
	return nil
}

func (m *Memory) Clear() error {
	m.mu.Lock()
	m.raw = nil
	m.mu.Unlock()
	return nil
}

// Watch only reports changes made through SetRaw.
func (m *Memory) Watch(ctx context.Context) (<-chan Event, error) {
	ch := make(chan Event, 8)
	m.mu.Lock()
	m.watchers = append(m.watchers, ch)
	m.mu.Unlock()

	go func() {
		<-ctx.Done()
		m.mu.Lock()
		defer m.mu.Unlock()
		for i, w := range m.watchers {
			if w == ch {
				m.watchers = append(m.watchers[:i], m.watchers[i+1:]...)
				break
			}
		}
		close(ch)
	}()
	return ch, nil
}

func (m *Memory) notify() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, w := range m.watchers {
		select {
		case w <- Event{Key: Key}:
		default:
		}
	}
}
