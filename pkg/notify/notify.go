// Package notify keeps the stack of transient toast notifications.
//
// A Manager is created once when the program starts, handed to whatever
// renders notices through a context, and closed on shutdown. Each notice is
// removed automatically after its duration. Removal is keyed by the notice
// id, so manual removals or a Clear in the meantime never make a pending
// timer drop the wrong entry.
package notify

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Type is the kind of a notice.
type Type string

const (
	Success Type = "success"
	Error   Type = "error"
	Warning Type = "warning"
)

const (
	// RowHeight is the vertical offset between stacked notices.
	RowHeight = 52
	// DefaultDuration is how long a notice stays up unless told otherwise.
	DefaultDuration = 3000 * time.Millisecond
)

// Notice is one toast.
type Notice struct {
	ID       string
	Type     Type
	Message  string
	Top      int
	Duration time.Duration
}

// Row is the notice's position in the stack.
func (n Notice) Row() int {
	return n.Top / RowHeight
}

// Option configures a Manager.
type Option func(*Manager)

// WithDefaultDuration overrides DefaultDuration for notices shown without one.
func WithDefaultDuration(d time.Duration) Option {
	return func(m *Manager) {
		if d > 0 {
			m.defaultDuration = d
		}
	}
}

// Manager owns the ordered list of active notices.
type Manager struct {
	mu              sync.Mutex
	notices         []Notice
	timers          map[string]*time.Timer
	subscribers     map[int]chan struct{}
	nextSub         int
	defaultDuration time.Duration
	closed          bool
}

// New creates an empty Manager.
func New(opts ...Option) *Manager {
	m := &Manager{
		timers:          make(map[string]*time.Timer),
		subscribers:     make(map[int]chan struct{}),
		defaultDuration: DefaultDuration,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Show appends a notice and schedules its removal. A duration <= 0 uses the
// default. The new notice's id is returned, or "" once the manager is closed.
func (m *Manager) Show(typ Type, message string, duration time.Duration) string {
	if duration <= 0 {
		duration = m.defaultDuration
	}
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return ""
	}
	id := uuid.NewString()
	m.notices = append(m.notices, Notice{
		ID:       id,
		Type:     typ,
		Message:  message,
		Top:      len(m.notices) * RowHeight,
		Duration: duration,
	})
	m.timers[id] = time.AfterFunc(duration, func() {
		m.RemoveID(id)
	})
	m.mu.Unlock()

	m.changed()
	return id
}

// Success shows a success notice.
func (m *Manager) Success(message string, duration time.Duration) string {
	return m.Show(Success, message, duration)
}

// Error shows an error notice.
func (m *Manager) Error(message string, duration time.Duration) string {
	return m.Show(Error, message, duration)
}

// Warning shows a warning notice.
func (m *Manager) Warning(message string, duration time.Duration) string {
	return m.Show(Warning, message, duration)
}

// Remove deletes the notice at index. Out of range indexes are ignored.
func (m *Manager) Remove(index int) {
	m.mu.Lock()
	if index < 0 || index >= len(m.notices) {
		m.mu.Unlock()
		return
	}
	m.removeLocked(index)
	m.mu.Unlock()
	m.changed()
}

// RemoveID deletes the notice with the given id, reporting whether it was
// still there.
func (m *Manager) RemoveID(id string) bool {
	m.mu.Lock()
	for i, n := range m.notices {
		if n.ID == id {
			m.removeLocked(i)
			m.mu.Unlock()
			m.changed()
			return true
		}
	}
	m.mu.Unlock()
	return false
}

func (m *Manager) removeLocked(index int) {
	id := m.notices[index].ID
	if t, ok := m.timers[id]; ok {
		t.Stop()
		delete(m.timers, id)
	}
	m.notices = append(m.notices[:index], m.notices[index+1:]...)
	for i := range m.notices {
		m.notices[i].Top = i * RowHeight
	}
}

// Clear drops every notice and cancels their pending removals.
func (m *Manager) Clear() {
	m.mu.Lock()
	m.clearLocked()
	m.mu.Unlock()
	m.changed()
}

func (m *Manager) clearLocked() {
	for id, t := range m.timers {
		t.Stop()
		delete(m.timers, id)
	}
	m.notices = nil
}

// Notices returns a snapshot of the active notices, top first.
func (m *Manager) Notices() []Notice {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Notice, len(m.notices))
	copy(out, m.notices)
	return out
}

// Len returns the number of active notices.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.notices)
}

// Subscribe returns a channel that receives a value after the list changes.
// Signals coalesce: a slow reader sees one pending value, not one per change.
// Call the returned func to unsubscribe.
func (m *Manager) Subscribe() (<-chan struct{}, func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	ch := make(chan struct{}, 1)
	if m.closed {
		close(ch)
		return ch, func() {}
	}
	key := m.nextSub
	m.nextSub++
	m.subscribers[key] = ch
	var once sync.Once
	return ch, func() {
		once.Do(func() {
			m.mu.Lock()
			defer m.mu.Unlock()
			if _, ok := m.subscribers[key]; ok {
				delete(m.subscribers, key)
				close(ch)
			}
		})
	}
}

func (m *Manager) changed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, ch := range m.subscribers {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// Close clears the list, closes subscriber channels and makes later Show
// calls no-ops.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return
	}
	m.closed = true
	m.clearLocked()
	for key, ch := range m.subscribers {
		delete(m.subscribers, key)
		close(ch)
	}
}

type contextKey struct{}

// WithManager returns a copy of ctx carrying m.
func WithManager(ctx context.Context, m *Manager) context.Context {
	return context.WithValue(ctx, contextKey{}, m)
}

// FromContext returns the Manager carried by ctx, or nil.
func FromContext(ctx context.Context) *Manager {
	if ctx == nil {
		return nil
	}
	m, _ := ctx.Value(contextKey{}).(*Manager)
	return m
}
