package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"tableflip.dev/todo/pkg/app"
	"tableflip.dev/todo/pkg/category"
	"tableflip.dev/todo/pkg/notify"
	"tableflip.dev/todo/pkg/store"
	"tableflip.dev/todo/pkg/task"
	"tableflip.dev/todo/pkg/tasklist"
)

func seed() []task.Task {
	return []task.Task{
		{ID: "1", Title: "write report", Category: category.Work, Time: "2025-03-01T09:00:00Z"},
		{ID: "2", Title: "buy milk", Category: category.Life, Time: "2025-03-02T09:00:00Z"},
		{ID: "3", Title: "read paper", Category: category.Study, Time: "2025-03-03T09:00:00Z"},
	}
}

func newModel(t *testing.T, tasks ...task.Task) (*Model, *store.Memory, *notify.Manager) {
	t.Helper()
	mem := store.NewMemory(tasks...)
	n := notify.New(notify.WithDefaultDuration(time.Hour))
	t.Cleanup(n.Close)
	svc := &app.Service{
		Persistence: mem,
		Notices:     n,
		Now:         func() time.Time { return time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC) },
	}
	m := New(svc)
	t.Cleanup(m.Close)
	m.Update(m.loadTasks()())
	return m, mem, n
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
}

func press(m *Model, keys ...string) {
	for _, k := range keys {
		m.Update(keyMsg(k))
	}
}

func stored(t *testing.T, mem *store.Memory) map[task.ID]task.Task {
	t.Helper()
	tasks, err := mem.Todos()
	if err != nil {
		t.Fatalf("todos: %v", err)
	}
	out := make(map[task.ID]task.Task, len(tasks))
	for _, tk := range tasks {
		out[tk.ID] = tk
	}
	return out
}

func ids(tasks []task.Task) []task.ID {
	out := make([]task.ID, len(tasks))
	for i, t := range tasks {
		out[i] = t.ID
	}
	return out
}

func TestInitialOrder(t *testing.T) {
	m, _, _ := newModel(t, seed()...)
	got := ids(m.visible())
	want := []task.ID{"3", "2", "1"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}

	press(m, "s")
	if m.order != tasklist.Asc {
		t.Fatalf("expected asc after toggle, got %q", m.order)
	}
	if got := ids(m.visible()); got[0] != "1" {
		t.Fatalf("expected oldest first, got %v", got)
	}
}

func TestCategoryTabs(t *testing.T) {
	m, _, _ := newModel(t, seed()...)

	press(m, "tab")
	if m.filter != category.Work {
		t.Fatalf("expected work tab, got %q", m.filter)
	}
	if got := ids(m.visible()); len(got) != 1 || got[0] != "1" {
		t.Fatalf("expected only the work task, got %v", got)
	}

	press(m, "h", "h")
	if m.filter != category.Other {
		t.Fatalf("expected wrap to other, got %q", m.filter)
	}
	if len(m.visible()) != 0 {
		t.Fatalf("expected no other tasks")
	}
	if !strings.Contains(m.View(), "nothing here") {
		t.Fatalf("expected empty list placeholder")
	}
}

func TestAddTask(t *testing.T) {
	m, mem, n := newModel(t, seed()...)

	press(m, "a")
	if m.mode != modeAdd {
		t.Fatalf("expected add mode")
	}
	press(m, "call mom", "tab", "enter")
	if m.mode != modeNormal {
		t.Fatalf("expected input closed after save")
	}

	var added *task.Task
	for _, tk := range stored(t, mem) {
		if tk.Title == "call mom" {
			tk := tk
			added = &tk
		}
	}
	if added == nil {
		t.Fatalf("task not saved")
	}
	if added.Category != category.Work {
		t.Fatalf("expected tab to move other to work, got %q", added.Category)
	}
	if len(m.tasks) != 4 {
		t.Fatalf("expected model to hold 4 tasks, got %d", len(m.tasks))
	}
	if ns := n.Notices(); len(ns) != 1 || ns[0].Type != notify.Success {
		t.Fatalf("expected success notice, got %+v", ns)
	}
}

func TestAddUsesCurrentTab(t *testing.T) {
	m, mem, _ := newModel(t)
	press(m, "tab", "tab", "a", "revise", "enter")
	for _, tk := range stored(t, mem) {
		if tk.Category != category.Study {
			t.Fatalf("expected study task, got %q", tk.Category)
		}
	}
}

func TestAddBlankKeepsInputOpen(t *testing.T) {
	m, mem, n := newModel(t)
	press(m, "a", "   ", "enter")
	if m.mode != modeAdd {
		t.Fatalf("expected add mode to stay open")
	}
	if len(stored(t, mem)) != 0 {
		t.Fatalf("blank task saved")
	}
	if ns := n.Notices(); len(ns) != 1 || ns[0].Type != notify.Warning {
		t.Fatalf("expected warning notice, got %+v", ns)
	}
	press(m, "esc")
	if m.mode != modeNormal {
		t.Fatalf("expected esc to cancel")
	}
}

func TestRename(t *testing.T) {
	m, mem, _ := newModel(t, seed()...)
	press(m, "r")
	if m.input.Value() != "read paper" {
		t.Fatalf("expected current title prefilled, got %q", m.input.Value())
	}
	m.input.SetValue("read two papers")
	press(m, "enter")
	if got := stored(t, mem)["3"].Title; got != "read two papers" {
		t.Fatalf("expected renamed task, got %q", got)
	}
}

func TestToggleComplete(t *testing.T) {
	m, mem, _ := newModel(t, seed()...)
	press(m, "x")
	if !stored(t, mem)["3"].Completed {
		t.Fatalf("expected task 3 completed")
	}
	// Completed tasks sink, so the cursor now sits on task 2.
	if cur, _ := m.current(); cur.ID != "2" {
		t.Fatalf("expected cursor on 2, got %q", cur.ID)
	}
}

func TestToggleAllOutsideEditMode(t *testing.T) {
	m, mem, _ := newModel(t, seed()...)
	press(m, "A")
	for id, tk := range stored(t, mem) {
		if !tk.Completed {
			t.Fatalf("expected %s completed", id)
		}
	}
	press(m, "A")
	for id, tk := range stored(t, mem) {
		if tk.Completed {
			t.Fatalf("expected %s reopened", id)
		}
	}
}

func TestEditModeBatch(t *testing.T) {
	m, mem, n := newModel(t, seed()...)

	press(m, "e", "x", "j", "x")
	if !m.editing {
		t.Fatalf("expected edit mode")
	}
	if s := stored(t, mem); s["3"].Completed || s["2"].Completed {
		t.Fatalf("selection must not complete tasks")
	}

	press(m, "c")
	s := stored(t, mem)
	if !s["3"].Completed || !s["2"].Completed || s["1"].Completed {
		t.Fatalf("unexpected completion state %+v", s)
	}
	for _, tk := range m.tasks {
		if tk.Selected {
			t.Fatalf("expected selection reset after batch")
		}
	}

	n.Clear()
	press(m, "d")
	if ns := n.Notices(); len(ns) != 1 || ns[0].Type != notify.Warning {
		t.Fatalf("expected warning for empty selection, got %+v", ns)
	}

	press(m, "A", "d")
	if len(stored(t, mem)) != 0 {
		t.Fatalf("expected every task deleted")
	}
}

func TestEditModeReopen(t *testing.T) {
	tasks := seed()
	tasks[0].Completed = true
	m, mem, _ := newModel(t, tasks...)
	press(m, "tab", "e", "x", "o")
	if stored(t, mem)["1"].Completed {
		t.Fatalf("expected task 1 reopened")
	}
}

func TestLeavingEditModeResetsSelection(t *testing.T) {
	m, _, _ := newModel(t, seed()...)
	press(m, "e", "A")
	for _, tk := range m.tasks {
		if !tk.Selected {
			t.Fatalf("expected all selected")
		}
	}
	press(m, "e")
	for _, tk := range m.tasks {
		if tk.Selected {
			t.Fatalf("expected selection reset")
		}
	}
}

func TestReloadKeepsSelection(t *testing.T) {
	m, mem, _ := newModel(t, seed()...)
	press(m, "e", "x")

	mem.SetRaw([]byte(`[
		{"id":"3","title":"read paper","category":"学习","completed":false,"time":"2025-03-03T09:00:00Z"},
		{"id":"4","title":"new","category":"生活","completed":false,"time":"2025-03-04T09:00:00Z"}
	]`))
	m.Update(m.loadTasks()())

	if len(m.tasks) != 2 {
		t.Fatalf("expected reloaded list, got %d", len(m.tasks))
	}
	for _, tk := range m.tasks {
		if tk.ID == "3" && !tk.Selected {
			t.Fatalf("expected selection kept across reload")
		}
		if tk.ID == "4" && tk.Selected {
			t.Fatalf("new task must not be selected")
		}
	}
}

func TestWatchReload(t *testing.T) {
	m, mem, _ := newModel(t, seed()...)
	m.Update(m.startWatch()())
	if m.watchCh == nil {
		t.Fatalf("expected watch started")
	}

	mem.SetRaw([]byte(`[]`))
	msg := m.waitForWatch()()
	if _, ok := msg.(watchEventMsg); !ok {
		t.Fatalf("expected watch event, got %T", msg)
	}
	m.Update(m.loadTasks()())
	if len(m.tasks) != 0 {
		t.Fatalf("expected empty list after external change")
	}
}

func TestClearAll(t *testing.T) {
	m, mem, _ := newModel(t, seed()...)
	press(m, "C", "n")
	if len(stored(t, mem)) != 3 {
		t.Fatalf("expected list kept when declined")
	}
	press(m, "C", "y")
	if len(stored(t, mem)) != 0 || len(m.tasks) != 0 {
		t.Fatalf("expected list cleared")
	}
}

func TestViewShowsToasts(t *testing.T) {
	m, _, n := newModel(t, seed()...)
	n.Success("saved", 0)
	n.Error("broke", 0)

	view := m.View()
	for _, want := range []string{"todo", "work", "read paper", "saved", "broke"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view:\n%s", want, view)
		}
	}
	if strings.Index(view, "saved") > strings.Index(view, "broke") {
		t.Fatalf("expected toasts stacked in order")
	}
}

func TestQuit(t *testing.T) {
	m, _, _ := newModel(t)
	cmd := m.handleKey(keyMsg("q"))
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected QuitMsg")
	}
}

func TestTasksWithoutIDsStayDistinct(t *testing.T) {
	m, mem, _ := newModel(t)
	mem.SetRaw([]byte(`[
		{"title":"alpha","category":"工作","completed":false,"time":"2025-03-01T09:00:00Z"},
		{"title":"beta","category":"工作","completed":false,"time":"2025-03-02T09:00:00Z"}
	]`))
	m.Update(m.loadTasks()())

	press(m, "x")
	s := stored(t, mem)
	if len(s) != 2 {
		t.Fatalf("expected two distinct tasks, got %+v", s)
	}
	done := 0
	for _, tk := range s {
		if tk.Completed {
			done++
		}
	}
	if done != 1 {
		t.Fatalf("expected one task completed, got %d", done)
	}

	press(m, "A")
	titles := map[string]bool{}
	for _, tk := range stored(t, mem) {
		titles[tk.Title] = true
	}
	if !titles["alpha"] || !titles["beta"] {
		t.Fatalf("expected both tasks kept, got %v", titles)
	}
}
