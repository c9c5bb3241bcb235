// Package tui is the interactive terminal UI for the task list.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	log "github.com/sirupsen/logrus"

	"tableflip.dev/todo/pkg/app"
	"tableflip.dev/todo/pkg/category"
	"tableflip.dev/todo/pkg/notify"
	"tableflip.dev/todo/pkg/selection"
	"tableflip.dev/todo/pkg/store"
	"tableflip.dev/todo/pkg/task"
	"tableflip.dev/todo/pkg/tasklist"
	"tableflip.dev/todo/pkg/tui/theme"
)

type mode int

const (
	modeNormal mode = iota
	modeAdd
	modeRename
	modeConfirmClear
)

const timeLayout = "Jan 2 15:04"

// Model contains UI state. tasks is the whole stored list, selection flags
// included; what is shown is derived from it on every render.
type Model struct {
	svc     *app.Service
	ctx     context.Context
	notices *notify.Manager
	theme   theme.Theme
	keys    keyMap
	help    help.Model
	input   textinput.Model

	tasks   []task.Task
	filter  category.Category
	order   tasklist.SortOrder
	cursor  int
	editing bool
	mode    mode

	addCategory category.Category
	renameID    task.ID

	width  int
	height int

	watchCh     <-chan store.Event
	watchCancel context.CancelFunc
	noticeCh    <-chan struct{}
	unsubscribe func()
}

// Option configures a Model.
type Option func(*Model)

// WithSortOrder sets the initial sort order.
func WithSortOrder(o tasklist.SortOrder) Option {
	return func(m *Model) { m.order = o }
}

// WithContext scopes watches and service calls.
func WithContext(ctx context.Context) Option {
	return func(m *Model) { m.ctx = ctx }
}

// New creates a UI model backed by the Service. Notices are read from the
// service's manager when it has one.
func New(svc *app.Service, opts ...Option) *Model {
	ti := textinput.New()
	ti.Placeholder = "What needs doing?"
	ti.CharLimit = 256
	ti.Prompt = ""

	m := &Model{
		svc:         svc,
		ctx:         context.Background(),
		theme:       theme.Default(),
		keys:        defaultKeys(),
		help:        help.New(),
		input:       ti,
		filter:      category.All,
		order:       tasklist.Desc,
		addCategory: category.Other,
	}
	if svc != nil {
		m.notices = svc.Notices
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.notices != nil {
		m.noticeCh, m.unsubscribe = m.notices.Subscribe()
	}
	return m
}

// messages
type errMsg struct{ err error }
type tasksLoadedMsg struct{ tasks []task.Task }
type noticesChangedMsg struct{}
type noticesClosedMsg struct{}

type watchStartedMsg struct {
	ch     <-chan store.Event
	cancel context.CancelFunc
	err    error
}

type watchEventMsg struct {
	event store.Event
}

type watchStoppedMsg struct{}

// Init loads the list and starts listening for changes.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.loadTasks(), m.startWatch(), m.waitForNotice())
}

func (m *Model) loadTasks() tea.Cmd {
	svc, ctx := m.svc, m.ctx
	return func() tea.Msg {
		tasks, err := svc.Tasks(ctx)
		if err != nil {
			return errMsg{err}
		}
		return tasksLoadedMsg{tasks}
	}
}

func (m *Model) startWatch() tea.Cmd {
	if m.svc == nil {
		return nil
	}
	svc, parent := m.svc, m.ctx
	return func() tea.Msg {
		ctx, cancel := context.WithCancel(parent)
		ch, err := svc.Watch(ctx)
		if err != nil {
			cancel()
			return watchStartedMsg{err: err}
		}
		return watchStartedMsg{ch: ch, cancel: cancel}
	}
}

func (m *Model) waitForWatch() tea.Cmd {
	if m.watchCh == nil {
		return nil
	}
	ch := m.watchCh
	return func() tea.Msg {
		if ev, ok := <-ch; ok {
			return watchEventMsg{event: ev}
		}
		return watchStoppedMsg{}
	}
}

func (m *Model) stopWatch() {
	if m.watchCancel != nil {
		m.watchCancel()
		m.watchCancel = nil
	}
	m.watchCh = nil
}

func (m *Model) waitForNotice() tea.Cmd {
	if m.noticeCh == nil {
		return nil
	}
	ch := m.noticeCh
	return func() tea.Msg {
		if _, ok := <-ch; ok {
			return noticesChangedMsg{}
		}
		return noticesClosedMsg{}
	}
}

// Close releases the watch and notice subscriptions.
func (m *Model) Close() {
	m.stopWatch()
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
}

// Update handles messages and keybindings.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.input.Width = msg.Width - 20
	case errMsg:
		log.WithError(msg.err).Warn("tui: operation failed")
		m.notify(notify.Error, msg.err.Error())
	case tasksLoadedMsg:
		m.setTasks(msg.tasks)
	case watchStartedMsg:
		if msg.err != nil {
			log.WithError(msg.err).Warn("tui: watch unavailable")
			break
		}
		m.stopWatch()
		m.watchCh = msg.ch
		m.watchCancel = msg.cancel
		cmds = append(cmds, m.waitForWatch())
	case watchEventMsg:
		log.WithField("key", msg.event.Key).Debug("tui: store changed")
		cmds = append(cmds, m.loadTasks(), m.waitForWatch())
	case watchStoppedMsg:
		m.stopWatch()
	case noticesChangedMsg:
		cmds = append(cmds, m.waitForNotice())
	case noticesClosedMsg:
		m.noticeCh = nil
	case tea.KeyMsg:
		cmds = append(cmds, m.handleKey(msg))
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch m.mode {
	case modeAdd, modeRename:
		return m.handleInputKey(msg)
	case modeConfirmClear:
		m.mode = modeNormal
		if msg.String() == "y" || msg.String() == "Y" {
			if err := m.svc.Clear(m.ctx); err != nil {
				return nil
			}
			m.setTasks(nil)
			m.editing = false
		}
		return nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.Close()
		return tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.visible())-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.NextTab):
		m.cycleFilter(1)
	case key.Matches(msg, m.keys.PrevTab):
		m.cycleFilter(-1)
	case key.Matches(msg, m.keys.Sort):
		m.order = m.order.Toggle()
	case key.Matches(msg, m.keys.Add):
		m.mode = modeAdd
		if m.filter != category.All {
			m.addCategory = m.filter
		}
		m.input.Placeholder = "What needs doing?"
		m.input.SetValue("")
		return tea.Batch(m.input.Focus(), textinput.Blink)
	case key.Matches(msg, m.keys.Rename):
		if t, ok := m.current(); ok {
			m.mode = modeRename
			m.renameID = t.ID
			m.input.SetValue(t.Title)
			m.input.CursorEnd()
			return tea.Batch(m.input.Focus(), textinput.Blink)
		}
	case key.Matches(msg, m.keys.Toggle):
		m.toggleCurrent()
	case key.Matches(msg, m.keys.ToggleAll):
		m.toggleAll()
	case key.Matches(msg, m.keys.Edit):
		m.editing = !m.editing
		if !m.editing {
			m.tasks = tasklist.ResetSelection(m.tasks)
		}
	case key.Matches(msg, m.keys.Complete):
		m.batchStatus(true)
	case key.Matches(msg, m.keys.Reopen):
		m.batchStatus(false)
	case key.Matches(msg, m.keys.Delete):
		m.batchDelete()
	case key.Matches(msg, m.keys.ClearAll):
		m.mode = modeConfirmClear
	}
	return nil
}

func (m *Model) handleInputKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter":
		title := m.input.Value()
		switch m.mode {
		case modeAdd:
			if t, err := m.svc.Add(m.ctx, title, m.addCategory); err == nil {
				m.tasks = append(m.tasks, *t)
			} else if !task.IsTitleValid(title) {
				// Keep the input open so the title can be fixed.
				return nil
			}
		case modeRename:
			if t, err := m.svc.Edit(m.ctx, m.renameID, title, ""); err == nil {
				m.tasks = tasklist.Merge(m.tasks, []task.Task{*t})
			} else if !task.IsTitleValid(title) {
				return nil
			}
		}
		m.endInput()
	case "esc":
		m.endInput()
	case "tab":
		if m.mode == modeAdd {
			m.addCategory = nextCategory(category.List, m.addCategory, 1)
		}
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return cmd
	}
	return nil
}

func (m *Model) endInput() {
	m.mode = modeNormal
	m.renameID = ""
	m.input.Reset()
	m.input.Blur()
	m.clampCursor()
}

// setTasks replaces the list, keeping the selection of tasks that survived.
func (m *Model) setTasks(tasks []task.Task) {
	if tasks == nil {
		tasks = []task.Task{}
	}
	if m.editing {
		selected := make(map[task.ID]bool)
		for _, t := range m.tasks {
			if t.Selected {
				selected[t.ID] = true
			}
		}
		for i := range tasks {
			tasks[i].Selected = selected[tasks[i].ID]
		}
	}
	m.tasks = tasks
	m.clampCursor()
}

func (m *Model) visible() []task.Task {
	return tasklist.FilterAndSort(m.tasks, m.filter, m.order)
}

func (m *Model) current() (task.Task, bool) {
	v := m.visible()
	if m.cursor < 0 || m.cursor >= len(v) {
		return task.Task{}, false
	}
	return v[m.cursor], true
}

func (m *Model) clampCursor() {
	n := len(m.visible())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) cycleFilter(step int) {
	m.filter = nextCategory(category.Filters(), m.filter, step)
	m.tasks = tasklist.ResetSelection(m.tasks)
	m.cursor = 0
}

func nextCategory(list []category.Category, c category.Category, step int) category.Category {
	for i, candidate := range list {
		if candidate == c {
			return list[(i+step+len(list))%len(list)]
		}
	}
	return list[0]
}

// toggleCurrent flips the selection in edit mode, completion otherwise.
func (m *Model) toggleCurrent() {
	t, ok := m.current()
	if !ok {
		return
	}
	if m.editing {
		t.Selected = !t.Selected
		m.tasks = tasklist.Merge(m.tasks, []task.Task{t})
		return
	}
	if _, err := m.svc.SetCompleted(m.ctx, !t.Completed, t.ID); err != nil {
		return
	}
	t.Completed = !t.Completed
	m.tasks = tasklist.Merge(m.tasks, []task.Task{t})
}

// toggleAll selects every visible task in edit mode, or completes them
// otherwise. When all already are, it does the reverse.
func (m *Model) toggleAll() {
	v := m.visible()
	if len(v) == 0 {
		return
	}
	updated := selection.ToggleAll(v, !selection.AllSelected(v, m.editing), m.editing)
	merged := tasklist.Merge(m.tasks, updated)
	if !m.editing {
		if err := m.svc.Save(m.ctx, merged); err != nil {
			return
		}
		verb := "Completed"
		if !updated[0].Completed {
			verb = "Reopened"
		}
		m.notify(notify.Success, fmt.Sprintf("%s %d", verb, len(updated)))
	}
	m.tasks = merged
}

func (m *Model) batchStatus(completed bool) {
	if !m.editing {
		return
	}
	n := selection.Count(m.tasks, true)
	if n == 0 {
		m.notify(notify.Warning, "Select tasks first")
		return
	}
	updated := tasklist.ResetSelection(tasklist.BatchUpdateStatus(m.tasks, completed))
	if err := m.svc.Save(m.ctx, updated); err != nil {
		return
	}
	verb := "Completed"
	if !completed {
		verb = "Reopened"
	}
	m.notify(notify.Success, fmt.Sprintf("%s %d", verb, n))
	m.tasks = updated
}

func (m *Model) batchDelete() {
	if !m.editing {
		return
	}
	n := selection.Count(m.tasks, true)
	if n == 0 {
		m.notify(notify.Warning, "Select tasks first")
		return
	}
	remaining := tasklist.BatchDeleteSelected(m.tasks)
	if err := m.svc.Save(m.ctx, remaining); err != nil {
		return
	}
	m.notify(notify.Success, fmt.Sprintf("Deleted %d", n))
	m.tasks = remaining
	m.clampCursor()
}

func (m *Model) notify(typ notify.Type, message string) {
	if m.svc != nil {
		m.svc.Notify(typ, message)
	}
}

// View renders the tabs, the list, the input line, toasts and help.
func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(m.headerView())
	b.WriteString("\n\n")
	b.WriteString(m.listView())
	b.WriteString("\n")

	switch m.mode {
	case modeAdd:
		prompt := fmt.Sprintf("Add to %s: ", m.addCategory)
		b.WriteString(m.theme.Footer.Prompt.Render(prompt) + m.input.View())
		b.WriteString("\n" + m.theme.Footer.Help.Render("enter save · tab category · esc cancel"))
	case modeRename:
		b.WriteString(m.theme.Footer.Prompt.Render("Rename: ") + m.input.View())
	case modeConfirmClear:
		b.WriteString(m.theme.Footer.Prompt.Render("Delete every task? y/N"))
	}
	b.WriteString("\n")

	if toasts := m.toastView(); toasts != "" {
		b.WriteString("\n" + toasts + "\n")
	}
	b.WriteString("\n" + m.help.View(m.keys))
	return b.String()
}

func (m *Model) headerView() string {
	tabs := make([]string, 0, len(category.Filters()))
	for _, c := range category.Filters() {
		label := c.String()
		if c == m.filter {
			tabs = append(tabs, m.theme.Header.ActiveTab.Render(m.theme.Category(c, label)))
		} else {
			tabs = append(tabs, m.theme.Header.Tab.Render(label))
		}
	}
	sort := "newest first"
	if m.order == tasklist.Asc {
		sort = "oldest first"
	}
	parts := []string{
		m.theme.Header.Title.Render("todo"),
		lipgloss.JoinHorizontal(lipgloss.Top, tabs...),
		m.theme.Header.Sort.Render("sort: " + sort),
	}
	if m.editing {
		n := selection.Count(m.visible(), true)
		parts = append(parts, m.theme.Header.Editing.Render(fmt.Sprintf("editing, %d selected", n)))
	}
	return strings.Join(parts, "  ")
}

func (m *Model) listView() string {
	v := m.visible()
	if len(v) == 0 {
		return m.theme.List.Empty.Render("  nothing here") + "\n"
	}
	width := m.width - 30
	if width < 20 {
		width = 60
	}
	var b strings.Builder
	for i, t := range v {
		pointer := "  "
		if i == m.cursor {
			pointer = m.theme.List.Cursor.Render("> ")
		}
		mark := "○"
		if m.editing {
			mark = "[ ]"
			if t.Selected {
				mark = m.theme.List.Selected.Render("[x]")
			}
		} else if t.Completed {
			mark = "✔"
		}
		title := truncate.StringWithTail(t.Title, uint(width), "…")
		if t.Completed {
			title = m.theme.List.Done.Render(title)
		}
		when := t.When()
		stamp := t.Time
		if !when.IsZero() {
			stamp = when.Local().Format(timeLayout)
		}
		fmt.Fprintf(&b, "%s%s %s  %s  %s\n", pointer, mark, title,
			m.theme.List.Time.Render(stamp),
			m.theme.Category(t.Category, "● "+t.Category.String()))
	}
	return b.String()
}

// toastView stacks notices by their row, one line each.
func (m *Model) toastView() string {
	if m.notices == nil {
		return ""
	}
	ns := m.notices.Notices()
	if len(ns) == 0 {
		return ""
	}
	lines := make([]string, len(ns))
	for _, n := range ns {
		row := n.Row()
		if row < 0 || row >= len(lines) {
			continue
		}
		lines[row] = m.theme.Toast.Notice(n.Type).Render(n.Message)
	}
	return strings.Join(lines, "\n")
}

// Run launches the Bubble Tea UI.
func Run(ctx context.Context, svc *app.Service, opts ...Option) error {
	m := New(svc, append([]Option{WithContext(ctx)}, opts...)...)
	defer m.Close()
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
