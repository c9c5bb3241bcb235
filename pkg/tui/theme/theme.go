package theme

import (
	"github.com/charmbracelet/lipgloss"

	"tableflip.dev/todo/pkg/category"
	"tableflip.dev/todo/pkg/notify"
)

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Header HeaderTheme
	List   ListTheme
	Footer FooterTheme
	Toast  ToastTheme
}

// HeaderTheme styles the title row and category tabs.
type HeaderTheme struct {
	Title     lipgloss.Style
	Tab       lipgloss.Style
	ActiveTab lipgloss.Style
	Sort      lipgloss.Style
	Editing   lipgloss.Style
}

// ListTheme styles task rows.
type ListTheme struct {
	Row      lipgloss.Style
	Cursor   lipgloss.Style
	Done     lipgloss.Style
	Time     lipgloss.Style
	Selected lipgloss.Style
	Empty    lipgloss.Style
}

// FooterTheme groups styles used by the input and help lines.
type FooterTheme struct {
	Prompt lipgloss.Style
	Help   lipgloss.Style
}

// ToastTheme styles notices by type.
type ToastTheme struct {
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	toast := lipgloss.NewStyle().
		Padding(0, 1).
		Bold(true).
		Foreground(lipgloss.Color("#ffffff"))

	return Theme{
		Header: HeaderTheme{
			Title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
			Tab:       lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("245")),
			ActiveTab: lipgloss.NewStyle().Padding(0, 1).Bold(true).Underline(true),
			Sort:      lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Editing:   lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Italic(true),
		},
		List: ListTheme{
			Row:      lipgloss.NewStyle(),
			Cursor:   lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
			Done:     lipgloss.NewStyle().Faint(true).Strikethrough(true),
			Time:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
			Selected: lipgloss.NewStyle().Foreground(lipgloss.Color("212")),
			Empty:    lipgloss.NewStyle().Faint(true).Italic(true),
		},
		Footer: FooterTheme{
			Prompt: lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		},
		Toast: ToastTheme{
			Success: toast.Background(lipgloss.Color("#10b981")),
			Error:   toast.Background(lipgloss.Color("#ef4444")),
			Warning: toast.Background(lipgloss.Color("#f59e0b")),
		},
	}
}

// Category renders text in the category's color.
func (t Theme) Category(c category.Category, text string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c.Color())).Render(text)
}

// Notice picks the toast style for a notice type.
func (t ToastTheme) Notice(typ notify.Type) lipgloss.Style {
	switch typ {
	case notify.Error:
		return t.Error
	case notify.Warning:
		return t.Warning
	default:
		return t.Success
	}
}
