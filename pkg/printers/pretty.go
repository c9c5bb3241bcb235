package printers

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"tableflip.dev/todo/pkg/category"
	"tableflip.dev/todo/pkg/notify"
	"tableflip.dev/todo/pkg/task"
	"tableflip.dev/todo/pkg/tasklist"
)

type PrettyPrint struct {
	ShowID bool
	// Out defaults to color.Output.
	Out io.Writer
	// Profile decides how category colors are rendered. Defaults to the
	// terminal's profile, or plain text when stdout is not a terminal.
	Profile *termenv.Profile
}

const timeLayout = "Jan 2 15:04"

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out != nil {
		return pp.Out
	}
	return color.Output
}

func (pp *PrettyPrint) profile() termenv.Profile {
	if pp.Profile != nil {
		return *pp.Profile
	}
	if isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return termenv.EnvColorProfile()
	}
	return termenv.Ascii
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.out(), " task")
	default:
		_, _ = c.Fprintln(pp.out(), " tasks")
	}
}

// Swatch renders the category name in its color.
func (pp *PrettyPrint) Swatch(c category.Category) string {
	p := pp.profile()
	return termenv.String("● " + c.String()).Foreground(p.Color(c.Color())).String()
}

// Tasks prints tasks as a table in the order given.
func (pp *PrettyPrint) Tasks(tasks ...task.Task) {
	if len(tasks) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(pp.out(), " none\n\n")
		return
	}

	done := color.New(color.Faint, color.CrossedOut)
	id := color.New(color.FgHiYellow, color.Italic, color.Faint)

	table := uitable.New()
	table.MaxColWidth = 60
	table.Wrap = true
	for _, t := range tasks {
		mark := "○"
		title := t.Title
		if t.Completed {
			mark = "✔"
			title = done.Sprint(t.Title)
		}
		// The colored category goes last so escape codes do not skew widths.
		row := []interface{}{mark, title, when(t), pp.Swatch(t.Category)}
		if pp.ShowID {
			row = append([]interface{}{id.Sprint(t.ID)}, row...)
		}
		table.AddRow(row...)
	}
	_, _ = fmt.Fprintln(pp.out(), table)
	_, _ = fmt.Fprintln(pp.out(), "")
}

// Categories prints every category with its color code.
func (pp *PrettyPrint) Categories(cats ...category.Category) {
	table := uitable.New()
	for _, c := range cats {
		table.AddRow(c.Color(), pp.Swatch(c))
	}
	_, _ = fmt.Fprintln(pp.out(), table)
}

// Summary prints completed/total per category.
func (pp *PrettyPrint) Summary(sums ...tasklist.Summary) {
	table := uitable.New()
	for _, s := range sums {
		table.AddRow(fmt.Sprintf("%d/%d", s.Completed, s.Total), pp.Swatch(s.Category))
	}
	_, _ = fmt.Fprintln(pp.out(), table)
}

// Notices prints toasts, one per line, in stack order.
func (pp *PrettyPrint) Notices(notices ...notify.Notice) {
	for _, n := range notices {
		c, icon := noticeStyle(n.Type)
		_, _ = c.Fprintf(pp.out(), "%s %s\n", icon, n.Message)
	}
}

func noticeStyle(t notify.Type) (*color.Color, string) {
	switch t {
	case notify.Success:
		return color.New(color.FgGreen), "✔"
	case notify.Error:
		return color.New(color.FgRed, color.Bold), "✘"
	case notify.Warning:
		return color.New(color.FgYellow), "!"
	default:
		return color.New(), "·"
	}
}

func when(t task.Task) string {
	w := t.When()
	if w.IsZero() {
		return strings.TrimSpace(t.Time)
	}
	return w.Local().Format(timeLayout)
}
