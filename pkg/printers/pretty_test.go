package printers

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/muesli/termenv"

	"tableflip.dev/todo/pkg/category"
	"tableflip.dev/todo/pkg/notify"
	"tableflip.dev/todo/pkg/task"
)

func plain(t *testing.T, showID bool) (*PrettyPrint, *bytes.Buffer) {
	t.Helper()
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })
	buf := &bytes.Buffer{}
	p := termenv.Ascii
	return &PrettyPrint{ShowID: showID, Out: buf, Profile: &p}, buf
}

func TestTasks(t *testing.T) {
	pp, buf := plain(t, true)
	pp.Tasks(
		task.Task{ID: "abc", Title: "Buy milk", Category: category.Life, Time: "2025-03-03T12:00:00Z"},
		task.Task{ID: "def", Title: "Read", Category: category.Study, Completed: true, Time: "whenever"},
	)
	out := buf.String()
	for _, want := range []string{"abc", "def", "○", "✔", "Buy milk", "Read", "● life", "● study", "whenever"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
	if strings.Index(out, "Buy milk") > strings.Index(out, "Read") {
		t.Fatalf("expected input order preserved:\n%s", out)
	}
}

func TestTasksHidesIDs(t *testing.T) {
	pp, buf := plain(t, false)
	pp.Tasks(task.Task{ID: "abc", Title: "Buy milk", Category: category.Life})
	if strings.Contains(buf.String(), "abc") {
		t.Fatalf("expected id hidden:\n%s", buf.String())
	}
}

func TestTasksEmpty(t *testing.T) {
	pp, buf := plain(t, false)
	pp.Tasks()
	if !strings.Contains(buf.String(), "none") {
		t.Fatalf("expected none marker, got %q", buf.String())
	}
}

func TestNotices(t *testing.T) {
	pp, buf := plain(t, false)
	pp.Notices(
		notify.Notice{Type: notify.Success, Message: "Saved"},
		notify.Notice{Type: notify.Error, Message: "Failed", Top: notify.RowHeight},
	)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 || lines[0] != "✔ Saved" || lines[1] != "✘ Failed" {
		t.Fatalf("unexpected notices output %q", lines)
	}
}

func TestCategories(t *testing.T) {
	pp, buf := plain(t, false)
	pp.Categories(category.List...)
	out := buf.String()
	for _, c := range category.List {
		if !strings.Contains(out, c.Color()) || !strings.Contains(out, c.String()) {
			t.Fatalf("expected %s in output:\n%s", c, out)
		}
	}
}

func TestTitleWithCount(t *testing.T) {
	pp, buf := plain(t, false)
	pp.TitleWithCount("work", 1)
	pp.TitleWithCount("all", 3)
	out := buf.String()
	if !strings.Contains(out, "work - 1 task\n") || !strings.Contains(out, "all - 3 tasks\n") {
		t.Fatalf("unexpected output %q", out)
	}
}
