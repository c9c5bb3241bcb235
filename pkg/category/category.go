// Package category defines the fixed set of task categories and their colors.
package category

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Category names a bucket a task belongs to. The value is the name stored
// with the task; String returns the English name shown and typed on the
// command line.
type Category string

const (
	// Work is for job related tasks.
	Work Category = "工作"
	// Study is for learning and reading.
	Study Category = "学习"
	// Life is for errands and everything personal.
	Life Category = "生活"
	// Other is the catch-all.
	Other Category = "其他"

	// All is the filter sentinel matching every category. It is not a
	// category a task can carry.
	All Category = "all"
)

// DefaultColor is used for anything that is not a configured category.
const DefaultColor = "#6b7280"

// ErrUnknown is returned by Parse for names outside List.
var ErrUnknown = errors.New("category: unknown category")

// List is the ordered set of categories a task can carry.
var List = []Category{Work, Study, Life, Other}

var names = map[Category]string{
	Work:  "work",
	Study: "study",
	Life:  "life",
	Other: "other",
}

// Filters returns All followed by List, the order tabs are shown in.
func Filters() []Category {
	f := make([]Category, 0, len(List)+1)
	f = append(f, All)
	return append(f, List...)
}

// Color returns the hex color code for c, or DefaultColor.
func Color(c Category) string {
	switch c {
	case Work:
		return "#2563eb"
	case Study:
		return "#10b981"
	case Life:
		return "#f59e0b"
	case Other:
		return "#9333ea"
	default:
		return DefaultColor
	}
}

// Color returns the hex color code for c.
func (c Category) Color() string {
	return Color(c)
}

// RGB returns the parsed color of c.
func (c Category) RGB() colorful.Color {
	col, err := colorful.Hex(c.Color())
	if err != nil {
		// Every code above is a valid #rrggbb literal.
		panic(fmt.Sprintf("category: bad color %q: %v", c.Color(), err))
	}
	return col
}

// IsLight reports whether c's color is light enough to need dark text on top.
func (c Category) IsLight() bool {
	_, _, l := c.RGB().Hcl()
	return l > 0.6
}

// Valid reports whether c is one of List.
func (c Category) Valid() bool {
	for _, candidate := range List {
		if candidate == c {
			return true
		}
	}
	return false
}

// String returns the English name of c, or the raw value for anything
// outside List.
func (c Category) String() string {
	if n, ok := names[c]; ok {
		return n
	}
	return string(c)
}

// lookup maps an English name (any case) or a stored name onto List.
func lookup(raw string) (Category, bool) {
	raw = strings.TrimSpace(raw)
	if c := Category(raw); c.Valid() {
		return c, true
	}
	lower := strings.ToLower(raw)
	for c, n := range names {
		if n == lower {
			return c, true
		}
	}
	return "", false
}

// Parse looks raw up in List by English or stored name.
func Parse(raw string) (Category, error) {
	if c, ok := lookup(raw); ok {
		return c, nil
	}
	return "", fmt.Errorf("%w %q", ErrUnknown, raw)
}

// UnmarshalJSON reads a stored category. English names are folded onto the
// stored ones; anything else is kept as is.
func (c *Category) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if known, ok := lookup(raw); ok {
		*c = known
		return nil
	}
	*c = Category(raw)
	return nil
}

// ParseFilter is Parse that also accepts All. Empty input means All.
func ParseFilter(raw string) (Category, error) {
	if c := Category(strings.ToLower(strings.TrimSpace(raw))); c == "" || c == All {
		return All, nil
	}
	return Parse(raw)
}
