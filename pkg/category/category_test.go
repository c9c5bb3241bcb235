package category

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestColor(t *testing.T) {
	tests := map[Category]string{
		Work:             "#2563eb",
		Study:            "#10b981",
		Life:             "#f59e0b",
		Other:            "#9333ea",
		All:              DefaultColor,
		Category("pets"): DefaultColor,
		Category("Work"): DefaultColor,
	}
	for c, want := range tests {
		if got := c.Color(); got != want {
			t.Errorf("Color(%q) = %q, want %q", c, got, want)
		}
	}
}

func TestListIsFixed(t *testing.T) {
	if len(List) != 4 {
		t.Fatalf("expected 4 categories, got %d", len(List))
	}
	if List[len(List)-1] != Other {
		t.Fatalf("expected catch-all last, got %q", List[len(List)-1])
	}
	f := Filters()
	if f[0] != All || len(f) != len(List)+1 {
		t.Fatalf("unexpected filters %v", f)
	}
}

func TestParse(t *testing.T) {
	c, err := Parse("  Study ")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if c != Study {
		t.Fatalf("expected study, got %q", c)
	}
	if c, err := Parse("生活"); err != nil || c != Life {
		t.Fatalf("Parse(生活) = %q, %v", c, err)
	}
	if _, err := Parse("all"); !errors.Is(err, ErrUnknown) {
		t.Fatalf("expected ErrUnknown for all, got %v", err)
	}
	if _, err := Parse("pets"); !errors.Is(err, ErrUnknown) {
		t.Fatalf("expected ErrUnknown, got %v", err)
	}
}

func TestParseFilter(t *testing.T) {
	for _, raw := range []string{"", "all", "ALL"} {
		c, err := ParseFilter(raw)
		if err != nil || c != All {
			t.Fatalf("ParseFilter(%q) = %q, %v", raw, c, err)
		}
	}
	if c, err := ParseFilter("life"); err != nil || c != Life {
		t.Fatalf("ParseFilter(life) = %q, %v", c, err)
	}
}

func TestRGB(t *testing.T) {
	for _, c := range append(List, All) {
		if got := c.RGB().Hex(); got != c.Color() {
			t.Errorf("RGB(%q).Hex() = %q, want %q", c, got, c.Color())
		}
	}
	if !Life.IsLight() {
		t.Errorf("expected amber to be light")
	}
	if Work.IsLight() {
		t.Errorf("expected blue to be dark")
	}
}

func TestNames(t *testing.T) {
	want := map[Category]string{Work: "work", Study: "study", Life: "life", Other: "other", All: "all"}
	for c, name := range want {
		if c.String() != name {
			t.Errorf("String(%s) = %q, want %q", string(c), c.String(), name)
		}
	}
	if got := Category("pets").String(); got != "pets" {
		t.Errorf("expected unknown category kept, got %q", got)
	}
}

func TestUnmarshalJSON(t *testing.T) {
	var got []Category
	if err := json.Unmarshal([]byte(`["工作","Life","pets"]`), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got[0] != Work || got[1] != Life || got[2] != Category("pets") {
		t.Fatalf("unexpected categories %q", []string{string(got[0]), string(got[1]), string(got[2])})
	}
	b, err := json.Marshal(Study)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `"学习"` {
		t.Fatalf("expected stored name, got %s", b)
	}
}
