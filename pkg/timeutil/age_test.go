package timeutil

import (
	"testing"
	"time"
)

func TestParseAge(t *testing.T) {
	tests := map[string]time.Duration{
		"3d":       3 * day,
		"1w2d":     week + 2*day,
		"2 hours":  2 * time.Hour,
		"1W 30min": week + 30*time.Minute,
		"90m":      90 * time.Minute,
	}
	for in, want := range tests {
		got, err := ParseAge(in)
		if err != nil {
			t.Fatalf("%q: %v", in, err)
		}
		if got != want {
			t.Fatalf("%q: got %v, want %v", in, got, want)
		}
	}
}

func TestParseAgeInvalid(t *testing.T) {
	for _, in := range []string{"", "soon", "3", "3y", "0d"} {
		if _, err := ParseAge(in); err == nil {
			t.Fatalf("%q: expected error", in)
		}
	}
}

func TestParseAgeTooLarge(t *testing.T) {
	if _, err := ParseAge("15250w"); err != nil {
		t.Fatalf("expected the largest whole week count to parse: %v", err)
	}
	for _, in := range []string{"9999999999999w", "15250w15250w", "9223372036854775807m"} {
		if _, err := ParseAge(in); err == nil {
			t.Fatalf("%q: expected overflow error", in)
		}
	}
}

func TestFormatAge(t *testing.T) {
	if got := FormatAge(week + 2*day + 90*time.Minute); got != "1w2d1h30m" {
		t.Fatalf("unexpected %q", got)
	}
	if got := FormatAge(time.Second); got != "0m" {
		t.Fatalf("unexpected %q", got)
	}
}
