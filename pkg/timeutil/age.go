// Package timeutil reads the compact ages used by --since, such as "3d" or
// "1w2d".
package timeutil

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	day  = 24 * time.Hour
	week = 7 * day
)

var (
	agePattern = regexp.MustCompile(`^(\d+)([a-z]+)`)
	units      = map[string]time.Duration{
		"m":     time.Minute,
		"min":   time.Minute,
		"mins":  time.Minute,
		"h":     time.Hour,
		"hour":  time.Hour,
		"hours": time.Hour,
		"d":     day,
		"day":   day,
		"days":  day,
		"w":     week,
		"week":  week,
		"weeks": week,
	}
)

// ParseAge reads a sum of number+unit segments. Units go from minutes up to
// weeks.
func ParseAge(input string) (time.Duration, error) {
	rest := strings.ToLower(strings.Join(strings.Fields(input), ""))
	if rest == "" {
		return 0, fmt.Errorf("timeutil: empty age")
	}
	total := time.Duration(0)
	for rest != "" {
		m := agePattern.FindStringSubmatch(rest)
		if m == nil {
			return 0, fmt.Errorf("timeutil: invalid age segment %q", rest)
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return 0, fmt.Errorf("timeutil: invalid age value %q: %w", m[1], err)
		}
		unit, ok := units[m[2]]
		if !ok {
			return 0, fmt.Errorf("timeutil: unsupported age unit %q", m[2])
		}
		if int64(n) > (math.MaxInt64-int64(total))/int64(unit) {
			return 0, fmt.Errorf("timeutil: age %q is too large", input)
		}
		total += time.Duration(n) * unit
		rest = rest[len(m[0]):]
	}
	if total <= 0 {
		return 0, fmt.Errorf("timeutil: age must be greater than zero")
	}
	return total, nil
}

// FormatAge is the inverse of ParseAge, largest unit first.
func FormatAge(d time.Duration) string {
	if d < time.Minute {
		return "0m"
	}
	var b strings.Builder
	for _, u := range []struct {
		label string
		size  time.Duration
	}{{"w", week}, {"d", day}, {"h", time.Hour}, {"m", time.Minute}} {
		if n := d / u.size; n > 0 {
			fmt.Fprintf(&b, "%d%s", n, u.label)
			d -= n * u.size
		}
	}
	return b.String()
}
