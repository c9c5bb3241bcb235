package task

import "strings"

// IsTitleValid reports whether title has anything besides whitespace.
func IsTitleValid(title string) bool {
	return len(strings.TrimSpace(title)) > 0
}
