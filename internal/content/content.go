// Package content measures draft text against the composer limits.
package content

import (
	"fmt"
	"unicode/utf8"
)

const (
	// MaxLength is the composer's character limit.
	MaxLength = 2000
	// WarnLength is where the counter switches to the warning colour.
	WarnLength = 1800
)

// Length counts characters, not bytes.
func Length(s string) int {
	return utf8.RuneCountInString(s)
}

// NearLimit reports whether the counter should warn.
func NearLimit(s string) bool {
	return Length(s) > WarnLength
}

// Counter renders the composer counter, e.g. "12/2000".
func Counter(s string) string {
	return fmt.Sprintf("%d/%d", Length(s), MaxLength)
}
