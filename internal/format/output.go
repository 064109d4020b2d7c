package format

import "strings"

// Accumulate returns what an output area shows after next is produced.
// With keepPrevious the new block goes below the existing text, separated
// by a blank line; otherwise it replaces it.
func Accumulate(existing, next string, keepPrevious bool) string {
	if !keepPrevious || strings.TrimSpace(existing) == "" {
		return next
	}
	return strings.TrimRight(existing, "\r\n") + "\n\n" + next
}
