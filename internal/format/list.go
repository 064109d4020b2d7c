// Package format converts between user text and the values the randomiser
// works on: multi-line lists in, locale-formatted numbers and joined text out.
package format

import (
	"errors"
	"fmt"
	"strings"
)

// ErrTooManyItems is matched by every *TooManyItemsError.
var ErrTooManyItems = errors.New("too many items")

// TooManyItemsError reports list input longer than the configured maximum.
type TooManyItemsError struct {
	Limit int
	Lines int
}

func (e *TooManyItemsError) Error() string {
	return fmt.Sprintf("too many items: %d lines, limit %d", e.Lines, e.Limit)
}

func (e *TooManyItemsError) Unwrap() error { return ErrTooManyItems }

// LineCount is the number of lines the limit check sees: one more than the
// number of '\n' characters, so a trailing newline counts as a line.
func LineCount(raw string) int {
	return strings.Count(raw, "\n") + 1
}

// ParseList splits raw into one entry per line. Empty lines are kept and
// only the line terminator ("\n", "\r\n" or "\r") is removed. A final
// terminator does not produce a trailing empty entry and "" yields no entries.
// maxItems <= 0 disables the limit.
func ParseList(raw string, maxItems int) ([]string, error) {
	if n := LineCount(raw); maxItems > 0 && n > maxItems {
		return nil, &TooManyItemsError{Limit: maxItems, Lines: n}
	}

	items := make([]string, 0, LineCount(raw))
	start := 0
	for i := 0; i < len(raw); i++ {
		switch raw[i] {
		case '\n':
			items = append(items, raw[start:i])
			start = i + 1
		case '\r':
			items = append(items, raw[start:i])
			if i+1 < len(raw) && raw[i+1] == '\n' {
				i++
			}
			start = i + 1
		}
	}
	if start < len(raw) {
		items = append(items, raw[start:])
	}
	return items, nil
}

// JoinList puts sep strictly between items; there is no trailing separator.
func JoinList(items []string, sep string) string {
	return strings.Join(items, sep)
}
