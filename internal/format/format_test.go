package format

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestParseList_Table(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", []string{}},
		{"single", "alpha", []string{"alpha"}},
		{"keeps_empty_lines", "a\n\nb", []string{"a", "", "b"}},
		{"keeps_inner_whitespace", "  a \n\tb", []string{"  a ", "\tb"}},
		{"trailing_newline_dropped", "a\nb\n", []string{"a", "b"}},
		{"only_newline", "\n", []string{""}},
		{"crlf", "a\r\nb", []string{"a", "b"}},
		{"lone_cr", "a\rb", []string{"a", "b"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseList(tc.in, 0)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseList_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, text := range []string{"", "x", "a\nb\nc", "\n\nmiddle\n\nend", " spaced \n out "} {
		items, err := ParseList(text, 0)
		require.NoError(t, err)
		assert.Equal(t, text, JoinList(items, "\n"))
	}
}

func TestParseList_MaxItemsBoundary(t *testing.T) {
	t.Parallel()

	_, err := ParseList("a\nb\nc", 2)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTooManyItems))

	var tm *TooManyItemsError
	require.True(t, errors.As(err, &tm))
	assert.Equal(t, 2, tm.Limit)
	assert.Equal(t, 3, tm.Lines)

	got, err := ParseList("a\nb", 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, got)

	// The trailing newline counts towards the limit.
	_, err = ParseList("a\nb\n", 2)
	assert.ErrorIs(t, err, ErrTooManyItems)

	// Non-positive limits are disabled.
	big := strings.Repeat("x\n", 50) + "x"
	for _, limit := range []int{0, -1} {
		got, err := ParseList(big, limit)
		require.NoError(t, err)
		assert.Len(t, got, 51)
	}
}

func TestJoinList(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", JoinList(nil, ", "))
	assert.Equal(t, "a", JoinList([]string{"a"}, ", "))
	assert.Equal(t, "a, b, c", JoinList([]string{"a", "b", "c"}, ", "))
	assert.Equal(t, "ab", JoinList([]string{"a", "b"}, ""))
}

func TestFormatter_Integers(t *testing.T) {
	t.Parallel()

	en := NewFormatter(language.English)
	assert.Equal(t, "1,234,567", en.Integer(1234567))
	assert.Equal(t, "-10,000,000", en.Integer(-10_000_000))
	assert.Equal(t, "7", en.Integer(7))
	assert.Equal(t, "1,000\n-5\n0", en.Integers([]int{1000, -5, 0}, "\n"))
	assert.Equal(t, "", en.Integers(nil, "\n"))
	assert.Equal(t, language.English, en.Language())

	de := NewFormatter(language.German)
	assert.Equal(t, "1.234.567", de.Integer(1234567))
}

func TestFormatPercentage(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "100%", FormatPercentage([]int{0, 0}, true))
	assert.Equal(t, "00%", FormatPercentage([]int{0, 0}, false))
	assert.Equal(t, "56%", FormatPercentage([]int{5, 6}, true))
	assert.Equal(t, "07%", FormatPercentage([]int{0, 7}, true))
	assert.Equal(t, "%", FormatPercentage(nil, true))
}

func TestAccumulate(t *testing.T) {
	t.Parallel()

	kept := Accumulate("1\n", "2\n", true)
	assert.Equal(t, "1\n\n2\n", kept)
	assert.Less(t, strings.Index(kept, "1"), strings.Index(kept, "2"))

	assert.Equal(t, "2\n", Accumulate("1\n", "2\n", false))
	assert.Equal(t, "2", Accumulate("", "2", true))
	assert.Equal(t, "2", Accumulate("\n\n", "2", true))
	assert.Equal(t, "1\n\n2\n\n3", Accumulate(Accumulate("1", "2", true), "3", true))
}
