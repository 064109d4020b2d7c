package format

import (
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Formatter renders numbers with the grouping and decimal conventions of a locale.
type Formatter struct {
	tag language.Tag
	p   *message.Printer
}

func NewFormatter(tag language.Tag) *Formatter {
	return &Formatter{tag: tag, p: message.NewPrinter(tag)}
}

// Language returns the locale the formatter was built for.
func (f *Formatter) Language() language.Tag { return f.tag }

// Integer formats a single value, e.g. 1234567 -> "1,234,567" in English.
func (f *Formatter) Integer(n int) string {
	return f.p.Sprintf("%v", number.Decimal(n))
}

// Integers formats each value and joins them with sep.
func (f *Formatter) Integers(nums []int, sep string) string {
	parts := make([]string, len(nums))
	for i, n := range nums {
		parts[i] = f.Integer(n)
	}
	return JoinList(parts, sep)
}

// Sprintf formats with the formatter's locale.
func (f *Formatter) Sprintf(format string, args ...any) string {
	return f.p.Sprintf(format, args...)
}

// FormatPercentage concatenates the digits and appends "%". With
// doubleZeroIsHundred, "00" reads as "100%" per the percentile dice convention.
func FormatPercentage(digits []int, doubleZeroIsHundred bool) string {
	var b strings.Builder
	for _, d := range digits {
		b.WriteString(strconv.Itoa(d))
	}
	s := b.String()
	if doubleZeroIsHundred && s == "00" {
		return "100%"
	}
	return s + "%"
}
