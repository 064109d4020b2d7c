package entity

// Population is an immutable, indexable set of outcomes a sample is drawn from.
type Population[T any] interface {
	Len() int
	At(i int) T
}

// IntRange is an inclusive integer range with Lower <= Upper.
type IntRange struct {
	Lower int
	Upper int
}

// NewIntRange builds a range from bounds given in either order.
func NewIntRange(a, b int) IntRange {
	return IntRange{Lower: LowerBound(a, b), Upper: UpperBound(a, b)}
}

// LowerBound returns the smaller of two user-entered bounds.
func LowerBound(a, b int) int { return min(a, b) }

// UpperBound returns the larger of two user-entered bounds.
func UpperBound(a, b int) int { return max(a, b) }

func (r IntRange) Len() int     { return r.Upper - r.Lower + 1 }
func (r IntRange) At(i int) int { return r.Lower + i }

// Contains reports whether n lies within the range.
func (r IntRange) Contains(n int) bool { return n >= r.Lower && n <= r.Upper }

// Items is an ordered list of user-supplied entries.
type Items []string

func (it Items) Len() int        { return len(it) }
func (it Items) At(i int) string { return it[i] }

// Output is the rendered result of one operation.
type Output struct {
	Text string
	// Warning is set when the request could not be honoured in full
	// but the operation still completed.
	Warning string
}

// DiceRoll is the rendered result of one roll.
type DiceRoll struct {
	Text    string
	Results []int
	Sum     int
	// Percentage is empty unless the roll was a percentile roll.
	Percentage string
}

// Limits are the input bounds enforced by the shell and the list codec.
type Limits struct {
	MaxListItems int
	MinQuantity  int
	MaxQuantity  int
	MinBound     int
	MaxBound     int
}

func DefaultLimits() Limits {
	return Limits{
		MaxListItems: 10_000,
		MinQuantity:  1,
		MaxQuantity:  100,
		MinBound:     -10_000_000,
		MaxBound:     10_000_000,
	}
}
