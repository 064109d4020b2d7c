package service

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/dayanaadylkhanova/randomiser/internal/entity"
	"github.com/dayanaadylkhanova/randomiser/internal/format"
)

const (
	notEnoughNumbersWarning = "There are not enough unique numbers in this range.\n" +
		"All possible numbers will be generated."
	notEnoughItemsWarning = "There are not enough items in the list.\n" +
		"All items will be chosen."
)

var (
	// ErrNoItems is returned when items are picked with repeats from an empty list.
	ErrNoItems = errors.New("no items in list")
	// ErrInvalidQuantity is returned for negative quantities.
	ErrInvalidQuantity = errors.New("invalid quantity")
	// ErrUnknownDie is returned for a DieKind outside the supported set.
	ErrUnknownDie = errors.New("unknown die")
)

var percentileDie = entity.IntRange{Lower: 0, Upper: 9}

// Randomiser implements the four user-facing operations. Every method
// builds its whole result before returning, so a failed call leaves the
// caller's output untouched.
type Randomiser struct {
	log     *slog.Logger
	sampler *Sampler
	nf      *format.Formatter
	limits  entity.Limits
}

func NewRandomiser(log *slog.Logger, src Source, f *format.Formatter, limits entity.Limits) *Randomiser {
	return &Randomiser{
		log:     log,
		sampler: NewSampler(src),
		nf:      f,
		limits:  limits,
	}
}

// IsPercentageEligible reports whether a percentile roll is offered:
// exactly two ten-sided dice.
func IsPercentageEligible(die entity.DieKind, quantity int) bool {
	return die == entity.D10 && quantity == 2
}

// IsPercentageEligible is the method form used by the shell.
func (r *Randomiser) IsPercentageEligible(die entity.DieKind, quantity int) bool {
	return IsPercentageEligible(die, quantity)
}

// GenerateNumbers draws quantity integers between the two bounds, given in
// either order. Without duplicates a quantity larger than the range is
// reduced to the range size and a warning is set.
func (r *Randomiser) GenerateNumbers(a, b, quantity int, allowDuplicates bool) (entity.Output, error) {
	if quantity < 0 {
		return entity.Output{}, fmt.Errorf("generate numbers: %w: %d", ErrInvalidQuantity, quantity)
	}
	rng := entity.NewIntRange(a, b)

	var (
		nums    []int
		out     entity.Output
		clamped bool
	)
	if allowDuplicates {
		nums = SampleWithReplacement[int](r.sampler, rng, quantity)
	} else {
		var q int
		q, clamped = ResolveQuantity(quantity, rng.Len())
		if clamped {
			out.Warning = notEnoughNumbersWarning
		}
		nums = SampleWithoutReplacement[int](r.sampler, rng, q)
	}
	out.Text = r.nf.Integers(nums, "\n")

	r.log.Debug("numbers generated",
		"lower", rng.Lower,
		"upper", rng.Upper,
		"requested", quantity,
		"produced", len(nums),
		"duplicates", allowDuplicates,
		"clamped", clamped,
	)
	return out, nil
}

// RollDice rolls quantity dice of one kind. forPercentage only takes effect
// when IsPercentageEligible holds: the two dice then read 0-9 and are also
// shown as a percentage, with "00" meaning 100.
func (r *Randomiser) RollDice(die entity.DieKind, quantity int, forPercentage bool) (entity.DiceRoll, error) {
	if !die.Valid() {
		return entity.DiceRoll{}, fmt.Errorf("roll dice: %w: %v", ErrUnknownDie, die)
	}
	if quantity < 0 {
		return entity.DiceRoll{}, fmt.Errorf("roll dice: %w: %d", ErrInvalidQuantity, quantity)
	}

	percentile := forPercentage && IsPercentageEligible(die, quantity)

	var roll entity.DiceRoll
	if percentile {
		roll.Results = SampleWithReplacement[int](r.sampler, percentileDie, 2)
		roll.Percentage = format.FormatPercentage(roll.Results, true)
	} else {
		roll.Results = SampleWithReplacement[int](r.sampler, entity.IntRange{Lower: 1, Upper: die.Sides()}, quantity)
	}
	roll.Sum = sum(roll.Results)

	var b strings.Builder
	b.WriteString(r.nf.Integers(roll.Results, ", "))
	b.WriteString("\nTotal: ")
	b.WriteString(strconv.Itoa(roll.Sum))
	if percentile {
		b.WriteString("\nPercentage: ")
		b.WriteString(roll.Percentage)
	}
	roll.Text = b.String()

	r.log.Debug("dice rolled",
		"die", die.String(),
		"quantity", len(roll.Results),
		"sum", roll.Sum,
		"percentile", percentile,
	)
	return roll, nil
}

// ShuffleList returns every line of raw exactly once, in random order.
func (r *Randomiser) ShuffleList(raw string) (entity.Output, error) {
	items, err := format.ParseList(raw, r.limits.MaxListItems)
	if err != nil {
		return entity.Output{}, fmt.Errorf("shuffle list: %w", err)
	}
	shuffled := Shuffle(r.sampler, items)

	r.log.Debug("list shuffled", "items", len(shuffled))
	return entity.Output{Text: format.JoinList(shuffled, "\n")}, nil
}

// PickItems chooses quantity lines of raw. Without repeats a quantity larger
// than the list is reduced to the list size and a warning is set.
func (r *Randomiser) PickItems(raw string, quantity int, allowRepeats bool) (entity.Output, error) {
	if quantity < 0 {
		return entity.Output{}, fmt.Errorf("pick items: %w: %d", ErrInvalidQuantity, quantity)
	}
	list, err := format.ParseList(raw, r.limits.MaxListItems)
	if err != nil {
		return entity.Output{}, fmt.Errorf("pick items: %w", err)
	}
	items := entity.Items(list)

	var (
		picked  []string
		out     entity.Output
		clamped bool
	)
	if allowRepeats {
		if items.Len() == 0 && quantity > 0 {
			return entity.Output{}, fmt.Errorf("pick items: %w", ErrNoItems)
		}
		picked = SampleWithReplacement[string](r.sampler, items, quantity)
	} else {
		var q int
		q, clamped = ResolveQuantity(quantity, items.Len())
		if clamped {
			out.Warning = notEnoughItemsWarning
		}
		picked = SampleWithoutReplacement[string](r.sampler, items, q)
	}
	out.Text = format.JoinList(picked, "\n")

	r.log.Debug("items picked",
		"items", items.Len(),
		"requested", quantity,
		"produced", len(picked),
		"repeats", allowRepeats,
		"clamped", clamped,
	)
	return out, nil
}

// ListInstruction is the prompt shown above list input.
func (r *Randomiser) ListInstruction() string {
	return r.nf.Sprintf("Enter up to %s items. Put each item on a new line:", r.nf.Integer(r.limits.MaxListItems))
}

// Explain turns an error from one of the operations into text for the user.
func (r *Randomiser) Explain(err error) string {
	var tm *format.TooManyItemsError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &tm):
		return r.nf.Sprintf("Number of items may not exceed %s.", r.nf.Integer(tm.Limit))
	case errors.Is(err, ErrNoItems):
		return "There are no items in the list."
	case errors.Is(err, ErrInvalidQuantity):
		return "Quantity may not be negative."
	case errors.Is(err, ErrUnknownDie):
		return "Unknown die."
	default:
		return err.Error()
	}
}
