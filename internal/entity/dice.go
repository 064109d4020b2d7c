package entity

import (
	"fmt"
	"strconv"
	"strings"
)

// DieKind is one of the supported polyhedral dice.
type DieKind int

const (
	D4 DieKind = iota + 1
	D6
	D8
	D10
	D12
	D20
)

var dieSides = map[DieKind]int{
	D4:  4,
	D6:  6,
	D8:  8,
	D10: 10,
	D12: 12,
	D20: 20,
}

// DieKinds returns every supported die in ascending order of sides.
func DieKinds() []DieKind {
	return []DieKind{D4, D6, D8, D10, D12, D20}
}

// Sides returns the number of faces, or 0 for an unknown kind.
func (d DieKind) Sides() int { return dieSides[d] }

// Valid reports whether d is one of the supported kinds.
func (d DieKind) Valid() bool {
	_, ok := dieSides[d]
	return ok
}

// Label is the display name, e.g. "10-sided".
func (d DieKind) Label() string {
	if !d.Valid() {
		return "unknown"
	}
	return strconv.Itoa(d.Sides()) + "-sided"
}

func (d DieKind) String() string {
	if !d.Valid() {
		return fmt.Sprintf("DieKind(%d)", int(d))
	}
	return "D" + strconv.Itoa(d.Sides())
}

// ParseDieKind accepts "d6", "D6" or "6".
func ParseDieKind(s string) (DieKind, error) {
	v := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "d")
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("unknown die %q", s)
	}
	for _, d := range DieKinds() {
		if d.Sides() == n {
			return d, nil
		}
	}
	return 0, fmt.Errorf("unknown die %q", s)
}
