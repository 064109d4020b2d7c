package service

import (
	"github.com/dayanaadylkhanova/randomiser/internal/entity"
)

// Sampler draws random elements from a population.
type Sampler struct {
	src Source
}

func NewSampler(src Source) *Sampler { return &Sampler{src: src} }

// SampleWithReplacement makes quantity independent uniform draws; an element
// may appear more than once.
func SampleWithReplacement[T any](s *Sampler, pop entity.Population[T], quantity int) []T {
	if quantity < 0 {
		panic("service: negative sample quantity")
	}
	out := make([]T, quantity)
	if quantity == 0 {
		return out
	}
	n := pop.Len()
	if n <= 0 {
		panic("service: sampling from an empty population")
	}
	for i := range out {
		out[i] = pop.At(s.src.IntN(n))
	}
	return out
}

// SampleWithoutReplacement returns quantity distinct elements in uniformly
// random order: the prefix of a Fisher-Yates shuffle of the population.
// Only the positions touched by the shuffle are tracked, so a large integer
// range is never materialised.
func SampleWithoutReplacement[T any](s *Sampler, pop entity.Population[T], quantity int) []T {
	n := pop.Len()
	if quantity < 0 || quantity > n {
		panic("service: sample quantity out of range for population")
	}

	moved := make(map[int]int, quantity)
	at := func(i int) int {
		if v, ok := moved[i]; ok {
			return v
		}
		return i
	}

	out := make([]T, quantity)
	for i := 0; i < quantity; i++ {
		j := i + s.src.IntN(n-i)
		vi, vj := at(i), at(j)
		moved[i], moved[j] = vj, vi
		out[i] = pop.At(vj)
	}
	return out
}

// Shuffle returns a uniformly random permutation of items; items is not modified.
func Shuffle[T any](s *Sampler, items []T) []T {
	return SampleWithoutReplacement[T](s, slice[T](items), len(items))
}

type slice[T any] []T

func (sl slice[T]) Len() int   { return len(sl) }
func (sl slice[T]) At(i int) T { return sl[i] }

func sum(nums []int) int {
	total := 0
	for _, n := range nums {
		total += n
	}
	return total
}
