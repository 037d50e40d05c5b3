// Package quicksort implements an in-place Lomuto-partition quicksort
// over ints.
//
// The default pivot is the last element of each range. Sorted and
// reverse-sorted inputs hit the quadratic worst case under that policy,
// and the benchmarks depend on it.
package quicksort

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/exp/rand"
)

var ErrInvalidRange = errors.New("invalid range")

type PivotPolicy int

const (
	PivotLast PivotPolicy = iota
	PivotRandom
)

var pivotNames = [...]string{
	PivotLast:   "last",
	PivotRandom: "random",
}

func ValidPivotPolicies() []string { return pivotNames[:] }

func (p PivotPolicy) String() string {
	if int(p) < 0 || int(p) >= len(pivotNames) {
		return fmt.Sprintf("PivotPolicy(%d)", int(p))
	}
	return pivotNames[p]
}

func (p *PivotPolicy) Set(s string) error {
	for pol, name := range pivotNames {
		if name == s {
			*p = PivotPolicy(pol)
			return nil
		}
	}
	return fmt.Errorf("invalid pivot policy %q, must be one of [%s]",
		s, strings.Join(ValidPivotPolicies(), " "))
}

// DefaultSeed seeds the generator used by PivotRandom when the Sorter
// has no Rand of its own.
const DefaultSeed = 42

type Stats struct {
	Comparisons int64
	Swaps       int64
	Partitions  int64

	// MaxPending is the most ranges that were waiting on the work stack
	// at once.
	MaxPending int
}

type Sorter struct {
	Pivot PivotPolicy
	Rand  *rand.Rand

	Stats Stats

	pending []span
}

// span is an inclusive index range.
type span struct {
	low, high int
}

func (s span) size() int { return s.high - s.low + 1 }

// SortInPlace sorts xs in non-decreasing order using the last-element
// pivot.
func SortInPlace(xs []int) {
	var s Sorter
	s.Sort(xs)
}

func (s *Sorter) Sort(xs []int) {
	s.sort(xs, span{0, len(xs) - 1})
}

// SortRange sorts the inclusive range xs[low..high]. An empty range is
// written as low == high+1.
func (s *Sorter) SortRange(xs []int, low, high int) error {
	if low < 0 || high+1 > len(xs) || low > high+1 {
		return fmt.Errorf("%w: [%d, %d] for length %d", ErrInvalidRange, low, high, len(xs))
	}
	s.sort(xs, span{low, high})
	return nil
}

func (s *Sorter) Reset() { s.Stats = Stats{} }

// sort drains a stack of pending ranges instead of recursing. Only ranges
// with at least two elements are pushed, and the larger half goes in
// first so the smaller one is handled next. That keeps the stack at
// O(log n) entries for any input.
func (s *Sorter) sort(xs []int, r span) {
	if r.size() < 2 {
		return
	}
	if s.Pivot == PivotRandom && s.Rand == nil {
		s.Rand = rand.New(rand.NewSource(DefaultSeed))
	}

	s.pending = append(s.pending[:0], r)
	s.notePending()
	for len(s.pending) > 0 {
		r := s.pending[len(s.pending)-1]
		s.pending = s.pending[:len(s.pending)-1]

		p := s.partition(xs, r.low, r.high)
		left := span{r.low, p - 1}
		right := span{p + 1, r.high}
		if left.size() < right.size() {
			left, right = right, left
		}
		s.push(left)
		s.push(right)
	}
}

func (s *Sorter) push(r span) {
	if r.size() < 2 {
		return
	}
	s.pending = append(s.pending, r)
	s.notePending()
}

func (s *Sorter) notePending() {
	if len(s.pending) > s.Stats.MaxPending {
		s.Stats.MaxPending = len(s.pending)
	}
}

// partition places xs[high] (after optional random pivot selection) at
// its final position and returns that position. Everything left of it is
// <= the pivot and everything right of it is greater.
func (s *Sorter) partition(xs []int, low, high int) int {
	s.Stats.Partitions++
	if s.Pivot == PivotRandom {
		i := low + s.Rand.Intn(high-low+1)
		s.swap(xs, i, high)
	}

	pivot := xs[high]
	boundary := low
	for j := low; j < high; j++ {
		s.Stats.Comparisons++
		if xs[j] <= pivot {
			s.swap(xs, boundary, j)
			boundary++
		}
	}
	s.swap(xs, boundary, high)
	return boundary
}

func (s *Sorter) swap(xs []int, i, j int) {
	s.Stats.Swaps++
	xs[i], xs[j] = xs[j], xs[i]
}
