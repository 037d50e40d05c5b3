package quicksort

import (
	"errors"
	"fmt"
	"math/bits"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/exp/rand"
)

func randomInts(rng *rand.Rand, n, max int) []int {
	xs := make([]int, n)
	for i := range xs {
		xs[i] = rng.Intn(2*max+1) - max
	}
	return xs
}

func reversed(n int) []int {
	xs := make([]int, n)
	for i := range xs {
		xs[i] = n - i
	}
	return xs
}

func sortedCopy(xs []int) []int {
	c := append([]int(nil), xs...)
	sort.Ints(c)
	return c
}

func TestSortInPlaceScenario(t *testing.T) {
	xs := []int{5, 3, 8, 1, 9, 2}
	SortInPlace(xs)
	if diff := cmp.Diff([]int{1, 2, 3, 5, 8, 9}, xs); diff != "" {
		t.Errorf("want - got:\n%s", diff)
	}
}

func TestSortBoundaries(t *testing.T) {
	tests := []struct {
		name string
		in   []int
		want []int
	}{
		{"Nil", nil, nil},
		{"Empty", []int{}, []int{}},
		{"Single", []int{7}, []int{7}},
		{"PairSorted", []int{1, 2}, []int{1, 2}},
		{"PairReversed", []int{2, 1}, []int{1, 2}},
		{"AllEqual", []int{4, 4, 4, 4}, []int{4, 4, 4, 4}},
		{"Negative", []int{0, -3, 5, -3, 2}, []int{-3, -3, 0, 2, 5}},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			SortInPlace(test.in)
			if diff := cmp.Diff(test.want, test.in); diff != "" {
				t.Errorf("want - got:\n%s", diff)
			}
		})
	}
}

func TestSortRandomMatchesReference(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, pol := range []PivotPolicy{PivotLast, PivotRandom} {
		for _, n := range []int{2, 3, 10, 100, 1000, 5000} {
			pol, n := pol, n
			t.Run(fmt.Sprintf("Pivot=%s/N=%d", pol, n), func(t *testing.T) {
				xs := randomInts(rng, n, n/4+1)
				want := sortedCopy(xs)

				s := Sorter{Pivot: pol}
				s.Sort(xs)
				if diff := cmp.Diff(want, xs); diff != "" {
					t.Fatalf("want - got:\n%s", diff)
				}

				// sorting again must not change anything
				s.Sort(xs)
				if diff := cmp.Diff(want, xs); diff != "" {
					t.Errorf("not idempotent, want - got:\n%s", diff)
				}
			})
		}
	}
}

func TestWorstCaseComparisons(t *testing.T) {
	for _, n := range []int{2, 10, 100, 1000} {
		inputs := map[string][]int{
			"Reverse": reversed(n),
			"Sorted":  sortedCopy(reversed(n)),
		}
		for name, xs := range inputs {
			var s Sorter
			s.Sort(xs)
			want := int64(n) * int64(n-1) / 2
			if s.Stats.Comparisons != want {
				t.Errorf("%s n=%d: got %d comparisons, want %d", name, n, s.Stats.Comparisons, want)
			}
			if s.Stats.Partitions != int64(n-1) {
				t.Errorf("%s n=%d: got %d partitions, want %d", name, n, s.Stats.Partitions, n-1)
			}
		}
	}
}

func TestWorstCaseGrowsQuadratically(t *testing.T) {
	count := func(n int) int64 {
		var s Sorter
		s.Sort(reversed(n))
		return s.Stats.Comparisons
	}
	small, large := count(500), count(1000)
	if ratio := float64(large) / float64(small); ratio < 3.9 || ratio > 4.1 {
		t.Errorf("doubling n scaled comparisons by %.3f, want about 4", ratio)
	}
}

func TestPendingStackStaysSmall(t *testing.T) {
	ceiling := func(n int) int { return 2*bits.Len(uint(n)) + 2 }

	rng := rand.New(rand.NewSource(3))
	inputs := map[string][]int{
		"Reverse1000": reversed(1000),
		"Random1000":  randomInts(rng, 1000, 1000),
		"Random20000": randomInts(rng, 20000, 50),
	}
	for name, xs := range inputs {
		var s Sorter
		s.Sort(xs)
		if limit := ceiling(len(xs)); s.Stats.MaxPending > limit {
			t.Errorf("%s: max pending %d exceeds %d", name, s.Stats.MaxPending, limit)
		}
	}
}

func TestLargeReverseInputCompletes(t *testing.T) {
	if testing.Short() {
		t.Skip("quadratic input")
	}
	xs := reversed(20000)
	SortInPlace(xs)
	for i := 1; i < len(xs); i++ {
		if xs[i-1] > xs[i] {
			t.Fatalf("out of order at %d: %d > %d", i, xs[i-1], xs[i])
		}
	}
}

func TestSortRange(t *testing.T) {
	xs := []int{9, 5, 3, 8, 1, 0}
	var s Sorter
	if err := s.SortRange(xs, 1, 4); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff([]int{9, 1, 3, 5, 8, 0}, xs); diff != "" {
		t.Errorf("want - got:\n%s", diff)
	}

	if err := s.SortRange(xs, 3, 2); err != nil {
		t.Errorf("empty range: unexpected error: %v", err)
	}
	if err := s.SortRange(nil, 0, -1); err != nil {
		t.Errorf("empty slice: unexpected error: %v", err)
	}
}

func TestSortRangeInvalid(t *testing.T) {
	tests := []struct {
		name      string
		n         int
		low, high int
	}{
		{"NegativeLow", 5, -1, 3},
		{"HighPastEnd", 5, 0, 5},
		{"Inverted", 5, 4, 1},
		{"EmptySliceHigh", 0, 0, 0},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			xs := reversed(test.n)
			before := make([]int, len(xs))
			copy(before, xs)
			var s Sorter
			err := s.SortRange(xs, test.low, test.high)
			if !errors.Is(err, ErrInvalidRange) {
				t.Fatalf("got err %v, want ErrInvalidRange", err)
			}
			if diff := cmp.Diff(before, xs); diff != "" {
				t.Errorf("input changed on error:\n%s", diff)
			}
		})
	}
}

func TestRandomPivotIsSeeded(t *testing.T) {
	run := func() Stats {
		s := Sorter{Pivot: PivotRandom}
		s.Sort(reversed(2000))
		return s.Stats
	}
	a, b := run(), run()
	if a != b {
		t.Errorf("same default seed gave different stats: %+v vs %+v", a, b)
	}
	if worst := int64(2000 * 1999 / 2); a.Comparisons >= worst/10 {
		t.Errorf("random pivot made %d comparisons, expected far fewer than %d", a.Comparisons, worst)
	}
}

func TestResetClearsStats(t *testing.T) {
	var s Sorter
	s.Sort(reversed(10))
	s.Reset()
	if s.Stats != (Stats{}) {
		t.Errorf("stats not cleared: %+v", s.Stats)
	}
}

func TestPivotPolicyFlag(t *testing.T) {
	var p PivotPolicy
	if err := p.Set("random"); err != nil || p != PivotRandom {
		t.Errorf("Set(random) = %v, policy %v", err, p)
	}
	err := p.Set("median")
	if err == nil {
		t.Fatalf("Set(median) succeeded")
	}
	if want := `invalid pivot policy "median", must be one of [last random]`; err.Error() != want {
		t.Errorf("Set(median) error = %q, want %q", err, want)
	}
	if p != PivotRandom {
		t.Errorf("failed Set changed policy to %v", p)
	}
	if got := PivotLast.String(); got != "last" {
		t.Errorf("PivotLast.String() = %q", got)
	}
}
