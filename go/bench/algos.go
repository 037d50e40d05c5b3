package bench

import (
	"fmt"
	"strings"

	"github.com/uluyol/sortbench/go/sorting/mergesort"
	"github.com/uluyol/sortbench/go/sorting/quicksort"
	"github.com/uluyol/sortbench/go/stats"
	"golang.org/x/exp/rand"
)

const (
	AlgQuicksort = "quicksort"
	AlgMergesort = "mergesort"
)

// Algorithm is one sort engine as seen by the runner.
type Algorithm struct {
	Name string

	// InPlace algorithms sort their argument, so the runner hands them a
	// copy of the dataset.
	InPlace bool
	Stable  bool

	sort func(xs []int) ([]int, int64)
}

type AlgOptions struct {
	Pivot     quicksort.PivotPolicy
	PivotSeed uint64
}

func ValidAlgorithms() []string { return []string{AlgQuicksort, AlgMergesort} }

func LookupAlgorithm(name string, opts AlgOptions) (Algorithm, error) {
	switch name {
	case AlgQuicksort:
		return Algorithm{
			Name:    AlgQuicksort,
			InPlace: true,
			sort: func(xs []int) ([]int, int64) {
				s := quicksort.Sorter{Pivot: opts.Pivot}
				if opts.Pivot == quicksort.PivotRandom {
					s.Rand = rand.New(rand.NewSource(opts.PivotSeed))
				}
				s.Sort(xs)
				return xs, s.Stats.Comparisons
			},
		}, nil
	case AlgMergesort:
		return Algorithm{
			Name:   AlgMergesort,
			Stable: true,
			sort: func(xs []int) ([]int, int64) {
				var s mergesort.Sorter
				out := s.Sort(xs)
				return out, s.Stats.Comparisons
			},
		}, nil
	}
	return Algorithm{}, fmt.Errorf("unknown algorithm %q, must be one of [%s]",
		name, strings.Join(ValidAlgorithms(), " "))
}

// SortFunc adapts the algorithm for stats.Meter. The comparison count of
// the last call is stored in *comparisons.
func (a Algorithm) SortFunc(comparisons *int64) stats.SortFunc {
	return func(xs []int) ([]int, error) {
		out, n := a.sort(xs)
		*comparisons = n
		return out, nil
	}
}

// Prepare returns the slice to hand to the algorithm. The dataset itself
// is never given to an in-place sort.
func (a Algorithm) Prepare(data []int) []int {
	if !a.InPlace {
		return data
	}
	return append(make([]int, 0, len(data)), data...)
}

// DisplayName is the capitalized name used in reports.
func DisplayName(alg string) string {
	if alg == "" {
		return alg
	}
	return strings.ToUpper(alg[:1]) + alg[1:]
}
