package bench

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Comparison pits the first configured algorithm against the second on
// one dataset. Diffs are first minus second.
type Comparison struct {
	First        string  `json:"first"`
	Second       string  `json:"second"`
	Faster       string  `json:"faster"`
	TimeDiffSec  float64 `json:"timeDiffSec"`
	MemDiffBytes int64   `json:"memDiffBytes"`

	// Speedup is slower/faster and Ratio is first/second. Either is 0
	// when its divisor is 0.
	Speedup float64 `json:"speedup"`
	Ratio   float64 `json:"ratio"`
}

// Compare returns nil unless both algorithms succeeded on the dataset.
func Compare(res DatasetResult, first, second string) *Comparison {
	a, aok := res.Algorithms[first]
	b, bok := res.Algorithms[second]
	if !aok || !bok || !a.Success || !b.Success {
		return nil
	}

	c := &Comparison{
		First:        first,
		Second:       second,
		Faster:       second,
		TimeDiffSec:  a.ExecutionTimeSec - b.ExecutionTimeSec,
		MemDiffBytes: a.MemoryDeltaBytes - b.MemoryDeltaBytes,
	}
	if c.TimeDiffSec < 0 {
		c.Faster = first
	}
	if lo := math.Min(a.ExecutionTimeSec, b.ExecutionTimeSec); lo > 0 {
		c.Speedup = math.Max(a.ExecutionTimeSec, b.ExecutionTimeSec) / lo
	}
	if b.ExecutionTimeSec > 0 {
		c.Ratio = a.ExecutionTimeSec / b.ExecutionTimeSec
	}
	return c
}

type AlgSummary struct {
	Algorithm        string  `json:"algorithm"`
	AvgTimeSec       float64 `json:"avgTimeSec"`
	AvgMemDeltaBytes float64 `json:"avgMemDeltaBytes"`
	Wins             int     `json:"wins"`
	WinRate          float64 `json:"winRate"`
}

type Summary struct {
	Compared   int        `json:"compared"`
	First      AlgSummary `json:"first"`
	Second     AlgSummary `json:"second"`
	TimeWinner string     `json:"timeWinner"`
	MemWinner  string     `json:"memWinner"`
	WinsWinner string     `json:"winsWinner"`

	// Advantages are percentages of the losing algorithm's average, 0
	// when that average is 0.
	TimeAdvantagePct float64 `json:"timeAdvantagePct"`
	MemAdvantagePct  float64 `json:"memAdvantagePct"`
}

// Summarize aggregates the datasets on which both algorithms succeeded.
// It returns nil when there are none.
func Summarize(results []DatasetResult, first, second string) *Summary {
	var aTimes, bTimes, aMems, bMems []float64
	var aWins int
	for _, res := range results {
		if Compare(res, first, second) == nil {
			continue
		}
		a, b := res.Algorithms[first], res.Algorithms[second]
		aTimes = append(aTimes, a.ExecutionTimeSec)
		bTimes = append(bTimes, b.ExecutionTimeSec)
		aMems = append(aMems, float64(a.MemoryDeltaBytes))
		bMems = append(bMems, float64(b.MemoryDeltaBytes))
		if a.ExecutionTimeSec < b.ExecutionTimeSec {
			aWins++
		}
	}
	n := len(aTimes)
	if n == 0 {
		return nil
	}

	s := &Summary{
		Compared: n,
		First: AlgSummary{
			Algorithm:        first,
			AvgTimeSec:       stat.Mean(aTimes, nil),
			AvgMemDeltaBytes: stat.Mean(aMems, nil),
			Wins:             aWins,
			WinRate:          100 * float64(aWins) / float64(n),
		},
		Second: AlgSummary{
			Algorithm:        second,
			AvgTimeSec:       stat.Mean(bTimes, nil),
			AvgMemDeltaBytes: stat.Mean(bMems, nil),
			Wins:             n - aWins,
			WinRate:          100 * float64(n-aWins) / float64(n),
		},
	}

	s.TimeWinner, s.TimeAdvantagePct = pickLower(s.First.Algorithm, s.First.AvgTimeSec, s.Second.Algorithm, s.Second.AvgTimeSec)
	s.MemWinner, s.MemAdvantagePct = pickLower(s.First.Algorithm, s.First.AvgMemDeltaBytes, s.Second.Algorithm, s.Second.AvgMemDeltaBytes)
	s.WinsWinner = second
	if s.First.Wins > s.Second.Wins {
		s.WinsWinner = first
	}
	return s
}

// pickLower returns the name with the strictly lower value (ties go to
// b) and how far below the other it is as a percentage of the other.
func pickLower(a string, av float64, b string, bv float64) (string, float64) {
	winner, lo, hi := b, bv, av
	if av < bv {
		winner, lo, hi = a, av, bv
	}
	if hi == 0 {
		return winner, 0
	}
	return winner, (hi - lo) / hi * 100
}
