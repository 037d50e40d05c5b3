package stats

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"sort"
	"sync"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
	"gonum.org/v1/gonum/stat"
)

const (
	histLowestNs  = 1
	histHighestNs = int64(time.Hour)
	histSigFigs   = 3
)

type groupKey struct {
	algorithm string
	dataset   string
}

type group struct {
	n           int
	comparisons int64
	elapsedSec  []float64
	memDelta    []float64
	minNs       int64
	maxNs       int64
	hist        *hdrhistogram.Histogram
}

// Recorder collects repeated Records of the same (algorithm, dataset)
// pair. If out is non-nil every record is also written to it as a JSON
// line.
type Recorder struct {
	mu     sync.Mutex
	out    io.Writer
	groups map[groupKey]*group
}

func NewRecorder(out io.Writer) *Recorder {
	return &Recorder{out: out, groups: make(map[groupKey]*group)}
}

func (r *Recorder) Record(rec Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	k := groupKey{rec.Algorithm, rec.Dataset}
	g, ok := r.groups[k]
	if !ok {
		g = &group{
			minNs: math.MaxInt64,
			hist:  hdrhistogram.New(histLowestNs, histHighestNs, histSigFigs),
		}
		r.groups[k] = g
	}

	ns := rec.Elapsed().Nanoseconds()
	if err := g.hist.RecordValue(ns); err != nil {
		return fmt.Errorf("failed to record %s on %s: %w", rec.Algorithm, rec.Dataset, err)
	}
	if ns < g.minNs {
		g.minNs = ns
	}
	if ns > g.maxNs {
		g.maxNs = ns
	}
	g.n = rec.N
	g.comparisons = rec.Comparisons
	g.elapsedSec = append(g.elapsedSec, rec.ElapsedSec)
	g.memDelta = append(g.memDelta, float64(rec.MemDeltaBytes))

	if r.out != nil {
		return writeJSONLine(r.out, &rec)
	}
	return nil
}

type Summary struct {
	Algorithm   string `json:"algorithm"`
	Dataset     string `json:"dataset"`
	N           int    `json:"n"`
	Runs        int    `json:"runs"`
	Comparisons int64  `json:"comparisons"`

	MeanSec   float64 `json:"meanSec"`
	StdDevSec float64 `json:"stddevSec"`
	MinSec    float64 `json:"minSec"`
	P50Sec    float64 `json:"p50Sec"`
	P90Sec    float64 `json:"p90Sec"`
	P99Sec    float64 `json:"p99Sec"`
	MaxSec    float64 `json:"maxSec"`

	MeanMemDeltaBytes float64 `json:"meanMemDeltaBytes"`
}

// Forget drops every record of the pair so the next Record starts a new
// group.
func (r *Recorder) Forget(algorithm, dataset string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.groups, groupKey{algorithm, dataset})
}

func (r *Recorder) Summary(algorithm, dataset string) (Summary, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	g, ok := r.groups[groupKey{algorithm, dataset}]
	if !ok {
		return Summary{}, false
	}
	return g.summarize(algorithm, dataset), true
}

// Summaries returns a summary per pair, ordered by dataset then
// algorithm.
func (r *Recorder) Summaries() []Summary {
	r.mu.Lock()
	defer r.mu.Unlock()

	sums := make([]Summary, 0, len(r.groups))
	for k, g := range r.groups {
		sums = append(sums, g.summarize(k.algorithm, k.dataset))
	}
	sort.Slice(sums, func(i, j int) bool {
		if sums[i].Dataset != sums[j].Dataset {
			return sums[i].Dataset < sums[j].Dataset
		}
		return sums[i].Algorithm < sums[j].Algorithm
	})
	return sums
}

func (g *group) summarize(algorithm, dataset string) Summary {
	mean, std := stat.MeanStdDev(g.elapsedSec, nil)
	if len(g.elapsedSec) < 2 {
		std = 0
	}
	return Summary{
		Algorithm:         algorithm,
		Dataset:           dataset,
		N:                 g.n,
		Runs:              len(g.elapsedSec),
		Comparisons:       g.comparisons,
		MeanSec:           mean,
		StdDevSec:         std,
		MinSec:            nsToSec(g.minNs),
		P50Sec:            nsToSec(g.hist.ValueAtPercentile(50)),
		P90Sec:            nsToSec(g.hist.ValueAtPercentile(90)),
		P99Sec:            nsToSec(g.hist.ValueAtPercentile(99)),
		MaxSec:            nsToSec(g.maxNs),
		MeanMemDeltaBytes: stat.Mean(g.memDelta, nil),
	}
}

func nsToSec(ns int64) float64 { return time.Duration(ns).Seconds() }

func writeJSONLine(w io.Writer, v interface{}) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	b = append(b, '\n')
	_, err = w.Write(b)
	return err
}
