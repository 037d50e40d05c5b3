package bench

import (
	"fmt"
	"log"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/uluyol/sortbench/go/datasets"
	"github.com/uluyol/sortbench/go/stats"
)

const previewLen = 10

type AlgResult struct {
	Success          bool    `json:"success"`
	ExecutionTimeSec float64 `json:"executionTimeSec"`
	MemoryDeltaBytes int64   `json:"memoryDeltaBytes"`
	Comparisons      int64   `json:"comparisons"`
	Runs             int     `json:"runs"`
	StdDevSec        float64 `json:"stddevSec"`
	P50Sec           float64 `json:"p50Sec"`
	P99Sec           float64 `json:"p99Sec"`
	Error            string  `json:"error,omitempty"`
}

type DatasetResult struct {
	DatasetName string               `json:"datasetName"`
	DatasetSize int                  `json:"datasetSize"`
	Category    datasets.Category    `json:"category"`
	Algorithms  map[string]AlgResult `json:"algorithms"`
	Comparison  *Comparison          `json:"comparison,omitempty"`
}

type Results struct {
	RunID     string          `json:"runId"`
	StartedAt time.Time       `json:"startedAt"`
	TotalSec  float64         `json:"totalSec"`
	Config    Config          `json:"config"`
	Datasets  []DatasetResult `json:"datasets"`
	Summary   *Summary        `json:"summary,omitempty"`
}

type Runner struct {
	Config     Config
	Algorithms []Algorithm
	Meter      *stats.Meter
	Recorder   *stats.Recorder

	Logf func(format string, args ...interface{})
}

func NewRunner(c Config) (*Runner, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	opts := c.algOptions()
	algs := make([]Algorithm, len(c.Algorithms))
	for i, name := range c.Algorithms {
		alg, err := LookupAlgorithm(name, opts)
		if err != nil {
			return nil, err
		}
		algs[i] = alg
	}
	return &Runner{
		Config:     c,
		Algorithms: algs,
		Meter:      stats.NewMeter(c.sampler()),
		Recorder:   stats.NewRecorder(nil),
		Logf:       log.Printf,
	}, nil
}

func (r *Runner) logf(format string, args ...interface{}) {
	if r.Logf != nil {
		r.Logf(format, args...)
	}
}

// AnalyzeDataset runs every algorithm over ds. A failing algorithm is
// recorded as unsuccessful and does not stop the others.
func (r *Runner) AnalyzeDataset(ds datasets.Dataset) DatasetResult {
	res := DatasetResult{
		DatasetName: ds.Name,
		DatasetSize: len(ds.Data),
		Category:    ds.Category,
		Algorithms:  make(map[string]AlgResult, len(r.Algorithms)),
	}
	r.logf("analyzing %s: %d elements, first %d: %v", ds.Name, len(ds.Data), previewLen, preview(ds.Data))

	for _, alg := range r.Algorithms {
		ar, err := r.runAlgorithm(alg, ds)
		if err != nil {
			r.logf("%s on %s failed: %v", alg.Name, ds.Name, err)
			ar = AlgResult{Error: err.Error()}
		} else {
			r.logf("%s on %s: %.6f s, %.2f KB, %d comparisons, verification passed",
				alg.Name, ds.Name, ar.ExecutionTimeSec, float64(ar.MemoryDeltaBytes)/1024, ar.Comparisons)
		}
		res.Algorithms[alg.Name] = ar
	}

	if len(r.Algorithms) >= 2 {
		res.Comparison = Compare(res, r.Algorithms[0].Name, r.Algorithms[1].Name)
	}
	return res
}

// runAlgorithm replaces any earlier measurements of alg on ds.
func (r *Runner) runAlgorithm(alg Algorithm, ds datasets.Dataset) (AlgResult, error) {
	r.Recorder.Forget(alg.Name, ds.Name)

	var comparisons int64
	sortFn := alg.SortFunc(&comparisons)
	for i := 0; i < r.Config.Runs; i++ {
		in := alg.Prepare(ds.Data)
		out, rec, err := r.Meter.Measure(alg.Name, ds.Name, sortFn, in)
		if err != nil {
			return AlgResult{}, err
		}
		if err := Verify(ds.Data, out); err != nil {
			return AlgResult{}, err
		}
		rec.Comparisons = comparisons
		if err := r.Recorder.Record(rec); err != nil {
			return AlgResult{}, err
		}
	}

	sum, ok := r.Recorder.Summary(alg.Name, ds.Name)
	if !ok {
		return AlgResult{}, fmt.Errorf("no measurements for %s on %s", alg.Name, ds.Name)
	}
	return AlgResult{
		Success:          true,
		ExecutionTimeSec: sum.MeanSec,
		MemoryDeltaBytes: int64(math.Round(sum.MeanMemDeltaBytes)),
		Comparisons:      sum.Comparisons,
		Runs:             sum.Runs,
		StdDevSec:        sum.StdDevSec,
		P50Sec:           sum.P50Sec,
		P99Sec:           sum.P99Sec,
	}, nil
}

// AnalyzeAll runs every dataset in order and summarizes the results.
func (r *Runner) AnalyzeAll(sets []datasets.Dataset) *Results {
	res := &Results{
		RunID:     uuid.New().String(),
		StartedAt: time.Now().UTC(),
		Config:    r.Config,
		Datasets:  make([]DatasetResult, 0, len(sets)),
	}
	start := time.Now()
	for i, ds := range sets {
		res.Datasets = append(res.Datasets, r.AnalyzeDataset(ds))
		r.logf("finished %d/%d datasets", i+1, len(sets))
	}
	res.TotalSec = time.Since(start).Seconds()
	if len(r.Algorithms) >= 2 {
		res.Summary = Summarize(res.Datasets, r.Algorithms[0].Name, r.Algorithms[1].Name)
	}
	r.logf("analysis of %d datasets completed in %.2f s", len(sets), res.TotalSec)
	return res
}

func preview(data []int) []int {
	if len(data) > previewLen {
		return data[:previewLen]
	}
	return data
}
