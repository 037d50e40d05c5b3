package stats

import (
	"time"
)

// SortFunc is one sort invocation. In-place sorts return their argument.
type SortFunc func([]int) ([]int, error)

// Record describes one measured sort invocation.
type Record struct {
	Algorithm     string  `json:"algorithm"`
	Dataset       string  `json:"dataset"`
	N             int     `json:"n"`
	ElapsedSec    float64 `json:"elapsedSec"`
	MemDeltaBytes int64   `json:"memDeltaBytes"`
	Comparisons   int64   `json:"comparisons"`
}

func (r Record) Elapsed() time.Duration {
	return time.Duration(r.ElapsedSec * float64(time.Second))
}

// Meter measures sort invocations. The zero value uses DefaultSampler.
type Meter struct {
	Mem MemSampler

	now func() time.Time
}

func NewMeter(mem MemSampler) *Meter { return &Meter{Mem: mem} }

// Measure calls sort(input) once and reports its wall-clock time and the
// change in the sampler's reading across the call.
//
// The memory delta is reported as sampled and can be zero or negative;
// process-level readings are coarse for small inputs.
//
// An error from sort is returned as is, with no Record.
func (m *Meter) Measure(algorithm, dataset string, sort SortFunc, input []int) ([]int, Record, error) {
	mem := m.Mem
	if mem == nil {
		mem = DefaultSampler()
	}
	now := m.now
	if now == nil {
		now = time.Now
	}

	before, err := mem.Sample()
	if err != nil {
		return nil, Record{}, err
	}
	start := now()
	out, err := sort(input)
	end := now()
	if err != nil {
		return nil, Record{}, err
	}
	after, err := mem.Sample()
	if err != nil {
		return nil, Record{}, err
	}

	elapsed := end.Sub(start)
	if elapsed < 0 {
		elapsed = 0
	}
	return out, Record{
		Algorithm:     algorithm,
		Dataset:       dataset,
		N:             len(input),
		ElapsedSec:    elapsed.Seconds(),
		MemDeltaBytes: after - before,
	}, nil
}
