package bench

import (
	"errors"
	"fmt"
	"strings"

	"github.com/uluyol/sortbench/go/datasets"
	"github.com/uluyol/sortbench/go/sorting/quicksort"
	"github.com/uluyol/sortbench/go/stats"
)

type Config struct {
	Algorithms []string `json:"algorithms"`
	Runs       int      `json:"runs"`
	Pivot      string   `json:"pivot"`
	PivotSeed  uint64   `json:"pivotSeed"`

	// Memory names the sampler; empty uses stats.DefaultSampler.
	Memory string `json:"memory,omitempty"`

	Generate *datasets.Config `json:"generate,omitempty"`
}

func DefaultConfig() Config {
	gen := datasets.DefaultConfig()
	return Config{
		Algorithms: []string{AlgQuicksort, AlgMergesort},
		Runs:       1,
		Pivot:      quicksort.PivotLast.String(),
		PivotSeed:  quicksort.DefaultSeed,
		Generate:   &gen,
	}
}

func (c *Config) Validate() error {
	var errs []string
	if len(c.Algorithms) == 0 {
		errs = append(errs, "need at least one algorithm")
	}
	seen := make(map[string]bool)
	for i, name := range c.Algorithms {
		if _, err := LookupAlgorithm(name, AlgOptions{}); err != nil {
			errs = append(errs, fmt.Sprintf("Algorithms[%d]: %v", i, err))
		}
		if seen[name] {
			errs = append(errs, fmt.Sprintf("Algorithms[%d]: %q listed twice", i, name))
		}
		seen[name] = true
	}
	if c.Runs <= 0 {
		errs = append(errs, fmt.Sprintf("Runs must be positive (found %d)", c.Runs))
	}
	var pol quicksort.PivotPolicy
	if err := pol.Set(c.Pivot); err != nil {
		errs = append(errs, err.Error())
	}
	if c.Memory != "" {
		if _, err := stats.SamplerByName(c.Memory); err != nil {
			errs = append(errs, err.Error())
		}
	}
	if c.Generate != nil {
		if err := c.Generate.Validate(); err != nil {
			errs = append(errs, "generate: "+err.Error())
		}
	}
	if len(errs) > 0 {
		return errors.New("multiple errors:\n\t" + strings.Join(errs, "\n\t"))
	}
	return nil
}

func (c *Config) algOptions() AlgOptions {
	var pol quicksort.PivotPolicy
	pol.Set(c.Pivot)
	return AlgOptions{Pivot: pol, PivotSeed: c.PivotSeed}
}

func (c *Config) sampler() stats.MemSampler {
	if c.Memory == "" {
		return stats.DefaultSampler()
	}
	s, _ := stats.SamplerByName(c.Memory)
	return s
}
