package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/ghodss/yaml"
	"github.com/uluyol/sortbench/go/bench"
	"github.com/uluyol/sortbench/go/cmd/flagtypes"
	"github.com/uluyol/sortbench/go/sorting/quicksort"
	"github.com/uluyol/sortbench/go/stats"
)

// loadConfig decodes the YAML file at path over bench.DefaultConfig. An
// empty path yields the defaults. The generate section is replaced
// whole, not merged.
func loadConfig(path string) (bench.Config, error) {
	c := bench.DefaultConfig()
	if path == "" {
		return c, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("failed to read config: %w", err)
	}
	defaultGen := c.Generate
	c.Generate = nil
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("failed to decode config: %w", err)
	}
	if c.Generate == nil {
		c.Generate = defaultGen
	}
	return c, nil
}

func pivotUsage() string {
	return "quicksort pivot policy, one of [" + strings.Join(quicksort.ValidPivotPolicies(), " ") + "]"
}

func memUsage() string {
	return "memory sampler, one of [" + strings.Join(stats.ValidSamplers(), " ") + "]"
}

type overrides struct {
	algos flagtypes.StringList
	runs  int
	pivot string
	mem   string
	sizes flagtypes.IntList
}

func newOverrides() *overrides {
	return &overrides{
		algos: flagtypes.StringList{Sep: ","},
		sizes: flagtypes.IntList{Sep: ","},
	}
}

// apply copies every flag that was set onto c.
func (o *overrides) apply(c *bench.Config) {
	if len(o.algos.Vals) > 0 {
		c.Algorithms = append([]string(nil), o.algos.Vals...)
	}
	if o.runs > 0 {
		c.Runs = o.runs
	}
	if o.pivot != "" {
		c.Pivot = o.pivot
	}
	if o.mem != "" {
		c.Memory = o.mem
	}
	if len(o.sizes.Vals) > 0 && c.Generate != nil {
		for i := range c.Generate.Datasets {
			c.Generate.Datasets[i].Sizes = append([]int(nil), o.sizes.Vals...)
		}
	}
}
