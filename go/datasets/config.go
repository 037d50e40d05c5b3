package datasets

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/exp/rand"
)

type Spec struct {
	Name string    `json:"name"`
	Gen  ConfigGen `json:"gen"`

	// Sizes, if set, overrides the generator's length and yields one
	// dataset per size named "<Name>_<size>".
	Sizes []int `json:"sizes,omitempty"`
}

type Config struct {
	Seed     uint64 `json:"seed"`
	Datasets []Spec `json:"datasets"`
}

// DefaultConfig mirrors the classic sorted / reverse / random trio at
// three sizes.
func DefaultConfig() Config {
	sizes := []int{1000, 5000, 10000}
	return Config{
		Seed: 42,
		Datasets: []Spec{
			{Name: "sorted_data", Gen: ConfigGen{SortedGen{Start: 1, Step: 1}}, Sizes: sizes},
			{Name: "reverse_sorted_data", Gen: ConfigGen{ReverseGen{Start: 1, Step: 1}}, Sizes: sizes},
			{Name: "random_data", Gen: ConfigGen{RandomGen{}}, Sizes: sizes},
		},
	}
}

func (c *Config) Validate() error {
	var errs []string
	if len(c.Datasets) == 0 {
		errs = append(errs, "no datasets configured")
	}
	for i, s := range c.Datasets {
		if s.Name == "" {
			errs = append(errs, fmt.Sprintf("Datasets[%d] has no name", i))
		} else if strings.ContainsAny(s.Name, `/\`) {
			errs = append(errs, fmt.Sprintf("Datasets[%d] name %q contains a path separator", i, s.Name))
		}
		if s.Gen.Gen == nil {
			errs = append(errs, fmt.Sprintf("Datasets[%d] has no generator", i))
		} else if s.Gen.Gen.Len() < 0 {
			errs = append(errs, fmt.Sprintf("Datasets[%d] num must be non-negative (found %d)", i, s.Gen.Gen.Len()))
		}
		if rg, ok := s.Gen.Gen.(RandomGen); ok && rg.Low > rg.High {
			errs = append(errs, fmt.Sprintf("Datasets[%d] low %d > high %d", i, rg.Low, rg.High))
		}
		for j, n := range s.Sizes {
			if n < 0 {
				errs = append(errs, fmt.Sprintf("Datasets[%d].Sizes[%d] must be non-negative (found %d)", i, j, n))
			}
		}
	}

	seen := make(map[string]bool)
	for _, inst := range c.enumerate() {
		if seen[inst.Name] {
			errs = append(errs, fmt.Sprintf("duplicate dataset name %q", inst.Name))
		}
		seen[inst.Name] = true
	}

	if len(errs) > 0 {
		return errors.New("multiple errors:\n\t" + strings.Join(errs, "\n\t"))
	}
	return nil
}

type Instance struct {
	Name string
	Gen  Gen
	Seed uint64
}

// Generate is deterministic for a given name and config seed.
func (inst Instance) Generate() []int {
	return inst.Gen.Gen(rand.New(rand.NewSource(inst.Seed)))
}

func (c *Config) Enumerate() []Instance { return c.enumerate() }

func (c *Config) enumerate() []Instance {
	var insts []Instance
	add := func(name string, g Gen) {
		insts = append(insts, Instance{
			Name: name,
			Gen:  g,
			Seed: c.Seed ^ xxhash.Sum64String(name),
		})
	}
	for _, s := range c.Datasets {
		if s.Gen.Gen == nil {
			continue
		}
		if len(s.Sizes) == 0 {
			add(s.Name, s.Gen.Gen)
			continue
		}
		for _, n := range s.Sizes {
			add(fmt.Sprintf("%s_%d", s.Name, n), s.Gen.Gen.WithNum(n))
		}
	}
	return insts
}
