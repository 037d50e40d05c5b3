package datasets

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/exp/rand"
)

func TestSortedAndReverseGen(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	if diff := cmp.Diff([]int{1, 2, 3, 4}, SortedGen{Num: 4, Start: 1}.Gen(rng)); diff != "" {
		t.Errorf("sorted: want - got:\n%s", diff)
	}
	if diff := cmp.Diff([]int{10, 7, 4, 1}, ReverseGen{Num: 4, Start: 1, Step: 3}.Gen(rng)); diff != "" {
		t.Errorf("reverse: want - got:\n%s", diff)
	}
	if got := (SortedGen{}).Gen(rng); len(got) != 0 {
		t.Errorf("empty sorted gen produced %v", got)
	}
}

func TestRandomGenBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	tests := []struct {
		name      string
		g         RandomGen
		low, high int
	}{
		{"Default", RandomGen{Num: 500}, 1, 500},
		{"Explicit", RandomGen{Num: 1000, Low: -5, High: 5}, -5, 5},
		{"Constant", RandomGen{Num: 10, Low: 3, High: 3}, 3, 3},
		{"FullRange", RandomGen{Num: 100, Low: math.MinInt64, High: math.MaxInt64}, math.MinInt64, math.MaxInt64},
		{"LowerHalf", RandomGen{Num: 100, Low: math.MinInt64, High: 0}, math.MinInt64, 0},
		{"WideSpan", RandomGen{Num: 100, Low: -10, High: math.MaxInt64}, -10, math.MaxInt64},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			d := test.g.Gen(rng)
			if len(d) != test.g.Num {
				t.Fatalf("got %d values, want %d", len(d), test.g.Num)
			}
			for i, v := range d {
				if v < test.low || v > test.high {
					t.Fatalf("value %d at %d outside [%d, %d]", v, i, test.low, test.high)
				}
			}
		})
	}
}

func TestFullRangeConfigGenerates(t *testing.T) {
	c := Config{Seed: 1, Datasets: []Spec{
		{Name: "random_wide", Gen: ConfigGen{RandomGen{Num: 50, Low: math.MinInt64, High: math.MaxInt64}}},
	}}
	if err := c.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	d := c.Enumerate()[0].Generate()
	if len(d) != 50 {
		t.Fatalf("got %d values, want 50", len(d))
	}
	distinct := make(map[int]bool)
	for _, v := range d {
		distinct[v] = true
	}
	if len(distinct) < 45 {
		t.Errorf("only %d distinct values from a full-range draw", len(distinct))
	}
}

func TestCategoryOf(t *testing.T) {
	tests := map[string]Category{
		"sorted_data":              CategorySorted,
		"sorted_data_1000":         CategorySorted,
		"reverse_sorted_data":      CategoryReverse,
		"reverse_sorted_data_5000": CategoryReverse,
		"random_data":              CategoryRandom,
		"customers":                CategoryOther,
	}
	for name, want := range tests {
		if got := CategoryOf(name); got != want {
			t.Errorf("CategoryOf(%q) = %q, want %q", name, got, want)
		}
	}
}

func TestGenCategoryMatchesDefaultNames(t *testing.T) {
	c := DefaultConfig()
	for _, inst := range c.Enumerate() {
		if got := CategoryOf(inst.Name); got != inst.Gen.Category() {
			t.Errorf("%s: name category %q, generator category %q", inst.Name, got, inst.Gen.Category())
		}
	}
}
