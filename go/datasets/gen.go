// Package datasets generates, reads and writes the integer datasets that
// the benchmarks sort.
//
// A dataset file holds one base-10 integer per line.
package datasets

import (
	"strings"

	"golang.org/x/exp/rand"
)

type Category string

const (
	CategorySorted  Category = "sorted"
	CategoryReverse Category = "reverse"
	CategoryRandom  Category = "random"
	CategoryOther   Category = "other"
)

// Categories lists the known categories in report order.
func Categories() []Category {
	return []Category{CategorySorted, CategoryReverse, CategoryRandom}
}

// CategoryOf classifies a dataset by its name. "reverse" wins over
// "sorted" so reverse_sorted_data is a reverse dataset.
func CategoryOf(name string) Category {
	switch {
	case strings.Contains(name, "reverse"):
		return CategoryReverse
	case strings.Contains(name, "sorted"):
		return CategorySorted
	case strings.Contains(name, "random"):
		return CategoryRandom
	}
	return CategoryOther
}

type Gen interface {
	Gen(*rand.Rand) []int
	Category() Category
	WithNum(n int) Gen
	Len() int
}

// SortedGen yields Start, Start+Step, ... for Num elements.
type SortedGen struct {
	_     struct{}
	Num   int `json:"num"`
	Start int `json:"start"`
	Step  int `json:"step"`
}

func (g SortedGen) Gen(*rand.Rand) []int {
	step := g.Step
	if step == 0 {
		step = 1
	}
	d := make([]int, g.Num)
	for i := range d {
		d[i] = g.Start + i*step
	}
	return d
}

func (g SortedGen) Category() Category { return CategorySorted }
func (g SortedGen) Len() int           { return g.Num }

func (g SortedGen) WithNum(n int) Gen {
	g.Num = n
	return g
}

// ReverseGen yields the elements of the matching SortedGen from last to
// first.
type ReverseGen struct {
	_     struct{}
	Num   int `json:"num"`
	Start int `json:"start"`
	Step  int `json:"step"`
}

func (g ReverseGen) Gen(rng *rand.Rand) []int {
	d := SortedGen{Num: g.Num, Start: g.Start, Step: g.Step}.Gen(rng)
	for i, j := 0, len(d)-1; i < j; i, j = i+1, j-1 {
		d[i], d[j] = d[j], d[i]
	}
	return d
}

func (g ReverseGen) Category() Category { return CategoryReverse }
func (g ReverseGen) Len() int           { return g.Num }

func (g ReverseGen) WithNum(n int) Gen {
	g.Num = n
	return g
}

// RandomGen draws Num values uniformly from [Low, High]. If both bounds
// are zero it draws from [1, Num].
type RandomGen struct {
	_    struct{}
	Num  int `json:"num"`
	Low  int `json:"low"`
	High int `json:"high"`
}

func (g RandomGen) Gen(rng *rand.Rand) []int {
	low, high := g.Low, g.High
	if low == 0 && high == 0 {
		low, high = 1, g.Num
	}
	d := make([]int, g.Num)
	// Width of [low, high] modulo 2^64; 0 means the range covers every
	// int.
	span := uint64(high) - uint64(low) + 1
	for i := range d {
		if span == 0 {
			d[i] = int(rng.Uint64())
		} else {
			d[i] = low + int(rng.Uint64n(span))
		}
	}
	return d
}

func (g RandomGen) Category() Category { return CategoryRandom }
func (g RandomGen) Len() int           { return g.Num }

func (g RandomGen) WithNum(n int) Gen {
	g.Num = n
	return g
}
