// Package mergesort implements a top-down stable mergesort over ints.
// The input is never modified; every call returns a new slice.
package mergesort

type Stats struct {
	Comparisons int64
	Merges      int64

	// Allocated is the number of elements allocated for merge buffers.
	Allocated int64
}

type Sorter struct {
	Stats Stats
}

// Sort returns a sorted copy of xs. Equal elements keep their relative
// order.
func Sort(xs []int) []int {
	var s Sorter
	return s.Sort(xs)
}

func (s *Sorter) Sort(xs []int) []int {
	return sortFunc(xs, func(a, b int) int {
		s.Stats.Comparisons++
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		}
		return 0
	}, &s.Stats)
}

func (s *Sorter) Reset() { s.Stats = Stats{} }

func sortFunc[T any](xs []T, cmp func(a, b T) int, st *Stats) []T {
	if len(xs) < 2 {
		return append(make([]T, 0, len(xs)), xs...)
	}
	mid := len(xs) / 2
	left := sortFunc(xs[:mid], cmp, st)
	right := sortFunc(xs[mid:], cmp, st)
	return merge(left, right, cmp, st)
}

// merge takes from left unless the head of right is strictly smaller, so
// ties keep left-before-right order.
func merge[T any](left, right []T, cmp func(a, b T) int, st *Stats) []T {
	st.Merges++
	st.Allocated += int64(len(left) + len(right))

	out := make([]T, 0, len(left)+len(right))
	i, j := 0, 0
	for i < len(left) && j < len(right) {
		if cmp(right[j], left[i]) < 0 {
			out = append(out, right[j])
			j++
		} else {
			out = append(out, left[i])
			i++
		}
	}
	out = append(out, left[i:]...)
	return append(out, right[j:]...)
}
