package bench

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

var (
	ErrNotSorted      = errors.New("output not sorted")
	ErrNotPermutation = errors.New("output is not a permutation of the input")
)

// Verify checks that out is input sorted non-decreasingly.
func Verify(input, out []int) error {
	if len(input) != len(out) {
		return fmt.Errorf("%w: have %d elements, want %d", ErrNotPermutation, len(out), len(input))
	}
	for i := 1; i < len(out); i++ {
		if out[i-1] > out[i] {
			return fmt.Errorf("%w: out[%d] = %d > out[%d] = %d", ErrNotSorted, i-1, out[i-1], i, out[i])
		}
	}
	if multisetDigest(input) != multisetDigest(out) {
		return ErrNotPermutation
	}
	return nil
}

// multisetDigest sums per-element hashes, so it ignores order.
func multisetDigest(xs []int) uint64 {
	var sum uint64
	var buf [8]byte
	for _, x := range xs {
		binary.LittleEndian.PutUint64(buf[:], uint64(x))
		sum += xxhash.Sum64(buf[:])
	}
	return sum
}
