package stats

import (
	"bytes"
	"fmt"
	"os"
	"runtime"
	"strconv"
)

// MemSampler returns a memory reading in bytes.
type MemSampler interface {
	Sample() (int64, error)
	Name() string
}

const (
	memRSS   = "rss"
	memHeap  = "heap"
	memAlloc = "alloc"
)

func ValidSamplers() []string { return []string{memRSS, memHeap, memAlloc} }

func SamplerByName(name string) (MemSampler, error) {
	switch name {
	case memRSS:
		return RSSSampler{}, nil
	case memHeap:
		return HeapSampler{}, nil
	case memAlloc:
		return AllocSampler{}, nil
	}
	return nil, fmt.Errorf("unknown memory sampler %q", name)
}

// DefaultSampler reads RSS where /proc is available and falls back to
// the Go heap otherwise.
func DefaultSampler() MemSampler {
	if runtime.GOOS == "linux" {
		return RSSSampler{}
	}
	return HeapSampler{}
}

// RSSSampler reads the resident set size of this process from
// /proc/self/statm.
type RSSSampler struct {
	Path string
}

func (s RSSSampler) Name() string { return memRSS }

func (s RSSSampler) Sample() (int64, error) {
	p := s.Path
	if p == "" {
		p = "/proc/self/statm"
	}
	data, err := os.ReadFile(p)
	if err != nil {
		return 0, fmt.Errorf("failed to read rss: %w", err)
	}
	pages, err := parseStatmResident(data)
	if err != nil {
		return 0, fmt.Errorf("failed to read rss from %s: %w", p, err)
	}
	return pages * int64(os.Getpagesize()), nil
}

// parseStatmResident returns the second field of a statm line, in pages.
func parseStatmResident(data []byte) (int64, error) {
	fields := bytes.Fields(data)
	if len(fields) < 2 {
		return 0, fmt.Errorf("invalid statm line: %q", data)
	}
	v, err := strconv.ParseInt(string(fields[1]), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid resident field: %w", err)
	}
	return v, nil
}

// HeapSampler reads the bytes of live heap objects.
type HeapSampler struct{}

func (HeapSampler) Name() string { return memHeap }

func (HeapSampler) Sample() (int64, error) {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	return int64(ms.HeapAlloc), nil
}

// AllocSampler reads the cumulative bytes allocated on the heap, so a
// delta is the allocation volume of the measured call.
type AllocSampler struct{}

func (AllocSampler) Name() string { return memAlloc }

func (AllocSampler) Sample() (int64, error) {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	return int64(ms.TotalAlloc), nil
}
