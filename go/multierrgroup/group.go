// Package multierrgroup runs functions concurrently and reports every
// error they return, not just the first.
package multierrgroup

import (
	"sort"
	"strings"
	"sync"
)

type indexedErr struct {
	i   int
	err error
}

// Errors is the error returned by Wait when more than one call failed.
// It is ordered by the order in which the calls were started.
type Errors []error

func (e Errors) Unwrap() []error { return e }

func (e Errors) Error() string {
	ss := make([]string, len(e))
	for i, err := range e {
		ss[i] = err.Error()
	}
	return "multiple errors:\n\t" + strings.Join(ss, "\n\t")
}

type Group struct {
	wg sync.WaitGroup

	mu   sync.Mutex
	next int
	errs []indexedErr
}

func (g *Group) Go(fn func() error) {
	g.mu.Lock()
	i := g.next
	g.next++
	g.mu.Unlock()

	g.wg.Add(1)
	go func() {
		defer g.wg.Done()

		if err := fn(); err != nil {
			g.mu.Lock()
			g.errs = append(g.errs, indexedErr{i, err})
			g.mu.Unlock()
		}
	}()
}

// Wait blocks until every call returns. A single failure is returned as
// is.
func (g *Group) Wait() error {
	g.wg.Wait()

	switch len(g.errs) {
	case 0:
		return nil
	case 1:
		return g.errs[0].err
	}
	sort.Slice(g.errs, func(a, b int) bool { return g.errs[a].i < g.errs[b].i })
	errs := make(Errors, len(g.errs))
	for i, e := range g.errs {
		errs[i] = e.err
	}
	return errs
}
