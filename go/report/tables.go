// Package report renders benchmark results as text tables.
package report

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/uluyol/sortbench/go/bench"
	"github.com/uluyol/sortbench/go/datasets"
)

const (
	failed = "FAILED"
	na     = "N/A"
)

// Abbrev shortens "quicksort" to "QS".
func Abbrev(alg string) string {
	if alg == "" {
		return alg
	}
	if strings.HasSuffix(alg, "sort") && len(alg) > len("sort") {
		return strings.ToUpper(alg[:1]) + "S"
	}
	return bench.DisplayName(alg)
}

// Commas formats n with thousands separators.
func Commas(n int) string {
	s := strconv.Itoa(n)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var sb strings.Builder
	if neg {
		sb.WriteByte('-')
	}
	for i, c := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			sb.WriteByte(',')
		}
		sb.WriteRune(c)
	}
	return sb.String()
}

func kb(bytes float64) string { return fmt.Sprintf("%.2f", bytes/1024) }

// table lays out one row per dataset. With two or more algorithms the
// first two are compared.
type table struct {
	algs []string
}

func newTable(res *bench.Results) table {
	algs := res.Config.Algorithms
	if len(algs) == 0 && len(res.Datasets) > 0 {
		for name := range res.Datasets[0].Algorithms {
			algs = append(algs, name)
		}
		sort.Strings(algs)
	}
	return table{algs: algs}
}

func (t table) paired() bool { return len(t.algs) >= 2 }

func (t table) header() []string {
	h := []string{"Dataset", "Size"}
	for _, a := range t.algs {
		h = append(h, Abbrev(a)+" Time (s)")
	}
	for _, a := range t.algs {
		h = append(h, Abbrev(a)+" Memory (KB)")
	}
	for _, a := range t.algs {
		h = append(h, Abbrev(a)+" Comparisons")
	}
	if t.paired() {
		h = append(h, "Time Diff (s)", "Mem Diff (KB)", "Winner", "Speedup")
	}
	return h
}

func (t table) row(res bench.DatasetResult) []string {
	r := []string{res.DatasetName, Commas(res.DatasetSize)}

	allOK := true
	for _, a := range t.algs {
		ar := res.Algorithms[a]
		if !ar.Success {
			allOK = false
			r = append(r, failed)
			continue
		}
		r = append(r, fmt.Sprintf("%.6f", ar.ExecutionTimeSec))
	}
	for _, a := range t.algs {
		if ar := res.Algorithms[a]; ar.Success && allOK {
			r = append(r, kb(float64(ar.MemoryDeltaBytes)))
		} else {
			r = append(r, na)
		}
	}
	for _, a := range t.algs {
		if ar := res.Algorithms[a]; ar.Success && allOK {
			r = append(r, Commas(int(ar.Comparisons)))
		} else {
			r = append(r, na)
		}
	}
	if !t.paired() {
		return r
	}

	c := res.Comparison
	if c == nil {
		c = bench.Compare(res, t.algs[0], t.algs[1])
	}
	if c == nil {
		return append(r, na, na, na, na)
	}
	speedup := na
	if c.Speedup > 0 {
		speedup = fmt.Sprintf("%.2fx", c.Speedup)
	}
	return append(r,
		fmt.Sprintf("%.6f", c.TimeDiffSec),
		kb(float64(c.MemDiffBytes)),
		bench.DisplayName(c.Faster),
		speedup,
	)
}

func (t table) write(w io.Writer, results []bench.DatasetResult) error {
	rows := make([][]string, len(results))
	for i, res := range results {
		rows[i] = t.row(res)
	}
	return writeGrid(w, t.header(), rows)
}

func byName(results []bench.DatasetResult) []bench.DatasetResult {
	sorted := append([]bench.DatasetResult(nil), results...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].DatasetName < sorted[j].DatasetName
	})
	return sorted
}

// AllDatasets writes one table covering every dataset, ordered by name.
func AllDatasets(w io.Writer, res *bench.Results) error {
	fmt.Fprintf(w, "\nALL DATASETS COMPARISON\n%s\n", strings.Repeat("=", 50))
	return newTable(res).write(w, byName(res.Datasets))
}

var categoryTitles = map[datasets.Category]string{
	datasets.CategorySorted:  "SORTED DATA ANALYSIS",
	datasets.CategoryReverse: "REVERSE SORTED DATA ANALYSIS",
	datasets.CategoryRandom:  "RANDOM DATA ANALYSIS",
}

// Categories writes one table per known category that has datasets.
func Categories(w io.Writer, res *bench.Results) error {
	t := newTable(res)
	for _, cat := range datasets.Categories() {
		var group []bench.DatasetResult
		for _, d := range res.Datasets {
			c := d.Category
			if c == "" {
				c = datasets.CategoryOf(d.DatasetName)
			}
			if c == cat {
				group = append(group, d)
			}
		}
		if len(group) == 0 {
			continue
		}
		title := categoryTitles[cat]
		fmt.Fprintf(w, "\n%s\n%s\n", title, strings.Repeat("=", len(title)))
		if err := t.write(w, group); err != nil {
			return err
		}
	}
	return nil
}

// Summary writes the overall summary table and key insights. It needs a
// paired run.
func Summary(w io.Writer, res *bench.Results) error {
	title := "OVERALL PERFORMANCE SUMMARY"
	fmt.Fprintf(w, "\n%s\n%s\n", title, strings.Repeat("=", len(title)))

	s := res.Summary
	if s == nil {
		_, err := fmt.Fprintln(w, "No successful comparisons available.")
		return err
	}

	a, b := bench.DisplayName(s.First.Algorithm), bench.DisplayName(s.Second.Algorithm)
	header := []string{"Metric", a, b, "Winner"}
	rows := [][]string{
		{"Average Time (s)", fmt.Sprintf("%.6f", s.First.AvgTimeSec), fmt.Sprintf("%.6f", s.Second.AvgTimeSec), bench.DisplayName(s.TimeWinner)},
		{"Average Memory (KB)", kb(s.First.AvgMemDeltaBytes), kb(s.Second.AvgMemDeltaBytes), bench.DisplayName(s.MemWinner)},
		{"Wins", strconv.Itoa(s.First.Wins), strconv.Itoa(s.Second.Wins), bench.DisplayName(s.WinsWinner)},
		{"Win Rate", fmt.Sprintf("%.1f%%", s.First.WinRate), fmt.Sprintf("%.1f%%", s.Second.WinRate), bench.DisplayName(s.WinsWinner)},
	}
	if err := writeGrid(w, header, rows); err != nil {
		return err
	}
	return Insights(w, s)
}

func Insights(w io.Writer, s *bench.Summary) error {
	var sb strings.Builder
	sb.WriteString("\nKEY INSIGHTS:\n")
	sb.WriteString(strings.Repeat("-", 50))
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "%s is %.1f%% faster on average\n", bench.DisplayName(s.TimeWinner), s.TimeAdvantagePct)
	fmt.Fprintf(&sb, "%s uses %.1f%% less memory on average\n", bench.DisplayName(s.MemWinner), s.MemAdvantagePct)
	fmt.Fprintf(&sb, "%s wins: %d/%d comparisons\n", bench.DisplayName(s.First.Algorithm), s.First.Wins, s.Compared)
	fmt.Fprintf(&sb, "%s wins: %d/%d comparisons\n", bench.DisplayName(s.Second.Algorithm), s.Second.Wins, s.Compared)
	_, err := io.WriteString(w, sb.String())
	return err
}

// Full writes every table for res.
func Full(w io.Writer, res *bench.Results) error {
	title := "COMPREHENSIVE PERFORMANCE COMPARISON TABLES"
	fmt.Fprintf(w, "\n%s\n%s\n%s\n", strings.Repeat("=", 80), title, strings.Repeat("=", 80))
	if err := AllDatasets(w, res); err != nil {
		return err
	}
	if err := Categories(w, res); err != nil {
		return err
	}
	if !newTable(res).paired() {
		return nil
	}
	return Summary(w, res)
}
