package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/google/subcommands"
	"github.com/uluyol/sortbench/go/bench"
	"github.com/uluyol/sortbench/go/datasets"
	"github.com/uluyol/sortbench/go/report"
	"github.com/uluyol/sortbench/go/stats"
)

// sortFile sorts the dataset at inPath once with the named algorithm.
func sortFile(config bench.Config, algName, inPath string) ([]int, stats.Record, error) {
	runner, err := bench.NewRunner(config)
	if err != nil {
		return nil, stats.Record{}, err
	}
	var alg bench.Algorithm
	found := false
	for _, a := range runner.Algorithms {
		if a.Name == algName {
			alg, found = a, true
		}
	}
	if !found {
		return nil, stats.Record{}, fmt.Errorf("algorithm %q not configured", algName)
	}

	data, err := datasets.Load(os.DirFS(filepath.Dir(inPath)), filepath.Base(inPath))
	if err != nil {
		return nil, stats.Record{}, err
	}
	var comparisons int64
	out, rec, err := runner.Meter.Measure(alg.Name, datasets.NameOf(inPath), alg.SortFunc(&comparisons), alg.Prepare(data))
	if err != nil {
		return nil, stats.Record{}, err
	}
	rec.Comparisons = comparisons
	if err := bench.Verify(data, out); err != nil {
		return nil, stats.Record{}, fmt.Errorf("%s produced bad output: %w", alg.Name, err)
	}
	return out, rec, nil
}

type sortCmd struct {
	alg     string
	inPath  string
	outPath string
	ov      *overrides
}

func (*sortCmd) Name() string     { return "sort" }
func (*sortCmd) Synopsis() string { return "sort one dataset file and print its measurement" }
func (*sortCmd) Usage() string    { return "" }

func (c *sortCmd) SetFlags(fs *flag.FlagSet) {
	c.ov = newOverrides()
	fs.StringVar(&c.alg, "algo", bench.AlgQuicksort, "algorithm to use")
	fs.StringVar(&c.inPath, "in", "", "dataset file to sort")
	fs.StringVar(&c.outPath, "out", "", "if set, write the sorted data here")
	fs.StringVar(&c.ov.pivot, "pivot", "", pivotUsage())
	fs.StringVar(&c.ov.mem, "mem", "", memUsage())
}

func (c *sortCmd) Execute(ctx context.Context, fs *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	log.SetPrefix("sortbench sort: ")
	if c.inPath == "" {
		log.Fatal("must set -in")
	}
	config := bench.DefaultConfig()
	config.Algorithms = []string{c.alg}
	config.Generate = nil
	c.ov.apply(&config)

	out, rec, err := sortFile(config, c.alg, c.inPath)
	if err != nil {
		log.Fatal(err)
	}
	report.FprintKVs(os.Stdout, fmt.Sprintf("%s on %s:", bench.DisplayName(rec.Algorithm), rec.Dataset), []report.KV{
		{Key: "elements", Verb: "%d", Val: rec.N},
		{Key: "elapsed", Verb: "%.6fs", Val: rec.ElapsedSec},
		{Key: "memory delta", Verb: "%.2f KB", Val: float64(rec.MemDeltaBytes) / 1024},
		{Key: "comparisons", Verb: "%d", Val: rec.Comparisons},
	})
	if c.outPath != "" {
		if err := datasets.Write(c.outPath, out); err != nil {
			log.Fatal(err)
		}
	}
	return subcommands.ExitSuccess
}

var _ subcommands.Command = new(sortCmd)
