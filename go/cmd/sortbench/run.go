package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/google/subcommands"
	"github.com/uluyol/sortbench/go/bench"
	"github.com/uluyol/sortbench/go/datasets"
	"github.com/uluyol/sortbench/go/report"
	"github.com/uluyol/sortbench/go/stats"
)

// loadDatasets reads every dataset in dir, generating them from the
// config first if there are none.
func loadDatasets(c bench.Config, dir string) ([]datasets.Dataset, error) {
	fsys := os.DirFS(dir)
	names, err := datasets.Discover(fsys)
	if errors.Is(err, datasets.ErrNoDatasets) && c.Generate != nil {
		log.Printf("no datasets in %s, generating", dir)
		if _, err := generate(c, dir); err != nil {
			return nil, err
		}
		names, err = datasets.Discover(fsys)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find datasets in %s: %w", dir, err)
	}
	return datasets.LoadAll(fsys, names)
}

type runCmd struct {
	configPath  string
	dir         string
	outPath     string
	recordsPath string
	ov          *overrides
}

func (*runCmd) Name() string     { return "run" }
func (*runCmd) Synopsis() string { return "benchmark every algorithm on every dataset" }
func (*runCmd) Usage() string    { return "" }

func (c *runCmd) SetFlags(fs *flag.FlagSet) {
	c.ov = newOverrides()
	fs.StringVar(&c.configPath, "c", "", "path to config (defaults are used if empty)")
	fs.StringVar(&c.dir, "dir", "datasets", "directory of datasets")
	fs.StringVar(&c.outPath, "o", bench.DefaultResultsFile, "path to write results")
	fs.StringVar(&c.recordsPath, "records", "", "if set, write every measurement as a JSON line to `file`")
	fs.Var(&c.ov.algos, "algos", "comma-separated algorithms to run")
	fs.IntVar(&c.ov.runs, "runs", 0, "number of runs per algorithm and dataset (0 keeps the config value)")
	fs.StringVar(&c.ov.pivot, "pivot", "", pivotUsage())
	fs.StringVar(&c.ov.mem, "mem", "", memUsage())
}

// benchmark runs config over the datasets in dir, streaming every
// measurement to recordsPath if it is set.
func benchmark(config bench.Config, dir, recordsPath string) (*bench.Results, error) {
	runner, err := bench.NewRunner(config)
	if err != nil {
		return nil, err
	}
	sets, err := loadDatasets(config, dir)
	if err != nil {
		return nil, err
	}

	var records *os.File
	if recordsPath != "" {
		records, err = os.Create(recordsPath)
		if err != nil {
			return nil, fmt.Errorf("failed to create records file: %w", err)
		}
		runner.Recorder = stats.NewRecorder(records)
	}
	res := runner.AnalyzeAll(sets)
	if records != nil {
		if err := records.Close(); err != nil {
			return nil, fmt.Errorf("failed to close records file: %w", err)
		}
	}
	return res, nil
}

func (c *runCmd) Execute(ctx context.Context, fs *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	log.SetPrefix("sortbench run: ")
	config, err := loadConfig(c.configPath)
	if err != nil {
		log.Fatal(err)
	}
	c.ov.apply(&config)

	res, err := benchmark(config, c.dir, c.recordsPath)
	if err != nil {
		log.Fatal(err)
	}
	if err := report.Full(os.Stdout, res); err != nil {
		log.Fatal(err)
	}
	if err := bench.WriteResults(c.outPath, res); err != nil {
		log.Fatal(err)
	}
	log.Printf("results saved to %s", c.outPath)
	return subcommands.ExitSuccess
}

var _ subcommands.Command = new(runCmd)
