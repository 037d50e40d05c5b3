package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/google/subcommands"
	"github.com/uluyol/sortbench/go/bench"
	"github.com/uluyol/sortbench/go/report"
)

type reportCmd struct {
	inPath string
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "print tables from a saved results file" }
func (*reportCmd) Usage() string    { return "" }

func (c *reportCmd) SetFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.inPath, "in", bench.DefaultResultsFile, "results file to read")
}

func (c *reportCmd) Execute(ctx context.Context, fs *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	log.SetPrefix("sortbench report: ")
	res, err := bench.ReadResults(os.DirFS(filepath.Dir(c.inPath)), filepath.Base(c.inPath))
	if err != nil {
		log.Fatal(err)
	}
	if err := report.Full(os.Stdout, res); err != nil {
		log.Fatal(err)
	}
	return subcommands.ExitSuccess
}

var _ subcommands.Command = new(reportCmd)
