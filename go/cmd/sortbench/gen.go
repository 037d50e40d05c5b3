package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"

	"github.com/google/subcommands"
	"github.com/uluyol/sortbench/go/bench"
	"github.com/uluyol/sortbench/go/datasets"
)

func generate(c bench.Config, dir string) ([]string, error) {
	if c.Generate == nil {
		return nil, errors.New("config has no generate section")
	}
	if err := c.Generate.Validate(); err != nil {
		return nil, fmt.Errorf("invalid generate config: %w", err)
	}
	return datasets.WriteAll(dir, c.Generate.Enumerate())
}

type genCmd struct {
	configPath string
	dir        string
	ov         *overrides
}

func (*genCmd) Name() string     { return "gen" }
func (*genCmd) Synopsis() string { return "write sorted, reverse and random dataset files" }
func (*genCmd) Usage() string    { return "" }

func (c *genCmd) SetFlags(fs *flag.FlagSet) {
	c.ov = newOverrides()
	fs.StringVar(&c.configPath, "c", "", "path to config (defaults are used if empty)")
	fs.StringVar(&c.dir, "dir", "datasets", "directory to write datasets to")
	fs.Var(&c.ov.sizes, "sizes", "comma-separated dataset sizes overriding the config")
}

func (c *genCmd) Execute(ctx context.Context, fs *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	log.SetPrefix("sortbench gen: ")
	config, err := loadConfig(c.configPath)
	if err != nil {
		log.Fatal(err)
	}
	c.ov.apply(&config)
	paths, err := generate(config, c.dir)
	if err != nil {
		log.Fatal(err)
	}
	for _, p := range paths {
		log.Printf("wrote %s", p)
	}
	return subcommands.ExitSuccess
}

var _ subcommands.Command = new(genCmd)
