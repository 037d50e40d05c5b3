package main

import (
	"context"
	"flag"
	"log"
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/google/subcommands"
)

func main() {
	var (
		cpuProfile = flag.String("cpuprofile", "", "write cpu profile to `file`")
		memProfile = flag.String("memprofile", "", "write memory profile to `file`")
	)

	log.SetPrefix("sortbench: ")
	log.SetFlags(0)

	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")
	subcommands.Register(new(genCmd), "datasets")
	subcommands.Register(new(runCmd), "")
	subcommands.Register(new(sortCmd), "")
	subcommands.Register(new(reportCmd), "")
	subcommands.ImportantFlag("cpuprofile")
	subcommands.ImportantFlag("memprofile")

	flag.Parse()

	ret := 0
	func() {
		if *cpuProfile != "" {
			f, err := os.Create(*cpuProfile)
			if err != nil {
				log.Fatal("could not create CPU profile: ", err)
			}
			defer f.Close()
			if err := pprof.StartCPUProfile(f); err != nil {
				log.Fatal("could not start CPU profile: ", err)
			}
			defer pprof.StopCPUProfile()
		}

		ret = int(subcommands.Execute(context.Background()))

		if *memProfile != "" {
			f, err := os.Create(*memProfile)
			if err != nil {
				log.Fatal("could not create memory profile: ", err)
			}
			defer f.Close()
			runtime.GC()
			if err := pprof.WriteHeapProfile(f); err != nil {
				log.Fatal("could not write memory profile: ", err)
			}
		}
	}()

	os.Exit(ret)
}
