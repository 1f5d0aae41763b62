package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"fog-explore/internal/explore"
	"fog-explore/internal/logger"
)

func main() {
	log := logger.FromEnv()

	cfg := explore.DefaultConfig()
	cli := cfg
	cli.Bind(flag.CommandLine)
	configFile := flag.String("config", "", "YAML file with the base configuration")
	ticks := flag.Int("ticks", 1800, "ticks to simulate per scenario")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	visions := flag.String("visions", "1,2,3,4,6", "comma separated vision radii")
	fades := flag.String("fades", "0,0.5,1,2", "comma separated fade widths")
	explorers := flag.Int("explorers", 1, "explorers sharing one mask per scenario")
	top := flag.Int("top", 10, "results to print (0 prints all)")
	flag.Parse()

	if *configFile != "" {
		if err := cfg.LoadFile(*configFile); err != nil {
			log.WithError(err).Fatal("load config")
		}
	}
	// Flags given on the command line win over the file.
	fs := flag.NewFlagSet("base", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfg.Bind(fs)
	if err := fs.Parse(setFlags(flag.CommandLine, fs)); err != nil {
		log.WithError(err).Fatal("parse base flags")
	}

	vs, err := parseFloats(*visions)
	if err != nil {
		log.WithError(err).Fatal("visions")
	}
	fd, err := parseFloats(*fades)
	if err != nil {
		log.WithError(err).Fatal("fades")
	}

	sets := grid(vs, fd)
	fmt.Printf("Sweeping %d parameter sets (%d workers, %d ticks, %d x walker %s)\n", len(sets), *workers, *ticks, max(1, *explorers), cfg.Walker)

	quiet := logger.New(io.Discard, "error", "")
	start := time.Now()
	all := sweep(cfg, sets, *ticks, *workers, *explorers, quiet)
	elapsed := time.Since(start)

	n := len(all)
	if *top > 0 && *top < n {
		n = *top
	}
	fmt.Printf("\nTop %d results (elapsed %s):\n", n, elapsed.Round(time.Millisecond))
	for i := 0; i < n; i++ {
		res := all[i]
		if res.err != nil {
			fmt.Printf("%2d) %s error: %v\n", i+1, res.params, res.err)
			continue
		}
		fmt.Printf("%2d) revealed=%6.2f%% touched=%6.2f%% mean=%.3f ticks=%d %s\n",
			i+1, res.coverage.Revealed*100, res.coverage.Touched*100, res.coverage.Mean, res.ticks, res.params)
	}
	if len(all) > 0 && all[0].err != nil {
		os.Exit(1)
	}
}

// setFlags lists the flags explicitly given on from that into also defines,
// in -name=value form.
func setFlags(from, into *flag.FlagSet) []string {
	var args []string
	from.Visit(func(f *flag.Flag) {
		if into.Lookup(f.Name) != nil {
			args = append(args, "-"+f.Name+"="+f.Value.String())
		}
	})
	return args
}
