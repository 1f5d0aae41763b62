package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"

	"fog-explore/internal/explore"
	"fog-explore/internal/walk"
	"fog-explore/pkg/fog"

	"github.com/sirupsen/logrus"
)

type paramSet struct {
	vision float64
	fade   float64
}

func (p paramSet) String() string {
	return fmt.Sprintf("vision=%.2f fade=%.2f", p.vision, p.fade)
}

type scenarioResult struct {
	params   paramSet
	coverage fog.Coverage
	ticks    int
	err      error
}

// grid returns every (vision, fade) combination in input order.
func grid(visions, fades []float64) []paramSet {
	sets := make([]paramSet, 0, len(visions)*len(fades))
	for _, v := range visions {
		for _, f := range fades {
			sets = append(sets, paramSet{vision: v, fade: f})
		}
	}
	return sets
}

// parseFloats reads a comma separated list such as "1,2.5,4".
func parseFloats(s string) ([]float64, error) {
	var out []float64
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, fmt.Errorf("parse %q: %w", part, err)
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("empty list %q", s)
	}
	return out, nil
}

// sweep runs every set on a pool of workers and returns the results sorted
// best first. With more than one explorer each set is a party run.
func sweep(base explore.Config, sets []paramSet, ticks, workers, explorers int, log logrus.FieldLogger) []scenarioResult {
	if workers < 1 {
		workers = 1
	}
	jobs := make(chan paramSet)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for params := range jobs {
				if explorers > 1 {
					results <- runParty(base, params, ticks, explorers, log)
				} else {
					results <- runScenario(base, params, ticks, log)
				}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, params := range sets {
			jobs <- params
		}
		close(jobs)
	}()

	all := make([]scenarioResult, 0, len(sets))
	for res := range results {
		all = append(all, res)
	}
	sortResults(all)
	return all
}

func sortResults(all []scenarioResult) {
	sort.Slice(all, func(i, j int) bool {
		a, b := all[i], all[j]
		if (a.err == nil) != (b.err == nil) {
			return a.err == nil
		}
		if a.coverage.Revealed != b.coverage.Revealed {
			return a.coverage.Revealed > b.coverage.Revealed
		}
		if a.coverage.Touched != b.coverage.Touched {
			return a.coverage.Touched > b.coverage.Touched
		}
		if a.params.vision != b.params.vision {
			return a.params.vision < b.params.vision
		}
		return a.params.fade < b.params.fade
	})
}

func runScenario(base explore.Config, params paramSet, ticks int, log logrus.FieldLogger) scenarioResult {
	cfg := base
	cfg.VisionRadius = params.vision
	cfg.FadeWidth = params.fade

	res := scenarioResult{params: params}
	s, err := explore.NewSession(cfg, log)
	if err != nil {
		res.err = err
		return res
	}
	dt := 1 / float64(max(1, cfg.TPS))
	for i := 0; i < ticks; i++ {
		s.Step(dt)
	}
	res.ticks = s.Ticks()
	res.coverage = s.Engine().Coverage()
	return res
}

// runParty sends several explorers over one shared mask. Each explorer runs
// on its own goroutine with its own tracker, seeded base.Seed+i.
func runParty(base explore.Config, params paramSet, ticks, explorers int, log logrus.FieldLogger) scenarioResult {
	cfg := base
	cfg.VisionRadius = params.vision
	cfg.FadeWidth = params.fade

	res := scenarioResult{params: params}
	factory, ok := walk.Lookup(cfg.Walker)
	if !ok {
		res.err = fmt.Errorf("unknown walker %q", cfg.Walker)
		return res
	}
	surface := cfg.Surface()
	engine, err := fog.New(surface, cfg.Resolution, cfg.VisionRadius, cfg.FadeWidth,
		fog.WithLogger(log.WithField("component", "fog")))
	if err != nil {
		res.err = err
		return res
	}
	shared := fog.NewShared(engine)

	opts := map[string]string{}
	for k, v := range cfg.WalkerOpts {
		opts[k] = v
	}
	if cfg.Speed > 0 {
		opts["speed"] = fmt.Sprint(cfg.Speed)
	}

	dt := 1 / float64(max(1, cfg.TPS))
	var wg sync.WaitGroup
	for i := 0; i < explorers; i++ {
		w := factory(explore.WalkBounds(surface), opts)
		w.Reset(cfg.Seed + int64(i))
		tr := fog.NewTracker(shared, cfg.Epsilon)
		wg.Add(1)
		go func() {
			defer wg.Done()
			tr.Track(w.Position())
			for t := 0; t < ticks; t++ {
				w.Step(dt)
				tr.Track(w.Position())
			}
		}()
	}
	wg.Wait()

	res.ticks = ticks
	res.coverage = shared.Coverage()
	return res
}
