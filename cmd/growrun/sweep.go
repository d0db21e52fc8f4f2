package main

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"sync"

	"growfield/internal/field"
	"growfield/internal/sims/growth"
)

type scenarioResult struct {
	chance     float64
	seed       int64
	population int
	counts     map[field.Kind]int
	coverage   float64
}

type job struct {
	chance float64
	seed   int64
}

// runScenario steps a fresh world for the given number of ticks and checks
// the field's index before reporting.
func runScenario(cfg growth.Config, seed int64, ticks int) (scenarioResult, error) {
	world := growth.NewWithConfig(cfg)
	world.Reset(seed)
	for i := 0; i < ticks; i++ {
		world.Step()
	}
	if err := world.Err(); err != nil {
		return scenarioResult{}, err
	}
	f := world.Field()
	if err := f.Verify(); err != nil {
		return scenarioResult{}, fmt.Errorf("seed %d: %w", seed, err)
	}
	// Drain so long sweeps do not hold every change in memory.
	f.DrainChanges()

	occupied := 0
	for y := 0; y < f.Height(); y++ {
		for x := 0; x < f.Width(); x++ {
			if !f.IsEmpty(x, y) {
				occupied++
			}
		}
	}
	return scenarioResult{
		chance:     cfg.SpawnChance,
		seed:       seed,
		population: f.Len(),
		counts:     f.Counts(),
		coverage:   float64(occupied) / float64(f.Width()*f.Height()),
	}, nil
}

func parseChances(s string) ([]float64, error) {
	var out []float64
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.ParseFloat(part, 64)
		if err != nil || v < 0 || v > 1 {
			return nil, fmt.Errorf("invalid spawn chance %q", part)
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no spawn chances in %q", s)
	}
	return out, nil
}

type sweepSummary struct {
	chance       float64
	runs         int
	meanPop      float64
	meanCoverage float64
	failures     int
}

func runSweep(out io.Writer, base growth.Config, chances []float64, firstSeed int64, seeds, workers, ticks int) []sweepSummary {
	if seeds <= 0 {
		seeds = 1
	}
	if workers <= 0 {
		workers = 1
	}
	fmt.Fprintf(out, "Sweeping %d spawn chances x %d seeds (%d workers, %d ticks)\n", len(chances), seeds, workers, ticks)

	jobs := make(chan job)
	type outcome struct {
		res scenarioResult
		job job
		err error
	}
	results := make(chan outcome)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				cfg := base
				cfg.SpawnChance = j.chance
				cfg.Verbose = false
				res, err := runScenario(cfg, j.seed, ticks)
				results <- outcome{res: res, job: j, err: err}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, c := range chances {
			for s := 0; s < seeds; s++ {
				jobs <- job{chance: c, seed: firstSeed + int64(s)}
			}
		}
		close(jobs)
	}()

	byChance := map[float64]*sweepSummary{}
	for o := range results {
		sum, ok := byChance[o.job.chance]
		if !ok {
			sum = &sweepSummary{chance: o.job.chance}
			byChance[o.job.chance] = sum
		}
		if o.err != nil {
			sum.failures++
			fmt.Fprintf(out, "chance %.3f seed %d failed: %v\n", o.job.chance, o.job.seed, o.err)
			continue
		}
		sum.runs++
		sum.meanPop += float64(o.res.population)
		sum.meanCoverage += o.res.coverage
	}

	summaries := make([]sweepSummary, 0, len(byChance))
	for _, sum := range byChance {
		if sum.runs > 0 {
			sum.meanPop /= float64(sum.runs)
			sum.meanCoverage /= float64(sum.runs)
		}
		summaries = append(summaries, *sum)
	}
	sort.Slice(summaries, func(i, j int) bool { return summaries[i].chance < summaries[j].chance })

	for _, s := range summaries {
		fmt.Fprintf(out, "chance=%.3f runs=%d population=%.1f coverage=%.1f%% failures=%d\n",
			s.chance, s.runs, s.meanPop, 100*s.meanCoverage, s.failures)
	}
	return summaries
}
