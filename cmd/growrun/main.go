// Command growrun advances a growth world without a window and reports the
// resulting population. With -sweep it runs every spawn chance against
// several seeds in parallel; each world is still stepped by one goroutine.
//
// Profiling:
//
//	go run ./cmd/growrun -ticks 20000 -profile cpu
//	go tool pprof -http=":8000" ./cpu.pprof
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"growfield/internal/app"
	"growfield/internal/field"
	"growfield/internal/sims/growth"

	"github.com/pkg/profile"
)

func main() {
	ticks := flag.Int("ticks", 1000, "ticks to simulate")
	seed := flag.Int64("seed", 42, "seed for the run (first seed of a sweep)")
	sweep := flag.String("sweep", "", "comma-separated spawn chances to compare, e.g. 0.01,0.05,0.1")
	seeds := flag.Int("seeds", 4, "seeds per spawn chance in sweep mode")
	workers := flag.Int("workers", runtime.NumCPU(), "parallel runs in sweep mode")
	mode := flag.String("profile", "", "profile the run: cpu, mem or allocs")
	profilePath := flag.String("profile-path", ".", "directory for profile output")
	var opts app.KeyValues
	flag.Var(&opts, "set", "growth option in key=value form (repeatable)")
	flag.Parse()

	if p := startProfile(*mode, *profilePath); p != nil {
		defer p.Stop()
	}

	cfg := growth.FromMap(opts)
	if *sweep != "" {
		chances, err := parseChances(*sweep)
		if err != nil {
			log.Fatal(err)
		}
		runSweep(os.Stdout, cfg, chances, *seed, *seeds, *workers, *ticks)
		return
	}

	start := time.Now()
	res, err := runScenario(cfg, *seed, *ticks)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%dx%d field, seed %d, spawn chance %.3f, %d ticks in %s\n",
		cfg.Width, cfg.Height, *seed, cfg.SpawnChance, *ticks, time.Since(start).Round(time.Millisecond))
	fmt.Printf("population %d (hearts %d, veins %d, zygotes %d), coverage %.1f%%\n",
		res.population, res.counts[field.KindHeart], res.counts[field.KindVein], res.counts[field.KindZyg], 100*res.coverage)
}

func startProfile(mode, path string) interface{ Stop() } {
	var kind func(*profile.Profile)
	switch mode {
	case "":
		return nil
	case "cpu":
		kind = profile.CPUProfile
	case "mem":
		kind = profile.MemProfile
	case "allocs":
		kind = profile.MemProfileAllocs
	default:
		log.Fatalf("unknown profile mode %q", mode)
	}
	return profile.Start(kind, profile.ProfilePath(path), profile.NoShutdownHook)
}
