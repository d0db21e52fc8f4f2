package growth

import (
	"log"
	"os"

	"growfield/internal/core"
	"growfield/internal/field"
)

// World adapts a field.Field and its growth rules to the core.Sim contract.
// The display buffer and the per-entity visual cache are rebuilt from the
// field's change feed, never by scanning the whole field.
type World struct {
	cfg Config

	field *field.Field
	sim   *field.Simulation

	display *core.ByteGrid
	visuals map[field.UID]visual
	pending []CellChange
	queued  []int // 1-based slot in pending per cell, 0 when not queued
	epoch   uint64

	last field.TickStats
	err  error
}

// New returns a growth world with the provided dimensions using defaults.
func New(w, h int) *World {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a growth world configured from the provided options.
// Call Reset before stepping it.
func NewWithConfig(cfg Config) *World {
	if cfg.Width <= 0 {
		cfg.Width = 1
	}
	if cfg.Height <= 0 {
		cfg.Height = 1
	}
	cfg.SeedX = clamp(cfg.SeedX, 0, cfg.Width-1)
	cfg.SeedY = clamp(cfg.SeedY, 0, cfg.Height-1)

	rules := field.Rules{SpawnChance: cfg.SpawnChance}
	if cfg.Verbose {
		rules.Logger = log.New(os.Stderr, "growth: ", log.LstdFlags)
	}
	return &World{
		cfg:     cfg,
		sim:     field.NewSimulation(rules),
		display: core.NewByteGrid(cfg.Width, cfg.Height),
		visuals: make(map[field.UID]visual),
		queued:  make([]int, cfg.Width*cfg.Height),
	}
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "growth" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.cfg.Width, H: w.cfg.Height} }

// Config returns the active configuration.
func (w *World) Config() Config { return w.cfg }

// Field exposes the underlying entity field.
func (w *World) Field() *field.Field { return w.field }

// Err returns the error that halted stepping, if any.
func (w *World) Err() error { return w.err }

// Reset discards every entity and plants the seed entity again. A zero seed
// falls back to the configured one.
func (w *World) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	f, err := field.New(w.cfg.Width, w.cfg.Height, core.NewRNG(effective).Source())
	if err != nil {
		w.err = err
		return
	}
	w.field = f
	w.sim = field.NewSimulation(w.sim.Rules)
	w.display.Clear()
	clear(w.visuals)
	w.pending = nil
	clear(w.queued)
	w.epoch++
	w.last = field.TickStats{}
	w.err = nil

	// The seed is created at the origin and then moved into place, the same
	// way spawned entities are.
	uid, err := w.field.Add(w.cfg.SeedKind, 0, 0)
	if err == nil {
		err = w.field.SetPosition(uid, w.cfg.SeedX, w.cfg.SeedY)
	}
	w.err = err
}

// Step advances the world by one tick.
func (w *World) Step() {
	if w.field == nil || w.err != nil {
		return
	}
	stats, err := w.sim.Tick(w.field)
	w.last = stats
	if err != nil {
		w.err = err
	}
}

// Cells exposes the display buffer: one field.Kind per cell.
func (w *World) Cells() []uint8 {
	w.sync()
	return w.display.Cells()
}

// Stats describes the world after the most recent tick.
type Stats struct {
	Ticks      uint64
	Population int
	Counts     map[field.Kind]int
	LastTick   field.TickStats
}

// Stats reports population and tick counters.
func (w *World) Stats() Stats {
	s := Stats{Ticks: w.sim.Ticks(), LastTick: w.last}
	if w.field != nil {
		s.Population = w.field.Len()
		s.Counts = w.field.Counts()
	}
	return s
}

func init() {
	core.Register("growth", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
