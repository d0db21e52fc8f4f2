package growth

import (
	"strconv"

	"growfield/internal/field"
)

// Config controls the growth world dimensions, its seed entity and the spawn
// probability shared by hearts and zygotes.
type Config struct {
	Width  int
	Height int

	Seed int64

	SeedKind field.Kind
	SeedX    int
	SeedY    int

	SpawnChance float64

	// Verbose logs every spawned entity.
	Verbose bool
}

// DefaultConfig returns the standard configuration: an 80x40 field with a
// single zygote at (6,6).
func DefaultConfig() Config {
	return Config{
		Width:       80,
		Height:      40,
		Seed:        42,
		SeedKind:    field.KindZyg,
		SeedX:       6,
		SeedY:       6,
		SpawnChance: field.DefaultSpawnChance,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Values that fail to parse keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["seed_kind"]; ok {
		if parsed, err := field.ParseKind(v); err == nil {
			c.SeedKind = parsed
		}
	}
	if v, ok := cfg["seed_x"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.SeedX = parsed
		}
	}
	if v, ok := cfg["seed_y"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.SeedY = parsed
		}
	}
	if v, ok := cfg["spawn_chance"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.SpawnChance = parsed
		}
	}
	if v, ok := cfg["verbose"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Verbose = parsed
		}
	}
	c.SeedX = clamp(c.SeedX, 0, c.Width-1)
	c.SeedY = clamp(c.SeedY, 0, c.Height-1)
	return c
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
