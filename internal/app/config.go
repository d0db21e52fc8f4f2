package app

import (
	"flag"
	"fmt"
	"strings"
)

// Render modes accepted by the -mode flag.
const (
	ModeGlyph = "glyph"
	ModePixel = "pixel"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Sim      string
	Mode     string
	Scale    int
	TPS      int
	Seed     int64
	HUDWidth int
	Set      KeyValues
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "growth", Mode: ModeGlyph, Scale: 15, TPS: 15, Seed: 42, HUDWidth: 200}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.StringVar(&c.Mode, "mode", c.Mode, "render mode: glyph or pixel")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per grid cell")
	fs.IntVar(&c.TPS, "tps", c.TPS, "simulation ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "parameter panel width in pixels, 0 hides it")
	fs.Var(&c.Set, "set", "simulation option in key=value form (repeatable)")
}

// Validate rejects settings the application cannot run with.
func (c *Config) Validate() error {
	if c.Mode != ModeGlyph && c.Mode != ModePixel {
		return fmt.Errorf("unknown render mode %q", c.Mode)
	}
	if c.Scale <= 0 {
		return fmt.Errorf("scale must be positive, got %d", c.Scale)
	}
	if c.TPS <= 0 {
		return fmt.Errorf("tps must be positive, got %d", c.TPS)
	}
	return nil
}

// KeyValues collects repeated key=value flags into a map.
type KeyValues map[string]string

func (kv *KeyValues) String() string {
	if kv == nil || *kv == nil {
		return ""
	}
	parts := make([]string, 0, len(*kv))
	for k, v := range *kv {
		parts = append(parts, k+"="+v)
	}
	return strings.Join(parts, ",")
}

// Set parses a single key=value pair.
func (kv *KeyValues) Set(value string) error {
	key, val, ok := strings.Cut(value, "=")
	if !ok || key == "" {
		return fmt.Errorf("expected key=value, got %q", value)
	}
	if *kv == nil {
		*kv = KeyValues{}
	}
	(*kv)[key] = val
	return nil
}
