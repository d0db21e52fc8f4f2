//go:build ebiten

package app

import (
	"image/color"
	"time"

	"growfield/internal/core"
	"growfield/internal/render"
	"growfield/internal/sims/growth"
	"growfield/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type changeFeed interface {
	Epoch() uint64
	Changes() []growth.CellChange
}

type paletteProvider interface {
	Palette() []color.RGBA
}

// Game adapts a core simulation to the ebiten.Game interface. Simulation
// ticks follow a FixedStep clock, so the logical rate does not depend on the
// frame rate.
type Game struct {
	sim   core.Sim
	clock *core.FixedStep

	glyphs  *render.GlyphCanvas
	painter *render.GridPainter
	palette []color.RGBA

	overlay *ui.Overlay
	hud     *ui.HUD

	scale    int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, cfg *Config) *Game {
	size := sim.Size()
	g := &Game{
		sim:     sim,
		clock:   core.NewFixedStep(cfg.TPS),
		overlay: ui.NewOverlay(sim),
		hud:     ui.NewHUD(sim, cfg.HUDWidth),
		scale:   cfg.Scale,
		seed:    cfg.Seed,
		palette: []color.RGBA{{A: 255}, {R: 255, G: 255, B: 255, A: 255}},
	}
	if p, ok := sim.(paletteProvider); ok {
		g.palette = p.Palette()
	}
	if _, ok := sim.(changeFeed); ok && cfg.Mode == ModeGlyph {
		g.glyphs = render.NewGlyphCanvas(size.W, size.H, cfg.Scale, g.palette)
	} else {
		g.painter = render.NewGridPainter(size.W, size.H)
	}
	return g
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.clock.Reset()
	g.tickOnce = false
}

// Update handles input and runs every simulation tick that has come due.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
		g.clock.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	g.overlay.Update()
	g.hud.Update(g.viewWidth())

	if g.paused {
		if g.tickOnce {
			g.sim.Step()
			g.tickOnce = false
		}
		return nil
	}
	for n := g.clock.Due(); n > 0; n-- {
		g.sim.Step()
	}
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.glyphs != nil {
		feed := g.sim.(changeFeed)
		epoch := feed.Epoch()
		cells := g.sim.Cells()
		g.glyphs.Sync(epoch, cells, feed.Changes())
		g.glyphs.Draw(screen)
	} else {
		g.painter.Blit(screen, g.sim.Cells(), g.palette, g.scale)
	}
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.viewWidth(), g.sim.Size().H*g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.viewWidth() + g.hud.Width(), g.sim.Size().H * g.scale
}

func (g *Game) viewWidth() int { return g.sim.Size().W * g.scale }
