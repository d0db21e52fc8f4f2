//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"growfield/internal/core"
	"growfield/internal/sims/growth"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type statsProvider interface {
	Stats() growth.Stats
}

// Overlay prints frame rate, tick rate and population in the top-left corner.
// F toggles it.
type Overlay struct {
	sim     core.Sim
	visible bool
	lines   []string
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim) *Overlay {
	return &Overlay{sim: sim, visible: true}
}

// Update refreshes the text shown by the overlay.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		o.visible = !o.visible
	}
	if !o.visible {
		return
	}
	o.lines = append(o.lines[:0], fmt.Sprintf("FPS: %.0f  TPS: %.0f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	if p, ok := o.sim.(statsProvider); ok {
		s := p.Stats()
		o.lines = append(o.lines, fmt.Sprintf("tick %d  population %d", s.Ticks, s.Population))
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.visible {
		return
	}
	face := basicfont.Face7x13
	for i, line := range o.lines {
		text.Draw(screen, line, face, 6, 14+i*14, color.Black)
	}
}
