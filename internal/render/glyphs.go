//go:build ebiten

package render

import (
	"image"
	"image/color"

	"growfield/internal/field"
	"growfield/internal/sims/growth"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// GlyphCanvas draws one character per cell onto a persistent off-screen
// image. Only cells reported as changed are redrawn, so the cost of a frame
// follows the number of changes rather than the grid size.
type GlyphCanvas struct {
	w, h  int
	pitch int

	img     *ebiten.Image
	palette []color.RGBA
	epoch   uint64
	primed  bool
}

// NewGlyphCanvas allocates a canvas for a w x h grid drawn at pitch pixels
// per cell. palette supplies the background (index 0) and per-kind glyph
// colors.
func NewGlyphCanvas(w, h, pitch int, palette []color.RGBA) *GlyphCanvas {
	if pitch <= 0 {
		pitch = DefaultPitch
	}
	c := &GlyphCanvas{w: w, h: h, pitch: pitch, palette: palette}
	c.img = ebiten.NewImage(w*pitch, h*pitch)
	return c
}

// Sync brings the canvas up to date. A new epoch repaints every cell from
// cells; otherwise only changes are drawn.
func (c *GlyphCanvas) Sync(epoch uint64, cells []uint8, changes []growth.CellChange) {
	if !c.primed || epoch != c.epoch {
		c.img.Fill(c.background())
		for i, v := range cells {
			if field.Kind(v) == field.KindNone {
				continue
			}
			c.drawCell(i%c.w, i/c.w, field.Kind(v))
		}
		c.epoch = epoch
		c.primed = true
		return
	}
	for _, ch := range changes {
		c.drawCell(ch.X, ch.Y, ch.Kind)
	}
}

// Draw composites the canvas onto dst.
func (c *GlyphCanvas) Draw(dst *ebiten.Image) {
	dst.DrawImage(c.img, &ebiten.DrawImageOptions{})
}

// Size returns the canvas dimensions in pixels.
func (c *GlyphCanvas) Size() (int, int) { return c.w * c.pitch, c.h * c.pitch }

func (c *GlyphCanvas) background() color.Color {
	if len(c.palette) == 0 {
		return color.White
	}
	return c.palette[field.KindNone]
}

func (c *GlyphCanvas) foreground(kind field.Kind) color.Color {
	if int(kind) < len(c.palette) {
		return c.palette[kind]
	}
	return color.Black
}

func (c *GlyphCanvas) drawCell(x, y int, kind field.Kind) {
	if x < 0 || x >= c.w || y < 0 || y >= c.h {
		return
	}
	px, py := x*c.pitch, y*c.pitch
	rect := image.Rect(px, py, px+c.pitch, py+c.pitch)
	c.img.SubImage(rect).(*ebiten.Image).Fill(c.background())
	if kind == field.KindNone {
		return
	}

	face := basicfont.Face7x13
	glyph := Glyph(kind)
	bounds := text.BoundString(face, glyph)
	gx := px + (c.pitch-bounds.Dx())/2 - bounds.Min.X
	gy := py + (c.pitch-bounds.Dy())/2 - bounds.Min.Y
	text.Draw(c.img, glyph, face, gx, gy, c.foreground(kind))
}
