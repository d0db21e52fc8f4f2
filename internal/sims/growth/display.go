package growth

import (
	"image/color"

	"growfield/internal/field"
)

// CellChange asks a renderer to repaint one cell with the given kind.
type CellChange struct {
	X, Y int
	Kind field.Kind
}

// visual remembers where an entity was last drawn so the cell it vacates can
// be repainted.
type visual struct {
	x, y int
}

var growthPalette = []color.RGBA{
	field.KindNone:  {R: 255, G: 255, B: 255, A: 255},
	field.KindHeart: {R: 200, G: 30, B: 45, A: 255},
	field.KindVein:  {R: 140, G: 20, B: 70, A: 255},
	field.KindZyg:   {R: 30, G: 140, B: 50, A: 255},
}

// Palette exposes the color palette used for rendering the display buffer.
func (w *World) Palette() []color.RGBA {
	return growthPalette
}

// Epoch changes whenever Reset discards the previous field, telling
// incremental renderers to start from a blank canvas.
func (w *World) Epoch() uint64 { return w.epoch }

// Changes returns the cells that need repainting since the previous call,
// at most one entry per cell.
func (w *World) Changes() []CellChange {
	w.sync()
	out := w.pending
	w.pending = nil
	clear(w.queued)
	return out
}

// sync drains the field's change feed into the display buffer.
func (w *World) sync() {
	if w.field == nil {
		return
	}
	for _, uid := range w.field.DrainChanges() {
		e, err := w.field.Get(uid)
		if err != nil {
			continue
		}
		if prev, ok := w.visuals[uid]; ok && (prev.x != e.X || prev.y != e.Y) {
			w.repaint(prev.x, prev.y)
		}
		w.visuals[uid] = visual{x: e.X, y: e.Y}
		w.repaint(e.X, e.Y)
	}
}

func (w *World) repaint(x, y int) {
	kind := w.topKind(x, y)
	w.display.Set(x, y, uint8(kind))
	i := w.display.Index(x, y)
	if slot := w.queued[i]; slot > 0 {
		w.pending[slot-1].Kind = kind
		return
	}
	w.pending = append(w.pending, CellChange{X: x, Y: y, Kind: kind})
	w.queued[i] = len(w.pending)
}

// topKind returns the kind of the newest entity at (x, y), or KindNone for an
// empty cell.
func (w *World) topKind(x, y int) field.Kind {
	occupants := w.field.At(x, y)
	if len(occupants) == 0 {
		return field.KindNone
	}
	top := occupants[0]
	for _, uid := range occupants[1:] {
		if uid > top {
			top = uid
		}
	}
	e, err := w.field.Get(top)
	if err != nil {
		return field.KindNone
	}
	return e.Kind
}
