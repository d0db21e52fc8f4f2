//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"math"
	"strconv"

	"growfield/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the parameter panel to the right of the simulation view. It
// lists every parameter the sim reports and adds -/+ buttons for the float
// controls it exposes.
type HUD struct {
	sim   core.Sim
	width int

	panel    *ebiten.Image
	snapshot core.ParameterSnapshot
	controls []hudControl
	setter   core.FloatParameterSetter
	offsetX  int
}

type hudControl struct {
	control   core.ParameterControl
	value     float64
	hasValue  bool
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

const (
	panelPadding = 10
	lineHeight   = 16
	buttonSize   = 14
	buttonGap    = 4
)

var (
	panelBackground = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	headingColor    = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	labelColor      = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	buttonColor     = color.RGBA{R: 54, G: 56, B: 64, A: 255}
)

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{sim: sim, width: width}
	if provider, ok := sim.(core.ParameterControlsProvider); ok {
		for _, ctrl := range provider.ParameterControls() {
			h.controls = append(h.controls, hudControl{control: ctrl})
		}
	}
	if setter, ok := sim.(core.FloatParameterSetter); ok {
		h.setter = setter
	}
	return h
}

// Width reports the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update refreshes the parameter snapshot and handles button clicks.
func (h *HUD) Update(offsetX int) {
	if h == nil {
		return
	}
	h.offsetX = offsetX
	if provider, ok := h.sim.(core.ParameterProvider); ok {
		h.snapshot = provider.Parameters()
	}
	for i := range h.controls {
		ctrl := &h.controls[i]
		p, ok := h.snapshot.Lookup(ctrl.control.Key)
		ctrl.hasValue = false
		if !ok {
			continue
		}
		if v, err := strconv.ParseFloat(p.Value, 64); err == nil {
			ctrl.value = v
			ctrl.hasValue = true
		}
	}
	h.handleInput()
}

func (h *HUD) handleInput() {
	if h.setter == nil || !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	pt := image.Pt(mx-h.offsetX, my)
	for i := range h.controls {
		ctrl := &h.controls[i]
		if !ctrl.hasValue {
			continue
		}
		switch {
		case pt.In(ctrl.minusRect):
			h.adjust(ctrl, -1)
		case pt.In(ctrl.plusRect):
			h.adjust(ctrl, 1)
		}
	}
}

func (h *HUD) adjust(ctrl *hudControl, direction float64) {
	step := ctrl.control.Step
	if step <= 0 {
		step = 0.01
	}
	target := ctrl.control.Clamp(ctrl.value + direction*step)
	// Snap to the step grid so repeated clicks do not drift.
	target = math.Round(target/step) * step
	if h.setter.SetFloatParameter(ctrl.control.Key, target) {
		ctrl.value = target
	}
}

// Draw paints the panel at offsetX with the given height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(panelBackground)

	face := basicfont.Face7x13
	y := panelPadding + lineHeight
	for i := range h.controls {
		ctrl := &h.controls[i]
		value := "--"
		if ctrl.hasValue {
			value = strconv.FormatFloat(ctrl.value, 'f', 2, 64)
		}
		text.Draw(h.panel, ctrl.control.Label+": "+value, face, panelPadding, y, labelColor)
		top := y - buttonSize + 3
		ctrl.plusRect = image.Rect(h.width-panelPadding-buttonSize, top, h.width-panelPadding, top+buttonSize)
		ctrl.minusRect = ctrl.plusRect.Sub(image.Pt(buttonSize+buttonGap, 0))
		h.drawButton(ctrl.minusRect, "-")
		h.drawButton(ctrl.plusRect, "+")
		y += lineHeight + buttonGap
	}
	for _, group := range h.snapshot.Groups {
		y += buttonGap
		text.Draw(h.panel, group.Name, face, panelPadding, y, headingColor)
		y += lineHeight
		for _, p := range group.Params {
			text.Draw(h.panel, "  "+p.Label+": "+p.Value, face, panelPadding, y, labelColor)
			y += lineHeight
		}
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawButton(rect image.Rectangle, label string) {
	h.panel.SubImage(rect).(*ebiten.Image).Fill(buttonColor)
	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2 - bounds.Min.X
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 - bounds.Min.Y
	text.Draw(h.panel, label, face, x, y, labelColor)
}
