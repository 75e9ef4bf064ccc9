//go:build ebiten

package ui

import (
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"voxlife/internal/core"
)

const (
	lineHeight = 14
	panelPad   = 8
)

// HUD renders the parameter panel on the left of the view and lets the
// arrow keys adjust the live controls.
type HUD struct {
	src      Source
	width    int
	controls []core.ParameterControl
	selected int
	Paused   bool

	intSetter  core.IntParameterSetter
	boolSetter core.BoolParameterSetter

	pixel *ebiten.Image
}

// NewHUD constructs a HUD for src with the given panel width.
func NewHUD(src Source, width int) *HUD {
	h := &HUD{src: src, width: width}
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)
	if p, ok := src.(core.ParameterControlsProvider); ok {
		h.controls = p.ParameterControls()
	}
	if s, ok := src.(core.IntParameterSetter); ok {
		h.intSetter = s
	}
	if s, ok := src.(core.BoolParameterSetter); ok {
		h.boolSetter = s
	}
	return h
}

// Update handles control selection and adjustment.
func (h *HUD) Update() {
	if h == nil || len(h.controls) == 0 {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		h.selected = (h.selected + 1) % len(h.controls)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		h.selected = (h.selected + len(h.controls) - 1) % len(h.controls)
	}
	delta := 0
	if inpututil.IsKeyJustPressed(ebiten.KeyRight) {
		delta = 1
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyLeft) {
		delta = -1
	}
	if delta == 0 {
		return
	}
	ctrl := h.controls[h.selected]
	current, ok := h.src.Parameters().Lookup(ctrl.Key)
	if !ok {
		return
	}
	switch ctrl.Type {
	case core.ParamTypeInt:
		if h.intSetter == nil {
			return
		}
		if v, ok := nudge(ctrl, current.Value, delta); ok {
			h.intSetter.SetIntParameter(ctrl.Key, v)
		}
	case core.ParamTypeBool:
		if h.boolSetter == nil {
			return
		}
		if v, err := strconv.ParseBool(current.Value); err == nil {
			h.boolSetter.SetBoolParameter(ctrl.Key, !v)
		}
	}
}

// Draw paints the panel over the left edge of screen.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil {
		return
	}
	lines := Lines(h.src.Parameters(), h.src.Stats(), h.controls, h.selected, h.Paused)
	height := len(lines)*lineHeight + 2*panelPad

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(h.width), float64(height))
	op.ColorScale.ScaleWithColor(color.RGBA{A: 160})
	screen.DrawImage(h.pixel, op)

	for i, line := range lines {
		text.Draw(screen, line, basicfont.Face7x13, panelPad, panelPad+(i+1)*lineHeight-3, color.White)
	}
}
