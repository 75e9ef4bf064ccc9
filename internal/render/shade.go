package render

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
)

var (
	// Background is the sky-blue clear color.
	Background = color.RGBA{R: 135, G: 207, B: 235, A: 255}
	// CellColor is the unlit color of a full-life cell.
	CellColor = color.RGBA{R: 255, G: 0, B: 0, A: 255}
)

// faceLight gives each axis a fixed brightness so faces stay readable
// without a lighting model.
func faceLight(n mgl32.Vec3) float64 {
	switch {
	case n.Y() > 0.5:
		return 1.0
	case n.Y() < -0.5:
		return 0.45
	case n.X() > 0.5 || n.X() < -0.5:
		return 0.8
	default:
		return 0.65
	}
}

// Shade returns the fill color of a face with outward normal n belonging to
// a cell in the given state. Decaying cells fade toward the background.
func Shade(n mgl32.Vec3, state, full uint8) color.RGBA {
	light := faceLight(n)
	lit := color.RGBA{
		R: uint8(float64(CellColor.R)*light + 0.5),
		G: uint8(float64(CellColor.G)*light + 0.5),
		B: uint8(float64(CellColor.B)*light + 0.5),
		A: 255,
	}
	if full == 0 || state >= full {
		return lit
	}
	fade := 0.7 * (1 - float64(state)/float64(full))
	return blendColors(lit, Background, fade)
}

func blendColors(base, overlay color.RGBA, overlayWeight float64) color.RGBA {
	if overlayWeight <= 0 {
		return base
	}
	if overlayWeight >= 1 {
		return overlay
	}
	w := overlayWeight
	inv := 1 - w
	mix := func(a, b uint8) uint8 { return uint8(float64(a)*inv + float64(b)*w + 0.5) }
	return color.RGBA{
		R: mix(base.R, overlay.R),
		G: mix(base.G, overlay.G),
		B: mix(base.B, overlay.B),
		A: mix(base.A, overlay.A),
	}
}
