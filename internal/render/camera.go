// Package render projects voxel meshes for the window front ends.
package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"voxlife/internal/core"
)

// Orbit circles a center point in the XZ plane at a fixed height.
type Orbit struct {
	Center mgl32.Vec3
	// Speed is the angular velocity in radians per second; negative values
	// orbit clockwise seen from above.
	Speed    float64
	Distance float32
	Height   float32
	// LookAtPoint keeps the camera aimed at Center; otherwise it looks down -Z.
	LookAtPoint bool

	FovY      float32 // degrees
	Near, Far float32
}

// DefaultOrbit frames a grid of the given size.
func DefaultOrbit(s core.Size3) Orbit {
	extent := float32(max(s.W, s.H, s.D))
	return Orbit{
		Center:      mgl32.Vec3{float32(s.W) / 2, float32(s.H) / 2, float32(s.D) / 2},
		Speed:       -0.4,
		Distance:    extent * 2,
		Height:      extent * 0.9,
		LookAtPoint: true,
		FovY:        45,
		Near:        0.1,
		Far:         extent * 10,
	}
}

// Eye returns the camera position t seconds after start.
func (o Orbit) Eye(t float64) mgl32.Vec3 {
	angle := t * o.Speed
	return o.Center.Add(mgl32.Vec3{
		float32(math.Sin(angle)) * o.Distance,
		o.Height,
		float32(math.Cos(angle)) * o.Distance,
	})
}

// View returns the world-to-camera matrix at time t.
func (o Orbit) View(t float64) mgl32.Mat4 {
	eye := o.Eye(t)
	target := eye.Add(mgl32.Vec3{0, 0, -1})
	if o.LookAtPoint {
		target = o.Center
	}
	return mgl32.LookAtV(eye, target, mgl32.Vec3{0, 1, 0})
}

// Projection returns the perspective matrix for the given aspect ratio.
func (o Orbit) Projection(aspect float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(o.FovY), aspect, o.Near, o.Far)
}

// ViewProjection combines View and Projection.
func (o Orbit) ViewProjection(t float64, aspect float32) mgl32.Mat4 {
	return o.Projection(aspect).Mul4(o.View(t))
}

// Project maps p to screen pixels for a w×h target with y pointing down.
// ok is false for points behind the camera.
func Project(vp mgl32.Mat4, p mgl32.Vec3, w, h float32) (sx, sy, depth float32, ok bool) {
	clip := vp.Mul4x1(p.Vec4(1))
	if clip.W() <= 0 {
		return 0, 0, 0, false
	}
	ndc := clip.Vec3().Mul(1 / clip.W())
	sx = (ndc.X() + 1) / 2 * w
	sy = (1 - ndc.Y()) / 2 * h
	return sx, sy, ndc.Z(), true
}
