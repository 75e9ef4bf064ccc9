//go:build raylib

package rlview

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"voxlife/internal/mesh"
	"voxlife/internal/render"
)

// Viewer is a mesh.Sink that keeps the installed mesh as triangles for a
// raylib 3D pass.
type Viewer struct {
	full uint8
	next mesh.ID
	cur  mesh.ID
	tris []Triangle
}

// NewViewer returns a viewer shading states relative to full.
func NewViewer(full uint8) *Viewer { return &Viewer{full: full} }

// CreateMesh converts m and makes it the mesh to draw.
func (v *Viewer) CreateMesh(m *mesh.Mesh) mesh.ID {
	v.next++
	v.cur = v.next
	v.tris = Triangles(v.tris, m, v.full)
	return v.cur
}

// DestroyMesh drops the mesh if id is the one being drawn.
func (v *Viewer) DestroyMesh(id mesh.ID) {
	if id == v.cur {
		v.tris = v.tris[:0]
		v.cur = 0
	}
}

// Faces returns the number of quads being drawn.
func (v *Viewer) Faces() int { return len(v.tris) / 2 }

// Camera builds the raylib camera for cam at time t.
func Camera(cam render.Orbit, t float64) rl.Camera3D {
	return rl.Camera3D{
		Position:   vec(cam.Eye(t)),
		Target:     vec(cam.Center),
		Up:         rl.NewVector3(0, 1, 0),
		Fovy:       cam.FovY,
		Projection: rl.CameraPerspective,
	}
}

// Draw emits the triangles; call between BeginMode3D and EndMode3D.
func (v *Viewer) Draw() {
	for _, t := range v.tris {
		rl.DrawTriangle3D(vec(t.A), vec(t.B), vec(t.C), rl.NewColor(t.Color.R, t.Color.G, t.Color.B, t.Color.A))
	}
}

func vec(p mgl32.Vec3) rl.Vector3 { return rl.NewVector3(p.X(), p.Y(), p.Z()) }
