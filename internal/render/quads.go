package render

import (
	"cmp"
	"image/color"
	"slices"

	"github.com/go-gl/mathgl/mgl32"

	"voxlife/internal/mesh"
)

// ScreenQuad is one mesh face projected to pixels.
type ScreenQuad struct {
	X, Y  [4]float32
	Depth float32
	Color color.RGBA
}

// ProjectFaces projects the front-facing faces of m and sorts them far to
// near so they can be painted in order. dst is reused.
func ProjectFaces(dst []ScreenQuad, m *mesh.Mesh, vp mgl32.Mat4, eye mgl32.Vec3, w, h float32, full uint8) []ScreenQuad {
	dst = dst[:0]
	for f := 0; f < m.FaceCount; f++ {
		corners := m.Positions[f*4 : f*4+4]
		n := m.Normals[f*4]
		if n.Dot(eye.Sub(corners[0])) <= 0 {
			continue
		}
		var q ScreenQuad
		visible := true
		for i, c := range corners {
			sx, sy, depth, ok := Project(vp, c, w, h)
			if !ok {
				visible = false
				break
			}
			q.X[i], q.Y[i] = sx, sy
			q.Depth += depth / 4
		}
		if !visible {
			continue
		}
		q.Color = Shade(n, m.States[f*4], full)
		dst = append(dst, q)
	}
	slices.SortStableFunc(dst, func(a, b ScreenQuad) int { return cmp.Compare(b.Depth, a.Depth) })
	return dst
}
