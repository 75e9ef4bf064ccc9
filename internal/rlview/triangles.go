// Package rlview shows meshes in a native raylib window.
package rlview

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"

	"voxlife/internal/mesh"
	"voxlife/internal/render"
)

// Triangle is one shaded triangle ready for immediate-mode drawing.
type Triangle struct {
	A, B, C mgl32.Vec3
	Color   color.RGBA
}

// Triangles expands the indexed mesh into shaded triangles. raylib's indexed
// meshes are limited to 16-bit indices, so the viewer draws unindexed.
func Triangles(dst []Triangle, m *mesh.Mesh, full uint8) []Triangle {
	dst = dst[:0]
	for i := 0; i+2 < len(m.Indices); i += 3 {
		a, b, c := m.Indices[i], m.Indices[i+1], m.Indices[i+2]
		dst = append(dst, Triangle{
			A:     m.Positions[a],
			B:     m.Positions[b],
			C:     m.Positions[c],
			Color: render.Shade(m.Normals[a], m.States[a], full),
		})
	}
	return dst
}
