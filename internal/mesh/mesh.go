// Package mesh turns live voxels into a face-culled triangle list and hands
// it to whatever displays it.
package mesh

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Mesh is a flat triangle list. Every face owns four vertices; nothing is
// shared between faces.
type Mesh struct {
	Positions []mgl32.Vec3
	Normals   []mgl32.Vec3
	UVs       []mgl32.Vec2
	// States holds the state of the cell each vertex came from.
	States  []uint8
	Indices []uint32

	FaceCount int
}

// Reset empties the mesh, keeping capacity.
func (m *Mesh) Reset() {
	m.Positions = m.Positions[:0]
	m.Normals = m.Normals[:0]
	m.UVs = m.UVs[:0]
	m.States = m.States[:0]
	m.Indices = m.Indices[:0]
	m.FaceCount = 0
}

// Clone returns a deep copy.
func (m *Mesh) Clone() *Mesh {
	return &Mesh{
		Positions: append([]mgl32.Vec3(nil), m.Positions...),
		Normals:   append([]mgl32.Vec3(nil), m.Normals...),
		UVs:       append([]mgl32.Vec2(nil), m.UVs...),
		States:    append([]uint8(nil), m.States...),
		Indices:   append([]uint32(nil), m.Indices...),
		FaceCount: m.FaceCount,
	}
}

// Validate checks the buffer-length identities and index range.
func (m *Mesh) Validate() error {
	verts := 4 * m.FaceCount
	if len(m.Indices) != 6*m.FaceCount {
		return fmt.Errorf("mesh: %d indices for %d faces", len(m.Indices), m.FaceCount)
	}
	for name, n := range map[string]int{
		"positions": len(m.Positions),
		"normals":   len(m.Normals),
		"uvs":       len(m.UVs),
		"states":    len(m.States),
	} {
		if n != verts {
			return fmt.Errorf("mesh: %d %s for %d faces", n, name, m.FaceCount)
		}
	}
	for i, idx := range m.Indices {
		if int(idx) >= verts {
			return fmt.Errorf("mesh: index %d at %d out of range", idx, i)
		}
	}
	return nil
}
