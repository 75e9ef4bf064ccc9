package mesh

import (
	"github.com/go-gl/mathgl/mgl32"

	"voxlife/internal/core"
)

// Occupancy is the read surface the extractor needs from a grid.
type Occupancy interface {
	Size() core.Size3
	Get(x, y, z int) uint8
	IsAlive(x, y, z int) bool
}

// Face identifies one of the six axis-aligned cube faces.
type Face uint8

// Faces are tested in this order for every cell.
const (
	NegZ Face = iota
	NegY
	NegX
	PosX
	PosY
	PosZ
)

type faceSpec struct {
	step    [3]int
	normal  mgl32.Vec3
	corners [4]mgl32.Vec3
}

// Corners wind counter-clockwise when seen from outside the cube.
var faces = [6]faceSpec{
	NegZ: {
		step:    [3]int{0, 0, -1},
		normal:  mgl32.Vec3{0, 0, -1},
		corners: [4]mgl32.Vec3{{0, 0, 0}, {0, 1, 0}, {1, 1, 0}, {1, 0, 0}},
	},
	NegY: {
		step:    [3]int{0, -1, 0},
		normal:  mgl32.Vec3{0, -1, 0},
		corners: [4]mgl32.Vec3{{0, 0, 0}, {1, 0, 0}, {1, 0, 1}, {0, 0, 1}},
	},
	NegX: {
		step:    [3]int{-1, 0, 0},
		normal:  mgl32.Vec3{-1, 0, 0},
		corners: [4]mgl32.Vec3{{0, 0, 0}, {0, 0, 1}, {0, 1, 1}, {0, 1, 0}},
	},
	PosX: {
		step:    [3]int{1, 0, 0},
		normal:  mgl32.Vec3{1, 0, 0},
		corners: [4]mgl32.Vec3{{1, 0, 0}, {1, 1, 0}, {1, 1, 1}, {1, 0, 1}},
	},
	PosY: {
		step:    [3]int{0, 1, 0},
		normal:  mgl32.Vec3{0, 1, 0},
		corners: [4]mgl32.Vec3{{0, 1, 0}, {0, 1, 1}, {1, 1, 1}, {1, 1, 0}},
	},
	PosZ: {
		step:    [3]int{0, 0, 1},
		normal:  mgl32.Vec3{0, 0, 1},
		corners: [4]mgl32.Vec3{{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1}},
	},
}

var quadUVs = [4]mgl32.Vec2{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

// Normal returns the outward unit normal of f.
func (f Face) Normal() mgl32.Vec3 { return faces[f].normal }

// Extractor builds face-culled meshes, reusing its buffers between calls.
type Extractor struct {
	mesh Mesh
}

// NewExtractor returns an extractor with empty buffers.
func NewExtractor() *Extractor { return &Extractor{} }

// Extract rebuilds the mesh for every live cell of g. The returned mesh is
// owned by the extractor and is overwritten by the next call.
func (e *Extractor) Extract(g Occupancy) *Mesh {
	m := &e.mesh
	m.Reset()
	s := g.Size()
	for z := 0; z < s.D; z++ {
		for y := 0; y < s.H; y++ {
			for x := 0; x < s.W; x++ {
				if !g.IsAlive(x, y, z) {
					continue
				}
				st := g.Get(x, y, z)
				origin := mgl32.Vec3{float32(x), float32(y), float32(z)}
				for f := range faces {
					spec := &faces[f]
					nx, ny, nz := x+spec.step[0], y+spec.step[1], z+spec.step[2]
					if s.Contains(nx, ny, nz) && g.IsAlive(nx, ny, nz) {
						continue
					}
					m.addFace(spec, origin, st)
				}
			}
		}
	}
	return m
}

// addFace appends four corners and two triangles. The index base comes from
// the running face counter, not from the cell.
func (m *Mesh) addFace(spec *faceSpec, origin mgl32.Vec3, state uint8) {
	base := uint32(m.FaceCount * 4)
	for i, c := range spec.corners {
		m.Positions = append(m.Positions, origin.Add(c))
		m.Normals = append(m.Normals, spec.normal)
		m.UVs = append(m.UVs, quadUVs[i])
		m.States = append(m.States, state)
	}
	m.Indices = append(m.Indices, base, base+1, base+2, base, base+2, base+3)
	m.FaceCount++
}

// Extract builds a fresh mesh for g.
func Extract(g Occupancy) *Mesh {
	return NewExtractor().Extract(g)
}
