//go:build ebiten

package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"voxlife/internal/mesh"
)

// quadsPerBatch keeps vertex indices within uint16.
const quadsPerBatch = 65535 / 4

var whiteImage = ebiten.NewImage(3, 3)

func init() {
	whiteImage.Fill(color.White)
}

// Painter is a mesh.Sink that draws the installed mesh with ebiten using a
// painter's-algorithm depth sort.
type Painter struct {
	full uint8
	next mesh.ID
	cur  mesh.ID
	mesh *mesh.Mesh

	quads    []ScreenQuad
	vertices []ebiten.Vertex
	indices  []uint16
}

// NewPainter returns a painter shading states relative to full.
func NewPainter(full uint8) *Painter {
	return &Painter{full: full}
}

// CreateMesh copies m and makes it the mesh to draw.
func (p *Painter) CreateMesh(m *mesh.Mesh) mesh.ID {
	p.next++
	p.cur = p.next
	p.mesh = m.Clone()
	return p.cur
}

// DestroyMesh drops the mesh if id is the one being drawn.
func (p *Painter) DestroyMesh(id mesh.ID) {
	if id == p.cur {
		p.mesh = nil
		p.cur = 0
	}
}

// Faces returns the number of faces of the installed mesh.
func (p *Painter) Faces() int {
	if p.mesh == nil {
		return 0
	}
	return p.mesh.FaceCount
}

// Draw paints the installed mesh seen from cam at time t.
func (p *Painter) Draw(dst *ebiten.Image, cam Orbit, t float64) {
	if p.mesh == nil || p.mesh.FaceCount == 0 {
		return
	}
	b := dst.Bounds()
	w, h := float32(b.Dx()), float32(b.Dy())
	vp := cam.ViewProjection(t, w/h)
	p.quads = ProjectFaces(p.quads, p.mesh, vp, cam.Eye(t), w, h, p.full)

	src := whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	op := &ebiten.DrawTrianglesOptions{}
	for start := 0; start < len(p.quads); start += quadsPerBatch {
		end := min(start+quadsPerBatch, len(p.quads))
		p.vertices = p.vertices[:0]
		p.indices = p.indices[:0]
		for i, q := range p.quads[start:end] {
			r := float32(q.Color.R) / 255
			g := float32(q.Color.G) / 255
			bl := float32(q.Color.B) / 255
			for c := 0; c < 4; c++ {
				p.vertices = append(p.vertices, ebiten.Vertex{
					DstX: q.X[c], DstY: q.Y[c],
					SrcX: 1, SrcY: 1,
					ColorR: r, ColorG: g, ColorB: bl, ColorA: 1,
				})
			}
			base := uint16(i * 4)
			p.indices = append(p.indices, base, base+1, base+2, base, base+2, base+3)
		}
		dst.DrawTriangles(p.vertices, p.indices, src, op)
	}
}
