package rlview

import (
	"testing"

	"voxlife/internal/automaton"
	"voxlife/internal/mesh"
	"voxlife/internal/render"
)

func TestTrianglesExpandIndices(t *testing.T) {
	cfg := automaton.DefaultConfig()
	cfg.Width, cfg.Height, cfg.Depth = 4, 4, 4
	g := automaton.NewGrid(cfg)
	g.Set(1, 1, 1, cfg.Full)
	g.Set(2, 1, 1, 1)
	m := mesh.Extract(g)

	tris := Triangles(nil, m, cfg.Full)
	if len(tris) != 2*m.FaceCount {
		t.Fatalf("expected %d triangles, got %d", 2*m.FaceCount, len(tris))
	}
	for i, tri := range tris {
		idx := m.Indices[i*3]
		want := render.Shade(m.Normals[idx], m.States[idx], cfg.Full)
		if tri.Color != want || tri.A != m.Positions[idx] {
			t.Fatalf("triangle %d does not match its source face", i)
		}
	}

	tris = Triangles(tris, &mesh.Mesh{}, cfg.Full)
	if len(tris) != 0 {
		t.Fatalf("empty mesh should clear the buffer, got %d", len(tris))
	}
}
