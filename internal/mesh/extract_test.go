package mesh

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"voxlife/internal/automaton"
)

func gridOf(n int) (*automaton.Grid, automaton.Config) {
	cfg := automaton.DefaultConfig()
	cfg.Width, cfg.Height, cfg.Depth = n, n, n
	return automaton.NewGrid(cfg), cfg
}

func TestIsolatedCellIsClosedCube(t *testing.T) {
	g, cfg := gridOf(5)
	g.Set(2, 2, 2, cfg.Full)

	m := NewExtractor().Extract(g)

	if m.FaceCount != 6 || len(m.Positions) != 24 || len(m.Indices) != 36 {
		t.Fatalf("single cube: faces=%d verts=%d indices=%d", m.FaceCount, len(m.Positions), len(m.Indices))
	}
	if err := m.Validate(); err != nil {
		t.Fatal(err)
	}
	lo, hi := mgl32.Vec3{2, 2, 2}, mgl32.Vec3{3, 3, 3}
	for i, p := range m.Positions {
		for a := 0; a < 3; a++ {
			if p[a] < lo[a] || p[a] > hi[a] {
				t.Fatalf("vertex %d %v outside the unit cube at (2,2,2)", i, p)
			}
		}
	}
}

func TestAdjacentCellsCullSharedFace(t *testing.T) {
	g, cfg := gridOf(6)
	g.Set(2, 2, 2, cfg.Full)
	g.Set(3, 2, 2, cfg.Full)

	m := NewExtractor().Extract(g)

	if m.FaceCount != 10 {
		t.Fatalf("adjacent pair should emit 10 faces, got %d", m.FaceCount)
	}
	for i, p := range m.Positions {
		if p.X() == 3 && m.Normals[i].X() != 0 {
			t.Fatalf("shared x=3 face was emitted (vertex %d)", i)
		}
	}
}

func TestBoundaryFacesAreEmitted(t *testing.T) {
	g, cfg := gridOf(1)
	g.Set(0, 0, 0, cfg.Full)

	if m := NewExtractor().Extract(g); m.FaceCount != 6 {
		t.Fatalf("cell filling a 1³ grid should emit all 6 boundary faces, got %d", m.FaceCount)
	}
}

func TestFilledGridEmitsOnlyHull(t *testing.T) {
	g, cfg := gridOf(3)
	s := g.Size()
	for z := 0; z < s.D; z++ {
		for y := 0; y < s.H; y++ {
			for x := 0; x < s.W; x++ {
				g.Set(x, y, z, cfg.Full)
			}
		}
	}
	m := NewExtractor().Extract(g)
	if m.FaceCount != 6*9 {
		t.Fatalf("filled 3³ grid should emit 54 hull faces, got %d", m.FaceCount)
	}
	if err := m.Validate(); err != nil {
		t.Fatal(err)
	}
}

func TestFaceCountIdentityAndIndexBases(t *testing.T) {
	cfg := automaton.DefaultConfig()
	cfg.Width, cfg.Height, cfg.Depth = 10, 10, 10
	cfg.SeedShape = "random"
	cfg.SeedSize = 10
	g := automaton.NewGrid(cfg)
	if err := automaton.Seed(g, cfg, 3); err != nil {
		t.Fatal(err)
	}
	e := NewExtractor()
	stepper := automaton.NewStepper(cfg)

	for gen := 0; gen < 4; gen++ {
		m := e.Extract(g)
		if len(m.Indices) != 6*m.FaceCount || len(m.Positions) != 4*m.FaceCount {
			t.Fatalf("gen %d: identity broken faces=%d verts=%d indices=%d", gen, m.FaceCount, len(m.Positions), len(m.Indices))
		}
		for f := 0; f < m.FaceCount; f++ {
			base := uint32(f * 4)
			want := []uint32{base, base + 1, base + 2, base, base + 2, base + 3}
			for i, idx := range m.Indices[f*6 : f*6+6] {
				if idx != want[i] {
					t.Fatalf("gen %d face %d: index %d = %d, expected %d", gen, f, i, idx, want[i])
				}
			}
		}
		stepper.Step(g)
	}
}

func TestWindingMatchesNormals(t *testing.T) {
	g, cfg := gridOf(3)
	g.Set(1, 1, 1, cfg.Full)
	m := NewExtractor().Extract(g)

	seen := map[mgl32.Vec3]bool{}
	for f := 0; f < m.FaceCount; f++ {
		p := m.Positions[f*4 : f*4+4]
		n := m.Normals[f*4]
		seen[n] = true
		for tri := 0; tri < 2; tri++ {
			i0, i1, i2 := m.Indices[f*6+tri*3], m.Indices[f*6+tri*3+1], m.Indices[f*6+tri*3+2]
			a, b, c := m.Positions[i0], m.Positions[i1], m.Positions[i2]
			if cross := b.Sub(a).Cross(c.Sub(a)); cross.Dot(n) <= 0 {
				t.Fatalf("face %d triangle %d winds against normal %v", f, tri, n)
			}
		}
		center := p[0].Add(p[2]).Mul(0.5)
		if out := center.Sub(mgl32.Vec3{1.5, 1.5, 1.5}); out.Dot(n) <= 0 {
			t.Fatalf("face %d normal %v points inward", f, n)
		}
	}
	if len(seen) != 6 {
		t.Fatalf("expected six distinct normals, got %d", len(seen))
	}
}

func TestFaceOrderPerCell(t *testing.T) {
	g, cfg := gridOf(3)
	g.Set(1, 1, 1, cfg.Full)
	m := NewExtractor().Extract(g)

	order := []Face{NegZ, NegY, NegX, PosX, PosY, PosZ}
	for f, face := range order {
		if got := m.Normals[f*4]; got != face.Normal() {
			t.Fatalf("face %d normal %v, expected %v", f, got, face.Normal())
		}
	}
}

func TestExtractUsesLivenessPredicate(t *testing.T) {
	g, cfg := gridOf(5)
	g.Set(2, 2, 2, cfg.Full)
	g.Set(3, 2, 2, 1)

	e := NewExtractor()
	if m := e.Extract(g); m.FaceCount != 10 {
		t.Fatalf("decay-alive mode should mesh the decaying cell, got %d faces", m.FaceCount)
	}
	g.SetDecayCountsAsAlive(false)
	m := e.Extract(g)
	if m.FaceCount != 6 {
		t.Fatalf("strict mode should mesh only the full cell, got %d faces", m.FaceCount)
	}
	for _, st := range m.States {
		if st != cfg.Full {
			t.Fatalf("unexpected vertex state %d", st)
		}
	}
}

func TestEmptyGrid(t *testing.T) {
	g, _ := gridOf(4)
	m := Extract(g)
	if m.FaceCount != 0 || len(m.Indices) != 0 {
		t.Fatalf("empty grid produced %d faces", m.FaceCount)
	}
	if err := m.Validate(); err != nil {
		t.Fatal(err)
	}
}
