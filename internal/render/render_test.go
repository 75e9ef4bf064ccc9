package render

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"voxlife/internal/automaton"
	"voxlife/internal/core"
	"voxlife/internal/mesh"
)

func TestOrbitKeepsDistance(t *testing.T) {
	o := DefaultOrbit(core.Size3{W: 20, H: 20, D: 20})
	for _, tm := range []float64{0, 1.3, 7.9} {
		eye := o.Eye(tm)
		flat := eye.Sub(o.Center)
		flat[1] = 0
		if d := flat.Len(); math.Abs(float64(d-o.Distance)) > 1e-3 {
			t.Fatalf("t=%.1f: horizontal distance %.3f, expected %.3f", tm, d, o.Distance)
		}
		if h := eye.Y() - o.Center.Y(); math.Abs(float64(h-o.Height)) > 1e-3 {
			t.Fatalf("t=%.1f: camera height %.3f", tm, eye.Y())
		}
	}
}

func TestProjectCenterLandsMidScreen(t *testing.T) {
	o := DefaultOrbit(core.Size3{W: 10, H: 10, D: 10})
	vp := o.ViewProjection(2, 1)
	sx, sy, depth, ok := Project(vp, o.Center, 400, 400)
	if !ok {
		t.Fatal("center should be in front of the camera")
	}
	if math.Abs(float64(sx-200)) > 0.01 || math.Abs(float64(sy-200)) > 0.01 {
		t.Fatalf("center projected to (%.2f,%.2f)", sx, sy)
	}
	if depth <= -1 || depth >= 1 {
		t.Fatalf("depth %.3f outside the clip range", depth)
	}
	behind := o.Eye(2).Add(o.Eye(2).Sub(o.Center))
	if _, _, _, ok := Project(vp, behind, 400, 400); ok {
		t.Fatal("point behind the camera should not project")
	}
}

func TestShadeFadesDecayingCells(t *testing.T) {
	up := mgl32.Vec3{0, 1, 0}
	if got := Shade(up, 3, 3); got != CellColor {
		t.Fatalf("full top face should be the cell color, got %v", got)
	}
	fullSide := Shade(mgl32.Vec3{1, 0, 0}, 3, 3)
	if fullSide.R >= CellColor.R {
		t.Fatalf("side faces should be darker than top faces, got %v", fullSide)
	}
	dim := Shade(up, 1, 3)
	if dim.B <= CellColor.B || dim.R >= CellColor.R {
		t.Fatalf("decaying cells should blend toward the background, got %v", dim)
	}
}

func TestProjectFacesCullsAndSorts(t *testing.T) {
	cfg := automaton.DefaultConfig()
	cfg.Width, cfg.Height, cfg.Depth = 6, 6, 6
	g := automaton.NewGrid(cfg)
	g.Set(2, 2, 2, cfg.Full)
	g.Set(3, 3, 3, cfg.Full)
	m := mesh.Extract(g)

	o := DefaultOrbit(g.Size())
	vp := o.ViewProjection(0.5, 1)
	quads := ProjectFaces(nil, m, vp, o.Eye(0.5), 300, 300, cfg.Full)

	// Two separate cubes seen from a general position show three faces each.
	if len(quads) != 6 {
		t.Fatalf("expected 6 front faces, got %d", len(quads))
	}
	for i := 1; i < len(quads); i++ {
		if quads[i].Depth > quads[i-1].Depth {
			t.Fatalf("quads not sorted far to near at %d", i)
		}
	}
}
