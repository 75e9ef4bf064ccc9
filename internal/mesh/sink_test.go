package mesh

import (
	"slices"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func oneFace() *Mesh {
	m := &Mesh{}
	m.addFace(&faces[PosY], mgl32.Vec3{}, 3)
	return m
}

func TestSlotReplacesDestroyThenCreate(t *testing.T) {
	rec := NewRecorder()
	slot := NewSlot(rec)

	first := slot.Replace(oneFace())
	second := slot.Replace(oneFace())

	if slot.Live() != 1 {
		t.Fatalf("slot should hold one entity, holds %d", slot.Live())
	}
	if !slices.Equal(rec.Created, []ID{first, second}) {
		t.Fatalf("unexpected creates %v", rec.Created)
	}
	if !slices.Equal(rec.Deleted, []ID{first}) {
		t.Fatalf("unexpected destroys %v", rec.Deleted)
	}
	installed := rec.Installed()
	if _, ok := installed[second]; !ok || len(installed) != 1 {
		t.Fatalf("recorder should hold only the latest mesh, has %v", installed)
	}
}

func TestSlotPanicsOnMultipleEntities(t *testing.T) {
	rec := NewRecorder()
	slot := NewSlot(rec)
	slot.Replace(oneFace())
	slot.Adopt(rec.CreateMesh(oneFace()))

	defer func() {
		r := recover()
		msg, _ := r.(string)
		if !strings.Contains(msg, "2 live mesh entities") {
			t.Fatalf("expected singleton panic, got %v", r)
		}
	}()
	slot.Replace(oneFace())
}

func TestRecorderCopiesMesh(t *testing.T) {
	rec := NewRecorder()
	m := oneFace()
	id := rec.CreateMesh(m)
	m.Reset()

	if got := rec.Installed()[id]; got.FaceCount != 1 || len(got.Positions) != 4 {
		t.Fatalf("recorder mesh changed with the source: %+v", got)
	}
}

func TestMultiFansOut(t *testing.T) {
	a, b := NewRecorder(), NewRecorder()
	multi := NewMulti(a, nil, b)
	slot := NewSlot(multi)

	slot.Replace(oneFace())
	slot.Replace(oneFace())

	for name, rec := range map[string]*Recorder{"a": a, "b": b} {
		if len(rec.Created) != 2 || len(rec.Deleted) != 1 || len(rec.Installed()) != 1 {
			t.Fatalf("sink %s: created=%v deleted=%v", name, rec.Created, rec.Deleted)
		}
	}
}
