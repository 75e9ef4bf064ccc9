package mesh

import (
	"fmt"
	"sync"
)

// ID names a mesh entity installed in a Sink.
type ID uint64

// Sink is the rendering side of the extractor. The mesh passed to
// CreateMesh is only valid for the duration of the call; sinks copy what
// they keep.
type Sink interface {
	CreateMesh(m *Mesh) ID
	DestroyMesh(id ID)
}

// Slot keeps at most one live mesh entity in a sink and swaps it
// destroy-then-create.
type Slot struct {
	sink Sink
	live []ID
}

// NewSlot returns an empty slot feeding sink. A nil sink discards meshes.
func NewSlot(sink Sink) *Slot {
	if sink == nil {
		sink = Discard{}
	}
	return &Slot{sink: sink}
}

// Adopt records an entity that was created in the sink by someone else.
func (s *Slot) Adopt(id ID) { s.live = append(s.live, id) }

// Live returns the number of installed entities.
func (s *Slot) Live() int { return len(s.live) }

// Replace destroys the installed entity, if any, and installs m. More than
// one installed entity means the singleton contract was broken upstream and
// panics.
func (s *Slot) Replace(m *Mesh) ID {
	switch len(s.live) {
	case 0:
	case 1:
		s.sink.DestroyMesh(s.live[0])
		s.live = s.live[:0]
	default:
		panic(fmt.Sprintf("mesh: %d live mesh entities, expected at most one", len(s.live)))
	}
	id := s.sink.CreateMesh(m)
	s.live = append(s.live, id)
	return id
}

// Discard is a Sink that keeps nothing.
type Discard struct{}

func (Discard) CreateMesh(*Mesh) ID { return 0 }
func (Discard) DestroyMesh(ID)      {}

// Recorder is a Sink that keeps a copy of the installed meshes and a log of
// create/destroy calls.
type Recorder struct {
	mu      sync.Mutex
	next    ID
	meshes  map[ID]*Mesh
	Created []ID
	Deleted []ID
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{meshes: make(map[ID]*Mesh)}
}

func (r *Recorder) CreateMesh(m *Mesh) ID {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.next++
	r.meshes[r.next] = m.Clone()
	r.Created = append(r.Created, r.next)
	return r.next
}

func (r *Recorder) DestroyMesh(id ID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.meshes, id)
	r.Deleted = append(r.Deleted, id)
}

// Installed returns the meshes currently alive in the recorder.
func (r *Recorder) Installed() map[ID]*Mesh {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[ID]*Mesh, len(r.meshes))
	for id, m := range r.meshes {
		out[id] = m
	}
	return out
}

// Multi fans a mesh out to several sinks under a single ID.
type Multi struct {
	sinks []Sink
	next  ID
	ids   map[ID][]ID
}

// NewMulti returns a Sink that forwards to every non-nil sink.
func NewMulti(sinks ...Sink) *Multi {
	m := &Multi{ids: make(map[ID][]ID)}
	for _, s := range sinks {
		if s != nil {
			m.sinks = append(m.sinks, s)
		}
	}
	return m
}

func (m *Multi) CreateMesh(mesh *Mesh) ID {
	m.next++
	sub := make([]ID, len(m.sinks))
	for i, s := range m.sinks {
		sub[i] = s.CreateMesh(mesh)
	}
	m.ids[m.next] = sub
	return m.next
}

func (m *Multi) DestroyMesh(id ID) {
	sub, ok := m.ids[id]
	if !ok {
		return
	}
	for i, s := range m.sinks {
		s.DestroyMesh(sub[i])
	}
	delete(m.ids, id)
}
