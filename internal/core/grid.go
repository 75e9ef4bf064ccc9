package core

import "fmt"

// Size3 describes the extent of a voxel grid.
type Size3 struct {
	W, H, D int
}

// Volume returns the number of cells covered by the extent.
func (s Size3) Volume() int { return s.W * s.H * s.D }

// Contains reports whether (x, y, z) lies inside the extent.
func (s Size3) Contains(x, y, z int) bool {
	return x >= 0 && x < s.W && y >= 0 && y < s.H && z >= 0 && z < s.D
}

// Index returns the linear slice index for coordinates (x, y, z). X varies
// fastest, then Y, then Z.
func (s Size3) Index(x, y, z int) int { return x + y*s.W + z*s.W*s.H }

// Coords is the inverse of Index.
func (s Size3) Coords(i int) (x, y, z int) {
	plane := s.W * s.H
	z = i / plane
	i -= z * plane
	y = i / s.W
	x = i - y*s.W
	return x, y, z
}

func (s Size3) String() string { return fmt.Sprintf("%dx%dx%d", s.W, s.H, s.D) }

// ByteVolume stores a 3D grid of byte-sized cell values.
type ByteVolume struct {
	Size3
	data []uint8
}

// NewByteVolume allocates a volume with the given dimensions. Non-positive
// extents are raised to 1.
func NewByteVolume(w, h, d int) *ByteVolume {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	if d <= 0 {
		d = 1
	}
	s := Size3{W: w, H: h, D: d}
	return &ByteVolume{Size3: s, data: make([]uint8, s.Volume())}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (v *ByteVolume) Cells() []uint8 { return v.data }

// Swap exchanges the backing slice with buf and returns the previous one.
// buf must have the same length as the volume.
func (v *ByteVolume) Swap(buf []uint8) []uint8 {
	if len(buf) != len(v.data) {
		panic(fmt.Sprintf("core: swap buffer has %d cells, volume %s has %d", len(buf), v.Size3, len(v.data)))
	}
	old := v.data
	v.data = buf
	return old
}

// Clear fills the volume with zeros.
func (v *ByteVolume) Clear() {
	for i := range v.data {
		v.data[i] = 0
	}
}
