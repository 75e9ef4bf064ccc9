package core

import (
	"strings"
	"testing"
	"time"
)

func TestIndexRoundTrip(t *testing.T) {
	s := Size3{W: 3, H: 4, D: 5}
	seen := make([]bool, s.Volume())
	for z := 0; z < s.D; z++ {
		for y := 0; y < s.H; y++ {
			for x := 0; x < s.W; x++ {
				i := s.Index(x, y, z)
				if seen[i] {
					t.Fatalf("index %d reused at (%d,%d,%d)", i, x, y, z)
				}
				seen[i] = true
				if gx, gy, gz := s.Coords(i); gx != x || gy != y || gz != z {
					t.Fatalf("Coords(%d) = (%d,%d,%d), expected (%d,%d,%d)", i, gx, gy, gz, x, y, z)
				}
			}
		}
	}
	if s.Index(1, 0, 0) != 1 || s.Index(0, 1, 0) != 3 || s.Index(0, 0, 1) != 12 {
		t.Fatal("x must vary fastest, then y, then z")
	}
}

func TestContains(t *testing.T) {
	s := Size3{W: 2, H: 2, D: 2}
	if !s.Contains(1, 1, 1) || s.Contains(2, 0, 0) || s.Contains(0, -1, 0) || s.Contains(0, 0, 2) {
		t.Fatal("Contains disagrees with the extent")
	}
}

func TestByteVolumeSwap(t *testing.T) {
	v := NewByteVolume(2, 2, 0)
	if v.Volume() != 4 {
		t.Fatalf("non-positive depth should be raised to 1, volume %d", v.Volume())
	}
	v.Cells()[0] = 9
	old := v.Swap(make([]uint8, 4))
	if old[0] != 9 || v.Cells()[0] != 0 {
		t.Fatal("Swap did not exchange buffers")
	}

	defer func() {
		msg, _ := recover().(string)
		if !strings.Contains(msg, "swap buffer") {
			t.Fatalf("expected length panic, got %q", msg)
		}
	}()
	v.Swap(make([]uint8, 3))
}

func TestFixedStep(t *testing.T) {
	fs := NewFixedStep(10 * time.Millisecond)
	fs.Add(25 * time.Millisecond)
	if !fs.Take() || !fs.Take() || fs.Take() {
		t.Fatal("25ms should release exactly two 10ms intervals")
	}
	fs.Add(30 * time.Millisecond)
	fs.Drop()
	fs.Add(4 * time.Millisecond)
	if fs.Take() {
		t.Fatal("Drop should discard whole intervals")
	}
	fs.Add(1 * time.Millisecond)
	if !fs.Take() {
		t.Fatal("the kept fraction should count toward the next interval")
	}
}

func TestSeederRegistry(t *testing.T) {
	RegisterSeeder("", func(Volume, SeedOptions) {})
	RegisterSeeder("noop", nil)
	if _, ok := LookupSeeder("noop"); ok {
		t.Fatal("nil seeder should not register")
	}
	RegisterSeeder("test-fill", func(Volume, SeedOptions) {})
	if _, ok := LookupSeeder("test-fill"); !ok {
		t.Fatal("seeder not registered")
	}
	names := SeederNames()
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Fatalf("names not sorted: %v", names)
		}
	}
}
