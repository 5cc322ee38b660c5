package geng

import (
	"errors"
	"math/rand"
	"testing"
)

func TestAllocatorSequential(t *testing.T) {
	a := NewAllocator()
	for want := ID(1); want <= 5; want++ {
		if got := a.Allocate(); got != want {
			t.Fatalf("Allocate() = %d, want %d", got, want)
		}
	}
	if a.HighWater() != 5 {
		t.Errorf("HighWater() = %d, want 5", a.HighWater())
	}
	if a.Len() != 5 {
		t.Errorf("Len() = %d, want 5", a.Len())
	}
}

func TestAllocatorReusesOldestFreedFirst(t *testing.T) {
	a := NewAllocator()
	for i := 0; i < 5; i++ {
		a.Allocate()
	}
	for _, id := range []ID{4, 2, 3} {
		if err := a.Free(id); err != nil {
			t.Fatalf("Free(%d): %v", id, err)
		}
	}

	for _, want := range []ID{4, 2, 3, 6} {
		if got := a.Allocate(); got != want {
			t.Errorf("Allocate() = %d, want %d", got, want)
		}
	}
	if a.HighWater() != 6 {
		t.Errorf("HighWater() = %d, want 6", a.HighWater())
	}
}

func TestAllocatorFreeErrors(t *testing.T) {
	a := NewAllocator()
	id := a.Allocate()

	tests := []struct {
		name string
		id   ID
		want error
	}{
		{"live id", id, nil},
		{"double free", id, ErrNotAllocated},
		{"never allocated", 99, ErrNotAllocated},
		{"zero", 0, ErrNotAllocated},
	}
	for _, tt := range tests {
		if err := a.Free(tt.id); !errors.Is(err, tt.want) {
			t.Errorf("%s: Free(%d) = %v, want %v", tt.name, tt.id, err, tt.want)
		}
	}

	// The rejected double free must not have queued the id twice.
	first, second := a.Allocate(), a.Allocate()
	if first != id || second == id {
		t.Errorf("after double free: Allocate() = %d, %d; want %d then a fresh id", first, second, id)
	}
}

func TestAllocatorNeverAliases(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	a := NewAllocator()
	live := map[ID]bool{}
	var order []ID

	for step := 0; step < 5000; step++ {
		if len(order) == 0 || rng.Intn(3) != 0 {
			waiting, hw := len(a.free), a.HighWater()
			id := a.Allocate()
			if id == 0 {
				t.Fatal("Allocate() returned 0")
			}
			if live[id] {
				t.Fatalf("step %d: id %d handed out while live", step, id)
			}
			// Freed ids must be used before the high-water mark moves.
			if waiting > 0 && a.HighWater() != hw {
				t.Fatalf("step %d: high-water advanced with %d ids waiting", step, waiting)
			}
			live[id] = true
			order = append(order, id)
			continue
		}
		i := rng.Intn(len(order))
		id := order[i]
		order = append(order[:i], order[i+1:]...)
		delete(live, id)
		if err := a.Free(id); err != nil {
			t.Fatalf("step %d: Free(%d): %v", step, id, err)
		}
	}
	if a.Len() != len(live) {
		t.Errorf("Len() = %d, want %d", a.Len(), len(live))
	}
}
