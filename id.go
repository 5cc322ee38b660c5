package geng

import "errors"

// ErrNotAllocated is returned by Allocator.Free for an id that is not live,
// either because it was never handed out or because it was already freed.
var ErrNotAllocated = errors.New("geng: id is not allocated")

// ID identifies a live registry item. Zero is never allocated.
type ID uint64

// Allocator hands out IDs, reusing freed ones (oldest first) before advancing
// its high-water mark. Not safe for concurrent use; geng is single-threaded.
type Allocator struct {
	free []ID
	high ID
	live map[ID]struct{}
}

// NewAllocator returns an empty allocator. The first id it returns is 1.
func NewAllocator() *Allocator {
	return &Allocator{live: make(map[ID]struct{})}
}

// Allocate returns the oldest freed id, or a new one past the high-water mark
// when nothing is waiting for reuse.
func (a *Allocator) Allocate() ID {
	var id ID
	if len(a.free) > 0 {
		id = a.free[0]
		copy(a.free, a.free[1:])
		a.free = a.free[:len(a.free)-1]
	} else {
		a.high++
		id = a.high
	}
	a.live[id] = struct{}{}
	return id
}

// Free returns id to the pool. Freeing an id that is not live is an error
// and leaves the pool untouched, so an id can never be handed out twice.
func (a *Allocator) Free(id ID) error {
	if _, ok := a.live[id]; !ok {
		return ErrNotAllocated
	}
	delete(a.live, id)
	a.free = append(a.free, id)
	return nil
}

// Live reports whether id is currently allocated.
func (a *Allocator) Live(id ID) bool {
	_, ok := a.live[id]
	return ok
}

// Len returns the number of live ids.
func (a *Allocator) Len() int {
	return len(a.live)
}

// HighWater returns the largest id ever allocated.
func (a *Allocator) HighWater() ID {
	return a.high
}
