package geng

// Item is a live registry entry. Items are values; mutating a returned Item
// does not affect the registry.
type Item struct {
	ID       ID
	Drawable Drawable
	Pos      Point
}

// Registry is the top-level object that owns the drawables on the canvas,
// their ids, the current selection, and the needs-redraw flag.
//
// Items are kept in insertion order, which is also paint order: the last
// inserted item is drawn last and is the first candidate for hit testing.
type Registry struct {
	items []Item
	index map[ID]int // id -> position in items
	ids   *Allocator

	selected    ID
	hasSelected bool

	bg    Color
	dirty bool
	sink  EventSink
}

// NewRegistry creates an empty registry with the given background color.
// It starts dirty so the first Render always composites.
func NewRegistry(bg Color) *Registry {
	return &Registry{
		index: make(map[ID]int),
		ids:   NewAllocator(),
		bg:    bg,
		dirty: true,
	}
}

// SetEventSink sets the optional event forwarder. Pass nil to detach.
func (r *Registry) SetEventSink(sink EventSink) {
	r.sink = sink
}

func (r *Registry) emit(ev SceneEvent) {
	if r.sink != nil {
		r.sink.EmitEvent(ev)
	}
}

// Insert adds d at pos above every existing item and returns its id.
// Panics if d is nil.
func (r *Registry) Insert(d Drawable, pos Point) ID {
	if d == nil {
		panic("geng: cannot insert nil drawable")
	}
	id := r.ids.Allocate()
	r.index[id] = len(r.items)
	r.items = append(r.items, Item{ID: id, Drawable: d, Pos: pos})
	r.dirty = true
	r.emit(SceneEvent{Type: EventInsert, ID: id, Pos: pos})
	return id
}

// Remove detaches the item with the given id and hands its drawable back to
// the caller. The remaining items keep their relative order and the id
// becomes available for reuse. If the item was selected, the selection is
// cleared. Returns (nil, false) when id is not live.
func (r *Registry) Remove(id ID) (Drawable, bool) {
	i, ok := r.index[id]
	if !ok {
		return nil, false
	}
	it := r.items[i]
	copy(r.items[i:], r.items[i+1:])
	r.items[len(r.items)-1] = Item{}
	r.items = r.items[:len(r.items)-1]
	delete(r.index, id)
	for j := i; j < len(r.items); j++ {
		r.index[r.items[j].ID] = j
	}
	if err := r.ids.Free(id); err != nil {
		panic("geng: registry index and allocator disagree on id liveness")
	}
	r.dirty = true
	r.emit(SceneEvent{Type: EventRemove, ID: id, Pos: it.Pos})
	if r.hasSelected && r.selected == id {
		r.hasSelected = false
		r.selected = 0
		r.emit(SceneEvent{Type: EventDeselect, ID: id})
	}
	return it.Drawable, true
}

// Get returns the live item with the given id.
func (r *Registry) Get(id ID) (Item, bool) {
	i, ok := r.index[id]
	if !ok {
		return Item{}, false
	}
	return r.items[i], true
}

// Len returns the number of live items.
func (r *Registry) Len() int {
	return len(r.items)
}

// Each calls fn for every item in paint order, bottom first, stopping early
// if fn returns false. fn must not mutate the registry.
func (r *Registry) Each(fn func(Item) bool) {
	for _, it := range r.items {
		if !fn(it) {
			return
		}
	}
}

// HitTest finds the topmost item whose drawable contains (x, y).
// The point is translated into each item's local space; items whose origin
// lies right of or below the point are skipped.
func (r *Registry) HitTest(x, y int) (ID, bool) {
	// Iterate backward (reverse paint order): topmost item first.
	for i := len(r.items) - 1; i >= 0; i-- {
		it := &r.items[i]
		lx, ly := x-it.Pos.X, y-it.Pos.Y
		if lx < 0 || ly < 0 {
			continue
		}
		if it.Drawable.Contains(Point{lx, ly}) {
			return it.ID, true
		}
	}
	return 0, false
}

// Select marks id as the selected item. The id is not checked: selecting an
// id that is not live is accepted and simply draws no outline.
func (r *Registry) Select(id ID) {
	r.selected = id
	r.hasSelected = true
	r.dirty = true
	r.emit(SceneEvent{Type: EventSelect, ID: id})
}

// Deselect clears the selection. No-op when nothing is selected.
func (r *Registry) Deselect() {
	if !r.hasSelected {
		return
	}
	id := r.selected
	r.selected = 0
	r.hasSelected = false
	r.dirty = true
	r.emit(SceneEvent{Type: EventDeselect, ID: id})
}

// Selected returns the selected id, which may no longer be live.
func (r *Registry) Selected() (ID, bool) {
	return r.selected, r.hasSelected
}

// Background returns the current background color.
func (r *Registry) Background() Color {
	return r.bg
}

// SetBackground changes the fill color used behind all items.
func (r *Registry) SetBackground(c Color) {
	if c == r.bg {
		return
	}
	r.bg = c
	r.dirty = true
	r.emit(SceneEvent{Type: EventBackground, Color: c})
}

// Dirty reports whether the next Render will recomposite.
func (r *Registry) Dirty() bool {
	return r.dirty
}

// Invalidate forces the next Render to recomposite.
func (r *Registry) Invalidate() {
	r.dirty = true
}

// Render composites the scene into buf, a row-major buffer width pixels
// wide, but only if something changed since the last call. It fills buf with
// the background, draws every item bottom to top, then draws the selected
// item's outline above everything. Returns true if buf was rewritten; when it
// returns false buf still holds the previous frame.
func (r *Registry) Render(buf []Color, width int) bool {
	if !r.dirty {
		return false
	}
	for i := range buf {
		buf[i] = r.bg
	}
	for i := range r.items {
		it := &r.items[i]
		it.Drawable.Draw(buf, width, it.Pos)
	}
	if r.hasSelected {
		if i, ok := r.index[r.selected]; ok {
			it := &r.items[i]
			it.Drawable.Outline().Draw(buf, width, it.Pos)
		}
	}
	r.dirty = false
	return true
}
