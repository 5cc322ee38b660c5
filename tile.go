package geng

// Tile is a sprite, usually loaded from a bitmap, whose selection outline is
// either supplied up front or derived from its own center pixel.
type Tile struct {
	g       grid
	outline *grid
}

// NewTile builds a Tile from rows of pixels. Rows are copied.
func NewTile(rows [][]Color) *Tile {
	return &Tile{g: newGrid(rows)}
}

// WithOutline returns a copy of t that uses rows as its selection outline
// instead of the computed one.
func (t *Tile) WithOutline(rows [][]Color) *Tile {
	og := newGrid(rows)
	return &Tile{g: t.g, outline: &og}
}

func (t *Tile) Draw(buf []Color, width int, origin Point) { t.g.draw(buf, width, origin) }
func (t *Tile) Contains(p Point) bool                     { return t.g.contains(p) }
func (t *Tile) Size() (w, h int)                          { return t.g.w, t.g.h }

// Outline returns the custom outline when one was supplied. Otherwise it is a
// one-pixel border in the tile's center color with a transparent interior.
func (t *Tile) Outline() Drawable {
	if t.outline != nil {
		return &Tile{g: *t.outline}
	}
	if t.g.w == 0 || t.g.h == 0 {
		return &Tile{g: t.g}
	}
	edge := t.g.at(t.g.w/2, t.g.h/2).Opaque()
	return &Tile{g: t.g.border(edge, Transparent)}
}

// Pixels returns a copy of the pixel rows.
func (t *Tile) Pixels() [][]Color {
	return t.g.rows()
}
