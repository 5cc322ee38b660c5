package geng

// HighlightColor is the border color of a Rect's selection outline.
var HighlightColor Color = 0xFFFFCC00

// OutlineFill is the interior of a Rect's selection outline.
const OutlineFill = Transparent

// Rect is a plain rectangular sprite: a pixel grid and nothing else.
type Rect struct {
	g grid
}

// NewRect builds a Rect from rows of pixels. Rows are copied.
func NewRect(rows [][]Color) *Rect {
	return &Rect{g: newGrid(rows)}
}

// NewRectW builds a Rect from a flat row-major slice, w pixels per row.
// Panics if w is not positive.
func NewRectW(pix []Color, w int) *Rect {
	return &Rect{g: splitGrid(pix, w)}
}

// FillRect returns a w x h Rect of a single color.
func FillRect(w, h int, c Color) *Rect {
	g := grid{pix: make([]Color, w*h), w: w, h: h}
	for i := range g.pix {
		g.pix[i] = c
	}
	return &Rect{g: g}
}

func (r *Rect) Draw(buf []Color, width int, origin Point) { r.g.draw(buf, width, origin) }
func (r *Rect) Contains(p Point) bool                     { return r.g.contains(p) }
func (r *Rect) Size() (w, h int)                          { return r.g.w, r.g.h }

// Outline returns a border of HighlightColor around an OutlineFill interior.
func (r *Rect) Outline() Drawable {
	return &Rect{g: r.g.border(HighlightColor.Opaque(), OutlineFill)}
}

// Pixels returns a copy of the pixel rows.
func (r *Rect) Pixels() [][]Color {
	return r.g.rows()
}
