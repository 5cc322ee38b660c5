package geng

// Drawable is anything the registry can composite: it blits itself into a
// linear pixel buffer, answers point containment for picking, and produces a
// border-only copy of itself for selection highlighting.
type Drawable interface {
	// Draw blits every visible pixel to origin+(col, row) in buf, a row-major
	// buffer width pixels wide. Pixels that land outside buf are skipped.
	Draw(buf []Color, width int, origin Point)
	// Contains reports whether p, in the drawable's local space, lies on a
	// visible pixel.
	Contains(p Point) bool
	// Outline returns a drawable of the same size that renders only a border.
	Outline() Drawable
	// Size returns the grid dimensions in pixels.
	Size() (w, h int)
}

// grid is an immutable row-major pixel grid shared by Rect and Tile.
type grid struct {
	pix  []Color
	w, h int
}

// newGrid copies rows into a grid as wide as the widest row. Shorter rows are
// padded with Transparent.
func newGrid(rows [][]Color) grid {
	w := 0
	for _, row := range rows {
		w = max(w, len(row))
	}
	g := grid{pix: make([]Color, w*len(rows)), w: w, h: len(rows)}
	for y, row := range rows {
		copy(g.pix[y*w:], row)
	}
	return g
}

// splitGrid cuts a flat pixel slice into rows of w. A trailing partial row is
// dropped.
func splitGrid(pix []Color, w int) grid {
	if w <= 0 {
		panic("geng: grid width must be positive")
	}
	h := len(pix) / w
	g := grid{pix: make([]Color, w*h), w: w, h: h}
	copy(g.pix, pix[:w*h])
	return g
}

func (g grid) at(x, y int) Color {
	return g.pix[y*g.w+x]
}

func (g grid) contains(p Point) bool {
	if p.X < 0 || p.Y < 0 || p.X >= g.w || p.Y >= g.h {
		return false
	}
	return g.at(p.X, p.Y).Visible()
}

func (g grid) draw(buf []Color, width int, origin Point) {
	if width <= 0 {
		return
	}
	height := len(buf) / width
	for y := 0; y < g.h; y++ {
		dy := origin.Y + y
		if dy < 0 || dy >= height {
			continue
		}
		row := g.pix[y*g.w : (y+1)*g.w]
		dst := buf[dy*width : (dy+1)*width]
		for x, c := range row {
			dx := origin.X + x
			if dx < 0 || dx >= width || !c.Visible() {
				continue
			}
			dst[dx] = c
		}
	}
}

// border returns a grid of the same size with edge on the top and bottom rows
// and the first and last column, and inner everywhere else.
func (g grid) border(edge, inner Color) grid {
	out := grid{pix: make([]Color, len(g.pix)), w: g.w, h: g.h}
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			c := inner
			if y == 0 || y == g.h-1 || x == 0 || x == g.w-1 {
				c = edge
			}
			out.pix[y*g.w+x] = c
		}
	}
	return out
}

// rows returns a copy of the grid as a slice of rows.
func (g grid) rows() [][]Color {
	out := make([][]Color, g.h)
	for y := range out {
		out[y] = append([]Color(nil), g.pix[y*g.w:(y+1)*g.w]...)
	}
	return out
}
