package geng

import "testing"

func TestRectOutline(t *testing.T) {
	r := FillRect(5, 4, red)
	o := r.Outline()
	if w, h := o.Size(); w != 5 || h != 4 {
		t.Fatalf("outline size = %dx%d, want 5x4", w, h)
	}
	px := o.(*Rect).Pixels()
	edge := HighlightColor.Opaque()
	for y, row := range px {
		for x, c := range row {
			want := OutlineFill
			if x == 0 || y == 0 || x == 4 || y == 3 {
				want = edge
			}
			if c != want {
				t.Errorf("outline (%d,%d) = %v, want %v", x, y, c, want)
			}
		}
	}
	// The source rect is untouched.
	if got := r.Pixels()[1][1]; got != red {
		t.Errorf("source pixel changed to %v", got)
	}
}

func TestRectOutlineDegenerate(t *testing.T) {
	tests := []struct {
		name string
		w, h int
	}{
		{"single pixel", 1, 1},
		{"one row", 4, 1},
		{"one column", 1, 3},
		{"two by two", 2, 2},
	}
	edge := HighlightColor.Opaque()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			px := FillRect(tt.w, tt.h, red).Outline().(*Rect).Pixels()
			for y, row := range px {
				for x, c := range row {
					if c != edge {
						t.Errorf("(%d,%d) = %v, want all border", x, y, c)
					}
				}
			}
		})
	}
}

func TestTileOutlineUsesCenterColor(t *testing.T) {
	rows := [][]Color{
		{red, red, red},
		{red, 0x00123456, red},
		{red, red, red},
	}
	o := NewTile(rows).Outline()
	px := o.(*Tile).Pixels()
	edge := Color(0xFF123456)
	for y, row := range px {
		for x, c := range row {
			want := Transparent
			if x != 1 || y != 1 {
				want = edge
			}
			if c != want {
				t.Errorf("outline (%d,%d) = %v, want %v", x, y, c, want)
			}
		}
	}
}

func TestTileCustomOutline(t *testing.T) {
	custom := [][]Color{
		{Transparent, blue, Transparent},
		{blue, Transparent, blue},
		{Transparent, blue, Transparent},
	}
	base := NewTile([][]Color{{red, red, red}, {red, red, red}, {red, red, red}})
	tile := base.WithOutline(custom)

	got := tile.Outline().(*Tile).Pixels()
	for y := range custom {
		for x := range custom[y] {
			if got[y][x] != custom[y][x] {
				t.Errorf("outline (%d,%d) = %v, want %v", x, y, got[y][x], custom[y][x])
			}
		}
	}
	if base.outline != nil {
		t.Error("WithOutline modified the receiver")
	}
}

func TestTileEmptyOutline(t *testing.T) {
	o := NewTile(nil).Outline()
	if w, h := o.Size(); w != 0 || h != 0 {
		t.Errorf("empty outline size = %dx%d", w, h)
	}
}

func diamond(n int, c Color) [][]Color {
	rows := make([][]Color, n)
	mid := n / 2
	for y := range rows {
		rows[y] = make([]Color, n)
		d := y - mid
		if d < 0 {
			d = -d
		}
		for x := range rows[y] {
			dx := x - mid
			if dx < 0 {
				dx = -dx
			}
			if dx+d <= mid {
				rows[y][x] = c
			}
		}
	}
	return rows
}

func TestTileContainsDiamond(t *testing.T) {
	tile := NewTile(diamond(5, green))
	tests := []struct {
		p    Point
		want bool
	}{
		{Pt(2, 2), true},
		{Pt(2, 0), true},
		{Pt(0, 2), true},
		{Pt(0, 0), false},
		{Pt(4, 4), false},
		{Pt(1, 1), true},
		{Pt(-1, 2), false},
		{Pt(5, 2), false},
		{Pt(2, 5), false},
	}
	for _, tt := range tests {
		if got := tile.Contains(tt.p); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestDrawClipsWithoutWrapping(t *testing.T) {
	const w, h = 4, 3
	tests := []struct {
		name   string
		origin Point
		want   []Color // row-major, 0 for untouched
	}{
		{"inside", Pt(1, 1), []Color{
			0, 0, 0, 0,
			0, red, red, 0,
			0, red, red, 0,
		}},
		{"right edge", Pt(3, 0), []Color{
			0, 0, 0, red,
			0, 0, 0, red,
			0, 0, 0, 0,
		}},
		{"negative origin", Pt(-1, -1), []Color{
			red, 0, 0, 0,
			0, 0, 0, 0,
			0, 0, 0, 0,
		}},
		{"bottom edge", Pt(0, 2), []Color{
			0, 0, 0, 0,
			0, 0, 0, 0,
			red, red, 0, 0,
		}},
		{"fully outside", Pt(10, 10), make([]Color, w*h)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := make([]Color, w*h)
			FillRect(2, 2, red).Draw(buf, w, tt.origin)
			for i := range buf {
				if buf[i] != tt.want[i] {
					t.Fatalf("pixel (%d,%d) = %v, want %v", i%w, i/w, buf[i], tt.want[i])
				}
			}
		})
	}
}

func TestDrawSkipsTransparent(t *testing.T) {
	buf := []Color{blue, blue, blue, blue}
	NewRect([][]Color{{red, Transparent}, {0x00FFFFFF, green}}).Draw(buf, 2, Point{})
	want := []Color{red, blue, blue, green}
	for i := range want {
		if buf[i] != want[i] {
			t.Errorf("buf[%d] = %v, want %v", i, buf[i], want[i])
		}
	}
}

func TestNewRectW(t *testing.T) {
	r := NewRectW([]Color{red, green, blue, red, green, blue, red}, 3)
	if w, h := r.Size(); w != 3 || h != 2 {
		t.Fatalf("Size() = %dx%d, want 3x2 (trailing partial row dropped)", w, h)
	}
	if got := r.Pixels()[1][0]; got != red {
		t.Errorf("(0,1) = %v, want red", got)
	}

	defer func() {
		if recover() == nil {
			t.Error("NewRectW with zero width did not panic")
		}
	}()
	NewRectW([]Color{red}, 0)
}

func TestNewRectRaggedRows(t *testing.T) {
	r := NewRect([][]Color{{red}, {red, green, blue}, {}})
	if w, h := r.Size(); w != 3 || h != 3 {
		t.Fatalf("Size() = %dx%d, want 3x3", w, h)
	}
	if r.Contains(Pt(2, 0)) {
		t.Error("padding pixel should be transparent")
	}
	if !r.Contains(Pt(2, 1)) {
		t.Error("(2,1) should be visible")
	}
}

func TestNewRectCopiesRows(t *testing.T) {
	rows := [][]Color{{red, red}}
	r := NewRect(rows)
	rows[0][0] = blue
	if got := r.Pixels()[0][0]; got != red {
		t.Errorf("Rect aliased caller rows: got %v", got)
	}
}
