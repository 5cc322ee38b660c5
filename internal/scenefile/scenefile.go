package scenefile

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/SveOls/geng"
)

// Entry places one drawable, or a grid of copies of it, on the canvas.
type Entry struct {
	Kind   string `yaml:"kind"` // "rect" or "tile"
	X      int    `yaml:"x"`
	Y      int    `yaml:"y"`
	Width  int    `yaml:"width"`  // rect only
	Height int    `yaml:"height"` // rect only
	Color  string `yaml:"color"`  // rect only
	Bitmap string `yaml:"bitmap"` // tile only, relative to the scene file
	Grid   *Grid  `yaml:"grid"`
}

// Grid repeats an entry Cols x Rows times, StepX/StepY pixels apart,
// row by row.
type Grid struct {
	Cols  int `yaml:"cols"`
	Rows  int `yaml:"rows"`
	StepX int `yaml:"step_x"`
	StepY int `yaml:"step_y"`
}

// Scene is a parsed scene file.
type Scene struct {
	Entries []Entry `yaml:"items"`

	dir string
}

// Load reads a YAML scene file.
func Load(path string) (*Scene, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene: %w", err)
	}
	s, err := Parse(raw)
	if err != nil {
		return nil, err
	}
	s.dir = filepath.Dir(path)
	return s, nil
}

// Parse decodes a scene from YAML. Bitmap paths resolve against the working
// directory.
func Parse(raw []byte) (*Scene, error) {
	var s Scene
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("parse scene: %w", err)
	}
	for i, e := range s.Entries {
		switch e.Kind {
		case "rect":
			if e.Width <= 0 || e.Height <= 0 {
				return nil, fmt.Errorf("parse scene: items[%d]: rect needs a positive width and height", i)
			}
		case "tile":
			if e.Bitmap == "" {
				return nil, fmt.Errorf("parse scene: items[%d]: tile needs a bitmap", i)
			}
		default:
			return nil, fmt.Errorf("parse scene: items[%d]: unknown kind %q", i, e.Kind)
		}
	}
	return &s, nil
}

// Count returns the number of items Populate would insert.
func (s *Scene) Count() int {
	n := 0
	for _, e := range s.Entries {
		n += e.copies()
	}
	return n
}

func (e Entry) copies() int {
	if e.Grid == nil {
		return 1
	}
	return max(e.Grid.Cols, 0) * max(e.Grid.Rows, 0)
}

// Populate inserts every entry into reg in file order and returns the ids.
// Each bitmap is decoded once and shared by all items that use it.
func (s *Scene) Populate(reg *geng.Registry) ([]geng.ID, error) {
	tiles := make(map[string]*geng.Tile)
	ids := make([]geng.ID, 0, s.Count())
	for i, e := range s.Entries {
		d, err := s.drawable(e, tiles)
		if err != nil {
			return ids, fmt.Errorf("items[%d]: %w", i, err)
		}
		if e.Grid == nil {
			ids = append(ids, reg.Insert(d, geng.Pt(e.X, e.Y)))
			continue
		}
		for row := 0; row < e.Grid.Rows; row++ {
			for col := 0; col < e.Grid.Cols; col++ {
				pos := geng.Pt(e.X+col*e.Grid.StepX, e.Y+row*e.Grid.StepY)
				ids = append(ids, reg.Insert(d, pos))
			}
		}
	}
	return ids, nil
}

func (s *Scene) drawable(e Entry, tiles map[string]*geng.Tile) (geng.Drawable, error) {
	if e.Kind == "rect" {
		c, err := geng.ParseColor(e.Color)
		if err != nil {
			return nil, err
		}
		return geng.FillRect(e.Width, e.Height, c), nil
	}
	path := e.Bitmap
	if !filepath.IsAbs(path) && s.dir != "" {
		path = filepath.Join(s.dir, path)
	}
	if t, ok := tiles[path]; ok {
		return t, nil
	}
	t, err := geng.LoadTile(path)
	if err != nil {
		return nil, err
	}
	tiles[path] = t
	return t, nil
}
