package geng

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is a packed 0xAARRGGBB pixel. The top byte is a visibility flag
// rather than a blend factor: zero means transparent, anything else is drawn
// as a solid pixel.
type Color uint32

// Transparent is the zero Color. Drawables skip it when blitting.
const Transparent Color = 0

// DefaultBackground is the light grey used when no background is configured.
const DefaultBackground Color = 0xDDDDDD

// RGB returns a fully opaque Color from 8-bit channels.
func RGB(r, g, b uint8) Color {
	return 0xFF000000 | Color(r)<<16 | Color(g)<<8 | Color(b)
}

// Visible reports whether the visibility byte is non-zero.
func (c Color) Visible() bool {
	return c>>24 != 0
}

// Opaque returns c with the visibility byte forced to 0xFF.
func (c Color) Opaque() Color {
	return c | 0xFF000000
}

// Channels splits c into its alpha, red, green and blue bytes.
func (c Color) Channels() (a, r, g, b uint8) {
	return uint8(c >> 24), uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// String formats c as 0xAARRGGBB.
func (c Color) String() string {
	return fmt.Sprintf("0x%08X", uint32(c))
}

// ParseColor accepts "#RRGGBB" (opaque), "#AARRGGBB", or a 0x-prefixed hex
// literal taken as-is, so "0xDDDDDD" keeps a zero visibility byte.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(s, "#"):
		hex := s[1:]
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return 0, fmt.Errorf("parse color %q: %w", s, err)
		}
		switch len(hex) {
		case 6:
			return Color(v).Opaque(), nil
		case 8:
			return Color(v), nil
		}
		return 0, fmt.Errorf("parse color %q: want 6 or 8 hex digits", s)
	case strings.HasPrefix(s, "0x"), strings.HasPrefix(s, "0X"):
		v, err := strconv.ParseUint(s[2:], 16, 32)
		if err != nil {
			return 0, fmt.Errorf("parse color %q: %w", s, err)
		}
		return Color(v), nil
	}
	return 0, fmt.Errorf("parse color %q: missing # or 0x prefix", s)
}

// Point is an integer pixel position. Origin is the top-left of the canvas,
// Y grows downward.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// EventType identifies a registry change forwarded to an EventSink.
type EventType uint8

const (
	EventInsert     EventType = iota // an item was added on top
	EventRemove                      // an item was removed and its id freed
	EventSelect                      // the selection was set
	EventDeselect                    // the selection was cleared
	EventBackground                  // the background color changed
)

var eventNames = [...]string{"insert", "remove", "select", "deselect", "background"}

func (t EventType) String() string {
	if int(t) < len(eventNames) {
		return eventNames[t]
	}
	return "EventType(" + strconv.Itoa(int(t)) + ")"
}

// SceneEvent describes a single registry change.
type SceneEvent struct {
	Type  EventType
	ID    ID
	Pos   Point // item position for insert/remove; zero otherwise
	Color Color // new background for EventBackground
}

// EventSink is the interface for optional event forwarding.
// When set on a Registry, every mutation is reported to it.
type EventSink interface {
	EmitEvent(event SceneEvent)
}
