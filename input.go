package geng

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input is the window's view of the keyboard and mouse for one frame.
type Input interface {
	// AppendJustPressedKeys appends keys pressed this frame (no auto-repeat).
	AppendJustPressedKeys(keys []ebiten.Key) []ebiten.Key
	// CursorPosition returns the cursor in canvas pixels, possibly outside it.
	CursorPosition() (x, y int)
	// IsMouseButtonPressed reports whether b is currently held.
	IsMouseButtonPressed(b MouseButton) bool
}

// EbitenInput reads input from the running ebiten game.
type EbitenInput struct{}

func (EbitenInput) AppendJustPressedKeys(keys []ebiten.Key) []ebiten.Key {
	return inpututil.AppendJustPressedKeys(keys)
}

func (EbitenInput) CursorPosition() (x, y int) {
	return ebiten.CursorPosition()
}

func (EbitenInput) IsMouseButtonPressed(b MouseButton) bool {
	switch b {
	case MouseButtonRight:
		return ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	case MouseButtonMiddle:
		return ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)
	default:
		return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	}
}

// frameInput is one frame's worth of input, polled or injected. Cursor
// coordinates are canvas pixels.
type frameInput struct {
	keys        []ebiten.Key
	x, y        int
	left, right bool
}

// InjectKey queues a frame in which key is newly pressed. The cursor stays
// where the previous frame left it.
func (w *Window) InjectKey(key ebiten.Key) {
	x, y := w.lastX, w.lastY
	if n := len(w.injectQueue); n > 0 {
		x, y = w.injectQueue[n-1].x, w.injectQueue[n-1].y
	}
	w.injectQueue = append(w.injectQueue, frameInput{keys: []ebiten.Key{key}, x: x, y: y})
}

// InjectPress queues a frame with button held at (x, y).
func (w *Window) InjectPress(x, y int, button MouseButton) {
	w.injectQueue = append(w.injectQueue, frameInput{
		x: x, y: y,
		left:  button == MouseButtonLeft,
		right: button == MouseButtonRight,
	})
}

// InjectRelease queues a frame with no buttons held at (x, y).
func (w *Window) InjectRelease(x, y int) {
	w.injectQueue = append(w.injectQueue, frameInput{x: x, y: y})
}

// InjectClick queues a press followed by a release at the same position.
// Consumes two frames.
func (w *Window) InjectClick(x, y int, button MouseButton) {
	w.InjectPress(x, y, button)
	w.InjectRelease(x, y)
}

// poll returns this frame's input. A queued synthetic event takes the place
// of real input for the frame it is consumed in.
func (w *Window) poll() frameInput {
	if len(w.injectQueue) > 0 {
		evt := w.injectQueue[0]
		copy(w.injectQueue, w.injectQueue[1:])
		w.injectQueue = w.injectQueue[:len(w.injectQueue)-1]
		return evt
	}
	in := w.input
	w.keyBuf = in.AppendJustPressedKeys(w.keyBuf[:0])
	x, y := in.CursorPosition()
	return frameInput{
		keys:  w.keyBuf,
		x:     x,
		y:     y,
		left:  in.IsMouseButtonPressed(MouseButtonLeft),
		right: in.IsMouseButtonPressed(MouseButtonRight),
	}
}

// clamp limits v to [0, n-1].
func clamp(v, n int) int {
	if v < 0 {
		return 0
	}
	if v >= n {
		return n - 1
	}
	return v
}
