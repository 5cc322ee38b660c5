package geng

import (
	"errors"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

const (
	defaultWidth  = 512
	defaultHeight = 512
	defaultTPS    = 50 // one frame every 20ms
)

// RunConfig holds the options for a Window. Zero fields take defaults.
type RunConfig struct {
	Title  string
	Width  int // canvas width in pixels (default 512)
	Height int // canvas height in pixels (default 512)
	TPS    int // update rate limit (default 50)

	// Keymap maps newly pressed keys to commands. Nil uses DefaultKeymap.
	Keymap Keymap

	// Spawn, when set, is inserted at the cursor on each right-button press.
	Spawn Drawable

	// FadeSeconds is how long background changes take. Zero is instant.
	FadeSeconds float64

	// ScreenshotDir is where Screenshot writes PNGs (default "screenshots").
	ScreenshotDir string

	// Input overrides the input source. Nil reads from ebiten.
	Input Input

	// Logger receives window events. Nil discards them.
	Logger *zap.Logger

	// Debug logs per-composite timing at debug level.
	Debug bool

	// AfterUpdate, if set, runs at the end of every Update.
	AfterUpdate func()
}

// Window is an ebiten.Game that presents a Registry on a fixed-size canvas
// and turns keyboard and mouse input into registry commands.
//
// A Window is open until Close is called or a close command is applied;
// closing is terminal.
type Window struct {
	reg    *Registry
	cfg    RunConfig
	keymap Keymap
	input  Input
	log    *zap.Logger

	open bool

	buf   []Color
	pix   []byte
	frame *ebiten.Image

	keyBuf       []ebiten.Key
	injectQueue  []frameInput
	lastX, lastY int
	rightDown    bool

	fade            fade
	screenshotQueue []string
	runner          *TestRunner
}

// NewWindow creates an open window over reg.
func NewWindow(reg *Registry, cfg RunConfig) *Window {
	if cfg.Width <= 0 {
		cfg.Width = defaultWidth
	}
	if cfg.Height <= 0 {
		cfg.Height = defaultHeight
	}
	if cfg.TPS <= 0 {
		cfg.TPS = defaultTPS
	}
	if cfg.ScreenshotDir == "" {
		cfg.ScreenshotDir = "screenshots"
	}
	w := &Window{
		reg:    reg,
		cfg:    cfg,
		keymap: cfg.Keymap,
		input:  cfg.Input,
		log:    cfg.Logger,
		open:   true,
		buf:    make([]Color, cfg.Width*cfg.Height),
		pix:    make([]byte, 4*cfg.Width*cfg.Height),
	}
	if w.keymap == nil {
		w.keymap = DefaultKeymap()
	}
	if w.input == nil {
		w.input = EbitenInput{}
	}
	if w.log == nil {
		w.log = zap.NewNop()
	}
	reg.Invalidate()
	return w
}

// Registry returns the registry this window presents.
func (w *Window) Registry() *Registry {
	return w.reg
}

// Open reports whether the window is still open.
func (w *Window) Open() bool {
	return w.open
}

// Close marks the window closed. The next Update ends the game loop.
func (w *Window) Close() {
	if w.open {
		w.log.Info("window closed")
	}
	w.open = false
}

// Size returns the canvas size in pixels.
func (w *Window) Size() (width, height int) {
	return w.cfg.Width, w.cfg.Height
}

// Update polls input, applies the resulting commands, and advances the
// background fade. It returns ebiten.Termination once the window is closed.
func (w *Window) Update() error {
	if w.runner != nil {
		w.runner.step(w)
	}
	if !w.open {
		return ebiten.Termination
	}

	in := w.poll()
	for _, k := range in.keys {
		cmd, ok := w.keymap[k]
		if !ok {
			continue
		}
		w.log.Debug("key",
			zap.Stringer("key", k),
			zap.Stringer("op", cmd.Op),
			zap.Uint64("id", uint64(cmd.ID)))
		w.Apply(cmd)
	}
	w.processPointer(in)

	if c, ok := w.fade.update(float32(1.0 / float64(w.cfg.TPS))); ok {
		w.reg.SetBackground(c)
	}

	if w.cfg.AfterUpdate != nil {
		w.cfg.AfterUpdate()
	}
	if !w.open {
		return ebiten.Termination
	}
	return nil
}

// Apply runs a single command, routing background changes through the fade
// when one is configured.
func (w *Window) Apply(cmd Command) {
	if cmd.Op == OpBackground && w.cfg.FadeSeconds > 0 {
		w.fade.start(w.reg.Background(), cmd.Color, float32(w.cfg.FadeSeconds))
		return
	}
	if cmd.Op == OpBackground {
		w.fade.active = false
	}
	if Apply(w.reg, cmd) {
		w.Close()
	}
}

// processPointer selects the topmost item under the cursor while the left
// button is held, and spawns cfg.Spawn on each right-button press.
func (w *Window) processPointer(in frameInput) {
	x := clamp(in.x, w.cfg.Width)
	y := clamp(in.y, w.cfg.Height)
	w.lastX, w.lastY = x, y

	if in.left {
		if id, ok := w.reg.HitTest(x, y); ok {
			if cur, sel := w.reg.Selected(); !sel || cur != id {
				w.reg.Select(id)
				w.log.Debug("select", zap.Uint64("id", uint64(id)), zap.Int("x", x), zap.Int("y", y))
			}
		}
	} else if in.right && !w.rightDown && w.cfg.Spawn != nil {
		id := w.reg.Insert(w.cfg.Spawn, Pt(x, y))
		w.log.Debug("spawn", zap.Uint64("id", uint64(id)), zap.Int("x", x), zap.Int("y", y))
	}
	w.rightDown = in.right
}

// render composites the registry into the CPU buffer when it is dirty and
// converts it to RGBA bytes. Queued screenshots are written from the buffer
// afterwards. Returns true when pix changed.
func (w *Window) render() bool {
	var t0 time.Time
	if w.cfg.Debug {
		t0 = time.Now()
	}
	changed := w.reg.Render(w.buf, w.cfg.Width)
	if changed {
		toRGBA(w.pix, w.buf)
		if w.cfg.Debug {
			w.debugLog(debugStats{renderTime: time.Since(t0), items: w.reg.Len()})
		}
	}
	w.flushScreenshots()
	return changed
}

// Draw presents the canvas. The frame image is only rewritten when the
// registry was dirty; otherwise the previous frame is drawn again.
func (w *Window) Draw(screen *ebiten.Image) {
	if w.frame == nil {
		w.frame = ebiten.NewImage(w.cfg.Width, w.cfg.Height)
		w.reg.Invalidate()
	}
	if w.render() {
		w.frame.WritePixels(w.pix)
	}
	screen.DrawImage(w.frame, nil)
}

// Layout returns the fixed canvas size regardless of the outside size.
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return w.cfg.Width, w.cfg.Height
}

// toRGBA converts packed colors into RGBA bytes. The presented frame is
// always opaque; the visibility byte only matters while compositing.
func toRGBA(dst []byte, src []Color) {
	for i, c := range src {
		o := i * 4
		dst[o] = uint8(c >> 16)
		dst[o+1] = uint8(c >> 8)
		dst[o+2] = uint8(c)
		dst[o+3] = 0xFF
	}
}

// Run opens the OS window and blocks until w is closed or presentation fails.
func Run(w *Window) error {
	title := w.cfg.Title
	if title == "" {
		title = "geng"
	}
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(w.cfg.Width, w.cfg.Height)
	ebiten.SetTPS(w.cfg.TPS)
	w.log.Info("window open",
		zap.String("title", title),
		zap.Int("width", w.cfg.Width),
		zap.Int("height", w.cfg.Height),
		zap.Int("items", w.reg.Len()))
	if err := ebiten.RunGame(w); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
