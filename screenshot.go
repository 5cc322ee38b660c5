package geng

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Screenshot queues a labeled screenshot. It is written after the next Draw
// as a PNG in RunConfig.ScreenshotDir with a timestamped filename. Safe to
// call from Update or Draw.
func (w *Window) Screenshot(label string) {
	w.screenshotQueue = append(w.screenshotQueue, label)
}

// flushScreenshots writes the current canvas once for every queued label.
func (w *Window) flushScreenshots() {
	if len(w.screenshotQueue) == 0 {
		return
	}
	defer func() { w.screenshotQueue = w.screenshotQueue[:0] }()

	dir := w.cfg.ScreenshotDir
	if err := os.MkdirAll(dir, 0o755); err != nil {
		w.log.Warn("screenshot: mkdir", zap.String("dir", dir), zap.Error(err))
		return
	}

	img := canvasImage(w.buf, w.cfg.Width, w.cfg.Height)
	stamp := time.Now().Format("20060102_150405")
	for _, label := range w.screenshotQueue {
		path := filepath.Join(dir, fmt.Sprintf("%s_%s.png", stamp, sanitizeLabel(label)))
		if err := writePNG(path, img); err != nil {
			w.log.Warn("screenshot", zap.Error(err))
			continue
		}
		w.log.Info("screenshot", zap.String("path", path))
	}
}

// canvasImage copies a composited buffer into an opaque NRGBA image.
func canvasImage(buf []Color, width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	toRGBA(img.Pix, buf[:width*height])
	return img
}

// writePNG encodes an image to a PNG file at the given path.
func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel replaces characters that are unsafe in file names with
// underscores and falls back to "unlabeled" for empty strings.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
