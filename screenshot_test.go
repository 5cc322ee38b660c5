package geng

import (
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"hello", "hello"},
		{"after-spawn", "after-spawn"},
		{"frame.01", "frame.01"},
		{"has spaces", "has_spaces"},
		{"path/to/thing", "path_to_thing"},
		{"back\\slash", "back_slash"},
		{"", "unlabeled"},
		{"   ", "unlabeled"},
	}
	for _, tt := range tests {
		if got := sanitizeLabel(tt.in); got != tt.want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestScreenshotQueue(t *testing.T) {
	w, _ := newTestWindow(t, RunConfig{})
	w.Screenshot("a")
	w.Screenshot("b")
	if len(w.screenshotQueue) != 2 || w.screenshotQueue[0] != "a" || w.screenshotQueue[1] != "b" {
		t.Fatalf("queue = %v, want [a b]", w.screenshotQueue)
	}
}

func TestScreenshotDirDefault(t *testing.T) {
	w := NewWindow(NewRegistry(bgTest), RunConfig{})
	if w.cfg.ScreenshotDir != "screenshots" {
		t.Errorf("ScreenshotDir = %q, want %q", w.cfg.ScreenshotDir, "screenshots")
	}
}

func TestScreenshotWritesCanvas(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	w, _ := newTestWindow(t, RunConfig{Width: 3, Height: 2, ScreenshotDir: dir})
	w.Registry().Insert(FillRect(1, 1, red), Pt(2, 1))

	w.Screenshot("after spawn")
	w.render()
	if len(w.screenshotQueue) != 0 {
		t.Errorf("queue not cleared: %v", w.screenshotQueue)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || !strings.HasSuffix(entries[0].Name(), "_after_spawn.png") {
		t.Fatalf("screenshot dir = %v", entries)
	}

	f, err := os.Open(filepath.Join(dir, entries[0].Name()))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 3 || b.Dy() != 2 {
		t.Fatalf("bounds = %v", b)
	}
	if r, g, b, a := img.At(2, 1).RGBA(); r>>8 != 0xFF || g != 0 || b != 0 || a>>8 != 0xFF {
		t.Errorf("(2,1) = %d %d %d %d, want opaque red", r, g, b, a)
	}
	if r, _, _, _ := img.At(0, 0).RGBA(); r>>8 != 0x10 {
		t.Errorf("(0,0) red = %#x, want background 0x10", r>>8)
	}
}

func TestScreenshotUsesLastFrameWhenClean(t *testing.T) {
	dir := t.TempDir()
	w, _ := newTestWindow(t, RunConfig{Width: 2, Height: 2, ScreenshotDir: dir})
	w.render()

	w.Screenshot("clean")
	if w.render() {
		t.Error("clean registry recomposited")
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Errorf("got %d files, want 1", len(entries))
	}
}
