package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/SveOls/geng"
)

type Config struct {
	Window  WindowConfig  `toml:"window"`
	Scene   SceneConfig   `toml:"scene"`
	Keys    []KeyBinding  `toml:"keys"`
	Logging LoggingConfig `toml:"logging"`
	Debug   DebugConfig   `toml:"debug"`
}

type WindowConfig struct {
	Title       string  `toml:"title"`
	Width       int     `toml:"width"`
	Height      int     `toml:"height"`
	TPS         int     `toml:"tps"`          // update rate limit
	Background  string  `toml:"background"`   // "#RRGGBB" or "0xAARRGGBB"
	FadeSeconds float64 `toml:"fade_seconds"` // 0 = instant background changes
}

type SceneConfig struct {
	File       string `toml:"file"`        // YAML scene layout; empty = built-in demo
	SpawnColor string `toml:"spawn_color"` // right-click rectangle color; empty disables spawning
	SpawnW     int    `toml:"spawn_width"`
	SpawnH     int    `toml:"spawn_height"`
}

// KeyBinding maps one key to one command. Color is read by "background",
// ID by "remove" and "select".
type KeyBinding struct {
	Key   string `toml:"key"`
	Op    string `toml:"op"`
	Color string `toml:"color"`
	ID    uint64 `toml:"id"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

type DebugConfig struct {
	Enabled       bool   `toml:"enabled"`
	ScreenshotDir string `toml:"screenshot_dir"`
	Script        string `toml:"script"` // JSON test script run on startup
}

// Load reads the TOML file at path over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:       "tester",
			Width:       512,
			Height:      512,
			TPS:         50,
			Background:  "0xDDDDDD",
			FadeSeconds: 0,
		},
		Scene: SceneConfig{
			SpawnColor: "0xAA00FF00",
			SpawnW:     30,
			SpawnH:     20,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Debug: DebugConfig{
			ScreenshotDir: "screenshots",
		},
	}
}

// BackgroundColor parses Window.Background.
func (c *Config) BackgroundColor() (geng.Color, error) {
	if c.Window.Background == "" {
		return geng.DefaultBackground, nil
	}
	col, err := geng.ParseColor(c.Window.Background)
	if err != nil {
		return 0, fmt.Errorf("window.background: %w", err)
	}
	return col, nil
}

// Spawn returns the right-click drawable, or nil when spawning is disabled.
func (c *Config) Spawn() (geng.Drawable, error) {
	if c.Scene.SpawnColor == "" || c.Scene.SpawnW <= 0 || c.Scene.SpawnH <= 0 {
		return nil, nil
	}
	col, err := geng.ParseColor(c.Scene.SpawnColor)
	if err != nil {
		return nil, fmt.Errorf("scene.spawn_color: %w", err)
	}
	return geng.FillRect(c.Scene.SpawnW, c.Scene.SpawnH, col), nil
}

// Keymap converts the [[keys]] bindings. With no bindings configured the
// stock geng.DefaultKeymap is returned.
func (c *Config) Keymap() (geng.Keymap, error) {
	if len(c.Keys) == 0 {
		return geng.DefaultKeymap(), nil
	}
	km := make(geng.Keymap, len(c.Keys))
	for i, b := range c.Keys {
		k, cmd, err := b.parse()
		if err != nil {
			return nil, fmt.Errorf("keys[%d]: %w", i, err)
		}
		km[k] = cmd
	}
	return km, nil
}

func (b KeyBinding) parse() (ebiten.Key, geng.Command, error) {
	k, err := geng.ParseKey(b.Key)
	if err != nil {
		return 0, geng.Command{}, err
	}
	op, err := geng.ParseOp(b.Op)
	if err != nil {
		return 0, geng.Command{}, err
	}
	cmd := geng.Command{Op: op, ID: geng.ID(b.ID)}
	if op == geng.OpBackground {
		if cmd.Color, err = geng.ParseColor(b.Color); err != nil {
			return 0, geng.Command{}, err
		}
	}
	return k, cmd, nil
}
