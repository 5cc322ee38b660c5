package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/SveOls/geng"
	"github.com/SveOls/geng/ecs"
	"github.com/SveOls/geng/internal/config"
	"github.com/SveOls/geng/internal/scenefile"
)

const defaultConfigPath = "config/geng.toml"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// A missing .env is normal; anything in it only seeds the environment.
	_ = godotenv.Load()

	// 1. Load config
	cfgPath := defaultConfigPath
	if p := os.Getenv("GENG_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.Load(cfgPath)
	if errors.Is(err, fs.ErrNotExist) && cfgPath == defaultConfigPath {
		cfg, err = config.Default(), nil
	}
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// 2. Init logger
	log, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	// 3. Build the registry and forward its events through donburi
	bg, err := cfg.BackgroundColor()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	reg := geng.NewRegistry(bg)

	world := donburi.NewWorld()
	reg.SetEventSink(ecs.NewDonburiSink(world))
	ecs.SceneEventType.Subscribe(world, func(w donburi.World, e geng.SceneEvent) {
		log.Debug("scene event",
			zap.Stringer("type", e.Type),
			zap.Uint64("id", uint64(e.ID)),
			zap.Int("x", e.Pos.X),
			zap.Int("y", e.Pos.Y))
	})

	// 4. Populate the scene
	n, err := populate(reg, cfg.Scene.File)
	if err != nil {
		return fmt.Errorf("scene: %w", err)
	}
	log.Info("scene loaded", zap.Int("items", n), zap.String("file", cfg.Scene.File))

	// 5. Window
	keymap, err := cfg.Keymap()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	spawn, err := cfg.Spawn()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	w := geng.NewWindow(reg, geng.RunConfig{
		Title:         cfg.Window.Title,
		Width:         cfg.Window.Width,
		Height:        cfg.Window.Height,
		TPS:           cfg.Window.TPS,
		Keymap:        keymap,
		Spawn:         spawn,
		FadeSeconds:   cfg.Window.FadeSeconds,
		ScreenshotDir: cfg.Debug.ScreenshotDir,
		Logger:        log,
		Debug:         cfg.Debug.Enabled,
		AfterUpdate: func() {
			ecs.SceneEventType.ProcessEvents(world)
		},
	})

	if cfg.Debug.Script != "" {
		raw, err := os.ReadFile(cfg.Debug.Script)
		if err != nil {
			return fmt.Errorf("read test script: %w", err)
		}
		runner, err := geng.LoadTestScript(raw)
		if err != nil {
			return err
		}
		w.SetTestRunner(runner)
	}

	if err := geng.Run(w); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}

// populate fills reg from a scene file, or with the built-in demo layout
// when path is empty.
func populate(reg *geng.Registry, path string) (int, error) {
	if path != "" {
		s, err := scenefile.Load(path)
		if err != nil {
			return 0, err
		}
		ids, err := s.Populate(reg)
		return len(ids), err
	}
	// 16 columns by 15 rows of 32px cells, leaving the top row empty.
	cell := geng.NewTile(checker(30, 0xFF3C6E91, 0xFF284B63))
	for j := 1; j < 16; j++ {
		for i := 0; i < 16; i++ {
			reg.Insert(cell, geng.Pt(32*i, 32*j))
		}
	}
	reg.Insert(geng.FillRect(30, 20, 0xAA00FF00), geng.Pt(8, 6))
	return reg.Len(), nil
}

// checker returns an n x n two-color checkerboard with 5px squares.
func checker(n int, a, b geng.Color) [][]geng.Color {
	rows := make([][]geng.Color, n)
	for y := range rows {
		rows[y] = make([]geng.Color, n)
		for x := range rows[y] {
			if (x/5+y/5)%2 == 0 {
				rows[y][x] = a
			} else {
				rows[y][x] = b
			}
		}
	}
	return rows
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
