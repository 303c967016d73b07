// breakout-term 在终端中运行打砖块
//
// 用法:
//
//	go run ./cmd/breakout-term [--config data/breakout.yaml] [--fps 60] [--log breakout.log]
//
// 碰撞检测与窗口版完全相同，只是把像素坐标缩放到字符格中绘制。
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/decker502/breakout/internal/terminal"
	"github.com/decker502/breakout/pkg/config"
	"github.com/decker502/breakout/pkg/game"
	"github.com/decker502/breakout/pkg/systems"
	"github.com/gdamore/tcell/v2"
)

var (
	configPath = flag.String("config", "", "Path to breakout.yaml (defaults to data/breakout.yaml if present)")
	fps        = flag.Int("fps", 60, "Frames per second")
	logPath    = flag.String("log", "", "Write logs to this file (logging is disabled otherwise)")
	mute       = flag.Bool("mute", false, "Start with sound disabled")
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "breakout-term: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// 日志会破坏终端画面，只允许写入文件
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
		log.SetOutput(f)
	} else {
		log.SetOutput(io.Discard)
	}

	path := *configPath
	if path == "" {
		if _, err := os.Stat(config.DefaultBreakoutConfigPath); err == nil {
			path = config.DefaultBreakoutConfigPath
		}
	}
	cfg, err := config.ResolveBreakoutConfig(path)
	if err != nil {
		return err
	}

	resourceManager := game.NewHeadlessResourceManager()
	sprites, err := resourceManager.LoadSpriteSet(cfg)
	if err != nil {
		return fmt.Errorf("failed to load sprites: %w", err)
	}

	settings := game.OpenSettingsManager(config.SettingsAppName)
	if *mute {
		settings.SetSoundEnabled(false)
	}

	sounds := terminal.NewBeepSounds()
	if err := sounds.Init(); err != nil {
		// 没有音频设备时无声运行
		log.Printf("[Terminal] Audio initialization failed: %v", err)
	}
	defer sounds.Close()

	newWorld := func() (*systems.World, error) {
		ctx := game.NewGameContext(cfg.Viewport.Width, cfg.Viewport.Height, sounds)
		return systems.NewWorld(ctx, cfg, sprites)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	g, err := terminal.NewGame(screen, newWorld, sounds, settings, *fps)
	if err != nil {
		return err
	}
	defer g.Close()

	g.Run()
	return nil
}
