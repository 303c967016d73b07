// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/decker502/breakout/pkg/config"
	"github.com/decker502/breakout/pkg/entities"
	"github.com/decker502/breakout/pkg/game"
	"github.com/decker502/breakout/pkg/scenes"
	"github.com/decker502/breakout/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 玩法配置文件路径，为空则使用嵌入的 data/breakout.yaml
	ConfigPath string
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	cfg          *config.BreakoutConfig
	verbose      bool
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，应先调用 embedded.Init() 初始化嵌入数据；
// 未初始化时使用默认配置。
func NewApp(appCfg Config) (*App, error) {
	// 配置日志输出
	if !appCfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	cfg, err := config.ResolveBreakoutConfig(appCfg.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// 初始化音频上下文
	audioContext := audio.NewContext(48000)

	// 创建资源管理器并加载精灵（构建像素蒙板）
	resourceManager := game.NewResourceManager(audioContext)
	sprites, err := resourceManager.LoadSpriteSet(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to load sprites: %w", err)
	}
	resourceManager.RegisterSounds(cfg.Sounds)

	settingsManager := game.OpenSettingsManager(config.SettingsAppName)
	audioManager := game.NewAudioManager(resourceManager, settingsManager)
	audioManager.PreloadSounds([]string{game.SoundSwish, game.SoundCrash})
	log.Printf("[App] AudioManager initialized")

	// 创建场景管理器，重新开始时用同一份精灵创建新世界
	sceneManager := game.NewSceneManager()
	sceneManager.SetSceneFactory(func() (game.Scene, error) {
		return newGameScene(cfg, sprites, audioManager, settingsManager, sceneManager)
	})
	if !sceneManager.Restart() {
		return nil, fmt.Errorf("failed to create game scene")
	}

	log.Printf("[App] Started %dx%d breakout, %dx%d bricks",
		cfg.Viewport.Width, cfg.Viewport.Height, cfg.Bricks.Rows, cfg.Bricks.Columns)

	return &App{
		sceneManager: sceneManager,
		cfg:          cfg,
		verbose:      appCfg.Verbose,
	}, nil
}

// newGameScene 创建新的游戏世界与场景
func newGameScene(
	cfg *config.BreakoutConfig,
	sprites entities.SpriteSet,
	sounds game.SoundTrigger,
	settings *game.SettingsManager,
	sceneManager *game.SceneManager,
) (game.Scene, error) {
	ctx := game.NewGameContext(cfg.Viewport.Width, cfg.Viewport.Height, sounds)
	world, err := systems.NewWorld(ctx, cfg, sprites)
	if err != nil {
		return nil, err
	}
	return scenes.NewGameScene(world, settings, sceneManager), nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 窗口关闭或按 Esc 时保存设置并退出
	if ebiten.IsWindowBeingClosed() || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		if !a.sceneManager.SaveOnExit() {
			log.Printf("[App] Warning: failed to save on exit")
		}
		return ebiten.Termination
	}

	deltaTime := 1.0 / float64(ebiten.TPS())
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 逻辑尺寸跟随窗口大小，变化时通知当前场景调整挡板位置
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth <= 0 || outsideHeight <= 0 {
		return a.cfg.Viewport.Width, a.cfg.Viewport.Height
	}
	a.sceneManager.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// WindowSize 返回配置中的初始窗口尺寸
func (a *App) WindowSize() (int, int) {
	return a.cfg.Viewport.Width, a.cfg.Viewport.Height
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
