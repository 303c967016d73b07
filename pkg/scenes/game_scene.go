package scenes

import (
	"fmt"
	"image/color"
	"log"

	"github.com/decker502/breakout/pkg/components"
	"github.com/decker502/breakout/pkg/entities"
	"github.com/decker502/breakout/pkg/game"
	"github.com/decker502/breakout/pkg/systems"
	"github.com/decker502/breakout/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	// 背景色（原版的 CornflowerBlue）
	backgroundColor = color.RGBA{R: 100, G: 149, B: 237, A: 255}

	boundaryColor = color.RGBA{R: 255, G: 255, B: 0, A: 200}
)

// GameScene 打砖块游戏场景
//
// 负责把键盘/触摸输入转换为 systems.Input、推进 World 并绘制精灵。
// 所有玩法逻辑都在 World 中，场景本身不持有游戏状态。
type GameScene struct {
	world        *systems.World
	settings     *game.SettingsManager
	sceneManager *game.SceneManager

	paused      bool
	lastOutcome systems.FrameOutcome
}

// NewGameScene 创建游戏场景
//
// 参数:
//   - world: 已创建好的游戏世界
//   - settings: 玩家设置（可为 nil，此时声音/边框开关不可用）
//   - sceneManager: 场景管理器，用于 R 键重新开始（可为 nil）
func NewGameScene(world *systems.World, settings *game.SettingsManager, sceneManager *game.SceneManager) *GameScene {
	return &GameScene{
		world:        world,
		settings:     settings,
		sceneManager: sceneManager,
	}
}

// Update 处理输入并推进一帧
func (s *GameScene) Update(deltaTime float64) {
	s.handleHotkeys()

	if s.paused || s.world.Cleared() {
		return
	}

	input := readInput(s.world.Context().Viewport.Width)
	s.lastOutcome = s.world.Update(deltaTime, input)
	if s.world.Cleared() {
		log.Printf("[GameScene] All bricks cleared after %d frames", s.world.Context().Clock.Frames)
	}
}

// handleHotkeys 处理单次按键
func (s *GameScene) handleHotkeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		s.paused = !s.paused
		log.Printf("[GameScene] Paused: %v", s.paused)
	}

	restart := inpututil.IsKeyJustPressed(ebiten.KeyR) ||
		(s.world.Cleared() && len(inpututil.AppendJustPressedTouchIDs(nil)) > 0)
	if restart && s.sceneManager != nil {
		s.saveSettings()
		s.sceneManager.Restart()
		return
	}

	if s.settings == nil {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		enabled := s.settings.ToggleSound()
		log.Printf("[GameScene] Sound enabled: %v", enabled)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		s.settings.ToggleBoundaries()
	}
}

// readInput 读取本帧的方向输入
// 键盘：左右方向键或 A/D；触摸或鼠标：按在屏幕左半边向左，右半边向右
func readInput(viewportWidth int) systems.Input {
	return inputFromState(
		ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		utils.AppendPointerXs(nil),
		viewportWidth,
	)
}

// inputFromState 把按键与指针位置合并为 systems.Input
func inputFromState(left, right bool, pointerXs []int, viewportWidth int) systems.Input {
	input := systems.Input{Left: left, Right: right}
	half := viewportWidth / 2
	for _, x := range pointerXs {
		if x < half {
			input.Left = true
		} else {
			input.Right = true
		}
	}
	return input
}

// Draw 绘制砖块、挡板、球和状态栏
func (s *GameScene) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	showBoundaries := s.settings != nil && s.settings.GetSettings().ShowBoundaries

	for _, brick := range s.world.Bricks() {
		drawBody(screen, brick.Body, showBoundaries)
	}
	drawBody(screen, s.world.Paddle().Body, showBoundaries)
	drawBody(screen, s.world.Ball().Body, showBoundaries)

	ebitenutil.DebugPrintAt(screen, s.statusText(), 10, s.world.Context().Viewport.Height/2)
}

// statusText 状态栏文字
func (s *GameScene) statusText() string {
	round := s.world.Round()
	text := fmt.Sprintf("Bricks: %d  Lost: %d  Round: %s",
		s.world.RemainingBricks(), round.RoundsLost, round.Phase)
	if s.settings != nil && !s.settings.GetSettings().SoundEnabled {
		text += "  [muted]"
	}
	switch {
	case s.world.Cleared() && utils.IsMobile():
		text += "\nCleared! Tap to play again"
	case s.world.Cleared():
		text += "\nCleared! Press R to play again"
	case s.paused:
		text += "\nPaused (P to resume)"
	case round.Phase == components.RoundPreDelay && utils.IsMobile():
		text += "\nTouch the left or right half to move"
	case round.Phase == components.RoundPreDelay:
		text += "\nArrows/A/D move, P pause, M sound, B boxes, R restart"
	}
	return text
}

// drawBody 按碰撞使用的同一变换绘制精灵，保证画面与碰撞一致
func drawBody(screen *ebiten.Image, body entities.Body, showBoundary bool) {
	if body.Sprite.Image != nil {
		op := &ebiten.DrawImageOptions{}
		op.GeoM = body.Transform().GeoM()
		screen.DrawImage(body.Sprite.Image, op)
	}

	if showBoundary {
		r := body.Boundary()
		vector.StrokeRect(screen, float32(r.Min.X), float32(r.Min.Y),
			float32(r.Dx()), float32(r.Dy()), 1, boundaryColor, false)
	}
}

// Resize 实现 game.Resizable
func (s *GameScene) Resize(width, height int) {
	s.world.Resize(width, height)
}

// SaveOnExit 实现 game.Saveable，退出时保存玩家设置
func (s *GameScene) SaveOnExit() bool {
	return s.saveSettings()
}

func (s *GameScene) saveSettings() bool {
	if s.settings == nil {
		return true
	}
	if err := s.settings.Save(); err != nil {
		log.Printf("[GameScene] Failed to save settings: %v", err)
		return false
	}
	return true
}

// LastOutcome 返回上一帧的碰撞结果
func (s *GameScene) LastOutcome() systems.FrameOutcome {
	return s.lastOutcome
}
