package terminal

import (
	"fmt"
	"log"
	"time"

	"github.com/decker502/breakout/pkg/game"
	"github.com/decker502/breakout/pkg/systems"
	"github.com/gdamore/tcell/v2"
)

// WorldFactory 创建新的游戏世界（开始和重新开始时调用）
type WorldFactory func() (*systems.World, error)

// Game 终端版游戏循环
//
// 事件在单独的 goroutine 中读取并经 channel 交给帧循环，
// World 只在帧循环所在的 goroutine 中访问。
type Game struct {
	screen   tcell.Screen
	renderer *Renderer
	latch    *KeyLatch
	sounds   *BeepSounds
	settings *game.SettingsManager
	newWorld WorldFactory

	world  *systems.World
	paused bool
	fps    int
}

// NewGame 创建终端游戏
//
// 参数:
//   - screen: 已初始化的 tcell 屏幕
//   - newWorld: 世界工厂
//   - sounds: beep 音效（可为 nil）
//   - settings: 玩家设置（可为 nil）
//   - fps: 帧率
func NewGame(screen tcell.Screen, newWorld WorldFactory, sounds *BeepSounds, settings *game.SettingsManager, fps int) (*Game, error) {
	if fps <= 0 {
		return nil, fmt.Errorf("fps must be positive, got %d", fps)
	}
	world, err := newWorld()
	if err != nil {
		return nil, fmt.Errorf("failed to create world: %w", err)
	}

	g := &Game{
		screen:   screen,
		renderer: NewRenderer(screen),
		latch:    NewKeyLatch(DefaultHoldWindow),
		sounds:   sounds,
		settings: settings,
		newWorld: newWorld,
		world:    world,
		fps:      fps,
	}
	if sounds != nil && settings != nil {
		sounds.SetEnabled(settings.GetSettings().SoundEnabled)
		sounds.SetVolume(settings.GetSettings().SoundVolume)
	}
	return g, nil
}

// World 返回当前世界
func (g *Game) World() *systems.World {
	return g.world
}

// HandleEvent 处理一个 tcell 事件
// 返回 false 表示退出
func (g *Game) HandleEvent(ev tcell.Event, now time.Time) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return g.handleKey(ev, now)
	case *tcell.EventResize:
		g.screen.Sync()
	}
	return true
}

func (g *Game) handleKey(ev *tcell.EventKey, now time.Time) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyLeft:
		g.latch.PressLeft(now)
		return true
	case tcell.KeyRight:
		g.latch.PressRight(now)
		return true
	case tcell.KeyRune:
	default:
		return true
	}

	switch ev.Rune() {
	case 'q':
		return false
	case 'a', 'h':
		g.latch.PressLeft(now)
	case 'd', 'l':
		g.latch.PressRight(now)
	case ' ':
		g.latch.Release()
	case 'p':
		g.paused = !g.paused
	case 'r':
		g.restart()
	case 'm':
		g.toggleSound()
	}
	return true
}

func (g *Game) restart() {
	world, err := g.newWorld()
	if err != nil {
		log.Printf("[Terminal] Failed to restart: %v", err)
		return
	}
	g.world = world
	g.paused = false
	g.latch.Release()
	log.Printf("[Terminal] Restarted")
}

func (g *Game) toggleSound() {
	enabled := true
	if g.settings != nil {
		enabled = g.settings.ToggleSound()
	} else if g.sounds != nil {
		enabled = !g.sounds.Enabled()
	}
	if g.sounds != nil {
		g.sounds.SetEnabled(enabled)
	}
}

// Step 推进一帧并重绘
func (g *Game) Step(now time.Time) systems.FrameOutcome {
	outcome := systems.FrameNone
	if !g.paused && !g.world.Cleared() {
		outcome = g.world.Update(1.0/float64(g.fps), g.latch.Input(now))
	}
	g.renderer.Draw(g.world, g.statusText())
	return outcome
}

// statusText 状态栏文字
func (g *Game) statusText() string {
	round := g.world.Round()
	text := fmt.Sprintf(" Bricks: %d  Lost: %d  Round: %s  [←/→ move, p pause, r restart, m sound, q quit]",
		g.world.RemainingBricks(), round.RoundsLost, round.Phase)
	switch {
	case g.world.Cleared():
		text = " Cleared! r to play again, q to quit"
	case g.paused:
		text = " Paused (p to resume)"
	}
	return text
}

// Run 运行事件循环直到退出
func (g *Game) Run() {
	ticker := time.NewTicker(time.Second / time.Duration(g.fps))
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				// 屏幕已关闭
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev, ok := <-eventChan:
			if !ok || !g.HandleEvent(ev, time.Now()) {
				return
			}
		case now := <-ticker.C:
			g.Step(now)
		}
	}
}

// Close 保存设置
func (g *Game) Close() {
	if g.settings != nil {
		if err := g.settings.Save(); err != nil {
			log.Printf("[Terminal] Failed to save settings: %v", err)
		}
	}
}
