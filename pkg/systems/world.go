package systems

import (
	"fmt"
	"log"

	"github.com/decker502/breakout/pkg/components"
	"github.com/decker502/breakout/pkg/config"
	"github.com/decker502/breakout/pkg/ecs"
	"github.com/decker502/breakout/pkg/entities"
	"github.com/decker502/breakout/pkg/game"
)

// World 组合所有实体与系统，每帧按固定顺序推进
//
// 帧顺序：回合计时 → 碰撞 → 挡板移动 → 球移动 → 清理已删除实体
type World struct {
	ctx *game.GameContext
	cfg *config.BreakoutConfig
	em  *ecs.EntityManager

	ballID   ecs.EntityID
	paddleID ecs.EntityID
	gridID   ecs.EntityID
	roundID  ecs.EntityID

	roundSystem    *RoundSystem
	physicsSystem  *PhysicsSystem
	paddleSystem   *PaddleSystem
	movementSystem *MovementSystem
}

// NewWorld 创建游戏世界
//
// 参数:
//   - ctx: 游戏上下文；视口尺寸取自 ctx.Viewport
//   - cfg: 玩法配置
//   - sprites: 球、挡板与各色砖块的精灵（蒙板必须齐全）
func NewWorld(ctx *game.GameContext, cfg *config.BreakoutConfig, sprites entities.SpriteSet) (*World, error) {
	if ctx == nil {
		return nil, fmt.Errorf("game context cannot be nil")
	}
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if err := sprites.Validate(cfg.Bricks.Colors); err != nil {
		return nil, fmt.Errorf("invalid sprite set: %w", err)
	}

	w := &World{
		ctx: ctx,
		cfg: cfg,
		em:  ecs.NewEntityManager(),
	}

	viewport := config.ViewportConfig{Width: ctx.Viewport.Width, Height: ctx.Viewport.Height}

	var err error
	if w.gridID, err = entities.NewBrickGrid(w.em, cfg.Bricks, viewport.Width, sprites.Bricks); err != nil {
		return nil, fmt.Errorf("failed to create bricks: %w", err)
	}
	if w.ballID, err = entities.NewBallEntity(w.em, cfg.Ball, sprites.Ball); err != nil {
		return nil, fmt.Errorf("failed to create ball: %w", err)
	}
	if w.paddleID, err = entities.NewPaddleEntity(w.em, cfg.Paddle, viewport, sprites.Paddle); err != nil {
		return nil, fmt.Errorf("failed to create paddle: %w", err)
	}
	w.roundID = entities.NewRoundEntity(w.em, cfg.Round.Delay)

	w.roundSystem = NewRoundSystem(w.em, w.roundID, w.ballID)
	w.physicsSystem = NewPhysicsSystem(w.em, ctx, w.roundSystem, w.ballID, w.paddleID, w.gridID)
	w.paddleSystem = NewPaddleSystem(w.em, ctx, w.paddleID)
	w.movementSystem = NewMovementSystem(w.em)

	log.Printf("[World] Created %dx%d world with %d bricks", viewport.Width, viewport.Height, w.RemainingBricks())
	return w, nil
}

// Update 推进一帧
//
// 参数:
//   - dt: 帧时间（秒）
//   - input: 本帧的左右方向键状态
//
// 返回本帧的碰撞结果
func (w *World) Update(dt float64, input Input) FrameOutcome {
	w.ctx.Clock.Tick(dt)

	w.roundSystem.Update(dt)
	outcome := w.physicsSystem.Update(dt)
	w.paddleSystem.Update(dt, input)
	w.movementSystem.Update(dt)

	w.em.RemoveMarkedEntities()
	return outcome
}

// Resize 视口尺寸变化
func (w *World) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	if width == w.ctx.Viewport.Width && height == w.ctx.Viewport.Height {
		return
	}
	w.ctx.Viewport = game.Viewport{Width: width, Height: height}
	w.paddleSystem.FitViewport()
	log.Printf("[World] Viewport resized to %dx%d", width, height)
}

// Context 返回游戏上下文
func (w *World) Context() *game.GameContext {
	return w.ctx
}

// Ball 返回球的视图
func (w *World) Ball() entities.Ball {
	ball, _ := entities.BallOf(w.em, w.ballID)
	return ball
}

// Paddle 返回挡板的视图
func (w *World) Paddle() entities.Paddle {
	paddle, _ := entities.PaddleOf(w.em, w.paddleID)
	return paddle
}

// Bricks 返回所有未击碎的砖块（按行、列顺序）
func (w *World) Bricks() []entities.Brick {
	grid, ok := ecs.GetComponent[*components.BrickGridComponent](w.em, w.gridID)
	if !ok {
		return nil
	}
	bricks := make([]entities.Brick, 0, grid.Remaining())
	for _, row := range grid.Rows {
		for _, id := range row {
			if brick, ok := entities.BrickOf(w.em, id); ok {
				bricks = append(bricks, brick)
			}
		}
	}
	return bricks
}

// RemainingBricks 返回剩余砖块数
func (w *World) RemainingBricks() int {
	grid, ok := ecs.GetComponent[*components.BrickGridComponent](w.em, w.gridID)
	if !ok {
		return 0
	}
	return grid.Remaining()
}

// Cleared 所有砖块都已击碎
func (w *World) Cleared() bool {
	return w.RemainingBricks() == 0
}

// Round 返回当前回合状态的副本
func (w *World) Round() components.RoundComponent {
	round, ok := ecs.GetComponent[*components.RoundComponent](w.em, w.roundID)
	if !ok {
		return components.RoundComponent{}
	}
	return *round
}
