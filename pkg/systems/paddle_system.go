package systems

import (
	"github.com/decker502/breakout/pkg/ecs"
	"github.com/decker502/breakout/pkg/entities"
	"github.com/decker502/breakout/pkg/game"
)

// Input 与框架无关的输入状态
// ebiten 与终端前端各自把按键映射到这里
type Input struct {
	Left  bool
	Right bool
}

// PaddleSystem 根据输入水平移动挡板，不允许移出屏幕
type PaddleSystem struct {
	em       *ecs.EntityManager
	ctx      *game.GameContext
	paddleID ecs.EntityID
}

// NewPaddleSystem 创建挡板系统
func NewPaddleSystem(em *ecs.EntityManager, ctx *game.GameContext, paddleID ecs.EntityID) *PaddleSystem {
	return &PaddleSystem{em: em, ctx: ctx, paddleID: paddleID}
}

// Update 移动挡板
//
// 右键优先：右移不会越界时右移，否则在左移不会越界时左移
func (s *PaddleSystem) Update(deltaTime float64, input Input) {
	paddle, ok := entities.PaddleOf(s.em, s.paddleID)
	if !ok {
		return
	}

	move := paddle.State.Speed * deltaTime
	right := paddle.X() + float64(paddle.Width()) + move

	if input.Right && right <= float64(s.ctx.Viewport.Width) {
		paddle.Position.X += move
	} else if input.Left && paddle.X()-move >= 0 {
		paddle.Position.X -= move
	}
}

// FitViewport 视口尺寸变化后把挡板放回屏幕底边内
func (s *PaddleSystem) FitViewport() {
	paddle, ok := entities.PaddleOf(s.em, s.paddleID)
	if !ok {
		return
	}

	vp := s.ctx.Viewport
	paddle.Position.Y = float64(vp.Height - paddle.Height())
	if paddle.X()+float64(paddle.Width()) > float64(vp.Width) {
		paddle.Position.X = float64(vp.Width - paddle.Width())
	}
}
