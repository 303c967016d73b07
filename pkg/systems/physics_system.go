package systems

import (
	"log"

	"github.com/decker502/breakout/pkg/components"
	"github.com/decker502/breakout/pkg/ecs"
	"github.com/decker502/breakout/pkg/entities"
	"github.com/decker502/breakout/pkg/game"
)

// FrameOutcome 一帧碰撞处理的结果
type FrameOutcome int

const (
	// FrameNone 没有任何碰撞
	FrameNone FrameOutcome = iota
	// FrameEdge 球在左/右/上边反弹
	FrameEdge
	// FrameRoundLost 球落出底边，本回合结束
	FrameRoundLost
	// FramePaddle 球被挡板弹回
	FramePaddle
	// FrameBrick 球击碎了一块砖
	FrameBrick
)

// String 返回结果名称（用于日志）
func (o FrameOutcome) String() string {
	switch o {
	case FrameNone:
		return "none"
	case FrameEdge:
		return "edge"
	case FrameRoundLost:
		return "round-lost"
	case FramePaddle:
		return "paddle"
	case FrameBrick:
		return "brick"
	}
	return "unknown"
}

// PhysicsSystem 每帧按固定顺序处理球的碰撞
//
// 顺序：屏幕边缘 → 挡板 → 砖块。
// 球落出底边时立即结束本帧；左/右/上边反弹后仍继续检查挡板和砖块。
// 挡板与砖块每帧最多处理一次碰撞，先命中者生效。
type PhysicsSystem struct {
	em    *ecs.EntityManager
	ctx   *game.GameContext
	round *RoundSystem

	ballID   ecs.EntityID
	paddleID ecs.EntityID
	gridID   ecs.EntityID
}

// NewPhysicsSystem 创建物理系统
//
// 参数:
//   - em: 实体管理器
//   - ctx: 游戏上下文（视口尺寸、音效）
//   - round: 回合系统，球落出底边时通知它结束本回合
//   - ballID, paddleID, gridID: 球、挡板、砖块网格实体
func NewPhysicsSystem(em *ecs.EntityManager, ctx *game.GameContext, round *RoundSystem,
	ballID, paddleID, gridID ecs.EntityID) *PhysicsSystem {
	return &PhysicsSystem{
		em:       em,
		ctx:      ctx,
		round:    round,
		ballID:   ballID,
		paddleID: paddleID,
		gridID:   gridID,
	}
}

// Update 处理本帧的碰撞
//
// 参数:
//   - deltaTime: 自上一帧以来经过的时间（秒），本系统不使用
func (ps *PhysicsSystem) Update(deltaTime float64) FrameOutcome {
	ball, ok := entities.BallOf(ps.em, ps.ballID)
	if !ok {
		return FrameNone
	}

	edge := ResolveScreenEdges(ps.ctx, ball)
	if edge == EdgeBottom {
		if ps.round != nil {
			ps.round.MarkRoundLost()
		}
		return FrameRoundLost
	}

	if ps.checkPaddle(ball) {
		return FramePaddle
	}

	if ps.checkBricks(ball) {
		return FrameBrick
	}

	if edge != EdgeNone {
		return FrameEdge
	}
	return FrameNone
}

// checkPaddle 包围矩形相交、像素碰撞成立且球向下运动时才反弹
// 向上运动的球穿过挡板不做处理，避免同一次接触连续反弹
func (ps *PhysicsSystem) checkPaddle(ball entities.Ball) bool {
	paddle, ok := entities.PaddleOf(ps.em, ps.paddleID)
	if !ok {
		return false
	}
	if !ball.Overlaps(paddle) {
		return false
	}

	if _, hit := paddle.CollideWith(ball); !hit || ball.Velocity.VY <= 0 {
		return false
	}

	ResolveBallPaddle(ball, paddle)
	ps.ctx.PlaySound(game.SoundSwish)
	return true
}

// checkBricks 从最后一行、最后一列开始倒序扫描砖块
func (ps *PhysicsSystem) checkBricks(ball entities.Ball) bool {
	grid, ok := ecs.GetComponent[*components.BrickGridComponent](ps.em, ps.gridID)
	if !ok {
		return false
	}

	for row := len(grid.Rows) - 1; row >= 0; row-- {
		for i := len(grid.Rows[row]) - 1; i >= 0; i-- {
			brick, ok := entities.BrickOf(ps.em, grid.Rows[row][i])
			if !ok || brick.State.IsBroken {
				continue
			}
			if !ball.Overlaps(brick) {
				continue
			}

			colPoint, hit := brick.CollideWith(ball)
			if !hit {
				continue
			}

			brick.State.IsBroken = true
			grid.RemoveAt(row, i)
			ps.em.DestroyEntity(brick.ID)

			kind := ResolveBallBrick(ball, colPoint, brick)
			ps.ctx.PlaySound(game.SoundSwish)
			log.Printf("[PhysicsSystem] Brick (%d,%d) broken at (%.1f, %.1f), bounce=%s, %d remaining",
				brick.State.Row, brick.State.Column, colPoint.X, colPoint.Y, kind, grid.Remaining())
			return true
		}
	}
	return false
}
