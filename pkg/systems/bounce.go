package systems

import (
	"github.com/decker502/breakout/pkg/collision"
	"github.com/decker502/breakout/pkg/entities"
	"github.com/decker502/breakout/pkg/game"
)

// EdgeResult 屏幕边缘检测结果
type EdgeResult int

const (
	EdgeNone EdgeResult = iota
	EdgeLeft
	EdgeRight
	EdgeTop
	// EdgeBottom 球落出底边，本回合结束
	EdgeBottom
)

// String 返回边缘名称（用于日志）
func (e EdgeResult) String() string {
	switch e {
	case EdgeNone:
		return "none"
	case EdgeLeft:
		return "left"
	case EdgeRight:
		return "right"
	case EdgeTop:
		return "top"
	case EdgeBottom:
		return "bottom"
	}
	return "unknown"
}

// BrickHit 砖块反弹类型
type BrickHit int

const (
	// BrickHitVertical 击中砖块上下边，只反转垂直速度
	BrickHitVertical BrickHit = iota
	// BrickHitCorner 从下方斜向击中砖块角，两个方向都反转
	BrickHitCorner
	// BrickHitSide 击中砖块侧面，只反转水平速度
	BrickHitSide
)

// String 返回反弹类型名称（用于日志）
func (h BrickHit) String() string {
	switch h {
	case BrickHitVertical:
		return "vertical"
	case BrickHitCorner:
		return "corner"
	case BrickHitSide:
		return "side"
	}
	return "unknown"
}

// ResolveScreenEdges 处理球与屏幕边缘的碰撞
//
// 每帧只处理一条边：左右边优先，命中后不再检查上下边。
// 反弹后把球放回屏幕内，防止下一帧仍在屏幕外造成来回抖动。
// 落出底边时播放 crash 音效、重置并禁用球，返回 EdgeBottom。
func ResolveScreenEdges(ctx *game.GameContext, ball entities.Ball) EdgeResult {
	maxX := float64(ctx.Viewport.Width - ball.Width())
	maxY := float64(ctx.Viewport.Height - ball.Height())

	if ball.Position.X > maxX {
		ball.ChangeHorzDirection()
		ball.Position.X = maxX
		return EdgeRight
	} else if ball.Position.X < 0 {
		ball.ChangeHorzDirection()
		ball.Position.X = 0
		return EdgeLeft
	}

	if ball.Position.Y < 0 {
		ball.ChangeVertDirection()
		ball.Position.Y = 0
		return EdgeTop
	} else if ball.Position.Y > maxY {
		ctx.PlaySound(game.SoundCrash)
		ball.Reset(ctx.Viewport.Width)
		ball.State.Enabled = false
		return EdgeBottom
	}

	return EdgeNone
}

// ResolveBallPaddle 球击中挡板后的反弹
//
// 球的中点已越过挡板左/右端且仍朝挡板方向运动时，反转水平速度；
// 垂直速度总是反转，之后加速。
func ResolveBallPaddle(ball entities.Ball, paddle entities.Paddle) {
	ballMiddle := ball.MidX()
	left := paddle.X()
	right := paddle.X() + float64(paddle.Width())

	if (ballMiddle < left && ball.Velocity.VX > 0) ||
		(ballMiddle > right && ball.Velocity.VX < 0) {
		ball.ChangeHorzDirection()
	}

	ball.ChangeVertDirection()
	ball.SpeedUp()
}

// ResolveBallBrick 球击中砖块后的反弹
//
// 参数:
//   - colPoint: 碰撞点（砖块像素在屏幕上的位置）
//
// 判定顺序:
//  1. 碰撞点位于砖块最下一行或最上沿 → 上下边，反转垂直速度
//  2. 球的中点低于砖块且向上运动 → 角，两个方向都反转
//  3. 其余 → 侧面，反转水平速度
func ResolveBallBrick(ball entities.Ball, colPoint collision.Point, brick entities.Brick) BrickHit {
	top := brick.Y()
	bottom := brick.Y() + float64(brick.Height())

	if colPoint.Y >= bottom-1 || colPoint.Y <= top {
		ball.ChangeVertDirection()
		return BrickHitVertical
	} else if ball.MidY() > bottom && ball.Velocity.VY < 0 {
		ball.ChangeVertDirection()
		ball.ChangeHorzDirection()
		return BrickHitCorner
	}

	ball.ChangeHorzDirection()
	return BrickHitSide
}
