package entities

import (
	"github.com/decker502/breakout/pkg/components"
	"github.com/decker502/breakout/pkg/ecs"
)

// Ball 球的视图：碰撞体 + 速度 + 球状态
type Ball struct {
	Body
	Velocity *components.VelocityComponent
	State    *components.BallComponent
}

// BallOf 取得球实体的视图
func BallOf(em *ecs.EntityManager, id ecs.EntityID) (Ball, bool) {
	body, ok := BodyOf(em, id)
	if !ok {
		return Ball{}, false
	}
	vel, ok := ecs.GetComponent[*components.VelocityComponent](em, id)
	if !ok {
		return Ball{}, false
	}
	state, ok := ecs.GetComponent[*components.BallComponent](em, id)
	if !ok {
		return Ball{}, false
	}
	return Ball{Body: body, Velocity: vel, State: state}, true
}

// ChangeHorzDirection 反转水平速度
func (b Ball) ChangeHorzDirection() {
	b.Velocity.VX *= -1
}

// ChangeVertDirection 反转垂直速度
func (b Ball) ChangeVertDirection() {
	b.Velocity.VY *= -1
}

// SpeedUp 两个速度分量的绝对值各增加 SpeedIncrement，方向不变
// 分量为 0 时按正方向处理
func (b Ball) SpeedUp() {
	inc := b.State.SpeedIncrement
	if b.Velocity.VY < 0 {
		b.Velocity.VY -= inc
	} else {
		b.Velocity.VY += inc
	}
	if b.Velocity.VX < 0 {
		b.Velocity.VX -= inc
	} else {
		b.Velocity.VX += inc
	}
}

// MidX 球的水平中点（宽度按整数取半）
func (b Ball) MidX() float64 {
	return b.Position.X + float64(b.Width()/2)
}

// MidY 球的垂直中点
func (b Ball) MidY() float64 {
	return b.Position.Y + float64(b.Height())/2.0
}

// Reset 恢复默认速度，把球放回起始高度
//
// 水平位置只做越界修正：左侧越界贴左边，右侧越界贴右边。
// 球贴住右边缘时反转垂直速度，判断在修正之后进行，因此连续调用结果相同。
func (b Ball) Reset(viewportWidth int) {
	b.Velocity.VX = b.State.DefaultSpeedX
	b.Velocity.VY = b.State.DefaultSpeedY
	b.Position.Y = b.State.StartY

	w := float64(b.Width())
	right := float64(viewportWidth)
	if b.Position.X < 0 {
		b.Position.X = 0
	} else if b.Position.X+w > right {
		b.Position.X = right - w
	}
	if b.Position.X > 0 && b.Position.X+w >= right {
		b.Velocity.VY *= -1
	}
}
