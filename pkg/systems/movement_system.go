package systems

import (
	"github.com/decker502/breakout/pkg/components"
	"github.com/decker502/breakout/pkg/ecs"
)

// MovementSystem 按速度积分位置
// 带 BallComponent 的实体只有在启用后才移动
type MovementSystem struct {
	em *ecs.EntityManager
}

// NewMovementSystem 创建移动系统
func NewMovementSystem(em *ecs.EntityManager) *MovementSystem {
	return &MovementSystem{em: em}
}

// Update 更新所有拥有位置和速度组件的实体
func (s *MovementSystem) Update(deltaTime float64) {
	ids := ecs.GetEntitiesWith2[*components.PositionComponent, *components.VelocityComponent](s.em)
	for _, id := range ids {
		if ball, ok := ecs.GetComponent[*components.BallComponent](s.em, id); ok && !ball.Enabled {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
		vel, _ := ecs.GetComponent[*components.VelocityComponent](s.em, id)
		pos.X += vel.VX * deltaTime
		pos.Y += vel.VY * deltaTime
	}
}
