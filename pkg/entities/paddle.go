package entities

import (
	"github.com/decker502/breakout/pkg/components"
	"github.com/decker502/breakout/pkg/ecs"
)

// Paddle 挡板的视图
type Paddle struct {
	Body
	State *components.PaddleComponent
}

// PaddleOf 取得挡板实体的视图
func PaddleOf(em *ecs.EntityManager, id ecs.EntityID) (Paddle, bool) {
	body, ok := BodyOf(em, id)
	if !ok {
		return Paddle{}, false
	}
	state, ok := ecs.GetComponent[*components.PaddleComponent](em, id)
	if !ok {
		return Paddle{}, false
	}
	return Paddle{Body: body, State: state}, true
}

// Brick 砖块的视图
type Brick struct {
	Body
	State *components.BrickComponent
}

// BrickOf 取得砖块实体的视图
func BrickOf(em *ecs.EntityManager, id ecs.EntityID) (Brick, bool) {
	body, ok := BodyOf(em, id)
	if !ok {
		return Brick{}, false
	}
	state, ok := ecs.GetComponent[*components.BrickComponent](em, id)
	if !ok {
		return Brick{}, false
	}
	return Brick{Body: body, State: state}, true
}
