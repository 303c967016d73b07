package entities

import (
	"image"

	"github.com/decker502/breakout/pkg/collision"
	"github.com/decker502/breakout/pkg/components"
	"github.com/decker502/breakout/pkg/ecs"
)

// Collidable 可参与像素碰撞检测的对象
type Collidable interface {
	Mask() *collision.Mask
	Transform() collision.Transform
	Boundary() image.Rectangle
}

// Body 实体的碰撞视图
//
// 由 Position、Scale、Sprite 三个组件组合而成，球、挡板、砖块共用。
// 字段均为组件指针，修改会直接写回 EntityManager 中的组件。
type Body struct {
	ID       ecs.EntityID
	Position *components.PositionComponent
	Scale    *components.ScaleComponent
	Sprite   *components.SpriteComponent
}

var _ Collidable = Body{}

// BodyOf 取得实体的碰撞视图，缺少任一组件时返回 false
func BodyOf(em *ecs.EntityManager, id ecs.EntityID) (Body, bool) {
	pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
	if !ok {
		return Body{}, false
	}
	scale, ok := ecs.GetComponent[*components.ScaleComponent](em, id)
	if !ok {
		return Body{}, false
	}
	sprite, ok := ecs.GetComponent[*components.SpriteComponent](em, id)
	if !ok || sprite.Mask == nil {
		return Body{}, false
	}
	return Body{ID: id, Position: pos, Scale: scale, Sprite: sprite}, true
}

// X 左上角X坐标
func (b Body) X() float64 { return b.Position.X }

// Y 左上角Y坐标
func (b Body) Y() float64 { return b.Position.Y }

// Width 缩放后的宽度，截断为整数像素
func (b Body) Width() int {
	return int(float64(b.Sprite.Mask.Width()) * b.Scale.ScaleX)
}

// Height 缩放后的高度，截断为整数像素
func (b Body) Height() int {
	return int(float64(b.Sprite.Mask.Height()) * b.Scale.ScaleY)
}

// Mask 返回精灵蒙板
func (b Body) Mask() *collision.Mask { return b.Sprite.Mask }

// Transform 根据当前位置与缩放构造局部→屏幕变换
func (b Body) Transform() collision.Transform {
	return collision.NewTransform(b.Scale.ScaleX, b.Scale.ScaleY, b.Position.X, b.Position.Y)
}

// Boundary 屏幕上的包围矩形（位置截断为整数）
// 只用于粗筛，命中与否以像素检测为准
func (b Body) Boundary() image.Rectangle {
	x, y := int(b.Position.X), int(b.Position.Y)
	return image.Rect(x, y, x+b.Width(), y+b.Height())
}

// Overlaps 报告两个包围矩形是否相交
func (b Body) Overlaps(other Collidable) bool {
	return b.Boundary().Overlaps(other.Boundary())
}

// CollideWith 以 b 为扫描方、other 为查询方执行像素碰撞检测
func (b Body) CollideWith(other Collidable) (collision.Point, bool) {
	return collision.Collide(b.Mask(), b.Transform(), other.Mask(), other.Transform())
}
