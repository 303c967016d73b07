package components

// PositionComponent 存储实体在屏幕坐标系中的位置（精灵左上角）
type PositionComponent struct {
	X float64
	Y float64
}

// VelocityComponent 存储实体的速度（像素/秒）
// 屏幕坐标系中 VY > 0 表示向下运动
type VelocityComponent struct {
	VX float64
	VY float64
}
