package components

// BallComponent 球的专属状态
type BallComponent struct {
	// Enabled 为 false 时球不移动（回合开始前的等待阶段）
	Enabled bool

	// StartX 创建时的初始X坐标
	StartX float64

	// StartY 每回合开始时球被放置的Y坐标
	StartY float64

	// DefaultSpeedX/DefaultSpeedY 重置后的初始速度
	DefaultSpeedX float64
	DefaultSpeedY float64

	// SpeedIncrement 每次击中挡板后速度分量绝对值的增量
	SpeedIncrement float64
}
