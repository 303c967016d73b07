package components

// RoundPhase 回合阶段
type RoundPhase int

const (
	// RoundPreDelay 回合开始前的等待，球已就位但不移动
	RoundPreDelay RoundPhase = iota
	// RoundActive 正常游戏中
	RoundActive
	// RoundEnded 球落到底边，本回合结束，下一帧进入等待
	RoundEnded
)

// String 返回阶段名称（用于日志）
func (p RoundPhase) String() string {
	switch p {
	case RoundPreDelay:
		return "pre-delay"
	case RoundActive:
		return "active"
	case RoundEnded:
		return "ended"
	}
	return "unknown"
}

// RoundComponent 全局回合状态
// 与名为 "round_delay" 的 TimerComponent 挂在同一个实体上
type RoundComponent struct {
	Phase      RoundPhase
	RoundsLost int
}
