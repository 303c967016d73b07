package game

// 音效ID
const (
	// SoundSwish 球击中挡板或砖块
	SoundSwish = "swish"
	// SoundCrash 球落到底边，本回合结束
	SoundCrash = "crash"
)

// SoundTrigger 播放音效的最小接口
//
// AudioManager（ebiten 音频）与终端前端的 beep 播放器都实现该接口。
// 返回值表示是否真正开始播放（音效被禁用或资源缺失时返回 false）。
type SoundTrigger interface {
	PlaySound(soundID string) bool
}

// Viewport 游戏区域尺寸（像素）
type Viewport struct {
	Width  int
	Height int
}

// FrameClock 帧计时
type FrameClock struct {
	// Elapsed 累计游戏时间（秒）
	Elapsed float64
	// Frames 已推进的帧数
	Frames uint64
	// LastDelta 最近一帧的时间步长（秒）
	LastDelta float64
}

// Tick 推进一帧
func (c *FrameClock) Tick(dt float64) {
	c.Elapsed += dt
	c.Frames++
	c.LastDelta = dt
}

// GameContext 每帧传递给各系统的共享上下文
// 取代全局变量：视口尺寸、帧时钟与音效出口都从这里取得
type GameContext struct {
	Viewport Viewport
	Clock    FrameClock
	Sounds   SoundTrigger
}

// NewGameContext 创建上下文，sounds 可为 nil（静音）
func NewGameContext(width, height int, sounds SoundTrigger) *GameContext {
	return &GameContext{
		Viewport: Viewport{Width: width, Height: height},
		Sounds:   sounds,
	}
}

// PlaySound 通过 SoundTrigger 播放音效，未设置时静默返回 false
func (c *GameContext) PlaySound(soundID string) bool {
	if c == nil || c.Sounds == nil {
		return false
	}
	return c.Sounds.PlaySound(soundID)
}
