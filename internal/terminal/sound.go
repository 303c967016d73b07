package terminal

import (
	"math"
	"sync"
	"time"

	"github.com/decker502/breakout/pkg/game"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(48000)

// BeepSounds 终端版的音效播放器，实现 game.SoundTrigger
//
// 没有音频文件，音效由 game.ToneFor 给出的正弦音生成。
// speaker 在自己的 goroutine 中拉取 mixer，所有对 mixer 的修改都持有 speaker 锁。
type BeepSounds struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	enabled     bool
	volume      float64
}

var _ game.SoundTrigger = (*BeepSounds)(nil)

// NewBeepSounds 创建播放器，Init 之前所有 PlaySound 调用都不发声
func NewBeepSounds() *BeepSounds {
	return &BeepSounds{
		mixer:   &beep.Mixer{},
		enabled: true,
		volume:  0.8,
	}
}

// Init 初始化扬声器
// 失败不是致命错误，游戏可以无声运行
func (s *BeepSounds) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}
	speaker.Play(s.mixer)
	s.initialized = true
	return nil
}

// Close 停止所有声音并关闭扬声器
func (s *BeepSounds) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	s.initialized = false
}

// SetEnabled 开关音效
func (s *BeepSounds) SetEnabled(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.enabled = enabled
}

// Enabled 返回音效是否开启
func (s *BeepSounds) Enabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.enabled
}

// SetVolume 设置音量（0.0 ~ 1.0）
func (s *BeepSounds) SetVolume(volume float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.volume = math.Max(0, math.Min(1, volume))
}

// PlaySound 播放音效ID对应的音调
func (s *BeepSounds) PlaySound(soundID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized || !s.enabled {
		return false
	}
	tone, ok := game.ToneFor(soundID)
	if !ok {
		return false
	}

	sine, err := generators.SineTone(sampleRate, tone.Freq)
	if err != nil {
		return false
	}
	n := sampleRate.N(time.Duration(tone.Duration * float64(time.Second)))
	streamer := withVolume(beep.Take(n, sine), s.volume)

	speaker.Lock()
	s.mixer.Add(streamer)
	speaker.Unlock()
	return true
}

// withVolume 以对数刻度应用线性音量
func withVolume(st beep.Streamer, volume float64) beep.Streamer {
	if volume <= 0 {
		return &effects.Volume{Streamer: st, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: st, Base: 2, Volume: math.Log2(volume), Silent: false}
}
