package game

import (
	"encoding/binary"
	"math"
)

// GenerateTone 生成单声道正弦音并复制到双声道
// 输出为 16 位小端 PCM，可直接交给 audio.NewPlayerFromBytes
//
// 参数:
//   - sampleRate: 采样率（与 audio.Context 一致）
//   - freq: 频率（Hz）
//   - duration: 时长（秒）
//   - volume: 振幅 0.0 ~ 1.0，随时间线性衰减到 0
func GenerateTone(sampleRate int, freq, duration, volume float64) []byte {
	n := int(float64(sampleRate) * duration)
	buf := make([]byte, n*4)
	for i := 0; i < n; i++ {
		decay := 1 - float64(i)/float64(n)
		v := math.Sin(2*math.Pi*freq*float64(i)/float64(sampleRate)) * volume * decay
		s := uint16(int16(v * math.MaxInt16))
		binary.LittleEndian.PutUint16(buf[i*4:], s)
		binary.LittleEndian.PutUint16(buf[i*4+2:], s)
	}
	return buf
}

// ToneSpec 程序生成音效的参数
type ToneSpec struct {
	Freq     float64 // 频率（Hz）
	Duration float64 // 时长（秒）
}

// 各音效的备用音调
var fallbackTones = map[string]ToneSpec{
	SoundSwish: {Freq: 880, Duration: 0.08},
	SoundCrash: {Freq: 110, Duration: 0.4},
}

// ToneFor 返回音效ID对应的生成音调
// 没有资源文件的前端（终端版）直接使用这些音调
func ToneFor(soundID string) (ToneSpec, bool) {
	tone, ok := fallbackTones[soundID]
	return tone, ok
}
