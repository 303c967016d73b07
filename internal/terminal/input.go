package terminal

import (
	"time"

	"github.com/decker502/breakout/pkg/systems"
)

// DefaultHoldWindow 按键在最近一次按下事件后保持按住状态的时长
// 需要覆盖终端的按键重复间隔
const DefaultHoldWindow = 150 * time.Millisecond

// KeyLatch 把终端的按键事件转换为按住状态
//
// 终端只报告按下（及自动重复），没有释放事件。
// 按下一个方向会立即释放另一个方向。
type KeyLatch struct {
	hold       time.Duration
	leftUntil  time.Time
	rightUntil time.Time
}

// NewKeyLatch 创建按键锁存器
func NewKeyLatch(hold time.Duration) *KeyLatch {
	return &KeyLatch{hold: hold}
}

// PressLeft 记录一次向左按键
func (k *KeyLatch) PressLeft(now time.Time) {
	k.leftUntil = now.Add(k.hold)
	k.rightUntil = time.Time{}
}

// PressRight 记录一次向右按键
func (k *KeyLatch) PressRight(now time.Time) {
	k.rightUntil = now.Add(k.hold)
	k.leftUntil = time.Time{}
}

// Release 释放所有方向
func (k *KeyLatch) Release() {
	k.leftUntil = time.Time{}
	k.rightUntil = time.Time{}
}

// Input 返回 now 时刻的方向状态
func (k *KeyLatch) Input(now time.Time) systems.Input {
	return systems.Input{
		Left:  now.Before(k.leftUntil),
		Right: now.Before(k.rightUntil),
	}
}
