// Package utils 提供平台与输入相关的通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// AppendPointerXs 把当前按住的指针X坐标追加到 dst
// 同时支持触摸（移动设备，可多点）和鼠标左键（桌面设备）
func AppendPointerXs(dst []int) []int {
	for _, id := range ebiten.AppendTouchIDs(nil) {
		x, _ := ebiten.TouchPosition(id)
		dst = append(dst, x)
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, _ := ebiten.CursorPosition()
		dst = append(dst, x)
	}
	return dst
}
