package collision

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// Transform 将蒙板局部像素坐标映射到屏幕坐标
// 先缩放再平移，与渲染时 DrawImageOptions.GeoM 的构造顺序相同
type Transform struct {
	geoM ebiten.GeoM
}

// NewTransform 构造缩放 + 平移变换
//
// 参数:
//   - scaleX, scaleY: 轴向缩放（砖块使用独立的 X/Y 缩放）
//   - tx, ty: 实体在屏幕上的位置
func NewTransform(scaleX, scaleY, tx, ty float64) Transform {
	var g ebiten.GeoM
	g.Scale(scaleX, scaleY)
	g.Translate(tx, ty)
	return Transform{geoM: g}
}

// UniformTransform 构造等比缩放变换（球和挡板）
func UniformTransform(scale, tx, ty float64) Transform {
	return NewTransform(scale, scale, tx, ty)
}

// GeoM 返回底层矩阵，渲染端可直接赋给 DrawImageOptions.GeoM
func (t Transform) GeoM() ebiten.GeoM {
	return t.geoM
}

// Apply 变换一个点
func (t Transform) Apply(x, y float64) (float64, float64) {
	return t.geoM.Apply(x, y)
}

// IsInvertible 报告变换是否可逆（缩放为 0 时不可逆）
func (t Transform) IsInvertible() bool {
	return t.geoM.IsInvertible()
}

// Inverse 返回逆变换
// 缩放为 0 的变换不可逆，属于调用方错误，直接 panic
func (t Transform) Inverse() Transform {
	if !t.geoM.IsInvertible() {
		panic(fmt.Sprintf("collision: transform is not invertible (scale %gx%g)",
			t.geoM.Element(0, 0), t.geoM.Element(1, 1)))
	}
	g := t.geoM
	g.Invert()
	return Transform{geoM: g}
}

// Then 返回先应用 t、再应用 next 的组合变换
func (t Transform) Then(next Transform) Transform {
	g := t.geoM
	g.Concat(next.geoM)
	return Transform{geoM: g}
}

// Relative 返回从 from 的局部空间到 to 的局部空间的变换（from · to⁻¹）
// 碰撞检测时每个采样像素只需做一次坐标转换
func Relative(from, to Transform) Transform {
	return from.Then(to.Inverse())
}

// ScaleX 返回 X 轴缩放
func (t Transform) ScaleX() float64 {
	return t.geoM.Element(0, 0)
}

// ScaleY 返回 Y 轴缩放
func (t Transform) ScaleY() float64 {
	return t.geoM.Element(1, 1)
}

// TranslateX 返回 X 轴平移
func (t Transform) TranslateX() float64 {
	return t.geoM.Element(0, 2)
}

// TranslateY 返回 Y 轴平移
func (t Transform) TranslateY() float64 {
	return t.geoM.Element(1, 2)
}
