// Package collision 提供像素级（Alpha 通道）碰撞检测
//
// 精灵图像在加载时被转换为不可变的透明度蒙板（Mask），
// 每帧通过 Transform 将两个蒙板映射到同一坐标空间，
// 逐像素寻找第一个同时不透明的重叠点。
//
// 本包只做纯计算，不依赖游戏主循环，可以在无窗口环境下使用。
package collision

import (
	"fmt"
	"image"
	"image/color"
)

// Mask 是精灵的二维不透明度网格
// 创建后尺寸与内容均不可变
type Mask struct {
	width  int
	height int
	// 列优先存储：solid[x*height+y]，与碰撞扫描顺序（x 外层、y 内层）一致
	solid []bool
}

// BuildMask 从按行优先排列的像素缓冲区构建蒙板
//
// pixels[x + y*width] 的 Alpha 值大于 0 视为不透明。
//
// 参数:
//   - pixels: 行优先的像素颜色
//   - width: 图像宽度（像素）
//   - height: 图像高度（像素）
//
// 缓冲区长度与 width*height 不一致属于调用方错误，直接 panic。
func BuildMask(pixels []color.Color, width, height int) *Mask {
	checkDimensions(len(pixels), width, height, 1)

	m := newMask(width, height)
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			_, _, _, a := pixels[x+y*width].RGBA()
			m.solid[x*height+y] = a > 0
		}
	}
	return m
}

// MaskFromRGBA 从 RGBA 字节缓冲区构建蒙板（每像素 4 字节，Alpha 在第 4 字节）
// 与 image.RGBA.Pix 以及 ebiten.Image.ReadPixels 的输出格式一致
func MaskFromRGBA(pix []byte, width, height int) *Mask {
	checkDimensions(len(pix), width, height, 4)

	m := newMask(width, height)
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			m.solid[x*height+y] = pix[(x+y*width)*4+3] > 0
		}
	}
	return m
}

// MaskFromImage 对任意 image.Image 采样构建蒙板
// 蒙板坐标 (0,0) 对应 img.Bounds().Min
func MaskFromImage(img image.Image) *Mask {
	b := img.Bounds()
	m := newMask(b.Dx(), b.Dy())
	for x := 0; x < m.width; x++ {
		for y := 0; y < m.height; y++ {
			_, _, _, a := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			m.solid[x*m.height+y] = a > 0
		}
	}
	return m
}

func newMask(width, height int) *Mask {
	return &Mask{
		width:  width,
		height: height,
		solid:  make([]bool, width*height),
	}
}

func checkDimensions(length, width, height, stride int) {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("collision: invalid mask dimensions %dx%d", width, height))
	}
	if length != width*height*stride {
		panic(fmt.Sprintf("collision: pixel buffer length %d does not match %dx%d (stride %d)",
			length, width, height, stride))
	}
}

// Width 返回蒙板宽度
func (m *Mask) Width() int {
	return m.width
}

// Height 返回蒙板高度
func (m *Mask) Height() int {
	return m.height
}

// Opaque 报告 (x, y) 处是否为不透明像素
// 越界坐标视为透明
func (m *Mask) Opaque(x, y int) bool {
	if x < 0 || y < 0 || x >= m.width || y >= m.height {
		return false
	}
	return m.solid[x*m.height+y]
}

// OpaqueCount 返回不透明像素数量（用于调试输出）
func (m *Mask) OpaqueCount() int {
	n := 0
	for _, s := range m.solid {
		if s {
			n++
		}
	}
	return n
}
