package components

import "github.com/decker502/breakout/pkg/ecs"

// BrickColor 砖块颜色
type BrickColor int

const (
	BrickRed BrickColor = iota
	BrickBlue
	BrickYellow
	BrickGreen
	BrickGrey
	BrickOrange
	BrickPink
	BrickBlack
)

var brickColorNames = [...]string{"red", "blue", "yellow", "green", "grey", "orange", "pink", "black"}

// String 返回颜色名（与精灵文件名后缀一致，如 brick_red）
func (c BrickColor) String() string {
	if c < 0 || int(c) >= len(brickColorNames) {
		return "unknown"
	}
	return brickColorNames[c]
}

// ParseBrickColor 解析颜色名
func ParseBrickColor(name string) (BrickColor, bool) {
	for i, n := range brickColorNames {
		if n == name {
			return BrickColor(i), true
		}
	}
	return BrickRed, false
}

// BrickComponent 单个砖块的状态
type BrickComponent struct {
	Row      int
	Column   int
	Color    BrickColor
	IsBroken bool
}

// BrickGridComponent 砖块网格
//
// Rows[row] 按列顺序保存该行仍然存活的砖块实体。
// 砖块被击碎的同一帧从所在行中移除，之后不再参与碰撞检测。
type BrickGridComponent struct {
	Rows [][]ecs.EntityID
}

// Remaining 返回剩余砖块数量
func (g *BrickGridComponent) Remaining() int {
	n := 0
	for _, row := range g.Rows {
		n += len(row)
	}
	return n
}

// RemoveAt 从指定行移除第 i 个砖块
func (g *BrickGridComponent) RemoveAt(row, i int) {
	r := g.Rows[row]
	g.Rows[row] = append(r[:i], r[i+1:]...)
}
