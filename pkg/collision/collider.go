package collision

// Point 是屏幕坐标系中的一个点
type Point struct {
	X, Y float64
}

// NoCollision 表示“没有碰撞”的哨兵点
var NoCollision = Point{X: -1, Y: -1}

// Found 报告该点是否为有效碰撞点（不是哨兵）
func (p Point) Found() bool {
	return p.X > -1
}

// Collide 查找两个蒙板在各自变换下第一个重叠的不透明像素
//
// 扫描顺序：A 的 x 升序（外层）、y 升序（内层），找到的第一个重叠点胜出。
// A 中的像素经 A→B 相对变换后截断（向零取整）为 B 的像素索引。
//
// 参数:
//   - maskA, ta: 被扫描的蒙板及其局部→屏幕变换
//   - maskB, tb: 被查询的蒙板及其局部→屏幕变换
//
// 返回:
//   - Point: 重叠像素在屏幕上的位置（经 ta 变换，不是相对变换）
//   - bool: 是否发生碰撞；未碰撞时返回 NoCollision, false
func Collide(maskA *Mask, ta Transform, maskB *Mask, tb Transform) (Point, bool) {
	aToB := Relative(ta, tb)

	for x1 := 0; x1 < maskA.width; x1++ {
		for y1 := 0; y1 < maskA.height; y1++ {
			if !maskA.solid[x1*maskA.height+y1] {
				continue
			}

			fx, fy := aToB.Apply(float64(x1), float64(y1))
			// int() 向零截断，必须与像素选择规则一致，四舍五入会导致反弹抖动
			x2 := int(fx)
			y2 := int(fy)
			if x2 < 0 || x2 >= maskB.width || y2 < 0 || y2 >= maskB.height {
				continue
			}

			if maskB.solid[x2*maskB.height+y2] {
				sx, sy := ta.Apply(float64(x1), float64(y1))
				return Point{X: sx, Y: sy}, true
			}
		}
	}

	return NoCollision, false
}
