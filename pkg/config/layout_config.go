package config

// 窗口与画面布局常量
// 逻辑屏幕尺寸独立于实际窗口大小，Ebitengine 负责缩放

const (
	// GameWindowWidth 默认逻辑屏幕宽度（像素）
	GameWindowWidth = 800

	// GameWindowHeight 默认逻辑屏幕高度（像素）
	GameWindowHeight = 600

	// GameWindowTitle 窗口标题
	GameWindowTitle = "Breakout"

	// SettingsAppName gdata 存储玩家设置使用的应用名（窗口版与终端版共用）
	SettingsAppName = "breakout"
)

// BrickColumnStep 返回相邻两列砖块左边缘之间的间距
//
// 计算方式与砖块布局一致：视口宽度整除 (列数+1)。
// 例如 800 宽 12 列：800 / 13 = 61
func BrickColumnStep(viewportWidth, columns int) int {
	return viewportWidth / (columns + 1)
}

// BrickX 返回第 column 列砖块的左边缘X坐标
//
// 示例:
//
//	BrickX(800, 12, 0) = 61 * 0.6 = 36.6
//	BrickX(800, 12, 11) = 61 * 11.6 = 707.6
func BrickX(viewportWidth, columns, column int) float64 {
	return float64(BrickColumnStep(viewportWidth, columns)) * (float64(column) + 0.6)
}

// BrickY 返回第 row 行砖块的上边缘Y坐标
//
// 参数:
//   - gap: 行间距（像素）
//   - brickHeight: 缩放后的砖块高度（像素，已截断为整数）
//   - row: 行索引（从 0 开始）
func BrickY(gap, brickHeight, row int) float64 {
	return float64(gap*(row+1) + brickHeight*row)
}
