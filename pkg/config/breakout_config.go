package config

import (
	"fmt"
	"log"
	"os"

	"github.com/decker502/breakout/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// DefaultBreakoutConfigPath 嵌入配置文件的路径
const DefaultBreakoutConfigPath = "data/breakout.yaml"

// BreakoutConfig 打砖块玩法配置
//
// 配置文件位置: data/breakout.yaml（默认嵌入到可执行文件，可用 --config 覆盖）
// 文件中省略的字段保持 DefaultBreakoutConfig 中的默认值。
type BreakoutConfig struct {
	Viewport ViewportConfig `yaml:"viewport"`
	Ball     BallConfig     `yaml:"ball"`
	Paddle   PaddleConfig   `yaml:"paddle"`
	Bricks   BricksConfig   `yaml:"bricks"`
	Round    RoundConfig    `yaml:"round"`
	Sounds   SoundsConfig   `yaml:"sounds"`
}

// ViewportConfig 游戏区域尺寸（像素）
type ViewportConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// BallConfig 球的配置
type BallConfig struct {
	// DefaultSpeedX/DefaultSpeedY 每回合开始时的速度（像素/秒）
	DefaultSpeedX float64 `yaml:"defaultSpeedX"`
	DefaultSpeedY float64 `yaml:"defaultSpeedY"`

	// SpeedIncrement 每次击中挡板时速度分量绝对值的增量，无上限
	SpeedIncrement float64 `yaml:"speedIncrement"`

	// Scale 精灵等比缩放
	Scale float64 `yaml:"scale"`

	// StartX 初始X坐标；StartY 每回合开始时放置的Y坐标
	StartX float64 `yaml:"startX"`
	StartY float64 `yaml:"startY"`

	// Sprite 精灵图片路径，文件不存在时使用程序生成的图像
	Sprite string `yaml:"sprite"`
}

// PaddleConfig 挡板配置
type PaddleConfig struct {
	Speed  float64 `yaml:"speed"`
	Scale  float64 `yaml:"scale"`
	Sprite string  `yaml:"sprite"`
}

// BricksConfig 砖块网格配置
type BricksConfig struct {
	Rows    int `yaml:"rows"`
	Columns int `yaml:"columns"`

	// Gap 行间距（像素）
	Gap int `yaml:"gap"`

	// WidthFill 砖块宽度占列宽的比例
	WidthFill float64 `yaml:"widthFill"`

	// HeightScale 砖块Y轴缩放
	HeightScale float64 `yaml:"heightScale"`

	// Colors 每行砖块的颜色，行数多于颜色数时循环使用
	Colors []string `yaml:"colors"`

	// SpritePattern 精灵路径模板，%s 替换为颜色名
	SpritePattern string `yaml:"spritePattern"`
}

// RoundConfig 回合配置
type RoundConfig struct {
	// Delay 回合开始前的等待时间（秒）
	Delay float64 `yaml:"delay"`
}

// SoundsConfig 音效文件路径
type SoundsConfig struct {
	Swish string `yaml:"swish"`
	Crash string `yaml:"crash"`
}

// DefaultBreakoutConfig 返回默认配置
func DefaultBreakoutConfig() *BreakoutConfig {
	return &BreakoutConfig{
		Viewport: ViewportConfig{
			Width:  GameWindowWidth,
			Height: GameWindowHeight,
		},
		Ball: BallConfig{
			DefaultSpeedX:  150,
			DefaultSpeedY:  150,
			SpeedIncrement: 15,
			Scale:          0.2,
			StartX:         20,
			StartY:         300,
			Sprite:         "assets/images/ball_black.png",
		},
		Paddle: PaddleConfig{
			Speed:  250,
			Scale:  0.2,
			Sprite: "assets/images/paddle_red.png",
		},
		Bricks: BricksConfig{
			Rows:          4,
			Columns:       12,
			Gap:           5,
			WidthFill:     0.8,
			HeightScale:   0.2,
			Colors:        []string{"red", "blue", "yellow", "green"},
			SpritePattern: "assets/images/brick_%s.png",
		},
		Round: RoundConfig{
			Delay: 1.0,
		},
		Sounds: SoundsConfig{
			Swish: "assets/sounds/swish.wav",
			Crash: "assets/sounds/crash.wav",
		},
	}
}

// ParseBreakoutConfig 解析 YAML 配置
// 以默认配置为基础，文件中出现的字段覆盖默认值
func ParseBreakoutConfig(data []byte) (*BreakoutConfig, error) {
	cfg := DefaultBreakoutConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse breakout config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid breakout config: %w", err)
	}

	return cfg, nil
}

// LoadBreakoutConfig 从磁盘加载配置
//
// 参数:
//   - path: 配置文件路径（如 "data/breakout.yaml"）
//
// 返回:
//   - *BreakoutConfig: 加载成功后的配置结构
//   - error: 读取、解析或验证失败时返回错误
func LoadBreakoutConfig(path string) (*BreakoutConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read breakout config: %w", err)
	}
	return ParseBreakoutConfig(data)
}

// LoadEmbeddedBreakoutConfig 从嵌入数据读取配置
func LoadEmbeddedBreakoutConfig() (*BreakoutConfig, error) {
	data, err := embedded.ReadFile(DefaultBreakoutConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded breakout config: %w", err)
	}
	return ParseBreakoutConfig(data)
}

// ResolveBreakoutConfig 按优先级获取配置
//
// 优先级: path 指定的磁盘文件 > 嵌入的 data/breakout.yaml > 默认值
// path 非空时读取失败直接返回错误，不做回退
func ResolveBreakoutConfig(path string) (*BreakoutConfig, error) {
	if path != "" {
		return LoadBreakoutConfig(path)
	}
	if embedded.Exists(DefaultBreakoutConfigPath) {
		return LoadEmbeddedBreakoutConfig()
	}
	log.Printf("[Config] No config file available, using defaults")
	return DefaultBreakoutConfig(), nil
}

// Validate 验证配置有效性
//
// 缩放为 0 会导致变换不可逆，必须在加载阶段拦截
func (c *BreakoutConfig) Validate() error {
	if c.Viewport.Width <= 0 || c.Viewport.Height <= 0 {
		return fmt.Errorf("viewport must be positive, got %dx%d", c.Viewport.Width, c.Viewport.Height)
	}

	if c.Ball.Scale <= 0 {
		return fmt.Errorf("ball scale must be positive, got %.3f", c.Ball.Scale)
	}
	if c.Ball.SpeedIncrement < 0 {
		return fmt.Errorf("ball speedIncrement must be >= 0, got %.1f", c.Ball.SpeedIncrement)
	}

	if c.Paddle.Scale <= 0 {
		return fmt.Errorf("paddle scale must be positive, got %.3f", c.Paddle.Scale)
	}
	if c.Paddle.Speed < 0 {
		return fmt.Errorf("paddle speed must be >= 0, got %.1f", c.Paddle.Speed)
	}

	if c.Bricks.Rows < 0 || c.Bricks.Columns < 0 {
		return fmt.Errorf("brick grid must not be negative, got %dx%d", c.Bricks.Rows, c.Bricks.Columns)
	}
	if c.Bricks.Rows > 0 && c.Bricks.Columns > 0 {
		if c.Bricks.WidthFill <= 0 || c.Bricks.HeightScale <= 0 {
			return fmt.Errorf("brick widthFill and heightScale must be positive, got %.3f/%.3f",
				c.Bricks.WidthFill, c.Bricks.HeightScale)
		}
		if len(c.Bricks.Colors) == 0 {
			return fmt.Errorf("bricks.colors must list at least one color")
		}
	}
	if c.Bricks.Gap < 0 {
		return fmt.Errorf("brick gap must be >= 0, got %d", c.Bricks.Gap)
	}

	if c.Round.Delay < 0 {
		return fmt.Errorf("round delay must be >= 0, got %.2f", c.Round.Delay)
	}

	return nil
}

// BrickColorName 返回第 row 行砖块的颜色名
func (c *BricksConfig) BrickColorName(row int) string {
	if len(c.Colors) == 0 {
		return ""
	}
	return c.Colors[row%len(c.Colors)]
}

// BrickSprite 返回指定颜色的砖块精灵路径
func (c *BricksConfig) BrickSprite(color string) string {
	if c.SpritePattern == "" {
		return ""
	}
	return fmt.Sprintf(c.SpritePattern, color)
}
