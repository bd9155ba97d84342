package config

import (
	"fmt"
	"os"

	"github.com/decker502/skyfall/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// DefaultSkyConfigPath 内嵌默认配置的路径
const DefaultSkyConfigPath = "data/sky.yaml"

// 退出策略（粒子离开屏幕顶部后的处理方式）
const (
	ExitPolicyRetain  = "retain"  // 保留，继续更新和裁剪，永不删除
	ExitPolicyRecycle = "recycle" // 回收，重新生成到屏幕底部
)

// 透明度策略
const (
	AlphaPolicyOvershoot = "overshoot" // 保持计算值
	AlphaPolicyClamp     = "clamp"     // 限制在 [0,1]
)

// SkyConfig 天空动画配置文件结构
type SkyConfig struct {
	Window    WindowConfig    `yaml:"window"`
	Animation AnimationConfig `yaml:"animation"`
	Assets    AssetsConfig    `yaml:"assets"`
	Terminal  TerminalConfig  `yaml:"terminal"`
}

// WindowConfig 桌面窗口配置
type WindowConfig struct {
	Width  int    `yaml:"width"`  // 逻辑宽度（像素）
	Height int    `yaml:"height"` // 逻辑高度（像素）
	Title  string `yaml:"title"`  // 窗口标题
}

// AnimationConfig 动画参数
type AnimationConfig struct {
	Seed                 int64   `yaml:"seed"`                 // 随机种子
	BaseSpeedDpPerSecond float64 `yaml:"baseSpeedDpPerSecond"` // 参考密度下的基础速度
	Density              float64 `yaml:"density"`              // 屏幕密度系数
	ExitPolicy           string  `yaml:"exitPolicy"`           // retain | recycle
	AlphaPolicy          string  `yaml:"alphaPolicy"`          // overshoot | clamp
	InitialSuns          int     `yaml:"initialSuns"`          // 启动时生成的太阳数量
	InitialMoons         int     `yaml:"initialMoons"`         // 启动时生成的月亮数量
}

// AssetsConfig 图片资源配置
type AssetsConfig struct {
	Sun  AssetConfig `yaml:"sun"`
	Moon AssetConfig `yaml:"moon"`
}

// AssetConfig 单个图片资源
// Path 为空时使用程序生成的图片，Size 为生成图片的边长
type AssetConfig struct {
	Path string `yaml:"path"`
	Size int    `yaml:"size"`
}

// TerminalConfig 终端宿主配置
// 每个字符单元对应的像素尺寸，用于把像素坐标映射到字符网格
type TerminalConfig struct {
	CellWidth  int `yaml:"cellWidth"`
	CellHeight int `yaml:"cellHeight"`
	FPS        int `yaml:"fps"`
}

// DefaultSkyConfig 返回默认配置
func DefaultSkyConfig() *SkyConfig {
	return &SkyConfig{
		Window: WindowConfig{
			Width:  480,
			Height: 800,
			Title:  "Skyfall",
		},
		Animation: AnimationConfig{
			Seed:                 1337,
			BaseSpeedDpPerSecond: 200,
			Density:              1.0,
			ExitPolicy:           ExitPolicyRetain,
			AlphaPolicy:          AlphaPolicyOvershoot,
		},
		Assets: AssetsConfig{
			Sun:  AssetConfig{Size: 96},
			Moon: AssetConfig{Size: 96},
		},
		Terminal: TerminalConfig{
			CellWidth:  8,
			CellHeight: 16,
			FPS:        30,
		},
	}
}

// BaseSpeed 返回乘以密度后的基础速度（像素/秒）
func (c *SkyConfig) BaseSpeed() float64 {
	return c.Animation.BaseSpeedDpPerSecond * c.Animation.Density
}

// LoadSkyConfig 从磁盘 YAML 文件加载配置
func LoadSkyConfig(path string) (*SkyConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sky config %s: %w", path, err)
	}
	cfg, err := ParseSkyConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadDefaultSkyConfig 加载内嵌的默认配置
func LoadDefaultSkyConfig() (*SkyConfig, error) {
	data, err := embedded.ReadFile(DefaultSkyConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded sky config: %w", err)
	}
	return ParseSkyConfig(data)
}

// ParseSkyConfig 解析 YAML 内容
// 未出现的字段保持默认值
func ParseSkyConfig(data []byte) (*SkyConfig, error) {
	cfg := DefaultSkyConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse sky config YAML: %w", err)
	}
	if err := validateSkyConfig(cfg); err != nil {
		return nil, fmt.Errorf("invalid sky config: %w", err)
	}
	return cfg, nil
}

// validateSkyConfig 验证配置的有效性
func validateSkyConfig(cfg *SkyConfig) error {
	if cfg.Window.Width <= 0 || cfg.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}

	anim := cfg.Animation
	if anim.BaseSpeedDpPerSecond <= 0 {
		return fmt.Errorf("animation.baseSpeedDpPerSecond must be > 0, got %v", anim.BaseSpeedDpPerSecond)
	}
	if anim.Density <= 0 {
		return fmt.Errorf("animation.density must be > 0, got %v", anim.Density)
	}
	switch anim.ExitPolicy {
	case ExitPolicyRetain, ExitPolicyRecycle:
	default:
		return fmt.Errorf("animation.exitPolicy must be %q or %q, got %q", ExitPolicyRetain, ExitPolicyRecycle, anim.ExitPolicy)
	}
	switch anim.AlphaPolicy {
	case AlphaPolicyOvershoot, AlphaPolicyClamp:
	default:
		return fmt.Errorf("animation.alphaPolicy must be %q or %q, got %q", AlphaPolicyOvershoot, AlphaPolicyClamp, anim.AlphaPolicy)
	}
	if anim.InitialSuns < 0 || anim.InitialMoons < 0 {
		return fmt.Errorf("animation.initialSuns/initialMoons must be >= 0, got %d/%d", anim.InitialSuns, anim.InitialMoons)
	}

	// 未指定路径时需要生成图片，边长必须为正
	if cfg.Assets.Sun.Path == "" && cfg.Assets.Sun.Size <= 0 {
		return fmt.Errorf("assets.sun.size must be > 0 when no path is set, got %d", cfg.Assets.Sun.Size)
	}
	if cfg.Assets.Moon.Path == "" && cfg.Assets.Moon.Size <= 0 {
		return fmt.Errorf("assets.moon.size must be > 0 when no path is set, got %d", cfg.Assets.Moon.Size)
	}

	if cfg.Terminal.CellWidth <= 0 || cfg.Terminal.CellHeight <= 0 {
		return fmt.Errorf("terminal cell size must be positive, got %dx%d", cfg.Terminal.CellWidth, cfg.Terminal.CellHeight)
	}
	if cfg.Terminal.FPS <= 0 {
		return fmt.Errorf("terminal.fps must be > 0, got %d", cfg.Terminal.FPS)
	}

	return nil
}
