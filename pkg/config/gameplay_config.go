package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FailurePolicy 决定会话失败后循环驱动器的行为
type FailurePolicy string

const (
	// FailureAutoRestart 失败后立即重建会话并继续调度
	FailureAutoRestart FailurePolicy = "auto-restart"
	// FailureWaitForInput 失败后停止调度，直到下一次按下指针
	FailureWaitForInput FailurePolicy = "wait-for-input"
)

// GameplayConfig 跳球游戏的玩法配置
//
// 所有速度和加速度都以"每帧"为单位（游戏以固定 60 TPS 驱动）。
// 深度轴（Z）向前为负方向。
//
// 配置文件位置: data/gameplay.yaml
type GameplayConfig struct {
	// Gravity 每帧施加到垂直速度上的加速度（负值）
	Gravity float64 `yaml:"gravity"`

	// BounceVelocity 弹起时设置的垂直速度
	BounceVelocity float64 `yaml:"bounceVelocity"`

	// ForwardStep 小球每帧向目标深度前进的距离
	ForwardStep float64 `yaml:"forwardStep"`

	// SpawnInterval 相邻平台之间的深度间隔
	SpawnInterval float64 `yaml:"spawnInterval"`

	// TrackLength 轨道窗口内的平台数量
	TrackLength int `yaml:"trackLength"`

	// OffsetRange 新平台水平偏移的随机范围
	OffsetRange Range `yaml:"offsetRange"`

	// FailThreshold 小球高度低于此值时判定失败
	FailThreshold float64 `yaml:"failThreshold"`

	// DragSensitivity 指针水平位移换算为轨道位移的系数
	DragSensitivity float64 `yaml:"dragSensitivity"`

	// OnFailure 失败处理策略
	OnFailure FailurePolicy `yaml:"onFailure"`

	Ball     BallConfig     `yaml:"ball"`
	Platform PlatformConfig `yaml:"platform"`
	Camera   CameraConfig   `yaml:"camera"`
}

// Range 闭区间 [Min, Max]
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// BallConfig 小球初始状态
type BallConfig struct {
	StartHeight float64 `yaml:"startHeight"`
	Radius      float64 `yaml:"radius"`
}

// PlatformConfig 平台盒子尺寸
type PlatformConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Depth  float64 `yaml:"depth"`
}

// CameraConfig 跟随相机相对小球的位置与视野
type CameraConfig struct {
	Height   float64 `yaml:"height"`
	Distance float64 `yaml:"distance"`
	FOV      float64 `yaml:"fov"` // 垂直视野（度）
}

// DefaultGameplayConfig 返回默认玩法配置
func DefaultGameplayConfig() *GameplayConfig {
	return &GameplayConfig{
		Gravity:         -0.043,
		BounceVelocity:  0.7,
		ForwardStep:     0.5,
		SpawnInterval:   15,
		TrackLength:     6,
		OffsetRange:     Range{Min: -10, Max: 10},
		FailThreshold:   -5,
		DragSensitivity: 0.1,
		OnFailure:       FailureWaitForInput,
		Ball: BallConfig{
			StartHeight: 5,
			Radius:      0.7,
		},
		Platform: PlatformConfig{
			Width:  5,
			Height: 0.5,
			Depth:  5,
		},
		Camera: CameraConfig{
			Height:   7,
			Distance: 17,
			FOV:      75,
		},
	}
}

// LoadGameplayConfig 从文件系统加载玩法配置
//
// 文件中缺省的字段保留默认值。
//
// 参数:
//   - path: 配置文件路径（如 "data/gameplay.yaml"）
//
// 返回:
//   - *GameplayConfig: 加载并验证后的配置
//   - error: 读取、解析或验证失败时返回错误
func LoadGameplayConfig(path string) (*GameplayConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read gameplay config: %w", err)
	}
	return LoadGameplayConfigFromBytes(data)
}

// LoadGameplayConfigFromBytes 从 YAML 数据解析玩法配置
func LoadGameplayConfigFromBytes(data []byte) (*GameplayConfig, error) {
	cfg := DefaultGameplayConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse gameplay config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid gameplay config: %w", err)
	}

	return cfg, nil
}

// Validate 验证配置有效性
//
// 检查项：
//   - 重力为负，弹起速度为正
//   - 前进步长与平台间隔为正
//   - 轨道至少包含 2 个平台（得分时需要读取下一个平台）
//   - 偏移范围 Min <= Max
//   - 失败策略为已知取值
func (c *GameplayConfig) Validate() error {
	if c.Gravity >= 0 {
		return fmt.Errorf("gravity must be negative, got %.3f", c.Gravity)
	}
	if c.BounceVelocity <= 0 {
		return fmt.Errorf("bounceVelocity must be positive, got %.3f", c.BounceVelocity)
	}
	if c.ForwardStep <= 0 {
		return fmt.Errorf("forwardStep must be positive, got %.3f", c.ForwardStep)
	}
	if c.SpawnInterval <= 0 {
		return fmt.Errorf("spawnInterval must be positive, got %.3f", c.SpawnInterval)
	}
	if c.TrackLength < 2 {
		return fmt.Errorf("trackLength must be at least 2, got %d", c.TrackLength)
	}
	if c.OffsetRange.Min > c.OffsetRange.Max {
		return fmt.Errorf("offset range invalid: min(%.1f) > max(%.1f)",
			c.OffsetRange.Min, c.OffsetRange.Max)
	}
	if c.Ball.Radius <= 0 {
		return fmt.Errorf("ball radius must be positive, got %.3f", c.Ball.Radius)
	}
	if c.Platform.Width <= 0 || c.Platform.Height <= 0 || c.Platform.Depth <= 0 {
		return fmt.Errorf("platform size must be positive, got %.2fx%.2fx%.2f",
			c.Platform.Width, c.Platform.Height, c.Platform.Depth)
	}
	if c.Camera.FOV <= 0 || c.Camera.FOV >= 180 {
		return fmt.Errorf("camera fov must be in (0, 180), got %.1f", c.Camera.FOV)
	}
	if _, err := ParseFailurePolicy(string(c.OnFailure)); err != nil {
		return err
	}
	return nil
}

// ParseFailurePolicy 解析失败策略字符串
func ParseFailurePolicy(s string) (FailurePolicy, error) {
	switch FailurePolicy(s) {
	case FailureAutoRestart, FailureWaitForInput:
		return FailurePolicy(s), nil
	}
	return "", fmt.Errorf("unknown onFailure policy %q (want %q or %q)",
		s, FailureAutoRestart, FailureWaitForInput)
}
