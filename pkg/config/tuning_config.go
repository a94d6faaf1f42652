package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// TuningConfig 玩法调参配置
//
// 追逐距离阈值、加速度、停滞死区等原先写死在代码里的常量都集中在这里，
// 可以不改代码直接调整手感。
//
// 配置文件位置: data/tuning.yaml
type TuningConfig struct {
	Motion    MotionTuning    `yaml:"motion"`
	Chase     ChaseTuning     `yaml:"chase"`
	Player    PlayerTuning    `yaml:"player"`
	Enemy     EnemyTuning     `yaml:"enemy"`
	Animation AnimationTuning `yaml:"animation"`
	Camera    CameraTuning    `yaml:"camera"`
	Debug     DebugTuning     `yaml:"debug"`
}

// MotionTuning 运动积分参数
type MotionTuning struct {
	// StallSpeed |speed| 低于此值且 |acceleration| 低于 StallAcceleration 时强制停止
	StallSpeed float64 `yaml:"stallSpeed"`
	// StallAcceleration 停滞死区的加速度阈值
	StallAcceleration float64 `yaml:"stallAcceleration"`
	// FallSpeed 控制器报告未着地时叠加的下落速度（单位/秒）
	FallSpeed float64 `yaml:"fallSpeed"`
}

// ChaseTuning 追逐 AI 参数
//
// 距离 d 的三个区间:
//   - d > FarDistance: 加速度 FarAcceleration，慢速
//   - NearDistance < d <= FarDistance: 加速度 NearAcceleration，快速
//   - d <= NearDistance: 加速度 = -speed（刹车）
type ChaseTuning struct {
	FarDistance      float64 `yaml:"farDistance"`
	NearDistance     float64 `yaml:"nearDistance"`
	FarAcceleration  float64 `yaml:"farAcceleration"`
	NearAcceleration float64 `yaml:"nearAcceleration"`
}

// PlayerTuning 玩家操控参数
type PlayerTuning struct {
	TurnRate        float64 `yaml:"turnRate"`    // 转向速度（弧度/秒）
	Thrust          float64 `yaml:"thrust"`      // 按住前进/后退时每帧叠加的加速度
	BrakeFactor     float64 `yaml:"brakeFactor"` // 松开按键时的刹车系数
	MaxSpeed        float64 `yaml:"maxSpeed"`
	MaxAcceleration float64 `yaml:"maxAcceleration"`
	Health          float64 `yaml:"health"`
}

// EnemyTuning 敌人参数
type EnemyTuning struct {
	MaxSpeed          float64 `yaml:"maxSpeed"`
	MaxAcceleration   float64 `yaml:"maxAcceleration"`
	Health            float64 `yaml:"health"`
	ContactRange      float64 `yaml:"contactRange"`
	ContactDamagePerS float64 `yaml:"contactDamagePerSecond"`
}

// AnimationTuning 动画切换参数
type AnimationTuning struct {
	IdleBlendMs   int     `yaml:"idleBlendMs"`   // 进入待机的过渡时长
	MoveBlendMs   int     `yaml:"moveBlendMs"`   // 进入行走/奔跑的过渡时长
	WalkTolerance float64 `yaml:"walkTolerance"` // speed <= maxSpeed/2 + WalkTolerance 时仍算行走
}

// IdleBlend 返回待机过渡时长（秒）
func (a AnimationTuning) IdleBlend() float64 {
	return float64(a.IdleBlendMs) / 1000.0
}

// MoveBlend 返回行走/奔跑过渡时长（秒）
func (a AnimationTuning) MoveBlend() float64 {
	return float64(a.MoveBlendMs) / 1000.0
}

// CameraTuning 跟随镜头参数
type CameraTuning struct {
	Distance float64 `yaml:"distance"` // X 和 Z 方向的偏移
	Height   float64 `yaml:"height"`   // Y 方向的偏移
}

// DebugTuning 调试曲线参数
type DebugTuning struct {
	SpeedHistoryCapacity int     `yaml:"speedHistoryCapacity"`
	SpeedHistoryInterval float64 `yaml:"speedHistoryInterval"`
}

// DefaultTuningConfig 返回与原型手感一致的默认参数
func DefaultTuningConfig() *TuningConfig {
	return &TuningConfig{
		Motion: MotionTuning{
			StallSpeed:        1.0,
			StallAcceleration: 9.0,
			FallSpeed:         10.0,
		},
		Chase: ChaseTuning{
			FarDistance:      18.0,
			NearDistance:     7.0,
			FarAcceleration:  10.0,
			NearAcceleration: 15.0,
		},
		Player: PlayerTuning{
			TurnRate:        5.0,
			Thrust:          9.0,
			BrakeFactor:     6.0,
			MaxSpeed:        14.0,
			MaxAcceleration: 20.0,
			Health:          100.0,
		},
		Enemy: EnemyTuning{
			MaxSpeed:          7.0,
			MaxAcceleration:   20.0,
			Health:            100.0,
			ContactRange:      1.2,
			ContactDamagePerS: 10.0,
		},
		Animation: AnimationTuning{
			IdleBlendMs:   200,
			MoveBlendMs:   300,
			WalkTolerance: 0.1,
		},
		Camera: CameraTuning{
			Distance: 20.0,
			Height:   5.0,
		},
		Debug: DebugTuning{
			SpeedHistoryCapacity: 100,
			SpeedHistoryInterval: 0.1,
		},
	}
}

// ParseTuningConfig 从 YAML 数据解析调参配置
// 文件中缺省的字段保留默认值
func ParseTuningConfig(data []byte) (*TuningConfig, error) {
	cfg := DefaultTuningConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse tuning config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadTuningConfig 加载调参配置文件
//
// 参数:
//   - path: 配置文件路径（如 "data/tuning.yaml"）
//
// 返回:
//   - *TuningConfig: 加载成功后的配置结构
//   - error: 读取、解析或验证失败时返回错误
func LoadTuningConfig(path string) (*TuningConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tuning config: %w", err)
	}
	cfg, err := ParseTuningConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate 验证配置有效性
func (c *TuningConfig) Validate() error {
	if c.Motion.StallSpeed < 0 || c.Motion.StallAcceleration < 0 {
		return fmt.Errorf("%w: stall thresholds must be >= 0", ErrInvalidConfig)
	}
	if c.Motion.FallSpeed < 0 {
		return fmt.Errorf("%w: fallSpeed must be >= 0, got %.2f", ErrInvalidConfig, c.Motion.FallSpeed)
	}
	if c.Chase.NearDistance <= 0 || c.Chase.NearDistance >= c.Chase.FarDistance {
		return fmt.Errorf("%w: chase distances require 0 < nearDistance(%.1f) < farDistance(%.1f)",
			ErrInvalidConfig, c.Chase.NearDistance, c.Chase.FarDistance)
	}
	if c.Player.MaxSpeed <= 0 || c.Enemy.MaxSpeed <= 0 {
		return fmt.Errorf("%w: maxSpeed must be > 0", ErrInvalidConfig)
	}
	if c.Player.MaxAcceleration <= 0 || c.Enemy.MaxAcceleration <= 0 {
		return fmt.Errorf("%w: maxAcceleration must be > 0", ErrInvalidConfig)
	}
	if c.Player.Health <= 0 || c.Enemy.Health <= 0 {
		return fmt.Errorf("%w: health must be > 0", ErrInvalidConfig)
	}
	if c.Animation.IdleBlendMs < 0 || c.Animation.MoveBlendMs < 0 {
		return fmt.Errorf("%w: blend durations must be >= 0", ErrInvalidConfig)
	}
	if c.Debug.SpeedHistoryCapacity <= 0 || c.Debug.SpeedHistoryInterval <= 0 {
		return fmt.Errorf("%w: speed history needs capacity > 0 and interval > 0", ErrInvalidConfig)
	}
	return nil
}
