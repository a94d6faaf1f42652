package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LevelConfig 静态关卡配置
//
// 描述地面、障碍方块、玩家出生点和敌人出生网格。
// 所有坐标均为世界坐标（Y 轴向上）。
//
// 配置文件位置: data/level.yaml
type LevelConfig struct {
	// Name 关卡名称（用于日志）
	Name string `yaml:"name"`

	// Ground 地面
	Ground GroundConfig `yaml:"ground"`

	// Blocks 静态方块障碍
	Blocks []BlockConfig `yaml:"blocks"`

	// PlayerSpawn 玩家出生点
	PlayerSpawn [3]float64 `yaml:"playerSpawn"`

	// PlayerCharacter 玩家使用的角色描述名（对应 data/characters/<name>.yaml）
	PlayerCharacter string `yaml:"playerCharacter"`

	// EnemyGrid 敌人出生网格
	EnemyGrid EnemyGridConfig `yaml:"enemyGrid"`
}

// GroundConfig 地面配置（以原点为中心的正方形平板）
type GroundConfig struct {
	Size          float64 `yaml:"size"`
	HalfThickness float64 `yaml:"halfThickness"`
}

// BlockConfig 轴对齐方块
type BlockConfig struct {
	Center      [3]float64 `yaml:"center"`
	HalfExtents [3]float64 `yaml:"halfExtents"`
}

// EnemyGridConfig 敌人按网格生成: 位置 = Origin + (row*Spacing, 0, col*Spacing)
type EnemyGridConfig struct {
	Archetype string     `yaml:"archetype"`
	Rows      int        `yaml:"rows"`
	Cols      int        `yaml:"cols"`
	Spacing   float64    `yaml:"spacing"`
	Origin    [3]float64 `yaml:"origin"`
}

// Positions 展开网格中的所有出生点，按行优先顺序
func (g EnemyGridConfig) Positions() [][3]float64 {
	positions := make([][3]float64, 0, g.Rows*g.Cols)
	for i := 0; i < g.Rows; i++ {
		for j := 0; j < g.Cols; j++ {
			positions = append(positions, [3]float64{
				g.Origin[0] + float64(i)*g.Spacing,
				g.Origin[1],
				g.Origin[2] + float64(j)*g.Spacing,
			})
		}
	}
	return positions
}

// ParseLevelConfig 从 YAML 数据解析关卡配置
func ParseLevelConfig(data []byte) (*LevelConfig, error) {
	var levelConfig LevelConfig
	if err := yaml.Unmarshal(data, &levelConfig); err != nil {
		return nil, fmt.Errorf("failed to parse level config YAML: %w", err)
	}

	applyLevelDefaults(&levelConfig)

	if err := levelConfig.Validate(); err != nil {
		return nil, err
	}
	return &levelConfig, nil
}

// LoadLevelConfig 从文件加载关卡配置
func LoadLevelConfig(filepath string) (*LevelConfig, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read level config file %s: %w", filepath, err)
	}
	cfg, err := ParseLevelConfig(data)
	if err != nil {
		return nil, fmt.Errorf("invalid level config in %s: %w", filepath, err)
	}
	return cfg, nil
}

// applyLevelDefaults 填充可省略字段
func applyLevelDefaults(c *LevelConfig) {
	if c.Ground.HalfThickness == 0 {
		c.Ground.HalfThickness = 0.1
	}
	if c.EnemyGrid.Spacing == 0 {
		c.EnemyGrid.Spacing = 1.0
	}
	if c.PlayerCharacter == "" {
		c.PlayerCharacter = "steve"
	}
}

// Validate 验证关卡配置
func (c *LevelConfig) Validate() error {
	if c.Ground.Size <= 0 {
		return fmt.Errorf("%w: ground size must be > 0, got %.1f", ErrInvalidConfig, c.Ground.Size)
	}
	for i, b := range c.Blocks {
		for axis := 0; axis < 3; axis++ {
			if b.HalfExtents[axis] <= 0 {
				return fmt.Errorf("%w: block #%d has non-positive half extent on axis %d", ErrInvalidConfig, i, axis)
			}
		}
	}
	if c.EnemyGrid.Rows < 0 || c.EnemyGrid.Cols < 0 {
		return fmt.Errorf("%w: enemy grid size must be >= 0", ErrInvalidConfig)
	}
	if c.EnemyGrid.Rows*c.EnemyGrid.Cols > 0 && c.EnemyGrid.Archetype == "" {
		return fmt.Errorf("%w: enemy grid needs an archetype", ErrInvalidConfig)
	}
	half := c.Ground.Size / 2
	if abs(c.PlayerSpawn[0]) > half || abs(c.PlayerSpawn[2]) > half {
		return fmt.Errorf("%w: player spawn (%.1f, %.1f) is outside the ground", ErrInvalidConfig,
			c.PlayerSpawn[0], c.PlayerSpawn[2])
	}
	return nil
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
