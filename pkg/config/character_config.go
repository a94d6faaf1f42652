package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// CharacterConfig 角色资源描述
//
// 相当于一个 GLB 文件的"目录": 场景节点树、按资源顺序排列的动画片段列表，
// 以及按角色名（而不是下标）指定的移动动画。
//
// 配置文件位置: data/characters/<id>.yaml
type CharacterConfig struct {
	// ID 角色标识（如 "steve", "skeleton"），通常与文件名一致
	ID string `yaml:"id"`

	// DisplayName 显示名称
	DisplayName string `yaml:"displayName"`

	// Scene 场景节点树
	Scene SceneConfig `yaml:"scene"`

	// Clips 动画片段，顺序即资源中的序号（Animation0, Animation1, ...）
	Clips []ClipConfig `yaml:"clips"`

	// Roles 移动动画的角色映射
	Roles ClipRoles `yaml:"roles"`

	// Body 身体碰撞体
	Body BodyConfig `yaml:"body"`

	// Chase 作为敌人时的 AI 行为（"follow" / "passive"）
	Chase string `yaml:"chase"`
}

// SceneConfig 场景节点树
type SceneConfig struct {
	Nodes []SceneNodeConfig `yaml:"nodes"`
}

// SceneNodeConfig 场景节点
type SceneNodeConfig struct {
	Name            string `yaml:"name"`
	Parent          string `yaml:"parent"`          // 为空表示直接挂在角色根实体下
	AnimationPlayer bool   `yaml:"animationPlayer"` // 该节点是否承载动画播放器
}

// ClipConfig 动画片段
type ClipConfig struct {
	Name     string  `yaml:"name"`
	Duration float64 `yaml:"duration"` // 秒
}

// ClipRoles 移动动画的角色映射，值为片段名称
type ClipRoles struct {
	Idle         string   `yaml:"idle"`
	Walk         string   `yaml:"walk"`
	Run          string   `yaml:"run"`
	IdleVariants []string `yaml:"idleVariants"`
}

// BodyConfig 身体胶囊体
type BodyConfig struct {
	Radius     float64 `yaml:"radius"`
	HalfHeight float64 `yaml:"halfHeight"`
	OffsetY    float64 `yaml:"offsetY"`
}

// ClipIndex 按名称查找片段序号，找不到返回 -1
func (c *CharacterConfig) ClipIndex(name string) int {
	for i, clip := range c.Clips {
		if clip.Name == name {
			return i
		}
	}
	return -1
}

// AnimationPlayerNode 返回承载动画播放器的节点名称
func (c *CharacterConfig) AnimationPlayerNode() string {
	for _, node := range c.Scene.Nodes {
		if node.AnimationPlayer {
			return node.Name
		}
	}
	return ""
}

// ParseCharacterConfig 从 YAML 数据解析角色描述
func ParseCharacterConfig(data []byte) (*CharacterConfig, error) {
	var cfg CharacterConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse character config: %w", err)
	}
	if len(cfg.Roles.IdleVariants) == 0 && cfg.Roles.Idle != "" {
		cfg.Roles.IdleVariants = []string{cfg.Roles.Idle}
	}
	if cfg.Body.Radius == 0 {
		cfg.Body = BodyConfig{Radius: 0.6, HalfHeight: 0.7, OffsetY: 1.4}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadCharacterConfig 从文件加载角色描述
func LoadCharacterConfig(path string) (*CharacterConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("无法读取角色配置 %s: %w", path, err)
	}
	cfg, err := ParseCharacterConfig(data)
	if err != nil {
		return nil, fmt.Errorf("角色配置 %s 无效: %w", path, err)
	}
	return cfg, nil
}

// Validate 验证角色描述的完整性
//
// 检查项:
//   - ID 非空，片段名称唯一且时长为正
//   - 节点名称唯一，父节点存在，恰好一个节点承载动画播放器
//   - idle/walk/run 以及 idleVariants 引用的片段都存在，idle 属于 idleVariants
func (c *CharacterConfig) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("%w: character is missing 'id'", ErrInvalidConfig)
	}

	clipNames := make(map[string]bool, len(c.Clips))
	for i, clip := range c.Clips {
		if clip.Name == "" {
			return fmt.Errorf("%w: %s clip #%d is missing 'name'", ErrInvalidConfig, c.ID, i)
		}
		if clipNames[clip.Name] {
			return fmt.Errorf("%w: %s has duplicate clip %q", ErrInvalidConfig, c.ID, clip.Name)
		}
		if clip.Duration <= 0 {
			return fmt.Errorf("%w: %s clip %q needs a positive duration", ErrInvalidConfig, c.ID, clip.Name)
		}
		clipNames[clip.Name] = true
	}

	nodeNames := make(map[string]bool, len(c.Scene.Nodes))
	players := 0
	for _, node := range c.Scene.Nodes {
		if node.Name == "" {
			return fmt.Errorf("%w: %s has a scene node without a name", ErrInvalidConfig, c.ID)
		}
		if nodeNames[node.Name] {
			return fmt.Errorf("%w: %s has duplicate scene node %q", ErrInvalidConfig, c.ID, node.Name)
		}
		if node.Parent != "" && !nodeNames[node.Parent] {
			// 父节点必须先于子节点声明
			return fmt.Errorf("%w: %s node %q references unknown parent %q", ErrInvalidConfig, c.ID, node.Name, node.Parent)
		}
		if node.AnimationPlayer {
			players++
		}
		nodeNames[node.Name] = true
	}
	if players != 1 {
		return fmt.Errorf("%w: %s must have exactly one animation player node, got %d", ErrInvalidConfig, c.ID, players)
	}

	for role, name := range map[string]string{"idle": c.Roles.Idle, "walk": c.Roles.Walk, "run": c.Roles.Run} {
		if name == "" {
			return fmt.Errorf("%w: %s is missing the %s clip role", ErrInvalidConfig, c.ID, role)
		}
		if !clipNames[name] {
			return fmt.Errorf("%w: %s %s role references unknown clip %q", ErrInvalidConfig, c.ID, role, name)
		}
	}

	idleListed := false
	for _, name := range c.Roles.IdleVariants {
		if !clipNames[name] {
			return fmt.Errorf("%w: %s idle variant references unknown clip %q", ErrInvalidConfig, c.ID, name)
		}
		if name == c.Roles.Idle {
			idleListed = true
		}
	}
	if !idleListed {
		return fmt.Errorf("%w: %s idle clip %q is not one of its idle variants", ErrInvalidConfig, c.ID, c.Roles.Idle)
	}

	if _, ok := parseChase(c.Chase); !ok {
		return fmt.Errorf("%w: %s has unknown chase behavior %q", ErrInvalidConfig, c.ID, c.Chase)
	}

	if c.Body.Radius <= 0 || c.Body.HalfHeight < 0 {
		return fmt.Errorf("%w: %s body needs radius > 0", ErrInvalidConfig, c.ID)
	}
	return nil
}

// parseChase 只做名称检查，具体枚举由 components.ParseChaseBehavior 给出
func parseChase(s string) (string, bool) {
	switch s {
	case "", "follow", "passive", "none":
		return s, true
	default:
		return s, false
	}
}
