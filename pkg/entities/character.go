package entities

import (
	"fmt"

	"github.com/decker502/hunt3d/pkg/components"
	"github.com/decker502/hunt3d/pkg/game"
)

// CharacterSource 实体工厂查询已加载角色资源的接口，由 game.ResourceManager 实现
type CharacterSource interface {
	Character(id string) (*game.CharacterAsset, error)
}

// NewAnimationBinding 根据角色描述中的角色名解析动画片段句柄
//
// 待机片段按 roles.idle 的名字查找，和它在 idleVariants 中的位置无关。
func NewAnimationBinding(asset *game.CharacterAsset) (*components.AnimationBindingComponent, error) {
	cfg := asset.Config
	clip := func(name string) components.AssetHandle {
		i := cfg.ClipIndex(name)
		if i < 0 || i >= len(asset.Clips) {
			return components.NoAsset
		}
		return asset.Clips[i]
	}

	binding := &components.AnimationBindingComponent{
		Run:  clip(cfg.Roles.Run),
		Walk: clip(cfg.Roles.Walk),
		Idle: clip(cfg.Roles.Idle),
	}
	for _, name := range cfg.Roles.IdleVariants {
		binding.IdleVariants = append(binding.IdleVariants, clip(name))
	}

	if err := ValidateBinding(binding); err != nil {
		return nil, fmt.Errorf("character %s: %w", cfg.ID, err)
	}
	return binding, nil
}

// ValidateBinding 检查绑定是否完整
//
// 返回:
//   - ErrNoIdleClips: 没有待机片段
//   - ErrMissingClip: run/walk/idle 缺失、某个待机片段无效，或 idle 不在 IdleVariants 中
func ValidateBinding(b *components.AnimationBindingComponent) error {
	if len(b.IdleVariants) == 0 {
		return ErrNoIdleClips
	}
	if !b.Run.IsValid() {
		return fmt.Errorf("%w: run", ErrMissingClip)
	}
	if !b.Walk.IsValid() {
		return fmt.Errorf("%w: walk", ErrMissingClip)
	}
	if !b.Idle.IsValid() {
		return fmt.Errorf("%w: idle", ErrMissingClip)
	}
	idleListed := false
	for i, h := range b.IdleVariants {
		if !h.IsValid() {
			return fmt.Errorf("%w: idle variant #%d", ErrMissingClip, i)
		}
		if h == b.Idle {
			idleListed = true
		}
	}
	if !idleListed {
		return fmt.Errorf("%w: idle clip is not one of the idle variants", ErrMissingClip)
	}
	return nil
}

// bodyCollider 从角色描述生成身体碰撞体
func bodyCollider(asset *game.CharacterAsset) *components.BodyColliderComponent {
	body := asset.Config.Body
	return &components.BodyColliderComponent{
		Radius:     body.Radius,
		HalfHeight: body.HalfHeight,
		OffsetY:    body.OffsetY,
	}
}
