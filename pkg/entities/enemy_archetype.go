package entities

import (
	"fmt"

	"github.com/decker502/hunt3d/pkg/components"
)

// EnemyArchetype 敌人类型
//
// 同一类型的所有敌人共享场景、动画绑定和追逐行为，
// 由 NewEnemyArchetype 从角色资源构建一次，再用于生成多个实体。
type EnemyArchetype struct {
	Character   string
	DisplayName string
	Scene       components.AssetHandle
	Binding     components.AnimationBindingComponent
	Chase       components.ChaseBehavior
	Body        components.BodyColliderComponent
}

// NewEnemyArchetype 从已加载的角色资源构建敌人类型
func NewEnemyArchetype(src CharacterSource, character string) (*EnemyArchetype, error) {
	asset, err := src.Character(character)
	if err != nil {
		return nil, fmt.Errorf("enemy archetype: %w", err)
	}
	binding, err := NewAnimationBinding(asset)
	if err != nil {
		return nil, fmt.Errorf("enemy archetype: %w", err)
	}
	chase, ok := components.ParseChaseBehavior(asset.Config.Chase)
	if !ok {
		return nil, fmt.Errorf("enemy archetype %s: unknown chase behavior %q", character, asset.Config.Chase)
	}

	name := asset.Config.DisplayName
	if name == "" {
		name = character
	}
	return &EnemyArchetype{
		Character:   character,
		DisplayName: name,
		Scene:       asset.Scene,
		Binding:     *binding,
		Chase:       chase,
		Body:        *bodyCollider(asset),
	}, nil
}
