package entities

import (
	"fmt"

	"github.com/decker502/hunt3d/pkg/components"
	"github.com/decker502/hunt3d/pkg/config"
	"github.com/decker502/hunt3d/pkg/ecs"
	"github.com/go-gl/mathgl/mgl64"
)

// NewEnemyEntity 按敌人类型创建一个敌人
//
// 敌人直接修改 TransformComponent 移动，不经过角色控制器。
// 绑定在这里再校验一次，手工构造的 EnemyArchetype 也不会生成残缺的实体。
func NewEnemyEntity(em *ecs.EntityManager, arch *EnemyArchetype, tuning *config.TuningConfig, pos mgl64.Vec3) (ecs.EntityID, error) {
	binding := arch.Binding
	binding.IdleVariants = append([]components.AssetHandle(nil), arch.Binding.IdleVariants...)
	if err := ValidateBinding(&binding); err != nil {
		return ecs.InvalidEntity, fmt.Errorf("enemy %s: %w", arch.Character, err)
	}
	body := arch.Body

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.EnemyTag{})
	ecs.AddComponent(em, id, &components.NameComponent{Name: arch.DisplayName})
	ecs.AddComponent(em, id, components.NewTransform(pos.X(), pos.Y(), pos.Z()))
	ecs.AddComponent(em, id, &components.MovableComponent{
		MaxSpeed:        tuning.Enemy.MaxSpeed,
		MaxAcceleration: tuning.Enemy.MaxAcceleration,
	})
	ecs.AddComponent(em, id, &components.ChaseComponent{Behavior: arch.Chase})
	ecs.AddComponent(em, id, &binding)
	ecs.AddComponent(em, id, &components.SceneInstanceComponent{Scene: arch.Scene})
	ecs.AddComponent(em, id, &components.HierarchyComponent{})
	ecs.AddComponent(em, id, &body)
	ecs.AddComponent(em, id, &components.HealthComponent{
		Current: tuning.Enemy.Health,
		Max:     tuning.Enemy.Health,
	})
	ecs.AddComponent(em, id, &components.ContactDamageComponent{
		Range:           tuning.Enemy.ContactRange,
		DamagePerSecond: tuning.Enemy.ContactDamagePerS,
	})
	return id, nil
}

// NewEnemyGrid 在关卡配置的网格上生成敌人，返回按行优先顺序排列的实体ID
func NewEnemyGrid(em *ecs.EntityManager, arch *EnemyArchetype, tuning *config.TuningConfig, grid config.EnemyGridConfig) ([]ecs.EntityID, error) {
	positions := grid.Positions()
	ids := make([]ecs.EntityID, 0, len(positions))
	for _, p := range positions {
		id, err := NewEnemyEntity(em, arch, tuning, mgl64.Vec3{p[0], p[1], p[2]})
		if err != nil {
			return ids, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
