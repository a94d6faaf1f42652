package entities

import (
	"fmt"

	"github.com/decker502/hunt3d/pkg/components"
	"github.com/decker502/hunt3d/pkg/config"
	"github.com/decker502/hunt3d/pkg/ecs"
	"github.com/go-gl/mathgl/mgl64"
)

// 玩家角色控制器设置
const (
	controllerOffset       = 0.1
	controllerSnapToGround = 10.0
)

// NewPlayerEntity 创建玩家实体
//
// 玩家通过运动学角色控制器移动（MotionSystem 只写入期望位移，
// 由 PhysicsSystem 负责碰撞求解），场景节点树在资源就绪后由 SceneSpawnSystem 生成。
//
// 参数:
//   - em: 实体管理器
//   - src: 角色资源（必须已加载完成）
//   - tuning: 玩家速度、加速度和生命值
//   - character: 角色描述名（如 "steve"）
//   - spawn: 出生点（脚底位置）
//
// 返回:
//   - ecs.EntityID: 玩家实体ID
//   - error: 角色未加载或动画绑定不完整时返回错误，此时不会创建实体
func NewPlayerEntity(em *ecs.EntityManager, src CharacterSource, tuning *config.TuningConfig, character string, spawn mgl64.Vec3) (ecs.EntityID, error) {
	asset, err := src.Character(character)
	if err != nil {
		return ecs.InvalidEntity, fmt.Errorf("player: %w", err)
	}
	binding, err := NewAnimationBinding(asset)
	if err != nil {
		return ecs.InvalidEntity, fmt.Errorf("player: %w", err)
	}
	body := bodyCollider(asset)

	name := asset.Config.DisplayName
	if name == "" {
		name = character
	}

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PlayerTag{})
	ecs.AddComponent(em, id, &components.NameComponent{Name: name})
	ecs.AddComponent(em, id, components.NewTransform(spawn.X(), spawn.Y(), spawn.Z()))
	ecs.AddComponent(em, id, &components.MovableComponent{
		MaxSpeed:        tuning.Player.MaxSpeed,
		MaxAcceleration: tuning.Player.MaxAcceleration,
	})
	ecs.AddComponent(em, id, binding)
	ecs.AddComponent(em, id, &components.SceneInstanceComponent{Scene: asset.Scene})
	ecs.AddComponent(em, id, &components.HierarchyComponent{})
	ecs.AddComponent(em, id, body)
	ecs.AddComponent(em, id, &components.KinematicControllerComponent{
		Offset:         controllerOffset,
		AutostepHeight: 2 * (body.HalfHeight + body.Radius), // 一个身高
		SnapToGround:   controllerSnapToGround,
		Grounded:       true,
	})
	ecs.AddComponent(em, id, &components.HealthComponent{
		Current: tuning.Player.Health,
		Max:     tuning.Player.Health,
	})
	return id, nil
}
