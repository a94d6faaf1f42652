package systems

import (
	"math"

	"github.com/decker502/hunt3d/pkg/components"
	"github.com/decker502/hunt3d/pkg/ecs"
	"github.com/decker502/hunt3d/pkg/logger"
)

// ContactDamageSystem 敌人贴近玩家时持续扣血
//
// 水平距离不超过 ContactDamageComponent.Range 的每个敌人每秒造成 DamagePerSecond 点伤害。
// 生命值不会低于 0；状态切换由场景根据 HealthComponent.IsDead 决定。
type ContactDamageSystem struct {
	entityManager *ecs.EntityManager
}

// NewContactDamageSystem 创建接触伤害系统
func NewContactDamageSystem(em *ecs.EntityManager) *ContactDamageSystem {
	return &ContactDamageSystem{entityManager: em}
}

// Update 结算一帧的接触伤害
func (s *ContactDamageSystem) Update(deltaTime float64) {
	players := ecs.GetEntitiesWith3[*components.PlayerTag, *components.TransformComponent, *components.HealthComponent](s.entityManager)
	if len(players) == 0 {
		return
	}
	playerID := players[0]
	playerTransform, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, playerID)
	health, _ := ecs.GetComponent[*components.HealthComponent](s.entityManager, playerID)
	if health.IsDead() {
		return
	}

	attackers := ecs.GetEntitiesWith2[*components.ContactDamageComponent, *components.TransformComponent](s.entityManager)
	for _, id := range attackers {
		damage, _ := ecs.GetComponent[*components.ContactDamageComponent](s.entityManager, id)
		transform, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)
		if components.PlanarDistance(transform.Translation, playerTransform.Translation) > damage.Range {
			continue
		}
		health.Current = math.Max(0, health.Current-damage.DamagePerSecond*deltaTime)
	}

	if health.IsDead() {
		logger.Log.WithField("entity", playerID).Info("[ContactDamageSystem] 玩家生命值耗尽")
	}
}
