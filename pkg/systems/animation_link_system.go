package systems

import (
	"github.com/decker502/hunt3d/pkg/components"
	"github.com/decker502/hunt3d/pkg/ecs"
	"github.com/decker502/hunt3d/pkg/logger"
)

// AnimationLinkSystem 为角色根实体建立到动画播放器实体的链接
//
// 对每个动画播放器沿父链向上找到带 AnimationBindingComponent 的祖先，
// 祖先还没有 AnimationLinkComponent 时添加一次。链接建立后不再更新。
type AnimationLinkSystem struct {
	entityManager *ecs.EntityManager
}

// NewAnimationLinkSystem 创建链接系统
func NewAnimationLinkSystem(em *ecs.EntityManager) *AnimationLinkSystem {
	return &AnimationLinkSystem{entityManager: em}
}

// Update 处理所有尚未链接的动画播放器
func (s *AnimationLinkSystem) Update(deltaTime float64) {
	players := ecs.GetEntitiesWith2[*components.AnimationPlayerComponent, *components.HierarchyComponent](s.entityManager)
	for _, player := range players {
		owner, ok := s.findOwner(player)
		if !ok || ecs.HasComponent[*components.AnimationLinkComponent](s.entityManager, owner) {
			continue
		}
		ecs.AddComponent(s.entityManager, owner, &components.AnimationLinkComponent{Player: player})
		logger.Log.WithField("entity", owner).Debugf("[AnimationLinkSystem] 链接动画播放器 %d", player)
	}
}

// findOwner 沿父链查找最近的带动画绑定的祖先
func (s *AnimationLinkSystem) findOwner(id ecs.EntityID) (ecs.EntityID, bool) {
	visited := map[ecs.EntityID]bool{id: true}
	current := id
	for {
		h, ok := ecs.GetComponent[*components.HierarchyComponent](s.entityManager, current)
		if !ok || h.Parent == ecs.InvalidEntity || visited[h.Parent] {
			return ecs.InvalidEntity, false
		}
		current = h.Parent
		visited[current] = true
		if ecs.HasComponent[*components.AnimationBindingComponent](s.entityManager, current) {
			return current, true
		}
	}
}
