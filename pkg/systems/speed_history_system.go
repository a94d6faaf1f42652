package systems

import (
	"github.com/decker502/hunt3d/pkg/components"
	"github.com/decker502/hunt3d/pkg/ecs"
	"github.com/decker502/hunt3d/pkg/game"
)

// SpeedHistorySystem 记录玩家速度，供调试曲线绘制
type SpeedHistorySystem struct {
	entityManager *ecs.EntityManager
	history       *game.SpeedHistory
}

// NewSpeedHistorySystem 创建速度采样系统
func NewSpeedHistorySystem(em *ecs.EntityManager, history *game.SpeedHistory) *SpeedHistorySystem {
	return &SpeedHistorySystem{
		entityManager: em,
		history:       history,
	}
}

// Update 采样一帧
func (s *SpeedHistorySystem) Update(deltaTime float64) {
	players := ecs.GetEntitiesWith2[*components.PlayerTag, *components.MovableComponent](s.entityManager)
	if len(players) == 0 {
		return
	}
	movable, _ := ecs.GetComponent[*components.MovableComponent](s.entityManager, players[0])
	s.history.Log(movable.Speed, deltaTime)
}
