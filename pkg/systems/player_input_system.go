package systems

import (
	"github.com/decker502/hunt3d/pkg/components"
	"github.com/decker502/hunt3d/pkg/config"
	"github.com/decker502/hunt3d/pkg/ecs"
	"github.com/decker502/hunt3d/pkg/utils"
)

// PlayerInputSystem 把键盘状态转换为玩家的转向和加速度
//
// A/D 按 TurnRate 转向；W/S 每帧叠加 ±Thrust 加速度，都不按时松开则叠加
// -(speed*BrakeFactor + acceleration) 刹车；累加结果限制在 ±MaxAcceleration。
// Shift 允许达到最高速度。
type PlayerInputSystem struct {
	entityManager *ecs.EntityManager
	keyboard      utils.Keyboard
	tuning        config.PlayerTuning
}

// NewPlayerInputSystem 创建玩家输入系统
func NewPlayerInputSystem(em *ecs.EntityManager, keyboard utils.Keyboard, tuning config.PlayerTuning) *PlayerInputSystem {
	return &PlayerInputSystem{
		entityManager: em,
		keyboard:      keyboard,
		tuning:        tuning,
	}
}

// Update 处理一帧输入
func (s *PlayerInputSystem) Update(deltaTime float64) {
	players := ecs.GetEntitiesWith3[*components.PlayerTag, *components.TransformComponent, *components.MovableComponent](s.entityManager)
	for _, id := range players {
		transform, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)
		movable, _ := ecs.GetComponent[*components.MovableComponent](s.entityManager, id)

		if s.keyboard.Pressed(utils.KeyTurnLeft) {
			transform.RotateY(s.tuning.TurnRate * deltaTime)
		}
		if s.keyboard.Pressed(utils.KeyTurnRight) {
			transform.RotateY(-s.tuning.TurnRate * deltaTime)
		}

		var thrust float64
		switch {
		case s.keyboard.Pressed(utils.KeyForward):
			thrust = s.tuning.Thrust
		case s.keyboard.Pressed(utils.KeyBackward):
			thrust = -s.tuning.Thrust
		default:
			thrust = -(movable.Speed*s.tuning.BrakeFactor + movable.Acceleration)
		}

		movable.Acceleration = clamp(movable.Acceleration+thrust, -movable.MaxAcceleration, movable.MaxAcceleration)
		movable.Fast = s.keyboard.Pressed(utils.KeyFast)
	}
}
