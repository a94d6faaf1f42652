package systems

import (
	"github.com/decker502/hunt3d/pkg/components"
	"github.com/decker502/hunt3d/pkg/config"
	"github.com/decker502/hunt3d/pkg/ecs"
	"github.com/decker502/hunt3d/pkg/game"
	"github.com/decker502/hunt3d/pkg/logger"
)

// ClipSource 查询动画片段时长，由 game.ResourceManager 实现
type ClipSource interface {
	Clip(h components.AssetHandle) (*game.ClipAsset, bool)
}

// MotionAnimation 根据运动状态选出的动画
type MotionAnimation int

const (
	MotionIdle MotionAnimation = iota
	MotionWalk
	MotionRun
)

// String 返回动画名称
func (a MotionAnimation) String() string {
	switch a {
	case MotionIdle:
		return "idle"
	case MotionWalk:
		return "walk"
	default:
		return "run"
	}
}

// AnimationSystem 根据运动状态切换 待机/行走/奔跑 动画
//
// 只处理已经建立 AnimationLinkComponent 的实体，还没有链接的实体本帧跳过。
//   - speed == 0 且 acceleration == 0: 待机（IdleBlend 过渡，从头开始，循环；已在播放则不动）
//   - speed <= MaxSpeed/2 + WalkTolerance: 行走（MoveBlend 过渡），速率 speed/(MaxSpeed/2)
//   - 其他: 奔跑（MoveBlend 过渡），速率 speed/MaxSpeed
//
// 行走和奔跑的速率每帧都会重新设置。
type AnimationSystem struct {
	entityManager *ecs.EntityManager
	clips         ClipSource
	tuning        config.AnimationTuning
}

// NewAnimationSystem 创建动画选择系统
func NewAnimationSystem(em *ecs.EntityManager, clips ClipSource, tuning config.AnimationTuning) *AnimationSystem {
	return &AnimationSystem{
		entityManager: em,
		clips:         clips,
		tuning:        tuning,
	}
}

// Update 为每个已链接的实体选择动画
func (s *AnimationSystem) Update(deltaTime float64) {
	entities := ecs.GetEntitiesWith3[*components.MovableComponent, *components.AnimationBindingComponent, *components.AnimationLinkComponent](s.entityManager)
	for _, id := range entities {
		movable, _ := ecs.GetComponent[*components.MovableComponent](s.entityManager, id)
		binding, _ := ecs.GetComponent[*components.AnimationBindingComponent](s.entityManager, id)
		link, _ := ecs.GetComponent[*components.AnimationLinkComponent](s.entityManager, id)

		player, ok := ecs.GetComponent[*components.AnimationPlayerComponent](s.entityManager, link.Player)
		if !ok {
			continue
		}

		state := SelectMotionAnimation(movable, s.tuning.WalkTolerance)
		if s.apply(player, binding, movable, state) {
			logger.Log.WithField("entity", id).Debugf("[AnimationSystem] 切换动画: %s", state)
		}
	}
}

// SelectMotionAnimation 根据运动状态选择动画
func SelectMotionAnimation(m *components.MovableComponent, walkTolerance float64) MotionAnimation {
	switch {
	case m.Speed == 0 && m.Acceleration == 0:
		return MotionIdle
	case m.Speed <= m.MaxSpeed/2+walkTolerance:
		return MotionWalk
	default:
		return MotionRun
	}
}

// apply 让播放器进入 state，返回是否切换了片段
func (s *AnimationSystem) apply(p *components.AnimationPlayerComponent, b *components.AnimationBindingComponent, m *components.MovableComponent, state MotionAnimation) bool {
	switch state {
	case MotionIdle:
		if p.IsPlayingClip(b.Idle) {
			return false
		}
		StartWithTransition(p, b.Idle, s.clipDuration(b.Idle), s.tuning.IdleBlend())
		p.Repeat = true
		return true

	case MotionWalk:
		switched := PlayWithTransition(p, b.Walk, s.clipDuration(b.Walk), s.tuning.MoveBlend())
		p.Repeat = true
		p.Rate = m.Speed / (m.MaxSpeed / 2)
		return switched

	default:
		switched := PlayWithTransition(p, b.Run, s.clipDuration(b.Run), s.tuning.MoveBlend())
		p.Repeat = true
		p.Rate = m.Speed / m.MaxSpeed
		return switched
	}
}

func (s *AnimationSystem) clipDuration(h components.AssetHandle) float64 {
	if s.clips == nil {
		return 0
	}
	if clip, ok := s.clips.Clip(h); ok {
		return clip.Duration
	}
	return 0
}
