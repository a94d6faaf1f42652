package systems

import (
	"math"

	"github.com/decker502/hunt3d/pkg/components"
	"github.com/decker502/hunt3d/pkg/ecs"
)

// StartWithTransition 从头开始播放 clip，并从当前片段过渡 blend 秒
//
// 即使 clip 已经在播放也会重新开始（用于待机片段），播放速率重置为 1，不循环。
func StartWithTransition(p *components.AnimationPlayerComponent, clip components.AssetHandle, duration, blend float64) {
	p.BlendFrom = components.NoAsset
	p.BlendDuration = 0
	p.BlendRemaining = 0
	if p.Clip.IsValid() && p.Clip != clip && blend > 0 {
		p.BlendFrom = p.Clip
		p.BlendDuration = blend
		p.BlendRemaining = blend
	}

	p.Clip = clip
	p.ClipDuration = duration
	p.Elapsed = 0
	p.Rate = 1
	p.Repeat = false
	p.Finished = false
	p.StartCount++
}

// PlayWithTransition 只有 clip 不是当前片段时才调用 StartWithTransition
//
// 返回是否真的切换了片段。
func PlayWithTransition(p *components.AnimationPlayerComponent, clip components.AssetHandle, duration, blend float64) bool {
	if p.IsPlayingClip(clip) {
		return false
	}
	StartWithTransition(p, clip, duration, blend)
	return true
}

// AnimationPlayerSystem 推进所有动画播放器的时间
//
// Elapsed 按 dt*Rate 前进（Rate 可以为负，倒放）；循环片段在 [0, ClipDuration) 内取模，
// 非循环片段停在端点并置 Finished。过渡剩余时间按真实时间递减。
type AnimationPlayerSystem struct {
	entityManager *ecs.EntityManager
}

// NewAnimationPlayerSystem 创建动画播放系统
func NewAnimationPlayerSystem(em *ecs.EntityManager) *AnimationPlayerSystem {
	return &AnimationPlayerSystem{entityManager: em}
}

// Update 推进一帧
func (s *AnimationPlayerSystem) Update(deltaTime float64) {
	players := ecs.GetEntitiesWith1[*components.AnimationPlayerComponent](s.entityManager)
	for _, id := range players {
		player, _ := ecs.GetComponent[*components.AnimationPlayerComponent](s.entityManager, id)
		advancePlayer(player, deltaTime)
	}
}

func advancePlayer(p *components.AnimationPlayerComponent, deltaTime float64) {
	if !p.Clip.IsValid() {
		return
	}

	if p.BlendRemaining > 0 {
		p.BlendRemaining = math.Max(0, p.BlendRemaining-deltaTime)
		if p.BlendRemaining == 0 {
			p.BlendFrom = components.NoAsset
		}
	}

	if p.Finished {
		return
	}
	p.Elapsed += deltaTime * p.Rate

	if p.ClipDuration <= 0 {
		return
	}
	if p.Repeat {
		p.Elapsed = math.Mod(p.Elapsed, p.ClipDuration)
		if p.Elapsed < 0 {
			p.Elapsed += p.ClipDuration
		}
		return
	}
	if p.Elapsed >= p.ClipDuration {
		p.Elapsed = p.ClipDuration
		p.Finished = true
	} else if p.Elapsed <= 0 && p.Rate < 0 {
		p.Elapsed = 0
		p.Finished = true
	}
}
