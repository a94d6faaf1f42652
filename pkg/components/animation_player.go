package components

// AnimationPlayerComponent 动画播放器（外部动画模块的数据模型）
//
// 挂在场景节点树中的某个子实体上，而不是角色根实体上。
// 根实体通过 AnimationLinkComponent 找到它。
//
// 所有播放逻辑在 systems 包中实现（PlayWithTransition / StartWithTransition /
// AnimationPlayerSystem），本组件只保存状态。
type AnimationPlayerComponent struct {
	// Clip 当前激活的片段
	Clip AssetHandle

	// ClipDuration 当前片段时长（秒），0 表示未知（视为无限长）
	ClipDuration float64

	// Elapsed 当前片段已播放时间（秒，已乘以 Rate）
	Elapsed float64

	// Rate 播放速率，1.0 为原速
	Rate float64

	// Repeat 是否循环播放
	Repeat bool

	// Finished 非循环片段是否已经播放到结尾
	Finished bool

	// BlendFrom 正在淡出的上一个片段
	BlendFrom AssetHandle

	// BlendDuration 本次过渡的总时长（秒）
	BlendDuration float64

	// BlendRemaining 剩余过渡时间（秒），0 表示没有过渡
	BlendRemaining float64

	// StartCount 片段被（重新）启动的次数，用于调试和检测重复启动
	StartCount int
}

// IsPlayingClip 检查指定片段是否为当前激活片段
func (p *AnimationPlayerComponent) IsPlayingClip(clip AssetHandle) bool {
	return clip.IsValid() && p.Clip == clip
}

// BlendWeight 返回当前片段的混合权重（0~1），没有过渡时为 1
func (p *AnimationPlayerComponent) BlendWeight() float64 {
	if p.BlendRemaining <= 0 || p.BlendDuration <= 0 {
		return 1
	}
	return 1 - p.BlendRemaining/p.BlendDuration
}
