package components

// AnimationBindingComponent 角色的移动动画绑定
//
// 三个角色（待机/行走/奔跑）各自绑定一个动画片段。待机片段通过角色名
// 在构造时选定并单独保存，不在运行时按下标从 IdleVariants 中取，
// 玩家和敌人因此不会再出现下标不一致的问题。
type AnimationBindingComponent struct {
	Run  AssetHandle // 奔跑片段
	Walk AssetHandle // 行走片段
	Idle AssetHandle // 当前使用的待机片段（必须出现在 IdleVariants 中）

	// IdleVariants 该角色可用的全部待机片段，按资源中的顺序排列
	IdleVariants []AssetHandle
}
