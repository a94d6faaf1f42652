package entities

import "errors"

var (
	// ErrMissingClip 移动动画绑定缺少 run/walk/idle 中的某个片段
	ErrMissingClip = errors.New("animation binding is missing a clip")
	// ErrNoIdleClips 动画绑定没有任何待机片段
	ErrNoIdleClips = errors.New("animation binding has no idle clips")
)
