package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a top-level screen of the game.
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update advances the scene by deltaTime seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}

// Saveable 可选接口：场景在程序退出前保存设置
//
// 实现此接口的场景会在窗口关闭时被调用 SaveOnExit()
type Saveable interface {
	// SaveOnExit 返回 false 表示保存失败（程序仍会正常退出）
	SaveOnExit() bool
}
