package game

import (
	"github.com/decker502/hunt3d/pkg/logger"
	"github.com/hajimehoshi/ebiten/v2"
)

// SceneFactory 场景工厂函数类型
// 用于重新创建游戏场景（重新开始），避免 game 包依赖 scenes 包
type SceneFactory func() Scene

// SceneManager controls which scene is active.
// Only one scene's Update and Draw methods are called at any given time.
type SceneManager struct {
	currentScene Scene
	sceneFactory SceneFactory
}

// NewSceneManager creates a manager with no active scene; use SwitchTo or Reload to set one.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SetSceneFactory 设置场景工厂函数
func (sm *SceneManager) SetSceneFactory(factory SceneFactory) {
	sm.sceneFactory = factory
}

// SwitchTo changes the active scene.
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.currentScene = scene
}

// GetCurrentScene 返回当前活动的场景，没有则返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// Reload 通过工厂函数创建新场景并切换过去
//
// 返回：
//   - bool: 工厂未设置或返回 nil 时为 false，当前场景保持不变
func (sm *SceneManager) Reload() bool {
	if sm.sceneFactory == nil {
		logger.Log.Error("[SceneManager] SceneFactory 未设置")
		return false
	}
	scene := sm.sceneFactory()
	if scene == nil {
		logger.Log.Error("[SceneManager] 无法创建场景")
		return false
	}
	sm.SwitchTo(scene)
	logger.Log.Info("[SceneManager] 场景已重新创建")
	return true
}

// Update updates the currently active scene, if any.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the currently active scene, if any.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
