package scenes

import (
	"context"

	"github.com/decker502/hunt3d/pkg/components"
	"github.com/decker502/hunt3d/pkg/config"
	"github.com/decker502/hunt3d/pkg/ecs"
	"github.com/decker502/hunt3d/pkg/game"
	"github.com/decker502/hunt3d/pkg/logger"
	"github.com/decker502/hunt3d/pkg/systems"
	"github.com/decker502/hunt3d/pkg/utils"
)

// GameSceneOptions 创建 GameScene 所需的协作者
type GameSceneOptions struct {
	// Context 控制后台资源加载，nil 时使用 context.Background()
	Context         context.Context
	ResourceManager *game.ResourceManager
	// SceneManager 可为 nil（测试中），此时重开只重置本场景的世界
	SceneManager *game.SceneManager
	// Settings 可为 nil，此时使用不落盘的默认设置
	Settings *game.SettingsManager
	Keyboard utils.Keyboard
	Tuning   *config.TuningConfig
	Level    *config.LevelConfig
}

// GameScene 主玩法场景
//
// 持有 ECS 世界、全部系统和游戏状态机：
//   - Loading: 轮询角色资源，全部就绪后触发 assets_ready
//   - Playing: 按固定顺序运行所有系统
//   - GameOver: 只播放动画和移动镜头，等待 R 重开
type GameScene struct {
	resourceManager *game.ResourceManager
	sceneManager    *game.SceneManager
	settings        *game.SettingsManager
	keyboard        utils.Keyboard
	tuning          *config.TuningConfig
	level           *config.LevelConfig

	entityManager *ecs.EntityManager
	state         *game.StateMachine
	speedHistory  *game.SpeedHistory

	// required 进入 Playing 前必须加载完成的场景资源
	required          []components.AssetHandle
	loadFailureLogged bool

	// gameOverTime 进入 GameOver 后经过的时间，用于遮罩淡入
	gameOverTime float64

	player ecs.EntityID
	camera ecs.EntityID

	// 系统（Playing 状态下按声明顺序运行）
	playerInputSystem     *systems.PlayerInputSystem
	chaseSystem           *systems.ChaseSystem
	motionSystem          *systems.MotionSystem
	physicsSystem         *systems.PhysicsSystem
	sceneSpawnSystem      *systems.SceneSpawnSystem
	animationLinkSystem   *systems.AnimationLinkSystem
	animationSystem       *systems.AnimationSystem
	animationPlayerSystem *systems.AnimationPlayerSystem
	contactDamageSystem   *systems.ContactDamageSystem
	cameraSystem          *systems.CameraSystem
	speedHistorySystem    *systems.SpeedHistorySystem
}

// NewGameScene 创建主玩法场景并开始加载角色资源
func NewGameScene(opts GameSceneOptions) *GameScene {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	settings := opts.Settings
	if settings == nil {
		settings = game.NewSettingsManager(nil)
	}
	tuning := opts.Tuning
	if tuning == nil {
		tuning = config.DefaultTuningConfig()
	}

	s := &GameScene{
		resourceManager: opts.ResourceManager,
		sceneManager:    opts.SceneManager,
		settings:        settings,
		keyboard:        opts.Keyboard,
		tuning:          tuning,
		level:           opts.Level,
		state:           game.NewStateMachine(),
		speedHistory:    game.NewSpeedHistory(tuning.Debug.SpeedHistoryCapacity, tuning.Debug.SpeedHistoryInterval),
		player:          ecs.InvalidEntity,
		camera:          ecs.InvalidEntity,
	}
	s.initWorld()

	s.required = s.resourceManager.LoadCharacters(ctx, s.requiredCharacters()...)

	s.state.OnEnter(game.StatePlaying, s.spawnWorld)
	s.state.OnEnter(game.StateGameOver, func() {
		s.gameOverTime = 0
		logger.Log.Warn("[GameScene] 玩家倒下，按 R 重新开始")
	})
	s.state.OnEnter(game.StateLoading, s.restart)

	logger.Log.Infof("[GameScene] 关卡 %s 开始加载 (%d 个角色资源)", s.level.Name, len(s.required))
	return s
}

// requiredCharacters 关卡用到的角色描述名
func (s *GameScene) requiredCharacters() []string {
	ids := []string{s.level.PlayerCharacter}
	grid := s.level.EnemyGrid
	if grid.Rows*grid.Cols > 0 && grid.Archetype != s.level.PlayerCharacter {
		ids = append(ids, grid.Archetype)
	}
	return ids
}

// State 返回当前游戏状态
func (s *GameScene) State() string {
	return s.state.Current()
}

// EntityManager 返回场景的 ECS 世界
func (s *GameScene) EntityManager() *ecs.EntityManager {
	return s.entityManager
}

// Player 返回玩家实体，尚未生成时为 ecs.InvalidEntity
func (s *GameScene) Player() ecs.EntityID {
	return s.player
}

// Update 推进一帧
func (s *GameScene) Update(deltaTime float64) {
	s.handleDebugKeys()

	switch s.state.Current() {
	case game.StateLoading:
		s.updateLoading()
	case game.StatePlaying:
		s.updatePlaying(deltaTime)
	case game.StateGameOver:
		s.updateGameOver(deltaTime)
	}

	s.entityManager.RemoveMarkedEntities()
}

// updateLoading 所有必需资源（含依赖的动画片段）就绪后进入 Playing
func (s *GameScene) updateLoading() {
	for _, h := range s.required {
		if s.resourceManager.State(h) == game.LoadStateFailed {
			if !s.loadFailureLogged {
				logger.Log.Errorf("[GameScene] 资源 %d 加载失败: %v", h, s.resourceManager.Err(h))
				s.loadFailureLogged = true
			}
			return
		}
		if !s.resourceManager.IsLoadedWithDependencies(h) {
			return
		}
	}
	s.fire(game.EventAssetsReady)
}

func (s *GameScene) updatePlaying(deltaTime float64) {
	if s.keyboard.JustPressed(utils.KeyRestart) {
		s.fire(game.EventRestart)
		return
	}

	// 顺序不能随意调整：加速度写入 → 积分 → 碰撞 → 动画
	s.playerInputSystem.Update(deltaTime)
	s.chaseSystem.Update(deltaTime)
	s.motionSystem.Update(deltaTime)
	s.physicsSystem.Update(deltaTime)
	s.sceneSpawnSystem.Update(deltaTime)
	s.animationLinkSystem.Update(deltaTime)
	s.animationSystem.Update(deltaTime)
	s.animationPlayerSystem.Update(deltaTime)
	s.contactDamageSystem.Update(deltaTime)
	s.cameraSystem.Update(deltaTime)
	s.speedHistorySystem.Update(deltaTime)

	if s.playerDead() {
		s.fire(game.EventPlayerDied)
	}
}

func (s *GameScene) updateGameOver(deltaTime float64) {
	if s.keyboard.JustPressed(utils.KeyRestart) {
		s.fire(game.EventRestart)
		return
	}
	s.gameOverTime += deltaTime
	s.sceneSpawnSystem.Update(deltaTime)
	s.animationLinkSystem.Update(deltaTime)
	s.animationPlayerSystem.Update(deltaTime)
	s.cameraSystem.Update(deltaTime)
}

func (s *GameScene) playerDead() bool {
	health, ok := ecs.GetComponent[*components.HealthComponent](s.entityManager, s.player)
	return ok && health.IsDead()
}

// handleDebugKeys F3 切换速度曲线，F4 切换碰撞体显示，结果立即保存
func (s *GameScene) handleDebugKeys() {
	if s.keyboard.JustPressed(utils.KeySpeedPlot) {
		on := s.settings.ToggleSpeedPlot()
		logger.Log.Debugf("[GameScene] 速度曲线: %v", on)
	}
	if s.keyboard.JustPressed(utils.KeyColliders) {
		on := s.settings.ToggleColliders()
		logger.Log.Debugf("[GameScene] 碰撞体显示: %v", on)
	}
}

func (s *GameScene) fire(event string) {
	if err := s.state.Fire(event); err != nil {
		logger.Log.Errorf("[GameScene] %v", err)
	}
}

// restart 进入 Loading 时调用
// 优先由 SceneManager 重建整个场景；没有 SceneManager 时就地重置世界
func (s *GameScene) restart() {
	if s.sceneManager != nil && s.sceneManager.Reload() {
		return
	}
	s.initWorld()
	s.loadFailureLogged = false
}

// SaveOnExit 窗口关闭前保存设置
func (s *GameScene) SaveOnExit() bool {
	if err := s.settings.Save(); err != nil {
		logger.Log.Errorf("[GameScene] 保存设置失败: %v", err)
		return false
	}
	return true
}
