package scenes

import (
	"github.com/decker502/hunt3d/pkg/ecs"
	"github.com/decker502/hunt3d/pkg/entities"
	"github.com/decker502/hunt3d/pkg/logger"
	"github.com/decker502/hunt3d/pkg/systems"
	"github.com/go-gl/mathgl/mgl64"
)

// initWorld 创建空的 ECS 世界和全部系统
func (s *GameScene) initWorld() {
	em := ecs.NewEntityManager()
	s.entityManager = em
	s.player = ecs.InvalidEntity
	s.camera = ecs.InvalidEntity
	s.speedHistory.Reset()

	s.playerInputSystem = systems.NewPlayerInputSystem(em, s.keyboard, s.tuning.Player)
	s.chaseSystem = systems.NewChaseSystem(em, s.tuning.Chase)
	s.motionSystem = systems.NewMotionSystem(em, s.tuning.Motion)
	s.physicsSystem = systems.NewPhysicsSystem(em, s.level.Ground.Size)
	s.sceneSpawnSystem = systems.NewSceneSpawnSystem(em, s.resourceManager)
	s.animationLinkSystem = systems.NewAnimationLinkSystem(em)
	s.animationSystem = systems.NewAnimationSystem(em, s.resourceManager, s.tuning.Animation)
	s.animationPlayerSystem = systems.NewAnimationPlayerSystem(em)
	s.contactDamageSystem = systems.NewContactDamageSystem(em)
	s.cameraSystem = systems.NewCameraSystem(em)
	s.speedHistorySystem = systems.NewSpeedHistorySystem(em, s.speedHistory)
}

// spawnWorld 进入 Playing 时生成关卡、玩家、敌人网格和镜头
func (s *GameScene) spawnWorld() {
	em := s.entityManager

	statics := entities.NewLevelEntities(em, s.level)

	spawn := mgl64.Vec3(s.level.PlayerSpawn)
	player, err := entities.NewPlayerEntity(em, s.resourceManager, s.tuning, s.level.PlayerCharacter, spawn)
	if err != nil {
		logger.Log.Errorf("[GameScene] 创建玩家失败: %v", err)
	} else {
		s.player = player
	}

	enemies := 0
	grid := s.level.EnemyGrid
	if grid.Rows*grid.Cols > 0 {
		arch, err := entities.NewEnemyArchetype(s.resourceManager, grid.Archetype)
		if err != nil {
			logger.Log.Errorf("[GameScene] 敌人类型 %s 不可用: %v", grid.Archetype, err)
		} else {
			ids, err := entities.NewEnemyGrid(em, arch, s.tuning, grid)
			if err != nil {
				logger.Log.Errorf("[GameScene] 生成敌人失败: %v", err)
			}
			enemies = len(ids)
		}
	}

	s.camera = entities.NewCameraEntity(em, s.tuning.Camera, spawn)

	logger.Log.Infof("[GameScene] 世界已生成: %d 个静态体, 玩家 %d, %d 个敌人", len(statics), s.player, enemies)
}
