package scenes

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/decker502/hunt3d/pkg/components"
	"github.com/decker502/hunt3d/pkg/config"
	"github.com/decker502/hunt3d/pkg/ecs"
	"github.com/decker502/hunt3d/pkg/game"
	"github.com/decker502/hunt3d/pkg/utils"
)

const testDt = 1.0 / 60.0

// newTestScene 使用仓库中的真实数据文件创建场景，并等待后台加载完成
func newTestScene(t *testing.T, mutate func(level *config.LevelConfig)) (*GameScene, *utils.StaticKeyboard) {
	t.Helper()
	root := filepath.Join("..", "..")

	tuning, err := config.LoadTuningConfig(filepath.Join(root, "data", "tuning.yaml"))
	if err != nil {
		t.Fatalf("LoadTuningConfig: %v", err)
	}
	level, err := config.LoadLevelConfig(filepath.Join(root, "data", "level.yaml"))
	if err != nil {
		t.Fatalf("LoadLevelConfig: %v", err)
	}
	if mutate != nil {
		mutate(level)
	}

	rm := game.NewResourceManager(func(path string) ([]byte, error) {
		return os.ReadFile(filepath.Join(root, filepath.FromSlash(path)))
	})
	keyboard := utils.NewStaticKeyboard()
	scene := NewGameScene(GameSceneOptions{
		ResourceManager: rm,
		Keyboard:        keyboard,
		Tuning:          tuning,
		Level:           level,
	})
	_ = rm.Wait()
	return scene, keyboard
}

func countWith[T any](em *ecs.EntityManager) int {
	return len(ecs.GetEntitiesWith1[T](em))
}

func TestGameScene_LoadingToPlaying(t *testing.T) {
	scene, _ := newTestScene(t, nil)

	if scene.State() != game.StateLoading {
		t.Fatalf("initial state = %s, want %s", scene.State(), game.StateLoading)
	}

	scene.Update(testDt)
	if scene.State() != game.StatePlaying {
		t.Fatalf("state after load = %s, want %s", scene.State(), game.StatePlaying)
	}

	em := scene.EntityManager()
	if got := countWith[*components.PlayerTag](em); got != 1 {
		t.Errorf("players = %d, want 1", got)
	}
	if got := countWith[*components.EnemyTag](em); got != 25 {
		t.Errorf("enemies = %d, want 25", got)
	}
	if got := countWith[*components.BoxColliderComponent](em); got != 3 {
		t.Errorf("static boxes = %d, want 3 (ground + 2 blocks)", got)
	}
	if got := countWith[*components.CameraComponent](em); got != 1 {
		t.Errorf("cameras = %d, want 1", got)
	}
	if !em.Exists(scene.Player()) {
		t.Error("Player() should reference a live entity")
	}
}

func TestGameScene_AnimationLinkAndIdle(t *testing.T) {
	scene, _ := newTestScene(t, nil)
	scene.Update(testDt) // Loading -> Playing
	scene.Update(testDt) // 生成场景节点并链接播放器

	em := scene.EntityManager()
	link, ok := ecs.GetComponent[*components.AnimationLinkComponent](em, scene.Player())
	if !ok {
		t.Fatal("player should be linked to its animation player")
	}
	player, ok := ecs.GetComponent[*components.AnimationPlayerComponent](em, link.Player)
	if !ok {
		t.Fatal("linked entity has no AnimationPlayerComponent")
	}
	binding, _ := ecs.GetComponent[*components.AnimationBindingComponent](em, scene.Player())
	if player.Clip != binding.Idle {
		t.Errorf("standing player clip = %d, want idle %d", player.Clip, binding.Idle)
	}
	if !player.Repeat {
		t.Error("idle clip should repeat")
	}
	if name := scene.activeClipName(scene.Player()); name == "" {
		t.Error("activeClipName should resolve the idle clip name")
	}

	linked := 0
	for _, id := range ecs.GetEntitiesWith1[*components.EnemyTag](em) {
		if ecs.HasComponent[*components.AnimationLinkComponent](em, id) {
			linked++
		}
	}
	if linked != 25 {
		t.Errorf("linked enemies = %d, want 25", linked)
	}
}

func TestGameScene_EnemiesChasePlayer(t *testing.T) {
	scene, _ := newTestScene(t, nil)
	scene.Update(testDt)

	em := scene.EntityManager()
	playerTransform, _ := ecs.GetComponent[*components.TransformComponent](em, scene.Player())
	start := make(map[ecs.EntityID]float64)
	for _, id := range ecs.GetEntitiesWith1[*components.EnemyTag](em) {
		tr, _ := ecs.GetComponent[*components.TransformComponent](em, id)
		start[id] = components.PlanarDistance(tr.Translation, playerTransform.Translation)
	}

	for i := 0; i < 30; i++ {
		scene.Update(testDt)
	}

	for id, d0 := range start {
		tr, _ := ecs.GetComponent[*components.TransformComponent](em, id)
		movable, _ := ecs.GetComponent[*components.MovableComponent](em, id)
		if movable.Speed <= 0 {
			t.Errorf("enemy %d speed = %v, want > 0", id, movable.Speed)
		}
		if d := components.PlanarDistance(tr.Translation, playerTransform.Translation); d >= d0 {
			t.Errorf("enemy %d did not close in: %v -> %v", id, d0, d)
		}
	}
}

func TestGameScene_PlayerDeathAndRestart(t *testing.T) {
	scene, keyboard := newTestScene(t, nil)
	scene.Update(testDt)

	health, _ := ecs.GetComponent[*components.HealthComponent](scene.EntityManager(), scene.Player())
	health.Current = 0
	scene.Update(testDt)
	if scene.State() != game.StateGameOver {
		t.Fatalf("state = %s, want %s", scene.State(), game.StateGameOver)
	}

	// GameOver 中不再运行追逐和积分
	em := scene.EntityManager()
	enemies := ecs.GetEntitiesWith1[*components.EnemyTag](em)
	tr, _ := ecs.GetComponent[*components.TransformComponent](em, enemies[0])
	before := tr.Translation
	scene.Update(testDt)
	if tr.Translation != before {
		t.Errorf("enemy moved during GameOver: %v -> %v", before, tr.Translation)
	}
	if scene.gameOverTime <= 0 {
		t.Error("gameOverTime should advance while waiting for restart")
	}

	keyboard.Tap(utils.KeyRestart)
	scene.Update(testDt)
	if scene.State() != game.StateLoading {
		t.Fatalf("state after R = %s, want %s", scene.State(), game.StateLoading)
	}
	if scene.EntityManager().EntityCount() != 0 {
		t.Errorf("world should be empty after restart, got %d entities", scene.EntityManager().EntityCount())
	}

	scene.Update(testDt)
	if scene.State() != game.StatePlaying {
		t.Fatalf("state after reload = %s, want %s", scene.State(), game.StatePlaying)
	}
	em = scene.EntityManager()
	if got := countWith[*components.PlayerTag](em); got != 1 {
		t.Errorf("players after restart = %d, want 1", got)
	}
	if got := countWith[*components.EnemyTag](em); got != 25 {
		t.Errorf("enemies after restart = %d, want 25", got)
	}
	health, _ = ecs.GetComponent[*components.HealthComponent](em, scene.Player())
	if health.IsDead() {
		t.Error("restarted player should be alive")
	}
}

func TestGameScene_RestartThroughSceneManager(t *testing.T) {
	scene, keyboard := newTestScene(t, nil)
	sm := game.NewSceneManager()
	scene.sceneManager = sm

	rebuilt := 0
	sm.SetSceneFactory(func() game.Scene {
		rebuilt++
		return scene
	})
	scene.Update(testDt)

	keyboard.Tap(utils.KeyRestart)
	scene.Update(testDt)
	if rebuilt != 1 {
		t.Errorf("scene factory called %d times, want 1", rebuilt)
	}
	if sm.GetCurrentScene() != game.Scene(scene) {
		t.Error("SceneManager should switch to the rebuilt scene")
	}
}

func TestGameScene_LoadFailureStaysInLoading(t *testing.T) {
	scene, _ := newTestScene(t, func(level *config.LevelConfig) {
		level.PlayerCharacter = "nobody"
	})

	for i := 0; i < 3; i++ {
		scene.Update(testDt)
	}
	if scene.State() != game.StateLoading {
		t.Errorf("state = %s, want %s", scene.State(), game.StateLoading)
	}
	if !scene.loadFailureLogged {
		t.Error("load failure should be reported")
	}
}

func TestGameScene_DebugToggles(t *testing.T) {
	scene, keyboard := newTestScene(t, nil)
	settings := scene.settings.GetSettings()
	plot, colliders := settings.ShowSpeedPlot, settings.ShowColliders

	keyboard.Tap(utils.KeySpeedPlot)
	keyboard.Tap(utils.KeyColliders)
	scene.Update(testDt)

	settings = scene.settings.GetSettings()
	if settings.ShowSpeedPlot == plot {
		t.Error("F3 should toggle the speed plot")
	}
	if settings.ShowColliders == colliders {
		t.Error("F4 should toggle collider drawing")
	}
}

func TestShade(t *testing.T) {
	base := colorBlock
	low := shade(base, 0)
	high := shade(base, 10)
	if low.R >= high.R {
		t.Errorf("higher blocks should be brighter: %d vs %d", low.R, high.R)
	}
	if high != shade(base, 4) {
		t.Error("shade should saturate at height 4")
	}
}
