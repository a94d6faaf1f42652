package entities

import (
	"errors"
	"fmt"
	"testing"

	"github.com/decker502/hunt3d/pkg/components"
	"github.com/decker502/hunt3d/pkg/config"
	"github.com/decker502/hunt3d/pkg/ecs"
	"github.com/decker502/hunt3d/pkg/game"
	"github.com/go-gl/mathgl/mgl64"
)

const heroYAML = `
id: hero
displayName: Hero
chase: follow
scene:
  nodes:
    - name: Root
    - name: Skeleton
      parent: Root
      animationPlayer: true
clips:
  - {name: Idle_Look, duration: 3}
  - {name: Idle_Breathe, duration: 2}
  - {name: Walk, duration: 1}
  - {name: Run, duration: 0.8}
roles:
  idle: Idle_Breathe
  walk: Walk
  run: Run
  idleVariants: [Idle_Look, Idle_Breathe]
`

// fakeCharacters 以固定句柄提供角色资源：场景句柄 100，片段句柄从 1 开始按顺序编号
type fakeCharacters map[string]*game.CharacterAsset

func (f fakeCharacters) Character(id string) (*game.CharacterAsset, error) {
	asset, ok := f[id]
	if !ok {
		return nil, fmt.Errorf("character %s: %w", id, game.ErrAssetNotLoaded)
	}
	return asset, nil
}

func newFakeCharacters(t *testing.T) fakeCharacters {
	t.Helper()
	cfg, err := config.ParseCharacterConfig([]byte(heroYAML))
	if err != nil {
		t.Fatalf("ParseCharacterConfig: %v", err)
	}
	asset := &game.CharacterAsset{Config: cfg, Scene: 100}
	for i := range cfg.Clips {
		asset.Clips = append(asset.Clips, components.AssetHandle(i+1))
	}
	return fakeCharacters{"hero": asset}
}

func TestNewAnimationBinding_IdleByRoleName(t *testing.T) {
	src := newFakeCharacters(t)
	binding, err := NewAnimationBinding(src["hero"])
	if err != nil {
		t.Fatalf("NewAnimationBinding: %v", err)
	}

	// Idle_Breathe 是第 2 个片段（句柄 2），在 idleVariants 中排第二
	if binding.Idle != 2 {
		t.Errorf("Idle = %d, want 2 (Idle_Breathe)", binding.Idle)
	}
	if binding.Walk != 3 || binding.Run != 4 {
		t.Errorf("Walk/Run = %d/%d, want 3/4", binding.Walk, binding.Run)
	}
	if len(binding.IdleVariants) != 2 || binding.IdleVariants[0] != 1 {
		t.Errorf("IdleVariants = %v, want [1 2]", binding.IdleVariants)
	}
}

func TestValidateBinding(t *testing.T) {
	valid := components.AnimationBindingComponent{Run: 1, Walk: 2, Idle: 3, IdleVariants: []components.AssetHandle{3}}

	tests := []struct {
		name   string
		modify func(b *components.AnimationBindingComponent)
		want   error
	}{
		{"完整绑定", func(b *components.AnimationBindingComponent) {}, nil},
		{"没有待机片段", func(b *components.AnimationBindingComponent) { b.IdleVariants = nil }, ErrNoIdleClips},
		{"缺少奔跑", func(b *components.AnimationBindingComponent) { b.Run = components.NoAsset }, ErrMissingClip},
		{"缺少行走", func(b *components.AnimationBindingComponent) { b.Walk = components.NoAsset }, ErrMissingClip},
		{"缺少待机", func(b *components.AnimationBindingComponent) { b.Idle = components.NoAsset }, ErrMissingClip},
		{"待机不在列表中", func(b *components.AnimationBindingComponent) { b.Idle = 4 }, ErrMissingClip},
		{"无效的待机变体", func(b *components.AnimationBindingComponent) {
			b.IdleVariants = []components.AssetHandle{3, components.NoAsset}
		}, ErrMissingClip},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := valid
			b.IdleVariants = append([]components.AssetHandle(nil), valid.IdleVariants...)
			tt.modify(&b)
			err := ValidateBinding(&b)
			if tt.want == nil {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestNewPlayerEntity(t *testing.T) {
	em := ecs.NewEntityManager()
	tuning := config.DefaultTuningConfig()

	id, err := NewPlayerEntity(em, newFakeCharacters(t), tuning, "hero", mgl64.Vec3{1, 0.1, 2})
	if err != nil {
		t.Fatalf("NewPlayerEntity: %v", err)
	}

	if !ecs.HasComponent[*components.PlayerTag](em, id) {
		t.Error("player is missing PlayerTag")
	}
	movable, ok := ecs.GetComponent[*components.MovableComponent](em, id)
	if !ok || movable.MaxSpeed != 14 || movable.MaxAcceleration != 20 {
		t.Errorf("movable = %+v", movable)
	}
	transform, _ := ecs.GetComponent[*components.TransformComponent](em, id)
	if !transform.Translation.ApproxEqual(mgl64.Vec3{1, 0.1, 2}) {
		t.Errorf("spawn = %v", transform.Translation)
	}
	controller, ok := ecs.GetComponent[*components.KinematicControllerComponent](em, id)
	if !ok {
		t.Fatal("player is missing the kinematic controller")
	}
	if controller.Offset != 0.1 || controller.SnapToGround != 10 || controller.AutostepHeight <= 0 {
		t.Errorf("controller settings = %+v", controller)
	}
	scene, _ := ecs.GetComponent[*components.SceneInstanceComponent](em, id)
	if scene.Scene != 100 || scene.Spawned {
		t.Errorf("scene instance = %+v", scene)
	}
	health, _ := ecs.GetComponent[*components.HealthComponent](em, id)
	if health.Current != 100 {
		t.Errorf("health = %v, want 100", health.Current)
	}
	if ecs.HasComponent[*components.AnimationLinkComponent](em, id) {
		t.Error("animation link must not exist before the scene is spawned")
	}
}

func TestNewPlayerEntity_RejectsBrokenCharacter(t *testing.T) {
	em := ecs.NewEntityManager()
	src := newFakeCharacters(t)

	if _, err := NewPlayerEntity(em, src, config.DefaultTuningConfig(), "nobody", mgl64.Vec3{}); !errors.Is(err, game.ErrAssetNotLoaded) {
		t.Errorf("err = %v, want ErrAssetNotLoaded", err)
	}

	// 资源句柄少于片段数：walk/run 解析不到
	src["hero"].Clips = src["hero"].Clips[:2]
	if _, err := NewPlayerEntity(em, src, config.DefaultTuningConfig(), "hero", mgl64.Vec3{}); !errors.Is(err, ErrMissingClip) {
		t.Errorf("err = %v, want ErrMissingClip", err)
	}
	if em.EntityCount() != 0 {
		t.Errorf("entity count = %d, no entity should be created on error", em.EntityCount())
	}
}

func TestNewEnemyGrid(t *testing.T) {
	em := ecs.NewEntityManager()
	tuning := config.DefaultTuningConfig()

	arch, err := NewEnemyArchetype(newFakeCharacters(t), "hero")
	if err != nil {
		t.Fatalf("NewEnemyArchetype: %v", err)
	}
	if arch.Chase != components.ChaseFollowsTarget || arch.DisplayName != "Hero" {
		t.Errorf("archetype = %+v", arch)
	}

	grid := config.EnemyGridConfig{Rows: 5, Cols: 5, Spacing: 1}
	ids, err := NewEnemyGrid(em, arch, tuning, grid)
	if err != nil {
		t.Fatalf("NewEnemyGrid: %v", err)
	}
	if len(ids) != 25 {
		t.Fatalf("enemies = %d, want 25", len(ids))
	}

	// 第 (i, j) 个敌人在 (i, 0, j)
	last, _ := ecs.GetComponent[*components.TransformComponent](em, ids[24])
	if !last.Translation.ApproxEqual(mgl64.Vec3{4, 0, 4}) {
		t.Errorf("last enemy at %v, want (4, 0, 4)", last.Translation)
	}
	second, _ := ecs.GetComponent[*components.TransformComponent](em, ids[1])
	if !second.Translation.ApproxEqual(mgl64.Vec3{0, 0, 1}) {
		t.Errorf("second enemy at %v, want (0, 0, 1)", second.Translation)
	}

	for _, id := range ids {
		movable, _ := ecs.GetComponent[*components.MovableComponent](em, id)
		if movable.MaxSpeed != 7 {
			t.Fatalf("enemy max speed = %v, want 7", movable.MaxSpeed)
		}
		if ecs.HasComponent[*components.KinematicControllerComponent](em, id) {
			t.Fatal("enemies move their transform directly")
		}
	}

	// 每个敌人拥有独立的 IdleVariants 切片
	b0, _ := ecs.GetComponent[*components.AnimationBindingComponent](em, ids[0])
	b1, _ := ecs.GetComponent[*components.AnimationBindingComponent](em, ids[1])
	b0.IdleVariants[0] = 99
	if b1.IdleVariants[0] == 99 {
		t.Error("enemies share the idle variant slice")
	}
}

func TestNewEnemyEntity_RejectsBrokenArchetype(t *testing.T) {
	em := ecs.NewEntityManager()
	arch := &EnemyArchetype{Character: "ghost", Binding: components.AnimationBindingComponent{Run: 1, Walk: 2}}

	if _, err := NewEnemyEntity(em, arch, config.DefaultTuningConfig(), mgl64.Vec3{}); !errors.Is(err, ErrNoIdleClips) {
		t.Errorf("err = %v, want ErrNoIdleClips", err)
	}
}

func TestNewLevelEntities(t *testing.T) {
	em := ecs.NewEntityManager()
	level := &config.LevelConfig{
		Ground: config.GroundConfig{Size: 100, HalfThickness: 0.1},
		Blocks: []config.BlockConfig{{Center: [3]float64{-4, 2, -4}, HalfExtents: [3]float64{2, 2, 2}}},
	}

	ids := NewLevelEntities(em, level)
	if len(ids) != 2 {
		t.Fatalf("level entities = %d, want 2", len(ids))
	}
	ground, _ := ecs.GetComponent[*components.BoxColliderComponent](em, ids[0])
	if !ground.HalfExtents.ApproxEqual(mgl64.Vec3{50, 0.1, 50}) {
		t.Errorf("ground half extents = %v", ground.HalfExtents)
	}
	block, _ := ecs.GetComponent[*components.TransformComponent](em, ids[1])
	if !block.Translation.ApproxEqual(mgl64.Vec3{-4, 2, -4}) {
		t.Errorf("block center = %v", block.Translation)
	}
}

func TestNewCameraEntity(t *testing.T) {
	em := ecs.NewEntityManager()
	id := NewCameraEntity(em, config.CameraTuning{Distance: 20, Height: 5}, mgl64.Vec3{})

	transform, _ := ecs.GetComponent[*components.TransformComponent](em, id)
	if !transform.Translation.ApproxEqual(mgl64.Vec3{20, 5, 20}) {
		t.Errorf("camera at %v, want (20, 5, 20)", transform.Translation)
	}
	// 水平朝向指向原点
	h := transform.Heading()
	if h.X() >= 0 || h.Z() >= 0 {
		t.Errorf("camera heading %v should point back to the origin", h)
	}
}
