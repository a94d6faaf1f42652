package systems

import (
	"math"

	"github.com/decker502/hunt3d/pkg/components"
	"github.com/decker502/hunt3d/pkg/ecs"
	"github.com/decker502/hunt3d/pkg/logger"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
)

const (
	tagStatic = "static"
	tagBody   = "body"

	// 宽相位网格的单元格边长（世界单位）
	physicsCellSize = 2
	// 世界边界外额外保留的空间
	physicsMargin = 16.0
	// 贴边判定容差
	contactEpsilon = 1e-7
)

// aabb 轴对齐包围盒（世界坐标）
type aabb struct {
	min, max mgl64.Vec3
}

// overlapsXZ 水平投影是否重叠（贴边不算）
func (b aabb) overlapsXZ(o aabb) bool {
	return b.max.X() > o.min.X()+contactEpsilon && b.min.X() < o.max.X()-contactEpsilon &&
		b.max.Z() > o.min.Z()+contactEpsilon && b.min.Z() < o.max.Z()-contactEpsilon
}

// union 同时包含两个盒子的最小包围盒
func (b aabb) union(o aabb) aabb {
	return aabb{
		min: mgl64.Vec3{math.Min(b.min.X(), o.min.X()), math.Min(b.min.Y(), o.min.Y()), math.Min(b.min.Z(), o.min.Z())},
		max: mgl64.Vec3{math.Max(b.max.X(), o.max.X()), math.Max(b.max.Y(), o.max.Y()), math.Max(b.max.Z(), o.max.Z())},
	}
}

// overlapsY 竖直区间是否重叠（贴边不算）
func (b aabb) overlapsY(o aabb) bool {
	return b.max.Y() > o.min.Y()+contactEpsilon && b.min.Y() < o.max.Y()-contactEpsilon
}

// PhysicsSystem 运动学角色控制器的碰撞求解
//
// 静态碰撞体（BoxColliderComponent）和角色身体都注册到 resolv 空间中，
// resolv 负责 XZ 平面上的宽相位查询，精确判定用包围盒完成。
//
// 对每个有输入的 KinematicControllerComponent：
//  1. 先沿 X、再沿 Z 移动，遇到高于 AutostepHeight 的方块时停在 Offset 距离外（可沿墙滑动）
//  2. 竖直方向落到脚下最高的支撑面上；上一帧着地且支撑面在 SnapToGround 以内时直接吸附
//  3. 写回 Grounded、EffectiveTranslation，移动 TransformComponent，清空输入槽
//
// resolv 只接受非负坐标，世界坐标整体平移 origin 后再放入空间。
type PhysicsSystem struct {
	entityManager *ecs.EntityManager
	space         *resolv.Space
	origin        float64

	statics map[ecs.EntityID]*resolv.Object
	boxes   map[*resolv.Object]aabb
	bodies  map[ecs.EntityID]*resolv.Object
}

// NewPhysicsSystem 创建物理系统
//
// 参数:
//   - em: 实体管理器
//   - worldSize: 关卡边长（以原点为中心），决定 resolv 空间的大小
func NewPhysicsSystem(em *ecs.EntityManager, worldSize float64) *PhysicsSystem {
	origin := worldSize/2 + physicsMargin
	size := int(math.Ceil(2 * origin))
	return &PhysicsSystem{
		entityManager: em,
		space:         resolv.NewSpace(size, size, physicsCellSize, physicsCellSize),
		origin:        origin,
		statics:       make(map[ecs.EntityID]*resolv.Object),
		boxes:         make(map[*resolv.Object]aabb),
		bodies:        make(map[ecs.EntityID]*resolv.Object),
	}
}

// Update 同步碰撞体并求解所有角色控制器
func (s *PhysicsSystem) Update(deltaTime float64) {
	s.syncStatics()
	s.pruneBodies()

	controllers := ecs.GetEntitiesWith3[*components.KinematicControllerComponent, *components.TransformComponent, *components.BodyColliderComponent](s.entityManager)
	for _, id := range controllers {
		controller, _ := ecs.GetComponent[*components.KinematicControllerComponent](s.entityManager, id)
		transform, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)
		body, _ := ecs.GetComponent[*components.BodyColliderComponent](s.entityManager, id)

		obj := s.bodyObject(id, transform.Translation, body, controller.Offset)
		if !controller.HasDesired {
			controller.EffectiveTranslation = mgl64.Vec3{}
			continue
		}

		start := transform.Translation
		end := s.resolve(obj, start, controller, body)

		controller.EffectiveTranslation = end.Sub(start)
		controller.DesiredTranslation = mgl64.Vec3{}
		controller.HasDesired = false
		transform.Translation = end
		s.placeBody(obj, end, body, controller.Offset)
	}
}

// resolve 求解一次移动，返回最终脚底位置并更新 controller.Grounded
func (s *PhysicsSystem) resolve(obj *resolv.Object, start mgl64.Vec3, k *components.KinematicControllerComponent, body *components.BodyColliderComponent) mgl64.Vec3 {
	pos := start
	desired := k.DesiredTranslation

	pos[0] = s.sweepAxis(obj, pos, 0, desired.X(), k, body)
	s.placeBody(obj, pos, body, k.Offset)
	pos[2] = s.sweepAxis(obj, pos, 2, desired.Z(), k, body)
	s.placeBody(obj, pos, body, k.Offset)

	support, hasSupport := s.supportHeight(obj, pos, k, body)
	y := start.Y() + desired.Y()

	switch {
	case hasSupport && y <= support+k.Offset:
		y = support
		k.Grounded = true
	case hasSupport && k.Grounded && y-support <= k.SnapToGround:
		y = support
		k.Grounded = true
	default:
		k.Grounded = false
	}
	pos[1] = y
	return pos
}

// sweepAxis 沿单个水平轴（0 = X，2 = Z）移动 delta，返回该轴上的新坐标
func (s *PhysicsSystem) sweepAxis(obj *resolv.Object, pos mgl64.Vec3, axis int, delta float64, k *components.KinematicControllerComponent, body *components.BodyColliderComponent) float64 {
	if delta == 0 {
		return pos[axis]
	}

	target := pos
	target[axis] += delta
	swept := bodyBounds(pos, body, k.Offset).union(bodyBounds(target, body, k.Offset))
	feet := pos.Y()

	result := target[axis]
	for _, box := range s.query(obj, swept) {
		if !swept.overlapsXZ(box) || !swept.overlapsY(box) {
			continue
		}
		if box.max.Y()-feet <= k.AutostepHeight {
			// 可以直接跨上去，由 supportHeight 抬高
			continue
		}
		limit := k.Offset + body.Radius
		if delta > 0 {
			result = math.Max(pos[axis], math.Min(result, box.min[axis]-limit))
		} else {
			result = math.Min(pos[axis], math.Max(result, box.max[axis]+limit))
		}
	}
	return result
}

// query 用 resolv 空间做宽相位查询，返回 region 附近的静态盒子
//
// 查询时临时把身体对象扩大到 region（外扩一个单元格），查询后恢复。
func (s *PhysicsSystem) query(obj *resolv.Object, region aabb) []aabb {
	x, y, w, h := obj.X, obj.Y, obj.W, obj.H
	obj.X = region.min.X() + s.origin - physicsCellSize
	obj.Y = region.min.Z() + s.origin - physicsCellSize
	obj.W = region.max.X() - region.min.X() + 2*physicsCellSize
	obj.H = region.max.Z() - region.min.Z() + 2*physicsCellSize
	obj.Update()

	var result []aabb
	if collision := obj.Check(0, 0, tagStatic); collision != nil {
		for _, other := range collision.Objects {
			if box, ok := s.boxes[other]; ok {
				result = append(result, box)
			}
		}
	}

	obj.X, obj.Y, obj.W, obj.H = x, y, w, h
	obj.Update()
	return result
}

// supportHeight 返回脚下可站立的最高表面
func (s *PhysicsSystem) supportHeight(obj *resolv.Object, pos mgl64.Vec3, k *components.KinematicControllerComponent, body *components.BodyColliderComponent) (float64, bool) {
	footprint := bodyBounds(pos, body, 0)

	best, found := 0.0, false
	for _, box := range s.query(obj, footprint) {
		if !footprint.overlapsXZ(box) {
			continue
		}
		top := box.max.Y()
		if top > pos.Y()+k.AutostepHeight {
			continue
		}
		if !found || top > best {
			best, found = top, true
		}
	}
	return best, found
}

// bodyBounds 角色身体的包围盒：水平为边长 2*(Radius+inflate) 的正方形，竖直为胶囊范围
func bodyBounds(feet mgl64.Vec3, body *components.BodyColliderComponent, inflate float64) aabb {
	r := body.Radius + inflate
	centerY := feet.Y() + body.OffsetY
	halfY := body.HalfHeight + body.Radius
	return aabb{
		min: mgl64.Vec3{feet.X() - r, centerY - halfY, feet.Z() - r},
		max: mgl64.Vec3{feet.X() + r, centerY + halfY, feet.Z() + r},
	}
}

// syncStatics 注册新出现的静态碰撞体，移除已删除实体的碰撞体
func (s *PhysicsSystem) syncStatics() {
	for id, obj := range s.statics {
		if !s.entityManager.Exists(id) {
			s.space.Remove(obj)
			delete(s.boxes, obj)
			delete(s.statics, id)
		}
	}

	boxes := ecs.GetEntitiesWith2[*components.BoxColliderComponent, *components.TransformComponent](s.entityManager)
	for _, id := range boxes {
		if _, ok := s.statics[id]; ok {
			continue
		}
		collider, _ := ecs.GetComponent[*components.BoxColliderComponent](s.entityManager, id)
		transform, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)

		box := aabb{
			min: transform.Translation.Sub(collider.HalfExtents),
			max: transform.Translation.Add(collider.HalfExtents),
		}
		// resolv 计算覆盖的单元格时会把右/下边界减 1，宽相位对象多扩 1 个单位
		obj := resolv.NewObject(
			box.min.X()+s.origin, box.min.Z()+s.origin,
			box.max.X()-box.min.X()+1, box.max.Z()-box.min.Z()+1,
			tagStatic,
		)
		s.space.Add(obj)
		s.statics[id] = obj
		s.boxes[obj] = box
		logger.Log.WithField("entity", id).Debugf("[PhysicsSystem] 注册静态碰撞体 %v - %v", box.min, box.max)
	}
}

// pruneBodies 移除已删除实体的身体
func (s *PhysicsSystem) pruneBodies() {
	for id, obj := range s.bodies {
		if !s.entityManager.Exists(id) {
			s.space.Remove(obj)
			delete(s.bodies, id)
		}
	}
}

// bodyObject 返回（必要时创建）角色身体在 resolv 空间中的对象
func (s *PhysicsSystem) bodyObject(id ecs.EntityID, feet mgl64.Vec3, body *components.BodyColliderComponent, offset float64) *resolv.Object {
	if obj, ok := s.bodies[id]; ok {
		return obj
	}
	size := 2 * (body.Radius + offset)
	obj := resolv.NewObject(0, 0, size, size, tagBody)
	s.space.Add(obj)
	s.bodies[id] = obj
	s.placeBody(obj, feet, body, offset)
	return obj
}

func (s *PhysicsSystem) placeBody(obj *resolv.Object, feet mgl64.Vec3, body *components.BodyColliderComponent, offset float64) {
	r := body.Radius + offset
	obj.X = feet.X() - r + s.origin
	obj.Y = feet.Z() - r + s.origin
	obj.Update()
}

// StaticCount 已注册的静态碰撞体数量
func (s *PhysicsSystem) StaticCount() int {
	return len(s.statics)
}
