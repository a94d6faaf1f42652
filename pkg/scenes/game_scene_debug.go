package scenes

import (
	"fmt"
	"image/color"
	"math"

	"github.com/decker502/hunt3d/pkg/components"
	"github.com/decker502/hunt3d/pkg/config"
	"github.com/decker502/hunt3d/pkg/ecs"
	"github.com/decker502/hunt3d/pkg/game"
	"github.com/decker502/hunt3d/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	colorBackground = color.RGBA{R: 28, G: 32, B: 36, A: 255}
	colorGround     = color.RGBA{R: 52, G: 70, B: 52, A: 255}
	colorBlock      = color.RGBA{R: 120, G: 110, B: 90, A: 255}
	colorPlayer     = color.RGBA{R: 80, G: 160, B: 255, A: 255}
	colorEnemy      = color.RGBA{R: 220, G: 70, B: 60, A: 255}
	colorHeading    = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colorCollider   = color.RGBA{R: 255, G: 255, B: 0, A: 160}
	colorPlotPanel  = color.RGBA{R: 0, G: 0, B: 0, A: 160}
	colorPlotAxis   = color.RGBA{R: 150, G: 150, B: 150, A: 255}
	colorPlotLine   = color.RGBA{R: 120, G: 255, B: 120, A: 255}
	colorOverlay    = color.RGBA{R: 0, G: 0, B: 0, A: 140}
)

// gameOverFadeTime GameOver 遮罩淡入时长（秒）
const gameOverFadeTime = 0.6

// Draw 俯视调试视图
// 世界 XZ 平面投影到屏幕，以镜头注视点为中心
func (s *GameScene) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	if s.state.Is(game.StateLoading) {
		ebitenutil.DebugPrintAt(screen, "Loading...", config.GameWindowWidth/2-30, config.GameWindowHeight/2)
		return
	}

	fx, fz := s.focus()
	settings := s.settings.GetSettings()

	s.drawStatics(screen, fx, fz, settings.ShowColliders)
	s.drawActors(screen, fx, fz, settings.ShowColliders)
	if settings.ShowSpeedPlot {
		s.drawSpeedPlot(screen)
	}
	s.drawStatus(screen)
}

// focus 镜头注视点，镜头不存在时退回到原点
func (s *GameScene) focus() (float64, float64) {
	if camera, ok := ecs.GetComponent[*components.CameraComponent](s.entityManager, s.camera); ok {
		return camera.LookAt.X(), camera.LookAt.Z()
	}
	return 0, 0
}

// drawStatics 地面和方块，方块越高颜色越亮
func (s *GameScene) drawStatics(screen *ebiten.Image, fx, fz float64, showColliders bool) {
	ids := ecs.GetEntitiesWith2[*components.BoxColliderComponent, *components.TransformComponent](s.entityManager)
	for i, id := range ids {
		box, _ := ecs.GetComponent[*components.BoxColliderComponent](s.entityManager, id)
		transform, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)
		c := transform.Translation
		x0, y0 := config.WorldToScreen(c.X()-box.HalfExtents.X(), c.Z()-box.HalfExtents.Z(), fx, fz)
		x1, y1 := config.WorldToScreen(c.X()+box.HalfExtents.X(), c.Z()+box.HalfExtents.Z(), fx, fz)
		w, h := float32(x1-x0), float32(y1-y0)

		fill := colorGround
		if i > 0 {
			fill = shade(colorBlock, c.Y()+box.HalfExtents.Y())
		}
		vector.DrawFilledRect(screen, float32(x0), float32(y0), w, h, fill, false)
		if showColliders {
			vector.StrokeRect(screen, float32(x0), float32(y0), w, h, 1, colorCollider, false)
		}
	}
}

// drawActors 玩家和敌人：圆点 + 朝向短线 + 当前动画片段名
func (s *GameScene) drawActors(screen *ebiten.Image, fx, fz float64, showColliders bool) {
	ids := ecs.GetEntitiesWith2[*components.TransformComponent, *components.MovableComponent](s.entityManager)
	for _, id := range ids {
		transform, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)
		pos := transform.Translation
		x, y := config.WorldToScreen(pos.X(), pos.Z(), fx, fz)

		radius := 0.5
		if body, ok := ecs.GetComponent[*components.BodyColliderComponent](s.entityManager, id); ok {
			radius = body.Radius
		}
		r := float32(radius * config.PixelsPerUnit)

		fill := colorEnemy
		if ecs.HasComponent[*components.PlayerTag](s.entityManager, id) {
			fill = colorPlayer
		}
		vector.DrawFilledCircle(screen, float32(x), float32(y), r, fill, true)
		if showColliders {
			vector.StrokeCircle(screen, float32(x), float32(y), r+1, 1, colorCollider, true)
		}

		heading := transform.Heading()
		tip := pos.Add(heading.Mul(config.HeadingTickLength))
		tx, ty := config.WorldToScreen(tip.X(), tip.Z(), fx, fz)
		vector.StrokeLine(screen, float32(x), float32(y), float32(tx), float32(ty), 2, colorHeading, true)

		if clip := s.activeClipName(id); clip != "" {
			ebitenutil.DebugPrintAt(screen, clip, int(x)+int(r)+2, int(y)-8)
		}
	}
}

// activeClipName 通过动画链接找到播放器上的当前片段
func (s *GameScene) activeClipName(id ecs.EntityID) string {
	link, ok := ecs.GetComponent[*components.AnimationLinkComponent](s.entityManager, id)
	if !ok {
		return ""
	}
	player, ok := ecs.GetComponent[*components.AnimationPlayerComponent](s.entityManager, link.Player)
	if !ok || !player.Clip.IsValid() {
		return ""
	}
	return s.resourceManager.ClipName(player.Clip)
}

// drawSpeedPlot 玩家速度曲线，中线为 0，上下边界为 ±MaxSpeed
func (s *GameScene) drawSpeedPlot(screen *ebiten.Image) {
	const (
		px = float32(config.SpeedPlotX)
		py = float32(config.SpeedPlotY)
		pw = float32(config.SpeedPlotWidth)
		ph = float32(config.SpeedPlotHeight)
	)
	vector.DrawFilledRect(screen, px, py, pw, ph, colorPlotPanel, false)
	mid := py + ph/2
	vector.StrokeLine(screen, px, mid, px+pw, mid, 1, colorPlotAxis, false)

	maxSpeed := s.tuning.Player.MaxSpeed
	if movable, ok := ecs.GetComponent[*components.MovableComponent](s.entityManager, s.player); ok && movable.MaxSpeed > 0 {
		maxSpeed = movable.MaxSpeed
	}
	samples := s.speedHistory.Samples()
	capacity := s.speedHistory.Capacity()
	if maxSpeed <= 0 || capacity < 2 {
		return
	}

	step := pw / float32(capacity-1)
	toY := func(v float64) float32 {
		v = math.Max(-maxSpeed, math.Min(maxSpeed, v))
		return mid - float32(v/maxSpeed)*(ph/2)
	}
	for i := 1; i < len(samples); i++ {
		x0 := px + float32(i-1)*step
		x1 := px + float32(i)*step
		vector.StrokeLine(screen, x0, toY(samples[i-1]), x1, toY(samples[i]), 1.5, colorPlotLine, true)
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("speed (max %.0f)", maxSpeed), int(px)+4, int(py)+2)
}

// drawStatus 左上角状态文字和 GameOver 遮罩
func (s *GameScene) drawStatus(screen *ebiten.Image) {
	status := fmt.Sprintf("%s  [%s]  F3 plot  F4 colliders  F11 fullscreen", s.level.Name, s.state.Current())
	if health, ok := ecs.GetComponent[*components.HealthComponent](s.entityManager, s.player); ok {
		status += fmt.Sprintf("\nHP %.0f/%.0f", health.Current, health.Max)
	}
	if movable, ok := ecs.GetComponent[*components.MovableComponent](s.entityManager, s.player); ok {
		status += fmt.Sprintf("  speed %.2f  acc %.2f", movable.Speed, movable.Acceleration)
	}
	ebitenutil.DebugPrintAt(screen, status, 8, 8)

	if s.state.Is(game.StateGameOver) {
		overlay := colorOverlay
		overlay.A = uint8(float64(colorOverlay.A) * utils.EaseOutQuad(s.gameOverTime/gameOverFadeTime))
		vector.DrawFilledRect(screen, 0, 0, config.GameWindowWidth, config.GameWindowHeight, overlay, false)
		ebitenutil.DebugPrintAt(screen, "GAME OVER - press R to restart", config.GameWindowWidth/2-90, config.GameWindowHeight/2)
	}
}

// shade 按高度调亮颜色，高 4 个单位以上不再变化
func shade(c color.RGBA, height float64) color.RGBA {
	k := 0.6 + 0.1*math.Max(0, math.Min(4, height))
	return color.RGBA{
		R: uint8(math.Min(255, float64(c.R)*k)),
		G: uint8(math.Min(255, float64(c.G)*k)),
		B: uint8(math.Min(255, float64(c.B)*k)),
		A: c.A,
	}
}
