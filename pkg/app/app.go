// Package app 提供游戏应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来：读取配置、创建各个管理器和主场景，
// 并实现 ebiten.Game 接口。
package app

import (
	"context"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/decker502/hunt3d/pkg/config"
	"github.com/decker502/hunt3d/pkg/embedded"
	"github.com/decker502/hunt3d/pkg/game"
	"github.com/decker502/hunt3d/pkg/logger"
	"github.com/decker502/hunt3d/pkg/scenes"
	"github.com/decker502/hunt3d/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata/v2"
)

// AppName gdata 存储目录名
const AppName = "hunt3d"

// FixedDeltaTime 每个 tick 的固定时间步长（秒）
const FixedDeltaTime = 1.0 / 60.0

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// DataDir 从磁盘读取数据文件的目录（其中包含 tuning.yaml、level.yaml 和 characters/），
	// 为空时使用嵌入的默认数据
	DataDir string
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	ctx      context.Context
	cancel   context.CancelFunc
	keyboard utils.Keyboard

	sceneManager    *game.SceneManager
	resourceManager *game.ResourceManager
	settings        *game.SettingsManager
	verbose         bool

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewFileReader 返回数据文件读取函数
//
// dataDir 为空时读取嵌入数据（调用前必须先 embedded.Init），
// 否则把 "data/..." 路径映射到 dataDir 下的同名文件。
func NewFileReader(dataDir string) game.FileReader {
	if dataDir == "" {
		return embedded.ReadFile
	}
	return func(path string) ([]byte, error) {
		rel := strings.TrimPrefix(filepath.ToSlash(path), "data/")
		return os.ReadFile(filepath.Join(dataDir, filepath.FromSlash(rel)))
	}
}

// LoadConfigs 读取调参配置和关卡配置
func LoadConfigs(read game.FileReader) (*config.TuningConfig, *config.LevelConfig, error) {
	data, err := read("data/tuning.yaml")
	if err != nil {
		return nil, nil, fmt.Errorf("读取调参配置失败: %w", err)
	}
	tuning, err := config.ParseTuningConfig(data)
	if err != nil {
		return nil, nil, err
	}

	data, err = read("data/level.yaml")
	if err != nil {
		return nil, nil, fmt.Errorf("读取关卡配置失败: %w", err)
	}
	level, err := config.ParseLevelConfig(data)
	if err != nil {
		return nil, nil, err
	}
	return tuning, level, nil
}

// NewApp 创建并初始化游戏应用
//
// 使用嵌入数据时，调用此函数前必须先调用 embedded.Init()。
func NewApp(cfg Config) (*App, error) {
	read := NewFileReader(cfg.DataDir)
	tuning, level, err := LoadConfigs(read)
	if err != nil {
		return nil, err
	}
	logger.Log.Infof("[App] 关卡 %s: 地面 %.0f, %d 个方块, 敌人 %dx%d %s",
		level.Name, level.Ground.Size, len(level.Blocks), level.EnemyGrid.Rows, level.EnemyGrid.Cols, level.EnemyGrid.Archetype)

	gdataManager, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		logger.Log.Warnf("[App] gdata 不可用，设置不会保存: %v", err)
		gdataManager = nil
	}
	settings := game.NewSettingsManager(gdataManager)

	ctx, cancel := context.WithCancel(context.Background())
	a := &App{
		ctx:             ctx,
		cancel:          cancel,
		keyboard:        utils.EbitenKeyboard{},
		sceneManager:    game.NewSceneManager(),
		resourceManager: game.NewResourceManager(read),
		settings:        settings,
		verbose:         cfg.Verbose,
	}

	a.sceneManager.SetSceneFactory(func() game.Scene {
		return scenes.NewGameScene(scenes.GameSceneOptions{
			Context:         a.ctx,
			ResourceManager: a.resourceManager,
			SceneManager:    a.sceneManager,
			Settings:        a.settings,
			Keyboard:        a.keyboard,
			Tuning:          tuning,
			Level:           level,
		})
	})
	if !a.sceneManager.Reload() {
		cancel()
		return nil, fmt.Errorf("无法创建主场景")
	}

	if settings.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}
	return a, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	if ebiten.IsWindowBeingClosed() {
		if !a.Close() {
			logger.Log.Warn("[App] 退出前保存设置失败")
		}
		return ebiten.Termination
	}

	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if a.keyboard.JustPressed(utils.KeyFullscreen) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			a.settings.SetFullscreen(false)
		} else {
			ebiten.SetFullscreen(true)
			a.settings.SetFullscreen(true)
		}
	}

	a.sceneManager.Update(FixedDeltaTime)
	return nil
}

// Draw 绘制游戏画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// Close 停止后台加载并保存当前场景的设置
//
// 返回:
//   - bool: 场景报告保存失败时为 false
func (a *App) Close() bool {
	a.cancel()
	if saveable, ok := a.sceneManager.GetCurrentScene().(game.Saveable); ok {
		return saveable.SaveOnExit()
	}
	return true
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
