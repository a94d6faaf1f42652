package main

import (
	"fmt"
	"os"

	"github.com/decker502/hunt3d/pkg/app"
	"github.com/decker502/hunt3d/pkg/config"
	"github.com/decker502/hunt3d/pkg/embedded"
	"github.com/decker502/hunt3d/pkg/logger"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var cfg app.Config

	cmd := &cobra.Command{
		Use:   "hunt3d",
		Short: "俯视调试视图下的追逐原型：玩家移动、敌人追逐和动画切换",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cfg)
		},
		SilenceUsage: true,
	}
	cmd.Flags().BoolVarP(&cfg.Verbose, "verbose", "v", false, "输出详细日志（级别由 LOG_LEVEL 控制）")
	cmd.Flags().StringVarP(&cfg.DataDir, "data", "d", "", "从该目录读取 tuning.yaml、level.yaml 和 characters/，覆盖内置数据")
	return cmd
}

func run(cfg app.Config) error {
	logger.Init(cfg.Verbose)
	embedded.Init(dataFS)

	gameApp, err := app.NewApp(cfg)
	if err != nil {
		return fmt.Errorf("游戏初始化失败: %w", err)
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	// 关闭窗口时先保存设置，由 App.Update 返回 ebiten.Termination
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(gameApp); err != nil {
		return err
	}
	logger.Log.Info("[Main] 已退出")
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
