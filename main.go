package main

import (
	"fmt"
	"log"
	"os"

	"github.com/decker502/eterna/pkg/app"
	"github.com/decker502/eterna/pkg/config"
	"github.com/decker502/eterna/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

// rootCmd 构建命令行入口
func rootCmd() *cobra.Command {
	var cfg app.Config

	cmd := &cobra.Command{
		Use:   "eterna",
		Short: "Eterna RNA design puzzle client",
		Long: `eterna opens the puzzle client with the nucleotide palette.

Keys:
  F11  toggle fullscreen
  T    toggle palette tooltips
  Esc  dismiss an open confirmation dialog`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cfg)
		},
	}

	cmd.Flags().BoolVarP(&cfg.Verbose, "verbose", "v", false, "enable verbose logging")
	cmd.Flags().BoolVar(&cfg.Fullscreen, "fullscreen", false, "start in fullscreen")
	cmd.Flags().BoolVar(&cfg.SkipFolding, "no-folding", false, "skip folding engine initialization")
	cmd.Flags().BoolVar(&cfg.NoPairs, "no-pairs", false, "lock the palette in no-pair mode")

	return cmd
}

func run(cfg app.Config) error {
	embedded.Init(dataFS)

	gameApp, err := app.NewApp(cfg)
	if err != nil {
		return fmt.Errorf("初始化失败: %w", err)
	}
	defer gameApp.Shutdown()

	ebiten.SetWindowSize(config.StageWidth, config.StageHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(gameApp.StartFullscreen())

	log.Printf("[Main] Starting game loop")
	return ebiten.RunGame(gameApp)
}

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
