package main

import (
	"errors"
	"flag"
	"log"

	"github.com/decker502/invaders/data"
	"github.com/decker502/invaders/pkg/app"
	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	verbose := flag.Bool("verbose", false, "enable verbose logging")
	wave := flag.Int("wave", 1, "wave to start new games at (1-based)")
	seed := flag.Int64("seed", 0, "random seed (0 = time based)")
	wavesDir := flag.String("waves-dir", "", "read wave layout files from this directory")
	name := flag.String("name", "", "player name for the hall of fame")
	skipLoading := flag.Bool("skip-loading", false, "skip the loading screen")
	flag.Parse()

	embedded.Init(data.FS())

	gameApp, err := app.NewApp(app.Config{
		Verbose:          *verbose,
		StartWave:        max(0, *wave-1),
		Seed:             *seed,
		WavesDir:         *wavesDir,
		PlayerName:       *name,
		SkipLoadingScene: *skipLoading,
	})
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle("Alien Invaders")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(gameApp); err != nil && !errors.Is(err, app.ErrQuit) {
		log.Fatal(err)
	}
	gameApp.SaveOnExit()
}
