// invaders-term 在本地终端里运行游戏（tcell 显示，beep 音效）
package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/decker502/invaders/data"
	"github.com/decker502/invaders/internal/audio"
	"github.com/decker502/invaders/internal/terminal"
	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/embedded"
	"github.com/decker502/invaders/pkg/game"
	"github.com/decker502/invaders/pkg/session"
	"github.com/gdamore/tcell/v2"
)

func main() {
	logFile := flag.String("log", "", "write logs to this file (terminal output is reserved for the game)")
	wave := flag.Int("wave", 1, "wave to start new games at (1-based)")
	seed := flag.Int64("seed", 0, "random seed (0 = time based)")
	wavesDir := flag.String("waves-dir", "", "read wave layout files from this directory")
	name := flag.String("name", "", "player name for the hall of fame")
	mute := flag.Bool("mute", false, "disable sound")
	flag.Parse()

	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("failed to open log file: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
	} else {
		log.SetOutput(io.Discard)
	}

	if err := run(*wave, *seed, *wavesDir, *name, *mute); err != nil {
		log.Printf("invaders-term: %v", err)
		os.Exit(1)
	}
}

func run(wave int, seed int64, wavesDir, name string, mute bool) error {
	embedded.Init(data.FS())

	sheet, err := config.LoadSpriteSheet(config.SpriteSheetPath)
	if err != nil {
		return err
	}
	campaign, err := config.LoadCampaign(config.CampaignPath)
	if err != nil {
		return err
	}
	if wavesDir != "" {
		campaign = campaign.WithLayoutDir(wavesDir)
	}

	storage := game.OpenStorage()
	settingsManager, _ := game.NewSettingsManager(storage)
	if name == "" {
		name = settingsManager.GetSettings().PlayerName
	}

	sess, err := session.NewSession(session.Options{
		Seed:       seed,
		Campaign:   campaign,
		StartWave:  max(0, wave-1),
		HallOfFame: game.NewHallOfFame(storage),
		PlayerName: name,
	})
	if err != nil {
		return err
	}

	sounds := audio.NewSoundManager(settingsManager.GetSettings())
	sounds.SetEnabled(!mute && settingsManager.GetSettings().SoundEnabled)
	if err := sounds.Initialize(); err != nil {
		// 没有声卡也能玩
		log.Printf("[Audio] initialization failed: %v", err)
	}
	defer sounds.Cleanup()

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.HideCursor()

	presenter := terminal.NewTcellPresenter(screen)
	canvas := terminal.NewCanvas(1, 2)
	presenter.Fit(canvas)
	glyphs := terminal.NewGlyphTable(sheet)
	keys := terminal.NewKeyState()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	resized := make(chan struct{}, 1)
	go func() {
		for {
			ev := screen.PollEvent()
			switch ev := ev.(type) {
			case nil:
				// Fini 之后 PollEvent 返回 nil
				return
			case *tcell.EventKey:
				if terminal.FeedTcellKey(keys, ev, time.Now()) {
					cancel()
				}
			case *tcell.EventResize:
				select {
				case resized <- struct{}{}:
				default:
				}
			}
		}
	}()

	loop := &terminal.Loop{
		Session:  sess,
		Keys:     keys,
		OnEvents: sounds.HandleEvents,
		Present: func(snap *session.Snapshot) error {
			select {
			case <-resized:
				screen.Sync()
				presenter.Fit(canvas)
			default:
			}
			terminal.Draw(canvas, snap, glyphs)
			presenter.Present(canvas)
			return nil
		},
	}
	err = loop.Run(ctx)

	settingsManager.SetPlayerName(sess.PlayerName())
	if saveErr := settingsManager.Save(); saveErr != nil {
		log.Printf("[Settings] save failed: %v", saveErr)
	}
	return err
}
