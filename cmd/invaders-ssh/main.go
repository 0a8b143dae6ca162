// invaders-ssh 通过 SSH 提供游戏，每条连接一局独立的会话，名人堂共享
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/logging"

	"github.com/decker502/invaders/data"
	"github.com/decker502/invaders/internal/terminal"
	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/embedded"
	"github.com/decker502/invaders/pkg/game"
	"github.com/decker502/invaders/pkg/session"
)

const (
	defaultHost        = "::"
	defaultPort        = "2222"
	defaultHostKeyPath = ".ssh/invaders_host_key"
)

// server 所有连接共享的只读配置和名人堂
type server struct {
	sheet      *config.SpriteSheet
	glyphs     *terminal.GlyphTable
	campaign   *config.CampaignConfig
	stats      *config.AlienStatsConfig
	hallOfFame *game.HallOfFame
}

func main() {
	host := config.GetEnv("SSH_HOST", defaultHost)
	port := config.GetEnv("SSH_PORT", defaultPort)
	hostKeyPath := config.GetEnv("SSH_HOST_KEY", defaultHostKeyPath)
	wavesDir := config.GetEnv("INVADERS_WAVES_DIR", "")
	log.Printf("SSH config: host=%s port=%s hostKeyPath=%s", host, port, hostKeyPath)

	srv, err := newServer(wavesDir)
	if err != nil {
		log.Fatalf("failed to load game data: %v", err)
	}

	opts := []ssh.Option{
		wish.WithAddress(net.JoinHostPort(host, port)),
		wish.WithMiddleware(
			srv.gameMiddleware,
			activeterm.Middleware(),
			logging.Middleware(),
		),
		// 降低按键延迟
		ssh.WrapConn(func(ctx ssh.Context, conn net.Conn) net.Conn {
			if tcpConn, ok := conn.(*net.TCPConn); ok {
				_ = tcpConn.SetNoDelay(true)
			}
			return conn
		}),
	}
	if hostKeyPath != "" {
		opts = append(opts, wish.WithHostKeyPath(hostKeyPath))
	}

	s, err := wish.NewServer(opts...)
	if err != nil {
		log.Fatalf("failed to create server: %v", err)
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	log.Printf("Starting SSH server on %s", net.JoinHostPort(host, port))
	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-done
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.Shutdown(ctx); err != nil {
		log.Fatalf("shutdown error: %v", err)
	}
}

func newServer(wavesDir string) (*server, error) {
	embedded.Init(data.FS())

	sheet, err := config.LoadSpriteSheet(config.SpriteSheetPath)
	if err != nil {
		return nil, err
	}
	campaign, err := config.LoadCampaign(config.CampaignPath)
	if err != nil {
		return nil, err
	}
	if wavesDir != "" {
		campaign = campaign.WithLayoutDir(wavesDir)
	}
	stats, err := config.LoadAlienStats(config.AlienStatsPath)
	if err != nil {
		return nil, err
	}

	return &server{
		sheet:      sheet,
		glyphs:     terminal.NewGlyphTable(sheet),
		campaign:   campaign,
		stats:      stats,
		hallOfFame: game.OpenHallOfFame(),
	}, nil
}

// gameMiddleware 为每条连接运行一局游戏
func (srv *server) gameMiddleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		pty, winCh, ok := sess.Pty()
		if !ok {
			fmt.Fprintln(sess, "Error: PTY required. Please connect with: ssh -t user@host")
			return
		}
		log.Printf("New game session: user=%s, terminal=%s, size=%dx%d",
			sess.User(), pty.Term, pty.Window.Width, pty.Window.Height)

		if err := srv.play(sess, pty.Window, winCh); err != nil {
			log.Printf("Game error for %s: %v", sess.User(), err)
		}

		log.Printf("Session ended: user=%s", sess.User())
		next(sess)
	}
}

func (srv *server) play(sess ssh.Session, win ssh.Window, winCh <-chan ssh.Window) error {
	gameSession, err := session.NewSession(session.Options{
		Campaign:   srv.campaign,
		Stats:      srv.stats,
		HallOfFame: srv.hallOfFame,
		PlayerName: sess.User(),
	})
	if err != nil {
		return err
	}

	sizes := newSizeTracker(win.Width, win.Height)
	go func() {
		for w := range winCh {
			sizes.update(w.Width, w.Height)
		}
	}()

	ctx, cancel := context.WithCancel(sess.Context())
	defer cancel()

	keys := terminal.NewKeyState()
	go func() {
		defer cancel()
		buf := make([]byte, 256)
		for {
			n, err := sess.Read(buf)
			if n > 0 && keys.Feed(buf[:n], time.Now()) {
				return
			}
			if err != nil {
				return
			}
		}
	}()

	cols, rows, offCol, offRow := terminal.FitPlayfield(sizes.get())
	canvas := terminal.NewCanvas(cols, rows)
	out := terminal.NewANSIWriter(sess, offCol, offRow)
	if err := out.Begin(); err != nil {
		return err
	}
	defer out.End()

	loop := &terminal.Loop{
		Session: gameSession,
		Keys:    keys,
		Present: func(snap *session.Snapshot) error {
			if w, h, changed := sizes.changed(); changed {
				cols, rows, offCol, offRow := terminal.FitPlayfield(w, h)
				canvas.Resize(cols, rows)
				out.SetOffset(offCol, offRow)
			}
			terminal.Draw(canvas, snap, srv.glyphs)
			return out.Render(canvas)
		},
	}
	return loop.Run(ctx)
}
