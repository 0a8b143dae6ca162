package terminal

import (
	"context"
	"time"

	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/game"
	"github.com/decker502/invaders/pkg/session"
)

// Loop 以固定步长驱动一个会话并把结果交给前端
type Loop struct {
	Session *session.Session
	Keys    *KeyState

	// Present 每一步之后调用，返回错误时循环结束（如 SSH 连接断开）
	Present func(snap *session.Snapshot) error
	// OnEvents 每一步产生的事件（音效），可为 nil
	OnEvents func(events []game.Event)
	// Tick 步长，零值为 config.TimeStep
	Tick time.Duration
}

// Run 运行直到 ctx 取消、收到退出按键或 Present 返回错误
func (l *Loop) Run(ctx context.Context) error {
	ticker := time.NewTicker(l.tickDuration())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-ticker.C:
			if l.Keys.QuitRequested() {
				return nil
			}
			if err := l.Step(now); err != nil {
				return err
			}
		}
	}
}

// tickDuration 返回步长，Tick 未设置时换算 config.TimeStep
func (l *Loop) tickDuration() time.Duration {
	if l.Tick > 0 {
		return l.Tick
	}
	step := config.TimeStep
	return time.Duration(step * float64(time.Second))
}

// Step 执行一个逻辑步并输出
func (l *Loop) Step(now time.Time) error {
	l.Session.Update(l.Keys.Controls(now))
	if events := l.Session.Events(); len(events) > 0 && l.OnEvents != nil {
		l.OnEvents(events)
	}
	snap := l.Session.Snapshot()
	return l.Present(&snap)
}
