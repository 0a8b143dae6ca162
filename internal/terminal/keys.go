package terminal

import (
	"sync"
	"time"

	"github.com/decker502/invaders/pkg/session"
)

// HoldDuration 一次按键被视为"按住"的时间
// 终端没有松开事件，长按依赖系统的按键重复，窗口需覆盖重复间隔
const HoldDuration = 120 * time.Millisecond

type key int

const (
	keyLeft key = iota
	keyRight
	keyUp
	keyDown
	keyFire
	keyBask
	keyStart
	keyRetry
	keyMenu
	keyCount
)

// 单次触发的按键：按一次只生效一次
var oneShot = [keyCount]bool{keyStart: true, keyRetry: true, keyMenu: true}

// KeyState 把终端字节流解码为 session.Controls
// 可以被读取协程和游戏循环并发使用
type KeyState struct {
	mu      sync.Mutex
	last    [keyCount]time.Time
	pending [keyCount]bool
	quit    bool
	escSeq  []byte // 未完成的转义序列
}

// NewKeyState 创建按键状态
func NewKeyState() *KeyState {
	return &KeyState{}
}

func (ks *KeyState) press(k key, now time.Time) {
	ks.mu.Lock()
	defer ks.mu.Unlock()
	ks.pressLocked(k, now)
}

func (ks *KeyState) pressLocked(k key, now time.Time) {
	ks.last[k] = now
	if oneShot[k] {
		ks.pending[k] = true
	}
}

// Feed 解码一段字节流（方向键 CSI 序列、WASD、空格、回车等）
// 返回 true 表示请求退出（q、Ctrl+C）
func (ks *KeyState) Feed(data []byte, now time.Time) bool {
	ks.mu.Lock()
	defer ks.mu.Unlock()

	buf := append(ks.escSeq, data...)
	ks.escSeq = nil

	for i := 0; i < len(buf); i++ {
		b := buf[i]
		if b == 0x1b {
			// 序列可能被拆在两次读取之间
			if i+1 >= len(buf) || ((buf[i+1] == '[' || buf[i+1] == 'O') && i+2 >= len(buf)) {
				ks.escSeq = append([]byte(nil), buf[i:]...)
				break
			}
			if buf[i+1] == '[' || buf[i+1] == 'O' {
				switch buf[i+2] {
				case 'A':
					ks.pressLocked(keyUp, now)
				case 'B':
					ks.pressLocked(keyDown, now)
				case 'C':
					ks.pressLocked(keyRight, now)
				case 'D':
					ks.pressLocked(keyLeft, now)
				}
				i += 2
				continue
			}
			continue
		}
		if ks.applyRuneLocked(rune(b), now) {
			ks.quit = true
		}
	}
	return ks.quit
}

// FeedByteRune 写入单个字符按键，返回 true 表示请求退出
func (ks *KeyState) FeedByteRune(r rune, now time.Time) bool {
	ks.mu.Lock()
	defer ks.mu.Unlock()
	if ks.applyRuneLocked(r, now) {
		ks.quit = true
	}
	return ks.quit
}

func (ks *KeyState) applyRuneLocked(r rune, now time.Time) bool {
	switch r {
	case 'q', 'Q', 0x03:
		return true
	case 'a', 'A', 'h':
		ks.pressLocked(keyLeft, now)
	case 'd', 'D', 'l':
		ks.pressLocked(keyRight, now)
	case 'w', 'W', 'k':
		ks.pressLocked(keyUp, now)
	case 's', 'S', 'j':
		ks.pressLocked(keyDown, now)
	case ' ':
		ks.pressLocked(keyFire, now)
		ks.pressLocked(keyBask, now)
	case 'b', 'B':
		ks.pressLocked(keyBask, now)
	case '\r', '\n':
		ks.pressLocked(keyStart, now)
	case 'r', 'R':
		ks.pressLocked(keyRetry, now)
	case 'm', 'M':
		ks.pressLocked(keyMenu, now)
	}
	return false
}

// QuitRequested 是否收到过退出按键
func (ks *KeyState) QuitRequested() bool {
	ks.mu.Lock()
	defer ks.mu.Unlock()
	return ks.quit
}

// Controls 返回当前输入；单次按键在此被消费
func (ks *KeyState) Controls(now time.Time) session.Controls {
	ks.mu.Lock()
	defer ks.mu.Unlock()

	held := func(k key) bool {
		return !ks.last[k].IsZero() && now.Sub(ks.last[k]) < HoldDuration
	}
	c := session.Controls{
		Left:  held(keyLeft),
		Right: held(keyRight),
		Up:    held(keyUp),
		Down:  held(keyDown),
		Fire:  held(keyFire),
		Bask:  held(keyBask),
		Start: ks.pending[keyStart],
		Retry: ks.pending[keyRetry],
		Menu:  ks.pending[keyMenu],
	}
	ks.pending = [keyCount]bool{}
	return c
}
