package render

import (
	"log"

	"github.com/decker502/invaders/pkg/game"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// SampleRate ebiten 音频上下文的采样率
const SampleRate = 48000

// AudioManager 音效管理器
// 职责：
//   - 把游戏事件映射为合成音效并播放
//   - 从 SettingsManager 读取音效开关和音量
//
// 每个音效只合成一次，之后复用缓存的播放器。
type AudioManager struct {
	context         *audio.Context
	settingsManager *game.SettingsManager    // 可为 nil，使用默认音量
	soundPlayers    map[string]*audio.Player // 音效名称 -> 播放器
}

// NewAudioManager 创建音效管理器
//
// 参数：
//   - ctx: ebiten 音频上下文（进程内只能创建一个）
//   - sm: 设置管理器，可为 nil
func NewAudioManager(ctx *audio.Context, sm *game.SettingsManager) *AudioManager {
	return &AudioManager{
		context:         ctx,
		settingsManager: sm,
		soundPlayers:    make(map[string]*audio.Player),
	}
}

// HandleEvents 为一批事件播放对应音效
func (am *AudioManager) HandleEvents(events []game.Event) {
	for _, e := range events {
		if tone, ok := game.ToneFor(e); ok {
			am.PlayTone(tone)
		}
	}
}

// PlayTone 播放一个音效
//
// 返回：
//   - bool: 是否成功播放
func (am *AudioManager) PlayTone(tone game.Tone) bool {
	// 检查音效是否启用
	if am.settingsManager != nil && !am.settingsManager.GetSettings().SoundEnabled {
		return false
	}

	player := am.getSoundPlayer(tone)
	if player == nil {
		return false
	}

	player.SetVolume(am.getSoundVolume())
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind sound %s: %v", tone.Name, err)
	}
	player.Play()
	return true
}

// Preload 预先合成所有事件音效，避免首次播放时卡顿
func (am *AudioManager) Preload() {
	count := 0
	for t := game.EventShipFired; t <= game.EventHighScore; t++ {
		if tone, ok := game.ToneFor(game.Event{Type: t}); ok {
			am.getSoundPlayer(tone)
			count++
		}
	}
	log.Printf("[AudioManager] Preloaded %d sounds", count)
}

// getSoundPlayer 获取或合成音效播放器
func (am *AudioManager) getSoundPlayer(tone game.Tone) *audio.Player {
	if player, exists := am.soundPlayers[tone.Name]; exists {
		return player
	}
	if am.context == nil {
		return nil
	}

	player := am.context.NewPlayerFromBytes(pcm16Stereo(tone.Render(SampleRate)))
	am.soundPlayers[tone.Name] = player
	return player
}

// getSoundVolume 获取音效音量设置
func (am *AudioManager) getSoundVolume() float64 {
	if am.settingsManager != nil {
		return am.settingsManager.GetSettings().SoundVolume
	}
	return 0.8 // 默认值
}

// pcm16Stereo 把单声道浮点采样转换为 16 位小端立体声 PCM
func pcm16Stereo(samples []float64) []byte {
	buf := make([]byte, len(samples)*4)
	for i, s := range samples {
		s = max(-1, min(1, s))
		v := int16(s * 32767)
		lo, hi := byte(v), byte(uint16(v)>>8)
		buf[4*i] = lo
		buf[4*i+1] = hi
		buf[4*i+2] = lo
		buf[4*i+3] = hi
	}
	return buf
}
