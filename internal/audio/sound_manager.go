// Package audio 终端前端的音效（beep + speaker）
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/decker502/invaders/pkg/game"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// SoundManager 把游戏事件播放为合成音效
// 合成后的采样按音效名称缓存，所有声音混入同一个 Mixer
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	cache       map[string][]float64
	volume      float64
	enabled     bool
	initialized bool
}

// NewSoundManager 创建音效管理器，settings 为 nil 时使用默认设置
func NewSoundManager(settings *game.GameSettings) *SoundManager {
	if settings == nil {
		settings = game.DefaultSettings()
	}
	return &SoundManager{
		mixer:   &beep.Mixer{},
		cache:   make(map[string][]float64),
		volume:  settings.SoundVolume,
		enabled: settings.SoundEnabled,
	}
}

// Initialize 打开声卡；失败时游戏照常运行，只是没有声音
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup 停止所有声音并关闭声卡
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	sm.initialized = false
}

// HandleEvents 为一批事件播放音效
func (sm *SoundManager) HandleEvents(events []game.Event) {
	for _, e := range events {
		if tone, ok := game.ToneFor(e); ok {
			sm.Play(tone)
		}
	}
}

// Play 播放一个音效，未初始化或已静音时忽略
func (sm *SoundManager) Play(tone game.Tone) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || !sm.enabled {
		return
	}
	streamer := sm.streamerLocked(tone)
	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
}

// SetEnabled 打开或关闭音效
func (sm *SoundManager) SetEnabled(enabled bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.enabled = enabled
}

// streamerLocked 生成一个带音量的新流；采样只合成一次
func (sm *SoundManager) streamerLocked(tone game.Tone) beep.Streamer {
	samples, ok := sm.cache[tone.Name]
	if !ok {
		samples = tone.Render(int(sampleRate))
		sm.cache[tone.Name] = samples
	}
	return withVolume(samplesStreamer(samples), sm.volume)
}

// samplesStreamer 把单声道采样包装为立体声流
func samplesStreamer(samples []float64) beep.Streamer {
	pos := 0
	return beep.StreamerFunc(func(buf [][2]float64) (int, bool) {
		if pos >= len(samples) {
			return 0, false
		}
		n := copy2(buf, samples[pos:])
		pos += n
		return n, true
	})
}

func copy2(dst [][2]float64, src []float64) int {
	n := min(len(dst), len(src))
	for i := 0; i < n; i++ {
		dst[i][0] = src[i]
		dst[i][1] = src[i]
	}
	return n
}

// withVolume 线性音量转换为 effects.Volume 的对数刻度，0 为静音
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
