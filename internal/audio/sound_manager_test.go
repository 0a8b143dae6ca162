package audio

import (
	"math"
	"testing"

	"github.com/decker502/invaders/pkg/game"
)

func drain(t *testing.T, s interface {
	Stream([][2]float64) (int, bool)
}) [][2]float64 {
	t.Helper()
	var out [][2]float64
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
}

func TestSamplesStreamer(t *testing.T) {
	samples := []float64{0.1, -0.2, 0.3}
	out := drain(t, samplesStreamer(samples))
	if len(out) != len(samples) {
		t.Fatalf("streamed %d samples, want %d", len(out), len(samples))
	}
	for i, s := range samples {
		if out[i][0] != s || out[i][1] != s {
			t.Errorf("sample %d = %v, want %v on both channels", i, out[i], s)
		}
	}
}

func TestWithVolume(t *testing.T) {
	t.Run("音量减半", func(t *testing.T) {
		out := drain(t, withVolume(samplesStreamer([]float64{0.8}), 0.5))
		if math.Abs(out[0][0]-0.4) > 1e-9 {
			t.Errorf("got %v, want 0.4", out[0][0])
		}
	})

	t.Run("零音量静音", func(t *testing.T) {
		out := drain(t, withVolume(samplesStreamer([]float64{0.8}), 0))
		if out[0][0] != 0 {
			t.Errorf("got %v, want silence", out[0][0])
		}
	})
}

func TestSoundManagerWithoutSpeaker(t *testing.T) {
	sm := NewSoundManager(nil)
	// 未初始化声卡时播放不会阻塞或崩溃，也不会合成采样
	sm.HandleEvents([]game.Event{{Type: game.EventShipFired}, {Type: game.EventPhaseChanged}})
	if len(sm.cache) != 0 {
		t.Errorf("cache = %d entries, want 0 before Initialize", len(sm.cache))
	}

	tone, _ := game.ToneFor(game.Event{Type: game.EventAlienDestroyed})
	out := drain(t, sm.streamerLocked(tone))
	want := len(tone.Render(int(sampleRate)))
	if len(out) != want {
		t.Errorf("streamed %d samples, want %d", len(out), want)
	}
	if len(sm.cache) != 1 {
		t.Errorf("cache = %d entries, want 1", len(sm.cache))
	}
}
