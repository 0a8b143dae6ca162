package game

import (
	"math"
	"time"
)

// Waveform 合成音效的波形
type Waveform int

const (
	WaveSquare Waveform = iota
	WaveSine
	WaveNoise
)

// Tone 一个合成音效
// 频率在 Duration 内从 StartHz 线性滑到 EndHz，结尾线性淡出
type Tone struct {
	Name     string
	Wave     Waveform
	StartHz  float64
	EndHz    float64
	Duration time.Duration
	Volume   float64 // 0.0 ~ 1.0
}

var (
	toneShipFired      = Tone{Name: "ship_fired", Wave: WaveSquare, StartHz: 880, EndHz: 440, Duration: 80 * time.Millisecond, Volume: 0.25}
	toneAlienFired     = Tone{Name: "alien_fired", Wave: WaveSquare, StartHz: 220, EndHz: 180, Duration: 70 * time.Millisecond, Volume: 0.15}
	toneAlienHit       = Tone{Name: "alien_hit", Wave: WaveSine, StartHz: 660, EndHz: 520, Duration: 60 * time.Millisecond, Volume: 0.3}
	toneAlienDestroyed = Tone{Name: "alien_destroyed", Wave: WaveNoise, StartHz: 0, EndHz: 0, Duration: 250 * time.Millisecond, Volume: 0.35}
	toneShipHit        = Tone{Name: "ship_hit", Wave: WaveSquare, StartHz: 160, EndHz: 90, Duration: 180 * time.Millisecond, Volume: 0.4}
	toneShipDestroyed  = Tone{Name: "ship_destroyed", Wave: WaveNoise, StartHz: 0, EndHz: 0, Duration: 700 * time.Millisecond, Volume: 0.5}
	toneWaveStarted    = Tone{Name: "wave_started", Wave: WaveSine, StartHz: 330, EndHz: 660, Duration: 400 * time.Millisecond, Volume: 0.3}
	toneHighScore      = Tone{Name: "high_score", Wave: WaveSine, StartHz: 523, EndHz: 1046, Duration: 600 * time.Millisecond, Volume: 0.35}
)

// ToneFor 返回事件对应的音效，没有音效的事件返回 false
func ToneFor(e Event) (Tone, bool) {
	switch e.Type {
	case EventShipFired:
		return toneShipFired, true
	case EventAlienFired:
		return toneAlienFired, true
	case EventAlienHit:
		return toneAlienHit, true
	case EventAlienDestroyed:
		return toneAlienDestroyed, true
	case EventShipHit:
		return toneShipHit, true
	case EventShipDestroyed:
		return toneShipDestroyed, true
	case EventWaveStarted:
		return toneWaveStarted, true
	case EventHighScore:
		return toneHighScore, true
	}
	return Tone{}, false
}

// Render 以给定采样率合成单声道采样，取值在 [-Volume, Volume]
// 噪声使用固定种子，同一个 Tone 每次合成结果相同
func (t Tone) Render(sampleRate int) []float64 {
	n := int(t.Duration.Seconds() * float64(sampleRate))
	if n <= 0 {
		return nil
	}

	samples := make([]float64, n)
	phase := 0.0
	seed := uint32(0x2545f491)
	for i := range samples {
		progress := float64(i) / float64(n)
		freq := t.StartHz + (t.EndHz-t.StartHz)*progress

		var v float64
		switch t.Wave {
		case WaveSine:
			v = math.Sin(2 * math.Pi * phase)
		case WaveSquare:
			if phase < 0.5 {
				v = 1
			} else {
				v = -1
			}
		case WaveNoise:
			seed = seed*1664525 + 1013904223
			v = float64(seed)/float64(math.MaxUint32)*2 - 1
		}

		phase += freq / float64(sampleRate)
		phase -= math.Floor(phase)

		samples[i] = v * t.Volume * (1 - progress)
	}
	return samples
}
