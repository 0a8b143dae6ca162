package game

import (
	"math"
	"testing"
)

func TestToneFor(t *testing.T) {
	t.Run("射击事件有音效", func(t *testing.T) {
		tone, ok := ToneFor(Event{Type: EventShipFired})
		if !ok {
			t.Fatal("expected a tone for ShipFired")
		}
		if tone.Name != "ship_fired" {
			t.Errorf("Name = %q, want ship_fired", tone.Name)
		}
	})

	t.Run("阶段切换没有音效", func(t *testing.T) {
		if _, ok := ToneFor(Event{Type: EventPhaseChanged}); ok {
			t.Error("PhaseChanged should not map to a tone")
		}
	})
}

func TestToneRender(t *testing.T) {
	const rate = 8000

	for _, e := range []EventType{EventShipFired, EventAlienDestroyed, EventWaveStarted} {
		tone, _ := ToneFor(Event{Type: e})
		samples := tone.Render(rate)

		want := int(tone.Duration.Seconds() * rate)
		if len(samples) != want {
			t.Errorf("%s: got %d samples, want %d", tone.Name, len(samples), want)
		}
		for i, s := range samples {
			if math.Abs(s) > tone.Volume+1e-9 {
				t.Fatalf("%s: sample %d = %f exceeds volume %f", tone.Name, i, s, tone.Volume)
			}
		}
	}

	t.Run("噪声可复现", func(t *testing.T) {
		tone, _ := ToneFor(Event{Type: EventShipDestroyed})
		a := tone.Render(rate)
		b := tone.Render(rate)
		for i := range a {
			if a[i] != b[i] {
				t.Fatalf("sample %d differs: %f vs %f", i, a[i], b[i])
			}
		}
	})

	t.Run("零时长无采样", func(t *testing.T) {
		if got := (Tone{}).Render(rate); got != nil {
			t.Errorf("expected nil samples, got %d", len(got))
		}
	})
}
