package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/embedded"
)

// testOptions 使用仓库中的外星人属性和临时目录中的小战役
// layouts 为每一波的布局文本
func testOptions(t *testing.T, layouts ...string) Options {
	t.Helper()
	embedded.Init(os.DirFS(filepath.Join("..", "..")))
	t.Cleanup(func() { embedded.Init(nil) })

	stats, err := config.LoadAlienStats(config.AlienStatsPath)
	if err != nil {
		t.Fatalf("LoadAlienStats failed: %v", err)
	}

	dir := t.TempDir()
	campaign := &config.CampaignConfig{LoadWaveDuration: 0.5}
	for i, text := range layouts {
		path := filepath.Join(dir, "wave_"+string(rune('0'+i))+".txt")
		if err := os.WriteFile(path, []byte(text), 0644); err != nil {
			t.Fatalf("Failed to write layout: %v", err)
		}
		campaign.Waves = append(campaign.Waves, config.WaveConfig{Name: "Test", Layout: path})
	}

	return Options{Seed: 99, Campaign: campaign, Stats: stats, PlayerName: "tester"}
}

func newTestSession(t *testing.T, layouts ...string) *Session {
	t.Helper()
	s, err := NewSession(testOptions(t, layouts...))
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}
	return s
}

// stepUntil 推进直到 cond 成立，超过 maxSteps 则失败
func stepUntil(t *testing.T, s *Session, controls Controls, maxSteps int, cond func() bool) {
	t.Helper()
	for i := 0; i < maxSteps; i++ {
		if cond() {
			return
		}
		s.Update(controls)
	}
	if !cond() {
		t.Fatalf("Condition not reached after %d steps (phase %s)", maxSteps, s.Phase())
	}
}
