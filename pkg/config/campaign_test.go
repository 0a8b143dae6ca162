package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/decker502/invaders/pkg/types"
)

func TestLoadCampaign(t *testing.T) {
	t.Run("默认值", func(t *testing.T) {
		path := writeTempFile(t, "waves.yaml", "waves:\n  - layout: a.txt\n  - name: Boss\n    layout: b.txt\n")
		campaign, err := LoadCampaign(path)
		if err != nil {
			t.Fatalf("LoadCampaign failed: %v", err)
		}
		if campaign.LoadWaveDuration != DefaultLoadWaveDuration {
			t.Errorf("LoadWaveDuration default: expected %v, got %v", DefaultLoadWaveDuration, campaign.LoadWaveDuration)
		}
		if campaign.Waves[0].Name != "Wave 1" || campaign.Waves[1].Name != "Boss" {
			t.Errorf("unexpected names: %+v", campaign.Waves)
		}
		if campaign.WaveCount() != 2 {
			t.Errorf("WaveCount = %d", campaign.WaveCount())
		}
		if _, ok := campaign.Wave(2); ok {
			t.Error("Wave(2) should be out of range")
		}
		if w, ok := campaign.Wave(1); !ok || w.Layout != "b.txt" {
			t.Errorf("Wave(1) = %+v %v", w, ok)
		}
	})

	invalid := []struct {
		name    string
		content string
		errPart string
	}{
		{"没有波次", "loadWaveDuration: 2\nwaves: []\n", "at least one wave"},
		{"缺少布局", "waves:\n  - name: x\n", "layout is required"},
		{"负时长", "loadWaveDuration: -1\nwaves:\n  - layout: a.txt\n", "cannot be negative"},
	}
	for _, tc := range invalid {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadCampaign(writeTempFile(t, "waves.yaml", tc.content))
			if err == nil || !strings.Contains(err.Error(), tc.errPart) {
				t.Errorf("Expected error containing %q, got %v", tc.errPart, err)
			}
		})
	}
}

func TestRepoCampaign(t *testing.T) {
	useRepoData(t)

	campaign, err := LoadCampaign(CampaignPath)
	if err != nil {
		t.Fatalf("LoadCampaign failed: %v", err)
	}
	if campaign.WaveCount() != 4 {
		t.Errorf("Expected 4 waves, got %d", campaign.WaveCount())
	}
	if campaign.LoadWaveDuration <= 0 {
		t.Errorf("LoadWaveDuration should be positive, got %v", campaign.LoadWaveDuration)
	}
}

func TestCampaignWithLayoutDir(t *testing.T) {
	useRepoData(t)

	campaign, err := LoadCampaign(CampaignPath)
	if err != nil {
		t.Fatalf("LoadCampaign failed: %v", err)
	}
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "wave_1.txt"), []byte("z\n"), 0644); err != nil {
		t.Fatal(err)
	}
	moved := campaign.WithLayoutDir(dir)

	t.Run("覆盖目录中的文件优先", func(t *testing.T) {
		wave, _ := moved.Wave(1)
		if wave.Layout != filepath.Join(dir, "wave_1.txt") {
			t.Errorf("Layout = %s", wave.Layout)
		}
		layout, err := LoadLayout(wave.Layout)
		if err != nil {
			t.Fatalf("LoadLayout failed: %v", err)
		}
		if layout.Total() != 1 || layout.Count(types.AlienZorg) != 1 {
			t.Errorf("Expected override layout with one zorg, got %d aliens", layout.Total())
		}
	})

	t.Run("覆盖目录缺少的波次回退内置布局", func(t *testing.T) {
		for _, index := range []int{0, 2, 3} {
			wave, _ := moved.Wave(index)
			original, _ := campaign.Wave(index)
			if wave.Layout != original.Layout {
				t.Errorf("wave %d: Layout = %s, want %s", index, wave.Layout, original.Layout)
			}
			if _, err := LoadLayout(wave.Layout); err != nil {
				t.Errorf("wave %d: LoadLayout failed: %v", index, err)
			}
		}
	})

	t.Run("原配置不被修改", func(t *testing.T) {
		wave, _ := campaign.Wave(1)
		if wave.Layout == filepath.Join(dir, "wave_1.txt") {
			t.Error("original campaign must not be modified")
		}
		if moved.LoadWaveDuration != campaign.LoadWaveDuration || moved.WaveCount() != campaign.WaveCount() {
			t.Errorf("other fields not copied: %+v", moved)
		}
	})
}
