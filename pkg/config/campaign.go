package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/decker502/invaders/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// WaveConfig 单个波次的元数据
type WaveConfig struct {
	Name   string `yaml:"name"`   // 显示名称
	Layout string `yaml:"layout"` // 布局文件路径
}

// CampaignConfig 战役配置：按顺序进行的波次列表
type CampaignConfig struct {
	LoadWaveDuration float64      `yaml:"loadWaveDuration"` // 每波入场阶段时长（秒）
	Waves            []WaveConfig `yaml:"waves"`
}

// LoadCampaign 从 YAML 文件加载战役配置
func LoadCampaign(path string) (*CampaignConfig, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read campaign file %s: %w", path, err)
	}

	var campaign CampaignConfig
	if err := yaml.Unmarshal(data, &campaign); err != nil {
		return nil, fmt.Errorf("failed to parse campaign YAML from %s: %w", path, err)
	}

	applyCampaignDefaults(&campaign)

	if err := validateCampaign(&campaign); err != nil {
		return nil, fmt.Errorf("invalid campaign in %s: %w", path, err)
	}
	return &campaign, nil
}

// applyCampaignDefaults 为缺失的可选字段设置默认值
func applyCampaignDefaults(campaign *CampaignConfig) {
	if campaign.LoadWaveDuration == 0 {
		campaign.LoadWaveDuration = DefaultLoadWaveDuration
	}
	for i := range campaign.Waves {
		if campaign.Waves[i].Name == "" {
			campaign.Waves[i].Name = fmt.Sprintf("Wave %d", i+1)
		}
	}
}

// validateCampaign 验证战役配置的完整性和合法性
func validateCampaign(campaign *CampaignConfig) error {
	if campaign.LoadWaveDuration < 0 {
		return fmt.Errorf("loadWaveDuration cannot be negative, got %v", campaign.LoadWaveDuration)
	}
	if len(campaign.Waves) == 0 {
		return fmt.Errorf("at least one wave is required")
	}
	for i, wave := range campaign.Waves {
		if wave.Layout == "" {
			return fmt.Errorf("wave %d (%s): layout is required", i, wave.Name)
		}
	}
	return nil
}

// WaveCount 返回波次数量
func (c *CampaignConfig) WaveCount() int {
	return len(c.Waves)
}

// Wave 返回指定索引的波次，越界时返回 false
func (c *CampaignConfig) Wave(index int) (WaveConfig, bool) {
	if index < 0 || index >= len(c.Waves) {
		return WaveConfig{}, false
	}
	return c.Waves[index], true
}

// WithLayoutDir 返回一份副本，dir 中存在同名文件的波次改从 dir 读取
// 缺少的文件继续使用内置布局，用于命令行 -waves-dir 覆盖
func (c *CampaignConfig) WithLayoutDir(dir string) *CampaignConfig {
	out := *c
	out.Waves = make([]WaveConfig, len(c.Waves))
	for i, wave := range c.Waves {
		candidate := filepath.Join(dir, filepath.Base(wave.Layout))
		if _, err := os.Stat(candidate); err == nil {
			wave.Layout = candidate
		}
		out.Waves[i] = wave
	}
	return &out
}
