package config

import (
	"fmt"

	"github.com/decker502/invaders/pkg/embedded"
	"github.com/decker502/invaders/pkg/types"
	"github.com/decker502/invaders/pkg/utils"
	"gopkg.in/yaml.v3"
)

// 冷却策略名称
const (
	CooldownFixed   = "fixed"
	CooldownAtMost  = "atMost"
	CooldownBetween = "between"
)

// CooldownConfig 射击冷却配置
type CooldownConfig struct {
	Policy  string  `yaml:"policy"`  // fixed | atMost | between
	Seconds float64 `yaml:"seconds"` // fixed 使用
	Min     float64 `yaml:"min"`     // between 使用
	Max     float64 `yaml:"max"`     // atMost / between 使用
}

// Sampler 将配置转换为冷却时长采样器
func (c CooldownConfig) Sampler() (utils.DurationSampler, error) {
	switch c.Policy {
	case CooldownFixed:
		if c.Seconds < 0 {
			return nil, fmt.Errorf("fixed cooldown cannot be negative, got %v", c.Seconds)
		}
		return utils.FixedDuration{Seconds: c.Seconds}, nil
	case CooldownAtMost:
		if c.Max <= 0 {
			return nil, fmt.Errorf("atMost cooldown requires max > 0, got %v", c.Max)
		}
		return utils.AtMostDuration{Max: c.Max}, nil
	case CooldownBetween:
		if c.Min < 0 || c.Max <= c.Min {
			return nil, fmt.Errorf("between cooldown requires 0 <= min < max, got [%v, %v]", c.Min, c.Max)
		}
		return utils.BetweenDuration{Min: c.Min, Max: c.Max}, nil
	default:
		return nil, fmt.Errorf("unknown cooldown policy %q", c.Policy)
	}
}

// AlienSprites 外星人相关的精灵名称
type AlienSprites struct {
	Frames []string `yaml:"frames"` // 行走/悬停动画帧
	Bullet string   `yaml:"bullet"` // 子弹
	Flash  string   `yaml:"flash"`  // 枪口闪光
}

// AlienStats 单个外星人种类的属性配置
type AlienStats struct {
	Width          float64        `yaml:"width"`          // 碰撞盒与绘制宽度
	Height         float64        `yaml:"height"`         // 碰撞盒与绘制高度
	Speed          float64        `yaml:"speed"`          // Aris 巡航速度 / Zorg 悬停速度
	BulletSpeed    float64        `yaml:"bulletSpeed"`    // 子弹速度
	BulletWidth    float64        `yaml:"bulletWidth"`    // 子弹尺寸
	BulletHeight   float64        `yaml:"bulletHeight"`   //
	Score          int            `yaml:"score"`          // 击毁得分
	Health         int            `yaml:"health"`         // 生命值
	Cooldown       CooldownConfig `yaml:"cooldown"`       // 射击冷却
	HopDuration    float64        `yaml:"hopDuration"`    // Rylo 跳跃补间的时长上限
	HoverAmplitude float64        `yaml:"hoverAmplitude"` // Zorg 悬停振幅（像素）
	SpreadDegrees  float64        `yaml:"spreadDegrees"`  // Zorg 散射角（度）
	Sprites        AlienSprites   `yaml:"sprites"`
}

// AlienStatsConfig 外星人属性配置文件结构
type AlienStatsConfig struct {
	Aliens map[string]AlienStats `yaml:"aliens"` // 种类名称到属性的映射
}

// LoadAlienStats 从 YAML 文件加载外星人属性配置
// 参数：
//
//	filepath - 配置文件路径（"data/" 前缀从嵌入资源读取）
//
// 返回：
//
//	*AlienStatsConfig - 解析后的配置对象
//	error - 如果文件读取或解析失败，返回错误信息
func LoadAlienStats(filepath string) (*AlienStatsConfig, error) {
	data, err := embedded.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read alien stats file %s: %w", filepath, err)
	}

	config, err := ParseAlienStats(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath, err)
	}
	return config, nil
}

// ParseAlienStats 解析外星人属性 YAML
func ParseAlienStats(data []byte) (*AlienStatsConfig, error) {
	var config AlienStatsConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse alien stats YAML: %w", err)
	}

	applyAlienDefaults(&config)

	if err := validateAlienStats(&config); err != nil {
		return nil, fmt.Errorf("invalid alien stats: %w", err)
	}
	return &config, nil
}

// applyAlienDefaults 为缺失的可选字段设置默认值
func applyAlienDefaults(config *AlienStatsConfig) {
	for name, stats := range config.Aliens {
		if stats.BulletWidth == 0 {
			stats.BulletWidth = 20
		}
		if stats.BulletHeight == 0 {
			stats.BulletHeight = 40
		}
		if stats.Health == 0 {
			stats.Health = 1
		}
		if stats.Cooldown.Policy == "" {
			stats.Cooldown.Policy = CooldownAtMost
		}
		if len(stats.Sprites.Frames) == 0 {
			stats.Sprites.Frames = []string{name}
		}
		config.Aliens[name] = stats
	}
}

// validateAlienStats 验证外星人属性配置的完整性和合法性
func validateAlienStats(config *AlienStatsConfig) error {
	if len(config.Aliens) == 0 {
		return fmt.Errorf("at least one alien kind is required")
	}

	for name, stats := range config.Aliens {
		if types.AlienKindFromString(name) == types.AlienUnknown {
			return fmt.Errorf("unknown alien kind %q", name)
		}
		if stats.Width <= 0 || stats.Height <= 0 {
			return fmt.Errorf("alien %s: size must be positive, got %vx%v", name, stats.Width, stats.Height)
		}
		if stats.Speed < 0 {
			return fmt.Errorf("alien %s: speed cannot be negative, got %v", name, stats.Speed)
		}
		if stats.BulletSpeed <= 0 {
			return fmt.Errorf("alien %s: bulletSpeed must be positive, got %v", name, stats.BulletSpeed)
		}
		if stats.Score < 0 {
			return fmt.Errorf("alien %s: score cannot be negative, got %d", name, stats.Score)
		}
		if stats.Health < 1 {
			return fmt.Errorf("alien %s: health must be at least 1, got %d", name, stats.Health)
		}
		if _, err := stats.Cooldown.Sampler(); err != nil {
			return fmt.Errorf("alien %s: %w", name, err)
		}
	}

	for _, kind := range types.AllAlienKinds {
		if _, ok := config.Aliens[kind.String()]; !ok {
			return fmt.Errorf("alien kind %s is missing", kind)
		}
	}
	return nil
}

// Get 获取指定种类的属性
// 如果种类不存在，返回 nil 和 false
func (c *AlienStatsConfig) Get(kind types.AlienKind) (*AlienStats, bool) {
	stats, ok := c.Aliens[kind.String()]
	if !ok {
		return nil, false
	}
	return &stats, true
}
