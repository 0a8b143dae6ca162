package session

import (
	"fmt"
	"time"

	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/game"
)

// Options 会话参数
// 零值可用：配置从默认路径加载，种子取当前时间，名人堂只保存在内存中
type Options struct {
	Seed       int64                    // 随机种子，0 表示使用当前时间
	Campaign   *config.CampaignConfig   // 波次配置，nil 时加载 config.CampaignPath
	Stats      *config.AlienStatsConfig // 外星人属性，nil 时加载 config.AlienStatsPath
	StartWave  int                      // 新游戏的起始波次（0-based）
	HallOfFame *game.HallOfFame         // 名人堂，多个会话可以共享
	PlayerName string                   // 名人堂中显示的名称
}

// withDefaults 补全缺省值
func (o Options) withDefaults() (Options, error) {
	if o.Seed == 0 {
		o.Seed = time.Now().UnixNano()
	}
	if o.Campaign == nil {
		campaign, err := config.LoadCampaign(config.CampaignPath)
		if err != nil {
			return o, fmt.Errorf("failed to load campaign: %w", err)
		}
		o.Campaign = campaign
	}
	if o.Stats == nil {
		stats, err := config.LoadAlienStats(config.AlienStatsPath)
		if err != nil {
			return o, fmt.Errorf("failed to load alien stats: %w", err)
		}
		o.Stats = stats
	}
	if o.HallOfFame == nil {
		o.HallOfFame = game.NewHallOfFame(nil)
	}
	o.PlayerName = game.SanitizeName(o.PlayerName)
	return o, nil
}
