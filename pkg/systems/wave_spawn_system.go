package systems

import (
	"fmt"
	"log"
	"math"
	"math/rand"

	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/ecs"
	"github.com/decker502/invaders/pkg/entities"
	"github.com/decker502/invaders/pkg/game"
	"github.com/decker502/invaders/pkg/types"
	"github.com/decker502/invaders/pkg/utils"
)

// WaveSpawnSystem 根据波次布局生成外星人
//
// 每个外星人从场地上方的随机点出发，补间到自己的格子：
//   - 普通外星人时长为 load * min(1, r+0.25)，入场阶段结束前一定到位
//   - Rylo 时长为 load + config.RyloEntranceExtra，完成后接上跳跃补间
type WaveSpawnSystem struct {
	entityManager *ecs.EntityManager
	campaign      *config.CampaignConfig
	stats         *config.AlienStatsConfig
	rng           *rand.Rand
	events        *game.EventQueue
	bounds        utils.Bounds

	// 布局缓存，同一局内重复进入同一波次不再解析文件
	layouts map[string]*config.Layout
}

// NewWaveSpawnSystem 创建波次生成系统
func NewWaveSpawnSystem(em *ecs.EntityManager, campaign *config.CampaignConfig, stats *config.AlienStatsConfig, rng *rand.Rand, events *game.EventQueue) *WaveSpawnSystem {
	return &WaveSpawnSystem{
		entityManager: em,
		campaign:      campaign,
		stats:         stats,
		rng:           rng,
		events:        events,
		bounds:        config.PlayfieldBounds,
		layouts:       make(map[string]*config.Layout),
	}
}

// LoadWaveDuration 入场阶段时长（秒）
func (s *WaveSpawnSystem) LoadWaveDuration() float64 {
	return s.campaign.LoadWaveDuration
}

func (s *WaveSpawnSystem) layout(wave config.WaveConfig) (*config.Layout, error) {
	if l, ok := s.layouts[wave.Layout]; ok {
		return l, nil
	}
	l, err := config.LoadLayout(wave.Layout)
	if err != nil {
		return nil, err
	}
	s.layouts[wave.Layout] = l
	return l, nil
}

// SpawnWave 生成第 index 波的全部外星人，返回生成数量
func (s *WaveSpawnSystem) SpawnWave(index int) (int, error) {
	wave, ok := s.campaign.Wave(index)
	if !ok {
		return 0, fmt.Errorf("wave %d out of range [0, %d)", index, s.campaign.WaveCount())
	}
	layout, err := s.layout(wave)
	if err != nil {
		return 0, fmt.Errorf("failed to load wave %d (%s): %w", index, wave.Name, err)
	}

	load := s.campaign.LoadWaveDuration
	spawned := 0
	for _, cell := range layout.Cells() {
		stats, ok := s.stats.Get(cell.Kind)
		if !ok {
			return spawned, fmt.Errorf("wave %d: no stats for alien kind %s", index, cell.Kind)
		}

		homeX, homeY := config.CellPosition(cell.Row, cell.Col)
		spawn := entities.AlienSpawn{
			Kind:   cell.Kind,
			HomeX:  homeX,
			HomeY:  homeY,
			StartX: s.bounds.Left + s.rng.Float64()*s.bounds.Width(),
			StartY: s.bounds.Top - s.bounds.Height()/2 + s.rng.Float64()*s.bounds.Height(),
		}
		id, err := entities.NewAlien(s.entityManager, stats, spawn, s.rng)
		if err != nil {
			return spawned, fmt.Errorf("wave %d: %w", index, err)
		}

		duration, tag := load*math.Min(1, s.rng.Float64()+0.25), components.TweenTagNone
		if cell.Kind == types.AlienRylo {
			duration, tag = load+config.RyloEntranceExtra, components.TweenTagRyloHop
		}
		entities.AddPositionTween(s.entityManager, id, spawn.StartX, spawn.StartY, homeX, homeY, duration, tag)
		spawned++
	}

	if s.events != nil {
		s.events.Push(game.Event{Type: game.EventWaveStarted, Wave: index})
	}
	log.Printf("[WaveSpawnSystem] 波次 %d (%s) 生成 %d 个外星人", index, wave.Name, spawned)
	return spawned, nil
}

// AliensRemaining 返回存活外星人数量
func (s *WaveSpawnSystem) AliensRemaining() int {
	n := 0
	for _, id := range ecs.GetEntitiesWith1[*components.AlienComponent](s.entityManager) {
		if s.entityManager.IsAlive(id) {
			n++
		}
	}
	return n
}
