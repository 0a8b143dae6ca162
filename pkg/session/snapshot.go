package session

import (
	"slices"

	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/ecs"
	"github.com/decker502/invaders/pkg/game"
)

// SpriteView 渲染器需要的单个精灵信息
// X/Y 为精灵中心的世界坐标
type SpriteView struct {
	Entity   ecs.EntityID
	Name     string
	X, Y     float64
	Width    float64
	Height   float64
	Rotation float64
	FlipY    bool
	Layer    components.SpriteLayer
}

// Snapshot 某一步结束时的世界快照
// 前端只读快照，不直接访问实体管理器
type Snapshot struct {
	Phase            game.Phase
	PhaseTime        float64
	LoadWaveDuration float64

	Score         int
	HighScore     int
	Wave          int // 0-based
	TotalWaves    int
	WaveName      string
	WavesCleared  int
	ShipHealth    int
	ShipMaxHealth int
	AliensLeft    int

	PlayerName string
	LastRank   int // 本局名次，0 表示未上榜
	HallOfFame []game.HallOfFameEntry

	Sprites []SpriteView // 按图层、实体 ID 排序
}

// Snapshot 生成当前世界快照
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Phase:            s.phases.Current(),
		PhaseTime:        s.phaseTime,
		LoadWaveDuration: s.opts.Campaign.LoadWaveDuration,
		Score:            s.state.Score,
		HighScore:        max(s.state.HighScore, s.state.Score),
		Wave:             s.state.CurrentWave,
		TotalWaves:       s.state.TotalWaves,
		WavesCleared:     s.state.WavesCleared,
		ShipHealth:       s.state.ShipHealth,
		ShipMaxHealth:    config.ShipHealth,
		AliensLeft:       s.waveSpawner.AliensRemaining(),
		PlayerName:       s.opts.PlayerName,
		LastRank:         s.lastRank,
	}
	if wave, ok := s.opts.Campaign.Wave(s.state.CurrentWave); ok {
		snap.WaveName = wave.Name
	}
	if snap.Phase == game.PhaseVictory || snap.Phase == game.PhaseGameOver || snap.Phase == game.PhaseMenu {
		snap.HallOfFame = s.opts.HallOfFame.Entries()
	}

	ids := ecs.GetEntitiesWith2[*components.SpriteComponent, *components.PositionComponent](s.em)
	snap.Sprites = make([]SpriteView, 0, len(ids))
	for _, id := range ids {
		sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.em, id)
		if sprite.Hidden {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
		snap.Sprites = append(snap.Sprites, SpriteView{
			Entity:   id,
			Name:     sprite.Name,
			X:        pos.X,
			Y:        pos.Y,
			Width:    sprite.Width,
			Height:   sprite.Height,
			Rotation: sprite.Rotation,
			FlipY:    sprite.FlipY,
			Layer:    sprite.Layer,
		})
	}
	slices.SortStableFunc(snap.Sprites, func(a, b SpriteView) int {
		return int(a.Layer) - int(b.Layer)
	})
	return snap
}
