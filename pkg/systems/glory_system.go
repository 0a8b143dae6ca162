package systems

import (
	"log"
	"math"
	"math/rand"

	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/ecs"
	"github.com/decker502/invaders/pkg/entities"
	"github.com/decker502/invaders/pkg/utils"
)

// GlorySystem 胜利画面的庆祝子弹
// 按住"沐浴荣光"键时，每步从底墙下方发射 0..19 颗向上飞的彩色子弹
type GlorySystem struct {
	entityManager *ecs.EntityManager
	rng           *rand.Rand
	bounds        utils.Bounds
}

// NewGlorySystem 创建庆祝子弹系统
func NewGlorySystem(em *ecs.EntityManager, rng *rand.Rand) *GlorySystem {
	return &GlorySystem{
		entityManager: em,
		rng:           rng,
		bounds:        config.PlayfieldBounds,
	}
}

// Update 发射本步的庆祝子弹，返回发射数量
func (s *GlorySystem) Update(deltaTime float64, bask bool) int {
	if !bask {
		return 0
	}
	count := int(config.GloryBulletMaxPerStep * s.rng.Float64())
	spawned := 0
	for i := 0; i < count; i++ {
		x := s.bounds.Left + s.bounds.Width()*s.rng.Float64()
		y := s.bounds.Bottom + config.GloryBulletStartDepth
		speed := math.Max(config.GloryBulletMinSpeed, s.bounds.Height()*(0.5+s.rng.Float64()))
		variant := int(s.rng.Float64() * config.GloryBulletVariants)

		if _, err := entities.NewGloryBullet(s.entityManager, x, y, speed, variant); err != nil {
			log.Printf("[GlorySystem] 创建庆祝子弹失败: %v", err)
			continue
		}
		spawned++
	}
	return spawned
}
