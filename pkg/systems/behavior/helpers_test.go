package behavior

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/ecs"
	"github.com/decker502/invaders/pkg/embedded"
	"github.com/decker502/invaders/pkg/entities"
	"github.com/decker502/invaders/pkg/game"
	"github.com/decker502/invaders/pkg/types"
)

// init 函数在测试开始前切换到项目根目录，使 data/ 可以直接访问
func init() {
	dir, err := os.Getwd()
	if err != nil {
		return
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			os.Chdir(dir)
			return
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return
		}
		dir = parent
	}
}

type testWorld struct {
	em     *ecs.EntityManager
	stats  *config.AlienStatsConfig
	events *game.EventQueue
	system *BehaviorSystem
}

func newTestWorld(t *testing.T) *testWorld {
	t.Helper()
	embedded.Init(os.DirFS("."))
	t.Cleanup(func() { embedded.Init(nil) })

	stats, err := config.LoadAlienStats(config.AlienStatsPath)
	if err != nil {
		t.Fatalf("LoadAlienStats failed: %v", err)
	}
	em := ecs.NewEntityManager()
	events := game.NewEventQueue()
	return &testWorld{
		em:     em,
		stats:  stats,
		events: events,
		system: NewBehaviorSystem(em, stats, rand.New(rand.NewSource(1)), events),
	}
}

// spawnAlien 在格子中心生成已完成入场的外星人
func (w *testWorld) spawnAlien(t *testing.T, kind types.AlienKind, x, y float64) ecs.EntityID {
	t.Helper()
	stats, _ := w.stats.Get(kind)
	id, err := entities.NewAlien(w.em, stats, entities.AlienSpawn{Kind: kind, HomeX: x, HomeY: y, StartX: x, StartY: y}, rand.New(rand.NewSource(2)))
	if err != nil {
		t.Fatalf("NewAlien failed: %v", err)
	}
	alien, _ := ecs.GetComponent[*components.AlienComponent](w.em, id)
	alien.Entering = false
	w.setCooldown(id, false)
	return id
}

func (w *testWorld) setCooldown(id ecs.EntityID, finished bool) {
	cooldown, _ := ecs.GetComponent[*components.ShootingCooldownComponent](w.em, id)
	cooldown.Finished = finished
	cooldown.Elapsed = 0
	cooldown.Duration = 100
}

func (w *testWorld) alienBullets() []ecs.EntityID {
	return ecs.GetEntitiesWith1[*components.BulletComponent](w.em)
}
