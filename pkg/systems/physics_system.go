package systems

import (
	"log"

	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/ecs"
	"github.com/decker502/invaders/pkg/entities"
	"github.com/decker502/invaders/pkg/game"
	"github.com/decker502/invaders/pkg/types"
	"github.com/decker502/invaders/pkg/utils"
)

// PhysicsSystem 处理碰撞结算
//
// 每个逻辑步依次处理：
//   - 飞船子弹与外星人：一颗子弹最多击中一个外星人
//   - 外星人子弹与飞船
//   - 外星人与飞船接触、外星人越过底墙
//   - 完全离开场地的子弹
type PhysicsSystem struct {
	em     *ecs.EntityManager
	state  *game.GameState
	events *game.EventQueue
	bounds utils.Bounds
}

// NewPhysicsSystem 创建物理系统
//
// 参数:
//   - em: 实体管理器
//   - state: 得分写入的会话状态
//   - events: 事件队列，可以为 nil
func NewPhysicsSystem(em *ecs.EntityManager, state *game.GameState, events *game.EventQueue) *PhysicsSystem {
	return &PhysicsSystem{
		em:     em,
		state:  state,
		events: events,
		bounds: config.PlayfieldBounds,
	}
}

// rectOf 碰撞盒中心对齐实体位置
func rectOf(pos *components.PositionComponent, col *components.CollisionComponent) utils.Rect {
	return utils.Rect{CX: pos.X + col.OffsetX, CY: pos.Y + col.OffsetY, W: col.Width, H: col.Height}
}

// checkAABBCollision 严格 AABB 检测，边界刚好接触不算碰撞
func (ps *PhysicsSystem) checkAABBCollision(
	pos1 *components.PositionComponent, col1 *components.CollisionComponent,
	pos2 *components.PositionComponent, col2 *components.CollisionComponent) bool {
	return rectOf(pos1, col1).Overlaps(rectOf(pos2, col2))
}

type collider struct {
	id  ecs.EntityID
	pos *components.PositionComponent
	col *components.CollisionComponent
}

// bulletsOf 收集指定阵营、尚未被消耗的子弹
func (ps *PhysicsSystem) bulletsOf(owner types.BulletOwner) []collider {
	ids := ecs.GetEntitiesWith3[*components.BulletComponent, *components.PositionComponent, *components.CollisionComponent](ps.em)
	out := make([]collider, 0, len(ids))
	for _, id := range ids {
		if !ps.em.IsAlive(id) {
			continue
		}
		bullet, _ := ecs.GetComponent[*components.BulletComponent](ps.em, id)
		if bullet.Owner != owner {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](ps.em, id)
		col, _ := ecs.GetComponent[*components.CollisionComponent](ps.em, id)
		out = append(out, collider{id: id, pos: pos, col: col})
	}
	return out
}

// Update 结算本步所有碰撞
func (ps *PhysicsSystem) Update(deltaTime float64) {
	ps.resolveShipBullets()
	ps.resolveAlienBullets()
	ps.resolveAlienContact()
	ps.removeEscapedBullets()
}

// resolveShipBullets 对每个外星人，找到第一颗与之重叠的未消耗子弹
func (ps *PhysicsSystem) resolveShipBullets() {
	bullets := ps.bulletsOf(types.OwnerShip)
	if len(bullets) == 0 {
		return
	}
	consumed := make(map[ecs.EntityID]bool, len(bullets))

	aliens := ecs.GetEntitiesWith3[*components.AlienComponent, *components.PositionComponent, *components.CollisionComponent](ps.em)
	for _, alienID := range aliens {
		if !ps.em.IsAlive(alienID) {
			continue
		}
		alienPos, _ := ecs.GetComponent[*components.PositionComponent](ps.em, alienID)
		alienCol, _ := ecs.GetComponent[*components.CollisionComponent](ps.em, alienID)

		for _, b := range bullets {
			if consumed[b.id] || !ps.checkAABBCollision(alienPos, alienCol, b.pos, b.col) {
				continue
			}
			consumed[b.id] = true
			ps.em.DestroyEntity(b.id)
			ps.hitAlien(alienID, b)
			break
		}
	}
}

func (ps *PhysicsSystem) hitAlien(alienID ecs.EntityID, b collider) {
	alien, _ := ecs.GetComponent[*components.AlienComponent](ps.em, alienID)
	damage := 1
	if bullet, ok := ecs.GetComponent[*components.BulletComponent](ps.em, b.id); ok && bullet.Damage > 0 {
		damage = bullet.Damage
	}

	health, ok := ecs.GetComponent[*components.HealthComponent](ps.em, alienID)
	if ok {
		health.CurrentHealth -= damage
	}
	ps.push(game.Event{Type: game.EventAlienHit, X: b.pos.X, Y: b.pos.Y, Kind: alien.Kind})
	if ok && health.CurrentHealth > 0 {
		return
	}

	// 闪光等子实体由 HierarchySystem 随父实体删除
	ps.em.DestroyEntity(alienID)
	if _, err := entities.NewExplosion(ps.em, b.pos.X, b.pos.Y); err != nil {
		log.Printf("[PhysicsSystem] 创建爆炸失败: %v", err)
	}
	if ps.state != nil {
		ps.state.AddScore(alien.ScoreValue)
	}
	ps.push(game.Event{Type: game.EventAlienDestroyed, X: b.pos.X, Y: b.pos.Y, Kind: alien.Kind, Score: alien.ScoreValue})
}

// resolveAlienBullets 外星人子弹只伤害飞船
func (ps *PhysicsSystem) resolveAlienBullets() {
	shipID, ok := FindShip(ps.em)
	if !ok {
		return
	}
	shipPos, _ := ecs.GetComponent[*components.PositionComponent](ps.em, shipID)
	shipCol, ok := ecs.GetComponent[*components.CollisionComponent](ps.em, shipID)
	if !ok {
		return
	}

	for _, b := range ps.bulletsOf(types.OwnerAlien) {
		if !ps.checkAABBCollision(shipPos, shipCol, b.pos, b.col) {
			continue
		}
		ps.em.DestroyEntity(b.id)
		if ps.damageShip(shipID, 1) {
			return
		}
	}
}

// resolveAlienContact 外星人撞上飞船或越过底墙时飞船被摧毁
func (ps *PhysicsSystem) resolveAlienContact() {
	shipID, ok := FindShip(ps.em)
	if !ok {
		return
	}
	shipPos, _ := ecs.GetComponent[*components.PositionComponent](ps.em, shipID)
	shipCol, ok := ecs.GetComponent[*components.CollisionComponent](ps.em, shipID)
	if !ok {
		return
	}

	aliens := ecs.GetEntitiesWith3[*components.AlienComponent, *components.PositionComponent, *components.CollisionComponent](ps.em)
	for _, alienID := range aliens {
		if !ps.em.IsAlive(alienID) {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](ps.em, alienID)
		col, _ := ecs.GetComponent[*components.CollisionComponent](ps.em, alienID)
		if ps.checkAABBCollision(shipPos, shipCol, pos, col) || rectOf(pos, col).Bottom() > ps.bounds.Bottom {
			ps.destroyShip(shipID)
			return
		}
	}
}

// damageShip 扣除飞船生命值，返回飞船是否被摧毁
func (ps *PhysicsSystem) damageShip(shipID ecs.EntityID, damage int) bool {
	health, ok := ecs.GetComponent[*components.HealthComponent](ps.em, shipID)
	if !ok {
		ps.destroyShip(shipID)
		return true
	}
	health.CurrentHealth -= damage
	if ps.state != nil {
		ps.state.ShipHealth = max(health.CurrentHealth, 0)
	}
	pos, _ := ecs.GetComponent[*components.PositionComponent](ps.em, shipID)
	ps.push(game.Event{Type: game.EventShipHit, X: pos.X, Y: pos.Y})
	if health.CurrentHealth > 0 {
		return false
	}
	ps.destroyShip(shipID)
	return true
}

func (ps *PhysicsSystem) destroyShip(shipID ecs.EntityID) {
	pos, _ := ecs.GetComponent[*components.PositionComponent](ps.em, shipID)
	if health, ok := ecs.GetComponent[*components.HealthComponent](ps.em, shipID); ok {
		health.CurrentHealth = 0
	}
	if ps.state != nil {
		ps.state.ShipHealth = 0
	}
	ps.em.DestroyEntity(shipID)
	if _, err := entities.NewExplosion(ps.em, pos.X, pos.Y); err != nil {
		log.Printf("[PhysicsSystem] 创建爆炸失败: %v", err)
	}
	ps.push(game.Event{Type: game.EventShipDestroyed, X: pos.X, Y: pos.Y})
	log.Printf("[PhysicsSystem] 飞船被摧毁 (%.0f, %.0f)", pos.X, pos.Y)
}

// removeEscapedBullets 删除完全离开场地的子弹
func (ps *PhysicsSystem) removeEscapedBullets() {
	ids := ecs.GetEntitiesWith3[*components.BulletComponent, *components.PositionComponent, *components.CollisionComponent](ps.em)
	for _, id := range ids {
		pos, _ := ecs.GetComponent[*components.PositionComponent](ps.em, id)
		col, _ := ecs.GetComponent[*components.CollisionComponent](ps.em, id)
		if ps.bounds.Outside(rectOf(pos, col)) {
			ps.em.DestroyEntity(id)
		}
	}
}

func (ps *PhysicsSystem) push(e game.Event) {
	if ps.events != nil {
		ps.events.Push(e)
	}
}
