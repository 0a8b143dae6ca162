package systems

import "github.com/decker502/invaders/pkg/ecs"

// DestroyAll 标记删除所有拥有组件 T 的实体，返回标记数量
func DestroyAll[T any](em *ecs.EntityManager) int {
	n := 0
	for _, id := range ecs.GetEntitiesWith1[T](em) {
		if em.IsAlive(id) {
			em.DestroyEntity(id)
			n++
		}
	}
	return n
}
