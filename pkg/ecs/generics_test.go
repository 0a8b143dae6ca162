package ecs

import "testing"

func TestGenericGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testPositionComponent{X: 3, Y: 4})

	pos, ok := GetComponent[*testPositionComponent](em, id)
	if !ok {
		t.Fatal("Expected position component")
	}
	if pos.X != 3 || pos.Y != 4 {
		t.Errorf("Expected (3, 4), got (%f, %f)", pos.X, pos.Y)
	}

	if _, ok := GetComponent[*testVelocityComponent](em, id); ok {
		t.Error("Velocity component should not be found")
	}
}

func TestGenericHasAndRemoveComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testVelocityComponent{VX: 1})

	if !HasComponent[*testVelocityComponent](em, id) {
		t.Fatal("Expected velocity component")
	}

	RemoveComponent[*testVelocityComponent](em, id)

	if HasComponent[*testVelocityComponent](em, id) {
		t.Error("Velocity component should be removed")
	}
}

func TestGenericQueries(t *testing.T) {
	em := NewEntityManager()

	both := em.CreateEntity()
	em.AddComponent(both, &testPositionComponent{})
	em.AddComponent(both, &testVelocityComponent{})

	onlyPos := em.CreateEntity()
	em.AddComponent(onlyPos, &testPositionComponent{})

	if got := GetEntitiesWith1[*testPositionComponent](em); len(got) != 2 {
		t.Errorf("Expected 2 entities with position, got %d", len(got))
	}

	got := GetEntitiesWith2[*testPositionComponent, *testVelocityComponent](em)
	if len(got) != 1 || got[0] != both {
		t.Errorf("Expected only entity %d, got %v", both, got)
	}
}

// BenchmarkGetEntitiesWith2 模拟碰撞系统每帧的查询开销（约 50 个外星人 + 100 颗子弹）
func BenchmarkGetEntitiesWith2(b *testing.B) {
	em := NewEntityManager()
	for i := 0; i < 150; i++ {
		id := em.CreateEntity()
		em.AddComponent(id, &testPositionComponent{X: float64(i)})
		if i%3 == 0 {
			em.AddComponent(id, &testVelocityComponent{VY: -350})
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = GetEntitiesWith2[*testPositionComponent, *testVelocityComponent](em)
	}
}
