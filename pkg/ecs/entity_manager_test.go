package ecs

import (
	"reflect"
	"testing"
)

type testTransform struct {
	X, Y float64
}

type testHealth struct {
	Current int
}

func TestCreateEntity(t *testing.T) {
	em := NewEntityManager()
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()

	if id1 == id2 {
		t.Error("Entity IDs should be unique")
	}
	if id1 != 1 {
		t.Errorf("First entity ID should be 1, got %d", id1)
	}
	if id2 != 2 {
		t.Errorf("Second entity ID should be 2, got %d", id2)
	}
}

func TestAddAndGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	em.AddComponent(id, &testTransform{X: 100, Y: 200})

	comp, found := em.GetComponent(id, reflect.TypeOf(&testTransform{}))
	if !found {
		t.Fatal("Component should be found")
	}
	got := comp.(*testTransform)
	if got.X != 100 || got.Y != 200 {
		t.Errorf("Component data mismatch, expected (100, 200), got (%f, %f)", got.X, got.Y)
	}
}

func TestDestroyEntityDeferred(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testTransform{})

	if !em.DestroyEntity(id) {
		t.Fatal("First DestroyEntity should mark the entity")
	}

	// still stored until the flush, but no longer alive
	if !em.HasComponent(id, reflect.TypeOf(&testTransform{})) {
		t.Error("Entity should still be stored before cleanup")
	}
	if em.IsAlive(id) {
		t.Error("Marked entity should not be alive")
	}
	if !em.IsMarkedForDestroy(id) {
		t.Error("Entity should be marked for destroy")
	}

	if removed := em.RemoveMarkedEntities(); removed != 1 {
		t.Errorf("Expected 1 removed entity, got %d", removed)
	}
	if em.HasComponent(id, reflect.TypeOf(&testTransform{})) {
		t.Error("Entity should be removed after cleanup")
	}
}

func TestDestroyEntityIdempotent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	em.DestroyEntity(id)
	if em.DestroyEntity(id) {
		t.Error("Second DestroyEntity on a marked entity should be a no-op")
	}
	if removed := em.RemoveMarkedEntities(); removed != 1 {
		t.Errorf("Expected exactly 1 removal, got %d", removed)
	}
	if em.DestroyEntity(id) {
		t.Error("DestroyEntity on a removed entity should be a no-op")
	}
	if removed := em.RemoveMarkedEntities(); removed != 0 {
		t.Errorf("Expected no removals, got %d", removed)
	}
	if em.DestroyEntity(EntityID(999)) {
		t.Error("DestroyEntity on an unknown entity should be a no-op")
	}
}

func TestGetEntitiesWith(t *testing.T) {
	em := NewEntityManager()

	id1 := em.CreateEntity()
	em.AddComponent(id1, &testTransform{})
	em.AddComponent(id1, &testHealth{})

	id2 := em.CreateEntity()
	em.AddComponent(id2, &testTransform{})

	id3 := em.CreateEntity()
	em.AddComponent(id3, &testHealth{})

	both := em.GetEntitiesWith(
		reflect.TypeOf(&testTransform{}),
		reflect.TypeOf(&testHealth{}),
	)
	if len(both) != 1 || both[0] != id1 {
		t.Errorf("Expected only id1, got %v", both)
	}

	withTransform := em.GetEntitiesWith(reflect.TypeOf(&testTransform{}))
	if len(withTransform) != 2 {
		t.Errorf("Expected 2 entities with transform, got %d", len(withTransform))
	}
}

func TestGetEntitiesWithOrderedAndSkipsMarked(t *testing.T) {
	em := NewEntityManager()
	ids := make([]EntityID, 0, 20)
	for i := 0; i < 20; i++ {
		id := em.CreateEntity()
		em.AddComponent(id, &testTransform{X: float64(i)})
		ids = append(ids, id)
	}
	em.DestroyEntity(ids[3])
	em.DestroyEntity(ids[10])

	got := em.GetEntitiesWith(reflect.TypeOf(&testTransform{}))
	if len(got) != 18 {
		t.Fatalf("Expected 18 alive entities, got %d", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i-1] >= got[i] {
			t.Fatalf("Query result not in ascending order: %v", got)
		}
	}
	for _, id := range got {
		if id == ids[3] || id == ids[10] {
			t.Errorf("Marked entity %d returned by query", id)
		}
	}
}

func TestEntityCount(t *testing.T) {
	em := NewEntityManager()
	a := em.CreateEntity()
	em.CreateEntity()
	em.DestroyEntity(a)

	if em.EntityCount() != 2 {
		t.Errorf("Expected 2 stored entities before flush, got %d", em.EntityCount())
	}
	em.RemoveMarkedEntities()
	if em.EntityCount() != 1 {
		t.Errorf("Expected 1 stored entity after flush, got %d", em.EntityCount())
	}
}
