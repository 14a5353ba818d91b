package ecs

import (
	"reflect"
	"testing"
)

func TestGenericAddAndGet(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	AddComponent(em, id, &testTransform{X: 1, Y: 2})

	pos, ok := GetComponent[*testTransform](em, id)
	if !ok {
		t.Fatal("Expected component to be found")
	}
	if pos.X != 1 || pos.Y != 2 {
		t.Errorf("Unexpected component value %+v", pos)
	}

	// generic and reflection APIs share one storage key
	if !em.HasComponent(id, reflect.TypeOf(&testTransform{})) {
		t.Error("Reflection lookup should see a component added generically")
	}

	if _, ok := GetComponent[*testHealth](em, id); ok {
		t.Error("Missing component should not be found")
	}
}

func TestGenericRemoveComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	AddComponent(em, id, &testHealth{Current: 3})

	if !HasComponent[*testHealth](em, id) {
		t.Fatal("Expected component after add")
	}
	RemoveComponent[*testHealth](em, id)
	if HasComponent[*testHealth](em, id) {
		t.Error("Expected component to be removed")
	}
}

func TestGenericQueries(t *testing.T) {
	em := NewEntityManager()

	a := em.CreateEntity()
	AddComponent(em, a, &testTransform{})
	AddComponent(em, a, &testHealth{})

	b := em.CreateEntity()
	AddComponent(em, b, &testTransform{})

	if got := GetEntitiesWith1[*testTransform](em); len(got) != 2 {
		t.Errorf("Expected 2 entities, got %v", got)
	}
	got := GetEntitiesWith2[*testTransform, *testHealth](em)
	if len(got) != 1 || got[0] != a {
		t.Errorf("Expected [%d], got %v", a, got)
	}
}

func TestGetComponentOnUnknownEntity(t *testing.T) {
	em := NewEntityManager()
	if _, ok := GetComponent[*testTransform](em, EntityID(42)); ok {
		t.Error("Unknown entity should yield no component")
	}
}
