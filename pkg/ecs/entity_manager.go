package ecs

import (
	"reflect"
	"sort"
)

// EntityID is the unique identifier of an entity. Zero is never handed out.
type EntityID uint64

// EntityManager owns every entity and its components.
//
// Destruction is deferred: DestroyEntity only marks an entity, and the entity
// disappears from the store on the next RemoveMarkedEntities call. Marked
// entities are already excluded from queries, so a system running later in the
// same tick never sees them.
type EntityManager struct {
	nextID uint64
	// EntityID -> component type -> component instance
	components map[EntityID]map[reflect.Type]interface{}
	// entities marked for removal, in marking order
	entitiesToDestroy []EntityID
	pending           map[EntityID]struct{}
}

// NewEntityManager creates an empty EntityManager.
func NewEntityManager() *EntityManager {
	return &EntityManager{
		nextID:            1,
		components:        make(map[EntityID]map[reflect.Type]interface{}),
		entitiesToDestroy: make([]EntityID, 0),
		pending:           make(map[EntityID]struct{}),
	}
}

// CreateEntity allocates a new entity and returns its ID.
func (em *EntityManager) CreateEntity() EntityID {
	id := EntityID(em.nextID)
	em.nextID++
	em.components[id] = make(map[reflect.Type]interface{})
	return id
}

// DestroyEntity marks an entity for removal. It reports whether the call
// marked the entity; destroying an unknown, already removed or already marked
// entity is a no-op that returns false.
func (em *EntityManager) DestroyEntity(id EntityID) bool {
	if _, exists := em.components[id]; !exists {
		return false
	}
	if _, marked := em.pending[id]; marked {
		return false
	}
	em.pending[id] = struct{}{}
	em.entitiesToDestroy = append(em.entitiesToDestroy, id)
	return true
}

// IsAlive reports whether the entity exists and is not marked for removal.
func (em *EntityManager) IsAlive(id EntityID) bool {
	if _, exists := em.components[id]; !exists {
		return false
	}
	_, marked := em.pending[id]
	return !marked
}

// IsMarkedForDestroy reports whether the entity is waiting for RemoveMarkedEntities.
func (em *EntityManager) IsMarkedForDestroy(id EntityID) bool {
	_, marked := em.pending[id]
	return marked
}

// AddComponent attaches a component to an entity, replacing any component of
// the same type.
func (em *EntityManager) AddComponent(id EntityID, component interface{}) {
	componentType := reflect.TypeOf(component)
	if compMap, exists := em.components[id]; exists {
		compMap[componentType] = component
	}
}

// RemoveComponent detaches the component of the given type.
func (em *EntityManager) RemoveComponent(id EntityID, componentType reflect.Type) {
	if compMap, exists := em.components[id]; exists {
		delete(compMap, componentType)
	}
}

// GetComponent returns the entity's component of the given type.
func (em *EntityManager) GetComponent(id EntityID, componentType reflect.Type) (interface{}, bool) {
	if compMap, exists := em.components[id]; exists {
		if comp, found := compMap[componentType]; found {
			return comp, true
		}
	}
	return nil, false
}

// HasComponent reports whether the entity carries a component of the given type.
func (em *EntityManager) HasComponent(id EntityID, componentType reflect.Type) bool {
	if compMap, exists := em.components[id]; exists {
		_, found := compMap[componentType]
		return found
	}
	return false
}

// RemoveMarkedEntities deletes every marked entity and returns how many were removed.
func (em *EntityManager) RemoveMarkedEntities() int {
	removed := 0
	for _, id := range em.entitiesToDestroy {
		if _, exists := em.components[id]; exists {
			delete(em.components, id)
			removed++
		}
		delete(em.pending, id)
	}
	em.entitiesToDestroy = em.entitiesToDestroy[:0]
	return removed
}

// EntityCount returns the number of stored entities, including marked ones.
func (em *EntityManager) EntityCount() int {
	return len(em.components)
}

// GetEntitiesWith returns the alive entities that carry every listed component
// type, in ascending ID order.
func (em *EntityManager) GetEntitiesWith(componentTypes ...reflect.Type) []EntityID {
	result := make([]EntityID, 0)

	for id, compMap := range em.components {
		if _, marked := em.pending[id]; marked {
			continue
		}
		hasAll := true
		for _, ct := range componentTypes {
			if _, found := compMap[ct]; !found {
				hasAll = false
				break
			}
		}
		if hasAll {
			result = append(result, id)
		}
	}

	// map iteration is random; systems rely on a stable order
	sort.Slice(result, func(i, j int) bool { return result[i] < result[j] })
	return result
}
