package ecs

import (
	"errors"

	"github.com/milk9111/beamwalker/ecs/component"
)

var (
	ErrEntityNotAlive = errors.New("ecs: entity not alive")
	ErrNilComponent   = errors.New("ecs: component is nil")
)

// System updates a world each frame. dt is the elapsed time in seconds.
type System interface {
	Update(w *World, dt float64)
}

// World owns entities, component storage, and system order.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]*SparseSet
	systems  []System
	events   EventQueue
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]*SparseSet)}
}

// CreateEntity allocates a new entity.
func CreateEntity(w *World) Entity {
	return w.entities.create()
}

// DestroyEntity drops every component of e and invalidates the handle. It
// returns false if e was already dead.
func DestroyEntity(w *World, e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, store := range w.stores {
		store.Remove(e)
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether e is a live handle.
func IsAlive(w *World, e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// Entities returns every live entity.
func Entities(w *World) []Entity {
	if w == nil {
		return nil
	}
	return w.entities.all()
}

// AddSystem appends a system to the update order.
func (w *World) AddSystem(s System) {
	if w == nil || s == nil {
		return
	}
	w.systems = append(w.systems, s)
}

// Update runs all systems once, then drops undrained events.
func (w *World) Update(dt float64) {
	if w == nil {
		return
	}
	for _, s := range w.systems {
		s.Update(w, dt)
	}
	w.events.flush()
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

func (w *World) store(id component.ComponentID, create bool) *SparseSet {
	s, ok := w.stores[id]
	if !ok && create {
		if w.stores == nil {
			w.stores = make(map[component.ComponentID]*SparseSet)
		}
		s = &SparseSet{}
		w.stores[id] = s
	}
	return s
}

// AddComponent stores value under the given component id.
func (w *World) AddComponent(e Entity, id component.ComponentID, value any) error {
	if !IsAlive(w, e) {
		return ErrEntityNotAlive
	}
	if value == nil {
		return ErrNilComponent
	}
	w.store(id, true).Set(e, value)
	return nil
}

// GetComponent returns the value stored for e under id.
func (w *World) GetComponent(e Entity, id component.ComponentID) (any, bool) {
	if !IsAlive(w, e) {
		return nil, false
	}
	s := w.store(id, false)
	if !s.Has(e) {
		return nil, false
	}
	return s.Get(e), true
}

// HasComponent reports whether e has a value under id.
func (w *World) HasComponent(e Entity, id component.ComponentID) bool {
	if !IsAlive(w, e) {
		return false
	}
	return w.store(id, false).Has(e)
}

// RemoveComponent deletes the value stored for e under id.
func (w *World) RemoveComponent(e Entity, id component.ComponentID) bool {
	if !IsAlive(w, e) {
		return false
	}
	return w.store(id, false).Remove(e)
}
