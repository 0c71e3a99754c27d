package world

import (
	"context"
	"strconv"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/scene-choice/internal/entities"
	"github.com/KirkDiggler/scene-choice/internal/errors"
)

// Actor is a movable map entity tracked by the in-memory world
type Actor struct {
	ID   int32
	Name string
	Pos  entities.Position
}

// GetID returns the actor's ID for rpg-toolkit
func (a *Actor) GetID() string {
	return strconv.FormatInt(int64(a.ID), 10)
}

// GetType returns the entity type for rpg-toolkit
func (a *Actor) GetType() string {
	return "actor"
}

// Ensure Actor implements core.Entity
var _ core.Entity = (*Actor)(nil)

// InMemoryWorld implements PositionProvider with map-backed storage.
// Used by tests and the demo runner in place of a host map scene.
type InMemoryWorld struct {
	mu     sync.RWMutex
	player entities.Position
	actors map[int32]*Actor
}

// NewInMemory creates a new in-memory world
func NewInMemory() *InMemoryWorld {
	return &InMemoryWorld{
		actors: make(map[int32]*Actor),
	}
}

// Ensure InMemoryWorld implements PositionProvider
var _ PositionProvider = (*InMemoryWorld)(nil)

// SetPlayerPosition moves the player
func (w *InMemoryWorld) SetPlayerPosition(pos entities.Position) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.player = pos
}

// PlaceActor adds or replaces an actor on the map
func (w *InMemoryWorld) PlaceActor(actor *Actor) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.actors[actor.ID] = actor
}

// MoveActor repositions an existing actor; unknown IDs are ignored
func (w *InMemoryWorld) MoveActor(entityID int32, pos entities.Position) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if actor, ok := w.actors[entityID]; ok {
		actor.Pos = pos
	}
}

// RemoveActor takes an actor off the map
func (w *InMemoryWorld) RemoveActor(entityID int32) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.actors, entityID)
}

// PlayerPosition returns the player's current grid position
func (w *InMemoryWorld) PlayerPosition(ctx context.Context) (entities.Position, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.player, nil
}

// EntityPosition returns the grid position of the entity with the given ID
func (w *InMemoryWorld) EntityPosition(ctx context.Context, entityID int32) (entities.Position, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	actor, ok := w.actors[entityID]
	if !ok {
		return entities.Position{}, errors.NotFoundf("entity %d is not on the map", entityID)
	}
	return actor.Pos, nil
}
