// Package world exposes player and entity grid positions to the engine.
package world

import (
	"context"

	"github.com/KirkDiggler/scene-choice/internal/entities"
)

//go:generate mockgen -destination=mock/mock_provider.go -package=worldmock github.com/KirkDiggler/scene-choice/internal/world PositionProvider

// PositionProvider resolves grid positions for the player and for any
// entity addressable by ID. Implemented by the host's map scene; an
// in-memory implementation lives in this package for tests and the demo.
type PositionProvider interface {
	// PlayerPosition returns the player's current grid position
	PlayerPosition(ctx context.Context) (entities.Position, error)

	// EntityPosition returns the grid position of the entity with the
	// given ID, or a NotFound error if no such entity is on the map
	EntityPosition(ctx context.Context, entityID int32) (entities.Position, error)
}
