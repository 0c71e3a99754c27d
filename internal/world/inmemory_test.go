package world_test

import (
	"context"
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/scene-choice/internal/entities"
	"github.com/KirkDiggler/scene-choice/internal/errors"
	"github.com/KirkDiggler/scene-choice/internal/world"
)

func TestInMemoryWorld(t *testing.T) {
	ctx := context.Background()

	t.Run("tracks player and actor positions", func(t *testing.T) {
		w := world.NewInMemory()
		w.SetPlayerPosition(entities.Position{X: 3, Y: 4})
		w.PlaceActor(&world.Actor{ID: 2, Name: "guard", Pos: entities.Position{X: 1, Y: 1}})

		playerPos, err := w.PlayerPosition(ctx)
		require.NoError(t, err)
		assert.Equal(t, entities.Position{X: 3, Y: 4}, playerPos)

		guardPos, err := w.EntityPosition(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, entities.Position{X: 1, Y: 1}, guardPos)

		w.MoveActor(2, entities.Position{X: 2, Y: 3})
		guardPos, err = w.EntityPosition(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, entities.Position{X: 2, Y: 3}, guardPos)
	})

	t.Run("missing entity is not found", func(t *testing.T) {
		w := world.NewInMemory()

		_, err := w.EntityPosition(ctx, 7)
		require.Error(t, err)
		assert.True(t, errors.IsNotFound(err))
	})

	t.Run("removed actor is not found", func(t *testing.T) {
		w := world.NewInMemory()
		w.PlaceActor(&world.Actor{ID: 2, Pos: entities.Position{X: 0, Y: 0}})
		w.RemoveActor(2)

		_, err := w.EntityPosition(ctx, 2)
		assert.True(t, errors.IsNotFound(err))
	})
}

func TestActor_Entity(t *testing.T) {
	var actor core.Entity = &world.Actor{ID: 42, Name: "guard"}

	assert.Equal(t, "42", actor.GetID())
	assert.Equal(t, "actor", actor.GetType())
}
