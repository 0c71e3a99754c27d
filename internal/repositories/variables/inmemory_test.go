package variables_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/scene-choice/internal/errors"
	"github.com/KirkDiggler/scene-choice/internal/repositories/variables"
)

func TestInMemoryRepository(t *testing.T) {
	ctx := context.Background()
	repo := variables.NewInMemory()

	t.Run("unwritten slot reads zero", func(t *testing.T) {
		out, err := repo.Get(ctx, &variables.GetInput{ID: 1})
		require.NoError(t, err)
		assert.Equal(t, int32(0), out.Value)
	})

	t.Run("set then get round trip", func(t *testing.T) {
		_, err := repo.Set(ctx, &variables.SetInput{ID: 5, Value: -1})
		require.NoError(t, err)

		out, err := repo.Get(ctx, &variables.GetInput{ID: 5})
		require.NoError(t, err)
		assert.Equal(t, int32(-1), out.Value)
	})

	t.Run("non-positive ID rejected", func(t *testing.T) {
		_, err := repo.Set(ctx, &variables.SetInput{ID: 0, Value: 1})
		require.Error(t, err)
		assert.True(t, errors.IsInvalidArgument(err))
	})
}
