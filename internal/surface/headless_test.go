package surface_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/scene-choice/internal/surface"
)

func TestHeadless_Lifecycle(t *testing.T) {
	s := surface.NewHeadless()

	// Fresh surface is ready to activate
	assert.True(t, s.IsOpenAndInactive())
	assert.False(t, s.IsActive())

	s.Show([]string{"Yes", "No"})
	s.Open()
	s.Activate()
	assert.True(t, s.IsActive())
	assert.False(t, s.IsOpenAndInactive())

	s.SetHighlight(1)
	assert.Equal(t, int32(1), s.HighlightIndex())

	s.Deactivate()
	s.Close()
	assert.False(t, s.IsActive())
	assert.False(t, s.IsOpenAndInactive())
}

func TestHeadless_ShowResetsHighlight(t *testing.T) {
	s := surface.NewHeadless()
	s.SetHighlight(2)

	s.Show([]string{"A", "B", "C"})
	assert.Equal(t, int32(0), s.HighlightIndex())
}

func TestHeadless_CloseIsIdempotent(t *testing.T) {
	s := surface.NewHeadless()
	s.Close()
	s.Close()
	assert.False(t, s.IsOpenAndInactive())

	s.Open()
	assert.True(t, s.IsOpenAndInactive())
}
