package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/scene-choice/internal/errors"
)

func TestWrapPreservesCode(t *testing.T) {
	base := errors.NotFound("entity 7 not in scene")
	wrapped := errors.Wrap(base, "distance check failed")

	assert.True(t, errors.IsNotFound(wrapped))
	assert.Equal(t, errors.CodeNotFound, errors.GetCode(wrapped))
	assert.Contains(t, wrapped.Error(), "distance check failed")
}

func TestWrapPlainErrorIsInternal(t *testing.T) {
	wrapped := errors.Wrap(fmt.Errorf("connection refused"), "failed to reach store")

	assert.Equal(t, errors.CodeInternal, errors.GetCode(wrapped))
	assert.False(t, errors.IsNotFound(wrapped))
}

func TestWrapNilReturnsNil(t *testing.T) {
	assert.Nil(t, errors.Wrap(nil, "ignored"))
}

func TestValidationBuilder(t *testing.T) {
	err := errors.NewValidationBuilder().
		RequiredField("variables").
		RequiredField("surface").
		Build()

	assert.True(t, errors.IsInvalidArgument(err))
	assert.Contains(t, err.Error(), "variables")
	assert.Contains(t, err.Error(), "surface")

	assert.NoError(t, errors.NewValidationBuilder().Build())
}

func TestWithMeta(t *testing.T) {
	err := errors.InvalidArgument("bad index").WithMeta("index", int32(5))

	assert.Equal(t, int32(5), err.Meta["index"])
}
