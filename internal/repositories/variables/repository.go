// Package variables provides repository interface and types for the host's
// numeric variable store. Parallel scripts in the host read these slots, so
// every write the engine makes must be immediately visible through Get.
package variables

import (
	"context"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=variablesmock github.com/KirkDiggler/scene-choice/internal/repositories/variables Repository

// GetInput contains parameters for reading a variable slot
type GetInput struct {
	// Variable slot identifier, must be positive
	ID int32
}

// GetOutput contains the result of reading a variable slot
type GetOutput struct {
	// Current value; a slot that was never written reads as 0
	Value int32
}

// SetInput contains parameters for writing a variable slot
type SetInput struct {
	ID    int32
	Value int32
}

// SetOutput contains the result of writing a variable slot
type SetOutput struct{}

// Repository defines the interface for variable storage operations
type Repository interface {
	// Get reads the current value of a variable slot
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)

	// Set writes a variable slot
	Set(ctx context.Context, input *SetInput) (*SetOutput, error)
}
