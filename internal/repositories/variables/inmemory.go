package variables

import (
	"context"
	"sync"

	"github.com/KirkDiggler/scene-choice/internal/errors"
)

// InMemoryRepository implements Repository using in-memory storage
type InMemoryRepository struct {
	mu    sync.RWMutex
	store map[int32]int32
}

// NewInMemory creates a new in-memory repository
func NewInMemory() *InMemoryRepository {
	return &InMemoryRepository{
		store: make(map[int32]int32),
	}
}

// Ensure InMemoryRepository implements Repository
var _ Repository = (*InMemoryRepository)(nil)

// Get reads the current value of a variable slot
func (r *InMemoryRepository) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.ID <= 0 {
		return nil, errors.InvalidArgument(errVariableIDInvalid)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	// Missing slots read as zero, matching host semantics
	return &GetOutput{Value: r.store[input.ID]}, nil
}

// Set writes a variable slot
func (r *InMemoryRepository) Set(ctx context.Context, input *SetInput) (*SetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.ID <= 0 {
		return nil, errors.InvalidArgument(errVariableIDInvalid)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.store[input.ID] = input.Value
	return &SetOutput{}, nil
}
