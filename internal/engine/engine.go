// Package engine composes the selection controller and the distance monitor
// into the single per-frame entry point a host tick loop drives.
package engine

import (
	"context"

	"github.com/KirkDiggler/scene-choice/internal/errors"
	"github.com/KirkDiggler/scene-choice/internal/monitors/distance"
	"github.com/KirkDiggler/scene-choice/internal/orchestrators/selection"
)

// Engine advances the choice machinery by one simulation step per call
type Engine interface {
	Tick(ctx context.Context) error
}

// Config holds the dependencies for the engine
type Config struct {
	Selection selection.Service
	Monitor   distance.Monitor
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Selection == nil {
		vb.RequiredField("Selection")
	}
	if c.Monitor == nil {
		vb.RequiredField("Monitor")
	}

	return vb.Build()
}

type engine struct {
	selection selection.Service
	monitor   distance.Monitor
}

// New creates a new engine with the provided dependencies
func New(cfg *Config) (Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &engine{
		selection: cfg.Selection,
		monitor:   cfg.Monitor,
	}, nil
}

// Tick runs the controller before the monitor: a pending forced selection
// drains first and suppresses distance evaluation for the tick.
func (e *engine) Tick(ctx context.Context) error {
	if _, err := e.selection.Tick(ctx, &selection.TickInput{}); err != nil {
		return errors.Wrap(err, "selection tick failed")
	}

	if err := e.monitor.Tick(ctx); err != nil {
		return errors.Wrap(err, "distance monitor tick failed")
	}

	return nil
}
