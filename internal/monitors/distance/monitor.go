// Package distance implements the per-tick proximity check that can preempt
// a pending choice session.
package distance

//go:generate mockgen -destination=mock/mock_monitor.go -package=distancemock github.com/KirkDiggler/scene-choice/internal/monitors/distance Monitor

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/scene-choice/internal/errors"
	"github.com/KirkDiggler/scene-choice/internal/orchestrators/selection"
	"github.com/KirkDiggler/scene-choice/internal/world"
)

// Monitor evaluates an armed distance trigger once per world tick
type Monitor interface {
	// Tick checks the armed trigger, if any, and resolves the session
	// through the controller's override path on threshold breach
	Tick(ctx context.Context) error
}

// Config holds the dependencies for the distance monitor
type Config struct {
	Selection selection.Service
	World     world.PositionProvider
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Selection == nil {
		vb.RequiredField("Selection")
	}
	if c.World == nil {
		vb.RequiredField("World")
	}

	return vb.Build()
}

type monitor struct {
	selection selection.Service
	world     world.PositionProvider
}

// NewMonitor creates a new distance monitor with the provided dependencies
func NewMonitor(cfg *Config) (Monitor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &monitor{
		selection: cfg.Selection,
		world:     cfg.World,
	}, nil
}

// Tick evaluates the armed trigger. It runs whether or not the surface has
// finished opening: the trigger can fire before the player ever sees the
// choice list.
func (m *monitor) Tick(ctx context.Context) error {
	out, err := m.selection.GetActiveSession(ctx, &selection.GetActiveSessionInput{})
	if err != nil {
		if errors.IsNotFound(err) {
			return nil
		}
		return errors.Wrap(err, "failed to inspect active session")
	}

	session := out.Session
	if session.Trigger == nil {
		return nil
	}
	if session.Forced != nil {
		// A pending forced selection resolves first; skip evaluation this tick
		return nil
	}

	playerPos, err := m.world.PlayerPosition(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to resolve player position")
	}

	entityPos, err := m.world.EntityPosition(ctx, session.Trigger.EntityID)
	if err != nil {
		if errors.IsNotFound(err) {
			// Entity not on the map; the trigger stays armed for future ticks
			return nil
		}
		return errors.Wrap(err, "failed to resolve trigger entity position")
	}

	dist := playerPos.ManhattanDistance(entityPos)
	if dist > session.Trigger.Distance {
		return nil
	}

	resolveOut, err := m.selection.ResolveOverride(ctx, &selection.ResolveOverrideInput{
		SessionID: session.ID,
	})
	if err != nil {
		return errors.Wrap(err, "failed to resolve session from distance trigger")
	}

	if resolveOut.Resolved {
		slog.Info("distance trigger fired",
			"session_id", session.ID,
			"entity_id", session.Trigger.EntityID,
			"distance", dist,
			"threshold", session.Trigger.Distance,
			"result", resolveOut.Result,
		)
	}

	return nil
}
