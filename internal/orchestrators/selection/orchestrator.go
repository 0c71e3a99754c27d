// Package selection implements the choice-session controller. It owns the
// single active session, routes the three resolution paths (player commit,
// forced selection, distance override), and performs the sentinel writes to
// the destination variable.
package selection

//go:generate mockgen -destination=mock/mock_service.go -package=selectionmock github.com/KirkDiggler/scene-choice/internal/orchestrators/selection Service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/scene-choice/internal/entities"
	"github.com/KirkDiggler/scene-choice/internal/errors"
	"github.com/KirkDiggler/scene-choice/internal/pkg/clock"
	"github.com/KirkDiggler/scene-choice/internal/pkg/idgen"
	"github.com/KirkDiggler/scene-choice/internal/repositories/variables"
	"github.com/KirkDiggler/scene-choice/internal/surface"
)

const (
	// UnresolvedSentinel is held by the destination variable while a
	// session is pending
	UnresolvedSentinel int32 = -1

	// IdleSentinel is the value the destination variable settles to after
	// the grace window
	IdleSentinel int32 = 0

	// ResetGraceDelay is how long a resolution result stays readable
	// before the destination variable resets to IdleSentinel. Parallel
	// scripts poll once per frame, so 100ms covers several frames.
	ResetGraceDelay = 100 * time.Millisecond

	// Event types published on the bus
	EventSessionStarted  = "scene_choice.session.started"
	EventSessionResolved = "scene_choice.session.resolved"
	EventSessionAborted  = "scene_choice.session.aborted"
)

// Resolution reasons carried on session events
const (
	reasonCommit   = "commit"
	reasonForced   = "forced"
	reasonOverride = "override"
)

// Service defines the interface for choice-session operations
type Service interface {
	// StartSession installs a new session; a silent no-op while one is active
	StartSession(ctx context.Context, input *StartSessionInput) (*StartSessionOutput, error)

	// CommitSelection resolves the session with the player's choice
	CommitSelection(ctx context.Context, input *CommitSelectionInput) (*CommitSelectionOutput, error)

	// ForceSelection marks an index to resolve with on the next tick,
	// bypassing player input
	ForceSelection(ctx context.Context, input *ForceSelectionInput) (*ForceSelectionOutput, error)

	// ResolveOverride resolves the session with its trigger result,
	// called by the distance monitor
	ResolveOverride(ctx context.Context, input *ResolveOverrideInput) (*ResolveOverrideOutput, error)

	// AbortSession tears down the active session without a result
	AbortSession(ctx context.Context, input *AbortSessionInput) (*AbortSessionOutput, error)

	// HandleCancel swallows cancel input from the surface; a session only
	// ends through a resolution path
	HandleCancel(ctx context.Context)

	// GetActiveSession returns a snapshot of the active session, or a
	// NotFound error when none is active
	GetActiveSession(ctx context.Context, input *GetActiveSessionInput) (*GetActiveSessionOutput, error)

	// Tick drains due variable resets, drains a pending forced selection,
	// and runs the one-shot surface activation
	Tick(ctx context.Context, input *TickInput) (*TickOutput, error)
}

// Config holds the dependencies for the selection orchestrator
type Config struct {
	Variables   variables.Repository
	Surface     surface.Surface
	Clock       clock.Clock
	IDGenerator idgen.Generator
	EventBus    events.EventBus
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Variables == nil {
		vb.RequiredField("Variables")
	}
	if c.Surface == nil {
		vb.RequiredField("Surface")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.EventBus == nil {
		vb.RequiredField("EventBus")
	}

	return vb.Build()
}

// pendingReset is a scheduled return of a destination variable to the idle
// sentinel, stamped with the session that scheduled it so a newer session on
// the same variable can supersede it.
type pendingReset struct {
	VariableID int32
	SessionID  string
	DueAt      time.Time
}

type orchestrator struct {
	variables variables.Repository
	surface   surface.Surface
	clock     clock.Clock
	idGen     idgen.Generator
	eventBus  events.EventBus

	// mu guards session and resets. The host model is a single tick loop,
	// but hosts driving input and ticks from separate goroutines must not
	// race on the session.
	mu      sync.Mutex
	session *entities.ChoiceSession
	resets  []pendingReset
}

// NewOrchestrator creates a new selection orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		variables: cfg.Variables,
		surface:   cfg.Surface,
		clock:     cfg.Clock,
		idGen:     cfg.IDGenerator,
		eventBus:  cfg.EventBus,
	}, nil
}

// StartSession installs a new session. While a session is active this is a
// silent no-op: first writer wins until resolution.
func (o *orchestrator) StartSession(ctx context.Context, input *StartSessionInput) (*StartSessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if len(input.Choices) == 0 {
		return nil, errors.InvalidArgument("choice list must not be empty")
	}
	if input.Trigger != nil && input.Trigger.Distance < 0 {
		return nil, errors.InvalidArgumentf("trigger distance must be non-negative, got %d", input.Trigger.Distance)
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if o.session != nil && o.session.Active {
		slog.Debug("choice session already active, ignoring start",
			"active_session_id", o.session.ID,
		)
		return &StartSessionOutput{Started: false}, nil
	}

	session := &entities.ChoiceSession{
		ID:         o.idGen.Generate(),
		Choices:    append([]string(nil), input.Choices...),
		VariableID: input.VariableID,
		Active:     true,
		StartedAt:  o.clock.Now(),
	}
	if input.Trigger != nil {
		trigger := *input.Trigger
		session.Trigger = &trigger
	}

	if session.VariableID > 0 {
		// A stale reset from a previous session on this variable must not
		// clobber the new session's writes
		o.supersedeResetsLocked(session.VariableID)

		if err := o.setVariableLocked(ctx, session.VariableID, UnresolvedSentinel); err != nil {
			return nil, errors.Wrap(err, "failed to write unresolved sentinel")
		}
	}

	o.session = session

	o.publish(ctx, EventSessionStarted, map[string]interface{}{
		"session_id":  session.ID,
		"variable_id": session.VariableID,
		"choices":     len(session.Choices),
		"has_trigger": session.Trigger != nil,
	})

	slog.Info("choice session started",
		"session_id", session.ID,
		"variable_id", session.VariableID,
		"choices", len(session.Choices),
		"has_trigger", session.Trigger != nil,
	)

	return &StartSessionOutput{
		Started: true,
		Session: session.Clone(),
	}, nil
}

// CommitSelection resolves the session with the player's confirmed index.
// The destination variable receives index+1; a 0-based index would collide
// with the idle sentinel.
func (o *orchestrator) CommitSelection(ctx context.Context, input *CommitSelectionInput) (*CommitSelectionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if o.session == nil || !o.session.Active {
		// Stale commit after another resolution path already fired
		return &CommitSelectionOutput{Resolved: false}, nil
	}

	result := input.Index + 1
	if err := o.resolveLocked(ctx, result, reasonCommit); err != nil {
		return nil, err
	}

	return &CommitSelectionOutput{Resolved: true, Result: result}, nil
}

// ForceSelection marks a pending forced index on the active session. It is
// drained on the next tick, before the player can see an awaiting-input
// state and before distance evaluation.
func (o *orchestrator) ForceSelection(ctx context.Context, input *ForceSelectionInput) (*ForceSelectionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if o.session == nil || !o.session.Active {
		return &ForceSelectionOutput{Accepted: false}, nil
	}

	forced := input.Index
	o.session.Forced = &forced

	slog.Info("forced selection pending",
		"session_id", o.session.ID,
		"index", forced,
	)

	return &ForceSelectionOutput{Accepted: true}, nil
}

// ResolveOverride resolves the session with its trigger result, written
// verbatim rather than through the index+1 display encoding.
func (o *orchestrator) ResolveOverride(ctx context.Context, input *ResolveOverrideInput) (*ResolveOverrideOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if o.session == nil || !o.session.Active || o.session.ID != input.SessionID {
		// The observed session resolved some other way first
		return &ResolveOverrideOutput{Resolved: false}, nil
	}
	if o.session.Trigger == nil {
		return &ResolveOverrideOutput{Resolved: false}, nil
	}

	result := o.session.Trigger.Result
	if err := o.resolveLocked(ctx, result, reasonOverride); err != nil {
		return nil, err
	}

	return &ResolveOverrideOutput{Resolved: true, Result: result}, nil
}

// AbortSession tears down the active session without a result. The
// destination variable goes straight to the idle sentinel: there is no
// result for a grace window to protect.
func (o *orchestrator) AbortSession(ctx context.Context, input *AbortSessionInput) (*AbortSessionOutput, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.session == nil || !o.session.Active {
		return &AbortSessionOutput{Aborted: false}, nil
	}

	session := o.session
	if session.VariableID > 0 {
		if err := o.setVariableLocked(ctx, session.VariableID, IdleSentinel); err != nil {
			return nil, errors.Wrap(err, "failed to reset variable on abort")
		}
	}

	o.surface.Deactivate()
	o.surface.Close()
	o.clearSessionLocked()

	o.publish(ctx, EventSessionAborted, map[string]interface{}{
		"session_id": session.ID,
	})

	slog.Info("choice session aborted", "session_id", session.ID)

	return &AbortSessionOutput{Aborted: true}, nil
}

// HandleCancel swallows cancel input. A pending choice cannot be withdrawn.
func (o *orchestrator) HandleCancel(ctx context.Context) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.session != nil && o.session.Active {
		slog.Debug("cancel input swallowed", "session_id", o.session.ID)
	}
}

// GetActiveSession returns a snapshot of the active session
func (o *orchestrator) GetActiveSession(ctx context.Context, input *GetActiveSessionInput) (*GetActiveSessionOutput, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.session == nil || !o.session.Active {
		return nil, errors.NotFound("no active choice session")
	}

	return &GetActiveSessionOutput{Session: o.session.Clone()}, nil
}

// Tick advances the controller by one simulation step. Order matters:
// due resets drain first, then a pending forced selection (which takes
// priority over surface activation and, at the engine level, over distance
// evaluation), then the one-shot activation sequence.
func (o *orchestrator) Tick(ctx context.Context, input *TickInput) (*TickOutput, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.drainResetsLocked(ctx)

	if o.session == nil || !o.session.Active {
		return &TickOutput{}, nil
	}

	if o.session.Forced != nil {
		index := *o.session.Forced
		o.session.Forced = nil
		o.surface.SetHighlight(index)

		result := index + 1
		if err := o.resolveLocked(ctx, result, reasonForced); err != nil {
			return nil, err
		}
		return &TickOutput{Resolved: true, Result: result}, nil
	}

	if o.surface.IsOpenAndInactive() {
		o.surface.Show(o.session.Choices)
		o.surface.Open()
		o.surface.Activate()
		return &TickOutput{Activated: true}, nil
	}

	return &TickOutput{}, nil
}

// resolveLocked performs the terminal write and teardown shared by all
// resolution paths. Callers hold the mutex and have checked the session is
// active.
func (o *orchestrator) resolveLocked(ctx context.Context, result int32, reason string) error {
	session := o.session

	if session.VariableID > 0 {
		if err := o.setVariableLocked(ctx, session.VariableID, result); err != nil {
			return errors.Wrap(err, "failed to write resolution result")
		}

		o.resets = append(o.resets, pendingReset{
			VariableID: session.VariableID,
			SessionID:  session.ID,
			DueAt:      o.clock.Now().Add(ResetGraceDelay),
		})
	}

	o.surface.Deactivate()
	o.surface.Close()
	o.clearSessionLocked()

	o.publish(ctx, EventSessionResolved, map[string]interface{}{
		"session_id":  session.ID,
		"variable_id": session.VariableID,
		"result":      result,
		"reason":      reason,
	})

	slog.Info("choice session resolved",
		"session_id", session.ID,
		"variable_id", session.VariableID,
		"result", result,
		"reason", reason,
	)

	return nil
}

// clearSessionLocked finalizes teardown exactly once per session
func (o *orchestrator) clearSessionLocked() {
	o.session.Active = false
	o.session.Trigger = nil
	o.session.Forced = nil
	o.session = nil
}

// drainResetsLocked applies due idle-sentinel resets
func (o *orchestrator) drainResetsLocked(ctx context.Context) {
	if len(o.resets) == 0 {
		return
	}

	now := o.clock.Now()
	remaining := o.resets[:0]
	for _, reset := range o.resets {
		if now.Before(reset.DueAt) {
			remaining = append(remaining, reset)
			continue
		}

		if err := o.setVariableLocked(ctx, reset.VariableID, IdleSentinel); err != nil {
			slog.Warn("failed to reset variable to idle sentinel",
				"variable_id", reset.VariableID,
				"session_id", reset.SessionID,
				"error", err,
			)
			remaining = append(remaining, reset)
		}
	}
	o.resets = remaining
}

// supersedeResetsLocked drops pending resets for a variable a new session
// is claiming
func (o *orchestrator) supersedeResetsLocked(variableID int32) {
	remaining := o.resets[:0]
	for _, reset := range o.resets {
		if reset.VariableID != variableID {
			remaining = append(remaining, reset)
		}
	}
	o.resets = remaining
}

func (o *orchestrator) setVariableLocked(ctx context.Context, id, value int32) error {
	_, err := o.variables.Set(ctx, &variables.SetInput{ID: id, Value: value})
	return err
}

// publish emits a session lifecycle event; bus failures are logged, never
// propagated into the tick loop
func (o *orchestrator) publish(ctx context.Context, eventType string, fields map[string]interface{}) {
	event := events.NewGameEvent(eventType, nil, nil)
	for key, value := range fields {
		event.Context().Set(key, value)
	}

	if err := o.eventBus.Publish(ctx, event); err != nil {
		slog.Warn("failed to publish session event",
			"event_type", eventType,
			"error", err,
		)
	}
}
