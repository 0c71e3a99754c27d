package selection

import (
	"github.com/KirkDiggler/scene-choice/internal/entities"
)

// StartSessionInput contains parameters for starting a choice session
type StartSessionInput struct {
	// Ordered display labels, must be non-empty
	Choices []string

	// Destination variable for the result; <= 0 requests no storage writes
	VariableID int32

	// Optional distance condition armed for the session's lifetime
	Trigger *entities.DistanceTrigger
}

// StartSessionOutput contains the result of starting a session
type StartSessionOutput struct {
	// False when a session was already active and the call was a no-op
	Started bool

	// Snapshot of the installed session, nil when Started is false
	Session *entities.ChoiceSession
}

// CommitSelectionInput contains the player's confirmed choice
type CommitSelectionInput struct {
	// 0-based position in the choice list
	Index int32
}

// CommitSelectionOutput contains the result of a commit
type CommitSelectionOutput struct {
	// False when no session was active (idempotent teardown)
	Resolved bool

	// Value written to the destination variable (index + 1)
	Result int32
}

// ForceSelectionInput marks a pending forced selection
type ForceSelectionInput struct {
	// 0-based index drained through the normal commit path. Treated as an
	// opaque result code; never bounds-checked against the choice list.
	Index int32
}

// ForceSelectionOutput contains the result of marking a forced selection
type ForceSelectionOutput struct {
	// False when no session was active
	Accepted bool
}

// ResolveOverrideInput resolves a session from the distance monitor
type ResolveOverrideInput struct {
	// Session the caller observed; a stale ID is a no-op
	SessionID string
}

// ResolveOverrideOutput contains the result of an override resolution
type ResolveOverrideOutput struct {
	// False when the session was already gone or carried no trigger
	Resolved bool

	// Trigger result written verbatim to the destination variable
	Result int32
}

// AbortSessionInput tears down the active session without a result
type AbortSessionInput struct{}

// AbortSessionOutput contains the result of an abort
type AbortSessionOutput struct {
	// False when no session was active
	Aborted bool
}

// GetActiveSessionInput requests a snapshot of the active session
type GetActiveSessionInput struct{}

// GetActiveSessionOutput contains a snapshot of the active session
type GetActiveSessionOutput struct {
	Session *entities.ChoiceSession
}

// TickInput advances the controller by one simulation step
type TickInput struct{}

// TickOutput reports what the tick did
type TickOutput struct {
	// True when a pending forced selection resolved the session this tick
	Resolved bool

	// Value written by the forced resolution, if any
	Result int32

	// True when the surface activation sequence ran this tick
	Activated bool
}
