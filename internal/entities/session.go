// Package entities defines the domain types for in-scene choice sessions.
package entities

import "time"

// Position is a tile coordinate on the scene map
type Position struct {
	X int32
	Y int32
}

// ManhattanDistance returns the tile distance |dx| + |dy| to another position
func (p Position) ManhattanDistance(other Position) int32 {
	dx := p.X - other.X
	if dx < 0 {
		dx = -dx
	}
	dy := p.Y - other.Y
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

// DistanceTrigger resolves a session automatically when a scene entity comes
// within Distance tiles of the player. Result is written to the session
// variable verbatim, without the one-based shift applied to player commits.
type DistanceTrigger struct {
	EntityID int32
	Distance int32
	Result   int32
}

// ChoiceSession is one in-scene selection from start to resolution. At most
// one session exists at a time.
type ChoiceSession struct {
	ID         string
	Choices    []string
	VariableID int32
	Active     bool
	Forced     *int32
	Trigger    *DistanceTrigger
	StartedAt  time.Time
}

// Clone returns a deep copy so callers cannot mutate controller state
func (s *ChoiceSession) Clone() *ChoiceSession {
	if s == nil {
		return nil
	}

	clone := *s
	clone.Choices = append([]string(nil), s.Choices...)
	if s.Forced != nil {
		forced := *s.Forced
		clone.Forced = &forced
	}
	if s.Trigger != nil {
		trigger := *s.Trigger
		clone.Trigger = &trigger
	}
	return &clone
}
