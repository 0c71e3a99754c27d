// Package surface defines the presentation collaborator the engine drives.
// Rendering, layout, and input capture belong to the host; the engine only
// sequences activation and teardown through this interface.
package surface

//go:generate mockgen -destination=mock/mock_surface.go -package=surfacemock github.com/KirkDiggler/scene-choice/internal/surface Surface

// Surface is the host-rendered choice list. All methods must be idempotent:
// the engine may close an already-closed surface during forced teardown.
//
// The host reports player commits back to the controller by calling
// CommitSelection with HighlightIndex. Cancel input must never reach the
// controller as a teardown; route it to HandleCancel, which swallows it.
type Surface interface {
	// Show supplies the choice labels to render
	Show(choices []string)

	// Open makes the surface visible
	Open()

	// Close dismisses the surface
	Close()

	// Activate enables player input on the surface
	Activate()

	// Deactivate disables player input
	Deactivate()

	// IsOpenAndInactive reports whether the surface is visible but not yet
	// capturing input, i.e. ready for its one-shot activation sequence
	IsOpenAndInactive() bool

	// HighlightIndex returns the currently highlighted 0-based entry
	HighlightIndex() int32

	// SetHighlight moves the highlight, used when a forced selection is
	// drained through the surface
	SetHighlight(index int32)
}
