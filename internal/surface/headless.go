package surface

import (
	"log/slog"
	"sync"
)

// Headless is a render-free Surface for the demo runner and host-less
// testing. It starts open and inactive, which is the ready-to-activate
// state the controller polls for.
type Headless struct {
	mu        sync.Mutex
	choices   []string
	open      bool
	active    bool
	highlight int32
}

// NewHeadless creates a headless surface in the ready state
func NewHeadless() *Headless {
	return &Headless{open: true}
}

// Ensure Headless implements Surface
var _ Surface = (*Headless)(nil)

// Show supplies the choice labels to render
func (h *Headless) Show(choices []string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.choices = append([]string(nil), choices...)
	h.highlight = 0
	slog.Info("surface showing choices", "choices", choices)
}

// Open makes the surface visible
func (h *Headless) Open() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.open = true
}

// Close dismisses the surface
func (h *Headless) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.open {
		slog.Info("surface closed")
	}
	h.open = false
	h.active = false
	h.choices = nil
}

// Activate enables player input on the surface
func (h *Headless) Activate() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.active = true
	slog.Info("surface awaiting input")
}

// Deactivate disables player input
func (h *Headless) Deactivate() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.active = false
}

// IsOpenAndInactive reports whether the surface is ready to activate
func (h *Headless) IsOpenAndInactive() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.open && !h.active
}

// IsActive reports whether the surface is capturing input
func (h *Headless) IsActive() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.active
}

// HighlightIndex returns the currently highlighted entry
func (h *Headless) HighlightIndex() int32 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.highlight
}

// SetHighlight moves the highlight
func (h *Headless) SetHighlight(index int32) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.highlight = index
}
