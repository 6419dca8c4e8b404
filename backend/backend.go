package backend

import (
	"errors"

	"github.com/gogpu/forms"
)

// ErrBackendNotAvailable is returned when no requested backend is
// registered.
var ErrBackendNotAvailable = errors.New("backend: not available")

// Well-known backend names.
const (
	// Software is the reference CPU renderer in backend/software.
	Software = "software"
)

// Backend is a factory for host rendering surfaces. It abstracts where
// components end up being drawn, allowing the library to target
// different hosts (a software framebuffer, a UI toolkit's draw list)
// without the component layer knowing.
//
// Backends must be registered via Register and are selected via Get or
// Default.
type Backend interface {
	// Name returns the backend identifier (e.g. "software").
	Name() string

	// Init initializes the backend. Call it before creating renderers.
	Init() error

	// Close releases all backend resources. The backend must not be
	// used after Close.
	Close()

	// NewRenderer creates a rendering surface of the given pixel
	// dimensions for one frame loop.
	NewRenderer(width, height int) forms.Renderer
}
