package forms

// Renderer is the host immediate-mode rendering surface that components
// draw into. forms consumes this interface; it never owns the window,
// the input system, or the swap chain behind it. The backend/software
// package provides a reference implementation for tests and headless
// use; real applications adapt their UI toolkit or draw-list API.
//
// All methods are called on the single thread driving the frame loop,
// strictly between BeginFrame and EndFrame.
type Renderer interface {
	// BeginFrame and EndFrame bracket one pass of the host render loop.
	BeginFrame()
	EndFrame()

	// PushID opens an identity scope keyed by a component's unique id,
	// preventing draw-state aliasing between sibling components drawn at
	// the same screen position across frames. Scopes nest; every PushID
	// is balanced by a PopID.
	PushID(id uint64)
	PopID()

	// StrokeRect draws a rectangle border with the given thickness.
	StrokeRect(r Rect, c Color, thickness int)

	// DrawText draws text with its top-left corner at (x, y).
	DrawText(x, y int, s string, c Color)

	// Hovered reports whether the pointer is inside the rectangle.
	Hovered(r Rect) bool

	// Active reports whether the pointer is inside the rectangle with
	// the primary button held.
	Active(r Rect) bool

	// DropPayloads returns and consumes the file paths of any pending
	// drag-drop payloads released inside the rectangle this frame.
	// Platform-specific payload decoding happens behind this call.
	DropPayloads(r Rect) []string
}
