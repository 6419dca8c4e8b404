// Package forms provides an object-oriented component layer over
// immediate-mode rendering surfaces.
//
// # Overview
//
// forms gives retained-style components (panels, labels, containers) a
// WinForms-like sizing and layout model on top of a host renderer that is
// redrawn every frame. The host renderer is an external collaborator: forms
// consumes a small Renderer interface (identity scopes, a border primitive,
// text drawing, hover and drag-drop queries) and never owns a window or a
// GPU. A reference software renderer lives in backend/software.
//
// The heart of the package is the geometric layout engine:
//
//   - Rect: integer rectangle algebra (union, intersection, alignment,
//     subdivision, grids, distance, scaling, fitting)
//   - SizeValue/Size: the sizing model (fixed pixels, fraction of parent,
//     sized-to-content, fill-parent) and its resolution against a parent
//     extent
//   - Component: the tree node every visual element implements, updated
//     depth-first once per frame
//
// # Quick Start
//
//	r := software.New().NewRenderer(640, 480)
//	ctx, _ := forms.New(forms.WithRenderer(r))
//
//	label := forms.NewLabel("Hello, forms!")
//	panel := forms.NewPanel(label)
//
//	for running {
//	    ctx.BeginFrame()
//	    ctx.Update(panel, forms.R(0, 0, 640, 480))
//	    ctx.EndFrame()
//	}
//
// # Coordinate System
//
// Uses standard pixel-grid coordinates: origin (0,0) at top-left, X
// increases right, Y increases down. Point containment is closed on the
// low edge and open on the high edge.
//
// # Failure Model
//
// Geometry never returns errors: degenerate input (zero counts, zero ratio
// sums, out-of-range grid cells) yields empty results by contract. A panic
// inside a component's Draw is recovered at the Update boundary, logged
// with the component id, and does not abort the frame.
//
// # Concurrency
//
// The component tree is single-threaded and frame-cadenced: all
// measurement and drawing happen on the thread driving the render loop,
// inside one BeginFrame/EndFrame bracket. The Context serializes its own
// diagnostics state so misuse across goroutines degrades rather than
// corrupts.
package forms
