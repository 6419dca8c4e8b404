package forms

import "sync/atomic"

// componentIDs hands out process-unique component identifiers. Ids are
// monotonically increasing and never reclaimed or reused, even after a
// component is released — the diagnostics layer depends on that.
var componentIDs atomic.Uint64

// TotalCreated returns the number of components constructed since
// process start.
func TotalCreated() uint64 {
	return componentIDs.Load()
}

// DragDropEvent describes one payload dropped onto a component.
type DragDropEvent struct {
	Path string
}

// DragDropHandler receives drag-drop events dispatched during Update.
type DragDropHandler func(c Component, events []DragDropEvent)

// Component is the node type every visual element implements. Concrete
// components embed Base, which supplies identity, flags, the size
// specification, and default hook implementations; only Draw must be
// provided.
//
// A component owns at most one child (see Container); parent-child
// links are one-directional ownership with no back-reference.
type Component interface {
	// ID returns the component's process-unique identifier.
	ID() uint64

	Visible() bool
	SetVisible(bool)
	Enabled() bool
	SetEnabled(bool)

	// SizeSpec returns the component's size specification.
	SizeSpec() Size

	// ShowBorder reports whether a border is drawn over the component's
	// content rectangle each frame.
	ShowBorder() bool

	// AllowDragDrop reports whether the component accepts drop payloads.
	AllowDragDrop() bool

	// ContentWidth computes the content-driven width. It is consulted
	// only when the width specification is content-aligned. The default
	// (Base) implementation returns 0.
	ContentWidth(parentW, parentH int, correction float64) int

	// ContentHeight computes the content-driven height. It is consulted
	// only when the height specification is content-aligned.
	ContentHeight(parentW, parentH int, correction float64) int

	// ApplyStyles runs before Draw; RemoveStyles runs after, even when
	// Draw fails. The Base implementations do nothing.
	ApplyStyles(r Renderer)
	RemoveStyles(r Renderer)

	// Draw renders the component into contentRect. Containers forward
	// their child through ctx.Update so each child gets its own
	// identity scope and fault containment. A returned error (or a
	// panic) is logged at the Update boundary and never propagates.
	Draw(ctx *Context, contentRect Rect) error

	// TabInactive reports whether the component sits on an inactive tab
	// page. SetTabInactive marks it so; containers override it to
	// propagate the mark to their child. The flag is cleared by Update.
	TabInactive() bool
	SetTabInactive()

	dropHandler() DragDropHandler
	resetTabInactive()
}

// Container is implemented by components that own a single child.
// Diagnostics use it to walk trees without knowing concrete types.
type Container interface {
	Component

	// Child returns the owned child, or nil.
	Child() Component
}

// Base supplies the shared state and default hooks of a Component.
// Embed it in concrete components and override what differs:
//
//	type Badge struct {
//	    forms.Base
//	}
//
//	func NewBadge() *Badge {
//	    return &Badge{Base: forms.NewBase(forms.ContentSize())}
//	}
//
//	func (b *Badge) Draw(ctx *forms.Context, r forms.Rect) error { ... }
type Base struct {
	id          uint64
	size        Size
	visible     bool
	enabled     bool
	showBorder  bool
	dragDrop    bool
	tabInactive bool
	onDragDrop  DragDropHandler
}

// NewBase creates component base state with a fresh process-unique id.
// The component starts visible and enabled.
func NewBase(size Size) Base {
	return Base{
		id:      componentIDs.Add(1),
		size:    size,
		visible: true,
		enabled: true,
	}
}

// ID returns the component's process-unique identifier.
func (b *Base) ID() uint64 { return b.id }

// Visible reports whether the component takes part in the frame update.
func (b *Base) Visible() bool { return b.visible }

// SetVisible shows or hides the component. An invisible component skips
// the entire update, including child traversal.
func (b *Base) SetVisible(v bool) { b.visible = v }

// Enabled reports whether the component draws and accepts input.
func (b *Base) Enabled() bool { return b.enabled }

// SetEnabled enables or disables the component.
func (b *Base) SetEnabled(v bool) { b.enabled = v }

// SizeSpec returns the component's size specification.
func (b *Base) SizeSpec() Size { return b.size }

// SetSizeSpec replaces the component's size specification.
func (b *Base) SetSizeSpec(s Size) { b.size = s }

// ShowBorder reports whether a border is drawn over the content rect.
func (b *Base) ShowBorder() bool { return b.showBorder }

// SetShowBorder toggles the per-component border.
func (b *Base) SetShowBorder(v bool) { b.showBorder = v }

// AllowDragDrop reports whether the component accepts drop payloads.
func (b *Base) AllowDragDrop() bool { return b.dragDrop }

// SetAllowDragDrop toggles drag-drop detection for the component.
func (b *Base) SetAllowDragDrop(v bool) { b.dragDrop = v }

// OnDragDrop registers the handler invoked when payloads are dropped
// onto the component. Pass nil to unregister.
func (b *Base) OnDragDrop(h DragDropHandler) { b.onDragDrop = h }

// TabInactive reports whether the component is on an inactive tab page.
func (b *Base) TabInactive() bool { return b.tabInactive }

// SetTabInactive marks the component as being on an inactive tab page.
func (b *Base) SetTabInactive() { b.tabInactive = true }

// ContentWidth is the default content measurement: no content, 0 wide.
func (b *Base) ContentWidth(parentW, parentH int, correction float64) int { return 0 }

// ContentHeight is the default content measurement: no content, 0 tall.
func (b *Base) ContentHeight(parentW, parentH int, correction float64) int { return 0 }

// ApplyStyles is a no-op by default.
func (b *Base) ApplyStyles(r Renderer) {}

// RemoveStyles is a no-op by default.
func (b *Base) RemoveStyles(r Renderer) {}

func (b *Base) dropHandler() DragDropHandler { return b.onDragDrop }

func (b *Base) resetTabInactive() { b.tabInactive = false }

// WidthOf resolves a component's final width against the parent's
// extents. A content-aligned width specification delegates to the
// component's ContentWidth hook; anything else goes through
// SizeValue.Resolve. correction is the layout correction factor; pass
// 1.0 when unused.
func WidthOf(c Component, parentW, parentH int, correction float64) int {
	spec := c.SizeSpec()
	if spec.Width.IsContentAligned() {
		return c.ContentWidth(parentW, parentH, correction)
	}
	return spec.Width.Resolve(parentW, correction)
}

// HeightOf resolves a component's final height against the parent's
// extents. See WidthOf.
func HeightOf(c Component, parentW, parentH int, correction float64) int {
	spec := c.SizeSpec()
	if spec.Height.IsContentAligned() {
		return c.ContentHeight(parentW, parentH, correction)
	}
	return spec.Height.Resolve(parentH, correction)
}
