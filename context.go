package forms

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

// ErrNoRenderer is returned by New when no renderer was configured.
var ErrNoRenderer = errors.New("forms: no renderer configured")

// approxComponentBytes is the coarse per-component footprint used for
// the memory estimate in Statistics. It covers Base plus typical
// concrete state; it is a diagnostic order-of-magnitude figure, not an
// accounting of real allocations.
const approxComponentBytes = 192

// Statistics is a snapshot of the context's component accounting.
type Statistics struct {
	// ActiveComponents is the number of distinct components updated
	// during the last completed frame.
	ActiveComponents int

	// TotalCreated is the number of components constructed since
	// process start.
	TotalCreated uint64

	// FrameComponents is the number of Update calls in the current (or
	// last, outside a bracket) frame.
	FrameComponents int

	// MemoryUsageBytes is a coarse estimate of the memory held by the
	// active components.
	MemoryUsageBytes uint64
}

// Context drives the per-frame update of a component tree and owns the
// frame-local diagnostics state: the active-id set, per-frame counters,
// and the debug toggles. It replaces what would otherwise be
// process-wide globals; create one per render loop.
//
// All frame operations are meant for the single thread running the host
// render loop. The context still guards its own state with a mutex so
// concurrent misuse degrades instead of corrupting the bookkeeping.
type Context struct {
	mu       sync.Mutex
	renderer Renderer

	debugBorders bool
	debugColor   Color

	closed  bool
	inFrame bool

	frameComponents int
	active          map[uint64]struct{} // ids updated this frame
	lastActive      map[uint64]struct{} // ids updated last completed frame
}

// New creates a Context. A renderer is required:
//
//	ctx, err := forms.New(forms.WithRenderer(r))
func New(opts ...Option) (*Context, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.renderer == nil {
		return nil, ErrNoRenderer
	}
	if o.logger != nil {
		SetLogger(o.logger)
	}

	return &Context{
		renderer:     o.renderer,
		debugBorders: o.debugBorders,
		debugColor:   o.debugColor,
		active:       make(map[uint64]struct{}),
		lastActive:   make(map[uint64]struct{}),
	}, nil
}

// Renderer returns the host rendering surface the context draws into.
func (c *Context) Renderer() Renderer {
	return c.renderer
}

// SetDebugBorders toggles drawing a border over every updated
// component's content rectangle.
func (c *Context) SetDebugBorders(v bool) {
	c.mu.Lock()
	c.debugBorders = v
	c.mu.Unlock()
}

// Close tears the context down. Frame and update calls on a closed
// context log a warning and do nothing.
func (c *Context) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	c.active = make(map[uint64]struct{})
	c.lastActive = make(map[uint64]struct{})
}

// usable reports whether the context can run frame operations. A zero
// Context (never built by New) has no renderer and degrades like a
// closed one. Callers hold c.mu.
func (c *Context) usable() bool {
	return !c.closed && c.renderer != nil
}

// BeginFrame starts a frame: frame-local diagnostics are reset and the
// renderer's frame bracket is opened.
func (c *Context) BeginFrame() {
	c.mu.Lock()
	if !c.usable() {
		c.mu.Unlock()
		logger().Warn("forms: BeginFrame on closed or uninitialized context")
		return
	}
	c.inFrame = true
	c.frameComponents = 0
	clear(c.active)
	c.mu.Unlock()

	c.renderer.BeginFrame()
}

// EndFrame completes a frame: the frame's active-id set becomes the
// last-completed-frame set and the renderer's bracket is closed.
func (c *Context) EndFrame() {
	c.mu.Lock()
	if !c.usable() {
		c.mu.Unlock()
		logger().Warn("forms: EndFrame on closed or uninitialized context")
		return
	}
	c.inFrame = false
	c.lastActive, c.active = c.active, c.lastActive
	clear(c.active)
	c.mu.Unlock()

	c.renderer.EndFrame()
}

// Update runs one component's per-frame update inside contentRect. It
// is the single entry point the owner (and containers) invoke, once per
// frame per component:
//
//  1. an invisible component skips everything, child traversal
//     included, and only has its tab-inactive flag cleared
//  2. the component is recorded in the frame's active-id set
//  3. an identity scope keyed by the component id is pushed on the
//     renderer for the duration of the update
//  4. style hooks bracket the Draw hook; a Draw error or panic is
//     logged with the component id and contained — the rest of the tree
//     still updates this frame
//  5. a debug border is drawn when enabled, drag-drop payloads are
//     dispatched when allowed, and the tab-inactive flag is cleared
//
// A disabled component keeps its place in the frame (scope, border,
// bookkeeping) but neither draws nor receives drops.
func (c *Context) Update(comp Component, contentRect Rect) {
	if comp == nil {
		return
	}

	c.mu.Lock()
	if !c.usable() {
		c.mu.Unlock()
		logger().Warn("forms: Update on closed or uninitialized context", "id", comp.ID())
		return
	}
	if !comp.Visible() {
		c.mu.Unlock()
		comp.resetTabInactive()
		return
	}
	if c.inFrame {
		c.frameComponents++
		c.active[comp.ID()] = struct{}{}
	} else {
		logger().Warn("forms: Update outside frame bracket", "id", comp.ID())
	}
	debugBorder := c.debugBorders
	debugColor := c.debugColor
	c.mu.Unlock()

	r := c.renderer
	r.PushID(comp.ID())
	defer r.PopID()

	if comp.Enabled() {
		comp.ApplyStyles(r)
		c.drawContained(comp, contentRect)
		comp.RemoveStyles(r)
	}

	if debugBorder || comp.ShowBorder() {
		r.StrokeRect(contentRect, debugColor, 1)
	}

	if comp.Enabled() && comp.AllowDragDrop() {
		if h := comp.dropHandler(); h != nil {
			if paths := r.DropPayloads(contentRect); len(paths) > 0 {
				events := make([]DragDropEvent, len(paths))
				for i, p := range paths {
					events[i] = DragDropEvent{Path: p}
				}
				h(comp, events)
			}
		}
	}

	comp.resetTabInactive()
}

// drawContained invokes the component's Draw hook with fault
// containment: a returned error or a panic is logged with the component
// id and swallowed, so the component simply renders nothing this frame.
func (c *Context) drawContained(comp Component, contentRect Rect) {
	defer func() {
		if rec := recover(); rec != nil {
			logger().Error("forms: component draw panicked",
				"id", comp.ID(), "panic", rec)
		}
	}()

	if err := comp.Draw(c, contentRect); err != nil {
		logger().Error("forms: component draw failed",
			"id", comp.ID(), "error", err)
	}
}

// Hovered reports whether the pointer is inside the rectangle.
func (c *Context) Hovered(r Rect) bool {
	return c.renderer.Hovered(r)
}

// Active reports whether the pointer is inside the rectangle with the
// primary button held.
func (c *Context) Active(r Rect) bool {
	return c.renderer.Active(r)
}

// Stats returns a snapshot of the component accounting.
func (c *Context) Stats() Statistics {
	c.mu.Lock()
	defer c.mu.Unlock()

	activeSet := c.lastActive
	if c.inFrame {
		activeSet = c.active
	}
	return Statistics{
		ActiveComponents: len(activeSet),
		TotalCreated:     TotalCreated(),
		FrameComponents:  c.frameComponents,
		MemoryUsageBytes: uint64(len(activeSet)) * approxComponentBytes,
	}
}

// DumpHierarchy renders the component tree under root as an indented
// textual outline, one component per line, for debugging.
func (c *Context) DumpHierarchy(root Component) string {
	var b strings.Builder
	dumpComponent(&b, root, 0)
	return b.String()
}

func dumpComponent(b *strings.Builder, comp Component, depth int) {
	if comp == nil {
		return
	}
	for i := 0; i < depth; i++ {
		b.WriteString("  ")
	}
	fmt.Fprintf(b, "%T#%d %s visible=%t enabled=%t\n",
		comp, comp.ID(), comp.SizeSpec(), comp.Visible(), comp.Enabled())

	if container, ok := comp.(Container); ok {
		dumpComponent(b, container.Child(), depth+1)
	}
}

// ValidateTree checks the tree under root for consistency against the
// last completed frame: every visible component reachable from root
// should appear in that frame's active-id set, and the ownership chain
// must not cycle. The returned error is a diagnostic signal; nothing is
// aborted by a failed validation.
func (c *Context) ValidateTree(root Component) error {
	c.mu.Lock()
	activeSet := make(map[uint64]struct{}, len(c.lastActive))
	for id := range c.lastActive {
		activeSet[id] = struct{}{}
	}
	c.mu.Unlock()

	seen := make(map[uint64]struct{})
	var stale []uint64

	comp := root
	visible := true
	for comp != nil {
		id := comp.ID()
		if _, ok := seen[id]; ok {
			return fmt.Errorf("forms: component tree cycle at id %d", id)
		}
		seen[id] = struct{}{}

		visible = visible && comp.Visible()
		if visible {
			if _, ok := activeSet[id]; !ok {
				stale = append(stale, id)
			}
		}

		container, ok := comp.(Container)
		if !ok {
			break
		}
		comp = container.Child()
	}

	if len(stale) > 0 {
		return fmt.Errorf("forms: components %v not in last frame's active set", stale)
	}
	return nil
}
