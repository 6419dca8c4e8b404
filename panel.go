package forms

// Panel is a container holding at most one child component. It fills
// its parent by default and forwards its full content rectangle to the
// child every frame.
//
// The panel exclusively owns its child: SetContent replaces and
// releases the previous child, and marking the panel tab-inactive
// propagates to the child.
type Panel struct {
	Base
	child Component
}

// NewPanel creates a Panel owning the given child. child may be nil.
func NewPanel(child Component) *Panel {
	return &Panel{
		Base:  NewBase(ParentSize()),
		child: child,
	}
}

// SetContent replaces the panel's child. The previous child is
// released: the panel drops its only owning reference, so the old
// subtree can no longer be reached through this tree.
func (p *Panel) SetContent(child Component) {
	p.child = child
}

// Content returns the owned child, or nil.
func (p *Panel) Content() Component {
	return p.child
}

// Child implements Container.
func (p *Panel) Child() Component {
	return p.child
}

// SetTabInactive marks the panel and its child as tab-inactive.
func (p *Panel) SetTabInactive() {
	p.Base.SetTabInactive()
	if p.child != nil {
		p.child.SetTabInactive()
	}
}

// ContentWidth delegates content measurement to the child.
func (p *Panel) ContentWidth(parentW, parentH int, correction float64) int {
	if p.child == nil {
		return 0
	}
	return p.child.ContentWidth(parentW, parentH, correction)
}

// ContentHeight delegates content measurement to the child.
func (p *Panel) ContentHeight(parentW, parentH int, correction float64) int {
	if p.child == nil {
		return 0
	}
	return p.child.ContentHeight(parentW, parentH, correction)
}

// Draw forwards the content rectangle to the child through ctx.Update,
// so the child gets its own identity scope and fault containment.
func (p *Panel) Draw(ctx *Context, contentRect Rect) error {
	if p.child != nil {
		ctx.Update(p.child, contentRect)
	}
	return nil
}
