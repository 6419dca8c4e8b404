package forms

import "github.com/gogpu/forms/text"

// Label is a leaf component that displays text. It sizes to its content
// by default; content measurement is multi-line aware.
type Label struct {
	Base
	text  string
	color Color
	face  *text.Face
}

// NewLabel creates a Label with the given text, white, content-sized.
func NewLabel(s string) *Label {
	return &Label{
		Base:  NewBase(ContentSize()),
		text:  s,
		color: White,
	}
}

// SetText replaces the displayed text.
func (l *Label) SetText(s string) { l.text = s }

// Text returns the displayed text.
func (l *Label) Text() string { return l.text }

// SetTextColor sets the text color.
func (l *Label) SetTextColor(c Color) { l.color = c }

// TextColor returns the text color.
func (l *Label) TextColor() Color { return l.color }

// SetFace overrides the font face used for content measurement.
// With no override the process-shared default face is used, matching
// the face the reference renderer draws with.
func (l *Label) SetFace(f *text.Face) { l.face = f }

func (l *Label) measureFace() *text.Face {
	if l.face != nil {
		return l.face
	}
	return text.Default()
}

// ContentWidth measures the widest line of the text.
func (l *Label) ContentWidth(parentW, parentH int, correction float64) int {
	if l.text == "" {
		return 0
	}
	w, _ := text.Measure(l.text, l.measureFace())
	return w
}

// ContentHeight measures the line count times the line height.
func (l *Label) ContentHeight(parentW, parentH int, correction float64) int {
	if l.text == "" {
		return 0
	}
	_, h := text.Measure(l.text, l.measureFace())
	return h
}

// Draw renders the text top-left aligned in the content rectangle.
func (l *Label) Draw(ctx *Context, contentRect Rect) error {
	if l.text == "" {
		return nil
	}
	ctx.Renderer().DrawText(contentRect.X, contentRect.Y, l.text, l.color)
	return nil
}
