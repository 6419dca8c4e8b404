package text

import (
	"golang.org/x/image/font"
)

// Face represents a font face at a specific size.
//
// Face wraps an x/image font.Face, which carries internal buffers: a
// Face must not be used from multiple goroutines at once. That matches
// the single render thread forms runs on.
type Face struct {
	source *FontSource
	size   float64
	xface  font.Face
}

// Source returns the FontSource this face was created from.
func (f *Face) Source() *FontSource { return f.source }

// Size returns the face size in points.
func (f *Face) Size() float64 { return f.size }

// Raw returns the underlying x/image font.Face, for callers that draw
// with a font.Drawer.
func (f *Face) Raw() font.Face { return f.xface }

// Metrics returns the face's vertical metrics in pixels.
func (f *Face) Metrics() Metrics {
	m := f.xface.Metrics()
	return Metrics{
		Ascent:  fixedToFloat(m.Ascent),
		Descent: fixedToFloat(m.Descent),
		LineGap: fixedToFloat(m.Height - m.Ascent - m.Descent),
	}
}

// Metrics holds a face's vertical metrics in pixels.
type Metrics struct {
	// Ascent is the distance from the baseline to the top of the font.
	Ascent float64

	// Descent is the distance from the baseline to the bottom of the
	// font, as a positive value.
	Descent float64

	// LineGap is the recommended extra gap between lines.
	LineGap float64
}

// LineHeight returns the recommended vertical distance between the
// baselines of consecutive lines.
func (m Metrics) LineHeight() float64 {
	return m.Ascent + m.Descent + m.LineGap
}
