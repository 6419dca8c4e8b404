package text

import (
	"math"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Measurer computes the horizontal advance of a single line of text in
// pixels. Implementations must treat the input as one line; Measure
// handles line splitting.
type Measurer interface {
	Advance(line string, f *Face) float64
}

var (
	measurerMu     sync.RWMutex
	activeMeasurer Measurer = BuiltinMeasurer{}
)

// SetMeasurer replaces the package-wide advance measurer. Pass nil to
// restore the default BuiltinMeasurer.
func SetMeasurer(m Measurer) {
	measurerMu.Lock()
	defer measurerMu.Unlock()
	if m == nil {
		m = BuiltinMeasurer{}
	}
	activeMeasurer = m
}

func measurer() Measurer {
	measurerMu.RLock()
	defer measurerMu.RUnlock()
	return activeMeasurer
}

// BuiltinMeasurer computes advances with x/image/font glyph metrics.
// It applies no kerning or shaping; for most UI labels that is exact
// enough and very fast.
type BuiltinMeasurer struct{}

// Advance implements Measurer.
func (BuiltinMeasurer) Advance(line string, f *Face) float64 {
	return fixedToFloat(font.MeasureString(f.xface, line))
}

// Measure returns the pixel box of s rendered with the face: the width
// is the advance of the widest line, the height is the line count times
// the face's line height. Lines are split on '\n'; an empty string
// measures (0, 0).
func Measure(s string, f *Face) (w, h int) {
	if s == "" || f == nil {
		return 0, 0
	}

	m := measurer()
	lines := strings.Split(s, "\n")

	var widest float64
	for _, line := range lines {
		if adv := m.Advance(line, f); adv > widest {
			widest = adv
		}
	}

	lineHeight := f.Metrics().LineHeight()
	return int(math.Ceil(widest)), int(math.Ceil(lineHeight * float64(len(lines))))
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}

// floatToFixed converts a float64 to fixed.Int26_6.
func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}
