package text

import (
	"bytes"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
)

// HarfbuzzMeasurer computes advances by shaping the line with
// go-text/typesetting's HarfBuzz implementation. Unlike the builtin
// measurer it accounts for kerning pairs, ligature substitution, and
// complex-script reordering, so measured widths match what a shaping
// renderer would draw. Install it with:
//
//	text.SetMeasurer(text.NewHarfbuzzMeasurer())
//	defer text.SetMeasurer(nil)
//
// HarfbuzzMeasurer is safe for concurrent use: parsed font.Font objects
// are cached per FontSource (font.Font is read-only), while the
// non-concurrent-safe HarfbuzzShaper and font.Face instances are pooled
// or created per call.
type HarfbuzzMeasurer struct {
	shaperPool sync.Pool

	mu        sync.RWMutex
	fontCache map[*FontSource]*font.Font
}

// NewHarfbuzzMeasurer creates a HarfbuzzMeasurer.
func NewHarfbuzzMeasurer() *HarfbuzzMeasurer {
	return &HarfbuzzMeasurer{
		shaperPool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
		fontCache: make(map[*FontSource]*font.Font),
	}
}

// Advance implements Measurer.
func (m *HarfbuzzMeasurer) Advance(line string, f *Face) float64 {
	if line == "" || f == nil {
		return 0
	}

	goFont, err := m.getOrCreateFont(f.Source())
	if err != nil {
		// Unparseable by go-text; fall back to glyph metrics.
		return BuiltinMeasurer{}.Advance(line, f)
	}

	runes := []rune(line)
	dir := di.DirectionLTR
	if DetectDirection(line) == DirectionRTL {
		dir = di.DirectionRTL
	}

	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: dir,
		Face:      font.NewFace(goFont),
		Size:      floatToFixed(f.Size()),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	shaper := m.shaperPool.Get().(*shaping.HarfbuzzShaper)
	output := shaper.Shape(input)
	m.shaperPool.Put(shaper)

	var advance float64
	for _, g := range output.Glyphs {
		advance += fixedToFloat(g.Advance)
	}
	return advance
}

// getOrCreateFont returns the cached go-text font for the source,
// parsing and caching it on first use. font.Font is read-only and safe
// to share; font.Face is not cached because it is not.
func (m *HarfbuzzMeasurer) getOrCreateFont(source *FontSource) (*font.Font, error) {
	m.mu.RLock()
	if f, ok := m.fontCache[source]; ok {
		m.mu.RUnlock()
		return f, nil
	}
	m.mu.RUnlock()

	m.mu.Lock()
	defer m.mu.Unlock()
	if f, ok := m.fontCache[source]; ok {
		return f, nil
	}

	face, err := font.ParseTTF(bytes.NewReader(source.Data()))
	if err != nil {
		return nil, err
	}
	m.fontCache[source] = face.Font
	return face.Font, nil
}

// detectScript returns the script of the first non-space rune. A
// simple heuristic; mixed-script lines should be split by the caller.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		switch r {
		case ' ', '\t', '\r':
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
