package text

import (
	"fmt"
	"os"
	"sync"

	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// FontSource represents a loaded font file. One FontSource can create
// multiple Face instances at different sizes; it is heavyweight and
// should be shared across the application.
type FontSource struct {
	data   []byte
	parsed *opentype.Font
}

// NewFontSource creates a FontSource from TTF or OTF data. The data
// slice is copied internally and can be reused after this call.
func NewFontSource(data []byte) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}

	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)
	return &FontSource{data: dataCopy, parsed: parsed}, nil
}

// NewFontSourceFromFile loads a font file from disk.
func NewFontSourceFromFile(path string) (*FontSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font file: %w", err)
	}
	return NewFontSource(data)
}

// Name returns the font family name, or "" when the font does not
// carry one.
func (s *FontSource) Name() string {
	if name, err := s.parsed.Name(nil, sfnt.NameIDFamily); err == nil {
		return name
	}
	return ""
}

// Data returns the raw font file bytes. Shaping-based measurers parse
// these with their own font stack.
func (s *FontSource) Data() []byte {
	return s.data
}

// Face creates a Face at the given size in points (at 72 DPI, points
// equal pixels).
func (s *FontSource) Face(points float64) (*Face, error) {
	xface, err := opentype.NewFace(s.parsed, &opentype.FaceOptions{
		Size:    points,
		DPI:     72,
		Hinting: 0,
	})
	if err != nil {
		return nil, fmt.Errorf("text: failed to create face: %w", err)
	}
	return &Face{source: s, size: points, xface: xface}, nil
}

// DefaultSize is the face size of the process-shared default font.
const DefaultSize = 13

var (
	defaultOnce sync.Once
	defaultFace *Face
)

// Default returns the process-shared default face (Go Regular at
// DefaultSize). Components fall back to it when no face was set; the
// reference software renderer draws with it. The embedded font always
// parses, so Default never returns nil.
func Default() *Face {
	defaultOnce.Do(func() {
		source, err := NewFontSource(goregular.TTF)
		if err != nil {
			return
		}
		defaultFace, _ = source.Face(DefaultSize)
	})
	return defaultFace
}
