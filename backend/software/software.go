// Package software provides the reference software backend: a
// forms.Renderer that draws into an in-memory image. It exists for
// tests, headless rendering, and as a template for adapting real
// hosts; importing it registers the "software" backend.
package software

import (
	"image"
	"image/draw"
	"image/png"
	"os"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/forms"
	"github.com/gogpu/forms/backend"
	"github.com/gogpu/forms/text"
)

func init() {
	backend.Register(backend.Software, func() backend.Backend {
		return New()
	})
}

// Backend is the software backend factory.
type Backend struct{}

// New creates the software backend.
func New() *Backend {
	return &Backend{}
}

// Name implements backend.Backend.
func (b *Backend) Name() string { return backend.Software }

// Init implements backend.Backend. The software backend needs no
// device setup.
func (b *Backend) Init() error { return nil }

// Close implements backend.Backend.
func (b *Backend) Close() {}

// NewRenderer implements backend.Backend.
func (b *Backend) NewRenderer(width, height int) forms.Renderer {
	return NewRenderer(width, height)
}

// drop is one injected drag-drop payload awaiting consumption.
type drop struct {
	at   forms.Point
	path string
}

// Renderer is a forms.Renderer drawing into an *image.RGBA. Pointer
// position and drop payloads are injected by the embedding application
// (or test) through SetPointer and QueueDrop.
type Renderer struct {
	img        *image.RGBA
	background forms.Color

	idStack []uint64

	pointer     forms.Point
	pointerIn   bool
	pointerDown bool

	drops []drop
}

// NewRenderer creates a software rendering surface of the given pixel
// dimensions.
func NewRenderer(width, height int) *Renderer {
	return &Renderer{
		img:        image.NewRGBA(image.Rect(0, 0, width, height)),
		background: forms.Black,
	}
}

// Image exposes the frame's pixels. Valid until the next BeginFrame.
func (r *Renderer) Image() *image.RGBA { return r.img }

// SetBackground sets the color the surface is cleared to each frame.
func (r *Renderer) SetBackground(c forms.Color) { r.background = c }

// SetPointer injects the pointer state for hover and active queries.
func (r *Renderer) SetPointer(p forms.Point, down bool) {
	r.pointer = p
	r.pointerIn = true
	r.pointerDown = down
}

// ClearPointer marks the pointer as outside the surface.
func (r *Renderer) ClearPointer() {
	r.pointerIn = false
	r.pointerDown = false
}

// QueueDrop injects a drag-drop payload released at p. It is consumed
// by the first DropPayloads query whose rectangle contains p.
func (r *Renderer) QueueDrop(p forms.Point, path string) {
	r.drops = append(r.drops, drop{at: p, path: path})
}

// SavePNG writes the current frame to a PNG file.
func (r *Renderer) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, r.img)
}

// BeginFrame implements forms.Renderer: the surface is cleared to the
// background color.
func (r *Renderer) BeginFrame() {
	draw.Draw(r.img, r.img.Bounds(), image.NewUniform(r.background.Std()), image.Point{}, draw.Src)
	r.idStack = r.idStack[:0]
}

// EndFrame implements forms.Renderer. Leftover drop payloads expire at
// frame end: a payload nobody accepted is gone, as on a real host.
func (r *Renderer) EndFrame() {
	r.drops = r.drops[:0]
}

// PushID implements forms.Renderer. The software surface has no draw
// state to disambiguate, so the scope is just a balanced stack.
func (r *Renderer) PushID(id uint64) {
	r.idStack = append(r.idStack, id)
}

// PopID implements forms.Renderer.
func (r *Renderer) PopID() {
	if n := len(r.idStack); n > 0 {
		r.idStack = r.idStack[:n-1]
	}
}

// ScopeDepth returns the current identity scope nesting depth.
func (r *Renderer) ScopeDepth() int { return len(r.idStack) }

// StrokeRect implements forms.Renderer.
func (r *Renderer) StrokeRect(rect forms.Rect, c forms.Color, thickness int) {
	if rect.IsEmpty() || thickness <= 0 {
		return
	}

	col := c.Std()
	for t := 0; t < thickness; t++ {
		edge := rect.Inflate(-t, -t)
		if edge.IsEmpty() {
			break
		}
		for x := edge.X; x < edge.Right(); x++ {
			r.img.Set(x, edge.Y, col)
			r.img.Set(x, edge.Bottom()-1, col)
		}
		for y := edge.Y; y < edge.Bottom(); y++ {
			r.img.Set(edge.X, y, col)
			r.img.Set(edge.Right()-1, y, col)
		}
	}
}

// DrawText implements forms.Renderer. Text is drawn with the
// process-shared default face, top-left anchored at (x, y), one line
// per '\n'.
func (r *Renderer) DrawText(x, y int, s string, c forms.Color) {
	face := text.Default()
	if face == nil || s == "" {
		return
	}

	metrics := face.Metrics()
	lineHeight := metrics.LineHeight()

	d := &font.Drawer{
		Dst:  r.img,
		Src:  image.NewUniform(c.Std()),
		Face: face.Raw(),
	}
	baseline := float64(y) + metrics.Ascent
	for _, line := range strings.Split(s, "\n") {
		d.Dot = fixed.Point26_6{
			X: fixed.I(x),
			Y: fixed.Int26_6(baseline * 64),
		}
		d.DrawString(line)
		baseline += lineHeight
	}
}

// Hovered implements forms.Renderer.
func (r *Renderer) Hovered(rect forms.Rect) bool {
	return r.pointerIn && rect.Contains(r.pointer)
}

// Active implements forms.Renderer.
func (r *Renderer) Active(rect forms.Rect) bool {
	return r.pointerDown && r.Hovered(rect)
}

// DropPayloads implements forms.Renderer: queued payloads inside rect
// are consumed and returned.
func (r *Renderer) DropPayloads(rect forms.Rect) []string {
	var paths []string
	kept := r.drops[:0]
	for _, d := range r.drops {
		if rect.Contains(d.at) {
			paths = append(paths, d.path)
		} else {
			kept = append(kept, d)
		}
	}
	r.drops = kept
	return paths
}
