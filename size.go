package forms

import (
	"fmt"
	"math"
)

// SizeValue describes how one dimension of a component is computed: an
// absolute pixel count, a fraction of the parent's extent, sized to the
// component's own content, or filling the parent entirely.
//
// Absolute values are clamped to >= -1 at construction; -1 is the
// content-aligned sentinel. Relative fractions are clamped to [0, 1];
// 1.0 is the parent-aligned sentinel.
type SizeValue struct {
	value    float64
	relative bool
}

// Px returns an absolute SizeValue of the given pixel count.
// Values below -1 are clamped to -1.
func Px(pixels int) SizeValue {
	return SizeValue{value: float64(max(pixels, -1))}
}

// Fraction returns a relative SizeValue, clamped to [0, 1].
func Fraction(f float64) SizeValue {
	return SizeValue{value: math.Min(math.Max(f, 0), 1), relative: true}
}

// ContentValue returns the content-aligned sentinel: the dimension is
// computed from the component's own content, not from the parent.
func ContentValue() SizeValue {
	return SizeValue{value: -1}
}

// ParentValue returns the parent-aligned sentinel: the dimension fills
// 100% of the parent's available extent.
func ParentValue() SizeValue {
	return SizeValue{value: 1, relative: true}
}

// IsAbsolute reports whether the value is an absolute pixel count.
func (v SizeValue) IsAbsolute() bool { return !v.relative }

// IsRelative reports whether the value is a fraction of the parent.
func (v SizeValue) IsRelative() bool { return v.relative }

// IsContentAligned reports whether the value is the content sentinel.
func (v SizeValue) IsContentAligned() bool {
	return !v.relative && int(v.value) == -1
}

// IsParentAligned reports whether the value is the fill-parent sentinel.
func (v SizeValue) IsParentAligned() bool {
	return v.relative && int(v.value) == 1
}

// IsVisible reports whether the value resolves to a non-zero extent.
func (v SizeValue) IsVisible() bool { return v.value != 0 }

// Resolve maps the value plus a parent extent to a concrete pixel count.
//
//   - absolute (non-content): min(value, avail) — an absolute size never
//     exceeds what the parent offers
//   - relative (including parent-aligned): floor(value * avail * correction)
//
// correction lets a layout container shrink children proportionally when
// their relative sizes would otherwise overflow; pass 1.0 when unused.
//
// Content-aligned values are not resolved by this formula: callers must
// route them to the component's content measurement (WidthOf and
// HeightOf do). Resolve returns 0 for them.
func (v SizeValue) Resolve(avail int, correction float64) int {
	if v.relative {
		return int(math.Floor(v.value * float64(avail) * correction))
	}
	if v.IsContentAligned() {
		return 0
	}
	return min(int(v.value), avail)
}

// String returns a human-readable representation of the value.
func (v SizeValue) String() string {
	switch {
	case v.IsContentAligned():
		return "content"
	case v.IsParentAligned():
		return "parent"
	case v.relative:
		return fmt.Sprintf("%.0f%%", v.value*100)
	default:
		return fmt.Sprintf("%dpx", int(v.value))
	}
}

// Size is a pair of SizeValues describing both dimensions of a
// component.
type Size struct {
	Width  SizeValue
	Height SizeValue
}

// NewSize creates a Size from two SizeValues.
func NewSize(w, h SizeValue) Size {
	return Size{Width: w, Height: h}
}

// FixedSize creates a Size with absolute pixel dimensions.
func FixedSize(w, h int) Size {
	return Size{Width: Px(w), Height: Px(h)}
}

// FractionalSize creates a Size with relative dimensions.
func FractionalSize(fw, fh float64) Size {
	return Size{Width: Fraction(fw), Height: Fraction(fh)}
}

// ContentSize sizes both dimensions to the component's content.
func ContentSize() Size {
	return Size{Width: ContentValue(), Height: ContentValue()}
}

// ParentSize fills the parent on both dimensions.
func ParentSize() Size {
	return Size{Width: ParentValue(), Height: ParentValue()}
}

// WidthAlign fills the parent's width and sizes height to content.
func WidthAlign() Size {
	return Size{Width: ParentValue(), Height: ContentValue()}
}

// HeightAlign sizes width to content and fills the parent's height.
func HeightAlign() Size {
	return Size{Width: ContentValue(), Height: ParentValue()}
}

// IsContentAligned reports whether both dimensions are content-driven.
func (s Size) IsContentAligned() bool {
	return s.Width.IsContentAligned() && s.Height.IsContentAligned()
}

// IsParentAligned reports whether both dimensions fill the parent.
func (s Size) IsParentAligned() bool {
	return s.Width.IsParentAligned() && s.Height.IsParentAligned()
}

// IsVisible reports whether both dimensions resolve to non-zero extents.
func (s Size) IsVisible() bool {
	return s.Width.IsVisible() && s.Height.IsVisible()
}

// String returns a human-readable representation of the size.
func (s Size) String() string {
	return fmt.Sprintf("Size(%s, %s)", s.Width, s.Height)
}
