package forms

import (
	"fmt"
	"math"
)

// Rect represents an axis-aligned rectangle with integer position and
// extent. Rect is an immutable value type: every operation returns a new
// Rect and never modifies the receiver.
//
// A Rect with W <= 0 or H <= 0 is empty. Empty rectangles are valid
// values, not an error state: they participate in Union and Intersection
// with defined semantics.
type Rect struct {
	X, Y int // origin (top-left)
	W, H int // extent
}

// R is a convenience function to create a Rect.
func R(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// FromTwoPoints returns the rectangle spanned by two opposite corners,
// in any order.
func FromTwoPoints(p, q Point) Rect {
	x := min(p.X, q.X)
	y := min(p.Y, q.Y)
	return Rect{X: x, Y: y, W: max(p.X, q.X) - x, H: max(p.Y, q.Y) - y}
}

// FromCenter returns a rectangle of the given extent centered on c.
func FromCenter(c Point, w, h int) Rect {
	return Rect{X: c.X - w/2, Y: c.Y - h/2, W: w, H: h}
}

// IsEmpty reports whether the rectangle has no area.
func (r Rect) IsEmpty() bool {
	return r.W <= 0 || r.H <= 0
}

// Left returns the X coordinate of the left edge.
func (r Rect) Left() int { return r.X }

// Top returns the Y coordinate of the top edge.
func (r Rect) Top() int { return r.Y }

// Right returns the X coordinate one past the right edge.
func (r Rect) Right() int { return r.X + r.W }

// Bottom returns the Y coordinate one past the bottom edge.
func (r Rect) Bottom() int { return r.Y + r.H }

// TopLeft returns the top-left corner.
func (r Rect) TopLeft() Point { return Point{X: r.X, Y: r.Y} }

// TopRight returns the top-right corner.
func (r Rect) TopRight() Point { return Point{X: r.Right(), Y: r.Y} }

// BottomLeft returns the bottom-left corner.
func (r Rect) BottomLeft() Point { return Point{X: r.X, Y: r.Bottom()} }

// BottomRight returns the bottom-right corner.
func (r Rect) BottomRight() Point { return Point{X: r.Right(), Y: r.Bottom()} }

// Center returns the center point, rounded toward the origin.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Area returns the rectangle's area. Empty rectangles have area 0.
func (r Rect) Area() int {
	if r.IsEmpty() {
		return 0
	}
	return r.W * r.H
}

// Perimeter returns the rectangle's perimeter.
func (r Rect) Perimeter() int {
	return 2 * (r.W + r.H)
}

// AspectRatio returns width/height, or 0 when the height is zero.
func (r Rect) AspectRatio() float64 {
	if r.H == 0 {
		return 0
	}
	return float64(r.W) / float64(r.H)
}

// Contains reports whether the point lies inside the rectangle.
// Containment is closed on the low edge and open on the high edge
// (X <= p.X < X+W), matching pixel-grid semantics.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// ContainsRect reports whether o lies entirely within r. All four edges
// of o must be within r, closed on both ends.
func (r Rect) ContainsRect(o Rect) bool {
	return o.X >= r.X && o.Y >= r.Y && o.Right() <= r.Right() && o.Bottom() <= r.Bottom()
}

// Intersects reports whether the two rectangles overlap with positive
// area. Edge-touching rectangles do not intersect.
func (r Rect) Intersects(o Rect) bool {
	return !r.Intersection(o).IsEmpty()
}

// Intersection returns the overlapping region of two rectangles, or the
// zero Rect when they do not overlap. The overlap test is exclusive at
// the boundary, so edge-touching rectangles intersect to empty.
func (r Rect) Intersection(o Rect) Rect {
	left := max(r.X, o.X)
	top := max(r.Y, o.Y)
	right := min(r.Right(), o.Right())
	bottom := min(r.Bottom(), o.Bottom())

	if left < right && top < bottom {
		return Rect{X: left, Y: top, W: right - left, H: bottom - top}
	}
	return Rect{}
}

// Union returns the smallest rectangle covering both operands. An empty
// operand is the identity: the other operand is returned unchanged.
func (r Rect) Union(o Rect) Rect {
	if r.IsEmpty() {
		return o
	}
	if o.IsEmpty() {
		return r
	}

	x := min(r.X, o.X)
	y := min(r.Y, o.Y)
	return Rect{
		X: x,
		Y: y,
		W: max(r.Right(), o.Right()) - x,
		H: max(r.Bottom(), o.Bottom()) - y,
	}
}

// Offset returns the rectangle translated by (dx, dy).
func (r Rect) Offset(dx, dy int) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// Resize returns the rectangle with a new extent at the same origin.
func (r Rect) Resize(w, h int) Rect {
	return Rect{X: r.X, Y: r.Y, W: w, H: h}
}

// Inflate grows the rectangle by dx on the left and right and dy on the
// top and bottom. Negative values shrink it.
func (r Rect) Inflate(dx, dy int) Rect {
	return Rect{X: r.X - dx, Y: r.Y - dy, W: r.W + 2*dx, H: r.H + 2*dy}
}

// DistanceToPoint returns the Euclidean distance from the rectangle's
// boundary to the point, or 0 when the point is inside.
func (r Rect) DistanceToPoint(p Point) float64 {
	dx := math.Max(0, math.Max(float64(r.X-p.X), float64(p.X-r.Right())))
	dy := math.Max(0, math.Max(float64(r.Y-p.Y), float64(p.Y-r.Bottom())))
	return math.Sqrt(dx*dx + dy*dy)
}

// DistanceTo returns the Euclidean distance between the nearest
// boundaries of two rectangles, or 0 when they overlap.
func (r Rect) DistanceTo(o Rect) float64 {
	if !r.Intersection(o).IsEmpty() {
		return 0
	}

	dx := math.Max(0, math.Max(float64(r.X-o.Right()), float64(o.X-r.Right())))
	dy := math.Max(0, math.Max(float64(r.Y-o.Bottom()), float64(o.Y-r.Bottom())))
	return math.Sqrt(dx*dx + dy*dy)
}

// AlignLeft repositions the rectangle against the container's left edge
// with a pixel margin. Size is never altered by alignment, only position.
func (r Rect) AlignLeft(container Rect, margin int) Rect {
	return Rect{X: container.X + margin, Y: r.Y, W: r.W, H: r.H}
}

// AlignRight repositions the rectangle against the container's right
// edge with a pixel margin.
func (r Rect) AlignRight(container Rect, margin int) Rect {
	return Rect{X: container.Right() - r.W - margin, Y: r.Y, W: r.W, H: r.H}
}

// AlignTop repositions the rectangle against the container's top edge
// with a pixel margin.
func (r Rect) AlignTop(container Rect, margin int) Rect {
	return Rect{X: r.X, Y: container.Y + margin, W: r.W, H: r.H}
}

// AlignBottom repositions the rectangle against the container's bottom
// edge with a pixel margin.
func (r Rect) AlignBottom(container Rect, margin int) Rect {
	return Rect{X: r.X, Y: container.Bottom() - r.H - margin, W: r.W, H: r.H}
}

// AlignCenterH centers the rectangle horizontally in the container.
func (r Rect) AlignCenterH(container Rect) Rect {
	return Rect{X: container.X + (container.W-r.W)/2, Y: r.Y, W: r.W, H: r.H}
}

// AlignCenterV centers the rectangle vertically in the container.
func (r Rect) AlignCenterV(container Rect) Rect {
	return Rect{X: r.X, Y: container.Y + (container.H-r.H)/2, W: r.W, H: r.H}
}

// CenterIn centers the rectangle in the container on both axes.
func (r Rect) CenterIn(container Rect) Rect {
	return Rect{
		X: container.X + (container.W-r.W)/2,
		Y: container.Y + (container.H-r.H)/2,
		W: r.W,
		H: r.H,
	}
}

// ClampTo translates the rectangle so its origin stays within
// [bounds.origin, bounds.farCorner - size]. The clamp is saturating and
// never resizes: a rectangle larger than the bounds snaps to the bounds
// origin and still exceeds them on that axis. ClampTo is idempotent.
func (r Rect) ClampTo(bounds Rect) Rect {
	return Rect{
		X: clampSat(r.X, bounds.X, bounds.Right()-r.W),
		Y: clampSat(r.Y, bounds.Y, bounds.Bottom()-r.H),
		W: r.W,
		H: r.H,
	}
}

// clampSat clamps v to [lo, hi] with lo winning when hi < lo.
func clampSat(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

// Scale scales the rectangle by independent factors about an explicit
// origin point. Coordinates are rounded to the nearest pixel.
func (r Rect) Scale(fx, fy float64, origin Point) Rect {
	x := float64(origin.X) + (float64(r.X)-float64(origin.X))*fx
	y := float64(origin.Y) + (float64(r.Y)-float64(origin.Y))*fy
	return Rect{
		X: int(math.Round(x)),
		Y: int(math.Round(y)),
		W: int(math.Round(float64(r.W) * fx)),
		H: int(math.Round(float64(r.H) * fy)),
	}
}

// ScaleUniform scales the rectangle uniformly about its own center.
func (r Rect) ScaleUniform(f float64) Rect {
	return r.Scale(f, f, r.Center())
}

// Rotate90 swaps width and height without moving the origin. This is not
// a geometric rotation: the result is not recentered around any rotation
// axis. It exists for layout orientation flips.
func (r Rect) Rotate90() Rect {
	return Rect{X: r.X, Y: r.Y, W: r.H, H: r.W}
}

// FitInside fits the rectangle into a container. When maintainAspect is
// false the container itself is returned (the content stretches). When
// true, the rectangle is scaled uniformly to the largest size that fits
// while preserving its aspect ratio, then centered in the container.
// An empty receiver or container yields the zero Rect.
func (r Rect) FitInside(container Rect, maintainAspect bool) Rect {
	if !maintainAspect {
		return container
	}
	if r.IsEmpty() || container.IsEmpty() {
		return Rect{}
	}

	scale := math.Min(
		float64(container.W)/float64(r.W),
		float64(container.H)/float64(r.H),
	)
	w := int(math.Round(float64(r.W) * scale))
	h := int(math.Round(float64(r.H) * scale))
	return FromCenter(container.Center(), w, h)
}

// SubdivideHorizontal partitions the rectangle into len(ratios) adjacent
// sections with widths proportional to the normalized ratios. Negative
// ratios count as zero. A nil slice or a ratio sum of zero yields nil.
// The last section absorbs the integer rounding remainder so the slices
// tile the source exactly with no gap or overlap.
func (r Rect) SubdivideHorizontal(ratios []float64) []Rect {
	sum := ratioSum(ratios)
	if sum <= 0 {
		return nil
	}

	out := make([]Rect, len(ratios))
	x := r.X
	for i, ratio := range ratios {
		var w int
		if i == len(ratios)-1 {
			w = r.Right() - x
		} else {
			w = int(float64(r.W) * math.Max(ratio, 0) / sum)
		}
		out[i] = Rect{X: x, Y: r.Y, W: w, H: r.H}
		x += w
	}
	return out
}

// SubdivideVertical partitions the rectangle into len(ratios) adjacent
// sections with heights proportional to the normalized ratios. See
// SubdivideHorizontal for the rounding and degenerate-input contract.
func (r Rect) SubdivideVertical(ratios []float64) []Rect {
	sum := ratioSum(ratios)
	if sum <= 0 {
		return nil
	}

	out := make([]Rect, len(ratios))
	y := r.Y
	for i, ratio := range ratios {
		var h int
		if i == len(ratios)-1 {
			h = r.Bottom() - y
		} else {
			h = int(float64(r.H) * math.Max(ratio, 0) / sum)
		}
		out[i] = Rect{X: r.X, Y: y, W: r.W, H: h}
		y += h
	}
	return out
}

func ratioSum(ratios []float64) float64 {
	var sum float64
	for _, ratio := range ratios {
		if ratio > 0 {
			sum += ratio
		}
	}
	return sum
}

// GridCell returns one cell of a uniform rows x cols grid laid over the
// rectangle, with spacing pixels between adjacent cells. Out-of-range
// row/col or non-positive rows/cols yields the zero Rect.
func (r Rect) GridCell(row, col, rows, cols, spacing int) Rect {
	if rows <= 0 || cols <= 0 || row < 0 || col < 0 || row >= rows || col >= cols {
		return Rect{}
	}

	cellW := (r.W - (cols-1)*spacing) / cols
	cellH := (r.H - (rows-1)*spacing) / rows
	return Rect{
		X: r.X + col*(cellW+spacing),
		Y: r.Y + row*(cellH+spacing),
		W: cellW,
		H: cellH,
	}
}

// String returns a human-readable representation of the rectangle.
func (r Rect) String() string {
	return fmt.Sprintf("Rect(%d, %d, %d, %d)", r.X, r.Y, r.W, r.H)
}
