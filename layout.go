package forms

import "math"

// ArrangeInGrid computes per-item rectangles for count items laid out in
// a uniform grid inside the container. cols fixes the column count; when
// cols <= 0 the column count is auto-computed as ceil(sqrt(count)).
// spacing is the gap between adjacent cells, padding the inset from the
// container edges on each side. count <= 0 yields nil.
func ArrangeInGrid(container Rect, count, cols int, spacing, padding Point) []Rect {
	if count <= 0 {
		return nil
	}
	if cols <= 0 {
		cols = int(math.Ceil(math.Sqrt(float64(count))))
	}
	rows := (count + cols - 1) / cols

	inner := Rect{
		X: container.X + padding.X,
		Y: container.Y + padding.Y,
		W: container.W - 2*padding.X,
		H: container.H - 2*padding.Y,
	}
	cellW := (inner.W - (cols-1)*spacing.X) / cols
	cellH := (inner.H - (rows-1)*spacing.Y) / rows

	out := make([]Rect, count)
	for i := range out {
		row, col := i/cols, i%cols
		out[i] = Rect{
			X: inner.X + col*(cellW+spacing.X),
			Y: inner.Y + row*(cellH+spacing.Y),
			W: cellW,
			H: cellH,
		}
	}
	return out
}

// ArrangeInLine computes per-item rectangles for count items laid out in
// a single horizontal or vertical line inside the container, with
// spacing between items and padding from the container edges.
// count <= 0 yields nil.
func ArrangeInLine(container Rect, count int, horizontal bool, spacing, padding Point) []Rect {
	if count <= 0 {
		return nil
	}

	inner := Rect{
		X: container.X + padding.X,
		Y: container.Y + padding.Y,
		W: container.W - 2*padding.X,
		H: container.H - 2*padding.Y,
	}

	out := make([]Rect, count)
	if horizontal {
		itemW := (inner.W - (count-1)*spacing.X) / count
		for i := range out {
			out[i] = Rect{X: inner.X + i*(itemW+spacing.X), Y: inner.Y, W: itemW, H: inner.H}
		}
	} else {
		itemH := (inner.H - (count-1)*spacing.Y) / count
		for i := range out {
			out[i] = Rect{X: inner.X, Y: inner.Y + i*(itemH+spacing.Y), W: inner.W, H: itemH}
		}
	}
	return out
}

// BoundingBox folds a list of rectangles into their union. Empty
// rectangles contribute nothing; an empty or all-empty list yields the
// zero Rect.
func BoundingBox(rects []Rect) Rect {
	var box Rect
	for _, r := range rects {
		box = box.Union(r)
	}
	return box
}
