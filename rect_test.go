package forms

import (
	"math"
	"testing"
)

func TestRect_IsEmpty(t *testing.T) {
	tests := []struct {
		name  string
		r     Rect
		empty bool
	}{
		{"zero", Rect{}, true},
		{"normal", R(10, 10, 100, 50), false},
		{"zero width", R(10, 10, 0, 50), true},
		{"zero height", R(10, 10, 100, 0), true},
		{"negative width", R(10, 10, -5, 50), true},
		{"negative height", R(10, 10, 100, -5), true},
		{"unit", R(0, 0, 1, 1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.IsEmpty(); got != tt.empty {
				t.Errorf("%v.IsEmpty() = %v, want %v", tt.r, got, tt.empty)
			}
		})
	}
}

func TestRect_Accessors(t *testing.T) {
	r := R(10, 20, 100, 50)

	if r.Left() != 10 || r.Top() != 20 || r.Right() != 110 || r.Bottom() != 70 {
		t.Errorf("edges = %d,%d,%d,%d, want 10,20,110,70",
			r.Left(), r.Top(), r.Right(), r.Bottom())
	}
	if got := r.Center(); got != Pt(60, 45) {
		t.Errorf("Center() = %v, want Point(60, 45)", got)
	}
	if got := r.TopLeft(); got != Pt(10, 20) {
		t.Errorf("TopLeft() = %v, want Point(10, 20)", got)
	}
	if got := r.BottomRight(); got != Pt(110, 70) {
		t.Errorf("BottomRight() = %v, want Point(110, 70)", got)
	}
	if got := r.Area(); got != 5000 {
		t.Errorf("Area() = %d, want 5000", got)
	}
	if got := r.Perimeter(); got != 300 {
		t.Errorf("Perimeter() = %d, want 300", got)
	}
	if got := r.AspectRatio(); got != 2.0 {
		t.Errorf("AspectRatio() = %v, want 2.0", got)
	}
}

func TestRect_AspectRatio(t *testing.T) {
	tests := []struct {
		name   string
		r      Rect
		expect float64
	}{
		{"square", R(0, 0, 100, 100), 1.0},
		{"wide", R(0, 0, 200, 50), 4.0},
		{"tall", R(0, 0, 50, 200), 0.25},
		{"zero height", R(0, 0, 100, 0), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.AspectRatio(); got != tt.expect {
				t.Errorf("%v.AspectRatio() = %v, want %v", tt.r, got, tt.expect)
			}
		})
	}
}

func TestRect_Area_Empty(t *testing.T) {
	if got := R(0, 0, -10, 50).Area(); got != 0 {
		t.Errorf("empty Area() = %d, want 0", got)
	}
}

func TestFromTwoPoints(t *testing.T) {
	tests := []struct {
		name   string
		p, q   Point
		expect Rect
	}{
		{"ordered", Pt(10, 20), Pt(110, 80), R(10, 20, 100, 60)},
		{"reversed", Pt(110, 80), Pt(10, 20), R(10, 20, 100, 60)},
		{"mixed", Pt(110, 20), Pt(10, 80), R(10, 20, 100, 60)},
		{"same point", Pt(5, 5), Pt(5, 5), R(5, 5, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromTwoPoints(tt.p, tt.q); got != tt.expect {
				t.Errorf("FromTwoPoints(%v, %v) = %v, want %v", tt.p, tt.q, got, tt.expect)
			}
		})
	}
}

func TestFromCenter(t *testing.T) {
	if got := FromCenter(Pt(200, 150), 100, 60); got != R(150, 120, 100, 60) {
		t.Errorf("FromCenter = %v, want Rect(150, 120, 100, 60)", got)
	}
}

func TestRect_Union(t *testing.T) {
	tests := []struct {
		name   string
		a, b   Rect
		expect Rect
	}{
		{"overlapping", R(10, 20, 100, 50), R(60, 30, 80, 40), R(10, 20, 130, 50)},
		{"disjoint", R(0, 0, 10, 10), R(50, 50, 10, 10), R(0, 0, 60, 60)},
		{"contained", R(0, 0, 100, 100), R(25, 25, 10, 10), R(0, 0, 100, 100)},
		{"empty left identity", Rect{}, R(10, 10, 100, 50), R(10, 10, 100, 50)},
		{"empty right identity", R(10, 10, 100, 50), Rect{}, R(10, 10, 100, 50)},
		{"both empty", Rect{}, Rect{}, Rect{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Union(tt.b); got != tt.expect {
				t.Errorf("%v.Union(%v) = %v, want %v", tt.a, tt.b, got, tt.expect)
			}
			// Union is commutative.
			if got := tt.b.Union(tt.a); got != tt.expect {
				t.Errorf("%v.Union(%v) = %v, want %v (commutativity)", tt.b, tt.a, got, tt.expect)
			}
		})
	}
}

func TestRect_Union_AreaLowerBound(t *testing.T) {
	a := R(10, 20, 100, 50)
	b := R(60, 30, 80, 40)

	union := a.Union(b)
	overlap := a.Intersection(b)
	if union.Area() < a.Area()+b.Area()-overlap.Area() {
		t.Errorf("area(union) = %d < area(a)+area(b)-area(overlap) = %d",
			union.Area(), a.Area()+b.Area()-overlap.Area())
	}
}

func TestRect_Intersection(t *testing.T) {
	tests := []struct {
		name   string
		a, b   Rect
		expect Rect
	}{
		{"overlapping", R(50, 50, 100, 100), R(75, 75, 50, 50), R(75, 75, 50, 50)},
		{"partial", R(10, 20, 100, 50), R(60, 30, 80, 40), R(60, 30, 50, 40)},
		{"disjoint", R(50, 50, 100, 100), R(200, 200, 50, 50), Rect{}},
		{"edge touching", R(0, 0, 50, 50), R(50, 0, 50, 50), Rect{}},
		{"corner touching", R(0, 0, 50, 50), R(50, 50, 50, 50), Rect{}},
		{"with empty", R(10, 10, 100, 50), Rect{}, Rect{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Intersection(tt.b); got != tt.expect {
				t.Errorf("%v.Intersection(%v) = %v, want %v", tt.a, tt.b, got, tt.expect)
			}
		})
	}
}

func TestRect_Intersects(t *testing.T) {
	tests := []struct {
		name   string
		a, b   Rect
		expect bool
	}{
		{"overlapping", R(50, 50, 100, 100), R(75, 75, 50, 50), true},
		{"disjoint", R(50, 50, 100, 100), R(200, 200, 50, 50), false},
		{"edge touching", R(0, 0, 50, 50), R(50, 0, 50, 50), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Intersects(tt.b); got != tt.expect {
				t.Errorf("%v.Intersects(%v) = %v, want %v", tt.a, tt.b, got, tt.expect)
			}
		})
	}
}

func TestRect_Contains(t *testing.T) {
	r := R(50, 50, 100, 100)

	tests := []struct {
		name   string
		p      Point
		expect bool
	}{
		{"inside", Pt(75, 75), true},
		{"outside", Pt(25, 25), false},
		{"top-left corner closed", Pt(50, 50), true},
		{"bottom-right corner open", Pt(150, 150), false},
		{"right edge open", Pt(150, 75), false},
		{"bottom edge open", Pt(75, 150), false},
		{"left edge closed", Pt(50, 75), true},
		{"top edge closed", Pt(75, 50), true},
		{"last interior pixel", Pt(149, 149), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.p); got != tt.expect {
				t.Errorf("%v.Contains(%v) = %v, want %v", r, tt.p, got, tt.expect)
			}
		})
	}
}

func TestRect_ContainsRect(t *testing.T) {
	r := R(50, 50, 100, 100)

	tests := []struct {
		name   string
		o      Rect
		expect bool
	}{
		{"inside", R(75, 75, 50, 50), true},
		{"identical", R(50, 50, 100, 100), true},
		{"edge aligned", R(50, 50, 50, 50), true},
		{"overhanging right", R(100, 50, 100, 50), false},
		{"disjoint", R(200, 200, 10, 10), false},
		{"larger", R(0, 0, 300, 300), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.ContainsRect(tt.o); got != tt.expect {
				t.Errorf("%v.ContainsRect(%v) = %v, want %v", r, tt.o, got, tt.expect)
			}
		})
	}
}

func TestRect_DistanceToPoint(t *testing.T) {
	r := R(50, 50, 100, 100)

	tests := []struct {
		name   string
		p      Point
		expect float64
	}{
		{"inside", Pt(75, 75), 0},
		{"left of", Pt(40, 75), 10},
		{"above", Pt(75, 30), 20},
		{"diagonal", Pt(47, 46), 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.DistanceToPoint(tt.p); math.Abs(got-tt.expect) > 1e-9 {
				t.Errorf("%v.DistanceToPoint(%v) = %v, want %v", r, tt.p, got, tt.expect)
			}
		})
	}
}

func TestRect_DistanceTo(t *testing.T) {
	tests := []struct {
		name   string
		a, b   Rect
		expect float64
	}{
		{"overlapping", R(50, 50, 100, 100), R(75, 75, 50, 50), 0},
		{"horizontal gap", R(0, 0, 50, 50), R(80, 0, 50, 50), 30},
		{"vertical gap", R(0, 0, 50, 50), R(0, 90, 50, 50), 40},
		{"diagonal gap", R(0, 0, 50, 50), R(53, 54, 50, 50), 5},
		{"edge touching", R(0, 0, 50, 50), R(50, 0, 50, 50), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.DistanceTo(tt.b); math.Abs(got-tt.expect) > 1e-9 {
				t.Errorf("%v.DistanceTo(%v) = %v, want %v", tt.a, tt.b, got, tt.expect)
			}
		})
	}
}

func TestRect_Alignment(t *testing.T) {
	container := R(0, 0, 400, 300)
	element := R(30, 40, 100, 50)

	tests := []struct {
		name   string
		got    Rect
		expect Rect
	}{
		{"left", element.AlignLeft(container, 10), R(10, 40, 100, 50)},
		{"right", element.AlignRight(container, 10), R(290, 40, 100, 50)},
		{"top", element.AlignTop(container, 10), R(30, 10, 100, 50)},
		{"bottom", element.AlignBottom(container, 10), R(30, 240, 100, 50)},
		{"center horizontal", element.AlignCenterH(container), R(150, 40, 100, 50)},
		{"center vertical", element.AlignCenterV(container), R(30, 125, 100, 50)},
		{"center both", element.CenterIn(container), R(150, 125, 100, 50)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expect {
				t.Errorf("got %v, want %v", tt.got, tt.expect)
			}
			// Alignment never alters size.
			if tt.got.W != element.W || tt.got.H != element.H {
				t.Errorf("alignment changed size: %v", tt.got)
			}
		})
	}
}

func TestRect_ClampTo(t *testing.T) {
	bounds := R(0, 0, 200, 200)

	tests := []struct {
		name   string
		r      Rect
		expect Rect
	}{
		{"inside unchanged", R(50, 50, 40, 40), R(50, 50, 40, 40)},
		{"off left", R(-30, 50, 40, 40), R(0, 50, 40, 40)},
		{"off bottom-right", R(190, 190, 40, 40), R(160, 160, 40, 40)},
		{"oversized saturates to origin", R(50, 50, 300, 300), R(0, 0, 300, 300)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.r.ClampTo(bounds)
			if got != tt.expect {
				t.Errorf("%v.ClampTo(%v) = %v, want %v", tt.r, bounds, got, tt.expect)
			}
			// ClampTo is idempotent.
			if again := got.ClampTo(bounds); again != got {
				t.Errorf("ClampTo not idempotent: %v -> %v", got, again)
			}
		})
	}
}

func TestRect_OffsetResizeInflate(t *testing.T) {
	r := R(10, 20, 100, 50)

	if got := r.Offset(5, -5); got != R(15, 15, 100, 50) {
		t.Errorf("Offset = %v", got)
	}
	if got := r.Resize(40, 30); got != R(10, 20, 40, 30) {
		t.Errorf("Resize = %v", got)
	}
	if got := r.Inflate(10, 5); got != R(0, 15, 120, 60) {
		t.Errorf("Inflate = %v", got)
	}
	if got := r.Inflate(-10, -10); got != R(20, 30, 80, 30) {
		t.Errorf("deflate = %v", got)
	}
}

func TestRect_Scale(t *testing.T) {
	tests := []struct {
		name   string
		r      Rect
		fx, fy float64
		origin Point
		expect Rect
	}{
		{"about coordinate origin", R(50, 50, 100, 60), 2, 0.5, Pt(0, 0), R(100, 25, 200, 30)},
		{"identity", R(50, 50, 100, 60), 1, 1, Pt(0, 0), R(50, 50, 100, 60)},
		{"about own corner", R(10, 10, 40, 40), 2, 2, Pt(10, 10), R(10, 10, 80, 80)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Scale(tt.fx, tt.fy, tt.origin); got != tt.expect {
				t.Errorf("%v.Scale(%v, %v, %v) = %v, want %v",
					tt.r, tt.fx, tt.fy, tt.origin, got, tt.expect)
			}
		})
	}
}

func TestRect_ScaleUniform(t *testing.T) {
	r := R(50, 50, 100, 60)

	got := r.ScaleUniform(1.5)
	if got.W != 150 || got.H != 90 {
		t.Errorf("ScaleUniform extent = %dx%d, want 150x90", got.W, got.H)
	}
	// Scaling about the center keeps the center (within rounding).
	if c, want := got.Center(), r.Center(); math.Abs(float64(c.X-want.X)) > 1 ||
		math.Abs(float64(c.Y-want.Y)) > 1 {
		t.Errorf("center moved: %v -> %v", want, c)
	}
}

func TestRect_Rotate90(t *testing.T) {
	r := R(50, 50, 100, 60)
	if got := r.Rotate90(); got != R(50, 50, 60, 100) {
		t.Errorf("Rotate90 = %v, want Rect(50, 50, 60, 100)", got)
	}
	if got := r.Rotate90().Rotate90(); got != r {
		t.Errorf("double Rotate90 = %v, want %v", got, r)
	}
}

func TestRect_FitInside(t *testing.T) {
	container := R(0, 0, 400, 300)

	t.Run("stretch ignores source", func(t *testing.T) {
		if got := R(50, 50, 100, 60).FitInside(container, false); got != container {
			t.Errorf("FitInside(false) = %v, want %v", got, container)
		}
	})

	t.Run("preserves aspect and centers", func(t *testing.T) {
		src := R(50, 50, 100, 60)
		got := src.FitInside(container, true)

		wantAspect := src.AspectRatio()
		if math.Abs(got.AspectRatio()-wantAspect) > 0.02 {
			t.Errorf("aspect = %v, want %v", got.AspectRatio(), wantAspect)
		}
		if got.Center() != container.Center() {
			t.Errorf("center = %v, want %v", got.Center(), container.Center())
		}
		if !container.ContainsRect(got) {
			t.Errorf("result %v exceeds container %v", got, container)
		}
		// Largest fit: one axis matches the container.
		if got.W != container.W && got.H != container.H {
			t.Errorf("result %v is not the largest fit", got)
		}
	})

	t.Run("empty source", func(t *testing.T) {
		if got := (Rect{}).FitInside(container, true); got != (Rect{}) {
			t.Errorf("empty FitInside = %v, want zero Rect", got)
		}
	})

	t.Run("empty container", func(t *testing.T) {
		if got := R(0, 0, 10, 10).FitInside(Rect{}, true); got != (Rect{}) {
			t.Errorf("FitInside(empty) = %v, want zero Rect", got)
		}
	})
}

func TestRect_SubdivideHorizontal(t *testing.T) {
	tests := []struct {
		name   string
		r      Rect
		ratios []float64
		widths []int
	}{
		{"even split", R(0, 0, 100, 50), []float64{1, 1}, []int{50, 50}},
		{"1:2:1", R(0, 0, 400, 300), []float64{1, 2, 1}, []int{100, 200, 100}},
		{"remainder to last", R(0, 0, 100, 50), []float64{1, 1, 1}, []int{33, 33, 34}},
		{"single", R(5, 5, 90, 10), []float64{3}, []int{90}},
		{"negative ratio ignored", R(0, 0, 100, 50), []float64{1, -5, 1}, []int{50, 0, 50}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.r.SubdivideHorizontal(tt.ratios)
			if len(got) != len(tt.widths) {
				t.Fatalf("len = %d, want %d", len(got), len(tt.widths))
			}

			x := tt.r.X
			total := 0
			for i, slice := range got {
				if slice.W != tt.widths[i] {
					t.Errorf("slice %d width = %d, want %d", i, slice.W, tt.widths[i])
				}
				if slice.X != x {
					t.Errorf("slice %d not adjacent: x = %d, want %d", i, slice.X, x)
				}
				if slice.Y != tt.r.Y || slice.H != tt.r.H {
					t.Errorf("slice %d vertical extent changed: %v", i, slice)
				}
				x = slice.Right()
				total += slice.W
			}
			// Slices tile the source exactly.
			if total != tt.r.W {
				t.Errorf("widths sum to %d, want %d", total, tt.r.W)
			}
		})
	}
}

func TestRect_SubdivideHorizontal_Degenerate(t *testing.T) {
	r := R(0, 0, 100, 50)

	if got := r.SubdivideHorizontal(nil); got != nil {
		t.Errorf("nil ratios: got %v, want nil", got)
	}
	if got := r.SubdivideHorizontal([]float64{0, 0}); got != nil {
		t.Errorf("zero ratio sum: got %v, want nil", got)
	}
	if got := r.SubdivideHorizontal([]float64{-1, -2}); got != nil {
		t.Errorf("negative ratio sum: got %v, want nil", got)
	}
}

func TestRect_SubdivideVertical(t *testing.T) {
	r := R(0, 0, 400, 300)

	got := r.SubdivideVertical([]float64{1, 1})
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0] != R(0, 0, 400, 150) || got[1] != R(0, 150, 400, 150) {
		t.Errorf("slices = %v", got)
	}

	// Rounding remainder goes to the last slice.
	got = r.SubdivideVertical([]float64{1, 1, 1})
	if got[0].H != 100 || got[1].H != 100 || got[2].H != 100 {
		t.Errorf("heights = %d,%d,%d", got[0].H, got[1].H, got[2].H)
	}
	odd := R(0, 0, 10, 101).SubdivideVertical([]float64{1, 1})
	if odd[0].H+odd[1].H != 101 || odd[1].Bottom() != 101 {
		t.Errorf("odd split does not tile: %v", odd)
	}
}

func TestRect_GridCell(t *testing.T) {
	r := R(0, 0, 400, 300)

	tests := []struct {
		name                          string
		row, col, rows, cols, spacing int
		expect                        Rect
	}{
		{"top-left no spacing", 0, 0, 3, 4, 0, R(0, 0, 100, 100)},
		{"middle no spacing", 1, 2, 3, 4, 0, R(200, 100, 100, 100)},
		{"with spacing", 0, 1, 2, 2, 10, R(205, 0, 195, 145)},
		{"row out of range", 3, 0, 3, 4, 0, Rect{}},
		{"col out of range", 0, 4, 3, 4, 0, Rect{}},
		{"negative row", -1, 0, 3, 4, 0, Rect{}},
		{"zero rows", 0, 0, 0, 4, 0, Rect{}},
		{"zero cols", 0, 0, 3, 0, 0, Rect{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.GridCell(tt.row, tt.col, tt.rows, tt.cols, tt.spacing)
			if got != tt.expect {
				t.Errorf("GridCell(%d, %d, %d, %d, %d) = %v, want %v",
					tt.row, tt.col, tt.rows, tt.cols, tt.spacing, got, tt.expect)
			}
		})
	}
}

func TestRect_String(t *testing.T) {
	if got := R(10, 20, 100, 50).String(); got != "Rect(10, 20, 100, 50)" {
		t.Errorf("String() = %q", got)
	}
}
