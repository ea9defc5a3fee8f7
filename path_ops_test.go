package vecedit

import (
	"math"
	"testing"
)

// kappaCircle is the control distance factor for a quarter circle.
const kappaCircle = 0.5522847498307936

func square(x, y, size float64, clockwise bool) *Path {
	p := NewPath()
	p.MoveTo(Pt(x, y))
	if clockwise {
		p.LineTo(Pt(x+size, y))
		p.LineTo(Pt(x+size, y+size))
		p.LineTo(Pt(x, y+size))
	} else {
		p.LineTo(Pt(x, y+size))
		p.LineTo(Pt(x+size, y+size))
		p.LineTo(Pt(x+size, y))
	}
	p.Close()
	return p
}

func circle(r float64) *Path {
	k := r * kappaCircle
	p := NewPath()
	p.MoveTo(Pt(r, 0))
	p.CubicTo(Pt(r, k), Pt(k, r), Pt(0, r))
	p.CubicTo(Pt(-k, r), Pt(-r, k), Pt(-r, 0))
	p.CubicTo(Pt(-r, -k), Pt(-k, -r), Pt(0, -r))
	p.CubicTo(Pt(k, -r), Pt(r, -k), Pt(r, 0))
	p.Close()
	return p
}

func TestPathArea(t *testing.T) {
	tests := []struct {
		name      string
		buildPath func() *Path
		wantArea  float64
		tolerance float64
	}{
		{"unit square clockwise", func() *Path { return square(0, 0, 1, true) }, 1, 1e-12},
		{"unit square counter-clockwise", func() *Path { return square(0, 0, 1, false) }, -1, 1e-12},
		{"offset square", func() *Path { return square(5, 7, 10, true) }, 100, 1e-9},
		{
			name: "triangle",
			buildPath: func() *Path {
				p := NewPath()
				p.MoveTo(Pt(0, 0))
				p.LineTo(Pt(4, 0))
				p.LineTo(Pt(2, 3))
				p.Close()
				return p
			},
			wantArea:  6,
			tolerance: 1e-12,
		},
		{
			name: "open subpath closes implicitly",
			buildPath: func() *Path {
				p := NewPath()
				p.MoveTo(Pt(0, 0))
				p.LineTo(Pt(1, 0))
				p.LineTo(Pt(1, 1))
				p.LineTo(Pt(0, 1))
				return p
			},
			wantArea:  1,
			tolerance: 1e-12,
		},
		{
			name: "straight cubic edge",
			buildPath: func() *Path {
				p := NewPath()
				p.MoveTo(Pt(0, 0))
				p.LineTo(Pt(1, 0))
				p.CubicTo(Pt(1, 1.0/3), Pt(1, 2.0/3), Pt(1, 1))
				p.LineTo(Pt(0, 1))
				p.Close()
				return p
			},
			wantArea:  1,
			tolerance: 1e-12,
		},
		{"circle", func() *Path { return circle(10) }, math.Pi * 100, 0.2},
		{"empty", NewPath, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.buildPath().Area(); math.Abs(got-tt.wantArea) > tt.tolerance {
				t.Errorf("Area() = %v, want %v", got, tt.wantArea)
			}
		})
	}
}

func TestPathWinding(t *testing.T) {
	nested := func(innerClockwise bool) *Path {
		p := square(0, 0, 10, true)
		inner := square(3, 3, 4, innerClockwise)
		for _, el := range inner.Elements() {
			switch el := el.(type) {
			case MoveTo:
				p.MoveTo(el.Point)
			case LineTo:
				p.LineTo(el.Point)
			case Close:
				p.Close()
			}
		}
		return p
	}

	tests := []struct {
		name  string
		path  *Path
		point Point
		want  int
	}{
		{"inside square", square(0, 0, 1, true), Pt(0.5, 0.5), 1},
		{"inside reversed square", square(0, 0, 1, false), Pt(0.5, 0.5), -1},
		{"right of square", square(0, 0, 1, true), Pt(1.5, 0.5), 0},
		{"left of square", square(0, 0, 1, true), Pt(-0.5, 0.5), 0},
		{"above square", square(0, 0, 1, true), Pt(0.5, -0.5), 0},
		{"nested same direction", nested(true), Pt(5, 5), 2},
		{"nested hole", nested(false), Pt(5, 5), 0},
		{"ring", nested(false), Pt(1, 5), 1},
		{"inside circle", circle(10), Pt(7, 1), 1},
		{"outside circle", circle(10), Pt(11, 1), 0},
		{"outside circle corner", circle(10), Pt(9, 9), 0},
		{"empty", NewPath(), Pt(0, 0), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.path.Winding(tt.point); got != tt.want {
				t.Errorf("Winding(%v) = %d, want %d", tt.point, got, tt.want)
			}
			if got := tt.path.Contains(tt.point); got != (tt.want != 0) {
				t.Errorf("Contains(%v) = %v", tt.point, got)
			}
		})
	}
}

func TestPathBoundingBox(t *testing.T) {
	curve := NewPath()
	curve.MoveTo(Pt(0, 0))
	curve.CubicTo(Pt(0, 10), Pt(10, 10), Pt(10, 0))

	tests := []struct {
		name string
		path *Path
		want Rect
	}{
		{"square", square(2, 3, 4, true), Rect{Min: Pt(2, 3), Max: Pt(6, 7)}},
		{"curve extrema", curve, Rect{Min: Pt(0, 0), Max: Pt(10, 7.5)}},
		{"circle", circle(10), Rect{Min: Pt(-10, -10), Max: Pt(10, 10)}},
		{"empty", NewPath(), Rect{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.path.BoundingBox()
			if !got.Min.Approx(tt.want.Min, 1e-9) || !got.Max.Approx(tt.want.Max, 1e-9) {
				t.Errorf("BoundingBox() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestPathFlatten(t *testing.T) {
	t.Run("closed square", func(t *testing.T) {
		polys := square(0, 0, 1, true).Flatten(0.1)
		if len(polys) != 1 {
			t.Fatalf("got %d polylines, want 1", len(polys))
		}
		if len(polys[0]) != 5 || polys[0][4] != polys[0][0] {
			t.Errorf("polyline = %v, want 5 points ending at the start", polys[0])
		}
	})

	t.Run("two subpaths", func(t *testing.T) {
		p := NewPath()
		p.MoveTo(Pt(0, 0))
		p.LineTo(Pt(1, 0))
		p.MoveTo(Pt(5, 5))
		p.LineTo(Pt(6, 5))
		if polys := p.Flatten(0.1); len(polys) != 2 {
			t.Errorf("got %d polylines, want 2", len(polys))
		}
	})

	t.Run("curve within tolerance", func(t *testing.T) {
		const tolerance = 0.05
		polys := circle(10).Flatten(tolerance)
		if len(polys) != 1 || len(polys[0]) < 9 {
			t.Fatalf("polylines = %d, points = %d", len(polys), len(polys[0]))
		}
		for _, p := range polys[0] {
			// Vertices lie on the curve; the curve is within 0.03 of the circle.
			if d := math.Abs(p.Distance(Pt(0, 0)) - 10); d > 0.03 {
				t.Errorf("point %v is %v off the circle", p, d)
			}
		}
	})

	t.Run("default tolerance", func(t *testing.T) {
		if polys := circle(10).Flatten(0); len(polys) != 1 {
			t.Errorf("got %d polylines, want 1", len(polys))
		}
	})

	if polys := NewPath().Flatten(0.1); polys != nil {
		t.Errorf("empty path: got %v, want nil", polys)
	}
}

func TestPathLength(t *testing.T) {
	straight := NewPath()
	straight.MoveTo(Pt(0, 0))
	straight.CubicTo(Pt(1, 0), Pt(2, 0), Pt(3, 0))

	open := NewPath()
	open.MoveTo(Pt(0, 0))
	open.LineTo(Pt(1, 0))
	open.LineTo(Pt(1, 1))

	tests := []struct {
		name      string
		path      *Path
		want      float64
		tolerance float64
	}{
		{"closed square", square(0, 0, 1, true), 4, 1e-12},
		{"open polyline", open, 2, 1e-12},
		{"straight cubic", straight, 3, 1e-12},
		{"circle", circle(10), 2 * math.Pi * 10, 0.05},
		{"empty", NewPath(), 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.path.Length(0.001); math.Abs(got-tt.want) > tt.tolerance {
				t.Errorf("Length() = %v, want %v", got, tt.want)
			}
		})
	}
}
