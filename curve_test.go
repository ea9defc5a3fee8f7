package vecedit

import (
	"math"
	"testing"
)

func TestCubicBezEvalEndpoints(t *testing.T) {
	c := CubicBez{P0: Pt(0, 0), P1: Pt(10, 20), P2: Pt(30, 20), P3: Pt(40, 0)}
	if got := c.Eval(0); got != c.P0 {
		t.Errorf("Eval(0) = %+v, want P0", got)
	}
	if got := c.Eval(1); got != c.P3 {
		t.Errorf("Eval(1) = %+v, want P3", got)
	}
	if got := c.Eval(0.5); !got.Approx(Pt(20, 15), epsilon) {
		t.Errorf("Eval(0.5) = %+v, want (20, 15)", got)
	}
}

func TestCubicBezSplitAt(t *testing.T) {
	c := CubicBez{P0: Pt(0, 0), P1: Pt(0, 40), P2: Pt(60, 40), P3: Pt(60, 0)}
	for _, split := range []float64{0.25, 0.5, 0.8} {
		left, right := c.SplitAt(split)
		if !left.P3.Approx(c.Eval(split), epsilon) || left.P3 != right.P0 {
			t.Fatalf("SplitAt(%v) halves do not meet on the curve", split)
		}
		for _, u := range []float64{0, 0.3, 0.7, 1} {
			if got, want := left.Eval(u), c.Eval(u*split); !got.Approx(want, 1e-9) {
				t.Errorf("left.Eval(%v) = %+v, want %+v", u, got, want)
			}
			if got, want := right.Eval(u), c.Eval(split+u*(1-split)); !got.Approx(want, 1e-9) {
				t.Errorf("right.Eval(%v) = %+v, want %+v", u, got, want)
			}
		}
	}
}

func TestCubicBezBoundingBox(t *testing.T) {
	// Symmetric arch; the top is at t=0.5, y=30.
	c := CubicBez{P0: Pt(0, 0), P1: Pt(0, 40), P2: Pt(40, 40), P3: Pt(40, 0)}
	bb := c.BoundingBox()
	if math.Abs(bb.Max.Y-30) > epsilon || bb.Min.Y != 0 {
		t.Errorf("BoundingBox Y = [%v, %v], want [0, 30]", bb.Min.Y, bb.Max.Y)
	}
	if bb.Min.X != 0 || bb.Max.X != 40 {
		t.Errorf("BoundingBox X = [%v, %v], want [0, 40]", bb.Min.X, bb.Max.X)
	}
}

func TestCubicBezTangent(t *testing.T) {
	c := CubicBez{P0: Pt(0, 0), P1: Pt(10, 0), P2: Pt(20, 10), P3: Pt(20, 20)}
	if got := c.Tangent(0); !got.Approx(V2(30, 0), epsilon) {
		t.Errorf("Tangent(0) = %+v, want (30, 0)", got)
	}
	if got := c.Tangent(1); !got.Approx(V2(0, 30), epsilon) {
		t.Errorf("Tangent(1) = %+v, want (0, 30)", got)
	}
}

func TestCubicBezNearest(t *testing.T) {
	c := CubicBez{P0: Pt(0, 0), P1: Pt(0, 40), P2: Pt(40, 40), P3: Pt(40, 0)}
	tests := []struct {
		name     string
		p        Point
		wantT    float64
		wantDist float64
	}{
		{"on curve", c.Eval(0.3), 0.3, 0},
		{"above apex", Pt(20, 40), 0.5, 10},
		{"before start", Pt(-5, 0), 0, 5},
		{"after end", Pt(45, -3), 1, math.Hypot(5, 3)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotT, gotDist := c.Nearest(tt.p)
			if math.Abs(gotT-tt.wantT) > 1e-6 || math.Abs(gotDist-tt.wantDist) > 1e-6 {
				t.Errorf("Nearest(%+v) = %v, %v; want %v, %v", tt.p, gotT, gotDist, tt.wantT, tt.wantDist)
			}
		})
	}
}

func TestSolveTangentsThrough(t *testing.T) {
	a, b := Pt(0, 0), Pt(100, 0)
	tests := []struct {
		name   string
		ta, tb Vec2
		t      float64
		p      Point
	}{
		{"straight to arch", Vec2{}, Vec2{}, 0.5, Pt(50, 30)},
		{"off center", Vec2{}, Vec2{}, 0.25, Pt(20, -15)},
		{"curved", V2(10, 20), V2(-10, 20), 0.6, Pt(70, 40)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ta, tb, ok := SolveTangentsThrough(a, b, tt.ta, tt.tb, tt.t, tt.p)
			if !ok {
				t.Fatal("SolveTangentsThrough reported false")
			}
			c := CubicBez{P0: a, P1: a.Add(ta), P2: b.Add(tb), P3: b}
			if got := c.Eval(tt.t); !got.Approx(tt.p, 1e-9) {
				t.Errorf("curve at t=%v is %+v, want %+v", tt.t, got, tt.p)
			}
		})
	}

	t.Run("symmetric at midpoint", func(t *testing.T) {
		ta, tb, _ := SolveTangentsThrough(a, b, Vec2{}, Vec2{}, 0.5, Pt(50, 30))
		if !ta.Approx(tb, 1e-9) || !ta.Approx(V2(0, 40), 1e-9) {
			t.Errorf("tangents = %+v, %+v; want (0, 40) twice", ta, tb)
		}
	})

	t.Run("already through", func(t *testing.T) {
		ta, tb := V2(10, 20), V2(-10, 20)
		p := CubicBez{P0: a, P1: a.Add(ta), P2: b.Add(tb), P3: b}.Eval(0.4)
		gotA, gotB, _ := SolveTangentsThrough(a, b, ta, tb, 0.4, p)
		if !gotA.Approx(ta, 1e-9) || !gotB.Approx(tb, 1e-9) {
			t.Errorf("tangents changed to %+v, %+v", gotA, gotB)
		}
	})

	for _, bad := range []float64{0, 1, -0.5, math.NaN()} {
		if _, _, ok := SolveTangentsThrough(a, b, Vec2{}, Vec2{}, bad, Pt(50, 30)); ok {
			t.Errorf("t=%v: reported true", bad)
		}
	}
}

func TestLine(t *testing.T) {
	l := Line{P0: Pt(0, 0), P1: Pt(3, 4)}
	if l.Length() != 5 {
		t.Errorf("Length() = %v, want 5", l.Length())
	}
	if got := l.Eval(0.5); got != Pt(1.5, 2) {
		t.Errorf("Eval(0.5) = %+v", got)
	}
	bb := l.BoundingBox()
	if bb.Width() != 3 || bb.Height() != 4 {
		t.Errorf("BoundingBox = %+v", bb)
	}
}

func TestRect(t *testing.T) {
	r := NewRect(Pt(10, 10), Pt(0, 0))
	if r.Min != Pt(0, 0) || r.Max != Pt(10, 10) {
		t.Errorf("NewRect did not normalize: %+v", r)
	}
	u := r.Union(NewRect(Pt(-5, 2), Pt(3, 20)))
	if u.Min != Pt(-5, 0) || u.Max != Pt(10, 20) {
		t.Errorf("Union = %+v", u)
	}
	if !u.Contains(Pt(0, 15)) || u.Contains(Pt(11, 0)) {
		t.Error("Contains gave wrong answer")
	}
}

func TestSolveQuadraticInUnitInterval(t *testing.T) {
	tests := []struct {
		name    string
		a, b, c float64
		want    []float64
	}{
		{"two roots", 1, -1, 0.21, []float64{0.3, 0.7}},
		{"linear", 0, 2, -1, []float64{0.5}},
		{"outside", 1, 0, -4, nil},
		{"no real roots", 1, 0, 1, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := solveQuadraticInUnitInterval(tt.a, tt.b, tt.c)
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if math.Abs(got[i]-tt.want[i]) > 1e-9 {
					t.Errorf("root %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}
