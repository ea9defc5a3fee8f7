package vecedit

import (
	"math"
	"testing"
)

func TestPointVecArithmetic(t *testing.T) {
	a, b := Pt(1, 2), Pt(4, 6)

	d := b.Sub(a)
	if d != V2(3, 4) {
		t.Errorf("Sub = %+v, want (3, 4)", d)
	}
	if got := a.Add(d); got != b {
		t.Errorf("Add = %+v, want %+v", got, b)
	}
	if a.Distance(b) != 5 || d.Length() != 5 {
		t.Errorf("Distance = %v, Length = %v, want 5", a.Distance(b), d.Length())
	}
	if got := a.Midpoint(b); got != Pt(2.5, 4) {
		t.Errorf("Midpoint = %+v", got)
	}
}

func TestVec2Ops(t *testing.T) {
	tests := []struct {
		name string
		got  Vec2
		want Vec2
	}{
		{"neg", V2(1, -2).Neg(), V2(-1, 2)},
		{"mul", V2(1, -2).Mul(3), V2(3, -6)},
		{"perp", V2(1, 0).Perp(), V2(0, 1)},
		{"normalize", V2(0, 5).Normalize(), V2(0, 1)},
		{"normalize zero", Vec2{}.Normalize(), Vec2{}},
		{"from angle", FromAngle(math.Pi/2, 2), V2(0, 2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.got.Approx(tt.want, 1e-12) {
				t.Errorf("got %+v, want %+v", tt.got, tt.want)
			}
		})
	}
}

func TestVec2Products(t *testing.T) {
	if got := V2(1, 2).Dot(V2(3, 4)); got != 11 {
		t.Errorf("Dot = %v, want 11", got)
	}
	if got := V2(1, 0).Cross(V2(0, 1)); got != 1 {
		t.Errorf("Cross = %v, want 1", got)
	}
	if !(Vec2{}).IsZero() || V2(0, 1e-300).IsZero() {
		t.Error("IsZero gave wrong answer")
	}
}

func TestPointIsFinite(t *testing.T) {
	if !Pt(1, 2).IsFinite() {
		t.Error("Pt(1, 2) should be finite")
	}
	if Pt(math.NaN(), 0).IsFinite() || Pt(0, math.Inf(-1)).IsFinite() {
		t.Error("NaN/Inf points should not be finite")
	}
}

func TestPointVecConversion(t *testing.T) {
	if PointToVec2(Pt(2, 3)).ToPoint() != Pt(2, 3) {
		t.Error("conversion round trip failed")
	}
}
