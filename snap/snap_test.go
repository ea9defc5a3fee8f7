package snap

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/gogpu/vecedit"
)

func TestScalar(t *testing.T) {
	tests := []struct {
		name       string
		value      float64
		candidates []float64
		threshold  float64
		want       ScalarResult[float64]
	}{
		{
			name:       "nearest wins, tie goes to first",
			value:      15,
			candidates: []float64{10, 20, 25},
			threshold:  6,
			want:       ScalarResult[float64]{Value: 10, Distance: 5, Indices: []int{0, 1}},
		},
		{
			name:       "nothing in range",
			value:      15,
			candidates: []float64{1, 2, 3},
			threshold:  5,
			want:       ScalarResult[float64]{Value: 15, Distance: math.Inf(1)},
		},
		{
			name:       "signed distance",
			value:      9,
			candidates: []float64{10, 30},
			threshold:  2,
			want:       ScalarResult[float64]{Value: 10, Distance: -1, Indices: []int{0}},
		},
		{
			name:       "zero threshold exact hit",
			value:      4,
			candidates: []float64{1, 4, 4},
			threshold:  0,
			want:       ScalarResult[float64]{Value: 4, Distance: 0, Indices: []int{1, 2}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Scalar(tt.value, tt.candidates, tt.threshold)
			if err != nil {
				t.Fatalf("Scalar: %v", err)
			}
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
			if got.Snapped() != !math.IsInf(tt.want.Distance, 1) {
				t.Errorf("Snapped() = %v", got.Snapped())
			}
		})
	}
}

func TestScalarFloat32(t *testing.T) {
	got, err := Scalar[float32](1.2, []float32{1, 2}, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	if got.Value != 1 || !got.Snapped() {
		t.Errorf("got %+v", got)
	}
}

func TestScalarInvalid(t *testing.T) {
	tests := []struct {
		name       string
		candidates []float64
		threshold  float64
	}{
		{"no candidates", nil, 1},
		{"negative threshold", []float64{1}, -1},
		{"NaN threshold", []float64{1}, math.NaN()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Scalar(0, tt.candidates, tt.threshold); !errors.Is(err, vecedit.ErrInvalidArgument) {
				t.Errorf("err = %v, want ErrInvalidArgument", err)
			}
		})
	}
}

func TestVector2(t *testing.T) {
	tests := []struct {
		name       string
		point      vecedit.Point
		candidates []vecedit.Point
		threshold  float64
		want       PointResult
	}{
		{
			name:       "closest in range",
			point:      vecedit.Pt(5, 5),
			candidates: []vecedit.Point{{X: 0, Y: 0}, {X: 10, Y: 10}, {X: 6, Y: 7}},
			threshold:  5,
			want:       PointResult{Point: vecedit.Pt(6, 7), Distance: math.Sqrt(5), Indices: []int{2}},
		},
		{
			name:       "zero threshold",
			point:      vecedit.Pt(5, 5),
			candidates: []vecedit.Point{{X: 5, Y: 6}, {X: 3, Y: 5}, {X: 5, Y: 5}, {X: 10, Y: 5}},
			threshold:  0,
			want:       PointResult{Point: vecedit.Pt(5, 5), Distance: 0, Indices: []int{2}},
		},
		{
			name:       "tie goes to lowest index",
			point:      vecedit.Pt(0, 0),
			candidates: []vecedit.Point{{X: 3, Y: 0}, {X: 0, Y: 3}, {X: 0, Y: -3}},
			threshold:  3,
			want:       PointResult{Point: vecedit.Pt(3, 0), Distance: 3, Indices: []int{0, 1, 2}},
		},
		{
			name:       "nothing in range",
			point:      vecedit.Pt(1, 1),
			candidates: []vecedit.Point{{X: 100, Y: 100}},
			threshold:  10,
			want:       PointResult{Point: vecedit.Pt(1, 1), Distance: math.Inf(1), Indices: []int{}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Vector2(tt.point, tt.candidates, tt.threshold)
			if err != nil {
				t.Fatalf("Vector2: %v", err)
			}
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestVector2Invalid(t *testing.T) {
	p := vecedit.Pt(0, 0)
	if _, err := Vector2(p, nil, 10); !errors.Is(err, vecedit.ErrInvalidArgument) {
		t.Errorf("empty candidates: err = %v", err)
	}
	if _, err := Vector2(p, []vecedit.Point{{X: 10, Y: 10}}, -1); !errors.Is(err, vecedit.ErrInvalidArgument) {
		t.Errorf("negative threshold: err = %v", err)
	}
}

func TestDeterministic(t *testing.T) {
	candidates := []vecedit.Point{{X: 1, Y: 1}, {X: 2, Y: 0}, {X: -1, Y: 1}, {X: 0, Y: 2}}
	first, _ := Vector2(vecedit.Pt(0.5, 0.5), candidates, 3)
	for i := 0; i < 20; i++ {
		again, _ := Vector2(vecedit.Pt(0.5, 0.5), candidates, 3)
		if diff := cmp.Diff(first, again); diff != "" {
			t.Fatalf("result changed between calls:\n%s", diff)
		}
	}
}

func TestPoints(t *testing.T) {
	agents := []vecedit.Point{{X: 10, Y: 10}, {X: 20, Y: 40}}
	anchors := []vecedit.Point{{X: 12, Y: 100}, {X: 50, Y: 41}, {X: 22, Y: 0}}

	got, err := Points(agents, anchors, 3)
	if err != nil {
		t.Fatal(err)
	}

	// X: agent 0 -> anchor 0 and agent 1 -> anchor 2 both need +2.
	wantX := Axis{Delta: 2, Distance: 2, Matches: []Match{{Agent: 0, Anchor: 0}, {Agent: 1, Anchor: 2}}}
	if diff := cmp.Diff(wantX, got.X); diff != "" {
		t.Errorf("X mismatch (-want +got):\n%s", diff)
	}
	// Y: agent 1 -> anchor 1 needs +1.
	wantY := Axis{Delta: 1, Distance: 1, Matches: []Match{{Agent: 1, Anchor: 1}}}
	if diff := cmp.Diff(wantY, got.Y); diff != "" {
		t.Errorf("Y mismatch (-want +got):\n%s", diff)
	}
	if got.Delta() != vecedit.V2(2, 1) {
		t.Errorf("Delta() = %+v", got.Delta())
	}
}

func TestPointsOneAxis(t *testing.T) {
	got, err := Points([]vecedit.Point{{X: 0, Y: 0}}, []vecedit.Point{{X: 100, Y: 1}}, 2)
	if err != nil {
		t.Fatal(err)
	}
	if got.X.Snapped() || got.X.Delta != 0 || got.X.Matches != nil {
		t.Errorf("X should not snap: %+v", got.X)
	}
	if !got.Y.Snapped() || got.Y.Delta != 1 {
		t.Errorf("Y should snap by 1: %+v", got.Y)
	}
}

func TestPointsInvalid(t *testing.T) {
	one := []vecedit.Point{{X: 1, Y: 1}}
	for _, err := range []error{
		func() error { _, err := Points(nil, one, 1); return err }(),
		func() error { _, err := Points(one, nil, 1); return err }(),
		func() error { _, err := Points(one, one, -0.5); return err }(),
	} {
		if !errors.Is(err, vecedit.ErrInvalidArgument) {
			t.Errorf("err = %v, want ErrInvalidArgument", err)
		}
	}
}

func TestThresholdFor(t *testing.T) {
	tests := []struct {
		name string
		view vecedit.Matrix
		want float64
	}{
		{"identity", vecedit.Identity(), 8},
		{"zoomed in", vecedit.Scale(4, 4), 2},
		{"zoom and pan", vecedit.Compose(vecedit.Translate(100, 50), vecedit.Scale(2, 2)), 4},
		{"degenerate", vecedit.Scale(0, 0), 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ThresholdFor(8, tt.view); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("ThresholdFor = %v, want %v", got, tt.want)
			}
		})
	}
}
