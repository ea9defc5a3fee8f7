// Package snap implements threshold-based snapping.
//
// A value snaps to the nearest candidate that lies within a threshold.
// Every function is pure: the same inputs always give the same result, and
// ties are broken by the lowest candidate index.
package snap

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"

	"github.com/gogpu/vecedit"
)

// ScalarResult is the outcome of snapping a single number.
type ScalarResult[T constraints.Float] struct {
	// Value is the snapped value, or the input when nothing snapped.
	Value T
	// Distance is value minus the winning candidate, or +Inf.
	Distance T
	// Indices lists every candidate within the threshold, ascending.
	Indices []int
}

// Snapped reports whether a candidate was found.
func (r ScalarResult[T]) Snapped() bool {
	return !math.IsInf(float64(r.Distance), 0)
}

// Scalar snaps value to the closest candidate within threshold.
//
// It fails with vecedit.ErrInvalidArgument when candidates is empty or the
// threshold is negative or NaN.
func Scalar[T constraints.Float](value T, candidates []T, threshold T) (ScalarResult[T], error) {
	if len(candidates) == 0 {
		return ScalarResult[T]{}, fmt.Errorf("snap: no candidates: %w", vecedit.ErrInvalidArgument)
	}
	if !(threshold >= 0) {
		return ScalarResult[T]{}, fmt.Errorf("snap: threshold %v: %w", threshold, vecedit.ErrInvalidArgument)
	}

	res := ScalarResult[T]{Value: value, Distance: T(math.Inf(1))}
	best := -1
	for i, c := range candidates {
		d := value - c
		ad := T(math.Abs(float64(d)))
		if !(ad <= threshold) {
			continue
		}
		res.Indices = append(res.Indices, i)
		if best < 0 || ad < T(math.Abs(float64(res.Distance))) {
			best = i
			res.Value = c
			res.Distance = d
		}
	}
	return res, nil
}

// PointResult is the outcome of snapping a point.
type PointResult struct {
	// Point is the snapped point, or the input when nothing snapped.
	Point vecedit.Point
	// Distance is the Euclidean distance to the winner, or +Inf.
	Distance float64
	// Indices lists every candidate within the threshold, ascending.
	Indices []int
}

// Snapped reports whether a candidate was found.
func (r PointResult) Snapped() bool {
	return !math.IsInf(r.Distance, 0)
}

// Vector2 snaps point to the closest candidate within threshold, measured
// by Euclidean distance.
//
// It fails with vecedit.ErrInvalidArgument when candidates is empty or the
// threshold is negative or NaN.
func Vector2(point vecedit.Point, candidates []vecedit.Point, threshold float64) (PointResult, error) {
	if len(candidates) == 0 {
		return PointResult{}, fmt.Errorf("snap: no candidates: %w", vecedit.ErrInvalidArgument)
	}
	if !(threshold >= 0) {
		return PointResult{}, fmt.Errorf("snap: threshold %v: %w", threshold, vecedit.ErrInvalidArgument)
	}

	res := PointResult{Point: point, Distance: math.Inf(1), Indices: []int{}}
	for i, c := range candidates {
		d := point.Distance(c)
		if !(d <= threshold) {
			continue
		}
		res.Indices = append(res.Indices, i)
		if d < res.Distance {
			res.Point = c
			res.Distance = d
		}
	}
	return res, nil
}

// Match pairs an agent index with the anchor index it aligned to.
type Match struct {
	Agent  int
	Anchor int
}

// Axis is the snap outcome along one axis.
type Axis struct {
	// Delta is the translation that aligns the agents, zero if none.
	Delta float64
	// Distance is |Delta| when snapped, +Inf otherwise.
	Distance float64
	// Matches lists every agent/anchor pair aligned after applying Delta.
	Matches []Match
}

// Snapped reports whether the axis snapped.
func (a Axis) Snapped() bool {
	return !math.IsInf(a.Distance, 0)
}

// PointsResult is the per-axis outcome of Points.
type PointsResult struct {
	X, Y Axis
}

// Delta returns the combined translation for both axes.
func (r PointsResult) Delta() vecedit.Vec2 {
	return vecedit.V2(r.X.Delta, r.Y.Delta)
}

// alignEpsilon decides which pairs count as aligned once the delta is applied.
const alignEpsilon = 1e-9

// Points aligns a group of agent points against anchor points, one axis at
// a time. On each axis the smallest agent-to-anchor gap within threshold
// wins; the two axes snap independently.
//
// It fails with vecedit.ErrInvalidArgument when agents or anchors is empty or
// the threshold is negative or NaN.
func Points(agents, anchors []vecedit.Point, threshold float64) (PointsResult, error) {
	if len(agents) == 0 || len(anchors) == 0 {
		return PointsResult{}, fmt.Errorf("snap: empty point set: %w", vecedit.ErrInvalidArgument)
	}
	if !(threshold >= 0) {
		return PointsResult{}, fmt.Errorf("snap: threshold %v: %w", threshold, vecedit.ErrInvalidArgument)
	}
	return PointsResult{
		X: alignAxis(agents, anchors, threshold, func(p vecedit.Point) float64 { return p.X }),
		Y: alignAxis(agents, anchors, threshold, func(p vecedit.Point) float64 { return p.Y }),
	}, nil
}

func alignAxis(agents, anchors []vecedit.Point, threshold float64, coord func(vecedit.Point) float64) Axis {
	ax := Axis{Distance: math.Inf(1)}
	for _, ag := range agents {
		for _, an := range anchors {
			d := coord(an) - coord(ag)
			if ad := math.Abs(d); ad <= threshold && ad < ax.Distance {
				ax.Delta = d
				ax.Distance = ad
			}
		}
	}
	if !ax.Snapped() {
		return ax
	}
	for i, ag := range agents {
		for j, an := range anchors {
			if math.Abs(coord(ag)+ax.Delta-coord(an)) <= alignEpsilon {
				ax.Matches = append(ax.Matches, Match{Agent: i, Anchor: j})
			}
		}
	}
	return ax
}

// ThresholdFor converts a threshold in screen pixels into model units for
// the given model-to-screen transform. A degenerate view returns the input.
func ThresholdFor(screen float64, view vecedit.Matrix) float64 {
	s := view.MaxScaleFactor()
	if !(s > 0) || math.IsInf(s, 0) {
		return screen
	}
	return screen / s
}
