package vecedit

import (
	"math"
	"sort"
)

// Rect represents an axis-aligned rectangle.
// Min is the top-left corner (minimum coordinates).
// Max is the bottom-right corner (maximum coordinates).
type Rect struct {
	Min, Max Point
}

// NewRect creates a rectangle from two points.
// The points are normalized so Min <= Max.
func NewRect(p1, p2 Point) Rect {
	return Rect{
		Min: Point{X: math.Min(p1.X, p2.X), Y: math.Min(p1.Y, p2.Y)},
		Max: Point{X: math.Max(p1.X, p2.X), Y: math.Max(p1.Y, p2.Y)},
	}
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.Max.X - r.Min.X
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.Max.Y - r.Min.Y
}

// Union returns the smallest rectangle containing both r and other.
func (r Rect) Union(other Rect) Rect {
	return Rect{
		Min: Point{X: math.Min(r.Min.X, other.Min.X), Y: math.Min(r.Min.Y, other.Min.Y)},
		Max: Point{X: math.Max(r.Max.X, other.Max.X), Y: math.Max(r.Max.Y, other.Max.Y)},
	}
}

// Contains returns true if the point is inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// Line represents a line segment from P0 to P1.
type Line struct {
	P0, P1 Point
}

// Eval evaluates the line at parameter t (0 to 1).
func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

// BoundingBox returns the axis-aligned bounding box of the line.
func (l Line) BoundingBox() Rect {
	return NewRect(l.P0, l.P1)
}

// Length returns the length of the line segment.
func (l Line) Length() float64 {
	return l.P0.Distance(l.P1)
}

// CubicBez represents a cubic Bezier curve with control points P0, P1, P2, P3.
// P0 is the start point, P1 and P2 are control points, P3 is the end point.
type CubicBez struct {
	P0, P1, P2, P3 Point
}

// Eval evaluates the curve at parameter t (0 to 1) in Bernstein form.
func (c CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	mt2 := mt * mt
	mt3 := mt2 * mt
	t2 := t * t
	t3 := t2 * t

	// (1-t)^3 * P0 + 3(1-t)^2*t * P1 + 3(1-t)*t^2 * P2 + t^3 * P3
	return Point{
		X: mt3*c.P0.X + 3*mt2*t*c.P1.X + 3*mt*t2*c.P2.X + t3*c.P3.X,
		Y: mt3*c.P0.Y + 3*mt2*t*c.P1.Y + 3*mt*t2*c.P2.Y + t3*c.P3.Y,
	}
}

// SplitAt splits the curve at parameter t using de Casteljau's algorithm.
func (c CubicBez) SplitAt(t float64) (CubicBez, CubicBez) {
	p01 := c.P0.Lerp(c.P1, t)
	p12 := c.P1.Lerp(c.P2, t)
	p23 := c.P2.Lerp(c.P3, t)
	p012 := p01.Lerp(p12, t)
	p123 := p12.Lerp(p23, t)
	mid := p012.Lerp(p123, t)

	return CubicBez{P0: c.P0, P1: p01, P2: p012, P3: mid},
		CubicBez{P0: mid, P1: p123, P2: p23, P3: c.P3}
}

// Subdivide splits the curve at t=0.5.
func (c CubicBez) Subdivide() (CubicBez, CubicBez) {
	return c.SplitAt(0.5)
}

// Extrema returns parameter values in [0, 1] where the derivative of either
// coordinate is zero. There are at most four.
func (c CubicBez) Extrema() []float64 {
	result := make([]float64, 0, 4)

	d0 := c.P1.Sub(c.P0)
	d1 := c.P2.Sub(c.P1)
	d2 := c.P3.Sub(c.P2)

	// B'(t)/3 = (d0 - 2*d1 + d2)t^2 + 2(d1 - d0)t + d0
	result = append(result, solveQuadraticInUnitInterval(d0.X-2*d1.X+d2.X, 2*(d1.X-d0.X), d0.X)...)
	result = append(result, solveQuadraticInUnitInterval(d0.Y-2*d1.Y+d2.Y, 2*(d1.Y-d0.Y), d0.Y)...)

	sort.Float64s(result)
	return result
}

// BoundingBox returns the tight axis-aligned bounding box of the curve.
func (c CubicBez) BoundingBox() Rect {
	bbox := NewRect(c.P0, c.P3)
	for _, t := range c.Extrema() {
		p := c.Eval(t)
		bbox = bbox.Union(NewRect(p, p))
	}
	return bbox
}

// Tangent returns the derivative of the curve at parameter t.
func (c CubicBez) Tangent(t float64) Vec2 {
	mt := 1.0 - t
	d0 := c.P1.Sub(c.P0)
	d1 := c.P2.Sub(c.P1)
	d2 := c.P3.Sub(c.P2)
	return d0.Mul(3 * mt * mt).Add(d1.Mul(6 * mt * t)).Add(d2.Mul(3 * t * t))
}

// Nearest returns the parameter of the point on the curve closest to p and
// the distance to it. The best of a uniform sampling is refined by ternary
// search between its neighbors.
func (c CubicBez) Nearest(p Point) (t, dist float64) {
	const samples = 32
	distSq := func(u float64) float64 {
		d := c.Eval(u).Sub(p)
		return d.Dot(d)
	}

	best, bestD := 0.0, math.Inf(1)
	for i := 0; i <= samples; i++ {
		u := float64(i) / samples
		if d := distSq(u); d < bestD {
			best, bestD = u, d
		}
	}

	lo, hi := math.Max(best-1.0/samples, 0), math.Min(best+1.0/samples, 1)
	for i := 0; i < 50; i++ {
		m1 := lo + (hi-lo)/3
		m2 := hi - (hi-lo)/3
		if distSq(m1) < distSq(m2) {
			hi = m2
		} else {
			lo = m1
		}
	}
	if u := (lo + hi) / 2; distSq(u) < bestD {
		best, bestD = u, distSq(u)
	}
	return best, math.Sqrt(bestD)
}

// SolveTangentsThrough returns tangents for the cubic from a to b that make
// it pass through p at parameter t, changing ta and tb as little as
// possible. Tangents are relative: the control points are a+ta and b+tb.
// It reports false unless 0 < t < 1.
func SolveTangentsThrough(a, b Point, ta, tb Vec2, t float64, p Point) (Vec2, Vec2, bool) {
	if !(t > 0 && t < 1) {
		return ta, tb, false
	}
	mt := 1 - t
	// B(t) moves by w1 per unit of ta and by w2 per unit of tb.
	w1 := 3 * mt * mt * t
	w2 := 3 * mt * t * t
	norm := w1*w1 + w2*w2

	d := p.Sub(CubicBez{P0: a, P1: a.Add(ta), P2: b.Add(tb), P3: b}.Eval(t))
	return ta.Add(d.Mul(w1 / norm)), tb.Add(d.Mul(w2 / norm)), true
}
