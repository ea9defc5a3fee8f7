package vecedit

import "math"

// Area returns the signed area enclosed by p, positive for clockwise
// paths in a y-down space. Open subpaths count as closed by a straight line
// back to their start, as when filled.
func (p *Path) Area() float64 {
	var area float64
	var current, start Point
	open := false

	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			if open {
				area += lineArea(current, start)
			}
			start, current = e.Point, e.Point
			open = true
		case LineTo:
			area += lineArea(current, e.Point)
			current = e.Point
		case CubicTo:
			area += cubicArea(current, e.Control1, e.Control2, e.Point)
			current = e.Point
		case Close:
			area += lineArea(current, start)
			current = start
			open = false
		}
	}
	if open {
		area += lineArea(current, start)
	}
	return area
}

// lineArea is the shoelace term of a line.
func lineArea(p0, p1 Point) float64 {
	return 0.5 * (p0.X*p1.Y - p1.X*p0.Y)
}

// cubicArea integrates x dy along a cubic (Green's theorem).
func cubicArea(p0, p1, p2, p3 Point) float64 {
	return (p0.X*(6*p1.Y+3*p2.Y+p3.Y) +
		3*p1.X*(-2*p0.Y+p2.Y+p3.Y) +
		3*p2.X*(-p0.Y-p1.Y+2*p3.Y) +
		p3.X*(-p0.Y-3*p1.Y-6*p2.Y)) / 20.0
}

// windingTolerance bounds the flattening error of curves in Winding.
const windingTolerance = 0.1

// Winding returns the winding number of pt with respect to the closed
// subpaths of p, using a horizontal ray to the right. Open subpaths are
// treated as closed by a straight line back to their start.
func (p *Path) Winding(pt Point) int {
	var winding int
	var current, start Point
	open := false

	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			if open {
				winding += lineWinding(current, start, pt)
			}
			start, current = e.Point, e.Point
			open = true
		case LineTo:
			winding += lineWinding(current, e.Point, pt)
			current = e.Point
		case CubicTo:
			winding += cubicWinding(CubicBez{P0: current, P1: e.Control1, P2: e.Control2, P3: e.Point}, pt)
			current = e.Point
		case Close:
			winding += lineWinding(current, start, pt)
			current = start
			open = false
		}
	}
	if open {
		winding += lineWinding(current, start, pt)
	}
	return winding
}

func lineWinding(p0, p1, pt Point) int {
	if p0.Y <= pt.Y && p1.Y > pt.Y {
		if isLeft(p0, p1, pt) > 0 {
			return 1
		}
	} else if p0.Y > pt.Y && p1.Y <= pt.Y {
		if isLeft(p0, p1, pt) < 0 {
			return -1
		}
	}
	return 0
}

// isLeft is positive if pt is left of p0-p1, negative if right, 0 if on.
func isLeft(p0, p1, pt Point) float64 {
	return (p1.X-p0.X)*(pt.Y-p0.Y) - (pt.X-p0.X)*(p1.Y-p0.Y)
}

func cubicWinding(c CubicBez, pt Point) int {
	minY := math.Min(math.Min(c.P0.Y, c.P1.Y), math.Min(c.P2.Y, c.P3.Y))
	maxY := math.Max(math.Max(c.P0.Y, c.P1.Y), math.Max(c.P2.Y, c.P3.Y))
	if pt.Y < minY || pt.Y > maxY {
		return 0
	}
	// A point right of the hull is right of the curve.
	maxX := math.Max(math.Max(c.P0.X, c.P1.X), math.Max(c.P2.X, c.P3.X))
	if pt.X > maxX {
		return 0
	}
	var winding int
	flattenCubic(c, windingTolerance*windingTolerance, func(p0, p1 Point) {
		winding += lineWinding(p0, p1, pt)
	})
	return winding
}

// cubicFlatness returns a squared measure of how far the control points
// stray from the chord, 16 times the squared distance bound.
func cubicFlatness(c CubicBez) float64 {
	ux := 3.0*c.P1.X - 2.0*c.P0.X - c.P3.X
	uy := 3.0*c.P1.Y - 2.0*c.P0.Y - c.P3.Y
	vx := 3.0*c.P2.X - c.P0.X - 2.0*c.P3.X
	vy := 3.0*c.P2.Y - c.P0.Y - 2.0*c.P3.Y
	return math.Max(ux*ux+uy*uy, vx*vx+vy*vy)
}

// flattenCubic subdivides c until each piece is within the tolerance and
// calls fn with the chord of every piece, in order.
func flattenCubic(c CubicBez, toleranceSq float64, fn func(p0, p1 Point)) {
	if cubicFlatness(c) <= toleranceSq*16 {
		fn(c.P0, c.P3)
		return
	}
	c1, c2 := c.Subdivide()
	flattenCubic(c1, toleranceSq, fn)
	flattenCubic(c2, toleranceSq, fn)
}

// Contains reports whether pt is inside the path under the non-zero rule.
func (p *Path) Contains(pt Point) bool {
	return p.Winding(pt) != 0
}

// BoundingBox returns the tight axis-aligned bounding box of the path.
func (p *Path) BoundingBox() Rect {
	var bbox Rect
	var current Point
	first := true
	add := func(r Rect) {
		if first {
			bbox, first = r, false
			return
		}
		bbox = bbox.Union(r)
	}

	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			add(NewRect(e.Point, e.Point))
			current = e.Point
		case LineTo:
			add(NewRect(e.Point, e.Point))
			current = e.Point
		case CubicTo:
			add(CubicBez{P0: current, P1: e.Control1, P2: e.Control2, P3: e.Point}.BoundingBox())
			current = e.Point
		}
	}
	return bbox
}

// Flatten converts the path to polylines, one per subpath, approximating
// curves within tolerance. Closed subpaths end at their start point. A
// tolerance of zero or less uses 0.1.
func (p *Path) Flatten(tolerance float64) [][]Point {
	if tolerance <= 0 {
		tolerance = 0.1
	}
	var out [][]Point
	var poly []Point
	var current, start Point

	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			if len(poly) > 0 {
				out = append(out, poly)
			}
			poly = []Point{e.Point}
			start, current = e.Point, e.Point
		case LineTo:
			poly = append(poly, e.Point)
			current = e.Point
		case CubicTo:
			flattenCubic(CubicBez{P0: current, P1: e.Control1, P2: e.Control2, P3: e.Point},
				tolerance*tolerance, func(_, p1 Point) {
					poly = append(poly, p1)
				})
			current = e.Point
		case Close:
			if current != start {
				poly = append(poly, start)
			}
			out = append(out, poly)
			poly = nil
			current = start
		}
	}
	if len(poly) > 0 {
		out = append(out, poly)
	}
	return out
}

// Length returns the total arc length of the path, with curves measured
// to within accuracy. Close adds its closing line. An accuracy of zero or
// less uses 0.001.
func (p *Path) Length(accuracy float64) float64 {
	if accuracy <= 0 {
		accuracy = 0.001
	}
	var length float64
	var current, start Point

	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			start, current = e.Point, e.Point
		case LineTo:
			length += current.Distance(e.Point)
			current = e.Point
		case CubicTo:
			c := CubicBez{P0: current, P1: e.Control1, P2: e.Control2, P3: e.Point}
			length += cubicLength(c, accuracy*accuracy)
			current = e.Point
		case Close:
			length += current.Distance(start)
			current = start
		}
	}
	return length
}

// cubicLength averages chord and control polygon once they agree within
// the accuracy, subdividing otherwise.
func cubicLength(c CubicBez, accuracySq float64) float64 {
	chord := c.P0.Distance(c.P3)
	polygon := c.P0.Distance(c.P1) + c.P1.Distance(c.P2) + c.P2.Distance(c.P3)
	diff := polygon - chord
	if diff*diff <= accuracySq {
		return (chord + polygon) / 2
	}
	c1, c2 := c.Subdivide()
	return cubicLength(c1, accuracySq) + cubicLength(c2, accuracySq)
}
