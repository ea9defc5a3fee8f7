package stops

import (
	"fmt"
	"math"
	"strings"

	"github.com/gogpu/vecedit"
)

// Kind is the gradient geometry a Track describes.
type Kind int

const (
	// Linear gradients run along A to B.
	Linear Kind = iota
	// Radial gradients grow from A; B and C give the two radii.
	Radial
	// Sweep gradients turn around A starting in the direction of B.
	Sweep
)

var kindNames = [...]string{"linear", "radial", "sweep"}

// String returns the lowercase kind name.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind converts a kind name to a Kind.
func ParseKind(s string) (Kind, error) {
	for i, name := range kindNames {
		if strings.EqualFold(s, name) {
			return Kind(i), nil
		}
	}
	return Linear, fmt.Errorf("stops: gradient kind %q: %w", s, vecedit.ErrInvalidArgument)
}

// Track holds the three control points of a gradient: A is the origin, B
// the end of the main axis and C the end of the cross axis. Offsets along
// the track map to positions between A and B, or around A for sweeps.
type Track struct {
	Kind    Kind
	A, B, C vecedit.Point
}

// BaseTrack returns the control points of an untransformed gradient in the
// unit square.
func BaseTrack(kind Kind) Track {
	if kind == Linear {
		return Track{Kind: kind, A: vecedit.Pt(0, 0.5), B: vecedit.Pt(1, 0.5), C: vecedit.Pt(0, 1)}
	}
	return Track{Kind: kind, A: vecedit.Pt(0.5, 0.5), B: vecedit.Pt(1, 0.5), C: vecedit.Pt(0.5, 1)}
}

// minAxis replaces a zero axis length to keep directions defined.
const minAxis = 1e-6

// TrackFromTransform maps the base track through m. C is normalized to lie
// perpendicular to the A-B axis: at half the axis length for linear
// gradients, at its mapped distance from A otherwise.
func TrackFromTransform(kind Kind, m vecedit.Matrix) Track {
	base := BaseTrack(kind)
	t := Track{
		Kind: kind,
		A:    m.TransformPoint(base.A),
		B:    m.TransformPoint(base.B),
		C:    m.TransformPoint(base.C),
	}
	axis := t.B.Sub(t.A)
	length := axis.Length()
	if length == 0 {
		length = minAxis
	}
	normal := axis.Perp().Mul(1 / length)
	dist := length / 2
	if kind != Linear {
		dist = t.C.Distance(t.A)
	}
	t.C = t.A.Add(normal.Mul(dist))
	return t
}

// Transform returns the matrix that maps the base track onto t. Linear
// tracks use only A and B. Radial and sweep tracks use C projected onto the
// normal of the A-B axis.
func (t Track) Transform() vecedit.Matrix {
	axis := t.B.Sub(t.A)
	length := axis.Length()
	if length == 0 {
		length = minAxis
	}
	dir := axis.Mul(1 / length)

	if t.Kind == Linear {
		m := vecedit.Matrix{A: axis.X, B: -dir.Y, D: axis.Y, E: dir.X}
		m.C = t.A.X - m.B*0.5
		m.F = t.A.Y - m.E*0.5
		return m
	}

	normal := dir.Perp()
	cross := normal.Mul(t.C.Sub(t.A).Dot(normal))

	base := BaseTrack(t.Kind)
	u, v := base.B.Sub(base.A), base.C.Sub(base.A)
	// Linear part solves M*u = axis and M*v = cross.
	basis := vecedit.Matrix{A: u.X, B: v.X, D: u.Y, E: v.Y}
	inv, err := basis.Invert()
	if err != nil {
		// The base vectors are fixed and orthogonal.
		panic(err)
	}
	m := vecedit.Matrix{A: axis.X, B: cross.X, D: axis.Y, E: cross.Y}.Multiply(inv)
	origin := m.TransformVector(vecedit.PointToVec2(base.A))
	m.C = t.A.X - origin.X
	m.F = t.A.Y - origin.Y
	return m
}

// Map returns the track with every control point mapped through m, for
// example from unit space into a shape's box.
func (t Track) Map(m vecedit.Matrix) Track {
	return Track{
		Kind: t.Kind,
		A:    m.TransformPoint(t.A),
		B:    m.TransformPoint(t.B),
		C:    m.TransformPoint(t.C),
	}
}

// Project returns the offset of the track position closest to p. Linear
// and radial tracks project onto A-B and clamp to [0, 1]; sweep tracks use
// the angle around A relative to B, in [0, 1).
func (t Track) Project(p vecedit.Point) float64 {
	axis := t.B.Sub(t.A)
	rel := p.Sub(t.A)
	if t.Kind == Sweep {
		angle := rel.Atan2() - axis.Atan2()
		angle = math.Mod(angle, 2*math.Pi)
		if angle < 0 {
			angle += 2 * math.Pi
		}
		return angle / (2 * math.Pi)
	}
	l2 := axis.Dot(axis)
	if l2 == 0 {
		return 0
	}
	return clamp01(rel.Dot(axis) / l2)
}

// At returns the position of offset on the track. Sweep positions lie on
// the ellipse with radii |AB| and |AC|, rotated to the A-B axis.
func (t Track) At(offset float64) vecedit.Point {
	if t.Kind != Sweep {
		return t.A.Lerp(t.B, offset)
	}
	axis := t.B.Sub(t.A)
	rx, ry := axis.Length(), t.C.Distance(t.A)
	rot := axis.Atan2()
	theta := offset * 2 * math.Pi
	local := vecedit.V2(rx*math.Cos(theta), ry*math.Sin(theta))
	return t.A.Add(vecedit.Rotate(rot).TransformVector(local))
}
