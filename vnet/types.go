package vnet

import (
	"fmt"
	"math"
	"strings"

	"github.com/gogpu/vecedit"
)

// VertexID identifies a vertex for the lifetime of a Network.
// The zero value never refers to a vertex.
type VertexID uint64

// SegmentID identifies a segment for the lifetime of a Network.
// The zero value never refers to a segment.
type SegmentID uint64

// Vertex is a vertex and its position in local coordinates.
type Vertex struct {
	ID    VertexID
	Point vecedit.Point
}

// Segment is a cubic Bezier leg from vertex A to vertex B.
//
// TA and TB are tangent deltas relative to A and B, not absolute control
// points. A segment with both tangents zero is a straight line.
type Segment struct {
	ID     SegmentID
	A, B   VertexID
	TA, TB vecedit.Vec2
}

// IsStraight reports whether both tangents are zero.
func (s Segment) IsStraight() bool {
	return s.TA.IsZero() && s.TB.IsZero()
}

// Tangent returns the tangent for control c.
func (s Segment) Tangent(c Control) vecedit.Vec2 {
	if c == ControlB {
		return s.TB
	}
	return s.TA
}

// Vertex returns the vertex that control c hangs off.
func (s Segment) Vertex(c Control) VertexID {
	if c == ControlB {
		return s.B
	}
	return s.A
}

// Other returns the end opposite to v.
func (s Segment) Other(v VertexID) VertexID {
	if s.A == v {
		return s.B
	}
	return s.A
}

// ControlAt returns the control attached to v, if s touches v.
func (s Segment) ControlAt(v VertexID) (Control, bool) {
	switch v {
	case s.A:
		return ControlA, true
	case s.B:
		return ControlB, true
	}
	return ControlA, false
}

// Touches reports whether v is one of the segment's ends.
func (s Segment) Touches(v VertexID) bool {
	return s.A == v || s.B == v
}

// Control names one of the two tangents of a segment.
type Control int

const (
	// ControlA is the tangent at the start vertex ("ta").
	ControlA Control = iota
	// ControlB is the tangent at the end vertex ("tb").
	ControlB
)

// String returns "ta" or "tb".
func (c Control) String() string {
	if c == ControlB {
		return "tb"
	}
	return "ta"
}

// Mirroring controls how editing one tangent affects the opposite tangent
// at the same vertex.
type Mirroring int

const (
	// MirrorNone edits only the given tangent.
	MirrorNone Mirroring = iota
	// MirrorAngle points the opposite tangent the other way, keeping its length.
	MirrorAngle
	// MirrorAll sets the opposite tangent to the exact negation.
	MirrorAll
	// MirrorAuto picks one of the above from the current tangents.
	MirrorAuto
)

var mirroringNames = [...]string{"none", "angle", "all", "auto"}

// String returns the lowercase mode name.
func (m Mirroring) String() string {
	if m < 0 || int(m) >= len(mirroringNames) {
		return fmt.Sprintf("Mirroring(%d)", int(m))
	}
	return mirroringNames[m]
}

// ParseMirroring converts a mode name to a Mirroring.
func ParseMirroring(s string) (Mirroring, error) {
	for i, name := range mirroringNames {
		if strings.EqualFold(s, name) {
			return Mirroring(i), nil
		}
	}
	return MirrorNone, fmt.Errorf("vnet: mirroring mode %q: %w", s, vecedit.ErrInvalidArgument)
}

// angleEpsilon is the largest normalized cross product for which two
// tangents still count as collinear.
const angleEpsilon = 1e-3

// InferMirroring guesses the mirroring relationship between two tangents at
// the same vertex. Opposite collinear tangents of equal length are MirrorAll,
// of different length MirrorAngle; everything else, including a zero
// tangent, is MirrorNone.
func InferMirroring(ta, tb vecedit.Vec2) Mirroring {
	if ta.IsZero() || tb.IsZero() {
		return MirrorNone
	}
	la, lb := ta.Length(), tb.Length()
	if math.Abs(ta.Cross(tb)/(la*lb)) > angleEpsilon {
		return MirrorNone
	}
	if ta.Dot(tb) >= 0 {
		return MirrorNone
	}
	if math.Abs(la-lb) < 1e-12 {
		return MirrorAll
	}
	return MirrorAngle
}

// Data is the index-based form of a network exchanged with a document
// store. Segment ends are positions in Vertices.
type Data struct {
	Vertices []vecedit.Point
	Segments []SegmentData
	Offset   vecedit.Vec2
}

// SegmentData is a segment in Data.
type SegmentData struct {
	A, B   int
	TA, TB vecedit.Vec2
}
