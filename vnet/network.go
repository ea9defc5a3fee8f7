package vnet

import (
	"fmt"
	"math"

	"github.com/jinzhu/copier"

	"github.com/gogpu/vecedit"
	"github.com/gogpu/vecedit/internal/arena"
)

// kappa is the control length ratio that approximates a quarter circle with
// a cubic Bezier.
const kappa = 0.5522847498307936

// segment is the stored form of a Segment without its ID.
type segment struct {
	A, B   VertexID
	TA, TB vecedit.Vec2
}

// state is everything a Network owns. Fields are exported for copier.
type state struct {
	Vertices arena.Arena[vecedit.Point]
	Segments arena.Arena[segment]
	Offset   vecedit.Vec2
}

// Network is an editable graph of vertices joined by cubic Bezier segments.
//
// Vertex points are local; Offset is added to obtain model-space positions.
// Vertex and segment IDs are stable: structural edits never change the ID
// of an unrelated element, and IDs are never reused.
//
// A Network is not safe for concurrent use.
type Network struct {
	s state
}

// New returns an empty network.
func New() *Network {
	return &Network{}
}

// FromData builds a network from its index-based form.
func FromData(d Data) (*Network, error) {
	n := New()
	n.s.Offset = d.Offset
	ids := make([]VertexID, len(d.Vertices))
	for i, p := range d.Vertices {
		ids[i] = n.AddVertex(p)
	}
	for i, sd := range d.Segments {
		if sd.A < 0 || sd.A >= len(ids) || sd.B < 0 || sd.B >= len(ids) {
			return nil, fmt.Errorf("vnet: segment %d references vertex %d-%d of %d: %w",
				i, sd.A, sd.B, len(ids), vecedit.ErrInvalidArgument)
		}
		if _, err := n.AddSegment(ids[sd.A], ids[sd.B], sd.TA, sd.TB); err != nil {
			return nil, fmt.Errorf("vnet: segment %d: %w", i, err)
		}
	}
	return n, nil
}

// Polyline returns an open network through points joined by straight legs.
func Polyline(points []vecedit.Point) *Network {
	n := New()
	var prev VertexID
	for i, p := range points {
		id := n.AddVertex(p)
		if i > 0 {
			n.addSegment(prev, id, vecedit.Vec2{}, vecedit.Vec2{})
		}
		prev = id
	}
	return n
}

// Polygon returns a closed network through points joined by straight legs.
func Polygon(points []vecedit.Point) *Network {
	n := Polyline(points)
	if c := n.s.Vertices.Len(); c > 1 {
		first := VertexID(n.s.Vertices.At(0).ID)
		last := VertexID(n.s.Vertices.At(c - 1).ID)
		n.addSegment(last, first, vecedit.Vec2{}, vecedit.Vec2{})
	}
	return n
}

// FromRect returns a closed rectangle starting at the top-left corner.
func FromRect(r vecedit.Rect) *Network {
	return Polygon([]vecedit.Point{
		r.Min,
		{X: r.Max.X, Y: r.Min.Y},
		r.Max,
		{X: r.Min.X, Y: r.Max.Y},
	})
}

// FromEllipse returns the ellipse inscribed in r as four cubic segments,
// starting at the top.
func FromEllipse(r vecedit.Rect) *Network {
	c := r.Min.Midpoint(r.Max)
	rx, ry := r.Width()/2, r.Height()/2
	kx, ky := rx*kappa, ry*kappa

	n := New()
	top := n.AddVertex(vecedit.Pt(c.X, c.Y-ry))
	right := n.AddVertex(vecedit.Pt(c.X+rx, c.Y))
	bottom := n.AddVertex(vecedit.Pt(c.X, c.Y+ry))
	left := n.AddVertex(vecedit.Pt(c.X-rx, c.Y))

	n.addSegment(top, right, vecedit.V2(kx, 0), vecedit.V2(0, -ky))
	n.addSegment(right, bottom, vecedit.V2(0, ky), vecedit.V2(kx, 0))
	n.addSegment(bottom, left, vecedit.V2(-kx, 0), vecedit.V2(0, ky))
	n.addSegment(left, top, vecedit.V2(0, -ky), vecedit.V2(-kx, 0))
	return n
}

// regularInset scales the radii of regular shapes inside their box.
const regularInset = 0.9

// RegularPolygon returns a closed regular polygon with the given number of
// corners inscribed in r, starting at the top. The radii are 0.9 of half
// the box size.
func RegularPolygon(r vecedit.Rect, points int) (*Network, error) {
	if points < 3 {
		return nil, fmt.Errorf("vnet: regular polygon with %d points: %w", points, vecedit.ErrInvalidArgument)
	}
	c := r.Min.Midpoint(r.Max)
	rx, ry := r.Width()/2*regularInset, r.Height()/2*regularInset
	corners := make([]vecedit.Point, points)
	for i := range corners {
		a := float64(i)*2*math.Pi/float64(points) - math.Pi/2
		corners[i] = vecedit.Pt(c.X+rx*math.Cos(a), c.Y+ry*math.Sin(a))
	}
	return Polygon(corners), nil
}

// RegularStarPolygon returns a closed star with the given number of outer
// points inscribed in r, starting at the top. Inner corners sit at inner
// times the outer radius, halfway between outer points.
func RegularStarPolygon(r vecedit.Rect, points int, inner float64) (*Network, error) {
	if points < 2 {
		return nil, fmt.Errorf("vnet: star with %d points: %w", points, vecedit.ErrInvalidArgument)
	}
	if !(inner >= 0 && inner <= 1) {
		return nil, fmt.Errorf("vnet: star inner radius %v outside [0, 1]: %w", inner, vecedit.ErrInvalidArgument)
	}
	c := r.Min.Midpoint(r.Max)
	rx, ry := r.Width()/2*regularInset, r.Height()/2*regularInset
	step := math.Pi / float64(points)
	corners := make([]vecedit.Point, 2*points)
	for i := range corners {
		a := float64(i)*step - math.Pi/2
		k := 1.0
		if i%2 == 1 {
			k = inner
		}
		corners[i] = vecedit.Pt(c.X+rx*k*math.Cos(a), c.Y+ry*k*math.Sin(a))
	}
	return Polygon(corners), nil
}

// Data returns the index-based form of the network.
func (n *Network) Data() Data {
	d := Data{
		Vertices: n.s.Vertices.Values(),
		Segments: make([]SegmentData, 0, n.s.Segments.Len()),
		Offset:   n.s.Offset,
	}
	for _, e := range n.s.Segments.Items {
		d.Segments = append(d.Segments, SegmentData{
			A:  n.VertexIndex(e.Value.A),
			B:  n.VertexIndex(e.Value.B),
			TA: e.Value.TA,
			TB: e.Value.TB,
		})
	}
	return d
}

// Clone returns a deep copy of the network. IDs are preserved.
func (n *Network) Clone() *Network {
	out := New()
	if err := copier.CopyWithOption(&out.s, &n.s, copier.Option{DeepCopy: true}); err != nil {
		// Same type on both sides.
		panic(fmt.Sprintf("vnet: clone: %v", err))
	}
	return out
}

// Offset returns the local origin in model space.
func (n *Network) Offset() vecedit.Vec2 {
	return n.s.Offset
}

// SetOffset moves the local origin.
func (n *Network) SetOffset(v vecedit.Vec2) {
	n.s.Offset = v
}

// AddVertex appends a vertex at local point p.
func (n *Network) AddVertex(p vecedit.Point) VertexID {
	return VertexID(n.s.Vertices.Add(p))
}

// FindVertex returns the first vertex located exactly at local point p.
func (n *Network) FindVertex(p vecedit.Point) (VertexID, bool) {
	for _, e := range n.s.Vertices.Items {
		if e.Value == p {
			return VertexID(e.ID), true
		}
	}
	return 0, false
}

// AddSegment appends a segment from a to b.
func (n *Network) AddSegment(a, b VertexID, ta, tb vecedit.Vec2) (SegmentID, error) {
	if !n.hasVertex(a) {
		return 0, n.vertexErr(a)
	}
	if !n.hasVertex(b) {
		return 0, n.vertexErr(b)
	}
	if a == b {
		return 0, fmt.Errorf("vnet: segment from vertex %d to itself: %w", a, vecedit.ErrInvalidArgument)
	}
	return n.addSegment(a, b, ta, tb), nil
}

func (n *Network) addSegment(a, b VertexID, ta, tb vecedit.Vec2) SegmentID {
	return SegmentID(n.s.Segments.Add(segment{A: a, B: b, TA: ta, TB: tb}))
}

// DeleteVertex removes a vertex and the segments that reference it.
//
// A vertex joining exactly two segments that lead to two different vertices
// is bridged instead: the two segments become one segment between the outer
// vertices, keeping their outer tangents. The merged segment keeps the ID
// and position of the first of the two. In every other case the incident
// segments are dropped.
func (n *Network) DeleteVertex(id VertexID) error {
	if !n.hasVertex(id) {
		return n.vertexErr(id)
	}

	incident := n.IncidentSegments(id)
	if len(incident) == 2 {
		first, _ := n.Segment(incident[0])
		second, _ := n.Segment(incident[1])
		outerA, outerB := first.Other(id), second.Other(id)
		if outerA != outerB {
			merged := segment{
				A:  outerA,
				B:  outerB,
				TA: tangentAt(first, outerA),
				TB: tangentAt(second, outerB),
			}
			n.s.Segments.Set(arena.ID(first.ID), merged)
			n.s.Segments.Remove(arena.ID(second.ID))
			n.s.Vertices.Remove(arena.ID(id))
			vecedit.Logger().Debug("vnet: bridged deleted vertex",
				"vertex", id, "segment", first.ID, "removed", second.ID)
			return nil
		}
	}

	n.s.Segments.RemoveFunc(func(_ arena.ID, s segment) bool {
		return s.A == id || s.B == id
	})
	n.s.Vertices.Remove(arena.ID(id))
	return nil
}

// tangentAt returns the tangent of s at its end v.
func tangentAt(s Segment, v VertexID) vecedit.Vec2 {
	if s.A == v {
		return s.TA
	}
	return s.TB
}

// DeleteSegment removes a segment. Its vertices stay.
func (n *Network) DeleteSegment(id SegmentID) error {
	if !n.s.Segments.Remove(arena.ID(id)) {
		return n.segmentErr(id)
	}
	return nil
}

// MoveVertex sets the local position of a vertex.
func (n *Network) MoveVertex(id VertexID, p vecedit.Point) error {
	if !n.s.Vertices.Set(arena.ID(id), p) {
		return n.vertexErr(id)
	}
	return nil
}

// TranslateVertex moves a vertex by d.
func (n *Network) TranslateVertex(id VertexID, d vecedit.Vec2) error {
	p := n.s.Vertices.Ptr(arena.ID(id))
	if p == nil {
		return n.vertexErr(id)
	}
	*p = p.Add(d)
	return nil
}

// Translate moves every vertex by d. Tangents are unaffected.
func (n *Network) Translate(d vecedit.Vec2) {
	for i := range n.s.Vertices.Items {
		n.s.Vertices.Items[i].Value = n.s.Vertices.Items[i].Value.Add(d)
	}
}

// Transform applies m to the local geometry. Vertices take the full affine
// mapping; tangents are directions and take only the linear part. The
// offset is unchanged.
func (n *Network) Transform(m vecedit.Matrix) {
	for i := range n.s.Vertices.Items {
		v := &n.s.Vertices.Items[i].Value
		*v = m.TransformPoint(*v)
	}
	for i := range n.s.Segments.Items {
		s := &n.s.Segments.Items[i].Value
		s.TA = m.TransformVector(s.TA)
		s.TB = m.TransformVector(s.TB)
	}
}

// SetTangent replaces tangent c of segment id with v and, depending on
// mode, updates the opposite tangent at the same vertex.
//
// Mirroring only applies when exactly one other segment touches the vertex.
// MirrorAuto infers the mode from the tangents as they were before the edit.
func (n *Network) SetTangent(id SegmentID, c Control, v vecedit.Vec2, mode Mirroring) error {
	seg := n.s.Segments.Ptr(arena.ID(id))
	if seg == nil {
		return n.segmentErr(id)
	}
	vertex := seg.A
	current := seg.TA
	if c == ControlB {
		vertex = seg.B
		current = seg.TB
	}

	var other *segment
	otherControl := ControlA
	if connected := n.IncidentSegments(vertex); len(connected) == 2 {
		oid := connected[0]
		if oid == id {
			oid = connected[1]
		}
		other = n.s.Segments.Ptr(arena.ID(oid))
		if other.B == vertex {
			otherControl = ControlB
		}
	}

	effective := mode
	if mode == MirrorAuto {
		effective = MirrorNone
		if other != nil {
			effective = InferMirroring(current, other.tangent(otherControl))
		}
	}

	seg.setTangent(c, v)
	if other == nil {
		return nil
	}
	switch effective {
	case MirrorAll:
		other.setTangent(otherControl, v.Neg())
	case MirrorAngle:
		length := other.tangent(otherControl).Length()
		other.setTangent(otherControl, vecedit.FromAngle(v.Atan2()+math.Pi, length))
	}
	return nil
}

func (s *segment) tangent(c Control) vecedit.Vec2 {
	if c == ControlB {
		return s.TB
	}
	return s.TA
}

func (s *segment) setTangent(c Control, v vecedit.Vec2) {
	if c == ControlB {
		s.TB = v
	} else {
		s.TA = v
	}
}

// ClearTangent sets tangent c of segment id to zero.
func (n *Network) ClearTangent(id SegmentID, c Control) error {
	return n.SetTangent(id, c, vecedit.Vec2{}, MirrorNone)
}

// SplitSegment inserts a vertex at the parametric midpoint of a segment and
// replaces it with two consecutive segments that trace the same shape. The
// first half keeps the segment's ID; the second half is placed right after
// it. It returns the new vertex.
func (n *Network) SplitSegment(id SegmentID) (VertexID, error) {
	seg, ok := n.Segment(id)
	if !ok {
		return 0, n.segmentErr(id)
	}
	a, _ := n.s.Vertices.Get(arena.ID(seg.A))
	b, _ := n.s.Vertices.Get(arena.ID(seg.B))

	if seg.IsStraight() {
		mid := n.AddVertex(a.Midpoint(b))
		n.s.Segments.Set(arena.ID(id), segment{A: seg.A, B: mid})
		n.s.Segments.Insert(n.SegmentIndex(id)+1, segment{A: mid, B: seg.B})
		return mid, nil
	}

	left, right := vecedit.CubicBez{P0: a, P1: a.Add(seg.TA), P2: b.Add(seg.TB), P3: b}.Subdivide()
	mid := n.AddVertex(left.P3)
	n.s.Segments.Set(arena.ID(id), segment{
		A: seg.A, B: mid,
		TA: left.P1.Sub(left.P0), TB: left.P2.Sub(left.P3),
	})
	n.s.Segments.Insert(n.SegmentIndex(id)+1, segment{
		A: mid, B: seg.B,
		TA: right.P1.Sub(right.P0), TB: right.P2.Sub(right.P3),
	})
	return mid, nil
}

// BendCorner turns the sharp corner at a vertex with exactly two segments
// into a smooth one. Both tangents lie perpendicular to the angle bisector
// and take kappa times half of their own segment's length, so bending the
// four corners of a square yields a circle. A straight-through vertex is
// left unchanged.
func (n *Network) BendCorner(id VertexID) error {
	if !n.hasVertex(id) {
		return n.vertexErr(id)
	}
	incident := n.IncidentSegments(id)
	if len(incident) != 2 {
		return fmt.Errorf("vnet: vertex %d joins %d segments, want 2: %w", id, len(incident), vecedit.ErrInvalidArgument)
	}

	p, _ := n.s.Vertices.Get(arena.ID(id))
	type leg struct {
		seg     *segment
		control Control
		dir     vecedit.Vec2
		length  float64
	}
	var legs [2]leg
	for i, sid := range incident {
		s := n.s.Segments.Ptr(arena.ID(sid))
		c := ControlA
		if s.A != id {
			c = ControlB
		}
		op, _ := n.s.Vertices.Get(arena.ID(Segment{A: s.A, B: s.B}.Other(id)))
		d := op.Sub(p)
		legs[i] = leg{seg: s, control: c, dir: d.Normalize(), length: d.Length()}
	}

	bisector := legs[0].dir.Add(legs[1].dir)
	if bisector.IsZero() {
		return nil
	}
	base := bisector.Perp()
	if bisector.Cross(legs[0].dir) < 0 {
		base = base.Neg()
	}
	legs[0].seg.setTangent(legs[0].control, base.Mul(legs[0].length/2*kappa))
	legs[1].seg.setTangent(legs[1].control, base.Neg().Mul(legs[1].length/2*kappa))
	return nil
}

// bendTolerance is the model-space distance from the chord within which
// bending a straight segment keeps it straight.
const bendTolerance = 0.1

// BendSegment reshapes a segment so that its cubic form passes through the
// model-space point p at parameter t, changing the tangents as little as
// possible. A straight segment stays straight while p lies within
// bendTolerance of its chord. t must lie strictly inside (0, 1).
func (n *Network) BendSegment(id SegmentID, t float64, p vecedit.Point) error {
	s, ok := n.Segment(id)
	if !ok {
		return n.segmentErr(id)
	}
	return n.bend(id, t, p, s.TA, s.TB)
}

// bend solves the tangents of segment id from the given base tangents.
func (n *Network) bend(id SegmentID, t float64, p vecedit.Point, ta, tb vecedit.Vec2) error {
	seg := n.s.Segments.Ptr(arena.ID(id))
	if seg == nil {
		return n.segmentErr(id)
	}
	if !(t > 0 && t < 1) {
		return fmt.Errorf("vnet: bend segment %d at t=%v: %w", id, t, vecedit.ErrInvalidArgument)
	}
	a, _ := n.Absolute(seg.A)
	b, _ := n.Absolute(seg.B)

	if ta.IsZero() && tb.IsZero() && chordDistance(p, a, b) <= bendTolerance {
		seg.TA, seg.TB = vecedit.Vec2{}, vecedit.Vec2{}
		return nil
	}
	nta, ntb, _ := vecedit.SolveTangentsThrough(a, b, ta, tb, t, p)
	seg.TA, seg.TB = nta, ntb
	return nil
}

// chordDistance returns the distance from p to the line segment ab.
func chordDistance(p, a, b vecedit.Point) float64 {
	ab := b.Sub(a)
	l2 := ab.Dot(ab)
	if l2 == 0 {
		return p.Distance(a)
	}
	u := math.Max(0, math.Min(1, p.Sub(a).Dot(ab)/l2))
	return p.Distance(a.Add(ab.Mul(u)))
}

// Vertex returns the vertex with the given ID.
func (n *Network) Vertex(id VertexID) (Vertex, bool) {
	p, ok := n.s.Vertices.Get(arena.ID(id))
	if !ok {
		return Vertex{}, false
	}
	return Vertex{ID: id, Point: p}, true
}

// Segment returns the segment with the given ID.
func (n *Network) Segment(id SegmentID) (Segment, bool) {
	s, ok := n.s.Segments.Get(arena.ID(id))
	if !ok {
		return Segment{}, false
	}
	return toSegment(id, s), true
}

func toSegment(id SegmentID, s segment) Segment {
	return Segment{ID: id, A: s.A, B: s.B, TA: s.TA, TB: s.TB}
}

// Vertices returns all vertices in order.
func (n *Network) Vertices() []Vertex {
	out := make([]Vertex, n.s.Vertices.Len())
	for i, e := range n.s.Vertices.Items {
		out[i] = Vertex{ID: VertexID(e.ID), Point: e.Value}
	}
	return out
}

// Segments returns all segments in order.
func (n *Network) Segments() []Segment {
	out := make([]Segment, n.s.Segments.Len())
	for i, e := range n.s.Segments.Items {
		out[i] = toSegment(SegmentID(e.ID), e.Value)
	}
	return out
}

// VertexCount returns the number of vertices.
func (n *Network) VertexCount() int {
	return n.s.Vertices.Len()
}

// SegmentCount returns the number of segments.
func (n *Network) SegmentCount() int {
	return n.s.Segments.Len()
}

// VertexIndex returns the current position of a vertex, or -1.
func (n *Network) VertexIndex(id VertexID) int {
	return n.s.Vertices.Index(arena.ID(id))
}

// SegmentIndex returns the current position of a segment, or -1.
func (n *Network) SegmentIndex(id SegmentID) int {
	return n.s.Segments.Index(arena.ID(id))
}

// IncidentSegments returns the segments touching v, in segment order.
func (n *Network) IncidentSegments(v VertexID) []SegmentID {
	var out []SegmentID
	for _, e := range n.s.Segments.Items {
		if e.Value.A == v || e.Value.B == v {
			out = append(out, SegmentID(e.ID))
		}
	}
	return out
}

// Neighbors returns the distinct vertices sharing a segment with v, in
// segment order.
func (n *Network) Neighbors(v VertexID) []VertexID {
	var out []VertexID
	seen := make(map[VertexID]bool)
	for _, e := range n.s.Segments.Items {
		var o VertexID
		switch v {
		case e.Value.A:
			o = e.Value.B
		case e.Value.B:
			o = e.Value.A
		default:
			continue
		}
		if !seen[o] {
			seen[o] = true
			out = append(out, o)
		}
	}
	return out
}

// Absolute returns the model-space position of a vertex.
func (n *Network) Absolute(id VertexID) (vecedit.Point, bool) {
	p, ok := n.s.Vertices.Get(arena.ID(id))
	if !ok {
		return vecedit.Point{}, false
	}
	return p.Add(n.s.Offset), true
}

// Curve returns a segment as a model-space cubic Bezier with absolute
// control points.
func (n *Network) Curve(id SegmentID) (vecedit.CubicBez, error) {
	s, ok := n.Segment(id)
	if !ok {
		return vecedit.CubicBez{}, n.segmentErr(id)
	}
	a, _ := n.Absolute(s.A)
	b, _ := n.Absolute(s.B)
	return vecedit.CubicBez{P0: a, P1: a.Add(s.TA), P2: b.Add(s.TB), P3: b}, nil
}

// Eval returns the model-space point at parameter t of a segment. Straight
// segments are evaluated as lines.
func (n *Network) Eval(id SegmentID, t float64) (vecedit.Point, error) {
	c, err := n.Curve(id)
	if err != nil {
		return vecedit.Point{}, err
	}
	if c.P1 == c.P0 && c.P2 == c.P3 {
		return vecedit.Line{P0: c.P0, P1: c.P3}.Eval(t), nil
	}
	return c.Eval(t), nil
}

// Bounds returns the model-space bounding box of the network. Segments
// contribute their tight curve bounds; without segments the vertices are
// used. An empty network has a zero Rect.
func (n *Network) Bounds() vecedit.Rect {
	if n.s.Vertices.Len() == 0 {
		return vecedit.Rect{}
	}
	if n.s.Segments.Len() == 0 {
		first, _ := n.Absolute(VertexID(n.s.Vertices.At(0).ID))
		box := vecedit.NewRect(first, first)
		for _, v := range n.Vertices() {
			p := v.Point.Add(n.s.Offset)
			box = box.Union(vecedit.NewRect(p, p))
		}
		return box
	}

	var box vecedit.Rect
	for i, e := range n.s.Segments.Items {
		c, _ := n.Curve(SegmentID(e.ID))
		var sb vecedit.Rect
		if e.Value.TA.IsZero() && e.Value.TB.IsZero() {
			sb = vecedit.Line{P0: c.P0, P1: c.P3}.BoundingBox()
		} else {
			sb = c.BoundingBox()
		}
		if i == 0 {
			box = sb
		} else {
			box = box.Union(sb)
		}
	}
	return box
}

// Loops returns the closed loops formed by following segments from A to B.
// Each loop lists its vertices once, starting at the first segment's A.
// Segments that do not close a loop are ignored.
func (n *Network) Loops() [][]VertexID {
	var loops [][]VertexID
	segs := n.s.Segments.Items
	visited := make([]bool, len(segs))

	for i := range segs {
		if visited[i] {
			continue
		}
		visited[i] = true
		loop := []VertexID{segs[i].Value.A}
		cur := segs[i].Value.B
		closed := false
		for {
			if cur == loop[0] {
				closed = true
				break
			}
			loop = append(loop, cur)
			next := -1
			for j := range segs {
				if !visited[j] && segs[j].Value.A == cur {
					next = j
					break
				}
			}
			if next < 0 {
				break
			}
			visited[next] = true
			cur = segs[next].Value.B
		}
		if closed {
			loops = append(loops, loop)
		}
	}
	return loops
}

// Path converts the segments, in order, to a model-space path. A new
// subpath starts whenever a segment does not continue from the previous
// one, and a subpath that returns to its first vertex is closed.
func (n *Network) Path() *vecedit.Path {
	p := vecedit.NewPath()
	var start, end VertexID
	open := false
	for _, s := range n.Segments() {
		c, _ := n.Curve(s.ID)
		if !open || s.A != end {
			p.MoveTo(c.P0)
			start = s.A
			open = true
		}
		if s.IsStraight() {
			p.LineTo(c.P3)
		} else {
			p.CubicTo(c.P1, c.P2, c.P3)
		}
		end = s.B
		if end == start {
			p.Close()
			open = false
		}
	}
	return p
}

// Contains reports whether model-space point p lies inside the filled
// network, using the non-zero rule on Path. Open chains fill as if closed.
func (n *Network) Contains(p vecedit.Point) bool {
	return n.Path().Contains(p)
}

// Area returns the signed model-space area of Path, positive when the
// loops run clockwise on screen.
func (n *Network) Area() float64 {
	return n.Path().Area()
}

// Length returns the total length of all segments, measured to accuracy.
func (n *Network) Length(accuracy float64) float64 {
	return n.Path().Length(accuracy)
}

func (n *Network) hasVertex(id VertexID) bool {
	return n.s.Vertices.Index(arena.ID(id)) >= 0
}

func (n *Network) vertexErr(id VertexID) error {
	return fmt.Errorf("vnet: vertex %d: %w", id, vecedit.ErrNotFound)
}

func (n *Network) segmentErr(id SegmentID) error {
	return fmt.Errorf("vnet: segment %d: %w", id, vecedit.ErrNotFound)
}
