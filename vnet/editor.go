package vnet

import (
	"fmt"
	"slices"

	"github.com/gogpu/vecedit"
	"github.com/gogpu/vecedit/internal/drag"
	"github.com/gogpu/vecedit/snap"
)

// State is the pen tool state.
type State int

const (
	// Idle means no anchor: the next vertex starts a new subpath.
	Idle State = iota
	// Anchored means the next vertex is joined to the anchor.
	Anchored
)

// String returns "idle" or "anchored".
func (s State) String() string {
	if s == Anchored {
		return "anchored"
	}
	return "idle"
}

// Option configures an Editor.
type Option func(*editorOptions)

type editorOptions struct {
	mirroring     Mirroring
	snapThreshold float64
	snapEnabled   bool
}

func defaultEditorOptions() editorOptions {
	return editorOptions{mirroring: MirrorAuto}
}

// WithMirroring sets the mirroring mode used by curve control drags.
// The default is MirrorAuto.
func WithMirroring(m Mirroring) Option {
	return func(o *editorOptions) {
		o.mirroring = m
	}
}

// WithVertexSnap makes vertex drags snap to the other vertices within
// threshold model units. A negative threshold disables snapping.
func WithVertexSnap(threshold float64) Option {
	return func(o *editorOptions) {
		o.snapThreshold = threshold
		o.snapEnabled = threshold >= 0
	}
}

type dragKind int

const (
	dragVertex dragKind = iota + 1
	dragControl
	dragBend
)

func (k dragKind) String() string {
	switch k {
	case dragVertex:
		return "vertex"
	case dragControl:
		return "control"
	case dragBend:
		return "bend"
	}
	return "unknown"
}

// dragTarget names what an Editor is dragging. Bend drags also carry the
// curve parameter and the tangents the segment had when the drag began.
type dragTarget struct {
	kind    dragKind
	vertex  VertexID
	segment SegmentID
	control Control

	t      float64
	ta, tb vecedit.Vec2
}

// DragResult reports the outcome of a vertex drag update.
type DragResult struct {
	// Point is the vertex's new model-space position.
	Point vecedit.Point
	// Snapped lists the vertices within the threshold when the vertex
	// snapped onto another vertex; Point is the nearest of them.
	Snapped []VertexID
	// XGuides and YGuides list the vertices the dragged vertex was aligned
	// with on each axis.
	XGuides, YGuides []VertexID
}

// Editor drives a Network through pen-tool interaction: an anchor that the
// next vertex connects to, selection, hover, a preview tangent, and one
// drag session at a time.
//
// Positions passed to and returned from an Editor are in model space; the
// network offset is applied internally. An Editor is not safe for
// concurrent use.
type Editor struct {
	net  *Network
	opts editorOptions

	anchor VertexID
	start  VertexID

	selected []VertexID
	hovered  VertexID

	cursor    vecedit.Point
	hasCursor bool
	nextTA    vecedit.Vec2

	drag drag.Session[dragTarget, vecedit.Vec2]
}

// NewEditor returns an idle editor on n. A nil n starts from an empty
// network.
func NewEditor(n *Network, opts ...Option) *Editor {
	if n == nil {
		n = New()
	}
	e := &Editor{net: n, opts: defaultEditorOptions()}
	for _, opt := range opts {
		opt(&e.opts)
	}
	return e
}

// Network returns the edited network.
func (e *Editor) Network() *Network {
	return e.net
}

// State returns the pen tool state.
func (e *Editor) State() State {
	if e.anchor != 0 {
		return Anchored
	}
	return Idle
}

// Anchor returns the vertex the next vertex will connect to.
func (e *Editor) Anchor() (VertexID, bool) {
	return e.anchor, e.anchor != 0
}

// Start returns the first vertex of the current subpath.
func (e *Editor) Start() (VertexID, bool) {
	return e.start, e.start != 0
}

func (e *Editor) local(p vecedit.Point) vecedit.Point {
	return p.Add(e.net.Offset().Neg())
}

// AddVertex appends a vertex at model-space point p. When anchored, it also
// appends a straight segment from the anchor; either way the new vertex
// becomes the anchor. The preview tangent is discarded.
func (e *Editor) AddVertex(p vecedit.Point) VertexID {
	id := e.net.AddVertex(e.local(p))
	if e.anchor == 0 {
		e.start = id
	} else {
		e.net.addSegment(e.anchor, id, vecedit.Vec2{}, vecedit.Vec2{})
	}
	e.anchor = id
	e.clearPreview()
	return id
}

// ConnectVertex joins the anchor to an existing vertex, as when the pen
// clicks a vertex already in the network. When idle, it only makes the
// vertex the anchor. Connecting back to the subpath start closes the path
// and returns to Idle; otherwise the anchor advances. The returned segment
// ID is zero when no segment was created.
func (e *Editor) ConnectVertex(id VertexID) (SegmentID, error) {
	if !e.net.hasVertex(id) {
		return 0, e.net.vertexErr(id)
	}
	if e.anchor == 0 {
		e.anchor, e.start = id, id
		e.clearPreview()
		return 0, nil
	}
	if id == e.anchor {
		return 0, fmt.Errorf("vnet: connect anchor %d to itself: %w", id, vecedit.ErrState)
	}

	seg := e.net.addSegment(e.anchor, id, vecedit.Vec2{}, vecedit.Vec2{})
	if id == e.start {
		vecedit.Logger().Debug("vnet: path closed", "start", id, "segment", seg)
		e.reset()
		return seg, nil
	}
	e.anchor = id
	e.clearPreview()
	return seg, nil
}

// ClosePath joins the anchor back to the subpath start and returns to Idle.
// It fails with vecedit.ErrState when not anchored or when the anchor is
// the start.
func (e *Editor) ClosePath() (SegmentID, error) {
	if e.anchor == 0 || e.start == 0 || e.anchor == e.start {
		return 0, fmt.Errorf("vnet: close path in state %v: %w", e.State(), vecedit.ErrState)
	}
	return e.ConnectVertex(e.start)
}

// Cancel returns to Idle without committing the preview. A drag in
// progress is ended where it stands.
func (e *Editor) Cancel() {
	e.drag.Reset()
	e.reset()
}

func (e *Editor) reset() {
	e.anchor = 0
	e.start = 0
	e.clearPreview()
}

func (e *Editor) clearPreview() {
	e.hasCursor = false
	e.cursor = vecedit.Point{}
	e.nextTA = vecedit.Vec2{}
}

// DeleteVertex removes a vertex through Network.DeleteVertex and drops it
// from the interaction state. Deleting the anchor returns to Idle. It fails
// with vecedit.ErrState while the vertex, or a segment touching it, is
// being dragged.
func (e *Editor) DeleteVertex(id VertexID) error {
	if t, ok := e.drag.Target(); ok {
		if t.kind == dragVertex && t.vertex == id {
			return fmt.Errorf("vnet: delete vertex %d while dragging it: %w", id, vecedit.ErrState)
		}
		if s, found := e.net.Segment(t.segment); t.kind != dragVertex && found && s.Touches(id) {
			return fmt.Errorf("vnet: delete vertex %d while dragging segment %d: %w", id, t.segment, vecedit.ErrState)
		}
	}
	if err := e.net.DeleteVertex(id); err != nil {
		return err
	}

	if id == e.anchor {
		e.reset()
	}
	if id == e.start {
		e.start = 0
	}
	if id == e.hovered {
		e.hovered = 0
	}
	e.selected = slices.DeleteFunc(e.selected, func(v VertexID) bool { return v == id })
	return nil
}

// DeleteSegment removes a segment. It fails with vecedit.ErrState while
// one of the segment's tangents is being dragged.
func (e *Editor) DeleteSegment(id SegmentID) error {
	if t, ok := e.drag.Target(); ok && t.kind != dragVertex && t.segment == id {
		return fmt.Errorf("vnet: delete segment %d while dragging it: %w", id, vecedit.ErrState)
	}
	return e.net.DeleteSegment(id)
}

// PreviewNextTangent records the cursor and returns the outgoing tangent
// the next segment would get: the mirror of the anchor's tangent when the
// anchor ends exactly one segment, zero otherwise. It reports false when
// not anchored. Committed segments are never changed.
func (e *Editor) PreviewNextTangent(cursor vecedit.Point) (vecedit.Vec2, bool) {
	if e.anchor == 0 {
		return vecedit.Vec2{}, false
	}
	e.cursor = cursor
	e.hasCursor = true
	e.nextTA = vecedit.Vec2{}
	if incident := e.net.IncidentSegments(e.anchor); len(incident) == 1 {
		s, _ := e.net.Segment(incident[0])
		c, _ := s.ControlAt(e.anchor)
		e.nextTA = s.Tangent(c).Neg()
	}
	return e.nextTA, true
}

// PreviewCurve returns the model-space curve from the anchor to the last
// previewed cursor. It reports false without an anchor or a cursor.
func (e *Editor) PreviewCurve() (vecedit.CubicBez, bool) {
	if e.anchor == 0 || !e.hasCursor {
		return vecedit.CubicBez{}, false
	}
	a, _ := e.net.Absolute(e.anchor)
	return vecedit.CubicBez{P0: a, P1: a.Add(e.nextTA), P2: e.cursor, P3: e.cursor}, true
}

// HoverVertex marks a vertex as hovered, or clears the hover when hovering
// is false and id is the hovered vertex.
func (e *Editor) HoverVertex(id VertexID, hovering bool) error {
	if !e.net.hasVertex(id) {
		return e.net.vertexErr(id)
	}
	switch {
	case hovering:
		e.hovered = id
	case e.hovered == id:
		e.hovered = 0
	}
	return nil
}

// Hovered returns the hovered vertex.
func (e *Editor) Hovered() (VertexID, bool) {
	return e.hovered, e.hovered != 0
}

// SelectVertex makes id the only selected vertex.
func (e *Editor) SelectVertex(id VertexID) error {
	if !e.net.hasVertex(id) {
		return e.net.vertexErr(id)
	}
	e.selected = append(e.selected[:0], id)
	return nil
}

// AddToSelection adds id to the selection.
func (e *Editor) AddToSelection(id VertexID) error {
	if !e.net.hasVertex(id) {
		return e.net.vertexErr(id)
	}
	if !slices.Contains(e.selected, id) {
		e.selected = append(e.selected, id)
	}
	return nil
}

// ClearSelection deselects every vertex.
func (e *Editor) ClearSelection() {
	e.selected = e.selected[:0]
}

// Selected returns the selected vertices in selection order.
func (e *Editor) Selected() []VertexID {
	return slices.Clone(e.selected)
}

// IsSelected reports whether id is selected.
func (e *Editor) IsSelected(id VertexID) bool {
	return slices.Contains(e.selected, id)
}

// TranslateSelection moves every selected vertex by d.
func (e *Editor) TranslateSelection(d vecedit.Vec2) {
	for _, id := range e.selected {
		_ = e.net.TranslateVertex(id, d)
	}
}

// Dragging reports whether a drag session is active.
func (e *Editor) Dragging() bool {
	return e.drag.Active()
}

// BeginVertexDrag starts dragging a vertex from model-space input.
func (e *Editor) BeginVertexDrag(id VertexID, input vecedit.Point) error {
	p, ok := e.net.Absolute(id)
	if !ok {
		return e.net.vertexErr(id)
	}
	if err := e.drag.Begin(dragTarget{kind: dragVertex, vertex: id}, input.Sub(p)); err != nil {
		return err
	}
	vecedit.Logger().Debug("vnet: vertex drag begin", "vertex", id)
	return nil
}

// UpdateVertexDrag moves the dragged vertex to input minus the grab
// offset, snapping to the other vertices when configured.
func (e *Editor) UpdateVertexDrag(input vecedit.Point) (DragResult, error) {
	t, grab, err := e.drag.Grab()
	if err != nil {
		return DragResult{}, err
	}
	if t.kind != dragVertex {
		return DragResult{}, fmt.Errorf("vnet: vertex drag update during %s drag: %w", t.kind, vecedit.ErrState)
	}

	res := DragResult{Point: input.Add(grab.Neg())}
	if e.opts.snapEnabled {
		e.snapVertex(t.vertex, &res)
	}
	if err := e.net.MoveVertex(t.vertex, e.local(res.Point)); err != nil {
		return DragResult{}, err
	}
	return res, nil
}

// snapVertex snaps res.Point onto another vertex, or failing that aligns
// it with other vertices per axis.
func (e *Editor) snapVertex(self VertexID, res *DragResult) {
	var ids []VertexID
	var points []vecedit.Point
	for _, v := range e.net.Vertices() {
		if v.ID == self {
			continue
		}
		ids = append(ids, v.ID)
		points = append(points, v.Point.Add(e.net.Offset()))
	}
	if len(points) == 0 {
		return
	}

	hit, err := snap.Vector2(res.Point, points, e.opts.snapThreshold)
	if err == nil && hit.Snapped() {
		res.Point = hit.Point
		for _, i := range hit.Indices {
			res.Snapped = append(res.Snapped, ids[i])
		}
		return
	}

	aligned, err := snap.Points([]vecedit.Point{res.Point}, points, e.opts.snapThreshold)
	if err != nil {
		return
	}
	res.Point = res.Point.Add(aligned.Delta())
	for _, m := range aligned.X.Matches {
		res.XGuides = append(res.XGuides, ids[m.Anchor])
	}
	for _, m := range aligned.Y.Matches {
		res.YGuides = append(res.YGuides, ids[m.Anchor])
	}
}

// EndVertexDrag finishes a vertex drag. The vertex stays where the last
// update put it.
func (e *Editor) EndVertexDrag() error {
	if t, ok := e.drag.Target(); ok && t.kind != dragVertex {
		return fmt.Errorf("vnet: end vertex drag during %s drag: %w", t.kind, vecedit.ErrState)
	}
	t, err := e.drag.End()
	if err != nil {
		return err
	}
	vecedit.Logger().Debug("vnet: vertex drag end", "vertex", t.vertex)
	return nil
}

// StartCurveControlDrag starts dragging tangent c of a segment from
// model-space input. The grab offset is taken relative to the absolute
// control point.
func (e *Editor) StartCurveControlDrag(id SegmentID, c Control, input vecedit.Point) error {
	s, ok := e.net.Segment(id)
	if !ok {
		return e.net.segmentErr(id)
	}
	v, _ := e.net.Absolute(s.Vertex(c))
	ctrl := v.Add(s.Tangent(c))
	if err := e.drag.Begin(dragTarget{kind: dragControl, segment: id, control: c}, input.Sub(ctrl)); err != nil {
		return err
	}
	vecedit.Logger().Debug("vnet: control drag begin", "segment", id, "control", c)
	return nil
}

// UpdateCurveControlDrag replaces the dragged tangent so that its control
// point sits at input minus the grab offset. The opposite tangent follows
// the editor's mirroring mode. It returns the new tangent.
func (e *Editor) UpdateCurveControlDrag(input vecedit.Point) (vecedit.Vec2, error) {
	t, grab, err := e.drag.Grab()
	if err != nil {
		return vecedit.Vec2{}, err
	}
	if t.kind != dragControl {
		return vecedit.Vec2{}, fmt.Errorf("vnet: control drag update during %s drag: %w", t.kind, vecedit.ErrState)
	}
	s, ok := e.net.Segment(t.segment)
	if !ok {
		return vecedit.Vec2{}, e.net.segmentErr(t.segment)
	}
	v, _ := e.net.Absolute(s.Vertex(t.control))
	tangent := input.Add(grab.Neg()).Sub(v)
	if err := e.net.SetTangent(t.segment, t.control, tangent, e.opts.mirroring); err != nil {
		return vecedit.Vec2{}, err
	}
	return tangent, nil
}

// EndCurveControlDrag finishes a control drag.
func (e *Editor) EndCurveControlDrag() error {
	if t, ok := e.drag.Target(); ok && t.kind != dragControl {
		return fmt.Errorf("vnet: end control drag during %s drag: %w", t.kind, vecedit.ErrState)
	}
	t, err := e.drag.End()
	if err != nil {
		return err
	}
	vecedit.Logger().Debug("vnet: control drag end", "segment", t.segment, "control", t.control)
	return nil
}

// bendMargin keeps the grabbed parameter of a bend drag away from the
// segment ends, where the curve cannot be pulled.
const bendMargin = 0.05

// BeginSegmentBendDrag starts bending a segment from model-space input. The
// grabbed point is the point of the segment nearest to input; the grab
// offset is taken relative to it.
func (e *Editor) BeginSegmentBendDrag(id SegmentID, input vecedit.Point) error {
	c, err := e.net.Curve(id)
	if err != nil {
		return err
	}
	s, _ := e.net.Segment(id)
	t, _ := c.Nearest(input)
	t = min(max(t, bendMargin), 1-bendMargin)

	target := dragTarget{kind: dragBend, segment: id, t: t, ta: s.TA, tb: s.TB}
	if err := e.drag.Begin(target, input.Sub(c.Eval(t))); err != nil {
		return err
	}
	vecedit.Logger().Debug("vnet: bend drag begin", "segment", id, "t", t)
	return nil
}

// UpdateSegmentBendDrag reshapes the dragged segment so that the grabbed
// point follows input minus the grab offset. The tangents are solved from
// the ones the segment had when the drag began, so the result depends only
// on the latest input. It returns the updated segment.
func (e *Editor) UpdateSegmentBendDrag(input vecedit.Point) (Segment, error) {
	t, grab, err := e.drag.Grab()
	if err != nil {
		return Segment{}, err
	}
	if t.kind != dragBend {
		return Segment{}, fmt.Errorf("vnet: bend drag update during %s drag: %w", t.kind, vecedit.ErrState)
	}
	if err := e.net.bend(t.segment, t.t, input.Add(grab.Neg()), t.ta, t.tb); err != nil {
		return Segment{}, err
	}
	s, _ := e.net.Segment(t.segment)
	return s, nil
}

// EndSegmentBendDrag finishes a bend drag. The segment keeps the shape of
// the last update.
func (e *Editor) EndSegmentBendDrag() error {
	if t, ok := e.drag.Target(); ok && t.kind != dragBend {
		return fmt.Errorf("vnet: end bend drag during %s drag: %w", t.kind, vecedit.ErrState)
	}
	t, err := e.drag.End()
	if err != nil {
		return err
	}
	vecedit.Logger().Debug("vnet: bend drag end", "segment", t.segment)
	return nil
}

// Snapshot returns a deep copy of the network for callers that want to
// revert a drag.
func (e *Editor) Snapshot() *Network {
	return e.net.Clone()
}

// Restore replaces the network with a copy of n. Interaction state that
// refers to vertices missing from n is dropped. It fails with
// vecedit.ErrState during a drag and with vecedit.ErrInvalidArgument for a
// nil network.
func (e *Editor) Restore(n *Network) error {
	if n == nil {
		return fmt.Errorf("vnet: restore nil network: %w", vecedit.ErrInvalidArgument)
	}
	if e.drag.Active() {
		return fmt.Errorf("vnet: restore during drag: %w", vecedit.ErrState)
	}
	e.net = n.Clone()
	if !e.net.hasVertex(e.anchor) {
		e.reset()
	}
	if !e.net.hasVertex(e.start) {
		e.start = 0
	}
	if !e.net.hasVertex(e.hovered) {
		e.hovered = 0
	}
	e.selected = slices.DeleteFunc(e.selected, func(v VertexID) bool { return !e.net.hasVertex(v) })
	return nil
}
