package stops

import (
	"fmt"
	"math"
	"sort"

	"github.com/jinzhu/copier"

	"github.com/gogpu/vecedit"
	"github.com/gogpu/vecedit/internal/arena"
	"github.com/gogpu/vecedit/internal/drag"
	"github.com/gogpu/vecedit/snap"
)

// ID identifies a stop for the lifetime of a List. Zero is never issued.
type ID uint64

// Stop is a value placed at an offset in [0, 1].
type Stop[V any] struct {
	ID     ID
	Offset float64
	Value  V
}

// entry is the stored form of a Stop. Fields are exported for copier.
type entry[V any] struct {
	Offset float64
	Value  V
}

// List keeps stops sorted ascending by offset through every mutation and
// tracks the selected stop by ID, so the selection follows a stop when it
// is reordered.
//
// A List is not safe for concurrent use.
type List[V any] struct {
	items    arena.Arena[entry[V]]
	selected ID
	drag     drag.Session[ID, float64]
	opts     listOptions
}

// New returns an empty list.
func New[V any](opts ...Option) *List[V] {
	l := &List[V]{}
	for _, opt := range opts {
		opt(&l.opts)
	}
	return l
}

// FromOffsets builds a list from parallel offset and value slices. Stops
// with equal offsets keep their relative order.
func FromOffsets[V any](offsets []float64, values []V, opts ...Option) (*List[V], error) {
	if len(offsets) != len(values) {
		return nil, fmt.Errorf("stops: %d offsets for %d values: %w", len(offsets), len(values), vecedit.ErrInvalidArgument)
	}
	order := make([]int, len(offsets))
	for i, off := range offsets {
		if err := checkOffset(off); err != nil {
			return nil, err
		}
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return offsets[order[i]] < offsets[order[j]]
	})

	l := New[V](opts...)
	for _, i := range order {
		l.items.Add(entry[V]{Offset: offsets[i], Value: values[i]})
	}
	return l, nil
}

func checkOffset(off float64) error {
	if math.IsNaN(off) || off < 0 || off > 1 {
		return fmt.Errorf("stops: offset %v outside [0, 1]: %w", off, vecedit.ErrInvalidArgument)
	}
	return nil
}

// clamp01 clamps a value to [0, 1] range.
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// position returns where a stop at off belongs among the stops other than
// skip: before the first one whose offset is not less than off.
func (l *List[V]) position(off float64, skip ID) int {
	pos := 0
	for _, e := range l.items.Items {
		if e.ID == arena.ID(skip) {
			continue
		}
		if e.Value.Offset >= off {
			break
		}
		pos++
	}
	return pos
}

// Insert adds a stop and returns its ID and index. The stop goes before any
// existing stop at the same offset. It fails with vecedit.ErrInvalidArgument
// for offsets outside [0, 1] or NaN.
func (l *List[V]) Insert(offset float64, v V) (ID, int, error) {
	if err := checkOffset(offset); err != nil {
		return 0, -1, err
	}
	i := l.position(offset, 0)
	id := ID(l.items.Insert(i, entry[V]{Offset: offset, Value: v}))
	return id, i, nil
}

// Reorder moves a stop to offset, clamped to [0, 1], and returns its new
// index. Ties are placed as in Insert.
func (l *List[V]) Reorder(id ID, offset float64) (int, error) {
	if math.IsNaN(offset) {
		return -1, fmt.Errorf("stops: offset NaN: %w", vecedit.ErrInvalidArgument)
	}
	e := l.items.Ptr(arena.ID(id))
	if e == nil {
		return -1, notFound(id)
	}
	offset = clamp01(offset)
	e.Offset = offset
	return l.items.Move(arena.ID(id), l.position(offset, id)), nil
}

// Remove deletes a stop. Removing the selected stop clears the selection.
// It fails with vecedit.ErrState while the stop is being dragged.
func (l *List[V]) Remove(id ID) error {
	if t, ok := l.drag.Target(); ok && t == id {
		return fmt.Errorf("stops: remove stop %d while dragging it: %w", id, vecedit.ErrState)
	}
	if !l.items.Remove(arena.ID(id)) {
		return notFound(id)
	}
	if l.selected == id {
		l.selected = 0
	}
	return nil
}

// SetValue replaces the value of a stop.
func (l *List[V]) SetValue(id ID, v V) error {
	e := l.items.Ptr(arena.ID(id))
	if e == nil {
		return notFound(id)
	}
	e.Value = v
	return nil
}

// Select marks a stop as selected.
func (l *List[V]) Select(id ID) error {
	if l.items.Index(arena.ID(id)) < 0 {
		return notFound(id)
	}
	l.selected = id
	return nil
}

// Deselect clears the selection.
func (l *List[V]) Deselect() {
	l.selected = 0
}

// Selected returns the selected stop's ID.
func (l *List[V]) Selected() (ID, bool) {
	return l.selected, l.selected != 0
}

// SelectedIndex returns the current index of the selected stop, or -1.
func (l *List[V]) SelectedIndex() int {
	if l.selected == 0 {
		return -1
	}
	return l.Index(l.selected)
}

// Index returns the current index of a stop, or -1.
func (l *List[V]) Index(id ID) int {
	return l.items.Index(arena.ID(id))
}

// Stop returns the stop with the given ID.
func (l *List[V]) Stop(id ID) (Stop[V], bool) {
	e, ok := l.items.Get(arena.ID(id))
	if !ok {
		return Stop[V]{}, false
	}
	return Stop[V]{ID: id, Offset: e.Offset, Value: e.Value}, true
}

// At returns the stop at index i.
func (l *List[V]) At(i int) Stop[V] {
	e := l.items.At(i)
	return Stop[V]{ID: ID(e.ID), Offset: e.Value.Offset, Value: e.Value.Value}
}

// Len returns the number of stops.
func (l *List[V]) Len() int {
	return l.items.Len()
}

// Stops returns the stops in order.
func (l *List[V]) Stops() []Stop[V] {
	out := make([]Stop[V], l.Len())
	for i := range out {
		out[i] = l.At(i)
	}
	return out
}

// Offsets returns the offsets in order.
func (l *List[V]) Offsets() []float64 {
	out := make([]float64, l.Len())
	for i, e := range l.items.Items {
		out[i] = e.Value.Offset
	}
	return out
}

// Values returns the values in offset order.
func (l *List[V]) Values() []V {
	out := make([]V, l.Len())
	for i, e := range l.items.Items {
		out[i] = e.Value.Value
	}
	return out
}

// Validate checks that offsets are within [0, 1] and ascending.
func (l *List[V]) Validate() error {
	for i, e := range l.items.Items {
		if err := checkOffset(e.Value.Offset); err != nil {
			return fmt.Errorf("stops: index %d: %w", i, err)
		}
		if i > 0 {
			if prev := l.items.Items[i-1].Value.Offset; prev > e.Value.Offset {
				return fmt.Errorf("stops: offset[%d]=%v > offset[%d]=%v: %w",
					i-1, prev, i, e.Value.Offset, vecedit.ErrState)
			}
		}
	}
	return nil
}

// Clone returns a deep copy of the stops, selection and options. A drag in
// progress is not copied.
func (l *List[V]) Clone() *List[V] {
	out := &List[V]{selected: l.selected, opts: l.opts}
	if err := copier.CopyWithOption(&out.items, &l.items, copier.Option{DeepCopy: true}); err != nil {
		// Same type on both sides.
		panic(fmt.Sprintf("stops: clone: %v", err))
	}
	return out
}

// ExtendMode defines how Sample treats offsets outside [0, 1].
type ExtendMode int

const (
	// ExtendPad extends edge values beyond bounds (default behavior).
	ExtendPad ExtendMode = iota
	// ExtendRepeat repeats the stops.
	ExtendRepeat
	// ExtendReflect mirrors every other repetition.
	ExtendReflect
)

// applyExtendMode applies the extend mode to normalize t to [0, 1].
func applyExtendMode(t float64, mode ExtendMode) float64 {
	switch mode {
	case ExtendRepeat:
		t -= math.Floor(t)
	case ExtendReflect:
		t = math.Abs(t)
		period := math.Floor(t)
		t -= period
		if int(period)%2 == 1 {
			t = 1 - t
		}
	default:
		t = clamp01(t)
	}
	return t
}

// Sample returns the value at t, interpolated between the surrounding
// stops with lerp. It fails with vecedit.ErrInvalidArgument on an empty
// list.
func (l *List[V]) Sample(t float64, mode ExtendMode, lerp func(a, b V, t float64) V) (V, error) {
	var zero V
	items := l.items.Items
	switch len(items) {
	case 0:
		return zero, fmt.Errorf("stops: sample empty list: %w", vecedit.ErrInvalidArgument)
	case 1:
		return items[0].Value.Value, nil
	}

	t = applyExtendMode(t, mode)
	idx := sort.Search(len(items), func(i int) bool {
		return items[i].Value.Offset >= t
	})
	if idx == 0 {
		return items[0].Value.Value, nil
	}
	if idx >= len(items) {
		return items[len(items)-1].Value.Value, nil
	}

	s1, s2 := items[idx-1].Value, items[idx].Value
	if s1.Offset == s2.Offset {
		return s1.Value, nil
	}
	return lerp(s1.Value, s2.Value, (t-s1.Offset)/(s2.Offset-s1.Offset)), nil
}

// BeginDrag starts dragging a stop. input is the pointer position already
// projected onto the offset axis; the difference to the stop's offset is
// kept as the grab offset.
func (l *List[V]) BeginDrag(id ID, input float64) error {
	e, ok := l.items.Get(arena.ID(id))
	if !ok {
		return notFound(id)
	}
	if err := l.drag.Begin(id, input-e.Offset); err != nil {
		return err
	}
	vecedit.Logger().Debug("stops: drag begin", "stop", id, "offset", e.Offset)
	return nil
}

// UpdateDrag moves the dragged stop to input minus the grab offset, snapped
// as configured, and returns its new index.
func (l *List[V]) UpdateDrag(input float64) (int, error) {
	id, grab, err := l.drag.Grab()
	if err != nil {
		return -1, err
	}
	return l.Reorder(id, l.snapOffset(id, clamp01(input-grab)))
}

// snapOffset applies the configured stop and step snapping to off.
func (l *List[V]) snapOffset(self ID, off float64) float64 {
	if l.opts.stopThreshold > 0 {
		var others []float64
		for _, e := range l.items.Items {
			if ID(e.ID) != self {
				others = append(others, e.Value.Offset)
			}
		}
		if len(others) > 0 {
			if r, err := snap.Scalar(off, others, l.opts.stopThreshold); err == nil && r.Snapped() {
				return r.Value
			}
		}
	}
	if step := l.opts.step; step > 0 {
		if r, err := snap.Scalar(off, stepNeighbors(off, step), step/2); err == nil && r.Snapped() {
			return r.Value
		}
	}
	return off
}

// stepNeighbors returns the multiples of step just below and above off,
// clamped to [0, 1]. The upper one becomes 1 past the last multiple.
func stepNeighbors(off, step float64) []float64 {
	lo := clamp01(math.Floor(off/step) * step)
	hi := math.Min(math.Ceil(off/step)*step, 1)
	if hi == lo {
		return []float64{lo}
	}
	return []float64{lo, hi}
}

// EndDrag finishes the drag and returns the stop's final index.
func (l *List[V]) EndDrag() (int, error) {
	id, err := l.drag.End()
	if err != nil {
		return -1, err
	}
	vecedit.Logger().Debug("stops: drag end", "stop", id)
	return l.Index(id), nil
}

// Dragging reports whether a drag is in progress.
func (l *List[V]) Dragging() bool {
	return l.drag.Active()
}

func notFound(id ID) error {
	return fmt.Errorf("stops: stop %d: %w", id, vecedit.ErrNotFound)
}
