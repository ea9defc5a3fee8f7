// Package arena provides an ordered collection whose items carry stable
// generated identifiers.
//
// Items keep insertion order (or an explicit order set with Move). Identity
// and position are independent: removing or reordering items never changes
// the ID of any other item, and IDs are never reused within one arena.
//
// Fields are exported so that the whole arena can be deep-copied with
// github.com/jinzhu/copier. Callers outside this module never see an Arena
// directly.
package arena

// ID identifies an item. The zero ID is never issued.
type ID uint64

// Entry is an item together with its identifier.
type Entry[T any] struct {
	ID    ID
	Value T
}

// Arena is an ordered collection of items with stable IDs.
// The zero value is ready to use.
type Arena[T any] struct {
	Items []Entry[T]
	Last  ID
}

// Add appends v and returns its new ID.
func (a *Arena[T]) Add(v T) ID {
	a.Last++
	a.Items = append(a.Items, Entry[T]{ID: a.Last, Value: v})
	return a.Last
}

// Insert places v at position i (clamped to [0, Len]) and returns its new ID.
func (a *Arena[T]) Insert(i int, v T) ID {
	i = min(max(i, 0), len(a.Items))
	a.Last++
	a.Items = append(a.Items, Entry[T]{})
	copy(a.Items[i+1:], a.Items[i:])
	a.Items[i] = Entry[T]{ID: a.Last, Value: v}
	return a.Last
}

// Index returns the current position of id, or -1.
func (a *Arena[T]) Index(id ID) int {
	for i := range a.Items {
		if a.Items[i].ID == id {
			return i
		}
	}
	return -1
}

// Get returns the value stored under id.
func (a *Arena[T]) Get(id ID) (T, bool) {
	if i := a.Index(id); i >= 0 {
		return a.Items[i].Value, true
	}
	var zero T
	return zero, false
}

// Ptr returns a pointer to the value stored under id, or nil.
// The pointer is invalidated by the next structural change.
func (a *Arena[T]) Ptr(id ID) *T {
	if i := a.Index(id); i >= 0 {
		return &a.Items[i].Value
	}
	return nil
}

// Set replaces the value stored under id.
func (a *Arena[T]) Set(id ID, v T) bool {
	p := a.Ptr(id)
	if p == nil {
		return false
	}
	*p = v
	return true
}

// Remove deletes id, keeping the relative order of the remaining items.
func (a *Arena[T]) Remove(id ID) bool {
	i := a.Index(id)
	if i < 0 {
		return false
	}
	copy(a.Items[i:], a.Items[i+1:])
	a.Items[len(a.Items)-1] = Entry[T]{}
	a.Items = a.Items[:len(a.Items)-1]
	return true
}

// RemoveFunc deletes every item for which fn reports true and returns the
// removed IDs in order.
func (a *Arena[T]) RemoveFunc(fn func(ID, T) bool) []ID {
	var removed []ID
	kept := a.Items[:0]
	for _, e := range a.Items {
		if fn(e.ID, e.Value) {
			removed = append(removed, e.ID)
			continue
		}
		kept = append(kept, e)
	}
	clear(a.Items[len(kept):])
	a.Items = kept
	return removed
}

// Move relocates id to position to (clamped) and returns the new position,
// or -1 if id is unknown.
func (a *Arena[T]) Move(id ID, to int) int {
	from := a.Index(id)
	if from < 0 {
		return -1
	}
	to = min(max(to, 0), len(a.Items)-1)
	e := a.Items[from]
	switch {
	case from < to:
		copy(a.Items[from:to], a.Items[from+1:to+1])
	case from > to:
		copy(a.Items[to+1:from+1], a.Items[to:from])
	}
	a.Items[to] = e
	return to
}

// Len returns the number of items.
func (a *Arena[T]) Len() int {
	return len(a.Items)
}

// At returns the entry at position i.
func (a *Arena[T]) At(i int) Entry[T] {
	return a.Items[i]
}

// Values returns the values in order. The slice is freshly allocated.
func (a *Arena[T]) Values() []T {
	out := make([]T, len(a.Items))
	for i, e := range a.Items {
		out[i] = e.Value
	}
	return out
}

// IDs returns the IDs in order. The slice is freshly allocated.
func (a *Arena[T]) IDs() []ID {
	out := make([]ID, len(a.Items))
	for i, e := range a.Items {
		out[i] = e.ID
	}
	return out
}

// Reset removes every item. IDs already issued stay retired.
func (a *Arena[T]) Reset() {
	clear(a.Items)
	a.Items = a.Items[:0]
}
