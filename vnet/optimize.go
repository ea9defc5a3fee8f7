package vnet

import (
	"math"
	"slices"

	"github.com/gogpu/vecedit"
	"github.com/gogpu/vecedit/internal/arena"
)

// OptimizeConfig controls Optimize and Union.
type OptimizeConfig struct {
	// Tolerance is the per-axis distance within which a vertex merges into
	// an earlier one. Zero merges coincident vertices only.
	Tolerance float64
	// KeepUnused keeps vertices that no segment references.
	KeepUnused bool
}

// Optimize cleans up the network in place:
//
//   - a vertex within cfg.Tolerance of an earlier vertex on both axes is
//     merged into it; the earlier vertex keeps its ID and position
//   - segments are rewired to the surviving vertices, and a segment that
//     repeats an earlier one (same ends in the same order, same tangents)
//     or now joins a vertex to itself is dropped
//   - unless cfg.KeepUnused, vertices no segment references are removed
//
// It returns the merged vertices mapped to the vertex that replaced them.
func (n *Network) Optimize(cfg OptimizeConfig) map[VertexID]VertexID {
	merged := make(map[VertexID]VertexID)
	var kept []arena.Entry[vecedit.Point]
	for _, e := range n.s.Vertices.Items {
		j := slices.IndexFunc(kept, func(k arena.Entry[vecedit.Point]) bool {
			return math.Abs(k.Value.X-e.Value.X) <= cfg.Tolerance &&
				math.Abs(k.Value.Y-e.Value.Y) <= cfg.Tolerance
		})
		if j >= 0 {
			merged[VertexID(e.ID)] = VertexID(kept[j].ID)
			continue
		}
		kept = append(kept, e)
	}
	n.s.Vertices.RemoveFunc(func(id arena.ID, _ vecedit.Point) bool {
		_, ok := merged[VertexID(id)]
		return ok
	})

	for i := range n.s.Segments.Items {
		s := &n.s.Segments.Items[i].Value
		if to, ok := merged[s.A]; ok {
			s.A = to
		}
		if to, ok := merged[s.B]; ok {
			s.B = to
		}
	}
	seen := make(map[segment]bool)
	dropped := n.s.Segments.RemoveFunc(func(_ arena.ID, s segment) bool {
		if s.A == s.B || seen[s] {
			return true
		}
		seen[s] = true
		return false
	})

	var unused []arena.ID
	if !cfg.KeepUnused {
		used := make(map[VertexID]bool)
		for _, e := range n.s.Segments.Items {
			used[e.Value.A] = true
			used[e.Value.B] = true
		}
		unused = n.s.Vertices.RemoveFunc(func(id arena.ID, _ vecedit.Point) bool {
			return !used[VertexID(id)]
		})
	}

	vecedit.Logger().Debug("vnet: optimized",
		"merged", len(merged), "segments", len(dropped), "unused", len(unused))
	return merged
}

// RemoveUnusedVertex removes a vertex that no segment references. It
// reports false, leaving the vertex in place, when a segment uses it.
func (n *Network) RemoveUnusedVertex(id VertexID) (bool, error) {
	if !n.hasVertex(id) {
		return false, n.vertexErr(id)
	}
	for _, e := range n.s.Segments.Items {
		if e.Value.A == id || e.Value.B == id {
			return false, nil
		}
	}
	n.s.Vertices.Remove(arena.ID(id))
	return true, nil
}

// Merge appends copies of the vertices and segments of other. Positions
// are converted into n's local space, so both networks keep their
// model-space geometry. It returns other's vertex IDs mapped to the new
// ones in n.
func (n *Network) Merge(other *Network) map[VertexID]VertexID {
	ids := make(map[VertexID]VertexID)
	if other == nil {
		return ids
	}
	shift := other.s.Offset.Sub(n.s.Offset)
	for _, e := range other.s.Vertices.Items {
		ids[VertexID(e.ID)] = n.AddVertex(e.Value.Add(shift))
	}
	for _, e := range other.s.Segments.Items {
		n.addSegment(ids[e.Value.A], ids[e.Value.B], e.Value.TA, e.Value.TB)
	}
	return ids
}

// Union returns a new network holding a followed by b, optimized with cfg.
// The result uses a's offset and IDs; b's elements get fresh IDs. Either
// network may be nil.
func Union(a, b *Network, cfg OptimizeConfig) *Network {
	out := New()
	if a != nil {
		out = a.Clone()
	}
	out.Merge(b)
	out.Optimize(cfg)
	return out
}
