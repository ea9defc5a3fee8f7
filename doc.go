// Package vecedit provides the geometry core of an interactive vector
// design tool.
//
// # Overview
//
// vecedit holds the authoritative numeric model behind a canvas editor's
// drawing tools. It never paints pixels, captures input or persists
// documents: a pointer layer feeds it model-space positions, a document
// store supplies and receives the edited data, and a renderer consumes
// the resulting paths and gradient stops.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/vecedit"
//	    "github.com/gogpu/vecedit/vnet"
//	)
//
//	ed := vnet.NewEditor(vnet.New())
//	ed.AddVertex(vecedit.Pt(0, 0))
//	ed.AddVertex(vecedit.Pt(100, 0))
//	ed.AddVertex(vecedit.Pt(100, 100))
//	ed.ClosePath()
//
//	path := ed.Network().Path() // hand to the renderer
//
// # Architecture
//
// The library is organized into:
//   - vecedit: Point, Vec2, Matrix, curves, Path, errors, logging
//   - snap: threshold-based snapping of scalars and points
//   - vnet: vector network (vertices + cubic segments) and the pen tool
//   - stops: offset-sorted stop lists with stable identity, gradient tracks
//   - config: editor settings loaded from YAML or TOML
//
// # Points and Vectors
//
// Point is a position and Vec2 is a displacement. Matrix.TransformPoint
// applies translation; Matrix.TransformVector does not. Bezier tangents are
// stored as Vec2 deltas relative to their vertex, so moving a path's origin
// never distorts its curves.
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians
//
// # Concurrency
//
// Editing types are owned by one edit session and are not safe for
// concurrent use. Only SetLogger/Logger are safe to call from any goroutine.
package vecedit
