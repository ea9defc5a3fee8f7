// Package vnet implements an editable vector network: vertices joined by
// cubic Bezier segments, plus a pen-tool Editor on top of it.
//
// A Segment stores its tangents as deltas from its end vertices. A segment
// whose tangents are both zero is a straight line and is evaluated as one.
//
// Vertices and segments are addressed by IDs that survive deletion and
// reordering of other elements. Use Network.VertexIndex or Network.Data
// when positional indices are needed, for example when handing the network
// back to a document store.
//
// The Editor works in model space and follows this state machine:
//
//	Idle     --AddVertex-->         Anchored
//	Anchored --AddVertex-->         Anchored (segment committed)
//	Anchored --ClosePath/Cancel-->  Idle
//
// Drags follow begin, update, end. Calling update or end without begin, or
// begin twice, fails with vecedit.ErrState. Nothing is rolled back on
// cancel; take an Editor.Snapshot before a drag to revert it.
package vnet
