// Package stops implements an ordered collection of gradient-stop-like
// items.
//
// A List stays sorted ascending by offset after every mutation. Each stop
// has an ID that survives reordering; selection and drags refer to stops by
// ID and the index is recomputed when asked for. A stop inserted at the
// same offset as an existing stop goes before it, so interactive insertion
// near a stop is deterministic.
//
// Track describes where the offsets lie on the canvas: along the A-B axis
// for linear and radial gradients, or around A for sweep gradients.
// List[Color] with LerpColor is the usual color gradient.
package stops
