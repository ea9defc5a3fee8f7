package vecedit

import "errors"

// Sentinel errors shared by vecedit and its sub-packages. Sub-packages wrap
// them with context, so test with errors.Is.
var (
	// ErrInvalidArgument reports input a caller should never pass: an empty
	// candidate set, a negative threshold, a NaN or out-of-range value.
	ErrInvalidArgument = errors.New("vecedit: invalid argument")

	// ErrNotFound reports a vertex, segment or stop id that does not exist
	// in the current state.
	ErrNotFound = errors.New("vecedit: not found")

	// ErrState reports an operation called out of order, such as a drag
	// update without a matching begin, or a second begin before end.
	ErrState = errors.New("vecedit: invalid state")

	// ErrSingularTransform is returned when inverting a matrix whose linear
	// part has a (numerically) zero determinant.
	ErrSingularTransform = errors.New("vecedit: singular transform")
)
