package stops

// Option configures a List.
//
// Example:
//
//	l := stops.New[color.RGBA](stops.WithStep(0.05), stops.WithStopSnap(0.02))
type Option func(*listOptions)

type listOptions struct {
	step          float64
	stopThreshold float64
}

// WithStep quantizes dragged offsets to multiples of step. Zero or a
// negative step disables quantization.
func WithStep(step float64) Option {
	return func(o *listOptions) {
		o.step = step
	}
}

// WithStopSnap snaps dragged offsets onto other stops within threshold.
// Stop snapping is tried before step quantization.
func WithStopSnap(threshold float64) Option {
	return func(o *listOptions) {
		o.stopThreshold = threshold
	}
}
