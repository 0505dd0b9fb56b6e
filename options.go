package vec

import "go.uber.org/zap"

// Option configures a vector at creation time.
type Option func(*Vector)

// WithShrinkDisabled turns off automatic capacity shrinking for this vector.
// Removal operations then never reallocate, whatever the fill ratio.
// Explicit Resize, ShrinkToFit and Clear still release storage.
func WithShrinkDisabled() Option {
	return func(v *Vector) {
		v.noShrink = true
	}
}

// WithLogger sets the logger used for capacity-change events. The default is
// a nop logger.
func WithLogger(logger *zap.Logger) Option {
	return func(v *Vector) {
		if logger != nil {
			v.logger = logger
		}
	}
}
