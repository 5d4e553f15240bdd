package bvh

import (
	"log/slog"
)

// config collects the settings applied by Option values.
type config struct {
	validate bool
	tieBreak any // func(a, b T) int, checked against T at build time
	logger   *slog.Logger
}

func defaultConfig() config {
	return config{
		validate: true,
		logger:   slog.New(slog.DiscardHandler),
	}
}

// Option configures a Build call.
type Option func(*config)

// WithoutValidation skips the bounding-volume checks performed before
// construction. Inverted or non-finite boxes are then accepted and produce a
// structurally valid but geometrically meaningless tree.
func WithoutValidation() Option {
	return func(c *config) {
		c.validate = false
	}
}

// WithTieBreak orders objects whose centers coincide on the split axis.
// Without it, such objects keep their input order, which for a map is Go's
// unspecified iteration order.
//
// The comparison must return a negative number when a sorts first, zero when
// a and b are equal, and a positive number otherwise, like cmp.Compare.
func WithTieBreak[T comparable](compare func(a, b T) int) Option {
	return func(c *config) {
		c.tieBreak = compare
	}
}

// WithLogger sets the logger that receives a debug-level summary of each
// build. The default discards all output.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}
