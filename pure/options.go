package pure

import "go.uber.org/zap"

// ExceptWhen is a bypass predicate. It is called with each argument and its
// position, left to right; returning true makes the whole call skip the cache.
type ExceptWhen func(arg any, index int) bool

type config struct {
	exceptWhen ExceptWhen
	name       string
	logger     *zap.Logger
}

// Option configures a Memoized at creation time.
type Option func(*config)

// WithExceptWhen returns an Option that installs a bypass predicate.
func WithExceptWhen(pred ExceptWhen) Option {
	return func(c *config) {
		c.exceptWhen = pred
	}
}

// WithName returns an Option that overrides the base of the diagnostic name.
func WithName(name string) Option {
	return func(c *config) {
		c.name = name
	}
}

// WithLogger returns an Option that traces hits, misses and bypasses at
// debug level.
func WithLogger(logger *zap.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

func newConfig(opts []Option) config {
	c := config{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
