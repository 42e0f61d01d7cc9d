package sieve

import "github.com/datatrails/go-datatrails-common/logger"

// Options configures a State. The values are private, use the With* options
// to set them.
type Options struct {
	log          logger.Logger
	initialLimit uint64
}

type Option func(*Options)

// NewOptions applies opts over the zero Options.
func NewOptions(opts ...Option) Options {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithLogger enables debug logging of sieve growth. Without it the sieve is
// silent.
func WithLogger(log logger.Logger) Option {
	return func(o *Options) {
		o.log = log
	}
}

// WithInitialLimit pre-sizes the sieve so that primality of [0, limit) is
// resolved at construction. Iterators constructed with a hint that overflows
// the index type report ErrOverflow from Err on the first call to Next.
func WithInitialLimit(limit uint64) Option {
	return func(o *Options) {
		o.initialLimit = limit
	}
}

func (o Options) Logger() logger.Logger { return o.log }
func (o Options) InitialLimit() uint64  { return o.initialLimit }
