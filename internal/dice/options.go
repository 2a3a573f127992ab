package dice

import "github.com/rs/zerolog"

type options struct {
	source Source
	logger zerolog.Logger
}

// Option configures dice, pools and quick rolls
type Option func(*options)

// WithSource rolls against src instead of DefaultSource
func WithSource(src Source) Option {
	return func(o *options) {
		if src != nil {
			o.source = src
		}
	}
}

// WithLogger logs pool construction at debug level
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func newOptions(opts []Option) *options {
	o := &options{
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.source == nil {
		o.source = DefaultSource()
	}
	return o
}
