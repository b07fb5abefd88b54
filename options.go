package datetime

// Options control how a [DateTime] is constructed from its input
type Options struct {
	// InputFormat is a token layout (e.g. "MM/DD/YYYY") for string input. Other input kinds ignore it.
	InputFormat string

	// Timezone is an IANA zone name. When set, string input is read as wall clock in that zone and every other input
	// is converted to it; the host's zone plays no part.
	Timezone string

	// Strict requires string input to match InputFormat exactly, including separators and field widths
	Strict bool
}

// Option configures construction of a single [DateTime]
type Option func(*Options)

func WithInputFormat(layout string) Option {
	return func(o *Options) {
		o.InputFormat = layout
	}
}

func WithTimezone(name string) Option {
	return func(o *Options) {
		o.Timezone = name
	}
}

func WithStrict(strict bool) Option {
	return func(o *Options) {
		o.Strict = strict
	}
}

// WithOptions replaces all options at once
func WithOptions(opts Options) Option {
	return func(o *Options) {
		*o = opts
	}
}

func collectOptions(opts []Option) Options {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
