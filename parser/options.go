package parser

// Options controls parser behaviors that can be tightened.
type Options struct {
	// StrictTopLevel turns tokens that start no statement into an error
	// instead of skipping them.
	StrictTopLevel bool
}

// DefaultOptions skips unknown top-level tokens.
var DefaultOptions = Options{}

// Option modifies Options
type Option func(*Options)

// WithStrictTopLevel rejects top-level tokens that start no statement.
func WithStrictTopLevel() Option {
	return func(o *Options) {
		o.StrictTopLevel = true
	}
}

// WithOptions replaces all options at once, e.g. from configuration.
func WithOptions(opts Options) Option {
	return func(o *Options) {
		*o = opts
	}
}
