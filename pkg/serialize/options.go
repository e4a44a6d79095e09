package serialize

type options struct {
	prefix         string
	indent         string
	header         bool
	disallowFields bool
}

// Option configures rendering and parsing.
type Option func(*options)

// WithIndent renders nested elements on separate lines indented by indent.
func WithIndent(indent string) Option {
	return func(o *options) {
		o.indent = indent
	}
}

// WithPrefix starts every indented line with prefix. Only used together with WithIndent.
func WithPrefix(prefix string) Option {
	return func(o *options) {
		o.prefix = prefix
	}
}

// WithXMLHeader prepends the standard <?xml ...?> declaration to XML output.
func WithXMLHeader() Option {
	return func(o *options) {
		o.header = true
	}
}

// WithStrictFields makes FromJSON reject objects with unknown fields.
func WithStrictFields() Option {
	return func(o *options) {
		o.disallowFields = true
	}
}

func newOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
