package tokenizer

// options holds tunables applied via functional Option values, in the
// idiom this corpus uses for tokenizer construction (see xmltokenizer's
// WithReadBufferSize and friends).
type options struct {
	maxDepth int
}

// Option configures a Tokenizer at construction time.
type Option func(*options)

// WithMaxDepth caps element nesting depth. When a start tag's '>' would raise
// the open-element depth above n, that terminator produces an Error instead
// of an ElementEnd token (self-closing tags do not count toward depth), so that
// pathologically deep input fails fast rather than growing the caller's
// hierarchy stack without bound. The default, 0, means unbounded — the
// behavior described in the core tokenizer contract.
func WithMaxDepth(n int) Option {
	return func(o *options) {
		o.maxDepth = n
	}
}

func defaultOptions() options {
	return options{maxDepth: 0}
}
