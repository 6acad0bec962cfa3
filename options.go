package mdlex

// Option configures Lex and TokenizeReader.
type Option func(*config)

type config struct {
	validate         bool
	stripFrontMatter bool
}

// WithValidation rejects input that is not valid UTF-8 or looks binary.
func WithValidation(enabled bool) Option {
	return func(cfg *config) {
		cfg.validate = enabled
	}
}

// WithFrontMatter skips a leading front matter block when strip is true.
// Token positions still refer to the unstripped input.
func WithFrontMatter(strip bool) Option {
	return func(cfg *config) {
		cfg.stripFrontMatter = strip
	}
}

func newConfig(opts []Option) config {
	cfg := config{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
