package markdownify

// RenderOptions holds options for rendering.
type RenderOptions struct {
	Config *RenderConfig
	// Translate overrides the catalog lookup entirely. Intended for
	// callers that manage their own message catalogs.
	Translate func(string) string
}

// Option is a function that configures RenderOptions.
type Option func(*RenderOptions)

// WithConfig sets a custom RenderConfig.
func WithConfig(config *RenderConfig) Option {
	return func(opts *RenderOptions) {
		opts.Config = config
	}
}

// WithTranslator sets a translate function, bypassing catalog lookup.
func WithTranslator(translate func(string) string) Option {
	return func(opts *RenderOptions) {
		opts.Translate = translate
	}
}

// defaultRenderOptions returns the default render options.
func defaultRenderOptions() *RenderOptions {
	return &RenderOptions{
		Config: DefaultConfig(),
	}
}

// applyOptions applies the given options to the default options.
func applyOptions(opts ...Option) *RenderOptions {
	options := defaultRenderOptions()
	for _, opt := range opts {
		opt(options)
	}
	return options
}
