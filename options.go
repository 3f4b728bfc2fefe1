package mathdown

// ConvertOptions holds options for document preprocessing.
type ConvertOptions struct {
	MathConversion bool
	ExtraSymbols   map[string]string
	Config         *RenderConfig
}

// Option is a function that configures ConvertOptions.
type Option func(*ConvertOptions)

// WithMathConversion sets whether math spans are rewritten at all.
// Disabled, the document passes through with its $ delimiters intact.
func WithMathConversion(enable bool) Option {
	return func(opts *ConvertOptions) {
		opts.MathConversion = enable
	}
}

// WithExtraSymbols extends the built-in notation tables with custom
// command → Unicode replacements. Extras are applied after the
// built-ins, longest command first.
func WithExtraSymbols(symbols map[string]string) Option {
	return func(opts *ConvertOptions) {
		opts.ExtraSymbols = symbols
	}
}

// WithConfig sets a custom RenderConfig.
func WithConfig(config *RenderConfig) Option {
	return func(opts *ConvertOptions) {
		opts.Config = config
	}
}

// defaultConvertOptions returns the default conversion options.
func defaultConvertOptions() *ConvertOptions {
	return &ConvertOptions{
		MathConversion: true,
		Config:         DefaultConfig(),
	}
}

// applyOptions applies the given options to the default options.
func applyOptions(opts ...Option) *ConvertOptions {
	options := defaultConvertOptions()
	for _, opt := range opts {
		opt(options)
	}
	return options
}
