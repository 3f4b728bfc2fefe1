package types

// RenderConfig 渲染配置
type RenderConfig struct {
	// ExtraSymbols extends the built-in notation tables with
	// caller-defined command → Unicode replacements.
	ExtraSymbols map[string]string

	// HardWraps treats single newlines as <br> in the HTML hand-off.
	HardWraps bool

	// WordWrap is the column width for the terminal hand-off.
	WordWrap int
}

// DefaultRenderConfig 返回默认渲染配置
func DefaultRenderConfig() *RenderConfig {
	return &RenderConfig{
		ExtraSymbols: nil,
		HardWraps:    false,
		WordWrap:     80,
	}
}
