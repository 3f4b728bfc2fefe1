package mathdown

import (
	"github.com/riverfjs/mathdown-go/internal/converter"
	"github.com/riverfjs/mathdown-go/internal/latex"
)

// ConvertSymbols 将单个 LaTeX 片段转换为 Unicode 文本
//
// Applies, in order: whitespace trim, Greek letter substitution,
// operator/relation/arrow substitution, ^digit superscripts, _digit
// subscripts and simple \frac{A}{B} rewriting. Total function — every
// input produces an output, unknown commands pass through.
//
// 参数：
//   - fragment: LaTeX 片段（不含 $ 定界符）
//   - opts: 转换选项（WithExtraSymbols 扩展符号表）
//
// 返回：
//   - string: Unicode 近似文本
func ConvertSymbols(fragment string, opts ...Option) string {
	options := applyOptions(opts...)
	return newLatexConverter(options).ConvertSymbols(fragment)
}

// Preprocess 扫描整篇文档的数学片段并重写
//
// Block $$...$$ spans become indexed [BLOCKMATH_n] paragraph markers;
// inline $...$ spans are converted to Unicode in place. Everything
// outside math delimiters is left untouched. Unlike RenderableText,
// no indentation trimming is applied.
func Preprocess(markdown string, opts ...Option) string {
	options := applyOptions(opts...)
	return converter.PreprocessMath(markdown, newLatexConverter(options))
}

// newLatexConverter builds the notation engine for one call, merging
// extra symbols from the options and the render config.
func newLatexConverter(options *ConvertOptions) *latex.Converter {
	extra := options.ExtraSymbols
	if extra == nil && options.Config != nil {
		extra = options.Config.ExtraSymbols
	}
	return latex.NewConverter(extra)
}
