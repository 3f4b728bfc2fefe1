// Package mathdown 将带 LaTeX 数学片段的 Markdown 转换为可渲染文本
//
// This package prepares raw Markdown (LLM output, exported notes,
// chat transcripts) that contains $...$ and $$...$$ math spans for a
// downstream Markdown renderer. Math written in a LaTeX-like command
// vocabulary is rewritten into Unicode approximations, so the final
// renderer never has to understand LaTeX.
//
// 核心功能：
//   - Inline $...$ spans converted in place to Unicode notation
//   - Block $$...$$ spans replaced by indexed [BLOCKMATH_n] markers
//   - Greek letters, operators, relations, arrows, super/subscripts
//     and simple fractions
//   - Hand-off helpers for goldmark (HTML) and glamour (terminal)
//
// 主要 API：
//   - RenderableText(): preprocess a document, return processed Markdown
//   - ConvertSymbols(): convert one LaTeX fragment to Unicode
//   - RenderHTML() / RenderTerminal(): feed the result to a renderer
//
// 示例：
//
//	text := mathdown.RenderableText("Einstein: $E = mc^2$")
//	// "Einstein: E = mc²"
//
//	html, err := mathdown.RenderHTML(ctx, doc)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// The converter is a pure string transformation: no state, no I/O, no
// errors. Malformed or unsupported LaTeX degrades to partial or no
// conversion instead of failing.
package mathdown

import (
	"github.com/riverfjs/mathdown-go/internal/util"
)

// RenderableText 将原始 Markdown 转换为可交给渲染器的文本
//
// This is the main entry point. Math spans are rewritten first (unless
// disabled via WithMathConversion(false)), then the document's common
// indentation is trimmed so indented source literals render as normal
// paragraphs rather than code blocks.
//
// 参数：
//   - markdown: 原始 Markdown 文本
//   - opts: 转换选项
//
// 返回：
//   - string: 处理后的 Markdown，可交给任意标准渲染器
func RenderableText(markdown string, opts ...Option) string {
	options := applyOptions(opts...)

	text := markdown
	if options.MathConversion {
		text = Preprocess(text, opts...)
	}
	return util.TrimIndent(text)
}
