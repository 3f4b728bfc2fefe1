package mathdown

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"

	highlighting "github.com/yuin/goldmark-highlighting/v2"
)

// StandardOptions goldmark 扩展配置
var StandardOptions = []goldmark.Option{
	goldmark.WithExtensions(
		extension.GFM,            // GitHub Flavored Markdown (tables, strikethrough, tasklists)
		extension.DefinitionList, // 定义列表
		extension.Footnote,       // 脚注
		highlighting.NewHighlighting(
			highlighting.WithStyle("github"),
		),
	),
	goldmark.WithParserOptions(
		parser.WithAutoHeadingID(), // 自动生成标题 ID
	),
}

// RenderHTML 预处理数学片段后交给 goldmark 渲染为 HTML
//
// This is the downstream hand-off: RenderableText runs first, then the
// processed Markdown is fed to goldmark. Goldmark has no native context
// support, so conversion runs in a goroutine and the call returns early
// on cancellation.
//
// 参数：
//   - ctx: 上下文
//   - markdown: 原始 Markdown 文本
//   - opts: 转换选项
//
// 返回：
//   - string: HTML 片段
//   - error: 渲染错误或 ctx 取消
func RenderHTML(ctx context.Context, markdown string, opts ...Option) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	options := applyOptions(opts...)
	gmOptions := StandardOptions
	if options.Config != nil && options.Config.HardWraps {
		gmOptions = append(gmOptions[:len(gmOptions):len(gmOptions)],
			goldmark.WithRendererOptions(html.WithHardWraps()))
	}
	md := goldmark.New(gmOptions...)
	processed := RenderableText(markdown, opts...)

	type result struct {
		html string
		err  error
	}
	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := md.Convert([]byte(processed), &buf); err != nil {
			done <- result{err: fmt.Errorf("render html: %w", err)}
			return
		}
		done <- result{html: buf.String()}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.html, r.err
	}
}

// RenderTerminal 预处理数学片段后交给 glamour 渲染为终端文本
//
// 参数：
//   - markdown: 原始 Markdown 文本
//   - opts: 转换选项（WordWrap 来自 RenderConfig）
//
// 返回：
//   - string: ANSI 终端文本
//   - error: 渲染错误
func RenderTerminal(markdown string, opts ...Option) (string, error) {
	options := applyOptions(opts...)
	wordWrap := 80
	if options.Config != nil && options.Config.WordWrap > 0 {
		wordWrap = options.Config.WordWrap
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wordWrap),
	)
	if err != nil {
		return "", fmt.Errorf("new terminal renderer: %w", err)
	}

	out, err := r.Render(RenderableText(markdown, opts...))
	if err != nil {
		return "", fmt.Errorf("render terminal: %w", err)
	}
	return strings.TrimRight(out, "\n") + "\n", nil
}
