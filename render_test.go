package mathdown

import (
	"context"
	"strings"
	"testing"
)

// TestRenderHTML_Basic processed math flows into the HTML output.
func TestRenderHTML_Basic(t *testing.T) {
	html, err := RenderHTML(context.Background(), "# Energy\n\nEinstein: $E = mc^2$")
	if err != nil {
		t.Fatalf("RenderHTML() error = %v", err)
	}
	if !strings.Contains(html, "E = mc²") {
		t.Errorf("RenderHTML() = %q, want converted math", html)
	}
	if !strings.Contains(html, "<h1") {
		t.Errorf("RenderHTML() = %q, want heading markup", html)
	}
}

// TestRenderHTML_BlockPlaceholder placeholders survive rendering as
// plain paragraph text.
func TestRenderHTML_BlockPlaceholder(t *testing.T) {
	html, err := RenderHTML(context.Background(), "before\n\n$$x+y$$\n\nafter")
	if err != nil {
		t.Fatalf("RenderHTML() error = %v", err)
	}
	if !strings.Contains(html, "[BLOCKMATH_0]") {
		t.Errorf("RenderHTML() = %q, want [BLOCKMATH_0]", html)
	}
}

// TestRenderHTML_GFM tables from the GFM extension render.
func TestRenderHTML_GFM(t *testing.T) {
	html, err := RenderHTML(context.Background(), "| a | b |\n|---|---|\n| 1 | 2 |")
	if err != nil {
		t.Fatalf("RenderHTML() error = %v", err)
	}
	if !strings.Contains(html, "<table>") {
		t.Errorf("RenderHTML() = %q, want table markup", html)
	}
}

// TestRenderHTML_Canceled a canceled context aborts before rendering.
func TestRenderHTML_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := RenderHTML(ctx, "# x"); err == nil {
		t.Error("RenderHTML() with canceled context should fail")
	}
}

// TestRenderTerminal_Basic terminal output carries the converted math.
func TestRenderTerminal_Basic(t *testing.T) {
	out, err := RenderTerminal("Area: $\\pi r^2$")
	if err != nil {
		t.Fatalf("RenderTerminal() error = %v", err)
	}
	if !strings.Contains(out, "π r²") {
		t.Errorf("RenderTerminal() = %q, want converted math", out)
	}
	if !strings.HasSuffix(out, "\n") {
		t.Errorf("RenderTerminal() should end with a newline")
	}
}
