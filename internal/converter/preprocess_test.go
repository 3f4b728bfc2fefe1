package converter

import (
	"strings"
	"testing"

	"github.com/riverfjs/mathdown-go/internal/latex"
)

func preprocess(text string) string {
	return PreprocessMath(text, latex.NewConverter(nil))
}

// TestPreprocessMath_Inline inline math converts in place, delimiters
// removed.
func TestPreprocessMath_Inline(t *testing.T) {
	got := preprocess("Einstein: $E = mc^2$")
	want := "Einstein: E = mc²"
	if got != want {
		t.Errorf("PreprocessMath() = %q, want %q", got, want)
	}
}

// TestPreprocessMath_InlineMultiple independent inline spans each
// convert.
func TestPreprocessMath_InlineMultiple(t *testing.T) {
	got := preprocess(`$\alpha$ and $x^2$ and $a \leq b$`)
	want := "α and x² and a ≤ b"
	if got != want {
		t.Errorf("PreprocessMath() = %q, want %q", got, want)
	}
}

// TestPreprocessMath_Block block spans become indexed placeholders and
// their LaTeX body is dropped.
func TestPreprocessMath_Block(t *testing.T) {
	got := preprocess("$$x+y$$")
	if !strings.Contains(got, "[BLOCKMATH_0]") {
		t.Errorf("PreprocessMath() = %q, want placeholder [BLOCKMATH_0]", got)
	}
	if strings.Contains(got, "x+y") {
		t.Errorf("PreprocessMath() = %q, block body should be dropped", got)
	}
}

// TestPreprocessMath_BlockIndexing placeholders are numbered in match
// order.
func TestPreprocessMath_BlockIndexing(t *testing.T) {
	got := preprocess("a $$first$$ b $$second$$ c")
	if !strings.Contains(got, "[BLOCKMATH_0]") || !strings.Contains(got, "[BLOCKMATH_1]") {
		t.Errorf("PreprocessMath() = %q, want [BLOCKMATH_0] and [BLOCKMATH_1]", got)
	}
	if strings.Index(got, "[BLOCKMATH_0]") > strings.Index(got, "[BLOCKMATH_1]") {
		t.Errorf("PreprocessMath() = %q, placeholders out of order", got)
	}
}

// TestPreprocessMath_BlockPlaceholderParagraph placeholders are padded
// with blank lines so they form their own paragraph.
func TestPreprocessMath_BlockPlaceholderParagraph(t *testing.T) {
	got := preprocess("before $$x$$ after")
	want := "before \n\n[BLOCKMATH_0]\n\n after"
	if got != want {
		t.Errorf("PreprocessMath() = %q, want %q", got, want)
	}
}

// TestPreprocessMath_Mixed block pass runs first, inline pass sees the
// placeholders already substituted.
func TestPreprocessMath_Mixed(t *testing.T) {
	got := preprocess("Sum: $$\\sum_1$$ and inline $E = mc^2$.")
	if !strings.Contains(got, "[BLOCKMATH_0]") {
		t.Errorf("PreprocessMath() = %q, want block placeholder", got)
	}
	if !strings.Contains(got, "E = mc²") {
		t.Errorf("PreprocessMath() = %q, want converted inline span", got)
	}
	if strings.Contains(got, "∑") {
		t.Errorf("PreprocessMath() = %q, block content must not be converted", got)
	}
}

// TestPreprocessMath_NoMath documents without delimiters pass through.
func TestPreprocessMath_NoMath(t *testing.T) {
	in := "# Title\n\nPlain paragraph with no math at all."
	if got := preprocess(in); got != in {
		t.Errorf("PreprocessMath() = %q, want unchanged", got)
	}
}

// TestPreprocessMath_DuplicateInline replacement is by literal value:
// identical inline spans all collapse when the first match is
// processed.
func TestPreprocessMath_DuplicateInline(t *testing.T) {
	got := preprocess("$x^2$ then $x^2$ again")
	want := "x² then x² again"
	if got != want {
		t.Errorf("PreprocessMath() = %q, want %q", got, want)
	}
}

// TestPreprocessMath_DuplicateBlock two identical block spans share
// index 0: the first ReplaceAll consumes both occurrences, and the
// second match finds nothing left to replace.
func TestPreprocessMath_DuplicateBlock(t *testing.T) {
	got := preprocess("$$a$$ mid $$a$$")
	if strings.Count(got, "[BLOCKMATH_0]") != 2 {
		t.Errorf("PreprocessMath() = %q, want [BLOCKMATH_0] twice", got)
	}
	if strings.Contains(got, "[BLOCKMATH_1]") {
		t.Errorf("PreprocessMath() = %q, duplicate spans must not get a fresh index", got)
	}
}

// TestPreprocessMath_UnterminatedDelimiters lone delimiters do not
// match and survive untouched.
func TestPreprocessMath_UnterminatedDelimiters(t *testing.T) {
	cases := []string{
		"price is $5 only",  // would need a closing $
		"$$",                // empty body never matches
		"a $ b $$ c",
	}
	for _, in := range cases {
		got := preprocess(in)
		// Only assertion that holds for all: no placeholder appears.
		if strings.Contains(got, "BLOCKMATH") {
			t.Errorf("PreprocessMath(%q) = %q, unexpected placeholder", in, got)
		}
	}
}

// TestFindSegments segments carry kind, raw text and body.
func TestFindSegments(t *testing.T) {
	segments := findSegments(inlineMathRe, "$a$ text $b$", SegmentInline)
	if len(segments) != 2 {
		t.Fatalf("findSegments() returned %d segments, want 2", len(segments))
	}
	if segments[0].Raw != "$a$" || segments[0].Body != "a" {
		t.Errorf("segment 0 = %+v, want Raw $a$ Body a", segments[0])
	}
	if segments[1].Kind != SegmentInline || segments[1].Kind.String() != "inline" {
		t.Errorf("segment 1 kind = %v, want inline", segments[1].Kind)
	}
}
