package converter

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/riverfjs/mathdown-go/internal/latex"
)

var (
	// Block math: $$ followed by one or more non-$ characters, then $$.
	blockMathRe = regexp.MustCompile(`\$\$([^$]+)\$\$`)

	// Inline math: $ followed by one or more non-$ characters, then $.
	// Evaluated after the block pass, so it sees placeholder tokens
	// where block spans used to be.
	inlineMathRe = regexp.MustCompile(`\$([^$]+)\$`)
)

// PreprocessMath rewrites the math spans of a document in two passes.
//
// Pass 1 replaces each $$...$$ span with an indexed structural
// placeholder ("\n\n[BLOCKMATH_<i>]\n\n"); the LaTeX body of a block
// span is dropped, not converted. Pass 2 replaces each $...$ span with
// the Unicode conversion of its body.
//
// Both passes substitute by literal value, not by position: every
// occurrence of a matched span's exact text is replaced at once, so two
// structurally distinct spans with identical text collapse under the
// first match's replacement.
func PreprocessMath(text string, conv *latex.Converter) string {
	for i, seg := range findSegments(blockMathRe, text, SegmentBlock) {
		placeholder := fmt.Sprintf("\n\n[BLOCKMATH_%d]\n\n", i)
		text = strings.ReplaceAll(text, seg.Raw, placeholder)
	}

	for _, seg := range findSegments(inlineMathRe, text, SegmentInline) {
		text = strings.ReplaceAll(text, seg.Raw, conv.ConvertSymbols(seg.Body))
	}

	return text
}
