package converter

import "regexp"

// SegmentKind classifies a matched math span.
type SegmentKind int

const (
	// SegmentBlock is a $$...$$ span, rendered as its own paragraph.
	SegmentBlock SegmentKind = iota
	// SegmentInline is a $...$ span embedded in running text.
	SegmentInline
)

// String returns the string representation of SegmentKind.
func (k SegmentKind) String() string {
	switch k {
	case SegmentBlock:
		return "block"
	case SegmentInline:
		return "inline"
	default:
		return "unknown"
	}
}

// MathSegment is one delimited math span found in a document.
//
// Raw is the full delimited text ($...$ or $$...$$) and is what gets
// substituted out of the document; Body is the LaTeX between the
// delimiters. Segments live for a single preprocessing pass and are
// never stored.
type MathSegment struct {
	Kind SegmentKind
	Raw  string
	Body string
}

// findSegments collects all non-overlapping matches of re, in order.
// re must have exactly one capture group for the span body.
func findSegments(re *regexp.Regexp, text string, kind SegmentKind) []MathSegment {
	matches := re.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}
	segments := make([]MathSegment, 0, len(matches))
	for _, m := range matches {
		segments = append(segments, MathSegment{
			Kind: kind,
			Raw:  m[0],
			Body: m[1],
		})
	}
	return segments
}
