package latex

import (
	"regexp"
	"sort"
	"strings"
)

// Converter is the table-driven LaTeX→Unicode notation engine.
//
// Design principles:
//  1. Data driven — symbol mappings live in symbols.go
//  2. Robust degradation — unknown commands pass through untouched,
//     never an error
//  3. Best-effort output — Unicode approximation, not a math engine
type Converter struct {
	extra []Replacement
}

// NewConverter creates a converter. Extra replacements run after the
// built-in tables, longest command first, under the same literal
// substring semantics.
func NewConverter(extra map[string]string) *Converter {
	c := &Converter{}
	if len(extra) == 0 {
		return c
	}
	c.extra = make([]Replacement, 0, len(extra))
	for cmd, sym := range extra {
		c.extra = append(c.extra, Replacement{Command: cmd, Unicode: sym})
	}
	// Longer commands first so a short command cannot corrupt a longer
	// one it is a prefix of. Ties break lexicographically to keep the
	// pass deterministic.
	sort.Slice(c.extra, func(i, j int) bool {
		if len(c.extra[i].Command) != len(c.extra[j].Command) {
			return len(c.extra[i].Command) > len(c.extra[j].Command)
		}
		return c.extra[i].Command < c.extra[j].Command
	})
	return c
}

var (
	// ^ or _ followed by exactly one ASCII digit. Multi-digit exponents
	// are not grouped: the pattern is applied per digit, so ^12 becomes
	// ¹2 rather than ¹².
	superscriptDigit = regexp.MustCompile(`\^([0-9])`)
	subscriptDigit   = regexp.MustCompile(`_([0-9])`)

	// One level of braces only. The bodies exclude }, so an inner brace
	// terminates the capture early instead of nesting.
	simpleFraction = regexp.MustCompile(`\\frac\{([^}]+)\}\{([^}]+)\}`)
)

// ConvertSymbols rewrites a LaTeX fragment into a Unicode approximation.
//
// Passes run in a fixed order, each over the output of the previous one:
//
//  1. trim surrounding whitespace
//  2. Greek letter substitution
//  3. operator/relation/arrow substitution
//  4. ^<digit> → superscript digit
//  5. _<digit> → subscript digit
//  6. \frac{A}{B} → (A/B)
//
// The function is total: malformed input degrades to partial or no
// conversion, it never fails.
func (c *Converter) ConvertSymbols(latex string) string {
	s := strings.TrimSpace(latex)

	for _, r := range GreekLetters {
		s = strings.ReplaceAll(s, r.Command, r.Unicode)
	}
	for _, r := range MathSymbols {
		s = strings.ReplaceAll(s, r.Command, r.Unicode)
	}
	for _, r := range c.extra {
		s = strings.ReplaceAll(s, r.Command, r.Unicode)
	}

	s = superscriptDigit.ReplaceAllStringFunc(s, func(m string) string {
		return Superscripts[m[1]]
	})
	s = subscriptDigit.ReplaceAllStringFunc(s, func(m string) string {
		return Subscripts[m[1]]
	})

	return simpleFraction.ReplaceAllString(s, "($1/$2)")
}
