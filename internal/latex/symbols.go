package latex

// Replacement maps a literal LaTeX command to its Unicode form.
type Replacement struct {
	Command string
	Unicode string
}

// GreekLetters covers the 24 Greek letters in both cases.
//
// The uppercase keys include \Alpha, \Eta, \Iota and friends even though
// real LaTeX has no such commands; the table accepts them anyway so that
// symmetric input like \Alpha\beta converts cleanly.
var GreekLetters = []Replacement{
	{`\alpha`, "α"},
	{`\beta`, "β"},
	{`\gamma`, "γ"},
	{`\delta`, "δ"},
	{`\epsilon`, "ε"},
	{`\zeta`, "ζ"},
	{`\eta`, "η"},
	{`\theta`, "θ"},
	{`\iota`, "ι"},
	{`\kappa`, "κ"},
	{`\lambda`, "λ"},
	{`\mu`, "μ"},
	{`\nu`, "ν"},
	{`\xi`, "ξ"},
	{`\omicron`, "ο"},
	{`\pi`, "π"},
	{`\rho`, "ρ"},
	{`\sigma`, "σ"},
	{`\tau`, "τ"},
	{`\upsilon`, "υ"},
	{`\phi`, "φ"},
	{`\chi`, "χ"},
	{`\psi`, "ψ"},
	{`\omega`, "ω"},
	{`\Alpha`, "Α"},
	{`\Beta`, "Β"},
	{`\Gamma`, "Γ"},
	{`\Delta`, "Δ"},
	{`\Epsilon`, "Ε"},
	{`\Zeta`, "Ζ"},
	{`\Eta`, "Η"},
	{`\Theta`, "Θ"},
	{`\Iota`, "Ι"},
	{`\Kappa`, "Κ"},
	{`\Lambda`, "Λ"},
	{`\Mu`, "Μ"},
	{`\Nu`, "Ν"},
	{`\Xi`, "Ξ"},
	{`\Omicron`, "Ο"},
	{`\Pi`, "Π"},
	{`\Rho`, "Ρ"},
	{`\Sigma`, "Σ"},
	{`\Tau`, "Τ"},
	{`\Upsilon`, "Υ"},
	{`\Phi`, "Φ"},
	{`\Chi`, "Χ"},
	{`\Psi`, "Ψ"},
	{`\Omega`, "Ω"},
}

// MathSymbols covers operators, relations, arrows and set notation.
//
// Order matters: replacement is plain substring substitution, so a
// command must come before any command it is a prefix of (\infty and
// \int before \in, \subseteq before \subset, \cdots before \cdot).
var MathSymbols = []Replacement{
	{`\leftrightarrow`, "↔"},
	{`\Leftrightarrow`, "⇔"},
	{`\rightarrow`, "→"},
	{`\leftarrow`, "←"},
	{`\Rightarrow`, "⇒"},
	{`\Leftarrow`, "⇐"},
	{`\mapsto`, "↦"},
	{`\infty`, "∞"},
	{`\int`, "∫"},
	{`\notin`, "∉"},
	{`\in`, "∈"},
	{`\subseteq`, "⊆"},
	{`\supseteq`, "⊇"},
	{`\subset`, "⊂"},
	{`\supset`, "⊃"},
	{`\cup`, "∪"},
	{`\cap`, "∩"},
	{`\emptyset`, "∅"},
	{`\forall`, "∀"},
	{`\exists`, "∃"},
	{`\neg`, "¬"},
	{`\land`, "∧"},
	{`\lor`, "∨"},
	{`\sum`, "∑"},
	{`\prod`, "∏"},
	{`\partial`, "∂"},
	{`\nabla`, "∇"},
	{`\pm`, "±"},
	{`\mp`, "∓"},
	{`\times`, "×"},
	{`\div`, "÷"},
	{`\cdots`, "⋯"},
	{`\cdot`, "·"},
	{`\ldots`, "…"},
	{`\leq`, "≤"},
	{`\geq`, "≥"},
	{`\neq`, "≠"},
	{`\approx`, "≈"},
	{`\equiv`, "≡"},
	{`\propto`, "∝"},
	{`\sim`, "∼"},
	{`\sqrt`, "√"},
	{`\angle`, "∠"},
	{`\perp`, "⊥"},
	{`\parallel`, "∥"},
	{`\therefore`, "∴"},
	{`\because`, "∵"},
	{`\to`, "→"},
}

// Superscripts maps ASCII digits to Unicode superscript digits.
var Superscripts = map[byte]string{
	'0': "⁰", '1': "¹", '2': "²", '3': "³", '4': "⁴",
	'5': "⁵", '6': "⁶", '7': "⁷", '8': "⁸", '9': "⁹",
}

// Subscripts maps ASCII digits to Unicode subscript digits.
var Subscripts = map[byte]string{
	'0': "₀", '1': "₁", '2': "₂", '3': "₃", '4': "₄",
	'5': "₅", '6': "₆", '7': "₇", '8': "₈", '9': "₉",
}
