package rules

// SpacerMode selects how the punctuation spacer pads catalog glyphs.
type SpacerMode int

const (
	// SpaceAll pads every occurrence of a glyph with one space on each side.
	SpaceAll SpacerMode = iota
	// SpaceEdges pads only glyphs already adjacent to whitespace,
	// leaving interior glyphs (the apostrophe in "don't") untouched.
	SpaceEdges
)

// punctuationCatalog lists every glyph the spacer pads, ASCII first,
// then symbol and fullwidth glyphs that show up in scraped text.
// Catalog order is the declaration order of the generated rules.
var punctuationCatalog = []rune{
	'!', '"', '#', '$', '%', '&', '\'', '(', ')', '*', '+', ',', '-',
	'.', '/', ':', ';', '<', '=', '>', '?', '@', '[', '\\', ']', '^',
	'_', '`', '{', '|', '}', '~',
	'¡', '¦', '§', '¨', '©', '«', '¬', '®', '¯', '°', '±', '´', '¶',
	'·', '¸', '»', '¿',
	'‐', '‑', '‒', '–', '—', '―', '‖', '‗',
	'‘', '’', '‚', '‛', '“', '”', '„', '‟',
	'†', '‡', '•', '‣', '…', '‰', '′', '″', '‹', '›', '⁄',
	'€', '₤', '₩', '₪', '₫', '¢', '£', '¤', '¥',
	'←', '↑', '→', '↓', '↔',
	'∀', '∂', '∃', '∅', '∇', '∈', '∉', '∑', '−', '∗', '√', '∝', '∞',
	'∠', '∧', '∨', '∩', '∪', '∫', '∴', '∼', '≅', '≈', '≠', '≡', '≤',
	'≥', '⊂', '⊃', '⊆', '⊇', '⊕', '⊗', '⊥', '⋅',
	'■', '□', '▪', '▫', '▲', '△', '▼', '○', '●', '★', '☆',
	'♠', '♣', '♥', '♦', '♪', '♫',
	'、', '。', '〈', '〉', '《', '》', '「', '」', '『', '』',
	'【', '】', '〔', '〕', '・',
	'！', '＂', '＃', '％', '＆', '（', '）', '，', '．', '：', '；',
	'？', '＠',
}

// NewPunctuationSpacer builds the glyph-padding literal rule set.
//
// SpaceAll emits one rule per glyph, g -> " g ". SpaceEdges emits two
// rules per glyph keyed on the adjacent space (" g" and "g "), both
// replacing with " g ", so only whitespace-adjacent occurrences are
// padded and the rewrite converges across the two rules.
func NewPunctuationSpacer(mode SpacerMode) *LiteralRules {
	var out []Rule
	switch mode {
	case SpaceEdges:
		out = make([]Rule, 0, 2*len(punctuationCatalog))
		for _, g := range punctuationCatalog {
			glyph := string(g)
			out = append(out,
				Rule{Pattern: " " + glyph, Replacement: " " + glyph + " "},
				Rule{Pattern: glyph + " ", Replacement: " " + glyph + " "},
			)
		}
	default:
		out = make([]Rule, 0, len(punctuationCatalog))
		for _, g := range punctuationCatalog {
			glyph := string(g)
			out = append(out, Rule{Pattern: glyph, Replacement: " " + glyph + " "})
		}
	}
	return NewLiteralRules(out)
}

// PunctuationGlyphs returns a copy of the spacer catalog.
func PunctuationGlyphs() []rune {
	out := make([]rune, len(punctuationCatalog))
	copy(out, punctuationCatalog)
	return out
}
