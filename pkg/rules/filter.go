package rules

// characterFilterTable maps ASCII control and wrapper characters a
// downstream tokenizer cannot consume to a single space.
var characterFilterTable = []string{
	"\t", "\n", "\r", "\v", "\f",
	"\"", "`", "^", "~", "\\", "|",
	"<", ">", "{", "}", "[", "]",
	"\x00", "\x01", "\x02", "\x03", "\x04", "\x05", "\x06", "\x07",
	"\x08", "\x0e", "\x0f", "\x10", "\x11", "\x12", "\x13", "\x14",
	"\x15", "\x16", "\x17", "\x18", "\x19", "\x1a", "\x1b", "\x1c",
	"\x1d", "\x1e", "\x1f", "\x7f",
}

// NewCharacterFilter builds the literal rule set that strips tokenizer-
// hostile ASCII characters by rewriting each to a single space.
func NewCharacterFilter() *LiteralRules {
	out := make([]Rule, 0, len(characterFilterTable))
	for _, c := range characterFilterTable {
		out = append(out, Rule{Pattern: c, Replacement: " "})
	}
	return NewLiteralRules(out)
}
