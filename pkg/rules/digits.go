package rules

import "strings"

// Digit-run masking. Runs of consecutive digits are replaced with hash
// runs keyed by length: 5-or-more, exactly 4, exactly 3, exactly 2.
// Declaration order is longest-run-first so the cascading fallback in
// PatternRules masks each fragment exactly once (the four alternatives
// are mutually exclusive on any given fragment).

// NewDigitCollapser builds the digit-run rule set. With underscore
// set, each hash run is wrapped as " __<hashes>__ " so downstream
// tokenizers see a delimited mask token.
func NewDigitCollapser(underscore bool) (*PatternRules, error) {
	mask := func(n int) string {
		h := strings.Repeat("#", n)
		if underscore {
			return " __" + h + "__ "
		}
		return h
	}
	return NewPatternRules([]Rule{
		{Pattern: `[0-9]{5,}`, Replacement: mask(5)},
		{Pattern: `[0-9]{4}`, Replacement: mask(4)},
		{Pattern: `[0-9]{3}`, Replacement: mask(3)},
		{Pattern: `[0-9]{2}`, Replacement: mask(2)},
	})
}
