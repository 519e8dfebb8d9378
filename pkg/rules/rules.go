// Package rules implements the ordered rule-replacement engines behind
// the lexnorm canonicalization steps: literal substring rewriting and
// alternation-driven regex rewriting. Rule order is load-bearing; both
// engines apply rules strictly in declaration order and each rule sees
// the rewrites of the rules before it.
package rules

import (
	"fmt"
	"regexp"
	"strings"
)

// Rule is one pattern/replacement pair. Pattern is a literal substring
// for LiteralRules and a regular-expression source for PatternRules.
type Rule struct {
	Pattern     string
	Replacement string
}

// dedupe collapses duplicate pattern keys to the last definition while
// keeping the position of the first, matching ordered-map semantics.
func dedupe(in []Rule) []Rule {
	seen := make(map[string]int, len(in))
	out := make([]Rule, 0, len(in))
	for _, r := range in {
		if i, ok := seen[r.Pattern]; ok {
			out[i] = r
			continue
		}
		seen[r.Pattern] = len(out)
		out = append(out, r)
	}
	return out
}

// LiteralRules is an immutable ordered set of literal substring rules.
type LiteralRules struct {
	rules []Rule
}

// NewLiteralRules builds a literal rule set from rules in declaration
// order. Duplicate patterns collapse to the last-defined replacement.
func NewLiteralRules(in []Rule) *LiteralRules {
	return &LiteralRules{rules: dedupe(in)}
}

// Apply rewrites s by replacing, for each rule in order, every
// occurrence of the rule's pattern. Rules chain: a replacement is
// visible to the pattern matching of every subsequent rule. Absent
// patterns are a no-op skip.
func (l *LiteralRules) Apply(s string) string {
	for _, r := range l.rules {
		// Containment check first; most rules never match a given input.
		if !strings.Contains(s, r.Pattern) {
			continue
		}
		s = strings.ReplaceAll(s, r.Pattern, r.Replacement)
	}
	return s
}

// Len returns the number of rules after duplicate collapsing.
func (l *LiteralRules) Len() int { return len(l.rules) }

// PatternRules is an immutable ordered set of regex rules driven by a
// single alternation compiled from every pattern key.
type PatternRules struct {
	rules    []compiledRule
	exact    map[string]string
	combined *regexp.Regexp
}

type compiledRule struct {
	re          *regexp.Regexp
	replacement string
}

// NewPatternRules compiles each pattern individually and the combined
// alternation, wrapping each key as a capturing alternative. Any
// invalid pattern fails construction; a failed set is not usable.
func NewPatternRules(in []Rule) (*PatternRules, error) {
	in = dedupe(in)
	if len(in) == 0 {
		return nil, fmt.Errorf("no rules defined")
	}

	p := &PatternRules{
		rules: make([]compiledRule, 0, len(in)),
		exact: make(map[string]string, len(in)),
	}
	alts := make([]string, 0, len(in))
	for _, r := range in {
		re, err := regexp.Compile(r.Pattern)
		if err != nil {
			return nil, fmt.Errorf("pattern %q: %w", r.Pattern, err)
		}
		p.rules = append(p.rules, compiledRule{re: re, replacement: r.Replacement})
		p.exact[r.Pattern] = r.Replacement
		alts = append(alts, "("+r.Pattern+")")
	}

	combined, err := regexp.Compile(strings.Join(alts, "|"))
	if err != nil {
		return nil, fmt.Errorf("combined alternation: %w", err)
	}
	p.combined = combined
	return p, nil
}

// Apply scans s once with the combined alternation and resolves each
// matched fragment. Replacements are never re-scanned, so no rule can
// reintroduce a match within the same invocation.
func (p *PatternRules) Apply(s string) string {
	return p.combined.ReplaceAllStringFunc(s, p.resolve)
}

// resolve substitutes one matched fragment. A fragment whose text is
// itself a pattern key takes that rule's replacement directly.
// Otherwise every rule's substitution runs over the fragment in
// declaration order, regardless of which alternative matched; later
// rules only act on residual text the earlier ones left behind.
// Rule families with genuinely overlapping patterns can compound here,
// so declaration order must put the most specific rule first.
func (p *PatternRules) resolve(fragment string) string {
	if rep, ok := p.exact[fragment]; ok {
		return rep
	}
	for _, r := range p.rules {
		fragment = r.re.ReplaceAllString(fragment, r.replacement)
	}
	return fragment
}

// Len returns the number of rules after duplicate collapsing.
func (p *PatternRules) Len() int { return len(p.rules) }
