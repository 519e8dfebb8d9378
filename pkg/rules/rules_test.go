package rules

import (
	"strings"
	"testing"
)

func TestLiteralRulesNoMatchReturnsInput(t *testing.T) {
	l := NewLiteralRules([]Rule{{"foo", "bar"}, {"baz", "qux"}})
	for _, input := range []string{"hello world", "", "fo o ba z"} {
		if got := l.Apply(input); got != input {
			t.Errorf("Apply(%q) = %q, want unchanged", input, got)
		}
	}
}

func TestLiteralRulesReplacesAllOccurrences(t *testing.T) {
	l := NewLiteralRules([]Rule{{"a", "b"}})
	if got := l.Apply("aaa"); got != "bbb" {
		t.Errorf("Apply(%q) = %q, want %q", "aaa", got, "bbb")
	}
}

func TestLiteralRulesChainInDeclarationOrder(t *testing.T) {
	// Rule two must see rule one's rewrite.
	l := NewLiteralRules([]Rule{{"a", "b"}, {"b", "c"}})
	if got := l.Apply("a"); got != "c" {
		t.Errorf("Apply(%q) = %q, want %q (rules must chain)", "a", got, "c")
	}

	// Reversed declaration order stops after the first rewrite.
	l = NewLiteralRules([]Rule{{"b", "c"}, {"a", "b"}})
	if got := l.Apply("a"); got != "b" {
		t.Errorf("Apply(%q) = %q, want %q", "a", got, "b")
	}
}

func TestLiteralRulesDuplicateKeysCollapseToLast(t *testing.T) {
	l := NewLiteralRules([]Rule{{"x", "1"}, {"y", "2"}, {"x", "3"}})
	if l.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", l.Len())
	}
	if got := l.Apply("xy"); got != "32" {
		t.Errorf("Apply(%q) = %q, want %q", "xy", got, "32")
	}
}

func TestNewPatternRulesRejectsInvalidRegex(t *testing.T) {
	_, err := NewPatternRules([]Rule{{`[0-9]+`, "#"}, {`(`, "x"}})
	if err == nil {
		t.Fatal("expected error for invalid regex, got nil")
	}
	if !strings.Contains(err.Error(), "(") {
		t.Errorf("error %q does not name the offending pattern", err)
	}
}

func TestNewPatternRulesRejectsEmptySet(t *testing.T) {
	if _, err := NewPatternRules(nil); err == nil {
		t.Fatal("expected error for empty rule set, got nil")
	}
}

func TestPatternRulesExactKeyTakesConfiguredReplacement(t *testing.T) {
	p, err := NewPatternRules([]Rule{{"cat", "dog"}})
	if err != nil {
		t.Fatal(err)
	}
	if got := p.Apply("a cat sat"); got != "a dog sat" {
		t.Errorf("Apply = %q, want %q", got, "a dog sat")
	}
}

func TestPatternRulesCascadingFallback(t *testing.T) {
	// The fragment "aaa" matches the first alternative but is not a
	// literal key, so every rule's substitution runs over it in order:
	// a+ -> "b", then b -> "z".
	p, err := NewPatternRules([]Rule{{`a+`, "b"}, {`b`, "z"}})
	if err != nil {
		t.Fatal(err)
	}
	if got := p.Apply("aaa"); got != "z" {
		t.Errorf("Apply(%q) = %q, want %q (fallback must cascade)", "aaa", got, "z")
	}
}

func TestPatternRulesReplacementsNotRescanned(t *testing.T) {
	p, err := NewPatternRules([]Rule{{"x", "xy"}})
	if err != nil {
		t.Fatal(err)
	}
	if got := p.Apply("xx"); got != "xyxy" {
		t.Errorf("Apply(%q) = %q, want %q", "xx", got, "xyxy")
	}
}

func TestPatternRulesNoMatchReturnsInput(t *testing.T) {
	p, err := NewPatternRules([]Rule{{`[0-9]{2}`, "##"}})
	if err != nil {
		t.Fatal(err)
	}
	if got := p.Apply("no digits here"); got != "no digits here" {
		t.Errorf("Apply = %q, want unchanged", got)
	}
}
