package pipeline

import (
	"strings"
	"testing"

	"github.com/hazyhaar/lexnorm/pkg/translit"
)

func TestDefaultChainStageOrder(t *testing.T) {
	pipe, err := Default(Options{Engine: translit.Default()})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"lowercase", "contractions", "transliterate", "punctuation", "digits", "filter"}
	got := pipe.Stages()
	if len(got) != len(want) {
		t.Fatalf("Stages() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("stage %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestDefaultChainEndToEnd(t *testing.T) {
	pipe, err := Default(Options{Engine: translit.Default()})
	if err != nil {
		t.Fatal(err)
	}

	// Contractions expand, punctuation is spaced, the year collapses
	// to a hash run. The exact spacing follows the configured rule
	// tables: each "!" pads to " ! ".
	input := "I can't believe it's 2023!!"
	want := "i cannot believe it is #### !  ! "
	if got := pipe.Normalize(input); got != want {
		t.Errorf("Normalize(%q) = %q, want %q", input, got, want)
	}
}

func TestDefaultChainTransliterates(t *testing.T) {
	pipe, err := Default(Options{Engine: translit.Default()})
	if err != nil {
		t.Fatal(err)
	}
	// é maps through the Latin-1 table before punctuation spacing.
	if got := pipe.Normalize("Élodie"); got != "elodie" {
		t.Errorf("Normalize(%q) = %q, want %q", "Élodie", got, "elodie")
	}
}

func TestDefaultChainFoldAccentsFallback(t *testing.T) {
	pipe, err := Default(Options{Engine: nil})
	if err != nil {
		t.Fatal(err)
	}
	if got := pipe.Stages()[2]; got != "fold_accents" {
		t.Fatalf("stage 2 = %q, want fold_accents", got)
	}
	if got := pipe.Normalize("café"); got != "cafe" {
		t.Errorf("Normalize(%q) = %q, want %q", "café", got, "cafe")
	}
}

func TestNormalizeEmptyPipeline(t *testing.T) {
	pipe := New()
	if got := pipe.Normalize("unchanged"); got != "unchanged" {
		t.Errorf("Normalize = %q, want unchanged", got)
	}
}

func TestParseCustomSpec(t *testing.T) {
	spec := []byte(`
stages:
  - kind: lowercase
  - kind: literal
    rules:
      - pattern: colour
        replacement: color
      - pattern: "&"
        replacement: and
  - kind: digits
    underscore: true
`)
	pipe, err := Parse(spec, nil)
	if err != nil {
		t.Fatal(err)
	}
	got := pipe.Normalize("Colour & 42")
	want := "color and  __##__ "
	if got != want {
		t.Errorf("Normalize = %q, want %q", got, want)
	}
}

func TestParseSpecErrors(t *testing.T) {
	tests := []struct {
		name string
		spec string
	}{
		{"empty", "stages: []"},
		{"unknown kind", "stages:\n  - kind: stem"},
		{"bad mode", "stages:\n  - kind: punctuation\n    mode: sideways"},
		{"bad regex", "stages:\n  - kind: pattern\n    rules:\n      - pattern: '('\n        replacement: x"},
		{"translit without engine", "stages:\n  - kind: transliterate"},
		{"not yaml", ": ["},
	}
	for _, tt := range tests {
		if _, err := Parse([]byte(tt.spec), nil); err == nil {
			t.Errorf("%s: expected error, got nil", tt.name)
		}
	}
}

func TestParseSpecPunctuationModes(t *testing.T) {
	edge, err := Parse([]byte("stages:\n  - kind: punctuation\n    mode: edges"), nil)
	if err != nil {
		t.Fatal(err)
	}
	if got := edge.Normalize("don't"); got != "don't" {
		t.Errorf("edge mode changed %q to %q", "don't", got)
	}

	full, err := Parse([]byte("stages:\n  - kind: punctuation\n    mode: all"), nil)
	if err != nil {
		t.Fatal(err)
	}
	if got := full.Normalize("don't"); !strings.Contains(got, " ' ") {
		t.Errorf("full mode output %q does not pad the apostrophe", got)
	}
}
