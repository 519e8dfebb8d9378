// Package pipeline composes rule sets and the transliteration engine
// into a fixed-order normalization chain.
package pipeline

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/hazyhaar/lexnorm/pkg/rules"
	"github.com/hazyhaar/lexnorm/pkg/translit"
)

// Stage is one normalization step. Apply must be a pure function of
// its input (cache population aside) and safe for concurrent use.
type Stage interface {
	Name() string
	Apply(string) string
}

type stage struct {
	name string
	fn   func(string) string
}

func (s stage) Name() string          { return s.name }
func (s stage) Apply(in string) string { return s.fn(in) }

// NewStage wraps a function as a named stage.
func NewStage(name string, fn func(string) string) Stage {
	return stage{name: name, fn: fn}
}

// Pipeline runs its stages in order over one input string.
type Pipeline struct {
	stages []Stage
}

// New builds a pipeline from stages in order.
func New(stages ...Stage) *Pipeline {
	return &Pipeline{stages: stages}
}

// Normalize runs s through every stage in order and returns the final
// string. Either the whole chain runs or construction already failed;
// there is no partial output.
func (p *Pipeline) Normalize(s string) string {
	for _, st := range p.stages {
		s = st.Apply(s)
	}
	return s
}

// Stages returns the stage names in execution order.
func (p *Pipeline) Stages() []string {
	out := make([]string, len(p.stages))
	for i, st := range p.stages {
		out[i] = st.Name()
	}
	return out
}

// Options configure the default chain.
type Options struct {
	// SpacerMode selects full or edge-only punctuation padding.
	SpacerMode rules.SpacerMode
	// UnderscoreDigits wraps digit masks in delimiter tokens.
	UnderscoreDigits bool
	// Engine supplies transliteration. Nil falls back to an accent
	// folding stage on x/text for deployments that skip table lookup.
	Engine *translit.Engine
}

var foldAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Default builds the canonical chain: lowercase, contraction
// expansion, transliteration (or accent folding), punctuation
// spacing, digit collapsing, character filtering.
func Default(opts Options) (*Pipeline, error) {
	digits, err := rules.NewDigitCollapser(opts.UnderscoreDigits)
	if err != nil {
		return nil, fmt.Errorf("digit collapser: %w", err)
	}

	stages := []Stage{
		NewStage("lowercase", strings.ToLower),
		NewStage("contractions", rules.NewContractionExpander().Apply),
	}
	if opts.Engine != nil {
		stages = append(stages, NewStage("transliterate", opts.Engine.Transliterate))
	} else {
		stages = append(stages, NewStage("fold_accents", func(s string) string {
			out, _, _ := transform.String(foldAccents, s)
			return out
		}))
	}
	stages = append(stages,
		NewStage("punctuation", rules.NewPunctuationSpacer(opts.SpacerMode).Apply),
		NewStage("digits", digits.Apply),
		NewStage("filter", rules.NewCharacterFilter().Apply),
	)
	return New(stages...), nil
}
