package pipeline

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hazyhaar/lexnorm/pkg/rules"
	"github.com/hazyhaar/lexnorm/pkg/translit"
)

// Spec is the YAML description of a custom pipeline. Stage order in
// the file is execution order; rule order within a stage is
// declaration order (a sequence of pairs, never a YAML map).
type Spec struct {
	Stages []StageSpec `yaml:"stages"`
}

// StageSpec describes one stage. Kind selects a built-in stage or one
// of the generic rule engines ("literal", "pattern").
type StageSpec struct {
	Kind       string     `yaml:"kind"`
	Mode       string     `yaml:"mode,omitempty"`       // punctuation: "all" | "edges"
	Underscore bool       `yaml:"underscore,omitempty"` // digits
	Rules      []RuleSpec `yaml:"rules,omitempty"`      // literal, pattern
}

// RuleSpec is one ordered pattern/replacement pair.
type RuleSpec struct {
	Pattern     string `yaml:"pattern"`
	Replacement string `yaml:"replacement"`
}

// Load reads a pipeline spec file and builds the pipeline. eng backs
// any "transliterate" stage and may be nil when the spec has none.
func Load(path string, eng *translit.Engine) (*Pipeline, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read pipeline spec %s: %w", path, err)
	}
	p, err := Parse(data, eng)
	if err != nil {
		return nil, fmt.Errorf("pipeline spec %s: %w", path, err)
	}
	return p, nil
}

// Parse builds a pipeline from YAML spec data. Any unknown stage
// kind, missing engine, or invalid rule pattern fails construction;
// a half-built pipeline is never returned.
func Parse(data []byte, eng *translit.Engine) (*Pipeline, error) {
	var spec Spec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	if len(spec.Stages) == 0 {
		return nil, fmt.Errorf("no stages defined")
	}

	stages := make([]Stage, 0, len(spec.Stages))
	for i, ss := range spec.Stages {
		st, err := buildStage(ss, eng)
		if err != nil {
			return nil, fmt.Errorf("stage %d (%s): %w", i, ss.Kind, err)
		}
		stages = append(stages, st)
	}
	return New(stages...), nil
}

func buildStage(ss StageSpec, eng *translit.Engine) (Stage, error) {
	switch ss.Kind {
	case "lowercase":
		return NewStage("lowercase", strings.ToLower), nil
	case "contractions":
		return NewStage("contractions", rules.NewContractionExpander().Apply), nil
	case "transliterate":
		if eng == nil {
			return nil, fmt.Errorf("no transliteration engine configured")
		}
		return NewStage("transliterate", eng.Transliterate), nil
	case "punctuation":
		mode := rules.SpaceAll
		switch ss.Mode {
		case "", "all":
		case "edges":
			mode = rules.SpaceEdges
		default:
			return nil, fmt.Errorf("unknown mode %q", ss.Mode)
		}
		return NewStage("punctuation", rules.NewPunctuationSpacer(mode).Apply), nil
	case "digits":
		digits, err := rules.NewDigitCollapser(ss.Underscore)
		if err != nil {
			return nil, err
		}
		return NewStage("digits", digits.Apply), nil
	case "filter":
		return NewStage("filter", rules.NewCharacterFilter().Apply), nil
	case "literal":
		return NewStage("literal", rules.NewLiteralRules(toRules(ss.Rules)).Apply), nil
	case "pattern":
		pr, err := rules.NewPatternRules(toRules(ss.Rules))
		if err != nil {
			return nil, err
		}
		return NewStage("pattern", pr.Apply), nil
	default:
		return nil, fmt.Errorf("unknown stage kind %q", ss.Kind)
	}
}

func toRules(in []RuleSpec) []rules.Rule {
	out := make([]rules.Rule, len(in))
	for i, r := range in {
		out[i] = rules.Rule{Pattern: r.Pattern, Replacement: r.Replacement}
	}
	return out
}
