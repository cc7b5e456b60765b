// Package rules decodes YAML extraction pipelines and compiles them
// into parsers over runes.
package rules

import (
	"fmt"
	"io"

	yaml "github.com/goccy/go-yaml"
)

// ErrRules is the sentinel error for all rules-related failures.
// It allows error wrapping and consistent error checks using errors.Is().
var ErrRules = fmt.Errorf("rules error")

// Document is the root of a rules file.
type Document struct {
	Pipelines []Pipeline `yaml:"pipelines"`
}

// Pipeline is a named sequence of extraction steps applied in order.
type Pipeline struct {
	Name  string `yaml:"name"`
	Steps []Step `yaml:"steps"`
}

// Step holds exactly one step kind. Which field is set selects the
// operation the step compiles to.
type Step struct {
	N             *int         `yaml:"n,omitempty"`
	While         *WhileStep   `yaml:"while,omitempty"`
	Until         *UntilStep   `yaml:"until,omitempty"`
	Include       *IncludeStep `yaml:"include,omitempty"`
	Between       *BetweenStep `yaml:"between,omitempty"`
	Around        *AroundStep  `yaml:"around,omitempty"`
	OneOf         []Step       `yaml:"one_of,omitempty"`
	AllOf         []Step       `yaml:"all_of,omitempty"`
	PermutationOf []Step       `yaml:"permutation_of,omitempty"`
}

// WhileStep consumes input while the condition keeps holding.
type WhileStep struct {
	Condition string `yaml:"condition"`
}

// UntilStep consumes input up to the condition. With OrEnd set the step
// consumes the whole input when the condition never holds instead of
// failing.
type UntilStep struct {
	Condition string `yaml:"condition"`
	OrEnd     bool   `yaml:"or_end,omitempty"`
}

// IncludeStep consumes input through the end of the condition window.
type IncludeStep struct {
	Condition string `yaml:"condition"`
}

// BetweenStep extracts the region between two delimiters. With KeepEnd
// set the end delimiter stays in the remaining input.
type BetweenStep struct {
	Start   string `yaml:"start"`
	End     string `yaml:"end"`
	KeepEnd bool   `yaml:"keep_end,omitempty"`
}

// AroundStep extracts the region spanning both delimiters inclusive.
type AroundStep struct {
	Start string `yaml:"start"`
	End   string `yaml:"end"`
}

// Parse decodes a YAML rules document with strict field checking and
// validates it.
func Parse(r io.Reader) (*Document, error) {
	decoder := yaml.NewDecoder(r, yaml.Strict())

	var doc Document
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: failed to decode YAML: %v", ErrRules, err)
	}

	if err := doc.validate(); err != nil {
		return nil, err
	}

	return &doc, nil
}

func (d *Document) validate() error {
	if len(d.Pipelines) == 0 {
		return fmt.Errorf("%w: document defines no pipelines", ErrRules)
	}

	seen := make(map[string]struct{}, len(d.Pipelines))
	for i, pipeline := range d.Pipelines {
		if pipeline.Name == "" {
			return fmt.Errorf("%w: pipeline %d has no name", ErrRules, i)
		}
		if _, ok := seen[pipeline.Name]; ok {
			return fmt.Errorf("%w: duplicate pipeline name %q", ErrRules, pipeline.Name)
		}
		seen[pipeline.Name] = struct{}{}

		if len(pipeline.Steps) == 0 {
			return fmt.Errorf("%w: pipeline %q has no steps", ErrRules, pipeline.Name)
		}
		for j, step := range pipeline.Steps {
			if err := step.validate(); err != nil {
				return fmt.Errorf("%w: pipeline %q step %d: %v", ErrRules, pipeline.Name, j, err)
			}
		}
	}

	return nil
}

func (s *Step) validate() error {
	kinds := 0
	if s.N != nil {
		kinds++
	}
	if s.While != nil {
		kinds++
		if s.While.Condition == "" {
			return fmt.Errorf("while step requires a condition")
		}
	}
	if s.Until != nil {
		kinds++
		if s.Until.Condition == "" {
			return fmt.Errorf("until step requires a condition")
		}
	}
	if s.Include != nil {
		kinds++
		if s.Include.Condition == "" {
			return fmt.Errorf("include step requires a condition")
		}
	}
	if s.Between != nil {
		kinds++
		if s.Between.Start == "" || s.Between.End == "" {
			return fmt.Errorf("between step requires start and end delimiters")
		}
	}
	if s.Around != nil {
		kinds++
		if s.Around.Start == "" || s.Around.End == "" {
			return fmt.Errorf("around step requires start and end delimiters")
		}
	}
	for _, nested := range [][]Step{s.OneOf, s.AllOf, s.PermutationOf} {
		if nested == nil {
			continue
		}
		kinds++
		if len(nested) == 0 {
			return fmt.Errorf("combinator step requires at least one nested step")
		}
		for i := range nested {
			if err := nested[i].validate(); err != nil {
				return fmt.Errorf("nested step %d: %v", i, err)
			}
		}
	}

	if kinds != 1 {
		return fmt.Errorf("step must set exactly one kind, got %d", kinds)
	}

	return nil
}
