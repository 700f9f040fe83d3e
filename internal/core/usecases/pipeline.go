// internal/core/usecases/pipeline.go

// Package usecases implements the rule-driven candidate pipeline: rule
// compilation into a generator plus a chain of transform stages, and its
// depth-first execution against the match stage.
package usecases

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"crackx/internal/core/domain"
)

// Stage processes one candidate at its position in the chain and reports
// whether the whole run should stop. Transform stages forward derived
// candidates to position index+1 before returning; the terminal match
// stage never forwards.
type Stage func(word string, index int) (stop bool, err error)

// Pipeline is the fixed stage chain for one rule: the parsed transform
// stages in order, terminated by the implicit match stage. The chain is
// built before execution and never mutated while running.
type Pipeline struct {
	stages []Stage
}

// maxDigitWidth keeps 10^n inside int64.
const maxDigitWidth = 18

var addDigitsRe = regexp.MustCompile(`^add (\d+) digits?$`)

// NewPipeline compiles the transform specifications of one rule and
// appends the terminal match stage. An unknown specification is a fatal
// parse error carrying the offending text.
func NewPipeline(specs []string, match Stage) (*Pipeline, error) {
	p := &Pipeline{}
	for _, spec := range specs {
		stage, err := p.compileTransform(strings.TrimSpace(spec))
		if err != nil {
			return nil, err
		}
		p.stages = append(p.stages, stage)
	}
	p.stages = append(p.stages, match)
	return p, nil
}

// Feed pushes one seed candidate into stage 0 and drains it through the
// whole chain before returning.
func (p *Pipeline) Feed(word string) (bool, error) {
	return p.stages[0](word, 0)
}

// forward hands a candidate to the stage at the given position.
func (p *Pipeline) forward(word string, index int) (bool, error) {
	return p.stages[index](word, index)
}

// Len returns the chain length including the terminal match stage.
func (p *Pipeline) Len() int {
	return len(p.stages)
}

// compileTransform parses one transform segment into a stage bound to
// this pipeline.
func (p *Pipeline) compileTransform(spec string) (Stage, error) {
	if spec == "add capitalized" {
		return func(word string, index int) (bool, error) {
			if stop, err := p.forward(word, index+1); stop || err != nil {
				return stop, err
			}
			return p.forward(capitalize(word), index+1)
		}, nil
	}

	if m := addDigitsRe.FindStringSubmatch(spec); m != nil {
		width, err := parseWidth(m[1])
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", domain.ErrUnknownRule, spec, err)
		}
		limit := pow10(width)
		return func(word string, index int) (bool, error) {
			for n := int64(0); n < limit; n++ {
				if stop, err := p.forward(word+zeroPadded(n, width), index+1); stop || err != nil {
					return stop, err
				}
			}
			return false, nil
		}, nil
	}

	return nil, fmt.Errorf("%w: %q", domain.ErrUnknownRule, spec)
}

// capitalize upper-cases the first character if it is an ASCII letter.
func capitalize(word string) string {
	if word == "" {
		return word
	}
	c := word[0]
	if c < 'a' || c > 'z' {
		return word
	}
	return string(c-'a'+'A') + word[1:]
}

// zeroPadded renders n as a decimal string of exactly width characters.
func zeroPadded(n int64, width int) string {
	return fmt.Sprintf("%0*d", width, n)
}

// pow10 returns 10^n for n in 0..maxDigitWidth.
func pow10(n int) int64 {
	out := int64(1)
	for i := 0; i < n; i++ {
		out *= 10
	}
	return out
}

// parseWidth validates a digit-width token against the int64 bound.
func parseWidth(token string) (int, error) {
	width, err := strconv.Atoi(token)
	if err != nil {
		return 0, err
	}
	if width < 1 || width > maxDigitWidth {
		return 0, fmt.Errorf("%w: %d (want 1..%d)", domain.ErrDigitWidth, width, maxDigitWidth)
	}
	return width, nil
}
