// internal/core/domain/rule.go
package domain

import "strings"

// Rule is one parsed line of the rules source: a generator specification
// followed by zero or more transform specifications, pipe-delimited.
type Rule struct {
	// Generator is the first segment of the rule, e.g. `read "words.txt"`.
	Generator string

	// Transforms are the remaining segments, in chain order.
	Transforms []string

	// Raw is the original line, kept for error reporting.
	Raw string
}

// ParseRule splits a rule line into its generator and transform segments.
// Segment grammar validation happens later, at compile time; here only the
// pipe structure is handled.
func ParseRule(line string) (Rule, error) {
	segments := strings.Split(line, "|")

	rule := Rule{
		Generator: strings.TrimSpace(segments[0]),
		Raw:       line,
	}
	if rule.Generator == "" {
		return Rule{}, ErrEmptyRule
	}

	for _, seg := range segments[1:] {
		rule.Transforms = append(rule.Transforms, strings.TrimSpace(seg))
	}
	return rule, nil
}

// Skippable reports whether a rules-source line carries no rule at all:
// blank lines and '#' comments.
func Skippable(line string) bool {
	trimmed := strings.TrimSpace(line)
	return trimmed == "" || strings.HasPrefix(trimmed, "#")
}
