// internal/filter/filter.go

// Package filter implements the standalone line-filtering mode: a predicate
// over line length and character membership, applied to a word list.
package filter

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Predicate decides whether a line passes the filter.
type Predicate func(line string) bool

// Build composes a predicate from the two supported criteria. A length of
// -1 disables the length check; an empty contains string disables the
// membership check. With both disabled every line passes.
func Build(length int, contains string) Predicate {
	switch {
	case length == -1 && contains == "":
		return func(string) bool { return true }
	case length == -1:
		return func(line string) bool { return strings.ContainsAny(line, contains) }
	case contains == "":
		return func(line string) bool { return len(line) == length }
	default:
		return func(line string) bool {
			return len(line) == length && strings.ContainsAny(line, contains)
		}
	}
}

// Apply streams lines from r and writes the ones matching p to w, one per
// line, in input order.
func Apply(r io.Reader, w io.Writer, p Predicate) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if !p(line) {
			continue
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("writing filtered line: %w", err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading word list: %w", err)
	}
	return nil
}
