// internal/variant/substitute.go
package variant

import (
	"errors"
	"fmt"
)

// Substitution errors.
var (
	ErrMalformedPair    = errors.New("malformed substitution pair")
	ErrTooManyPositions = errors.New("too many substitutable positions")
)

// MaxPositions bounds the number of substitutable positions in one line so
// the subset mask stays well inside the int range. 2^30 variants is already
// far past any practical use.
const MaxPositions = 30

// Substitutions maps a source character to its replacement.
type Substitutions map[byte]byte

// ParseSubstitutions builds a Substitutions map from exactly-two-character
// tokens: first byte source, second byte replacement.
func ParseSubstitutions(pairs []string) (Substitutions, error) {
	subs := make(Substitutions, len(pairs))
	for _, p := range pairs {
		if len(p) != 2 {
			return nil, fmt.Errorf("%w: %q", ErrMalformedPair, p)
		}
		subs[p[0]] = p[1]
	}
	return subs, nil
}

// ForEachSubstitution enumerates every non-empty subset of the positions in
// line whose character is a key of subs, and calls fn once per subset with
// the substitution applied at exactly those positions. Occurrences outside
// the subset are left unchanged. The unmodified line itself (the empty
// subset) is never emitted.
//
// Emission order is by ascending subset mask, which is deterministic but
// not part of the contract. Returns the first error fn returns.
func ForEachSubstitution(line string, subs Substitutions, fn func(string) error) error {
	var positions []int
	for i := 0; i < len(line); i++ {
		if _, ok := subs[line[i]]; ok {
			positions = append(positions, i)
		}
	}

	m := len(positions)
	if m == 0 {
		return nil
	}
	if m > MaxPositions {
		return fmt.Errorf("%w: %d in line %q", ErrTooManyPositions, m, line)
	}

	for mask := 1; mask < 1<<m; mask++ {
		word := []byte(line)
		for j := 0; j < m; j++ {
			if mask&(1<<j) != 0 {
				pos := positions[j]
				word[pos] = subs[word[pos]]
			}
		}
		if err := fn(string(word)); err != nil {
			return err
		}
	}
	return nil
}
