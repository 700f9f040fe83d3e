// internal/core/domain/target.go
package domain

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"
)

// Target is one still-unsolved entry of the registry.
type Target struct {
	// Identifier is the owner of the digest (e.g. a username).
	Identifier string

	// Digest is the lowercase hex digest of the unknown plaintext.
	Digest string
}

// TargetSet is the registry of still-unsolved targets, keyed by digest.
// It only ever shrinks: an entry is removed exactly once, the instant its
// digest is matched. Mutation is single-threaded (see the match stage).
type TargetSet struct {
	byDigest map[string]string
	initial  int
}

// ParseTargets builds a TargetSet from lines of "identifier:digest".
// A line with fewer than two colon-separated fields is a fatal error.
func ParseTargets(r io.Reader) (*TargetSet, error) {
	ts := &TargetSet{byDigest: make(map[string]string)}

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		parts := strings.Split(line, ":")
		if len(parts) < 2 {
			return nil, fmt.Errorf("%w: line %d: %q", ErrMalformedTarget, lineNo, line)
		}
		ts.byDigest[strings.ToLower(parts[1])] = parts[0]
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading target list: %w", err)
	}
	if len(ts.byDigest) == 0 {
		return nil, ErrNoTargets
	}

	ts.initial = len(ts.byDigest)
	return ts, nil
}

// Lookup returns the identifier that owns the given digest, if any.
func (ts *TargetSet) Lookup(digest string) (string, bool) {
	id, ok := ts.byDigest[digest]
	return id, ok
}

// Remove deletes the entry for the given digest. Removing an absent
// digest is a no-op.
func (ts *TargetSet) Remove(digest string) {
	delete(ts.byDigest, digest)
}

// Empty reports whether every target has been solved.
func (ts *TargetSet) Empty() bool {
	return len(ts.byDigest) == 0
}

// Size returns the number of still-unsolved targets.
func (ts *TargetSet) Size() int {
	return len(ts.byDigest)
}

// Initial returns the number of targets loaded at startup.
func (ts *TargetSet) Initial() int {
	return ts.initial
}

// Solved returns the number of targets solved so far.
func (ts *TargetSet) Solved() int {
	return ts.initial - len(ts.byDigest)
}

// Remaining returns a snapshot of the unsolved targets, ordered by
// identifier so summaries are stable across runs.
func (ts *TargetSet) Remaining() []Target {
	out := make([]Target, 0, len(ts.byDigest))
	for digest, id := range ts.byDigest {
		out = append(out, Target{Identifier: id, Digest: digest})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Identifier != out[j].Identifier {
			return out[i].Identifier < out[j].Identifier
		}
		return out[i].Digest < out[j].Digest
	})
	return out
}
