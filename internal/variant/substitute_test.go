// internal/variant/substitute_test.go
package variant

import (
	"strings"
	"testing"

	"crackx/internal/testutil"
)

func collect(t *testing.T, line string, subs Substitutions) []string {
	t.Helper()
	var out []string
	err := ForEachSubstitution(line, subs, func(word string) error {
		out = append(out, word)
		return nil
	})
	testutil.AssertNoError(t, err, "substitution should succeed")
	return out
}

func TestParseSubstitutions(t *testing.T) {
	t.Run("parses two-character tokens", func(t *testing.T) {
		subs, err := ParseSubstitutions([]string{"a4", "e3"})
		testutil.AssertNoError(t, err, "valid pairs")
		testutil.AssertEqual(t, subs['a'], byte('4'), "a mapping")
		testutil.AssertEqual(t, subs['e'], byte('3'), "e mapping")
	})

	t.Run("rejects malformed tokens", func(t *testing.T) {
		_, err := ParseSubstitutions([]string{"abc"})
		testutil.AssertError(t, err, "three-char token")
		testutil.AssertTrue(t, strings.Contains(err.Error(), "abc"), "error names the token")

		_, err = ParseSubstitutions([]string{"a"})
		testutil.AssertError(t, err, "one-char token")
	})
}

func TestForEachSubstitution(t *testing.T) {
	t.Run("emits 2^m - 1 variants", func(t *testing.T) {
		// balrog: positions of 'a' and 'l' -> m=2 -> 3 variants
		got := collect(t, "balrog", Substitutions{'a': '4', 'l': '1'})
		testutil.AssertEqual(t, len(got), 3, "variant count")
		for _, want := range []string{"b4lrog", "ba1rog", "b41rog"} {
			testutil.AssertContains(t, got, want, "variant "+want)
		}
	})

	t.Run("never emits the unmodified line", func(t *testing.T) {
		got := collect(t, "hello", Substitutions{'l': '7', 'o': '0'})
		testutil.AssertEqual(t, len(got), 7, "variant count for m=3")
		for _, w := range got {
			testutil.AssertTrue(t, w != "hello", "variant must differ from input")
		}
	})

	t.Run("positions outside the subset stay unchanged", func(t *testing.T) {
		got := collect(t, "aaa", Substitutions{'a': '@'})
		testutil.AssertEqual(t, len(got), 7, "variant count for m=3")
		for _, want := range []string{"@aa", "a@a", "aa@", "@@a", "@a@", "a@@", "@@@"} {
			testutil.AssertContains(t, got, want, "variant "+want)
		}
	})

	t.Run("variants are distinct", func(t *testing.T) {
		got := collect(t, "aaa", Substitutions{'a': '@'})
		seen := make(map[string]bool)
		for _, w := range got {
			testutil.AssertFalse(t, seen[w], "duplicate variant "+w)
			seen[w] = true
		}
	})

	t.Run("no substitutable positions emits nothing", func(t *testing.T) {
		got := collect(t, "xyz", Substitutions{'a': '4'})
		testutil.AssertEqual(t, len(got), 0, "variant count")
	})

	t.Run("empty line emits nothing", func(t *testing.T) {
		got := collect(t, "", Substitutions{'a': '4'})
		testutil.AssertEqual(t, len(got), 0, "variant count")
	})

	t.Run("rejects too many positions", func(t *testing.T) {
		line := strings.Repeat("a", MaxPositions+1)
		err := ForEachSubstitution(line, Substitutions{'a': '4'}, func(string) error { return nil })
		testutil.AssertError(t, err, "position bound")
		testutil.AssertTrue(t, strings.Contains(err.Error(), "too many"), "error describes the bound")
	})

	t.Run("stops on callback error", func(t *testing.T) {
		calls := 0
		err := ForEachSubstitution("aaa", Substitutions{'a': '@'}, func(string) error {
			calls++
			if calls == 2 {
				return testErr
			}
			return nil
		})
		testutil.AssertError(t, err, "callback error propagates")
		testutil.AssertEqual(t, calls, 2, "enumeration stops at the error")
	})

	t.Run("emission order ascends by subset mask", func(t *testing.T) {
		got := collect(t, "ab", Substitutions{'a': '1', 'b': '2'})
		testutil.AssertEqual(t, len(got), 3, "variant count")
		testutil.AssertEqual(t, got[0], "1b", "mask 01")
		testutil.AssertEqual(t, got[1], "a2", "mask 10")
		testutil.AssertEqual(t, got[2], "12", "mask 11")
	})
}

var testErr = errSentinel("stop here")

type errSentinel string

func (e errSentinel) Error() string { return string(e) }
