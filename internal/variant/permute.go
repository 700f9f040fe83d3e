// internal/variant/permute.go

// Package variant implements the two combinatorial expansions the candidate
// pipeline delegates to: subset-permutation expansion over a character pool,
// and index-power-set substitution over a line and a replacement alphabet.
package variant

// Expand returns the set of all strings obtainable by choosing any subset
// of pool's positions (including the empty subset) and arranging the chosen
// characters in any order. Duplicate strings from repeated pool characters
// are merged.
//
// The construction is the iterative form of the recursive definition: start
// from the singleton {""} and fold in one pool character at a time, inserting
// it at every position of every string accumulated so far. The union keeps
// every shorter arrangement alongside every extended one.
//
// The returned slice is insertion-ordered and therefore stable across runs,
// but callers must rely only on the set contract, not on the order. Result
// size is sum_{k=0..n} n!/(n-k)! before deduplication, so pools beyond 8-10
// characters are impractical.
func Expand(pool string) []string {
	results := []string{""}
	seen := map[string]struct{}{"": {}}

	for i := len(pool) - 1; i >= 0; i-- {
		ch := pool[i]

		// Snapshot: freshly inserted strings are not re-extended with the
		// same character at this level.
		snapshot := results
		for _, partial := range snapshot {
			for pos := 0; pos <= len(partial); pos++ {
				word := partial[:pos] + string(ch) + partial[pos:]
				if _, dup := seen[word]; dup {
					continue
				}
				seen[word] = struct{}{}
				results = append(results, word)
			}
		}
	}
	return results
}
