// internal/platform/digest/digest.go

// Package digest manages the registry of named hash algorithms the match
// stage can hash candidates with. Algorithms self-register from init(),
// decoupling algorithm wiring from application code.
package digest

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"crackx/internal/platform/errors"
)

// Func hashes a message and returns its digest as lowercase hexadecimal.
type Func func(message []byte) string

type registry struct {
	mu    sync.RWMutex
	algos map[string]Func
}

var global = &registry{algos: make(map[string]Func)}

// Register adds a named algorithm to the registry. Names are stored in
// canonical form (see canonical). Registering a duplicate is an error.
func Register(name string, fn Func) error {
	key := canonical(name)
	if key == "" {
		return fmt.Errorf("algorithm name cannot be empty")
	}
	if fn == nil {
		return fmt.Errorf("algorithm %s has a nil func", name)
	}

	global.mu.Lock()
	defer global.mu.Unlock()

	if _, exists := global.algos[key]; exists {
		return fmt.Errorf("algorithm %s is already registered", key)
	}
	global.algos[key] = fn
	return nil
}

// MustRegister is Register for init() use; it panics on error.
func MustRegister(name string, fn Func) {
	if err := Register(name, fn); err != nil {
		panic(err)
	}
}

// New resolves an algorithm by name. Names are matched case-insensitively
// with separators stripped, so "SHA-256", "sha_256" and "sha256" all
// resolve to the same algorithm.
func New(name string) (Func, error) {
	global.mu.RLock()
	defer global.mu.RUnlock()

	fn, ok := global.algos[canonical(name)]
	if !ok {
		return nil, errors.Wrapf(errors.ErrInvalidInput, "unknown algorithm %q (have: %s)", name, strings.Join(names(), ", "))
	}
	return fn, nil
}

// Names returns the registered algorithm names, sorted.
func Names() []string {
	global.mu.RLock()
	defer global.mu.RUnlock()
	return names()
}

// names assumes the caller holds the lock.
func names() []string {
	out := make([]string, 0, len(global.algos))
	for name := range global.algos {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// canonical lowercases a name and strips '-' and '_'.
func canonical(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.ReplaceAll(name, "-", "")
	return strings.ReplaceAll(name, "_", "")
}
