// internal/adapters/output/appender.go

// Package output holds the adapters that persist run results.
package output

import (
	"fmt"
	"os"
	"sync"
)

// Appender appends solved identifier:plaintext pairs to a file, creating
// it on first use. It implements ports.ResultSink. Appends are best-effort
// by contract: callers treat a failure as degradation, not as a reason to
// re-search the target.
type Appender struct {
	mu   sync.Mutex
	path string
	f    *os.File
}

// NewAppender creates an appender for path. The file is opened lazily on
// the first Append so a run with no matches never touches it.
func NewAppender(path string) *Appender {
	return &Appender{path: path}
}

// Append writes one "identifier : plaintext" line.
func (a *Appender) Append(identifier, plaintext string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.f == nil {
		f, err := os.OpenFile(a.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("opening output file %s: %w", a.path, err)
		}
		a.f = f
	}

	if _, err := fmt.Fprintf(a.f, "%s : %s\n", identifier, plaintext); err != nil {
		return fmt.Errorf("appending to output file %s: %w", a.path, err)
	}
	return nil
}

// Close closes the underlying file if it was ever opened.
func (a *Appender) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.f == nil {
		return nil
	}
	err := a.f.Close()
	a.f = nil
	return err
}
