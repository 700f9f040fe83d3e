// internal/core/ports/sink.go
package ports

// ResultSink persists solved identifier/plaintext pairs. Implementations
// are best-effort: an append failure must not invalidate the match that
// produced it.
type ResultSink interface {
	// Append records one solved pair.
	Append(identifier, plaintext string) error

	// Close releases any resources held by the sink.
	Close() error
}

// DiscardSink is a ResultSink that drops everything. Useful in tests and
// as a safe default.
type DiscardSink struct{}

func (DiscardSink) Append(identifier, plaintext string) error { return nil }
func (DiscardSink) Close() error                              { return nil }
