// internal/platform/ui/presenter.go
package ui

import "time"

// RunInfo describes the run being started.
type RunInfo struct {
	Targets   int
	Input     string
	Rules     string
	Output    string
	Algorithm string
}

// Unsolved is one still-unsolved entry shown in the final summary.
type Unsolved struct {
	Identifier string
	Digest     string
}

// RunStats holds the final numbers for the summary.
type RunStats struct {
	Solved   int
	Total    int
	Elapsed  time.Duration
	Unsolved []Unsolved
}

// Presenter renders the progress of a cracking run for a human. The
// match stage reports through it; everything else is run lifecycle.
type Presenter interface {
	// Start renders the run header.
	Start(info RunInfo)

	// Cracked reports one solved identifier:plaintext pair.
	Cracked(identifier, plaintext string)

	// Warning shows a non-fatal problem.
	Warning(msg string)

	// Error shows a fatal problem.
	Error(msg string)

	// Finish renders the final summary with a bounded unsolved preview.
	Finish(stats RunStats)

	// Close releases presenter resources.
	Close() error
}

// maxUnsolvedShown bounds the unsolved preview in the summary.
const maxUnsolvedShown = 6

// ForMode selects the presenter implementation: quiet wins over raw,
// raw produces plain parseable lines, the default is the pterm UI.
func ForMode(raw, quiet bool) Presenter {
	switch {
	case quiet:
		return NewNoopPresenter()
	case raw:
		return NewRawPresenter()
	default:
		return NewPTermPresenter()
	}
}
