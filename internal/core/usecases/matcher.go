// internal/core/usecases/matcher.go
package usecases

import (
	"crackx/internal/core/domain"
	"crackx/internal/core/ports"
	"crackx/internal/platform/digest"
	"crackx/internal/platform/errors"
	"crackx/internal/platform/logx"
	"crackx/internal/platform/ui"
)

// Matcher is the implicit terminal stage of every chain: it hashes one
// candidate, tests it against the remaining targets, records a hit and
// signals the global halt when the last target falls.
type Matcher struct {
	targets   *domain.TargetSet
	hash      digest.Func
	sink      ports.ResultSink
	presenter ui.Presenter
	logger    logx.Logger
}

// MatcherOptions configures a Matcher.
type MatcherOptions struct {
	Targets   *domain.TargetSet
	Hash      digest.Func
	Sink      ports.ResultSink
	Presenter ui.Presenter
	Logger    logx.Logger
}

// NewMatcher creates a Matcher. Sink, Presenter and Logger default to
// no-op implementations.
func NewMatcher(opts MatcherOptions) *Matcher {
	if opts.Sink == nil {
		opts.Sink = ports.DiscardSink{}
	}
	if opts.Presenter == nil {
		opts.Presenter = ui.NewNoopPresenter()
	}
	if opts.Logger == nil {
		opts.Logger = logx.NewSilent()
	}
	return &Matcher{
		targets:   opts.Targets,
		hash:      opts.Hash,
		sink:      opts.Sink,
		presenter: opts.Presenter,
		logger:    opts.Logger.With("stage", "match"),
	}
}

// Stage returns the Matcher as the terminal pipeline stage. It is the
// only mutator of the target set and the only place the global success
// condition can change, so the emptiness check happens here, immediately
// after each removal.
func (m *Matcher) Stage() Stage {
	return func(word string, _ int) (bool, error) {
		sum := m.hash([]byte(word))
		identifier, ok := m.targets.Lookup(sum)
		if !ok {
			return false, nil
		}

		m.targets.Remove(sum)
		m.presenter.Cracked(identifier, word)
		m.logger.Info("cracked", "identifier", identifier, "remaining", m.targets.Size())

		// Best-effort persistence: the match stands even if the append
		// fails, the search is never repeated for a solved target.
		if err := m.sink.Append(identifier, word); err != nil {
			m.logger.Err(errors.Join(errors.ErrOutputDegraded, err), "identifier", identifier)
			m.presenter.Warning("could not write to output file: " + err.Error())
		}

		return m.targets.Empty(), nil
	}
}
