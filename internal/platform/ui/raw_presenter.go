// internal/platform/ui/raw_presenter.go
package ui

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// RawPresenter writes plain logfmt-style lines to stdout, suitable for
// piping into other tools.
type RawPresenter struct {
	mu  sync.Mutex
	out io.Writer
}

// NewRawPresenter creates a presenter writing to stdout.
func NewRawPresenter() *RawPresenter {
	return &RawPresenter{out: os.Stdout}
}

// NewRawPresenterTo creates a presenter writing to w. Used in tests.
func NewRawPresenterTo(w io.Writer) *RawPresenter {
	return &RawPresenter{out: w}
}

func (r *RawPresenter) line(format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintf(r.out, format+"\n", args...)
}

func (r *RawPresenter) Start(info RunInfo) {
	r.line("start targets=%d input=%s rules=%s alg=%s", info.Targets, info.Input, info.Rules, info.Algorithm)
}

func (r *RawPresenter) Cracked(identifier, plaintext string) {
	r.line("cracked %s : %s", identifier, plaintext)
}

func (r *RawPresenter) Warning(msg string) {
	r.line("warning %s", msg)
}

func (r *RawPresenter) Error(msg string) {
	r.line("error %s", msg)
}

func (r *RawPresenter) Finish(stats RunStats) {
	r.line("done solved=%d total=%d elapsed=%s", stats.Solved, stats.Total, stats.Elapsed)
	for i, u := range stats.Unsolved {
		if i >= maxUnsolvedShown {
			r.line("unsolved more=%d", len(stats.Unsolved)-maxUnsolvedShown)
			break
		}
		r.line("unsolved %s : %s", u.Identifier, u.Digest)
	}
}

func (r *RawPresenter) Close() error { return nil }
