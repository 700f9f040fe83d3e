// internal/platform/ui/noop_presenter.go
package ui

// NoopPresenter discards everything. Used for --quiet and in tests.
type NoopPresenter struct{}

func NewNoopPresenter() *NoopPresenter { return &NoopPresenter{} }

func (n *NoopPresenter) Start(RunInfo)          {}
func (n *NoopPresenter) Cracked(string, string) {}
func (n *NoopPresenter) Warning(string)         {}
func (n *NoopPresenter) Error(string)           {}
func (n *NoopPresenter) Finish(RunStats)        {}
func (n *NoopPresenter) Close() error           { return nil }
