// internal/platform/ui/pterm_presenter.go
package ui

import (
	"fmt"
	"time"

	"github.com/pterm/pterm"
)

// PTermPresenter renders the run with the pterm library: a header box,
// one green line per cracked target and a summary section at the end.
type PTermPresenter struct{}

// NewPTermPresenter creates the default interactive presenter.
func NewPTermPresenter() *PTermPresenter {
	return &PTermPresenter{}
}

// Start renders the run header.
func (p *PTermPresenter) Start(info RunInfo) {
	pterm.DefaultHeader.
		WithBackgroundStyle(pterm.NewStyle(pterm.BgCyan)).
		WithTextStyle(pterm.NewStyle(pterm.FgBlack)).
		Println("crackx - Rule-Driven Hash Cracker")

	pterm.Println()

	panel := pterm.DefaultBox.
		WithTitle("Run Configuration").
		WithTitleTopCenter().
		WithRightPadding(4).
		WithLeftPadding(4).
		WithBoxStyle(pterm.NewStyle(pterm.FgCyan))

	text := fmt.Sprintf("Targets: %s\n", pterm.Cyan(info.Targets))
	text += fmt.Sprintf("Input: %s\n", info.Input)
	text += fmt.Sprintf("Rules: %s\n", info.Rules)
	text += fmt.Sprintf("Output: %s\n", info.Output)
	text += fmt.Sprintf("Algorithm: %s", pterm.Yellow(info.Algorithm))

	panel.Println(text)
	pterm.Println()
}

// Cracked reports one solved pair.
func (p *PTermPresenter) Cracked(identifier, plaintext string) {
	pterm.Success.Printfln("Cracked %s : %s", pterm.Green(identifier), plaintext)
}

// Warning shows a non-fatal problem.
func (p *PTermPresenter) Warning(msg string) {
	pterm.Warning.Println(msg)
}

// Error shows a fatal problem.
func (p *PTermPresenter) Error(msg string) {
	pterm.Error.Println(msg)
}

// Finish renders the end-of-run summary.
func (p *PTermPresenter) Finish(stats RunStats) {
	pterm.Println()

	if stats.Solved == stats.Total {
		pterm.Success.Printfln("All %d targets cracked in %s", stats.Total, stats.Elapsed.Round(time.Millisecond))
		return
	}

	pterm.DefaultSection.Println("Summary")
	pterm.Printfln("Cracked %d / %d targets in %s", stats.Solved, stats.Total, stats.Elapsed.Round(time.Millisecond))

	if len(stats.Unsolved) == 0 {
		return
	}
	pterm.Println("Uncracked:")
	for i, u := range stats.Unsolved {
		if i >= maxUnsolvedShown {
			pterm.Printfln("  And %d more...", len(stats.Unsolved)-maxUnsolvedShown)
			break
		}
		pterm.Printfln("  %s : %s", u.Identifier, pterm.Gray(u.Digest))
	}
}

// Close releases presenter resources.
func (p *PTermPresenter) Close() error { return nil }
