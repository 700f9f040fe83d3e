// internal/core/usecases/driver.go
package usecases

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"crackx/internal/core/domain"
	"crackx/internal/core/ports"
	"crackx/internal/platform/digest"
	"crackx/internal/platform/logx"
	"crackx/internal/platform/ui"
)

// Driver runs every rule of a rules source against the target set, in
// source order, halting the whole run the moment the last target is
// solved. Execution is single-threaded and depth-first throughout.
type Driver struct {
	targets *domain.TargetSet
	matcher *Matcher
	open    WordOpener
	logger  logx.Logger
}

// DriverOptions configures a Driver.
type DriverOptions struct {
	Targets   *domain.TargetSet
	Hash      digest.Func
	Sink      ports.ResultSink
	Presenter ui.Presenter
	Logger    logx.Logger

	// OpenWord opens word files for `read` generators; defaults to os.Open.
	OpenWord WordOpener
}

// Result summarizes a completed run.
type Result struct {
	Solved int
	Total  int

	// AllSolved is true when the run halted because the registry emptied.
	AllSolved bool

	// RulesRun counts the rules actually executed, including the one
	// that produced the final match.
	RulesRun int
}

// NewDriver creates a Driver.
func NewDriver(opts DriverOptions) *Driver {
	if opts.Logger == nil {
		opts.Logger = logx.NewSilent()
	}
	if opts.OpenWord == nil {
		opts.OpenWord = func(path string) (io.ReadCloser, error) { return os.Open(path) }
	}
	return &Driver{
		targets: opts.Targets,
		matcher: NewMatcher(MatcherOptions{
			Targets:   opts.Targets,
			Hash:      opts.Hash,
			Sink:      opts.Sink,
			Presenter: opts.Presenter,
			Logger:    opts.Logger,
		}),
		open:   opts.OpenWord,
		logger: opts.Logger.With("component", "driver"),
	}
}

// Run executes every rule in the rules source. A malformed rule or an
// unopenable word file aborts the run; matches found before the abort
// stay recorded. Exhausting all rules with targets left is the normal
// terminal state, not an error.
func (d *Driver) Run(ctx context.Context, rules io.Reader) (Result, error) {
	res := Result{Total: d.targets.Initial()}
	if d.targets.Empty() {
		res.AllSolved = true
		return res, nil
	}

	scanner := bufio.NewScanner(rules)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if domain.Skippable(line) {
			continue
		}

		stop, err := d.runRule(ctx, line, lineNo)
		res.RulesRun++
		if err != nil {
			res.Solved = d.targets.Solved()
			return res, err
		}
		if stop {
			d.logger.Info("all targets solved", "rules_run", res.RulesRun)
			res.AllSolved = true
			break
		}
	}
	if err := scanner.Err(); err != nil {
		res.Solved = d.targets.Solved()
		return res, fmt.Errorf("reading rules source: %w", err)
	}

	res.Solved = d.targets.Solved()
	res.AllSolved = res.AllSolved || d.targets.Empty()
	return res, nil
}

// runRule compiles and executes one rule line.
func (d *Driver) runRule(ctx context.Context, line string, lineNo int) (bool, error) {
	rule, err := domain.ParseRule(line)
	if err != nil {
		return false, fmt.Errorf("rules line %d: %w", lineNo, err)
	}

	gen, err := CompileGenerator(rule.Generator, d.open)
	if err != nil {
		return false, fmt.Errorf("rules line %d: %q: %w", lineNo, rule.Raw, err)
	}

	pipe, err := NewPipeline(rule.Transforms, d.matcher.Stage())
	if err != nil {
		return false, fmt.Errorf("rules line %d: %q: %w", lineNo, rule.Raw, err)
	}

	d.logger.Debug("running rule", "line", lineNo, "stages", pipe.Len())
	return gen(ctx, pipe)
}
