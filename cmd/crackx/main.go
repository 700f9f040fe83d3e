// cmd/crackx/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"

	"crackx/internal/adapters/output"
	"crackx/internal/core/domain"
	"crackx/internal/core/usecases"
	"crackx/internal/platform/config"
	"crackx/internal/platform/digest"
	"crackx/internal/platform/logx"
	"crackx/internal/platform/ui"
)

var (
	// Filled with -ldflags at build time
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	// Generator modes take over before any flag parsing, same shape as
	// the crack mode: crackx filter <file> ..., crackx replace <file> ...
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "filter":
			os.Exit(runFilter(os.Args[2:]))
		case "replace":
			os.Exit(runReplace(os.Args[2:]))
		}
	}
	os.Exit(runCrack(os.Args[1:]))
}

func runCrack(args []string) int {
	cfg, err := config.Load(args)
	if err != nil {
		if err == pflag.ErrHelp {
			return 0
		}
		fmt.Fprintf(os.Stderr, "Error: configuration load failed: %v\n", err)
		return 2
	}

	if cfg.PrintVersion {
		fmt.Printf("crackx %s (commit %s, built %s)\n", version, commit, date)
		return 0
	}

	logger := logx.NewWithErrorFile(cfg.ErrorLog)
	logger.Debug("configuration loaded", "config", cfg.String())

	if err := cfg.Validate(); err != nil {
		logger.Err(err, "phase", "validation")
		return 2
	}

	hash, err := digest.New(cfg.Algorithm)
	if err != nil {
		logger.Err(err, "phase", "validation")
		return 2
	}

	targets, err := loadTargets(cfg.Input)
	if err != nil {
		logger.Err(err, "phase", "target-load")
		return 2
	}

	rulesFile, err := os.Open(cfg.Rules)
	if err != nil {
		logger.Err(err, "phase", "rules-load")
		return 2
	}
	defer rulesFile.Close()

	presenter := ui.ForMode(cfg.Raw, cfg.Quiet)
	defer presenter.Close()

	sink := output.NewAppender(cfg.Output)
	defer func() {
		if err := sink.Close(); err != nil {
			logger.Warn("failed to close output file", "error", err.Error())
		}
	}()

	presenter.Start(ui.RunInfo{
		Targets:   targets.Size(),
		Input:     cfg.Input,
		Rules:     cfg.Rules,
		Output:    cfg.Output,
		Algorithm: cfg.Algorithm,
	})

	ctx, cancel := rootContextWithSignals()
	defer cancel()

	driver := usecases.NewDriver(usecases.DriverOptions{
		Targets:   targets,
		Hash:      hash,
		Sink:      sink,
		Presenter: presenter,
		Logger:    logger,
	})

	start := time.Now()
	result, runErr := driver.Run(ctx, rulesFile)
	elapsed := time.Since(start)

	if runErr != nil {
		logger.Err(runErr, "phase", "run", "elapsed_ms", elapsed.Milliseconds())
		presenter.Error(runErr.Error())
		return runExitCode(runErr)
	}

	presenter.Finish(ui.RunStats{
		Solved:   result.Solved,
		Total:    result.Total,
		Elapsed:  elapsed,
		Unsolved: unsolvedEntries(targets),
	})

	logger.Info("run finished",
		"solved", result.Solved,
		"total", result.Total,
		"rules_run", result.RulesRun,
		"elapsed_ms", elapsed.Milliseconds(),
	)
	return 0
}

// runExitCode classifies a run abort: a rule the rules file author got
// wrong is a configuration error (2), everything else, like an
// unreadable word file, is a resource error (1).
func runExitCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrEmptyRule),
		errors.Is(err, domain.ErrUnknownRule),
		errors.Is(err, domain.ErrDigitWidth),
		errors.Is(err, domain.ErrInvalidRange):
		return 2
	default:
		return 1
	}
}

// loadTargets reads and parses the target list.
func loadTargets(path string) (*domain.TargetSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("couldn't read from input file: %w", err)
	}
	defer f.Close()
	return domain.ParseTargets(f)
}

// unsolvedEntries maps the remaining targets into presenter entries.
func unsolvedEntries(targets *domain.TargetSet) []ui.Unsolved {
	remaining := targets.Remaining()
	out := make([]ui.Unsolved, 0, len(remaining))
	for _, t := range remaining {
		out = append(out, ui.Unsolved{Identifier: t.Identifier, Digest: t.Digest})
	}
	return out
}

// rootContextWithSignals creates a root context canceled on SIGINT/SIGTERM.
func rootContextWithSignals() (context.Context, context.CancelFunc) {
	base, baseCancel := context.WithCancel(context.Background())

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case <-ch:
			baseCancel()
		case <-base.Done():
		}
	}()

	cleanup := func() {
		signal.Stop(ch)
		baseCancel()
	}
	return base, cleanup
}
