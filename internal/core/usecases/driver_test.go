// internal/core/usecases/driver_test.go
package usecases

import (
	"context"
	"io"
	"strings"
	"testing"

	"crackx/internal/core/domain"
	"crackx/internal/platform/digest"
	"crackx/internal/platform/errors"
	"crackx/internal/platform/logx"
	"crackx/internal/testutil"
)

// recordingSink captures appended pairs and can be told to fail.
type recordingSink struct {
	pairs []string
	fail  bool
}

func (s *recordingSink) Append(identifier, plaintext string) error {
	if s.fail {
		return errors.New("disk full")
	}
	s.pairs = append(s.pairs, identifier+" : "+plaintext)
	return nil
}

func (s *recordingSink) Close() error { return nil }

// captureLogger records errors routed through Err.
type captureLogger struct {
	errs []error
}

func (l *captureLogger) Debug(msg string, kv ...any) {}
func (l *captureLogger) Info(msg string, kv ...any)  {}
func (l *captureLogger) Warn(msg string, kv ...any)  {}
func (l *captureLogger) Err(err error, kv ...any)    { l.errs = append(l.errs, err) }
func (l *captureLogger) With(kv ...any) logx.Logger  { return l }
func (l *captureLogger) SetLevel(lvl logx.Level)     {}

func newTargets(t *testing.T, lines string) *domain.TargetSet {
	t.Helper()
	ts, err := domain.ParseTargets(strings.NewReader(lines))
	testutil.AssertNoError(t, err, "target setup")
	return ts
}

func sha256Func(t *testing.T) digest.Func {
	t.Helper()
	fn, err := digest.New("sha256")
	testutil.AssertNoError(t, err, "sha256 should be registered")
	return fn
}

func TestDriver_EndToEnd(t *testing.T) {
	// sha256("cat123")
	const cat123 = "36515a322efde414a1991048da44bc65623c8e1c31f8c30c652aeee05428c237"

	t.Run("cracks a target and halts the whole run", func(t *testing.T) {
		targets := newTargets(t, "alice:"+cat123+"\n")
		sink := &recordingSink{}

		opened := []string{}
		open := func(path string) (io.ReadCloser, error) {
			opened = append(opened, path)
			if path == "words.txt" {
				return io.NopCloser(strings.NewReader("cat\n")), nil
			}
			return nil, errors.New("no such file")
		}

		driver := NewDriver(DriverOptions{
			Targets:  targets,
			Hash:     sha256Func(t),
			Sink:     sink,
			OpenWord: open,
		})

		rules := `read "words.txt" | add 3 digits
read "never-opened.txt"
`
		result, err := driver.Run(context.Background(), strings.NewReader(rules))

		testutil.AssertNoError(t, err, "run")
		testutil.AssertTrue(t, result.AllSolved, "registry emptied")
		testutil.AssertEqual(t, result.Solved, 1, "solved count")
		testutil.AssertEqual(t, result.Total, 1, "total count")
		testutil.AssertEqual(t, result.RulesRun, 1, "later rules never execute")
		testutil.AssertTrue(t, targets.Empty(), "target removed")

		testutil.AssertEqual(t, len(sink.pairs), 1, "one pair persisted")
		testutil.AssertEqual(t, sink.pairs[0], "alice : cat123", "report format")

		testutil.AssertEqual(t, len(opened), 1, "second word file never opened")
		testutil.AssertEqual(t, opened[0], "words.txt", "first word file opened")
	})

	t.Run("exhaustion is a normal terminal state", func(t *testing.T) {
		targets := newTargets(t, "alice:"+cat123+"\nbob:ffff\n")
		sink := &recordingSink{}
		open := memOpener(map[string]string{"words.txt": "cat\n"})

		driver := NewDriver(DriverOptions{
			Targets:  targets,
			Hash:     sha256Func(t),
			Sink:     sink,
			OpenWord: open,
		})

		rules := `read "words.txt" | add 3 digits
`
		result, err := driver.Run(context.Background(), strings.NewReader(rules))

		testutil.AssertNoError(t, err, "exhaustion is not an error")
		testutil.AssertFalse(t, result.AllSolved, "one target left")
		testutil.AssertEqual(t, result.Solved, 1, "solved count")
		testutil.AssertEqual(t, result.Total, 2, "total count")
		testutil.AssertEqual(t, targets.Size(), 1, "bob remains")
	})

	t.Run("skips blank lines and comments", func(t *testing.T) {
		targets := newTargets(t, "alice:"+cat123+"\n")
		open := memOpener(map[string]string{"words.txt": "cat\n"})

		driver := NewDriver(DriverOptions{
			Targets:  targets,
			Hash:     sha256Func(t),
			OpenWord: open,
		})

		rules := `
# dictionary pass with a numeric suffix
read "words.txt" | add 3 digits
`
		result, err := driver.Run(context.Background(), strings.NewReader(rules))
		testutil.AssertNoError(t, err, "run")
		testutil.AssertEqual(t, result.RulesRun, 1, "only the real rule runs")
		testutil.AssertTrue(t, result.AllSolved, "cracked")
	})

	t.Run("malformed rule aborts with the line number", func(t *testing.T) {
		targets := newTargets(t, "alice:"+cat123+"\n")
		driver := NewDriver(DriverOptions{
			Targets:  targets,
			Hash:     sha256Func(t),
			OpenWord: memOpener(nil),
		})

		rules := `# comment
emit "everything"
`
		_, err := driver.Run(context.Background(), strings.NewReader(rules))
		testutil.AssertError(t, err, "unknown generator is fatal")
		testutil.AssertTrue(t, errors.Is(err, domain.ErrUnknownRule), "sentinel matches")
		testutil.AssertContains(t, err.Error(), "line 2", "line number reported")
		testutil.AssertContains(t, err.Error(), `emit \"everything\"`, "offending rule text reported")
	})

	t.Run("sink failure is non-fatal and the target stays solved", func(t *testing.T) {
		targets := newTargets(t, "alice:"+cat123+"\n")
		sink := &recordingSink{fail: true}
		open := memOpener(map[string]string{"words.txt": "cat123\n"})
		logger := &captureLogger{}

		driver := NewDriver(DriverOptions{
			Targets:  targets,
			Hash:     sha256Func(t),
			Sink:     sink,
			OpenWord: open,
			Logger:   logger,
		})

		result, err := driver.Run(context.Background(), strings.NewReader(`read "words.txt"`))
		testutil.AssertNoError(t, err, "append failure does not abort the run")
		testutil.AssertTrue(t, result.AllSolved, "match still counts")
		testutil.AssertTrue(t, targets.Empty(), "target still removed")

		testutil.AssertEqual(t, len(logger.errs), 1, "degradation reaches the error log")
		testutil.AssertTrue(t, errors.Is(logger.errs[0], errors.ErrOutputDegraded), "sentinel matches")
		testutil.AssertContains(t, logger.errs[0].Error(), "disk full", "cause preserved")
	})

	t.Run("permute and range generators crack too", func(t *testing.T) {
		// sha256("Hat7")
		const hat7 = "ff42b24b421a6f982ad4e72a12dd5f41f15d892d31fd439921de1c790d7ceadc"
		targets := newTargets(t, "carol:"+hat7+"\n")

		driver := NewDriver(DriverOptions{
			Targets: targets,
			Hash:    sha256Func(t),
		})

		rules := `permute "hat" | add capitalized | add 1 digit
`
		result, err := driver.Run(context.Background(), strings.NewReader(rules))
		testutil.AssertNoError(t, err, "run")
		testutil.AssertTrue(t, result.AllSolved, "cracked via permute chain")
	})
}
