// internal/core/usecases/generator.go
package usecases

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"regexp"

	"crackx/internal/core/domain"
	"crackx/internal/variant"
)

// Generator produces the seed candidates for one rule, feeding each into
// the head of the chain synchronously. Each seed is fully drained through
// the chain before the next one is produced; nothing is buffered.
type Generator func(ctx context.Context, p *Pipeline) (stop bool, err error)

// WordOpener opens a named word list. The default is os.Open; tests and
// other callers may substitute their own.
type WordOpener func(path string) (io.ReadCloser, error)

var (
	readRe    = regexp.MustCompile(`^read "(.*)"$`)
	permuteRe = regexp.MustCompile(`^permute "(.*)"$`)
	rangeRe   = regexp.MustCompile(`^(\d+) to (\d+) digits?$`)
)

// CompileGenerator parses the first segment of a rule into a Generator.
// No grammar matching is a fatal parse error with the offending text.
func CompileGenerator(spec string, open WordOpener) (Generator, error) {
	if m := readRe.FindStringSubmatch(spec); m != nil {
		return readGenerator(m[1], open), nil
	}
	if m := permuteRe.FindStringSubmatch(spec); m != nil {
		return permuteGenerator(m[1]), nil
	}
	if m := rangeRe.FindStringSubmatch(spec); m != nil {
		return rangeGenerator(m[1], m[2], spec)
	}
	return nil, fmt.Errorf("%w: %q", domain.ErrUnknownRule, spec)
}

// readGenerator streams the lines of a word file, in file order. An
// unopenable file aborts the run.
func readGenerator(path string, open WordOpener) Generator {
	return func(ctx context.Context, p *Pipeline) (bool, error) {
		f, err := open(path)
		if err != nil {
			return false, fmt.Errorf("%w: %s: %v", domain.ErrWordSource, path, err)
		}
		defer f.Close()

		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			if err := ctx.Err(); err != nil {
				return false, err
			}
			if stop, err := p.Feed(scanner.Text()); stop || err != nil {
				return stop, err
			}
		}
		if err := scanner.Err(); err != nil {
			return false, fmt.Errorf("%w: %s: %v", domain.ErrWordSource, path, err)
		}
		return false, nil
	}
}

// permuteGenerator emits every member of the subset-permutation set of
// the literal character pool.
func permuteGenerator(pool string) Generator {
	return func(ctx context.Context, p *Pipeline) (bool, error) {
		for _, word := range variant.Expand(pool) {
			if err := ctx.Err(); err != nil {
				return false, err
			}
			if stop, err := p.Feed(word); stop || err != nil {
				return stop, err
			}
		}
		return false, nil
	}
}

// rangeGenerator emits every zero-padded integer of each width from min
// to max digits, ascending, one width fully exhausted before the next.
func rangeGenerator(minToken, maxToken, spec string) (Generator, error) {
	minWidth, err := parseWidth(minToken)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", domain.ErrUnknownRule, spec, err)
	}
	maxWidth, err := parseWidth(maxToken)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", domain.ErrUnknownRule, spec, err)
	}
	if minWidth > maxWidth {
		return nil, fmt.Errorf("%w: %q: %d to %d", domain.ErrInvalidRange, spec, minWidth, maxWidth)
	}

	return func(ctx context.Context, p *Pipeline) (bool, error) {
		for width := minWidth; width <= maxWidth; width++ {
			limit := pow10(width)
			for n := int64(0); n < limit; n++ {
				if err := ctx.Err(); err != nil {
					return false, err
				}
				if stop, err := p.Feed(zeroPadded(n, width)); stop || err != nil {
					return stop, err
				}
			}
		}
		return false, nil
	}, nil
}
