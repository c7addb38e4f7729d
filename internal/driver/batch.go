// Package driver orchestrates batch formatting for the CLI.
package driver

import (
	"context"
	"fmt"
	"runtime"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/unicode/norm"

	"datefmt"
)

// dateLayout is the accepted spelling of input dates.
const dateLayout = "2006-01-02"

// Result holds the rendering of a single input line.
type Result struct {
	Line   int // 1-based line number in the input
	Date   time.Time
	Output string
}

// ParseDate parses one input date. The line is NFC-normalized and trimmed
// before parsing so that shell-pasted input round-trips cleanly.
func ParseDate(line string) (time.Time, error) {
	cleaned := strings.TrimSpace(norm.NFC.String(line))
	day, err := time.Parse(dateLayout, cleaned)
	if err != nil {
		return time.Time{}, fmt.Errorf("expected a yyyy-mm-dd date, got %q", cleaned)
	}
	return day, nil
}

// FormatLines parses and renders every input line with the given pattern.
// Lines are processed by a bounded worker pool; results keep input order.
// The first failing line aborts the whole batch.
func FormatLines(ctx context.Context, lines []string, p datefmt.Pattern, jobs int) ([]Result, error) {
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	if len(lines) == 0 {
		return nil, nil
	}

	// Indices are unique per goroutine, no mutex needed.
	results := make([]Result, len(lines))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(lines)))

	for i, line := range lines {
		i, line := i, line
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			day, err := ParseDate(line)
			if err != nil {
				return fmt.Errorf("line %d: %w", i+1, err)
			}
			results[i] = Result{
				Line:   i + 1,
				Date:   day,
				Output: p.Render(day),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
