package driver_test

import (
	"context"
	"strings"
	"testing"

	"datefmt"
	"datefmt/internal/driver"
)

func testPattern(t *testing.T, pattern string) datefmt.Pattern {
	t.Helper()
	p, err := datefmt.ParsePattern(pattern)
	if err != nil {
		t.Fatalf("ParsePattern(%q): %v", pattern, err)
	}
	return p
}

func TestFormatLinesKeepsOrder(t *testing.T) {
	lines := []string{"2024-03-17", "2024-01-05", "1999-12-31"}
	want := []string{"17 March 2024", "5 January 2024", "31 December 1999"}

	results, err := driver.FormatLines(context.Background(), lines, testPattern(t, "d mmmm yyyy"), 2)
	if err != nil {
		t.Fatalf("FormatLines: %v", err)
	}
	if len(results) != len(lines) {
		t.Fatalf("got %d results, want %d", len(results), len(lines))
	}
	for i, res := range results {
		if res.Line != i+1 {
			t.Errorf("result %d has line %d", i, res.Line)
		}
		if res.Output != want[i] {
			t.Errorf("line %d: got %q, want %q", i+1, res.Output, want[i])
		}
	}
}

func TestFormatLinesEmptyInput(t *testing.T) {
	results, err := driver.FormatLines(context.Background(), nil, testPattern(t, "yyyy-mm-dd"), 0)
	if err != nil {
		t.Fatalf("FormatLines: %v", err)
	}
	if results != nil {
		t.Fatalf("expected no results, got %v", results)
	}
}

func TestFormatLinesBadDateReportsLine(t *testing.T) {
	lines := []string{"2024-03-17", "not-a-date", "1999-12-31"}
	_, err := driver.FormatLines(context.Background(), lines, testPattern(t, "yyyy-mm-dd"), 1)
	if err == nil {
		t.Fatalf("bad date must fail")
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("error should name the offending line, got %q", err.Error())
	}
}

func TestParseDateTrimsAndNormalizes(t *testing.T) {
	day, err := driver.ParseDate("  2024-03-17\n")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if got := day.Format("2006-01-02"); got != "2024-03-17" {
		t.Errorf("ParseDate = %s", got)
	}
	if _, err := driver.ParseDate("17/03/2024"); err == nil {
		t.Errorf("wrong layout must fail")
	}
}

func TestFormatLinesCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	lines := make([]string, 64)
	for i := range lines {
		lines[i] = "2024-03-17"
	}
	if _, err := driver.FormatLines(ctx, lines, testPattern(t, "yyyy-mm-dd"), 1); err == nil {
		t.Fatalf("cancelled context should surface an error")
	}
}
