package datefmt

import (
	"fmt"
	"strings"
)

// Pattern is a validated format pattern: three token kinds in their original
// positional order plus the separator byte that joins them.
type Pattern struct {
	Parts [3]Kind
	Sep   byte
}

// InvalidFormatError reports a pattern that does not conform to the format
// grammar. The offending pattern is carried for diagnostic display.
type InvalidFormatError struct {
	Pattern string
	Reason  string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid format %q: %s", e.Pattern, e.Reason)
}

func invalid(pattern, format string, args ...any) error {
	return &InvalidFormatError{Pattern: pattern, Reason: fmt.Sprintf(format, args...)}
}

// ParsePattern validates pattern against the format grammar and returns its
// parsed form. The first separator-set byte fixes the separator for the whole
// pattern; any other separator-set byte appearing later is rejected rather
// than tolerated.
func ParsePattern(pattern string) (Pattern, error) {
	sepIdx := strings.IndexAny(pattern, separatorSet)
	if sepIdx < 0 {
		return Pattern{}, invalid(pattern, "no separator found (expected one of %q)", separatorSet)
	}
	sep := pattern[sepIdx]

	for i := sepIdx + 1; i < len(pattern); i++ {
		if b := pattern[i]; b != sep && IsSeparator(b) {
			return Pattern{}, invalid(pattern, "mixed separators %q and %q", sep, b)
		}
	}

	segments := strings.Split(pattern, string(sep))
	if len(segments) != 3 {
		return Pattern{}, invalid(pattern, "expected 3 parts separated by %q, got %d", sep, len(segments))
	}

	p := Pattern{Sep: sep}
	var seen [4]bool // indexed by Family
	for i, segment := range segments {
		if segment == "" {
			return Pattern{}, invalid(pattern, "empty part at position %d", i+1)
		}
		kind, ok := KindOf(segment)
		if !ok {
			return Pattern{}, invalid(pattern, "unknown token %q", segment)
		}
		fam := kind.Family()
		if seen[fam] {
			return Pattern{}, invalid(pattern, "duplicate %s token %q", fam, segment)
		}
		seen[fam] = true
		p.Parts[i] = kind
	}
	// Three parts in three distinct families cover every family; a missing
	// family can only occur together with a duplicate, already rejected.
	return p, nil
}

// String reconstructs the pattern text.
func (p Pattern) String() string {
	var b strings.Builder
	for i, kind := range p.Parts {
		if i > 0 {
			b.WriteByte(p.Sep)
		}
		b.WriteString(kind.Literal())
	}
	return b.String()
}
