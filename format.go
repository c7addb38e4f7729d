package datefmt

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Format renders t according to pattern. It returns *InvalidFormatError when
// pattern does not conform to the grammar; no partial output is produced.
// Only the year, month, day and weekday of t are read.
func Format(t time.Time, pattern string) (string, error) {
	p, err := ParsePattern(pattern)
	if err != nil {
		return "", err
	}
	return p.Render(t), nil
}

// Render formats t according to the already-validated pattern. Rendering is
// pure: identical arguments always produce identical output.
func (p Pattern) Render(t time.Time) string {
	var b strings.Builder
	for i, kind := range p.Parts {
		if i > 0 {
			b.WriteByte(p.Sep)
		}
		b.WriteString(kind.Render(t))
	}
	return b.String()
}

// Render applies the kind's rendering rule to t. KindInvalid renders as "".
func (k Kind) Render(t time.Time) string {
	switch k {
	case YearTwoDigit:
		return fmt.Sprintf("%02d", t.Year()%100)
	case YearFull:
		return fmt.Sprintf("%04d", t.Year())
	case MonthNumeric:
		return strconv.Itoa(int(t.Month()))
	case MonthPadded:
		return fmt.Sprintf("%02d", int(t.Month()))
	case MonthAbbrev:
		return monthNames[t.Month()-1][:3]
	case MonthWide:
		return monthNames[t.Month()-1]
	case DayNumeric:
		return strconv.Itoa(t.Day())
	case DayPadded:
		return fmt.Sprintf("%02d", t.Day())
	case WeekdayAbbrev:
		return weekdayNames[t.Weekday()][:3]
	case WeekdayWide:
		return weekdayNames[t.Weekday()]
	}
	return ""
}
