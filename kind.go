package datefmt

// Kind represents the category of a pattern token.
type Kind uint8

const (
	// KindInvalid indicates an unrecognized token.
	KindInvalid Kind = iota

	// YearTwoDigit represents the 'yy' token: last two digits of the year,
	// zero-padded to width 2.
	YearTwoDigit // yy
	// YearFull represents the 'yyyy' token: full year, zero-padded to width 4.
	YearFull // yyyy

	// MonthNumeric represents the 'm' token: month number without padding.
	MonthNumeric // m
	// MonthPadded represents the 'mm' token: month number, zero-padded to width 2.
	MonthPadded // mm
	// MonthAbbrev represents the 'mmm' token: first three letters of the month name.
	MonthAbbrev // mmm
	// MonthWide represents the 'mmmm' token: month name spelled out in full.
	MonthWide // mmmm

	// DayNumeric represents the 'd' token: day of the month without padding.
	DayNumeric // d
	// DayPadded represents the 'dd' token: day of the month, zero-padded to width 2.
	DayPadded // dd
	// WeekdayAbbrev represents the 'ddd' token: first three letters of the weekday name.
	WeekdayAbbrev // ddd
	// WeekdayWide represents the 'dddd' token: weekday name spelled out in full.
	WeekdayWide // dddd
)

// Family groups token kinds by the date component they render. A valid
// pattern covers each family exactly once.
type Family uint8

const (
	// FamilyNone is the family of KindInvalid.
	FamilyNone Family = iota
	// FamilyYear covers 'yy' and 'yyyy'.
	FamilyYear
	// FamilyMonth covers 'm', 'mm', 'mmm' and 'mmmm'.
	FamilyMonth
	// FamilyDay covers 'd', 'dd', 'ddd' and 'dddd'.
	FamilyDay
)

var tokens = map[string]Kind{
	"yy":   YearTwoDigit,
	"yyyy": YearFull,
	"m":    MonthNumeric,
	"mm":   MonthPadded,
	"mmm":  MonthAbbrev,
	"mmmm": MonthWide,
	"d":    DayNumeric,
	"dd":   DayPadded,
	"ddd":  WeekdayAbbrev,
	"dddd": WeekdayWide,
}

// KindOf returns the kind for a pattern segment and whether the segment is a
// defined token. Matching is exact and case-sensitive; only the lowercase
// spellings are recognized.
func KindOf(segment string) (Kind, bool) {
	k, ok := tokens[segment]
	return k, ok
}

// Kinds returns all defined token kinds in declaration order.
func Kinds() []Kind {
	return []Kind{
		YearTwoDigit, YearFull,
		MonthNumeric, MonthPadded, MonthAbbrev, MonthWide,
		DayNumeric, DayPadded, WeekdayAbbrev, WeekdayWide,
	}
}

// Family returns the date component the kind renders.
func (k Kind) Family() Family {
	switch k {
	case YearTwoDigit, YearFull:
		return FamilyYear
	case MonthNumeric, MonthPadded, MonthAbbrev, MonthWide:
		return FamilyMonth
	case DayNumeric, DayPadded, WeekdayAbbrev, WeekdayWide:
		return FamilyDay
	}
	return FamilyNone
}

// Literal returns the token spelling for the kind, or "" for KindInvalid.
func (k Kind) Literal() string {
	switch k {
	case YearTwoDigit:
		return "yy"
	case YearFull:
		return "yyyy"
	case MonthNumeric:
		return "m"
	case MonthPadded:
		return "mm"
	case MonthAbbrev:
		return "mmm"
	case MonthWide:
		return "mmmm"
	case DayNumeric:
		return "d"
	case DayPadded:
		return "dd"
	case WeekdayAbbrev:
		return "ddd"
	case WeekdayWide:
		return "dddd"
	}
	return ""
}

func (k Kind) String() string {
	if k == KindInvalid {
		return "invalid"
	}
	return k.Literal()
}

func (f Family) String() string {
	switch f {
	case FamilyYear:
		return "year"
	case FamilyMonth:
		return "month"
	case FamilyDay:
		return "day"
	}
	return "none"
}
