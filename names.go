package datefmt

// Month and weekday names follow the CLDR en-gregorian wide forms. The
// abbreviated forms ('mmm', 'ddd') are the first three letters of these
// entries, which matches the CLDR abbreviated forms for every entry.

// monthNames is indexed by month-1 (time.Month is 1-based).
var monthNames = [12]string{
	"January",
	"February",
	"March",
	"April",
	"May",
	"June",
	"July",
	"August",
	"September",
	"October",
	"November",
	"December",
}

// weekdayNames is indexed by time.Weekday (Sunday = 0).
var weekdayNames = [7]string{
	"Sunday",
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
}
