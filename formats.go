package datetime

// Named format layouts. These strings are fixed: other systems exchange values in them.
const (
	FormatFullDateTime  = "YYYY-MM-DD-HH.mm.ss.SSSSSS"
	FormatISO           = "YYYY-MM-DD"
	FormatUSA           = "MM/DD/YYYY"
	FormatISODecimal    = "YYYYMMDD"
	FormatISOFull       = "YYYY-MM-DDTHH:mm:ss.SSS"
	FormatISOFullZ      = "YYYY-MM-DDTHH:mm:ss.SSSZ"
	FormatISODateTime   = "YYYY-MM-DDTHH:mm:ss"
	FormatLocalDate     = "LL"
	FormatYYMD          = "YY-M-D"
	FormatYYMMD         = "YY-MM-D"
	FormatMDDYY         = "MDDYY"
	FormatMM_DD_YYYY    = "MM-DD-YYYY"
	FormatMMDDYYYY      = "MMDDYYYY"
	FormatYYDDDD        = "YYDDDD"
	FormatMMDDYY        = "MMDDYY"
	FormatMMDD          = "MMDD"
	FormatHours         = "HH:mm:ss"
	FormatTimestamp     = "HHmmss"
	FormatHoursMinutes  = "HH:mm"
	FormatHoursMinutesA = "hh:mm A"
	FormatDays          = "DD"
	FormatDayAlphaShort = "ddd"
	FormatDayAlphaLong  = "dddd"
	FormatMonth         = "MM"
	FormatMonthShort    = "M"
	FormatYearShort     = "YY"
	FormatYear          = "YYYY"
)

// NamedFormat pairs a catalog name with its layout
type NamedFormat struct {
	Name   string
	Layout string
}

var catalog = []NamedFormat{
	{"fullDateTime", FormatFullDateTime},
	{"ISO", FormatISO},
	{"USA", FormatUSA},
	{"ISODecimal", FormatISODecimal},
	{"ISOFull", FormatISOFull},
	{"ISOFullZ", FormatISOFullZ},
	{"ISODateTime", FormatISODateTime},
	{"localDate", FormatLocalDate},
	{"YYMD", FormatYYMD},
	{"YYMMD", FormatYYMMD},
	{"MDDYY", FormatMDDYY},
	{"MM_DD_YYYY", FormatMM_DD_YYYY},
	{"MMDDYYYY", FormatMMDDYYYY},
	{"YYDDDD", FormatYYDDDD},
	{"MMDDYY", FormatMMDDYY},
	{"MMDD", FormatMMDD},
	{"hours", FormatHours},
	{"timestamp", FormatTimestamp},
	{"hoursMinutes", FormatHoursMinutes},
	{"hoursMinutesA", FormatHoursMinutesA},
	{"days", FormatDays},
	{"dayAlphaShort", FormatDayAlphaShort},
	{"dayAlphaLong", FormatDayAlphaLong},
	{"month", FormatMonth},
	{"monthShort", FormatMonthShort},
	{"yearShort", FormatYearShort},
	{"year", FormatYear},
}

// Formats returns the format catalog in a stable order
func Formats() []NamedFormat {
	return append([]NamedFormat(nil), catalog...)
}

// LookupFormat resolves a catalog name such as "ISO" or "hoursMinutesA" to its layout
func LookupFormat(name string) (string, bool) {
	for _, f := range catalog {
		if f.Name == name {
			return f.Layout, true
		}
	}

	return "", false
}

// CityISOFormats returns the ISO layouts accepted for city-local date-times
func CityISOFormats() []string {
	return []string{FormatISO, FormatISODecimal, FormatISOFull, FormatISOFullZ, FormatISODateTime}
}

// USATimeZone is an IANA zone name for one of the US time zones
type USATimeZone string

const (
	ET USATimeZone = "America/New_York"
	CT USATimeZone = "America/Chicago"
	MT USATimeZone = "America/Denver"
	PT USATimeZone = "America/Los_Angeles"
	AK USATimeZone = "America/Anchorage"
	HI USATimeZone = "Pacific/Honolulu"
)

// EasternTimezone is the zone used by [NewEST]
const EasternTimezone = string(ET)

// Boundary controls whether the ends of a range count as inside it: '[' and ']' are inclusive, '(' and ')' exclusive
type Boundary string

const (
	BoundaryExclusive      Boundary = "()"
	BoundaryInclusive      Boundary = "[]"
	BoundaryInclusiveStart Boundary = "[)"
	BoundaryInclusiveEnd   Boundary = "(]"
)

// exclusive reports whether each end of the range is open. The empty boundary is "()".
func (b Boundary) exclusive() (start, end bool) {
	if len(b) != 2 {
		b = BoundaryExclusive
	}

	return b[0] == '(', b[1] == ')'
}
