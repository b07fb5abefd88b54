package engine

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DefaultLayout is used when formatting with an empty layout: ISO 8601 to the second, with the UTC offset
const DefaultLayout = "YYYY-MM-DDTHH:mm:ssZ"

// Format renders t using a token layout, e.g. "YYYY-MM-DD HH:mm". Text in square brackets is emitted verbatim, as is
// any text that isn't a token.
func Format(t time.Time, layout string) string {
	if layout == "" {
		layout = DefaultLayout
	}

	var b strings.Builder
	for _, tok := range tokenize(expandLocalized(layout), formatTokens) {
		if tok.literal {
			b.WriteString(tok.text)
			continue
		}

		b.WriteString(formatToken(t, tok.text))
	}

	return b.String()
}

func formatToken(t time.Time, tok string) string {
	switch tok {
	case "YY":
		year := strconv.Itoa(t.Year())
		return year[max(len(year)-2, 0):]
	case "YYYY":
		if t.Year() < 0 {
			return "-" + pad(-t.Year(), 4)
		}
		return pad(t.Year(), 4)
	case "M":
		return strconv.Itoa(int(t.Month()))
	case "MM":
		return pad(int(t.Month()), 2)
	case "MMM":
		return monthShortNames[t.Month()-1]
	case "MMMM":
		return monthNames[t.Month()-1]
	case "D":
		return strconv.Itoa(t.Day())
	case "DD":
		return pad(t.Day(), 2)
	case "Do":
		return ordinal(t.Day())
	case "d":
		return strconv.Itoa(int(t.Weekday()))
	case "dd":
		return weekdayMin[t.Weekday()]
	case "ddd":
		return weekdayShort[t.Weekday()]
	case "dddd":
		return weekdayNames[t.Weekday()]
	case "H":
		return strconv.Itoa(t.Hour())
	case "HH":
		return pad(t.Hour(), 2)
	case "h":
		return strconv.Itoa(twelveHour(t.Hour()))
	case "hh":
		return pad(twelveHour(t.Hour()), 2)
	case "k", "kk":
		hour := t.Hour()
		if hour == 0 {
			hour = 24
		}
		return pad(hour, len(tok))
	case "m":
		return strconv.Itoa(t.Minute())
	case "mm":
		return pad(t.Minute(), 2)
	case "s":
		return strconv.Itoa(t.Second())
	case "ss":
		return pad(t.Second(), 2)
	case "SSS":
		return pad(t.Nanosecond()/int(time.Millisecond), 3)
	case "Z":
		return formatOffset(t, true)
	case "ZZ":
		return formatOffset(t, false)
	case "A":
		if t.Hour() < 12 {
			return "AM"
		}
		return "PM"
	case "a":
		if t.Hour() < 12 {
			return "am"
		}
		return "pm"
	case "Q":
		return strconv.Itoa(quarterOf(t))
	case "X":
		return strconv.FormatInt(floorDiv(t.UnixMilli(), 1000), 10)
	case "x":
		return strconv.FormatInt(t.UnixMilli(), 10)
	case "w":
		return strconv.Itoa(WeekOfYear(t))
	case "ww":
		return pad(WeekOfYear(t), 2)
	case "wo":
		return ordinal(WeekOfYear(t))
	case "z":
		name, _ := t.Zone()
		return name
	case "zzz":
		return t.Location().String()
	}

	return tok
}

func pad(value int, width int) string {
	return fmt.Sprintf("%0*d", width, value)
}

func twelveHour(hour int) int {
	if hour%12 == 0 {
		return 12
	}

	return hour % 12
}

func formatOffset(t time.Time, colon bool) string {
	_, offset := t.Zone()

	sign := '+'
	if offset < 0 {
		sign = '-'
		offset = -offset
	}

	hours, minutes := offset/3600, (offset%3600)/60
	if colon {
		return fmt.Sprintf("%c%02d:%02d", sign, hours, minutes)
	}

	return fmt.Sprintf("%c%02d%02d", sign, hours, minutes)
}

func quarterOf(t time.Time) int {
	return (int(t.Month())-1)/3 + 1
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}

	return q
}
