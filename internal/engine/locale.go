package engine

import (
	"strconv"
	"strings"
	"time"
)

// English is the only locale. Names are indexed by time.Month-1 and time.Weekday.
var (
	monthNames      = [12]string{"January", "February", "March", "April", "May", "June", "July", "August", "September", "October", "November", "December"}
	monthShortNames = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}
	weekdayNames    = [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}
	weekdayShort    = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	weekdayMin      = [7]string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}
)

// localizedLayouts expands the L-family tokens
var localizedLayouts = map[string]string{
	"LT":   "h:mm A",
	"LTS":  "h:mm:ss A",
	"L":    "MM/DD/YYYY",
	"LL":   "MMMM D, YYYY",
	"LLL":  "MMMM D, YYYY h:mm A",
	"LLLL": "dddd, MMMM D, YYYY h:mm A",
}

var ordinalSuffixes = [4]string{"th", "st", "nd", "rd"}

func ordinal(n int) string {
	v := n % 100
	if v < 0 {
		v = -v
	}

	suffix := "th"
	if v >= 20 {
		if i := (v - 20) % 10; i < len(ordinalSuffixes) {
			suffix = ordinalSuffixes[i]
		}
	} else if v < len(ordinalSuffixes) {
		suffix = ordinalSuffixes[v]
	}

	return strconv.Itoa(n) + suffix
}

// lookupMonth matches a full or abbreviated English month name, case-insensitively
func lookupMonth(name string) (time.Month, bool) {
	for i := range monthNames {
		if strings.EqualFold(name, monthNames[i]) || strings.EqualFold(name, monthShortNames[i]) {
			return time.Month(i + 1), true
		}
	}

	return 0, false
}
