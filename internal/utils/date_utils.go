package utils

import (
	"fmt"
	"time"
)

// IST is the timezone anchor for the daily schedule and for what counts as
// one calendar day of records.
var IST = time.FixedZone("IST", 5*3600+30*60)

const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, IST)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return t, nil
}

// FormatDate renders t's IST calendar date as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.In(IST).Format(DateLayout)
}

// DayBoundsIST returns the half-open interval [start, end) covering the
// given IST calendar day.
func DayBoundsIST(date string) (time.Time, time.Time, error) {
	start, err := ParseDate(date)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, start.AddDate(0, 0, 1), nil
}

// YesterdayIST returns the IST calendar date one day before now.
func YesterdayIST(now time.Time) string {
	return now.In(IST).AddDate(0, 0, -1).Format(DateLayout)
}

// DaysBetween returns the inclusive day count from start to end, both
// YYYY-MM-DD. Returns 0 when either side fails to parse.
func DaysBetween(start, end string) int {
	s, err1 := ParseDate(start)
	e, err2 := ParseDate(end)
	if err1 != nil || err2 != nil {
		return 0
	}
	return int(e.Sub(s).Hours()/24) + 1
}
