package util

import (
	"fmt"
	"time"
	_ "time/tzdata"
)

func NewDate(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// ExchangeLocation resolves the exchange time zone by IANA name, falling
// back to a fixed zone at gmtOffsetSeconds when the name is unknown.
func ExchangeLocation(name string, gmtOffsetSeconds int) *time.Location {
	if name != "" {
		if loc, err := time.LoadLocation(name); err == nil {
			return loc
		}
	}
	return time.FixedZone(fmt.Sprintf("UTC%+d", gmtOffsetSeconds/3600), gmtOffsetSeconds)
}

// SessionDate maps a bar timestamp to the calendar day of the exchange
// that produced it, as UTC midnight. The offset is the one in effect at
// the bar, not at request time.
func SessionDate(unixSeconds int64, loc *time.Location) time.Time {
	t := time.Unix(unixSeconds, 0).In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Today is the current calendar day as UTC midnight.
func Today(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
