// Package calfmt renders calendar fields into fixed textual formats.
// The renderers perform no calendar arithmetic of their own; everything is
// field substitution plus the 12-hour clock derivation.
package calfmt

import (
	"fmt"

	"github.com/cfal/go-epoch/calendar"
)

// Java renders the fields the way java.util.Date.toString does, e.g.
// "Thu Jul 18 11:03:31 UTC 2024". The zone's display name stands in for the
// zone abbreviation.
func Java(f calendar.Fields) string {
	return fmt.Sprintf("%.3s %.3s %02d %02d:%02d:%02d %s %d",
		f.DayOfWeek, f.Month, f.Day, f.Hour, f.Minute, f.Second, f.Zone.Name, f.Year)
}

// ISO8601 renders the fields as an ISO-8601 timestamp with millisecond
// precision and the canonical offset suffix, e.g.
// "2024-07-18T11:03:31.846+00:00".
func ISO8601(f calendar.Fields) string {
	return fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%02d.%03d%s",
		f.Year, f.Month, f.Day, f.Hour, f.Minute, f.Second, f.Millisecond, f.Zone)
}

// Locale renders the fields in a long 12-hour clock form, e.g.
// "Thursday, July 18, 2024, 11:03:31 AM UTC".
func Locale(f calendar.Fields) string {
	h, pm := Clock12(f.Hour)
	meridiem := "AM"
	if pm {
		meridiem = "PM"
	}
	return fmt.Sprintf("%s, %s %d, %d, %d:%02d:%02d %s %s",
		f.DayOfWeek, f.Month, f.Day, f.Year, h, f.Minute, f.Second, meridiem, f.Zone.Name)
}

// Clock12 converts a 24-hour clock hour to its 12-hour form and reports
// whether it is past noon. Midnight is 12 AM and noon is 12 PM.
func Clock12(hour int) (int, bool) {
	switch {
	case hour == 0:
		return 12, false
	case hour > 12:
		return hour - 12, true
	default:
		return hour, hour == 12
	}
}
