// Package datemath implements the proleptic Gregorian calendar arithmetic
// shared by the conversion packages. All day counts are relative to the Unix
// epoch, 1970-01-01, and none of the functions are defined for earlier years.
package datemath

import "time"

// IsLeap determines if the year is a leap year.
func IsLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInYear returns the number of days in a given year.
func DaysInYear(year int) int {
	if IsLeap(year) {
		return 366
	}
	return 365
}

// monthDays is the number of days in each month of a non-leap year.
var monthDays = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// monthStart is the number of days from the start of a non-leap year to the
// first day of each month.
var monthStart = [12]uint64{0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334}

// DaysInMonth returns the number of days in a given month. The leap variant
// substitutes 29 for February.
func DaysInMonth(m time.Month, leap bool) int {
	if m == time.February && leap {
		return 29
	}
	return monthDays[m-1]
}

// DaysBeforeMonth returns the number of days from January 1 to the first day
// of month m in a year of the given leapness.
func DaysBeforeMonth(m time.Month, leap bool) uint64 {
	d := monthStart[m-1]
	if leap && m > time.February {
		d++ // +leap day
	}
	return d
}

// DaysSinceEpoch takes a year and returns the number of days from the epoch
// to the start of that year. This is basically (year - 1970) * 365, but
// accounting for leap days. It is only defined for years >= 1970.
func DaysSinceEpoch(year int) uint64 {
	days := (year-1970)*365 + leapsBefore(year) - leapsBefore(1970)
	return uint64(days)
}

// leapsBefore returns the number of leap years in [1, year).
func leapsBefore(year int) int {
	y := year - 1
	return y/4 - y/100 + y/400
}

// Weekday returns the day of the week for a day count since the epoch.
// Epoch day 0, 1970-01-01, was a Thursday.
func Weekday(epochDays uint64) time.Weekday {
	return time.Weekday((epochDays + 4) % 7)
}
