// Package calendar converts between Unix-epoch millisecond instants and
// human-readable calendar fields under a fixed UTC offset. It assumes the
// proleptic Gregorian calendar and ignores leap seconds.
//
// Instants are unsigned: points in time before 1970-01-01 00:00:00 UTC are
// unrepresentable by design. The two conversions are exact inverses for every
// valid input, so FromInstant(t, z).Instant() == t whenever shifting t by z
// stays non-negative.
package calendar

import (
	"errors"
	"fmt"
	"time"

	"github.com/cfal/go-epoch/internal/datemath"
	"github.com/cfal/go-epoch/tzoffset"
)

const (
	msPerSecond uint64 = 1000
	msPerMinute        = 60 * msPerSecond
	msPerHour          = 60 * msPerMinute
	msPerDay           = 24 * msPerHour
)

// ErrUnderflow is returned when applying a negative offset would shift an
// instant before the Unix epoch.
var ErrUnderflow = errors.New("offset shifts instant before the Unix epoch")

// Fields is the decomposition of an instant under one UTC offset.
// Fields are immutable values and safe to share between goroutines.
type Fields struct {
	Year        int        // >= 1970
	Month       time.Month // January..December
	Day         int        // 1..days in month
	Hour        int        // 0..23
	Minute      int        // 0..59
	Second      int        // 0..59
	Millisecond int        // 0..999
	// DayOfWeek is derived from the instant, never stored independently.
	DayOfWeek time.Weekday
	// Zone is the offset the fields were computed under.
	Zone tzoffset.Offset
}

// FromInstant decomposes a count of milliseconds since the Unix epoch into
// calendar fields under the given offset. It returns ErrUnderflow if the
// offset is negative and its magnitude exceeds the instant, since the shifted
// instant would precede the epoch.
func FromInstant(ms uint64, zone tzoffset.Offset) (Fields, error) {
	var shifted uint64
	if zone.Minutes < 0 {
		shift := uint64(-zone.Minutes) * msPerMinute
		if shift > ms {
			return Fields{}, fmt.Errorf("%w: %d at offset %s", ErrUnderflow, ms, zone)
		}
		shifted = ms - shift
	} else {
		shifted = ms + uint64(zone.Minutes)*msPerMinute
	}

	days := shifted / msPerDay
	msOfDay := shifted % msPerDay

	// Walk forward from 1970; the remaining day count strictly decreases.
	year := 1970
	remaining := days
	for remaining >= uint64(datemath.DaysInYear(year)) {
		remaining -= uint64(datemath.DaysInYear(year))
		year++
	}

	leap := datemath.IsLeap(year)
	month := time.January
	for remaining >= uint64(datemath.DaysInMonth(month, leap)) {
		remaining -= uint64(datemath.DaysInMonth(month, leap))
		month++
	}

	return Fields{
		Year:        year,
		Month:       month,
		Day:         int(remaining) + 1,
		Hour:        int(msOfDay / msPerHour),
		Minute:      int(msOfDay % msPerHour / msPerMinute),
		Second:      int(msOfDay % msPerMinute / msPerSecond),
		Millisecond: int(msOfDay % msPerSecond),
		DayOfWeek:   datemath.Weekday(days),
		Zone:        zone,
	}, nil
}

// Instant converts the fields back to a count of milliseconds since the Unix
// epoch, undoing the offset shift applied by FromInstant.
//
// Instant performs no range validation. Its behavior is defined only for
// fields produced by FromInstant or otherwise known to be valid, and the
// fields themselves are the sole source of truth: no raw instant is cached.
func (f Fields) Instant() uint64 {
	days := datemath.DaysSinceEpoch(f.Year) +
		datemath.DaysBeforeMonth(f.Month, datemath.IsLeap(f.Year)) +
		uint64(f.Day-1)

	ms := days*msPerDay +
		uint64(f.Hour)*msPerHour +
		uint64(f.Minute)*msPerMinute +
		uint64(f.Second)*msPerSecond +
		uint64(f.Millisecond)

	// Invert the shift: a positive offset was added during decomposition
	// and is subtracted here, a negative offset the other way around.
	if f.Zone.Minutes < 0 {
		return ms + uint64(-f.Zone.Minutes)*msPerMinute
	}
	return ms - uint64(f.Zone.Minutes)*msPerMinute
}
