// Package tzoffset represents fixed offsets from UTC.
//
// An offset is a signed number of minutes by which local time differs from
// UTC. Unlike a full timezone it never varies with the instant it is applied
// to: there is no daylight saving calendar and no historical transitions.
package tzoffset

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrInvalidFormat means the offset string has an invalid length or
	// non-numeric components.
	ErrInvalidFormat = errors.New("invalid offset format")
	// ErrInvalidTime means the parsed hour or minute is out of range.
	ErrInvalidTime = errors.New("invalid offset time")
)

// Offset is a fixed offset from UTC with a short display name.
// Offsets are immutable values and safe to share between goroutines.
type Offset struct {
	// Minutes is the signed offset from UTC in minutes.
	Minutes int
	// Name is a short text label, e.g. "UTC" or "SGT". When an offset is
	// parsed without an explicit name, Name holds the original input string.
	Name string
}

// Canonical zero-offset constants.
var (
	UTC = Offset{Minutes: 0, Name: "UTC"}
	GMT = Offset{Minutes: 0, Name: "GMT"}
)

// FromString parses a compact signed-offset string. Valid shapes are
// [+|-]H[H][:]MM, i.e. "HHMM", "HMM", "H:MM" and "HH:MM" with an optional
// leading sign; absence of a sign means east of UTC. The display name
// defaults to the input string.
//
// It returns ErrInvalidFormat for strings of invalid length or with
// non-numeric components and ErrInvalidTime when the hour exceeds 23 or the
// minute exceeds 59.
func FromString(s string) (Offset, error) {
	return FromStringNamed(s, s)
}

// FromStringNamed parses a compact signed-offset string like FromString and
// attaches an explicit display name.
func FromStringNamed(s, name string) (Offset, error) {
	sign := 1
	rest := s
	if len(s) > 0 {
		switch s[0] {
		case '+':
			rest = s[1:]
		case '-':
			sign = -1
			rest = s[1:]
		}
	}
	// After the optional sign the shortest shape is "HMM" and the longest
	// is "HH:MM".
	if len(rest) < 3 || len(rest) > 5 {
		return Offset{}, fmt.Errorf("%w: %q has invalid length", ErrInvalidFormat, s)
	}

	// ParseUint permits no sign, so a stray second sign fails here.
	var hour, minute uint64
	if h, m, found := strings.Cut(rest, ":"); found {
		var err error
		if hour, err = strconv.ParseUint(h, 10, 32); err != nil {
			return Offset{}, fmt.Errorf("%w: hour %q: %v", ErrInvalidFormat, h, err)
		}
		if minute, err = strconv.ParseUint(m, 10, 32); err != nil {
			return Offset{}, fmt.Errorf("%w: minute %q: %v", ErrInvalidFormat, m, err)
		}
	} else {
		v, err := strconv.ParseUint(rest, 10, 32)
		if err != nil {
			return Offset{}, fmt.Errorf("%w: %q: %v", ErrInvalidFormat, rest, err)
		}
		hour, minute = v/100, v%100
	}

	if hour > 23 || minute > 59 {
		return Offset{}, fmt.Errorf("%w: %02d:%02d", ErrInvalidTime, hour, minute)
	}

	return Offset{Minutes: sign * int(hour*60+minute), Name: name}, nil
}

// String renders the offset in the canonical ISO-8601-style form "±HH:MM"
// with an explicit sign and zero-padded fields. The rendered form need not
// match the string the offset was parsed from, but it decodes to the same
// minute offset.
func (o Offset) String() string {
	m := o.Minutes
	sign := "+"
	if m < 0 {
		sign = "-"
		m = -m
	}
	return fmt.Sprintf("%s%02d:%02d", sign, m/60, m%60)
}
