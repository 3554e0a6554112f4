// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import (
	"fmt"
	"time"
)

// JDN is a Julian Day Number, the count of days since Monday, 1 January
// 4713 BCE in the proleptic Julian calendar (JDN 0). Each JDN identifies
// the civil day that begins at the preceding local midnight.
type JDN int64

// UnixEpoch is the JDN of 1970-01-01.
const UnixEpoch JDN = 2440588

// Weekday returns the day of the week for n.
func (n JDN) Weekday() time.Weekday {
	// JDN 0 was a Monday.
	return time.Weekday(floorMod(int64(n)+1, 7))
}

// Midnight returns the Julian Day, in UT, of the start of day n in the
// timezone with the given offset from UTC.
func (n JDN) Midnight(offset time.Duration) float64 {
	return float64(n) - 0.5 - offset.Hours()/24
}

// JDNFromJulianDay returns the day number of the local day, for the
// timezone with the given offset from UTC, containing the instant jd (UT).
func JDNFromJulianDay(jd float64, offset time.Duration) JDN {
	return JDN(floor(jd + 0.5 + offset.Hours()/24))
}

// JDNFromTime returns the day number of the civil date of t in its location.
func JDNFromTime(t time.Time) JDN {
	_, offset := t.Zone()
	secs := t.Unix() + int64(offset)
	return UnixEpoch + JDN(floorDiv(secs, 86400))
}

// Time returns the time of the start of day n in the specified location,
// which defaults to UTC. It returns ErrOutOfRange for days outside of the
// range of the Gregorian calendar.
func (n JDN) Time(loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	d, err := gregorian{}.fromLinear(n)
	if err != nil {
		return time.Time{}, fmt.Errorf("time for day %d: %w", n, err)
	}
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, loc), nil
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int64) int64 {
	r := a % b
	if r != 0 && ((r < 0) != (b < 0)) {
		r += b
	}
	return r
}

func floor(f float64) int64 {
	i := int64(f)
	if float64(i) > f {
		i--
	}
	return i
}
