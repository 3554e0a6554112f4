// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const expectedDateFormats = "2006-01-02, 2006-L01-02, 01/02/2006, Jan-02-2006 or 02 Jan 2006"

const expectedMonthFormats = "2006-01, 2006-L01, 01/2006, 01 2006, Jan-2006 or Jan 2006"

var (
	isoDateRe     = regexp.MustCompile(`^(-?\d+)-([Ll]?)(\d{1,2})-(\d{1,2})$`)
	numericDateRe = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(-?\d+)$`)
	namedDateRe   = regexp.MustCompile(`^([A-Za-z]+)-(\d{1,2})-(-?\d+)$`)
	dayFirstRe    = regexp.MustCompile(`^(\d{1,2})\s+([A-Za-z]+)\s+(-?\d+)$`)

	isoMonthRe     = regexp.MustCompile(`^(-?\d+)-([Ll]?)(\d{1,2})$`)
	numericMonthRe = regexp.MustCompile(`^(\d{1,2})/(-?\d+)$`)
	namedMonthRe   = regexp.MustCompile(`^([A-Za-z]+|\d{1,2})[-\s]+(-?\d+)$`)
)

func atoi(vals ...string) ([]int, error) {
	r := make([]int, len(vals))
	for i, v := range vals {
		n, err := strconv.Atoi(v)
		if errors.Is(err, strconv.ErrRange) {
			return nil, fmt.Errorf("%v: %w", v, ErrOutOfRange)
		}
		if err != nil {
			return nil, err
		}
		r[i] = n
	}
	return r, nil
}

// ParseDate parses a date for the specified calendar system in one of the
// formats 2006-01-02, 01/02/2006, Jan-02-2006 or 02 Jan 2006. Years may
// be negative. A Chinese leap month is written as 2023-L02-01. The parsed
// date is validated and ErrInvalidDate returned if it does not exist.
func ParseDate(system System, val string) (Date, error) {
	val = strings.TrimSpace(val)
	var (
		year, month, day int
		leap             bool
	)
	switch {
	case isoDateRe.MatchString(val):
		m := isoDateRe.FindStringSubmatch(val)
		n, err := atoi(m[1], m[3], m[4])
		if err != nil {
			return Date{}, fmt.Errorf("invalid date %q: %w", val, err)
		}
		year, month, day, leap = n[0], n[1], n[2], len(m[2]) > 0
	case numericDateRe.MatchString(val):
		m := numericDateRe.FindStringSubmatch(val)
		n, err := atoi(m[1], m[2], m[3])
		if err != nil {
			return Date{}, fmt.Errorf("invalid date %q: %w", val, err)
		}
		month, day, year = n[0], n[1], n[2]
	case namedDateRe.MatchString(val), dayFirstRe.MatchString(val):
		var name, d, y string
		if m := namedDateRe.FindStringSubmatch(val); m != nil {
			name, d, y = m[1], m[2], m[3]
		} else {
			m := dayFirstRe.FindStringSubmatch(val)
			d, name, y = m[1], m[2], m[3]
		}
		mon, err := ParseMonth(name)
		if err != nil {
			return Date{}, fmt.Errorf("invalid date %q: %w", val, err)
		}
		n, err := atoi(d, y)
		if err != nil {
			return Date{}, fmt.Errorf("invalid date %q: %w", val, err)
		}
		month, day, year = mon, n[0], n[1]
	default:
		return Date{}, fmt.Errorf("invalid date %q, expected %s: %w", val, expectedDateFormats, ErrInvalidDate)
	}
	d := Date{System: system, Year: year, Month: month, Day: day, Leap: leap}
	if err := d.Validate(); err != nil {
		return Date{}, err
	}
	return d, nil
}

// YearMonth identifies a month of a year, Leap is used for Chinese
// leap months only.
type YearMonth struct {
	Year  int
	Month int
	Leap  bool
}

func (ym YearMonth) String() string {
	d := Date{Year: ym.Year, Month: ym.Month, Leap: ym.Leap, Day: 1}.String()
	return d[:len(d)-3]
}

// ParseYearMonth parses a year and month in one of the formats 2006-01,
// 01/2006, 01 2006, Jan-2006 or Jan 2006. A Chinese leap month is written as
// 2023-L02. The month is not validated against any calendar system.
func ParseYearMonth(val string) (YearMonth, error) {
	val = strings.TrimSpace(val)
	switch {
	case isoMonthRe.MatchString(val):
		m := isoMonthRe.FindStringSubmatch(val)
		n, err := atoi(m[1], m[3])
		if err != nil {
			return YearMonth{}, fmt.Errorf("invalid month %q: %w", val, err)
		}
		return newYearMonth(val, n[0], n[1], len(m[2]) > 0)
	case numericMonthRe.MatchString(val), namedMonthRe.MatchString(val):
		m := numericMonthRe.FindStringSubmatch(val)
		if m == nil {
			m = namedMonthRe.FindStringSubmatch(val)
		}
		month, err := ParseAnyMonth(m[1])
		if err != nil {
			return YearMonth{}, fmt.Errorf("invalid month %q: %w", val, ErrInvalidDate)
		}
		n, err := atoi(m[2])
		if err != nil {
			return YearMonth{}, fmt.Errorf("invalid month %q: %w", val, err)
		}
		return newYearMonth(val, n[0], month, false)
	}
	return YearMonth{}, fmt.Errorf("invalid month %q, expected %s: %w", val, expectedMonthFormats, ErrInvalidDate)
}

func newYearMonth(val string, year, month int, leap bool) (YearMonth, error) {
	if month < 1 || month > 12 {
		return YearMonth{}, fmt.Errorf("invalid month %q: %w", val, ErrInvalidDate)
	}
	return YearMonth{Year: year, Month: month, Leap: leap}, nil
}
