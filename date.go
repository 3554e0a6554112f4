// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import (
	"fmt"
	"time"
)

// Date represents a year, month and day in a specific calendar system.
// Leap is only used by calendars with intercalary months, ie. Chinese,
// to indicate the leap month that follows the month of the same number.
type Date struct {
	System System `json:"system" yaml:"system"`
	Year   int    `json:"year" yaml:"year"`
	Month  int    `json:"month" yaml:"month"`
	Day    int    `json:"day" yaml:"day"`
	Leap   bool   `json:"leap,omitempty" yaml:"leap,omitempty"`
}

// NewDate returns a Date for the specified calendar system.
func NewDate(system System, year, month, day int) Date {
	return Date{System: system, Year: year, Month: month, Day: day}
}

// String returns the date in ISO 8601 like format, ie. YYYY-MM-DD, with
// negative years prefixed by a minus sign. Chinese leap months are
// formatted as YYYY-LMM-DD.
func (d Date) String() string {
	y := fmt.Sprintf("%04d", d.Year)
	if d.Year < 0 {
		y = fmt.Sprintf("-%04d", -d.Year)
	}
	if d.Leap {
		return fmt.Sprintf("%s-L%02d-%02d", y, d.Month, d.Day)
	}
	return fmt.Sprintf("%s-%02d-%02d", y, d.Month, d.Day)
}

// Validate returns an error if d is not a valid date.
func (d Date) Validate() error {
	_, err := ToLinear(d)
	return err
}

// Compare returns -1, 0 or +1 depending on whether d is before, the same as
// or after o. Dates in different calendar systems are compared by their
// day numbers and invalid dates order before valid ones.
func (d Date) Compare(o Date) int {
	a, aerr := ToLinear(d)
	b, berr := ToLinear(o)
	switch {
	case aerr != nil && berr != nil:
		return 0
	case aerr != nil:
		return -1
	case berr != nil:
		return 1
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// ToLinear returns the Julian Day Number for d.
func ToLinear(d Date) (JDN, error) {
	cs, err := lookup(d.System)
	if err != nil {
		return 0, err
	}
	return cs.toLinear(d.Year, d.Month, d.Leap, d.Day)
}

// FromLinear returns the date in the specified calendar system for the
// Julian Day Number n.
func FromLinear(n JDN, system System) (Date, error) {
	cs, err := lookup(system)
	if err != nil {
		return Date{}, err
	}
	return cs.fromLinear(n)
}

// Convert converts d to the specified calendar system.
func Convert(d Date, to System) (Date, error) {
	n, err := ToLinear(d)
	if err != nil {
		return Date{}, err
	}
	return FromLinear(n, to)
}

// DayOfWeek returns the day of the week for d.
func DayOfWeek(d Date) (time.Weekday, error) {
	n, err := ToLinear(d)
	if err != nil {
		return 0, err
	}
	return n.Weekday(), nil
}

// IsLeapYear returns true if year is a leap year in the specified calendar,
// for the Chinese calendar a leap year is one with a leap month.
func IsLeapYear(system System, year int) (bool, error) {
	cs, err := lookup(system)
	if err != nil {
		return false, err
	}
	return cs.isLeapYear(year)
}

// DaysInMonth returns the number of days in the specified month. For the
// Chinese calendar this is the regular month with that number, use
// DaysInLeapMonth for a leap month.
func DaysInMonth(system System, year, month int) (int, error) {
	cs, err := lookup(system)
	if err != nil {
		return 0, err
	}
	return cs.daysInMonth(year, month, false)
}

// DaysInLeapMonth returns the number of days in the leap month that follows
// the specified month. It returns ErrNoSuchMonth if there is no such month.
func DaysInLeapMonth(system System, year, month int) (int, error) {
	cs, err := lookup(system)
	if err != nil {
		return 0, err
	}
	return cs.daysInMonth(year, month, true)
}

// LeapMonth returns the number of the month that is followed by a leap
// month in the specified year, or zero if there is none.
func LeapMonth(system System, year int) (int, error) {
	cs, err := lookup(system)
	if err != nil {
		return 0, err
	}
	return cs.hasLeapMonth(year)
}

// MonthsInYear returns the number of months, including any leap month,
// in the specified year.
func MonthsInYear(system System, year int) (int, error) {
	cs, err := lookup(system)
	if err != nil {
		return 0, err
	}
	return cs.monthsInYear(year)
}

func yearBounds(system System, year int) (first, last JDN, err error) {
	if system == Chinese {
		cy, err := NewChineseYear(year)
		if err != nil {
			return 0, 0, err
		}
		return cy.Start, cy.End(), nil
	}
	if first, err = ToLinear(NewDate(system, year, 1, 1)); err != nil {
		return
	}
	last, err = ToLinear(NewDate(system, year, 12, 31))
	return
}

// DaysInYear returns the number of days in the specified year.
func DaysInYear(system System, year int) (int, error) {
	first, last, err := yearBounds(system, year)
	if err != nil {
		return 0, err
	}
	return int(last-first) + 1, nil
}

// DayOfYear returns the ordinal day within its year of d, starting at 1.
func DayOfYear(d Date) (int, error) {
	n, err := ToLinear(d)
	if err != nil {
		return 0, err
	}
	first, _, err := yearBounds(d.System, d.Year)
	if err != nil {
		return 0, err
	}
	return int(n-first) + 1, nil
}

// FromDayOfYear returns the date of the ordinal day, starting at 1, within
// the specified year.
func FromDayOfYear(system System, year, ordinal int) (Date, error) {
	first, last, err := yearBounds(system, year)
	if err != nil {
		return Date{}, err
	}
	n := first + JDN(ordinal) - 1
	if ordinal < 1 || n > last {
		return Date{}, fmt.Errorf("day %d of year %d: %w", ordinal, year, ErrInvalidDate)
	}
	return FromLinear(n, system)
}

// AddDays returns the date that is n days after d, n may be negative.
func AddDays(d Date, n int) (Date, error) {
	j, err := ToLinear(d)
	if err != nil {
		return Date{}, err
	}
	return FromLinear(j+JDN(n), d.System)
}

// Next returns the day after d.
func Next(d Date) (Date, error) {
	return AddDays(d, 1)
}

// Prev returns the day before d.
func Prev(d Date) (Date, error) {
	return AddDays(d, -1)
}

// DaysBetween returns the number of days from a to b, which may be in
// different calendar systems. It is negative if b is before a.
func DaysBetween(a, b Date) (int64, error) {
	ja, err := ToLinear(a)
	if err != nil {
		return 0, err
	}
	jb, err := ToLinear(b)
	if err != nil {
		return 0, err
	}
	return int64(jb - ja), nil
}

// FromTime returns the date, in the specified calendar system, of the
// civil date of t in its location.
func FromTime(t time.Time, system System) (Date, error) {
	return FromLinear(JDNFromTime(t), system)
}

// Today returns the current date in the specified location and calendar.
func Today(loc *time.Location, system System) (Date, error) {
	now := time.Now()
	if loc != nil {
		now = now.In(loc)
	}
	return FromTime(now, system)
}

// Time returns the start of d in the specified location.
func (d Date) Time(loc *time.Location) (time.Time, error) {
	n, err := ToLinear(d)
	if err != nil {
		return time.Time{}, err
	}
	return n.Time(loc)
}
