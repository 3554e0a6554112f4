// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package calendar provides conversions between calendar systems and the
// Julian Day Number together with the derived properties of dates, such as
// the day of the week, leap years and month grids, that are needed to
// display calendars.
//
// Every calendar system converts to and from the Julian Day Number (JDN),
// a continuous count of days that is used to convert between systems.
// Years are numbered astronomically, that is, year 0 is 1 BCE and
// year -1 is 2 BCE.
package calendar

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidDate is returned for a year, month and day that do not
	// form a valid date in the requested calendar system.
	ErrInvalidDate = errors.New("invalid date")
	// ErrOutOfRange is returned for dates or day counts outside of the
	// range supported by a calendar system.
	ErrOutOfRange = errors.New("out of range")
	// ErrUnsupportedSystem is returned for an unknown calendar system.
	ErrUnsupportedSystem = errors.New("unsupported calendar system")
	// ErrNoSuchMonth is returned when a leap month is requested for a year
	// that does not contain one. It wraps ErrInvalidDate.
	ErrNoSuchMonth = fmt.Errorf("no such leap month: %w", ErrInvalidDate)
)

// System identifies a calendar system. The set of systems is closed.
type System int

const (
	// Gregorian is the proleptic Gregorian calendar, ie. the Gregorian
	// rules applied to all dates including those before its introduction.
	Gregorian System = iota
	// Julian is the proleptic Julian calendar.
	Julian
	// Historical follows the Julian calendar up to 1582-10-04 and the
	// Gregorian calendar from 1582-10-15, the dates in between do not exist.
	Historical
	// Chinese is the traditional Chinese lunisolar calendar computed using
	// the modern astronomical rules for Beijing time (UTC+8). These rules
	// are applied to all years, including those before 1929 when
	// almanacs used Beijing local mean time.
	Chinese
)

const numSystems = 4

var systemNames = [numSystems]string{"gregorian", "julian", "historical", "chinese"}

var systemDescriptions = [numSystems]string{
	"The proleptic Gregorian calendar with a leap year every fourth year except for century years not divisible by 400. Dates before its introduction in 1582 are computed by extending the rules backwards.",
	"The proleptic Julian calendar with a leap year every fourth year, as introduced in 45 BCE and extended backwards to earlier dates.",
	"The calendar in historical use in Catholic countries: the Julian calendar up to Thursday 1582-10-04 followed immediately by the Gregorian calendar from Friday 1582-10-15. The ten days in between do not exist.",
	"The traditional Chinese lunisolar calendar. Months begin on the day of the new moon in Beijing and a leap month is inserted in years with 13 new moons between successive winter solstice months, following the modern astronomical rules. Supported for the years 1900 to 2100. Before 1929 published almanacs used Beijing local mean time rather than UTC+8, so a few months in that period begin a day earlier or later than computed here, as can months whose new moon falls within minutes of midnight, such as the tenth month of 2057.",
}

// Systems returns all of the supported calendar systems.
func Systems() []System {
	return []System{Gregorian, Julian, Historical, Chinese}
}

// Valid returns true if s is a supported calendar system.
func (s System) Valid() bool {
	return s >= 0 && s < numSystems
}

func (s System) String() string {
	if !s.Valid() {
		return fmt.Sprintf("System(%d)", int(s))
	}
	return systemNames[s]
}

// Description returns a description of the calendar system.
func (s System) Description() string {
	if !s.Valid() {
		return ""
	}
	return systemDescriptions[s]
}

// ParseSystem parses the name of a calendar system, any unambiguous prefix
// is accepted, in either lower or upper case.
func ParseSystem(val string) (System, error) {
	lc := strings.ToLower(strings.TrimSpace(val))
	if len(lc) > 0 {
		found := -1
		for i, n := range systemNames {
			if !strings.HasPrefix(n, lc) {
				continue
			}
			if found >= 0 {
				return 0, fmt.Errorf("ambiguous calendar system %q: %w", val, ErrUnsupportedSystem)
			}
			found = i
		}
		if found >= 0 {
			return System(found), nil
		}
	}
	return 0, fmt.Errorf("%q: %w", val, ErrUnsupportedSystem)
}

// MarshalText implements encoding.TextMarshaler.
func (s System) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%v: %w", s, ErrUnsupportedSystem)
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *System) UnmarshalText(text []byte) error {
	v, err := ParseSystem(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// calendarSystem is implemented by each supported calendar system.
// Months are numbered from 1 and the leap argument is only meaningful for
// calendars with intercalary months.
type calendarSystem interface {
	toLinear(year, month int, leap bool, day int) (JDN, error)
	fromLinear(n JDN) (Date, error)
	isLeapYear(year int) (bool, error)
	monthsInYear(year int) (int, error)
	// daysInMonth returns the number of days in a month.
	daysInMonth(year, month int, leap bool) (int, error)
	// lastDay returns the number of the last day of a month, which differs
	// from the number of days only when days are skipped.
	lastDay(year, month int, leap bool) (int, error)
	hasLeapMonth(year int) (int, error)
}

var systems = [numSystems]calendarSystem{
	Gregorian:  gregorian{},
	Julian:     julian{},
	Historical: historical{},
	Chinese:    chinese{},
}

func lookup(s System) (calendarSystem, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%v: %w", s, ErrUnsupportedSystem)
	}
	return systems[s], nil
}
