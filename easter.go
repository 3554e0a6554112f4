// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import (
	"fmt"
)

// Easter returns the date of Easter Sunday in the specified year and
// calendar system. The Gregorian computus is used for the Gregorian
// calendar, the Julian computus for the Julian calendar and for the
// Historical calendar before 1583. Easter is not defined for the Chinese
// calendar.
func Easter(system System, year int) (Date, error) {
	if year < 1 || year > MaxYear {
		return Date{}, fmt.Errorf("easter for year %d: %w", year, ErrOutOfRange)
	}
	var month, day int
	switch system {
	case Gregorian:
		month, day = gregorianEaster(year)
	case Julian:
		month, day = julianEaster(year)
	case Historical:
		if year <= reformYear {
			month, day = julianEaster(year)
		} else {
			month, day = gregorianEaster(year)
		}
	case Chinese:
		return Date{}, fmt.Errorf("easter is not defined for the %v calendar: %w", system, ErrUnsupportedSystem)
	default:
		return Date{}, fmt.Errorf("%v: %w", system, ErrUnsupportedSystem)
	}
	return NewDate(system, year, month, day), nil
}

// gregorianEaster uses the Meeus/Jones/Butcher algorithm.
func gregorianEaster(year int) (month, day int) {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month = (h + l - 7*m + 114) / 31
	day = ((h + l - 7*m + 114) % 31) + 1
	return
}

func julianEaster(year int) (month, day int) {
	a := year % 4
	b := year % 7
	c := year % 19
	d := (19*c + 15) % 30
	e := (2*a + 4*b - d + 34) % 7
	month = (d + e + 114) / 31
	day = ((d + e + 114) % 31) + 1
	return
}

// Feast is a named day whose date depends on that of Easter.
type Feast struct {
	Name string `json:"name" yaml:"name"`
	Date Date   `json:"date" yaml:"date"`
}

var movableFeasts = []struct {
	name   string
	offset int
}{
	{"Ash Wednesday", -46},
	{"Palm Sunday", -7},
	{"Good Friday", -2},
	{"Easter Sunday", 0},
	{"Ascension", 39},
	{"Pentecost", 49},
}

// MovableFeasts returns the principal feasts that are determined by the
// date of Easter in the specified year and calendar system.
func MovableFeasts(system System, year int) ([]Feast, error) {
	easter, err := Easter(system, year)
	if err != nil {
		return nil, err
	}
	feasts := make([]Feast, 0, len(movableFeasts))
	for _, f := range movableFeasts {
		d, err := AddDays(easter, f.offset)
		if err != nil {
			return nil, err
		}
		feasts = append(feasts, Feast{Name: f.name, Date: d})
	}
	return feasts, nil
}
