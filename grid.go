// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import (
	"errors"
	"fmt"
	"iter"
	"time"
)

// Cell is a single day in a Grid. Cells that do not correspond to a day of
// the month, ie. those before the first or after the last day, have a
// zero Day.
type Cell struct {
	Day int `json:"day" yaml:"day"`
	JDN JDN `json:"jdn,omitempty" yaml:"jdn,omitempty"`
}

// Blank returns true if c does not represent a day.
func (c Cell) Blank() bool {
	return c.Day == 0
}

// Week is a row of seven cells starting with the grid's first weekday.
type Week [7]Cell

// Grid is the layout of a month as a sequence of weeks.
type Grid struct {
	System       System       `json:"system" yaml:"system"`
	Year         int          `json:"year" yaml:"year"`
	Month        int          `json:"month" yaml:"month"`
	Leap         bool         `json:"leap,omitempty" yaml:"leap,omitempty"`
	FirstWeekday time.Weekday `json:"first_weekday" yaml:"first_weekday"`
	Weeks        []Week       `json:"weeks" yaml:"weeks"`
}

// GridOption represents an option for MonthGrid and YearGrid.
type GridOption func(o *gridOptions)

type gridOptions struct {
	firstWeekday time.Weekday
	leap         bool
}

// FirstWeekday sets the day of the week for the first column of a grid,
// the default is Sunday.
func FirstWeekday(w time.Weekday) GridOption {
	return func(o *gridOptions) {
		o.firstWeekday = time.Weekday(floorMod(int64(w), 7))
	}
}

// LeapMonthGrid requests the grid for the leap month that follows the
// requested month in calendars with intercalary months.
func LeapMonthGrid() GridOption {
	return func(o *gridOptions) {
		o.leap = true
	}
}

// MonthGrid returns the layout of the specified month as weeks of seven
// days aligned by weekday. Days that do not exist, such as those skipped
// by the Historical calendar in October 1582, are omitted.
func MonthGrid(system System, year, month int, opts ...GridOption) (*Grid, error) {
	var o gridOptions
	for _, fn := range opts {
		fn(&o)
	}
	cs, err := lookup(system)
	if err != nil {
		return nil, err
	}
	last, err := cs.lastDay(year, month, o.leap)
	if err != nil {
		return nil, err
	}
	g := &Grid{
		System:       system,
		Year:         year,
		Month:        month,
		Leap:         o.leap,
		FirstWeekday: o.firstWeekday,
	}
	var (
		week Week
		col  = -1
	)
	for day := 1; day <= last; day++ {
		n, err := cs.toLinear(year, month, o.leap, day)
		if err != nil {
			if day > 1 && day < last && errors.Is(err, ErrInvalidDate) {
				continue
			}
			return nil, err
		}
		c := int(floorMod(int64(n.Weekday()-o.firstWeekday), 7))
		if col >= 0 && c <= col {
			g.Weeks = append(g.Weeks, week)
			week = Week{}
		}
		week[c] = Cell{Day: day, JDN: n}
		col = c
	}
	g.Weeks = append(g.Weeks, week)
	return g, nil
}

// YearGrid returns the grids for all of the months of the specified year,
// including any leap month.
func YearGrid(system System, year int, opts ...GridOption) ([]*Grid, error) {
	leap, err := LeapMonth(system, year)
	if err != nil {
		return nil, err
	}
	var grids []*Grid
	for month := 1; month <= 12; month++ {
		g, err := MonthGrid(system, year, month, opts...)
		if err != nil {
			return nil, err
		}
		grids = append(grids, g)
		if month == leap {
			g, err := MonthGrid(system, year, month, append(opts, LeapMonthGrid())...)
			if err != nil {
				return nil, err
			}
			grids = append(grids, g)
		}
	}
	return grids, nil
}

// Weekdays returns the days of the week in column order.
func (g *Grid) Weekdays() [7]time.Weekday {
	var wd [7]time.Weekday
	for i := range wd {
		wd[i] = time.Weekday((int(g.FirstWeekday) + i) % 7)
	}
	return wd
}

// Days returns an iterator over the days in the grid.
func (g *Grid) Days() iter.Seq[Date] {
	return func(yield func(Date) bool) {
		for _, w := range g.Weeks {
			for _, c := range w {
				if c.Blank() {
					continue
				}
				if !yield(Date{System: g.System, Year: g.Year, Month: g.Month, Leap: g.Leap, Day: c.Day}) {
					return
				}
			}
		}
	}
}

// Title returns the English title for the grid, eg. "February 2024".
func (g *Grid) Title() string {
	return fmt.Sprintf("%s %d", MonthName(g.System, g.Month, g.Leap), g.Year)
}
