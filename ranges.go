// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import (
	"fmt"
	"iter"
	"slices"
	"strings"
	"time"
)

// DateRange represents an inclusive range of dates in a single calendar
// system.
type DateRange struct {
	From Date
	To   Date
}

// NewDateRange returns a DateRange for the from/to dates, which must be in
// the same calendar system. If the from date is later than the to date
// then they are swapped.
func NewDateRange(from, to Date) (DateRange, error) {
	if from.System != to.System {
		return DateRange{}, fmt.Errorf("date range %v:%v spans %v and %v calendars", from, to, from.System, to.System)
	}
	f, err := ToLinear(from)
	if err != nil {
		return DateRange{}, err
	}
	t, err := ToLinear(to)
	if err != nil {
		return DateRange{}, err
	}
	if f > t {
		from, to = to, from
	}
	return DateRange{From: from, To: to}, nil
}

func (dr DateRange) String() string {
	return fmt.Sprintf("%v:%v", dr.From, dr.To)
}

// Days returns the number of days in the range.
func (dr DateRange) Days() int64 {
	n, err := DaysBetween(dr.From, dr.To)
	if err != nil {
		return 0
	}
	return n + 1
}

// Contains returns true if d, which may be in any calendar system, falls
// within the range.
func (dr DateRange) Contains(d Date) bool {
	return dr.From.Compare(d) <= 0 && d.Compare(dr.To) <= 0
}

// Dates returns an iterator that yields each Date in the range.
func (dr DateRange) Dates() iter.Seq[Date] {
	return func(yield func(Date) bool) {
		from, err := ToLinear(dr.From)
		if err != nil {
			return
		}
		to, err := ToLinear(dr.To)
		if err != nil {
			return
		}
		for n := from; n <= to; n++ {
			d, err := FromLinear(n, dr.From.System)
			if err != nil || !yield(d) {
				return
			}
		}
	}
}

// ParseDateRange parses a range of the form 'from:to' where from and to are
// in any of the formats supported by ParseDate.
func ParseDateRange(system System, val string) (DateRange, error) {
	parts := strings.Split(val, ":")
	if len(parts) != 2 {
		return DateRange{}, fmt.Errorf("invalid date range %q, expected <from>:<to>", val)
	}
	from, err := ParseDate(system, parts[0])
	if err != nil {
		return DateRange{}, err
	}
	to, err := ParseDate(system, parts[1])
	if err != nil {
		return DateRange{}, err
	}
	return NewDateRange(from, to)
}

// DateList is a list of dates.
type DateList []Date

func (dl DateList) String() string {
	var out strings.Builder
	for i, d := range dl {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(d.String())
	}
	return out.String()
}

// Contains returns true if the list contains d, dates in different
// calendar systems are compared by their day numbers.
func (dl DateList) Contains(d Date) bool {
	return slices.ContainsFunc(dl, func(o Date) bool {
		return o.Compare(d) == 0 && o.Validate() == nil
	})
}

// Constraints represents constraints on date values such as weekends or
// custom dates to exclude. Custom dates take precedence over weekdays and
// weekends.
type Constraints struct {
	Weekdays bool     // If true, include weekdays
	Weekends bool     // If true, include weekends
	Custom   DateList // If non-empty, exclude these dates
}

func (dc Constraints) String() string {
	var out strings.Builder
	if len(dc.Custom) > 0 {
		out.WriteString("excluding custom dates: ")
		out.WriteString(dc.Custom.String())
		out.WriteString(": ")
	}
	switch {
	case dc.Weekdays && dc.Weekends:
		out.WriteString("everyday")
	case dc.Weekdays:
		out.WriteString("weekdays only")
	case dc.Weekends:
		out.WriteString("weekends only")
	}
	return out.String()
}

// Include returns true if the given date satisfies the constraints.
// Custom dates are evaluated before weekdays and weekends.
// An empty set Constraints will return true, ie. include all dates.
func (dc Constraints) Include(d Date) bool {
	if dc.Custom.Contains(d) {
		return false
	}
	wd, err := DayOfWeek(d)
	if err != nil {
		return false
	}
	switch {
	case dc.Weekdays && dc.Weekends:
		return true
	case dc.Weekdays:
		return wd >= time.Monday && wd <= time.Friday
	case dc.Weekends:
		return wd == time.Sunday || wd == time.Saturday
	}
	return true
}

// Empty returns true if no constraints are set.
func (dc Constraints) Empty() bool {
	return !dc.Weekdays && !dc.Weekends && len(dc.Custom) == 0
}

// Filter returns an iterator over the dates in the supplied sequence that
// satisfy the constraints.
func (dc Constraints) Filter(dates iter.Seq[Date]) iter.Seq[Date] {
	return func(yield func(Date) bool) {
		for d := range dates {
			if dc.Include(d) && !yield(d) {
				return
			}
		}
	}
}
