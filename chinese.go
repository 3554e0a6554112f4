// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import (
	"fmt"
	"slices"
	"sync"
	"time"

	"cloudeng.io/calendar/astro"
)

const (
	// MinChineseYear and MaxChineseYear bound the years supported by the
	// Chinese calendar.
	MinChineseYear = 1900
	MaxChineseYear = 2100
)

// ChinaStandardTime is the offset from UTC used for the Chinese calendar.
const ChinaStandardTime = 8 * time.Hour

// ChineseYear describes the months of a year in the Chinese calendar.
type ChineseYear struct {
	Year int
	// Start is the first day of the first month, ie. new year's day.
	Start JDN
	// MonthLengths contains the number of days in each month, in order,
	// including the leap month if there is one.
	MonthLengths []int
	// LeapMonth is the number of the month that is followed by a leap
	// month, or zero if there is no leap month in this year.
	LeapMonth int
}

// sui is the period from the start of the 11th month of one year, the month
// containing the winter solstice, to the start of the 11th month of the
// following year.
type sui struct {
	start   JDN
	lengths []int
	leap    int // index of the leap month, -1 if none.
}

func chineseDay(jd float64) JDN {
	return JDNFromJulianDay(jd, ChinaStandardTime)
}

func winterSolsticeDay(gregorianYear int) JDN {
	return chineseDay(astro.DecemberSolstice(gregorianYear))
}

// lunationOnOrBefore returns the lunation number of the new moon that
// falls on or before the given day.
func lunationOnOrBefore(day JDN) float64 {
	k, _ := astro.NewMoonBefore((day+1).Midnight(ChinaStandardTime) - 1e-6)
	return k
}

func hasMajorTerm(from, to JDN) bool {
	return astro.HasMajorTermInRange(
		astro.SunLongitudeUT(from.Midnight(ChinaStandardTime)),
		astro.SunLongitudeUT(to.Midnight(ChinaStandardTime)))
}

func newSui(gregorianYear int) sui {
	k1 := lunationOnOrBefore(winterSolsticeDay(gregorianYear - 1))
	k2 := lunationOnOrBefore(winterSolsticeDay(gregorianYear))
	n := int(k2 - k1)
	starts := make([]JDN, n+1)
	for i := range starts {
		starts[i] = chineseDay(astro.NewMoonUT(k1 + float64(i)))
	}
	s := sui{start: starts[0], lengths: make([]int, n), leap: -1}
	for i := range n {
		s.lengths[i] = int(starts[i+1] - starts[i])
	}
	if n == 13 {
		for i := range n {
			if !hasMajorTerm(starts[i], starts[i+1]) {
				s.leap = i
				break
			}
		}
	}
	return s
}

func computeChineseYear(year int) (ChineseYear, error) {
	cur, next := newSui(year), newSui(year+1)
	// The first two months of a sui are the 11th and 12th months of the
	// previous year, three if either of them is followed by a leap month.
	off1, leapMonth := 2, 0
	if cur.leap >= 0 {
		if cur.leap <= 2 {
			off1 = 3
		} else {
			leapMonth = cur.leap - 2
		}
	}
	off2 := 2
	if next.leap >= 0 && next.leap <= 2 {
		if leapMonth != 0 {
			return ChineseYear{}, fmt.Errorf("chinese year %d has two leap months: %w", year, ErrOutOfRange)
		}
		off2 = 3
		leapMonth = next.leap + 10
	}
	cy := ChineseYear{
		Year:      year,
		Start:     cur.start,
		LeapMonth: leapMonth,
	}
	for _, l := range cur.lengths[:off1] {
		cy.Start += JDN(l)
	}
	cy.MonthLengths = append(cy.MonthLengths, cur.lengths[off1:]...)
	cy.MonthLengths = append(cy.MonthLengths, next.lengths[:off2]...)
	return cy, nil
}

// chineseYears caches computed years, keyed by year. The cached values
// are shared and must not be modified.
var chineseYears sync.Map

func cachedChineseYear(year int) (ChineseYear, error) {
	if v, ok := chineseYears.Load(year); ok {
		return v.(ChineseYear), nil
	}
	cy, err := computeChineseYear(year)
	if err != nil {
		return ChineseYear{}, err
	}
	v, _ := chineseYears.LoadOrStore(year, cy)
	return v.(ChineseYear), nil
}

func chineseYearInRange(year int) (ChineseYear, error) {
	if year < MinChineseYear || year > MaxChineseYear {
		return ChineseYear{}, fmt.Errorf("chinese year %d: %w", year, ErrOutOfRange)
	}
	return cachedChineseYear(year)
}

// NewChineseYear computes the months of the specified year of the Chinese
// calendar.
func NewChineseYear(year int) (ChineseYear, error) {
	cy, err := chineseYearInRange(year)
	if err != nil {
		return ChineseYear{}, err
	}
	cy.MonthLengths = slices.Clone(cy.MonthLengths)
	return cy, nil
}

var chineseBounds = sync.OnceValues(func() (JDN, JDN) {
	first, _ := cachedChineseYear(MinChineseYear)
	next, _ := cachedChineseYear(MaxChineseYear + 1)
	return first.Start, next.Start - 1
})

// Days returns the number of days in the year.
func (cy ChineseYear) Days() int {
	n := 0
	for _, l := range cy.MonthLengths {
		n += l
	}
	return n
}

// End returns the last day of the year.
func (cy ChineseYear) End() JDN {
	return cy.Start + JDN(cy.Days()) - 1
}

// Months returns the number of months in the year, 12 or 13.
func (cy ChineseYear) Months() int {
	return len(cy.MonthLengths)
}

func (cy ChineseYear) index(month int, leap bool) (int, error) {
	if month < 1 || month > 12 {
		return 0, fmt.Errorf("chinese month %d: %w", month, ErrInvalidDate)
	}
	if leap {
		if cy.LeapMonth == 0 || month != cy.LeapMonth {
			return 0, fmt.Errorf("chinese year %d, month %d: %w", cy.Year, month, ErrNoSuchMonth)
		}
		return month, nil
	}
	if cy.LeapMonth != 0 && month > cy.LeapMonth {
		return month, nil
	}
	return month - 1, nil
}

func (cy ChineseYear) monthAt(idx int) (int, bool) {
	switch {
	case cy.LeapMonth == 0 || idx < cy.LeapMonth:
		return idx + 1, false
	case idx == cy.LeapMonth:
		return cy.LeapMonth, true
	default:
		return idx, false
	}
}

func (cy ChineseYear) monthStart(idx int) JDN {
	n := cy.Start
	for _, l := range cy.MonthLengths[:idx] {
		n += JDN(l)
	}
	return n
}

// MonthStart returns the first day of the specified month.
func (cy ChineseYear) MonthStart(month int, leap bool) (JDN, error) {
	idx, err := cy.index(month, leap)
	if err != nil {
		return 0, err
	}
	return cy.monthStart(idx), nil
}

// DaysInMonth returns the number of days, 29 or 30, in the specified month.
func (cy ChineseYear) DaysInMonth(month int, leap bool) (int, error) {
	idx, err := cy.index(month, leap)
	if err != nil {
		return 0, err
	}
	return cy.MonthLengths[idx], nil
}

// StemBranch returns the sexagenary name of the year.
func (cy ChineseYear) StemBranch() StemBranch {
	return YearStemBranch(cy.Year)
}

type chinese struct{}

func (chinese) year(year int) (ChineseYear, error) {
	return chineseYearInRange(year)
}

func (c chinese) toLinear(year, month int, leap bool, day int) (JDN, error) {
	cy, err := c.year(year)
	if err != nil {
		return 0, err
	}
	idx, err := cy.index(month, leap)
	if err != nil {
		return 0, err
	}
	if day < 1 || day > cy.MonthLengths[idx] {
		return 0, fmt.Errorf("chinese date %v: %w", Date{System: Chinese, Year: year, Month: month, Leap: leap, Day: day}, ErrInvalidDate)
	}
	return cy.monthStart(idx) + JDN(day-1), nil
}

func (chinese) fromLinear(n JDN) (Date, error) {
	lower, upper := chineseBounds()
	if n < lower || n > upper {
		return Date{}, fmt.Errorf("day %d: %w", n, ErrOutOfRange)
	}
	year, _, _ := jdnToGregorian(n)
	year = min(year, MaxChineseYear)
	cy, err := cachedChineseYear(year)
	if err != nil {
		return Date{}, err
	}
	if n < cy.Start {
		if cy, err = cachedChineseYear(year - 1); err != nil {
			return Date{}, err
		}
	}
	start := cy.Start
	for idx, l := range cy.MonthLengths {
		if n < start+JDN(l) {
			month, leap := cy.monthAt(idx)
			return Date{System: Chinese, Year: cy.Year, Month: month, Leap: leap, Day: int(n-start) + 1}, nil
		}
		start += JDN(l)
	}
	return Date{}, fmt.Errorf("day %d: %w", n, ErrOutOfRange)
}

func (c chinese) isLeapYear(year int) (bool, error) {
	cy, err := c.year(year)
	if err != nil {
		return false, err
	}
	return cy.LeapMonth != 0, nil
}

func (c chinese) monthsInYear(year int) (int, error) {
	cy, err := c.year(year)
	if err != nil {
		return 0, err
	}
	return cy.Months(), nil
}

func (c chinese) daysInMonth(year, month int, leap bool) (int, error) {
	cy, err := c.year(year)
	if err != nil {
		return 0, err
	}
	return cy.DaysInMonth(month, leap)
}

func (c chinese) lastDay(year, month int, leap bool) (int, error) {
	return c.daysInMonth(year, month, leap)
}

func (c chinese) hasLeapMonth(year int) (int, error) {
	cy, err := c.year(year)
	if err != nil {
		return 0, err
	}
	return cy.LeapMonth, nil
}
