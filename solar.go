// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import (
	"fmt"
)

const (
	// MinYear and MaxYear bound the years supported by the Gregorian,
	// Julian and Historical calendars.
	MinYear = -5_000_000
	MaxYear = 5_000_000
)

// GregorianReform is the first day of the Gregorian calendar, 1582-10-15,
// as used by the Historical calendar.
const GregorianReform JDN = 2299161

var (
	daysInMonthCommon = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
	daysInMonthLeap   = [12]int{31, 29, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

	minGregorian = gregorianToJDN(MinYear, 1, 1)
	maxGregorian = gregorianToJDN(MaxYear, 12, 31)
	minJulian    = julianToJDN(MinYear, 1, 1)
	maxJulian    = julianToJDN(MaxYear, 12, 31)
)

func isGregorianLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

func isJulianLeap(year int) bool {
	return year%4 == 0
}

func checkYear(year int) error {
	if year < MinYear || year > MaxYear {
		return fmt.Errorf("year %d: %w", year, ErrOutOfRange)
	}
	return nil
}

func checkYearMonth(year, month int, leap bool) error {
	if err := checkYear(year); err != nil {
		return err
	}
	if month < 1 || month > 12 || leap {
		return fmt.Errorf("%04d-%02d: %w", year, month, ErrInvalidDate)
	}
	return nil
}

func checkDate(year, month int, leap bool, day int, isLeap func(int) bool) error {
	if err := checkYearMonth(year, month, leap); err != nil {
		return err
	}
	days := daysInMonthCommon
	if isLeap(year) {
		days = daysInMonthLeap
	}
	if day < 1 || day > days[month-1] {
		return fmt.Errorf("%04d-%02d-%02d: %w", year, month, day, ErrInvalidDate)
	}
	return nil
}

// gregorianToJDN and julianToJDN use the algorithm of Fliegel and Van
// Flandern with floor division so that they hold for negative years.
func gregorianToJDN(year, month, day int) JDN {
	a := floorDiv(int64(14-month), 12)
	y := int64(year) + 4800 - a
	m := int64(month) + 12*a - 3
	return JDN(int64(day) + (153*m+2)/5 + 365*y +
		floorDiv(y, 4) - floorDiv(y, 100) + floorDiv(y, 400) - 32045)
}

func julianToJDN(year, month, day int) JDN {
	a := floorDiv(int64(14-month), 12)
	y := int64(year) + 4800 - a
	m := int64(month) + 12*a - 3
	return JDN(int64(day) + (153*m+2)/5 + 365*y + floorDiv(y, 4) - 32083)
}

func jdnToGregorian(n JDN) (year, month, day int) {
	a := int64(n) + 32044
	b := floorDiv(4*a+3, 146097)
	c := a - floorDiv(146097*b, 4)
	return monthDay(100*b, c)
}

func jdnToJulian(n JDN) (year, month, day int) {
	return monthDay(0, int64(n)+32082)
}

func monthDay(century, c int64) (year, month, day int) {
	d := floorDiv(4*c+3, 1461)
	e := c - floorDiv(1461*d, 4)
	m := floorDiv(5*e+2, 153)
	day = int(e - floorDiv(153*m+2, 5) + 1)
	month = int(m + 3 - 12*floorDiv(m, 10))
	year = int(century + d - 4800 + floorDiv(m, 10))
	return
}

type gregorian struct{}

func (gregorian) toLinear(year, month int, leap bool, day int) (JDN, error) {
	if err := checkDate(year, month, leap, day, isGregorianLeap); err != nil {
		return 0, err
	}
	return gregorianToJDN(year, month, day), nil
}

func (gregorian) fromLinear(n JDN) (Date, error) {
	if n < minGregorian || n > maxGregorian {
		return Date{}, fmt.Errorf("day %d: %w", n, ErrOutOfRange)
	}
	y, m, d := jdnToGregorian(n)
	return Date{System: Gregorian, Year: y, Month: m, Day: d}, nil
}

func (gregorian) isLeapYear(year int) (bool, error) {
	if err := checkYear(year); err != nil {
		return false, err
	}
	return isGregorianLeap(year), nil
}

func (gregorian) monthsInYear(year int) (int, error) {
	return 12, checkYear(year)
}

func (g gregorian) daysInMonth(year, month int, leap bool) (int, error) {
	if err := checkYearMonth(year, month, leap); err != nil {
		return 0, err
	}
	if isGregorianLeap(year) {
		return daysInMonthLeap[month-1], nil
	}
	return daysInMonthCommon[month-1], nil
}

func (g gregorian) lastDay(year, month int, leap bool) (int, error) {
	return g.daysInMonth(year, month, leap)
}

func (gregorian) hasLeapMonth(year int) (int, error) {
	return 0, checkYear(year)
}

type julian struct{}

func (julian) toLinear(year, month int, leap bool, day int) (JDN, error) {
	if err := checkDate(year, month, leap, day, isJulianLeap); err != nil {
		return 0, err
	}
	return julianToJDN(year, month, day), nil
}

func (julian) fromLinear(n JDN) (Date, error) {
	if n < minJulian || n > maxJulian {
		return Date{}, fmt.Errorf("day %d: %w", n, ErrOutOfRange)
	}
	y, m, d := jdnToJulian(n)
	return Date{System: Julian, Year: y, Month: m, Day: d}, nil
}

func (julian) isLeapYear(year int) (bool, error) {
	if err := checkYear(year); err != nil {
		return false, err
	}
	return isJulianLeap(year), nil
}

func (julian) monthsInYear(year int) (int, error) {
	return 12, checkYear(year)
}

func (julian) daysInMonth(year, month int, leap bool) (int, error) {
	if err := checkYearMonth(year, month, leap); err != nil {
		return 0, err
	}
	if isJulianLeap(year) {
		return daysInMonthLeap[month-1], nil
	}
	return daysInMonthCommon[month-1], nil
}

func (j julian) lastDay(year, month int, leap bool) (int, error) {
	return j.daysInMonth(year, month, leap)
}

func (julian) hasLeapMonth(year int) (int, error) {
	return 0, checkYear(year)
}

// historical switches from the Julian to the Gregorian calendar at
// GregorianReform, the days 1582-10-05 to 1582-10-14 are skipped.
type historical struct{}

const (
	reformYear     = 1582
	reformMonth    = 10
	lastJulianDay  = 4
	firstReformDay = 15
)

func isHistoricalLeap(year int) bool {
	if year < reformYear {
		return isJulianLeap(year)
	}
	return isGregorianLeap(year)
}

func beforeReform(year, month, day int) bool {
	if year != reformYear {
		return year < reformYear
	}
	if month != reformMonth {
		return month < reformMonth
	}
	return day <= lastJulianDay
}

func (historical) toLinear(year, month int, leap bool, day int) (JDN, error) {
	if err := checkDate(year, month, leap, day, isHistoricalLeap); err != nil {
		return 0, err
	}
	if year == reformYear && month == reformMonth && day > lastJulianDay && day < firstReformDay {
		return 0, fmt.Errorf("%04d-%02d-%02d does not exist in the historical calendar: %w", year, month, day, ErrInvalidDate)
	}
	if beforeReform(year, month, day) {
		return julianToJDN(year, month, day), nil
	}
	return gregorianToJDN(year, month, day), nil
}

func (historical) fromLinear(n JDN) (Date, error) {
	var y, m, d int
	switch {
	case n < minJulian || n > maxGregorian:
		return Date{}, fmt.Errorf("day %d: %w", n, ErrOutOfRange)
	case n < GregorianReform:
		y, m, d = jdnToJulian(n)
	default:
		y, m, d = jdnToGregorian(n)
	}
	return Date{System: Historical, Year: y, Month: m, Day: d}, nil
}

func (historical) isLeapYear(year int) (bool, error) {
	if err := checkYear(year); err != nil {
		return false, err
	}
	return isHistoricalLeap(year), nil
}

func (historical) monthsInYear(year int) (int, error) {
	return 12, checkYear(year)
}

func (h historical) daysInMonth(year, month int, leap bool) (int, error) {
	n, err := h.lastDay(year, month, leap)
	if err != nil {
		return 0, err
	}
	if year == reformYear && month == reformMonth {
		n -= firstReformDay - lastJulianDay - 1
	}
	return n, nil
}

func (historical) lastDay(year, month int, leap bool) (int, error) {
	if err := checkYearMonth(year, month, leap); err != nil {
		return 0, err
	}
	if isHistoricalLeap(year) {
		return daysInMonthLeap[month-1], nil
	}
	return daysInMonthCommon[month-1], nil
}

func (historical) hasLeapMonth(year int) (int, error) {
	return 0, checkYear(year)
}
