// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar_test

import (
	"errors"
	"slices"
	"testing"

	"cloudeng.io/calendar"
	"cloudeng.io/calendar/astro"
)

func TestChineseYears(t *testing.T) {
	for _, tc := range []struct {
		year    int
		newYear calendar.Date
		leap    int
		lengths []int
	}{
		{2014, date(greg, 2014, 1, 31), 9, []int{29, 30, 29, 30, 29, 30, 29, 30, 30, 29, 30, 29, 30}},
		{2023, date(greg, 2023, 1, 22), 2, []int{29, 30, 29, 29, 30, 30, 29, 30, 30, 29, 30, 29, 30}},
		{2017, date(greg, 2017, 1, 28), 6, nil},
		{2020, date(greg, 2020, 1, 25), 4, nil},
		{2024, date(greg, 2024, 2, 10), 0, nil},
		{2025, date(greg, 2025, 1, 29), 6, nil},
		{1900, date(greg, 1900, 1, 31), 8, nil},
		{1910, date(greg, 1910, 2, 10), 0, nil},
		{1920, date(greg, 1920, 2, 20), 0, nil},
		{1930, date(greg, 1930, 1, 30), 6, nil},
		{1940, date(greg, 1940, 2, 8), 0, nil},
		{1950, date(greg, 1950, 2, 17), 0, nil},
		{1960, date(greg, 1960, 1, 28), 6, nil},
		{1970, date(greg, 1970, 2, 6), 0, nil},
		{1980, date(greg, 1980, 2, 16), 0, nil},
		{1990, date(greg, 1990, 1, 27), 5, nil},
		{2000, date(greg, 2000, 2, 5), 0, nil},
		{2010, date(greg, 2010, 2, 14), 0, nil},
		{2030, date(greg, 2030, 2, 3), 0, nil},
		{2033, date(greg, 2033, 1, 31), 11, nil},
		{2034, date(greg, 2034, 2, 19), 0, nil},
		{2040, date(greg, 2040, 2, 12), 0, nil},
		{2050, date(greg, 2050, 1, 23), 3, nil},
		{2060, date(greg, 2060, 2, 2), 0, nil},
		{2070, date(greg, 2070, 2, 11), 0, nil},
		{2080, date(greg, 2080, 1, 22), 3, nil},
		{2090, date(greg, 2090, 1, 30), 8, nil},
		{2100, date(greg, 2100, 2, 9), 0, nil},
	} {
		cy, err := calendar.NewChineseYear(tc.year)
		if err != nil {
			t.Errorf("%v: %v", tc.year, err)
			continue
		}
		start, err := calendar.FromLinear(cy.Start, greg)
		if err != nil {
			t.Errorf("%v: %v", tc.year, err)
			continue
		}
		if got, want := start, tc.newYear; got != want {
			t.Errorf("%v: got %v, want %v", tc.year, got, want)
		}
		if got, want := cy.LeapMonth, tc.leap; got != want {
			t.Errorf("%v: got %v, want %v", tc.year, got, want)
		}
		if tc.lengths != nil && !slices.Equal(cy.MonthLengths, tc.lengths) {
			t.Errorf("%v: got %v, want %v", tc.year, cy.MonthLengths, tc.lengths)
		}
		months := 12
		if tc.leap != 0 {
			months = 13
		}
		if got, want := cy.Months(), months; got != want {
			t.Errorf("%v: got %v, want %v", tc.year, got, want)
		}
		for _, l := range cy.MonthLengths {
			if l != 29 && l != 30 {
				t.Errorf("%v: invalid month length: %v", tc.year, cy.MonthLengths)
			}
		}
		if tc.year == calendar.MaxChineseYear {
			continue
		}
		next, err := calendar.NewChineseYear(tc.year + 1)
		if err != nil {
			t.Errorf("%v: %v", tc.year+1, err)
			continue
		}
		if got, want := cy.End()+1, next.Start; got != want {
			t.Errorf("%v: got %v, want %v", tc.year, got, want)
		}
	}

	cy, err := calendar.NewChineseYear(2023)
	if err != nil {
		t.Fatal(err)
	}
	start, err := cy.MonthStart(2, true)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := start, calendar.JDN(2460026); got != want { // 2023-03-22
		t.Errorf("got %v, want %v", got, want)
	}
	if _, err := cy.MonthStart(3, true); !errors.Is(err, calendar.ErrNoSuchMonth) {
		t.Errorf("missing or wrong error: %v", err)
	}
	if _, err := calendar.NewChineseYear(1850); !errors.Is(err, calendar.ErrOutOfRange) {
		t.Errorf("missing or wrong error: %v", err)
	}
	if got, want := cy.StemBranch().String(), "癸卯"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestChineseLeapEleven(t *testing.T) {
	cy, err := calendar.NewChineseYear(2033)
	if err != nil {
		t.Fatal(err)
	}
	regular, err := cy.MonthStart(11, false)
	if err != nil {
		t.Fatal(err)
	}
	leap, err := cy.MonthStart(11, true)
	if err != nil {
		t.Fatal(err)
	}
	twelfth, err := cy.MonthStart(12, false)
	if err != nil {
		t.Fatal(err)
	}
	if regular >= leap || leap >= twelfth {
		t.Errorf("months out of order: %v %v %v", regular, leap, twelfth)
	}
	d, err := calendar.FromLinear(leap, chn)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := d, (calendar.Date{System: chn, Year: 2033, Month: 11, Leap: true, Day: 1}); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := d.String(), "2033-L11-01"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if n, err := calendar.LeapMonth(chn, 2033); err != nil || n != 11 {
		t.Errorf("got %v %v", n, err)
	}
	if n, err := calendar.DaysInLeapMonth(chn, 2033, 11); err != nil || (n != 29 && n != 30) {
		t.Errorf("got %v %v", n, err)
	}
}

func TestChineseRange(t *testing.T) {
	const first, last = calendar.JDN(2415051), calendar.JDN(2488462)
	for _, tc := range []struct {
		d calendar.Date
		n calendar.JDN
	}{
		{date(chn, calendar.MinChineseYear, 1, 1), first},
		{date(chn, calendar.MaxChineseYear, 12, 29), last},
	} {
		n, err := calendar.ToLinear(tc.d)
		if err != nil {
			t.Errorf("%v: %v", tc.d, err)
			continue
		}
		if got, want := n, tc.n; got != want {
			t.Errorf("%v: got %v, want %v", tc.d, got, want)
		}
	}
	for _, n := range []calendar.JDN{first - 1, last + 1} {
		if _, err := calendar.FromLinear(n, chn); !errors.Is(err, calendar.ErrOutOfRange) {
			t.Errorf("%v: missing or wrong error: %v", n, err)
		}
	}
	for _, d := range []calendar.Date{
		date(chn, calendar.MinChineseYear-1, 12, 1),
		date(chn, calendar.MaxChineseYear+1, 1, 1),
	} {
		if _, err := calendar.ToLinear(d); !errors.Is(err, calendar.ErrOutOfRange) {
			t.Errorf("%v: missing or wrong error: %v", d, err)
		}
	}
	if _, err := calendar.ToLinear(date(chn, calendar.MaxChineseYear, 12, 30)); !errors.Is(err, calendar.ErrInvalidDate) {
		t.Errorf("missing or wrong error: %v", err)
	}

	prev, err := calendar.FromLinear(first, chn)
	if err != nil {
		t.Fatal(err)
	}
	for n := first + 1; n <= last; n++ {
		d, err := calendar.FromLinear(n, chn)
		if err != nil {
			t.Fatalf("%v: %v", n, err)
		}
		back, err := calendar.ToLinear(d)
		if err != nil || back != n {
			t.Fatalf("%v: %v: got %v, %v", n, d, back, err)
		}
		sameMonth := d.Year == prev.Year && d.Month == prev.Month && d.Leap == prev.Leap
		switch {
		case sameMonth && d.Day == prev.Day+1:
		case d.Day != 1 || prev.Day < 29:
			t.Fatalf("%v: %v does not follow %v", n, d, prev)
		case d.Year == prev.Year:
			leapFollows := d.Month == prev.Month && d.Leap && !prev.Leap
			if !leapFollows && (d.Month != prev.Month+1 || d.Leap) {
				t.Fatalf("%v: %v does not follow %v", n, d, prev)
			}
		case d.Year != prev.Year+1 || d.Month != 1 || d.Leap || prev.Month != 12:
			t.Fatalf("%v: %v does not follow %v", n, d, prev)
		}
		prev = d
	}
	if got, want := prev, date(chn, calendar.MaxChineseYear, 12, 29); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestChineseYearCopies(t *testing.T) {
	cy, err := calendar.NewChineseYear(2024)
	if err != nil {
		t.Fatal(err)
	}
	want := slices.Clone(cy.MonthLengths)
	cy.MonthLengths[0] = 0
	again, err := calendar.NewChineseYear(2024)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(again.MonthLengths, want) {
		t.Errorf("got %v, want %v", again.MonthLengths, want)
	}
	if n, err := calendar.DaysInMonth(chn, 2024, 1); err != nil || n != want[0] {
		t.Errorf("got %v %v, want %v", n, err, want[0])
	}
}

func TestSexagenary(t *testing.T) {
	for _, tc := range []struct {
		sb     calendar.StemBranch
		name   string
		pinyin string
	}{
		{calendar.DayStemBranch(2433191), "甲子", "JiaZi"}, // 1949-10-01
		{calendar.DayStemBranch(2451545), "戊午", "WuWu"},  // 2000-01-01
		{calendar.YearStemBranch(2024), "甲辰", "JiaChen"},
		{calendar.YearStemBranch(1984), "甲子", "JiaZi"},
		{calendar.YearStemBranch(2023), "癸卯", "GuiMao"},
		{calendar.MonthStemBranch(2024, 1), "丙寅", "BingYin"},
		{calendar.MonthStemBranch(2023, 1), "甲寅", "JiaYin"},
		{calendar.MonthStemBranch(2023, 11), "甲子", "JiaZi"},
	} {
		if got, want := tc.sb.String(), tc.name; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
		if got, want := tc.sb.Pinyin(), tc.pinyin; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
	}

	for i := range 60 {
		sb := calendar.StemBranch(i)
		got, err := calendar.NewStemBranch(sb.Stem(), sb.Branch())
		if err != nil {
			t.Errorf("%v: %v", i, err)
			continue
		}
		if got != sb {
			t.Errorf("got %v, want %v", got, sb)
		}
	}
	if _, err := calendar.NewStemBranch(0, 1); err == nil {
		t.Errorf("expected an error")
	}
	if got, want := calendar.YearStemBranch(2024).Branch().Animal(), "Dragon"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := calendar.YearStemBranch(2024).Branch().AnimalChinese(), "龙"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := calendar.ChineseDayName(21), "廿一"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := calendar.ChineseDayName(31), ""; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestAlmanac(t *testing.T) {
	for _, tc := range []struct {
		jdn  calendar.JDN
		term astro.SolarTerm
		ok   bool
	}{
		{2460345, astro.BeginningOfSpring, true}, // 2024-02-04
		{2460344, 0, false},
		{2460390, astro.SpringEquinox, true}, // 2024-03-20
	} {
		term, ok := calendar.SolarTermOn(tc.jdn, calendar.ChinaStandardTime)
		if term != tc.term || ok != tc.ok {
			t.Errorf("%v: got %v %v, want %v %v", tc.jdn, term, ok, tc.term, tc.ok)
		}
	}
	if got, want := calendar.LunarPhaseOn(2460351, calendar.ChinaStandardTime), astro.NewMoonPhase; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := calendar.LunarPhaseOn(2460335, 0), astro.FullMoon; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := calendar.LunarPhaseOn(2460340, 0), astro.WaningGibbous; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	a, err := calendar.NewAlmanac(date(greg, 2024, 2, 10), calendar.ChinaStandardTime)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := a.JDN, calendar.JDN(2460351); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := a.DayOfYear, 41; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := a.YearName, "甲辰"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := a.Zodiac, "Dragon"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if a.SolarTerm != nil {
		t.Errorf("unexpected solar term: %v", a.SolarTerm)
	}
	want := []calendar.Date{
		date(jul, 2024, 1, 28),
		date(hist, 2024, 2, 10),
		date(chn, 2024, 1, 1),
	}
	if !slices.Equal(a.Equivalent, want) {
		t.Errorf("got %v, want %v", a.Equivalent, want)
	}
}
