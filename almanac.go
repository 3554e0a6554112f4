// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import (
	"time"

	"cloudeng.io/calendar/astro"
)

// SolarTermOn returns the solar term, if any, that begins on day n in the
// timezone with the specified offset from UTC.
func SolarTermOn(n JDN, offset time.Duration) (astro.SolarTerm, bool) {
	return astro.SolarTermBetween(n.Midnight(offset), (n + 1).Midnight(offset))
}

// LunarPhaseOn returns the phase of the moon on day n in the timezone
// with the specified offset from UTC. The principal phases, eg. new and
// full moon, are returned only for the day on which they occur.
func LunarPhaseOn(n JDN, offset time.Duration) astro.LunarPhase {
	return astro.LunarPhaseBetween(n.Midnight(offset), (n + 1).Midnight(offset))
}

// Almanac contains the descriptive information for a single day.
type Almanac struct {
	Date       Date            `json:"date" yaml:"date"`
	JDN        JDN             `json:"jdn" yaml:"jdn"`
	Weekday    time.Weekday    `json:"weekday" yaml:"weekday"`
	DayOfYear  int             `json:"day_of_year" yaml:"day_of_year"`
	Equivalent []Date          `json:"equivalent,omitempty" yaml:"equivalent,omitempty"`
	YearName   string          `json:"year_name,omitempty" yaml:"year_name,omitempty"`
	Zodiac     string          `json:"zodiac,omitempty" yaml:"zodiac,omitempty"`
	DayName    string          `json:"day_name" yaml:"day_name"`
	SolarTerm  *astro.SolarTerm `json:"solar_term,omitempty" yaml:"solar_term,omitempty"`
	LunarPhase astro.LunarPhase `json:"lunar_phase" yaml:"lunar_phase"`
}

// NewAlmanac computes the Almanac for d, the solar term and lunar phase
// are computed for the timezone with the specified offset from UTC.
func NewAlmanac(d Date, offset time.Duration) (Almanac, error) {
	n, err := ToLinear(d)
	if err != nil {
		return Almanac{}, err
	}
	doy, err := DayOfYear(d)
	if err != nil {
		return Almanac{}, err
	}
	a := Almanac{
		Date:       d,
		JDN:        n,
		Weekday:    n.Weekday(),
		DayOfYear:  doy,
		DayName:    DayStemBranch(n).String(),
		LunarPhase: LunarPhaseOn(n, offset),
	}
	if st, ok := SolarTermOn(n, offset); ok {
		a.SolarTerm = &st
	}
	for _, s := range Systems() {
		if s == d.System {
			continue
		}
		if o, err := FromLinear(n, s); err == nil {
			a.Equivalent = append(a.Equivalent, o)
		}
	}
	if cd, err := FromLinear(n, Chinese); err == nil {
		sb := YearStemBranch(cd.Year)
		a.YearName = sb.String()
		a.Zodiac = sb.Branch().Animal()
	}
	return a, nil
}
