// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package astro

import (
	"fmt"
	"math"
	"strings"
)

// SolarTerm represents one of the 24 solar terms of the traditional
// Chinese calendar, each corresponding to a 15 degree advance of the
// sun's ecliptic longitude. The terms are numbered from the winter
// solstice.
type SolarTerm int

const (
	WinterSolstice SolarTerm = iota
	MinorCold
	MajorCold
	BeginningOfSpring
	RainWater
	AwakeningOfInsects
	SpringEquinox
	PureBrightness
	GrainRain
	BeginningOfSummer
	GrainBuds
	GrainInEar
	SummerSolstice
	MinorHeat
	MajorHeat
	BeginningOfAutumn
	EndOfHeat
	WhiteDew
	AutumnEquinox
	ColdDew
	FrostsDescent
	BeginningOfWinter
	MinorSnow
	MajorSnow
)

// NumSolarTerms is the number of solar terms in a year.
const NumSolarTerms = 24

var solarTermNames = [NumSolarTerms]struct{ en, zh string }{
	{"WinterSolstice", "冬至"},
	{"MinorCold", "小寒"},
	{"MajorCold", "大寒"},
	{"BeginningOfSpring", "立春"},
	{"RainWater", "雨水"},
	{"AwakeningOfInsects", "惊蛰"},
	{"SpringEquinox", "春分"},
	{"PureBrightness", "清明"},
	{"GrainRain", "谷雨"},
	{"BeginningOfSummer", "立夏"},
	{"GrainBuds", "小满"},
	{"GrainInEar", "芒种"},
	{"SummerSolstice", "夏至"},
	{"MinorHeat", "小暑"},
	{"MajorHeat", "大暑"},
	{"BeginningOfAutumn", "立秋"},
	{"EndOfHeat", "处暑"},
	{"WhiteDew", "白露"},
	{"AutumnEquinox", "秋分"},
	{"ColdDew", "寒露"},
	{"FrostsDescent", "霜降"},
	{"BeginningOfWinter", "立冬"},
	{"MinorSnow", "小雪"},
	{"MajorSnow", "大雪"},
}

func (st SolarTerm) valid() bool {
	return st >= 0 && st < NumSolarTerms
}

func (st SolarTerm) String() string {
	if !st.valid() {
		return fmt.Sprintf("SolarTerm(%d)", int(st))
	}
	return solarTermNames[st].en
}

// Chinese returns the Chinese name of the solar term.
func (st SolarTerm) Chinese() string {
	if !st.valid() {
		return ""
	}
	return solarTermNames[st].zh
}

// ParseSolarTerm parses the English or Chinese name of a solar term, the
// English name is matched case insensitively.
func ParseSolarTerm(val string) (SolarTerm, error) {
	for i, n := range solarTermNames {
		if strings.EqualFold(n.en, val) || n.zh == val {
			return SolarTerm(i), nil
		}
	}
	return 0, fmt.Errorf("unrecognised solar term: %q", val)
}

// Ord returns the 1-based position of the term starting at the winter solstice.
func (st SolarTerm) Ord() int {
	return int(st) + 1
}

// IsMajor returns true for the 12 'mid' or major terms (zhongqi), which
// include the solstices and equinoxes. A lunar month without a major term
// is a candidate for being a leap month.
func (st SolarTerm) IsMajor() bool {
	return st%2 == 0
}

// Next returns the following solar term.
func (st SolarTerm) Next() SolarTerm {
	return SolarTerm(mod(int(st)+1, NumSolarTerms))
}

// Prev returns the preceding solar term.
func (st SolarTerm) Prev() SolarTerm {
	return SolarTerm(mod(int(st)-1, NumSolarTerms))
}

// Degrees returns the ecliptic longitude of the sun at the start of the term.
func (st SolarTerm) Degrees() float64 {
	return float64(mod(int(st)+18, NumSolarTerms)) * 15
}

// SolarTermInRange returns the solar term, if any, whose longitude lies in
// the half open range [begin, end) of the sun's ecliptic longitude. The
// end longitude may be smaller than begin if the range wraps around 360.
func SolarTermInRange(begin, end float64) (SolarTerm, bool) {
	if end < begin {
		begin -= 360
	}
	b := int(math.Ceil(begin / 15))
	e := int(math.Ceil(end / 15))
	if b < e {
		return SolarTerm(mod(b-18, NumSolarTerms)), true
	}
	return 0, false
}

// HasMajorTermInRange returns true if a major term falls in [begin, end).
func HasMajorTermInRange(begin, end float64) bool {
	if end < begin {
		begin -= 360
	}
	return math.Ceil(begin/30) < math.Ceil(end/30)
}

// SolarTermBetween returns the solar term, if any, that starts between the
// two instants (UT), which must be less than 15 days apart.
func SolarTermBetween(jd0, jd1 float64) (SolarTerm, bool) {
	return SolarTermInRange(SunLongitudeUT(jd0), SunLongitudeUT(jd1))
}

// SolarTermTime returns the instant (UT) of the first occurrence of the
// solar term at or after jd.
func SolarTermTime(st SolarTerm, jd float64) float64 {
	return SolarLongitudeAfter(st.Degrees(), jd)
}

func mod(a, b int) int {
	r := a % b
	if r < 0 {
		r += b
	}
	return r
}

// MarshalText implements encoding.TextMarshaler.
func (st SolarTerm) MarshalText() ([]byte, error) {
	return []byte(st.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (st *SolarTerm) UnmarshalText(text []byte) error {
	v, err := ParseSolarTerm(string(text))
	if err != nil {
		return err
	}
	*st = v
	return nil
}
