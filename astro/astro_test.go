// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package astro_test

import (
	"math"
	"testing"

	"cloudeng.io/calendar/astro"
)

func near(t *testing.T, what string, got, want, tolerance float64) {
	t.Helper()
	if math.Abs(got-want) > tolerance {
		t.Errorf("%v: got %.6f, want %.6f (+/- %v)", what, got, want, tolerance)
	}
}

func TestPositions(t *testing.T) {
	// Examples 25.a, 47.a and 49.a from Astronomical Algorithms.
	near(t, "sun", astro.SunLongitude(2448908.5), 199.90895, 0.001)
	near(t, "moon", astro.MoonLongitude(2448724.5), 133.1673, 0.01)
	near(t, "new moon", astro.NewMoon(-283), 2443192.65118, 0.0001)
	near(t, "new moon", astro.NewMoon(-282.6), 2443192.65118, 0.0001)
	near(t, "normalize", astro.Normalize(-30), 330, 1e-9)
	near(t, "normalize", astro.Normalize(725), 5, 1e-9)
}

func TestDeltaT(t *testing.T) {
	for _, tc := range []struct {
		year, want, tolerance float64
	}{
		{2000, 63.86, 0.01},
		{1900, -2.79, 0.01},
		{1950, 29.07, 0.01},
		{2020, 71.6, 1.5},
		{1000, 1574.2, 0.01},
	} {
		near(t, "delta t", astro.DeltaT(tc.year), tc.want, tc.tolerance)
	}
	jd := 2451545.0
	near(t, "round trip", astro.ToUT(astro.ToTT(jd)), jd, 1e-6)
}

func TestSolarTermTimes(t *testing.T) {
	// 2023-12-22 03:27 UTC.
	near(t, "winter solstice",
		astro.SolarTermTime(astro.WinterSolstice, 2460280.5), 2460300.644, 0.02)
	near(t, "december solstice", astro.DecemberSolstice(2023), 2460300.644, 0.005)
	// 2024-12-21 09:20 UTC.
	near(t, "december solstice", astro.DecemberSolstice(2024), 2460665.889, 0.005)
	for _, year := range []int{1900, 1950, 2033, 2100} {
		from := astro.DecemberSolstice(year) - 10
		near(t, "solstice longitude", astro.SolarTermTime(astro.WinterSolstice, from), astro.DecemberSolstice(year), 0.02)
	}
	// 2024-03-20 03:06 UTC.
	near(t, "spring equinox",
		astro.SolarTermTime(astro.SpringEquinox, 2460310.5), 2460389.629, 0.02)
	// 2024-01-11 11:57 UTC.
	_, nm := astro.NewMoonBefore(2460325)
	near(t, "new moon", nm, 2460320.998, 0.01)
	k, nm2 := astro.NewMoonBefore(nm)
	if nm2 != nm {
		t.Errorf("got %v, want %v", nm2, nm)
	}
	near(t, "next new moon", astro.NewMoonUT(k+1)-nm, astro.SynodicMonth, 0.5)
	// 2024-01-25 17:54 UTC.
	near(t, "full moon", astro.Elongation(2460335.246), 180, 0.5)
}

func TestSolarTerms(t *testing.T) {
	if !astro.WinterSolstice.IsMajor() || astro.PureBrightness.IsMajor() {
		t.Errorf("incorrect major terms")
	}
	if got, want := astro.WinterSolstice.Prev(), astro.MajorSnow; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := astro.MajorSnow.Next(), astro.WinterSolstice; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	for _, tc := range []struct {
		term astro.SolarTerm
		deg  float64
	}{
		{astro.WinterSolstice, 270},
		{astro.SpringEquinox, 0},
		{astro.PureBrightness, 15},
		{astro.MajorSnow, 255},
	} {
		if got, want := tc.term.Degrees(), tc.deg; got != want {
			t.Errorf("%v: got %v, want %v", tc.term, got, want)
		}
	}

	for _, tc := range []struct {
		begin, end float64
		term       astro.SolarTerm
		ok         bool
	}{
		{0, 1, astro.SpringEquinox, true},
		{269, 286, astro.WinterSolstice, true},
		{-1, 361, astro.SpringEquinox, true},
		{359.5, 0.5, astro.SpringEquinox, true},
		{271, 285, 0, false},
	} {
		term, ok := astro.SolarTermInRange(tc.begin, tc.end)
		if term != tc.term || ok != tc.ok {
			t.Errorf("%v..%v: got %v %v, want %v %v", tc.begin, tc.end, term, ok, tc.term, tc.ok)
		}
	}

	if !astro.HasMajorTermInRange(355, 5) || astro.HasMajorTermInRange(1, 29) {
		t.Errorf("incorrect major term ranges")
	}

	if st, err := astro.ParseSolarTerm("清明"); err != nil || st != astro.PureBrightness {
		t.Errorf("got %v %v", st, err)
	}
	if st, err := astro.ParseSolarTerm("winterSolstice"); err != nil || st != astro.WinterSolstice {
		t.Errorf("got %v %v", st, err)
	}
	if _, err := astro.ParseSolarTerm("monsoon"); err == nil {
		t.Errorf("expected an error")
	}
	if got, want := astro.GrainRain.Chinese(), "谷雨"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestLunarPhases(t *testing.T) {
	if got, want := astro.NewMoonPhase.Prev(), astro.WaningCrescent; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := astro.FullMoon.Degrees(), 180.0; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	for _, tc := range []struct {
		begin, end float64
		phase      astro.LunarPhase
	}{
		{-1, 1, astro.NewMoonPhase},
		{359, 1, astro.NewMoonPhase},
		{1, 89, astro.WaxingCrescent},
		{1, 179, astro.FirstQuarter},
		{91, 179, astro.WaxingGibbous},
		{179, 181, astro.FullMoon},
		{181, 269, astro.WaningGibbous},
		{181, 359, astro.LastQuarter},
		{271, 359, astro.WaningCrescent},
	} {
		if got := astro.LunarPhaseInRange(tc.begin, tc.end); got != tc.phase {
			t.Errorf("%v..%v: got %v, want %v", tc.begin, tc.end, got, tc.phase)
		}
	}
	if got, want := astro.FullMoon.Emoji(), "🌕"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := astro.FullMoon.Chinese(), "满月"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
