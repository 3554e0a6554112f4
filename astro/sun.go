// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package astro

import (
	"math"

	"github.com/soniakeys/meeus/v3/base"
	"github.com/soniakeys/meeus/v3/solar"
	"github.com/soniakeys/meeus/v3/solstice"
)

// TropicalYear is the mean length of the tropical year in days.
const TropicalYear = 365.242189

// SunLongitude returns the apparent geocentric ecliptic longitude of the
// sun, in degrees, for the given instant (TT). The result is accurate to
// about 0.01 degrees.
func SunLongitude(jde float64) float64 {
	return Normalize(solar.ApparentLongitude(base.J2000Century(jde)).Deg())
}

// SunLongitudeUT is like SunLongitude but for an instant expressed in UT.
func SunLongitudeUT(jd float64) float64 {
	return SunLongitude(ToTT(jd))
}

// SolarLongitudeAfter returns the first instant (UT) at or after jd at which
// the apparent longitude of the sun equals lambda degrees.
func SolarLongitudeAfter(lambda, jd float64) float64 {
	jde := ToTT(jd)
	diff := Normalize(lambda - SunLongitude(jde))
	jde += diff * TropicalYear / 360
	for range 20 {
		delta := 58 * math.Sin((lambda-SunLongitude(jde))*deg)
		jde += delta
		if math.Abs(delta) < 1e-7 {
			break
		}
	}
	return ToUT(jde)
}

// DecemberSolstice returns the instant (UT) of the December solstice in
// the specified Gregorian year.
func DecemberSolstice(year int) float64 {
	return ToUT(solstice.December(year))
}
