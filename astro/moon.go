// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package astro

import (
	"math"

	"github.com/soniakeys/meeus/v3/moonphase"
	"github.com/soniakeys/meeus/v3/moonposition"
	"github.com/soniakeys/meeus/v3/nutation"
)

// SynodicMonth is the mean length of the synodic month in days.
const SynodicMonth = 29.530588861

const lunationsPerYear = 12.3685

// MoonLongitude returns the apparent geocentric ecliptic longitude of the
// moon, in degrees, for the given instant (TT).
func MoonLongitude(jde float64) float64 {
	lambda, _, _ := moonposition.Position(jde)
	dpsi, _ := nutation.Nutation(jde)
	return Normalize((lambda + dpsi).Deg())
}

// MoonLongitudeUT is like MoonLongitude but for an instant expressed in UT.
func MoonLongitudeUT(jd float64) float64 {
	return MoonLongitude(ToTT(jd))
}

// Elongation returns the difference between the ecliptic longitudes of
// the moon and the sun, in degrees in the range [0, 360), for the given
// instant (UT). It is zero at new moon and 180 at full moon.
func Elongation(jd float64) float64 {
	jde := ToTT(jd)
	return Normalize(MoonLongitude(jde) - SunLongitude(jde))
}

// NewMoon returns the instant (TT) of the true new moon for lunation k,
// where k = 0 corresponds to the new moon of 2000-01-06. Non-integral
// values of k are truncated.
func NewMoon(k float64) float64 {
	// moonphase selects the lunation nearest to a decimal year.
	return moonphase.New(2000 + (math.Floor(k)+0.25)/lunationsPerYear)
}

// NewMoonUT is like NewMoon but returns the instant in UT.
func NewMoonUT(k float64) float64 {
	return ToUT(NewMoon(k))
}

// Lunation returns the approximate lunation number, as used by NewMoon, of
// the new moon closest to the given instant.
func Lunation(jd float64) float64 {
	return math.Round((jd - 2451550.09766) / SynodicMonth)
}

// NewMoonBefore returns the lunation number and instant (UT) of the last new
// moon that occurs at or before jd.
func NewMoonBefore(jd float64) (float64, float64) {
	k := Lunation(jd) + 1
	for {
		nm := NewMoonUT(k)
		if nm <= jd {
			return k, nm
		}
		k--
	}
}
