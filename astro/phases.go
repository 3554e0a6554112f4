// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package astro

import (
	"fmt"
	"math"
	"strings"
)

// LunarPhase represents one of eight named phases of the moon.
type LunarPhase int

const (
	NewMoonPhase LunarPhase = iota
	WaxingCrescent
	FirstQuarter
	WaxingGibbous
	FullMoon
	WaningGibbous
	LastQuarter
	WaningCrescent
)

// NumLunarPhases is the number of named lunar phases.
const NumLunarPhases = 8

var lunarPhaseNames = [NumLunarPhases]struct{ en, zh, emoji string }{
	{"NewMoon", "新月", "🌑"},
	{"WaxingCrescent", "眉月", "🌒"},
	{"FirstQuarter", "上弦月", "🌓"},
	{"WaxingGibbous", "上凸月", "🌔"},
	{"FullMoon", "满月", "🌕"},
	{"WaningGibbous", "下凸月", "🌖"},
	{"LastQuarter", "下弦月", "🌗"},
	{"WaningCrescent", "残月", "🌘"},
}

func (lp LunarPhase) valid() bool {
	return lp >= 0 && lp < NumLunarPhases
}

func (lp LunarPhase) String() string {
	if !lp.valid() {
		return fmt.Sprintf("LunarPhase(%d)", int(lp))
	}
	return lunarPhaseNames[lp].en
}

// Chinese returns the Chinese name of the phase.
func (lp LunarPhase) Chinese() string {
	if !lp.valid() {
		return ""
	}
	return lunarPhaseNames[lp].zh
}

// Emoji returns the emoji depicting the phase.
func (lp LunarPhase) Emoji() string {
	if !lp.valid() {
		return ""
	}
	return lunarPhaseNames[lp].emoji
}

// Next returns the following phase.
func (lp LunarPhase) Next() LunarPhase {
	return LunarPhase(mod(int(lp)+1, NumLunarPhases))
}

// Prev returns the preceding phase.
func (lp LunarPhase) Prev() LunarPhase {
	return LunarPhase(mod(int(lp)-1, NumLunarPhases))
}

// Degrees returns the elongation of the moon from the sun that is
// characteristic of the phase.
func (lp LunarPhase) Degrees() float64 {
	return float64(lp) * 45
}

// LunarPhaseInRange returns the phase for a period over which the
// elongation of the moon advances from begin to end degrees. The four
// principal phases (new, first quarter, full and last quarter) are returned
// only when their exact elongation is reached within the period, otherwise
// the intermediate phase is returned.
func LunarPhaseInRange(begin, end float64) LunarPhase {
	if end < begin {
		begin -= 360
	}
	b := int(math.Ceil(begin / 90))
	e := int(math.Ceil(end / 90))
	if b < e {
		return LunarPhase(mod(b*2, NumLunarPhases))
	}
	return LunarPhase(mod(b*2-1, NumLunarPhases))
}

// LunarPhaseBetween returns the phase of the moon for the period between
// the two instants (UT), which must be less than a lunation apart.
func LunarPhaseBetween(jd0, jd1 float64) LunarPhase {
	return LunarPhaseInRange(Elongation(jd0), Elongation(jd1))
}

// MarshalText implements encoding.TextMarshaler.
func (lp LunarPhase) MarshalText() ([]byte, error) {
	return []byte(lp.String()), nil
}

// ParseLunarPhase parses the English, case insensitive, or Chinese name of
// a lunar phase.
func ParseLunarPhase(val string) (LunarPhase, error) {
	for i, n := range lunarPhaseNames {
		if strings.EqualFold(n.en, val) || n.zh == val {
			return LunarPhase(i), nil
		}
	}
	return 0, fmt.Errorf("unrecognised lunar phase: %q", val)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (lp *LunarPhase) UnmarshalText(text []byte) error {
	v, err := ParseLunarPhase(string(text))
	if err != nil {
		return err
	}
	*lp = v
	return nil
}
