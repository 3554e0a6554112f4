// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import "fmt"

// Stem is one of the ten Heavenly Stems.
type Stem int

// Branch is one of the twelve Earthly Branches.
type Branch int

// StemBranch is a position, 0 to 59, in the sexagenary cycle, where
// 0 is 甲子 (JiaZi).
type StemBranch int

var (
	stems        = [10]string{"甲", "乙", "丙", "丁", "戊", "己", "庚", "辛", "壬", "癸"}
	stemsPinyin  = [10]string{"Jia", "Yi", "Bing", "Ding", "Wu", "Ji", "Geng", "Xin", "Ren", "Gui"}
	branches     = [12]string{"子", "丑", "寅", "卯", "辰", "巳", "午", "未", "申", "酉", "戌", "亥"}
	branchPinyin = [12]string{"Zi", "Chou", "Yin", "Mao", "Chen", "Si", "Wu", "Wei", "Shen", "You", "Xu", "Hai"}
	zodiac       = [12]string{"Rat", "Ox", "Tiger", "Rabbit", "Dragon", "Snake", "Horse", "Goat", "Monkey", "Rooster", "Dog", "Pig"}
	zodiacZh     = [12]string{"鼠", "牛", "虎", "兔", "龙", "蛇", "马", "羊", "猴", "鸡", "狗", "猪"}
)

func (s Stem) String() string {
	return stems[floorMod(int64(s), 10)]
}

// Pinyin returns the romanized name of the stem.
func (s Stem) Pinyin() string {
	return stemsPinyin[floorMod(int64(s), 10)]
}

func (b Branch) String() string {
	return branches[floorMod(int64(b), 12)]
}

// Pinyin returns the romanized name of the branch.
func (b Branch) Pinyin() string {
	return branchPinyin[floorMod(int64(b), 12)]
}

// Animal returns the name of the zodiac animal for the branch.
func (b Branch) Animal() string {
	return zodiac[floorMod(int64(b), 12)]
}

// AnimalChinese is like Animal but returns the Chinese name.
func (b Branch) AnimalChinese() string {
	return zodiacZh[floorMod(int64(b), 12)]
}

// NewStemBranch returns the position in the sexagenary cycle of the
// specified stem and branch. Only stems and branches with the same parity
// appear in the cycle.
func NewStemBranch(s Stem, b Branch) (StemBranch, error) {
	si, bi := floorMod(int64(s), 10), floorMod(int64(b), 12)
	if si%2 != bi%2 {
		return 0, fmt.Errorf("%v%v is not part of the sexagenary cycle", s, b)
	}
	return StemBranch(floorMod(6*si-5*bi, 60)), nil
}

// Stem returns the stem of sb.
func (sb StemBranch) Stem() Stem {
	return Stem(floorMod(int64(sb), 10))
}

// Branch returns the branch of sb.
func (sb StemBranch) Branch() Branch {
	return Branch(floorMod(int64(sb), 12))
}

func (sb StemBranch) String() string {
	return sb.Stem().String() + sb.Branch().String()
}

// Pinyin returns the romanized name, eg. JiaZi.
func (sb StemBranch) Pinyin() string {
	return sb.Stem().Pinyin() + sb.Branch().Pinyin()
}

// YearStemBranch returns the sexagenary name of the Chinese year that
// begins in the specified Gregorian year.
func YearStemBranch(year int) StemBranch {
	return StemBranch(floorMod(int64(year)-4, 60))
}

// MonthStemBranch returns the sexagenary name of a month of a Chinese year,
// a leap month shares the name of the month it follows.
func MonthStemBranch(year, month int) StemBranch {
	first := int64(YearStemBranch(year).Stem())*2 + 2
	stem := floorMod(first+int64(month)-1, 10)
	branch := floorMod(int64(month)+1, 12)
	sb, _ := NewStemBranch(Stem(stem), Branch(branch))
	return sb
}

// DayStemBranch returns the sexagenary name of a day.
func DayStemBranch(n JDN) StemBranch {
	return StemBranch(floorMod(int64(n)+49, 60))
}

var (
	chineseMonthNames = [12]string{"正月", "二月", "三月", "四月", "五月", "六月", "七月", "八月", "九月", "十月", "十一月", "十二月"}
	chineseDayNames   = [30]string{
		"初一", "初二", "初三", "初四", "初五", "初六", "初七", "初八", "初九", "初十",
		"十一", "十二", "十三", "十四", "十五", "十六", "十七", "十八", "十九", "二十",
		"廿一", "廿二", "廿三", "廿四", "廿五", "廿六", "廿七", "廿八", "廿九", "三十",
	}
)

// ChineseMonthName returns the traditional name of a month, eg. 正月 or 闰二月.
func ChineseMonthName(month int, leap bool) string {
	if month < 1 || month > 12 {
		return ""
	}
	if leap {
		return "闰" + chineseMonthNames[month-1]
	}
	return chineseMonthNames[month-1]
}

// ChineseDayName returns the traditional name of a day of a month, eg. 初一.
func ChineseDayName(day int) string {
	if day < 1 || day > 30 {
		return ""
	}
	return chineseDayNames[day-1]
}
