// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	monthNames = [12]string{
		"january", "february", "march", "april", "may", "june",
		"july", "august", "september", "october", "november", "december",
	}
	numericMonthsZh = [12]string{"一月", "二月", "三月", "四月", "五月", "六月", "七月", "八月", "九月", "十月", "十一月", "十二月"}
	weekdaysZh      = [7]string{"日", "一", "二", "三", "四", "五", "六"}
)

// ParseNumericMonth parses a 1 or 2 digit numeric month value in the range 1-12.
func ParseNumericMonth(val string) (int, error) {
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, err
	}
	if n < 1 || n > 12 {
		return 0, fmt.Errorf("invalid month: %d", n)
	}
	return n, nil
}

// ParseMonth parses a month name of the form "Jan" to "Dec" or any other
// longer prefixes of "January" to "December" in either lower or upper case.
// At least three characters are required.
func ParseMonth(val string) (int, error) {
	lc := strings.ToLower(val)
	if len(lc) >= 3 {
		for i := range monthNames {
			if strings.HasPrefix(monthNames[i], lc) {
				return i + 1, nil
			}
		}
	}
	return 0, fmt.Errorf("invalid month: %s", val)
}

// ParseAnyMonth parses a month in either numeric or month name format.
func ParseAnyMonth(val string) (int, error) {
	if n, err := ParseNumericMonth(val); err == nil {
		return n, nil
	}
	return ParseMonth(val)
}

// MonthName returns the English name of a month, months in the Chinese
// calendar are named by number, eg. "Month 1" or "Leap Month 2".
func MonthName(system System, month int, leap bool) string {
	if month < 1 || month > 12 {
		return fmt.Sprintf("Month(%d)", month)
	}
	if system == Chinese {
		if leap {
			return fmt.Sprintf("Leap Month %d", month)
		}
		return fmt.Sprintf("Month %d", month)
	}
	return time.Month(month).String()
}

// MonthNameChinese returns the Chinese name of a month, the traditional
// names are used for the Chinese calendar, eg. 正月.
func MonthNameChinese(system System, month int, leap bool) string {
	if month < 1 || month > 12 {
		return ""
	}
	if system == Chinese {
		return ChineseMonthName(month, leap)
	}
	return numericMonthsZh[month-1]
}

// WeekdayChinese returns the single character Chinese abbreviation
// for a weekday, eg. 日 for Sunday.
func WeekdayChinese(w time.Weekday) string {
	return weekdaysZh[floorMod(int64(w), 7)]
}

// ParseWeekday parses the name, or any prefix of at least two characters,
// of a day of the week.
func ParseWeekday(val string) (time.Weekday, error) {
	lc := strings.ToLower(strings.TrimSpace(val))
	if len(lc) >= 2 {
		for d := time.Sunday; d <= time.Saturday; d++ {
			if strings.HasPrefix(strings.ToLower(d.String()), lc) {
				return d, nil
			}
		}
	}
	return 0, fmt.Errorf("invalid weekday: %q", val)
}
