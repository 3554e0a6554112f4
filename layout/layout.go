// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package layout provides text rendering of the month grids computed by
// the calendar package. Month names, weekday headers and, optionally,
// Chinese lunar day names are aligned using their display width so that
// output mixing Latin and CJK text lines up on a terminal.
package layout

import (
	"fmt"
	"strings"

	"cloudeng.io/calendar"
	"golang.org/x/text/language"
	"golang.org/x/text/width"
)

// Language selects the language used for titles and headers.
type Language int

const (
	English Language = iota
	Chinese
)

func (l Language) String() string {
	if l == Chinese {
		return "zh"
	}
	return "en"
}

var languageMatcher = language.NewMatcher([]language.Tag{language.English, language.Chinese})

// ParseLanguage returns the supported Language that best matches the
// supplied BCP 47 tag, eg. en-GB or zh-CN.
func ParseLanguage(val string) (Language, error) {
	tag, err := language.Parse(val)
	if err != nil {
		return English, fmt.Errorf("invalid language %q: %w", val, err)
	}
	_, idx, conf := languageMatcher.Match(tag)
	if conf == language.No {
		return English, fmt.Errorf("unsupported language %q, only English and Chinese are supported", val)
	}
	return Language(idx), nil
}

// Option represents an option for rendering.
type Option func(o *options)

type options struct {
	lang      Language
	lunar     bool
	render    func(string) string
	highlight map[calendar.JDN]bool
}

// WithLanguage sets the language for titles and weekday headers.
func WithLanguage(l Language) Option {
	return func(o *options) {
		o.lang = l
	}
}

// WithLunar requests that each day be annotated with its day in the
// Chinese calendar, the first day of a lunar month is annotated with the
// name of that month. It has no effect on grids for the Chinese calendar.
func WithLunar(v bool) Option {
	return func(o *options) {
		o.lunar = v
	}
}

// WithHighlight requests that the specified days be rendered using
// the supplied function, eg. a lipgloss style's Render method.
func WithHighlight(render func(string) string, days ...calendar.JDN) Option {
	return func(o *options) {
		o.render = render
		if o.highlight == nil {
			o.highlight = map[calendar.JDN]bool{}
		}
		for _, d := range days {
			o.highlight[d] = true
		}
	}
}

const (
	dayWidth   = 2
	lunarWidth = 6
)

// DisplayWidth returns the number of terminal columns needed to display s,
// East Asian wide and fullwidth runes occupy two columns.
func DisplayWidth(s string) int {
	n := 0
	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			n += 2
		default:
			n++
		}
	}
	return n
}

func padRight(s string, w int) string {
	if dw := DisplayWidth(s); dw < w {
		return s + strings.Repeat(" ", w-dw)
	}
	return s
}

func center(s string, w int) string {
	dw := DisplayWidth(s)
	if dw >= w {
		return s
	}
	left := (w - dw) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", w-dw-left)
}

type monthLayout struct {
	opts      options
	lunar     bool
	cellWidth int
}

func newMonthLayout(system calendar.System, opts []Option) monthLayout {
	var ml monthLayout
	for _, fn := range opts {
		fn(&ml.opts)
	}
	ml.lunar = ml.opts.lunar && system != calendar.Chinese
	ml.cellWidth = dayWidth
	if ml.lunar {
		ml.cellWidth += 1 + lunarWidth
	}
	return ml
}

func (ml monthLayout) width() int {
	return 7*ml.cellWidth + 6
}

func (ml monthLayout) weekdayHeader(g *calendar.Grid) string {
	cells := make([]string, 7)
	for i, wd := range g.Weekdays() {
		name := wd.String()[:2]
		if ml.opts.lang == Chinese {
			name = calendar.WeekdayChinese(wd)
		}
		cells[i] = padRight(name, ml.cellWidth)
	}
	return strings.Join(cells, " ")
}

func lunarLabel(n calendar.JDN) string {
	cd, err := calendar.FromLinear(n, calendar.Chinese)
	if err != nil {
		return ""
	}
	if cd.Day == 1 {
		return calendar.ChineseMonthName(cd.Month, cd.Leap)
	}
	return calendar.ChineseDayName(cd.Day)
}

func (ml monthLayout) cell(c calendar.Cell) string {
	if c.Blank() {
		return strings.Repeat(" ", ml.cellWidth)
	}
	day := fmt.Sprintf("%*d", dayWidth, c.Day)
	if ml.opts.highlight[c.JDN] && ml.opts.render != nil {
		day = ml.opts.render(day)
	}
	if ml.lunar {
		day += " " + padRight(lunarLabel(c.JDN), lunarWidth)
	}
	return day
}

// lines returns the lines of the month, each is exactly width() columns
// wide.
func (ml monthLayout) lines(g *calendar.Grid, title string) []string {
	w := ml.width()
	out := make([]string, 0, len(g.Weeks)+2)
	out = append(out, center(title, w), ml.weekdayHeader(g))
	for _, week := range g.Weeks {
		cells := make([]string, 7)
		for i, c := range week {
			cells[i] = ml.cell(c)
		}
		out = append(out, strings.Join(cells, " "))
	}
	return out
}

func (ml monthLayout) monthTitle(g *calendar.Grid, withYear bool) string {
	if ml.opts.lang == Chinese {
		name := calendar.MonthNameChinese(g.System, g.Month, g.Leap)
		if withYear {
			return fmt.Sprintf("%d年%s", g.Year, name)
		}
		return name
	}
	if withYear {
		return g.Title()
	}
	return calendar.MonthName(g.System, g.Month, g.Leap)
}

func (ml monthLayout) yearTitle(system calendar.System, year int) string {
	if system != calendar.Chinese {
		if ml.opts.lang == Chinese {
			return fmt.Sprintf("%d年", year)
		}
		return fmt.Sprint(year)
	}
	sb := calendar.YearStemBranch(year)
	if ml.opts.lang == Chinese {
		return fmt.Sprintf("%d年 %v %v年", year, sb, sb.Branch().AnimalChinese())
	}
	return fmt.Sprintf("%d %v (%v)", year, sb.Pinyin(), sb.Branch().Animal())
}

func join(lines []string) string {
	var out strings.Builder
	for _, l := range lines {
		out.WriteString(strings.TrimRight(l, " "))
		out.WriteByte('\n')
	}
	return out.String()
}

// Month renders a single month grid, including its title and weekday
// header, as newline terminated lines with trailing spaces removed.
func Month(g *calendar.Grid, opts ...Option) string {
	ml := newMonthLayout(g.System, opts)
	return join(ml.lines(g, ml.monthTitle(g, true)))
}

// MonthsPerRow is the number of months rendered side by side by Year.
const MonthsPerRow = 3

// Year renders the grids for a year, as returned by calendar.YearGrid,
// MonthsPerRow months to a row under a title for the year.
func Year(grids []*calendar.Grid, opts ...Option) string {
	if len(grids) == 0 {
		return ""
	}
	ml := newMonthLayout(grids[0].System, opts)
	w := ml.width()
	const gap = "  "
	total := MonthsPerRow*w + (MonthsPerRow-1)*len(gap)
	out := []string{center(ml.yearTitle(grids[0].System, grids[0].Year), total), ""}
	for i := 0; i < len(grids); i += MonthsPerRow {
		if i > 0 {
			out = append(out, "")
		}
		row := grids[i:min(i+MonthsPerRow, len(grids))]
		blocks := make([][]string, len(row))
		height := 0
		for j, g := range row {
			blocks[j] = ml.lines(g, ml.monthTitle(g, false))
			height = max(height, len(blocks[j]))
		}
		for l := range height {
			parts := make([]string, len(blocks))
			for j, b := range blocks {
				if l < len(b) {
					parts[j] = b[l]
				} else {
					parts[j] = strings.Repeat(" ", w)
				}
			}
			out = append(out, strings.Join(parts, gap))
		}
	}
	return join(out)
}
