// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"cloudeng.io/calendar"
	"cloudeng.io/calendar/layout"
	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/text/linewrap"
	"github.com/charmbracelet/lipgloss"
)

// setup creates the logger and resolves the settings for a command, the
// returned function must be called to release the logger.
func (a *app) setup(ctx context.Context, cf *CommonFlags) (context.Context, *settings, func(), error) {
	logger, err := cf.LoggingConfig().NewLogger()
	if err != nil {
		return ctx, nil, nil, err
	}
	done := func() { logger.Close() }
	ctx = ctxlog.Context(ctx, logger.Logger)
	cfg, err := loadConfig(ctx, cf.Config)
	if err != nil {
		done()
		return ctx, nil, nil, err
	}
	s, err := newSettings(cf, cfg)
	if err != nil {
		done()
		return ctx, nil, nil, err
	}
	ctxlog.Logger(ctx).Debug("settings", "calendar", s.system, "first-weekday", s.firstWeekday, "lang", s.lang, "location", s.loc)
	return ctx, s, done, nil
}

func (a *app) today(s *settings) calendar.JDN {
	return calendar.JDNFromTime(a.now().In(s.loc))
}

func (a *app) todayIn(s *settings) (calendar.Date, error) {
	return calendar.FromLinear(a.today(s), s.system)
}

func (a *app) layoutOptions(s *settings) []layout.Option {
	opts := []layout.Option{
		layout.WithLanguage(s.lang),
		layout.WithLunar(s.lunar),
	}
	if s.highlight {
		style := lipgloss.NewRenderer(a.out).NewStyle().Reverse(true)
		opts = append(opts, layout.WithHighlight(func(v string) string {
			return style.Render(v)
		}, a.today(s)))
	}
	return opts
}

func (a *app) month(ctx context.Context, values any, args []string) error {
	ctx, s, done, err := a.setup(ctx, &values.(*gridFlags).CommonFlags)
	if err != nil {
		return err
	}
	defer done()
	var ym calendar.YearMonth
	if len(args) == 1 {
		if ym, err = calendar.ParseYearMonth(args[0]); err != nil {
			return err
		}
	} else {
		today, err := a.todayIn(s)
		if err != nil {
			return err
		}
		ym = calendar.YearMonth{Year: today.Year, Month: today.Month, Leap: today.Leap}
	}
	opts := s.gridOptions()
	if ym.Leap {
		opts = append(opts, calendar.LeapMonthGrid())
	}
	grid, err := calendar.MonthGrid(s.system, ym.Year, ym.Month, opts...)
	if err != nil {
		return err
	}
	ctxlog.Logger(ctx).Info("month", "calendar", s.system, "month", ym.String())
	if s.format != textFormat {
		return encode(a.out, s.format, grid)
	}
	_, err = io.WriteString(a.out, layout.Month(grid, a.layoutOptions(s)...))
	return err
}

func (a *app) year(ctx context.Context, values any, args []string) error {
	ctx, s, done, err := a.setup(ctx, &values.(*gridFlags).CommonFlags)
	if err != nil {
		return err
	}
	defer done()
	var year int
	if len(args) == 1 {
		if year, err = strconv.Atoi(args[0]); err != nil {
			return fmt.Errorf("invalid year %q: %w", args[0], calendar.ErrInvalidDate)
		}
	} else {
		today, err := a.todayIn(s)
		if err != nil {
			return err
		}
		year = today.Year
	}
	grids, err := calendar.YearGrid(s.system, year, s.gridOptions()...)
	if err != nil {
		return err
	}
	ctxlog.Logger(ctx).Info("year", "calendar", s.system, "year", year, "months", len(grids))
	if s.format != textFormat {
		return encode(a.out, s.format, grids)
	}
	_, err = io.WriteString(a.out, layout.Year(grids, a.layoutOptions(s)...))
	return err
}

// conversion is the result of converting a single date.
type conversion struct {
	Input string          `json:"input" yaml:"input"`
	JDN   calendar.JDN    `json:"jdn" yaml:"jdn"`
	Dates []calendar.Date `json:"dates" yaml:"dates"`
}

func (c conversion) String() string {
	parts := make([]string, len(c.Dates))
	for i, d := range c.Dates {
		parts[i] = fmt.Sprintf("%v %v", d, d.System)
	}
	return fmt.Sprintf("%v = %v", c.Input, strings.Join(parts, ", "))
}

const jdnInput = "jdn"

type converter struct {
	from        calendar.System
	jdn         bool
	to          []calendar.System
	allTo       bool // targets were not specified, skip those out of range
	constraints calendar.Constraints
}

func splitList(val string) []string {
	var out []string
	for _, v := range strings.Split(val, ",") {
		if v = strings.TrimSpace(v); len(v) > 0 {
			out = append(out, v)
		}
	}
	return out
}

func newConverter(s *settings, fv *convertFlags) (*converter, error) {
	c := &converter{from: s.system}
	var errs errors.M
	switch {
	case strings.EqualFold(fv.From, jdnInput):
		c.jdn = true
	case len(fv.From) > 0:
		from, err := calendar.ParseSystem(fv.From)
		errs.Append(err)
		c.from = from
	}
	for _, name := range splitList(fv.To) {
		sys, err := calendar.ParseSystem(name)
		if err != nil {
			errs.Append(err)
			continue
		}
		c.to = append(c.to, sys)
	}
	if len(c.to) == 0 {
		c.allTo = true
		for _, sys := range calendar.Systems() {
			if c.jdn || sys != c.from {
				c.to = append(c.to, sys)
			}
		}
	}
	c.constraints = calendar.Constraints{Weekdays: fv.Weekdays, Weekends: fv.Weekends}
	for _, v := range splitList(fv.Exclude) {
		if c.jdn {
			errs.Append(fmt.Errorf("--exclude is not supported for day numbers"))
			break
		}
		d, err := calendar.ParseDate(c.from, v)
		if err != nil {
			errs.Append(err)
			continue
		}
		c.constraints.Custom = append(c.constraints.Custom, d)
	}
	return c, errs.Err()
}

func (c *converter) convertJDN(input string, n calendar.JDN) (conversion, error) {
	cv := conversion{Input: input, JDN: n}
	for _, sys := range c.to {
		d, err := calendar.FromLinear(n, sys)
		if err != nil {
			if c.allTo && errors.Is(err, calendar.ErrOutOfRange) {
				continue
			}
			return cv, fmt.Errorf("%v: %w", input, err)
		}
		cv.Dates = append(cv.Dates, d)
	}
	return cv, nil
}

func (c *converter) convertDate(d calendar.Date) (conversion, error) {
	n, err := calendar.ToLinear(d)
	if err != nil {
		return conversion{}, err
	}
	return c.convertJDN(fmt.Sprintf("%v %v", d, d.System), n)
}

func (c *converter) convert(arg string) ([]conversion, error) {
	if c.jdn {
		if strings.Contains(arg, ":") {
			return nil, fmt.Errorf("%v: ranges are not supported for day numbers", arg)
		}
		n, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid day number %q: %w", arg, calendar.ErrInvalidDate)
		}
		cv, err := c.convertJDN(fmt.Sprintf("%v %v", n, jdnInput), calendar.JDN(n))
		if err != nil {
			return nil, err
		}
		return []conversion{cv}, nil
	}
	if !strings.Contains(arg, ":") {
		d, err := calendar.ParseDate(c.from, arg)
		if err != nil {
			return nil, err
		}
		cv, err := c.convertDate(d)
		if err != nil {
			return nil, err
		}
		return []conversion{cv}, nil
	}
	dr, err := calendar.ParseDateRange(c.from, arg)
	if err != nil {
		return nil, err
	}
	var out []conversion
	for d := range c.constraints.Filter(dr.Dates()) {
		cv, err := c.convertDate(d)
		if err != nil {
			return nil, err
		}
		out = append(out, cv)
	}
	return out, nil
}

func (a *app) convert(ctx context.Context, values any, args []string) error {
	fv := values.(*convertFlags)
	ctx, s, done, err := a.setup(ctx, &fv.CommonFlags)
	if err != nil {
		return err
	}
	defer done()
	c, err := newConverter(s, fv)
	if err != nil {
		return err
	}
	logger := ctxlog.Logger(ctx)
	var (
		errs    errors.M
		results []conversion
	)
	for _, arg := range args {
		cvs, err := c.convert(arg)
		if err != nil {
			logger.Warn("convert", "input", arg, "error", err)
			errs.Append(err)
			continue
		}
		results = append(results, cvs...)
	}
	if s.format != textFormat {
		errs.Append(encode(a.out, s.format, results))
		return errs.Err()
	}
	for _, cv := range results {
		if _, err := fmt.Fprintln(a.out, cv.String()); err != nil {
			errs.Append(err)
			break
		}
	}
	return errs.Err()
}

func (a *app) info(ctx context.Context, values any, args []string) error {
	ctx, s, done, err := a.setup(ctx, &values.(*infoFlags).CommonFlags)
	if err != nil {
		return err
	}
	defer done()
	var d calendar.Date
	if len(args) == 1 {
		d, err = calendar.ParseDate(s.system, args[0])
	} else {
		d, err = a.todayIn(s)
	}
	if err != nil {
		return err
	}
	n, err := calendar.ToLinear(d)
	if err != nil {
		return err
	}
	offset, err := s.utcOffset(n)
	if err != nil {
		return err
	}
	alm, err := calendar.NewAlmanac(d, offset)
	if err != nil {
		return err
	}
	ctxlog.Logger(ctx).Info("info", "date", d, "jdn", n)
	if s.format != textFormat {
		return encode(a.out, s.format, alm)
	}
	return writeAlmanac(a.out, alm)
}

func writeAlmanac(w io.Writer, alm calendar.Almanac) error {
	var out strings.Builder
	line := func(label string, value any) {
		fmt.Fprintf(&out, "%-12s %v\n", label+":", value)
	}
	line("date", fmt.Sprintf("%v %v", alm.Date, alm.Date.System))
	line("weekday", alm.Weekday)
	line("day of year", alm.DayOfYear)
	line("jdn", alm.JDN)
	for _, d := range alm.Equivalent {
		v := d.String()
		if d.System == calendar.Chinese {
			v += " " + calendar.ChineseMonthName(d.Month, d.Leap) + calendar.ChineseDayName(d.Day)
		}
		line(d.System.String(), v)
	}
	if len(alm.YearName) > 0 {
		line("year", fmt.Sprintf("%v %v", alm.YearName, alm.Zodiac))
	}
	line("day", alm.DayName)
	if alm.SolarTerm != nil {
		line("solar term", fmt.Sprintf("%v %v", *alm.SolarTerm, alm.SolarTerm.Chinese()))
	}
	line("lunar phase", fmt.Sprintf("%v %v", alm.LunarPhase, alm.LunarPhase.Emoji()))
	_, err := io.WriteString(w, out.String())
	return err
}

func (a *app) easter(ctx context.Context, values any, args []string) error {
	ctx, s, done, err := a.setup(ctx, &values.(*easterFlags).CommonFlags)
	if err != nil {
		return err
	}
	defer done()
	var year int
	if len(args) == 1 {
		if year, err = strconv.Atoi(args[0]); err != nil {
			return fmt.Errorf("invalid year %q: %w", args[0], calendar.ErrInvalidDate)
		}
	} else {
		today, err := a.todayIn(s)
		if err != nil {
			return err
		}
		year = today.Year
	}
	feasts, err := calendar.MovableFeasts(s.system, year)
	if err != nil {
		return err
	}
	ctxlog.Logger(ctx).Info("easter", "calendar", s.system, "year", year)
	if s.format != textFormat {
		return encode(a.out, s.format, feasts)
	}
	var out strings.Builder
	for _, f := range feasts {
		wd, _ := calendar.DayOfWeek(f.Date)
		fmt.Fprintf(&out, "%-14s %v %v\n", f.Name, f.Date, wd)
	}
	_, err = io.WriteString(a.out, out.String())
	return err
}

type systemInfo struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
}

func (a *app) systems(ctx context.Context, values any, _ []string) error {
	_, s, done, err := a.setup(ctx, &values.(*systemsFlags).CommonFlags)
	if err != nil {
		return err
	}
	defer done()
	var infos []systemInfo
	for _, sys := range calendar.Systems() {
		infos = append(infos, systemInfo{Name: sys.String(), Description: sys.Description()})
	}
	if s.format != textFormat {
		return encode(a.out, s.format, infos)
	}
	var out strings.Builder
	for _, info := range infos {
		out.WriteString(info.Name)
		out.WriteString(":\n")
		out.WriteString(linewrap.Block(4, 76, info.Description))
		out.WriteString("\n")
	}
	_, err = io.WriteString(a.out, out.String())
	return err
}
