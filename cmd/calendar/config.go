// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"cloudeng.io/calendar"
	"cloudeng.io/calendar/layout"
	"cloudeng.io/cmdutil"
	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
)

// CommonFlags are the flags shared by all commands. Flags that are not
// set on the command line take their value from the configuration file.
type CommonFlags struct {
	cmdutil.LoggingFlags
	Config       string `subcmd:"config,,'yaml configuration file, defaults to $HOME/.calendar.yaml if it exists'"`
	Calendar     string `subcmd:"calendar,,'calendar system: gregorian, julian, historical or chinese'"`
	FirstWeekday string `subcmd:"first-weekday,,'first day of the week for calendar grids, defaults to sunday'"`
	Format       string `subcmd:"format,,'output format: text, json or yaml'"`
	Lang         string `subcmd:"lang,,'language for titles and headers, en or zh'"`
	Location     string `subcmd:"location,,'IANA timezone used to determine today and the times of solar terms and lunar phases'"`
	Highlight    bool   `subcmd:"highlight,false,'highlight today in calendar grids'"`
	Lunar        bool   `subcmd:"lunar,false,'annotate calendar grids with Chinese lunar days'"`
}

// Config represents the optional yaml configuration file.
type Config struct {
	Calendar     string `yaml:"calendar"`
	FirstWeekday string `yaml:"first_weekday"`
	Format       string `yaml:"format"`
	Lang         string `yaml:"lang"`
	Location     string `yaml:"location"`
	Highlight    bool   `yaml:"highlight"`
	Lunar        bool   `yaml:"lunar"`
}

const defaultConfigFile = ".calendar.yaml"

// loadConfig reads the specified config file, or the default one if it
// exists when file is empty.
func loadConfig(ctx context.Context, file string) (Config, error) {
	var cfg Config
	if len(file) == 0 {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, nil
		}
		file = filepath.Join(home, defaultConfigFile)
		if _, err := os.Stat(file); errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
	}
	if err := cmdutil.ParseYAMLConfigFile(file, &cfg); err != nil {
		return cfg, err
	}
	ctxlog.Logger(ctx).Info("loaded config", "file", file)
	return cfg, nil
}

type outputFormat int

const (
	textFormat outputFormat = iota
	jsonFormat
	yamlFormat
)

func parseFormat(val string) (outputFormat, error) {
	switch strings.ToLower(val) {
	case "", "text":
		return textFormat, nil
	case "json":
		return jsonFormat, nil
	case "yaml":
		return yamlFormat, nil
	}
	return textFormat, fmt.Errorf("unsupported output format %q, use text, json or yaml", val)
}

// settings are the validated values of the common flags merged with the
// config file.
type settings struct {
	system       calendar.System
	firstWeekday time.Weekday
	format       outputFormat
	lang         layout.Language
	loc          *time.Location
	highlight    bool
	lunar        bool
}

func firstOf(vals ...string) string {
	for _, v := range vals {
		if len(v) > 0 {
			return v
		}
	}
	return ""
}

func newSettings(cf *CommonFlags, cfg Config) (*settings, error) {
	s := &settings{
		highlight: cf.Highlight || cfg.Highlight,
		lunar:     cf.Lunar || cfg.Lunar,
		loc:       time.Local,
	}
	var errs errors.M
	var err error
	if s.system, err = calendar.ParseSystem(firstOf(cf.Calendar, cfg.Calendar, "gregorian")); err != nil {
		errs.Append(err)
	}
	if s.firstWeekday, err = calendar.ParseWeekday(firstOf(cf.FirstWeekday, cfg.FirstWeekday, "sunday")); err != nil {
		errs.Append(err)
	}
	if s.format, err = parseFormat(firstOf(cf.Format, cfg.Format)); err != nil {
		errs.Append(err)
	}
	if s.lang, err = layout.ParseLanguage(firstOf(cf.Lang, cfg.Lang, "en")); err != nil {
		errs.Append(err)
	}
	if loc := firstOf(cf.Location, cfg.Location); len(loc) > 0 {
		if s.loc, err = time.LoadLocation(loc); err != nil {
			errs.Append(fmt.Errorf("invalid location %q: %w", loc, err))
		}
	}
	return s, errs.Err()
}

// utcOffset returns the offset from UTC of the configured location on
// the specified day.
func (s *settings) utcOffset(n calendar.JDN) (time.Duration, error) {
	t, err := n.Time(s.loc)
	if err != nil {
		return 0, err
	}
	_, off := t.Add(12 * time.Hour).Zone()
	return time.Duration(off) * time.Second, nil
}

func (s *settings) gridOptions() []calendar.GridOption {
	return []calendar.GridOption{calendar.FirstWeekday(s.firstWeekday)}
}
