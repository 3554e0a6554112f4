// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command calendar displays month and year calendars and converts dates
// between the Gregorian, Julian, Historical and Chinese calendar systems.
package main

import (
	"context"
	"io"
	"os"
	"time"
	_ "time/tzdata"

	"cloudeng.io/cmdutil/subcmd"
)

const commandSpec = `name: calendar
summary: display calendars and convert dates between calendar systems
commands:
  - name: month
    summary: display the calendar for a month, the current month is displayed if none is specified
    arguments:
      - "[year-month]"
  - name: year
    summary: display the calendar for a year, the current year is displayed if none is specified
    arguments:
      - "[year]"
  - name: convert
    summary: convert dates, or inclusive ranges of dates written as from:to, between calendar systems
    arguments:
      - <date|from:to>
      - ...
  - name: info
    summary: display information about a date, today is used if none is specified
    arguments:
      - "[date]"
  - name: easter
    summary: display the date of Easter and the feasts that depend on it for a year
    arguments:
      - "[year]"
  - name: systems
    summary: describe the supported calendar systems
`

type gridFlags struct {
	CommonFlags
}

type infoFlags struct {
	CommonFlags
}

type easterFlags struct {
	CommonFlags
}

type systemsFlags struct {
	CommonFlags
}

type convertFlags struct {
	CommonFlags
	From     string `subcmd:"from,,'calendar system of the dates to be converted, or jdn for Julian Day Numbers, defaults to the value of --calendar'"`
	To       string `subcmd:"to,,'comma separated list of calendar systems to convert to, defaults to all others'"`
	Weekdays bool   `subcmd:"weekdays,false,'include only weekdays when converting ranges'"`
	Weekends bool   `subcmd:"weekends,false,'include only weekends when converting ranges'"`
	Exclude  string `subcmd:"exclude,,'comma separated list of dates to exclude when converting ranges'"`
}

// app holds the destination for command output and the source of the
// current time.
type app struct {
	out io.Writer
	now func() time.Time
}

func newCommandSet(a *app) *subcmd.CommandSetYAML {
	cmdSet := subcmd.MustFromYAML(commandSpec)
	cmdSet.Set("month").MustRunnerAndFlags(a.month, subcmd.MustRegisteredFlagSet(&gridFlags{}))
	cmdSet.Set("year").MustRunnerAndFlags(a.year, subcmd.MustRegisteredFlagSet(&gridFlags{}))
	cmdSet.Set("convert").MustRunnerAndFlags(a.convert, subcmd.MustRegisteredFlagSet(&convertFlags{}))
	cmdSet.Set("info").MustRunnerAndFlags(a.info, subcmd.MustRegisteredFlagSet(&infoFlags{}))
	cmdSet.Set("easter").MustRunnerAndFlags(a.easter, subcmd.MustRegisteredFlagSet(&easterFlags{}))
	cmdSet.Set("systems").MustRunnerAndFlags(a.systems, subcmd.MustRegisteredFlagSet(&systemsFlags{}))
	return cmdSet
}

func main() {
	cmdSet := newCommandSet(&app{out: os.Stdout, now: time.Now})
	subcmd.Dispatch(context.Background(), cmdSet)
}
