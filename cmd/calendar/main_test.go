// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"cloudeng.io/calendar"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// run dispatches the command line with a fixed current time of
// 2024-02-10 12:00 UTC.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	out := &bytes.Buffer{}
	a := &app{
		out: out,
		now: func() time.Time { return time.Date(2024, 2, 10, 12, 0, 0, 0, time.UTC) },
	}
	cmdSet := newCommandSet(a)
	err := cmdSet.DispatchWithArgs(t.Context(), append([]string{os.Args[0]}, args...)...)
	return out.String(), err
}

func TestGolden(t *testing.T) {
	g := goldie.New(t, goldie.WithFixtureDir("testdata"))
	for _, tc := range []struct {
		name string
		args []string
	}{
		{"month_feb2024", []string{"month", "2024-02"}},
		{"month_feb2024", []string{"month", "--location=UTC"}},
		{"month_feb2024_zh_monday", []string{"month", "--first-weekday=mon", "--lang=zh-CN", "Feb 2024"}},
		{"convert_weekdays", []string{"convert", "--weekdays", "--to=julian,chinese", "2024-02-27:2024-03-02"}},
		{"easter_2024", []string{"easter", "2024"}},
		{"info_2024-02-10", []string{"info", "--location=Asia/Shanghai", "2024-02-10"}},
	} {
		out, err := run(t, tc.args...)
		require.NoError(t, err, tc.args)
		g.Assert(t, tc.name, []byte(out))
	}
}

func TestConvert(t *testing.T) {
	for _, tc := range []struct {
		args []string
		want string
	}{
		{[]string{"convert", "--from=jdn", "--to=gregorian", "2451545"},
			"2451545 jdn = 2000-01-01 gregorian\n"},
		{[]string{"convert", "--calendar=historical", "1582-10-04"},
			"1582-10-04 historical = 1582-10-14 gregorian, 1582-10-04 julian\n"},
		{[]string{"convert", "--from=chinese", "--to=gregorian", "2023-L02-01", "2024-01-01"},
			"2023-L02-01 chinese = 2023-03-22 gregorian\n2024-01-01 chinese = 2024-02-10 gregorian\n"},
		{[]string{"convert", "--weekends", "--to=gregorian", "--exclude=2024-03-03", "2024-02-27:2024-03-03"},
			"2024-03-02 gregorian = 2024-03-02 gregorian\n"},
	} {
		out, err := run(t, tc.args...)
		require.NoError(t, err, tc.args)
		assert.Equal(t, tc.want, out, tc.args)
	}

	out, err := run(t, "convert", "--to=julian", "2024-01-14", "2023-02-30")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid date")
	assert.Equal(t, "2024-01-14 gregorian = 2024-01-01 julian\n", out)

	out, err = run(t, "convert", "--format=json", "--to=julian", "2024-01-14")
	require.NoError(t, err)
	var cvs []conversion
	require.NoError(t, json.Unmarshal([]byte(out), &cvs))
	require.Len(t, cvs, 1)
	assert.Equal(t, calendar.JDN(2460324), cvs[0].JDN)
	assert.Equal(t, []calendar.Date{calendar.NewDate(calendar.Julian, 2024, 1, 1)}, cvs[0].Dates)
}

func TestEncodings(t *testing.T) {
	out, err := run(t, "month", "--format=json", "--first-weekday=monday", "2024-02")
	require.NoError(t, err)
	var grid calendar.Grid
	require.NoError(t, json.Unmarshal([]byte(out), &grid))
	assert.Equal(t, calendar.Gregorian, grid.System)
	assert.Equal(t, time.Monday, grid.FirstWeekday)
	assert.Len(t, grid.Weeks, 5)
	assert.Equal(t, 1, grid.Weeks[0][3].Day)

	out, err = run(t, "year", "--format=yaml", "--calendar=chinese", "2023")
	require.NoError(t, err)
	var grids []calendar.Grid
	require.NoError(t, yaml.Unmarshal([]byte(out), &grids))
	assert.Len(t, grids, 13)
	assert.True(t, grids[2].Leap)

	out, err = run(t, "systems", "--format=yaml")
	require.NoError(t, err)
	var infos []systemInfo
	require.NoError(t, yaml.Unmarshal([]byte(out), &infos))
	assert.Len(t, infos, 4)

	out, err = run(t, "systems")
	require.NoError(t, err)
	for _, sys := range calendar.Systems() {
		assert.Contains(t, out, sys.String()+":\n    ")
	}
	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, len([]rune(line)), 90, line)
	}

	out, err = run(t, "info", "--format=json", "--calendar=chinese", "2024-01-01")
	require.NoError(t, err)
	var alm calendar.Almanac
	require.NoError(t, json.Unmarshal([]byte(out), &alm))
	assert.Equal(t, calendar.JDN(2460351), alm.JDN)
	assert.Equal(t, "Dragon", alm.Zodiac)
}

func TestYear(t *testing.T) {
	out, err := run(t, "year")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, strings.Repeat(" ", 30)+"2024\n"), out)

	out, err = run(t, "year", "--lunar", "--lang=zh", "2024")
	require.NoError(t, err)
	assert.Contains(t, out, "2024年")
	assert.Contains(t, out, "正月")

	out, err = run(t, "month", "--highlight", "2024-02")
	require.NoError(t, err)
	assert.Contains(t, out, "February 2024")
}

func TestConfig(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "calendar.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("calendar: julian\nfirst_weekday: monday\nformat: json\n"), 0o600))

	out, err := run(t, "month", "--config="+cfg, "2024-02")
	require.NoError(t, err)
	var grid calendar.Grid
	require.NoError(t, json.Unmarshal([]byte(out), &grid))
	assert.Equal(t, calendar.Julian, grid.System)
	assert.Equal(t, time.Monday, grid.FirstWeekday)

	out, err = run(t, "month", "--config="+cfg, "--calendar=gregorian", "--format=text", "--first-weekday=sunday", "2024-02")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "   February 2024\n"), out)

	require.NoError(t, os.WriteFile(cfg, []byte("calendar: [julian\n"), 0o600))
	_, err = run(t, "month", "--config="+cfg, "2024-02")
	require.Error(t, err)

	_, err = run(t, "month", "--config="+filepath.Join(t.TempDir(), "missing.yaml"), "2024-02")
	require.Error(t, err)
}

func TestErrors(t *testing.T) {
	for _, tc := range []struct {
		args []string
		msg  string
	}{
		{[]string{"month", "2023-13"}, "invalid month"},
		{[]string{"month", "--calendar=mayan"}, "unsupported calendar system"},
		{[]string{"month", "--format=xml"}, "unsupported output format"},
		{[]string{"month", "--lang=fr"}, "unsupported language"},
		{[]string{"month", "--first-weekday=x"}, "invalid weekday"},
		{[]string{"month", "--location=Nowhere/City"}, "invalid location"},
		{[]string{"year", "twenty"}, "invalid year"},
		{[]string{"year", "--calendar=chinese", "1800"}, "out of range"},
		{[]string{"info", "--calendar=historical", "1582-10-10"}, "invalid date"},
		{[]string{"easter", "--calendar=chinese", "2024"}, "unsupported calendar system"},
		{[]string{"convert", "--from=jdn", "1:2"}, "not supported"},
		{[]string{"convert", "--to=aztec", "2024-01-01"}, "unsupported calendar system"},
	} {
		_, err := run(t, tc.args...)
		require.Error(t, err, tc.args)
		assert.Contains(t, err.Error(), tc.msg, tc.args)
	}
}
