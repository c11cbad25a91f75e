// Copyright 2023 Silvio Böhler
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package date provides day-granular calendar types for the simulator.
package date

import (
	"encoding/json"
	"fmt"
	"time"
)

// Layout is the string representation of a date.
const Layout = "2006-01-02"

// Date is a calendar date with day granularity.
type Date struct {
	year  int
	month time.Month
	day   int
}

// New creates a normalized date.
func New(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.year, d.month, d.day = d.Time().Date()
	return d
}

// FromTime truncates a time to its calendar date.
func FromTime(t time.Time) Date {
	return New(t.Date())
}

// Today returns the current date.
func Today() Date {
	return FromTime(time.Now())
}

// Parse parses a date in ISO-8601 format.
func Parse(s string) (Date, error) {
	t, err := time.Parse(Layout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q, want format %q: %w", s, Layout, err)
	}
	return FromTime(t), nil
}

// MustParse is like Parse but panics on error.
func MustParse(s string) Date {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Time returns the canonical representation of the date (midnight UTC).
func (d Date) Time() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

// Year returns the year.
func (d Date) Year() int { return d.year }

// Month returns the month.
func (d Date) Month() time.Month { return d.month }

// Day returns the day of the month.
func (d Date) Day() int { return d.day }

// Weekday returns the day of the week.
func (d Date) Weekday() time.Weekday { return d.Time().Weekday() }

// AddDays returns the date the given number of days later (or earlier,
// for negative n).
func (d Date) AddDays(n int) Date {
	return New(d.year, d.month, d.day+n)
}

// Equal reports whether the dates are equal.
func (d Date) Equal(x Date) bool { return d == x }

// Before reports whether d is before x.
func (d Date) Before(x Date) bool { return d.Time().Before(x.Time()) }

// After reports whether d is after x.
func (d Date) After(x Date) bool { return d.Time().After(x.Time()) }

// IsZero reports whether the date is the zero value.
func (d Date) IsZero() bool { return d == Date{} }

func (d Date) String() string {
	return d.Time().Format(Layout)
}

// MarshalJSON implements json.Marshaler.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Date) UnmarshalJSON(bs []byte) error {
	var s string
	if err := json.Unmarshal(bs, &s); err != nil {
		return err
	}
	res, err := Parse(s)
	if err != nil {
		return err
	}
	*d = res
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Date) MarshalYAML() (interface{}, error) {
	return d.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Date) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	res, err := Parse(s)
	if err != nil {
		return err
	}
	*d = res
	return nil
}

// Period is an inclusive range of dates.
type Period struct {
	Start, End Date
}

// Contains reports whether the period contains the given date.
func (p Period) Contains(d Date) bool {
	return !d.Before(p.Start) && !d.After(p.End)
}

// Clip clips the period to the given bounds.
func (p Period) Clip(p2 Period) Period {
	if p2.Start.After(p.Start) {
		p.Start = p2.Start
	}
	if p2.End.Before(p.End) {
		p.End = p2.End
	}
	return p
}

// Days returns the number of days in the period, both ends included.
func (p Period) Days() int {
	if p.End.Before(p.Start) {
		return 0
	}
	return int(p.End.Time().Sub(p.Start.Time())/(24*time.Hour)) + 1
}

// Dates returns every date in the period in chronological order.
func (p Period) Dates() []Date {
	var res []Date
	for d := p.Start; !d.After(p.End); d = d.AddDays(1) {
		res = append(res, d)
	}
	return res
}
