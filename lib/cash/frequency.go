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

package cash

import (
	"fmt"
	"time"

	"github.com/sboehler/tortoise/lib/common/date"
)

// Frequency is a recurrence pattern for cash flows and transfers.
type Frequency int

const (
	// Once matches the start date exactly.
	Once Frequency = iota
	// MonthStart matches the first day of every month.
	MonthStart
	// MonthEnd matches the last day of every month.
	MonthEnd
	// SemiMonthly matches the 15th and the last day of every month.
	SemiMonthly
	// Annually matches the month and day of the start date every year.
	Annually
	// BusinessDay matches every weekday.
	BusinessDay
)

// daysInMonth is the number of days in each month. February is always 28,
// so Feb 29 never terminates a month here, leap year or not.
var daysInMonth = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// Fraction returns the fraction of a year covered by one occurrence,
// used to scale annualized return parameters.
func (f Frequency) Fraction() float64 {
	switch f {
	case Once, Annually:
		return 1.0
	case MonthStart, MonthEnd:
		return 1.0 / 12.0
	case SemiMonthly:
		return 1.0 / 24.0
	case BusinessDay:
		return 1.0 / 252.0
	}
	return 1.0
}

// Matches reports whether the frequency recurs on the given date, within
// the optional start and end bounds. Once and Annually never match
// without a start bound.
func (f Frequency) Matches(d date.Date, start, end *date.Date) bool {
	if start != nil && start.After(d) {
		return false
	}
	if end != nil && end.Before(d) {
		return false
	}
	switch f {
	case Once:
		return start != nil && *start == d
	case MonthStart:
		return d.Day() == 1
	case MonthEnd:
		return d.Day() == daysInMonth[d.Month()-1]
	case SemiMonthly:
		return d.Day() == 15 || d.Day() == daysInMonth[d.Month()-1]
	case Annually:
		return start != nil && d.Month() == start.Month() && d.Day() == start.Day()
	case BusinessDay:
		wd := d.Weekday()
		return wd != time.Saturday && wd != time.Sunday
	}
	return false
}

// RequiresStartDate reports whether the frequency is meaningless without
// a start bound.
func (f Frequency) RequiresStartDate() bool {
	return f == Once || f == Annually
}

var frequencyNames = map[Frequency]string{
	Once:        "Once",
	MonthStart:  "MonthStart",
	MonthEnd:    "MonthEnd",
	SemiMonthly: "SemiMonthly",
	Annually:    "Annually",
	BusinessDay: "BusinessDay",
}

func (f Frequency) String() string {
	if s, ok := frequencyNames[f]; ok {
		return s
	}
	return fmt.Sprintf("Frequency(%d)", int(f))
}

func parseFrequency(s string) (Frequency, error) {
	for f, name := range frequencyNames {
		if name == s {
			return f, nil
		}
	}
	return 0, fmt.Errorf("invalid frequency %q", s)
}

// MarshalJSON implements json.Marshaler.
func (f Frequency) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", f)), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (f *Frequency) UnmarshalJSON(bs []byte) error {
	if len(bs) < 2 || bs[0] != '"' || bs[len(bs)-1] != '"' {
		return fmt.Errorf("invalid frequency %s", string(bs))
	}
	res, err := parseFrequency(string(bs[1 : len(bs)-1]))
	if err != nil {
		return err
	}
	*f = res
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (f Frequency) MarshalYAML() (interface{}, error) {
	return f.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (f *Frequency) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	res, err := parseFrequency(s)
	if err != nil {
		return err
	}
	*f = res
	return nil
}
