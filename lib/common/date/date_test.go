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

package date

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input   string
		want    Date
		wantErr bool
	}{
		{input: "2020-01-01", want: New(2020, 1, 1)},
		{input: "2020-02-29", want: New(2020, 2, 29)},
		{input: "2020-1-1", wantErr: true},
		{input: "not a date", wantErr: true},
	}
	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			got, err := Parse(test.input)

			if (err != nil) != test.wantErr {
				t.Fatalf("Parse(%q) returned error %v, wantErr = %t", test.input, err, test.wantErr)
			}
			if got != test.want {
				t.Fatalf("Parse(%q) = %v, want %v", test.input, got, test.want)
			}
		})
	}
}

func TestAddDays(t *testing.T) {
	tests := []struct {
		desc string
		d    Date
		n    int
		want Date
	}{
		{desc: "within month", d: New(2020, 1, 1), n: 3, want: New(2020, 1, 4)},
		{desc: "across month end", d: New(2020, 1, 31), n: 1, want: New(2020, 2, 1)},
		{desc: "across leap day", d: New(2020, 2, 28), n: 2, want: New(2020, 3, 1)},
		{desc: "backwards", d: New(2020, 3, 1), n: -1, want: New(2020, 2, 29)},
		{desc: "across year end", d: New(2020, 12, 31), n: 1, want: New(2021, 1, 1)},
	}
	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			if got := test.d.AddDays(test.n); got != test.want {
				t.Fatalf("%v.AddDays(%d) = %v, want %v", test.d, test.n, got, test.want)
			}
		})
	}
}

func TestNormalization(t *testing.T) {
	got := New(2020, 1, 32)

	if want := New(2020, 2, 1); got != want {
		t.Fatalf("New(2020, 1, 32) = %v, want %v", got, want)
	}
	if got.Month() != time.February || got.Day() != 1 {
		t.Fatalf("unexpected components: %v", got)
	}
}

func TestPeriodDays(t *testing.T) {
	tests := []struct {
		desc string
		p    Period
		want int
	}{
		{desc: "single day", p: Period{New(2020, 1, 1), New(2020, 1, 1)}, want: 1},
		{desc: "leap year", p: Period{New(2020, 1, 1), New(2020, 12, 31)}, want: 366},
		{desc: "inverted", p: Period{New(2020, 1, 2), New(2020, 1, 1)}, want: 0},
	}
	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			if got := test.p.Days(); got != test.want {
				t.Fatalf("%v.Days() = %d, want %d", test.p, got, test.want)
			}
		})
	}
}

func TestPeriodDates(t *testing.T) {
	p := Period{New(2020, 2, 27), New(2020, 3, 1)}

	want := []Date{
		New(2020, 2, 27),
		New(2020, 2, 28),
		New(2020, 2, 29),
		New(2020, 3, 1),
	}
	if diff := cmp.Diff(want, p.Dates(), cmp.AllowUnexported(Date{})); diff != "" {
		t.Fatalf("unexpected diff (-want, +got):\n%s", diff)
	}
}

func TestPeriodClip(t *testing.T) {
	p := Period{New(2020, 1, 1), New(2020, 12, 31)}

	got := p.Clip(Period{New(2020, 3, 1), New(2020, 6, 30)})

	if want := (Period{New(2020, 3, 1), New(2020, 6, 30)}); got != want {
		t.Fatalf("Clip() = %v, want %v", got, want)
	}
}
