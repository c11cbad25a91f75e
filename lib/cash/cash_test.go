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
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v2"

	"github.com/sboehler/tortoise/lib/common/date"
)

func year2020() date.Period {
	return date.Period{Start: date.New(2020, 1, 1), End: date.New(2020, 12, 31)}
}

func TestPaymentsPrincipal(t *testing.T) {
	cf := CashFlow{
		Name:      "Salary",
		Amount:    5000,
		Frequency: MonthStart,
	}

	got := cf.Payments(date.Period{Start: date.New(2020, 1, 1), End: date.New(2020, 3, 31)}, false)

	want := []Payment{
		{CashFlow: cf, Date: date.New(2020, 1, 1), Amount: 5000},
		{CashFlow: cf, Date: date.New(2020, 2, 1), Amount: 5000},
		{CashFlow: cf, Date: date.New(2020, 3, 1), Amount: 5000},
	}
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(date.Date{})); diff != "" {
		t.Fatalf("unexpected diff (-want, +got):\n%s", diff)
	}
}

func TestPaymentsTax(t *testing.T) {
	cf := CashFlow{
		Name:      "Salary",
		Amount:    5000,
		Frequency: MonthStart,
		TaxRate:   0.2,
	}

	got := cf.Payments(date.Period{Start: date.New(2020, 1, 1), End: date.New(2020, 2, 29)}, true)

	taxed := cf
	taxed.Name = "Salary Tax"
	want := []Payment{
		{CashFlow: taxed, Date: date.New(2020, 1, 1), Amount: -1000},
		{CashFlow: taxed, Date: date.New(2020, 2, 1), Amount: -1000},
	}
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(date.Date{})); diff != "" {
		t.Fatalf("unexpected diff (-want, +got):\n%s", diff)
	}
}

func TestPaymentsTaxSuppressed(t *testing.T) {
	cf := CashFlow{
		Name:      "Rent",
		Amount:    -2000,
		Frequency: MonthStart,
	}

	if got := cf.Payments(year2020(), true); got != nil {
		t.Fatalf("expected no tax payments for an untaxed cash flow, got %d", len(got))
	}
}

func TestAccountPaymentsSorted(t *testing.T) {
	a := &Account{
		Name: "Checking",
		CashFlows: []CashFlow{
			{Name: "Bonus", Amount: 1000, Frequency: MonthEnd},
			{Name: "Salary", Amount: 5000, Frequency: MonthStart, TaxRate: 0.25},
		},
		StartDate: date.New(2020, 1, 1),
		EndDate:   date.New(2020, 12, 31),
	}

	got := a.Payments(date.Period{Start: date.New(2020, 1, 1), End: date.New(2020, 2, 1)})

	if len(got) != 5 {
		t.Fatalf("expected 5 payments, got %d", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i].Date.Before(got[i-1].Date) {
			t.Fatalf("payments out of order: %s after %s", got[i].Date, got[i-1].Date)
		}
	}
	// Jan 1 carries both the salary and its withholding.
	if got[0].Amount+got[1].Amount != 5000-1250 {
		t.Fatalf("unexpected amounts on first day: %v, %v", got[0].Amount, got[1].Amount)
	}
}

func TestFlowsAt(t *testing.T) {
	a := &Account{
		Name: "Checking",
		CashFlows: []CashFlow{
			{Name: "Salary", Amount: 5000, Frequency: MonthStart, TaxRate: 0.2},
			{Name: "Rent", Amount: -2000, Frequency: MonthStart},
		},
		StartDate: date.New(2020, 1, 1),
		EndDate:   date.New(2020, 12, 31),
	}

	got := a.FlowsAt(date.New(2020, 2, 1))

	if len(got) != 3 {
		t.Fatalf("expected 3 flows, got %d", len(got))
	}
	if sum := Sum(got); sum != 5000-1000-2000 {
		t.Fatalf("Sum() = %v, want %v", sum, 2000)
	}

	if got := a.FlowsAt(date.New(2020, 2, 2)); got != nil {
		t.Fatalf("expected no flows, got %d", len(got))
	}
}

func TestCashFlowValidate(t *testing.T) {
	start := date.New(2020, 1, 1)
	tests := []struct {
		desc    string
		cf      CashFlow
		wantErr bool
	}{
		{
			desc: "valid monthly",
			cf:   CashFlow{Name: "Rent", Amount: -2000, Frequency: MonthStart},
		},
		{
			desc:    "once without start date",
			cf:      CashFlow{Name: "Vacation", Amount: -10000, Frequency: Once},
			wantErr: true,
		},
		{
			desc:    "annually without start date",
			cf:      CashFlow{Name: "Insurance", Amount: -1200, Frequency: Annually},
			wantErr: true,
		},
		{
			desc: "annually with start date",
			cf:   CashFlow{Name: "Insurance", Amount: -1200, Frequency: Annually, StartDate: &start},
		},
		{
			desc:    "tax rate above one",
			cf:      CashFlow{Name: "Salary", Amount: 5000, Frequency: MonthStart, TaxRate: 1.5},
			wantErr: true,
		},
	}
	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			err := test.cf.Validate()

			if (err != nil) != test.wantErr {
				t.Fatalf("Validate() = %v, wantErr = %t", err, test.wantErr)
			}
		})
	}
}

func TestAccountYAMLRoundtrip(t *testing.T) {
	start := date.New(2024, 11, 5)
	a := &Account{
		Name:    "Example",
		Balance: 10000,
		CashFlows: []CashFlow{
			{Name: "Income", Amount: 5000, Frequency: SemiMonthly, TaxRate: 0.2, Tags: []string{"Income"}},
			{Name: "Vacation", Amount: -10000, Frequency: Once, StartDate: &start},
		},
		StartDate: date.New(2024, 1, 1),
		EndDate:   date.New(2024, 12, 31),
	}

	bs, err := yaml.Marshal(a)
	if err != nil {
		t.Fatal(err)
	}
	var got Account
	if err := yaml.Unmarshal(bs, &got); err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff(a, &got, cmp.AllowUnexported(date.Date{})); diff != "" {
		t.Fatalf("unexpected diff (-want, +got):\n%s", diff)
	}
}
