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

// Package cash models recurring cash flows and the accounts they apply to.
package cash

import (
	"fmt"
	"sort"

	"go.uber.org/multierr"

	"github.com/sboehler/tortoise/lib/common/date"
)

// CashFlow is a recurring or one-off amount applied to an account on
// every date matching its frequency.
type CashFlow struct {
	Name      string     `yaml:"name,omitempty" json:"name,omitempty"`
	Amount    float64    `yaml:"amount" json:"amount"`
	Frequency Frequency  `yaml:"frequency" json:"frequency"`
	StartDate *date.Date `yaml:"start_date,omitempty" json:"start_date,omitempty"`
	EndDate   *date.Date `yaml:"end_date,omitempty" json:"end_date,omitempty"`
	TaxRate   float64    `yaml:"tax_rate,omitempty" json:"tax_rate,omitempty"`
	Tags      []string   `yaml:"tags,omitempty" json:"tags,omitempty"`
}

// Payment is one concrete occurrence of a cash flow on a date. For tax
// payments, the attached cash flow carries the derived "<name> Tax" name.
type Payment struct {
	CashFlow CashFlow  `yaml:"cash_flow" json:"cash_flow"`
	Date     date.Date `yaml:"date" json:"date"`
	Amount   float64   `yaml:"amount" json:"amount"`
}

// Payments expands the cash flow into its concrete payments within the
// given period, in chronological order. In tax mode, each payment amount
// is the negated withholding on the principal; a cash flow without a tax
// rate produces no tax payments at all.
func (cf CashFlow) Payments(period date.Period, tax bool) []Payment {
	if tax && cf.TaxRate == 0 {
		return nil
	}
	amount := cf.Amount
	flow := cf
	if tax {
		amount = -cf.Amount * cf.TaxRate
		flow.Name = fmt.Sprintf("%s Tax", cf.Name)
	}
	var res []Payment
	for d := period.Start; !d.After(period.End); d = d.AddDays(1) {
		if !cf.Frequency.Matches(d, cf.StartDate, cf.EndDate) {
			continue
		}
		res = append(res, Payment{
			CashFlow: flow,
			Date:     d,
			Amount:   amount,
		})
	}
	return res
}

// Validate checks the cash flow configuration.
func (cf CashFlow) Validate() error {
	var errs error
	if cf.Frequency.RequiresStartDate() && cf.StartDate == nil {
		errs = multierr.Append(errs, fmt.Errorf("cash flow %q: frequency %s requires a start date", cf.Name, cf.Frequency))
	}
	if cf.TaxRate < 0 || cf.TaxRate > 1 {
		errs = multierr.Append(errs, fmt.Errorf("cash flow %q: tax rate %v outside [0, 1]", cf.Name, cf.TaxRate))
	}
	if cf.StartDate != nil && cf.EndDate != nil && cf.EndDate.Before(*cf.StartDate) {
		errs = multierr.Append(errs, fmt.Errorf("cash flow %q: end date %s before start date %s", cf.Name, cf.EndDate, cf.StartDate))
	}
	return errs
}

// Account is a named balance subject to a set of cash flows. The name is
// the account's identity: results and transfers refer to it by name.
type Account struct {
	Name      string     `yaml:"name" json:"name"`
	Balance   float64    `yaml:"balance" json:"balance"`
	CashFlows []CashFlow `yaml:"cash_flows" json:"cash_flows"`
	StartDate date.Date  `yaml:"start_date" json:"start_date"`
	EndDate   date.Date  `yaml:"end_date" json:"end_date"`
}

// Period returns the account's date window.
func (a *Account) Period() date.Period {
	return date.Period{Start: a.StartDate, End: a.EndDate}
}

// Payments returns every principal and tax payment of the account within
// the period, sorted by date.
func (a *Account) Payments(period date.Period) []Payment {
	var res []Payment
	for _, cf := range a.CashFlows {
		res = append(res, cf.Payments(period, false)...)
		res = append(res, cf.Payments(period, true)...)
	}
	sort.SliceStable(res, func(i, j int) bool {
		return res[i].Date.Before(res[j].Date)
	})
	return res
}

// FlowsAt returns the payments realized exactly on the given date. All
// payments share one date, so no re-sorting is needed.
func (a *Account) FlowsAt(d date.Date) []Payment {
	p := date.Period{Start: d, End: d}
	var res []Payment
	for _, cf := range a.CashFlows {
		res = append(res, cf.Payments(p, false)...)
		res = append(res, cf.Payments(p, true)...)
	}
	return res
}

// Validate checks the account configuration.
func (a *Account) Validate() error {
	var errs error
	if a.Name == "" {
		errs = multierr.Append(errs, fmt.Errorf("account without a name"))
	}
	if a.EndDate.Before(a.StartDate) {
		errs = multierr.Append(errs, fmt.Errorf("account %q: end date %s before start date %s", a.Name, a.EndDate, a.StartDate))
	}
	for _, cf := range a.CashFlows {
		errs = multierr.Append(errs, cf.Validate())
	}
	return errs
}

// Sum returns the total amount of the given payments.
func Sum(ps []Payment) float64 {
	var res float64
	for _, p := range ps {
		res += p.Amount
	}
	return res
}
