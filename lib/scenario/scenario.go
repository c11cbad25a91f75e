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

// Package scenario assembles accounts, portfolios and transfers into a
// simulation and runs it.
package scenario

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/sboehler/tortoise/lib/cash"
	"github.com/sboehler/tortoise/lib/common/date"
	"github.com/sboehler/tortoise/lib/portfolio"
)

// InvestedAccount pairs an account with an optional portfolio. Without a
// portfolio, the account accrues no investment growth, only cash flows.
type InvestedAccount struct {
	Account   cash.Account         `yaml:"account" json:"account"`
	Portfolio *portfolio.Portfolio `yaml:"portfolio,omitempty" json:"portfolio,omitempty"`
}

// Transfer is a scheduled movement between two named accounts.
//
// Transfers are configuration-only for now: the runner validates them
// but applies no balance adjustment. See the note in run.go.
type Transfer struct {
	From      string         `yaml:"from" json:"from"`
	To        string         `yaml:"to" json:"to"`
	Frequency cash.Frequency `yaml:"frequency" json:"frequency"`
	StartDate *date.Date     `yaml:"start_date,omitempty" json:"start_date,omitempty"`
	EndDate   *date.Date     `yaml:"end_date,omitempty" json:"end_date,omitempty"`
	Amount    float64        `yaml:"amount" json:"amount"`
}

// Scenario is the full simulation input.
type Scenario struct {
	Accounts   []InvestedAccount `yaml:"accounts" json:"accounts"`
	Transfers  []Transfer        `yaml:"transfers,omitempty" json:"transfers,omitempty"`
	StartDate  date.Date         `yaml:"start_date" json:"start_date"`
	EndDate    date.Date         `yaml:"end_date" json:"end_date"`
	NumSamples int               `yaml:"num_samples" json:"num_samples"`
}

// FromAccounts creates a scenario over uninvested accounts.
func FromAccounts(accounts []cash.Account, period date.Period, samples int) *Scenario {
	s := &Scenario{
		StartDate:  period.Start,
		EndDate:    period.End,
		NumSamples: samples,
	}
	for _, a := range accounts {
		s.Accounts = append(s.Accounts, InvestedAccount{Account: a})
	}
	return s
}

// Period returns the simulated date window.
func (s *Scenario) Period() date.Period {
	return date.Period{Start: s.StartDate, End: s.EndDate}
}

// Validate checks the entire scenario configuration and reports every
// problem it finds. A scenario that validates cleanly runs to completion.
func (s *Scenario) Validate() error {
	var errs error
	if s.NumSamples < 1 {
		errs = multierr.Append(errs, fmt.Errorf("num_samples must be at least 1, got %d", s.NumSamples))
	}
	if s.EndDate.Before(s.StartDate) {
		errs = multierr.Append(errs, fmt.Errorf("end date %s before start date %s", s.EndDate, s.StartDate))
	}
	if len(s.Accounts) == 0 {
		errs = multierr.Append(errs, fmt.Errorf("scenario has no accounts"))
	}
	names := make(map[string]bool)
	for _, ia := range s.Accounts {
		if names[ia.Account.Name] {
			errs = multierr.Append(errs, fmt.Errorf("duplicate account name %q", ia.Account.Name))
		}
		names[ia.Account.Name] = true
		errs = multierr.Append(errs, ia.Account.Validate())
		if ia.Portfolio != nil {
			errs = multierr.Append(errs, ia.Portfolio.Validate())
		}
	}
	for _, t := range s.Transfers {
		if !names[t.From] {
			errs = multierr.Append(errs, fmt.Errorf("transfer from unknown account %q", t.From))
		}
		if !names[t.To] {
			errs = multierr.Append(errs, fmt.Errorf("transfer to unknown account %q", t.To))
		}
		if t.Frequency.RequiresStartDate() && t.StartDate == nil {
			errs = multierr.Append(errs, fmt.Errorf("transfer %q -> %q: frequency %s requires a start date", t.From, t.To, t.Frequency))
		}
	}
	return errs
}

// AccountBalance is one daily balance observation, averaged across
// samples.
type AccountBalance struct {
	Date        date.Date `yaml:"date" json:"date"`
	AccountName string    `yaml:"account_name" json:"account_name"`
	Balance     float64   `yaml:"balance" json:"balance"`
}

// Result is the simulation outcome for one account: the invested and
// uninvested balance trajectories and every realized payment, all in
// chronological order.
type Result struct {
	Balances           []AccountBalance `yaml:"balances" json:"balances"`
	UninvestedBalances []AccountBalance `yaml:"uninvested_balances" json:"uninvested_balances"`
	Payments           []cash.Payment   `yaml:"payments" json:"payments"`
}
