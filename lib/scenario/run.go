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

package scenario

import (
	"golang.org/x/sync/errgroup"

	"github.com/sboehler/tortoise/lib/cash"
	"github.com/sboehler/tortoise/lib/common/vector"
	"github.com/sboehler/tortoise/lib/portfolio"
)

// Runner runs scenarios.
type Runner struct {
	// Seed is the root seed for return sampling. Each account derives
	// its own sub-seed, so results are reproducible regardless of
	// scheduling.
	Seed uint64

	// Progress, if set, is called once per simulated account-day.
	Progress func()
}

// Run simulates the scenario and returns the results keyed by account
// name. Accounts are independent of each other — transfers carry no
// balance effect yet — so each account is simulated in its own
// goroutine, day by day.
func (r *Runner) Run(s *Scenario) (map[string]*Result, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	results := make([]*Result, len(s.Accounts))
	g := new(errgroup.Group)
	for i := range s.Accounts {
		i := i
		g.Go(func() error {
			results[i] = r.runAccount(s, &s.Accounts[i], r.Seed+uint64(i))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	res := make(map[string]*Result, len(s.Accounts))
	for i, ia := range s.Accounts {
		res[ia.Account.Name] = results[i]
	}
	return res, nil
}

// runAccount walks the scenario window one day at a time. The invested
// balance carries over from the previous day, takes the day's cash
// flows, and then accrues one day of portfolio growth; the uninvested
// balance comes straight from the accumulator.
//
// Transfers are deliberately not applied here. The data model carries
// them, but debiting the source and crediting the destination on
// matching dates is pending a product decision on how transfers
// interact with per-account growth.
func (r *Runner) runAccount(s *Scenario, ia *InvestedAccount, seed uint64) *Result {
	var (
		account  = &ia.Account
		balances = cash.NewBalances(s.NumSamples)
		model    = portfolio.NewModel(seed)
		res      = new(Result)
		prev     vector.Vector
	)
	for d := s.StartDate; !d.After(s.EndDate); d = d.AddDays(1) {
		var (
			uninvested = balances.At(account, d)
			flows      = account.FlowsAt(d)
			bd         vector.Vector
		)
		res.UninvestedBalances = append(res.UninvestedBalances, AccountBalance{
			Date:        d,
			AccountName: account.Name,
			Balance:     uninvested.Mean(),
		})

		if prev.IsZero() {
			bd = uninvested
		} else {
			bd = prev
			bd.AddScalar(cash.Sum(flows))
		}
		if ia.Portfolio != nil {
			bd = model.Invest(bd, ia.Portfolio, cash.BusinessDay)
		}
		prev = bd

		res.Balances = append(res.Balances, AccountBalance{
			Date:        d,
			AccountName: account.Name,
			Balance:     bd.Mean(),
		})
		res.Payments = append(res.Payments, flows...)

		if r.Progress != nil {
			r.Progress()
		}
	}
	return res
}
