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
	"github.com/sboehler/tortoise/lib/cash"
	"github.com/sboehler/tortoise/lib/common/date"
	"github.com/sboehler/tortoise/lib/portfolio"
)

// ExampleAccount returns a small household account with income,
// expenses and a one-off purchase.
func ExampleAccount() cash.Account {
	vacation := date.New(2024, 11, 5)
	return cash.Account{
		Name:    "Example",
		Balance: 10000,
		CashFlows: []cash.CashFlow{
			{
				Name:      "Income",
				Amount:    5000,
				Frequency: cash.SemiMonthly,
				TaxRate:   0.2,
				Tags:      []string{"Income"},
			},
			{
				Name:      "Mortgage",
				Amount:    -4000,
				Frequency: cash.MonthStart,
				Tags:      []string{"Expenses"},
			},
			{
				Name:      "Other Expenses",
				Amount:    -1000,
				Frequency: cash.MonthStart,
				Tags:      []string{"Expenses"},
			},
			{
				Name:      "Vacation",
				Amount:    -10000,
				Frequency: cash.Once,
				StartDate: &vacation,
				Tags:      []string{"Leisure"},
			},
		},
		StartDate: date.New(2024, 1, 1),
		EndDate:   date.New(2024, 12, 31),
	}
}

// ExamplePortfolio returns a plain equity portfolio.
func ExamplePortfolio() *portfolio.Portfolio {
	return &portfolio.Portfolio{
		Assets: []portfolio.Asset{
			{Name: "Equities", MeanReturn: 0.07, StdDev: 0.15},
		},
		Weights: []float64{1},
	}
}

// ExampleScenario returns a two-account scenario, one account invested
// in the example portfolio.
func ExampleScenario() *Scenario {
	var (
		checking = ExampleAccount()
		invested = ExampleAccount()
	)
	checking.Name = "Checking"
	invested.Name = "Brokerage"
	return &Scenario{
		Accounts: []InvestedAccount{
			{Account: checking},
			{Account: invested, Portfolio: ExamplePortfolio()},
		},
		StartDate:  date.New(2024, 1, 1),
		EndDate:    date.New(2024, 12, 31),
		NumSamples: 100,
	}
}
