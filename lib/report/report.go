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

// Package report turns simulation results into renderable tables.
package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/sboehler/tortoise/lib/cash"
	"github.com/sboehler/tortoise/lib/common/table"
	"github.com/sboehler/tortoise/lib/scenario"
)

// BalanceBuilder builds a table of daily balances, one row per date and
// account, with the invested and uninvested means side by side.
type BalanceBuilder struct {
	Results map[string]*scenario.Result

	// Filter restricts rows to dates matching the frequency. The last
	// simulated day is always included. Nil includes every day.
	Filter *cash.Frequency
}

// Build creates the table.
func (b *BalanceBuilder) Build() *table.Table {
	var (
		names = sortedNames(b.Results)
		tbl   = table.New(1, 1, 2)
	)
	tbl.AddSeparatorRow()
	tbl.AddRow().
		AddText("Date", table.Center).
		AddText("Account", table.Center).
		AddText("Balance", table.Center).
		AddText("Cash Balance", table.Center)
	tbl.AddSeparatorRow()
	for _, name := range names {
		res := b.Results[name]
		for i, ab := range res.Balances {
			if !b.include(i, res) {
				continue
			}
			tbl.AddRow().
				AddDate(ab.Date).
				AddText(name, table.Left).
				AddNumber(decimal.NewFromFloat(ab.Balance).Round(2)).
				AddNumber(decimal.NewFromFloat(res.UninvestedBalances[i].Balance).Round(2))
		}
		tbl.AddSeparatorRow()
	}
	return tbl
}

func (b *BalanceBuilder) include(i int, res *scenario.Result) bool {
	if b.Filter == nil || i == len(res.Balances)-1 {
		return true
	}
	return b.Filter.Matches(res.Balances[i].Date, nil, nil)
}

// PaymentsBuilder builds a table of every realized payment, ordered by
// date, account and cash flow name.
type PaymentsBuilder struct {
	Results map[string]*scenario.Result
}

// Build creates the table.
func (b *PaymentsBuilder) Build() *table.Table {
	type row struct {
		account string
		payment cash.Payment
	}
	var rows []row
	for _, name := range sortedNames(b.Results) {
		for _, p := range b.Results[name].Payments {
			rows = append(rows, row{account: name, payment: p})
		}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if !rows[i].payment.Date.Equal(rows[j].payment.Date) {
			return rows[i].payment.Date.Before(rows[j].payment.Date)
		}
		return rows[i].account < rows[j].account
	})

	tbl := table.New(1, 1, 1, 1)
	tbl.AddSeparatorRow()
	tbl.AddRow().
		AddText("Date", table.Center).
		AddText("Account", table.Center).
		AddText("Cash Flow", table.Center).
		AddText("Amount", table.Center)
	tbl.AddSeparatorRow()
	for _, r := range rows {
		tbl.AddRow().
			AddDate(r.payment.Date).
			AddText(r.account, table.Left).
			AddText(r.payment.CashFlow.Name, table.Left).
			AddNumber(decimal.NewFromFloat(r.payment.Amount).Round(2))
	}
	tbl.AddSeparatorRow()
	return tbl
}

func sortedNames(results map[string]*scenario.Result) []string {
	names := make([]string, 0, len(results))
	for name := range results {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
