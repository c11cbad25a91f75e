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

// Package chart renders simulation results as a line chart PNG.
package chart

import (
	"fmt"
	"sort"

	"github.com/vicanso/go-charts/v2"

	"github.com/sboehler/tortoise/lib/scenario"
)

// Render draws the mean invested and uninvested balance of every
// account over the simulated window and returns the encoded PNG.
func Render(title string, results map[string]*scenario.Result) ([]byte, error) {
	names := make([]string, 0, len(results))
	for name := range results {
		names = append(names, name)
	}
	sort.Strings(names)
	if len(names) == 0 {
		return nil, fmt.Errorf("no results to chart")
	}

	var (
		series  [][]float64
		legends []string
		xLabels []string
	)
	for _, ab := range results[names[0]].Balances {
		layout := "Jan 02"
		if len(results[names[0]].Balances) > 60 {
			layout = "Jan '06"
		}
		xLabels = append(xLabels, ab.Date.Time().Format(layout))
	}
	for _, name := range names {
		var (
			res        = results[name]
			invested   = make([]float64, 0, len(res.Balances))
			uninvested = make([]float64, 0, len(res.UninvestedBalances))
		)
		for _, ab := range res.Balances {
			invested = append(invested, ab.Balance)
		}
		for _, ab := range res.UninvestedBalances {
			uninvested = append(uninvested, ab.Balance)
		}
		series = append(series, invested, uninvested)
		legends = append(legends, name, name+" (cash)")
	}

	var (
		yMin = series[0][0]
		yMax = series[0][0]
	)
	for _, s := range series {
		for _, v := range s {
			if v < yMin {
				yMin = v
			}
			if v > yMax {
				yMax = v
			}
		}
	}
	padding := (yMax - yMin) * 0.05
	if padding == 0 {
		padding = yMax * 0.05
	}
	yMin -= padding
	yMax += padding

	splitNum := 6
	if len(xLabels) <= 30 {
		splitNum = len(xLabels) / 3
		if splitNum < 3 {
			splitNum = 3
		}
	}

	p, err := charts.LineRender(
		series,
		charts.TitleTextOptionFunc(title),
		charts.XAxisOptionFunc(charts.XAxisOption{
			Data:        xLabels,
			SplitNumber: splitNum,
			BoundaryGap: charts.FalseFlag(),
		}),
		charts.YAxisOptionFunc(charts.YAxisOption{
			Min:         &yMin,
			Max:         &yMax,
			DivideCount: 5,
		}),
		charts.LegendOptionFunc(charts.LegendOption{Data: legends}),
		charts.ThemeOptionFunc(charts.ThemeLight),
	)
	if err != nil {
		return nil, fmt.Errorf("rendering chart: %w", err)
	}
	bs, err := p.Bytes()
	if err != nil {
		return nil, fmt.Errorf("encoding chart: %w", err)
	}
	return bs, nil
}
