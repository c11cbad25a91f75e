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

package table

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
)

func testTable() *Table {
	tbl := New(1, 1)
	tbl.AddSeparatorRow()
	tbl.AddRow().AddText("Flow", Center).AddText("Tax", Center)
	tbl.AddSeparatorRow()
	tbl.AddRow().AddIndented("Income", 2).AddPercent(0.2)
	tbl.AddRow().AddText("Rent", Left).AddNumber(decimal.RequireFromString("-1234.5"))
	tbl.AddSeparatorRow()
	return tbl
}

func TestTextRenderer(t *testing.T) {
	var (
		r   = &TextRenderer{Round: 2}
		buf bytes.Buffer
	)

	if err := r.Render(testTable(), &buf); err != nil {
		t.Fatalf("Render() returned error: %v", err)
	}

	want := "" +
		"+----------+-----------+\n" +
		"|   Flow   |    Tax    |\n" +
		"+----------+-----------+\n" +
		"|   Income |     20.0% |\n" +
		"| Rent     | -1,234.50 |\n" +
		"+----------+-----------+\n" +
		"\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Fatalf("unexpected diff (-want, +got):\n%s", diff)
	}
}

func TestCSVRenderer(t *testing.T) {
	var buf bytes.Buffer

	if err := (&CSVRenderer{}).Render(testTable(), &buf); err != nil {
		t.Fatalf("Render() returned error: %v", err)
	}

	want := "" +
		"Flow,Tax\n" +
		"Income,0.200000\n" +
		"Rent,-1234.5\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Fatalf("unexpected diff (-want, +got):\n%s", diff)
	}
}
