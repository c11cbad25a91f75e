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

package simulate

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/cheggaaa/pb/v3"
	"github.com/natefinch/atomic"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"github.com/sboehler/tortoise/cmd/flags"
	"github.com/sboehler/tortoise/lib/cash"
	"github.com/sboehler/tortoise/lib/chart"
	"github.com/sboehler/tortoise/lib/common/table"
	"github.com/sboehler/tortoise/lib/report"
	"github.com/sboehler/tortoise/lib/scenario"
)

// CreateCmd creates the command.
func CreateCmd() *cobra.Command {
	var r runner
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Simulate a scenario",
		Long: `Load a scenario from the given YAML file, simulate it and print the
resulting balances and payments. Stochastic portfolio returns are averaged
over the configured number of samples.`,
		Args: cobra.ExactValidArgs(1),
		Run:  r.run,
	}
	r.setupFlags(cmd)
	return cmd
}

type runner struct {
	samples   int
	seed      uint64
	from, to  flags.DateFlag
	csv       bool
	daily     bool
	color     bool
	thousands bool
	chartFile string
	digits    int32
}

func (r *runner) setupFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&r.samples, "samples", "n", 0, "override the scenario's number of samples")
	cmd.Flags().Uint64Var(&r.seed, "seed", 0, "seed for the random number generator")
	cmd.Flags().Var(&r.from, "from", "override the scenario's start date")
	cmd.Flags().Var(&r.to, "to", "override the scenario's end date")
	cmd.Flags().BoolVar(&r.csv, "csv", false, "render as CSV instead of text tables")
	cmd.Flags().BoolVar(&r.daily, "daily", false, "report balances for every day, not only month starts")
	cmd.Flags().BoolVarP(&r.color, "color", "c", false, "print output in color")
	cmd.Flags().BoolVarP(&r.thousands, "thousands", "k", false, "show numbers in units of 1000")
	cmd.Flags().StringVar(&r.chartFile, "chart", "", "write a PNG chart of the balances to the given file")
	cmd.Flags().Int32Var(&r.digits, "digits", 2, "round numbers to number of digits")
}

func (r *runner) run(cmd *cobra.Command, args []string) {
	if err := r.execute(cmd, args); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		os.Exit(1)
	}
}

func (r *runner) execute(cmd *cobra.Command, args []string) error {
	s, err := readScenario(args[0])
	if err != nil {
		return err
	}
	if r.samples > 0 {
		s.NumSamples = r.samples
	}
	s.StartDate = r.from.ValueOr(s.StartDate)
	s.EndDate = r.to.ValueOr(s.EndDate)

	bar := pb.New(s.Period().Days() * len(s.Accounts))
	bar.SetWriter(cmd.ErrOrStderr())
	bar.Start()
	sim := &scenario.Runner{Seed: r.seed, Progress: func() { bar.Increment() }}
	results, err := sim.Run(s)
	bar.Finish()
	if err != nil {
		return err
	}

	if r.chartFile != "" {
		bs, err := chart.Render(args[0], results)
		if err != nil {
			return err
		}
		if err := atomic.WriteFile(r.chartFile, bytes.NewReader(bs)); err != nil {
			return fmt.Errorf("writing chart %s: %w", r.chartFile, err)
		}
	}

	var filter *cash.Frequency
	if !r.daily && !r.csv {
		monthly := cash.MonthStart
		filter = &monthly
	}
	var (
		balances = &report.BalanceBuilder{Results: results, Filter: filter}
		payments = &report.PaymentsBuilder{Results: results}
		out      = bufio.NewWriter(cmd.OutOrStdout())
	)
	defer out.Flush()
	if r.csv {
		renderer := &table.CSVRenderer{}
		if err := renderer.Render(balances.Build(), out); err != nil {
			return err
		}
		if _, err := io.WriteString(out, "\n"); err != nil {
			return err
		}
		return renderer.Render(payments.Build(), out)
	}
	renderer := &table.TextRenderer{
		Color:     r.color,
		Thousands: r.thousands,
		Round:     r.digits,
	}
	if err := renderer.Render(balances.Build(), out); err != nil {
		return err
	}
	return renderer.Render(payments.Build(), out)
}

func readScenario(path string) (*scenario.Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	dec := yaml.NewDecoder(f)
	dec.SetStrict(true)
	var s scenario.Scenario
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("reading scenario %s: %w", path, err)
	}
	return &s, nil
}
