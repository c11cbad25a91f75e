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

// Package demo writes example configurations to a storage directory.
package demo

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sboehler/tortoise/lib/scenario"
	"github.com/sboehler/tortoise/lib/storage"
)

// CreateCmd creates the command.
func CreateCmd() *cobra.Command {
	var r runner
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Write example configurations",
		Long: `Write an example account, portfolio and scenario to the given storage
directory, as a starting point for own configurations.`,
		Args: cobra.ExactValidArgs(1),
		Run:  r.run,
	}
	return cmd
}

type runner struct{}

func (r *runner) run(cmd *cobra.Command, args []string) {
	if err := r.execute(cmd, args); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		os.Exit(1)
	}
}

func (r *runner) execute(cmd *cobra.Command, args []string) error {
	var (
		store   = storage.New(args[0])
		account = scenario.ExampleAccount()
		p       = scenario.ExamplePortfolio()
		s       = scenario.ExampleScenario()
	)
	if err := store.Save(storage.Accounts, account.Name, &account); err != nil {
		return err
	}
	if err := store.Save(storage.Portfolios, "Example Portfolio", p); err != nil {
		return err
	}
	if err := store.Save(storage.Scenarios, "Example Scenario", s); err != nil {
		return err
	}
	_, err := fmt.Fprintf(cmd.OutOrStdout(), "wrote example configurations to %s\n", args[0])
	return err
}
