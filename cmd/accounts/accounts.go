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

// Package accounts contains commands to manage stored account configs.
package accounts

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"github.com/sboehler/tortoise/lib/cash"
	"github.com/sboehler/tortoise/lib/storage"
)

// CreateCmd creates the command.
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "Manage stored accounts",
	}
	cmd.AddCommand(createListCmd())
	cmd.AddCommand(createShowCmd())
	return cmd
}

func createListCmd() *cobra.Command {
	var r listRunner
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored accounts",
		Args:  cobra.NoArgs,
		Run:   r.run,
	}
	cmd.Flags().StringVarP(&r.dir, "dir", "d", ".", "storage directory")
	return cmd
}

type listRunner struct {
	dir string
}

func (r *listRunner) run(cmd *cobra.Command, args []string) {
	if err := r.execute(cmd, args); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		os.Exit(1)
	}
}

func (r *listRunner) execute(cmd *cobra.Command, _ []string) error {
	names, err := storage.New(r.dir).List(storage.Accounts)
	if err != nil {
		return err
	}
	out := bufio.NewWriter(cmd.OutOrStdout())
	defer out.Flush()
	for _, name := range names {
		if _, err := fmt.Fprintln(out, name); err != nil {
			return err
		}
	}
	return nil
}

func createShowCmd() *cobra.Command {
	var r showRunner
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print a stored account",
		Args:  cobra.ExactValidArgs(1),
		Run:   r.run,
	}
	cmd.Flags().StringVarP(&r.dir, "dir", "d", ".", "storage directory")
	return cmd
}

type showRunner struct {
	dir string
}

func (r *showRunner) run(cmd *cobra.Command, args []string) {
	if err := r.execute(cmd, args); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		os.Exit(1)
	}
}

func (r *showRunner) execute(cmd *cobra.Command, args []string) error {
	var a cash.Account
	if err := storage.New(r.dir).Load(storage.Accounts, args[0], &a); err != nil {
		return err
	}
	bs, err := yaml.Marshal(&a)
	if err != nil {
		return err
	}
	out := bufio.NewWriter(cmd.OutOrStdout())
	defer out.Flush()
	_, err = out.Write(bs)
	return err
}
