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

// Package schema generates JSON schemas for the configuration types.
package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/invopop/jsonschema"
	"github.com/natefinch/atomic"
	"github.com/spf13/cobra"

	"github.com/sboehler/tortoise/lib/cash"
	"github.com/sboehler/tortoise/lib/portfolio"
	"github.com/sboehler/tortoise/lib/scenario"
)

// CreateCmd creates the command.
func CreateCmd() *cobra.Command {
	var r runner
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Write JSON schemas for the configuration types",
		Args:  cobra.ExactValidArgs(1),
		Run:   r.run,
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
	dir := args[0]
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}
	types := map[string]any{
		"account.schema.json":   &cash.Account{},
		"payment.schema.json":   &cash.Payment{},
		"portfolio.schema.json": &portfolio.Portfolio{},
		"scenario.schema.json":  &scenario.Scenario{},
	}
	files := make([]string, 0, len(types))
	for file := range types {
		files = append(files, file)
	}
	sort.Strings(files)
	reflector := new(jsonschema.Reflector)
	for _, file := range files {
		s := reflector.Reflect(types[file])
		bs, err := json.MarshalIndent(s, "", "  ")
		if err != nil {
			return err
		}
		path := filepath.Join(dir, file)
		if err := atomic.WriteFile(path, bytes.NewReader(bs)); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), path); err != nil {
			return err
		}
	}
	return nil
}
