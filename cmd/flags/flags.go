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

// Package flags contains shared flag types.
package flags

import (
	"github.com/spf13/pflag"

	"github.com/sboehler/tortoise/lib/common/date"
)

// DateFlag manages a flag to determine a date.
type DateFlag date.Date

var _ pflag.Value = (*DateFlag)(nil)

func (df DateFlag) String() string {
	return df.Value().String()
}

// Set implements pflag.Value.
func (df *DateFlag) Set(v string) error {
	d, err := date.Parse(v)
	if err != nil {
		return err
	}
	*df = DateFlag(d)
	return nil
}

// Type implements pflag.Value.
func (df DateFlag) Type() string {
	return "YYYY-MM-DD"
}

// Value returns the flag value.
func (df DateFlag) Value() date.Date {
	return date.Date(df)
}

// ValueOr returns the flag value, or d if the flag is unset.
func (df DateFlag) ValueOr(d date.Date) date.Date {
	v := df.Value()
	if v.IsZero() {
		return d
	}
	return v
}
