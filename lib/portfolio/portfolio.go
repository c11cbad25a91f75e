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

// Package portfolio models weighted asset portfolios and their
// stochastic returns.
package portfolio

import (
	"fmt"

	"go.uber.org/multierr"
)

// Asset is an investable asset with annualized return parameters.
type Asset struct {
	Name       string  `yaml:"name" json:"name"`
	MeanReturn float64 `yaml:"mean_return" json:"mean_return"`
	StdDev     float64 `yaml:"std_dev" json:"std_dev"`
}

// Validate checks the asset parameters.
func (a Asset) Validate() error {
	if a.StdDev < 0 {
		return fmt.Errorf("asset %q: negative standard deviation %v", a.Name, a.StdDev)
	}
	return nil
}

// Portfolio is a weighted collection of assets. Weights[i] is the
// proportion of the balance invested in Assets[i]. Weights need not sum
// to one: leveraged and under-invested portfolios are valid.
type Portfolio struct {
	Assets  []Asset   `yaml:"assets" json:"assets"`
	Weights []float64 `yaml:"weights" json:"weights"`
}

// Validate checks the portfolio configuration. A length mismatch between
// assets and weights is an error here, even though the growth model
// tolerates it by ignoring the longer tail.
func (p *Portfolio) Validate() error {
	var errs error
	if len(p.Assets) != len(p.Weights) {
		errs = multierr.Append(errs, fmt.Errorf("portfolio has %d assets but %d weights", len(p.Assets), len(p.Weights)))
	}
	for _, a := range p.Assets {
		errs = multierr.Append(errs, a.Validate())
	}
	return errs
}
