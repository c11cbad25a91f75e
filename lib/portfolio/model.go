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

package portfolio

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/sboehler/tortoise/lib/cash"
	"github.com/sboehler/tortoise/lib/common/vector"
)

// Model draws per-sample portfolio returns from a seeded source.
type Model struct {
	src rand.Source
}

// NewModel creates a growth model with the given seed.
func NewModel(seed uint64) *Model {
	return &Model{src: rand.NewSource(seed)}
}

// Invest applies one period of portfolio growth to a balance vector and
// returns the new vector. Per asset, each sample draws an independent
// return from N(mean·f, stddev·√f), where f is the frequency's year
// fraction; the weighted draws accumulate into a total return r, and the
// result is balance·(1+r) per sample. Assets without volatility
// contribute their scaled mean return to every sample.
func (m *Model) Invest(balances vector.Vector, p *Portfolio, freq cash.Frequency) vector.Vector {
	var (
		f     = freq.Fraction()
		total = vector.New(balances.Len())
	)
	n := len(p.Assets)
	if len(p.Weights) < n {
		n = len(p.Weights)
	}
	for i := 0; i < n; i++ {
		var (
			a = p.Assets[i]
			w = p.Weights[i]
		)
		if a.StdDev == 0 {
			total.AddScalar(w * a.MeanReturn * f)
			continue
		}
		dist := distuv.Normal{
			Mu:    a.MeanReturn * f,
			Sigma: a.StdDev * math.Sqrt(f),
			Src:   m.src,
		}
		for j := range total.Values {
			total.Values[j] += w * dist.Rand()
		}
	}
	total.AddScalar(1)
	res := balances.Clone()
	res.Mul(total)
	return res
}
