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

package cash

import (
	"sync"

	"github.com/sboehler/tortoise/lib/common/date"
	"github.com/sboehler/tortoise/lib/common/vector"
)

// Balances computes per-sample account balances with day-over-day
// memoization:
//
//	balance(d) = balance(d-1) + sum of payments realized on d
//
// with balance(startDate) = initial balance + payments on the start date.
// It is scoped to one simulation run; accounts must not be mutated while
// a Balances referencing them is in use. Keys are account names, which
// are unique identities within a run.
type Balances struct {
	samples int

	mu       sync.Mutex
	cache    map[balanceKey]vector.Vector
	frontier map[string]frontier
	computed int
}

type balanceKey struct {
	account string
	date    date.Date
}

// frontier is the latest fully computed day of an account. Every earlier
// day within the account window is guaranteed to be cached.
type frontier struct {
	day     date.Date
	balance vector.Vector
}

// NewBalances creates an accumulator for the given sample count.
func NewBalances(samples int) *Balances {
	return &Balances{
		samples:  samples,
		cache:    make(map[balanceKey]vector.Vector),
		frontier: make(map[string]frontier),
	}
}

// At returns the account's balance vector on the given date. The result
// is a copy; callers may mutate it freely. Concurrent calls for the same
// account are serialized, so each day is computed at most once.
func (b *Balances) At(a *Account, d date.Date) vector.Vector {
	b.mu.Lock()
	defer b.mu.Unlock()

	if v, ok := b.cache[balanceKey{a.Name, d}]; ok {
		return v.Clone()
	}
	if d.Before(a.StartDate) {
		return vector.Constant(b.samples, a.Balance)
	}

	// Continue the day-over-day walk where the last query left off. The
	// frontier is by construction the only possible cache miss boundary.
	day := a.StartDate
	bal := vector.Constant(b.samples, a.Balance)
	if fr, ok := b.frontier[a.Name]; ok && !fr.day.After(d) {
		day = fr.day.AddDays(1)
		bal = fr.balance.Clone()
	}
	for ; !day.After(d); day = day.AddDays(1) {
		bal.AddScalar(Sum(a.FlowsAt(day)))
		b.cache[balanceKey{a.Name, day}] = bal.Clone()
		b.computed++
	}
	b.frontier[a.Name] = frontier{day: d, balance: bal}
	return bal.Clone()
}

// Computed returns the number of days computed so far. Cache hits do not
// increase it.
func (b *Balances) Computed() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.computed
}
