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

package storage

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/sboehler/tortoise/lib/cash"
	"github.com/sboehler/tortoise/lib/common/date"
	"github.com/sboehler/tortoise/lib/scenario"
)

// testStore returns a store in a temp directory with a clock that
// advances one second per call.
func testStore(t *testing.T) *Store {
	t.Helper()
	s := New(t.TempDir())
	clock := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	s.Now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}
	return s
}

func TestSaveLoadRoundtrip(t *testing.T) {
	var (
		s    = testStore(t)
		want = scenario.ExampleAccount()
	)

	if err := s.Save(Accounts, want.Name, &want); err != nil {
		t.Fatalf("Save() returned error: %v", err)
	}
	var got cash.Account
	if err := s.Load(Accounts, want.Name, &got); err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected diff (-want, +got):\n%s", diff)
	}
}

func TestLoadReturnsLatestVersion(t *testing.T) {
	var (
		s = testStore(t)
		a = cash.Account{
			Name:      "Savings",
			Balance:   100,
			StartDate: date.New(2024, 1, 1),
			EndDate:   date.New(2024, 12, 31),
		}
	)

	if err := s.Save(Accounts, a.Name, &a); err != nil {
		t.Fatalf("Save() returned error: %v", err)
	}
	a.Balance = 200
	if err := s.Save(Accounts, a.Name, &a); err != nil {
		t.Fatalf("Save() returned error: %v", err)
	}

	var got cash.Account
	if err := s.Load(Accounts, a.Name, &got); err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if got.Balance != 200 {
		t.Errorf("Balance = %v, want 200", got.Balance)
	}
	vs, err := s.Versions(Accounts, a.Name)
	if err != nil {
		t.Fatalf("Versions() returned error: %v", err)
	}
	if len(vs) != 2 {
		t.Fatalf("Versions() returned %d versions, want 2", len(vs))
	}
	if !vs[0].Before(vs[1]) {
		t.Errorf("versions not in chronological order: %v", vs)
	}
}

func TestList(t *testing.T) {
	s := testStore(t)
	for _, name := range []string{"Savings", "Joint Checking", "Brokerage"} {
		a := cash.Account{Name: name, StartDate: date.New(2024, 1, 1), EndDate: date.New(2024, 12, 31)}
		if err := s.Save(Accounts, name, &a); err != nil {
			t.Fatalf("Save(%q) returned error: %v", name, err)
		}
	}

	got, err := s.List(Accounts)
	if err != nil {
		t.Fatalf("List() returned error: %v", err)
	}

	want := []string{"brokerage", "joint_checking", "savings"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected diff (-want, +got):\n%s", diff)
	}
}

func TestListEmptyStore(t *testing.T) {
	s := New(t.TempDir())

	got, err := s.List(Scenarios)
	if err != nil {
		t.Fatalf("List() returned error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("List() = %v, want empty", got)
	}
}

func TestLoadMissing(t *testing.T) {
	s := New(t.TempDir())

	var a cash.Account
	if err := s.Load(Accounts, "nope", &a); err == nil {
		t.Fatal("Load() returned no error for missing object")
	}
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	s := testStore(t)
	if err := s.Save(Accounts, "odd", map[string]any{"name": "odd", "surprise": true}); err != nil {
		t.Fatalf("Save() returned error: %v", err)
	}

	var a cash.Account
	if err := s.Load(Accounts, "odd", &a); err == nil {
		t.Fatal("Load() accepted unknown fields")
	}
}

func TestSaveEmptyName(t *testing.T) {
	s := testStore(t)

	if err := s.Save(Accounts, "??", map[string]any{}); err == nil {
		t.Fatal("Save() accepted a name without filesystem-safe characters")
	}
}

func TestFSName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Savings", "savings"},
		{"Joint Checking", "joint_checking"},
		{"Household 2024!", "household_2024"},
		{"already_safe-1", "already_safe-1"},
		{"Ümlaut", "mlaut"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := FSName(test.name); got != test.want {
				t.Errorf("FSName(%q) = %q, want %q", test.name, got, test.want)
			}
		})
	}
}
