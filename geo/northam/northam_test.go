// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package northam

import (
	"testing"

	"github.com/someonegg/lanematch/geo"
)

func TestNewLocationUnifier(t *testing.T) {
	if _, err := geo.NewGazetteer(Table()); err != nil {
		t.Fatalf("NewGazetteer(Table()): %v", err)
	}
	if NewLocationUnifier() == nil {
		t.Fatal("NewLocationUnifier returned nil")
	}
}

func TestTable_Coverage(t *testing.T) {
	want := map[string]int{
		Mexico:       32,
		UnitedStates: 51,
		Canada:       13,
	}
	for _, c := range Table() {
		if n := len(c.Regions); n != want[c.Name] {
			t.Errorf("%s has %d regions, want %d", c.Name, n, want[c.Name])
		}
	}
}

func TestUnify_Country(t *testing.T) {
	u := NewLocationUnifier()

	cases := []struct {
		input string
		want  string
	}{
		{"Mexico", Mexico},
		{"MÉXICO", Mexico},
		{"MX", Mexico},
		{"USA", UnitedStates},
		{"U.S.A.", UnitedStates},
		{"united states of america", UnitedStates},
		{"Estados Unidos", UnitedStates},
		{"CA", Canada},
		{"Canadá", Canada},
		{"Atlantis", "Atlantis"},
	}

	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			if got := u.Country(tc.input); got != tc.want {
				t.Errorf("Country(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestUnify_State(t *testing.T) {
	u := NewLocationUnifier()

	cases := []struct {
		name    string
		state   string
		country string
		want    string
	}{
		{"NuevoLeon", "NL", "Mexico", "Nuevo León"},
		{"Newfoundland", "NL", "Canada", "Newfoundland and Labrador"},
		{"NLNoCountry", "NL", "", "NL"},
		{"Coahuila", "CO", "Mexico", "Coahuila"},
		{"Colorado", "CO", "USA", "Colorado"},
		{"EstadoDeMexico", "EDOMX", "MX", "Estado de México"},
		{"EstadoDeMexicoEM", "EM", "Mexico", "Estado de México"},
		{"Michoacan", "MICH", "Mexico", "Michoacán"},
		{"Queretaro", "QRO", "Mexico", "Querétaro"},
		{"Texas", "TX", "US", "Texas"},
		{"TexasNoCountry", "tx", "", "Texas"},
		{"Quebec", "PQ", "Canada", "Quebec"},
		{"Ontario", "ON", "CAN", "Ontario"},
		{"NewfoundlandMexico", "Newfoundland and Labrador", "Mexico", "Newfoundland and Labrador"},
		{"Unknown", "Zz", "Mexico", "Zz"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := u.Unify(geo.Location{State: tc.state, Country: tc.country}).State
			if got != tc.want {
				t.Errorf("Unify(%q, %q).State = %q, want %q", tc.state, tc.country, got, tc.want)
			}
		})
	}
}
