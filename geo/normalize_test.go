// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geo

import (
	"testing"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"Empty", "", ""},
		{"Blank", "   ", ""},
		{"Lower", "TEXAS", "texas"},
		{"Accents", "Nuevo León", "nuevo leon"},
		{"AccentsUpper", "QUERÉTARO", "queretaro"},
		{"Tilde", "Cañón", "canon"},
		{"Spaces", "  San   Antonio ", "san antonio"},
		{"Punct", "San Nicolás de los Garza, N.L.", "san nicolas de los garza n l"},
		{"Dots", "U.S.A.", "u s a"},
		{"Tabs", "El\tPaso", "el paso"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Normalize(tc.input); got != tc.want {
				t.Errorf("Normalize(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"Cuautitlán Izcalli",
		"  ESTADO DE MÉXICO ",
		"St. John's",
		"Ciudad López-Mateos",
		"Montréal",
		"",
	}
	for _, s := range inputs {
		once := Normalize(s)
		if twice := Normalize(once); twice != once {
			t.Errorf("Normalize(Normalize(%q)) = %q, want %q", s, twice, once)
		}
	}
}

func TestLocation_Empty(t *testing.T) {
	cases := []struct {
		loc  Location
		want bool
	}{
		{Location{}, true},
		{Location{City: " ", State: "\t", Country: ""}, true},
		{Location{City: "--"}, true},
		{Location{Country: "Mexico"}, false},
		{Location{State: "TX"}, false},
	}
	for _, tc := range cases {
		if got := tc.loc.Empty(); got != tc.want {
			t.Errorf("%+v.Empty() = %v, want %v", tc.loc, got, tc.want)
		}
	}
}
