// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geo canonicalizes free-text carrier locations.
package geo

// Location is a city/state/country triple as found in carrier data.
type Location struct {
	City    string `yaml:"city,omitempty"`
	State   string `yaml:"state,omitempty"`
	Country string `yaml:"country,omitempty"`
}

// Empty reports whether the location carries no information at all.
func (l Location) Empty() bool {
	return Normalize(l.City) == "" && Normalize(l.State) == "" && Normalize(l.Country) == ""
}

type LocationUnifier interface {
	// Unify replaces known state and country spellings with their canonical
	// names. Unknown values are returned unchanged.
	Unify(l Location) Location

	// Aliases returns every known spelling of the region state resolves to,
	// canonical name first. An unknown state yields just itself.
	Aliases(state string) []string
}
