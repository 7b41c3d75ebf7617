// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geo

import (
	"fmt"
	"strings"
)

// Country is one gazetteer entry: the canonical country name, its aliases
// and its regions keyed by canonical region name.
type Country struct {
	Name    string
	Aliases []string
	Regions map[string][]string
}

type region struct {
	name    string
	country string
}

// Gazetteer is a LocationUnifier backed by static alias tables. Region
// aliases are scoped by country, so the same abbreviation may name
// different regions in different countries.
type Gazetteer struct {
	countries map[string]string            // alias key -> canonical country
	scoped    map[string]map[string]string // canonical country -> alias key -> region
	global    map[string]region            // alias key -> region, unambiguous aliases only
	spelling  map[string][]string          // region key -> canonical name + aliases
}

// NewGazetteer builds a Gazetteer from table. An alias repeated inside one
// country, or a country alias naming two countries, is an error.
func NewGazetteer(table []Country) (*Gazetteer, error) {
	g := &Gazetteer{
		countries: make(map[string]string),
		scoped:    make(map[string]map[string]string),
		global:    make(map[string]region),
		spelling:  make(map[string][]string),
	}
	ambiguous := make(map[string]bool)

	for _, c := range table {
		if Normalize(c.Name) == "" {
			return nil, fmt.Errorf("gazetteer: country without name")
		}
		for _, a := range append([]string{c.Name}, c.Aliases...) {
			key := Normalize(a)
			if key == "" {
				continue
			}
			if o, ok := g.countries[key]; ok && o != c.Name {
				return nil, fmt.Errorf("gazetteer: country alias %q repeated (%s, %s)", a, o, c.Name)
			}
			g.countries[key] = c.Name
		}

		aliases := g.scoped[c.Name]
		if aliases == nil {
			aliases = make(map[string]string)
			g.scoped[c.Name] = aliases
		}
		for name, as := range c.Regions {
			spelled := append([]string{name}, as...)
			for _, a := range spelled {
				key := Normalize(a)
				if key == "" {
					continue
				}
				if o, ok := aliases[key]; ok && o != name {
					return nil, fmt.Errorf("gazetteer: %s region alias %q repeated (%s, %s)", c.Name, a, o, name)
				}
				aliases[key] = name

				if o, ok := g.global[key]; ok && o.name != name {
					ambiguous[key] = true
				}
				g.global[key] = region{name: name, country: c.Name}
			}
			g.spelling[Normalize(name)] = spelled
		}
	}

	for key := range ambiguous {
		delete(g.global, key)
	}
	return g, nil
}

// MustGazetteer is like NewGazetteer but panics on a malformed table.
func MustGazetteer(table []Country) *Gazetteer {
	g, err := NewGazetteer(table)
	if err != nil {
		panic(err)
	}
	return g
}

func (g *Gazetteer) Unify(l Location) Location {
	l.City = strings.TrimSpace(l.City)
	l.Country = g.Country(l.Country)
	l.State = g.State(l.State, l.Country)
	return l
}

// Country returns the canonical name of country, or country trimmed when
// it is unknown.
func (g *Gazetteer) Country(country string) string {
	country = strings.TrimSpace(country)
	if o, ok := g.countries[Normalize(country)]; ok {
		return o
	}
	return country
}

// State returns the canonical region name of state. country narrows the
// lookup when it is a known canonical country name; otherwise only aliases
// that are unambiguous across the whole table resolve.
func (g *Gazetteer) State(state, country string) string {
	state = strings.TrimSpace(state)
	key := Normalize(state)
	if key == "" {
		return state
	}
	if aliases, ok := g.scoped[country]; ok {
		if o, ok := aliases[key]; ok {
			return o
		}
		return state
	}
	if r, ok := g.global[key]; ok {
		return r.name
	}
	return state
}

func (g *Gazetteer) Aliases(state string) []string {
	key := Normalize(state)
	if r, ok := g.global[key]; ok {
		key = Normalize(r.name)
	}
	if as, ok := g.spelling[key]; ok {
		return append([]string(nil), as...)
	}
	return []string{state}
}
