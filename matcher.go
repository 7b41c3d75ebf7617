// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lanematch

import (
	"errors"
	"fmt"
	"strings"

	"github.com/someonegg/lanematch/geo"
)

type Strategy int

const (
	// Canonical tests exact membership after canonicalization.
	Canonical Strategy = iota
	// Containment accepts equal strings or one containing the other. It is
	// permissive and may match short tokens inside unrelated names.
	Containment
)

var ErrUnknownStrategy = errors.New("unknown matching strategy")

func (s Strategy) String() string {
	switch s {
	case Canonical:
		return "canonical"
	case Containment:
		return "containment"
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "canonical":
		return Canonical, nil
	case "containment", "contains":
		return Containment, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
}

// NewMatcher returns the matcher implementing strategy s over unifier u.
func NewMatcher(s Strategy, u geo.LocationUnifier) (Matcher, error) {
	switch s {
	case Canonical:
		return CanonicalMatcher(u), nil
	case Containment:
		return ContainmentMatcher(u), nil
	}
	return nil, fmt.Errorf("%w: %v", ErrUnknownStrategy, s)
}

type slotResult struct {
	state bool
	city  bool
}

func (r slotResult) matched() bool {
	return r.state || r.city
}

// classify unions the tags of every slot of lane. A slot matched only by
// state is dropped when another slot matched the same state down to the city.
func classify(lane *Lane, test func(spec *LocationSpec) slotResult) Tags {
	slots := laneSlots(lane)
	results := make([]slotResult, len(slots))
	for i := range slots {
		results[i] = test(slots[i].spec)
	}

	var tags Tags
	for i, s := range slots {
		r := results[i]
		if !r.matched() {
			continue
		}
		if !r.city && cityMatchedElsewhere(results, i) {
			continue
		}
		tags |= s.tag
		if r.city {
			tags |= s.city
		}
	}
	return tags
}

func cityMatchedElsewhere(results []slotResult, i int) bool {
	for j, r := range results {
		if j != i && r.state && r.city {
			return true
		}
	}
	return false
}

// countryAccepted reports whether the canonical country is one of the
// slot's countries. An empty country is never accepted.
func countryAccepted(u geo.LocationUnifier, country string, spec *LocationSpec) bool {
	key := geo.Normalize(country)
	if key == "" {
		return false
	}
	for _, c := range spec.Countries {
		if geo.Normalize(u.Unify(geo.Location{Country: c}).Country) == key {
			return true
		}
	}
	return false
}

// canonicalStates returns the normalized canonical names of the slot's
// states, resolved within each of the slot's countries.
func canonicalStates(u geo.LocationUnifier, spec *LocationSpec) []string {
	var states []string
	for _, s := range spec.States {
		if len(spec.Countries) == 0 {
			states = append(states, geo.Normalize(u.Unify(geo.Location{State: s}).State))
			continue
		}
		for _, c := range spec.Countries {
			states = append(states, geo.Normalize(u.Unify(geo.Location{State: s, Country: c}).State))
		}
	}
	return states
}

// MatchAll classifies every carrier against every lane. Matches come out
// in carrier order, then lane order; empty tag sets are dropped.
func MatchAll(m Matcher, carriers []*Carrier, lanes []*Lane) []Match {
	var matches []Match
	for _, c := range carriers {
		for _, l := range lanes {
			tags := m.Classify(c.Location, l)
			if tags.Empty() {
				continue
			}
			matches = append(matches, Match{Lane: l, Carrier: c, Tags: tags})
		}
	}
	return matches
}
