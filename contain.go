// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lanematch

import (
	"strings"

	"github.com/someonegg/lanematch/geo"
)

type containmentMatcher struct {
	unifier geo.LocationUnifier
}

// ContainmentMatcher compares normalized strings by equality or substring
// in either direction, against lane states expanded with every alias u
// knows. A city only counts once the state of the same slot matched.
//
// "Estado de México" matches "México", and short aliases such as "ON" match
// inside longer names such as "Oregon". Countries are still required to be
// accepted by the slot after canonicalization.
func ContainmentMatcher(u geo.LocationUnifier) Matcher {
	return containmentMatcher{u}
}

func (m containmentMatcher) Classify(carrier geo.Location, lane *Lane) Tags {
	country := m.unifier.Unify(geo.Location{Country: carrier.Country}).Country
	state := geo.Normalize(carrier.State)
	city := geo.Normalize(carrier.City)

	return classify(lane, func(spec *LocationSpec) (r slotResult) {
		if state == "" || !countryAccepted(m.unifier, country, spec) {
			return
		}
		var states []string
		for _, s := range spec.States {
			states = append(states, m.unifier.Aliases(s)...)
		}
		r.state = containsEither(normalizeAll(states), state)
		r.city = r.state && city != "" && containsEither(normalizeAll(spec.Cities), city)
		return
	})
}

func containsEither(keys []string, key string) bool {
	for _, k := range keys {
		if k == key || strings.Contains(k, key) || strings.Contains(key, k) {
			return true
		}
	}
	return false
}
