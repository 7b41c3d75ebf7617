// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lanematch

import "github.com/someonegg/lanematch/geo"

type canonicalMatcher struct {
	unifier geo.LocationUnifier
}

// CanonicalMatcher canonicalizes carrier and lane locations through u and
// tests exact set membership. The country must be accepted by the slot;
// then either the state or, failing that, the city places the carrier in it.
func CanonicalMatcher(u geo.LocationUnifier) Matcher {
	return canonicalMatcher{u}
}

func (m canonicalMatcher) Classify(carrier geo.Location, lane *Lane) Tags {
	carrier = m.unifier.Unify(carrier)
	state := geo.Normalize(carrier.State)
	city := geo.Normalize(carrier.City)

	return classify(lane, func(spec *LocationSpec) (r slotResult) {
		if !countryAccepted(m.unifier, carrier.Country, spec) {
			return
		}
		if state != "" {
			r.state = containsKey(canonicalStates(m.unifier, spec), state)
		}
		if city != "" {
			r.city = containsKey(normalizeAll(spec.Cities), city)
		}
		return
	})
}

func containsKey(keys []string, key string) bool {
	for _, k := range keys {
		if k == key {
			return true
		}
	}
	return false
}

func normalizeAll(ss []string) []string {
	keys := make([]string, 0, len(ss))
	for _, s := range ss {
		if k := geo.Normalize(s); k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}
