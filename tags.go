// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lanematch

import (
	"fmt"
	"strings"
)

// Tags is the set of reasons a carrier matched a lane.
type Tags uint8

const (
	Origin Tags = 1 << iota
	OriginCity
	Destination
	DestinationCity
	Transit
	TransitCity
)

var tagLabels = []struct {
	tag   Tags
	label string
}{
	{Origin, "ORIGIN"},
	{OriginCity, "ORIGIN_CITY"},
	{Destination, "DESTINATION"},
	{DestinationCity, "DESTINATION_CITY"},
	{Transit, "TRANSIT"},
	{TransitCity, "TRANSIT_CITY"},
}

const tagSeparator = ", "

func (t Tags) Has(tag Tags) bool {
	return t&tag == tag
}

func (t Tags) Empty() bool {
	return t == 0
}

func (t Tags) Labels() []string {
	var labels []string
	for _, l := range tagLabels {
		if t.Has(l.tag) {
			labels = append(labels, l.label)
		}
	}
	return labels
}

// String renders the set as "ORIGIN, ORIGIN_CITY".
func (t Tags) String() string {
	return strings.Join(t.Labels(), tagSeparator)
}

// ParseTags is the inverse of Tags.String.
func ParseTags(s string) (Tags, error) {
	var t Tags
	for _, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		found := false
		for _, l := range tagLabels {
			if strings.EqualFold(f, l.label) {
				t |= l.tag
				found = true
				break
			}
		}
		if !found {
			return 0, fmt.Errorf("unknown match tag %q", f)
		}
	}
	return t, nil
}

// slot is one endpoint of a lane.
type slot struct {
	spec *LocationSpec
	tag  Tags
	city Tags
}

func laneSlots(lane *Lane) []slot {
	slots := []slot{
		{&lane.Origin, Origin, OriginCity},
		{&lane.Destination, Destination, DestinationCity},
	}
	if lane.Transit != nil {
		slots = append(slots, slot{lane.Transit, Transit, TransitCity})
	}
	return slots
}
