// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lanematch

import (
	"testing"
)

func TestTags_String(t *testing.T) {
	cases := []struct {
		name string
		tags Tags
		want string
	}{
		{"Empty", 0, ""},
		{"Origin", Origin, "ORIGIN"},
		{"OriginCity", Origin | OriginCity, "ORIGIN, ORIGIN_CITY"},
		{"Transit", Transit | TransitCity, "TRANSIT, TRANSIT_CITY"},
		{"Order", DestinationCity | Destination | Origin, "ORIGIN, DESTINATION, DESTINATION_CITY"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.tags.String(); got != tc.want {
				t.Errorf("String() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestParseTags(t *testing.T) {
	cases := []struct {
		name    string
		input   string
		want    Tags
		wantErr bool
	}{
		{"Empty", "", 0, false},
		{"Single", "ORIGIN", Origin, false},
		{"Lower", "destination, destination_city", Destination | DestinationCity, false},
		{"NoSpace", "ORIGIN,TRANSIT", Origin | Transit, false},
		{"Unknown", "ORIGIN, NOWHERE", 0, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseTags(tc.input)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseTags(%q) error = %v, wantErr %v", tc.input, err, tc.wantErr)
			}
			if got != tc.want {
				t.Errorf("ParseTags(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestTags_RoundTrip(t *testing.T) {
	for tags := Tags(0); tags < TransitCity<<1; tags++ {
		got, err := ParseTags(tags.String())
		if err != nil {
			t.Fatalf("ParseTags(%q): %v", tags.String(), err)
		}
		if got != tags {
			t.Errorf("ParseTags(%q) = %d, want %d", tags.String(), got, tags)
		}
	}
}

func TestLaneSlots(t *testing.T) {
	lane := &Lane{ID: "L"}
	if n := len(laneSlots(lane)); n != 2 {
		t.Errorf("slots without transit = %d, want 2", n)
	}

	lane.Transit = &LocationSpec{}
	slots := laneSlots(lane)
	if len(slots) != 3 {
		t.Fatalf("slots with transit = %d, want 3", len(slots))
	}
	if slots[2].tag != Transit || slots[2].city != TransitCity {
		t.Errorf("transit slot tags = %v/%v", slots[2].tag, slots[2].city)
	}
}

func TestClassify_CityPrecedence(t *testing.T) {
	lane := &Lane{ID: "L", Transit: &LocationSpec{}}

	cases := []struct {
		name    string
		results []slotResult
		want    Tags
	}{
		{"None", []slotResult{{}, {}, {}}, 0},
		{"StateOnlyBoth", []slotResult{{state: true}, {state: true}, {}}, Origin | Destination},
		{"CityWins", []slotResult{{state: true, city: true}, {state: true}, {}}, Origin | OriginCity},
		{"CityBoth", []slotResult{{state: true, city: true}, {state: true, city: true}, {}}, Origin | OriginCity | Destination | DestinationCity},
		{"TransitCity", []slotResult{{}, {state: true}, {state: true, city: true}}, Transit | TransitCity},
		{"CityOnly", []slotResult{{city: true}, {state: true}, {}}, Origin | OriginCity | Destination},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			i := 0
			got := classify(lane, func(*LocationSpec) slotResult {
				r := tc.results[i]
				i++
				return r
			})
			if got != tc.want {
				t.Errorf("classify = %q, want %q", got, tc.want)
			}
		})
	}
}
