// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geo

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// UnifyRecord rewrites locations matching Source into Target.
//
// Empty Source fields match anything, empty Target fields keep the value
// produced by the underlying unifier.
type UnifyRecord struct {
	Source Location `yaml:"source"`
	Target Location `yaml:"target"`
}

type complexUnifier struct {
	orig LocationUnifier
	recs []UnifyRecord
}

// NewComplexUnifier layers records over orig. Records are tried in order
// against the raw location and the first match wins.
func NewComplexUnifier(orig LocationUnifier, records []UnifyRecord) LocationUnifier {
	recs := make([]UnifyRecord, 0, len(records))
	for _, rec := range records {
		if rec.Source.Empty() {
			continue
		}
		recs = append(recs, rec)
	}
	return &complexUnifier{
		orig: orig,
		recs: recs,
	}
}

func (u *complexUnifier) Unify(l Location) Location {
	for _, rec := range u.recs {
		if !rec.matches(l) {
			continue
		}
		if rec.Target.City != "" {
			l.City = rec.Target.City
		}
		if rec.Target.State != "" {
			l.State = rec.Target.State
		}
		if rec.Target.Country != "" {
			l.Country = rec.Target.Country
		}
		break
	}
	return u.orig.Unify(l)
}

func (u *complexUnifier) Aliases(state string) []string {
	return u.orig.Aliases(state)
}

func (rec *UnifyRecord) matches(l Location) bool {
	return fieldMatches(rec.Source.City, l.City) &&
		fieldMatches(rec.Source.State, l.State) &&
		fieldMatches(rec.Source.Country, l.Country)
}

func fieldMatches(want, got string) bool {
	want = Normalize(want)
	return want == "" || want == Normalize(got)
}

// LoadUnifyRecords reads a YAML list of records:
//
//	- source: {state: Newfoundland and Labrador, country: Mexico}
//	  target: {state: Nuevo Leon}
func LoadUnifyRecords(file string) ([]UnifyRecord, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	recs, err := ParseUnifyRecords(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	return recs, nil
}

func ParseUnifyRecords(data []byte) ([]UnifyRecord, error) {
	var recs []UnifyRecord
	if err := yaml.Unmarshal(data, &recs); err != nil {
		return nil, fmt.Errorf("decode overrides: %w", err)
	}
	for i, rec := range recs {
		if rec.Source.Empty() {
			return nil, fmt.Errorf("override %d: empty source", i+1)
		}
	}
	return recs, nil
}
