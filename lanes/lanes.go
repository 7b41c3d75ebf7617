// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lanes loads lane tables from YAML. The default table is embedded.
package lanes

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/someonegg/lanematch"
)

//go:embed lanes.yaml
var defaultTable []byte

var ErrDuplicateLane = errors.New("duplicate lane id")

type document struct {
	Lanes []laneDoc `yaml:"lanes" validate:"required,min=1,dive"`
}

type laneDoc struct {
	ID          string   `yaml:"id" validate:"required"`
	Description string   `yaml:"description" validate:"required"`
	Type        string   `yaml:"type,omitempty"`
	Origin      specDoc  `yaml:"origin"`
	Destination specDoc  `yaml:"destination"`
	Transit     *specDoc `yaml:"transit,omitempty"`
}

type specDoc struct {
	Countries []string `yaml:"countries" validate:"min=1,dive,required"`
	States    []string `yaml:"states,omitempty" validate:"dive,required"`
	Cities    []string `yaml:"cities,omitempty" validate:"dive,required"`
}

var validate = validator.New()

// Default returns the embedded lane table.
func Default() ([]*lanematch.Lane, error) {
	return Parse(defaultTable)
}

// MustDefault is like Default but panics if the embedded table is broken.
func MustDefault() []*lanematch.Lane {
	ls, err := Default()
	if err != nil {
		panic(err)
	}
	return ls
}

func Load(file string) ([]*lanematch.Lane, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	ls, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	return ls, nil
}

// Parse decodes and validates a lane table. Lanes keep their document order.
func Parse(data []byte) ([]*lanematch.Lane, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode lanes: %w", err)
	}
	if err := validate.Struct(&doc); err != nil {
		return nil, fmt.Errorf("invalid lanes: %w", err)
	}

	seen := make(map[string]bool, len(doc.Lanes))
	ls := make([]*lanematch.Lane, 0, len(doc.Lanes))
	for _, d := range doc.Lanes {
		if seen[d.ID] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateLane, d.ID)
		}
		seen[d.ID] = true

		lane := &lanematch.Lane{
			ID:          d.ID,
			Description: d.Description,
			Type:        d.Type,
		}
		var err error
		if lane.Origin, err = d.Origin.spec(d.ID, "origin"); err != nil {
			return nil, err
		}
		if lane.Destination, err = d.Destination.spec(d.ID, "destination"); err != nil {
			return nil, err
		}
		if d.Transit != nil {
			transit, err := d.Transit.spec(d.ID, "transit")
			if err != nil {
				return nil, err
			}
			lane.Transit = &transit
		}
		ls = append(ls, lane)
	}
	return ls, nil
}

func (d *specDoc) spec(id, role string) (lanematch.LocationSpec, error) {
	if len(d.States) == 0 && len(d.Cities) == 0 {
		return lanematch.LocationSpec{}, fmt.Errorf("invalid lanes: %s %s has neither states nor cities", id, role)
	}
	return lanematch.LocationSpec{
		States:    append([]string(nil), d.States...),
		Cities:    append([]string(nil), d.Cities...),
		Countries: append([]string(nil), d.Countries...),
	}, nil
}

// Marshal renders lanes in the format Parse reads.
func Marshal(ls []*lanematch.Lane) ([]byte, error) {
	doc := document{Lanes: make([]laneDoc, len(ls))}
	for i, l := range ls {
		doc.Lanes[i] = laneDoc{
			ID:          l.ID,
			Description: l.Description,
			Type:        l.Type,
			Origin:      docOf(&l.Origin),
			Destination: docOf(&l.Destination),
		}
		if l.Transit != nil {
			t := docOf(l.Transit)
			doc.Lanes[i].Transit = &t
		}
	}
	return yaml.Marshal(&doc)
}

func docOf(s *lanematch.LocationSpec) specDoc {
	return specDoc{Countries: s.Countries, States: s.States, Cities: s.Cities}
}
