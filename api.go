// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lanematch associates carrier records with shipping lanes by the
// location of each carrier.
package lanematch

import "github.com/someonegg/lanematch/geo"

type Matcher interface {
	Classify(carrier geo.Location, lane *Lane) Tags
}

// LocationSpec lists the accepted alternatives of one lane endpoint.
type LocationSpec struct {
	States    []string
	Cities    []string
	Countries []string
}

type Lane struct {
	ID          string
	Description string
	Type        string

	Origin      LocationSpec
	Destination LocationSpec
	Transit     *LocationSpec // can be nil
}

type Carrier struct {
	ID       string
	Type     string
	Name     string
	Email    string
	Phone    string
	Location geo.Location
	Source   string // provenance of the record
}

// Match is a carrier associated with a lane.
type Match struct {
	Lane    *Lane
	Carrier *Carrier
	Tags    Tags
}
