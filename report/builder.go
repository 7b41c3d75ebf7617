// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package report flattens lane matches into rows and writes them out.
package report

import (
	"sort"

	"go.uber.org/zap"

	"github.com/someonegg/lanematch"
	"github.com/someonegg/lanematch/geo"
)

// Row is one (carrier, lane) match. Geographic fields are kept as read.
type Row struct {
	LaneID          string
	LaneDescription string
	CarrierID       string
	CarrierName     string
	City            string
	State           string
	Country         string
	Email           string
	Phone           string
	Tags            lanematch.Tags
	Source          string
}

type LaneSummary struct {
	LaneID      string
	Description string
	Carriers    int // unique carriers
	Records     int // matching rows, one per contact record
}

type Summary struct {
	Carriers int // input carrier records
	Records  int
	Lanes    []LaneSummary
}

type Builder struct {
	Matcher lanematch.Matcher

	// Unifier canonicalizes the state in the unique carrier key. Nil keeps
	// the raw state.
	Unifier geo.LocationUnifier

	Logger *zap.Logger // can be nil
}

// Build classifies every carrier against every lane in one pass over
// carriers. Rows come out sorted by lane id, then carrier name; carriers
// with equal names keep their input order. The summary lists every lane,
// matched or not, in lane id order.
func (b *Builder) Build(carriers []*lanematch.Carrier, lanes []*lanematch.Lane) ([]Row, Summary) {
	log := b.Logger
	if log == nil {
		log = zap.NewNop()
	}

	matches := make(map[string][]Row, len(lanes))
	for _, m := range lanematch.MatchAll(b.Matcher, carriers, lanes) {
		matches[m.Lane.ID] = append(matches[m.Lane.ID], newRow(&m))
	}

	sorted := make([]*lanematch.Lane, len(lanes))
	copy(sorted, lanes)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ID < sorted[j].ID
	})

	summ := Summary{Carriers: len(carriers)}
	var rows []Row
	for _, lane := range sorted {
		laneRows := matches[lane.ID]
		sort.SliceStable(laneRows, func(i, j int) bool {
			return laneRows[i].CarrierName < laneRows[j].CarrierName
		})
		rows = append(rows, laneRows...)

		unique := make(map[carrierKey]struct{}, len(laneRows))
		for i := range laneRows {
			unique[b.keyOf(&laneRows[i])] = struct{}{}
		}
		ls := LaneSummary{
			LaneID:      lane.ID,
			Description: lane.Description,
			Carriers:    len(unique),
			Records:     len(laneRows),
		}
		summ.Lanes = append(summ.Lanes, ls)
		summ.Records += ls.Records

		log.Debug("lane matched",
			zap.String("lane", ls.LaneID),
			zap.Int("carriers", ls.Carriers),
			zap.Int("records", ls.Records))
	}

	return rows, summ
}

func newRow(m *lanematch.Match) Row {
	lane, carrier := m.Lane, m.Carrier
	return Row{
		LaneID:          lane.ID,
		LaneDescription: lane.Description,
		CarrierID:       carrier.ID,
		CarrierName:     carrier.Name,
		City:            carrier.Location.City,
		State:           carrier.Location.State,
		Country:         carrier.Location.Country,
		Email:           carrier.Email,
		Phone:           carrier.Phone,
		Tags:            m.Tags,
		Source:          carrier.Source,
	}
}

// carrierKey identifies a carrier across its contact records.
type carrierKey struct {
	id, name, city, state, country string
}

func (b *Builder) keyOf(r *Row) carrierKey {
	loc := geo.Location{City: r.City, State: r.State, Country: r.Country}
	if b.Unifier != nil {
		loc = b.Unifier.Unify(loc)
	}
	return carrierKey{
		id:      r.CarrierID,
		name:    r.CarrierName,
		city:    geo.Normalize(loc.City),
		state:   geo.Normalize(loc.State),
		country: geo.Normalize(loc.Country),
	}
}
