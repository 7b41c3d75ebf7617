// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/someonegg/lanematch"
	"github.com/someonegg/lanematch/lanes"
	"github.com/someonegg/lanematch/report"
	"github.com/someonegg/lanematch/source"
)

const carriersCSV = "BAN,COMPANY TYPE,COMPANY NAME,EMAIL,PHONE #,CITY,STATE,COUNTRY,DATA ORIGIN\n" +
	"1,CARRIER,Trans A,a@example.com,555,Laredo,TX,US,crm\n" +
	"2,CARRIER,Fletes Sur,,,Apodaca,Newfoundland and Labrador,Mexico,crm\n" +
	"3,SHIPPER,Ship C,,,Dallas,TX,US,crm\n"

func writeFile(t *testing.T, dir, name, data string) string {
	t.Helper()
	file := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(file, []byte(data), 0644))
	return file
}

func readReport(t *testing.T, file string) []report.Row {
	t.Helper()
	f, err := os.Open(file)
	require.NoError(t, err)
	defer f.Close()
	rows, err := report.ReadCSV(f)
	require.NoError(t, err)
	return rows
}

func TestDoMatch(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "carriers.csv", carriersCSV)
	output := filepath.Join(dir, "out", "matches.csv")

	schema, err := loadSchema("named", "", false)
	require.NoError(t, err)
	require.NoError(t, doMatch(context.Background(), zap.NewNop(),
		input, output, "", "", schema, lanematch.Canonical, true))

	for _, r := range readReport(t, output) {
		assert.Equal(t, "1", r.CarrierID, "unexpected match %+v", r)
		if r.LaneID == "RUTA 2" {
			assert.Equal(t, lanematch.Origin|lanematch.OriginCity, r.Tags)
		}
	}
}

func TestDoMatch_Overrides(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "carriers.csv", carriersCSV)
	overrides := writeFile(t, dir, "overrides.yaml",
		"- source: {state: Newfoundland and Labrador, country: Mexico}\n  target: {state: Nuevo León}\n")
	output := filepath.Join(dir, "matches.csv")

	schema, err := loadSchema("named", "", false)
	require.NoError(t, err)
	require.NoError(t, doMatch(context.Background(), zap.NewNop(),
		input, output, "", overrides, schema, lanematch.Canonical, false))

	var tags lanematch.Tags
	for _, r := range readReport(t, output) {
		if r.CarrierID == "2" && r.LaneID == "RUTA 4" {
			tags = r.Tags
		}
	}
	assert.Equal(t, lanematch.Origin, tags)
}

func TestDoMatch_XLSX(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "carriers.csv", carriersCSV)
	output := filepath.Join(dir, "matches.xlsx")

	schema, err := loadSchema("named", "", true)
	require.NoError(t, err)
	assert.Empty(t, schema.CompanyType)
	require.NoError(t, doMatch(context.Background(), zap.NewNop(),
		input, output, "", "", schema, lanematch.Containment, false))

	_, err = os.Stat(output)
	assert.NoError(t, err)
}

func TestDoMatch_Errors(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "carriers.csv", carriersCSV)
	output := filepath.Join(dir, "matches.csv")
	schema, err := loadSchema("named", "", false)
	require.NoError(t, err)

	err = doMatch(context.Background(), zap.NewNop(),
		filepath.Join(dir, "missing.csv"), output, "", "", schema, lanematch.Canonical, false)
	assert.Error(t, err)

	dup := writeFile(t, dir, "lanes.yaml", `
lanes:
  - id: A
    description: a
    origin: {countries: [Mexico], states: [Jalisco]}
    destination: {countries: [Mexico], states: [Sonora]}
  - id: A
    description: b
    origin: {countries: [Mexico], states: [Jalisco]}
    destination: {countries: [Mexico], states: [Sonora]}
`)
	err = doMatch(context.Background(), zap.NewNop(),
		input, output, dup, "", schema, lanematch.Canonical, false)
	assert.True(t, errors.Is(err, lanes.ErrDuplicateLane), "error %v", err)

	noState := writeFile(t, dir, "nostate.csv", "BAN,COMPANY TYPE,COMPANY NAME,CITY,COUNTRY\n1,CARRIER,A,Laredo,US\n")
	err = doMatch(context.Background(), zap.NewNop(),
		noState, output, "", "", schema, lanematch.Canonical, false)
	assert.True(t, errors.Is(err, source.ErrMissingColumn), "error %v", err)
}

func TestDoLanes(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, doLanes(&buf, ""))

	ls, err := lanes.Parse(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, lanes.MustDefault(), ls)

	assert.Error(t, doLanes(&buf, filepath.Join(t.TempDir(), "missing.yaml")))
}
