// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package source

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Field is a carrier attribute read from one input column.
type Field int

const (
	FieldID Field = iota
	FieldType
	FieldName
	FieldEmail
	FieldPhone
	FieldCity
	FieldState
	FieldCountry
	FieldSource
	numFields
)

var fieldNames = [numFields]string{"id", "type", "name", "email", "phone", "city", "state", "country", "source"}

// requiredFields must be present in every schema.
var requiredFields = []Field{FieldID, FieldName, FieldCity, FieldState, FieldCountry}

func (f Field) String() string {
	if f >= 0 && f < numFields {
		return fieldNames[f]
	}
	return fmt.Sprintf("Field(%d)", int(f))
}

func ParseField(s string) (Field, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, n := range fieldNames {
		if n == s {
			return Field(i), nil
		}
	}
	return 0, fmt.Errorf("unknown field %q", s)
}

// Schema describes where carrier fields live in an input table.
//
// With Header set, the first non-empty row names the columns and Columns
// maps fields to those names (compared case-insensitively). Without it,
// Positions maps fields to zero-based column indexes.
type Schema struct {
	Header    bool
	Columns   map[Field]string
	Positions map[Field]int

	// MinColumns skips shorter rows. Zero derives it from the required fields.
	MinColumns int

	// CompanyType keeps only rows whose type column equals it. Empty keeps all.
	CompanyType string
}

// NamedSchema reads exports with a header row, carriers only.
func NamedSchema() Schema {
	return Schema{
		Header: true,
		Columns: map[Field]string{
			FieldID:      "BAN",
			FieldType:    "COMPANY TYPE",
			FieldName:    "COMPANY NAME",
			FieldEmail:   "EMAIL",
			FieldPhone:   "PHONE #",
			FieldCity:    "CITY",
			FieldState:   "STATE",
			FieldCountry: "COUNTRY",
			FieldSource:  "DATA ORIGIN",
		},
		CompanyType: "CARRIER",
	}
}

// PositionalSchema reads headerless exports of at least ten columns.
func PositionalSchema() Schema {
	return Schema{
		Positions: map[Field]int{
			FieldID:      0,
			FieldType:    1,
			FieldName:    2,
			FieldEmail:   4,
			FieldPhone:   5,
			FieldCity:    7,
			FieldState:   8,
			FieldCountry: 9,
			FieldSource:  10,
		},
		MinColumns: 10,
	}
}

func (s *Schema) Validate() error {
	if s.Header {
		for _, f := range requiredFields {
			if strings.TrimSpace(s.Columns[f]) == "" {
				return fmt.Errorf("schema: no column for %s", f)
			}
		}
		if s.CompanyType != "" && strings.TrimSpace(s.Columns[FieldType]) == "" {
			return fmt.Errorf("schema: company type filter without a type column")
		}
		return nil
	}

	for _, f := range requiredFields {
		if _, ok := s.Positions[f]; !ok {
			return fmt.Errorf("schema: no position for %s", f)
		}
	}
	for f, p := range s.Positions {
		if p < 0 {
			return fmt.Errorf("schema: negative position %d for %s", p, f)
		}
	}
	if _, ok := s.Positions[FieldType]; s.CompanyType != "" && !ok {
		return fmt.Errorf("schema: company type filter without a type column")
	}
	if s.MinColumns < 0 {
		return fmt.Errorf("schema: negative minimum column count")
	}
	return nil
}

type schemaDoc struct {
	Header      bool              `yaml:"header"`
	Columns     map[string]string `yaml:"columns" validate:"required_if=Header true,dive,keys,required,endkeys,required"`
	Positions   map[string]int    `yaml:"positions" validate:"required_if=Header false,dive,keys,required,endkeys,gte=0"`
	MinColumns  int               `yaml:"min_columns" validate:"gte=0"`
	CompanyType string            `yaml:"company_type"`
}

var validate = validator.New()

// LoadSchema resolves name to a built-in schema ("named", "positional") or
// reads it as a YAML schema file.
func LoadSchema(name string) (Schema, error) {
	switch strings.ToLower(name) {
	case "", "named":
		return NamedSchema(), nil
	case "positional":
		return PositionalSchema(), nil
	}

	data, err := os.ReadFile(name)
	if err != nil {
		return Schema{}, err
	}
	s, err := ParseSchema(data)
	if err != nil {
		return Schema{}, fmt.Errorf("%s: %w", name, err)
	}
	return s, nil
}

// ParseSchema decodes a YAML schema:
//
//	header: true
//	company_type: CARRIER
//	columns:
//	  id: BAN
//	  name: COMPANY NAME
//	  ...
func ParseSchema(data []byte) (Schema, error) {
	var doc schemaDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Schema{}, fmt.Errorf("decode schema: %w", err)
	}
	if err := validate.Struct(&doc); err != nil {
		return Schema{}, fmt.Errorf("invalid schema: %w", err)
	}

	s := Schema{
		Header:      doc.Header,
		MinColumns:  doc.MinColumns,
		CompanyType: doc.CompanyType,
	}
	if doc.Header {
		s.Columns = make(map[Field]string, len(doc.Columns))
		for k, v := range doc.Columns {
			f, err := ParseField(k)
			if err != nil {
				return Schema{}, fmt.Errorf("invalid schema: %w", err)
			}
			s.Columns[f] = v
		}
	} else {
		s.Positions = make(map[Field]int, len(doc.Positions))
		for k, v := range doc.Positions {
			f, err := ParseField(k)
			if err != nil {
				return Schema{}, fmt.Errorf("invalid schema: %w", err)
			}
			s.Positions[f] = v
		}
	}
	if err := s.Validate(); err != nil {
		return Schema{}, err
	}
	return s, nil
}
