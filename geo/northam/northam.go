// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package northam holds gazetteer data for Mexico, the United States and
// Canada, with the abbreviations found in carrier exports.
package northam

import "github.com/someonegg/lanematch/geo"

const (
	Mexico       = "Mexico"
	UnitedStates = "United States"
	Canada       = "Canada"
)

// Table returns the gazetteer table. Each call returns fresh data.
func Table() []geo.Country {
	return []geo.Country{
		{
			Name:    Mexico,
			Aliases: []string{"México", "MX", "MEX", "Estados Unidos Mexicanos"},
			Regions: map[string][]string{
				"Aguascalientes":      {"AGS", "AG"},
				"Baja California":     {"BC", "BN", "Baja California Norte"},
				"Baja California Sur": {"BCS", "BS"},
				"Campeche":            {"CAMP", "CM"},
				"Chiapas":             {"CHIS", "CS"},
				"Chihuahua":           {"CHIH", "CH"},
				"Ciudad de México":    {"CDMX", "DF", "Distrito Federal", "Mexico City"},
				"Coahuila":            {"COAH", "CO", "Coahuila de Zaragoza"},
				"Colima":              {"COL", "CL"},
				"Durango":             {"DGO", "DG"},
				"Estado de México":    {"EM", "EDOMX", "MX", "MEX", "Mexico State", "Edo Mex", "State of Mexico"},
				"Guanajuato":          {"GTO", "GT"},
				"Guerrero":            {"GRO", "GR"},
				"Hidalgo":             {"HGO", "HG"},
				"Jalisco":             {"JAL", "JA"},
				"Michoacán":           {"MICH", "MC", "Michoacán de Ocampo"},
				"Morelos":             {"MOR", "MR"},
				"Nayarit":             {"NAY", "NA"},
				"Nuevo León":          {"NL", "NLE"},
				"Oaxaca":              {"OAX", "OA"},
				"Puebla":              {"PUE", "PU"},
				"Querétaro":           {"QRO", "QE", "Querétaro de Arteaga"},
				"Quintana Roo":        {"QROO", "QR"},
				"San Luis Potosí":     {"SLP", "SL"},
				"Sinaloa":             {"SIN", "SI"},
				"Sonora":              {"SON", "SO"},
				"Tabasco":             {"TAB", "TB"},
				"Tamaulipas":          {"TAMPS", "TAMP", "TM"},
				"Tlaxcala":            {"TLAX", "TL"},
				"Veracruz":            {"VER", "VE", "Veracruz de Ignacio de la Llave"},
				"Yucatán":             {"YUC", "YU"},
				"Zacatecas":           {"ZAC", "ZA"},
			},
		},
		{
			Name:    UnitedStates,
			Aliases: []string{"US", "USA", "U.S.A.", "United States of America", "Estados Unidos", "EE.UU.", "EUA"},
			Regions: map[string][]string{
				"Alabama":              {"AL"},
				"Alaska":               {"AK"},
				"Arizona":              {"AZ"},
				"Arkansas":             {"AR"},
				"California":           {"CA"},
				"Colorado":             {"CO"},
				"Connecticut":          {"CT"},
				"Delaware":             {"DE"},
				"District of Columbia": {"DC"},
				"Florida":              {"FL"},
				"Georgia":              {"GA"},
				"Hawaii":               {"HI"},
				"Idaho":                {"ID"},
				"Illinois":             {"IL"},
				"Indiana":              {"IN"},
				"Iowa":                 {"IA"},
				"Kansas":               {"KS"},
				"Kentucky":             {"KY"},
				"Louisiana":            {"LA"},
				"Maine":                {"ME"},
				"Maryland":             {"MD"},
				"Massachusetts":        {"MA"},
				"Michigan":             {"MI"},
				"Minnesota":            {"MN"},
				"Mississippi":          {"MS"},
				"Missouri":             {"MO"},
				"Montana":              {"MT"},
				"Nebraska":             {"NE"},
				"Nevada":               {"NV"},
				"New Hampshire":        {"NH"},
				"New Jersey":           {"NJ"},
				"New Mexico":           {"NM"},
				"New York":             {"NY"},
				"North Carolina":       {"NC"},
				"North Dakota":         {"ND"},
				"Ohio":                 {"OH"},
				"Oklahoma":             {"OK"},
				"Oregon":               {"OR"},
				"Pennsylvania":         {"PA"},
				"Rhode Island":         {"RI"},
				"South Carolina":       {"SC"},
				"South Dakota":         {"SD"},
				"Tennessee":            {"TN"},
				"Texas":                {"TX"},
				"Utah":                 {"UT"},
				"Vermont":              {"VT"},
				"Virginia":             {"VA"},
				"Washington":           {"WA"},
				"West Virginia":        {"WV"},
				"Wisconsin":            {"WI"},
				"Wyoming":              {"WY"},
			},
		},
		{
			Name:    Canada,
			Aliases: []string{"CA", "CAN", "Canadá"},
			Regions: map[string][]string{
				"Alberta":                   {"AB"},
				"British Columbia":          {"BC"},
				"Manitoba":                  {"MB"},
				"New Brunswick":             {"NB"},
				"Newfoundland and Labrador": {"NL", "Newfoundland"},
				"Northwest Territories":     {"NT"},
				"Nova Scotia":               {"NS"},
				"Nunavut":                   {"NU"},
				"Ontario":                   {"ON"},
				"Prince Edward Island":      {"PE", "PEI"},
				"Quebec":                    {"QC", "PQ"},
				"Saskatchewan":              {"SK"},
				"Yukon":                     {"YT"},
			},
		},
	}
}

// NewLocationUnifier returns a gazetteer over Table.
func NewLocationUnifier() *geo.Gazetteer {
	return geo.MustGazetteer(Table())
}
