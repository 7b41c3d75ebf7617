// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geo

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize returns the comparison key of s: lowercase, without diacritics,
// punctuation and symbols turned into spaces, whitespace collapsed.
//
//	"  San Nicolás de los Garza, N.L. " => "san nicolas de los garza n l"
func Normalize(s string) string {
	if s == "" {
		return ""
	}
	s, _, _ = transform.String(stripMarks, strings.ToLower(s))
	s = strings.Map(func(r rune) rune {
		if unicode.IsPunct(r) || unicode.IsSymbol(r) {
			return ' '
		}
		return r
	}, s)
	return strings.Join(strings.Fields(s), " ")
}
