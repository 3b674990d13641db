/*
 * tokenize.go, part of meci.
 *
 *
 * Copyright 2024 The meci authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 */

package meci

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// A number is an optional minus sign, digits, an optional decimal part and
// an optional exponent. Spaces are allowed after the sign and around the
// exponent sign, some programs print "- 0.5" or "1.0E- 03".
var numberRe = regexp.MustCompile(`-? *[0-9]+\.?[0-9]*(?:[Ee] *[+-]? *[0-9]+)?`)

// Numbers returns all the numbers found in line, in order. Non-numeric text
// between them is ignored.
func Numbers(line string) ([]float64, error) {
	toks := numberRe.FindAllString(line, -1)
	ret := make([]float64, 0, len(toks))
	for _, t := range toks {
		t = strings.ReplaceAll(t, " ", "")
		v, err := finite(t)
		if err != nil {
			return nil, fmt.Errorf("%s %q: %w", MalformedNumber, t, err)
		}
		ret = append(ret, v)
	}
	return ret, nil
}

// triple parses fields as x, y and z.
func triple(fields []string) ([3]float64, error) {
	var ret [3]float64
	var err error
	for i := range ret {
		ret[i], err = finite(fields[i])
		if err != nil {
			return ret, err
		}
	}
	return ret, nil
}

// finite parses s as a float64, rejecting NaN and infinities, which
// strconv accepts but JSON cannot encode.
func finite(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("non-finite value %q", s)
	}
	return v, nil
}
