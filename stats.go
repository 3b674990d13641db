/*
 * stats.go, part of meci.
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

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary contains some statistics on a dataset, mostly useful to
// spot outliers before training.
type Summary struct {
	Records    int
	MeanEDiff  float64
	StdEDiff   float64 //0 for less than 2 records
	MaxNACNorm float64 //largest norm of a single atomic NAC vector
	MaxNACAt   int     //record with the largest NAC norm, -1 if empty
}

// Summary computes the statistics of the dataset.
func (D *Dataset) Summary() Summary {
	S := Summary{Records: D.Len(), MaxNACAt: -1}
	if S.Records == 0 {
		return S
	}
	S.MeanEDiff = stat.Mean(D.EDiffs, nil)
	if S.Records > 1 {
		S.StdEDiff = stat.StdDev(D.EDiffs, nil)
	}
	for i, nacs := range D.NACs {
		for _, v := range nacs {
			if n := floats.Norm(v[:], 2); n > S.MaxNACNorm || S.MaxNACAt < 0 {
				S.MaxNACNorm = n
				S.MaxNACAt = i
			}
		}
	}
	return S
}

func (S Summary) String() string {
	if S.Records == 0 {
		return "records: 0"
	}
	return fmt.Sprintf("records: %d, energy gap: %.6g +/- %.3g, largest NAC norm: %.6g (record %d)",
		S.Records, S.MeanEDiff, S.StdEDiff, S.MaxNACNorm, S.MaxNACAt)
}
