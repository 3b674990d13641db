/*
 * record.go, part of meci.
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

import "fmt"

// Record holds the data extracted from one MECI log.
type Record struct {
	Species []string     //one-letter element symbols
	Coords  [][3]float64 //Angstrom
	EDiff   float64      //energy gap between the crossing states, in the units of the log
	NACs    [][3]float64 //total derivative coupling, one vector per atom
	Source  string       //the log the record was read from
}

// Len returns the number of atoms in the record.
func (R *Record) Len() int {
	return len(R.Species)
}

// Check returns an error unless species, coordinates and NACs all have
// natoms elements.
func (R *Record) Check(natoms int) error {
	if len(R.Species) != natoms || len(R.Coords) != natoms || len(R.NACs) != natoms {
		e := newError(WrongAtomCount, 0, true,
			fmt.Errorf("%d species, %d coordinates and %d NAC vectors for %d atoms", len(R.Species), len(R.Coords), len(R.NACs), natoms),
			"Record.Check")
		e.filename = R.Source
		return e
	}
	return nil
}
