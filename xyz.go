/*
 * xyz.go, part of meci.
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
	"bufio"
	"fmt"
	"io"
)

// WriteXYZ writes all the geometries in the dataset to w as a multi-frame
// XYZ file. The comment line of each frame has the source log (if known)
// and the energy gap.
func (D *Dataset) WriteXYZ(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for i := 0; i < D.Len(); i++ {
		fmt.Fprintf(bw, "%d\n", len(D.Species[i]))
		src := D.Source(i)
		if src == "" {
			src = fmt.Sprintf("record %d", i)
		}
		fmt.Fprintf(bw, "%s e_diff=%g\n", src, D.EDiffs[i])
		for j, s := range D.Species[i] {
			c := D.Coords[i][j]
			fmt.Fprintf(bw, "%-2s %14.8f %14.8f %14.8f\n", s, c[0], c[1], c[2])
		}
	}
	return bw.Flush()
}

// WriteXYZFile writes the geometries to filename (see WriteXYZ), compressed
// if the name ends in .gz or .zst.
func (D *Dataset) WriteXYZFile(filename string) error {
	f, err := Create(filename)
	if err != nil {
		return err
	}
	if err := D.WriteXYZ(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
