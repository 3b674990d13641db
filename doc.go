/*
 * doc.go, part of meci.
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

/*Package meci extracts non-adiabatic coupling (NAC) data from the output of
minimum-energy crossing point (MECI) optimizations and collects it into a
dataset that can be used to train machine-learned models.

For each log file that terminated properly, the package reads:

    The element symbols and Cartesian coordinates (Angstrom) of the last
	geometry printed in the file.

    The energy gap between the two crossing states.

    The total derivative coupling vector of every atom.

Logs are found by walking a reactant and a product directory. The records
are folded, in that order, into a Dataset of four parallel arrays (species,
coords, e_diffs and nacs) which is written once as JSON at the end of the run.

The layout of the log (markers, offsets, termination string) is described by
a Format, so that a different program version only needs a different table,
which can be read from a TOML file with LoadFormat.

Logs, datasets and XYZ files can be gzip or zstd compressed, which is
decided by the file extension (see Open and Create).

Errors returned by this package implement the Error interface. Errors that
are not Critical (logs that did not terminate properly) are skipped by
Extract with a warning, all others stop the run.*/
package meci
