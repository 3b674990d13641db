/*
 * extract.go, part of meci.
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
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

// Terminated returns true if the termination marker of F appears in one of
// the last F.TailLines lines.
func Terminated(lines []string, F *Format) bool {
	first := len(lines) - F.TailLines
	if first < 0 {
		first = 0
	}
	for _, l := range lines[first:] {
		if strings.Contains(l, F.Termination) {
			return true
		}
	}
	return false
}

// block returns the n lines starting at from, or an error if they are not
// all in the file.
func block(lines []string, from, n int, caller string) ([]string, error) {
	if from < 0 || from+n > len(lines) {
		return nil, newError(OutOfRange, from+1, true,
			fmt.Errorf("%d lines needed from line %d, the file has %d", n, from+1, len(lines)), caller)
	}
	return lines[from : from+n], nil
}

// ParseLog extracts a Record for natoms atoms from the lines of a MECI log,
// using the layout in F. It doesn't check for the termination marker.
// All returned errors are critical.
func ParseLog(lines []string, natoms int, F *Format) (*Record, error) {
	if natoms < 1 {
		return nil, newError(WrongAtomCount, 0, true, fmt.Errorf("natoms must be positive, got %d", natoms), "ParseLog")
	}
	R := &Record{
		Species: make([]string, 0, natoms),
		Coords:  make([][3]float64, 0, natoms),
		NACs:    make([][3]float64, 0, natoms),
	}
	//Coupling. Only the first one is read, there is only one crossing point per log.
	cidx := F.Coupling.Find(lines)
	if cidx < 0 {
		return nil, newError(MarkerNotFound, 0, true, fmt.Errorf("%q", F.Coupling.Marker), "ParseLog")
	}
	nacs, err := block(lines, cidx+F.Coupling.Offset, natoms, "ParseLog")
	if err != nil {
		return nil, err
	}
	for i, l := range nacs {
		n, err := Numbers(l)
		if err != nil {
			return nil, newError(MalformedNumber, cidx+F.Coupling.Offset+i+1, true, err, "ParseLog")
		}
		//the first number is the atom index
		if len(n) < 4 {
			return nil, newError(TooFewFields, cidx+F.Coupling.Offset+i+1, true,
				fmt.Errorf("expected an index and 3 components, got %d numbers", len(n)), "ParseLog")
		}
		R.NACs = append(R.NACs, [3]float64{n[1], n[2], n[3]})
	}

	//Geometry. This scans the whole file again, independently of the coupling block.
	gidx := F.Geometry.Find(lines)
	if gidx < 0 {
		return nil, newError(MarkerNotFound, 0, true, fmt.Errorf("%q", F.Geometry.Marker), "ParseLog")
	}
	geom, err := block(lines, gidx+F.Geometry.Offset, natoms, "ParseLog")
	if err != nil {
		return nil, err
	}
	for i, l := range geom {
		lineno := gidx + F.Geometry.Offset + i + 1
		//index, label, x, y, z
		fields := strings.Fields(l)
		if len(fields) < 5 {
			return nil, newError(TooFewFields, lineno, true,
				fmt.Errorf("expected index, label and 3 coordinates, got %d fields", len(fields)), "ParseLog")
		}
		c, err := triple(fields[2:5])
		if err != nil {
			return nil, newError(MalformedNumber, lineno, true, err, "ParseLog")
		}
		R.Species = append(R.Species, fields[1][:1])
		R.Coords = append(R.Coords, c)
	}

	//Energy gap
	eidx := cidx + F.Energy.Offset
	el, err := block(lines, eidx, 1, "ParseLog")
	if err != nil {
		return nil, err
	}
	_, val, found := strings.Cut(el[0], F.Energy.Text)
	if !found {
		return nil, newError(LabelNotFound, eidx+1, true, fmt.Errorf("%q", F.Energy.Text), "ParseLog")
	}
	R.EDiff, err = finite(strings.TrimSpace(val))
	if err != nil {
		return nil, newError(MalformedNumber, eidx+1, true, err, "ParseLog")
	}
	return R, nil
}

// ReadLog reads the (possibly compressed) log filename and extracts a Record
// for natoms atoms. If the log did not terminate properly, the error is not
// Critical, and the file should just be skipped.
func ReadLog(filename string, natoms int, F *Format) (*Record, error) {
	lines, err := ReadLines(filename)
	if err != nil {
		return nil, errDecorate(err, "ReadLog")
	}
	if !Terminated(lines, F) {
		e := newError(NotTerminated, 0, false, nil, "ReadLog")
		e.filename = filename
		return nil, e
	}
	R, err := ParseLog(lines, natoms, F)
	if err != nil {
		var e *LogError
		if errors.As(err, &e) {
			e.filename = filename
		}
		return nil, errDecorate(err, "ReadLog")
	}
	R.Source = filename
	if err := R.Check(natoms); err != nil {
		return nil, errDecorate(err, "ReadLog")
	}
	return R, nil
}

// Config contains everything needed for an extraction run.
type Config struct {
	ReactantDir string
	ProductDir  string
	Output      string //the dataset, JSON, compressed if it ends in .gz or .zst
	NAtoms      int
	Format      *Format     //DefaultFormat() if nil
	XYZ         string      //if not empty, the geometries are also written here.
	Log         *log.Logger //warnings, log.Default() if nil
}

// Check returns an error if the configuration can't be used, and sets the
// defaults for the optional fields.
func (C *Config) Check() error {
	switch {
	case C.ReactantDir == "" || C.ProductDir == "":
		return newError(BadConfig, 0, true, fmt.Errorf("reactant and product directories are required"), "Config.Check")
	case C.Output == "":
		return newError(BadConfig, 0, true, fmt.Errorf("no output file given"), "Config.Check")
	case C.NAtoms < 1:
		return newError(BadConfig, 0, true, fmt.Errorf("natoms must be positive, got %d", C.NAtoms), "Config.Check")
	}
	if C.Format == nil {
		C.Format = DefaultFormat()
	}
	if C.Log == nil {
		C.Log = log.Default()
	}
	return C.Format.Check()
}

// Extract reads all the logs in the reactant and then the product directory,
// collects the data of the ones that terminated properly and writes it to
// C.Output. Progress is written to out. Logs that did not terminate properly
// are skipped with a warning, any other error stops the run and nothing
// is written.
func Extract(C *Config, out io.Writer) (*Dataset, error) {
	if err := C.Check(); err != nil {
		return nil, errDecorate(err, "Extract")
	}
	files, err := Worklist(C.Format.Extensions, C.ReactantDir, C.ProductDir)
	if err != nil {
		return nil, err
	}
	D := NewDataset()
	for i, f := range files {
		R, err := ReadLog(f, C.NAtoms, C.Format)
		if err != nil {
			var e *LogError
			if Skippable(err) && errors.As(err, &e) {
				C.Log.Printf("warning: %s is not valid: %s", f, e.Message())
				continue
			}
			return nil, errDecorate(err, "Extract")
		}
		D.Add(R)
		fmt.Fprintf(out, "extracted data from file #%d: %s\n", i+1, f)
	}
	if err := D.WriteFile(C.Output); err != nil {
		return nil, err
	}
	if C.XYZ != "" {
		if err := D.WriteXYZFile(C.XYZ); err != nil {
			return nil, err
		}
	}
	fmt.Fprintf(out, "successfully extracted data to %q\n", C.Output)
	if info, err := os.Stat(C.Output); err == nil {
		fmt.Fprintf(out, "size: %d\n", info.Size())
	}
	return D, nil
}
