/*
 * dataset.go, part of meci.
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
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// Dataset is the collection of all the records extracted in a run, as four
// parallel arrays. Element i of each array comes from the same log.
type Dataset struct {
	Species [][]string     `json:"species"`
	Coords  [][][3]float64 `json:"coords"`
	EDiffs  []float64      `json:"e_diffs"`
	NACs    [][][3]float64 `json:"nacs"`
	sources []string
}

// NewDataset returns an empty dataset. An empty dataset is encoded with
// empty arrays, not nulls.
func NewDataset() *Dataset {
	return &Dataset{
		Species: make([][]string, 0),
		Coords:  make([][][3]float64, 0),
		EDiffs:  make([]float64, 0),
		NACs:    make([][][3]float64, 0),
	}
}

// Add appends the data in R to the dataset.
func (D *Dataset) Add(R *Record) {
	D.Species = append(D.Species, R.Species)
	D.Coords = append(D.Coords, R.Coords)
	D.EDiffs = append(D.EDiffs, R.EDiff)
	D.NACs = append(D.NACs, R.NACs)
	D.sources = append(D.sources, R.Source)
}

// Len returns the number of records in the dataset.
func (D *Dataset) Len() int {
	return len(D.EDiffs)
}

// Source returns the log the ith record was read from, or an empty
// string if the dataset was read from a file.
func (D *Dataset) Source(i int) string {
	if i < len(D.sources) {
		return D.sources[i]
	}
	return ""
}

// Record returns the ith record of the dataset.
func (D *Dataset) Record(i int) *Record {
	return &Record{
		Species: D.Species[i],
		Coords:  D.Coords[i],
		EDiff:   D.EDiffs[i],
		NACs:    D.NACs[i],
		Source:  D.Source(i),
	}
}

// Check returns an error if the four arrays don't have the same length, or
// if any record is inconsistent.
func (D *Dataset) Check() error {
	n := len(D.EDiffs)
	if len(D.Species) != n || len(D.Coords) != n || len(D.NACs) != n {
		return fmt.Errorf("dataset arrays differ in length: %d species, %d coords, %d e_diffs, %d nacs",
			len(D.Species), len(D.Coords), n, len(D.NACs))
	}
	for i := 0; i < n; i++ {
		R := D.Record(i)
		if err := R.Check(len(R.Species)); err != nil {
			return fmt.Errorf("dataset record %d: %w", i, err)
		}
	}
	return nil
}

// Write encodes the dataset as JSON into w.
func (D *Dataset) Write(w io.Writer) error {
	return json.NewEncoder(w).Encode(D)
}

// WriteFile writes the dataset as JSON to filename, compressing it if the
// name ends in .gz or .zst. The dataset is encoded before the file is
// created, so nothing is written if encoding fails.
func (D *Dataset) WriteFile(filename string) error {
	var buf bytes.Buffer
	if err := D.Write(&buf); err != nil {
		return fmt.Errorf("writing %s: %w", filename, err)
	}
	f, err := Create(filename)
	if err != nil {
		return err
	}
	if _, err := buf.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", filename, err)
	}
	return f.Close()
}

// ReadDataset reads a dataset written by WriteFile.
func ReadDataset(filename string) (*Dataset, error) {
	f, err := Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	D := NewDataset()
	if err := json.NewDecoder(f).Decode(D); err != nil {
		return nil, fmt.Errorf("reading %s: %w", filename, err)
	}
	if err := D.Check(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", filename, err)
	}
	return D, nil
}
