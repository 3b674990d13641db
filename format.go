/*
 * format.go, part of meci.
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
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// Section locates a block of the log: the line containing Marker, and the
// data lines that start Offset lines after it.
type Section struct {
	Marker string `toml:"marker"`
	Offset int    `toml:"offset"`
	Last   bool   `toml:"last"` //use the last occurrence of Marker instead of the first one.
}

// Find returns the index of the line that contains the marker, or -1.
func (S Section) Find(lines []string) int {
	idx := -1
	for i, l := range lines {
		if strings.Contains(l, S.Marker) {
			idx = i
			if !S.Last {
				break
			}
		}
	}
	return idx
}

// Label is a line located Offset lines away from another section's marker,
// with the value after Text.
type Label struct {
	Text   string `toml:"text"`
	Offset int    `toml:"offset"`
}

// Format describes the layout of a MECI log.
type Format struct {
	Name        string   `toml:"name"`
	Termination string   `toml:"termination"` //success marker
	TailLines   int      `toml:"tail_lines"`  //the termination marker must be in the last TailLines lines.
	Coupling    Section  `toml:"coupling"`
	Geometry    Section  `toml:"geometry"`
	Energy      Label    `toml:"energy"` //relative to the coupling marker
	Extensions  []string `toml:"extensions"`
}

// DefaultFormat returns the layout of the MECI logs written by OpenMolcas.
func DefaultFormat() *Format {
	return &Format{
		Name:        "molcas",
		Termination: "Happy landing!",
		TailLines:   4,
		Coupling: Section{
			Marker: "Total derivative coupling",
			Offset: 8,
		},
		Geometry: Section{
			Marker: "Cartesian coordinates in Angstrom",
			Offset: 4,
			Last:   true,
		},
		Energy: Label{
			Text:   "Energy difference: ",
			Offset: -4,
		},
		Extensions: []string{".log"},
	}
}

// Check returns an error if the format can't be used to parse a log.
func (F *Format) Check() error {
	switch {
	case F.Termination == "":
		return fmt.Errorf("format %q: empty termination marker", F.Name)
	case F.TailLines < 1:
		return fmt.Errorf("format %q: tail_lines must be positive, got %d", F.Name, F.TailLines)
	case F.Coupling.Marker == "" || F.Geometry.Marker == "":
		return fmt.Errorf("format %q: empty section marker", F.Name)
	case F.Coupling.Offset < 1 || F.Geometry.Offset < 1:
		return fmt.Errorf("format %q: section offsets must be positive", F.Name)
	case F.Energy.Text == "":
		return fmt.Errorf("format %q: empty energy label", F.Name)
	case len(F.Extensions) == 0:
		return fmt.Errorf("format %q: no log extensions", F.Name)
	}
	return nil
}

// LoadFormat reads a TOML file with a format table. Keys missing from the
// file keep the values of DefaultFormat, unknown keys are an error.
func LoadFormat(filename string) (*Format, error) {
	cont, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	// Defaults
	F := DefaultFormat()
	md, err := toml.Decode(string(cont), F)
	if err != nil {
		return nil, fmt.Errorf("format file %s: %w", filename, err)
	}
	if und := md.Undecoded(); len(und) > 0 {
		return nil, fmt.Errorf("format file %s: unknown keys %v", filename, und)
	}
	if err := F.Check(); err != nil {
		return nil, err
	}
	return F, nil
}
