/*
 * hbond.go, part of meci.
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

// Package hbond computes how often hydrogen bonds are present along a set of
// trajectories. Each trajectory is a text file named {name}-{index}.dat whose
// lines start with the step number and end with the number of hydrogen bonds
// found at that step.
package hbond

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats/scalar"
)

// Trajectory contains the hydrogen bond information of one trajectory.
type Trajectory struct {
	Name   string
	Steps  int //number of lines in the file. The trajectory is alive for steps below this.
	bonded map[int]bool
}

// Alive returns true if the trajectory reached step.
func (T *Trajectory) Alive(step int) bool {
	return step < T.Steps
}

// Bonded returns true if a positive number of hydrogen bonds was reported
// for step.
func (T *Trajectory) Bonded(step int) bool {
	return T.bonded[step]
}

// ReadTrajectory reads a trajectory from r. name is only used in errors.
// Lines whose first field is not an integer are counted as steps but
// carry no bond information.
func ReadTrajectory(r io.Reader, name string) (*Trajectory, error) {
	T := &Trajectory{Name: name, bonded: make(map[int]bool)}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		T.Steps++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		step, err := strconv.Atoi(fields[0])
		if err != nil {
			continue
		}
		if len(fields) < 2 {
			return nil, fmt.Errorf("%s: line %d: no hydrogen bond count for step %d", name, T.Steps, step)
		}
		n, err := strconv.Atoi(fields[len(fields)-1])
		if err != nil {
			return nil, fmt.Errorf("%s: line %d: %w", name, T.Steps, err)
		}
		if n > 0 {
			T.bonded[step] = true
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return T, nil
}

// FileName returns the name of the file for the index-th trajectory.
func FileName(root, name string, index int) string {
	return filepath.Join(root, fmt.Sprintf("%s-%d.dat", name, index))
}

// Count returns the number of {name}-{index}.dat files in root, where
// index is a non-negative integer. Files like {name}-extra-0.dat belong
// to another trajectory name and are not counted.
func Count(root, name string) (int, error) {
	m, err := filepath.Glob(filepath.Join(root, name+"-*.dat"))
	if err != nil {
		return 0, err
	}
	var n int
	for _, v := range m {
		index := strings.TrimSuffix(strings.TrimPrefix(filepath.Base(v), name+"-"), ".dat")
		if i, err := strconv.Atoi(index); err == nil && i >= 0 {
			n++
		}
	}
	return n, nil
}

// Load reads the trajectories {root}/{name}-{i}.dat for i from 0 to the
// number of such files minus one. A gap in the numbering is an error.
func Load(root, name string) ([]*Trajectory, error) {
	n, err := Count(root, name)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, fmt.Errorf("no %s-*.dat files in %s", name, root)
	}
	ret := make([]*Trajectory, 0, n)
	for i := 0; i < n; i++ {
		fname := FileName(root, name, i)
		f, err := os.Open(fname)
		if err != nil {
			return nil, err
		}
		T, err := ReadTrajectory(f, fname)
		f.Close()
		if err != nil {
			return nil, err
		}
		ret = append(ret, T)
	}
	return ret, nil
}

// Frequency returns, for each step from 0 to the length of the longest
// trajectory, the fraction of the trajectories alive at that step that
// report hydrogen bonds, rounded to 2 decimals.
func Frequency(trajs []*Trajectory) []float64 {
	var longest int
	for _, T := range trajs {
		if T.Steps > longest {
			longest = T.Steps
		}
	}
	ret := make([]float64, longest)
	for step := range ret {
		var alive, bonded int
		for _, T := range trajs {
			if !T.Alive(step) {
				continue
			}
			alive++
			if T.Bonded(step) {
				bonded++
			}
		}
		//alive is never 0 here, at least the longest trajectory is alive.
		ret[step] = scalar.RoundEven(float64(bonded)/float64(alive), 2)
	}
	return ret
}

// WriteTable writes the frequencies as "step ratio" lines.
func WriteTable(w io.Writer, freq []float64) error {
	bw := bufio.NewWriter(w)
	for i, v := range freq {
		fmt.Fprintf(bw, "%d %.2f\n", i, v)
	}
	return bw.Flush()
}
