/*
 * dataset_test.go, part of meci.
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
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecord(n int, ediff float64, src string) *Record {
	R := &Record{EDiff: ediff, Source: src}
	for i := 0; i < n; i++ {
		f := float64(i)
		R.Species = append(R.Species, "H")
		R.Coords = append(R.Coords, [3]float64{f, 0, 0})
		R.NACs = append(R.NACs, [3]float64{0, f, 0})
	}
	return R
}

func TestDatasetAdd(t *testing.T) {
	D := NewDataset()
	for i := 0; i < 4; i++ {
		D.Add(sampleRecord(2, float64(i), "f"))
	}
	assert.Equal(t, 4, D.Len())
	assert.Len(t, D.Species, 4)
	assert.Len(t, D.Coords, 4)
	assert.Len(t, D.NACs, 4)
	require.NoError(t, D.Check())
	R := D.Record(2)
	assert.Equal(t, 2.0, R.EDiff)
	assert.Equal(t, "f", R.Source)
}

func TestDatasetCheck(t *testing.T) {
	D := NewDataset()
	D.Add(sampleRecord(2, 0.1, ""))
	D.EDiffs = append(D.EDiffs, 0.2)
	assert.Error(t, D.Check())

	D = NewDataset()
	R := sampleRecord(3, 0.1, "")
	R.NACs = R.NACs[:2]
	D.Add(R)
	assert.Error(t, D.Check())
}

func TestDatasetJSON(t *testing.T) {
	D := NewDataset()
	D.Add(&Record{
		Species: []string{"C", "O"},
		Coords:  [][3]float64{{0, 0, 0}, {0, 0, 1.128}},
		EDiff:   1e-3,
		NACs:    [][3]float64{{0, 0, -0.5}, {0, 0, 0.5}},
	})
	var buf bytes.Buffer
	require.NoError(t, D.Write(&buf))
	assert.JSONEq(t, `{"species":[["C","O"]],"coords":[[[0,0,0],[0,0,1.128]]],"e_diffs":[0.001],"nacs":[[[0,0,-0.5],[0,0,0.5]]]}`, buf.String())
}

func TestDatasetFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	D := NewDataset()
	D.Add(sampleRecord(3, 0.25, "a"))
	D.Add(sampleRecord(3, -0.5, "b"))
	for _, name := range []string{"d.json", "d.json.gz", "d.json.zst"} {
		name = filepath.Join(dir, name)
		require.NoError(t, D.WriteFile(name))
		read, err := ReadDataset(name)
		require.NoError(t, err, name)
		assert.Equal(t, D.Species, read.Species)
		assert.Equal(t, D.Coords, read.Coords)
		assert.Equal(t, D.EDiffs, read.EDiffs)
		assert.Equal(t, D.NACs, read.NACs)
		assert.Equal(t, "", read.Source(0))
	}
}

func TestDatasetWriteFile_NonFinite(t *testing.T) {
	dir := t.TempDir()
	D := NewDataset()
	D.Add(sampleRecord(2, math.NaN(), "a"))
	for _, name := range []string{"d.json", "d.json.zst"} {
		name = filepath.Join(dir, name)
		assert.Error(t, D.WriteFile(name))
		assert.NoFileExists(t, name)
	}
}

func TestReadDataset_Inconsistent(t *testing.T) {
	dir := t.TempDir()
	name := writeFile(t, filepath.Join(dir, "bad.json"), `{"species":[["H"]],"coords":[],"e_diffs":[0.1],"nacs":[[[0,0,0]]]}`)
	_, err := ReadDataset(name)
	assert.Error(t, err)
}

func TestSummary(t *testing.T) {
	D := NewDataset()
	S := D.Summary()
	assert.Equal(t, 0, S.Records)
	assert.Equal(t, -1, S.MaxNACAt)
	assert.Equal(t, "records: 0", S.String())

	D.Add(sampleRecord(2, 1, "a")) //largest NAC norm 1
	D.Add(sampleRecord(4, 3, "b")) //largest NAC norm 3
	S = D.Summary()
	assert.Equal(t, 2, S.Records)
	assert.InDelta(t, 2.0, S.MeanEDiff, 1e-12)
	assert.InDelta(t, math.Sqrt(2), S.StdEDiff, 1e-12)
	assert.InDelta(t, 3.0, S.MaxNACNorm, 1e-12)
	assert.Equal(t, 1, S.MaxNACAt)
	assert.True(t, strings.HasPrefix(S.String(), "records: 2"))
}

func TestWriteXYZ(t *testing.T) {
	D := NewDataset()
	D.Add(&Record{
		Species: []string{"O", "H"},
		Coords:  [][3]float64{{0, 0, 0}, {0.96, 0, 0}},
		EDiff:   0.5,
		NACs:    [][3]float64{{0, 0, 0}, {0, 0, 0}},
		Source:  "run1.log",
	})
	var buf bytes.Buffer
	require.NoError(t, D.WriteXYZ(&buf))
	want := "2\nrun1.log e_diff=0.5\nO      0.00000000     0.00000000     0.00000000\nH      0.96000000     0.00000000     0.00000000\n"
	assert.Equal(t, want, buf.String())
}
