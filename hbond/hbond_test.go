/*
 * hbond_test.go, part of meci.
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

package hbond

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTraj(t *testing.T, dir, name string, index int, counts ...int) {
	t.Helper()
	var b strings.Builder
	for step, c := range counts {
		fmt.Fprintf(&b, "%d O1-H2 %d\n", step, c)
	}
	require.NoError(t, os.WriteFile(FileName(dir, name, index), []byte(b.String()), 0644))
}

func TestReadTrajectory(t *testing.T) {
	in := "0 2\n1 0\n# comment\n2 a b 1\n\n"
	T, err := ReadTrajectory(strings.NewReader(in), "x.dat")
	require.NoError(t, err)
	assert.Equal(t, 5, T.Steps)
	assert.True(t, T.Bonded(0))
	assert.False(t, T.Bonded(1))
	assert.True(t, T.Bonded(2))
	assert.False(t, T.Bonded(3))
	assert.True(t, T.Alive(4))
	assert.False(t, T.Alive(5))
}

func TestReadTrajectory_Errors(t *testing.T) {
	_, err := ReadTrajectory(strings.NewReader("0 1\n1\n"), "x.dat")
	assert.Error(t, err)
	_, err = ReadTrajectory(strings.NewReader("0 one\n"), "x.dat")
	assert.Error(t, err)
}

func TestFrequency_Half(t *testing.T) {
	dir := t.TempDir()
	writeTraj(t, dir, "run", 0, 1, 0)
	writeTraj(t, dir, "run", 1, 0, 0)
	writeTraj(t, dir, "run", 2, 3, 1)
	writeTraj(t, dir, "run", 3, 0, 1)
	trajs, err := Load(dir, "run")
	require.NoError(t, err)
	freq := Frequency(trajs)
	require.Len(t, freq, 2)
	assert.Equal(t, 0.5, freq[0])
	assert.Equal(t, 0.5, freq[1])
}

func TestFrequency_DeadTrajectories(t *testing.T) {
	dir := t.TempDir()
	writeTraj(t, dir, "md", 0, 1, 1, 1, 1)
	writeTraj(t, dir, "md", 1, 0, 0)
	writeTraj(t, dir, "md", 2, 0, 1, 0)
	trajs, err := Load(dir, "md")
	require.NoError(t, err)
	freq := Frequency(trajs)
	//step 0: 1/3, step 1: 2/3, step 2: 1/2 (two alive), step 3: 1/1
	assert.Equal(t, []float64{0.33, 0.67, 0.5, 1}, freq)
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()
	_, err := Load(dir, "run")
	assert.Error(t, err)

	//run-0 and run-2, run-1 is missing
	writeTraj(t, dir, "run", 0, 1)
	writeTraj(t, dir, "run", 2, 1)
	_, err = Load(dir, "run")
	assert.Error(t, err)
}

func TestCount(t *testing.T) {
	dir := t.TempDir()
	writeTraj(t, dir, "a", 0, 1)
	writeTraj(t, dir, "a", 1, 1)
	writeTraj(t, dir, "b", 0, 1)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), nil, 0644))
	n, err := Count(dir, "a")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestCount_OtherNames(t *testing.T) {
	dir := t.TempDir()
	writeTraj(t, dir, "w", 0, 1)
	writeTraj(t, dir, "w", 1, 0)
	writeTraj(t, dir, "w-extra", 0, 1)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "w-last.dat"), nil, 0644))
	n, err := Count(dir, "w")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	trajs, err := Load(dir, "w")
	require.NoError(t, err)
	assert.Len(t, trajs, 2)
}

func TestFrequency_RoundsHalfEven(t *testing.T) {
	dir := t.TempDir()
	writeTraj(t, dir, "r", 0, 1)
	for i := 1; i < 8; i++ {
		writeTraj(t, dir, "r", i, 0)
	}
	trajs, err := Load(dir, "r")
	require.NoError(t, err)
	//1/8 = 0.125
	assert.Equal(t, []float64{0.12}, Frequency(trajs))
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTable(&buf, []float64{0.5, 1}))
	assert.Equal(t, "0 0.50\n1 1.00\n", buf.String())
}

func TestPlot(t *testing.T) {
	name := filepath.Join(t.TempDir(), DefaultPlot)
	require.NoError(t, Plot([]float64{0, 0.25, 0.5, 1}, name))
	info, err := os.Stat(name)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))

	assert.Error(t, Plot(nil, name))
}
