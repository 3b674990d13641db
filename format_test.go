/*
 * format_test.go, part of meci.
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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultFormat(t *testing.T) {
	F := DefaultFormat()
	require.NoError(t, F.Check())
	assert.Equal(t, "Happy landing!", F.Termination)
	assert.Equal(t, 8, F.Coupling.Offset)
	assert.False(t, F.Coupling.Last)
	assert.Equal(t, 4, F.Geometry.Offset)
	assert.True(t, F.Geometry.Last)
	assert.Equal(t, -4, F.Energy.Offset)
	assert.Equal(t, []string{".log"}, F.Extensions)
}

func TestSectionFind(t *testing.T) {
	lines := []string{"a", "marker 1", "b", "marker 2", "c"}
	assert.Equal(t, 1, Section{Marker: "marker"}.Find(lines))
	assert.Equal(t, 3, Section{Marker: "marker", Last: true}.Find(lines))
	assert.Equal(t, -1, Section{Marker: "nope"}.Find(lines))
	assert.Equal(t, -1, Section{Marker: "nope", Last: true}.Find(lines))
}

func TestLoadFormat(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "format.toml")
	cont := `name = "molcas-old"
termination = "Happy landing"
tail_lines = 6
extensions = [".log", ".out"]

[coupling]
offset = 9

[energy]
text = "Energy gap:"
`
	require.NoError(t, os.WriteFile(name, []byte(cont), 0644))
	F, err := LoadFormat(name)
	require.NoError(t, err)
	assert.Equal(t, "molcas-old", F.Name)
	assert.Equal(t, "Happy landing", F.Termination)
	assert.Equal(t, 6, F.TailLines)
	assert.Equal(t, []string{".log", ".out"}, F.Extensions)
	assert.Equal(t, 9, F.Coupling.Offset)
	//not in the file, so they keep the defaults
	assert.Equal(t, "Total derivative coupling", F.Coupling.Marker)
	assert.Equal(t, "Cartesian coordinates in Angstrom", F.Geometry.Marker)
	assert.Equal(t, -4, F.Energy.Offset)
	assert.Equal(t, "Energy gap:", F.Energy.Text)
}

func TestLoadFormat_Errors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		cont string
	}{
		{"unknown key", "terminator = \"x\"\n"},
		{"bad toml", "name = \n"},
		{"invalid window", "tail_lines = 0\n"},
		{"empty marker", "[geometry]\nmarker = \"\"\n"},
	}
	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name := filepath.Join(dir, filepath.Base(t.Name())+".toml")
			require.NoError(t, os.WriteFile(name, []byte(tt.cont), 0644), i)
			_, err := LoadFormat(name)
			assert.Error(t, err)
		})
	}
	_, err := LoadFormat(filepath.Join(dir, "missing.toml"))
	assert.Error(t, err)
}
