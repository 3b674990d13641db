/*
 * discover.go, part of meci.
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
	"io/fs"
	"path/filepath"
	"strings"
)

// HasExt returns true if name ends with one of exts, possibly followed by
// a compression suffix (.gz or .zst).
func HasExt(name string, exts []string) bool {
	base := stripCompression(name)
	for _, e := range exts {
		if strings.HasSuffix(base, e) && len(base) > len(e) {
			return true
		}
	}
	return false
}

// Discover walks root recursively and returns the files whose names match
// exts (see HasExt), in lexical order within each directory.
func Discover(root string, exts []string) ([]string, error) {
	var ret []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if HasExt(d.Name(), exts) {
			ret = append(ret, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ret, nil
}

// Worklist concatenates the logs found in each of dirs, in the given order.
func Worklist(exts []string, dirs ...string) ([]string, error) {
	var ret []string
	for _, d := range dirs {
		files, err := Discover(d, exts)
		if err != nil {
			return nil, err
		}
		ret = append(ret, files...)
	}
	return ret, nil
}
