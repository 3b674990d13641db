/*
 * merge.go, part of meci.
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

// Package jsonmerge concatenates two JSON documents of the form
// {"key": [values...], ...} that have the same keys. It is used to put
// together datasets extracted in different batches.
package jsonmerge

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/meci-tools/meci"
	"github.com/valyala/fastjson"
)

// KeyMismatchError is returned when the two documents don't have the same keys.
// It fullfills meci.Error.
type KeyMismatchError struct {
	Keys1    []string
	Keys2    []string
	filename string //the second file, when merging files.
	deco     []string
}

func (err *KeyMismatchError) Error() string {
	return fmt.Sprintf("jsonmerge: file1 contains keys %v but file2 contains keys %v", err.Keys1, err.Keys2)
}

// Decorate adds deco, if not empty, to the list of callers and returns the list.
func (err *KeyMismatchError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// Critical always returns true, a merge cannot go on with different keys.
func (err *KeyMismatchError) Critical() bool { return true }

// FileName returns the file whose keys didn't match those of the first one,
// or an empty string if the error comes from Merge.
func (err *KeyMismatchError) FileName() string { return err.filename }

// keys returns the keys of o in document order. Repeated keys are
// only returned once.
func keys(o *fastjson.Object) []string {
	ret := make([]string, 0, o.Len())
	seen := make(map[string]bool, o.Len())
	o.Visit(func(k []byte, _ *fastjson.Value) {
		if !seen[string(k)] {
			seen[string(k)] = true
			ret = append(ret, string(k))
		}
	})
	return ret
}

func sameSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	sa := append([]string(nil), a...)
	sb := append([]string(nil), b...)
	sort.Strings(sa)
	sort.Strings(sb)
	for i := range sa {
		if sa[i] != sb[i] {
			return false
		}
	}
	return true
}

func object(p *fastjson.Parser, doc []byte, which string) (*fastjson.Object, error) {
	v, err := p.ParseBytes(doc)
	if err != nil {
		return nil, fmt.Errorf("jsonmerge: %s: %w", which, err)
	}
	o, err := v.Object()
	if err != nil {
		return nil, fmt.Errorf("jsonmerge: %s: top level is %s, not an object", which, v.Type())
	}
	return o, nil
}

// Merge returns a document with the keys of doc1, in the same order, where
// each value is the list in doc1 followed by the list in doc2. Both documents
// must have the same set of keys, and all values must be arrays.
// The values are copied verbatim, numbers keep their original text.
func Merge(doc1, doc2 []byte) ([]byte, error) {
	var p1, p2 fastjson.Parser
	o1, err := object(&p1, doc1, "file1")
	if err != nil {
		return nil, err
	}
	o2, err := object(&p2, doc2, "file2")
	if err != nil {
		return nil, err
	}
	k1, k2 := keys(o1), keys(o2)
	if !sameSet(k1, k2) {
		err := &KeyMismatchError{Keys1: k1, Keys2: k2}
		err.Decorate("Merge")
		return nil, err
	}
	var a fastjson.Arena
	merged := a.NewObject()
	for _, k := range k1 {
		l1, err := o1.Get(k).Array()
		if err != nil {
			return nil, fmt.Errorf("jsonmerge: file1: value of %q is not a list", k)
		}
		l2, err := o2.Get(k).Array()
		if err != nil {
			return nil, fmt.Errorf("jsonmerge: file2: value of %q is not a list", k)
		}
		arr := a.NewArray()
		var i int
		for _, v := range l1 {
			arr.SetArrayItem(i, v)
			i++
		}
		for _, v := range l2 {
			arr.SetArrayItem(i, v)
			i++
		}
		merged.Set(k, arr)
	}
	return merged.MarshalTo(nil), nil
}

func readAll(name string) ([]byte, error) {
	f, err := meci.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

// MergeFiles merges file1 and file2 (see Merge) and writes the result to
// out. Compressed files (.gz, .zst) are accepted and written. The output file
// is only created if the merge succeeds.
func MergeFiles(file1, file2, out string) error {
	d1, err := readAll(file1)
	if err != nil {
		return err
	}
	d2, err := readAll(file2)
	if err != nil {
		return err
	}
	merged, err := Merge(d1, d2)
	if err != nil {
		var km *KeyMismatchError
		if errors.As(err, &km) {
			km.filename = file2
			km.Decorate("MergeFiles")
		}
		return err
	}
	f, err := meci.Create(out)
	if err != nil {
		return err
	}
	if _, err := f.Write(merged); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
