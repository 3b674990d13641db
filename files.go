/*
 * files.go, part of meci.
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
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// Compression suffixes understood by Open and Create.
const (
	GzipSuffix = ".gz"
	ZstdSuffix = ".zst"
)

// maximum length of a line in a log. Some programs print very long lines
// for big basis sets.
const maxLine = 16 * 1024 * 1024

// stripCompression returns name without a trailing compression suffix.
func stripCompression(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case GzipSuffix:
		return name[:len(name)-len(GzipSuffix)]
	case ZstdSuffix:
		return name[:len(name)-len(ZstdSuffix)]
	}
	return name
}

type readCloser struct {
	io.Reader
	closers []func() error
}

func (R *readCloser) Close() error {
	var err error
	for _, c := range R.closers {
		if err2 := c(); err2 != nil && err == nil {
			err = err2
		}
	}
	return err
}

type writeCloser struct {
	io.Writer
	closers []func() error
}

func (W *writeCloser) Close() error {
	var err error
	for _, c := range W.closers {
		if err2 := c(); err2 != nil && err == nil {
			err = err2
		}
	}
	return err
}

// Open opens name for reading. Files ending in .gz or .zst are
// transparently decompressed.
func Open(name string) (io.ReadCloser, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(name)) {
	case GzipSuffix:
		z, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, err
		}
		return &readCloser{z, []func() error{z.Close, f.Close}}, nil
	case ZstdSuffix:
		z, err := zstd.NewReader(f)
		if err != nil {
			f.Close()
			return nil, err
		}
		zclose := func() error { z.Close(); return nil }
		return &readCloser{z, []func() error{zclose, f.Close}}, nil
	}
	return f, nil
}

// Create creates (or truncates) name for writing. Files ending in .gz or
// .zst are compressed. The returned writer must be closed to flush
// the compressed stream.
func Create(name string) (io.WriteCloser, error) {
	f, err := os.Create(name)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(name)) {
	case GzipSuffix:
		z, err := gzip.NewWriterLevel(f, gzip.BestCompression)
		if err != nil {
			f.Close()
			return nil, err
		}
		return &writeCloser{z, []func() error{z.Close, f.Close}}, nil
	case ZstdSuffix:
		z, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
		if err != nil {
			f.Close()
			return nil, err
		}
		return &writeCloser{z, []func() error{z.Close, f.Close}}, nil
	}
	return f, nil
}

// ReadLines reads the whole (possibly compressed) file and returns its lines
// without the line terminators.
func ReadLines(name string) ([]string, error) {
	f, err := Open(name)
	if err != nil {
		e := newError(UnableToOpen, 0, true, err, "ReadLines")
		e.filename = name
		return nil, e
	}
	defer f.Close()
	lines := make([]string, 0, 1024)
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), maxLine)
	for scanner.Scan() {
		lines = append(lines, strings.TrimRight(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		e := newError(ReadError, len(lines)+1, true, err, "ReadLines")
		e.filename = name
		return nil, e
	}
	return lines, nil
}
