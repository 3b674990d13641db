/*
 * errors.go, part of meci.
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
)

// Error is the interface implemented by the errors returned by this package
// when reading logs, and by jsonmerge.KeyMismatchError. Errors from other
// sources (the hbond package, the file system) don't implement it.
// The Decorate method allows to add and retrieve info from the
// error, without changing it's type or wrapping it around something else.
type Error interface {
	Error() string
	Decorate(string) []string //Adds the caller name (plus, optionally, "FunctionName: extra info") and returns the decoration slice. An empty string just returns the slice.
	Critical() bool
	FileName() string
}

// LogError is the error type returned when reading and parsing MECI logs.
// It fullfills Error.
type LogError struct {
	message  string
	filename string //the log with problems, or empty string if none.
	line     int    //1-based line number, 0 if the error is not tied to a line.
	deco     []string
	critical bool
	err      error
}

func (err *LogError) Error() string {
	s := err.message
	if err.line > 0 {
		s = fmt.Sprintf("line %d: %s", err.line, s)
	}
	if err.filename != "" {
		s = fmt.Sprintf("%s: %s", err.filename, s)
	}
	if err.err != nil {
		s = fmt.Sprintf("%s: %v", s, err.err)
	}
	return "meci: " + s
}

// Decorate adds new information to the error
func (err *LogError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// FileName returns the log to which the error is associated
func (err *LogError) FileName() string { return err.filename }

// Line returns the 1-based line of the log where the problem was found, or 0.
func (err *LogError) Line() int { return err.line }

// Critical returns true if the error should stop an extraction run.
func (err *LogError) Critical() bool { return err.critical }

// Message returns the bare error message, one of the constants below.
func (err *LogError) Message() string { return err.message }

func (err *LogError) Unwrap() error { return err.err }

// Error messages
const (
	NotTerminated   = "termination marker not found near the end of the file"
	MarkerNotFound  = "section marker not found"
	OutOfRange      = "section runs past the end of the file"
	LabelNotFound   = "energy label not found"
	MalformedNumber = "malformed number"
	TooFewFields    = "too few fields"
	UnableToOpen    = "unable to open file"
	ReadError       = "error reading file"
	WrongAtomCount  = "wrong number of atoms"
	BadConfig       = "invalid configuration"
)

func newError(message string, line int, critical bool, err error, caller string) *LogError {
	return &LogError{message: message, line: line, critical: critical, err: err, deco: []string{caller}}
}

// errDecorate adds the caller to the decorations of err if err implements Error.
// The same error is returned.
func errDecorate(err error, caller string) error {
	var e Error
	if errors.As(err, &e) {
		e.Decorate(caller)
	}
	return err
}

// Skippable returns true if err implements Error and is not critical,
// i.e. if an extraction run may go on after it.
func Skippable(err error) bool {
	var e Error
	if errors.As(err, &e) {
		return !e.Critical()
	}
	return false
}
