/*
 * errors.go, part of biosym.
 *
 * Copyright 2026 Raul Mera <rmera{at}usachDOTcl>
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
 * biosym is developed at the Universidad de Santiago de Chile (USACH).
 *
 */

package biosym

import "fmt"

// Error is the interface all errors produced by this library implement. The
// Decorate method adds information (normally, the name of a function in the
// calling stack) to the error without changing its type or wrapping it. If
// passed an empty string it only returns the current decoration slice.
type Error interface {
	error
	Decorate(string) []string
}

// ParseError reports a malformed car or mdf file: a numeric field that does
// not parse, an atom record with too few fields, a truncated molecule block,
// or an unresolvable bond reference. It carries the file name and the
// offending line so the caller can print a useful one-line diagnostic.
type ParseError struct {
	File    string
	Line    int //1-based, 0 if unknown
	Text    string
	message string
	deco    []string
}

// Parsef builds a *ParseError for line number line of file (with text being
// the offending line, possibly empty) and a Sprintf-style message.
func Parsef(file string, line int, text, format string, a ...interface{}) *ParseError {
	return &ParseError{File: file, Line: line, Text: text, message: fmt.Sprintf(format, a...)}
}

func (err *ParseError) Error() string {
	s := fmt.Sprintf("biosym: parse error in %s, line %d: %s", err.File, err.Line, err.message)
	if err.Text != "" {
		s = fmt.Sprintf("%s (%q)", s, err.Text)
	}
	return s
}

// Decorate adds dec to the decoration slice of the error and returns the
// resulting slice.
func (err *ParseError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// ConsistencyError reports a violation of the car/mdf correspondence
// invariant: an AtomKey present on one side of a System/DataTable pair but
// not on the other, or the same key appearing twice on either side.
type ConsistencyError struct {
	Key     AtomKey
	message string
	deco    []string
}

// Consistencyf builds a *ConsistencyError for the offending key and a
// Sprintf-style message.
func Consistencyf(key AtomKey, format string, a ...interface{}) *ConsistencyError {
	return &ConsistencyError{Key: key, message: fmt.Sprintf(format, a...)}
}

func (err *ConsistencyError) Error() string {
	return fmt.Sprintf("biosym: inconsistent system/data pair at key %s: %s", err.Key.String(), err.message)
}

// Decorate adds dec to the decoration slice of the error and returns the
// resulting slice.
func (err *ConsistencyError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// CError is the general error type of the library, used mostly for invalid
// arguments (bad grid dimensions, nil inputs, malformed mapping documents).
type CError struct {
	msg  string
	deco []string
}

// CErrorf builds a *CError with a Sprintf-style message.
func CErrorf(format string, a ...interface{}) *CError {
	return &CError{msg: fmt.Sprintf(format, a...)}
}

func (err *CError) Error() string { return "biosym: " + err.msg }

// Decorate adds dec to the decoration slice of the error and returns the
// resulting slice.
func (err *CError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// errDecorate decorates err with the caller's name if err implements Error,
// and returns err unchanged otherwise (e.g. for errors straight from the os
// package, which are passed up untouched).
func errDecorate(err error, caller string) error {
	if err == nil {
		return nil
	}
	if err2, ok := err.(Error); ok {
		err2.Decorate(caller)
		return err2
	}
	return err
}
