// This file is part of GopherNES.
//
// GopherNES is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherNES is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherNES.  If not, see <https://www.gnu.org/licenses/>.

// Package test bundles functions that remove common boilerplate from tests
// written for the standard go test harness.
//
// The Expect functions report a failure with t.Errorf() and return false,
// allowing the test to continue. The Demand functions call t.Fatalf() and end
// the test immediately. Demand functions are useful when later checks depend
// on a value being correct, for example the length of two slices before
// iterating over them in unison.
//
// ExpectSuccess() and ExpectFailure() interpret the "success" of a value
// according to its type:
//
//	bool  -> true is success
//	error -> nil is success
//	nil   -> success
//
// The nil case is not obvious but it is required because of how errors are
// returned in Go. A nil error is a nil value and not a value of a nil type.
//
// CappedWriter, RingWriter and CompareWriter implement io.Writer and are used
// to capture output for later comparison.
package test
