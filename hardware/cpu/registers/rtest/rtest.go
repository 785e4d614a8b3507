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

// Package rtest contains test helpers for the registers package. It is
// imported by the tests of the CPU as well as the tests of the registers
// package.
package rtest

import (
	"testing"

	"github.com/jetsetilly/gophernes/hardware/cpu/registers"
)

// ExpectRegister compares the value of a register with the expected value.
// Registers of type Register, StackPointer and ProgramCounter are compared
// with an int. The StatusRegister is compared either with an int or with a
// flag string in the format returned by StatusRegister.String().
func ExpectRegister(t *testing.T, register any, expected any) bool {
	t.Helper()

	switch r := register.(type) {
	case registers.Register:
		return expectInt(t, r.Label(), int(r.Value()), expected)
	case registers.StackPointer:
		return expectInt(t, r.Label(), int(r.Value()), expected)
	case registers.ProgramCounter:
		return expectInt(t, r.Label(), int(r.Address()), expected)
	case registers.StatusRegister:
		if s, ok := expected.(string); ok {
			if r.String() != s {
				t.Errorf("status register is %s but wanted %s", r.String(), s)
				return false
			}
			return true
		}
		return expectInt(t, r.Label(), int(r.Value()), expected)
	}

	t.Fatalf("unsupported register type (%T)", register)
	return false
}

func expectInt(t *testing.T, label string, v int, expected any) bool {
	t.Helper()

	x, ok := expected.(int)
	if !ok {
		t.Fatalf("expected value for %s register must be an int (not %T)", label, expected)
		return false
	}

	if v != x {
		t.Errorf("%s register is %#02x but wanted %#02x", label, v, x)
		return false
	}

	return true
}
