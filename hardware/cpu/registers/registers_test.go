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

package registers_test

import (
	"testing"

	"github.com/jetsetilly/gophernes/hardware/cpu/registers"
	"github.com/jetsetilly/gophernes/hardware/cpu/registers/rtest"
	"github.com/jetsetilly/gophernes/test"
)

func TestRegister(t *testing.T) {
	var carry, overflow bool

	r8 := registers.NewRegister(0, "test")
	test.ExpectSuccess(t, r8.IsZero())
	rtest.ExpectRegister(t, r8, 0)

	// loading & addition
	r8.Load(127)
	rtest.ExpectRegister(t, r8, 127)
	_, overflow = r8.Add(2, false)
	rtest.ExpectRegister(t, r8, 129)
	test.ExpectSuccess(t, overflow)

	// addition boundary
	r8.Load(255)
	test.ExpectSuccess(t, r8.IsNegative())
	carry, overflow = r8.Add(1, false)
	test.ExpectSuccess(t, carry)
	test.ExpectFailure(t, overflow)
	test.ExpectSuccess(t, r8.IsZero())

	// addition boundary with carry
	r8.Load(255)
	carry, overflow = r8.Add(1, true)
	test.ExpectSuccess(t, carry)
	test.ExpectFailure(t, overflow)
	rtest.ExpectRegister(t, r8, 1)

	// adding 0xff and carry to 0xff
	r8.Load(255)
	carry, _ = r8.Add(255, true)
	test.ExpectSuccess(t, carry)
	rtest.ExpectRegister(t, r8, 255)

	// subtraction
	r8.Load(11)
	carry, _ = r8.Subtract(1, true)
	rtest.ExpectRegister(t, r8, 10)
	test.ExpectSuccess(t, carry)

	r8.Load(12)
	r8.Subtract(1, false)
	rtest.ExpectRegister(t, r8, 10)

	r8.Load(0x01)
	carry, _ = r8.Subtract(0x06, true)
	rtest.ExpectRegister(t, r8, 0xfb)
	test.ExpectFailure(t, carry)

	// logical operators
	r8.Load(0x21)
	r8.AND(0x01)
	rtest.ExpectRegister(t, r8, 0x01)
	r8.EOR(0xff)
	rtest.ExpectRegister(t, r8, 0xfe)
	r8.ORA(0x01)
	rtest.ExpectRegister(t, r8, 0xff)

	// shifts
	carry = r8.ASL()
	rtest.ExpectRegister(t, r8, 0xfe)
	test.ExpectSuccess(t, carry)
	carry = r8.LSR()
	rtest.ExpectRegister(t, r8, 0x7f)
	test.ExpectFailure(t, carry)
	carry = r8.LSR()
	test.ExpectSuccess(t, carry)

	// rotation
	r8.Load(0xff)
	carry = r8.ROL(false)
	rtest.ExpectRegister(t, r8, 0xfe)
	test.ExpectSuccess(t, carry)
	carry = r8.ROR(true)
	rtest.ExpectRegister(t, r8, 0xff)
	test.ExpectFailure(t, carry)
}

// every combination of operands and carry is checked against the signed and
// unsigned definitions of the result
func TestArithmeticExhaustive(t *testing.T) {
	for a := 0; a <= 0xff; a++ {
		for b := 0; b <= 0xff; b++ {
			for _, c := range []bool{false, true} {
				ci := 0
				if c {
					ci = 1
				}

				r := registers.NewRegister(uint8(a), "A")
				carry, overflow := r.Add(uint8(b), c)

				signed := int(int8(a)) + int(int8(b)) + ci
				if overflow != (signed < -128 || signed > 127) {
					t.Fatalf("ADC overflow wrong for %02x + %02x + %d", a, b, ci)
				}
				if carry != (a+b+ci > 0xff) {
					t.Fatalf("ADC carry wrong for %02x + %02x + %d", a, b, ci)
				}
				if r.Value() != uint8(a+b+ci) {
					t.Fatalf("ADC result wrong for %02x + %02x + %d", a, b, ci)
				}

				// carry is the inverse of borrow
				r.Load(uint8(a))
				carry, overflow = r.Subtract(uint8(b), c)

				borrow := 1 - ci
				signed = int(int8(a)) - int(int8(b)) - borrow
				if overflow != (signed < -128 || signed > 127) {
					t.Fatalf("SBC overflow wrong for %02x - %02x - %d", a, b, borrow)
				}
				if carry != (a-b-borrow >= 0) {
					t.Fatalf("SBC carry wrong for %02x - %02x - %d", a, b, borrow)
				}
				if r.Value() != uint8(a-b-borrow) {
					t.Fatalf("SBC result wrong for %02x - %02x - %d", a, b, borrow)
				}
			}
		}
	}
}

func TestStackPointer(t *testing.T) {
	sp := registers.NewStackPointer(0x01)
	test.ExpectEquality(t, sp.Push(), 0x0101)
	test.ExpectEquality(t, sp.Push(), 0x0100)
	test.ExpectEquality(t, sp.Push(), 0x01ff)
	rtest.ExpectRegister(t, sp, 0xfe)
	test.ExpectEquality(t, sp.Address(), 0x01fe)

	// popping wraps the other way
	sp = registers.NewStackPointer(0xff)
	test.ExpectEquality(t, sp.Pop(), 0x0100)
	rtest.ExpectRegister(t, sp, 0x00)
}

func TestProgramCounter(t *testing.T) {
	pc := registers.NewProgramCounter(0xfffe)
	pc.Add(3)
	rtest.ExpectRegister(t, pc, 0x0001)
	test.ExpectEquality(t, pc.String(), "0001")
}

func TestStatusRegister(t *testing.T) {
	var sr registers.StatusRegister
	rtest.ExpectRegister(t, sr, "sv-dizc")
	rtest.ExpectRegister(t, sr, 0x20)

	sr.Reset()
	rtest.ExpectRegister(t, sr, "sv-dIzc")
	rtest.ExpectRegister(t, sr, 0x24)

	// break and unused bits are not stored
	sr.FromValue(0xff)
	rtest.ExpectRegister(t, sr, "SV-DIZC")
	rtest.ExpectRegister(t, sr, 0xef)

	sr.FromValue(0x10)
	rtest.ExpectRegister(t, sr, "sv-dizc")
}
