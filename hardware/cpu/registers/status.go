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

package registers

import (
	"strings"
)

// Bits of the status register when pushed to the stack. The break bit does not
// exist in the register itself. It is set in the pushed value by the PHP and
// BRK instructions and is clear when the value is pushed by an interrupt.
const (
	BreakBit  = uint8(0x10)
	UnusedBit = uint8(0x20)
)

// StatusRegister is the special purpose register that stores the flags of
// the CPU.
type StatusRegister struct {
	Sign             bool
	Overflow         bool
	DecimalMode      bool
	InterruptDisable bool
	Zero             bool
	Carry            bool
}

// Label returns the canonical name for the status register.
func (sr StatusRegister) Label() string {
	return "SR"
}

// String returns the flags as a string. An upper case letter indicates that
// the flag is set. For example:
//
//	sV-dIZc
func (sr StatusRegister) String() string {
	var s strings.Builder
	flag := func(set bool, c rune) {
		if set {
			s.WriteRune(c - 'a' + 'A')
		} else {
			s.WriteRune(c)
		}
	}
	flag(sr.Sign, 's')
	flag(sr.Overflow, 'v')
	s.WriteRune('-')
	flag(sr.DecimalMode, 'd')
	flag(sr.InterruptDisable, 'i')
	flag(sr.Zero, 'z')
	flag(sr.Carry, 'c')
	return s.String()
}

// Reset status flags to the power-on state. Only the interrupt disable flag is
// set.
func (sr *StatusRegister) Reset() {
	*sr = StatusRegister{InterruptDisable: true}
}

// Value converts the StatusRegister into the value that would be pushed onto
// the stack by an interrupt. The unused bit is always set and the break bit is
// always clear.
func (sr StatusRegister) Value() uint8 {
	v := UnusedBit
	if sr.Sign {
		v |= 0x80
	}
	if sr.Overflow {
		v |= 0x40
	}
	if sr.DecimalMode {
		v |= 0x08
	}
	if sr.InterruptDisable {
		v |= 0x04
	}
	if sr.Zero {
		v |= 0x02
	}
	if sr.Carry {
		v |= 0x01
	}
	return v
}

// FromValue sets the flags from an 8-bit value, for example one pulled from
// the stack. The break and unused bits are ignored.
func (sr *StatusRegister) FromValue(v uint8) {
	sr.Sign = v&0x80 == 0x80
	sr.Overflow = v&0x40 == 0x40
	sr.DecimalMode = v&0x08 == 0x08
	sr.InterruptDisable = v&0x04 == 0x04
	sr.Zero = v&0x02 == 0x02
	sr.Carry = v&0x01 == 0x01
}
