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

// Package registers implements the registers of the 2A03 CPU.
//
// Register is the 8-bit general purpose register type, used for the A, X and Y
// registers. Its arithmetic and logical functions return carry and overflow
// information but do not touch the status register. Setting flags is the job
// of the CPU:
//
//	a.Load(10)
//	carry, overflow := a.Subtract(11, true)
//	sr.Carry = carry
//	sr.Overflow = overflow
//	sr.Zero = a.IsZero()
//
// StackPointer is an 8-bit register whose address is always in page one of
// memory. ProgramCounter is the 16-bit program counter and StatusRegister
// holds the CPU flags.
//
// The 2A03 has no decimal mode arithmetic. The decimal flag can be set and
// cleared but has no effect on the Add() and Subtract() functions.
package registers
