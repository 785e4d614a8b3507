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

// Package instructions defines the instruction set of the 2A03 CPU. Each of
// the 256 opcodes has a Definition in the Definitions table, including the
// undocumented opcodes.
//
// A Definition describes how an instruction is decoded (the addressing mode
// and number of bytes), its base cycle count and its effect category. The
// effect category decides how the CPU accesses memory for the instruction.
package instructions
