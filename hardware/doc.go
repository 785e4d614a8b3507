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

// Package hardware is the base package for the NES emulation. It and its
// sub-packages contain everything required for a headless emulation.
//
// The NES type is the root of the emulation and contains external references
// to all the NES sub-systems. From here, the emulation can either be started
// to run continuously (with optional callback to check for continuation); or
// it can be stepped instruction by instruction.
//
// The CPU drives the emulation. After every CPU cycle the rest of the
// hardware is advanced: the PPU by three dots and the APU by one cycle. The
// interrupt lines of the PPU, APU and cartridge are then sampled by the CPU,
// ready for the next instruction boundary.
//
// OAM DMA requested by a write to $4014 is serviced immediately after the
// instruction that made the request. The CPU is stalled for 513 cycles, or
// 514 if the DMA started on an odd CPU cycle, and the stall is counted against
// the instruction.
package hardware
