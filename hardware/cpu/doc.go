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

// Package cpu emulates the 2A03 found in the NES. The 2A03 is a 6502 core
// without the decimal arithmetic circuitry. Like all 8-bit processors of the
// era, it executes instructions according to the single byte value read from
// an address pointed to by the program counter. This single byte is the opcode
// and is looked up in the instruction table of the instructions package.
//
// The CPU type requires an implementation of the cpubus.Memory interface as
// the sole argument to NewCPU(). The interface defines the memory operations
// required by the CPU.
//
// The bread-and-butter of the CPU type is the ExecuteInstruction() function.
// Its sole argument is a callback function to be called at every cycle
// boundary of the instruction. Every bus access takes one cycle so the
// callback is called once for every read and write.
//
//	mc := cpu.NewCPU(mem)
//	mc.Reset()
//	mc.LoadPCIndirect(cpubus.Reset)
//
//	for {
//		err := mc.ExecuteInstruction(func() error {
//			// advance the PPU three dots and the APU one cycle
//			return nil
//		})
//	}
//
// The NES emulation uses the callback to run the PPU three times for every
// CPU cycle and the APU once.
//
// Interrupts are presented to the CPU with SetNMI() and SetIRQ(). These
// functions set the level of the interrupt lines. The NMI line is edge
// triggered and the IRQ line is level triggered. Interrupts are serviced at
// the next instruction boundary, in place of an instruction.
//
// The LastResult field can be probed for information about the last
// instruction executed, or about the current instruction being executed if
// accessed from the callback function. See the execution package.
package cpu
