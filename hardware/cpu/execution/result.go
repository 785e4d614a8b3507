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

package execution

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gophernes/hardware/cpu/instructions"
)

// Interrupt identifies the interrupt serviced instead of an instruction.
type Interrupt int

// List of valid Interrupt values.
const (
	NoInterrupt Interrupt = iota
	NMI
	IRQ
)

func (i Interrupt) String() string {
	switch i {
	case NMI:
		return "NMI"
	case IRQ:
		return "IRQ"
	}
	return ""
}

// Result records the state/result of the most recent CPU instruction.
type Result struct {
	// the address at which the instruction began
	Address uint16

	// a reference to the instruction definition. nil if the CPU has just
	// been reset or if the result is for an interrupt service
	Defn *instructions.Definition

	// the number of bytes read during instruction decode
	ByteCount int

	// instruction data is the actual instruction data. so, for example, in
	// the case of ROR the value is the address of the memory location to
	// rotate and not the value stored at that address
	InstructionData uint16

	// the effective address of the instruction after indexing
	EffectiveAddress uint16

	// the number of cycles taken by the instruction, including bus stalls.
	// the cycle callback given to ExecuteInstruction() is called this many
	// times
	Cycles int

	// whether an extra cycle was required because of a page crossing
	PageFault bool

	// whether the branch instruction succeeded
	BranchSuccess bool

	// the interrupt serviced in place of an instruction
	Interrupt Interrupt

	// whether the instruction triggered a known hardware bug
	CPUBug Bug

	// error string. will be a memory access error
	Error string

	// whether this data has been finalised. some of the fields in this
	// struct will be undefined if Final is false
	Final bool
}

// Reset nullifies all members of the Result instance.
func (r *Result) Reset() {
	*r = Result{}
}

// String returns a disassembly of the instruction in a format similar to
// the one used by the nestest log.
func (r Result) String() string {
	if r.Interrupt != NoInterrupt {
		return fmt.Sprintf("%04X  %-9s %-31s", r.Address, "", r.Interrupt)
	}

	if r.Defn == nil {
		return fmt.Sprintf("%04X  (no instruction)", r.Address)
	}

	var b strings.Builder

	b.WriteString(fmt.Sprintf("%02X", r.Defn.OpCode))
	switch r.ByteCount {
	case 2:
		b.WriteString(fmt.Sprintf(" %02X", r.InstructionData&0xff))
	case 3:
		b.WriteString(fmt.Sprintf(" %02X %02X", r.InstructionData&0xff, r.InstructionData>>8))
	}
	bytes := b.String()

	return fmt.Sprintf("%04X  %-9s%4s %-27s", r.Address, bytes, r.Defn.Mnemonic(), r.operand())
}

func (r Result) operand() string {
	switch r.Defn.AddressingMode {
	case instructions.Accumulator:
		return "A"
	case instructions.Immediate:
		return fmt.Sprintf("#$%02X", r.InstructionData)
	case instructions.Relative:
		target := r.Address + 2 + uint16(int8(r.InstructionData))
		return fmt.Sprintf("$%04X", target)
	case instructions.Absolute:
		return fmt.Sprintf("$%04X", r.InstructionData)
	case instructions.ZeroPage:
		return fmt.Sprintf("$%02X", r.InstructionData)
	case instructions.Indirect:
		return fmt.Sprintf("($%04X)", r.InstructionData)
	case instructions.IndexedIndirect:
		return fmt.Sprintf("($%02X,X)", r.InstructionData)
	case instructions.IndirectIndexed:
		return fmt.Sprintf("($%02X),Y", r.InstructionData)
	case instructions.AbsoluteIndexedX:
		return fmt.Sprintf("$%04X,X", r.InstructionData)
	case instructions.AbsoluteIndexedY:
		return fmt.Sprintf("$%04X,Y", r.InstructionData)
	case instructions.ZeroPageIndexedX:
		return fmt.Sprintf("$%02X,X", r.InstructionData)
	case instructions.ZeroPageIndexedY:
		return fmt.Sprintf("$%02X,Y", r.InstructionData)
	}
	return ""
}
