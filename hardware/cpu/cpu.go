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

package cpu

import (
	"errors"
	"fmt"

	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/hardware/cpu/execution"
	"github.com/jetsetilly/gophernes/hardware/cpu/instructions"
	"github.com/jetsetilly/gophernes/hardware/cpu/registers"
	"github.com/jetsetilly/gophernes/hardware/memory/cpubus"
	"github.com/jetsetilly/gophernes/logger"
)

// CPU implements the 2A03 found in the NES. Register logic is implemented by
// the types in the registers sub-package.
type CPU struct {
	PC     registers.ProgramCounter
	A      registers.Register
	X      registers.Register
	Y      registers.Register
	SP     registers.StackPointer
	Status registers.StatusRegister

	mem cpubus.Memory

	// cycleCallback is called for additional emulator functionality
	cycleCallback func() error

	// last result. the address field is guaranteed to be always valid except
	// when the CPU has just been reset. we use this fact to help us decide
	// whether the CPU has just been reset (see HasReset() function)
	LastResult execution.Result

	// Whether the last memory access by the CPU was a phantom access
	PhantomMemAccess bool

	// the level of the NMI line at the last call to SetNMI() and whether a
	// rising edge has been seen that hasn't been serviced yet
	nmiLevel   bool
	nmiPending bool

	// the level of the IRQ line
	irqLevel bool

	// jam opcodes are logged once per reset
	jamLogged bool
}

// NewCPU is the preferred method of initialisation for the CPU structure.
// The registers are in the power-on state. Use LoadPCIndirect(cpubus.Reset)
// before executing any instructions.
func NewCPU(mem cpubus.Memory) *CPU {
	mc := &CPU{
		mem:    mem,
		PC:     registers.NewProgramCounter(0),
		A:      registers.NewRegister(0, "A"),
		X:      registers.NewRegister(0, "X"),
		Y:      registers.NewRegister(0, "Y"),
		SP:     registers.NewStackPointer(0),
		Status: registers.StatusRegister{},
	}
	mc.Reset()
	return mc
}

// Snapshot creates a copy of the CPU in its current state. The copy is not
// connected to any memory and cannot be stepped.
func (mc *CPU) Snapshot() *CPU {
	n := *mc
	n.mem = nil
	n.cycleCallback = nil
	return &n
}

// Plumb a new memory implementation into the CPU.
func (mc *CPU) Plumb(mem cpubus.Memory) {
	mc.mem = mem
}

func (mc *CPU) String() string {
	return fmt.Sprintf("A:%02X X:%02X Y:%02X P:%02X SP:%02X",
		mc.A.Value(), mc.X.Value(), mc.Y.Value(), mc.Status.Value(), mc.SP.Value())
}

// Reset reinitialises all registers. Does not load PC with the RESET vector.
// Use cpu.LoadPCIndirect(cpubus.Reset) when appropriate.
func (mc *CPU) Reset() {
	mc.LastResult.Reset()
	mc.PC.Load(0)
	mc.A.Load(0)
	mc.X.Load(0)
	mc.Y.Load(0)
	mc.SP.Load(0xfd)
	mc.Status.Reset()
	mc.nmiLevel = false
	mc.nmiPending = false
	mc.irqLevel = false
	mc.jamLogged = false
	mc.cycleCallback = nil
}

// HasReset checks whether the CPU has recently been reset.
func (mc *CPU) HasReset() bool {
	return !mc.LastResult.Final && mc.LastResult.Defn == nil && mc.LastResult.Address == 0
}

// LoadPCIndirect loads the contents of indirectAddress into the PC.
func (mc *CPU) LoadPCIndirect(indirectAddress uint16) error {
	lo, err := mc.mem.Read(indirectAddress)
	if err != nil {
		if !errors.Is(err, cpubus.AddressError) {
			return err
		}
		mc.LastResult.Error = err.Error()
	}

	hi, err := mc.mem.Read(indirectAddress + 1)
	if err != nil {
		if !errors.Is(err, cpubus.AddressError) {
			return err
		}
		mc.LastResult.Error = err.Error()
	}

	mc.PC.Load((uint16(hi) << 8) | uint16(lo))

	return nil
}

// LoadPC loads the contents of directAddress into the PC.
func (mc *CPU) LoadPC(directAddress uint16) {
	mc.PC.Load(directAddress)
}

// SetNMI sets the level of the NMI line. The NMI is edge triggered so the
// interrupt is serviced once for every transition from low to high.
func (mc *CPU) SetNMI(level bool) {
	if level && !mc.nmiLevel {
		mc.nmiPending = true
	}
	mc.nmiLevel = level
}

// SetIRQ sets the level of the IRQ line. The IRQ is level triggered and is
// serviced at every instruction boundary for as long as the line is high and
// the interrupt disable flag is clear.
func (mc *CPU) SetIRQ(level bool) {
	mc.irqLevel = level
}

// cycle ends the current cycle.
func (mc *CPU) cycle() error {
	mc.LastResult.Cycles++
	return mc.cycleCallback()
}

// read8Bit returns 8bit value from the specified address
//
// side-effects:
//   - calls cycleCallback after memory read
func (mc *CPU) read8Bit(address uint16, phantom bool) (uint8, error) {
	mc.PhantomMemAccess = phantom

	val, err := mc.mem.Read(address)
	if err != nil {
		if !errors.Is(err, cpubus.AddressError) {
			return 0, err
		}
		mc.LastResult.Error = err.Error()
	}

	// +1 cycle
	err = mc.cycle()
	if err != nil {
		return 0, err
	}

	return val, nil
}

// write8Bit writes 8 bits to the specified address
//
// side-effects:
//   - calls cycleCallback after memory write
func (mc *CPU) write8Bit(address uint16, value uint8, phantom bool) error {
	mc.PhantomMemAccess = phantom

	err := mc.mem.Write(address, value)
	if err != nil {
		if !errors.Is(err, cpubus.AddressError) {
			return err
		}
		mc.LastResult.Error = err.Error()
	}

	// +1 cycle
	return mc.cycle()
}

// read16Bit returns 16bit value from the specified address. the high byte is
// read from the address following the low byte in the same page when
// pageWrap is true.
//
// side-effects:
//   - calls cycleCallback after each 8bit read
func (mc *CPU) read16Bit(address uint16, pageWrap bool) (uint16, error) {
	lo, err := mc.read8Bit(address, false)
	if err != nil {
		return 0, err
	}

	next := address + 1
	if pageWrap {
		next = (address & 0xff00) | (next & 0x00ff)
	}

	hi, err := mc.read8Bit(next, false)
	if err != nil {
		return 0, err
	}

	return (uint16(hi) << 8) | uint16(lo), nil
}

// push a value onto the stack
//
// side-effects:
//   - calls cycleCallback after memory write
func (mc *CPU) push(value uint8) error {
	return mc.write8Bit(mc.SP.Push(), value, false)
}

// pop a value from the stack
//
// side-effects:
//   - calls cycleCallback after memory read
func (mc *CPU) pop() (uint8, error) {
	return mc.read8Bit(mc.SP.Pop(), false)
}

// read 8bits from the PC location has a variety of additional side-effects
// depending on context.
type read8BitPCeffect int

const (
	brk read8BitPCeffect = iota
	newOpcode
	loNibble
	hiNibble
)

// read8BitPC reads 8 bits from the memory location pointed to by PC
//
// side-effects:
//   - updates program counter
//   - calls cycleCallback at end of function
//   - updates LastResult.ByteCount
//   - additional side effect updates LastResult as appropriate
func (mc *CPU) read8BitPC(effect read8BitPCeffect) error {
	mc.PhantomMemAccess = false

	v, err := mc.mem.Read(mc.PC.Address())
	if err != nil {
		if !errors.Is(err, cpubus.AddressError) {
			return err
		}
		mc.LastResult.Error = err.Error()
	}

	mc.PC.Add(1)
	mc.LastResult.ByteCount++

	switch effect {
	case brk:
		// the padding byte following BRK is counted as part of the
		// instruction. the instruction table records BRK as a two byte
		// instruction

	case newOpcode:
		mc.LastResult.Defn = &instructions.Definitions[v]

	case loNibble:
		mc.LastResult.InstructionData = uint16(v)

	case hiNibble:
		mc.LastResult.InstructionData = (uint16(v) << 8) | mc.LastResult.InstructionData
	}

	// +1 cycle
	return mc.cycle()
}

// read16BitPC reads 16 bits from the memory location pointed to by PC
//
// side-effects:
//   - updates program counter
//   - calls cycleCallback after each 8 bit read
//   - updates LastResult.ByteCount
//   - updates InstructionData field, once before each call to cycleCallback
func (mc *CPU) read16BitPC() error {
	err := mc.read8BitPC(loNibble)
	if err != nil {
		return err
	}
	return mc.read8BitPC(hiNibble)
}

func (mc *CPU) branch(flag bool, offset uint16) error {
	// sign extend the 8bit offset to 16bits
	if offset&0x0080 == 0x0080 {
		offset |= 0xff00
	}

	mc.LastResult.BranchSuccess = flag
	if !flag {
		return nil
	}

	// phantom read
	// +1 cycle
	_, err := mc.read8Bit(mc.PC.Address(), true)
	if err != nil {
		return err
	}

	oldPC := mc.PC.Address()
	mc.PC.Add(offset)

	// the high byte of the PC is fixed in a separate cycle if the branch
	// crosses a page
	if oldPC&0xff00 != mc.PC.Address()&0xff00 {
		// phantom read from the address with the unfixed high byte
		// +1 cycle
		_, err := mc.read8Bit((oldPC&0xff00)|(mc.PC.Address()&0x00ff), true)
		if err != nil {
			return err
		}
		mc.LastResult.PageFault = true
	}

	return nil
}

// interrupt services an NMI or IRQ in place of an instruction.
func (mc *CPU) interrupt(interrupt execution.Interrupt, vector uint16) error {
	mc.LastResult.Interrupt = interrupt

	// two phantom reads of the next opcode. the PC is not advanced
	// +2 cycles
	for range 2 {
		_, err := mc.read8Bit(mc.PC.Address(), true)
		if err != nil {
			return err
		}
	}

	err := mc.pushPCAndStatus(false)
	if err != nil {
		return err
	}

	mc.Status.InterruptDisable = true

	// +2 cycles
	address, err := mc.read16Bit(vector, false)
	if err != nil {
		return err
	}
	mc.PC.Load(address)

	mc.LastResult.Final = true

	return nil
}

// pushPCAndStatus is used by interrupts and by the BRK instruction. the
// status register is pushed with the break bit set or clear as appropriate.
//
// side-effects:
//   - calls cycleCallback three times
func (mc *CPU) pushPCAndStatus(breakBit bool) error {
	// +1 cycle
	err := mc.push(uint8(mc.PC.Address() >> 8))
	if err != nil {
		return err
	}

	// +1 cycle
	err = mc.push(uint8(mc.PC.Address()))
	if err != nil {
		return err
	}

	status := mc.Status.Value()
	if breakBit {
		status |= registers.BreakBit
	}

	// +1 cycle
	return mc.push(status)
}

// NilCycleCallback can be provided as an argument to ExecuteInstruction().
// It's a convenient do-nothing function.
func NilCycleCallback() error {
	return nil
}

// sentinal errors returned by ExecuteInstruction.
const (
	MidInstruction = "cpu: starting a new instruction is invalid mid-instruction"
)

// ExecuteInstruction steps CPU forward one instruction. The basic process when
// executing an instruction is this:
//
//  1. service a pending interrupt, in which case no instruction is executed
//  2. read opcode and look up instruction definition
//  3. read operands (if any) according to the addressing mode of the instruction
//  4. using the operator as a guide, perform the instruction on the data
//
// All instructions take at least 2 cycles. After each cycle, the
// cycleCallback() function is run, thereby allowing the rest of the NES
// hardware to operate.
//
// The cycleCallback argument should *never* be nil. Use the NilCycleCallback()
// function in this package if you want a nil effect.
func (mc *CPU) ExecuteInstruction(cycleCallback func() error) error {
	// a previous call to ExecuteInstruction() has not yet completed. it is
	// impossible to begin a new instruction
	if !mc.LastResult.Final && !mc.HasReset() {
		return curated.Errorf(MidInstruction)
	}

	// update cycle callback
	mc.cycleCallback = cycleCallback

	// prepare new round of results
	mc.LastResult.Reset()
	mc.LastResult.Address = mc.PC.Address()

	// interrupt lines are polled at the instruction boundary. NMI takes
	// priority over IRQ
	if mc.nmiPending {
		mc.nmiPending = false
		return mc.interrupt(execution.NMI, cpubus.NMI)
	}
	if mc.irqLevel && !mc.Status.InterruptDisable {
		return mc.interrupt(execution.IRQ, cpubus.IRQ)
	}

	var err error

	// read next instruction
	// +1 cycle
	err = mc.read8BitPC(newOpcode)
	if err != nil {
		mc.LastResult.Final = true
		return err
	}

	defn := mc.LastResult.Defn

	// address is the actual address to use to access memory (after any
	// indexing has taken place)
	var address uint16

	// base is the address before indexing. some undocumented instructions
	// use the high byte of the base address
	var base uint16

	// value is read from the program for immediate/relative mode, and from
	// non-program memory for all other modes. note that for instructions
	// which are read-modify-write, the value will change during execution
	// and be used to write back to memory
	var value uint8

	// whether the effective address crossed a page during indexing
	var crossed bool

	switch defn.AddressingMode {
	case instructions.Implied, instructions.Accumulator:
		if defn.Operator == instructions.Brk {
			// BRK increases the PC by two bytes despite being an implied
			// addressing instruction
			// +1 cycle
			err = mc.read8BitPC(brk)
		} else {
			// the byte following the opcode is read but the PC is not
			// incremented
			// +1 cycle
			_, err = mc.read8Bit(mc.PC.Address(), true)
		}
		if err != nil {
			return err
		}

	case instructions.Immediate:
		// +1 cycle
		err = mc.read8BitPC(loNibble)
		if err != nil {
			return err
		}
		value = uint8(mc.LastResult.InstructionData)

	case instructions.Relative:
		// the offset from the current PC position. most of the addressing
		// cycles for this addressing mode are consumed in the branch()
		// function
		// +1 cycle
		err = mc.read8BitPC(loNibble)
		if err != nil {
			return err
		}
		address = mc.LastResult.InstructionData

	case instructions.Absolute:
		if defn.Effect != instructions.Subroutine {
			// +2 cycles
			err = mc.read16BitPC()
			if err != nil {
				return err
			}
			address = mc.LastResult.InstructionData
		}

		// else... for JSR, addresses are read slightly differently so we defer
		// this part of the operation to the operator switch below

	case instructions.ZeroPage:
		// +1 cycle
		err = mc.read8BitPC(loNibble)
		if err != nil {
			return err
		}
		address = mc.LastResult.InstructionData

	case instructions.ZeroPageIndexedX, instructions.ZeroPageIndexedY:
		// +1 cycle
		err = mc.read8BitPC(loNibble)
		if err != nil {
			return err
		}
		base = mc.LastResult.InstructionData

		// phantom read from base address before index adjustment
		// +1 cycle
		_, err = mc.read8Bit(base, true)
		if err != nil {
			return err
		}

		index := mc.X.Value()
		if defn.AddressingMode == instructions.ZeroPageIndexedY {
			index = mc.Y.Value()
		}

		// the effective address never leaves the zero page
		address = uint16(uint8(base) + index)
		if base+uint16(index) > 0xff {
			mc.LastResult.CPUBug = execution.ZeroPageIndexWrap
		}

	case instructions.Indirect:
		// indirect addressing (without indexing) is only used for the JMP
		// command

		// +2 cycles
		err = mc.read16BitPC()
		if err != nil {
			return err
		}
		base = mc.LastResult.InstructionData

		// the high byte of the JMP address is read from the same page as the
		// low byte
		if base&0x00ff == 0x00ff {
			mc.LastResult.CPUBug = execution.JmpIndirectPageBug
		}

		// +2 cycles
		address, err = mc.read16Bit(base, true)
		if err != nil {
			return err
		}

	case instructions.IndexedIndirect: // x indexing
		// +1 cycle
		err = mc.read8BitPC(loNibble)
		if err != nil {
			return err
		}
		base = mc.LastResult.InstructionData

		// phantom read before adjusting the index
		// +1 cycle
		_, err = mc.read8Bit(base, true)
		if err != nil {
			return err
		}

		pointer := uint16(uint8(base) + mc.X.Value())
		if pointer == 0x00ff {
			mc.LastResult.CPUBug = execution.ZeroPagePointerWrap
		}

		// +2 cycles
		address, err = mc.read16Bit(pointer, true)
		if err != nil {
			return err
		}

	case instructions.IndirectIndexed: // y indexing
		// +1 cycle
		err = mc.read8BitPC(loNibble)
		if err != nil {
			return err
		}
		pointer := mc.LastResult.InstructionData
		if pointer == 0x00ff {
			mc.LastResult.CPUBug = execution.ZeroPagePointerWrap
		}

		// +2 cycles
		base, err = mc.read16Bit(pointer, true)
		if err != nil {
			return err
		}

		address = base + mc.Y.Address()
		crossed, err = mc.indexedPhantomRead(defn, base, address)
		if err != nil {
			return err
		}

	case instructions.AbsoluteIndexedX, instructions.AbsoluteIndexedY:
		// +2 cycles
		err = mc.read16BitPC()
		if err != nil {
			return err
		}
		base = mc.LastResult.InstructionData

		if defn.AddressingMode == instructions.AbsoluteIndexedX {
			address = base + mc.X.Address()
		} else {
			address = base + mc.Y.Address()
		}

		crossed, err = mc.indexedPhantomRead(defn, base, address)
		if err != nil {
			return err
		}

	default:
		return curated.Errorf("cpu: unknown addressing mode for %s", defn.Operator)
	}

	mc.LastResult.EffectiveAddress = address
	mc.LastResult.PageFault = crossed && defn.PageSensitive

	// read value from memory using address found in AddressingMode switch
	// above only when the instruction is a Read or RMW instruction that
	// addresses memory
	switch defn.AddressingMode {
	case instructions.Implied, instructions.Accumulator, instructions.Immediate, instructions.Relative:
	default:
		switch defn.Effect {
		case instructions.Read:
			// +1 cycle
			value, err = mc.read8Bit(address, false)
			if err != nil {
				return err
			}

		case instructions.RMW:
			// +1 cycle
			value, err = mc.read8Bit(address, false)
			if err != nil {
				return err
			}

			// the unmodified value is written back while the operation is
			// performed
			// +1 cycle
			err = mc.write8Bit(address, value, true)
			if err != nil {
				return err
			}
		}
	}

	if defn.AddressingMode == instructions.Accumulator {
		value = mc.A.Value()
	}

	err = mc.operate(defn, address, base, value)
	if err != nil {
		return err
	}

	mc.LastResult.Final = true

	return nil
}

// indexedPhantomRead performs the phantom read that occurs for indexed
// addressing when the index crosses a page. write and RMW instructions always
// perform the phantom read. returns true if the page was crossed.
func (mc *CPU) indexedPhantomRead(defn *instructions.Definition, base uint16, address uint16) (bool, error) {
	crossed := base&0xff00 != address&0xff00

	if (crossed && defn.PageSensitive) || defn.Effect == instructions.Write || defn.Effect == instructions.RMW {
		// phantom read from the address with the unfixed high byte
		// +1 cycle
		_, err := mc.read8Bit((base&0xff00)|(address&0x00ff), true)
		if err != nil {
			return crossed, err
		}
	}

	return crossed, nil
}

// PredictRTS returns the PC address that would result if RTS was run at the
// current moment.
func (mc *CPU) PredictRTS() (uint16, bool) {
	predict, ok := mc.mem.(predictRTS)
	if !ok {
		return 0, false
	}

	sp := mc.SP
	lo, err := predict.Peek(sp.Pop())
	if err != nil {
		return 0, false
	}

	hi, err := predict.Peek(sp.Pop())
	if err != nil {
		return 0, false
	}

	return ((uint16(hi) << 8) | uint16(lo)) + 1, true
}

// memory implementations that support side-effect free reads.
type predictRTS interface {
	Peek(address uint16) (uint8, error)
}

// logJam notes that a jam instruction has been encountered.
func (mc *CPU) logJam(defn *instructions.Definition) {
	if mc.jamLogged {
		return
	}
	mc.jamLogged = true
	logger.Logf(logger.Allow, "cpu", "jam instruction (%#02x) at %#04x executed as NOP", defn.OpCode, mc.LastResult.Address)
}
