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

package cpu_test

import (
	"testing"

	"github.com/jetsetilly/gophernes/hardware/cpu"
	"github.com/jetsetilly/gophernes/hardware/cpu/execution"
	"github.com/jetsetilly/gophernes/hardware/cpu/instructions"
	"github.com/jetsetilly/gophernes/hardware/cpu/registers/rtest"
	"github.com/jetsetilly/gophernes/hardware/memory/cpubus"
	"github.com/jetsetilly/gophernes/test"
)

// mockMem is a flat 64KiB memory with no mirroring or side effects.
type mockMem struct {
	internal [0x10000]uint8
	writes   int
}

func (mem *mockMem) Read(address uint16) (uint8, error) {
	return mem.internal[address], nil
}

func (mem *mockMem) Write(address uint16, data uint8) error {
	mem.internal[address] = data
	mem.writes++
	return nil
}

func (mem *mockMem) Peek(address uint16) (uint8, error) {
	return mem.internal[address], nil
}

// putInstructions writes bytes to memory at the origin address and points
// the reset vector at the origin.
func (mem *mockMem) putInstructions(origin uint16, bytes ...uint8) {
	for i, b := range bytes {
		mem.internal[origin+uint16(i)] = b
	}
	mem.internal[cpubus.Reset] = uint8(origin)
	mem.internal[cpubus.Reset+1] = uint8(origin >> 8)
}

func (mem *mockMem) putVector(vector uint16, address uint16) {
	mem.internal[vector] = uint8(address)
	mem.internal[vector+1] = uint8(address >> 8)
}

func newTestCPU(t *testing.T, origin uint16, bytes ...uint8) (*cpu.CPU, *mockMem) {
	t.Helper()
	mem := &mockMem{}
	mem.putInstructions(origin, bytes...)
	mc := cpu.NewCPU(mem)
	test.DemandSuccess(t, mc.LoadPCIndirect(cpubus.Reset))
	return mc, mem
}

// step executes one instruction and checks that the number of calls to the
// cycle callback matches the cycle count in the result.
func step(t *testing.T, mc *cpu.CPU) int {
	t.Helper()
	var callbacks int
	err := mc.ExecuteInstruction(func() error {
		callbacks++
		return nil
	})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, callbacks, mc.LastResult.Cycles)
	test.ExpectSuccess(t, mc.LastResult.IsValid())
	return callbacks
}

func TestReset(t *testing.T) {
	mc, _ := newTestCPU(t, 0xc000)
	test.ExpectSuccess(t, mc.HasReset())
	rtest.ExpectRegister(t, mc.PC, 0xc000)
	rtest.ExpectRegister(t, mc.SP, 0xfd)
	rtest.ExpectRegister(t, mc.A, 0)
	rtest.ExpectRegister(t, mc.X, 0)
	rtest.ExpectRegister(t, mc.Y, 0)
	rtest.ExpectRegister(t, mc.Status, 0x24)
	rtest.ExpectRegister(t, mc.Status, "sv-dIzc")
	test.ExpectEquality(t, mc.String(), "A:00 X:00 Y:00 P:24 SP:FD")
}

func TestLoadAndFlags(t *testing.T) {
	mc, _ := newTestCPU(t, 0x8000,
		0xa9, 0x00, // LDA #$00
		0xa9, 0x80, // LDA #$80
		0xa2, 0x01, // LDX #$01
		0xca,       // DEX
		0xca,       // DEX
		0x38,       // SEC
		0x18,       // CLC
		0xf8,       // SED
	)

	test.ExpectEquality(t, step(t, mc), 2)
	rtest.ExpectRegister(t, mc.Status, "sv-dIZc")
	step(t, mc)
	rtest.ExpectRegister(t, mc.A, 0x80)
	rtest.ExpectRegister(t, mc.Status, "Sv-dIzc")
	step(t, mc)
	rtest.ExpectRegister(t, mc.Status, "sv-dIzc")
	step(t, mc)
	rtest.ExpectRegister(t, mc.Status, "sv-dIZc")
	step(t, mc)
	rtest.ExpectRegister(t, mc.X, 0xff)
	rtest.ExpectRegister(t, mc.Status, "Sv-dIzc")
	step(t, mc)
	rtest.ExpectRegister(t, mc.Status, "Sv-dIzC")
	step(t, mc)
	rtest.ExpectRegister(t, mc.Status, "Sv-dIzc")
	step(t, mc)
	rtest.ExpectRegister(t, mc.Status, "Sv-DIzc")
}

func TestDecimalModeHasNoEffect(t *testing.T) {
	mc, _ := newTestCPU(t, 0x8000,
		0xf8,       // SED
		0xa9, 0x09, // LDA #$09
		0x69, 0x01, // ADC #$01
	)
	step(t, mc)
	step(t, mc)
	step(t, mc)
	rtest.ExpectRegister(t, mc.A, 0x0a)
}

func TestArithmeticOverflow(t *testing.T) {
	mem := &mockMem{}
	mc := cpu.NewCPU(mem)

	for _, opcode := range []uint8{0x69, 0xe9} {
		for a := range 256 {
			for b := range 256 {
				for _, carry := range []bool{false, true} {
					mem.putInstructions(0x8000, opcode, uint8(b))
					mc.LoadPC(0x8000)
					mc.A.Load(uint8(a))
					mc.Status.Carry = carry

					err := mc.ExecuteInstruction(cpu.NilCycleCallback)
					test.DemandSuccess(t, err)

					operand := b
					if opcode == 0xe9 {
						operand = ^b & 0xff
					}
					sum := a + operand
					if carry {
						sum++
					}
					result := uint8(sum)
					overflow := (uint8(a)^result)&(uint8(operand)^result)&0x80 != 0

					if mc.A.Value() != result || mc.Status.Carry != (sum > 0xff) || mc.Status.Overflow != overflow {
						t.Fatalf("opcode %02x: %02x %02x %v: got A=%02x C=%v V=%v", opcode, a, b, carry,
							mc.A.Value(), mc.Status.Carry, mc.Status.Overflow)
					}
					test.ExpectEquality(t, mc.Status.Zero, result == 0)
					test.ExpectEquality(t, mc.Status.Sign, result&0x80 == 0x80)
				}
			}
		}
	}
}

func TestStackWrap(t *testing.T) {
	mc, mem := newTestCPU(t, 0x8000)

	// enough PHA instructions to wrap the stack more than once
	const pushes = 0xff + 3
	for i := range pushes {
		mem.internal[0x8000+uint16(i)] = 0x48
	}

	mc.SP.Load(0x01)
	mc.A.Load(0x99)

	for range 3 {
		step(t, mc)
	}
	rtest.ExpectRegister(t, mc.SP, 0xfe)
	test.ExpectEquality(t, mem.internal[0x0101], 0x99)
	test.ExpectEquality(t, mem.internal[0x0100], 0x99)
	test.ExpectEquality(t, mem.internal[0x01ff], 0x99)

	for range pushes - 3 {
		step(t, mc)
	}
	rtest.ExpectRegister(t, mc.SP, 0xff)

	// nothing outside of page one has been touched
	test.ExpectEquality(t, mem.internal[0x00ff], 0x00)
	test.ExpectEquality(t, mem.internal[0x0200], 0x00)

	// popping wraps the other way
	mc.SP.Load(0xff)
	mem.internal[0x0100] = 0x42
	mem.putInstructions(0x9000, 0x68) // PLA
	mc.LoadPC(0x9000)
	test.ExpectEquality(t, step(t, mc), 4)
	rtest.ExpectRegister(t, mc.SP, 0x00)
	rtest.ExpectRegister(t, mc.A, 0x42)
}

func TestIndexedCycles(t *testing.T) {
	mc, mem := newTestCPU(t, 0x8000,
		0xbd, 0x10, 0x02, // LDA $0210,X
		0xbd, 0xff, 0x02, // LDA $02ff,X
		0x9d, 0x10, 0x02, // STA $0210,X
		0xb1, 0x40, // LDA ($40),Y
		0xb1, 0x40, // LDA ($40),Y
		0xfe, 0x10, 0x02, // INC $0210,X
	)
	mem.internal[0x0301] = 0x55
	mem.internal[0x0040] = 0xf0
	mem.internal[0x0041] = 0x02

	mc.X.Load(0x02)

	test.ExpectEquality(t, step(t, mc), 4)
	test.ExpectFailure(t, mc.LastResult.PageFault)

	test.ExpectEquality(t, step(t, mc), 5)
	test.ExpectSuccess(t, mc.LastResult.PageFault)
	rtest.ExpectRegister(t, mc.A, 0x55)

	// write instructions take the extra cycle whether or not the page is
	// crossed
	test.ExpectEquality(t, step(t, mc), 5)
	test.ExpectFailure(t, mc.LastResult.PageFault)
	test.ExpectEquality(t, mem.internal[0x0212], 0x55)

	mc.Y.Load(0x0f)
	test.ExpectEquality(t, step(t, mc), 5)
	test.ExpectFailure(t, mc.LastResult.PageFault)

	mc.Y.Load(0x11)
	test.ExpectEquality(t, step(t, mc), 6)
	test.ExpectSuccess(t, mc.LastResult.PageFault)
	test.ExpectEquality(t, mc.LastResult.EffectiveAddress, uint16(0x0301))
	rtest.ExpectRegister(t, mc.A, 0x55)

	test.ExpectEquality(t, step(t, mc), 7)
	test.ExpectEquality(t, mem.internal[0x0212], 0x56)
}

func TestBranchCycles(t *testing.T) {
	mc, mem := newTestCPU(t, 0x80f0,
		0xd0, 0x02, // BNE +2 (not taken)
		0xf0, 0x02, // BEQ +2 (taken, same page)
		0x00, 0x00,
		0xf0, 0x10, // BEQ +16 (taken, crosses page)
	)

	mc.Status.Zero = true

	test.ExpectEquality(t, step(t, mc), 2)
	test.ExpectFailure(t, mc.LastResult.BranchSuccess)
	rtest.ExpectRegister(t, mc.PC, 0x80f2)

	test.ExpectEquality(t, step(t, mc), 3)
	test.ExpectSuccess(t, mc.LastResult.BranchSuccess)
	test.ExpectFailure(t, mc.LastResult.PageFault)
	rtest.ExpectRegister(t, mc.PC, 0x80f6)

	test.ExpectEquality(t, step(t, mc), 4)
	test.ExpectSuccess(t, mc.LastResult.PageFault)
	rtest.ExpectRegister(t, mc.PC, 0x8108)

	// backwards branch across a page
	mem.putInstructions(0x8100, 0xd0, 0xfc) // BNE -4
	mc.LoadPC(0x8100)
	mc.Status.Zero = false
	test.ExpectEquality(t, step(t, mc), 4)
	rtest.ExpectRegister(t, mc.PC, 0x80fe)
}

func TestSubroutine(t *testing.T) {
	mc, mem := newTestCPU(t, 0x8000,
		0x20, 0x00, 0x90, // JSR $9000
		0xea, // NOP
	)
	mem.internal[0x9000] = 0x60 // RTS

	test.ExpectEquality(t, step(t, mc), 6)
	rtest.ExpectRegister(t, mc.PC, 0x9000)
	rtest.ExpectRegister(t, mc.SP, 0xfb)

	// return address minus one
	test.ExpectEquality(t, mem.internal[0x01fd], 0x80)
	test.ExpectEquality(t, mem.internal[0x01fc], 0x02)

	rts, ok := mc.PredictRTS()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, rts, uint16(0x8003))

	test.ExpectEquality(t, step(t, mc), 6)
	rtest.ExpectRegister(t, mc.PC, 0x8003)
	rtest.ExpectRegister(t, mc.SP, 0xfd)
}

func TestBRK(t *testing.T) {
	mc, mem := newTestCPU(t, 0x8000,
		0x58,       // CLI
		0x00, 0xff, // BRK (with padding byte)
		0xea, // NOP
	)
	mem.putVector(cpubus.IRQ, 0x9000)
	mem.internal[0x9000] = 0x40 // RTI

	step(t, mc)
	rtest.ExpectRegister(t, mc.Status, "sv-dizc")

	test.ExpectEquality(t, step(t, mc), 7)
	rtest.ExpectRegister(t, mc.PC, 0x9000)
	rtest.ExpectRegister(t, mc.Status, "sv-dIzc")

	// PC+2 and status with the break and unused bits set
	test.ExpectEquality(t, mem.internal[0x01fd], 0x80)
	test.ExpectEquality(t, mem.internal[0x01fc], 0x03)
	test.ExpectEquality(t, mem.internal[0x01fb], 0x30)

	test.ExpectEquality(t, step(t, mc), 6)
	rtest.ExpectRegister(t, mc.PC, 0x8003)
	rtest.ExpectRegister(t, mc.Status, "sv-dizc")
}

func TestPHP(t *testing.T) {
	mc, mem := newTestCPU(t, 0x8000,
		0x08, // PHP
		0xa9, 0x00, // LDA #$00
		0x28, // PLP
	)
	test.ExpectEquality(t, step(t, mc), 3)
	test.ExpectEquality(t, mem.internal[0x01fd], 0x34)
	step(t, mc)
	test.ExpectEquality(t, step(t, mc), 4)
	rtest.ExpectRegister(t, mc.Status, "sv-dIzc")
}

func TestNMI(t *testing.T) {
	mc, mem := newTestCPU(t, 0x8000, 0xea, 0xea, 0xea, 0xea)
	mem.putVector(cpubus.NMI, 0x9000)
	for i := range 16 {
		mem.internal[0x9000+uint16(i)] = 0xea
	}

	// interrupt disable does not mask NMI
	test.ExpectSuccess(t, mc.Status.InterruptDisable)

	step(t, mc)
	mc.SetNMI(true)

	test.ExpectEquality(t, step(t, mc), 7)
	test.ExpectEquality(t, mc.LastResult.Interrupt, execution.NMI)
	rtest.ExpectRegister(t, mc.PC, 0x9000)
	test.ExpectEquality(t, mem.internal[0x01fd], 0x80)
	test.ExpectEquality(t, mem.internal[0x01fc], 0x01)

	// break bit is clear when pushed by an interrupt
	test.ExpectEquality(t, mem.internal[0x01fb], 0x24)

	// line held high is not a new edge
	mc.SetNMI(true)
	step(t, mc)
	test.ExpectEquality(t, mc.LastResult.Interrupt, execution.NoInterrupt)

	mc.SetNMI(false)
	step(t, mc)
	test.ExpectEquality(t, mc.LastResult.Interrupt, execution.NoInterrupt)

	// a new rising edge
	mc.SetNMI(true)
	step(t, mc)
	test.ExpectEquality(t, mc.LastResult.Interrupt, execution.NMI)
}

func TestIRQ(t *testing.T) {
	mc, mem := newTestCPU(t, 0x8000,
		0xea, // NOP
		0x58, // CLI
		0xea, // NOP
	)
	mem.putVector(cpubus.IRQ, 0x9000)
	mem.internal[0x9000] = 0x40 // RTI

	mc.SetIRQ(true)

	// masked by the interrupt disable flag
	step(t, mc)
	test.ExpectEquality(t, mc.LastResult.Interrupt, execution.NoInterrupt)
	step(t, mc)
	test.ExpectEquality(t, mc.LastResult.Defn.Operator, instructions.Cli)

	test.ExpectEquality(t, step(t, mc), 7)
	test.ExpectEquality(t, mc.LastResult.Interrupt, execution.IRQ)
	rtest.ExpectRegister(t, mc.Status, "sv-dIzc")

	// RTI restores the interrupt disable flag and the line is still held so
	// the IRQ is serviced again
	step(t, mc)
	test.ExpectEquality(t, mc.LastResult.Defn.Operator, instructions.Rti)
	step(t, mc)
	test.ExpectEquality(t, mc.LastResult.Interrupt, execution.IRQ)

	// releasing the line
	step(t, mc)
	mc.SetIRQ(false)
	step(t, mc)
	test.ExpectEquality(t, mc.LastResult.Interrupt, execution.NoInterrupt)
	rtest.ExpectRegister(t, mc.PC, 0x8003)
}

func TestAddressingWrap(t *testing.T) {
	mc, mem := newTestCPU(t, 0x8000,
		0x6c, 0xff, 0x10, // JMP ($10ff)
	)
	mem.internal[0x10ff] = 0x34
	mem.internal[0x1000] = 0x12
	mem.internal[0x1100] = 0x56

	test.ExpectEquality(t, step(t, mc), 5)
	rtest.ExpectRegister(t, mc.PC, 0x1234)
	test.ExpectEquality(t, mc.LastResult.CPUBug, execution.JmpIndirectPageBug)

	mem.putInstructions(0x8000,
		0xb5, 0xff, // LDA $ff,X
		0xa1, 0xfe, // LDA ($fe,X)
		0xb1, 0xff, // LDA ($ff),Y
	)
	mc.LoadPC(0x8000)
	mc.X.Load(0x02)
	mc.Y.Load(0x00)
	mem.internal[0x0001] = 0x77
	mem.internal[0x0000] = 0x00
	mem.internal[0x00ff] = 0x03
	mem.internal[0x0100] = 0x03
	mem.internal[0x0003] = 0x99

	test.ExpectEquality(t, step(t, mc), 4)
	rtest.ExpectRegister(t, mc.A, 0x77)
	test.ExpectEquality(t, mc.LastResult.CPUBug, execution.ZeroPageIndexWrap)

	// pointer at $00 is $7700
	mem.internal[0x7700] = 0x66
	test.ExpectEquality(t, step(t, mc), 6)
	rtest.ExpectRegister(t, mc.A, 0x66)

	// pointer at $ff with the high byte taken from $00
	test.ExpectEquality(t, step(t, mc), 5)
	test.ExpectEquality(t, mc.LastResult.EffectiveAddress, uint16(0x0003))
	rtest.ExpectRegister(t, mc.A, 0x99)
}

func TestUndocumented(t *testing.T) {
	mc, mem := newTestCPU(t, 0x8000,
		0xa7, 0x10, // LAX $10
		0x87, 0x11, // SAX $11
		0xc7, 0x12, // DCP $12
		0x02,       // KIL
		0x0c, 0x00, 0x03, // NOP $0300
	)
	mem.internal[0x0010] = 0xf3
	mem.internal[0x0012] = 0xf4
	mc.A.Load(0x00)

	step(t, mc)
	rtest.ExpectRegister(t, mc.A, 0xf3)
	rtest.ExpectRegister(t, mc.X, 0xf3)
	test.ExpectEquality(t, mc.LastResult.Defn.Mnemonic(), "*LAX")

	mc.X.Load(0x0f)
	step(t, mc)
	test.ExpectEquality(t, mem.internal[0x0011], 0x03)

	test.ExpectEquality(t, step(t, mc), 5)
	test.ExpectEquality(t, mem.internal[0x0012], 0xf3)
	test.ExpectSuccess(t, mc.Status.Zero)
	test.ExpectSuccess(t, mc.Status.Carry)

	// jam instructions do not halt the CPU
	test.ExpectEquality(t, step(t, mc), 2)
	rtest.ExpectRegister(t, mc.PC, 0x8007)

	writes := mem.writes
	test.ExpectEquality(t, step(t, mc), 4)
	test.ExpectEquality(t, mem.writes, writes)
	rtest.ExpectRegister(t, mc.PC, 0x800a)
}

// every opcode is executed once from a neutral state. the cycle count and the
// number of bytes must agree with the instruction table.
func TestAllOpcodes(t *testing.T) {
	for opcode := range 256 {
		mc, mem := newTestCPU(t, 0x8000, uint8(opcode), 0x10, 0x02)
		mem.putVector(cpubus.IRQ, 0x9000)
		mc.X.Load(0x01)
		mc.Y.Load(0x01)

		err := mc.ExecuteInstruction(cpu.NilCycleCallback)
		test.DemandSuccess(t, err)
		test.ExpectSuccess(t, mc.LastResult.IsValid(), instructions.Definitions[opcode])
	}
}

func TestTraceString(t *testing.T) {
	mc, _ := newTestCPU(t, 0xc000,
		0x4c, 0xf5, 0xc5, // JMP $c5f5
	)
	step(t, mc)
	test.ExpectEquality(t, mc.LastResult.String(), "C000  4C F5 C5  JMP $C5F5                      ")
}

func TestMidInstruction(t *testing.T) {
	mc, _ := newTestCPU(t, 0x8000, 0xad, 0x00, 0x02) // LDA $0200

	// the callback returns an error after the opcode has been read and the
	// instruction is left unfinished
	var cycles int
	err := mc.ExecuteInstruction(func() error {
		cycles++
		if cycles == 2 {
			return errTest
		}
		return nil
	})
	test.ExpectFailure(t, err)
	test.ExpectFailure(t, mc.LastResult.Final)

	err = mc.ExecuteInstruction(cpu.NilCycleCallback)
	test.ExpectFailure(t, err)
}

type testError string

func (e testError) Error() string {
	return string(e)
}

const errTest = testError("test error")
