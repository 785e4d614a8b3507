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
	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/hardware/cpu/instructions"
	"github.com/jetsetilly/gophernes/hardware/cpu/registers"
	"github.com/jetsetilly/gophernes/hardware/memory/cpubus"
)

// setZN sets the zero and sign flags according to the value.
func (mc *CPU) setZN(v uint8) {
	mc.Status.Zero = v == 0
	mc.Status.Sign = v&0x80 == 0x80
}

// compare sets the flags as though val has been subtracted from the register
// value.
func (mc *CPU) compare(reg uint8, val uint8) {
	mc.Status.Carry = reg >= val
	mc.setZN(reg - val)
}

func (mc *CPU) adc(val uint8) {
	mc.Status.Carry, mc.Status.Overflow = mc.A.Add(val, mc.Status.Carry)
	mc.setZN(mc.A.Value())
}

func (mc *CPU) sbc(val uint8) {
	mc.Status.Carry, mc.Status.Overflow = mc.A.Subtract(val, mc.Status.Carry)
	mc.setZN(mc.A.Value())
}

// operate performs the instruction once the addressing has been resolved.
// value is the value read from memory for Read and RMW instructions. for RMW
// instructions, the modified value is written back to the address.
func (mc *CPU) operate(defn *instructions.Definition, address uint16, base uint16, value uint8) error {
	var err error

	// rmw is used for the shift and rotate instructions, both in accumulator
	// and in memory form
	rmw := registers.NewRegister(value, "rmw")

	// unstable store instructions AND the value with the high byte of the
	// base address plus one
	highPlusOne := uint8(base>>8) + 1

	switch defn.Operator {
	case instructions.Nop, instructions.NOP:
		// does nothing

	case instructions.KIL:
		// the real CPU halts until reset. the instruction is treated as a NOP
		// so that execution can continue
		mc.logJam(defn)

	case instructions.Cli:
		mc.Status.InterruptDisable = false

	case instructions.Sei:
		mc.Status.InterruptDisable = true

	case instructions.Clc:
		mc.Status.Carry = false

	case instructions.Sec:
		mc.Status.Carry = true

	case instructions.Cld:
		mc.Status.DecimalMode = false

	case instructions.Sed:
		mc.Status.DecimalMode = true

	case instructions.Clv:
		mc.Status.Overflow = false

	case instructions.Pha:
		// +1 cycle
		err = mc.push(mc.A.Value())

	case instructions.Php:
		// +1 cycle
		err = mc.push(mc.Status.Value() | registers.BreakBit)

	case instructions.Pla:
		// phantom read of the stack before the stack pointer is incremented
		// +1 cycle
		_, err = mc.read8Bit(mc.SP.Address(), true)
		if err != nil {
			return err
		}

		// +1 cycle
		value, err = mc.pop()
		if err != nil {
			return err
		}
		mc.A.Load(value)
		mc.setZN(value)

	case instructions.Plp:
		// +1 cycle
		_, err = mc.read8Bit(mc.SP.Address(), true)
		if err != nil {
			return err
		}

		// +1 cycle
		value, err = mc.pop()
		if err != nil {
			return err
		}
		mc.Status.FromValue(value)

	case instructions.Txa:
		mc.A.Load(mc.X.Value())
		mc.setZN(mc.A.Value())

	case instructions.Tax:
		mc.X.Load(mc.A.Value())
		mc.setZN(mc.X.Value())

	case instructions.Tay:
		mc.Y.Load(mc.A.Value())
		mc.setZN(mc.Y.Value())

	case instructions.Tya:
		mc.A.Load(mc.Y.Value())
		mc.setZN(mc.A.Value())

	case instructions.Tsx:
		mc.X.Load(mc.SP.Value())
		mc.setZN(mc.X.Value())

	case instructions.Txs:
		mc.SP.Load(mc.X.Value())
		// does not affect status register

	case instructions.Eor:
		mc.A.EOR(value)
		mc.setZN(mc.A.Value())

	case instructions.Ora:
		mc.A.ORA(value)
		mc.setZN(mc.A.Value())

	case instructions.And:
		mc.A.AND(value)
		mc.setZN(mc.A.Value())

	case instructions.Lda:
		mc.A.Load(value)
		mc.setZN(value)

	case instructions.Ldx:
		mc.X.Load(value)
		mc.setZN(value)

	case instructions.Ldy:
		mc.Y.Load(value)
		mc.setZN(value)

	case instructions.Sta:
		// +1 cycle
		err = mc.write8Bit(address, mc.A.Value(), false)

	case instructions.Stx:
		// +1 cycle
		err = mc.write8Bit(address, mc.X.Value(), false)

	case instructions.Sty:
		// +1 cycle
		err = mc.write8Bit(address, mc.Y.Value(), false)

	case instructions.Inx:
		mc.X.Load(mc.X.Value() + 1)
		mc.setZN(mc.X.Value())

	case instructions.Iny:
		mc.Y.Load(mc.Y.Value() + 1)
		mc.setZN(mc.Y.Value())

	case instructions.Dex:
		mc.X.Load(mc.X.Value() - 1)
		mc.setZN(mc.X.Value())

	case instructions.Dey:
		mc.Y.Load(mc.Y.Value() - 1)
		mc.setZN(mc.Y.Value())

	case instructions.Asl:
		mc.Status.Carry = rmw.ASL()
		mc.setZN(rmw.Value())

	case instructions.Lsr:
		mc.Status.Carry = rmw.LSR()
		mc.setZN(rmw.Value())

	case instructions.Rol:
		mc.Status.Carry = rmw.ROL(mc.Status.Carry)
		mc.setZN(rmw.Value())

	case instructions.Ror:
		mc.Status.Carry = rmw.ROR(mc.Status.Carry)
		mc.setZN(rmw.Value())

	case instructions.Inc:
		rmw.Load(value + 1)
		mc.setZN(rmw.Value())

	case instructions.Dec:
		rmw.Load(value - 1)
		mc.setZN(rmw.Value())

	case instructions.Adc:
		mc.adc(value)

	case instructions.Sbc, instructions.SBC:
		mc.sbc(value)

	case instructions.Cmp:
		mc.compare(mc.A.Value(), value)

	case instructions.Cpx:
		mc.compare(mc.X.Value(), value)

	case instructions.Cpy:
		mc.compare(mc.Y.Value(), value)

	case instructions.Bit:
		mc.Status.Zero = mc.A.Value()&value == 0
		mc.Status.Overflow = value&0x40 == 0x40
		mc.Status.Sign = value&0x80 == 0x80

	case instructions.Jmp:
		mc.PC.Load(address)

	case instructions.Bcc:
		err = mc.branch(!mc.Status.Carry, address)

	case instructions.Bcs:
		err = mc.branch(mc.Status.Carry, address)

	case instructions.Beq:
		err = mc.branch(mc.Status.Zero, address)

	case instructions.Bmi:
		err = mc.branch(mc.Status.Sign, address)

	case instructions.Bne:
		err = mc.branch(!mc.Status.Zero, address)

	case instructions.Bpl:
		err = mc.branch(!mc.Status.Sign, address)

	case instructions.Bvc:
		err = mc.branch(!mc.Status.Overflow, address)

	case instructions.Bvs:
		err = mc.branch(mc.Status.Overflow, address)

	case instructions.Jsr:
		// +1 cycle
		err = mc.read8BitPC(loNibble)
		if err != nil {
			return err
		}

		// the PC now points to the high byte of the operand, which is the
		// return address minus one

		// phantom read of the stack
		// +1 cycle
		_, err = mc.read8Bit(mc.SP.Address(), true)
		if err != nil {
			return err
		}

		// +1 cycle
		err = mc.push(uint8(mc.PC.Address() >> 8))
		if err != nil {
			return err
		}

		// +1 cycle
		err = mc.push(uint8(mc.PC.Address()))
		if err != nil {
			return err
		}

		// +1 cycle
		err = mc.read8BitPC(hiNibble)
		if err != nil {
			return err
		}

		mc.PC.Load(mc.LastResult.InstructionData)

	case instructions.Rts:
		// phantom read of the stack
		// +1 cycle
		_, err = mc.read8Bit(mc.SP.Address(), true)
		if err != nil {
			return err
		}

		// +2 cycles
		err = mc.pullPC()
		if err != nil {
			return err
		}

		// the PC is incremented in a separate cycle
		// +1 cycle
		_, err = mc.read8Bit(mc.PC.Address(), true)
		if err != nil {
			return err
		}
		mc.PC.Add(1)

	case instructions.Brk:
		// +3 cycles
		err = mc.pushPCAndStatus(true)
		if err != nil {
			return err
		}

		mc.Status.InterruptDisable = true

		// +2 cycles
		var vector uint16
		vector, err = mc.read16Bit(cpubus.IRQ, false)
		if err != nil {
			return err
		}
		mc.PC.Load(vector)

	case instructions.Rti:
		// phantom read of the stack
		// +1 cycle
		_, err = mc.read8Bit(mc.SP.Address(), true)
		if err != nil {
			return err
		}

		// +1 cycle
		value, err = mc.pop()
		if err != nil {
			return err
		}
		mc.Status.FromValue(value)

		// +2 cycles
		err = mc.pullPC()

	// undocumented instructions
	case instructions.LAX:
		mc.A.Load(value)
		mc.X.Load(value)
		mc.setZN(value)

	case instructions.SAX:
		// +1 cycle
		err = mc.write8Bit(address, mc.A.Value()&mc.X.Value(), false)

	case instructions.DCP:
		rmw.Load(value - 1)
		mc.compare(mc.A.Value(), rmw.Value())

	case instructions.ISC:
		rmw.Load(value + 1)
		mc.sbc(rmw.Value())

	case instructions.SLO:
		mc.Status.Carry = rmw.ASL()
		mc.A.ORA(rmw.Value())
		mc.setZN(mc.A.Value())

	case instructions.RLA:
		mc.Status.Carry = rmw.ROL(mc.Status.Carry)
		mc.A.AND(rmw.Value())
		mc.setZN(mc.A.Value())

	case instructions.SRE:
		mc.Status.Carry = rmw.LSR()
		mc.A.EOR(rmw.Value())
		mc.setZN(mc.A.Value())

	case instructions.RRA:
		mc.Status.Carry = rmw.ROR(mc.Status.Carry)
		mc.adc(rmw.Value())

	case instructions.ANC:
		mc.A.AND(value)
		mc.setZN(mc.A.Value())
		mc.Status.Carry = mc.Status.Sign

	case instructions.ASR:
		mc.A.AND(value)
		mc.Status.Carry = mc.A.LSR()
		mc.setZN(mc.A.Value())

	case instructions.ARR:
		mc.A.AND(value)
		mc.A.ROR(mc.Status.Carry)
		v := mc.A.Value()
		mc.setZN(v)
		mc.Status.Carry = v&0x40 == 0x40
		mc.Status.Overflow = (v>>6)&0x01 != (v>>5)&0x01

	case instructions.AXS:
		ax := mc.A.Value() & mc.X.Value()
		mc.Status.Carry = ax >= value
		mc.X.Load(ax - value)
		mc.setZN(mc.X.Value())

	case instructions.XAA:
		// highly unstable. the magic constant of 0xee is a common choice
		mc.A.Load((mc.A.Value() | 0xee) & mc.X.Value() & value)
		mc.setZN(mc.A.Value())

	case instructions.LAS:
		v := value & mc.SP.Value()
		mc.A.Load(v)
		mc.X.Load(v)
		mc.SP.Load(v)
		mc.setZN(v)

	case instructions.AHX:
		// +1 cycle
		err = mc.write8Bit(address, mc.A.Value()&mc.X.Value()&highPlusOne, false)

	case instructions.SHX:
		// +1 cycle
		err = mc.write8Bit(address, mc.X.Value()&highPlusOne, false)

	case instructions.SHY:
		// +1 cycle
		err = mc.write8Bit(address, mc.Y.Value()&highPlusOne, false)

	case instructions.TAS:
		mc.SP.Load(mc.A.Value() & mc.X.Value())

		// +1 cycle
		err = mc.write8Bit(address, mc.SP.Value()&highPlusOne, false)

	default:
		return curated.Errorf("cpu: unknown operator (%s)", defn.Operator)
	}

	if err != nil {
		return err
	}

	// write altered value back to memory for RMW instructions
	if defn.Effect == instructions.RMW {
		// +1 cycle
		err = mc.write8Bit(address, rmw.Value(), false)
		if err != nil {
			return err
		}
	}

	// shift and rotate instructions in accumulator mode
	if defn.AddressingMode == instructions.Accumulator {
		mc.A.Load(rmw.Value())
	}

	return nil
}

// pullPC pops the low and high bytes of the PC from the stack.
//
// side-effects:
//   - calls cycleCallback twice
func (mc *CPU) pullPC() error {
	lo, err := mc.pop()
	if err != nil {
		return err
	}

	hi, err := mc.pop()
	if err != nil {
		return err
	}

	mc.PC.Load((uint16(hi) << 8) | uint16(lo))

	return nil
}
