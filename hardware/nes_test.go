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

package hardware_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gophernes/govern"
	"github.com/jetsetilly/gophernes/hardware"
	"github.com/jetsetilly/gophernes/hardware/cpu/execution"
	"github.com/jetsetilly/gophernes/hardware/memory/cartridge/ctest"
	"github.com/jetsetilly/gophernes/hardware/preferences"
	"github.com/jetsetilly/gophernes/hardware/television"
	"github.com/jetsetilly/gophernes/logger"
	"github.com/jetsetilly/gophernes/test"
)

func newNES(t *testing.T, program ...uint8) *hardware.NES {
	t.Helper()
	nes, err := hardware.NewNES(television.NewTelevision(), preferences.NewDefaultPreferences())
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, nes.AttachCartridgeData("test", ctest.Program(program...)))
	return nes
}

func step(t *testing.T, nes *hardware.NES) int {
	t.Helper()
	c, err := nes.Step()
	test.DemandSuccess(t, err)
	return c
}

func TestReset(t *testing.T) {
	nes := newNES(t, 0xea)
	test.ExpectEquality(t, nes.CPU.PC.Address(), uint16(0x8000))
	test.ExpectEquality(t, nes.CPU.SP.Value(), uint8(0xfd))
	test.ExpectSuccess(t, nes.CPU.Status.InterruptDisable)
	test.ExpectEquality(t, step(t, nes), 2)
	test.ExpectEquality(t, nes.Clock, uint64(2))

	// three dots for every CPU cycle
	test.ExpectEquality(t, nes.PPU.Dot, 6)

	// reset requested from another goroutine is honoured at the next
	// instruction boundary
	done := make(chan bool)
	go func() {
		nes.RequestReset()
		done <- true
	}()
	<-done
	test.ExpectEquality(t, step(t, nes), 2)
	test.ExpectEquality(t, nes.Clock, uint64(2))
	test.ExpectEquality(t, nes.CPU.PC.Address(), uint16(0x8001))
}

func TestResetKeepsMemory(t *testing.T) {
	// LDA #$5A; STA $6000
	nes := newNES(t, 0xa9, 0x5a, 0x8d, 0x00, 0x60, 0xea)
	step(t, nes)
	step(t, nes)

	nes.Cart.WriteCHR(0x0010, 0x77)
	nes.Mem.RAM.Poke(0x0300, 0x33)

	peek := func(address uint16) uint8 {
		t.Helper()
		v, err := nes.Mem.Peek(address)
		test.DemandSuccess(t, err)
		return v
	}
	test.DemandEquality(t, peek(0x6000), uint8(0x5a))

	nes.RequestReset()
	step(t, nes)

	// the CPU has restarted from the reset vector
	test.ExpectEquality(t, nes.CPU.PC.Address(), uint16(0x8002))

	// PRG RAM, CHR RAM and work RAM survive the reset button
	test.ExpectEquality(t, peek(0x6000), uint8(0x5a))
	test.ExpectEquality(t, nes.Cart.ReadCHR(0x0010), uint8(0x77))
	test.ExpectEquality(t, nes.Mem.RAM.Peek(0x0300), uint8(0x33))

	// attaching a cartridge is a power on. everything is cleared
	test.DemandSuccess(t, nes.AttachCartridgeData("test", ctest.Program(0xea)))
	test.ExpectEquality(t, peek(0x6000), uint8(0x00))
	test.ExpectEquality(t, nes.Cart.ReadCHR(0x0010), uint8(0x00))
	test.ExpectEquality(t, nes.Mem.RAM.Peek(0x0300), uint8(0x00))
}

func TestMissingCartridge(t *testing.T) {
	nes, err := hardware.NewNES(television.NewTelevision(), preferences.NewDefaultPreferences())
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, nes.AttachCartridgeData("bad", []byte("not a rom")))
	test.ExpectSuccess(t, nes.Cart.IsEjected())

	_, err = hardware.NewNES(nil, preferences.NewDefaultPreferences())
	test.ExpectFailure(t, err)
}

func dmaTest(t *testing.T, nes *hardware.NES, expectedCycles int) {
	t.Helper()
	for i := range 256 {
		test.DemandSuccess(t, nes.Mem.Poke(0x0200+uint16(i), uint8(i^0xa5)))
	}

	// step until the STA instruction
	for nes.CPU.PC.Address() != 0x8005 {
		step(t, nes)
	}
	before := nes.Clock
	test.ExpectEquality(t, step(t, nes), expectedCycles)
	test.ExpectEquality(t, nes.Clock-before, uint64(expectedCycles))

	for i := range 256 {
		if !test.ExpectEquality(t, nes.PPU.OAM[i], uint8(i^0xa5), i) {
			break
		}
	}
}

func TestDMAEvenCycle(t *testing.T) {
	// LDA #$02 ; NOP ; NOP ; NOP ; STA $4014
	//
	// the STA finishes on cycle 12 so the DMA starts on an even cycle
	nes := newNES(t, 0xa9, 0x02, 0xea, 0xea, 0xea, 0x8d, 0x14, 0x40)
	dmaTest(t, nes, 4+513)
}

func TestDMAOddCycle(t *testing.T) {
	// LDA #$02 ; LDX $00 ; NOP ; STA $4014
	//
	// the STA finishes on cycle 11 so the DMA starts on an odd cycle
	nes := newNES(t, 0xa9, 0x02, 0xa6, 0x00, 0xea, 0x8d, 0x14, 0x40)
	dmaTest(t, nes, 4+514)
}

func countNMI(t *testing.T, nes *hardware.NES, frames int) int {
	t.Helper()
	var ct int
	for nes.TV.GetFrameNum() < frames {
		step(t, nes)
		if nes.CPU.LastResult.Interrupt == execution.NMI {
			ct++
			test.ExpectEquality(t, nes.PPU.Scanline, 241)
		}
	}
	return ct
}

func TestNMI(t *testing.T) {
	// LDA #$80 ; STA $2000 ; JMP $8005
	nes := newNES(t, 0xa9, 0x80, 0x8d, 0x00, 0x20, 0x4c, 0x05, 0x80)
	test.ExpectEquality(t, countNMI(t, nes, 5), 4)

	// NMI disabled
	nes = newNES(t, 0xa9, 0x00, 0x8d, 0x00, 0x20, 0x4c, 0x05, 0x80)
	test.ExpectEquality(t, countNMI(t, nes, 5), 0)
}

func TestFrameIRQ(t *testing.T) {
	// CLI ; JMP $8001
	nes := newNES(t, 0x58, 0x4c, 0x01, 0x80)

	for nes.CPU.LastResult.Interrupt != execution.IRQ {
		step(t, nes)
		if nes.Clock > 40000 {
			t.Fatalf("no IRQ from APU frame counter")
		}
	}
	test.ExpectSuccess(t, nes.Clock >= 29830)
	test.ExpectEquality(t, nes.CPU.PC.Address(), uint16(0xbff0))
}

func TestRunForFrameCount(t *testing.T) {
	nes := newNES(t, 0x4c, 0x00, 0x80)
	test.DemandSuccess(t, nes.RunForFrameCount(2, nil))
	test.ExpectEquality(t, nes.TV.GetFrameNum(), 2)
	test.ExpectInequality(t, nes.TV.LastFrame(), (*television.Frame)(nil))

	// continue check can end the run early
	var calls int
	test.DemandSuccess(t, nes.RunForFrameCount(10, func(frame int) (govern.State, error) {
		calls++
		if calls >= 10 {
			return govern.Ending, nil
		}
		return govern.Running, nil
	}))
	test.ExpectEquality(t, calls, 10)
	test.ExpectEquality(t, nes.TV.GetFrameNum(), 2)
}

func TestRun(t *testing.T) {
	nes := newNES(t, 0x4c, 0x00, 0x80)

	var calls int
	test.DemandSuccess(t, nes.Run(func() (govern.State, error) {
		calls++
		switch {
		case calls < 10:
			return govern.Running, nil
		case calls < 20:
			return govern.Paused, nil
		}
		return govern.Ending, nil
	}))

	// paused states do not advance the emulation
	test.ExpectEquality(t, nes.Clock, uint64(10*3))

	err := nes.Run(func() (govern.State, error) {
		return govern.EmulatorStart, nil
	})
	test.ExpectFailure(t, err)
}

func TestTrace(t *testing.T) {
	logger.Clear()
	nes := newNES(t, 0xa9, 0x02, 0xea)
	nes.SetTrace(true)
	step(t, nes)
	step(t, nes)

	s := &strings.Builder{}
	logger.Tail(s, 2)
	test.ExpectSuccess(t, strings.Contains(s.String(), "8000  A9 02     LDA #$02"))
	test.ExpectSuccess(t, strings.Contains(s.String(), "A:00 X:00 Y:00 P:24 SP:FD PPU:  0,  0 CYC:0"))
	test.ExpectSuccess(t, strings.Contains(s.String(), "8002  EA        NOP"))
}

func TestSnapshot(t *testing.T) {
	nes := newNES(t, 0xa9, 0x42, 0x85, 0x10)
	step(t, nes)
	step(t, nes)

	s := nes.Snapshot()
	test.ExpectEquality(t, s.RAM.Peek(0x10), uint8(0x42))
	test.ExpectEquality(t, s.CPU.A.Value(), uint8(0x42))

	// snapshot is independent of the emulation
	step(t, nes)
	test.ExpectInequality(t, s.Clock, nes.Clock)
	test.ExpectInequality(t, s.CPU.PC.Address(), nes.CPU.PC.Address())
}
