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

package apu

import (
	"testing"

	"github.com/jetsetilly/gophernes/hardware/preferences"
	"github.com/jetsetilly/gophernes/test"
)

type mockMemory struct {
	data  map[uint16]uint8
	reads []uint16
}

func (mem *mockMemory) Read(address uint16) (uint8, error) {
	mem.reads = append(mem.reads, address)
	return mem.data[address], nil
}

func (mem *mockMemory) Write(address uint16, data uint8) error {
	mem.data[address] = data
	return nil
}

func TestSweepNegate(t *testing.T) {
	au := NewAPU(preferences.NewDefaultPreferences(), nil)

	for _, p := range []*pulse{&au.Pulse1, &au.Pulse2} {
		p.write(1, 0x89)
		p.write(2, 0x00)
		p.write(3, 0x01)
	}

	// one's complement for the first channel. two's complement for the second
	test.ExpectEquality(t, au.Pulse1.targetPeriod(), uint16(0x7f))
	test.ExpectEquality(t, au.Pulse2.targetPeriod(), uint16(0x80))

	// periods less than eight are muted
	au.Pulse1.write(2, 0x07)
	au.Pulse1.write(3, 0x00)
	test.ExpectSuccess(t, au.Pulse1.muted())

	// target period beyond $7ff mutes even when the sweep is disabled
	au.Pulse2.write(1, 0x01)
	au.Pulse2.write(2, 0xff)
	au.Pulse2.write(3, 0x07)
	test.ExpectSuccess(t, au.Pulse2.muted())
}

func TestNoiseShiftRegister(t *testing.T) {
	var n noise
	n.reset()
	n.write(2, 0x00)

	n.timer = 0
	n.clockTimer()
	test.ExpectEquality(t, n.shift, uint16(0x4000))

	// mode bit takes feedback from bit 6
	n.reset()
	n.write(2, 0x80)
	n.shift = 0x41
	n.clockTimer()
	test.ExpectEquality(t, n.shift, uint16(0x0020))
}

func TestTriangleLinearCounter(t *testing.T) {
	au := NewAPU(preferences.NewDefaultPreferences(), nil)
	au.WriteRegister(0x4015, 0x04)
	au.WriteRegister(0x4008, 0x05)
	au.WriteRegister(0x400a, 0x10)
	au.WriteRegister(0x400b, 0x08)

	// reload happens on the next quarter frame
	test.ExpectEquality(t, au.Triangle.linearCounter, uint8(0))
	au.clockFrame(frameClock{quarter: true})
	test.ExpectEquality(t, au.Triangle.linearCounter, uint8(5))

	// control flag is clear so the reload flag is cleared and the counter
	// decrements
	au.clockFrame(frameClock{quarter: true})
	test.ExpectEquality(t, au.Triangle.linearCounter, uint8(4))
}

func TestDMC(t *testing.T) {
	mem := &mockMemory{data: map[uint16]uint8{0xc040: 0xff}}
	au := NewAPU(preferences.NewDefaultPreferences(), nil)
	au.Plumb(mem)

	// sample at $c040 of length 1 with IRQ enabled
	au.WriteRegister(0x4010, 0x8f)
	au.WriteRegister(0x4012, 0x01)
	au.WriteRegister(0x4013, 0x00)
	au.WriteRegister(0x4015, 0x10)
	test.ExpectEquality(t, au.ReadStatus()&0x10, uint8(0x10))

	test.DemandSuccess(t, au.Step())
	test.ExpectEquality(t, len(mem.reads), 1)
	test.ExpectEquality(t, mem.reads[0], uint16(0xc040))
	test.ExpectSuccess(t, au.IRQ())

	status := au.ReadStatus()
	test.ExpectEquality(t, status&0x80, uint8(0x80))
	test.ExpectEquality(t, status&0x10, uint8(0x00))

	// status write clears the DMC IRQ
	au.WriteRegister(0x4015, 0x00)
	test.ExpectFailure(t, au.IRQ())

	// the output level rises by two for each set bit of the sample
	au.WriteRegister(0x4011, 0x00)
	au.WriteRegister(0x4015, 0x10)
	for range 54 * 24 {
		test.DemandSuccess(t, au.Step())
	}
	test.ExpectInequality(t, au.DMC.output(), uint8(0))
}

func TestDMCAddressWrap(t *testing.T) {
	mem := &mockMemory{data: map[uint16]uint8{}}
	var d dmc
	d.reset()
	d.address = 0xffff
	d.remaining = 2

	test.DemandSuccess(t, d.fetch(mem))
	d.bufferEmpty = true
	test.DemandSuccess(t, d.fetch(mem))
	test.ExpectEquality(t, len(mem.reads), 2)
	test.ExpectEquality(t, mem.reads[0], uint16(0xffff))
	test.ExpectEquality(t, mem.reads[1], uint16(0x8000))
	test.ExpectEquality(t, d.remaining, uint16(0))
}
