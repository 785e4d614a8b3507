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
	"fmt"

	"github.com/jetsetilly/gophernes/hardware/memory/cpubus"
)

type dmc struct {
	irqEnabled bool
	loop       bool
	irq        bool

	period uint16
	timer  uint16

	// address and length of sample as written to $4012 and $4013
	sampleAddress uint16
	sampleLength  uint16

	// progress through the current sample
	address   uint16
	remaining uint16

	// the sample buffer is filled by the memory reader and emptied into the
	// shift register by the output unit
	buffer      uint8
	bufferEmpty bool

	shift   uint8
	bits    uint8
	silence bool

	// 7 bit output level
	level uint8
}

func (d *dmc) String() string {
	return fmt.Sprintf("level=%03d addr=%04x rem=%04d", d.level, d.address, d.remaining)
}

func (d *dmc) reset() {
	*d = dmc{
		period:      dmcRates[0],
		bufferEmpty: true,
		silence:     true,
		bits:        8,
	}
}

// write to one of the four DMC registers. reg is in the range 0 to 3.
func (d *dmc) write(reg uint16, data uint8) {
	switch reg {
	case 0:
		d.irqEnabled = data&0x80 == 0x80
		if !d.irqEnabled {
			d.irq = false
		}
		d.loop = data&0x40 == 0x40
		d.period = dmcRates[data&0x0f]
	case 1:
		d.level = data & 0x7f
	case 2:
		d.sampleAddress = 0xc000 + uint16(data)*64
	case 3:
		d.sampleLength = uint16(data)*16 + 1
	}
}

func (d *dmc) restart() {
	d.address = d.sampleAddress
	d.remaining = d.sampleLength
}

// enable or disable the channel through the status register. the DMC IRQ is
// always cleared.
func (d *dmc) enable(enabled bool) {
	if !enabled {
		d.remaining = 0
	} else if d.remaining == 0 {
		d.restart()
	}
	d.irq = false
}

// the memory reader fills the sample buffer when it is empty and there are
// bytes of the sample remaining.
func (d *dmc) fetch(mem cpubus.Memory) error {
	if !d.bufferEmpty || d.remaining == 0 || mem == nil {
		return nil
	}

	v, err := mem.Read(d.address)
	if err != nil {
		return err
	}
	d.buffer = v
	d.bufferEmpty = false

	// sample address wraps around to $8000 rather than to $0000
	if d.address == 0xffff {
		d.address = 0x8000
	} else {
		d.address++
	}

	d.remaining--
	if d.remaining == 0 {
		if d.loop {
			d.restart()
		} else if d.irqEnabled {
			d.irq = true
		}
	}

	return nil
}

// the DMC timer is clocked every CPU cycle.
func (d *dmc) clockTimer(mem cpubus.Memory) error {
	if err := d.fetch(mem); err != nil {
		return err
	}

	if d.timer > 0 {
		d.timer--
		return nil
	}
	d.timer = d.period - 1

	if !d.silence {
		if d.shift&0x01 == 0x01 {
			if d.level <= 125 {
				d.level += 2
			}
		} else if d.level >= 2 {
			d.level -= 2
		}
	}
	d.shift >>= 1

	d.bits--
	if d.bits == 0 {
		d.bits = 8
		if d.bufferEmpty {
			d.silence = true
		} else {
			d.silence = false
			d.shift = d.buffer
			d.bufferEmpty = true
		}
	}

	return nil
}

func (d *dmc) output() uint8 {
	return d.level
}
