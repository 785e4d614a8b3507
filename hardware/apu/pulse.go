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

import "fmt"

type sweep struct {
	enabled bool
	negate  bool
	period  uint8
	shift   uint8
	reload  bool
	divider uint8
}

func (sw *sweep) write(data uint8) {
	sw.enabled = data&0x80 == 0x80
	sw.period = (data >> 4) & 0x07
	sw.negate = data&0x08 == 0x08
	sw.shift = data & 0x07
	sw.reload = true
}

type pulse struct {
	// the first pulse channel negates with the one's complement and the
	// second with the two's complement
	onesComplement bool

	length   length
	envelope envelope
	sweep    sweep

	duty      uint8
	sequencer uint8

	period uint16
	timer  uint16
}

func (p *pulse) String() string {
	return fmt.Sprintf("duty=%d vol=%02d period=%04d len=%03d", p.duty, p.envelope.output(), p.period, p.length.counter)
}

// write to one of the four pulse registers. reg is in the range 0 to 3.
func (p *pulse) write(reg uint16, data uint8) {
	switch reg {
	case 0:
		p.duty = data >> 6
		p.envelope.write(data)
	case 1:
		p.sweep.write(data)
	case 2:
		p.period = (p.period & 0xff00) | uint16(data)
	case 3:
		p.period = (p.period & 0x00ff) | (uint16(data&0x07) << 8)
		p.length.load(data)
		p.envelope.start = true
		p.sequencer = 0
	}
}

// clocked every APU cycle.
func (p *pulse) clockTimer() {
	if p.timer == 0 {
		p.timer = p.period
		p.sequencer = (p.sequencer + 1) & 0x07
	} else {
		p.timer--
	}
}

func (p *pulse) targetPeriod() uint16 {
	change := p.period >> p.sweep.shift
	if p.sweep.negate {
		if p.onesComplement {
			return p.period - change - 1
		}
		return p.period - change
	}
	return p.period + change
}

// the sweep unit mutes the channel even when it is not enabled.
func (p *pulse) muted() bool {
	return p.period < 8 || p.targetPeriod() > 0x7ff
}

// clocked on every half frame.
func (p *pulse) clockSweep() {
	if p.sweep.divider == 0 && p.sweep.enabled && p.sweep.shift > 0 && !p.muted() {
		p.period = p.targetPeriod()
	}

	if p.sweep.divider == 0 || p.sweep.reload {
		p.sweep.divider = p.sweep.period
		p.sweep.reload = false
	} else {
		p.sweep.divider--
	}
}

func (p *pulse) output() uint8 {
	if !p.length.active() || p.muted() || dutySequences[p.duty][p.sequencer] == 0 {
		return 0
	}
	return p.envelope.output()
}
