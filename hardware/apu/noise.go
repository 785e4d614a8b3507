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

type noise struct {
	length   length
	envelope envelope

	// mode selects the feedback bit of the shift register: bit 6 when set
	// and bit 1 when not set
	mode bool

	// 15 bit linear feedback shift register
	shift uint16

	period uint16
	timer  uint16
}

func (n *noise) String() string {
	return fmt.Sprintf("mode=%v vol=%02d period=%04d len=%03d", n.mode, n.envelope.output(), n.period, n.length.counter)
}

func (n *noise) reset() {
	*n = noise{shift: 1}
}

// write to one of the four noise registers. reg is in the range 0 to 3.
func (n *noise) write(reg uint16, data uint8) {
	switch reg {
	case 0:
		n.envelope.write(data)
	case 2:
		n.mode = data&0x80 == 0x80
		n.period = noisePeriods[data&0x0f]
	case 3:
		n.length.load(data)
		n.envelope.start = true
	}
}

// clocked every APU cycle.
func (n *noise) clockTimer() {
	if n.period == 0 {
		return
	}
	if n.timer > 0 {
		n.timer--
		return
	}
	n.timer = n.period

	var feedback uint16
	if n.mode {
		feedback = (n.shift >> 6) & 0x01
	} else {
		feedback = (n.shift >> 1) & 0x01
	}
	feedback ^= n.shift & 0x01
	n.shift = (n.shift >> 1) | (feedback << 14)
}

func (n *noise) output() uint8 {
	if !n.length.active() || n.shift&0x01 == 0x01 {
		return 0
	}
	return n.envelope.output()
}
