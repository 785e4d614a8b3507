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

// envelope generator shared by the pulse and noise channels. the loop flag
// doubles as the length counter halt flag of the owning channel.
type envelope struct {
	start    bool
	constant bool
	loop     bool

	// volume is also the divider period
	volume uint8

	divider uint8
	decay   uint8
}

func (env *envelope) write(data uint8) {
	env.loop = data&0x20 == 0x20
	env.constant = data&0x10 == 0x10
	env.volume = data & 0x0f
}

// clocked on every quarter frame.
func (env *envelope) clock() {
	if env.start {
		env.start = false
		env.decay = 15
		env.divider = env.volume
		return
	}

	if env.divider > 0 {
		env.divider--
		return
	}

	env.divider = env.volume
	if env.decay > 0 {
		env.decay--
	} else if env.loop {
		env.decay = 15
	}
}

func (env *envelope) output() uint8 {
	if env.constant {
		return env.volume
	}
	return env.decay
}

// length counter shared by all channels except the DMC.
type length struct {
	enabled bool
	counter uint8
}

// load counter from the top five bits of a register value. has no effect if
// the channel is not enabled.
func (l *length) load(data uint8) {
	if l.enabled {
		l.counter = lengthTable[data>>3]
	}
}

// enable or disable channel. disabling the channel clears the counter.
func (l *length) enable(enabled bool) {
	l.enabled = enabled
	if !enabled {
		l.counter = 0
	}
}

// clocked on every half frame.
func (l *length) clock(halt bool) {
	if !halt && l.counter > 0 {
		l.counter--
	}
}

func (l *length) active() bool {
	return l.counter > 0
}
