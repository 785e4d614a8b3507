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

// Package apu implements the audio processing unit of the 2A03.
//
// The APU has five channels: two pulse channels, a triangle channel, a noise
// channel and the delta modulation channel (DMC). The channels are clocked by
// calling Step() once every CPU cycle. The triangle timer runs at the CPU rate
// and the other timers run at half the CPU rate.
//
// The frame counter generates quarter-frame and half-frame clocks for the
// envelopes, the triangle's linear counter, the length counters and the sweep
// units. In four-step mode the frame counter raises the IRQ line at the end of
// each sequence unless interrupts have been inhibited by writing to $4017.
//
// The output of the channels is combined by the mix package and sampled at
// the rate given by the apu.samplerate preference. Samples are forwarded in
// batches to the Mixer given to NewAPU(), usually the television.
//
// The DMC fetches sample data through the cpubus.Memory given to Plumb(). The
// stall cycles caused by DMC fetches are not emulated.
package apu
