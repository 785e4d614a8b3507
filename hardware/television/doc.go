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

// Package television is the point of contact between the emulated console and
// the presentation layer. The PPU hands each completed frame to the
// Television and the APU hands over its audio samples. The Television passes
// both on to any number of registered FrameTrigger and AudioMixer
// implementations.
//
// Frames are handed over by copy and only at the frame boundary. A
// FrameTrigger is free to keep the Frame it receives for as long as it
// likes but it must not be changed.
//
// The Television also limits the speed of the emulation to the NTSC refresh
// rate when requested.
package television
