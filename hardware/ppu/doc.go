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

// Package ppu implements the 2C02 picture processing unit of the NES.
//
// The PPU is advanced one dot at a time by calling Step(). There are 341 dots
// per scanline and 262 scanlines per frame. Scanlines 0 to 239 are visible,
// 240 is the idle post-render line, 241 to 260 are the vertical blank and 261
// is the pre-render line. On odd frames, when rendering is enabled, the last
// dot of the pre-render line is skipped.
//
// The background is produced by two 16-bit pattern shift registers and two
// 16-bit attribute shift registers. The shift registers are reloaded every
// eight dots from the latches filled by the nametable, attribute and pattern
// fetches. Fetch addresses are formed from the internal v register, which is
// incremented horizontally and vertically as the scanline progresses.
//
// Sprite evaluation for the next scanline happens at dot 257. Up to eight
// sprites are selected in OAM order and the sprite overflow flag is set if
// more than eight qualify.
//
// The CPU accesses the PPU through the eight registers exposed by the
// ReadRegister() and WriteRegister() functions. The NMI() function reports the
// level of the PPU's NMI line.
//
// Completed frames are handed to a television.FrameTrigger at the start of the
// post-render scanline.
package ppu
