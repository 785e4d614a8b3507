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

package television

import "image/color"

func rgb(v uint32) color.RGBA {
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}
}

// Palette is the RGB interpretation of the 64 colours produced by the 2C02
// PPU.
var Palette = [64]color.RGBA{
	rgb(0x666666), rgb(0x002a88), rgb(0x1412a7), rgb(0x3b00a4), rgb(0x5c007e), rgb(0x6e0040), rgb(0x6c0600), rgb(0x561d00),
	rgb(0x333500), rgb(0x0b4800), rgb(0x005200), rgb(0x004f08), rgb(0x00404d), rgb(0x000000), rgb(0x000000), rgb(0x000000),
	rgb(0xadadad), rgb(0x155fd9), rgb(0x4240ff), rgb(0x7527fe), rgb(0xa01acc), rgb(0xb71e7b), rgb(0xb53120), rgb(0x994e00),
	rgb(0x6b6d00), rgb(0x388700), rgb(0x0c9300), rgb(0x008f32), rgb(0x007c8d), rgb(0x000000), rgb(0x000000), rgb(0x000000),
	rgb(0xfffeff), rgb(0x64b0ff), rgb(0x9290ff), rgb(0xc676ff), rgb(0xf36aff), rgb(0xfe6ecc), rgb(0xfe8170), rgb(0xea9e22),
	rgb(0xbcbe00), rgb(0x88d800), rgb(0x5ce430), rgb(0x45e082), rgb(0x48cdde), rgb(0x4f4f4f), rgb(0x000000), rgb(0x000000),
	rgb(0xfffeff), rgb(0xc0dfff), rgb(0xd3d2ff), rgb(0xe8c8ff), rgb(0xfbc2ff), rgb(0xfec4ea), rgb(0xfeccc5), rgb(0xf7d8a5),
	rgb(0xe4e594), rgb(0xcff29b), rgb(0xbefbb3), rgb(0xb8f8d8), rgb(0xb8f8f8), rgb(0x000000), rgb(0x000000), rgb(0x000000),
}
