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

import (
	"image"
	"image/color"
)

// Dimensions of the visible picture.
const (
	Width  = 256
	Height = 240
)

// Frame is a complete picture produced by the PPU. Each pixel is an index
// into the NES palette.
type Frame struct {
	Pixels [Height][Width]uint8

	// the frame number at which this frame was completed
	Number int
}

// Set the palette index of a pixel.
func (f *Frame) Set(x int, y int, index uint8) {
	f.Pixels[y][x] = index & 0x3f
}

// RGBA converts the frame to an image using the NES palette.
func (f *Frame) RGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, Width, Height))
	f.Draw(img)
	return img
}

// Draw the frame into an existing image, which must be at least Width by
// Height pixels.
func (f *Frame) Draw(img *image.RGBA) {
	for y := range Height {
		o := img.PixOffset(0, y)
		for x := range Width {
			c := Palette[f.Pixels[y][x]]
			img.Pix[o] = c.R
			img.Pix[o+1] = c.G
			img.Pix[o+2] = c.B
			img.Pix[o+3] = 0xff
			o += 4
		}
	}
}

// At returns the colour of the pixel.
func (f *Frame) At(x int, y int) color.RGBA {
	return Palette[f.Pixels[y][x]]
}
