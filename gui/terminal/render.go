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


package terminal

import (
	"bufio"
	"fmt"
	"image/color"
	"io"

	"github.com/jetsetilly/gophernes/gui/terminal/easyterm"
	"github.com/jetsetilly/gophernes/hardware/television"
)

// the upper half block. the foreground colour is the upper pixel and the
// background colour is the lower pixel
const halfBlock = '▀'

// reduction returns the smallest integer reduction of the television frame
// that fits the terminal. each character cell is one pixel wide and two
// pixels high.
func reduction(cols int, rows int) int {
	r := 1
	for r < television.Width {
		if television.Width/r <= cols && television.Height/r <= rows*2 {
			break
		}
		r++
	}
	return r
}

// sample returns the colour of the pixel at the top left of the reduced
// block. simple and fast, which matters more than quality here.
func sample(frame *television.Frame, x int, y int, r int) color.RGBA {
	return frame.At(x*r, y*r)
}

// render the frame to the writer with ANSI 24bit colour. the cursor is moved
// to the home position first so that successive frames overwrite each other
func render(w io.Writer, frame *television.Frame, cols int, rows int) error {
	r := reduction(cols, rows)
	width := television.Width / r
	height := television.Height / r

	b := bufio.NewWriterSize(w, width*height*20)
	b.WriteString(easyterm.CursorHome)

	var prevTop, prevBot color.RGBA
	first := true

	for y := 0; y < height; y += 2 {
		for x := range width {
			top := sample(frame, x, y, r)
			bot := color.RGBA{}
			if y+1 < height {
				bot = sample(frame, x, y+1, r)
			}

			// only emit colour changes
			if first || top != prevTop {
				fmt.Fprintf(b, "\033[38;2;%d;%d;%dm", top.R, top.G, top.B)
			}
			if first || bot != prevBot {
				fmt.Fprintf(b, "\033[48;2;%d;%d;%dm", bot.R, bot.G, bot.B)
			}
			first = false
			prevTop = top
			prevBot = bot

			b.WriteRune(halfBlock)
		}
		b.WriteString(easyterm.ResetColours)
		b.WriteString("\r\n")
		first = true
	}

	return b.Flush()
}
