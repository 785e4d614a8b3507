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


package gui

import (
	"image"
	"sync"

	"github.com/jetsetilly/gophernes/hardware/television"
)

// FrameBuffer receives frames from the television in the emulation goroutine
// and hands them to the GUI in the main thread. It implements the
// television.FrameTrigger interface.
type FrameBuffer struct {
	crit sync.Mutex

	frame   television.Frame
	img     *image.RGBA
	valid   bool
	updated bool
}

// NewFrameBuffer is the preferred method of initialisation for the
// FrameBuffer type.
func NewFrameBuffer() *FrameBuffer {
	return &FrameBuffer{
		img: image.NewRGBA(image.Rect(0, 0, television.Width, television.Height)),
	}
}

// NewFrame implements the television.FrameTrigger interface.
func (fb *FrameBuffer) NewFrame(frame *television.Frame) error {
	fb.crit.Lock()
	defer fb.crit.Unlock()
	fb.frame = *frame
	fb.valid = true
	fb.updated = true
	return nil
}

// Image returns the most recent frame as an RGBA image. The boolean is true if
// the frame has changed since the previous call. The image is owned by the
// FrameBuffer and is only valid until the next call to Image().
func (fb *FrameBuffer) Image() (*image.RGBA, bool) {
	fb.crit.Lock()
	defer fb.crit.Unlock()
	if !fb.updated {
		return fb.img, false
	}
	fb.updated = false
	fb.frame.Draw(fb.img)
	return fb.img, true
}

// Frame returns a copy of the most recent frame. Returns nil if no frame has
// been received.
func (fb *FrameBuffer) Frame() *television.Frame {
	fb.crit.Lock()
	defer fb.crit.Unlock()
	if !fb.valid {
		return nil
	}
	f := fb.frame
	return &f
}
