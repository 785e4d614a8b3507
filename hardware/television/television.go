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
	"fmt"

	"github.com/jetsetilly/gophernes/curated"
)

// Television receives completed frames from the PPU and audio samples from
// the APU and forwards them to the registered FrameTriggers and AudioMixers.
// Note that the television implementation itself does not present any
// information, either visually or sonically.
type Television struct {
	frameNum int

	// the most recent frame. nil until the first frame has been completed
	lastFrame *Frame

	triggers []FrameTrigger
	mixers   []AudioMixer

	lmtr *FpsLimiter
}

// NewTelevision is the preferred method of initialisation for the Television
// type. The FPS cap is off until SetFPSCap(true) is called.
func NewTelevision() *Television {
	return &Television{
		lmtr: newFpsLimiter(),
	}
}

func (tv *Television) String() string {
	return fmt.Sprintf("FR=%04d", tv.frameNum)
}

// AddFrameTrigger registers an (additional) implementation of FrameTrigger.
func (tv *Television) AddFrameTrigger(f FrameTrigger) {
	for _, t := range tv.triggers {
		if t == f {
			return
		}
	}
	tv.triggers = append(tv.triggers, f)
}

// RemoveFrameTrigger removes a FrameTrigger previously added with
// AddFrameTrigger().
func (tv *Television) RemoveFrameTrigger(f FrameTrigger) {
	for i, t := range tv.triggers {
		if t == f {
			tv.triggers = append(tv.triggers[:i], tv.triggers[i+1:]...)
			return
		}
	}
}

// AddAudioMixer registers an (additional) implementation of AudioMixer.
func (tv *Television) AddAudioMixer(m AudioMixer) {
	for _, a := range tv.mixers {
		if a == m {
			return
		}
	}
	tv.mixers = append(tv.mixers, m)
}

// Reset the television to an initial state. Registered triggers and mixers
// are not affected.
func (tv *Television) Reset() {
	tv.frameNum = 0
	tv.lastFrame = nil
}

// End should be called when the television is no longer required. The
// Television should be considered unusable after End() has been called.
func (tv *Television) End() error {
	var err error
	for _, m := range tv.mixers {
		if e := m.EndMixing(); e != nil && err == nil {
			err = curated.Errorf("television: %v", e)
		}
	}
	return err
}

// NewFrame is called by the PPU when a frame has been completed. The frame is
// copied before it is passed to the registered FrameTriggers so the PPU is
// free to continue drawing into its own buffer.
func (tv *Television) NewFrame(frame *Frame) error {
	tv.frameNum++

	f := *frame
	f.Number = tv.frameNum
	tv.lastFrame = &f

	for _, t := range tv.triggers {
		if err := t.NewFrame(&f); err != nil {
			return curated.Errorf("television: %v", err)
		}
	}

	tv.lmtr.frame()

	return nil
}

// SetAudio is called by the APU with a batch of samples.
func (tv *Television) SetAudio(samples []float32) error {
	for _, m := range tv.mixers {
		if err := m.SetAudio(samples); err != nil {
			return curated.Errorf("television: %v", err)
		}
	}
	return nil
}

// GetFrameNum returns the number of frames completed since the last reset.
func (tv *Television) GetFrameNum() int {
	return tv.frameNum
}

// LastFrame returns the most recently completed frame. Returns nil if no
// frame has been completed since the last reset.
func (tv *Television) LastFrame() *Frame {
	return tv.lastFrame
}

// SetFPSCap sets whether the emulation should wait for the FPS limiter.
func (tv *Television) SetFPSCap(set bool) {
	tv.lmtr.active.Store(set)
}

// SetFPS requests the number of frames per second. A value of zero or less
// restores the NTSC refresh rate.
func (tv *Television) SetFPS(fps float32) {
	tv.lmtr.SetRate(fps)
}

// GetReqFPS returns the requested number of frames per second.
func (tv *Television) GetReqFPS() float32 {
	return tv.lmtr.Requested()
}

// GetActualFPS returns the measured number of frames per second.
func (tv *Television) GetActualFPS() float32 {
	return tv.lmtr.Actual()
}
