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


package hardware

import (
	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/govern"
)

// PerformanceBrake can be used by continueCheck() implementations to skip
// expensive checks on most instructions. For example:
//
//	brake++
//	if brake < hardware.PerformanceBrake {
//		return govern.Running, nil
//	}
//	brake = 0
//	... expensive check ...
const PerformanceBrake = 100

// UnsupportedState is returned when a continue check returns a state that the
// run loop cannot act on.
const UnsupportedState = "nes: unsupported emulation state (%s)"

// Run the emulation until continueCheck() returns govern.Ending. The check is
// made after every instruction. While the state is govern.Paused no
// instructions are executed but the check is still made.
//
// The speed of emulation is governed by the television's FPS cap.
func (nes *NES) Run(continueCheck func() (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func() (govern.State, error) { return govern.Running, nil }
	}
	return nes.run(func(_ int) (govern.State, error) { return continueCheck() })
}

// RunForFrameCount runs the emulation for the specified number of frames. The
// continueCheck() function receives the current frame number and can end the
// run early.
func (nes *NES) RunForFrameCount(numFrames int, continueCheck func(frame int) (govern.State, error)) error {
	if numFrames <= 0 {
		return nil
	}
	target := nes.TV.GetFrameNum() + numFrames

	return nes.run(func(frame int) (govern.State, error) {
		if frame >= target {
			return govern.Ending, nil
		}
		if continueCheck == nil {
			return govern.Running, nil
		}
		return continueCheck(frame)
	})
}

// the first instruction is always executed
func (nes *NES) run(check func(frame int) (govern.State, error)) error {
	var err error
	state := govern.Running

	for {
		switch state {
		case govern.Running:
			if _, err := nes.Step(); err != nil {
				return err
			}
		case govern.Paused:
		case govern.Ending:
			return nil
		default:
			return curated.Errorf(UnsupportedState, state)
		}

		state, err = check(nes.TV.GetFrameNum())
		if err != nil {
			return err
		}
	}
}
