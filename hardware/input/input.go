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

package input

import (
	"fmt"

	"github.com/jetsetilly/gophernes/curated"
)

// Number of controllers attached to the console.
const NumPlayers = 2

// Event is a change of state of one button on one of the controllers.
type Event struct {
	Player  int
	Button  Button
	Pressed bool
}

func (ev Event) String() string {
	if ev.Pressed {
		return fmt.Sprintf("P%d %s pressed", ev.Player+1, ev.Button)
	}
	return fmt.Sprintf("P%d %s released", ev.Player+1, ev.Button)
}

// EventRecorder implementations mirror an incoming event.
type EventRecorder interface {
	RecordEvent(Event) error
}

// Input handles the controllers attached to the NES. It implements the
// memory.InputHandler interface.
type Input struct {
	Player [NumPlayers]Joypad

	recorder EventRecorder
}

// NewInput is the preferred method of initialisation for the Input type.
func NewInput() *Input {
	return &Input{}
}

func (inp *Input) String() string {
	return fmt.Sprintf("P1: %s  P2: %s", inp.Player[0].String(), inp.Player[1].String())
}

// Reset releases all buttons on both controllers.
func (inp *Input) Reset() {
	for i := range inp.Player {
		inp.Player[i].reset()
	}
}

// AttachRecorder attaches an EventRecorder implementation. The recorder can
// be nil in order to remove a previously attached recorder.
func (inp *Input) AttachRecorder(r EventRecorder) {
	inp.recorder = r
}

// Sentinal error returned by HandleEvent().
const NoPlayer = "input: no such player: %d"

// HandleEvent changes the state of the button specified in the event. Safe
// to call from any goroutine if an EventRecorder is not attached.
func (inp *Input) HandleEvent(ev Event) error {
	if ev.Player < 0 || ev.Player >= NumPlayers {
		return curated.Errorf(NoPlayer, ev.Player)
	}

	inp.Player[ev.Player].Set(ev.Button, ev.Pressed)

	if inp.recorder != nil {
		if err := inp.recorder.RecordEvent(ev); err != nil {
			return curated.Errorf("input: %v", err)
		}
	}

	return nil
}

// Read implements the memory.InputHandler interface.
func (inp *Input) Read(address uint16) uint8 {
	switch address {
	case 0x4016:
		return inp.Player[0].read()
	case 0x4017:
		return inp.Player[1].read()
	}
	return 0
}

// Write implements the memory.InputHandler interface. The strobe line is
// shared by both controllers.
func (inp *Input) Write(data uint8) {
	strobe := data&0x01 == 0x01
	for i := range inp.Player {
		inp.Player[i].write(strobe)
	}
}
