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


package macro

import (
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/hardware/input"
	"github.com/jetsetilly/gophernes/hardware/television"
	"github.com/jetsetilly/gophernes/logger"
	"github.com/jetsetilly/gophernes/screenshot"
	lua "github.com/yuin/gopher-lua"
)

// Input is the part of the console that receives button events.
type Input interface {
	HandleEvent(input.Event) error
}

// Memory is the part of the console that can be peeked and poked without side
// effect.
type Memory interface {
	Peek(address uint16) (uint8, error)
	Poke(address uint16, data uint8) error
}

// Console can be reset by the macro.
type Console interface {
	RequestReset()
}

// TV is the television the macro is attached to.
type TV interface {
	AddFrameTrigger(f television.FrameTrigger)
	RemoveFrameTrigger(f television.FrameTrigger)
}

// Sentinal error pattern for scripts that fail to load or run.
const BadScript = "macro: %s: %v"

// name of the lua function called on every new frame
const frameFunction = "frame"

// Macro is a type that allows control of an emulation from a Lua script.
type Macro struct {
	filename string

	inp     Input
	mem     Memory
	console Console
	tv      TV

	L       *lua.LState
	frameFn *lua.LFunction

	// the most recent frame. valid only during the call to the frame function
	frame *television.Frame

	// an error in the script stops any further execution of the script
	failed bool

	// quit() has been called in the script
	quit atomic.Bool
}

// NewMacro loads and runs the top level of the script in filename. The frame
// function, if the script defines one, is called on every new frame once the
// macro has been attached to the television.
func NewMacro(filename string, inp Input, mem Memory, console Console, tv TV) (*Macro, error) {
	return newMacro(filename, func(L *lua.LState) error {
		return L.DoFile(filename)
	}, inp, mem, console, tv)
}

// NewMacroString is like NewMacro except that the script is supplied as a
// string. The name is used in log messages only.
func NewMacroString(name string, script string, inp Input, mem Memory, console Console, tv TV) (*Macro, error) {
	return newMacro(name, func(L *lua.LState) error {
		return L.DoString(script)
	}, inp, mem, console, tv)
}

func newMacro(name string, load func(*lua.LState) error, inp Input, mem Memory, console Console, tv TV) (*Macro, error) {
	mcr := &Macro{
		filename: name,
		inp:      inp,
		mem:      mem,
		console:  console,
		tv:       tv,
		L:        lua.NewState(),
	}

	mcr.register()

	if err := load(mcr.L); err != nil {
		mcr.L.Close()
		return nil, curated.Errorf(BadScript, name, err)
	}

	if fn, ok := mcr.L.GetGlobal(frameFunction).(*lua.LFunction); ok {
		mcr.frameFn = fn
	} else {
		logger.Logf(logger.Allow, "macro", "%s: no %s() function", name, frameFunction)
	}

	mcr.tv.AddFrameTrigger(mcr)

	return mcr, nil
}

// End detaches the macro from the television and closes the Lua state.
func (mcr *Macro) End() {
	mcr.tv.RemoveFrameTrigger(mcr)
	mcr.L.Close()
}

// Quit returns true if the script has asked for the emulation to end.
func (mcr *Macro) Quit() bool {
	return mcr.quit.Load()
}

// NewFrame implements the television.FrameTrigger interface.
func (mcr *Macro) NewFrame(frame *television.Frame) error {
	if mcr.failed || mcr.frameFn == nil {
		return nil
	}

	mcr.frame = frame
	defer func() {
		mcr.frame = nil
	}()

	err := mcr.L.CallByParam(lua.P{
		Fn:      mcr.frameFn,
		NRet:    0,
		Protect: true,
	}, lua.LNumber(frame.Number))

	// errors in the script are logged but do not stop the emulation
	if err != nil {
		mcr.failed = true
		mcr.log(err.Error())
	}

	return nil
}

func (mcr *Macro) log(msg string) {
	logger.Logf(logger.Allow, "macro", "%s: %s", mcr.filename, msg)
}

func (mcr *Macro) register() {
	mcr.L.SetGlobal("press", mcr.L.NewFunction(mcr.luaButton(true)))
	mcr.L.SetGlobal("release", mcr.L.NewFunction(mcr.luaButton(false)))
	mcr.L.SetGlobal("peek", mcr.L.NewFunction(mcr.luaPeek))
	mcr.L.SetGlobal("poke", mcr.L.NewFunction(mcr.luaPoke))
	mcr.L.SetGlobal("screenshot", mcr.L.NewFunction(mcr.luaScreenshot))
	mcr.L.SetGlobal("reset", mcr.L.NewFunction(mcr.luaReset))
	mcr.L.SetGlobal("quit", mcr.L.NewFunction(mcr.luaQuit))
	mcr.L.SetGlobal("log", mcr.L.NewFunction(mcr.luaLog))
}

// press(button [, player]) and release(button [, player]). player is 1 or 2
// and defaults to 1
func (mcr *Macro) luaButton(pressed bool) lua.LGFunction {
	return func(L *lua.LState) int {
		b, err := input.ParseButton(L.CheckString(1))
		if err != nil {
			L.ArgError(1, err.Error())
			return 0
		}

		player := L.OptInt(2, 1)
		if player < 1 || player > input.NumPlayers {
			L.ArgError(2, fmt.Sprintf("player must be between 1 and %d", input.NumPlayers))
			return 0
		}

		err = mcr.inp.HandleEvent(input.Event{Player: player - 1, Button: b, Pressed: pressed})
		if err != nil {
			L.RaiseError("%v", err)
		}
		return 0
	}
}

func checkAddress(L *lua.LState, n int) uint16 {
	a := L.CheckInt(n)
	if a < 0 || a > 0xffff {
		L.ArgError(n, fmt.Sprintf("address out of range: %#x", a))
	}
	return uint16(a)
}

// peek(address) returns the value at the address without side effects
func (mcr *Macro) luaPeek(L *lua.LState) int {
	v, err := mcr.mem.Peek(checkAddress(L, 1))
	if err != nil {
		L.RaiseError("%v", err)
		return 0
	}
	L.Push(lua.LNumber(v))
	return 1
}

// poke(address, value)
func (mcr *Macro) luaPoke(L *lua.LState) int {
	addr := checkAddress(L, 1)
	v := L.CheckInt(2)
	if v < 0 || v > 0xff {
		L.ArgError(2, fmt.Sprintf("value out of range: %#x", v))
		return 0
	}
	if err := mcr.mem.Poke(addr, uint8(v)); err != nil {
		L.RaiseError("%v", err)
	}
	return 0
}

// screenshot([name [, scale]]). only valid inside the frame function. the
// filename is derived from the script name when no name is given
func (mcr *Macro) luaScreenshot(L *lua.LState) int {
	if mcr.frame == nil {
		L.RaiseError("screenshot() can only be called from %s()", frameFunction)
		return 0
	}

	fn := L.OptString(1, "")
	if fn == "" {
		fn = screenshot.Filename(mcr.filename)
	} else if !strings.HasSuffix(strings.ToLower(fn), ".png") {
		fn = fmt.Sprintf("%s.png", fn)
	}

	if err := screenshot.Save(mcr.frame, L.OptInt(2, 1), fn); err != nil {
		L.RaiseError("%v", err)
	}
	return 0
}

func (mcr *Macro) luaReset(L *lua.LState) int {
	mcr.console.RequestReset()
	return 0
}

func (mcr *Macro) luaQuit(L *lua.LState) int {
	mcr.quit.Store(true)
	return 0
}

func (mcr *Macro) luaLog(L *lua.LState) int {
	mcr.log(L.CheckString(1))
	return 0
}
