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


package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/gophernes/test"
)

// a minimal iNES image. 16KiB of PRG filled with NOPs and a reset vector
// pointing to the start of the bank. no CHR
func testROM() []byte {
	d := make([]byte, 16+16384)
	copy(d, "NES\x1a")
	d[4] = 1
	for i := 16; i < len(d); i++ {
		d[i] = 0xea
	}

	// reset vector at $FFFC (the bank is mirrored at $C000)
	d[len(d)-4] = 0x00
	d[len(d)-3] = 0xc0
	return d
}

func writeTestROM(t *testing.T) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), "test.nes")
	test.DemandSuccess(t, os.WriteFile(fn, testROM(), 0o644))
	return fn
}

// runs launch() and returns the final state request
func runLaunch(args ...string) stateRequest {
	sync := &mainSync{
		state:         make(chan stateRequest),
		creator:       make(chan func() (GuiCreator, error)),
		creation:      make(chan GuiCreator),
		creationError: make(chan error),
	}
	go launch(sync, args)
	return <-sync.state
}

func TestLaunchHelp(t *testing.T) {
	req := runLaunch("-help")
	test.ExpectEquality(t, req.req, reqQuit)
	test.ExpectEquality(t, req.args, nil)
}

func TestLaunchBadFlag(t *testing.T) {
	req := runLaunch("-nosuchflag")
	test.ExpectEquality(t, req.req, reqQuit)
	test.ExpectEquality(t, req.args, any(10))
}

func TestROMInfo(t *testing.T) {
	req := runLaunch("rominfo", writeTestROM(t))
	test.ExpectEquality(t, req.req, reqQuit)
	test.ExpectEquality(t, req.args, nil)
}

func TestROMInfoMissingFile(t *testing.T) {
	req := runLaunch("rominfo", filepath.Join(t.TempDir(), "missing.nes"))
	test.ExpectEquality(t, req.args, any(20))

	req = runLaunch("rominfo")
	test.ExpectEquality(t, req.args, any(20))
}

func TestInspect(t *testing.T) {
	out := filepath.Join(t.TempDir(), "state.dot")

	req := runLaunch("inspect", "-frames", "2", "-out", out, writeTestROM(t))
	test.ExpectEquality(t, req.args, nil)

	d, err := os.ReadFile(out)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(string(d), "digraph"))
}

func TestPerformanceBadProfile(t *testing.T) {
	req := runLaunch("performance", "-profile", "nonsense", writeTestROM(t))
	test.ExpectEquality(t, req.args, any(20))
}
